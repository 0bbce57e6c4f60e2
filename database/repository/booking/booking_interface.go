package bookingRepo

import "calmfix/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking; a taken id yields repository.ErrDuplicate.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by id.
	GetByID(id string) (*models.Booking, error)
	// List returns bookings in creation order, restricted to userID when it is non-empty.
	List(userID string) ([]models.Booking, error)
	// TransitionStatus atomically moves a booking whose status is one of from to
	// update.Status and appends update to its history. It returns
	// repository.ErrStaleStatus when the current status is not in from.
	TransitionStatus(id string, from []string, update models.BookingUpdate) (*models.Booking, error)
}
