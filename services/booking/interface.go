package booking

import (
	"context"
	"time"

	bookingRepo "calmfix/database/repository/booking"
	"calmfix/models"
	"calmfix/services/catalog"
	"calmfix/services/tasks"
)

// BookingService manages bookings and their status lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	GetBooking(id string) (*models.BookingDetail, error)
	ListBookings(userID string) ([]models.Booking, error)
	AdvanceToEnRoute(ctx context.Context, id string) error
	CancelBooking(id string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Catalog   catalog.CatalogService
	Scheduler tasks.StatusScheduler

	// EnRouteDelay is how long a booking stays confirmed before the professional heads out.
	EnRouteDelay time.Duration
	// ArrivalWindow is added to the creation time to estimate arrival.
	ArrivalWindow time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
