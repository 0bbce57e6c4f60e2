package booking

import (
	"errors"

	"calmfix/models"
	"calmfix/services/catalog"
)

// GetBooking returns the booking joined with its professional's contact card.
func (s *DefaultBookingService) GetBooking(id string) (*models.BookingDetail, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, mapRepoError(id, err)
	}

	detail := &models.BookingDetail{Booking: *b, Service: b.ServiceType}
	if svc, err := s.Catalog.GetService(b.ServiceType); err == nil {
		detail.Service = svc.Name
	}
	if b.ProfessionalID != 0 {
		pro, err := s.Catalog.GetProfessional(b.ProfessionalID)
		if err != nil && !errors.Is(err, catalog.ErrProfessionalNotFound) {
			return nil, err
		}
		if pro != nil {
			contact := pro.Contact()
			detail.Professional = &contact
		}
	}
	return detail, nil
}

// ListBookings returns all bookings, or only userID's when it is non-empty.
func (s *DefaultBookingService) ListBookings(userID string) ([]models.Booking, error) {
	return s.Repo.List(userID)
}
