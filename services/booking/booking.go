package booking

import (
	"context"
	"errors"
	"fmt"

	"calmfix/database/repository"
	"calmfix/metrics"
	"calmfix/models"
	"calmfix/services/catalog"
	"calmfix/utils"

	"go.uber.org/zap"
)

const (
	msgConfirmed = "Booking confirmed. Professional is preparing to head your way."
	msgEnRoute   = "Professional is on the way to your location."
	msgCancelled = "Booking cancelled."
)

func normalizeUrgency(urgency string) (string, error) {
	normalized, ok := models.NormalizeUrgency(urgency)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidUrgency, urgency)
	}
	return normalized, nil
}

// resolveProfessional validates an explicit professional or assigns the best match.
// Services nobody offers yet are booked unassigned (professionalId 0).
func (s *DefaultBookingService) resolveProfessional(id int, serviceType string) (int, error) {
	if id != 0 {
		pro, err := s.Catalog.GetProfessional(id)
		if err != nil {
			return 0, err
		}
		if pro.Service != serviceType {
			return 0, fmt.Errorf("%w: professional %d is a %s", ErrServiceMismatch, id, pro.Service)
		}
		return id, nil
	}
	pro, err := s.Catalog.MatchProfessional(serviceType)
	if errors.Is(err, catalog.ErrProfessionalNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return pro.ID, nil
}

// CreateBooking stores a confirmed booking and schedules its en_route transition.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	urgency, err := normalizeUrgency(req.Urgency)
	if err != nil {
		return nil, err
	}
	if _, err := s.Catalog.GetService(req.ServiceType); err != nil {
		return nil, err
	}
	professionalID, err := s.resolveProfessional(req.ProfessionalID, req.ServiceType)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	booking := &models.Booking{
		ID:               utils.NewBookingID(),
		ProfessionalID:   professionalID,
		ServiceType:      req.ServiceType,
		Location:         req.Location,
		Urgency:          urgency,
		Description:      req.Description,
		ContactMethod:    req.ContactMethod,
		UserID:           req.UserID,
		Status:           models.StatusConfirmed,
		CreatedAt:        now,
		EstimatedArrival: now.Add(s.ArrivalWindow),
		Updates: []models.BookingUpdate{{
			Status:    models.StatusConfirmed,
			Timestamp: now,
			Message:   msgConfirmed,
		}},
	}

	if err := s.Repo.Create(booking); err != nil {
		logger.Error("CreateBooking: failed to store booking", zap.String("bookingID", booking.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	metrics.IncBookingCreated(booking.ServiceType, booking.Urgency)
	metrics.IncBookingStatus(models.StatusConfirmed)

	// The booking stands even if the transition cannot be queued.
	if err := s.Scheduler.ScheduleEnRoute(ctx, booking.ID, s.EnRouteDelay); err != nil {
		logger.Error("CreateBooking: failed to schedule en_route", zap.String("bookingID", booking.ID), zap.Error(err))
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("service", booking.ServiceType),
		zap.String("urgency", booking.Urgency),
		zap.Int("professionalID", booking.ProfessionalID),
		zap.String("userID", booking.UserID),
	)
	return booking, nil
}

func mapRepoError(id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	return err
}
