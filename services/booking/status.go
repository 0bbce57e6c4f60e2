package booking

import (
	"context"
	"errors"
	"fmt"

	"calmfix/database/repository"
	"calmfix/metrics"
	"calmfix/models"
	"calmfix/utils"

	"go.uber.org/zap"
)

// AdvanceToEnRoute moves a confirmed booking to en_route. Bookings that already
// moved on (for example cancelled) are left alone.
func (s *DefaultBookingService) AdvanceToEnRoute(_ context.Context, id string) error {
	update := models.BookingUpdate{
		Status:    models.StatusEnRoute,
		Timestamp: s.now().UTC(),
		Message:   msgEnRoute,
	}

	_, err := s.Repo.TransitionStatus(id, []string{models.StatusConfirmed}, update)
	switch {
	case err == nil:
		metrics.IncBookingStatus(models.StatusEnRoute)
		utils.GetLogger().Info("booking en route", zap.String("bookingID", id))
		return nil
	case errors.Is(err, repository.ErrStaleStatus):
		utils.GetLogger().Debug("skipping en_route transition", zap.String("bookingID", id), zap.Error(err))
		return nil
	case errors.Is(err, repository.ErrNotFound):
		// Memory stores lose bookings on restart while queued tasks survive.
		utils.GetLogger().Warn("en_route transition for unknown booking", zap.String("bookingID", id))
		return nil
	default:
		return fmt.Errorf("failed to advance booking %s: %w", id, err)
	}
}

// CancelBooking cancels a booking that is confirmed or en route and drops its pending transition.
func (s *DefaultBookingService) CancelBooking(id string) (*models.Booking, error) {
	update := models.BookingUpdate{
		Status:    models.StatusCancelled,
		Timestamp: s.now().UTC(),
		Message:   msgCancelled,
	}

	b, err := s.Repo.TransitionStatus(id, []string{models.StatusConfirmed, models.StatusEnRoute}, update)
	if err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
		return nil, mapRepoError(id, err)
	}
	s.Scheduler.Cancel(id)

	metrics.IncBookingStatus(models.StatusCancelled)
	utils.GetLogger().Info("booking cancelled", zap.String("bookingID", id), zap.String("userID", b.UserID))
	return b, nil
}
