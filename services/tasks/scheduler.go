package tasks

import (
	"context"
	"errors"
	"time"
)

// ErrSchedulerStopped is returned when scheduling after Stop.
var ErrSchedulerStopped = errors.New("status scheduler stopped")

// StatusHandler applies the delayed confirmed -> en_route transition for one booking.
type StatusHandler func(ctx context.Context, bookingID string) error

// StatusScheduler defers booking status transitions.
type StatusScheduler interface {
	// ScheduleEnRoute runs the en_route transition for bookingID after delay.
	// Scheduling the same booking again replaces the pending transition.
	ScheduleEnRoute(ctx context.Context, bookingID string, delay time.Duration) error
	// Cancel drops the pending transition, if any.
	Cancel(bookingID string)
	// Stop cancels every pending transition and releases resources.
	Stop()
}
