package booking

import "errors"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidUrgency    = errors.New("urgency must be standard or emergency")
	ErrInvalidTransition = errors.New("booking cannot change to the requested status")
	ErrServiceMismatch   = errors.New("professional does not offer the requested service")
)
