package repository

import "errors"

// Errors shared by every store implementation.
var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key is already taken.
	ErrDuplicate = errors.New("duplicate record")
	// ErrStaleStatus is returned by compare-and-set updates when the record
	// no longer holds the expected status.
	ErrStaleStatus = errors.New("status changed concurrently")
)
