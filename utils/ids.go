package utils

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// BookingIDPrefix prefixes every booking reference shown to customers.
const BookingIDPrefix = "CF-"

var (
	idMu     sync.Mutex
	lastID   int64
	nowMilli = func() int64 { return time.Now().UnixMilli() }
)

// NewBookingID returns "CF-<unix millis>". Two calls in the same millisecond get
// consecutive values, so ids are unique and strictly increasing per process.
func NewBookingID() string {
	idMu.Lock()
	defer idMu.Unlock()

	next := nowMilli()
	if next <= lastID {
		next = lastID + 1
	}
	lastID = next
	return BookingIDPrefix + strconv.FormatInt(next, 10)
}

// NewID returns a random UUID string.
func NewID() string {
	return uuid.New().String()
}
