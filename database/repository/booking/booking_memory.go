package bookingRepo

import (
	"fmt"
	"slices"
	"sync"

	"calmfix/database/repository"
	"calmfix/models"
)

// MemoryBookingRepo keeps bookings in process memory; contents are lost on restart.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	order    []string
	bookings map[string]*models.Booking
}

// NewMemoryBookingRepo creates an empty in-memory BookingRepository.
func NewMemoryBookingRepo() BookingRepository {
	return &MemoryBookingRepo{bookings: make(map[string]*models.Booking)}
}

func cloneBooking(b *models.Booking) models.Booking {
	cp := *b
	cp.Updates = slices.Clone(b.Updates)
	return cp
}

func (r *MemoryBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; exists {
		return fmt.Errorf("booking %s: %w", booking.ID, repository.ErrDuplicate)
	}
	stored := cloneBooking(booking)
	r.bookings[booking.ID] = &stored
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *MemoryBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
	}
	cp := cloneBooking(b)
	return &cp, nil
}

func (r *MemoryBookingRepo) List(userID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, 0, len(r.order))
	for _, id := range r.order {
		b := r.bookings[id]
		if userID != "" && b.UserID != userID {
			continue
		}
		out = append(out, cloneBooking(b))
	}
	return out, nil
}

func (r *MemoryBookingRepo) TransitionStatus(id string, from []string, update models.BookingUpdate) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
	}
	if !slices.Contains(from, b.Status) {
		return nil, fmt.Errorf("booking %s is %s: %w", id, b.Status, repository.ErrStaleStatus)
	}
	b.Status = update.Status
	b.Updates = append(b.Updates, update)
	cp := cloneBooking(b)
	return &cp, nil
}
