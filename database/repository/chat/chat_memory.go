package chatRepo

import (
	"context"
	"slices"
	"sync"

	"calmfix/models"
)

// MemoryChatRepo keeps conversations in process memory.
type MemoryChatRepo struct {
	mu            sync.RWMutex
	conversations map[string][]models.Message
}

// NewMemoryChatRepo creates an empty in-memory ChatRepository.
func NewMemoryChatRepo() ChatRepository {
	return &MemoryChatRepo{conversations: make(map[string][]models.Message)}
}

func (r *MemoryChatRepo) Seed(_ context.Context, bookingID string, msgs []models.Message) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.conversations[bookingID]) > 0 {
		return false, nil
	}
	r.conversations[bookingID] = slices.Clone(msgs)
	return true, nil
}

func (r *MemoryChatRepo) Append(_ context.Context, msg models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conversations[msg.BookingID] = append(r.conversations[msg.BookingID], msg)
	return nil
}

func (r *MemoryChatRepo) List(_ context.Context, bookingID string) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.conversations[bookingID]), nil
}

func (r *MemoryChatRepo) MarkRead(_ context.Context, bookingID, sender string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs := r.conversations[bookingID]
	for i := range msgs {
		if msgs[i].Sender == sender {
			msgs[i].Status = models.MessageRead
		}
	}
	return nil
}
