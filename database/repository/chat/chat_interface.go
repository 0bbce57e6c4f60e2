package chatRepo

import (
	"context"

	"calmfix/models"
)

// ChatRepository stores the conversation attached to each booking.
type ChatRepository interface {
	// Seed stores msgs as the opening of the conversation unless it already has messages.
	// It reports whether the seed was written.
	Seed(ctx context.Context, bookingID string, msgs []models.Message) (bool, error)
	// Append adds a message to the end of the conversation.
	Append(ctx context.Context, msg models.Message) error
	// List returns the conversation in send order.
	List(ctx context.Context, bookingID string) ([]models.Message, error)
	// MarkRead sets status "read" on every message from sender.
	MarkRead(ctx context.Context, bookingID, sender string) error
}
