package models

import "time"

// Message senders.
const (
	SenderUser         = "user"
	SenderProfessional = "professional"
	SenderSystem       = "system"
)

// Message types.
const (
	MessageText   = "text"
	MessageSystem = "system"
)

// Delivery states of a message.
const (
	MessageSent      = "sent"
	MessageDelivered = "delivered"
	MessageRead      = "read"
)

// Message is one entry of the chat between a customer and the assigned professional.
type Message struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Status    string    `json:"status,omitempty"`
}

// SendMessageRequest is the body of POST /api/bookings/:id/messages.
type SendMessageRequest struct {
	Content    string `json:"content" binding:"required"`
	QuickReply bool   `json:"quickReply"`
}
