package chat

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	chatRepo "calmfix/database/repository/chat"
	"calmfix/models"
	"calmfix/services/booking"
	"calmfix/services/catalog"
)

var (
	ErrEmptyMessage = errors.New("message content is empty")
	ErrChatClosed   = errors.New("chat is closed for cancelled bookings")
)

// ChatService runs the simulated conversation between a customer and the assigned professional.
type ChatService interface {
	GetMessages(ctx context.Context, bookingID string) ([]models.Message, error)
	SendMessage(ctx context.Context, bookingID string, req models.SendMessageRequest) (*models.Message, error)
	QuickReplies() []string
	Stop()
}

// DefaultChatService implements ChatService.
type DefaultChatService struct {
	repo       chatRepo.ChatRepository
	bookings   booking.BookingService
	catalog    catalog.CatalogService
	replyDelay time.Duration
	pick       func(n int) int

	mu      sync.Mutex
	pending map[*time.Timer]struct{}
	stopped bool
	wg      sync.WaitGroup
}

func NewDefaultChatService(
	repo chatRepo.ChatRepository,
	bookings booking.BookingService,
	catalogSvc catalog.CatalogService,
	replyDelay time.Duration,
) *DefaultChatService {
	return &DefaultChatService{
		repo:       repo,
		bookings:   bookings,
		catalog:    catalogSvc,
		replyDelay: replyDelay,
		pick:       rand.IntN,
		pending:    make(map[*time.Timer]struct{}),
	}
}
