package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"calmfix/metrics"
	"calmfix/models"
	"calmfix/utils"

	"go.uber.org/zap"
)

var quickReplies = []string{
	"Thank you!",
	"Sounds good",
	"How long will it take?",
	"What's the cost?",
	"I'm here",
}

var professionalResponses = []string{
	"Got it! I'll take care of that right away.",
	"Thanks for letting me know. I'm prepared for that.",
	"Perfect! I'll be there shortly.",
	"Understood. I have the right tools for this job.",
}

func (s *DefaultChatService) QuickReplies() []string {
	return append([]string(nil), quickReplies...)
}

func newMessage(bookingID, sender, msgType, content, status string) models.Message {
	return models.Message{
		ID:        utils.NewID(),
		BookingID: bookingID,
		Sender:    sender,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Type:      msgType,
		Status:    status,
	}
}

// openingMessages builds the system notice and, when a professional is assigned, their greeting.
func (s *DefaultChatService) openingMessages(detail *models.BookingDetail) []models.Message {
	if detail.Professional == nil {
		return []models.Message{
			newMessage(detail.ID, models.SenderSystem, models.MessageSystem,
				"Chat started. A professional will join once one is assigned.", ""),
		}
	}

	pro := detail.Professional
	msgs := []models.Message{
		newMessage(detail.ID, models.SenderSystem, models.MessageSystem, "Chat started with "+pro.Name, ""),
	}

	eta := "a few minutes"
	if full, err := s.catalog.GetProfessional(pro.ID); err == nil && full.ETA != "" {
		eta = full.ETA
	}
	firstName, _, _ := strings.Cut(pro.Name, " ")
	greeting := fmt.Sprintf(
		"Hi! I'm %s, your %s for today. I've received your booking and I'm getting ready to head your way. Should be there in about %s.",
		firstName, strings.ToLower(detail.Service), eta,
	)
	msgs = append(msgs, newMessage(detail.ID, models.SenderProfessional, models.MessageText, greeting, models.MessageDelivered))
	return msgs
}

// conversation loads the booking and seeds its chat on first access.
func (s *DefaultChatService) conversation(ctx context.Context, bookingID string) (*models.BookingDetail, error) {
	detail, err := s.bookings.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	seeded, err := s.repo.Seed(ctx, bookingID, s.openingMessages(detail))
	if err != nil {
		return nil, err
	}
	if seeded {
		utils.GetLogger().Debug("chat opened", zap.String("bookingID", bookingID))
	}
	return detail, nil
}

func (s *DefaultChatService) GetMessages(ctx context.Context, bookingID string) ([]models.Message, error) {
	if _, err := s.conversation(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, bookingID)
}

// SendMessage stores the customer's message. Free-text messages get a simulated
// professional reply after the reply delay; quick replies do not.
func (s *DefaultChatService) SendMessage(ctx context.Context, bookingID string, req models.SendMessageRequest) (*models.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	detail, err := s.conversation(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if detail.Status == models.StatusCancelled {
		return nil, ErrChatClosed
	}

	msg := newMessage(bookingID, models.SenderUser, models.MessageText, content, models.MessageSent)
	if err := s.repo.Append(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	metrics.IncChatMessage(models.SenderUser)

	if !req.QuickReply && detail.Professional != nil {
		s.scheduleReply(bookingID)
	}
	return &msg, nil
}

func (s *DefaultChatService) scheduleReply(bookingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	var t *time.Timer
	t = time.AfterFunc(s.replyDelay, func() {
		s.mu.Lock()
		if _, ok := s.pending[t]; !ok || s.stopped {
			s.mu.Unlock()
			return
		}
		delete(s.pending, t)
		s.wg.Add(1)
		s.mu.Unlock()

		defer s.wg.Done()
		s.reply(bookingID)
	})
	s.pending[t] = struct{}{}
}

func (s *DefaultChatService) reply(bookingID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger := utils.GetLogger()

	detail, err := s.bookings.GetBooking(bookingID)
	if err != nil {
		logger.Warn("chat reply dropped", zap.String("bookingID", bookingID), zap.Error(err))
		return
	}
	if detail.Status == models.StatusCancelled {
		logger.Debug("chat reply dropped for cancelled booking", zap.String("bookingID", bookingID))
		return
	}

	content := professionalResponses[s.pick(len(professionalResponses))]
	msg := newMessage(bookingID, models.SenderProfessional, models.MessageText, content, models.MessageSent)
	if err := s.repo.Append(ctx, msg); err != nil {
		logger.Error("chat reply failed", zap.String("bookingID", bookingID), zap.Error(err))
		return
	}
	metrics.IncChatMessage(models.SenderProfessional)

	if err := s.repo.MarkRead(ctx, bookingID, models.SenderUser); err != nil {
		logger.Warn("failed to mark chat read", zap.String("bookingID", bookingID), zap.Error(err))
	}
}

// Stop drops pending replies and waits for in-flight ones.
func (s *DefaultChatService) Stop() {
	s.mu.Lock()
	s.stopped = true
	for t := range s.pending {
		t.Stop()
		delete(s.pending, t)
	}
	s.mu.Unlock()
	s.wg.Wait()
}
