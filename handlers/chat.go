package handlers

import (
	"errors"
	"net/http"

	"calmfix/models"
	"calmfix/services/booking"
	"calmfix/services/chat"
	"calmfix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatHandler struct {
	ChatSvc chat.ChatService
	Logger  *zap.Logger
}

func NewChatHandler(svc chat.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{ChatSvc: svc, Logger: logger}
}

func (h *ChatHandler) writeChatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
	case errors.Is(err, chat.ErrEmptyMessage):
		utils.JSONError(c, http.StatusBadRequest, "Message cannot be empty", "")
	case errors.Is(err, chat.ErrChatClosed):
		utils.JSONError(c, http.StatusConflict, "Chat is closed", err.Error())
	default:
		h.Logger.Error("chat request failed", zap.String("bookingID", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Chat request failed", "")
	}
}

// GetMessages handles GET /api/bookings/:id/messages.
func (h *ChatHandler) GetMessages(c *gin.Context) {
	msgs, err := h.ChatSvc.GetMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// SendMessage handles POST /api/bookings/:id/messages.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	msg, err := h.ChatSvc.SendMessage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// GetQuickReplies handles GET /api/chat/quick-replies.
func (h *ChatHandler) GetQuickReplies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quickReplies": h.ChatSvc.QuickReplies()})
}
