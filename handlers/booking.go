package handlers

import (
	"errors"
	"net/http"

	"calmfix/models"
	"calmfix/services/booking"
	"calmfix/services/catalog"
	"calmfix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler handles booking-related endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// writeBookingError maps service errors to the public error payloads.
func (h *BookingHandler) writeBookingError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
	case errors.Is(err, catalog.ErrServiceNotFound):
		utils.JSONError(c, http.StatusNotFound, "Service not found", "")
	case errors.Is(err, catalog.ErrProfessionalNotFound):
		utils.JSONError(c, http.StatusNotFound, "Professional not found", "")
	case errors.Is(err, booking.ErrInvalidUrgency):
		utils.JSONError(c, http.StatusBadRequest, "Invalid urgency", err.Error())
	case errors.Is(err, booking.ErrServiceMismatch):
		utils.JSONError(c, http.StatusBadRequest, "Professional does not offer this service", err.Error())
	case errors.Is(err, booking.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "Booking cannot be changed", err.Error())
	default:
		h.Logger.Error(op+": unexpected error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Booking request failed", "")
	}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	b, err := h.BookingSvc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.writeBookingError(c, "CreateBooking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// ListBookings handles GET /api/bookings?userId=.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.BookingSvc.ListBookings(c.Query("userId"))
	if err != nil {
		h.writeBookingError(c, "ListBookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	detail, err := h.BookingSvc.GetBooking(c.Param("id"))
	if err != nil {
		h.writeBookingError(c, "GetBooking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": detail})
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	b, err := h.BookingSvc.CancelBooking(c.Param("id"))
	if err != nil {
		h.writeBookingError(c, "CancelBooking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
