// File: calmfix/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	GetServicesHandler      gin.HandlerFunc
	QuoteServiceHandler     gin.HandlerFunc
	GetProfessionalsHandler gin.HandlerFunc
	GetProfessionalHandler  gin.HandlerFunc
	GetLocationsHandler     gin.HandlerFunc

	// User endpoints
	RegisterUserHandler      gin.HandlerFunc
	GetUsersHandler          gin.HandlerFunc
	UpdatePreferencesHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc

	// Chat endpoints
	GetMessagesHandler     gin.HandlerFunc
	SendMessageHandler     gin.HandlerFunc
	GetQuickRepliesHandler gin.HandlerFunc
}
