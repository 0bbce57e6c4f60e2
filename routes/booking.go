package routes

import (
	"calmfix/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/bookings")
	{
		booking.POST("", hb.CreateBookingHandler)
		booking.GET("", hb.ListBookingsHandler)
		booking.GET("/:id", hb.GetBookingHandler)
		booking.POST("/:id/cancel", hb.CancelBookingHandler)
		booking.GET("/:id/messages", hb.GetMessagesHandler)
		booking.POST("/:id/messages", hb.SendMessageHandler)
	}
}

// RegisterChatRoutes registers chat endpoints that are not tied to one booking.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/chat/quick-replies", hb.GetQuickRepliesHandler)
}
