package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calmfix",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route template and status code.",
		},
		[]string{"method", "route", "status"},
	)

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calmfix",
			Name:      "booking_created_total",
			Help:      "Bookings created by service type and urgency.",
		},
		[]string{"service", "urgency"},
	)

	bookingStatus = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calmfix",
			Name:      "booking_status_total",
			Help:      "Booking status transitions by target status.",
		},
		[]string{"status"},
	)

	chatMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calmfix",
			Name:      "chat_messages_total",
			Help:      "Chat messages stored by sender.",
		},
		[]string{"sender"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingCreated, bookingStatus, chatMessages)
	})
}

func IncHTTPRequest(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}

func IncBookingCreated(service, urgency string) {
	bookingCreated.WithLabelValues(service, urgency).Inc()
}

func IncBookingStatus(status string) {
	bookingStatus.WithLabelValues(status).Inc()
}

func IncChatMessage(sender string) {
	chatMessages.WithLabelValues(sender).Inc()
}
