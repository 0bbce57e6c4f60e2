package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bookingRepo "calmfix/database/repository/booking"
	catalogRepo "calmfix/database/repository/catalog"
	chatRepo "calmfix/database/repository/chat"
	userRepo "calmfix/database/repository/user"
	"calmfix/handlers"
	"calmfix/models"
	"calmfix/services/booking"
	"calmfix/services/catalog"
	"calmfix/services/chat"
	"calmfix/services/tasks"
	"calmfix/services/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testEnRouteDelay = 40 * time.Millisecond

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo.NewMemoryCatalogRepo()}
	userService := &user.DefaultUserService{Repo: userRepo.NewMemoryUserRepo()}

	scheduler := tasks.NewTimerScheduler()
	bookingService := &booking.DefaultBookingService{
		Repo:          bookingRepo.NewMemoryBookingRepo(),
		Catalog:       catalogService,
		Scheduler:     scheduler,
		EnRouteDelay:  testEnRouteDelay,
		ArrivalWindow: 20 * time.Minute,
	}
	scheduler.Bind(bookingService.AdvanceToEnRoute)
	chatService := chat.NewDefaultChatService(chatRepo.NewMemoryChatRepo(), bookingService, catalogService, 10*time.Millisecond)
	t.Cleanup(func() {
		chatService.Stop()
		scheduler.Stop()
	})

	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	chatHandler := handlers.NewChatHandler(chatService, logger)

	hb := &handlers.HandlerBundle{
		GetServicesHandler:       catalogHandler.GetServices,
		QuoteServiceHandler:      catalogHandler.QuoteService,
		GetProfessionalsHandler:  catalogHandler.GetProfessionals,
		GetProfessionalHandler:   catalogHandler.GetProfessional,
		GetLocationsHandler:      catalogHandler.GetLocations,
		RegisterUserHandler:      userHandler.RegisterUserHandler,
		GetUsersHandler:          userHandler.GetUsersHandler,
		UpdatePreferencesHandler: userHandler.UpdatePreferencesHandler,
		CreateBookingHandler:     bookingHandler.CreateBooking,
		ListBookingsHandler:      bookingHandler.ListBookings,
		GetBookingHandler:        bookingHandler.GetBooking,
		CancelBookingHandler:     bookingHandler.CancelBooking,
		GetMessagesHandler:       chatHandler.GetMessages,
		SendMessageHandler:       chatHandler.SendMessage,
		GetQuickRepliesHandler:   chatHandler.GetQuickReplies,
	}
	return NewRouter(logger, hb, 0)
}

func doRequest(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)
	w := doRequest(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "ok", body["status"])
}

func TestCatalogEndpoints(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/services", nil)
	require.Equal(t, http.StatusOK, w.Code)
	services := decode[struct {
		Services []map[string]any `json:"services"`
	}](t, w)
	assert.Len(t, services.Services, 8)
	assert.Equal(t, "plumber", services.Services[0]["id"])

	w = doRequest(t, r, http.MethodPost, "/api/services", gin.H{"serviceId": "plumber", "urgency": "emergency"})
	require.Equal(t, http.StatusOK, w.Code)
	quote := decode[map[string]any](t, w)
	assert.EqualValues(t, 120, quote["estimatedPrice"])

	w = doRequest(t, r, http.MethodPost, "/api/services", gin.H{"serviceId": "gardener"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Service not found", decode[map[string]any](t, w)["error"])

	w = doRequest(t, r, http.MethodPost, "/api/services", gin.H{"serviceId": "plumber", "urgency": "whenever"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/professionals?service=electrician", nil)
	require.Equal(t, http.StatusOK, w.Code)
	pros := decode[struct {
		Professionals []models.Professional `json:"professionals"`
	}](t, w)
	require.Len(t, pros.Professionals, 1)
	assert.Equal(t, "Sarah Chen", pros.Professionals[0].Name)

	w = doRequest(t, r, http.MethodGet, "/api/professionals/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/locations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	locs := decode[struct {
		Locations []models.Location `json:"locations"`
	}](t, w)
	assert.Len(t, locs.Locations, 6)
}

func TestUserEndpoints(t *testing.T) {
	r := setupRouter(t)
	signup := gin.H{"email": "jane@example.com", "password": "secret", "name": "Jane", "phone": "555"}

	w := doRequest(t, r, http.MethodPost, "/api/users", signup)
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[struct {
		User map[string]any `json:"user"`
	}](t, w)
	assert.Equal(t, "jane@example.com", created.User["email"])
	assert.NotContains(t, created.User, "password")

	w = doRequest(t, r, http.MethodPost, "/api/users", signup)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decode[map[string]any](t, w)["error"])

	w = doRequest(t, r, http.MethodPost, "/api/users", gin.H{"name": "No Email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/users?email=jane@example.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/users?email=ghost@example.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode[map[string]any](t, w)["error"])

	id, _ := created.User["id"].(string)
	w = doRequest(t, r, http.MethodPut, "/api/users/"+id+"/preferences",
		gin.H{"notifications": false, "emergencyMode": true, "autoLocation": true})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[struct {
		User models.User `json:"user"`
	}](t, w)
	assert.True(t, updated.User.Preferences.EmergencyMode)
}

func TestBookingLifecycle(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/bookings", gin.H{
		"professionalId": 1,
		"serviceType":    "plumber",
		"location":       "Downtown Plaza",
		"description":    "Leaking pipe",
		"userId":         "u1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[struct {
		Booking models.Booking `json:"booking"`
	}](t, w)
	assert.Equal(t, models.StatusConfirmed, created.Booking.Status)
	assert.Equal(t, models.UrgencyStandard, created.Booking.Urgency)
	require.Len(t, created.Booking.Updates, 1)
	id := created.Booking.ID

	assert.Eventually(t, func() bool {
		w := doRequest(t, r, http.MethodGet, "/api/bookings/"+id, nil)
		got := decode[struct {
			Booking models.Booking `json:"booking"`
		}](t, w)
		return got.Booking.Status == models.StatusEnRoute && len(got.Booking.Updates) == 2
	}, time.Second, 10*time.Millisecond)

	w = doRequest(t, r, http.MethodGet, "/api/bookings?userId=u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Bookings []models.Booking `json:"bookings"`
	}](t, w)
	assert.Len(t, list.Bookings, 1)

	w = doRequest(t, r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(t, r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/bookings/CF-0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decode[map[string]any](t, w)["error"])
}

func TestCreateBookingValidation(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/bookings", gin.H{"location": "Downtown"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/bookings", gin.H{"serviceType": "plumber", "urgency": "asap"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/bookings", gin.H{"serviceType": "astrology"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/bookings", gin.H{"serviceType": "plumber", "professionalId": 42})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/bookings", gin.H{"serviceType": "electrician", "professionalId": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Professional does not offer this service", decode[map[string]any](t, w)["error"])
}

func TestUrgencyIsCaseInsensitive(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/bookings", gin.H{"serviceType": "plumber", "urgency": "Emergency"})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[struct {
		Booking models.Booking `json:"booking"`
	}](t, w)
	assert.Equal(t, models.UrgencyEmergency, created.Booking.Urgency)

	w = doRequest(t, r, http.MethodPost, "/api/services", gin.H{"serviceId": "plumber", "urgency": " EMERGENCY"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 120, decode[map[string]any](t, w)["estimatedPrice"])
}

func TestCancelledBookingNeverAdvances(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/bookings", gin.H{"serviceType": "locksmith"})
	require.Equal(t, http.StatusOK, w.Code)
	id := decode[struct {
		Booking models.Booking `json:"booking"`
	}](t, w).Booking.ID

	w = doRequest(t, r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	time.Sleep(3 * testEnRouteDelay)
	w = doRequest(t, r, http.MethodGet, "/api/bookings/"+id, nil)
	got := decode[struct {
		Booking models.Booking `json:"booking"`
	}](t, w)
	assert.Equal(t, models.StatusCancelled, got.Booking.Status)
	assert.Len(t, got.Booking.Updates, 2)
}

func TestChatFlow(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/bookings", gin.H{"serviceType": "electrician"})
	require.Equal(t, http.StatusOK, w.Code)
	id := decode[struct {
		Booking models.Booking `json:"booking"`
	}](t, w).Booking.ID

	w = doRequest(t, r, http.MethodGet, "/api/bookings/"+id+"/messages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	msgs := decode[struct {
		Messages []models.Message `json:"messages"`
	}](t, w)
	require.Len(t, msgs.Messages, 2)
	assert.Equal(t, "Chat started with Sarah Chen", msgs.Messages[0].Content)

	w = doRequest(t, r, http.MethodPost, "/api/bookings/"+id+"/messages", gin.H{"content": "Breaker keeps tripping"})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Eventually(t, func() bool {
		w := doRequest(t, r, http.MethodGet, "/api/bookings/"+id+"/messages", nil)
		got := decode[struct {
			Messages []models.Message `json:"messages"`
		}](t, w)
		return len(got.Messages) == 4 && got.Messages[3].Sender == models.SenderProfessional
	}, time.Second, 10*time.Millisecond)

	w = doRequest(t, r, http.MethodPost, "/api/bookings/"+id+"/messages", gin.H{"content": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/bookings/CF-0/messages", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/chat/quick-replies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	replies := decode[struct {
		QuickReplies []string `json:"quickReplies"`
	}](t, w)
	assert.Len(t, replies.QuickReplies, 5)
}
