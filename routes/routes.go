package routes

import (
	"net/http"
	"time"

	"calmfix/handlers"
	"calmfix/metrics"
	"calmfix/middleware"
	"calmfix/utils"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RegisterCatalogRoutes registers service, professional and location endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/services", hb.GetServicesHandler)
	r.POST("/api/services", hb.QuoteServiceHandler)

	pros := r.Group("/api/professionals")
	{
		pros.GET("", hb.GetProfessionalsHandler)
		pros.GET("/:id", hb.GetProfessionalHandler)
	}

	r.GET("/api/locations", hb.GetLocationsHandler)
}

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("", hb.RegisterUserHandler)
		api.GET("", hb.GetUsersHandler)
		api.PUT("/:id/preferences", hb.UpdatePreferencesHandler)
	}
}

// RegisterHealthRoute registers health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm CalmFix",
			"services": utils.GetHealthStatus(),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r)
}

// NewRouter builds the engine with logging, recovery, metrics and rate limiting, then registers routes.
func NewRouter(logger *zap.Logger, hb *handlers.HandlerBundle, maxRequestsPerMin int) *gin.Engine {
	metrics.Register()
	handlers.RegisterValidators()

	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RateLimitMiddleware(maxRequestsPerMin))

	RegisterRoutes(router, hb)
	return router
}
