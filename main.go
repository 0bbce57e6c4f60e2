// File: calmfix/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calmfix/config"
	"calmfix/cron"
	"calmfix/database"
	bookingRepoPkg "calmfix/database/repository/booking"
	catalogRepoPkg "calmfix/database/repository/catalog"
	chatRepoPkg "calmfix/database/repository/chat"
	userRepoPkg "calmfix/database/repository/user"
	"calmfix/handlers"
	"calmfix/routes"
	"calmfix/services/booking"
	"calmfix/services/catalog"
	"calmfix/services/chat"
	"calmfix/services/tasks"
	"calmfix/services/user"
	"calmfix/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var redisClients []*redis.Client

	// repositories.
	catalogRepo := catalogRepoPkg.NewMemoryCatalogRepo()
	var (
		userRepo    userRepoPkg.UserRepository
		bookingRepo bookingRepoPkg.BookingRepository
		err         error
	)
	switch config.AppConfig.StorageDriver {
	case config.DriverMongo:
		database.InitDB()
		if userRepo, err = userRepoPkg.NewMongoUserRepo(database.Database()); err != nil {
			logger.Fatal("main: failed to initialize user repository", zap.Error(err))
		}
		if bookingRepo, err = bookingRepoPkg.NewMongoBookingRepo(database.Database()); err != nil {
			logger.Fatal("main: failed to initialize booking repository", zap.Error(err))
		}
	default:
		userRepo = userRepoPkg.NewMemoryUserRepo()
		bookingRepo = bookingRepoPkg.NewMemoryBookingRepo()
	}

	var chatRepo chatRepoPkg.ChatRepository
	switch config.AppConfig.ChatDriver {
	case config.DriverRedis:
		client := utils.GetChatCacheClient()
		redisClients = append(redisClients, client)
		chatRepo = chatRepoPkg.NewRedisChatRepo(client, config.AppConfig.ChatTTL)
	default:
		chatRepo = chatRepoPkg.NewMemoryChatRepo()
	}

	// services.
	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo}
	userService := &user.DefaultUserService{Repo: userRepo}

	queueOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	var (
		scheduler    tasks.StatusScheduler
		timerSched   *tasks.TimerScheduler
		statusWorker *asynq.Server
	)
	if config.AppConfig.StatusQueue == config.QueueAsynq {
		scheduler = tasks.NewAsynqScheduler(queueOpts)
	} else {
		timerSched = tasks.NewTimerScheduler()
		scheduler = timerSched
	}

	bookingService := &booking.DefaultBookingService{
		Repo:          bookingRepo,
		Catalog:       catalogService,
		Scheduler:     scheduler,
		EnRouteDelay:  config.AppConfig.EnRouteDelay,
		ArrivalWindow: config.AppConfig.ArrivalWindow,
	}
	if timerSched != nil {
		timerSched.Bind(bookingService.AdvanceToEnRoute)
	} else {
		if statusWorker, err = cron.InitStatusWorker(queueOpts, bookingService.AdvanceToEnRoute); err != nil {
			logger.Fatal("main: failed to start status worker", zap.Error(err))
		}
	}

	chatService := chat.NewDefaultChatService(chatRepo, bookingService, catalogService, config.AppConfig.ChatReplyDelay)

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, time.Minute, redisClients, database.MongoClient)

	// handlers.
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	chatHandler := handlers.NewChatHandler(chatService, logger)

	handlerBundle := &handlers.HandlerBundle{
		GetServicesHandler:      catalogHandler.GetServices,
		QuoteServiceHandler:     catalogHandler.QuoteService,
		GetProfessionalsHandler: catalogHandler.GetProfessionals,
		GetProfessionalHandler:  catalogHandler.GetProfessional,
		GetLocationsHandler:     catalogHandler.GetLocations,

		RegisterUserHandler:      userHandler.RegisterUserHandler,
		GetUsersHandler:          userHandler.GetUsersHandler,
		UpdatePreferencesHandler: userHandler.UpdatePreferencesHandler,

		CreateBookingHandler: bookingHandler.CreateBooking,
		ListBookingsHandler:  bookingHandler.ListBookings,
		GetBookingHandler:    bookingHandler.GetBooking,
		CancelBookingHandler: bookingHandler.CancelBooking,

		GetMessagesHandler:     chatHandler.GetMessages,
		SendMessageHandler:     chatHandler.SendMessage,
		GetQuickRepliesHandler: chatHandler.GetQuickReplies,
	}

	router := routes.NewRouter(logger, handlerBundle, config.AppConfig.MaxRequestsPerMin)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	chatService.Stop()
	scheduler.Stop()
	if statusWorker != nil {
		statusWorker.Shutdown()
	}
	for _, client := range redisClients {
		_ = client.Close()
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to close MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
