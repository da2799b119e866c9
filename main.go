package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swiftdrop/config"
	"swiftdrop/cron"
	"swiftdrop/database"
	"swiftdrop/database/repository"
	"swiftdrop/handlers"
	"swiftdrop/routes"
	"swiftdrop/services/booking"
	"swiftdrop/services/distance"
	"swiftdrop/services/notification"
	"swiftdrop/services/tasks"
	"swiftdrop/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitWizardCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := repository.NewMongoBookingRepo()

	// services.
	distanceEstimator := distance.FromConfig()

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer taskClient.Close()
	reminderScheduler := tasks.NewReminderScheduler(taskClient,
		time.Duration(config.AppConfig.FollowUpDelayHours)*time.Hour)

	notificationService := &notification.DefaultNotificationService{
		Logger:    logger,
		Reminders: reminderScheduler,
	}

	cron.InitFollowUpWorker(notificationService)

	wizardService := &booking.DefaultWizardSessionService{
		Cache:         utils.GetWizardCacheClient(),
		Repo:          bookingRepo,
		Distance:      distanceEstimator,
		Notifier:      notificationService,
		SubmitTimeout: time.Duration(config.AppConfig.SubmitTimeoutSeconds) * time.Second,
		Gates:         booking.DefaultGates(),
	}

	bookingHandler := handlers.NewBookingHandler(wizardService, bookingRepo, logger)
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService, wizardService, logger)

	handlerBundle := &handlers.HandlerBundle{
		Booking: bookingHandler,
		Storage: storageHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
