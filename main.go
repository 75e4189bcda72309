package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentesana/config"
	"mentesana/cron"
	"mentesana/database"
	appointmentRepo "mentesana/database/repository/appointment"
	reviewRepo "mentesana/database/repository/review"
	"mentesana/handlers"
	"mentesana/middleware"
	"mentesana/routes"
	"mentesana/services/appointment"
	"mentesana/services/notification"
	"mentesana/services/review"
	"mentesana/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Mail delivery: handlers enqueue, the background worker sends.
	mailer := notification.NewSMTPMailer()
	notifier := notification.NewQueueNotifier()
	defer notifier.Close()
	cron.InitMailWorker(mailer)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	revRepo := reviewRepo.NewMongoReviewRepo()

	// services.
	intakeService := &appointment.DefaultIntakeService{
		Repo:     apptRepo,
		Notifier: notifier,
		NotifyTo: config.AppConfig.NotifyEmail,
	}
	moderationService := &review.DefaultModerationService{
		Repo:     revRepo,
		Notifier: notifier,
		NotifyTo: config.AppConfig.NotifyEmail,
	}

	reviewHandler := handlers.NewReviewHandler(moderationService)
	appointmentHandler := handlers.NewAppointmentHandler(intakeService)
	adminHandler := handlers.NewAdminHandler(intakeService, moderationService)

	apptLimiter := middleware.NewWriteLimiter(
		config.AppConfig.ApptRateLimit,
		time.Duration(config.AppConfig.ApptRateWindowMin)*time.Minute,
		"Demasiadas solicitudes desde esta IP, intenta de nuevo más tarde.",
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetReviewsHandler:        reviewHandler.GetReviewsHandler,
		CreateReviewHandler:      reviewHandler.CreateReviewHandler,
		CreateAppointmentHandler: appointmentHandler.CreateAppointmentHandler,
		AppointmentLimiter:       apptLimiter,
		AdminHandler:             adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background dependency health snapshot for /health.
	monitorRedis := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	utils.StartHealthMonitor(monitorRedis, database.MongoClient)

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
