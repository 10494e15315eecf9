// File: mentorloop/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentorloop/config"
	"mentorloop/cron"
	"mentorloop/database"
	actorRepoPkg "mentorloop/database/repository/actor"
	bookingRepoPkg "mentorloop/database/repository/booking"
	"mentorloop/handlers"
	"mentorloop/middleware"
	"mentorloop/models"
	"mentorloop/routes"
	"mentorloop/services/booking"
	"mentorloop/services/notification"
	"mentorloop/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	actorRepo := actorRepoPkg.NewMongoActorRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo: bookingRepo,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAlertQueueDB,
	})
	dispatcher := notification.NewAsynqDispatcher(asynqClient)

	hub := notification.NewHub(func(actor models.Actor) *notification.Reconciler {
		return notification.NewReconciler(notification.Config{
			Actor: actor,
			Fetch: func(ctx context.Context) ([]models.Booking, error) {
				all, err := bookingRepo.FetchForActor(ctx, actor.ID)
				if err != nil {
					return nil, err
				}
				return booking.VisibleBookings(actor, all), nil
			},
			Alerts:   dispatcher,
			Interval: time.Duration(config.AppConfig.PollIntervalSeconds) * time.Second,
			Lookback: time.Duration(config.AppConfig.LookbackWindowMinutes) * time.Minute,
		})
	})

	pushService := &notification.DefaultPushService{Actors: actorRepo}
	cron.InitAlertWorker(pushService)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:       handlers.NewBookingHandler(bookingService, bookingRepo, logger),
		Notifications: handlers.NewNotificationHandler(hub),
		Analytics:     handlers.NewAnalyticsHandler(bookingRepo, actorRepo),
		Export:        handlers.NewExportHandler(bookingRepo, actorRepo),
	}

	// Register routes with the assembled handler bundle.
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

	asynqClient.Close()
	logger.Sugar().Info("main: server stopped gracefully")
}
