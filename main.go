// File: roadbuddy/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roadbuddy/config"
	"roadbuddy/cron"
	"roadbuddy/database"
	"roadbuddy/handlers"
	"roadbuddy/middleware"
	"roadbuddy/routes"
	"roadbuddy/services/car"
	"roadbuddy/services/chat"
	"roadbuddy/services/notification"
	"roadbuddy/services/payment"
	"roadbuddy/services/ride"
	"roadbuddy/services/user"
	"roadbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	db := database.GetClient()

	// services.
	userService := &user.DefaultUserService{
		DB:   db,
		Auth: utils.GetAuthClient(),
	}
	carService := &car.DefaultCarService{DB: db}
	rideService := &ride.DefaultRideService{DB: db}
	chatService := &chat.DefaultRideChatService{DB: db}
	messageService := &chat.DefaultMessageService{DB: db}
	notificationService := &notification.DefaultNotificationService{DB: db}
	paymentService := &payment.DefaultPaymentService{
		Cache: utils.GetPaymentCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Users:         userService,
		Cars:          carService,
		Rides:         rideService,
		Chats:         chatService,
		Messages:      messageService,
		Notifications: notificationService,
		Payments:      paymentService,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic expired-ride sweep.
	cron.InitSweepWorker(cron.SweepDeps{
		Rides:    rideService,
		Users:    userService,
		Chats:    chatService,
		Messages: messageService,
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8090"
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
