package routes

import (
	"net/http"
	"time"

	"roadbuddy/handlers"
	"roadbuddy/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/auth", hb.AuthorizeHandler)
	r.POST("/api/signup", hb.SignUpHandler)
}

// RegisterAPIRoutes registers every authenticated endpoint.
func RegisterAPIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.FirebaseAuthMiddleware())

		// Account endpoints.
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/user-id", hb.UserIDHandler)
		api.GET("/home", hb.HomeHandler)

		// Vehicle endpoints.
		api.POST("/add-car", hb.AddCarHandler)
		api.GET("/get-cars", hb.GetCarsHandler)

		// Ride endpoints.
		api.POST("/post-ride", hb.PostRideHandler)
		api.POST("/request-ride", hb.RequestRideHandler)
		api.POST("/cancel-ride", hb.CancelRideHandler)
		api.POST("/delete-ride", hb.DeleteRideHandler)
		api.GET("/available-rides", hb.AvailableRidesHandler)
		api.GET("/rides/:rideId", hb.GetRideDetailsHandler)
		api.GET("/coming-up-rides", hb.ComingUpRidesHandler)

		// Payment endpoints.
		api.POST("/payment-sheet", hb.PaymentSheetHandler)

		// Chat endpoints.
		api.POST("/send-message", hb.SendMessageHandler)
		api.GET("/get-messages/:chatId", hb.GetMessagesHandler)
		api.GET("/check-ride-chat/:chatId", hb.CheckRideChatHandler)
		api.GET("/get-all-user-ride-chats", hb.UserRideChatsHandler)

		// Notification endpoints.
		api.GET("/unread-notifications-count", hb.UnreadNotificationsCountHandler)
		api.GET("/get-notifications", hb.GetNotificationsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm RoadBuddy"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterAPIRoutes(r, hb)
	RegisterHealthRoute(r)
}
