package routes

import (
	"net/http"
	"time"

	"mentorloop/handlers"
	"mentorloop/middleware"
	"mentorloop/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
}

// RegisterBookingRoutes registers the booking, analytics and export endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.ActorMiddleware())
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.POST("/:id/transition", hb.Booking.TransitionBooking)
		api.POST("/bulk", hb.Booking.BulkTransition)
		api.GET("/analytics", hb.Analytics.GetSummary)
		api.GET("/export/csv", hb.Export.ExportCSV)
		api.GET("/export/ics", hb.Export.ExportICal)
	}
}

// RegisterNotificationRoutes registers the live feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	api.Use(middleware.ActorMiddleware())
	{
		api.GET("/stream", hb.Notifications.Stream)
		api.POST("/:id/read", hb.Notifications.MarkAsRead)
		api.POST("/read-all", hb.Notifications.MarkAllAsRead)
	}
}
