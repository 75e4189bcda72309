package routes

import (
	"net/http"
	"time"

	"mentesana/handlers"
	"mentesana/middleware"
	"mentesana/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterReviewRoutes registers the public review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("", hb.GetReviewsHandler)
		api.POST("", hb.CreateReviewHandler)
	}
}

// RegisterAppointmentRoutes registers the intake endpoint (behind the strict
// write limiter) and the token-gated operator listing.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", hb.AppointmentLimiter.Middleware(), hb.CreateAppointmentHandler)
		api.GET("", middleware.AdminAuthMiddleware(), hb.AdminHandler.ListAppointmentsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for review moderation.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/reviews", hb.AdminHandler.ListAllReviewsHandler)
		adminGroup.PUT("/reviews/approve/:id", hb.AdminHandler.ApproveReviewHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "deps": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// The site is a cross-origin browser client, so CORS stays permissive.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterReviewRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
