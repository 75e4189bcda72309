package handlers

import (
	"mentesana/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every route handler the router needs, assembled once
// in main.
type HandlerBundle struct {
	// Public review endpoints.
	GetReviewsHandler   gin.HandlerFunc
	CreateReviewHandler gin.HandlerFunc

	// Appointment intake.
	CreateAppointmentHandler gin.HandlerFunc
	AppointmentLimiter       *middleware.WriteLimiter

	// Operator endpoints.
	AdminHandler *AdminHandler
}
