package handlers

import (
	"errors"
	"net/http"

	reviewRepo "mentesana/database/repository/review"
	"mentesana/models"
	"mentesana/services/appointment"
	"mentesana/services/review"
	"mentesana/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler encapsulates the operator-facing operations: the appointment
// listing and review moderation.
type AdminHandler struct {
	Appointments appointment.IntakeService
	Reviews      review.ModerationService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(appts appointment.IntakeService, reviews review.ModerationService) *AdminHandler {
	return &AdminHandler{
		Appointments: appts,
		Reviews:      reviews,
	}
}

// ListAppointmentsHandler handles GET /api/appointments: every request,
// newest first.
func (ah *AdminHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := ah.Appointments.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError,
			"No se pudieron cargar las citas.", err)
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appts)
}

// ListAllReviewsHandler handles GET /api/admin/reviews: pending and approved.
func (ah *AdminHandler) ListAllReviewsHandler(c *gin.Context) {
	reviews, err := ah.Reviews.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError,
			"No se pudieron cargar las reseñas.", err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// ApproveReviewHandler handles PUT /api/admin/reviews/approve/:id.
func (ah *AdminHandler) ApproveReviewHandler(c *gin.Context) {
	id := c.Param("id")
	approved, err := ah.Reviews.Approve(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Reseña no encontrada.", err)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError,
			"No se pudo aprobar la reseña.", err)
		return
	}
	c.JSON(http.StatusOK, approved)
}
