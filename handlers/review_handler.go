package handlers

import (
	"errors"
	"net/http"

	"mentesana/models"
	"mentesana/services/review"
	"mentesana/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes the public review endpoints.
type ReviewHandler struct {
	Service review.ModerationService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(svc review.ModerationService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// createdReview is the 201 body: the stored record plus whether the
// moderation notification was handed off.
type createdReview struct {
	*models.Review
	Notified bool `json:"notified"`
}

// GetReviewsHandler handles GET /api/reviews: approved reviews, newest first.
func (h *ReviewHandler) GetReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.ListVisible(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError,
			"De momento no se pudieron cargar las reseñas. Por favor, pruebe más tarde.", err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReviewHandler handles POST /api/reviews. The created review is
// pending: it will not appear on the public listing until approved.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "El campo de reseña es obligatorio.", err)
		return
	}

	saved, notified, err := h.Service.Submit(c.Request.Context(), req.Text)
	if err != nil {
		var verr review.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, verr.Message, nil)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError,
			"No se pudo enviar la reseña. Inténtalo de nuevo.", err)
		return
	}

	c.JSON(http.StatusCreated, createdReview{Review: saved, Notified: notified})
}
