package handlers

import (
	"errors"
	"net/http"

	"mentesana/models"
	"mentesana/services/appointment"
	"mentesana/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the appointment intake endpoint.
type AppointmentHandler struct {
	Service appointment.IntakeService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(svc appointment.IntakeService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

type createdAppointment struct {
	*models.Appointment
	Notified bool `json:"notified"`
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Todos los campos son obligatorios.", err)
		return
	}

	saved, notified, err := h.Service.Submit(c.Request.Context(), input)
	if err != nil {
		var verr appointment.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, verr.Message, nil)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError,
			"No se pudo agendar la cita. Inténtalo de nuevo.", err)
		return
	}

	c.JSON(http.StatusCreated, createdAppointment{Appointment: saved, Notified: notified})
}
