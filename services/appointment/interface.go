package appointment

import (
	"context"

	appointmentRepo "mentesana/database/repository/appointment"
	"mentesana/models"
	"mentesana/services/notification"
)

// IntakeService accepts appointment requests from the public site.
type IntakeService interface {
	// Submit validates and persists a request, then attempts to notify the
	// operator. The bool reports whether the notification was handed off;
	// a persisted appointment is returned even when it was not.
	Submit(ctx context.Context, input models.AppointmentInput) (*models.Appointment, bool, error)

	// ListAll returns every appointment, most recent first, for the
	// operator-facing listing.
	ListAll(ctx context.Context) ([]models.Appointment, error)
}

// DefaultIntakeService is the production implementation.
type DefaultIntakeService struct {
	Repo     appointmentRepo.AppointmentRepository
	Notifier notification.Notifier
	NotifyTo string
}
