package appointment

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"mentesana/models"
	"mentesana/utils"

	"go.uber.org/zap"
)

// Submit validates the request, persists it and hands the operator
// notification to the mail queue. Persistence is authoritative: once the
// record is stored the caller gets it back even if the notification could
// not be enqueued.
func (s *DefaultIntakeService) Submit(ctx context.Context, input models.AppointmentInput) (*models.Appointment, bool, error) {
	logger := utils.GetLogger()

	if err := validateInput(input, time.Now()); err != nil {
		return nil, false, err
	}

	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		reason = models.DefaultReason
	}

	appt := models.Appointment{
		Name:   strings.TrimSpace(input.Name),
		Email:  strings.TrimSpace(input.Email),
		Phone:  strings.TrimSpace(input.Phone),
		Date:   strings.TrimSpace(input.Date),
		Time:   strings.TrimSpace(input.Time),
		Reason: reason,
	}

	saved, err := s.Repo.Create(ctx, appt)
	if err != nil {
		return nil, false, fmt.Errorf("failed to save appointment: %w", err)
	}

	if err := s.Notifier.Send(ctx, buildOperatorMail(s.NotifyTo, *saved)); err != nil {
		logger.Warn("appointment saved but notification failed",
			zap.String("id", saved.ID), zap.Error(err))
		return saved, false, nil
	}

	return saved, true, nil
}

// ListAll returns every appointment, most recent first.
func (s *DefaultIntakeService) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return s.Repo.GetAll(ctx)
}

// buildOperatorMail formats the heads-up mail the therapist receives for each
// new request. The recipient is the fixed operator address, never the patient.
func buildOperatorMail(to string, appt models.Appointment) models.EmailMessage {
	prettyDate := appt.Date
	if parsed, err := time.Parse(dateLayout, appt.Date); err == nil {
		prettyDate = utils.FormatSpanishDate(parsed)
	}

	body := fmt.Sprintf(`
        <h3>¡Tienes una nueva solicitud de cita!</h3>
        <p><strong>Cliente:</strong> %s</p>
        <p><strong>Correo del cliente:</strong> %s</p>
        <p><strong>Teléfono:</strong> %s</p>
        <p><strong>Fecha solicitada:</strong> %s</p>
        <p><strong>Hora:</strong> %s</p>
        <p><strong>Motivo:</strong> %s</p>
        <hr>
        <p>Revisa tu base de datos para más detalles.</p>
      `, html.EscapeString(appt.Name), html.EscapeString(appt.Email), appt.Phone,
		prettyDate, appt.Time, html.EscapeString(appt.Reason))

	return models.EmailMessage{
		To:      to,
		Subject: "📅 Nueva Cita Solicitada: " + appt.Name,
		HTML:    body,
	}
}
