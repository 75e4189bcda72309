package notification

import (
	"context"

	"mentesana/models"
)

// TypeMailSend is the asynq task type for queued outbound mail.
const TypeMailSend = "mail:send"

// Notifier hands a formatted message off for delivery. Delivery is
// best-effort: callers persist first and treat a failed Send as a warning,
// never as a reason to fail the request.
type Notifier interface {
	Send(ctx context.Context, msg models.EmailMessage) error
}
