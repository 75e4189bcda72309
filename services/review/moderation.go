package review

import (
	"context"
	"fmt"
	"html"
	"strings"

	"mentesana/models"
	"mentesana/utils"

	"go.uber.org/zap"
)

const minReviewLength = 5

const (
	msgReviewRequired = "El campo de reseña es obligatorio."
	msgReviewTooShort = "Tu reseña debe tener al menos 5 caracteres."
)

// Submit persists the review hidden and queues the moderation mail. A failed
// hand-off never rolls back the write.
func (s *DefaultModerationService) Submit(ctx context.Context, text string) (*models.Review, bool, error) {
	logger := utils.GetLogger()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false, ValidationError{Message: msgReviewRequired}
	}
	if len([]rune(trimmed)) < minReviewLength {
		return nil, false, ValidationError{Message: msgReviewTooShort}
	}

	saved, err := s.Repo.Create(ctx, models.Review{
		Text:      trimmed,
		IsVisible: false,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to save review: %w", err)
	}

	if err := s.Notifier.Send(ctx, buildModerationMail(s.NotifyTo, *saved)); err != nil {
		logger.Warn("review saved but notification failed",
			zap.String("id", saved.ID), zap.Error(err))
		return saved, false, nil
	}

	return saved, true, nil
}

// ListVisible returns approved reviews only, most recent first.
func (s *DefaultModerationService) ListVisible(ctx context.Context) ([]models.Review, error) {
	return s.Repo.GetVisible(ctx)
}

// ListAll returns every review, pending ones included.
func (s *DefaultModerationService) ListAll(ctx context.Context) ([]models.Review, error) {
	return s.Repo.GetAll(ctx)
}

// Approve publishes a pending review.
func (s *DefaultModerationService) Approve(ctx context.Context, id string) (*models.Review, error) {
	return s.Repo.SetVisible(ctx, id, true)
}

// buildModerationMail tells the administrator a review is waiting and where
// to approve it.
func buildModerationMail(to string, r models.Review) models.EmailMessage {
	htmlBody := fmt.Sprintf(`
        <h3>Nueva reseña pendiente de moderación</h3>
        <blockquote>%s</blockquote>
        <p>Apruébala con:</p>
        <p><code>PUT /api/admin/reviews/approve/%s</code></p>
      `, html.EscapeString(r.Text), r.ID)

	return models.EmailMessage{
		To:      to,
		Subject: "📝 Nueva reseña pendiente de moderación",
		HTML:    htmlBody,
	}
}
