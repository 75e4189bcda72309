package review

import (
	"context"

	reviewRepo "mentesana/database/repository/review"
	"mentesana/models"
	"mentesana/services/notification"
)

// ModerationService accepts reviews hidden and serves only approved ones
// publicly.
type ModerationService interface {
	// Submit persists a new review with isVisible=false and attempts to
	// notify the administrator. The bool reports whether the notification
	// was handed off. The returned review is pending, not published.
	Submit(ctx context.Context, text string) (*models.Review, bool, error)

	// ListVisible returns approved reviews only, most recent first.
	ListVisible(ctx context.Context) ([]models.Review, error)

	// ListAll returns every review, pending ones included, for the admin view.
	ListAll(ctx context.Context) ([]models.Review, error)

	// Approve flips a review to visible. This is the only path from hidden
	// to published.
	Approve(ctx context.Context, id string) (*models.Review, error)
}

// DefaultModerationService is the production implementation.
type DefaultModerationService struct {
	Repo     reviewRepo.ReviewRepository
	Notifier notification.Notifier
	NotifyTo string
}
