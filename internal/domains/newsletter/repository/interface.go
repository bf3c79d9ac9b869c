package repository

import (
	"context"

	"github.com/google/uuid"

	"newsroom-backend/internal/domains/newsletter/model"
)

// RepositoryInterface defines data access for newsletter subscriptions
type RepositoryInterface interface {
	// GetByEmail looks up a subscription case-insensitively.
	// Returns model.ErrSubscriptionNotFound when no record matches.
	GetByEmail(ctx context.Context, email string) (*model.Subscription, error)

	// Create inserts a new active subscription. Returns
	// model.ErrDuplicateEmail on a unique violation so callers can
	// re-reconcile against the concurrent winner.
	Create(ctx context.Context, email string) (*model.Subscription, error)

	// Reactivate flips an inactive subscription back to active.
	Reactivate(ctx context.Context, id uuid.UUID) (*model.Subscription, error)
}
