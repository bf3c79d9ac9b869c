package service

import (
	"context"

	"newsroom-backend/internal/domains/newsletter/model"
)

// ServiceInterface defines business logic for newsletter subscriptions
type ServiceInterface interface {
	// Subscribe reconciles an email against existing subscriptions:
	// create when unknown, no-op when already active, reactivate when
	// inactive.
	Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.SubscribeResult, error)
}
