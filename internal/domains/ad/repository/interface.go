package repository

import (
	"context"

	"newsroom-backend/internal/domains/ad/model"
)

// RepositoryInterface defines data access for ads
type RepositoryInterface interface {
	// ListActive returns active ads, optionally filtered by category slug.
	// An empty slug returns all active ads.
	ListActive(ctx context.Context, categorySlug string) ([]model.Ad, error)
}
