package service

import (
	"context"

	"newsroom-backend/internal/domains/ad/model"
)

// ServiceInterface defines business logic for ads
type ServiceInterface interface {
	ListActiveAds(ctx context.Context, categorySlug string) ([]model.AdResponse, error)
}
