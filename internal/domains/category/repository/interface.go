package repository

import (
	"context"

	"newsroom-backend/internal/domains/category/model"
)

// CategoryRepository is the data access contract for categories.
// Categories are created and edited by editorial staff outside this API,
// so only reads are exposed here.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
}
