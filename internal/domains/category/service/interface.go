package service

import (
	"context"

	"newsroom-backend/internal/domains/category/model"
)

type ServiceInterface interface {
	ListCategories(ctx context.Context) ([]model.CategoryResponse, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*model.CategoryResponse, error)
}
