package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newsroom-backend/internal/domains/category/model"
	"newsroom-backend/internal/domains/category/repository"
	"newsroom-backend/pkg/cache"
	"newsroom-backend/pkg/logger"
)

const (
	cacheKeyAllCategories = "categories:all"
	categoryListTTL       = 5 * time.Minute
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	cache        cache.Cache
}

func NewCategoryService(categoryRepo repository.CategoryRepository, c cache.Cache) ServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		cache:        c,
	}
}

// ListCategories returns all categories. The list changes rarely, so it
// is served from cache with a short TTL.
func (s *categoryService) ListCategories(ctx context.Context) ([]model.CategoryResponse, error) {
	if s.cache != nil {
		var cached []model.CategoryResponse
		if found, err := s.cache.Get(ctx, cacheKeyAllCategories, &cached); err == nil && found {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	responses := model.ToCategoryResponses(categories)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyAllCategories, responses, categoryListTTL); err != nil {
			// Cache failures are non-critical
			logger.Error("failed to cache category list", err)
		}
	}

	return responses, nil
}

func (s *categoryService) GetCategoryBySlug(ctx context.Context, slug string) (*model.CategoryResponse, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			return nil, model.NewCategoryNotFoundError()
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	response := model.ToCategoryResponse(category)
	return &response, nil
}
