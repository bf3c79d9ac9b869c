package service

import (
	"context"
	"time"

	"newsroom-backend/internal/domains/ad/model"
	"newsroom-backend/internal/domains/ad/repository"
	"newsroom-backend/pkg/cache"
	"newsroom-backend/pkg/logger"
)

const adCacheTTL = 1 * time.Minute

type adService struct {
	adRepo repository.RepositoryInterface
	cache  cache.Cache
}

// NewAdService creates a new ad service
func NewAdService(adRepo repository.RepositoryInterface, cache cache.Cache) ServiceInterface {
	return &adService{
		adRepo: adRepo,
		cache:  cache,
	}
}

func (s *adService) ListActiveAds(ctx context.Context, categorySlug string) ([]model.AdResponse, error) {
	cacheKey := "ads:active"
	if categorySlug != "" {
		cacheKey = "ads:active:" + categorySlug
	}

	if s.cache != nil {
		var cached []model.AdResponse
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			logger.Error("failed to read ad cache", err)
		}
		if found {
			return cached, nil
		}
	}

	ads, err := s.adRepo.ListActive(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	responses := model.ToAdResponses(ads)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, responses, adCacheTTL); err != nil {
			logger.Error("failed to cache ads", err)
		}
	}

	return responses, nil
}
