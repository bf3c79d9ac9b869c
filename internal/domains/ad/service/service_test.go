package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom-backend/internal/domains/ad/model"
)

type fakeAdRepo struct {
	ads   []model.Ad
	calls int
}

func (r *fakeAdRepo) ListActive(_ context.Context, categorySlug string) ([]model.Ad, error) {
	r.calls++
	if categorySlug == "" {
		return r.ads, nil
	}
	var out []model.Ad
	for _, a := range r.ads {
		if a.CategoryName != nil && *a.CategoryName == categorySlug {
			out = append(out, a)
		}
	}
	return out, nil
}

// jsonCache round-trips values through JSON like the redis-backed cache
type jsonCache struct {
	store map[string][]byte
}

func newJSONCache() *jsonCache {
	return &jsonCache{store: map[string][]byte{}}
}

func (c *jsonCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *jsonCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = raw
	return nil
}

func (c *jsonCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.store, k)
	}
	return nil
}

func (c *jsonCache) Ping(_ context.Context) error { return nil }

func makeAd(title string, order int) model.Ad {
	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	return model.Ad{
		ID:           uuid.New(),
		Title:        title,
		TargetURL:    "https://example.com/" + title,
		Size:         model.SizeMediumRectangle,
		IsActive:     true,
		DisplayOrder: order,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func TestListActiveAds_ReturnsRepositoryOrder(t *testing.T) {
	repo := &fakeAdRepo{ads: []model.Ad{makeAd("banner", 1), makeAd("sidebar", 2)}}
	svc := NewAdService(repo, nil)

	ads, err := svc.ListActiveAds(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, ads, 2)
	assert.Equal(t, "banner", ads[0].Title)
	assert.Equal(t, "sidebar", ads[1].Title)
}

func TestListActiveAds_SecondCallServedFromCache(t *testing.T) {
	repo := &fakeAdRepo{ads: []model.Ad{makeAd("banner", 1)}}
	svc := NewAdService(repo, newJSONCache())

	first, err := svc.ListActiveAds(context.Background(), "")
	require.NoError(t, err)
	second, err := svc.ListActiveAds(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first, second)
}

func TestListActiveAds_CategoryFilterHasOwnCacheKey(t *testing.T) {
	repo := &fakeAdRepo{ads: []model.Ad{makeAd("banner", 1)}}
	svc := NewAdService(repo, newJSONCache())

	_, err := svc.ListActiveAds(context.Background(), "")
	require.NoError(t, err)
	_, err = svc.ListActiveAds(context.Background(), "tech")
	require.NoError(t, err)

	assert.Equal(t, 2, repo.calls)
}
