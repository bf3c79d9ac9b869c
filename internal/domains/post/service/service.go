package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"newsroom-backend/internal/domains/post/model"
	"newsroom-backend/internal/domains/post/repository"
	"newsroom-backend/pkg/cache"
	"newsroom-backend/pkg/logger"
)

const (
	cacheKeyFeatured = "posts:featured"
	cacheKeyTrending = "posts:trending"
	postSectionTTL   = time.Minute
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type postService struct {
	postRepo repository.PostRepository
	comments CommentResolver
	cache    cache.Cache
}

func NewPostService(postRepo repository.PostRepository, comments CommentResolver, c cache.Cache) ServiceInterface {
	return &postService{
		postRepo: postRepo,
		comments: comments,
		cache:    c,
	}
}

// =====================================================
// LISTING
// =====================================================

func (s *postService) ListPosts(ctx context.Context, req model.ListPostsRequest) ([]model.PostSummary, int, error) {
	if err := req.Validate(); err != nil {
		return nil, 0, model.NewInvalidRequestError(err)
	}

	posts, total, err := s.postRepo.List(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	return model.ToPostSummaries(posts), total, nil
}

func (s *postService) GetPostsByCategory(ctx context.Context, categorySlug string) ([]model.PostSummary, error) {
	posts, err := s.postRepo.ListByCategorySlug(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by category: %w", err)
	}

	return model.ToPostSummaries(posts), nil
}

// =====================================================
// DETAIL
// =====================================================

func (s *postService) GetPostDetail(ctx context.Context, slug string) (*model.PostDetail, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return nil, model.NewPostNotFoundError()
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	// A failed bump must not hide the post
	if err := s.postRepo.IncrementViews(ctx, post.ID); err != nil {
		logger.Error("failed to increment views", err)
	} else {
		post.ViewsCount++
	}

	comments, err := s.comments.GetCommentTree(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comment tree: %w", err)
	}

	return &model.PostDetail{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Category:      post.Category,
		Content:       post.Content,
		Excerpt:       post.Excerpt,
		FeaturedImage: post.FeaturedImage,
		Tags:          post.Tags,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
		ViewsCount:    post.ViewsCount,
		IsFeatured:    post.IsFeatured,
		Comments:      comments,
	}, nil
}

// =====================================================
// RELATED POSTS
// =====================================================

// GetRelatedPosts selects up to RelatedLimit candidates through three
// fallback tiers: same category, overlapping tags, then newest published.
// The accumulated order is preserved; the result is never re-sorted
// globally. Each tier issues an independent read, so a write landing
// between tiers can at worst cause a transient duplicate or miss.
func (s *postService) GetRelatedPosts(ctx context.Context, slug string) ([]model.PostSummary, error) {
	source, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return nil, model.NewPostNotFoundError()
		}
		return nil, fmt.Errorf("failed to get source post: %w", err)
	}

	selected := make([]model.Post, 0, model.RelatedLimit)

	// Tier 1: same category, newest-first, capped below the total quota
	byCategory, err := s.postRepo.ListByCategoryID(ctx, source.Category.ID, source.ID, model.RelatedCategoryLimit)
	if err != nil {
		return nil, fmt.Errorf("related category tier failed: %w", err)
	}
	selected = append(selected, byCategory...)

	// Tier 2: tag overlap, only when the quota is short and the source
	// has tags
	if len(selected) < model.RelatedLimit {
		tokens := source.TagTokens()
		if len(tokens) > 0 {
			byTags, err := s.postRepo.ListByTagTokens(ctx, tokens,
				excludeIDs(source.ID, selected), model.RelatedLimit-len(selected))
			if err != nil {
				return nil, fmt.Errorf("related tag tier failed: %w", err)
			}
			selected = append(selected, byTags...)
		}
	}

	// Tier 3: fall back to the newest published posts
	if len(selected) < model.RelatedLimit {
		latest, err := s.postRepo.ListLatest(ctx, model.RelatedLimit-len(selected),
			excludeIDs(source.ID, selected))
		if err != nil {
			return nil, fmt.Errorf("related fallback tier failed: %w", err)
		}
		selected = append(selected, latest...)
	}

	if len(selected) > model.RelatedLimit {
		selected = selected[:model.RelatedLimit]
	}

	return model.ToPostSummaries(selected), nil
}

func excludeIDs(sourceID uuid.UUID, selected []model.Post) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(selected)+1)
	ids = append(ids, sourceID)
	for i := range selected {
		ids = append(ids, selected[i].ID)
	}
	return ids
}

// =====================================================
// ADJACENT POSTS
// =====================================================

func (s *postService) GetAdjacentPosts(ctx context.Context, slug string) (*model.AdjacentResponse, error) {
	source, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return nil, model.NewPostNotFoundError()
		}
		return nil, fmt.Errorf("failed to get source post: %w", err)
	}

	resp := &model.AdjacentResponse{}

	previous, err := s.postRepo.GetPreviousPublished(ctx, source.CreatedAt)
	if err != nil && !errors.Is(err, model.ErrPostNotFound) {
		return nil, fmt.Errorf("failed to get previous post: %w", err)
	}
	if previous != nil {
		summary := model.ToPostSummary(previous)
		resp.Previous = &summary
	}

	next, err := s.postRepo.GetNextPublished(ctx, source.CreatedAt)
	if err != nil && !errors.Is(err, model.ErrPostNotFound) {
		return nil, fmt.Errorf("failed to get next post: %w", err)
	}
	if next != nil {
		summary := model.ToPostSummary(next)
		resp.Next = &summary
	}

	return resp, nil
}

// =====================================================
// FEATURED / TRENDING SECTIONS
// =====================================================

func (s *postService) GetFeaturedPosts(ctx context.Context) ([]model.PostSummary, error) {
	return s.cachedSection(ctx, cacheKeyFeatured, func() ([]model.Post, error) {
		return s.postRepo.ListFeatured(ctx, model.FeaturedLimit)
	})
}

func (s *postService) GetTrendingPosts(ctx context.Context) ([]model.PostSummary, error) {
	return s.cachedSection(ctx, cacheKeyTrending, func() ([]model.Post, error) {
		return s.postRepo.ListLatest(ctx, model.TrendingLimit, nil)
	})
}

// cachedSection serves a home-page section from cache, falling back to
// the repository on a miss.
func (s *postService) cachedSection(ctx context.Context, key string, load func() ([]model.Post, error)) ([]model.PostSummary, error) {
	if s.cache != nil {
		var cached []model.PostSummary
		if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
			return cached, nil
		}
	}

	posts, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	summaries := model.ToPostSummaries(posts)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, summaries, postSectionTTL); err != nil {
			logger.Error("failed to cache post section", err)
		}
	}

	return summaries, nil
}
