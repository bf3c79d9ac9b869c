package service

import (
	"context"

	"github.com/google/uuid"

	commentmodel "newsroom-backend/internal/domains/comment/model"
	"newsroom-backend/internal/domains/post/model"
)

// CommentResolver is the slice of the comment domain the post detail view
// needs: the nested tree of approved comments for a post.
type CommentResolver interface {
	GetCommentTree(ctx context.Context, postID uuid.UUID) ([]commentmodel.CommentNode, error)
}

type ServiceInterface interface {
	// ListPosts returns a filtered page of published posts and the total
	ListPosts(ctx context.Context, req model.ListPostsRequest) ([]model.PostSummary, int, error)

	// GetPostDetail returns a published post with its comment tree and
	// bumps the view counter.
	GetPostDetail(ctx context.Context, slug string) (*model.PostDetail, error)

	// GetRelatedPosts returns up to RelatedLimit candidates selected by
	// the category/tag/latest fallback tiers.
	GetRelatedPosts(ctx context.Context, slug string) ([]model.PostSummary, error)

	// GetAdjacentPosts returns the chronological neighbors of a post
	GetAdjacentPosts(ctx context.Context, slug string) (*model.AdjacentResponse, error)

	// GetPostsByCategory returns published posts of a category
	GetPostsByCategory(ctx context.Context, categorySlug string) ([]model.PostSummary, error)

	// GetFeaturedPosts returns up to FeaturedLimit featured posts
	GetFeaturedPosts(ctx context.Context) ([]model.PostSummary, error)

	// GetTrendingPosts returns the TrendingLimit newest published posts
	GetTrendingPosts(ctx context.Context) ([]model.PostSummary, error)
}
