package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"newsroom-backend/internal/domains/post/model"
)

// PostRepository is the data access contract for posts. Posts are written
// by editorial staff outside this API; public reads only ever see
// published rows, which every query here enforces.
type PostRepository interface {
	// GetBySlug returns the published post with the given slug
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)

	// List returns a filtered, ordered, paginated page of published
	// posts plus the total match count.
	List(ctx context.Context, req model.ListPostsRequest) ([]model.Post, int, error)

	// ListByCategorySlug returns published posts of a category,
	// newest-first.
	ListByCategorySlug(ctx context.Context, slug string) ([]model.Post, error)

	// ListFeatured returns up to limit featured published posts
	ListFeatured(ctx context.Context, limit int) ([]model.Post, error)

	// ListLatest returns up to limit newest published posts, excluding
	// the given IDs.
	ListLatest(ctx context.Context, limit int, excludeIDs []uuid.UUID) ([]model.Post, error)

	// ListByCategoryID returns up to limit newest published posts in a
	// category, excluding one post.
	ListByCategoryID(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]model.Post, error)

	// ListByTagTokens returns up to limit newest published posts whose
	// tag field contains any of the tokens as a case-insensitive
	// substring, excluding the given IDs.
	ListByTagTokens(ctx context.Context, tokens []string, excludeIDs []uuid.UUID, limit int) ([]model.Post, error)

	// GetPreviousPublished returns the newest published post strictly
	// older than createdAt, or ErrPostNotFound.
	GetPreviousPublished(ctx context.Context, createdAt time.Time) (*model.Post, error)

	// GetNextPublished returns the oldest published post strictly newer
	// than createdAt, or ErrPostNotFound.
	GetNextPublished(ctx context.Context, createdAt time.Time) (*model.Post, error)

	// IncrementViews bumps the view counter of a post
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
