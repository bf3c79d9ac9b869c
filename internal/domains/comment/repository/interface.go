package repository

import (
	"context"

	"github.com/google/uuid"

	"newsroom-backend/internal/domains/comment/model"
)

// CommentRepository is the data access contract for comments.
// Comments are never deleted; moderation flips the approved flag outside
// this API.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// ListApprovedByPost returns every approved comment of a post,
	// newest-first. The tree is assembled in memory by the service.
	ListApprovedByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)

	// PostExists reports whether the post a comment is being attached to
	// resolves to an existing record.
	PostExists(ctx context.Context, postID uuid.UUID) (bool, error)
}
