package service

import (
	"context"

	"github.com/google/uuid"

	"newsroom-backend/internal/domains/comment/model"
)

// Caller carries the (optional) authenticated identity of the requester,
// as extracted from the bearer token by the OptionalAuth middleware.
type Caller struct {
	UserID   *uuid.UUID
	Username string
}

type ServiceInterface interface {
	// CreateComment creates a comment or reply. The post must resolve;
	// a given parent must belong to the same post.
	CreateComment(ctx context.Context, caller Caller, req model.CreateCommentRequest) (*model.CommentNode, error)

	// GetCommentTree returns the full nested tree of approved comments
	// for a post, newest-first at every depth.
	GetCommentTree(ctx context.Context, postID uuid.UUID) ([]model.CommentNode, error)

	// ListComments returns a page of top-level approved comments with
	// their nested replies, plus the total top-level count.
	ListComments(ctx context.Context, postID uuid.UUID, req model.ListCommentsRequest) ([]model.CommentNode, int, error)
}
