package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateCommentRequest creates a comment or a reply (when Parent is set).
// Name and Email identify anonymous commenters; authenticated callers are
// recorded as the author regardless.
type CreateCommentRequest struct {
	PostID  uuid.UUID  `json:"post" binding:"required"`
	Parent  *uuid.UUID `json:"parent"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Content string     `json:"content" binding:"required"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 2000),
		),
		validation.Field(&r.Name, validation.Length(0, 100)),
		validation.Field(&r.Email,
			validation.When(r.Email != "",
				is.Email.Error("invalid email format"),
			),
		),
	)
}

// ListCommentsRequest paginates top-level comments of a post
type ListCommentsRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

func (r *ListCommentsRequest) Validate() error {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 || r.PageSize > MaxPageSize {
		r.PageSize = DefaultPageSize
	}
	return nil
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// CommentNode is one serialized comment with its approved replies nested.
// Contact info is never exposed: the email only appears masked inside
// DisplayName.
type CommentNode struct {
	ID          uuid.UUID     `json:"id"`
	PostID      uuid.UUID     `json:"post"`
	AuthorID    *uuid.UUID    `json:"author"`
	Name        string        `json:"name"`
	DisplayName string        `json:"display_name"`
	Content     string        `json:"content"`
	CreatedAt   time.Time     `json:"created_at"`
	Replies     []CommentNode `json:"replies"`
}

// ToCommentNode serializes a single comment with empty replies
func ToCommentNode(c *Comment) CommentNode {
	return CommentNode{
		ID:          c.ID,
		PostID:      c.PostID,
		AuthorID:    c.AuthorID,
		Name:        c.Name,
		DisplayName: DisplayName(c.Identity()),
		Content:     c.Content,
		CreatedAt:   c.CreatedAt,
		Replies:     []CommentNode{},
	}
}
