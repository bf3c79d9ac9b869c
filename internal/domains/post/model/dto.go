package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	commentmodel "newsroom-backend/internal/domains/comment/model"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// ListPostsRequest filters the public post listing
type ListPostsRequest struct {
	Category string `form:"category"`
	Featured *bool  `form:"is_featured"`
	Search   string `form:"search"`
	Ordering string `form:"ordering"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

func (r *ListPostsRequest) Validate() error {
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.Limit < 1 || r.Limit > MaxLimit {
		r.Limit = DefaultLimit
	}
	if r.Ordering == "" {
		r.Ordering = "-created_at"
	}

	return validation.ValidateStruct(r,
		validation.Field(&r.Ordering,
			validation.In("created_at", "-created_at", "views_count", "-views_count").
				Error("ordering must be one of created_at, -created_at, views_count, -views_count"),
		),
		validation.Field(&r.Search, validation.Length(0, 200)),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// PostSummary is the list-view shape of a post
type PostSummary struct {
	ID            uuid.UUID    `json:"id"`
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Category      CategoryInfo `json:"category"`
	Excerpt       string       `json:"excerpt"`
	FeaturedImage *string      `json:"featured_image"`
	CreatedAt     time.Time    `json:"created_at"`
	ViewsCount    int          `json:"views_count"`
	IsFeatured    bool         `json:"is_featured"`
}

// PostDetail is the detail-view shape, including the nested comment tree
type PostDetail struct {
	ID            uuid.UUID                  `json:"id"`
	Title         string                     `json:"title"`
	Slug          string                     `json:"slug"`
	Category      CategoryInfo               `json:"category"`
	Content       string                     `json:"content"`
	Excerpt       string                     `json:"excerpt"`
	FeaturedImage *string                    `json:"featured_image"`
	Tags          string                     `json:"tags"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
	ViewsCount    int                        `json:"views_count"`
	IsFeatured    bool                       `json:"is_featured"`
	Comments      []commentmodel.CommentNode `json:"comments"`
}

// AdjacentResponse holds the chronological neighbors of a post.
// Either side is null when no such post exists.
type AdjacentResponse struct {
	Previous *PostSummary `json:"previous"`
	Next     *PostSummary `json:"next"`
}

func ToPostSummary(p *Post) PostSummary {
	return PostSummary{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Category:      p.Category,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		CreatedAt:     p.CreatedAt,
		ViewsCount:    p.ViewsCount,
		IsFeatured:    p.IsFeatured,
	}
}

func ToPostSummaries(posts []Post) []PostSummary {
	summaries := make([]PostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, ToPostSummary(&posts[i]))
	}
	return summaries
}
