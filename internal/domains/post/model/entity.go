package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CategoryInfo is the denormalized category carried on every post row.
// Kept local to avoid importing the category domain into post queries.
type CategoryInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// Post is a single article. Only posts with Status == StatusPublished are
// ever returned by public queries.
type Post struct {
	ID            uuid.UUID
	Title         string
	Slug          string
	Category      CategoryInfo
	Content       string
	Excerpt       string
	FeaturedImage *string
	Tags          string // free-text, comma-separated
	Status        string
	ViewsCount    int
	IsFeatured    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TagTokens splits the comma-separated tag field into normalized tokens:
// trimmed, lowercased, empties discarded.
func (p *Post) TagTokens() []string {
	if p.Tags == "" {
		return nil
	}

	parts := strings.Split(p.Tags, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens
}
