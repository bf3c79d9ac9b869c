package model

import (
	"time"

	"github.com/google/uuid"
)

// Size categories with fixed pixel dimensions, plus custom
const (
	SizeMediumRectangle = "300x250"
	SizeWideSkyscraper  = "160x600"
	SizeLeaderboard     = "728x90"
	SizeMobileBanner    = "320x50"
	SizeCustom          = "custom"
)

// Ad is a display advertisement. An ad optionally targets a single
// category page; ads without a category run site-wide.
type Ad struct {
	ID           uuid.UUID
	Title        string
	ImageURL     *string
	TargetURL    string
	Size         string
	CategoryID   *uuid.UUID
	CategoryName *string
	IsActive     bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
