package model

import (
	"time"

	"github.com/google/uuid"
)

// Category groups posts into a site section. Many posts per category.
type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
}
