package model

import (
	"time"

	"github.com/google/uuid"
)

// Subscription represents a newsletter subscription record
type Subscription struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	SubscribedAt time.Time `json:"subscribed_at" db:"subscribed_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
