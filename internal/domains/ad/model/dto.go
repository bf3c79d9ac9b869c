package model

import (
	"time"

	"github.com/google/uuid"
)

// AdResponse is the public shape of an ad
type AdResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	ImageURL     *string    `json:"image_url"`
	TargetURL    string     `json:"target_url"`
	Size         string     `json:"size"`
	CategoryID   *uuid.UUID `json:"category"`
	CategoryName *string    `json:"category_name"`
	IsActive     bool       `json:"is_active"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToAdResponses(ads []Ad) []AdResponse {
	responses := make([]AdResponse, 0, len(ads))
	for i := range ads {
		a := &ads[i]
		responses = append(responses, AdResponse{
			ID:           a.ID,
			Title:        a.Title,
			ImageURL:     a.ImageURL,
			TargetURL:    a.TargetURL,
			Size:         a.Size,
			CategoryID:   a.CategoryID,
			CategoryName: a.CategoryName,
			IsActive:     a.IsActive,
			DisplayOrder: a.DisplayOrder,
			CreatedAt:    a.CreatedAt,
			UpdatedAt:    a.UpdatedAt,
		})
	}
	return responses
}
