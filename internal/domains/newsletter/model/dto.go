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

// SubscribeRequest is the payload for newsletter subscription
type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

// Validate validates the subscribe request. Both the structural check
// (required, length) and the syntax check run before any store access.
func (r SubscribeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			validation.Length(3, 254),
			is.Email.Error("enter a valid email address"),
		),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// SubscriptionResponse is returned when a new subscription is created
type SubscriptionResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
	IsActive     bool      `json:"is_active"`
}

// SubscribeResult carries the reconciliation outcome. Exactly one of
// Subscription (new record) or Message (existing record) is set.
type SubscribeResult struct {
	Status       string
	Subscription *SubscriptionResponse
	Message      string
}

// Reconciliation outcomes
const (
	StatusNew               = "new"
	StatusAlreadySubscribed = "already_subscribed"
	StatusReactivated       = "reactivated"
)

func ToSubscriptionResponse(s *Subscription) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:           s.ID,
		Email:        s.Email,
		SubscribedAt: s.SubscribedAt,
		IsActive:     s.IsActive,
	}
}
