package service

import (
	"context"
	"errors"

	"newsroom-backend/internal/domains/newsletter/model"
	"newsroom-backend/internal/domains/newsletter/repository"
)

type newsletterService struct {
	subscriptionRepo repository.RepositoryInterface
}

// NewNewsletterService creates a new newsletter service
func NewNewsletterService(subscriptionRepo repository.RepositoryInterface) ServiceInterface {
	return &newsletterService{
		subscriptionRepo: subscriptionRepo,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.SubscribeResult, error) {
	// Step 1: Validate before touching the store
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Case-insensitive lookup
	existing, err := s.subscriptionRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, model.ErrSubscriptionNotFound) {
		return nil, err
	}

	if existing != nil {
		return s.reconcileExisting(ctx, existing)
	}

	// Step 3: Create new subscription. A concurrent subscriber can win
	// the insert race, in which case the unique violation tells us the
	// record now exists and we reconcile against it instead.
	created, err := s.subscriptionRepo.Create(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			winner, lookupErr := s.subscriptionRepo.GetByEmail(ctx, req.Email)
			if lookupErr != nil {
				return nil, lookupErr
			}
			return s.reconcileExisting(ctx, winner)
		}
		return nil, err
	}

	return &model.SubscribeResult{
		Status:       model.StatusNew,
		Subscription: model.ToSubscriptionResponse(created),
	}, nil
}

func (s *newsletterService) reconcileExisting(ctx context.Context, existing *model.Subscription) (*model.SubscribeResult, error) {
	if existing.IsActive {
		return &model.SubscribeResult{
			Status:  model.StatusAlreadySubscribed,
			Message: "You are already subscribed to our newsletter!",
		}, nil
	}

	if _, err := s.subscriptionRepo.Reactivate(ctx, existing.ID); err != nil {
		return nil, err
	}

	return &model.SubscribeResult{
		Status:  model.StatusReactivated,
		Message: "Your subscription has been reactivated!",
	}, nil
}
