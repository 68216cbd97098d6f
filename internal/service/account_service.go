package service

import (
	"context"
	"fmt"

	"github.com/maheshrc27/brandpulse/internal/models"
	"github.com/maheshrc27/brandpulse/internal/repository"
)

type AccountService interface {
	List(ctx context.Context, businessID int64) ([]*models.SocialAccount, error)
	Disconnect(ctx context.Context, businessID, accountID int64) error
}

type accountService struct {
	sa repository.SocialAccountRepository
}

func NewAccountService(sa repository.SocialAccountRepository) AccountService {
	return &accountService{sa: sa}
}

func (s *accountService) List(ctx context.Context, businessID int64) ([]*models.SocialAccount, error) {
	return s.sa.ListByBusinessID(ctx, businessID)
}

// Disconnect deactivates the account; mention history for it is kept.
func (s *accountService) Disconnect(ctx context.Context, businessID, accountID int64) error {
	if accountID == 0 {
		return fmt.Errorf("%w: account id is required", ErrValidation)
	}

	owned, err := s.sa.CheckByBusinessID(ctx, accountID, businessID)
	if err != nil {
		return err
	}
	if !owned {
		return fmt.Errorf("social account %d: %w", accountID, ErrNotFound)
	}

	return s.sa.Deactivate(ctx, accountID)
}
