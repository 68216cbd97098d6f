package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/brandpulse/internal/models"
	"github.com/maheshrc27/brandpulse/internal/repository"
)

type UserService interface {
	GetUserInfo(ctx context.Context, id int64) (*models.User, *models.Business, error)
	BusinessID(ctx context.Context, userID int64) (int64, error)
}

type userService struct {
	u repository.UserRepository
	b repository.BusinessRepository
}

func NewUserService(u repository.UserRepository, b repository.BusinessRepository) UserService {
	return &userService{
		u: u,
		b: b,
	}
}

func (s *userService) GetUserInfo(ctx context.Context, id int64) (*models.User, *models.Business, error) {
	user, isExist, err := s.u.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !isExist {
		slog.Info("user not found")
		return nil, nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	business, _, err := s.b.GetByUserID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return user, business, nil
}

// BusinessID resolves the tenant for an authenticated user. All scoped
// queries go through this id, never a caller-supplied one.
func (s *userService) BusinessID(ctx context.Context, userID int64) (int64, error) {
	business, isExist, err := s.b.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !isExist {
		return 0, fmt.Errorf("business for user %d: %w", userID, ErrNotFound)
	}
	return business.ID, nil
}
