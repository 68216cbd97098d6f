package service

import (
	"context"
	"fmt"

	"github.com/maheshrc27/brandpulse/internal/models"
	"github.com/maheshrc27/brandpulse/internal/repository"
)

type MentionService interface {
	List(ctx context.Context, businessID int64, label string, limit, offset int) ([]*models.Mention, error)
	Get(ctx context.Context, businessID, mentionID int64) (*models.Mention, error)
}

type mentionService struct {
	mr repository.MentionRepository
}

func NewMentionService(mr repository.MentionRepository) MentionService {
	return &mentionService{mr: mr}
}

func (s *mentionService) List(ctx context.Context, businessID int64, label string, limit, offset int) ([]*models.Mention, error) {
	switch label {
	case "", models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
	default:
		return nil, fmt.Errorf("%w: unknown sentiment label %s", ErrValidation, label)
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return s.mr.ListByBusinessID(ctx, businessID, label, limit, offset)
}

func (s *mentionService) Get(ctx context.Context, businessID, mentionID int64) (*models.Mention, error) {
	m, err := s.mr.GetByID(ctx, mentionID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: mention %d", ErrNotFound, mentionID)
	}
	if m.BusinessID != businessID {
		return nil, fmt.Errorf("%w: mention %d", ErrAccessDenied, mentionID)
	}
	return m, nil
}
