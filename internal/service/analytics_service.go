package service

import (
	"context"
	"fmt"
	"time"

	"github.com/maheshrc27/brandpulse/internal/models"
	"github.com/maheshrc27/brandpulse/internal/repository"
)

type AnalyticsService interface {
	RecomputeDay(ctx context.Context, businessID int64, date time.Time) error
	Range(ctx context.Context, businessID int64, from, to time.Time) ([]*models.SentimentDay, error)
	Overview(ctx context.Context, businessID int64, days int) (*OverviewResult, error)
}

type OverviewResult struct {
	TotalMentions int     `json:"total_mentions"`
	PositiveCount int     `json:"positive_count"`
	NegativeCount int     `json:"negative_count"`
	NeutralCount  int     `json:"neutral_count"`
	AverageScore  float64 `json:"average_score"`
}

type analyticsService struct {
	ar repository.AnalyticsRepository
}

func NewAnalyticsService(ar repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{ar: ar}
}

// RecomputeDay rebuilds the (business, date) rollup from scratch and
// upserts it. Full recomputation keeps the row consistent no matter what
// order sentiment updates arrive in.
func (s *analyticsService) RecomputeDay(ctx context.Context, businessID int64, date time.Time) error {
	day, err := s.ar.AggregateDay(ctx, businessID, date.UTC())
	if err != nil {
		return err
	}
	return s.ar.Upsert(ctx, day)
}

func (s *analyticsService) Range(ctx context.Context, businessID int64, from, to time.Time) ([]*models.SentimentDay, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before start", ErrValidation)
	}
	return s.ar.ListRange(ctx, businessID, from, to)
}

func (s *analyticsService) Overview(ctx context.Context, businessID int64, days int) (*OverviewResult, error) {
	if days <= 0 {
		days = 30
	}

	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -days+1)

	rows, err := s.ar.ListRange(ctx, businessID, from, to)
	if err != nil {
		return nil, err
	}

	var out OverviewResult
	var scoreSum float64
	for _, d := range rows {
		out.TotalMentions += d.TotalMentions
		out.PositiveCount += d.PositiveCount
		out.NegativeCount += d.NegativeCount
		out.NeutralCount += d.NeutralCount
		scoreSum += d.AverageScore * float64(d.TotalMentions)
	}
	if out.TotalMentions > 0 {
		out.AverageScore = scoreSum / float64(out.TotalMentions)
	}
	return &out, nil
}
