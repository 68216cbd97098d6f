package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maheshrc27/brandpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyticsRepo struct {
	aggregates map[string]*models.SentimentDay
	upserts    []*models.SentimentDay
	rows       []*models.SentimentDay
}

func dayKey(businessID int64, date time.Time) string {
	return date.UTC().Format("2006-01-02")
}

func (r *fakeAnalyticsRepo) AggregateDay(ctx context.Context, businessID int64, date time.Time) (*models.SentimentDay, error) {
	if d, ok := r.aggregates[dayKey(businessID, date)]; ok {
		cp := *d
		return &cp, nil
	}
	return &models.SentimentDay{BusinessID: businessID, Date: date}, nil
}

func (r *fakeAnalyticsRepo) Upsert(ctx context.Context, day *models.SentimentDay) error {
	r.upserts = append(r.upserts, day)
	return nil
}

func (r *fakeAnalyticsRepo) ListRange(ctx context.Context, businessID int64, from, to time.Time) ([]*models.SentimentDay, error) {
	return r.rows, nil
}

func TestRecomputeDay_UpsertsAggregate(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeAnalyticsRepo{
		aggregates: map[string]*models.SentimentDay{
			dayKey(1, date): {
				BusinessID:    1,
				Date:          date,
				PositiveCount: 3,
				NegativeCount: 1,
				NeutralCount:  2,
				AverageScore:  6.5,
				TotalMentions: 6,
			},
		},
	}

	svc := NewAnalyticsService(repo)
	require.NoError(t, svc.RecomputeDay(context.Background(), 1, date))

	require.Len(t, repo.upserts, 1)
	assert.Equal(t, 6, repo.upserts[0].TotalMentions)
	assert.Equal(t, 6.5, repo.upserts[0].AverageScore)
}

func TestOverview_WeightedAverage(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		rows: []*models.SentimentDay{
			{PositiveCount: 4, TotalMentions: 4, AverageScore: 8},
			{NegativeCount: 1, TotalMentions: 1, AverageScore: 2},
		},
	}

	svc := NewAnalyticsService(repo)
	out, err := svc.Overview(context.Background(), 1, 7)
	require.NoError(t, err)

	assert.Equal(t, 5, out.TotalMentions)
	assert.Equal(t, 4, out.PositiveCount)
	assert.Equal(t, 1, out.NegativeCount)
	// (8*4 + 2*1) / 5
	assert.InDelta(t, 6.8, out.AverageScore, 0.001)
}

func TestOverview_NoDataYieldsZeroes(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{})

	out, err := svc.Overview(context.Background(), 1, 7)
	require.NoError(t, err)

	assert.Zero(t, out.TotalMentions)
	assert.Zero(t, out.AverageScore)
}

func TestRange_EndBeforeStartRejected(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{})

	to := time.Now()
	_, err := svc.Range(context.Background(), 1, to, to.AddDate(0, 0, -1))
	assert.True(t, errors.Is(err, ErrValidation))
}
