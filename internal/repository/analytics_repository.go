package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/maheshrc27/brandpulse/internal/models"
)

type AnalyticsRepository interface {
	AggregateDay(ctx context.Context, businessID int64, date time.Time) (*models.SentimentDay, error)
	Upsert(ctx context.Context, day *models.SentimentDay) error
	ListRange(ctx context.Context, businessID int64, from, to time.Time) ([]*models.SentimentDay, error)
}

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// AggregateDay computes the exact rollup over analyzed mentions whose
// posted_at falls on the given UTC date.
func (r *analyticsRepository) AggregateDay(ctx context.Context, businessID int64, date time.Time) (*models.SentimentDay, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE sentiment_label = 'positive'),
			COUNT(*) FILTER (WHERE sentiment_label = 'negative'),
			COUNT(*) FILTER (WHERE sentiment_label = 'neutral'),
			COALESCE(AVG(sentiment_score), 0),
			COUNT(*)
		FROM mentions
		WHERE business_id = $1
		  AND sentiment_score IS NOT NULL
		  AND posted_at >= $2 AND posted_at < $3
	`

	day := models.SentimentDay{BusinessID: businessID, Date: dayStart}
	err := r.db.QueryRowContext(ctx, query, businessID, dayStart, dayEnd).Scan(
		&day.PositiveCount, &day.NegativeCount, &day.NeutralCount, &day.AverageScore, &day.TotalMentions)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return &day, nil
}

func (r *analyticsRepository) Upsert(ctx context.Context, day *models.SentimentDay) error {
	query := `
		INSERT INTO sentiment_days (business_id, date, positive_count, negative_count, neutral_count, average_score, total_mentions, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (business_id, date) DO UPDATE
		SET positive_count = EXCLUDED.positive_count,
			negative_count = EXCLUDED.negative_count,
			neutral_count = EXCLUDED.neutral_count,
			average_score = EXCLUDED.average_score,
			total_mentions = EXCLUDED.total_mentions,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, day.BusinessID, day.Date, day.PositiveCount,
		day.NegativeCount, day.NeutralCount, day.AverageScore, day.TotalMentions, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *analyticsRepository) ListRange(ctx context.Context, businessID int64, from, to time.Time) ([]*models.SentimentDay, error) {
	query := `
		SELECT business_id, date, positive_count, negative_count, neutral_count, average_score, total_mentions, updated_at
		FROM sentiment_days
		WHERE business_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := r.db.QueryContext(ctx, query, businessID, from, to)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var days []*models.SentimentDay
	for rows.Next() {
		var day models.SentimentDay
		err := rows.Scan(&day.BusinessID, &day.Date, &day.PositiveCount, &day.NegativeCount,
			&day.NeutralCount, &day.AverageScore, &day.TotalMentions, &day.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		days = append(days, &day)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return days, nil
}
