package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

type ApiUsageRepository interface {
	MonthlyPostsGenerated(ctx context.Context, businessID int64, month time.Time) (int, error)
	Record(ctx context.Context, tx *sql.Tx, businessID int64, postsGenerated, apiCalls int) error
}

type apiUsageRepository struct {
	db *sql.DB
}

func NewApiUsageRepository(db *sql.DB) ApiUsageRepository {
	return &apiUsageRepository{db: db}
}

func (r *apiUsageRepository) MonthlyPostsGenerated(ctx context.Context, businessID int64, month time.Time) (int, error) {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT COALESCE(SUM(posts_generated), 0)
		FROM api_usage
		WHERE business_id = $1 AND created_at >= $2 AND created_at < $3
	`

	var total int
	err := r.db.QueryRowContext(ctx, query, businessID, monthStart, monthEnd).Scan(&total)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return total, nil
}

func (r *apiUsageRepository) Record(ctx context.Context, tx *sql.Tx, businessID int64, postsGenerated, apiCalls int) error {
	query := `INSERT INTO api_usage (business_id, posts_generated, api_calls) VALUES ($1, $2, $3)`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, businessID, postsGenerated, apiCalls)
	} else {
		_, err = r.db.ExecContext(ctx, query, businessID, postsGenerated, apiCalls)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
