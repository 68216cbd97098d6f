package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/lib/pq"
	"github.com/maheshrc27/brandpulse/internal/models"
)

type ScheduledPostRepository interface {
	Create(ctx context.Context, tx *sql.Tx, post *models.ScheduledPost) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.ScheduledPost, error)
	ListByBusinessID(ctx context.Context, businessID int64, status string) ([]*models.ScheduledPost, error)
	CountScheduled(ctx context.Context, businessID int64) (int, error)
	Update(ctx context.Context, post *models.ScheduledPost) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	MarkPublished(ctx context.Context, id int64, publishedAt time.Time) error
	MarkFailed(ctx context.Context, id int64, errorMessage string) error
	CheckByBusinessID(ctx context.Context, postID, businessID int64) (bool, error)
}

type scheduledPostRepository struct {
	db *sql.DB
}

func NewScheduledPostRepository(db *sql.DB) ScheduledPostRepository {
	return &scheduledPostRepository{db: db}
}

const scheduledPostColumns = `id, business_id, social_account_id, platform, content, hashtags,
	image_url, scheduled_time, status, published_at, error_message, created_at`

func scanScheduledPost(scan func(dest ...interface{}) error) (*models.ScheduledPost, error) {
	var p models.ScheduledPost
	err := scan(&p.ID, &p.BusinessID, &p.SocialAccountID, &p.Platform, &p.Content, pq.Array(&p.Hashtags),
		&p.ImageURL, &p.ScheduledTime, &p.Status, &p.PublishedAt, &p.ErrorMessage, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *scheduledPostRepository) Create(ctx context.Context, tx *sql.Tx, post *models.ScheduledPost) (int64, error) {
	query := `
		INSERT INTO scheduled_posts (business_id, social_account_id, platform, content, hashtags,
			image_url, scheduled_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var err error
	var id int64

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, post.BusinessID, post.SocialAccountID, post.Platform,
			post.Content, pq.Array(post.Hashtags), post.ImageURL, post.ScheduledTime, post.Status).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, post.BusinessID, post.SocialAccountID, post.Platform,
			post.Content, pq.Array(post.Hashtags), post.ImageURL, post.ScheduledTime, post.Status).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *scheduledPostRepository) GetByID(ctx context.Context, id int64) (*models.ScheduledPost, error) {
	query := `SELECT ` + scheduledPostColumns + ` FROM scheduled_posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanScheduledPost(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return p, nil
}

func (r *scheduledPostRepository) ListByBusinessID(ctx context.Context, businessID int64, status string) ([]*models.ScheduledPost, error) {
	query := `SELECT ` + scheduledPostColumns + ` FROM scheduled_posts WHERE business_id = $1`
	args := []interface{}{businessID}

	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY scheduled_time`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.ScheduledPost
	for rows.Next() {
		p, err := scanScheduledPost(rows.Scan)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return posts, nil
}

func (r *scheduledPostRepository) CountScheduled(ctx context.Context, businessID int64) (int, error) {
	query := `SELECT COUNT(*) FROM scheduled_posts WHERE business_id = $1 AND status = $2`

	var count int
	err := r.db.QueryRowContext(ctx, query, businessID, models.ScheduleStatusScheduled).Scan(&count)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}

func (r *scheduledPostRepository) Update(ctx context.Context, post *models.ScheduledPost) error {
	query := `
		UPDATE scheduled_posts
		SET content = $1,
			hashtags = $2,
			image_url = $3,
			scheduled_time = $4
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query, post.Content, pq.Array(post.Hashtags), post.ImageURL, post.ScheduledTime, post.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *scheduledPostRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE scheduled_posts SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *scheduledPostRepository) MarkPublished(ctx context.Context, id int64, publishedAt time.Time) error {
	query := `UPDATE scheduled_posts SET status = $1, published_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, models.ScheduleStatusPublished, publishedAt, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *scheduledPostRepository) MarkFailed(ctx context.Context, id int64, errorMessage string) error {
	query := `UPDATE scheduled_posts SET status = $1, error_message = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, models.ScheduleStatusFailed, errorMessage, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *scheduledPostRepository) CheckByBusinessID(ctx context.Context, postID, businessID int64) (bool, error) {
	query := `SELECT 1 FROM scheduled_posts WHERE id = $1 AND business_id = $2`

	var result int
	err := r.db.QueryRowContext(ctx, query, postID, businessID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}
	return result == 1, nil
}
