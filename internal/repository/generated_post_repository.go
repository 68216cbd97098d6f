package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lib/pq"
	"github.com/maheshrc27/brandpulse/internal/models"
)

type GeneratedPostRepository interface {
	Create(ctx context.Context, tx *sql.Tx, post *models.GeneratedPost) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.GeneratedPost, error)
	ListByBusinessID(ctx context.Context, businessID int64, status string, limit, offset int) ([]*models.GeneratedPost, error)
	MarkScheduled(ctx context.Context, id, scheduledPostID int64) error
	UpdateStatusByScheduledPost(ctx context.Context, scheduledPostID int64, status string) error
	CheckByBusinessID(ctx context.Context, postID, businessID int64) (bool, error)
}

type generatedPostRepository struct {
	db *sql.DB
}

func NewGeneratedPostRepository(db *sql.DB) GeneratedPostRepository {
	return &generatedPostRepository{db: db}
}

const generatedPostColumns = `id, business_id, platform, content, hashtags, cta, image_prompt,
	best_time_to_post, estimated_engagement, status, scheduled_post_id, generated_at`

func scanGeneratedPost(scan func(dest ...interface{}) error) (*models.GeneratedPost, error) {
	var p models.GeneratedPost
	err := scan(&p.ID, &p.BusinessID, &p.Platform, &p.Content, pq.Array(&p.Hashtags), &p.CTA,
		&p.ImagePrompt, &p.BestTimeToPost, &p.EstimatedEngagement, &p.Status, &p.ScheduledPostID, &p.GeneratedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *generatedPostRepository) Create(ctx context.Context, tx *sql.Tx, post *models.GeneratedPost) (int64, error) {
	query := `
		INSERT INTO generated_posts (business_id, platform, content, hashtags, cta, image_prompt,
			best_time_to_post, estimated_engagement, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var err error
	var id int64

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, post.BusinessID, post.Platform, post.Content,
			pq.Array(post.Hashtags), post.CTA, post.ImagePrompt, post.BestTimeToPost,
			post.EstimatedEngagement, post.Status).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, post.BusinessID, post.Platform, post.Content,
			pq.Array(post.Hashtags), post.CTA, post.ImagePrompt, post.BestTimeToPost,
			post.EstimatedEngagement, post.Status).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *generatedPostRepository) GetByID(ctx context.Context, id int64) (*models.GeneratedPost, error) {
	query := `SELECT ` + generatedPostColumns + ` FROM generated_posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanGeneratedPost(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return p, nil
}

func (r *generatedPostRepository) ListByBusinessID(ctx context.Context, businessID int64, status string, limit, offset int) ([]*models.GeneratedPost, error) {
	query := `SELECT ` + generatedPostColumns + ` FROM generated_posts WHERE business_id = $1`
	args := []interface{}{businessID}

	if status != "" {
		query += ` AND status = $2 ORDER BY generated_at DESC LIMIT $3 OFFSET $4`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY generated_at DESC LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.GeneratedPost
	for rows.Next() {
		p, err := scanGeneratedPost(rows.Scan)
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

func (r *generatedPostRepository) MarkScheduled(ctx context.Context, id, scheduledPostID int64) error {
	query := `UPDATE generated_posts SET status = $1, scheduled_post_id = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, models.GeneratedStatusScheduled, scheduledPostID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *generatedPostRepository) UpdateStatusByScheduledPost(ctx context.Context, scheduledPostID int64, status string) error {
	query := `UPDATE generated_posts SET status = $1 WHERE scheduled_post_id = $2`
	_, err := r.db.ExecContext(ctx, query, status, scheduledPostID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *generatedPostRepository) CheckByBusinessID(ctx context.Context, postID, businessID int64) (bool, error) {
	query := `SELECT 1 FROM generated_posts WHERE id = $1 AND business_id = $2`

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
