package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/maheshrc27/brandpulse/internal/models"
)

type MentionRepository interface {
	Create(ctx context.Context, tx *sql.Tx, m *models.Mention) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Mention, error)
	Exists(ctx context.Context, businessID, accountID int64, content, author string, postedAt time.Time) (bool, error)
	ListByBusinessID(ctx context.Context, businessID int64, label string, limit, offset int) ([]*models.Mention, error)
	ListUnanalyzed(ctx context.Context, businessID int64, limit int) ([]*models.Mention, error)
	CountUnanalyzed(ctx context.Context, businessID int64) (int, error)
	SetSentiment(ctx context.Context, id int64, score float64, label, reasoning string) error
	CheckByBusinessID(ctx context.Context, mentionID, businessID int64) (bool, error)
}

type mentionRepository struct {
	db *sql.DB
}

func NewMentionRepository(db *sql.DB) MentionRepository {
	return &mentionRepository{db: db}
}

const mentionColumns = `id, business_id, social_account_id, platform, content, author,
	author_handle, post_url, posted_at, sentiment_score, sentiment_label,
	sentiment_reasoning, engagement_count, created_at`

func scanMention(scan func(dest ...interface{}) error) (*models.Mention, error) {
	var m models.Mention
	err := scan(&m.ID, &m.BusinessID, &m.SocialAccountID, &m.Platform, &m.Content, &m.Author,
		&m.AuthorHandle, &m.PostURL, &m.PostedAt, &m.SentimentScore, &m.SentimentLabel,
		&m.SentimentReasoning, &m.EngagementCount, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mentionRepository) Create(ctx context.Context, tx *sql.Tx, m *models.Mention) (int64, error) {
	query := `
		INSERT INTO mentions (business_id, social_account_id, platform, content, author,
			author_handle, post_url, posted_at, engagement_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var err error
	var id int64

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, m.BusinessID, m.SocialAccountID, m.Platform, m.Content,
			m.Author, m.AuthorHandle, m.PostURL, m.PostedAt, m.EngagementCount).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, m.BusinessID, m.SocialAccountID, m.Platform, m.Content,
			m.Author, m.AuthorHandle, m.PostURL, m.PostedAt, m.EngagementCount).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *mentionRepository) GetByID(ctx context.Context, id int64) (*models.Mention, error) {
	query := `SELECT ` + mentionColumns + ` FROM mentions WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	m, err := scanMention(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return m, nil
}

// Exists performs the dedup lookup. Check-then-insert is not atomic against
// a concurrent identical ingestion.
func (r *mentionRepository) Exists(ctx context.Context, businessID, accountID int64, content, author string, postedAt time.Time) (bool, error) {
	query := `
		SELECT 1 FROM mentions
		WHERE business_id = $1 AND social_account_id = $2 AND content = $3 AND author = $4 AND posted_at = $5
	`

	var result int
	err := r.db.QueryRowContext(ctx, query, businessID, accountID, content, author, postedAt).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}
	return result == 1, nil
}

func (r *mentionRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Mention, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var mentions []*models.Mention
	for rows.Next() {
		m, err := scanMention(rows.Scan)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		mentions = append(mentions, m)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return mentions, nil
}

func (r *mentionRepository) ListByBusinessID(ctx context.Context, businessID int64, label string, limit, offset int) ([]*models.Mention, error) {
	query := `SELECT ` + mentionColumns + ` FROM mentions WHERE business_id = $1`
	args := []interface{}{businessID}

	if label != "" {
		query += ` AND sentiment_label = $2 ORDER BY posted_at DESC LIMIT $3 OFFSET $4`
		args = append(args, label, limit, offset)
	} else {
		query += ` ORDER BY posted_at DESC LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}

	return r.list(ctx, query, args...)
}

func (r *mentionRepository) ListUnanalyzed(ctx context.Context, businessID int64, limit int) ([]*models.Mention, error) {
	query := `SELECT ` + mentionColumns + ` FROM mentions
		WHERE business_id = $1 AND sentiment_score IS NULL
		ORDER BY id
		LIMIT $2`
	return r.list(ctx, query, businessID, limit)
}

func (r *mentionRepository) CountUnanalyzed(ctx context.Context, businessID int64) (int, error) {
	query := `SELECT COUNT(*) FROM mentions WHERE business_id = $1 AND sentiment_score IS NULL`

	var count int
	err := r.db.QueryRowContext(ctx, query, businessID).Scan(&count)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}

// SetSentiment attaches sentiment once; rows that already carry a score are
// left untouched.
func (r *mentionRepository) SetSentiment(ctx context.Context, id int64, score float64, label, reasoning string) error {
	query := `
		UPDATE mentions
		SET sentiment_score = $1,
			sentiment_label = $2,
			sentiment_reasoning = $3
		WHERE id = $4 AND sentiment_score IS NULL
	`
	_, err := r.db.ExecContext(ctx, query, score, label, reasoning, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *mentionRepository) CheckByBusinessID(ctx context.Context, mentionID, businessID int64) (bool, error) {
	query := `SELECT 1 FROM mentions WHERE id = $1 AND business_id = $2`

	var result int
	err := r.db.QueryRowContext(ctx, query, mentionID, businessID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}
	return result == 1, nil
}
