package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/maheshrc27/brandpulse/internal/models"
)

type SocialAccountRepository interface {
	Create(ctx context.Context, tx *sql.Tx, sa *models.SocialAccount) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.SocialAccount, error)
	ListByBusinessID(ctx context.Context, businessID int64) ([]*models.SocialAccount, error)
	ListActive(ctx context.Context) ([]*models.SocialAccount, error)
	CheckByBusinessID(ctx context.Context, accountID, businessID int64) (bool, error)
	Deactivate(ctx context.Context, id int64) error
	DeactivateExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type socialAccountRepository struct {
	db *sql.DB
}

func NewSocialAccountRepository(db *sql.DB) SocialAccountRepository {
	return &socialAccountRepository{db: db}
}

const socialAccountColumns = `id, business_id, platform, account_id, account_name,
	access_token, refresh_token, token_expires_at, is_active, created_at, updated_at`

func (r *socialAccountRepository) Create(ctx context.Context, tx *sql.Tx, sa *models.SocialAccount) (int64, error) {
	var err error
	var id int64

	insertQuery := `
		INSERT INTO social_accounts(business_id, platform, account_id, account_name,
			access_token, refresh_token, token_expires_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	if tx != nil {
		err = tx.QueryRowContext(ctx, insertQuery, sa.BusinessID, sa.Platform, sa.AccountID,
			sa.AccountName, sa.AccessToken, sa.RefreshToken, sa.TokenExpiresAt, sa.IsActive).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, insertQuery, sa.BusinessID, sa.Platform, sa.AccountID,
			sa.AccountName, sa.AccessToken, sa.RefreshToken, sa.TokenExpiresAt, sa.IsActive).Scan(&id)
	}

	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *socialAccountRepository) GetByID(ctx context.Context, id int64) (*models.SocialAccount, error) {
	query := `SELECT ` + socialAccountColumns + ` FROM social_accounts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var sa models.SocialAccount
	err := row.Scan(&sa.ID, &sa.BusinessID, &sa.Platform, &sa.AccountID, &sa.AccountName,
		&sa.AccessToken, &sa.RefreshToken, &sa.TokenExpiresAt, &sa.IsActive, &sa.CreatedAt, &sa.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &sa, nil
}

func (r *socialAccountRepository) listQuery(ctx context.Context, query string, args ...interface{}) ([]*models.SocialAccount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.SocialAccount
	for rows.Next() {
		var sa models.SocialAccount
		err := rows.Scan(&sa.ID, &sa.BusinessID, &sa.Platform, &sa.AccountID, &sa.AccountName,
			&sa.AccessToken, &sa.RefreshToken, &sa.TokenExpiresAt, &sa.IsActive, &sa.CreatedAt, &sa.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		accounts = append(accounts, &sa)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return accounts, nil
}

func (r *socialAccountRepository) ListByBusinessID(ctx context.Context, businessID int64) ([]*models.SocialAccount, error) {
	query := `SELECT ` + socialAccountColumns + ` FROM social_accounts WHERE business_id = $1`
	return r.listQuery(ctx, query, businessID)
}

func (r *socialAccountRepository) ListActive(ctx context.Context) ([]*models.SocialAccount, error) {
	query := `SELECT ` + socialAccountColumns + ` FROM social_accounts WHERE is_active = TRUE`
	return r.listQuery(ctx, query)
}

func (r *socialAccountRepository) CheckByBusinessID(ctx context.Context, accountID, businessID int64) (bool, error) {
	query := `SELECT 1 FROM social_accounts WHERE id = $1 AND business_id = $2`

	var result int
	err := r.db.QueryRowContext(ctx, query, accountID, businessID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}

	return result == 1, nil
}

// Deactivate flips is_active instead of deleting so disconnects never
// cascade into mention history.
func (r *socialAccountRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE social_accounts SET is_active = FALSE, updated_at = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *socialAccountRepository) DeactivateExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE social_accounts
		SET is_active = FALSE, updated_at = $1
		WHERE is_active = TRUE
		  AND token_expires_at IS NOT NULL
		  AND token_expires_at > '0001-01-01'
		  AND token_expires_at < $2
	`
	result, err := r.db.ExecContext(ctx, query, time.Now(), cutoff)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return affected, nil
}
