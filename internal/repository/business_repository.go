package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/maheshrc27/brandpulse/internal/models"
)

type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Business, bool, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Business, bool, error)
	GetByStripeCustomer(ctx context.Context, customerID string) (*models.Business, bool, error)
	Create(ctx context.Context, tx *sql.Tx, b *models.Business) (int64, error)
	UpdateSubscription(ctx context.Context, b *models.Business) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type businessRepository struct {
	db *sql.DB
}

func NewBusinessRepository(db *sql.DB) BusinessRepository {
	return &businessRepository{db: db}
}

const businessColumns = `id, user_id, name, industry, subscription_tier, subscription_status,
	stripe_customer_id, stripe_subscription_id, period_start, period_end, is_admin, created_at, updated_at`

func (r *businessRepository) scanOne(row *sql.Row) (*models.Business, bool, error) {
	var b models.Business
	err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.Industry, &b.SubscriptionTier, &b.SubscriptionStatus,
		&b.StripeCustomerID, &b.StripeSubscriptionID, &b.PeriodStart, &b.PeriodEnd, &b.IsAdmin, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &b, true, nil
}

func (r *businessRepository) GetByID(ctx context.Context, id int64) (*models.Business, bool, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *businessRepository) GetByUserID(ctx context.Context, userID int64) (*models.Business, bool, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE user_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID))
}

func (r *businessRepository) GetByStripeCustomer(ctx context.Context, customerID string) (*models.Business, bool, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE stripe_customer_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, customerID))
}

func (r *businessRepository) Create(ctx context.Context, tx *sql.Tx, b *models.Business) (int64, error) {
	query := `
		INSERT INTO businesses (user_id, name, industry, subscription_tier, subscription_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var err error
	var id int64

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, b.UserID, b.Name, b.Industry, b.SubscriptionTier, b.SubscriptionStatus).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, b.UserID, b.Name, b.Industry, b.SubscriptionTier, b.SubscriptionStatus).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *businessRepository) UpdateSubscription(ctx context.Context, b *models.Business) error {
	query := `
		UPDATE businesses
		SET subscription_tier = $1,
			subscription_status = $2,
			stripe_customer_id = COALESCE(NULLIF($3, ''), stripe_customer_id),
			stripe_subscription_id = COALESCE(NULLIF($4, ''), stripe_subscription_id),
			period_start = $5,
			period_end = $6,
			updated_at = $7
		WHERE id = $8
	`
	_, err := r.db.ExecContext(ctx, query, b.SubscriptionTier, b.SubscriptionStatus,
		b.StripeCustomerID, b.StripeSubscriptionID, b.PeriodStart, b.PeriodEnd, time.Now(), b.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *businessRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE businesses SET subscription_status = $1, updated_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
