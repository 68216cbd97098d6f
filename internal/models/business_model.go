package models

import "time"

type Business struct {
	ID                   int64     `db:"id" json:"id"`
	UserID               int64     `db:"user_id" json:"user_id"`
	Name                 string    `db:"name" json:"name"`
	Industry             string    `db:"industry" json:"industry"`
	SubscriptionTier     string    `db:"subscription_tier" json:"subscription_tier"`
	SubscriptionStatus   string    `db:"subscription_status" json:"subscription_status"`
	StripeCustomerID     string    `db:"stripe_customer_id" json:"-"`
	StripeSubscriptionID string    `db:"stripe_subscription_id" json:"-"`
	PeriodStart          time.Time `db:"period_start" json:"period_start"`
	PeriodEnd            time.Time `db:"period_end" json:"period_end"`
	IsAdmin              bool      `db:"is_admin" json:"is_admin"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

const (
	TierStarter      = "starter"
	TierProfessional = "professional"

	SubscriptionActive   = "active"
	SubscriptionPastDue  = "past_due"
	SubscriptionCanceled = "canceled"
)

// Per-tier limits: generated posts per calendar month and rows allowed to
// sit in status=scheduled at any one time.
func TierPostLimit(tier string) int {
	if tier == TierProfessional {
		return 200
	}
	return 50
}

func TierScheduleLimit(tier string) int {
	if tier == TierProfessional {
		return 100
	}
	return 30
}
