package models

import (
	"time"
)

type SocialAccount struct {
	ID             int64     `db:"id" json:"id"`
	BusinessID     int64     `db:"business_id" json:"business_id"`
	Platform       string    `db:"platform" json:"platform"`
	AccountID      string    `db:"account_id" json:"account_id"`
	AccountName    string    `db:"account_name" json:"account_name"`
	AccessToken    string    `db:"access_token" json:"-"`
	RefreshToken   string    `db:"refresh_token" json:"-"`
	TokenExpiresAt time.Time `db:"token_expires_at" json:"token_expires_at"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

const (
	PlatformTwitter   = "twitter"
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformLinkedin  = "linkedin"
)

// TokenExpired reports whether the stored access token lapsed. A zero
// expiry means the platform issued a non-expiring token.
func (sa *SocialAccount) TokenExpired(now time.Time) bool {
	return !sa.TokenExpiresAt.IsZero() && sa.TokenExpiresAt.Before(now)
}
