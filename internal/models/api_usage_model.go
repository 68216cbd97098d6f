package models

import "time"

// ApiUsage accumulates generation activity per business, bucketed by the
// calendar month of created_at.
type ApiUsage struct {
	ID             int64     `db:"id" json:"id"`
	BusinessID     int64     `db:"business_id" json:"business_id"`
	PostsGenerated int       `db:"posts_generated" json:"posts_generated"`
	ApiCalls       int       `db:"api_calls" json:"api_calls"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
