package models

import (
	"database/sql"
	"time"
)

type ScheduledPost struct {
	ID              int64          `db:"id" json:"id"`
	BusinessID      int64          `db:"business_id" json:"business_id"`
	SocialAccountID int64          `db:"social_account_id" json:"social_account_id"`
	Platform        string         `db:"platform" json:"platform"`
	Content         string         `db:"content" json:"content"`
	Hashtags        []string       `db:"hashtags" json:"hashtags"`
	ImageURL        string         `db:"image_url" json:"image_url,omitempty"`
	ScheduledTime   time.Time      `db:"scheduled_time" json:"scheduled_time"`
	Status          string         `db:"status" json:"status"`
	PublishedAt     sql.NullTime   `db:"published_at" json:"published_at,omitempty"`
	ErrorMessage    sql.NullString `db:"error_message" json:"error_message,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

const (
	ScheduleStatusScheduled = "scheduled"
	ScheduleStatusPublished = "published"
	ScheduleStatusFailed    = "failed"
	ScheduleStatusCancelled = "cancelled"
)
