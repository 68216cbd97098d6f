package models

import (
	"database/sql"
	"time"
)

type GeneratedPost struct {
	ID                  int64         `db:"id" json:"id"`
	BusinessID          int64         `db:"business_id" json:"business_id"`
	Platform            string        `db:"platform" json:"platform"`
	Content             string        `db:"content" json:"content"`
	Hashtags            []string      `db:"hashtags" json:"hashtags"`
	CTA                 string        `db:"cta" json:"cta,omitempty"`
	ImagePrompt         string        `db:"image_prompt" json:"image_prompt,omitempty"`
	BestTimeToPost      string        `db:"best_time_to_post" json:"best_time_to_post"`
	EstimatedEngagement string        `db:"estimated_engagement" json:"estimated_engagement"`
	Status              string        `db:"status" json:"status"`
	ScheduledPostID     sql.NullInt64 `db:"scheduled_post_id" json:"scheduled_post_id,omitempty"`
	GeneratedAt         time.Time     `db:"generated_at" json:"generated_at"`
}

const (
	GeneratedStatusDraft     = "draft"
	GeneratedStatusScheduled = "scheduled"
	GeneratedStatusPublished = "published"

	EngagementHigh   = "high"
	EngagementMedium = "medium"
	EngagementLow    = "low"
)
