package models

import (
	"database/sql"
	"time"
)

type Mention struct {
	ID                 int64           `db:"id" json:"id"`
	BusinessID         int64           `db:"business_id" json:"business_id"`
	SocialAccountID    int64           `db:"social_account_id" json:"social_account_id"`
	Platform           string          `db:"platform" json:"platform"`
	Content            string          `db:"content" json:"content"`
	Author             string          `db:"author" json:"author"`
	AuthorHandle       string          `db:"author_handle" json:"author_handle,omitempty"`
	PostURL            string          `db:"post_url" json:"post_url,omitempty"`
	PostedAt           time.Time       `db:"posted_at" json:"posted_at"`
	SentimentScore     sql.NullFloat64 `db:"sentiment_score" json:"sentiment_score,omitempty"`
	SentimentLabel     sql.NullString  `db:"sentiment_label" json:"sentiment_label,omitempty"`
	SentimentReasoning sql.NullString  `db:"sentiment_reasoning" json:"sentiment_reasoning,omitempty"`
	EngagementCount    int             `db:"engagement_count" json:"engagement_count"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
}

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Analyzed reports whether sentiment has been attached. Sentiment fields
// are written once and never recomputed.
func (m *Mention) Analyzed() bool {
	return m.SentimentScore.Valid
}
