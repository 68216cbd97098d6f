package models

import "time"

// SentimentDay is the derived per-day rollup of analyzed mentions. One row
// per (business_id, date), always recomputed in full from the mention rows.
type SentimentDay struct {
	BusinessID    int64     `db:"business_id" json:"business_id"`
	Date          time.Time `db:"date" json:"date"`
	PositiveCount int       `db:"positive_count" json:"positive_count"`
	NegativeCount int       `db:"negative_count" json:"negative_count"`
	NeutralCount  int       `db:"neutral_count" json:"neutral_count"`
	AverageScore  float64   `db:"average_score" json:"average_score"`
	TotalMentions int       `db:"total_mentions" json:"total_mentions"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
