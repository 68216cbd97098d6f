package transfer

// AnalyzeRequest carries one of three mutually exclusive modes: a list of
// mention ids, an ad-hoc text, or a batch sweep over unanalyzed mentions.
type AnalyzeRequest struct {
	MentionIDs []int64 `json:"mention_ids,omitempty"`
	Text       string  `json:"text,omitempty"`
	BatchSize  int     `json:"batch_size,omitempty"`
}

const (
	OutcomeAnalyzed = "analyzed"
	OutcomeCached   = "cached"
	OutcomeFailed   = "failed"
)

type MentionOutcome struct {
	MentionID int64   `json:"mention_id"`
	Status    string  `json:"status"`
	Score     float64 `json:"score,omitempty"`
	Label     string  `json:"label,omitempty"`
	Reasoning string  `json:"reasoning,omitempty"`
	Error     string  `json:"error,omitempty"`
}

type AnalyzeSummary struct {
	Analyzed  int `json:"analyzed"`
	Cached    int `json:"cached"`
	Failed    int `json:"failed"`
	Remaining int `json:"remaining"`
}

type AnalyzeResult struct {
	Items   []MentionOutcome `json:"items"`
	Summary AnalyzeSummary   `json:"summary"`
}
