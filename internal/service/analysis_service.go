package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/brandpulse/internal/ai"
	"github.com/maheshrc27/brandpulse/internal/models"
	"github.com/maheshrc27/brandpulse/internal/repository"
	"github.com/maheshrc27/brandpulse/internal/transfer"
)

const DefaultBatchSize = 10

// SentimentClassifier is the one call the orchestrator needs from the AI
// layer.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (*ai.SentimentResult, error)
}

type AnalysisService interface {
	AnalyzeByIDs(ctx context.Context, businessID int64, mentionIDs []int64) (*transfer.AnalyzeResult, error)
	AnalyzeText(ctx context.Context, text string) (*ai.SentimentResult, error)
	AnalyzeBatch(ctx context.Context, businessID int64, batchSize int) (*transfer.AnalyzeResult, error)
}

type analysisService struct {
	mr         repository.MentionRepository
	analytics  AnalyticsService
	classifier SentimentClassifier
	pacing     time.Duration
}

func NewAnalysisService(mr repository.MentionRepository, analytics AnalyticsService, classifier SentimentClassifier, pacing time.Duration) AnalysisService {
	return &analysisService{
		mr:         mr,
		analytics:  analytics,
		classifier: classifier,
		pacing:     pacing,
	}
}

// analyzeOne classifies a single unanalyzed mention, persists the result
// and recomputes the analytics day for the mention's posted_at date.
func (s *analysisService) analyzeOne(ctx context.Context, m *models.Mention) transfer.MentionOutcome {
	result, err := s.classifier.Classify(ctx, m.Content)
	if err != nil {
		slog.Info(fmt.Sprintf("classify mention %d: %v", m.ID, err))
		return transfer.MentionOutcome{MentionID: m.ID, Status: transfer.OutcomeFailed, Error: err.Error()}
	}

	if err := s.mr.SetSentiment(ctx, m.ID, result.Score, result.Label, result.Reasoning); err != nil {
		return transfer.MentionOutcome{MentionID: m.ID, Status: transfer.OutcomeFailed, Error: err.Error()}
	}

	if err := s.analytics.RecomputeDay(ctx, m.BusinessID, m.PostedAt); err != nil {
		slog.Info(fmt.Sprintf("recompute analytics for mention %d: %v", m.ID, err))
	}

	return transfer.MentionOutcome{
		MentionID: m.ID,
		Status:    transfer.OutcomeAnalyzed,
		Score:     result.Score,
		Label:     result.Label,
		Reasoning: result.Reasoning,
	}
}

func cachedOutcome(m *models.Mention) transfer.MentionOutcome {
	return transfer.MentionOutcome{
		MentionID: m.ID,
		Status:    transfer.OutcomeCached,
		Score:     m.SentimentScore.Float64,
		Label:     m.SentimentLabel.String,
		Reasoning: m.SentimentReasoning.String,
	}
}

// AnalyzeByIDs scores the listed mentions sequentially. Mentions already
// carrying sentiment come back as cache hits without touching the
// classifier; sentiment is never recomputed.
func (s *analysisService) AnalyzeByIDs(ctx context.Context, businessID int64, mentionIDs []int64) (*transfer.AnalyzeResult, error) {
	if len(mentionIDs) == 0 {
		return nil, fmt.Errorf("%w: no mention ids", ErrValidation)
	}

	var result transfer.AnalyzeResult
	classified := false

	for _, id := range mentionIDs {
		owned, err := s.mr.CheckByBusinessID(ctx, id, businessID)
		if err != nil {
			return nil, err
		}
		if !owned {
			result.Items = append(result.Items, transfer.MentionOutcome{
				MentionID: id, Status: transfer.OutcomeFailed, Error: "mention not found",
			})
			result.Summary.Failed++
			continue
		}

		m, err := s.mr.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if m.Analyzed() {
			result.Items = append(result.Items, cachedOutcome(m))
			result.Summary.Cached++
			continue
		}

		if classified {
			s.pause(ctx)
		}
		classified = true

		outcome := s.analyzeOne(ctx, m)
		result.Items = append(result.Items, outcome)
		if outcome.Status == transfer.OutcomeFailed {
			result.Summary.Failed++
		} else {
			result.Summary.Analyzed++
		}
	}

	remaining, err := s.mr.CountUnanalyzed(ctx, businessID)
	if err != nil {
		return nil, err
	}
	result.Summary.Remaining = remaining

	return &result, nil
}

// AnalyzeText scores an ad-hoc string without persisting anything.
func (s *analysisService) AnalyzeText(ctx context.Context, text string) (*ai.SentimentResult, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text is empty", ErrValidation)
	}
	return s.classifier.Classify(ctx, text)
}

// AnalyzeBatch drains up to batchSize unanalyzed mentions in store order.
// Items fail independently; a classifier error on one mention never aborts
// the batch.
func (s *analysisService) AnalyzeBatch(ctx context.Context, businessID int64, batchSize int) (*transfer.AnalyzeResult, error) {
	if batchSize <= 0 || batchSize > DefaultBatchSize {
		batchSize = DefaultBatchSize
	}

	mentions, err := s.mr.ListUnanalyzed(ctx, businessID, batchSize)
	if err != nil {
		return nil, err
	}

	var result transfer.AnalyzeResult
	for i, m := range mentions {
		if i > 0 {
			s.pause(ctx)
		}

		outcome := s.analyzeOne(ctx, m)
		result.Items = append(result.Items, outcome)
		if outcome.Status == transfer.OutcomeFailed {
			result.Summary.Failed++
		} else {
			result.Summary.Analyzed++
		}
	}

	remaining, err := s.mr.CountUnanalyzed(ctx, businessID)
	if err != nil {
		return nil, err
	}
	result.Summary.Remaining = remaining

	return &result, nil
}

// pause spaces consecutive classifier calls so a batch stays under the
// upstream rate limit. Sequential on purpose; throughput is traded away.
func (s *analysisService) pause(ctx context.Context) {
	if s.pacing <= 0 {
		return
	}
	select {
	case <-time.After(s.pacing):
	case <-ctx.Done():
	}
}
