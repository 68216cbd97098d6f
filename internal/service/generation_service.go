package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/brandpulse/internal/ai"
	"github.com/maheshrc27/brandpulse/internal/models"
	"github.com/maheshrc27/brandpulse/internal/repository"
	"github.com/maheshrc27/brandpulse/internal/transfer"
)

const MaxPostsPerRequest = 14

// PostGenerator is the AI layer's batch content generation call.
type PostGenerator interface {
	GeneratePosts(ctx context.Context, spec ai.GenerationSpec) ([]ai.PostDraft, error)
}

type GenerationService interface {
	Generate(ctx context.Context, businessID int64, req *transfer.GenerateRequest) (*transfer.GenerateResult, error)
	List(ctx context.Context, businessID int64, status string, limit, offset int) ([]*models.GeneratedPost, error)
}

type generationService struct {
	db        *sql.DB
	gp        repository.GeneratedPostRepository
	br        repository.BusinessRepository
	usage     repository.ApiUsageRepository
	generator PostGenerator
}

func NewGenerationService(
	db *sql.DB,
	gp repository.GeneratedPostRepository,
	br repository.BusinessRepository,
	usage repository.ApiUsageRepository,
	generator PostGenerator) GenerationService {
	return &generationService{
		db:        db,
		gp:        gp,
		br:        br,
		usage:     usage,
		generator: generator,
	}
}

func validPlatform(platform string) bool {
	switch platform {
	case models.PlatformTwitter, models.PlatformInstagram, models.PlatformFacebook, models.PlatformLinkedin:
		return true
	}
	return false
}

// Generate checks the monthly quota before touching the AI endpoint, then
// persists the whole returned batch as drafts. Usage is incremented by the
// requested count, not the returned count.
func (s *generationService) Generate(ctx context.Context, businessID int64, req *transfer.GenerateRequest) (*transfer.GenerateResult, error) {
	if req == nil || req.Industry == "" {
		return nil, fmt.Errorf("%w: industry is required", ErrValidation)
	}
	if !validPlatform(req.Platform) {
		return nil, fmt.Errorf("%w: unknown platform %q", ErrValidation, req.Platform)
	}
	if req.Tone == "" {
		return nil, fmt.Errorf("%w: tone is required", ErrValidation)
	}
	if req.PostCount < 1 || req.PostCount > MaxPostsPerRequest {
		return nil, fmt.Errorf("%w: post_count must be between 1 and %d", ErrValidation, MaxPostsPerRequest)
	}

	business, isExist, err := s.br.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		return nil, fmt.Errorf("business %d: %w", businessID, ErrNotFound)
	}

	limit := models.TierPostLimit(business.SubscriptionTier)
	used, err := s.usage.MonthlyPostsGenerated(ctx, businessID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if used+req.PostCount > limit {
		return nil, fmt.Errorf("%w: %d of %d used this month", ErrQuotaExceeded, used, limit)
	}

	drafts, err := s.generator.GeneratePosts(ctx, ai.GenerationSpec{
		Industry:        req.Industry,
		Platform:        req.Platform,
		Tone:            req.Tone,
		PostCount:       req.PostCount,
		IncludeHashtags: req.IncludeHashtags,
		IncludeCTA:      req.IncludeCTA,
	})
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, d := range drafts {
		post := models.GeneratedPost{
			BusinessID:          businessID,
			Platform:            req.Platform,
			Content:             d.Content,
			Hashtags:            d.Hashtags,
			CTA:                 d.CTA,
			ImagePrompt:         d.ImagePrompt,
			BestTimeToPost:      d.BestTimeToPost,
			EstimatedEngagement: d.EstimatedEngagement,
			Status:              models.GeneratedStatusDraft,
		}
		if _, err = s.gp.Create(ctx, tx, &post); err != nil {
			return nil, fmt.Errorf("error saving generated post: %w", err)
		}
	}

	if err = s.usage.Record(ctx, tx, businessID, req.PostCount, 1); err != nil {
		return nil, fmt.Errorf("error recording usage: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if len(drafts) != req.PostCount {
		slog.Info(fmt.Sprintf("generation returned %d posts, %d requested", len(drafts), req.PostCount))
	}

	return &transfer.GenerateResult{
		Generated:  len(drafts),
		UsedMonth:  used + req.PostCount,
		MonthLimit: limit,
	}, nil
}

func (s *generationService) List(ctx context.Context, businessID int64, status string, limit, offset int) ([]*models.GeneratedPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.gp.ListByBusinessID(ctx, businessID, status, limit, offset)
}
