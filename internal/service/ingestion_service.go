package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/brandpulse/internal/platform"
	"github.com/maheshrc27/brandpulse/internal/repository"
	"github.com/maheshrc27/brandpulse/internal/transfer"
)

type IngestionService interface {
	IngestAccount(ctx context.Context, businessID, accountID int64, forceRefresh bool) (*transfer.IngestResult, error)
	IngestAllActive(ctx context.Context) error
}

type ingestionService struct {
	sa      repository.SocialAccountRepository
	mr      repository.MentionRepository
	sources *platform.Registry
}

func NewIngestionService(sa repository.SocialAccountRepository, mr repository.MentionRepository, sources *platform.Registry) IngestionService {
	return &ingestionService{
		sa:      sa,
		mr:      mr,
		sources: sources,
	}
}

// IngestAccount fetches current mentions for one connected account and
// stores the ones not already present. The exists/insert pair is not
// atomic against a concurrent identical ingest.
func (s *ingestionService) IngestAccount(ctx context.Context, businessID, accountID int64, forceRefresh bool) (*transfer.IngestResult, error) {
	account, err := s.sa.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("social account %d: %w", accountID, ErrNotFound)
	}
	if account.BusinessID != businessID {
		return nil, fmt.Errorf("social account %d: %w", accountID, ErrAccessDenied)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("social account %d: %w", accountID, ErrAccountInactive)
	}
	if account.TokenExpired(time.Now()) {
		return nil, fmt.Errorf("social account %d: %w", accountID, ErrTokenExpired)
	}

	source, err := s.sources.ForPlatform(account.Platform)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fetched, err := source.FetchMentions(ctx, account)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: %s: %v", ErrUpstreamFetch, account.Platform, err)
	}

	result := transfer.IngestResult{Fetched: len(fetched)}
	for _, m := range fetched {
		exists, err := s.mr.Exists(ctx, businessID, accountID, m.Content, m.Author, m.PostedAt)
		if err != nil {
			return nil, err
		}
		if exists && !forceRefresh {
			result.Skipped++
			continue
		}
		if _, err := s.mr.Create(ctx, nil, m); err != nil {
			return nil, err
		}
		result.Inserted++
	}

	return &result, nil
}

// IngestAllActive runs the background sweep. Accounts fail independently;
// one platform being down never blocks the rest.
func (s *ingestionService) IngestAllActive(ctx context.Context) error {
	accounts, err := s.sa.ListActive(ctx)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		result, err := s.IngestAccount(ctx, account.BusinessID, account.ID, false)
		if err != nil {
			slog.Info(fmt.Sprintf("ingest sweep: account %d: %v", account.ID, err))
			continue
		}
		if result.Inserted > 0 {
			slog.Info(fmt.Sprintf("ingest sweep: account %d: %d new mentions", account.ID, result.Inserted))
		}
	}
	return nil
}
