package job

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/maheshrc27/brandpulse/internal/repository"
)

// TokenExpiryJob deactivates accounts whose platform tokens have lapsed so
// ingestion and publishing stop touching them until the user reconnects.
type TokenExpiryJob struct {
	sr repository.SocialAccountRepository
}

func NewTokenExpiryJob(sr repository.SocialAccountRepository) *TokenExpiryJob {
	return &TokenExpiryJob{sr: sr}
}

func (c *TokenExpiryJob) DeactivateExpired() {
	ctx := context.Background()

	count, err := c.sr.DeactivateExpired(ctx, time.Now().UTC())
	if err != nil {
		slog.Info(err.Error())
		return
	}

	if count > 0 {
		log.Printf("Deactivated %d accounts with expired tokens", count)
	}
}
