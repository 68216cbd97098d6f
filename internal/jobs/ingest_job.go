package job

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/brandpulse/internal/queue"
	"github.com/maheshrc27/brandpulse/internal/repository"
)

// IngestJob sweeps every connected account on a schedule: one ingest task
// per account, one analyze task per business with fresh mentions.
type IngestJob struct {
	sr          repository.SocialAccountRepository
	asynqClient *asynq.Client
}

func NewIngestJob(sr repository.SocialAccountRepository, asynqClient *asynq.Client) *IngestJob {
	return &IngestJob{
		sr:          sr,
		asynqClient: asynqClient,
	}
}

func (c *IngestJob) SweepAccounts() {
	ctx := context.Background()

	accounts, err := c.sr.ListActive(ctx)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	businesses := make(map[int64]struct{})

	for _, acc := range accounts {
		err := queue.EnqueueIngest(c.asynqClient, queue.IngestAccountPayload{
			BusinessID: acc.BusinessID,
			AccountID:  acc.ID,
		})
		if err != nil {
			slog.Info("Unable to enqueue ingest for account")
			continue
		}
		businesses[acc.BusinessID] = struct{}{}
	}

	for businessID := range businesses {
		err := queue.EnqueueAnalyze(c.asynqClient, queue.AnalyzeBatchPayload{
			BusinessID: businessID,
		})
		if err != nil {
			slog.Info("Unable to enqueue analysis for business")
		}
	}
}
