package queue

import (
	"github.com/maheshrc27/brandpulse/internal/repository"
	"github.com/maheshrc27/brandpulse/internal/service"
)

type Queue struct {
	sp repository.ScheduledPostRepository
	gp repository.GeneratedPostRepository
	ac repository.SocialAccountRepository
	in service.IngestionService
	an service.AnalysisService
}

func NewQueue(
	sp repository.ScheduledPostRepository,
	gp repository.GeneratedPostRepository,
	ac repository.SocialAccountRepository,
	in service.IngestionService,
	an service.AnalysisService) *Queue {
	return &Queue{
		sp: sp,
		gp: gp,
		ac: ac,
		in: in,
		an: an,
	}
}

const (
	TaskTypePublishPost    = "publish:post"
	TaskTypeIngestAccount  = "ingest:account"
	TaskTypeAnalyzeMention = "analyze:batch"
)

type PublishPostPayload struct {
	PostID int64 `json:"post_id"`
}

type IngestAccountPayload struct {
	BusinessID int64 `json:"business_id"`
	AccountID  int64 `json:"account_id"`
}

type AnalyzeBatchPayload struct {
	BusinessID int64 `json:"business_id"`
	BatchSize  int   `json:"batch_size"`
}
