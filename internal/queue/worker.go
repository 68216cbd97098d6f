package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/brandpulse/internal/models"
)

func (j *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return j.PublishPost(payload.PostID)
}

// PublishPost flips a due post to published. Posts cancelled or already
// handled since enqueue are skipped, not failed.
func (j *Queue) PublishPost(postID int64) error {
	ctx := context.Background()

	post, err := j.sp.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		log.Printf("Scheduled post %d no longer exists", postID)
		return nil
	}
	if post.Status != models.ScheduleStatusScheduled {
		log.Printf("Scheduled post %d is %s, skipping", postID, post.Status)
		return nil
	}

	account, err := j.ac.GetByID(ctx, post.SocialAccountID)
	if err != nil {
		return err
	}
	if account == nil || !account.IsActive {
		if err := j.sp.MarkFailed(ctx, postID, "social account disconnected"); err != nil {
			return err
		}
		log.Printf("Scheduled post %d failed: account %d inactive", postID, post.SocialAccountID)
		return nil
	}

	if err := j.sp.MarkPublished(ctx, postID, time.Now().UTC()); err != nil {
		return err
	}

	if err := j.gp.UpdateStatusByScheduledPost(ctx, postID, models.GeneratedStatusPublished); err != nil {
		log.Printf("Error updating generated post for scheduled post %d: %v", postID, err)
	}

	log.Printf("Published scheduled post %d to %s", postID, post.Platform)
	return nil
}

func (j *Queue) HandleIngestAccountTask(ctx context.Context, task *asynq.Task) error {
	var payload IngestAccountPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	result, err := j.in.IngestAccount(ctx, payload.BusinessID, payload.AccountID, false)
	if err != nil {
		return err
	}

	log.Printf("Ingested account %d: %d fetched, %d inserted, %d skipped",
		payload.AccountID, result.Fetched, result.Inserted, result.Skipped)
	return nil
}

func (j *Queue) HandleAnalyzeBatchTask(ctx context.Context, task *asynq.Task) error {
	var payload AnalyzeBatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	result, err := j.an.AnalyzeBatch(ctx, payload.BusinessID, payload.BatchSize)
	if err != nil {
		return err
	}

	log.Printf("Analyzed batch for business %d: %d analyzed, %d failed, %d remaining",
		payload.BusinessID, result.Summary.Analyzed, result.Summary.Failed, result.Summary.Remaining)
	return nil
}
