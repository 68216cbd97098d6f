package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/brandpulse/internal/models"
	"github.com/maheshrc27/brandpulse/internal/repository"
	"github.com/maheshrc27/brandpulse/internal/transfer"
)

type ScheduleService interface {
	Create(ctx context.Context, businessID int64, sc *transfer.ScheduleCreation) (int64, time.Duration, error)
	Update(ctx context.Context, businessID int64, su *transfer.ScheduleUpdate) error
	Cancel(ctx context.Context, businessID, postID int64) error
	List(ctx context.Context, businessID int64, status string) ([]*models.ScheduledPost, error)
}

type scheduleService struct {
	sp repository.ScheduledPostRepository
	sa repository.SocialAccountRepository
	gp repository.GeneratedPostRepository
	br repository.BusinessRepository
}

func NewScheduleService(
	sp repository.ScheduledPostRepository,
	sa repository.SocialAccountRepository,
	gp repository.GeneratedPostRepository,
	br repository.BusinessRepository) ScheduleService {
	return &scheduleService{
		sp: sp,
		sa: sa,
		gp: gp,
		br: br,
	}
}

// Create validates the target account, the future-dated time and the tier
// capacity, then inserts the row and reports the delay until publication.
func (s *scheduleService) Create(ctx context.Context, businessID int64, sc *transfer.ScheduleCreation) (int64, time.Duration, error) {
	if sc == nil || sc.Content == "" {
		return 0, 0, fmt.Errorf("%w: content is required", ErrValidation)
	}

	scheduledTime, err := time.Parse(time.RFC3339, sc.ScheduledTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid scheduled_time: %v", ErrValidation, err)
	}
	if !scheduledTime.After(time.Now()) {
		return 0, 0, fmt.Errorf("%w: scheduled_time must be in the future", ErrValidation)
	}

	account, err := s.sa.GetByID(ctx, sc.SocialAccountID)
	if err != nil {
		return 0, 0, err
	}
	if account == nil || account.BusinessID != businessID {
		return 0, 0, fmt.Errorf("social account %d: %w", sc.SocialAccountID, ErrNotFound)
	}
	if !account.IsActive {
		return 0, 0, fmt.Errorf("social account %d: %w", sc.SocialAccountID, ErrAccountInactive)
	}
	if sc.Platform != "" && sc.Platform != account.Platform {
		return 0, 0, fmt.Errorf("%w: account %d is %s, not %s", ErrValidation, account.ID, account.Platform, sc.Platform)
	}

	business, isExist, err := s.br.GetByID(ctx, businessID)
	if err != nil {
		return 0, 0, err
	}
	if !isExist {
		return 0, 0, fmt.Errorf("business %d: %w", businessID, ErrNotFound)
	}

	limit := models.TierScheduleLimit(business.SubscriptionTier)
	count, err := s.sp.CountScheduled(ctx, businessID)
	if err != nil {
		return 0, 0, err
	}
	if count >= limit {
		return 0, 0, fmt.Errorf("%w: %d of %d slots used", ErrLimitReached, count, limit)
	}

	if sc.GeneratedPostID != 0 {
		owned, err := s.gp.CheckByBusinessID(ctx, sc.GeneratedPostID, businessID)
		if err != nil {
			return 0, 0, err
		}
		if !owned {
			return 0, 0, fmt.Errorf("generated post %d: %w", sc.GeneratedPostID, ErrNotFound)
		}
	}

	post := models.ScheduledPost{
		BusinessID:      businessID,
		SocialAccountID: account.ID,
		Platform:        account.Platform,
		Content:         sc.Content,
		Hashtags:        sc.Hashtags,
		ImageURL:        sc.ImageURL,
		ScheduledTime:   scheduledTime,
		Status:          models.ScheduleStatusScheduled,
	}

	postID, err := s.sp.Create(ctx, nil, &post)
	if err != nil {
		return 0, 0, fmt.Errorf("error creating scheduled post: %w", err)
	}

	if sc.GeneratedPostID != 0 {
		if err := s.gp.MarkScheduled(ctx, sc.GeneratedPostID, postID); err != nil {
			slog.Info(fmt.Sprintf("link generated post %d: %v", sc.GeneratedPostID, err))
		}
	}

	delay := time.Until(scheduledTime)
	if delay < 0 {
		delay = 0
	}

	return postID, delay, nil
}

// Update mutates content, hashtags, image or time on a post the business
// owns, only while it is still waiting to publish.
func (s *scheduleService) Update(ctx context.Context, businessID int64, su *transfer.ScheduleUpdate) error {
	if su == nil || su.PostID == 0 {
		return fmt.Errorf("%w: post_id is required", ErrValidation)
	}

	post, err := s.ownedPost(ctx, businessID, su.PostID)
	if err != nil {
		return err
	}
	if post.Status != models.ScheduleStatusScheduled {
		return fmt.Errorf("%w: post %d is %s", ErrValidation, post.ID, post.Status)
	}

	if su.Content != "" {
		post.Content = su.Content
	}
	if su.Hashtags != nil {
		post.Hashtags = su.Hashtags
	}
	if su.ImageURL != "" {
		post.ImageURL = su.ImageURL
	}
	if su.ScheduledTime != "" {
		scheduledTime, err := time.Parse(time.RFC3339, su.ScheduledTime)
		if err != nil {
			return fmt.Errorf("%w: invalid scheduled_time: %v", ErrValidation, err)
		}
		if !scheduledTime.After(time.Now()) {
			return fmt.Errorf("%w: scheduled_time must be in the future", ErrValidation)
		}
		post.ScheduledTime = scheduledTime
	}

	return s.sp.Update(ctx, post)
}

// Cancel flips the status instead of deleting so history survives.
func (s *scheduleService) Cancel(ctx context.Context, businessID, postID int64) error {
	post, err := s.ownedPost(ctx, businessID, postID)
	if err != nil {
		return err
	}
	if post.Status != models.ScheduleStatusScheduled {
		return fmt.Errorf("%w: post %d is %s", ErrValidation, post.ID, post.Status)
	}

	return s.sp.UpdateStatus(ctx, postID, models.ScheduleStatusCancelled)
}

func (s *scheduleService) List(ctx context.Context, businessID int64, status string) ([]*models.ScheduledPost, error) {
	return s.sp.ListByBusinessID(ctx, businessID, status)
}

func (s *scheduleService) ownedPost(ctx context.Context, businessID, postID int64) (*models.ScheduledPost, error) {
	owned, err := s.sp.CheckByBusinessID(ctx, postID, businessID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, fmt.Errorf("scheduled post %d: %w", postID, ErrNotFound)
	}

	post, err := s.sp.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("scheduled post %d: %w", postID, ErrNotFound)
	}
	return post, nil
}
