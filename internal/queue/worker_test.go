package queue

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/maheshrc27/brandpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScheduledPosts struct {
	posts map[int64]*models.ScheduledPost
}

func (r *stubScheduledPosts) Create(ctx context.Context, tx *sql.Tx, post *models.ScheduledPost) (int64, error) {
	return 0, nil
}

func (r *stubScheduledPosts) GetByID(ctx context.Context, id int64) (*models.ScheduledPost, error) {
	if p, ok := r.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *stubScheduledPosts) ListByBusinessID(ctx context.Context, businessID int64, status string) ([]*models.ScheduledPost, error) {
	return nil, nil
}

func (r *stubScheduledPosts) CountScheduled(ctx context.Context, businessID int64) (int, error) {
	return 0, nil
}

func (r *stubScheduledPosts) Update(ctx context.Context, post *models.ScheduledPost) error {
	return nil
}

func (r *stubScheduledPosts) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.posts[id].Status = status
	return nil
}

func (r *stubScheduledPosts) MarkPublished(ctx context.Context, id int64, publishedAt time.Time) error {
	p := r.posts[id]
	p.Status = models.ScheduleStatusPublished
	p.PublishedAt = sql.NullTime{Time: publishedAt, Valid: true}
	return nil
}

func (r *stubScheduledPosts) MarkFailed(ctx context.Context, id int64, errorMessage string) error {
	p := r.posts[id]
	p.Status = models.ScheduleStatusFailed
	p.ErrorMessage = sql.NullString{String: errorMessage, Valid: true}
	return nil
}

func (r *stubScheduledPosts) CheckByBusinessID(ctx context.Context, postID, businessID int64) (bool, error) {
	return false, nil
}

type stubGeneratedPosts struct {
	statusByScheduled map[int64]string
}

func (r *stubGeneratedPosts) Create(ctx context.Context, tx *sql.Tx, post *models.GeneratedPost) (int64, error) {
	return 0, nil
}

func (r *stubGeneratedPosts) GetByID(ctx context.Context, id int64) (*models.GeneratedPost, error) {
	return nil, nil
}

func (r *stubGeneratedPosts) ListByBusinessID(ctx context.Context, businessID int64, status string, limit, offset int) ([]*models.GeneratedPost, error) {
	return nil, nil
}

func (r *stubGeneratedPosts) MarkScheduled(ctx context.Context, id, scheduledPostID int64) error {
	return nil
}

func (r *stubGeneratedPosts) UpdateStatusByScheduledPost(ctx context.Context, scheduledPostID int64, status string) error {
	r.statusByScheduled[scheduledPostID] = status
	return nil
}

func (r *stubGeneratedPosts) CheckByBusinessID(ctx context.Context, postID, businessID int64) (bool, error) {
	return false, nil
}

type stubAccounts struct {
	accounts map[int64]*models.SocialAccount
}

func (r *stubAccounts) Create(ctx context.Context, tx *sql.Tx, sa *models.SocialAccount) (int64, error) {
	return 0, nil
}

func (r *stubAccounts) GetByID(ctx context.Context, id int64) (*models.SocialAccount, error) {
	if a, ok := r.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *stubAccounts) ListByBusinessID(ctx context.Context, businessID int64) ([]*models.SocialAccount, error) {
	return nil, nil
}

func (r *stubAccounts) ListActive(ctx context.Context) ([]*models.SocialAccount, error) {
	return nil, nil
}

func (r *stubAccounts) CheckByBusinessID(ctx context.Context, accountID, businessID int64) (bool, error) {
	return false, nil
}

func (r *stubAccounts) Deactivate(ctx context.Context, id int64) error {
	return nil
}

func (r *stubAccounts) DeactivateExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func publishFixture(postStatus string, accountActive bool) (*Queue, *stubScheduledPosts, *stubGeneratedPosts) {
	scheduled := &stubScheduledPosts{posts: map[int64]*models.ScheduledPost{
		1: {ID: 1, BusinessID: 1, SocialAccountID: 5, Platform: models.PlatformTwitter, Status: postStatus},
	}}
	generated := &stubGeneratedPosts{statusByScheduled: make(map[int64]string)}
	accounts := &stubAccounts{accounts: map[int64]*models.SocialAccount{
		5: {ID: 5, BusinessID: 1, Platform: models.PlatformTwitter, IsActive: accountActive},
	}}
	return NewQueue(scheduled, generated, accounts, nil, nil), scheduled, generated
}

func TestPublishPost_FlipsToPublished(t *testing.T) {
	q, scheduled, generated := publishFixture(models.ScheduleStatusScheduled, true)

	require.NoError(t, q.PublishPost(1))

	post := scheduled.posts[1]
	assert.Equal(t, models.ScheduleStatusPublished, post.Status)
	assert.True(t, post.PublishedAt.Valid)
	assert.Equal(t, models.GeneratedStatusPublished, generated.statusByScheduled[1])
}

func TestPublishPost_SkipsCancelledPost(t *testing.T) {
	q, scheduled, generated := publishFixture(models.ScheduleStatusCancelled, true)

	require.NoError(t, q.PublishPost(1))

	assert.Equal(t, models.ScheduleStatusCancelled, scheduled.posts[1].Status)
	assert.Empty(t, generated.statusByScheduled)
}

func TestPublishPost_InactiveAccountFails(t *testing.T) {
	q, scheduled, _ := publishFixture(models.ScheduleStatusScheduled, false)

	require.NoError(t, q.PublishPost(1))

	post := scheduled.posts[1]
	assert.Equal(t, models.ScheduleStatusFailed, post.Status)
	assert.Equal(t, "social account disconnected", post.ErrorMessage.String)
}

func TestPublishPost_MissingPostIsSkipped(t *testing.T) {
	q, _, _ := publishFixture(models.ScheduleStatusScheduled, true)

	assert.NoError(t, q.PublishPost(42))
}
