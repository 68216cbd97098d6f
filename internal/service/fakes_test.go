package service

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/maheshrc27/brandpulse/internal/ai"
	"github.com/maheshrc27/brandpulse/internal/models"
)

// In-memory stand-ins for the postgres repositories and the AI layer.

type fakeMentionRepo struct {
	mentions map[int64]*models.Mention
	nextID   int64
}

func newFakeMentionRepo() *fakeMentionRepo {
	return &fakeMentionRepo{mentions: make(map[int64]*models.Mention)}
}

func (r *fakeMentionRepo) Create(ctx context.Context, tx *sql.Tx, m *models.Mention) (int64, error) {
	r.nextID++
	cp := *m
	cp.ID = r.nextID
	r.mentions[cp.ID] = &cp
	return cp.ID, nil
}

func (r *fakeMentionRepo) GetByID(ctx context.Context, id int64) (*models.Mention, error) {
	m, ok := r.mentions[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMentionRepo) Exists(ctx context.Context, businessID, accountID int64, content, author string, postedAt time.Time) (bool, error) {
	for _, m := range r.mentions {
		if m.BusinessID == businessID && m.SocialAccountID == accountID &&
			m.Content == content && m.Author == author && m.PostedAt.Equal(postedAt) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMentionRepo) ListByBusinessID(ctx context.Context, businessID int64, label string, limit, offset int) ([]*models.Mention, error) {
	var out []*models.Mention
	for _, id := range r.sortedIDs() {
		m := r.mentions[id]
		if m.BusinessID != businessID {
			continue
		}
		if label != "" && m.SentimentLabel.String != label {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMentionRepo) ListUnanalyzed(ctx context.Context, businessID int64, limit int) ([]*models.Mention, error) {
	var out []*models.Mention
	for _, id := range r.sortedIDs() {
		m := r.mentions[id]
		if m.BusinessID != businessID || m.SentimentScore.Valid {
			continue
		}
		cp := *m
		out = append(out, &cp)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeMentionRepo) CountUnanalyzed(ctx context.Context, businessID int64) (int, error) {
	count := 0
	for _, m := range r.mentions {
		if m.BusinessID == businessID && !m.SentimentScore.Valid {
			count++
		}
	}
	return count, nil
}

func (r *fakeMentionRepo) SetSentiment(ctx context.Context, id int64, score float64, label, reasoning string) error {
	m, ok := r.mentions[id]
	if !ok || m.SentimentScore.Valid {
		return nil
	}
	m.SentimentScore = sql.NullFloat64{Float64: score, Valid: true}
	m.SentimentLabel = sql.NullString{String: label, Valid: true}
	m.SentimentReasoning = sql.NullString{String: reasoning, Valid: true}
	return nil
}

func (r *fakeMentionRepo) CheckByBusinessID(ctx context.Context, mentionID, businessID int64) (bool, error) {
	m, ok := r.mentions[mentionID]
	return ok && m.BusinessID == businessID, nil
}

func (r *fakeMentionRepo) sortedIDs() []int64 {
	ids := make([]int64, 0, len(r.mentions))
	for id := range r.mentions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type fakeAnalyticsService struct {
	recomputes int
}

func (f *fakeAnalyticsService) RecomputeDay(ctx context.Context, businessID int64, date time.Time) error {
	f.recomputes++
	return nil
}

func (f *fakeAnalyticsService) Range(ctx context.Context, businessID int64, from, to time.Time) ([]*models.SentimentDay, error) {
	return nil, nil
}

func (f *fakeAnalyticsService) Overview(ctx context.Context, businessID int64, days int) (*OverviewResult, error) {
	return &OverviewResult{}, nil
}

type fakeClassifier struct {
	calls  int
	failOn string
}

func (f *fakeClassifier) Classify(ctx context.Context, text string) (*ai.SentimentResult, error) {
	f.calls++
	if f.failOn != "" && strings.Contains(text, f.failOn) {
		return nil, ai.ErrUnavailable
	}
	return &ai.SentimentResult{Score: 7.5, Label: "positive", Reasoning: "upbeat wording", Confidence: 0.9}, nil
}

type fakeGenerator struct {
	calls  int
	drafts []ai.PostDraft
	err    error
}

func (f *fakeGenerator) GeneratePosts(ctx context.Context, spec ai.GenerationSpec) ([]ai.PostDraft, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.drafts, nil
}

type fakeSocialAccountRepo struct {
	accounts map[int64]*models.SocialAccount
	nextID   int64
}

func newFakeSocialAccountRepo() *fakeSocialAccountRepo {
	return &fakeSocialAccountRepo{accounts: make(map[int64]*models.SocialAccount)}
}

func (r *fakeSocialAccountRepo) add(a *models.SocialAccount) *models.SocialAccount {
	r.nextID++
	a.ID = r.nextID
	r.accounts[a.ID] = a
	return a
}

func (r *fakeSocialAccountRepo) Create(ctx context.Context, tx *sql.Tx, sa *models.SocialAccount) (int64, error) {
	return r.add(sa).ID, nil
}

func (r *fakeSocialAccountRepo) GetByID(ctx context.Context, id int64) (*models.SocialAccount, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeSocialAccountRepo) ListByBusinessID(ctx context.Context, businessID int64) ([]*models.SocialAccount, error) {
	var out []*models.SocialAccount
	for _, a := range r.accounts {
		if a.BusinessID == businessID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSocialAccountRepo) ListActive(ctx context.Context) ([]*models.SocialAccount, error) {
	var out []*models.SocialAccount
	for _, a := range r.accounts {
		if a.IsActive {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSocialAccountRepo) CheckByBusinessID(ctx context.Context, accountID, businessID int64) (bool, error) {
	a, ok := r.accounts[accountID]
	return ok && a.BusinessID == businessID, nil
}

func (r *fakeSocialAccountRepo) Deactivate(ctx context.Context, id int64) error {
	if a, ok := r.accounts[id]; ok {
		a.IsActive = false
	}
	return nil
}

func (r *fakeSocialAccountRepo) DeactivateExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	for _, a := range r.accounts {
		if a.IsActive && a.TokenExpired(cutoff) {
			a.IsActive = false
			count++
		}
	}
	return count, nil
}

type fakeBusinessRepo struct {
	businesses map[int64]*models.Business
	statuses   map[int64]string
}

func newFakeBusinessRepo(businesses ...*models.Business) *fakeBusinessRepo {
	r := &fakeBusinessRepo{
		businesses: make(map[int64]*models.Business),
		statuses:   make(map[int64]string),
	}
	for _, b := range businesses {
		r.businesses[b.ID] = b
	}
	return r
}

func (r *fakeBusinessRepo) GetByID(ctx context.Context, id int64) (*models.Business, bool, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, false, nil
	}
	cp := *b
	return &cp, true, nil
}

func (r *fakeBusinessRepo) GetByUserID(ctx context.Context, userID int64) (*models.Business, bool, error) {
	for _, b := range r.businesses {
		if b.UserID == userID {
			cp := *b
			return &cp, true, nil
		}
	}
	return nil, false, nil
}

func (r *fakeBusinessRepo) GetByStripeCustomer(ctx context.Context, customerID string) (*models.Business, bool, error) {
	for _, b := range r.businesses {
		if b.StripeCustomerID == customerID {
			cp := *b
			return &cp, true, nil
		}
	}
	return nil, false, nil
}

func (r *fakeBusinessRepo) Create(ctx context.Context, tx *sql.Tx, b *models.Business) (int64, error) {
	id := int64(len(r.businesses) + 1)
	cp := *b
	cp.ID = id
	r.businesses[id] = &cp
	return id, nil
}

func (r *fakeBusinessRepo) UpdateSubscription(ctx context.Context, b *models.Business) error {
	cp := *b
	r.businesses[b.ID] = &cp
	return nil
}

func (r *fakeBusinessRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	if b, ok := r.businesses[id]; ok {
		b.SubscriptionStatus = status
	}
	r.statuses[id] = status
	return nil
}

type fakeScheduledPostRepo struct {
	posts  map[int64]*models.ScheduledPost
	nextID int64
}

func newFakeScheduledPostRepo() *fakeScheduledPostRepo {
	return &fakeScheduledPostRepo{posts: make(map[int64]*models.ScheduledPost)}
}

func (r *fakeScheduledPostRepo) Create(ctx context.Context, tx *sql.Tx, post *models.ScheduledPost) (int64, error) {
	r.nextID++
	cp := *post
	cp.ID = r.nextID
	r.posts[cp.ID] = &cp
	return cp.ID, nil
}

func (r *fakeScheduledPostRepo) GetByID(ctx context.Context, id int64) (*models.ScheduledPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeScheduledPostRepo) ListByBusinessID(ctx context.Context, businessID int64, status string) ([]*models.ScheduledPost, error) {
	var out []*models.ScheduledPost
	for _, p := range r.posts {
		if p.BusinessID != businessID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeScheduledPostRepo) CountScheduled(ctx context.Context, businessID int64) (int, error) {
	count := 0
	for _, p := range r.posts {
		if p.BusinessID == businessID && p.Status == models.ScheduleStatusScheduled {
			count++
		}
	}
	return count, nil
}

func (r *fakeScheduledPostRepo) Update(ctx context.Context, post *models.ScheduledPost) error {
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *fakeScheduledPostRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	if p, ok := r.posts[id]; ok {
		p.Status = status
	}
	return nil
}

func (r *fakeScheduledPostRepo) MarkPublished(ctx context.Context, id int64, publishedAt time.Time) error {
	if p, ok := r.posts[id]; ok {
		p.Status = models.ScheduleStatusPublished
		p.PublishedAt = sql.NullTime{Time: publishedAt, Valid: true}
	}
	return nil
}

func (r *fakeScheduledPostRepo) MarkFailed(ctx context.Context, id int64, errorMessage string) error {
	if p, ok := r.posts[id]; ok {
		p.Status = models.ScheduleStatusFailed
		p.ErrorMessage = sql.NullString{String: errorMessage, Valid: true}
	}
	return nil
}

func (r *fakeScheduledPostRepo) CheckByBusinessID(ctx context.Context, postID, businessID int64) (bool, error) {
	p, ok := r.posts[postID]
	return ok && p.BusinessID == businessID, nil
}

type fakeGeneratedPostRepo struct {
	posts  map[int64]*models.GeneratedPost
	nextID int64
}

func newFakeGeneratedPostRepo() *fakeGeneratedPostRepo {
	return &fakeGeneratedPostRepo{posts: make(map[int64]*models.GeneratedPost)}
}

func (r *fakeGeneratedPostRepo) Create(ctx context.Context, tx *sql.Tx, post *models.GeneratedPost) (int64, error) {
	r.nextID++
	cp := *post
	cp.ID = r.nextID
	r.posts[cp.ID] = &cp
	return cp.ID, nil
}

func (r *fakeGeneratedPostRepo) GetByID(ctx context.Context, id int64) (*models.GeneratedPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeGeneratedPostRepo) ListByBusinessID(ctx context.Context, businessID int64, status string, limit, offset int) ([]*models.GeneratedPost, error) {
	var out []*models.GeneratedPost
	for _, p := range r.posts {
		if p.BusinessID != businessID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeGeneratedPostRepo) MarkScheduled(ctx context.Context, id, scheduledPostID int64) error {
	if p, ok := r.posts[id]; ok {
		p.Status = models.GeneratedStatusScheduled
		p.ScheduledPostID = sql.NullInt64{Int64: scheduledPostID, Valid: true}
	}
	return nil
}

func (r *fakeGeneratedPostRepo) UpdateStatusByScheduledPost(ctx context.Context, scheduledPostID int64, status string) error {
	for _, p := range r.posts {
		if p.ScheduledPostID.Valid && p.ScheduledPostID.Int64 == scheduledPostID {
			p.Status = status
		}
	}
	return nil
}

func (r *fakeGeneratedPostRepo) CheckByBusinessID(ctx context.Context, postID, businessID int64) (bool, error) {
	p, ok := r.posts[postID]
	return ok && p.BusinessID == businessID, nil
}

type fakeUsageRepo struct {
	used    int
	records []int
}

func (r *fakeUsageRepo) MonthlyPostsGenerated(ctx context.Context, businessID int64, month time.Time) (int, error) {
	return r.used, nil
}

func (r *fakeUsageRepo) Record(ctx context.Context, tx *sql.Tx, businessID int64, postsGenerated, apiCalls int) error {
	r.used += postsGenerated
	r.records = append(r.records, postsGenerated)
	return nil
}

type fakeSource struct {
	platform string
	mentions []*models.Mention
	err      error
	calls    int
}

func (s *fakeSource) Platform() string {
	return s.platform
}

func (s *fakeSource) FetchMentions(ctx context.Context, account *models.SocialAccount) ([]*models.Mention, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*models.Mention, 0, len(s.mentions))
	for _, m := range s.mentions {
		cp := *m
		cp.BusinessID = account.BusinessID
		cp.SocialAccountID = account.ID
		cp.Platform = s.platform
		out = append(out, &cp)
	}
	return out, nil
}
