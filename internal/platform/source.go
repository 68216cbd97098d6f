package platform

import (
	"context"
	"fmt"

	"github.com/maheshrc27/brandpulse/internal/models"
)

// MentionSource fetches brand mentions from one social network using the
// connected account's credentials. Implementations return normalized
// mention rows scoped to the account's business.
type MentionSource interface {
	Platform() string
	FetchMentions(ctx context.Context, account *models.SocialAccount) ([]*models.Mention, error)
}

// Registry resolves the source for a connected account's platform tag.
type Registry struct {
	sources map[string]MentionSource
}

func NewRegistry(sources ...MentionSource) *Registry {
	r := &Registry{sources: make(map[string]MentionSource)}
	for _, s := range sources {
		r.sources[s.Platform()] = s
	}
	return r
}

func (r *Registry) ForPlatform(platform string) (MentionSource, error) {
	s, ok := r.sources[platform]
	if !ok {
		return nil, fmt.Errorf("no mention source registered for platform %q", platform)
	}
	return s, nil
}

func newMention(account *models.SocialAccount) *models.Mention {
	return &models.Mention{
		BusinessID:      account.BusinessID,
		SocialAccountID: account.ID,
		Platform:        account.Platform,
	}
}
