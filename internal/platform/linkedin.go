package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/maheshrc27/brandpulse/internal/models"
)

type LinkedinSource struct {
	client *resty.Client
}

type linkedinNotificationsResponse struct {
	Elements []struct {
		ID           string `json:"id"`
		Commentary   string `json:"commentary"`
		CreatedAt    int64  `json:"createdAt"`
		Actor        string `json:"actor"`
		ActorName    string `json:"actorName"`
		EntityURL    string `json:"entityUrl"`
		SocialCounts struct {
			NumLikes    int `json:"numLikes"`
			NumComments int `json:"numComments"`
		} `json:"socialCounts"`
	} `json:"elements"`
}

func NewLinkedinSource() *LinkedinSource {
	return &LinkedinSource{
		client: resty.New().SetTimeout(30 * time.Second).SetBaseURL("https://api.linkedin.com"),
	}
}

func (s *LinkedinSource) Platform() string {
	return models.PlatformLinkedin
}

func (s *LinkedinSource) FetchMentions(ctx context.Context, account *models.SocialAccount) ([]*models.Mention, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(account.AccessToken).
		SetHeader("LinkedIn-Version", "202405").
		SetQueryParam("q", "organizationMentions").
		SetQueryParam("organization", fmt.Sprintf("urn:li:organization:%s", account.AccountID)).
		Get("/rest/posts")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("linkedin mentions request returned %d", resp.StatusCode())
	}

	var parsed linkedinNotificationsResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, err
	}

	var mentions []*models.Mention
	for _, el := range parsed.Elements {
		if el.Commentary == "" {
			continue
		}

		m := newMention(account)
		m.Content = el.Commentary
		m.Author = el.ActorName
		m.PostURL = el.EntityURL
		m.PostedAt = time.UnixMilli(el.CreatedAt).UTC()
		m.EngagementCount = el.SocialCounts.NumLikes + el.SocialCounts.NumComments
		mentions = append(mentions, m)
	}

	return mentions, nil
}
