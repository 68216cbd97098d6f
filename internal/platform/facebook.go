package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/maheshrc27/brandpulse/internal/models"
)

type FacebookSource struct {
	client *resty.Client
}

type facebookTaggedResponse struct {
	Data []struct {
		ID           string    `json:"id"`
		Message      string    `json:"message"`
		CreatedTime  time.Time `json:"created_time"`
		PermalinkURL string    `json:"permalink_url"`
		From         struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"from"`
	} `json:"data"`
}

func NewFacebookSource() *FacebookSource {
	return &FacebookSource{
		client: resty.New().SetTimeout(30 * time.Second).SetBaseURL("https://graph.facebook.com/v19.0"),
	}
}

func (s *FacebookSource) Platform() string {
	return models.PlatformFacebook
}

func (s *FacebookSource) FetchMentions(ctx context.Context, account *models.SocialAccount) ([]*models.Mention, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       "id,message,created_time,permalink_url,from",
			"access_token": account.AccessToken,
		}).
		Get(fmt.Sprintf("/%s/tagged", account.AccountID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("facebook tagged-feed request returned %d", resp.StatusCode())
	}

	var parsed facebookTaggedResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, err
	}

	var mentions []*models.Mention
	for _, post := range parsed.Data {
		if post.Message == "" {
			continue
		}

		m := newMention(account)
		m.Content = post.Message
		m.Author = post.From.Name
		m.PostURL = post.PermalinkURL
		m.PostedAt = post.CreatedTime.UTC()
		mentions = append(mentions, m)
	}

	return mentions, nil
}
