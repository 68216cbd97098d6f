package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/maheshrc27/brandpulse/internal/models"
)

type InstagramSource struct {
	client *resty.Client
}

type instagramTaggedResponse struct {
	Data []struct {
		ID        string `json:"id"`
		Caption   string `json:"caption"`
		Permalink string `json:"permalink"`
		Timestamp string `json:"timestamp"`
		Username  string `json:"username"`
		LikeCount int    `json:"like_count"`
		Comments  int    `json:"comments_count"`
	} `json:"data"`
}

func NewInstagramSource() *InstagramSource {
	return &InstagramSource{
		client: resty.New().SetTimeout(30 * time.Second).SetBaseURL("https://graph.facebook.com/v19.0"),
	}
}

func (s *InstagramSource) Platform() string {
	return models.PlatformInstagram
}

func (s *InstagramSource) FetchMentions(ctx context.Context, account *models.SocialAccount) ([]*models.Mention, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       "id,caption,permalink,timestamp,username,like_count,comments_count",
			"access_token": account.AccessToken,
		}).
		Get(fmt.Sprintf("/%s/tags", account.AccountID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("instagram tagged-media request returned %d", resp.StatusCode())
	}

	var parsed instagramTaggedResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, err
	}

	var mentions []*models.Mention
	for _, media := range parsed.Data {
		postedAt, err := time.Parse("2006-01-02T15:04:05-0700", media.Timestamp)
		if err != nil {
			postedAt = time.Now().UTC()
		}

		m := newMention(account)
		m.Content = media.Caption
		m.Author = media.Username
		m.AuthorHandle = "@" + media.Username
		m.PostURL = media.Permalink
		m.PostedAt = postedAt.UTC()
		m.EngagementCount = media.LikeCount + media.Comments
		mentions = append(mentions, m)
	}

	return mentions, nil
}
