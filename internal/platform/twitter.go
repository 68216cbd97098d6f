package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/maheshrc27/brandpulse/internal/models"
)

type TwitterSource struct {
	client *resty.Client
	bearer string
}

type twitterMentionsResponse struct {
	Data []struct {
		ID            string    `json:"id"`
		Text          string    `json:"text"`
		AuthorID      string    `json:"author_id"`
		CreatedAt     time.Time `json:"created_at"`
		PublicMetrics struct {
			RetweetCount int `json:"retweet_count"`
			ReplyCount   int `json:"reply_count"`
			LikeCount    int `json:"like_count"`
			QuoteCount   int `json:"quote_count"`
		} `json:"public_metrics"`
	} `json:"data"`
	Includes struct {
		Users []struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Username string `json:"username"`
		} `json:"users"`
	} `json:"includes"`
}

// NewTwitterSource takes an app-only bearer token used when an account has
// no user token of its own.
func NewTwitterSource(bearer string) *TwitterSource {
	return &TwitterSource{
		client: resty.New().SetTimeout(30 * time.Second).SetBaseURL("https://api.twitter.com"),
		bearer: bearer,
	}
}

func (s *TwitterSource) Platform() string {
	return models.PlatformTwitter
}

func (s *TwitterSource) FetchMentions(ctx context.Context, account *models.SocialAccount) ([]*models.Mention, error) {
	token := account.AccessToken
	if token == "" {
		token = s.bearer
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"max_results":  "100",
			"tweet.fields": "created_at,public_metrics,author_id",
			"expansions":   "author_id",
			"user.fields":  "name,username",
		}).
		Get(fmt.Sprintf("/2/users/%s/mentions", account.AccountID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("twitter mentions request returned %d", resp.StatusCode())
	}

	var parsed twitterMentionsResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, err
	}

	users := make(map[string]struct{ name, username string }, len(parsed.Includes.Users))
	for _, u := range parsed.Includes.Users {
		users[u.ID] = struct{ name, username string }{u.Name, u.Username}
	}

	var mentions []*models.Mention
	for _, tw := range parsed.Data {
		m := newMention(account)
		m.Content = tw.Text
		m.PostedAt = tw.CreatedAt.UTC()
		m.PostURL = fmt.Sprintf("https://twitter.com/i/web/status/%s", tw.ID)
		m.EngagementCount = tw.PublicMetrics.RetweetCount + tw.PublicMetrics.ReplyCount +
			tw.PublicMetrics.LikeCount + tw.PublicMetrics.QuoteCount
		if u, ok := users[tw.AuthorID]; ok {
			m.Author = u.name
			m.AuthorHandle = "@" + u.username
		} else {
			m.Author = tw.AuthorID
		}
		mentions = append(mentions, m)
	}

	return mentions, nil
}
