package transfer

type ScheduleCreation struct {
	SocialAccountID int64    `json:"social_account_id"`
	Platform        string   `json:"platform"`
	Content         string   `json:"content"`
	Hashtags        []string `json:"hashtags"`
	ImageURL        string   `json:"image_url"`
	ScheduledTime   string   `json:"scheduled_time"` // RFC 3339
	GeneratedPostID int64    `json:"generated_post_id,omitempty"`
}

type ScheduleUpdate struct {
	PostID        int64    `json:"post_id"`
	Content       string   `json:"content,omitempty"`
	Hashtags      []string `json:"hashtags,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	ScheduledTime string   `json:"scheduled_time,omitempty"`
}
