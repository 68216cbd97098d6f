package transfer

type GenerateRequest struct {
	Industry        string `json:"industry"`
	Platform        string `json:"platform"`
	Tone            string `json:"tone"`
	PostCount       int    `json:"post_count"`
	IncludeHashtags bool   `json:"include_hashtags"`
	IncludeCTA      bool   `json:"include_cta"`
}

type GenerateResult struct {
	Generated  int `json:"generated"`
	UsedMonth  int `json:"used_month"`
	MonthLimit int `json:"month_limit"`
}
