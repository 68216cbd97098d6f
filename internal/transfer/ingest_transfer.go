package transfer

type IngestRequest struct {
	AccountID    int64 `json:"account_id"`
	ForceRefresh bool  `json:"force_refresh"`
}

type IngestResult struct {
	Fetched  int `json:"fetched"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}
