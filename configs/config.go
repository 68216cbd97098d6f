package config

import (
	"os"
	"strconv"
	"time"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type AI struct {
	BaseURL string
	APIKey  string
	Model   string
}

type Config struct {
	GoogleClientID       string
	GoogleClientSecret   string
	GoogleRedirectURI    string
	TwitterBearerToken   string
	PostgresURI          string
	RedisURI             string
	FrontendURL          string
	R2                   R2
	AI                   AI
	SecretKey            string
	CookieName           string
	BillingWebhookSecret string
	AnalysisPacing       time.Duration
}

func LoadConfig() *Config {
	return &Config{
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", "http://localhost:3000/login/callback"),
		TwitterBearerToken: getEnv("TWITTER_BEARER_TOKEN", ""),
		PostgresURI:        getEnv("POSTGRES_URI", ""),
		RedisURI:           getEnv("REDIS_URI", ""),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		AI: AI{
			BaseURL: getEnv("AI_BASE_URL", "https://api.openai.com"),
			APIKey:  getEnv("AI_API_KEY", ""),
			Model:   getEnv("AI_MODEL", "gpt-4o-mini"),
		},
		SecretKey:            getEnv("SECRET_KEY", ""),
		CookieName:           getEnv("COOKIE_NAME", "brandpulse_session"),
		BillingWebhookSecret: getEnv("BILLING_WEBHOOK_SECRET", ""),
		AnalysisPacing:       getEnvDuration("ANALYSIS_PACING_MS", 100) * time.Millisecond,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(defaultValue)
}
