package config

import "os"

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	GoogleAIKey        string
	TiktokClientKey    string
	TiktokClientSecret string
	R2                 R2
	SecretKey          string
	ScheduleFile       string
	ListenAddr         string
	MockMode           bool
}

func LoadConfig() *Config {
	return &Config{
		GoogleAIKey:        getEnv("GOOGLE_AI_API_KEY", ""),
		TiktokClientKey:    getEnv("TIKTOK_CLIENT_KEY", ""),
		TiktokClientSecret: getEnv("TIKTOK_CLIENT_SECRET", ""),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		SecretKey:    getEnv("SECRET_KEY", ""),
		ScheduleFile: getEnv("SCHEDULE_FILE", "posting_schedule.json"),
		ListenAddr:   getEnv("LISTEN_ADDR", ":3000"),
		MockMode:     getEnv("MOCK_MODE", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
