package config

import (
	"os"
	"time"
)

type AppConfig struct {
	HTTPAddr  string
	JWTSecret string
	SyncDelay time.Duration
}

func Load() AppConfig {
	return AppConfig{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		JWTSecret: getEnv("JWT_SECRET", "JavaScriptIsAwesome!"),
		SyncDelay: getEnvDuration("SYNC_DELAY", time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
