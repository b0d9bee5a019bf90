package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	HouseholdPath string
	WeekStart     time.Weekday
	DigestCron    string
	LogLevel      string
	Port          string
}

func Load() (Config, error) {
	config := Config{
		HouseholdPath: envOrDefault("HOUSEHOLD_PATH", "./data/household.yaml"),
		DigestCron:    envOrDefault("DIGEST_CRON", "0 7 * * *"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		Port:          envOrDefault("PORT", "8080"),
	}

	switch weekStart := envOrDefault("WEEK_START", "monday"); weekStart {
	case "monday":
		config.WeekStart = time.Monday
	case "sunday":
		config.WeekStart = time.Sunday
	default:
		return Config{}, fmt.Errorf("WEEK_START must be monday or sunday, got %q", weekStart)
	}

	return config, nil
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
