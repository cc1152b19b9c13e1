package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds service configuration
type Config struct {
	Listen          string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	ScanTimeout     time.Duration
	MaxBodySize     int64
	Workers         int
	QueryTimeout    time.Duration
	Nameserver      string
	DKIMSelectors   []string
	OutputCSV       string
	OutputHTML      string
}

// New creates a new configuration from environment variables
func New() *Config {
	return &Config{
		Listen:          getEnv("MAILAUDIT_LISTEN", ":8080"),
		ReadTimeout:     getDurationEnv("MAILAUDIT_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:    getDurationEnv("MAILAUDIT_WRITE_TIMEOUT", 180*time.Second),
		ShutdownTimeout: getDurationEnv("MAILAUDIT_SHUTDOWN_TIMEOUT", 30*time.Second),
		ScanTimeout:     getDurationEnv("MAILAUDIT_SCAN_TIMEOUT", 120*time.Second),
		MaxBodySize:     getInt64Env("MAILAUDIT_MAX_BODY_SIZE", 100*1024), // 100KB
		Workers:         getIntEnv("MAILAUDIT_WORKERS", 10),
		QueryTimeout:    getDurationEnv("MAILAUDIT_QUERY_TIMEOUT", 3*time.Second),
		Nameserver:      getEnv("MAILAUDIT_NAMESERVER", ""),
		DKIMSelectors:   getSliceEnv("MAILAUDIT_DKIM_SELECTORS", []string{"default", "selector1", "selector2", "mail"}),
		OutputCSV:       getEnv("MAILAUDIT_OUTPUT_CSV", "domain_check_results.csv"),
		OutputHTML:      getEnv("MAILAUDIT_OUTPUT_HTML", "domain_check_results.html"),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv gets a duration environment variable with a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getIntEnv gets an int environment variable with a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64Env gets an int64 environment variable with a default value
func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getSliceEnv gets a comma-separated environment variable with a default value
func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
