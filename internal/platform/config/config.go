package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Addr               string
	FrontendDir        string
	Environment        string
	RunSeed            bool
	MaxBodyBytes       int64
	MaxAttachmentBytes int64
	DefaultPageSize    int
	MetricsEnabled     bool
}

func Load() Config {
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		FrontendDir:        getEnv("FRONTEND_DIR", "frontend/dist"),
		Environment:        getEnv("APP_ENV", "development"),
		RunSeed:            getEnvBool("RUN_SEED", true),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 64<<20)),
		MaxAttachmentBytes: int64(getEnvInt("MAX_ATTACHMENT_BYTES", 5<<20)),
		DefaultPageSize:    getEnvInt("PAGE_SIZE", 50),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.MaxAttachmentBytes <= 0 || c.MaxAttachmentBytes > c.MaxBodyBytes {
		return fmt.Errorf("MAX_ATTACHMENT_BYTES must be positive and no larger than MAX_BODY_BYTES")
	}
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive")
	}
	return nil
}
