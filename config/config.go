package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration. DBDriver selects "postgres" or "sqlite";
	// sqlite uses DBPath and ignores the host/port fields.
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Redis configuration. Optional: when RedisAddr and RedisURL are both
	// empty the cache, rate limiter and language persistence are disabled.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// AnalysisDelay is the artificial suspension before analyze-photo
	// responds, modeling an external inference call.
	AnalysisDelay time.Duration

	// S3 photo storage. Optional: when S3Bucket is empty, photo payloads
	// are stored inline in the photo_url column.
	S3Bucket    string
	S3Region    string
	S3PublicURL string
}

// LoadConfig creates a new Config instance from environment variables,
// falling back to development defaults for anything unset.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "snapmenu"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),
		DBPath:     getEnv("DB_PATH", "snapmenu.db"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       0,
		RedisURL:      os.Getenv("REDIS_URL"),

		AnalysisDelay: 2 * time.Second,

		S3Bucket:    os.Getenv("S3_BUCKET_NAME"),
		S3Region:    os.Getenv("AWS_REGION"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}

	if raw := os.Getenv("ANALYSIS_DELAY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ANALYSIS_DELAY %q: %w", raw, err)
		}
		cfg.AnalysisDelay = d
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
