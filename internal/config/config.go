package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// StorageMode selects the persistence backend at startup
type StorageMode string

const (
	// ModeLocal keeps all records in a single JSON file on disk
	ModeLocal StorageMode = "local"
	// ModeCloud persists records to PostgreSQL
	ModeCloud StorageMode = "cloud"
)

// Config holds all configuration for the application
type Config struct {
	// Persistence
	StorageMode StorageMode
	DatabaseURL string
	LocalDBPath string

	// Auth0
	Auth0Domain   string
	Auth0Audience string
	Auth0ClientID string

	// Generative providers
	GeminiAPIKey   string
	NewsDataAPIKey string

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// S3 Storage for generated images
	S3 S3Config
}

// S3Config holds AWS S3 configuration
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // Optional: for MinIO/LocalStack local dev
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		StorageMode:    StorageMode(getEnv("STORAGE_MODE", string(ModeLocal))),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		LocalDBPath:    getEnv("LOCAL_DB_PATH", "trigent-local.json"),
		Auth0Domain:    getEnv("AUTH0_DOMAIN", ""),
		Auth0Audience:  getEnv("AUTH0_AUDIENCE", ""),
		Auth0ClientID:  getEnv("AUTH0_CLIENT_ID", ""),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		NewsDataAPIKey: getEnv("NEWSDATA_API_KEY", ""),
		Port:           getEnv("PORT", "8080"),
		CORSOrigins:    strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:            getEnv("ENV", "development"),
		S3: S3Config{
			Region:          getEnv("S3_REGION", "us-east-1"),
			Bucket:          getEnv("S3_BUCKET", "trigent-images"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""), // Empty = use AWS, set for MinIO/LocalStack
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GeminiConfigured reports whether the text/image generation provider is reachable
func (c *Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

// NewsConfigured reports whether the news provider is reachable
func (c *Config) NewsConfigured() bool {
	return c.NewsDataAPIKey != ""
}

// S3Configured reports whether generated images can be stored in S3
func (c *Config) S3Configured() bool {
	return c.S3.AccessKeyID != "" && c.S3.SecretAccessKey != ""
}

func (c *Config) validate() error {
	switch c.StorageMode {
	case ModeLocal:
		if c.LocalDBPath == "" {
			return fmt.Errorf("LOCAL_DB_PATH is required in local mode")
		}
	case ModeCloud:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required in cloud mode")
		}
		if c.Auth0Domain == "" {
			return fmt.Errorf("AUTH0_DOMAIN is required in cloud mode")
		}
		if c.Auth0Audience == "" {
			return fmt.Errorf("AUTH0_AUDIENCE is required in cloud mode")
		}
	default:
		return fmt.Errorf("STORAGE_MODE must be %q or %q", ModeLocal, ModeCloud)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
