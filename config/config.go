package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EmailConfig holds settings for the outgoing mailer.
type EmailConfig struct {
	Provider           string // "ses" or "noop"
	FromAddress        string
	FromName           string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
	InsecureSkipVerify bool
}

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	DataDir     string
	Email       EmailConfig
}

// EventsFile returns the path of the JSON file holding the events collection.
func (c *Config) EventsFile() string {
	return filepath.Join(c.DataDir, "events.json")
}

// ReservationsFile returns the path of the JSON file holding the reservations collection.
func (c *Config) ReservationsFile() string {
	return filepath.Join(c.DataDir, "reservations.json")
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		DataDir:     os.Getenv("DATA_DIR"),
		Email: EmailConfig{
			Provider:           os.Getenv("EMAIL_PROVIDER"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			SESRegion:          os.Getenv("SES_REGION"),
			SESAccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
			SESSecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
			InsecureSkipVerify: os.Getenv("SES_INSECURE_SKIP_VERIFY") == "true",
		},
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "noop"
	}

	return cfg, nil
}
