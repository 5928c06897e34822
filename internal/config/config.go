package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the report pipeline needs. Secrets come
// from the process environment, optionally seeded from a .env file.
type Config struct {
	// Monzo API
	AccessToken string
	AccountID   string
	BaseURL     string

	// Report output
	OutputFile string

	// HTTP
	HTTPTimeout time.Duration
}

// Load reads configuration from the environment. When envFile is
// non-empty it is loaded first; otherwise a .env in the working
// directory is picked up if present. A missing file is not an error.
func Load(envFile string) *Config {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	} else {
		_ = godotenv.Load()
	}

	return &Config{
		AccessToken: os.Getenv("MONZO_ACCESS_TOKEN"),
		AccountID:   os.Getenv("MONZO_ACCOUNT_ID"),
		BaseURL:     getEnv("MONZO_API_URL", "https://api.monzo.com"),
		OutputFile:  getEnv("MONZO_REPORT_FILE", "monzo_transactions.xlsx"),
		HTTPTimeout: getEnvDuration("MONZO_HTTP_TIMEOUT", 30*time.Second),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if c.AccessToken == "" {
		problems = append(problems, "MONZO_ACCESS_TOKEN is required")
	}
	if c.AccountID == "" {
		problems = append(problems, "MONZO_ACCOUNT_ID is required")
	}
	if c.BaseURL == "" {
		problems = append(problems, "API base URL cannot be empty")
	}
	if c.OutputFile == "" {
		problems = append(problems, "report output file cannot be empty")
	}
	if c.HTTPTimeout < time.Second {
		problems = append(problems, fmt.Sprintf("invalid HTTP timeout %v: must be at least 1 second", c.HTTPTimeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
