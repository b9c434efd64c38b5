package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     string
	LogLevel string

	JWTSecret string

	// BaseCurrency is the currency every forecast figure is expressed in.
	BaseCurrency string
	// ForecastWindowMonths is the forward window for overhead expansion.
	ForecastWindowMonths int
	// UnknownCurrencyPolicy is "base" (convert with multiplier 1 and warn)
	// or "exclude" (drop the record from the timeline).
	UnknownCurrencyPolicy string
	// RateStaleAfter is how old a loaded rate table may get before the
	// scheduler starts warning about it.
	RateStaleAfter time.Duration

	SMTPHost        string
	SMTPPort        string
	SMTPUsername    string
	SMTPPassword    string
	SenderEmail     string
	DigestRecipient string
	DigestSchedule  string
}

// NewConfig loads configuration from a .env file (if present) and the
// environment
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:             getEnv("JWT_SECRET", "secret"),
		BaseCurrency:          getEnv("BASE_CURRENCY", "PKR"),
		UnknownCurrencyPolicy: getEnv("UNKNOWN_CURRENCY_POLICY", "base"),
		SMTPHost:              getEnv("SMTP_HOST", ""),
		SMTPPort:              getEnv("SMTP_PORT", "587"),
		SMTPUsername:          getEnv("SMTP_USERNAME", ""),
		SMTPPassword:          getEnv("SMTP_PASSWORD", ""),
		SenderEmail:           getEnv("SENDER_EMAIL", "noreply@merchops.local"),
		DigestRecipient:       getEnv("DIGEST_RECIPIENT", ""),
		DigestSchedule:        getEnv("DIGEST_SCHEDULE", "0 7 * * *"),
	}

	windowMonths, err := strconv.Atoi(getEnv("FORECAST_WINDOW_MONTHS", "6"))
	if err != nil || windowMonths < 1 {
		return nil, fmt.Errorf("FORECAST_WINDOW_MONTHS must be a positive integer")
	}
	cfg.ForecastWindowMonths = windowMonths

	staleAfter, err := time.ParseDuration(getEnv("RATE_STALE_AFTER", "72h"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_STALE_AFTER: %w", err)
	}
	cfg.RateStaleAfter = staleAfter

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.BaseCurrency == "" {
		return nil, fmt.Errorf("BASE_CURRENCY is required")
	}
	if cfg.UnknownCurrencyPolicy != "base" && cfg.UnknownCurrencyPolicy != "exclude" {
		return nil, fmt.Errorf("UNKNOWN_CURRENCY_POLICY must be \"base\" or \"exclude\"")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
