package config

import (
	"errors"
	"fmt"
	"os"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

// ErrConfig marks configuration problems that must stop the process at startup.
var ErrConfig = errors.New("configuration error")

const (
	DefaultRetryPeriod = 600 * time.Second
	DefaultHTTPTimeout = 30 * time.Second
)

// AppConfig holds all configuration for the application.
// It is built once at startup and passed explicitly; nothing mutates it afterwards.
type AppConfig struct {
	PracticumToken    string
	TelegramToken     string
	TelegramChatID    string
	PracticumEndpoint string // empty means the production endpoint
	TelegramAPIURL    string // empty means api.telegram.org
	RetryPeriod       time.Duration
	HTTPTimeout       time.Duration
	LogLevel          string
	Environment       string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		PracticumToken:    os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID:    os.Getenv("TELEGRAM_CHAT_ID"),
		PracticumEndpoint: os.Getenv("PRACTICUM_ENDPOINT"),
		TelegramAPIURL:    os.Getenv("TELEGRAM_API_URL"),
	}

	var missing []string
	for _, v := range []struct{ name, value string }{
		{"PRACTICUM_TOKEN", cfg.PracticumToken},
		{"TELEGRAM_TOKEN", cfg.TelegramToken},
		{"TELEGRAM_CHAT_ID", cfg.TelegramChatID},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s not set", ErrConfig, strings.Join(missing, ", "))
	}

	var err error
	cfg.RetryPeriod, err = durationFromEnv("RETRY_PERIOD", DefaultRetryPeriod)
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout, err = durationFromEnv("HTTP_TIMEOUT", DefaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

func durationFromEnv(name string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s: %v", ErrConfig, name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrConfig, name)
	}
	return d, nil
}
