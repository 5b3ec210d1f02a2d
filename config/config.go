package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration, loaded from the environment.
type Config struct {
	ListenAddr string `env:"LOAN_WIZARD_ADDR" envDefault:":8080"`

	CalcServiceURL      string `env:"LOAN_WIZARD_CALC_URL" envDefault:"http://localhost:5000"`
	CommunityServiceURL string `env:"LOAN_WIZARD_COMMUNITY_URL" envDefault:"http://localhost:5001"`
	ChatServiceURL      string `env:"LOAN_WIZARD_CHAT_URL" envDefault:"http://localhost:5002"`
	SpeechServiceURL    string `env:"LOAN_WIZARD_SPEECH_URL" envDefault:"http://localhost:5003"`

	RedisAddr  string `env:"LOAN_WIZARD_REDIS_ADDR"`
	SQLitePath string `env:"LOAN_WIZARD_SQLITE_PATH" envDefault:"plans.db"`

	RateLimitBurst  int           `env:"LOAN_WIZARD_RATE_BURST" envDefault:"30"`
	RateLimitWindow time.Duration `env:"LOAN_WIZARD_RATE_WINDOW" envDefault:"1m"`

	ClientTimeout time.Duration `env:"LOAN_WIZARD_CLIENT_TIMEOUT" envDefault:"30s"`
}

// Parse loads configuration from environment variables.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
