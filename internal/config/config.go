// File path: internal/config/config.go

// Package config loads the site server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config controls the HTTP server, the session registry and the optional
// inquiry log.
type Config struct {
	Addr           string        `env:"SITE_ADDR"`
	LogLevel       string        `env:"LOG_LEVEL"`
	InquiryDBPath  string        `env:"SITE_INQUIRY_DB"`
	WhatsAppNumber string        `env:"SITE_WHATSAPP_NUMBER"`
	ContentFile    string        `env:"SITE_CONTENT_FILE"`
	SessionTTL     time.Duration `env:"SITE_SESSION_TTL"`
	MaxSessions    int           `env:"SITE_SESSION_MAX"`
	SweepInterval  time.Duration `env:"SITE_SWEEP_INTERVAL"`
	SeedRecords    bool          `env:"SITE_SEED_RECORDS"`
	SecureCookies  bool          `env:"SITE_SECURE_COOKIES"`
	ShutdownGrace  time.Duration `env:"SITE_SHUTDOWN_GRACE"`
}

// DefaultConfig returns the baseline configuration used when nothing is
// overridden.
func DefaultConfig() Config {
	return Config{
		Addr:          ":8080",
		LogLevel:      "info",
		SessionTTL:    30 * time.Minute,
		MaxSessions:   10000,
		SweepInterval: time.Minute,
		SeedRecords:   true,
		ShutdownGrace: 10 * time.Second,
	}
}

// LoadDotEnv loads .env (or the given files) into the process environment.
// A missing default .env is not an error.
func LoadDotEnv(files ...string) (bool, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) == 0 && errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load env file: %w", err)
	}
	return true, nil
}

// Load builds a Config from defaults and environment variables.
func Load() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg = applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg Config) Config {
	defaults := DefaultConfig()
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	if cfg.Addr == "" {
		cfg.Addr = defaults.Addr
	}
	cfg.InquiryDBPath = strings.TrimSpace(cfg.InquiryDBPath)
	cfg.ContentFile = strings.TrimSpace(cfg.ContentFile)
	cfg.WhatsAppNumber = strings.TrimSpace(cfg.WhatsAppNumber)
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaults.SessionTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaults.MaxSessions
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaults.SweepInterval
	}
	if cfg.ShutdownGrace <= 0 {
		cfg.ShutdownGrace = defaults.ShutdownGrace
	}
	return cfg
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("listen address required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	if c.MaxSessions <= 0 {
		return fmt.Errorf("session cap must be positive")
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("sweep interval must be positive")
	}
	if c.WhatsAppNumber != "" {
		for _, r := range c.WhatsAppNumber {
			if (r < '0' || r > '9') && r != '+' && r != ' ' && r != '-' {
				return fmt.Errorf("whatsapp number %q contains %q", c.WhatsAppNumber, r)
			}
		}
	}
	return nil
}

// InquiryLogEnabled reports whether contact submissions are written to
// SQLite.
func (c Config) InquiryLogEnabled() bool {
	return strings.TrimSpace(c.InquiryDBPath) != ""
}
