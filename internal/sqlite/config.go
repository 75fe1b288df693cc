// File path: internal/sqlite/config.go
package sqlite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the connection pool settings for the inquiry log. Values come
// from an optional JSON file (SQLITE_CONFIG_FILE) and SQLITE_* variables.
type Config struct {
	Path string `json:"path" env:"SQLITE_PATH"`

	MaxOpenConns int `json:"max_open_conns" env:"SQLITE_MAX_OPEN_CONNS"`
	MaxIdleConns int `json:"max_idle_conns" env:"SQLITE_MAX_IDLE_CONNS"`

	ConnMaxLifetime time.Duration `json:"conn_max_lifetime" env:"SQLITE_CONN_MAX_LIFETIME"`
	ConnMaxIdleTime time.Duration `json:"conn_max_idle_time" env:"SQLITE_CONN_MAX_IDLE_TIME"`
	BusyTimeout     time.Duration `json:"busy_timeout" env:"SQLITE_BUSY_TIMEOUT"`
}

// fileConfig mirrors Config with durations spelled as strings ("15m").
type fileConfig struct {
	Path            string `json:"path"`
	MaxOpenConns    int    `json:"max_open_conns"`
	MaxIdleConns    int    `json:"max_idle_conns"`
	ConnMaxLifetime string `json:"conn_max_lifetime"`
	ConnMaxIdleTime string `json:"conn_max_idle_time"`
	BusyTimeout     string `json:"busy_timeout"`
}

// Merge overlays the non-zero fields of override onto c.
func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.Path) != "" {
		result.Path = strings.TrimSpace(override.Path)
	}
	if override.MaxOpenConns > 0 {
		result.MaxOpenConns = override.MaxOpenConns
	}
	if override.MaxIdleConns > 0 {
		result.MaxIdleConns = override.MaxIdleConns
	}
	if override.ConnMaxLifetime > 0 {
		result.ConnMaxLifetime = override.ConnMaxLifetime
	}
	if override.ConnMaxIdleTime > 0 {
		result.ConnMaxIdleTime = override.ConnMaxIdleTime
	}
	if override.BusyTimeout > 0 {
		result.BusyTimeout = override.BusyTimeout
	}
	return result
}

// LoadConfig reads the optional config file, then the environment, and fills
// in pool defaults.
func LoadConfig() (Config, error) {
	cfg := Config{}
	if path := strings.TrimSpace(os.Getenv("SQLITE_CONFIG_FILE")); path != "" {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.Merge(fileCfg)
	}
	var envCfg Config
	if err := env.Parse(&envCfg); err != nil {
		return Config{}, fmt.Errorf("parse sqlite env: %w", err)
	}
	cfg = cfg.Merge(envCfg)
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = 4
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = c.MaxOpenConns
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = 15 * time.Minute
	}
	if c.ConnMaxIdleTime <= 0 {
		c.ConnMaxIdleTime = 5 * time.Minute
	}
	if c.BusyTimeout <= 0 {
		c.BusyTimeout = 5 * time.Second
	}
}

func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("read sqlite config: %w", err)
	}
	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse sqlite config: %w", err)
	}
	cfg := Config{
		Path:         raw.Path,
		MaxOpenConns: raw.MaxOpenConns,
		MaxIdleConns: raw.MaxIdleConns,
	}
	durations := []struct {
		name   string
		value  string
		target *time.Duration
	}{
		{"conn_max_lifetime", raw.ConnMaxLifetime, &cfg.ConnMaxLifetime},
		{"conn_max_idle_time", raw.ConnMaxIdleTime, &cfg.ConnMaxIdleTime},
		{"busy_timeout", raw.BusyTimeout, &cfg.BusyTimeout},
	}
	for _, d := range durations {
		if strings.TrimSpace(d.value) == "" {
			continue
		}
		parsed, err := time.ParseDuration(strings.TrimSpace(d.value))
		if err != nil {
			return Config{}, fmt.Errorf("parse sqlite config %s: %w", d.name, err)
		}
		*d.target = parsed
	}
	return cfg, nil
}
