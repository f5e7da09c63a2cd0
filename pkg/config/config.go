package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"server"`

	Database struct {
		DSN             string `yaml:"dsn"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
	} `yaml:"database"`

	Weibo WeiboConfig `yaml:"weibo"`

	Schedule struct {
		DefaultDailyTime string `yaml:"default_daily_time"`
	} `yaml:"schedule"`
}

// WeiboConfig holds settings for the authenticated Weibo m-site client
type WeiboConfig struct {
	BaseURL      string        `yaml:"base_url"`
	Cookie       string        `yaml:"cookie"` // account session cookie, can use environment variable
	UserAgent    string        `yaml:"user_agent"`
	Timeout      time.Duration `yaml:"timeout"`
	PageDelay    time.Duration `yaml:"page_delay"`    // pacing between list pages
	CheckinDelay time.Duration `yaml:"checkin_delay"` // pacing after each check-in action
	MaxPages     int           `yaml:"max_pages"`     // safety cap on pagination
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:chaohua.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for weibo client
	if cfg.Weibo.BaseURL == "" {
		cfg.Weibo.BaseURL = "https://m.weibo.cn"
	}
	if cfg.Weibo.UserAgent == "" {
		cfg.Weibo.UserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1"
	}
	if cfg.Weibo.Timeout == 0 {
		cfg.Weibo.Timeout = 30 * time.Second
	}
	if cfg.Weibo.PageDelay == 0 {
		cfg.Weibo.PageDelay = 300 * time.Millisecond
	}
	if cfg.Weibo.CheckinDelay == 0 {
		cfg.Weibo.CheckinDelay = 400 * time.Millisecond
	}
	if cfg.Weibo.MaxPages == 0 {
		cfg.Weibo.MaxPages = 50
	}

	// set defaults for schedule
	if cfg.Schedule.DefaultDailyTime == "" {
		cfg.Schedule.DefaultDailyTime = "09:00"
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Weibo.Cookie == "" {
		return fmt.Errorf("weibo.cookie is required")
	}
	if cfg.Weibo.Timeout < time.Second {
		return fmt.Errorf("weibo timeout must be at least 1 second")
	}
	if cfg.Weibo.PageDelay < 0 || cfg.Weibo.CheckinDelay < 0 {
		return fmt.Errorf("pacing delays must be non-negative")
	}
	if cfg.Weibo.MaxPages < 1 {
		return fmt.Errorf("weibo.max_pages must be at least 1")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetWeiboConfig returns weibo client configuration
func (c *Config) GetWeiboConfig() WeiboConfig {
	return c.Weibo
}
