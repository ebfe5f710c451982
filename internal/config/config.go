// Package config defines contest-digest configuration and how it is loaded.
//
// Values are layered (low -> high precedence): built-in defaults, an optional YAML
// file, the SLACK_URL environment variable, then CONTEST_DIGEST_* variables.
package config

import (
	"fmt"
	"time"
)

// Defaults for every configurable value
const (
	DefaultLogLevel           = "info"
	DefaultWindowDays         = 7
	DefaultHTTPTimeoutSeconds = 30
	DefaultUserAgent          = "contest-digest/1.0 (github.com/pfrederiksen/contest-digest)"
	DefaultAtCoderURL         = "https://atcoder.jp/home?lang=ja"                    // AtCoder home page listing upcoming contests
	DefaultCodeforcesURL      = "https://codeforces.com/api/contest.list?gym=false" // Codeforces contest.list API
	DefaultCronSpec           = "0 9 * * 1"
	DefaultTimezone           = "Asia/Tokyo"
)

// Config contains process configuration
type Config struct {
	// SlackURL is the incoming-webhook URL messages are posted to.
	SlackURL string `koanf:"slack_url"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// WindowDays is how many days ahead a contest may start and still be announced.
	WindowDays int `koanf:"window_days"`

	HTTPTimeoutSeconds int    `koanf:"http_timeout_seconds"`
	UserAgent          string `koanf:"user_agent"`

	// Source endpoints. Overridable for mirrors and tests.
	AtCoderURL    string `koanf:"atcoder_url"`
	CodeforcesURL string `koanf:"codeforces_url"`

	// PushgatewayURL enables pushing run metrics when set.
	PushgatewayURL string `koanf:"pushgateway_url"`

	// CronSpec and Timezone drive the schedule command.
	CronSpec string `koanf:"cron_spec"`
	Timezone string `koanf:"timezone"`
}

// New returns a Config populated with defaults
func New() *Config {
	return &Config{
		LogLevel:           DefaultLogLevel,
		WindowDays:         DefaultWindowDays,
		HTTPTimeoutSeconds: DefaultHTTPTimeoutSeconds,
		UserAgent:          DefaultUserAgent,
		AtCoderURL:         DefaultAtCoderURL,
		CodeforcesURL:      DefaultCodeforcesURL,
		CronSpec:           DefaultCronSpec,
		Timezone:           DefaultTimezone,
	}
}

// Window returns the relevance window as a duration
func (c *Config) Window() time.Duration {
	return time.Duration(c.WindowDays) * 24 * time.Hour
}

// HTTPTimeout returns the per-request timeout for source fetches and delivery
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// Location resolves Timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}

// Validate checks values that would otherwise fail deep inside a run
func (c *Config) Validate() error {
	if c.WindowDays <= 0 {
		return fmt.Errorf("%w: window_days must be positive, got %d", ErrInvalidConfig, c.WindowDays)
	}
	if c.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: http_timeout_seconds must be positive, got %d", ErrInvalidConfig, c.HTTPTimeoutSeconds)
	}
	if c.AtCoderURL == "" || c.CodeforcesURL == "" {
		return fmt.Errorf("%w: source URLs must not be empty", ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// RequireWebhook fails when no delivery destination is configured.
// Call it before fetching anything so a misconfigured run does no network work.
func (c *Config) RequireWebhook() error {
	if c.SlackURL == "" {
		return ErrMissingWebhook
	}
	return nil
}
