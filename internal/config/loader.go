package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override, e.g. CONTEST_DIGEST_WINDOW_DAYS
	EnvPrefix = "CONTEST_DIGEST_"

	// EnvConfigFile names a YAML file to load when no path is passed explicitly
	EnvConfigFile = EnvPrefix + "CONFIG"

	// EnvSlackURL is the historical name of the webhook variable
	EnvSlackURL = "SLACK_URL"
)

// Load builds a Config by layering defaults, an optional file and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. YAML file at path, or at $CONTEST_DIGEST_CONFIG when path is empty
//  3. SLACK_URL
//  4. CONTEST_DIGEST_* (CONTEST_DIGEST_LOG_LEVEL -> log_level)
func Load(_ context.Context, path string) (*Config, error) {
	base := New()
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrLoadConfig, path, err)
		}
	}

	slackProvider := env.Provider(EnvSlackURL, ".", func(s string) string {
		if s != EnvSlackURL {
			return ""
		}
		return "slack_url"
	})
	if err := k.Load(slackProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Keys stay flat; underscores are part of the koanf tag names.
	prefixed := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(prefixed, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
