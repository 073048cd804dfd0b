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

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if SKINSIGHT_CONFIG is set
//  3. env (prefix SKINSIGHT_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("SKINSIGHT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SKINSIGHT_ANALYSIS_BASE_URL, SKINSIGHT_LOG_LEVEL, ...
	// Env keys map to flat koanf keys; underscores are preserved to match
	// the koanf tags on the struct.
	envProvider := env.Provider("SKINSIGHT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "skinsight_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.AnalysisBaseURL == "" {
		return nil, fmt.Errorf("%w: analysis_base_url must not be empty", ErrInvalidConfig)
	}
	if cfg.ProfileCacheCapacity <= 0 {
		return nil, fmt.Errorf("%w: profile_cache_capacity must be positive", ErrInvalidConfig)
	}
	if cfg.ProfileCacheTTLHours < 0 || cfg.FeedCacheTTLHours < 0 {
		return nil, fmt.Errorf("%w: cache TTLs must not be negative", ErrInvalidConfig)
	}
	return &cfg, nil
}
