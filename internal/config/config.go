// Package config loads server settings from the environment and an optional
// YAML file using Viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	keyDatabaseURL   = "database_url"
	keyRedisURL      = "redis_url"
	keyBearerToken   = "bearer_token"
	keyPort          = "port"
	keyCacheTTL      = "cache_ttl"
	keySourceURLs    = "fare_source_urls"
	keyMockFares     = "mock_fares"
	keySourceTimeout = "source_timeout"
	keyMigrationsDir = "migrations_dir"
	keyRateLimit     = "rate_limit_per_minute"
)

// ErrMissingKey is returned when a required setting is empty.
var ErrMissingKey = errors.New("required setting missing")

// Config holds every setting the server reads at startup.
type Config struct {
	DatabaseURL        string
	RedisURL           string
	BearerToken        string
	Port               string
	CacheTTL           time.Duration
	FareSourceURLs     []string
	MockFares          bool
	SourceTimeout      time.Duration
	MigrationsDir      string
	RateLimitPerMinute int
}

// Load reads settings from the environment, layered over the YAML file at
// path when path is non-empty. Environment variables use the upper-case key
// (DATABASE_URL, CACHE_TTL, ...) and win over the file.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault(keyPort, "8080")
	v.SetDefault(keyCacheTTL, time.Hour)
	v.SetDefault(keyMockFares, true)
	v.SetDefault(keySourceTimeout, 10*time.Second)
	v.SetDefault(keyMigrationsDir, "migrations")
	v.SetDefault(keyRateLimit, 60)
	v.SetDefault(keySourceURLs, []string{})

	for _, k := range []string{keyDatabaseURL, keyRedisURL, keyBearerToken} {
		if err := v.BindEnv(k); err != nil {
			return Config{}, fmt.Errorf("binding %s: %w", k, err)
		}
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := Config{
		DatabaseURL:        strings.TrimSpace(v.GetString(keyDatabaseURL)),
		RedisURL:           strings.TrimSpace(v.GetString(keyRedisURL)),
		BearerToken:        strings.TrimSpace(v.GetString(keyBearerToken)),
		Port:               v.GetString(keyPort),
		CacheTTL:           v.GetDuration(keyCacheTTL),
		FareSourceURLs:     splitList(v.GetStringSlice(keySourceURLs)),
		MockFares:          v.GetBool(keyMockFares),
		SourceTimeout:      v.GetDuration(keySourceTimeout),
		MigrationsDir:      v.GetString(keyMigrationsDir),
		RateLimitPerMinute: v.GetInt(keyRateLimit),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, strings.ToUpper(keyDatabaseURL))
	}
	if c.RedisURL == "" {
		missing = append(missing, strings.ToUpper(keyRedisURL))
	}
	if c.BearerToken == "" {
		missing = append(missing, strings.ToUpper(keyBearerToken))
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingKey, strings.Join(missing, ", "))
	}

	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got %s", c.CacheTTL)
	}
	if c.SourceTimeout <= 0 {
		return fmt.Errorf("source timeout must be positive, got %s", c.SourceTimeout)
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.RateLimitPerMinute)
	}
	return nil
}

// splitList flattens comma-separated entries and drops blanks. Env values
// arrive as one comma-joined string, YAML values as a list.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
