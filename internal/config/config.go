package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is read once at start-up and treated as immutable afterwards.
type Config struct {
	Port          int    `koanf:"port"`
	MongoURI      string `koanf:"mongo_uri"`
	MongoDatabase string `koanf:"mongo_database"`

	CatalogTimeout time.Duration `koanf:"catalog_timeout"`
	HistoryTimeout time.Duration `koanf:"history_timeout"`
	StatsTimeout   time.Duration `koanf:"stats_timeout"`

	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerOpenTimeout time.Duration `koanf:"breaker_open_timeout"`

	RateLimitRPS   float64 `koanf:"rate_limit_rps"`
	RateLimitBurst int     `koanf:"rate_limit_burst"`
	AllowedOrigins string  `koanf:"allowed_origins"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	StatsSinkEnabled bool `koanf:"stats_sink_enabled"`
}

func defaultConfig() Config {
	return Config{
		Port:               8080,
		MongoDatabase:      "agenthub",
		CatalogTimeout:     5 * time.Second,
		HistoryTimeout:     2 * time.Second,
		StatsTimeout:       5 * time.Second,
		BreakerMaxFailures: 5,
		BreakerOpenTimeout: 30 * time.Second,
		RateLimitRPS:       3,
		RateLimitBurst:     5,
		LogLevel:           "info",
		LogFormat:          "json",
		StatsSinkEnabled:   true,
	}
}

// Load layers environment variables (and any .env file) over the defaults.
// Variable names are the upper-case koanf keys, e.g. MONGO_URI.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load config defaults: %w", err)
	}

	known := make(map[string]struct{})
	for _, key := range k.Keys() {
		known[key] = struct{}{}
	}
	envProvider := env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if _, ok := known[key]; !ok {
			return ""
		}
		return key
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGO_URI is required"))
	}
	if c.MongoDatabase == "" {
		errs = append(errs, errors.New("MONGO_DATABASE must not be empty"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d is out of range", c.Port))
	}
	if c.CatalogTimeout <= 0 || c.HistoryTimeout <= 0 || c.StatsTimeout <= 0 {
		errs = append(errs, errors.New("timeouts must be positive"))
	}
	if c.BreakerMaxFailures == 0 {
		errs = append(errs, errors.New("BREAKER_MAX_FAILURES must be at least 1"))
	}
	if c.BreakerOpenTimeout <= 0 {
		errs = append(errs, errors.New("BREAKER_OPEN_TIMEOUT must be positive"))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("rate limit must be positive"))
	}
	return errors.Join(errs...)
}

// Origins splits AllowedOrigins on commas, dropping blanks.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
