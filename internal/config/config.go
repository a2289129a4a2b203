// Package config manages the reposeed configuration file and the optional
// file manifest that overrides the built-in project skeleton.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// RepoConfig names the target repository.
type RepoConfig struct {
	Owner  string `toml:"owner"`
	Name   string `toml:"name"`
	Branch string `toml:"branch"`
}

// RetryConfig holds the writer's retry knobs. Durations are carried as
// millisecond integers so the file stays plain TOML.
type RetryConfig struct {
	MaxRetries     int  `toml:"max_retries"`
	BaseDelayMS    int  `toml:"base_delay_ms"`
	MaxDelayMS     int  `toml:"max_delay_ms"`
	UpdateExisting bool `toml:"update_existing"`
}

// ThrottleConfig holds the fixed inter-write delay used to stay under the
// API rate limit.
type ThrottleConfig struct {
	WriteDelayMS int `toml:"write_delay_ms"`
}

// Config is the top-level reposeed configuration.
type Config struct {
	Repo     RepoConfig     `toml:"repo"`
	Retry    RetryConfig    `toml:"retry"`
	Throttle ThrottleConfig `toml:"throttle"`
}

// Default returns the configuration used when a field is absent.
func Default() *Config {
	return &Config{
		Repo: RepoConfig{Branch: "main"},
		Retry: RetryConfig{
			MaxRetries:  3,
			BaseDelayMS: 500,
			MaxDelayMS:  10_000,
		},
		Throttle: ThrottleConfig{WriteDelayMS: 1000},
	}
}

// Load reads a TOML configuration file, filling absent fields from Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Repo.Owner == "" || cfg.Repo.Name == "" {
		return nil, fmt.Errorf("config %s: repo.owner and repo.name are required", path)
	}
	if cfg.Repo.Branch == "" {
		cfg.Repo.Branch = "main"
	}
	return cfg, nil
}

// Save writes the configuration back to disk.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// BaseDelay returns the retry base delay as a duration.
func (c *Config) BaseDelay() time.Duration {
	return time.Duration(c.Retry.BaseDelayMS) * time.Millisecond
}

// MaxDelay returns the retry backoff cap as a duration.
func (c *Config) MaxDelay() time.Duration {
	return time.Duration(c.Retry.MaxDelayMS) * time.Millisecond
}

// WriteDelay returns the inter-write throttle as a duration.
func (c *Config) WriteDelay() time.Duration {
	return time.Duration(c.Throttle.WriteDelayMS) * time.Millisecond
}
