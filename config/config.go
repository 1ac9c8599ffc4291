// Package config loads CLI configuration from an optional YAML file with
// environment overrides. The engine itself takes explicit dependencies and
// never reads configuration; this package only serves the command layer.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI needs to wire a simulation run.
type Config struct {
	// Provider selects the generation backend: "openai" or "anthropic".
	Provider string `yaml:"provider"`
	// Model overrides the provider's default model id.
	Model string `yaml:"model"`
	// Temperature overrides the provider's default sampling temperature.
	Temperature float64 `yaml:"temperature"`

	// Count is the number of sessions to simulate.
	Count int `yaml:"count"`
	// Concurrency bounds simultaneously progressing sessions.
	Concurrency int `yaml:"concurrency"`

	// Redis configures the durable session store. Empty Addr selects the
	// in-memory store.
	Redis RedisConfig `yaml:"redis"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is "json" or "text".
	LogFormat string `yaml:"log_format"`
}

// RedisConfig holds session store connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Provider:    "openai",
		Temperature: 0.7,
		Count:       1,
		Concurrency: 5,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads the configuration file at path on top of the defaults, then
// applies environment overrides. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DINERSIM_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("DINERSIM_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("DINERSIM_REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("DINERSIM_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

func (c *Config) validate() error {
	switch c.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unknown provider: %q", c.Provider)
	}
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}
