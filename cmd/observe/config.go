package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
	"github.com/tailored-agentic-units/events/delegate"
)

var ErrInvalidMaxHealth = errors.New("max_health must be positive")

// Config drives the demo. It is read from JSON, YAML or TOML, chosen by the
// file extension.
//
// Example JSON:
//
//	{
//	  "log_level": "debug",
//	  "max_health": 100,
//	  "damage": [30, 50, 40, 10],
//	  "health": {"name": "health", "observer": "slog"},
//	  "respawn": {"name": "respawn", "observer": "noop"}
//	}
type Config struct {
	LogLevel  string          `mapstructure:"log_level"`
	MaxHealth int             `mapstructure:"max_health"`
	Damage    []int           `mapstructure:"damage"`
	Health    delegate.Config `mapstructure:"health"`
	Respawn   delegate.Config `mapstructure:"respawn"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		MaxHealth: 100,
		Damage:    []int{30, 50, 40, 10},
		Health:    delegate.Config{Name: "health", Observer: "slog"},
		Respawn:   delegate.Config{Name: "respawn", Observer: "slog"},
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.LogLevel != "" {
		c.LogLevel = source.LogLevel
	}

	if source.MaxHealth != 0 {
		c.MaxHealth = source.MaxHealth
	}

	if len(source.Damage) > 0 {
		c.Damage = source.Damage
	}

	c.Health.Merge(&source.Health)
	c.Respawn.Merge(&source.Respawn)
}

// Level parses LogLevel as a slog level name.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c *Config) Validate() error {
	if c.MaxHealth <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxHealth, c.MaxHealth)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads filename, merges it over DefaultConfig and validates the
// result.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(filename)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
