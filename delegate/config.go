package delegate

import (
	"fmt"
	"strings"

	"github.com/tailored-agentic-units/events/observability"
)

// Config describes a delegate in configuration files. Observer is resolved
// through the observability registry when the delegate is built.
//
// Example JSON:
//
//	{"name": "health", "observer": "slog"}
type Config struct {
	Name     string `json:"name" mapstructure:"name"`
	Observer string `json:"observer" mapstructure:"observer"`
}

// DefaultConfig returns a Config with the default name and the "noop" observer.
func DefaultConfig() Config {
	return Config{
		Name:     defaultName,
		Observer: "noop",
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Name != "" {
		c.Name = source.Name
	}

	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// Options resolves the configuration into construction options.
func (c *Config) Options() ([]Option, error) {
	observer, err := observability.GetObserver(c.Observer)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to resolve observer (registered: %s): %w",
			strings.Join(observability.Observers(), ", "),
			err,
		)
	}

	opts := []Option{WithObserver(observer)}
	if c.Name != "" {
		opts = append(opts, WithName(c.Name))
	}
	return opts, nil
}

// NewFromConfig creates a Delegate from configuration.
func NewFromConfig[T any](cfg Config) (*Delegate[T], error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New[T](opts...), nil
}
