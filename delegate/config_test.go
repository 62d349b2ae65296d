package delegate_test

import (
	"context"
	"strings"
	"testing"

	"github.com/tailored-agentic-units/events/delegate"
	"github.com/tailored-agentic-units/events/observability"
)

func TestDefaultConfig(t *testing.T) {
	cfg := delegate.DefaultConfig()

	if cfg.Name != "delegate" {
		t.Errorf("Name = %q, want delegate", cfg.Name)
	}
	if cfg.Observer != "noop" {
		t.Errorf("Observer = %q, want noop", cfg.Observer)
	}
}

func TestConfig_Merge(t *testing.T) {
	tests := []struct {
		name   string
		source delegate.Config
		want   delegate.Config
	}{
		{
			name:   "empty source keeps defaults",
			source: delegate.Config{},
			want:   delegate.DefaultConfig(),
		},
		{
			name:   "overrides name",
			source: delegate.Config{Name: "health"},
			want:   delegate.Config{Name: "health", Observer: "noop"},
		},
		{
			name:   "overrides observer",
			source: delegate.Config{Observer: "slog"},
			want:   delegate.Config{Name: "delegate", Observer: "slog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := delegate.DefaultConfig()
			cfg.Merge(&tt.source)
			if cfg != tt.want {
				t.Errorf("Merge() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	var events int
	observability.RegisterObserver("delegate-config-test", observability.ObserverFunc(
		func(ctx context.Context, event observability.Event) { events++ },
	))

	d, err := delegate.NewFromConfig[int](delegate.Config{
		Name:     "from-config",
		Observer: "delegate-config-test",
	})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if d.Name() != "from-config" {
		t.Errorf("Name() = %q, want from-config", d.Name())
	}

	d.Subscribe(nil)
	if events != 1 {
		t.Errorf("observer received %d events, want 1", events)
	}
}

func TestNewFromConfig_UnknownObserver(t *testing.T) {
	_, err := delegate.NewFromConfig[int](delegate.Config{Observer: "missing"})
	if err == nil {
		t.Fatal("NewFromConfig should fail for an unknown observer")
	}

	for _, want := range []string{"missing", "noop", "slog"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestNewFromConfig_EmptyName(t *testing.T) {
	d, err := delegate.NewFromConfig[int](delegate.Config{})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	if d.Name() != "delegate" {
		t.Errorf("Name() = %q, want delegate", d.Name())
	}
}
