package main

import (
	"fmt"
	"io"

	"github.com/tailored-agentic-units/events/delegate"
	"github.com/tailored-agentic-units/events/observable"
)

// run applies each configured damage value to an observable health pool.
// When health drops to zero or below, a respawn signal fires and health is
// reset from inside the subscriber that noticed it.
func run(cfg *Config, out io.Writer) error {
	health, err := observable.NewFromConfig(cfg.MaxHealth, cfg.Health)
	if err != nil {
		return err
	}

	onRespawn, err := delegate.NewFromConfig[struct{}](cfg.Respawn)
	if err != nil {
		return fmt.Errorf("failed to create respawn signal: %w", err)
	}
	respawn := &delegate.Signal{Delegate: onRespawn}

	respawns := 0
	respawn.Subscribe(delegate.Always(func(struct{}) {
		respawns++
		fmt.Fprintln(out, "Respawned")
	}))

	health.Subscribe(delegate.Always(func(h int) {
		fmt.Fprintf(out, "Health is now %d\n", h)
	}))

	health.Subscribe(func(h int) delegate.Response {
		if h > 0 {
			return delegate.StaySubscribed
		}
		respawn.Notify()
		health.Set(cfg.MaxHealth)
		return delegate.StaySubscribed
	})

	for _, damage := range cfg.Damage {
		health.Mutate(func(h *int) { *h -= damage })
	}

	fmt.Fprintf(out, "Final health %d after %d respawns\n", health.Value(), respawns)
	return nil
}
