package main

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tailored-agentic-units/events/observability"
)

// eventCounter tallies delegate events by type.
type eventCounter struct {
	mu     sync.Mutex
	counts map[observability.EventType]int
}

func newEventCounter() *eventCounter {
	return &eventCounter{counts: make(map[observability.EventType]int)}
}

func (c *eventCounter) OnEvent(ctx context.Context, event observability.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[event.Type]++
}

func (c *eventCounter) Count(eventType observability.EventType) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[eventType]
}

// registerObservers replaces the "slog" observer with one that logs through
// logger and feeds the returned counter. The counter alone is also
// registered as "count".
func registerObservers(logger *slog.Logger) *eventCounter {
	counter := newEventCounter()

	observability.RegisterObserver("slog", observability.NewMultiObserver(
		observability.NewSlogObserver(logger),
		counter,
	))
	observability.RegisterObserver("count", counter)

	return counter
}
