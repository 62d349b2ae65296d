package delegate

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/events/observability"
)

const defaultName = "delegate"

type settings struct {
	name     string
	observer observability.Observer
}

// Option configures a Delegate at construction.
type Option func(*settings)

// WithName sets the name reported as the Source of emitted events.
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithObserver sets the observer receiving delegate events. A nil observer
// leaves the default NoOpObserver in place.
func WithObserver(o observability.Observer) Option {
	return func(s *settings) {
		if o != nil {
			s.observer = o
		}
	}
}

// Delegate maintains callbacks that are invoked by Broadcast.
//
// The zero value is not usable. Use New to create a Delegate.
type Delegate[T any] struct {
	id       string
	name     string
	observer observability.Observer
	observed bool
	metrics  *Metrics

	mu            sync.Mutex
	subscriptions map[uint64]Callback[T]
}

// New creates an empty Delegate.
func New[T any](opts ...Option) *Delegate[T] {
	s := settings{
		name:     defaultName,
		observer: observability.NoOpObserver{},
	}
	for _, opt := range opts {
		opt(&s)
	}

	_, noop := s.observer.(observability.NoOpObserver)

	return &Delegate[T]{
		id:            uuid.Must(uuid.NewV7()).String(),
		name:          s.name,
		observer:      s.observer,
		observed:      !noop,
		metrics:       NewMetrics(),
		subscriptions: make(map[uint64]Callback[T]),
	}
}

// ID returns the unique identifier of this delegate instance.
func (d *Delegate[T]) ID() string {
	return d.id
}

// Name returns the delegate's name.
func (d *Delegate[T]) Name() string {
	return d.name
}

// Subscribe registers callback to be invoked by future broadcasts. A
// callback subscribed while a broadcast is running is first invoked by the
// next broadcast. A nil callback is registered as one that does nothing and
// stays subscribed.
func (d *Delegate[T]) Subscribe(callback Callback[T]) Subscription {
	if callback == nil {
		callback = func(T) Response { return StaySubscribed }
	}

	sub := newSubscription()

	d.mu.Lock()
	d.subscriptions[sub.id] = callback
	d.mu.Unlock()

	d.metrics.RecordSubscribed()
	d.emit(EventSubscribe, map[string]any{"subscription": sub.id})

	return sub
}

// Unsubscribe removes a previously registered callback.
//
// It does nothing if the subscription was issued by another delegate, was
// already removed, or belongs to the callback currently being invoked. In
// the last case the callback's Response still decides whether it stays.
func (d *Delegate[T]) Unsubscribe(subscription Subscription) {
	d.mu.Lock()
	_, found := d.subscriptions[subscription.id]
	if found {
		delete(d.subscriptions, subscription.id)
	}
	d.mu.Unlock()

	if found {
		d.metrics.RecordUnsubscribed()
	}
	d.emit(EventUnsubscribe, map[string]any{
		"subscription": subscription.id,
		"found":        found,
	})
}

// Broadcast invokes every callback registered when the call began, in
// registration order, with value. It returns once each of them has run.
//
// Each callback is taken out of the delegate while it runs and put back only
// if it returns StaySubscribed, so a nested Broadcast from inside a callback
// never reaches the callbacks that are already executing.
func (d *Delegate[T]) Broadcast(value T) {
	d.mu.Lock()
	ids := slices.Sorted(maps.Keys(d.subscriptions))
	d.mu.Unlock()

	d.metrics.RecordBroadcast()
	d.emit(EventBroadcastStart, map[string]any{"subscribers": len(ids)})

	invoked, cancelled := 0, 0
	for _, id := range ids {
		callback, ok := d.take(id)
		if !ok {
			continue
		}

		invoked++
		d.metrics.RecordInvocation()

		if callback(value) == CancelSubscription {
			cancelled++
			d.metrics.RecordCancellation()
			d.emit(EventCancel, map[string]any{"subscription": id})
			continue
		}

		d.mu.Lock()
		d.subscriptions[id] = callback
		d.mu.Unlock()
	}

	d.emit(EventBroadcastComplete, map[string]any{
		"subscribers": len(ids),
		"invoked":     invoked,
		"cancelled":   cancelled,
	})
}

// Len reports the number of registered callbacks, excluding any that are
// executing in an in-flight broadcast.
func (d *Delegate[T]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subscriptions)
}

// Metrics returns a snapshot of the delegate's activity counters.
func (d *Delegate[T]) Metrics() MetricsSnapshot {
	return d.metrics.Snapshot()
}

func (d *Delegate[T]) String() string {
	return fmt.Sprintf("Delegate[%s]{%d active subscriptions}", d.name, d.Len())
}

func (d *Delegate[T]) take(id uint64) (Callback[T], bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	callback, ok := d.subscriptions[id]
	if ok {
		delete(d.subscriptions, id)
	}
	return callback, ok
}

func (d *Delegate[T]) emit(eventType observability.EventType, data map[string]any) {
	if !d.observed {
		return
	}

	data["delegate_id"] = d.id
	d.observer.OnEvent(context.Background(), observability.Event{
		Type:      eventType,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    d.name,
		Data:      data,
	})
}
