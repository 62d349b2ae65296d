// Package observable wraps a value and broadcasts it to subscribers after
// every mutation.
//
//	health := observable.New(100)
//	health.Subscribe(delegate.Always(func(h int) {
//	    fmt.Printf("Health is now %d\n", h)
//	}))
//	health.Mutate(func(h *int) { *h -= 10 }) // Health is now 90
//
// Subscription semantics, including reentrancy, are those of
// delegate.Delegate.
package observable

import (
	"fmt"
	"sync"

	"github.com/tailored-agentic-units/events/delegate"
)

// Observable owns a value and the Delegate that broadcasts it.
type Observable[T any] struct {
	mu       sync.RWMutex
	value    T
	delegate *delegate.Delegate[T]
}

// New creates an Observable holding initial with no subscribers. Options
// configure the owned delegate.
func New[T any](initial T, opts ...delegate.Option) *Observable[T] {
	return &Observable[T]{
		value:    initial,
		delegate: delegate.New[T](opts...),
	}
}

// Zero creates an Observable holding the zero value of T.
func Zero[T any](opts ...delegate.Option) *Observable[T] {
	var zero T
	return New(zero, opts...)
}

// NewFromConfig creates an Observable whose delegate is built from cfg.
func NewFromConfig[T any](initial T, cfg delegate.Config) (*Observable[T], error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("failed to create observable: %w", err)
	}
	return New(initial, opts...), nil
}

// Subscribe registers callback to receive the value after each mutation.
func (o *Observable[T]) Subscribe(callback delegate.Callback[T]) delegate.Subscription {
	return o.delegate.Subscribe(callback)
}

// Unsubscribe removes a callback registered with Subscribe.
func (o *Observable[T]) Unsubscribe(subscription delegate.Subscription) {
	o.delegate.Unsubscribe(subscription)
}

// Delegate returns the delegate that broadcasts this observable's mutations.
func (o *Observable[T]) Delegate() *delegate.Delegate[T] {
	return o.delegate
}

// Subscriber returns the subscription-only view of the observable, for types
// that hold an Observable but must not let clients mutate it.
func (o *Observable[T]) Subscriber() delegate.Subscriber[T] {
	return o.delegate
}

// Mutate applies mutation to the value, then broadcasts the result. The
// broadcast happens whether or not mutation changed anything.
//
// The value lock is released before broadcasting, so callbacks may read the
// value or mutate it again. A nested Mutate broadcasts only to callbacks
// that are not already executing.
//
// If mutation panics, nothing is broadcast and the value keeps whatever
// changes mutation made before panicking.
func (o *Observable[T]) Mutate(mutation func(value *T)) {
	o.delegate.Broadcast(o.apply(mutation))
}

func (o *Observable[T]) apply(mutation func(value *T)) T {
	o.mu.Lock()
	defer o.mu.Unlock()

	mutation(&o.value)
	return o.value
}

// Set replaces the value and broadcasts it.
func (o *Observable[T]) Set(value T) {
	o.Mutate(func(v *T) { *v = value })
}

// Value returns the current value without broadcasting.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

func (o *Observable[T]) String() string {
	return fmt.Sprintf("Observable{%v}", o.Value())
}
