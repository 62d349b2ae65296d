package delegate

import (
	"strconv"
	"sync/atomic"
)

var nextSubscriptionID atomic.Uint64

// Subscription identifies one registered callback. It is returned by
// Subscribe and is only meaningful to the Delegate that issued it.
// The zero Subscription never identifies a live callback.
type Subscription struct {
	id uint64
}

func newSubscription() Subscription {
	return Subscription{id: nextSubscriptionID.Add(1)}
}

// ID returns the process-unique identity of the subscription.
func (s Subscription) ID() uint64 {
	return s.id
}

func (s Subscription) String() string {
	return "Subscription(" + strconv.FormatUint(s.id, 10) + ")"
}

// Response is returned by a callback to decide whether it stays registered.
type Response int

const (
	StaySubscribed Response = iota
	CancelSubscription
)

func (r Response) String() string {
	switch r {
	case StaySubscribed:
		return "StaySubscribed"
	case CancelSubscription:
		return "CancelSubscription"
	default:
		return "Response(" + strconv.Itoa(int(r)) + ")"
	}
}

// Callback receives a broadcast value. T is passed by value; callbacks that
// receive reference types must treat them as read-only.
type Callback[T any] func(value T) Response

// Always wraps fn as a callback that stays subscribed.
func Always[T any](fn func(T)) Callback[T] {
	return func(value T) Response {
		fn(value)
		return StaySubscribed
	}
}

// Once wraps fn as a callback that cancels itself after its first call.
func Once[T any](fn func(T)) Callback[T] {
	return func(value T) Response {
		fn(value)
		return CancelSubscription
	}
}

// Subscriber is the subscription half of a Delegate. Types that own a
// Delegate or Observable return it to let clients listen without being able
// to broadcast or mutate.
type Subscriber[T any] interface {
	Subscribe(callback Callback[T]) Subscription
	Unsubscribe(subscription Subscription)
}
