// Package delegate provides a synchronous, reentrancy-safe callback registry.
//
// A Delegate holds an ordered set of callbacks. Broadcast hands a value to
// every callback registered when the broadcast began, in registration order.
// Each callback returns a Response deciding whether it stays registered.
//
//	onDamage := delegate.New[int](delegate.WithName("on-damage"))
//	onDamage.Subscribe(func(amount int) delegate.Response {
//	    fmt.Printf("Received %d damage\n", amount)
//	    return delegate.StaySubscribed
//	})
//	onDamage.Broadcast(16)
//
// # Dispatch
//
// Broadcast snapshots the registered subscriptions, then for each one in
// ascending id order removes the callback from the live set, invokes it, and
// reinserts it if it answered StaySubscribed. Consequences:
//
//   - A callback is invoked at most once per broadcast, even when it triggers
//     a nested Broadcast on the same delegate. The nested pass cannot see it.
//   - Subscriptions made during a broadcast first run on the next broadcast.
//   - Unsubscribing a subscription that has not yet run in the current pass
//     keeps it from running.
//   - Unsubscribing the currently executing callback, from inside itself, is a
//     no-op. Only its Response decides whether it runs again.
//
// # Failure
//
// No operation returns an error. Unsubscribe with a stale, zero or foreign
// Subscription does nothing. A panicking callback is not recovered: the panic
// propagates out of Broadcast, the panicking subscription is gone, and
// subscriptions later in the snapshot are left registered but not invoked.
// There is no rollback.
//
// # Concurrency
//
// Delegates may be shared between goroutines. The subscription map is guarded
// by a mutex that is never held while a callback runs. Subscription ids come
// from a single process-wide atomic counter and are never reused.
package delegate
