package delegate

import "github.com/tailored-agentic-units/events/observability"

// Delegate event types.
const (
	EventSubscribe         observability.EventType = "delegate.subscribe"
	EventUnsubscribe       observability.EventType = "delegate.unsubscribe"
	EventBroadcastStart    observability.EventType = "delegate.broadcast.start"
	EventBroadcastComplete observability.EventType = "delegate.broadcast.complete"
	EventCancel            observability.EventType = "delegate.cancel"
)
