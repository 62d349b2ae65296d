package delegate

import "sync/atomic"

// MetricsSnapshot is a point-in-time copy of a delegate's counters.
type MetricsSnapshot struct {
	Subscribed    int64
	Unsubscribed  int64
	Broadcasts    int64
	Invocations   int64
	Cancellations int64
}

// Metrics counts delegate activity. Safe for concurrent use.
type Metrics struct {
	subscribed    atomic.Int64
	unsubscribed  atomic.Int64
	broadcasts    atomic.Int64
	invocations   atomic.Int64
	cancellations atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) RecordSubscribed() {
	m.subscribed.Add(1)
}

func (m *Metrics) RecordUnsubscribed() {
	m.unsubscribed.Add(1)
}

func (m *Metrics) RecordBroadcast() {
	m.broadcasts.Add(1)
}

func (m *Metrics) RecordInvocation() {
	m.invocations.Add(1)
}

func (m *Metrics) RecordCancellation() {
	m.cancellations.Add(1)
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Subscribed:    m.subscribed.Load(),
		Unsubscribed:  m.unsubscribed.Load(),
		Broadcasts:    m.broadcasts.Load(),
		Invocations:   m.invocations.Load(),
		Cancellations: m.cancellations.Load(),
	}
}
