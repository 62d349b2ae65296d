package delegate

// Signal is a Delegate without a payload. Create one with NewSignal, or
// wrap a Delegate built by New or NewFromConfig.
//
//	onRespawn := delegate.NewSignal()
//	onRespawn.Subscribe(delegate.Always(func(struct{}) { fmt.Println("Respawned") }))
//	onRespawn.Notify()
type Signal struct {
	*Delegate[struct{}]
}

// NewSignal creates an empty Signal.
func NewSignal(opts ...Option) *Signal {
	return &Signal{Delegate: New[struct{}](opts...)}
}

// Notify broadcasts to every subscriber of the signal.
func (s *Signal) Notify() {
	s.Broadcast(struct{}{})
}
