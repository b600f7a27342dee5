package host

// Supervisor decides fallback rendering for an error that escaped the editor
// subtree. It replaces implicit throw-to-boundary semantics with an explicit
// dispatch: the host hands it the error, the supervisor returns what to
// render instead.
type Supervisor interface {
	Handle(err error) string
}

// Boundary is the basic Supervisor. Fallback renders the replacement
// content; Observe, when set, sees every dispatched error first (reporting,
// logging). Boundary performs no retries and no recovery.
type Boundary struct {
	Fallback func(err error) string
	Observe  func(err error)
}

func (b *Boundary) Handle(err error) string {
	if b.Observe != nil {
		b.Observe(err)
	}
	if b.Fallback == nil {
		return DefaultErrorFallback
	}
	return b.Fallback(err)
}
