package crash

import (
	"github.com/inkboard/canvashost"
)

// Monitor observes a single engine instance's crash channel through a
// latch. It belongs to exactly one instance; the controller replaces the
// monitor whenever the instance changes.
type Monitor struct {
	latch *Latch[error]
	off   func()
}

// Watch subscribes to the engine's crash channel and seeds the latch from a
// synchronous read of the engine's current crash error, so a crash that
// happened before the monitor existed is not missed.
func Watch(e canvashost.Engine) *Monitor {
	m := &Monitor{latch: NewLatch[error]()}
	m.off = e.On(canvashost.EventCrash, func(payload any) {
		if err, ok := payload.(error); ok && err != nil {
			m.latch.Trip(err)
			return
		}
		if err := e.CrashError(); err != nil {
			m.latch.Trip(err)
		}
	})
	if err := e.CrashError(); err != nil {
		m.latch.Trip(err)
	}
	return m
}

// Current returns the latched crash error, or nil while the instance is
// healthy. All consumers observe the same value.
func (m *Monitor) Current() error {
	err, ok := m.latch.Current()
	if !ok {
		return nil
	}
	return err
}

// Subscribe registers fn for the crash notification; see Latch.Subscribe.
func (m *Monitor) Subscribe(fn func(error)) (unsubscribe func()) {
	return m.latch.Subscribe(fn)
}

// Close detaches the monitor from the engine's crash channel. The latched
// value, if any, remains readable.
func (m *Monitor) Close() {
	if m.off != nil {
		m.off()
		m.off = nil
	}
}
