package mount

import (
	"github.com/inkboard/canvashost"
	"github.com/inkboard/canvashost/lifecycle"
)

// Callback is the caller-provided mount hook. The returned teardown may be
// nil.
type Callback func(e canvashost.Engine) (teardown func())

// Sequencer runs mount hooks exactly once per committed instance and pairs
// them with teardowns. It follows the host's single-threaded commit cycle
// and is not safe for concurrent use.
type Sequencer struct {
	lastGen   string
	teardowns []func()
}

// NewSequencer returns a sequencer that has committed nothing.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Commit marks inst as committed to the rendering tree.
//
// For a generation already committed this is a no-op, so render churn never
// re-runs hooks. For a new generation it first releases the previous
// generation's hooks (Teardown), then runs the store mount hook and onMount
// inside the engine's history-ignored scope, registers their teardowns,
// emits the mount notification, and sets the process readiness flag.
func (s *Sequencer) Commit(inst *lifecycle.Instance, store canvashost.DocumentStore, onMount Callback) {
	if inst == nil || inst.Generation() == s.lastGen {
		return
	}
	s.Teardown(nil)
	s.lastGen = inst.Generation()

	engine := inst.Engine()
	engine.Run(func() {
		if store != nil {
			if td := store.Mount(engine); td != nil {
				s.teardowns = append(s.teardowns, td)
			}
		}
		if onMount != nil {
			if td := onMount(engine); td != nil {
				s.teardowns = append(s.teardowns, td)
			}
		}
	}, canvashost.RunOptions{History: canvashost.HistoryIgnore})

	engine.Emit(canvashost.EventMount, engine)
	markReady()
}

// Teardown runs the pending teardowns in reverse registration order and
// forgets the committed generation when inst matches it (or for any
// generation when inst is nil). Called by the host before the outgoing
// instance is disposed and on unmount.
func (s *Sequencer) Teardown(inst *lifecycle.Instance) {
	if inst != nil && inst.Generation() != s.lastGen {
		return
	}
	for i := len(s.teardowns) - 1; i >= 0; i-- {
		s.teardowns[i]()
	}
	s.teardowns = nil
	s.lastGen = ""
}

// Close releases any outstanding teardowns.
func (s *Sequencer) Close() {
	s.Teardown(nil)
}
