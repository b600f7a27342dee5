package lifecycle

import (
	"github.com/google/uuid"

	"github.com/inkboard/canvashost"
	"github.com/inkboard/canvashost/crash"
)

// Instance is one constructed engine generation: the engine handle, a crash
// monitor bound to it, and a generation id used for log correlation and
// once-per-instance sequencing.
type Instance struct {
	gen     string
	engine  canvashost.Engine
	monitor *crash.Monitor
}

func newInstance(e canvashost.Engine) *Instance {
	return &Instance{
		gen:     uuid.NewString(),
		engine:  e,
		monitor: crash.Watch(e),
	}
}

// Generation returns the unique id of this construction.
func (i *Instance) Generation() string { return i.gen }

// Engine returns the live engine handle.
func (i *Instance) Engine() canvashost.Engine { return i.engine }

// Crash returns the monitor latched to this instance's crash channel.
func (i *Instance) Crash() *crash.Monitor { return i.monitor }
