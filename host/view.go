package host

import (
	"github.com/inkboard/canvashost/lifecycle"
)

// ViewKind names the rendering path chosen for a frame.
type ViewKind uint8

const (
	// ViewLoading renders the loading placeholder; no engine exists.
	ViewLoading ViewKind = iota
	// ViewReady renders the canvas bound to a live instance.
	ViewReady
	// ViewCrashed renders the boundary fallback for a latched engine
	// crash. Terminal for the instance.
	ViewCrashed
	// ViewFailed renders the boundary fallback for a store or
	// construction error.
	ViewFailed
)

func (k ViewKind) String() string {
	switch k {
	case ViewLoading:
		return "loading"
	case ViewReady:
		return "ready"
	case ViewCrashed:
		return "crashed"
	case ViewFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// View is the outcome of one Apply: which path rendering takes, the error
// dispatched to the boundary for the failure paths, and the live instance
// for the ready path.
type View struct {
	Kind     ViewKind
	Err      error
	Instance *lifecycle.Instance

	render func() string
}

// Render produces the view's content through the component registry (or the
// supervising boundary for failure paths).
func (v View) Render() string {
	if v.render == nil {
		return ""
	}
	return v.render()
}
