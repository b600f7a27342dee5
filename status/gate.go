package status

import (
	"github.com/inkboard/canvashost"
	"github.com/inkboard/canvashost/errors"
)

// Decision is the gate's verdict for one render pass.
type Decision uint8

const (
	// DecideLoading renders the loading placeholder; no engine may be
	// instantiated.
	DecideLoading Decision = iota
	// DecideError re-raises the store's error toward the supervising
	// boundary.
	DecideError
	// DecideReady hands the underlying store to the lifecycle controller.
	DecideReady
)

// Gate interprets store-with-status values across successive render passes.
// It enforces the forward-only transition invariant and applies the
// container theme once, on first reaching a ready state.
//
// A Gate is owned by a single host and is not safe for concurrent use.
type Gate struct {
	last    Status
	started bool
	themed  bool
}

// NewGate returns a gate that has observed no status yet.
func NewGate() *Gate {
	return &Gate{}
}

// Resolve decides how the current render pass proceeds.
//
// The error variant returns (DecideError, err) with the store's error
// unmodified; recovery is the supervising boundary's concern, not the
// gate's. The loading variant returns DecideLoading. Ready variants return
// DecideReady and, the first time, set the container theme from a
// point-in-time read of user.ColorScheme.
//
// Observing loading after any non-loading status violates the forward-only
// invariant and resolves to DecideError with an invalid_transition error.
func (g *Gate) Resolve(sws StoreWithStatus, container canvashost.Container, user canvashost.User) (Decision, error) {
	s := sws.Status()

	if g.started && !s.CanFollow(g.last) {
		return DecideError, errors.InvalidTransition(g.last.String(), s.String())
	}
	g.started = true
	g.last = s

	switch {
	case s == StatusError:
		return DecideError, sws.Err()
	case s == StatusLoading:
		return DecideLoading, nil
	default:
		if !g.themed && container != nil {
			container.SetTheme(themeFor(user))
			g.themed = true
		}
		return DecideReady, nil
	}
}

func themeFor(user canvashost.User) canvashost.Theme {
	if user != nil && user.ColorScheme() == canvashost.SchemeDark {
		return canvashost.ThemeDark
	}
	return canvashost.ThemeLight
}
