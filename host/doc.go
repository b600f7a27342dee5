// Package host composes the readiness gate, the lifecycle controller, the
// crash observer and the mount sequencer into a single per-render entry
// point.
//
// The embedding UI calls Apply once per render pass with the current inputs.
// Apply performs all commit-phase work synchronously — gating, disposal and
// construction, live option updates, crash observation, mount sequencing —
// and returns a View describing what to render, so no frame ever shows a
// stale instance bound to a container claimed by another.
//
// Per-container instance state machine:
//
//	NoInstance → (status ready) → Constructing → Live
//	Live → (identity change)    → Disposing → Constructing
//	Live → (crash notification) → Crashed (terminal for the instance)
//	Live|Crashed → (Close)      → Disposed (terminal)
//
// Failures are never retried or recovered here; they are dispatched to a
// supervising boundary with engine-state context attached where a live
// instance exists.
package host
