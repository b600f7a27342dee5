// Package canvashost bootstraps and supervises an interactive canvas-editing
// engine embedded inside a host UI.
//
// The library reconciles an asynchronously-loading document store with the
// synchronous creation of a stateful editor engine bound to a rendering
// container, keeps that binding consistent as inputs change, sequences
// one-time mount/teardown hooks, and isolates fatal engine failures from the
// rest of the UI. The editor itself (shapes, tools, rendering, persistence)
// is an external collaborator consumed through the interfaces in this
// package.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	canvashost/          Root package with collaborator interfaces
//	├── host/            Composition root: per-render Apply, view dispatch, boundaries
//	├── status/          Store-with-status union and the readiness gate
//	├── lifecycle/       Engine instance construction, recreation, disposal
//	├── crash/           Latched crash observer with subscribe semantics
//	├── mount/           Once-per-instance mount/teardown sequencing
//	└── errors/          Structured error types for boundary dispatch
//
// # Quick Start
//
// Drive the host from the embedding UI's render loop:
//
//	h := host.New(host.Components{
//	    LoadingScreen: mySpinner,
//	    Canvas:        myCanvas,
//	})
//	defer h.Close()
//
//	view := h.Apply(host.Frame{
//	    Store:     status.SyncedLocal(store),
//	    Container: surface,
//	    User:      user,
//	    Construct: editor.New,
//	})
//	draw(view.Render())
//
// Apply performs all commit-phase work synchronously: the gate short-circuits
// loading and error states, the lifecycle controller disposes and rebuilds the
// engine when the identity of its inputs changes, the mount sequencer fires
// exactly once per live instance, and the crash observer redirects rendering
// permanently once the engine reports an unrecoverable failure.
//
// # Thread Safety
//
// The host follows the embedding UI's single-threaded render/commit cycle.
// Host, Controller and Sequencer are NOT safe for concurrent use; crash
// notifications may arrive from any goroutine and are synchronized by the
// crash package.
package canvashost
