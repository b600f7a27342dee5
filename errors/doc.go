// Package errors provides structured error types for the canvashost library.
//
// Errors are categorized by Phase (where in the lifecycle the error occurred)
// and Kind (error category). The Error type includes the engine state tag the
// controller attaches before re-raising toward a supervising boundary, plus a
// cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConstruct, errors.KindConstruction).
//		Path("controller", "sync").
//		EngineState("disposing").
//		Cause(cause).
//		Detail("construct generation %d", gen).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Construction(cause)
//	err := errors.Crash(cause)
//	err := errors.InvalidTransition(from, to)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
