package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the lifecycle the error occurred
type Phase string

const (
	PhaseStore     Phase = "store"     // store-with-status error variant
	PhaseGate      Phase = "gate"      // readiness gate decisions
	PhaseConstruct Phase = "construct" // engine instance construction
	PhaseMount     Phase = "mount"     // mount/teardown sequencing
	PhaseCrash     Phase = "crash"     // post-construction crash channel
	PhaseDispose   Phase = "dispose"   // instance disposal
	PhaseConfig    Phase = "config"    // host/demo configuration
)

// Kind categorizes the error
type Kind string

const (
	KindStoreFailed       Kind = "store_failed"
	KindConstruction      Kind = "construction"
	KindCrash             Kind = "crash"
	KindInvalidTransition Kind = "invalid_transition"
	KindNotInitialized    Kind = "not_initialized"
	KindInvalidInput      Kind = "invalid_input"
	KindTeardown          Kind = "teardown"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause       error
	Phase       Phase
	Kind        Kind
	EngineState string
	Detail      string
	Path        []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.EngineState != "" {
		b.WriteString(" (engine: ")
		b.WriteString(e.EngineState)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the component path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// EngineState sets the engine state tag
func (b *Builder) EngineState(s string) *Builder {
	b.err.EngineState = s
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// StoreFailed wraps the error carried by a store-with-status error variant.
// The cause is preserved unmodified so boundaries observe exactly the error
// the store produced.
func StoreFailed(cause error) *Error {
	return &Error{
		Phase: PhaseStore,
		Kind:  KindStoreFailed,
		Cause: cause,
	}
}

// Construction wraps a synchronous engine construction failure
func Construction(cause error) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindConstruction,
		Detail: "construct engine instance",
		Cause:  cause,
	}
}

// Crash wraps an error observed on the engine's crash channel
func Crash(cause error) *Error {
	return &Error{
		Phase: PhaseCrash,
		Kind:  KindCrash,
		Cause: cause,
	}
}

// InvalidTransition reports a store status moving backward
func InvalidTransition(from, to string) *Error {
	return &Error{
		Phase:  PhaseGate,
		Kind:   KindInvalidTransition,
		Detail: fmt.Sprintf("status %s cannot follow %s", to, from),
	}
}

// NotInitialized creates a not-initialized error for a missing collaborator
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Annotate attaches an engine state tag to err without discarding it. The
// original error stays reachable through Unwrap so errors.Is keeps matching
// the cause across boundary hops. Errors from this package are tagged in
// place; foreign errors are wrapped.
func Annotate(err error, engineState string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		if e.EngineState == "" {
			e.EngineState = engineState
		}
		return e
	}
	return &Error{
		Phase:       PhaseCrash,
		Kind:        KindCrash,
		EngineState: engineState,
		Cause:       err,
	}
}
