// Package mount sequences one-time initialization per engine instance.
//
// After an instance is committed to the rendering tree, the sequencer runs
// the store-provided mount hook and the caller-provided callback exactly
// once, inside a scope excluded from undo/redo history, emits the mount
// notification on the engine, and raises a process-wide readiness flag.
// Teardowns returned by the hooks run in reverse registration order, before
// the instance's disposal or on unmount. Re-renders that keep the instance
// identity do not re-run the sequence.
package mount
