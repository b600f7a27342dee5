// Package crash exposes an engine's crash state through a synchronized,
// latched observer.
//
// Crash notifications arrive asynchronously relative to rendering. The Latch
// guarantees that every consumer reading through Current observes the same
// single value without tearing, and that the value is monotonic: once set it
// never resets for the lifetime of the latch. A Monitor binds a latch to one
// engine instance's crash channel; the lifecycle controller creates a fresh
// monitor per instance.
package crash
