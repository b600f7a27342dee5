package mount

import "sync/atomic"

// ready is process-wide: external observers (automated harnesses, smoke
// tests) poll it to learn that a first editor finished mounting.
var ready atomic.Bool

// Ready reports whether mount sequencing has completed at least once in
// this process.
func Ready() bool {
	return ready.Load()
}

func markReady() {
	ready.Store(true)
}

// ResetReady clears the process-wide flag. Test use only.
func ResetReady() {
	ready.Store(false)
}
