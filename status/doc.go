// Package status models the store-with-status value handed to the host and
// the readiness gate that interprets it.
//
// A StoreWithStatus pairs a document store with a readiness indicator.
// Transitions are forward-only: once a value has moved past loading it never
// returns to loading. The Gate enforces that ordering, short-circuits the
// loading and error variants, and hands ready stores through to the
// lifecycle controller. On the first ready resolution the gate applies a
// light/dark theme to the container from a point-in-time read of the user
// preference; it does not track the preference afterward.
package status
