// Package lifecycle owns construction, recreation and disposal of engine
// instances.
//
// The Controller holds at most one live instance, keyed by the identity of
// its inputs (store, container, extension sets, user, options, license key).
// A key change disposes the current instance and constructs its successor
// synchronously, within the same commit, so the rendering container is never
// claimed by two instances at once. Construction options are one-shot: the
// controller reads them only at construction time. Live options are applied
// to the running instance and never trigger recreation.
//
// A construction failure exposes no instance and is not retried while the
// identity key is unchanged.
package lifecycle
