package status

import (
	"github.com/inkboard/canvashost"
)

// Status is the readiness indicator of a store-with-status value.
type Status uint8

const (
	StatusLoading Status = iota
	StatusError
	StatusNotSynced
	StatusSyncedLocal
	StatusSyncedRemote
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusNotSynced:
		return "not-synced"
	case StatusSyncedLocal:
		return "synced-local"
	case StatusSyncedRemote:
		return "synced-remote"
	default:
		return "unknown"
	}
}

// Ready reports whether the variant carries a usable store.
func (s Status) Ready() bool {
	return s == StatusNotSynced || s == StatusSyncedLocal || s == StatusSyncedRemote
}

// CanFollow reports whether s is a legal successor of prev under the
// forward-only ordering: loading may only appear before the first non-loading
// state.
func (s Status) CanFollow(prev Status) bool {
	if s == StatusLoading {
		return prev == StatusLoading
	}
	return true
}

// StoreWithStatus is a tagged union over loading, error and the three ready
// variants. The zero value is the loading variant.
type StoreWithStatus struct {
	status Status
	store  canvashost.DocumentStore
	err    error
}

// Loading returns the loading variant.
func Loading() StoreWithStatus {
	return StoreWithStatus{status: StatusLoading}
}

// WithError returns the error variant carrying err.
func WithError(err error) StoreWithStatus {
	return StoreWithStatus{status: StatusError, err: err}
}

// NotSynced returns the ready, never-synced variant.
func NotSynced(store canvashost.DocumentStore) StoreWithStatus {
	return StoreWithStatus{status: StatusNotSynced, store: store}
}

// SyncedLocal returns the ready, locally-synced variant.
func SyncedLocal(store canvashost.DocumentStore) StoreWithStatus {
	return StoreWithStatus{status: StatusSyncedLocal, store: store}
}

// SyncedRemote returns the ready, remotely-synced variant.
func SyncedRemote(store canvashost.DocumentStore) StoreWithStatus {
	return StoreWithStatus{status: StatusSyncedRemote, store: store}
}

func (s StoreWithStatus) Status() Status { return s.status }

// Store returns the underlying document store for ready variants, nil
// otherwise.
func (s StoreWithStatus) Store() canvashost.DocumentStore {
	if !s.status.Ready() {
		return nil
	}
	return s.store
}

// Err returns the carried error for the error variant, nil otherwise.
func (s StoreWithStatus) Err() error {
	if s.status != StatusError {
		return nil
	}
	return s.err
}

// Ready reports whether the value carries a usable store.
func (s StoreWithStatus) Ready() bool { return s.status.Ready() }
