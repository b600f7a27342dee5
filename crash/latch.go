package crash

import "sync"

// Latch is a monotonic single-value observer. The first Trip wins; later
// trips are ignored. Subscribers registered before the trip are notified
// exactly once; subscribers registered after the trip are notified
// immediately with the latched value.
type Latch[T any] struct {
	mu      sync.Mutex
	val     T
	set     bool
	nextSub int
	subs    map[int]func(T)
}

// NewLatch returns an untripped latch.
func NewLatch[T any]() *Latch[T] {
	return &Latch[T]{subs: make(map[int]func(T))}
}

// Trip latches v. Only the first call has any effect.
func (l *Latch[T]) Trip(v T) {
	l.mu.Lock()
	if l.set {
		l.mu.Unlock()
		return
	}
	l.val = v
	l.set = true
	fns := make([]func(T), 0, len(l.subs))
	for _, fn := range l.subs {
		fns = append(fns, fn)
	}
	l.subs = make(map[int]func(T))
	l.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Current returns the latched value and whether the latch has tripped.
func (l *Latch[T]) Current() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.val, l.set
}

// Subscribe registers fn for the trip notification and returns its
// unsubscribe. If the latch already tripped, fn runs synchronously before
// Subscribe returns.
func (l *Latch[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	l.mu.Lock()
	if l.set {
		v := l.val
		l.mu.Unlock()
		fn(v)
		return func() {}
	}
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subs, id)
	}
}
