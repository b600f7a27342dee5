// Package enginetest provides scripted collaborators for exercising the
// host lifecycle: a recording engine constructor, document stores,
// containers and users. The transcript format is stable; the conformance
// harness compares it against golden files.
package enginetest

import (
	"fmt"
	"sync"

	"github.com/inkboard/canvashost"
)

// Recorder collects a flat transcript of lifecycle events in order.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// Transcript returns a copy of the recorded lines.
func (r *Recorder) Transcript() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Store is a scripted document store whose mount hook records itself and
// returns a recording teardown.
type Store struct {
	Name string
	Rec  *Recorder

	// NilTeardown makes Mount return nil, exercising the sequencer's
	// tolerance for hooks without cleanup.
	NilTeardown bool
}

func (s *Store) ID() string { return s.Name }

func (s *Store) Mount(e canvashost.Engine) func() {
	if s.Rec != nil {
		s.Rec.Record("mount-hook store=%s", s.Name)
	}
	if s.NilTeardown {
		return nil
	}
	return func() {
		if s.Rec != nil {
			s.Rec.Record("teardown store=%s", s.Name)
		}
	}
}

// Container records theme applications.
type Container struct {
	Name      string
	Theme     canvashost.Theme
	ThemeSets int
}

func (c *Container) ID() string { return c.Name }

func (c *Container) SetTheme(t canvashost.Theme) {
	c.Theme = t
	c.ThemeSets++
}

// User is a fixed identity with a fixed color scheme.
type User struct {
	Name   string
	Scheme canvashost.ColorScheme
}

func (u *User) ID() string                         { return u.Name }
func (u *User) ColorScheme() canvashost.ColorScheme { return u.Scheme }

// Shape, Binding and Tool are opaque extension markers for identity tests.
type Shape struct{ Kind string }

func (s *Shape) ShapeType() string { return s.Kind }

type Binding struct{ Kind string }

func (b *Binding) BindingType() string { return b.Kind }

type Tool struct{ Name string }

func (t *Tool) ToolID() string { return t.Name }

// Engine is a recording implementation of canvashost.Engine.
type Engine struct {
	Gen int
	Cfg canvashost.EngineConfig

	rec *Recorder

	mu       sync.Mutex
	handlers map[string]map[int]func(any)
	nextSub  int
	crashErr error

	DisposeCount int
	Camera       *canvashost.CameraOptions
	CameraCalls  int
	RunModes     []canvashost.HistoryMode
}

func (e *Engine) Dispose() {
	e.mu.Lock()
	e.DisposeCount++
	n := e.DisposeCount
	e.mu.Unlock()
	if e.rec != nil {
		if n == 1 {
			e.rec.Record("dispose gen=%d store=%s", e.Gen, e.Cfg.Store.ID())
		} else {
			e.rec.Record("dispose-again gen=%d n=%d", e.Gen, n)
		}
	}
}

func (e *Engine) On(event string, handler func(any)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handlers == nil {
		e.handlers = make(map[string]map[int]func(any))
	}
	if e.handlers[event] == nil {
		e.handlers[event] = make(map[int]func(any))
	}
	id := e.nextSub
	e.nextSub++
	e.handlers[event][id] = handler
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.handlers[event], id)
	}
}

func (e *Engine) Emit(event string, payload any) {
	if e.rec != nil && event == canvashost.EventMount {
		e.rec.Record("emit mount gen=%d", e.Gen)
	}
	e.mu.Lock()
	var fns []func(any)
	for _, fn := range e.handlers[event] {
		fns = append(fns, fn)
	}
	e.mu.Unlock()
	for _, fn := range fns {
		fn(payload)
	}
}

// Crash drives the engine into its terminal state and notifies the crash
// channel, the way a real engine would from an internal operation.
func (e *Engine) Crash(err error) {
	e.mu.Lock()
	e.crashErr = err
	e.mu.Unlock()
	if e.rec != nil {
		e.rec.Record("crash gen=%d err=%v", e.Gen, err)
	}
	e.Emit(canvashost.EventCrash, err)
}

func (e *Engine) CrashError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.crashErr
}

func (e *Engine) SetCameraOptions(opts canvashost.CameraOptions) {
	e.mu.Lock()
	e.Camera = &opts
	e.CameraCalls++
	e.mu.Unlock()
	if e.rec != nil {
		e.rec.Record("camera gen=%d zoom=[%g,%g]", e.Gen, opts.ZoomMin, opts.ZoomMax)
	}
}

func (e *Engine) Run(fn func(), opts canvashost.RunOptions) {
	e.mu.Lock()
	e.RunModes = append(e.RunModes, opts.History)
	e.mu.Unlock()
	if e.rec != nil && opts.History == canvashost.HistoryIgnore {
		e.rec.Record("run history=ignore gen=%d", e.Gen)
	}
	fn()
}

// World owns a recording constructor and every engine it has built.
type World struct {
	Rec     *Recorder
	Engines []*Engine

	// FailNext, when non-nil, makes the next construction attempt fail
	// with that error and is then cleared.
	FailNext error

	gen int
}

func NewWorld() *World {
	return &World{Rec: NewRecorder()}
}

// Constructor returns an EngineConstructor that records constructions and
// appends every built engine to w.Engines.
func (w *World) Constructor() canvashost.EngineConstructor {
	return func(cfg canvashost.EngineConfig) (canvashost.Engine, error) {
		if err := w.FailNext; err != nil {
			w.FailNext = nil
			w.Rec.Record("construct-failed store=%s err=%v", cfg.Store.ID(), err)
			return nil, err
		}
		w.gen++
		e := &Engine{Gen: w.gen, Cfg: cfg, rec: w.Rec}
		w.Rec.Record("construct gen=%d store=%s container=%s", w.gen, cfg.Store.ID(), cfg.Container.ID())
		w.Engines = append(w.Engines, e)
		return e, nil
	}
}

// Last returns the most recently constructed engine, or nil.
func (w *World) Last() *Engine {
	if len(w.Engines) == 0 {
		return nil
	}
	return w.Engines[len(w.Engines)-1]
}

// ConstructCount reports how many constructions succeeded.
func (w *World) ConstructCount() int { return len(w.Engines) }

// DisposeCount reports disposals summed across all engines.
func (w *World) DisposeCount() int {
	n := 0
	for _, e := range w.Engines {
		n += e.DisposeCount
	}
	return n
}
