package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/inkboard/canvashost"
)

// gridEngine is a toy canvas engine: a rune grid with a paint tool and a
// label tool. It exists so the demo can exercise the full host lifecycle;
// it is not part of the library.
type gridEngine struct {
	cfg    canvashost.EngineConfig
	width  int
	height int

	mu       sync.Mutex
	cells    map[[2]int]rune
	labels   []string
	handlers map[string]map[int]func(any)
	nextSub  int
	crashErr error
	camera   canvashost.CameraOptions
	history  int
	disposed bool
}

func newEngineConstructor(width, height int) canvashost.EngineConstructor {
	return func(cfg canvashost.EngineConfig) (canvashost.Engine, error) {
		if cfg.Container == nil {
			return nil, fmt.Errorf("grid engine requires a container")
		}
		if cfg.Store == nil {
			return nil, fmt.Errorf("grid engine requires a store")
		}
		e := &gridEngine{
			cfg:      cfg,
			width:    width,
			height:   height,
			cells:    map[[2]int]rune{},
			handlers: map[string]map[int]func(any){},
		}
		if cfg.CameraOptions != nil {
			e.camera = *cfg.CameraOptions
		}
		return e, nil
	}
}

func (e *gridEngine) Dispose() {
	e.mu.Lock()
	e.disposed = true
	e.mu.Unlock()
}

func (e *gridEngine) On(event string, handler func(any)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handlers[event] == nil {
		e.handlers[event] = map[int]func(any){}
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

func (e *gridEngine) Emit(event string, payload any) {
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

func (e *gridEngine) CrashError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.crashErr
}

func (e *gridEngine) SetCameraOptions(opts canvashost.CameraOptions) {
	e.mu.Lock()
	e.camera = opts
	e.mu.Unlock()
}

func (e *gridEngine) Run(fn func(), opts canvashost.RunOptions) {
	if opts.History == canvashost.HistoryRecord {
		e.mu.Lock()
		e.history++
		e.mu.Unlock()
	}
	fn()
}

// Paint toggles a cell, recorded in history.
func (e *gridEngine) Paint(x, y int) {
	e.Run(func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		key := [2]int{x, y}
		if _, ok := e.cells[key]; ok {
			delete(e.cells, key)
		} else {
			e.cells[key] = '█'
		}
	}, canvashost.RunOptions{History: canvashost.HistoryRecord})
}

// AddLabel appends a text label, recorded in history.
func (e *gridEngine) AddLabel(text string) {
	e.Run(func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.labels = append(e.labels, text)
	}, canvashost.RunOptions{History: canvashost.HistoryRecord})
}

// Fail drives the engine into its terminal crash state, the way a real
// engine would from an internal operation.
func (e *gridEngine) Fail(err error) {
	e.mu.Lock()
	e.crashErr = err
	e.mu.Unlock()
	e.Emit(canvashost.EventCrash, err)
}

// Snapshot renders the grid and labels as plain text; the TUI styles it.
func (e *gridEngine) Snapshot(cursorX, cursorY int) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]rune, 0, (e.width+1)*e.height)
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			switch {
			case x == cursorX && y == cursorY:
				out = append(out, '+')
			default:
				if r, ok := e.cells[[2]int{x, y}]; ok {
					out = append(out, r)
				} else {
					out = append(out, '·')
				}
			}
		}
		out = append(out, '\n')
	}
	s := string(out)
	for _, label := range e.labels {
		s += "# " + label + "\n"
	}
	return s
}

func (e *gridEngine) historyLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history
}

// memStore is an in-memory document store.
type memStore struct {
	name    string
	mounted time.Time
}

func (s *memStore) ID() string { return s.name }

func (s *memStore) Mount(e canvashost.Engine) func() {
	s.mounted = time.Now()
	return func() { s.mounted = time.Time{} }
}

// termContainer is the terminal surface the editor binds to.
type termContainer struct {
	name  string
	theme canvashost.Theme
}

func (c *termContainer) ID() string                  { return c.name }
func (c *termContainer) SetTheme(t canvashost.Theme) { c.theme = t }

// staticUser carries a fixed color scheme read once by the gate.
type staticUser struct {
	name   string
	scheme canvashost.ColorScheme
}

func (u *staticUser) ID() string                          { return u.name }
func (u *staticUser) ColorScheme() canvashost.ColorScheme { return u.scheme }
