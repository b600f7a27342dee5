package host

import (
	"go.uber.org/zap"

	"github.com/inkboard/canvashost"
	"github.com/inkboard/canvashost/errors"
	"github.com/inkboard/canvashost/lifecycle"
	"github.com/inkboard/canvashost/mount"
	"github.com/inkboard/canvashost/status"
)

// Frame carries the current inputs for one render pass. Store, Container,
// ShapeUtils, BindingUtils, Tools, User, Options and LicenseKey form the
// identity key; Construction is one-shot; Live is applied continuously.
type Frame struct {
	Store        status.StoreWithStatus
	Container    canvashost.Container
	ShapeUtils   []canvashost.ShapeUtil
	BindingUtils []canvashost.BindingUtil
	Tools        []canvashost.Tool
	User         canvashost.User
	Options      *canvashost.Options
	LicenseKey   string

	// Construct builds the engine. Read when the first ready frame
	// arrives; later changes are ignored.
	Construct canvashost.EngineConstructor

	Construction lifecycle.ConstructionOptions
	Live         lifecycle.LiveOptions

	// OnMount runs once per instance inside the history-ignored mount
	// scope; its teardown pairs with the instance.
	OnMount mount.Callback
}

// Host owns one editor subtree: gate, controller, sequencer and boundary.
// It follows the embedding UI's single render/commit thread and is not safe
// for concurrent use.
type Host struct {
	components Components
	supervisor Supervisor
	logger     *zap.Logger

	gate       *status.Gate
	controller *lifecycle.Controller
	seq        *mount.Sequencer
	closed     bool
}

// Option configures a Host.
type Option func(*Host)

// WithSupervisor installs the outer supervising boundary. The default
// boundary renders the ErrorFallback component.
func WithSupervisor(s Supervisor) Option {
	return func(h *Host) { h.supervisor = s }
}

// WithLogger installs a logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Host) { h.logger = l }
}

// New creates a host rendering through the given component registry.
func New(components Components, opts ...Option) *Host {
	h := &Host{
		components: components,
		logger:     zap.NewNop(),
		gate:       status.NewGate(),
		seq:        mount.NewSequencer(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.supervisor == nil {
		h.supervisor = &Boundary{Fallback: components.fallback}
	}
	return h
}

// Apply reconciles the host against the current frame and returns the view
// for this render pass. All lifecycle work happens synchronously before
// Apply returns: by the time the caller paints, the container is bound to
// exactly the instance the view describes.
func (h *Host) Apply(f Frame) View {
	if h.closed {
		return h.fail(errors.NotInitialized(errors.PhaseGate, "host"), ViewFailed)
	}

	decision, err := h.gate.Resolve(f.Store, f.Container, f.User)
	switch decision {
	case status.DecideLoading:
		return View{Kind: ViewLoading, render: h.components.loading}
	case status.DecideError:
		// No engine context at this boundary; the error passes through
		// exactly as the store raised it.
		return h.fail(err, ViewFailed)
	}

	if h.controller == nil {
		if f.Construct == nil {
			return h.fail(errors.InvalidInput(errors.PhaseConstruct, "no engine constructor supplied"), ViewFailed)
		}
		h.controller = lifecycle.NewController(f.Construct)
		h.controller.BeforeDispose = h.seq.Teardown
	}

	inst, err := h.controller.Sync(lifecycle.Key{
		Store:        f.Store.Store(),
		Container:    f.Container,
		ShapeUtils:   f.ShapeUtils,
		BindingUtils: f.BindingUtils,
		Tools:        f.Tools,
		User:         f.User,
		Options:      f.Options,
		LicenseKey:   f.LicenseKey,
	}, f.Construction)
	if err != nil {
		return h.fail(errors.Annotate(err, h.controller.StateTag()), ViewFailed)
	}

	h.controller.ApplyLive(f.Live)

	if crashErr := inst.Crash().Current(); crashErr != nil {
		// Latched: every subsequent frame for this instance lands here.
		err := errors.Annotate(errors.Crash(crashErr), h.controller.StateTag())
		return h.fail(err, ViewCrashed)
	}

	h.seq.Commit(inst, f.Store.Store(), f.OnMount)

	return View{
		Kind:     ViewReady,
		Instance: inst,
		render:   func() string { return h.components.canvas(inst) },
	}
}

// Ready reports whether mount sequencing has completed at least once in
// this process.
func (h *Host) Ready() bool {
	return mount.Ready()
}

// Close unmounts the subtree: pending teardowns run in reverse order, then
// the live instance is disposed. Safe to call repeatedly.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	if h.controller != nil {
		h.controller.Close()
	}
	h.seq.Close()
	h.logger.Debug("host closed")
}

func (h *Host) fail(err error, kind ViewKind) View {
	h.logger.Warn("editor subtree failed",
		zap.String("view", kind.String()),
		zap.Error(err))
	return View{
		Kind: kind,
		Err:  err,
		render: func() string {
			return h.supervisor.Handle(err)
		},
	}
}
