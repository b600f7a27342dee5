package lifecycle

import (
	"go.uber.org/zap"

	"github.com/inkboard/canvashost"
	"github.com/inkboard/canvashost/errors"
)

// Controller guarantees at most one live engine instance bound to a given
// container at any time. It is driven from the host's single-threaded
// render/commit cycle and is not safe for concurrent use.
type Controller struct {
	construct canvashost.EngineConstructor

	// BeforeDispose, when set, runs against the outgoing instance before
	// its engine is disposed. The host wires the mount sequencer's
	// teardown here so hook cleanup precedes disposal.
	BeforeDispose func(*Instance)

	holder    ConstructionOptions
	live      LiveOptions
	key       Key
	attempted bool
	inst      *Instance
	failedErr error
}

// NewController returns a controller that builds instances with construct.
func NewController(construct canvashost.EngineConstructor) *Controller {
	return &Controller{construct: construct}
}

// Sync reconciles the controller against the current identity key and
// construction options.
//
// The options holder is overwritten on every call but read only when a new
// instance is built, so construction-option churn alone never recreates.
// When the key differs from the previous generation, the current instance is
// disposed and a successor constructed synchronously, in that order. A
// construction failure exposes no instance, propagates a construct-phase
// error, and is not retried until the key changes.
func (c *Controller) Sync(key Key, opts ConstructionOptions) (*Instance, error) {
	c.holder = opts

	if c.attempted && key.Equal(c.key) {
		if c.failedErr != nil {
			return nil, c.failedErr
		}
		return c.inst, nil
	}

	c.disposeCurrent()
	c.key = key
	c.attempted = true
	c.failedErr = nil

	snapshot := c.holder
	engine, err := c.construct(canvashost.EngineConfig{
		Store:         key.Store,
		ShapeUtils:    key.ShapeUtils,
		BindingUtils:  key.BindingUtils,
		Tools:         key.Tools,
		Container:     key.Container,
		User:          key.User,
		InitialState:  snapshot.InitialState,
		AutoFocus:     snapshot.AutoFocus,
		InferDarkMode: snapshot.InferDarkMode,
		CameraOptions: c.live.CameraOptions,
		Options:       key.Options,
		LicenseKey:    key.LicenseKey,
	})
	if err != nil {
		c.failedErr = errors.Construction(err)
		Logger().Warn("engine construction failed",
			zap.String("store", storeID(key.Store)),
			zap.Error(err))
		return nil, c.failedErr
	}

	c.inst = newInstance(engine)
	Logger().Debug("engine constructed",
		zap.String("generation", c.inst.gen),
		zap.String("store", storeID(key.Store)))
	return c.inst, nil
}

// ApplyLive applies live options to the current instance, if any. Live
// option changes never construct or dispose.
func (c *Controller) ApplyLive(opts LiveOptions) {
	prev := c.live.CameraOptions
	c.live = opts
	if c.inst == nil || opts.CameraOptions == nil || opts.CameraOptions == prev {
		return
	}
	c.inst.engine.SetCameraOptions(*opts.CameraOptions)
}

// Current returns the live instance, or nil.
func (c *Controller) Current() *Instance { return c.inst }

// StateTag names the controller's position in the instance state machine,
// used to annotate errors crossing a supervising boundary.
func (c *Controller) StateTag() string {
	switch {
	case c.inst == nil && c.failedErr != nil:
		return "construct-failed"
	case c.inst == nil:
		return "no-instance"
	case c.inst.monitor.Current() != nil:
		return "crashed"
	default:
		return "live"
	}
}

// Close disposes the current instance. Safe to call when none is live, and
// safe to call repeatedly.
func (c *Controller) Close() {
	c.disposeCurrent()
}

func (c *Controller) disposeCurrent() {
	inst := c.inst
	if inst == nil {
		return
	}
	c.inst = nil
	if c.BeforeDispose != nil {
		c.BeforeDispose(inst)
	}
	inst.monitor.Close()
	inst.engine.Dispose()
	Logger().Debug("engine disposed", zap.String("generation", inst.gen))
}

func storeID(s canvashost.DocumentStore) string {
	if s == nil {
		return ""
	}
	return s.ID()
}
