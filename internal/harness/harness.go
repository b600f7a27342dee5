// Package harness runs conformance scenarios against a full host: YAML
// files describe a sequence of render frames (status transitions, store
// swaps, crash injection, unmount) and the runner produces a deterministic
// transcript of every lifecycle event, compared against golden files.
package harness

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inkboard/canvashost"
	"github.com/inkboard/canvashost/host"
	"github.com/inkboard/canvashost/internal/enginetest"
	"github.com/inkboard/canvashost/lifecycle"
	"github.com/inkboard/canvashost/mount"
	"github.com/inkboard/canvashost/status"
)

// Scenario is one conformance scenario.
type Scenario struct {
	// Name uniquely identifies the scenario and its golden file.
	Name string `yaml:"name"`

	// Description explains which lifecycle property the scenario pins.
	Description string `yaml:"description"`

	// Steps run in order against a single host.
	Steps []Step `yaml:"steps"`
}

// Step is one frame (or host action) in a scenario.
type Step struct {
	// Status selects the store-with-status variant for this frame:
	// loading, error, not-synced, synced-local or synced-remote. Empty
	// reuses the previous frame's value.
	Status string `yaml:"status,omitempty"`

	// Store names the document store for ready variants. Defaults to
	// "main". Stores are created on first use and cached by name, so
	// repeating a name preserves identity.
	Store string `yaml:"store,omitempty"`

	// Error is the message carried by the error variant.
	Error string `yaml:"error,omitempty"`

	// Crash, when set, crashes the live engine with this message before
	// the frame is applied.
	Crash string `yaml:"crash,omitempty"`

	// FailConstruct makes the next engine construction fail.
	FailConstruct string `yaml:"fail_construct,omitempty"`

	// License overrides the frame's license key (an identity change).
	License string `yaml:"license,omitempty"`

	// AutoFocus toggles a construction option (identity-inert).
	AutoFocus bool `yaml:"auto_focus,omitempty"`

	// ZoomMax, when non-zero, applies fresh live camera options.
	ZoomMax float64 `yaml:"zoom_max,omitempty"`

	// Unmount closes the host instead of applying a frame.
	Unmount bool `yaml:"unmount,omitempty"`
}

// Load reads a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return Scenario{}, fmt.Errorf("scenario %s missing name", path)
	}
	return s, nil
}

// Run executes the scenario and returns the full transcript.
func Run(s Scenario) []string {
	mount.ResetReady()
	w := enginetest.NewWorld()
	h := host.New(host.Components{
		LoadingScreen: func() string { return "[loading]" },
		ErrorFallback: func(err error) string { return "[error] " + err.Error() },
		Canvas:        func(inst *lifecycle.Instance) string { return "[canvas]" },
	})

	container := &enginetest.Container{Name: "c1"}
	user := &enginetest.User{Name: "u1"}
	stores := map[string]*enginetest.Store{}
	storeFor := func(name string) *enginetest.Store {
		if name == "" {
			name = "main"
		}
		if stores[name] == nil {
			stores[name] = &enginetest.Store{Name: name, Rec: w.Rec}
		}
		return stores[name]
	}

	frame := host.Frame{
		Container: container,
		User:      user,
		Construct: w.Constructor(),
		Store:     status.Loading(),
	}
	closed := false

	for _, step := range s.Steps {
		if step.Unmount {
			w.Rec.Record("close")
			h.Close()
			closed = true
			continue
		}
		if step.FailConstruct != "" {
			w.FailNext = errors.New(step.FailConstruct)
		}
		if step.Crash != "" && w.Last() != nil {
			w.Last().Crash(errors.New(step.Crash))
		}
		switch step.Status {
		case "loading":
			frame.Store = status.Loading()
		case "error":
			frame.Store = status.WithError(errors.New(step.Error))
		case "not-synced":
			frame.Store = status.NotSynced(storeFor(step.Store))
		case "synced-local":
			frame.Store = status.SyncedLocal(storeFor(step.Store))
		case "synced-remote":
			frame.Store = status.SyncedRemote(storeFor(step.Store))
		case "":
			// keep the previous frame's store
		}
		if step.License != "" {
			frame.LicenseKey = step.License
		}
		frame.Construction.AutoFocus = step.AutoFocus
		if step.ZoomMax != 0 {
			frame.Live = lifecycle.LiveOptions{
				CameraOptions: &canvashost.CameraOptions{ZoomMax: step.ZoomMax},
			}
		}

		w.Rec.Record("apply status=%s", frame.Store.Status())
		v := h.Apply(frame)
		w.Rec.Record("view kind=%s render=%q", v.Kind, v.Render())
	}

	if !closed {
		h.Close()
	}
	w.Rec.Record("ready=%v", mount.Ready())
	return w.Rec.Transcript()
}
