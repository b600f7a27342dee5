package host

import (
	stderrors "errors"
	"testing"

	"github.com/inkboard/canvashost"
	"github.com/inkboard/canvashost/errors"
	"github.com/inkboard/canvashost/internal/enginetest"
	"github.com/inkboard/canvashost/lifecycle"
	"github.com/inkboard/canvashost/mount"
	"github.com/inkboard/canvashost/status"
)

type fixture struct {
	world     *enginetest.World
	host      *Host
	store     *enginetest.Store
	container *enginetest.Container
	user      *enginetest.User
}

func newFixture(t *testing.T, components Components, opts ...Option) *fixture {
	t.Helper()
	mount.ResetReady()
	w := enginetest.NewWorld()
	f := &fixture{
		world:     w,
		host:      New(components, opts...),
		store:     &enginetest.Store{Name: "doc-1", Rec: w.Rec},
		container: &enginetest.Container{Name: "c1"},
		user:      &enginetest.User{Name: "u1"},
	}
	t.Cleanup(f.host.Close)
	return f
}

func (f *fixture) frame(sws status.StoreWithStatus) Frame {
	return Frame{
		Store:     sws,
		Container: f.container,
		User:      f.user,
		Construct: f.world.Constructor(),
	}
}

func TestHost_LoadingRendersPlaceholder(t *testing.T) {
	t.Run("no placeholder renders empty", func(t *testing.T) {
		f := newFixture(t, Components{})
		v := f.host.Apply(f.frame(status.Loading()))
		if v.Kind != ViewLoading {
			t.Fatalf("kind = %s, want loading", v.Kind)
		}
		if got := v.Render(); got != "" {
			t.Errorf("Render() = %q, want empty", got)
		}
		if f.world.ConstructCount() != 0 {
			t.Error("engine constructed while loading")
		}
	})

	t.Run("supplied placeholder renders", func(t *testing.T) {
		f := newFixture(t, Components{LoadingScreen: func() string { return "spinner" }})
		v := f.host.Apply(f.frame(status.Loading()))
		if got := v.Render(); got != "spinner" {
			t.Errorf("Render() = %q, want spinner", got)
		}
	})
}

func TestHost_StoreErrorReachesBoundaryExactly(t *testing.T) {
	boom := stderrors.New("store failed")
	var seen []error
	f := newFixture(t, Components{}, WithSupervisor(&Boundary{
		Observe:  func(err error) { seen = append(seen, err) },
		Fallback: func(err error) string { return "fallback" },
	}))

	v := f.host.Apply(f.frame(status.WithError(boom)))
	if v.Kind != ViewFailed {
		t.Fatalf("kind = %s, want failed", v.Kind)
	}
	if v.Err != boom {
		t.Errorf("view error = %v, want exactly the store error", v.Err)
	}
	if got := v.Render(); got != "fallback" {
		t.Errorf("Render() = %q", got)
	}
	if len(seen) != 1 || seen[0] != boom {
		t.Errorf("boundary observed %v, want exactly [%v]", seen, boom)
	}
}

func TestHost_ReadyRendersCanvasForAllReadyVariants(t *testing.T) {
	for _, mk := range []func(canvashost.DocumentStore) status.StoreWithStatus{
		status.NotSynced, status.SyncedLocal, status.SyncedRemote,
	} {
		f := newFixture(t, Components{Canvas: func(inst *lifecycle.Instance) string { return "canvas" }})
		v := f.host.Apply(f.frame(mk(f.store)))
		if v.Kind != ViewReady {
			t.Fatalf("kind = %s, want ready", v.Kind)
		}
		if got := v.Render(); got != "canvas" {
			t.Errorf("Render() = %q, want canvas", got)
		}
		if v.Instance == nil {
			t.Error("ready view missing instance")
		}
	}
}

func TestHost_DefaultErrorFallback(t *testing.T) {
	f := newFixture(t, Components{})
	v := f.host.Apply(f.frame(status.WithError(stderrors.New("x"))))
	if got := v.Render(); got != DefaultErrorFallback {
		t.Errorf("Render() = %q, want default fallback", got)
	}
}

func TestHost_IdenticalFramesConstructOnce(t *testing.T) {
	f := newFixture(t, Components{})
	frame := f.frame(status.SyncedLocal(f.store))

	v1 := f.host.Apply(frame)
	v2 := f.host.Apply(frame)

	if f.world.ConstructCount() != 1 {
		t.Errorf("construct count = %d, want 1", f.world.ConstructCount())
	}
	if v1.Instance != v2.Instance {
		t.Error("instance changed across identical frames")
	}
}

func TestHost_StoreSwapDisposesThenRebinds(t *testing.T) {
	f := newFixture(t, Components{})
	storeB := &enginetest.Store{Name: "doc-b", Rec: f.world.Rec}

	v1 := f.host.Apply(f.frame(status.SyncedLocal(f.store)))
	frameB := f.frame(status.SyncedRemote(storeB))
	v2 := f.host.Apply(frameB)

	if f.world.ConstructCount() != 2 || f.world.DisposeCount() != 1 {
		t.Errorf("construct=%d dispose=%d, want 2/1", f.world.ConstructCount(), f.world.DisposeCount())
	}
	if f.world.Engines[0].DisposeCount != 1 {
		t.Error("first instance not disposed exactly once")
	}
	if got := v2.Instance.Engine().(*enginetest.Engine).Cfg.Store.ID(); got != "doc-b" {
		t.Errorf("second instance bound to %q, want doc-b", got)
	}
	if v1.Instance == v2.Instance {
		t.Error("store swap kept the old instance")
	}
}

func TestHost_MountSequencing(t *testing.T) {
	f := newFixture(t, Components{})
	var order []string

	frame := f.frame(status.SyncedLocal(f.store))
	frame.OnMount = func(e canvashost.Engine) func() {
		order = append(order, "mount")
		return func() { order = append(order, "teardown") }
	}

	if f.host.Ready() {
		t.Fatal("readiness flag set before mount")
	}
	f.host.Apply(frame)
	f.host.Apply(frame)
	f.host.Apply(frame)

	if len(order) != 1 || order[0] != "mount" {
		t.Errorf("mount calls = %v, want exactly one", order)
	}
	if !f.host.Ready() {
		t.Error("readiness flag not raised")
	}

	f.host.Close()
	if len(order) != 2 || order[1] != "teardown" {
		t.Errorf("teardown calls = %v, want mount then teardown", order)
	}
}

func TestHost_TeardownBeforeDisposeOnIdentityChange(t *testing.T) {
	f := newFixture(t, Components{})
	storeB := &enginetest.Store{Name: "doc-b", Rec: f.world.Rec}

	frameA := f.frame(status.SyncedLocal(f.store))
	f.host.Apply(frameA)
	f.host.Apply(f.frame(status.SyncedLocal(storeB)))

	want := []string{
		"construct gen=1 store=doc-1 container=c1",
		"run history=ignore gen=1",
		"mount-hook store=doc-1",
		"emit mount gen=1",
		"teardown store=doc-1",
		"dispose gen=1 store=doc-1",
		"construct gen=2 store=doc-b container=c1",
		"run history=ignore gen=2",
		"mount-hook store=doc-b",
		"emit mount gen=2",
	}
	got := f.world.Rec.Transcript()
	if len(got) != len(want) {
		t.Fatalf("transcript = %v\nwant %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transcript[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHost_ConstructionOptionChurnIsInert(t *testing.T) {
	f := newFixture(t, Components{})
	frame := f.frame(status.SyncedLocal(f.store))
	frame.Construction = lifecycle.ConstructionOptions{AutoFocus: true}
	f.host.Apply(frame)

	frame.Construction = lifecycle.ConstructionOptions{InferDarkMode: true, InitialState: "draw"}
	f.host.Apply(frame)

	if f.world.ConstructCount() != 1 {
		t.Errorf("construct count = %d, want 1", f.world.ConstructCount())
	}
}

func TestHost_CameraOptionsAreLive(t *testing.T) {
	f := newFixture(t, Components{})
	frame := f.frame(status.SyncedLocal(f.store))
	f.host.Apply(frame)

	frame.Live = lifecycle.LiveOptions{CameraOptions: &canvashost.CameraOptions{ZoomMax: 4}}
	f.host.Apply(frame)

	e := f.world.Last()
	if e.CameraCalls != 1 || e.Camera.ZoomMax != 4 {
		t.Errorf("camera calls=%d opts=%+v", e.CameraCalls, e.Camera)
	}
	if f.world.ConstructCount() != 1 || f.world.DisposeCount() != 0 {
		t.Error("live camera change constructed or disposed")
	}
}

func TestHost_CrashLatchesPermanently(t *testing.T) {
	f := newFixture(t, Components{})
	frame := f.frame(status.SyncedLocal(f.store))
	f.host.Apply(frame)

	gpu := stderrors.New("gpu reset")
	f.world.Last().Crash(gpu)

	v := f.host.Apply(frame)
	if v.Kind != ViewCrashed {
		t.Fatalf("kind = %s, want crashed", v.Kind)
	}
	if !stderrors.Is(v.Err, gpu) {
		t.Errorf("view error = %v, want the crash cause", v.Err)
	}
	var structured *errors.Error
	if !stderrors.As(v.Err, &structured) || structured.EngineState != "crashed" {
		t.Errorf("crash error missing engine-state tag: %v", v.Err)
	}

	// Construction-option churn does not alter identity; the crash path
	// stays latched.
	frame.Construction = lifecycle.ConstructionOptions{AutoFocus: true}
	for i := 0; i < 3; i++ {
		if v := f.host.Apply(frame); v.Kind != ViewCrashed {
			t.Fatalf("render %d: kind = %s, want crashed", i, v.Kind)
		}
	}
	if f.world.ConstructCount() != 1 {
		t.Errorf("crash path constructed a new engine: %d", f.world.ConstructCount())
	}

	// An identity change leaves the crashed generation behind.
	storeB := &enginetest.Store{Name: "doc-b", Rec: f.world.Rec}
	v = f.host.Apply(f.frame(status.SyncedLocal(storeB)))
	if v.Kind != ViewReady {
		t.Errorf("kind after identity change = %s, want ready", v.Kind)
	}
}

func TestHost_ConstructionFailureExposesNoInstance(t *testing.T) {
	f := newFixture(t, Components{})
	boom := stderrors.New("no webgl")
	f.world.FailNext = boom

	v := f.host.Apply(f.frame(status.SyncedLocal(f.store)))
	if v.Kind != ViewFailed {
		t.Fatalf("kind = %s, want failed", v.Kind)
	}
	if !stderrors.Is(v.Err, boom) {
		t.Errorf("view error = %v, want wrapped construction cause", v.Err)
	}
	if v.Instance != nil {
		t.Error("failed view exposes an instance")
	}
	var structured *errors.Error
	if !stderrors.As(v.Err, &structured) || structured.EngineState != "construct-failed" {
		t.Errorf("construction error missing engine-state tag: %v", v.Err)
	}

	// Same inputs: fail once, stay failed, no retry.
	v = f.host.Apply(f.frame(status.SyncedLocal(f.store)))
	if v.Kind != ViewFailed || f.world.ConstructCount() != 0 {
		t.Errorf("unchanged inputs retried construction (count=%d)", f.world.ConstructCount())
	}
}

func TestHost_BackwardTransitionFails(t *testing.T) {
	f := newFixture(t, Components{})
	f.host.Apply(f.frame(status.SyncedLocal(f.store)))

	v := f.host.Apply(f.frame(status.Loading()))
	if v.Kind != ViewFailed {
		t.Fatalf("kind = %s, want failed", v.Kind)
	}
	if !stderrors.Is(v.Err, &errors.Error{Phase: errors.PhaseGate, Kind: errors.KindInvalidTransition}) {
		t.Errorf("err = %v, want invalid_transition", v.Err)
	}
}

func TestHost_ApplyAfterCloseFails(t *testing.T) {
	f := newFixture(t, Components{})
	f.host.Close()
	v := f.host.Apply(f.frame(status.SyncedLocal(f.store)))
	if v.Kind != ViewFailed {
		t.Errorf("kind = %s, want failed", v.Kind)
	}
}

func TestHost_RapidIdentityChurnStaysPaired(t *testing.T) {
	f := newFixture(t, Components{})

	stores := []*enginetest.Store{
		{Name: "s0", Rec: f.world.Rec},
		{Name: "s1", Rec: f.world.Rec},
		{Name: "s2", Rec: f.world.Rec},
	}
	const rounds = 9
	for i := 0; i < rounds; i++ {
		v := f.host.Apply(f.frame(status.SyncedLocal(stores[i%3])))
		if v.Kind != ViewReady {
			t.Fatalf("round %d: kind = %s", i, v.Kind)
		}
	}

	if f.world.ConstructCount() != rounds {
		t.Errorf("construct count = %d, want %d", f.world.ConstructCount(), rounds)
	}
	if f.world.DisposeCount() != rounds-1 {
		t.Errorf("dispose count = %d, want %d", f.world.DisposeCount(), rounds-1)
	}
	f.host.Close()
	if f.world.DisposeCount() != rounds {
		t.Errorf("dispose count after close = %d, want %d", f.world.DisposeCount(), rounds)
	}
	for i, e := range f.world.Engines {
		if e.DisposeCount != 1 {
			t.Errorf("engine %d disposed %d times", i, e.DisposeCount)
		}
	}
}
