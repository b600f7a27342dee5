package canvashost

// Engine event names emitted on the instance's notification channel.
const (
	EventCrash = "crash"
	EventMount = "mount"
)

// HistoryMode controls whether work executed through Engine.Run is recorded
// in the editor's undo/redo history.
type HistoryMode uint8

const (
	HistoryRecord HistoryMode = iota
	HistoryIgnore
)

// RunOptions configures a history-scoped execution via Engine.Run.
type RunOptions struct {
	History HistoryMode
}

// ColorScheme is a point-in-time user preference read by the gate when the
// store first becomes ready.
type ColorScheme uint8

const (
	SchemeSystem ColorScheme = iota
	SchemeLight
	SchemeDark
)

// Theme is the class applied to a container surface.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DocumentStore is the document store handed over by a ready
// store-with-status value. Mount is the store-provided mount hook, run once
// per engine instance outside history tracking; the returned teardown may be
// nil.
type DocumentStore interface {
	ID() string
	Mount(e Engine) (teardown func())
}

// Container is the rendering surface an engine instance binds to. A
// container is exclusively owned by at most one live instance at a time.
type Container interface {
	ID() string
	SetTheme(Theme)
}

// User supplies identity and display preferences for the engine.
type User interface {
	ID() string
	ColorScheme() ColorScheme
}

// ShapeUtil, BindingUtil and Tool are opaque extension markers. The host
// never interprets them; their identity participates in the instance
// identity key.
type ShapeUtil interface{ ShapeType() string }

type BindingUtil interface{ BindingType() string }

type Tool interface{ ToolID() string }

// CameraOptions is live configuration, applied to the running instance
// without recreation.
type CameraOptions struct {
	ZoomMin   float64
	ZoomMax   float64
	PanSpeed  float64
	ZoomSpeed float64
	Locked    bool
}

// Options is the opaque bag of editor-level options. Compared by pointer
// identity in the identity key.
type Options struct {
	MaxShapes    int
	AnimationMed int
	ExtraLicense map[string]string
}

// EngineConfig carries everything an engine constructor needs. InitialState,
// AutoFocus and InferDarkMode are one-shot: captured at construction and
// ignored afterward.
type EngineConfig struct {
	Store         DocumentStore
	ShapeUtils    []ShapeUtil
	BindingUtils  []BindingUtil
	Tools         []Tool
	Container     Container
	User          User
	InitialState  string
	AutoFocus     bool
	InferDarkMode bool
	CameraOptions *CameraOptions
	Options       *Options
	LicenseKey    string
}

// Engine is the handle exposed by a successfully constructed editor engine.
//
// Dispose releases the instance and its container binding; it must be safe
// to call exactly once per construction. On registers a handler for an event
// (at least EventCrash and EventMount) and returns its unsubscribe. Emit
// raises an event toward registered handlers. CrashError reports the fatal
// error the engine has entered, or nil. Run executes fn under the given
// history scope.
type Engine interface {
	Dispose()
	On(event string, handler func(payload any)) (off func())
	Emit(event string, payload any)
	CrashError() error
	SetCameraOptions(CameraOptions)
	Run(fn func(), opts RunOptions)
}

// EngineConstructor builds an engine bound to cfg.Container. A non-nil error
// means no instance exists; constructors must not leak partially built
// state.
type EngineConstructor func(cfg EngineConfig) (Engine, error)
