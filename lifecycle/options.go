package lifecycle

import "github.com/inkboard/canvashost"

// ConstructionOptions are one-shot inputs, captured at construction time
// only. The controller holds them in a holder that is overwritten on every
// Sync call but read exactly once, when an instance is built; changing them
// between constructions never triggers recreation.
type ConstructionOptions struct {
	AutoFocus     bool
	InferDarkMode bool
	InitialState  string
}

// LiveOptions are applied continuously to the current instance via a direct
// update call, independent of recreation.
type LiveOptions struct {
	CameraOptions *canvashost.CameraOptions
}
