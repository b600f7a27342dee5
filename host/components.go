package host

import (
	"github.com/inkboard/canvashost/lifecycle"
)

// DefaultErrorFallback is rendered when no ErrorFallback component is
// registered.
const DefaultErrorFallback = "Something went wrong."

// Components is the registry of renderable slots consumed by the host. Every
// slot is optional:
//
//   - LoadingScreen renders while the store is loading; default renders
//     nothing.
//   - ErrorFallback renders when an error reaches the boundary; default
//     renders DefaultErrorFallback.
//   - Canvas renders the live editor; default renders nothing.
type Components struct {
	LoadingScreen func() string
	ErrorFallback func(err error) string
	Canvas        func(inst *lifecycle.Instance) string
}

func (c Components) loading() string {
	if c.LoadingScreen == nil {
		return ""
	}
	return c.LoadingScreen()
}

func (c Components) fallback(err error) string {
	if c.ErrorFallback == nil {
		return DefaultErrorFallback
	}
	return c.ErrorFallback(err)
}

func (c Components) canvas(inst *lifecycle.Instance) string {
	if c.Canvas == nil {
		return ""
	}
	return c.Canvas(inst)
}
