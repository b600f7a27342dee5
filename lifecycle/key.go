package lifecycle

import (
	"github.com/inkboard/canvashost"
)

// Key is the identity tuple of inputs whose change mandates disposal and
// recreation of the engine instance. Interface fields compare by reference
// identity, slices element-wise by reference identity, Options by pointer,
// LicenseKey by value. Collaborator implementations are expected to be
// pointer types.
type Key struct {
	Store        canvashost.DocumentStore
	Container    canvashost.Container
	ShapeUtils   []canvashost.ShapeUtil
	BindingUtils []canvashost.BindingUtil
	Tools        []canvashost.Tool
	User         canvashost.User
	Options      *canvashost.Options
	LicenseKey   string
}

// Equal reports whether k and other denote the same instance generation.
func (k Key) Equal(other Key) bool {
	if k.Store != other.Store ||
		k.Container != other.Container ||
		k.User != other.User ||
		k.Options != other.Options ||
		k.LicenseKey != other.LicenseKey {
		return false
	}
	if !sameShapeUtils(k.ShapeUtils, other.ShapeUtils) {
		return false
	}
	if !sameBindingUtils(k.BindingUtils, other.BindingUtils) {
		return false
	}
	return sameTools(k.Tools, other.Tools)
}

func sameShapeUtils(a, b []canvashost.ShapeUtil) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameBindingUtils(a, b []canvashost.BindingUtil) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameTools(a, b []canvashost.Tool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
