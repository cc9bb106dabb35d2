// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/tankterrain/pkg/math"
)

// Camera supplies the view and projection transforms used to draw a frame.
type Camera interface {
	View() math.Mat4
	Projection() math.Mat4
}

// Followable is anything a camera can trail: a world position and a yaw.
type Followable interface {
	Position() math.Vec3
	// Facing is the yaw in radians.
	Facing() float32
}

// Lens describes a perspective projection.
type Lens struct {
	FovY   float32 // Vertical field of view (radians)
	Aspect float32 // Width / height
	Near   float32
	Far    float32
}

// DefaultLens returns a 45 degree lens with a 1..1000 depth range.
func DefaultLens(aspect float32) Lens {
	return Lens{
		FovY:   gomath.Pi / 4,
		Aspect: aspect,
		Near:   1,
		Far:    1000,
	}
}

// Projection returns the lens' projection matrix.
func (l Lens) Projection() math.Mat4 {
	return math.Perspective(l.FovY, l.Aspect, l.Near, l.Far)
}
