package camera

import (
	gomath "math"

	"github.com/Faultbox/tankterrain/pkg/math"
)

// OrbitCamera circles a center point. The client uses it as a free-look
// overview of the whole terrain.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle (radians)
	Yaw      float32 // Horizontal angle (radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	TurnSpeed float32 // Radians per input step
	ZoomSpeed float32 // Fraction of distance per input step

	lens Lens
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera(lens Lens) *OrbitCamera {
	return &OrbitCamera{
		Distance:    200.0,
		Pitch:       0.6,
		MinDistance: 10.0,
		MaxDistance: 900.0,
		MinPitch:    0.1,
		MaxPitch:    1.5,
		TurnSpeed:   0.03,
		ZoomSpeed:   0.02,
		lens:        lens,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Sin(float64(c.Yaw)))
	y := c.Distance * float32(gomath.Sin(float64(c.Pitch)))
	z := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Cos(float64(c.Yaw)))
	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// View returns the view matrix for this camera.
func (c *OrbitCamera) View() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Up)
}

// Projection returns the projection matrix.
func (c *OrbitCamera) Projection() math.Mat4 {
	return c.lens.Projection()
}

// SetAspect updates the lens for a new viewport shape.
func (c *OrbitCamera) SetAspect(aspect float32) {
	c.lens.Aspect = aspect
}

// Turn rotates around the center by whole input steps (yaw, pitch).
func (c *OrbitCamera) Turn(yawSteps, pitchSteps float32) {
	c.Yaw += yawSteps * c.TurnSpeed
	c.Pitch = math.Clamp(c.Pitch+pitchSteps*c.TurnSpeed, c.MinPitch, c.MaxPitch)
}

// Zoom moves toward (positive steps) or away from the center.
func (c *OrbitCamera) Zoom(steps float32) {
	c.Distance -= steps * c.Distance * c.ZoomSpeed
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on a bounding box and backs off far
// enough to see all of it.
func (c *OrbitCamera) FitToBounds(lo, hi math.Vec3) {
	c.Center = lo.Add(hi).Scale(0.5)

	size := max(hi.X-lo.X, hi.Z-lo.Z)
	c.Distance = math.Clamp(size*6/5, c.MinDistance, c.MaxDistance)
	c.Pitch = 0.6 // Look down at ~35 degrees
	c.Yaw = 0
}
