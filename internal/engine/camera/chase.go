package camera

import (
	"github.com/Faultbox/tankterrain/pkg/math"
)

// ChaseCamera follows a target from a fixed offset that turns with the
// target's facing.
type ChaseCamera struct {
	// Target is the followed object. A nil target leaves the camera in place.
	Target Followable

	// Offset is the camera position relative to the target before rotation.
	Offset math.Vec3

	lens       Lens
	projection math.Mat4
	view       math.Mat4
	eye        math.Vec3
	center     math.Vec3
}

// NewChaseCamera creates a chase camera. Until the first Update with a
// target it sits at the origin looking toward offset.
func NewChaseCamera(offset math.Vec3, lens Lens) *ChaseCamera {
	c := &ChaseCamera{
		Offset: offset,
		lens:   lens,
		center: offset,
	}
	c.projection = lens.Projection()
	c.view = math.LookAt(c.eye, c.center, math.Up)
	return c
}

// Update places the camera at target position + RotateY(facing) * offset,
// looking at the target.
func (c *ChaseCamera) Update() {
	if c.Target == nil {
		return
	}

	target := c.Target.Position()
	c.eye = target.Add(math.RotateY(c.Target.Facing()).TransformVec3(c.Offset))
	c.center = target
	c.view = math.LookAt(c.eye, c.center, math.Up)
}

// SetAspect rebuilds the projection for a new viewport shape.
func (c *ChaseCamera) SetAspect(aspect float32) {
	c.lens.Aspect = aspect
	c.projection = c.lens.Projection()
}

// View returns the view matrix from the last Update.
func (c *ChaseCamera) View() math.Mat4 { return c.view }

// Projection returns the projection matrix.
func (c *ChaseCamera) Projection() math.Mat4 { return c.projection }

// Eye returns the camera position from the last Update.
func (c *ChaseCamera) Eye() math.Vec3 { return c.eye }

// LookTarget returns the point the camera is looking at.
func (c *ChaseCamera) LookTarget() math.Vec3 { return c.center }
