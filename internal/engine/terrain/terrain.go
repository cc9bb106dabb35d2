package terrain

import (
	"fmt"
	"image"

	"github.com/Faultbox/tankterrain/pkg/math"
)

// Config holds terrain placement and query settings.
type Config struct {
	// World places the grid's local space in the world. Must be invertible.
	World     math.Mat4
	SplitRule SplitRule
}

// Terrain owns a height field, the mesh built from it and its placement in
// the world. Nothing about it changes after New returns.
type Terrain struct {
	field        *HeightField
	mesh         *Mesh
	sampler      *Sampler
	world        math.Mat4
	inverseWorld math.Mat4
}

// New builds the mesh and sampler for field. The field needs at least two
// grid points along each axis to form a surface.
func New(field *HeightField, cfg Config) (*Terrain, error) {
	if field == nil {
		return nil, fmt.Errorf("%w: nil height field", ErrInvalidDimensions)
	}
	if field.Width() < 2 || field.Depth() < 2 {
		return nil, fmt.Errorf("%w: %dx%d, need at least 2x2", ErrInvalidDimensions, field.Width(), field.Depth())
	}

	inverse, ok := cfg.World.Inverse()
	if !ok {
		return nil, ErrSingularTransform
	}

	return &Terrain{
		field:        field,
		mesh:         BuildMesh(field),
		sampler:      NewSampler(field, cfg.SplitRule),
		world:        cfg.World,
		inverseWorld: inverse,
	}, nil
}

// Load converts img into a height field and builds the terrain from it.
func Load(img image.Image, elevationScale float32, cfg Config) (*Terrain, error) {
	field, err := NewHeightField(img, elevationScale)
	if err != nil {
		return nil, err
	}
	return New(field, cfg)
}

// HeightAt returns the terrain elevation below world position (x, z).
// Positions off the terrain return 0.
func (t *Terrain) HeightAt(x, z float32) float32 {
	local := t.inverseWorld.TransformVec3(math.Vec3{X: x, Y: 0, Z: z})
	// Vertices were placed at -z, so undo that before sampling the grid.
	return t.sampler.Sample(local.X, -local.Z)
}

// RenderData returns copies of the vertex and index buffers together with
// the world transform.
func (t *Terrain) RenderData() RenderData {
	return RenderData{
		Vertices:    append([]Vertex(nil), t.mesh.Vertices...),
		Indices:     append([]uint32(nil), t.mesh.Indices...),
		Indices16:   t.mesh.Indices16(),
		IndexFormat: t.mesh.IndexFormat(),
		World:       t.world,
		Bounds:      t.mesh.Bounds,
	}
}

// Field returns the height field backing the terrain.
func (t *Terrain) Field() *HeightField { return t.field }

// World returns the terrain's world transform.
func (t *Terrain) World() math.Mat4 { return t.world }

// Bounds returns the mesh bounds in local space.
func (t *Terrain) Bounds() Bounds { return t.mesh.Bounds }

// CenteredWorld returns a transform that puts the middle of a width x depth
// grid at the world origin, raised by y.
func CenteredWorld(width, depth int, y float32) math.Mat4 {
	return math.Translate(-float32(width-1)/2, y, float32(depth-1)/2)
}
