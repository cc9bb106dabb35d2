// Package terrain turns an elevation image into a triangle-strip mesh and
// answers height queries that agree with that mesh.
package terrain

import (
	"errors"

	"github.com/Faultbox/tankterrain/pkg/math"
)

// Construction errors. Height queries never fail.
var (
	ErrNilImage          = errors.New("terrain: nil elevation image")
	ErrInvalidDimensions = errors.New("terrain: invalid grid dimensions")
	ErrInvalidScale      = errors.New("terrain: elevation scale must be positive and finite")
	ErrSingularTransform = errors.New("terrain: world transform is not invertible")
)

// TextureTiling is the number of grid units covered by one repeat of the ground texture.
const TextureTiling = 50

// Vertex is one grid point of the terrain mesh, laid out for direct GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Bounds holds the axis-aligned bounding box of the mesh in local space.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// IndexFormat is the element width a renderer should use for the index buffer.
type IndexFormat int

const (
	Index16 IndexFormat = iota
	Index32
)

func (f IndexFormat) String() string {
	if f == Index16 {
		return "16-bit"
	}
	return "32-bit"
}

// Size returns the element size in bytes.
func (f IndexFormat) Size() int {
	if f == Index16 {
		return 2
	}
	return 4
}

// RenderData is the read-only view of the terrain handed to a renderer.
// The slices are copies; changing them does not affect the terrain.
// Indices16 is set only when IndexFormat is Index16.
type RenderData struct {
	Vertices    []Vertex
	Indices     []uint32
	Indices16   []uint16
	IndexFormat IndexFormat
	World       math.Mat4
	Bounds      Bounds
}
