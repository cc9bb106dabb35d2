package terrain

import (
	gomath "math"
)

// Mesh is the renderable form of a HeightField: one vertex per grid point
// (index x + z*width) and a single triangle strip covering every cell.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Width    int
	Depth    int
	Bounds   Bounds
}

// BuildMesh creates the terrain mesh for a height field.
//
// Vertex (x, z) sits at (x, elevation, -z) so that rows further down the
// image lie further into the scene. Every normal points up and texture
// coordinates repeat every TextureTiling grid units.
func BuildMesh(field *HeightField) *Mesh {
	width, depth := field.Width(), field.Depth()

	bounds := Bounds{
		Min: [3]float32{0, gomath.MaxFloat32, -float32(depth - 1)},
		Max: [3]float32{float32(width - 1), -gomath.MaxFloat32, 0},
	}

	vertices := make([]Vertex, 0, width*depth)
	for z := range depth {
		for x := range width {
			elevation := field.Elevation(x, z)
			bounds.Min[1] = min(bounds.Min[1], elevation)
			bounds.Max[1] = max(bounds.Max[1], elevation)

			vertices = append(vertices, Vertex{
				Position: [3]float32{float32(x), elevation, -float32(z)},
				Normal:   [3]float32{0, 1, 0},
				TexCoord: [2]float32{float32(x) / TextureTiling, float32(z) / TextureTiling},
			})
		}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  buildStripIndices(width, depth),
		Width:    width,
		Depth:    depth,
		Bounds:   bounds,
	}
}

// buildStripIndices walks the grid back and forth one row of cells at a
// time. Even rows run left to right emitting (x, z) then (x, z+1); odd rows
// run right to left emitting (x, z+1) then (x, z). Each pass emits 2*width
// indices, so the strip holds width*2*(depth-1) in total.
func buildStripIndices(width, depth int) []uint32 {
	if depth < 2 {
		return nil
	}

	indices := make([]uint32, 0, width*2*(depth-1))
	at := func(x, z int) uint32 { return uint32(x + z*width) }

	for z := 0; z < depth-1; z++ {
		if z%2 == 0 {
			for x := 0; x < width; x++ {
				indices = append(indices, at(x, z), at(x, z+1))
			}
			continue
		}
		for x := width - 1; x >= 0; x-- {
			indices = append(indices, at(x, z+1), at(x, z))
		}
	}
	return indices
}

// IndexFormat reports whether the strip fits 16-bit indices.
func (m *Mesh) IndexFormat() IndexFormat {
	if len(m.Vertices) > gomath.MaxInt16 {
		return Index32
	}
	return Index16
}

// Indices16 returns the index buffer narrowed to 16 bits.
// It returns nil when the mesh needs 32-bit indices.
func (m *Mesh) Indices16() []uint16 {
	if m.IndexFormat() != Index16 {
		return nil
	}
	narrow := make([]uint16, len(m.Indices))
	for i, idx := range m.Indices {
		narrow[i] = uint16(idx)
	}
	return narrow
}

// Triangles expands the strip into explicit triangles with a consistent
// winding, dropping the zero-area triangles where the strip turns a row.
func (m *Mesh) Triangles() [][3]uint32 {
	if len(m.Indices) < 3 {
		return nil
	}

	tris := make([][3]uint32, 0, len(m.Indices)-2)
	for i := 2; i < len(m.Indices); i++ {
		a, b, c := m.Indices[i-2], m.Indices[i-1], m.Indices[i]
		if i%2 == 1 {
			a, b = b, a
		}
		if m.degenerate(a, b, c) {
			continue
		}
		tris = append(tris, [3]uint32{a, b, c})
	}
	return tris
}

// degenerate reports whether three grid vertices enclose no area.
func (m *Mesh) degenerate(a, b, c uint32) bool {
	w := uint32(m.Width)
	ax, az := int(a%w), int(a/w)
	bx, bz := int(b%w), int(b/w)
	cx, cz := int(c%w), int(c/w)
	return (bx-ax)*(cz-az)-(bz-az)*(cx-ax) == 0
}
