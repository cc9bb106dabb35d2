// Package primitive builds small GPU-ready meshes.
package primitive

// Cube returns a unit cube centered on the origin as interleaved
// position/normal vertices (six floats each) and triangle indices.
// Each face has its own four vertices so normals stay flat.
func Cube() (vertices []float32, indices []uint16) {
	faces := []struct {
		normal [3]float32
		u, v   [3]float32
	}{
		{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	vertices = make([]float32, 0, 6*4*6)
	indices = make([]uint16, 0, 6*6)
	for i, f := range faces {
		for _, c := range corners {
			for k := 0; k < 3; k++ {
				vertices = append(vertices, 0.5*(f.normal[k]+c[0]*f.u[k]+c[1]*f.v[k]))
			}
			vertices = append(vertices, f.normal[:]...)
		}
		base := uint16(i * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}
