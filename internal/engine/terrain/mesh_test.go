package terrain

import (
	"testing"
)

// rampField creates a field whose elevation is x + 10*z.
func rampField(t *testing.T, width, depth int) *HeightField {
	t.Helper()
	elevations := make([][]float32, width)
	for x := range width {
		elevations[x] = make([]float32, depth)
		for z := range depth {
			elevations[x][z] = float32(x + 10*z)
		}
	}
	field, err := FromElevations(elevations)
	if err != nil {
		t.Fatalf("FromElevations: %v", err)
	}
	return field
}

func TestBuildMesh_IndexCount(t *testing.T) {
	for _, size := range [][2]int{{1, 2}, {2, 2}, {3, 2}, {4, 3}, {5, 4}, {17, 9}, {8, 1}} {
		width, depth := size[0], size[1]
		mesh := BuildMesh(rampField(t, width, depth))

		want := width * 2 * (depth - 1)
		if len(mesh.Indices) != want {
			t.Errorf("%dx%d: %d indices, want %d", width, depth, len(mesh.Indices), want)
		}
		for i, idx := range mesh.Indices {
			if int(idx) >= width*depth {
				t.Errorf("%dx%d: index %d = %d out of range", width, depth, i, idx)
			}
		}
	}
}

func TestBuildMesh_StripOrder(t *testing.T) {
	mesh := BuildMesh(rampField(t, 3, 4))

	// Row 0 left to right, row 1 right to left, row 2 left to right.
	want := []uint32{
		0, 3, 1, 4, 2, 5,
		8, 5, 7, 4, 6, 3,
		6, 9, 7, 10, 8, 11,
	}
	if len(mesh.Indices) != len(want) {
		t.Fatalf("got %d indices, want %d", len(mesh.Indices), len(want))
	}
	for i := range want {
		if mesh.Indices[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, mesh.Indices[i], want[i])
		}
	}
}

func TestBuildMesh_Vertices(t *testing.T) {
	field := rampField(t, 4, 3)
	mesh := BuildMesh(field)

	if len(mesh.Vertices) != 12 {
		t.Fatalf("got %d vertices, want 12", len(mesh.Vertices))
	}

	for z := range 3 {
		for x := range 4 {
			v := mesh.Vertices[x+z*4]
			wantPos := [3]float32{float32(x), field.Elevation(x, z), -float32(z)}
			if v.Position != wantPos {
				t.Errorf("vertex (%d,%d) position = %v, want %v", x, z, v.Position, wantPos)
			}
			if v.Normal != [3]float32{0, 1, 0} {
				t.Errorf("vertex (%d,%d) normal = %v, want up", x, z, v.Normal)
			}
			wantUV := [2]float32{float32(x) / 50, float32(z) / 50}
			if v.TexCoord != wantUV {
				t.Errorf("vertex (%d,%d) uv = %v, want %v", x, z, v.TexCoord, wantUV)
			}
		}
	}

	wantBounds := Bounds{Min: [3]float32{0, 0, -2}, Max: [3]float32{3, 23, 0}}
	if mesh.Bounds != wantBounds {
		t.Errorf("bounds = %+v, want %+v", mesh.Bounds, wantBounds)
	}
}

// Every triangle of the strip must be one of the two planar patches the
// sampler interpolates: {00, 10, 01} or {11, 10, 01}.
func TestBuildMesh_TrianglesMatchSamplerPatches(t *testing.T) {
	const width, depth = 5, 4
	mesh := BuildMesh(rampField(t, width, depth))
	tris := mesh.Triangles()

	if want := 2 * (width - 1) * (depth - 1); len(tris) != want {
		t.Fatalf("got %d triangles, want %d", len(tris), want)
	}

	seen := make(map[[3]int]int)
	var orientation int
	for _, tri := range tris {
		var xs, zs [3]int
		for i, idx := range tri {
			xs[i], zs[i] = int(idx)%width, int(idx)/width
		}
		cx, cz := min(xs[0], xs[1], xs[2]), min(zs[0], zs[1], zs[2])

		var corners [2][2]bool
		for i := range 3 {
			corners[xs[i]-cx][zs[i]-cz] = true
		}
		lower := corners[0][0] && corners[1][0] && corners[0][1] && !corners[1][1]
		upper := corners[1][1] && corners[1][0] && corners[0][1] && !corners[0][0]
		if !lower && !upper {
			t.Errorf("triangle %v in cell (%d,%d) is not a sampler patch", tri, cx, cz)
		}
		patch := 0
		if upper {
			patch = 1
		}
		seen[[3]int{cx, cz, patch}]++

		cross := (xs[1]-xs[0])*(zs[2]-zs[0]) - (zs[1]-zs[0])*(xs[2]-xs[0])
		sign := 1
		if cross < 0 {
			sign = -1
		}
		if orientation == 0 {
			orientation = sign
		} else if sign != orientation {
			t.Errorf("triangle %v has inconsistent winding", tri)
		}
	}

	for cx := range width - 1 {
		for cz := range depth - 1 {
			for patch := range 2 {
				if seen[[3]int{cx, cz, patch}] != 1 {
					t.Errorf("cell (%d,%d) patch %d covered %d times, want 1", cx, cz, patch, seen[[3]int{cx, cz, patch}])
				}
			}
		}
	}
}

func TestMesh_TrianglesWindClockwiseFromAbove(t *testing.T) {
	mesh := BuildMesh(rampField(t, 5, 4))

	for _, tri := range mesh.Triangles() {
		p0 := mesh.Vertices[tri[0]].Position
		p1 := mesh.Vertices[tri[1]].Position
		p2 := mesh.Vertices[tri[2]].Position
		// y component of (p1-p0) x (p2-p0)
		ny := (p1[2]-p0[2])*(p2[0]-p0[0]) - (p1[0]-p0[0])*(p2[2]-p0[2])
		if ny >= 0 {
			t.Errorf("triangle %v has normal y %v, want < 0", tri, ny)
		}
	}
}

func TestMesh_IndexFormat(t *testing.T) {
	small := BuildMesh(rampField(t, 4, 4))
	if small.IndexFormat() != Index16 {
		t.Errorf("16 vertices: format = %v, want 16-bit", small.IndexFormat())
	}
	narrow := small.Indices16()
	if len(narrow) != len(small.Indices) {
		t.Fatalf("Indices16 length = %d, want %d", len(narrow), len(small.Indices))
	}
	for i := range narrow {
		if uint32(narrow[i]) != small.Indices[i] {
			t.Errorf("Indices16[%d] = %d, want %d", i, narrow[i], small.Indices[i])
		}
	}

	// 182 * 181 = 32942 vertices, past the 16-bit threshold.
	large := BuildMesh(rampField(t, 182, 181))
	if large.IndexFormat() != Index32 {
		t.Errorf("%d vertices: format = %v, want 32-bit", len(large.Vertices), large.IndexFormat())
	}
	if large.Indices16() != nil {
		t.Error("Indices16 should be nil for 32-bit meshes")
	}
}
