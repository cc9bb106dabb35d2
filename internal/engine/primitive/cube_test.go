package primitive

import "testing"

func TestCube(t *testing.T) {
	vertices, indices := Cube()

	if len(vertices) != 24*6 {
		t.Fatalf("expected 24 vertices, got %d floats", len(vertices))
	}
	if len(indices) != 36 {
		t.Fatalf("expected 36 indices, got %d", len(indices))
	}

	for i := 0; i < len(vertices); i += 6 {
		for k := 0; k < 3; k++ {
			if p := vertices[i+k]; p != 0.5 && p != -0.5 {
				t.Fatalf("vertex %d component %d = %v, want +-0.5", i/6, k, p)
			}
		}
	}

	// Every triangle winds counter-clockwise seen from outside.
	pos := func(i uint16) [3]float32 {
		return [3]float32{vertices[i*6], vertices[i*6+1], vertices[i*6+2]}
	}
	for tri := 0; tri < len(indices); tri += 3 {
		a, b, c := pos(indices[tri]), pos(indices[tri+1]), pos(indices[tri+2])
		e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		cross := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		n := indices[tri] * 6
		normal := [3]float32{vertices[n+3], vertices[n+4], vertices[n+5]}
		if cross[0]*normal[0]+cross[1]*normal[1]+cross[2]*normal[2] <= 0 {
			t.Errorf("triangle %d winds against its normal", tri/3)
		}
	}
}
