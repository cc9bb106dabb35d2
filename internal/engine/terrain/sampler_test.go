package terrain

import (
	"math"
	"testing"
)

// cellField creates a 3x3 field whose cell (0,0) has the given corners.
// The rest of the grid is zero.
func cellField(t *testing.T, h00, h10, h01, h11 float32) *HeightField {
	t.Helper()
	field, err := FromElevations([][]float32{
		{h00, h01, 0},
		{h10, h11, 0},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatalf("FromElevations: %v", err)
	}
	return field
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestSample_OutOfRange(t *testing.T) {
	field := rampField(t, 6, 5)

	tests := []struct {
		name string
		x, z float32
	}{
		{"negative x", -0.1, 1},
		{"negative z", 1, -0.1},
		{"x at last column", 5, 1},
		{"x past interpolable range", 4.01, 1},
		{"z at depth", 1, 5},
		{"z past interpolable range", 1, 3.5},
		{"NaN x", float32(math.NaN()), 1},
		{"NaN z", 1, float32(math.NaN())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sample(field, tt.x, tt.z); got != 0 {
				t.Errorf("Sample(%v, %v) = %v, want 0", tt.x, tt.z, got)
			}
		})
	}
}

func TestSample_GridPoints(t *testing.T) {
	field := rampField(t, 6, 5)

	// Interior points, including the far edge of the interpolable range.
	for x := 0; x <= 4; x++ {
		for z := 0; z <= 3; z++ {
			got := Sample(field, float32(x), float32(z))
			if want := field.Elevation(x, z); got != want {
				t.Errorf("Sample(%d, %d) = %v, want %v", x, z, got, want)
			}
		}
	}
}

func TestSample_PlanarPatches(t *testing.T) {
	field := cellField(t, 0, 10, 0, 10)

	if got := Sample(field, 0.25, 0.25); got != 2.5 {
		t.Errorf("lower-left Sample(0.25, 0.25) = %v, want 2.5", got)
	}
	if got := Sample(field, 0.75, 0.75); got != 7.5 {
		t.Errorf("upper-right Sample(0.75, 0.75) = %v, want 7.5", got)
	}
}

func TestSample_TwoByTwoHasNoInteriorRange(t *testing.T) {
	field, err := FromElevations([][]float32{{0, 0}, {10, 10}})
	if err != nil {
		t.Fatalf("FromElevations: %v", err)
	}

	// width-2 == 0, so only x == 0 and z == 0 are in range.
	if got := Sample(field, 0.25, 0.25); got != 0 {
		t.Errorf("Sample(0.25, 0.25) = %v, want 0", got)
	}
	if got := Sample(field, 0, 0); got != 0 {
		t.Errorf("Sample(0, 0) = %v, want 0", got)
	}
}

func TestSample_QuadrantBoundary(t *testing.T) {
	// Only the far corner is raised, so the two patches disagree away
	// from their shared edge.
	field := cellField(t, 0, 0, 0, 8)

	tests := []struct {
		name string
		x, z float32
		want float32
	}{
		{"below both halves uses lower patch", 0.4, 0.1, 0},
		{"fx at one half uses upper patch", 0.5, 0.1, 8 - 0.5*8 - 0.9*8},
		{"fz at one half uses upper patch", 0.1, 0.5, 8 - 0.9*8 - 0.5*8},
		{"centre lies on the shared edge", 0.5, 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sample(field, tt.x, tt.z); !approx(got, tt.want) {
				t.Errorf("Sample(%v, %v) = %v, want %v", tt.x, tt.z, got, tt.want)
			}
		})
	}
}

func TestSampler_DiagonalRule(t *testing.T) {
	field := cellField(t, 0, 0, 0, 8)
	diagonal := NewSampler(field, SplitDiagonal)

	// fx+fz < 1 stays on the lower patch, where the mesh is flat.
	if got := diagonal.Sample(0.5, 0.1); got != 0 {
		t.Errorf("diagonal Sample(0.5, 0.1) = %v, want 0", got)
	}
	if got := diagonal.Sample(0.75, 0.75); !approx(got, 4) {
		t.Errorf("diagonal Sample(0.75, 0.75) = %v, want 4", got)
	}

	// Grid points agree under both rules.
	quadrant := NewSampler(field, SplitQuadrant)
	for _, p := range [][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if a, b := quadrant.Sample(p[0], p[1]), diagonal.Sample(p[0], p[1]); a != b {
			t.Errorf("rules disagree at %v: %v vs %v", p, a, b)
		}
	}
}

func TestSample_Deterministic(t *testing.T) {
	field := rampField(t, 9, 9)
	s := NewSampler(field, SplitQuadrant)

	for _, p := range [][2]float32{{0.3, 2.7}, {5.5, 1.25}, {7, 7}, {3.99, 0.01}} {
		first := s.Sample(p[0], p[1])
		second := s.Sample(p[0], p[1])
		if first != second {
			t.Errorf("Sample%v not repeatable: %v then %v", p, first, second)
		}
	}
}

func TestParseSplitRule(t *testing.T) {
	tests := []struct {
		in      string
		want    SplitRule
		wantErr bool
	}{
		{"", SplitQuadrant, false},
		{"quadrant", SplitQuadrant, false},
		{"diagonal", SplitDiagonal, false},
		{"bilinear", SplitQuadrant, true},
	}
	for _, tt := range tests {
		got, err := ParseSplitRule(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSplitRule(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseSplitRule(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" && got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}
