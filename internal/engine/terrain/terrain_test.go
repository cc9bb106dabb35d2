package terrain

import (
	"errors"
	"image"
	"testing"

	"github.com/Faultbox/tankterrain/pkg/math"
)

func TestNew_IdentityWorld(t *testing.T) {
	field := rampField(t, 6, 6)
	terr, err := New(field, Config{World: math.Identity()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Local grid z runs toward -Z in the world.
	for _, p := range [][2]float32{{0, 0}, {1.25, 2.5}, {3.7, 0.2}, {4, 4}} {
		got := terr.HeightAt(p[0], -p[1])
		if want := Sample(field, p[0], p[1]); got != want {
			t.Errorf("HeightAt(%v, %v) = %v, want %v", p[0], -p[1], got, want)
		}
	}

	// Positive world z is in front of the grid.
	if got := terr.HeightAt(1, 1); got != 0 {
		t.Errorf("HeightAt(1, 1) = %v, want 0 off the terrain", got)
	}
}

func TestNew_TranslatedWorld(t *testing.T) {
	field := rampField(t, 6, 6)
	terr, err := New(field, Config{World: math.Translate(10, 3, -5)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, p := range [][2]float32{{0, 0}, {2.5, 1.25}, {4, 3}} {
		got := terr.HeightAt(10+p[0], -5-p[1])
		if want := Sample(field, p[0], p[1]); got != want {
			t.Errorf("HeightAt at local %v = %v, want %v", p, got, want)
		}
	}
}

func TestNew_RotatedWorld(t *testing.T) {
	field := rampField(t, 6, 6)
	terr, err := New(field, Config{World: math.RotateY(1.5707964)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// A quarter turn maps local (x, 0, -z) to world (-z, 0, -x).
	got := terr.HeightAt(-2, -3)
	if want := Sample(field, 3, 2); !approx(got, want) {
		t.Errorf("HeightAt(-2, -3) = %v, want %v", got, want)
	}
}

func TestNew_CenteredWorld(t *testing.T) {
	field := rampField(t, 5, 7)
	terr, err := New(field, Config{World: CenteredWorld(5, 7, 0)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// The world origin sits over grid point (2, 3).
	if got := terr.HeightAt(0, 0); got != field.Elevation(2, 3) {
		t.Errorf("HeightAt(0, 0) = %v, want %v", got, field.Elevation(2, 3))
	}
}

func TestNew_SplitRule(t *testing.T) {
	field := cellField(t, 0, 0, 0, 8)
	quadrant, err := New(field, Config{World: math.Identity()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	diagonal, err := New(field, Config{World: math.Identity(), SplitRule: SplitDiagonal})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if q, d := quadrant.HeightAt(0.5, -0.1), diagonal.HeightAt(0.5, -0.1); q == d {
		t.Errorf("expected split rules to differ at (0.5, 0.1), both gave %v", q)
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name  string
		field func(t *testing.T) *HeightField
		world math.Mat4
		want  error
	}{
		{"nil field", func(t *testing.T) *HeightField { return nil }, math.Identity(), ErrInvalidDimensions},
		{"single point", func(t *testing.T) *HeightField { return rampField(t, 1, 1) }, math.Identity(), ErrInvalidDimensions},
		{"single row", func(t *testing.T) *HeightField { return rampField(t, 4, 1) }, math.Identity(), ErrInvalidDimensions},
		{"singular world", func(t *testing.T) *HeightField { return rampField(t, 3, 3) }, math.Scale(1, 1, 0), ErrSingularTransform},
		{"zero world", func(t *testing.T) *HeightField { return rampField(t, 3, 3) }, math.Mat4{}, ErrSingularTransform},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terr, err := New(tt.field(t), Config{World: tt.world})
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if terr != nil {
				t.Error("expected no terrain on error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	img := grayImage(4, 3, func(x, z int) uint8 { return uint8(64 * x) })
	terr, err := Load(img, 8, Config{World: math.Identity()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := terr.HeightAt(1, 0); got != 2 {
		t.Errorf("HeightAt(1, 0) = %v, want 2", got)
	}

	if _, err := Load(image.NewGray(image.Rect(0, 0, 4, 4)), 0, Config{World: math.Identity()}); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("Load with zero scale error = %v, want ErrInvalidScale", err)
	}
}

func TestRenderData_IsCopy(t *testing.T) {
	terr, err := New(rampField(t, 4, 4), Config{World: math.Translate(1, 2, 3)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data := terr.RenderData()
	if len(data.Indices) != 4*2*3 {
		t.Errorf("got %d indices, want 24", len(data.Indices))
	}
	if data.IndexFormat != Index16 {
		t.Errorf("format = %v, want 16-bit", data.IndexFormat)
	}
	if len(data.Indices16) != len(data.Indices) {
		t.Fatalf("got %d 16-bit indices, want %d", len(data.Indices16), len(data.Indices))
	}
	for i, idx := range data.Indices {
		if uint32(data.Indices16[i]) != idx {
			t.Errorf("Indices16[%d] = %d, want %d", i, data.Indices16[i], idx)
		}
	}
	if size := data.IndexFormat.Size(); size != 2 {
		t.Errorf("index size = %d, want 2", size)
	}
	if data.World != math.Translate(1, 2, 3) {
		t.Errorf("world = %v, want translation", data.World)
	}

	data.Vertices[0].Position[1] = 1000
	data.Indices[0] = 99
	data.Indices16[0] = 99
	again := terr.RenderData()
	if again.Vertices[0].Position[1] == 1000 || again.Indices[0] == 99 || again.Indices16[0] == 99 {
		t.Error("mutating render data changed the terrain")
	}
}
