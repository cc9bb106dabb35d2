package lighting

import (
	"math"
	"testing"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name               string
		azimuth, elevation float32
		want               [3]float32
	}{
		{"overhead", 0, 90, [3]float32{0, -1, 0}},
		{"horizon +Z", 0, 0, [3]float32{0, 0, -1}},
		{"horizon +X", 90, 0, [3]float32{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.azimuth, tt.elevation)
			for i := range got {
				if math.Abs(float64(got[i]-tt.want[i])) > 1e-6 {
					t.Fatalf("SunDirection(%v, %v) = %v, want %v", tt.azimuth, tt.elevation, got, tt.want)
				}
			}
		})
	}
}

func TestSunDirectionIsUnit(t *testing.T) {
	d := SunDirection(37, 52)
	length := math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
	if math.Abs(length-1) > 1e-6 {
		t.Errorf("length = %v, want 1", length)
	}
}
