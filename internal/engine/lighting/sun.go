// Package lighting provides lighting utilities for 3D rendering.
package lighting

import "math"

// SunDirection returns the normalized direction sunlight travels for a sun
// at azimuth degrees around +Y (0 is +Z) and elevation degrees above the
// horizon.
func SunDirection(azimuth, elevation float32) [3]float32 {
	az := float64(azimuth) * math.Pi / 180
	el := float64(elevation) * math.Pi / 180

	// Point towards the sun, then flip so light travels away from it.
	x := math.Cos(el) * math.Sin(az)
	y := math.Sin(el)
	z := math.Cos(el) * math.Cos(az)

	return [3]float32{-float32(x), -float32(y), -float32(z)}
}
