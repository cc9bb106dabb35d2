package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/Faultbox/tankterrain/internal/engine/texture"
)

// GenerateHeightmap builds rolling hills from summed sine waves. The output
// is deterministic for a given size and spans the full 0..255 range.
func GenerateHeightmap(width, depth int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, depth))
	if width <= 0 || depth <= 0 {
		return img
	}

	raw := make([]float64, width*depth)
	lo, hi := math.Inf(1), math.Inf(-1)
	for z := 0; z < depth; z++ {
		v := float64(z) / float64(depth)
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width)
			h := math.Sin(u*2*math.Pi)*math.Cos(v*2*math.Pi) +
				0.5*math.Sin(u*6*math.Pi+1.3)*math.Sin(v*5*math.Pi) +
				0.25*math.Cos((u+v)*11*math.Pi)
			raw[z*width+x] = h
			lo = math.Min(lo, h)
			hi = math.Max(hi, h)
		}
	}

	span := hi - lo
	for i, h := range raw {
		var g uint8
		if span > 0 {
			g = uint8(math.Round((h - lo) / span * 255))
		}
		img.Pix[i] = g
	}
	return img
}

// GroundTexture is the fallback ground texture.
func GroundTexture() image.Image {
	return texture.Checker(256, 8,
		color.RGBA{R: 86, G: 125, B: 70, A: 255},
		color.RGBA{R: 104, G: 145, B: 82, A: 255})
}
