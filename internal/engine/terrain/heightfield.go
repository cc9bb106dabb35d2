package terrain

import (
	"fmt"
	"image"
	"image/color"
	gomath "math"
)

// intensityRange maps an 8-bit sample onto [0, 1). Dividing by 256 rather
// than 255 keeps the brightest sample strictly below the elevation scale.
const intensityRange = 256

// HeightField is an immutable grid of elevations indexed [x][z].
// Width and depth count grid points, not cells.
type HeightField struct {
	width      int
	depth      int
	scale      float32
	elevations [][]float32
}

// NewHeightField converts the red channel of img into elevations:
// elevation(x, z) = red(x, z) / 256 * elevationScale. Image rows map to z.
func NewHeightField(img image.Image, elevationScale float32) (*HeightField, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if !(elevationScale > 0) || gomath.IsInf(float64(elevationScale), 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, elevationScale)
	}

	b := img.Bounds()
	width, depth := b.Dx(), b.Dy()
	if width < 1 || depth < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, depth)
	}

	elevations := make([][]float32, width)
	for x := range width {
		elevations[x] = make([]float32, depth)
		for z := range depth {
			elevations[x][z] = float32(redAt(img, b.Min.X+x, b.Min.Y+z)) / intensityRange * elevationScale
		}
	}

	return &HeightField{
		width:      width,
		depth:      depth,
		scale:      elevationScale,
		elevations: elevations,
	}, nil
}

// FromElevations builds a field from elevations that are already in world
// units, indexed [x][z]. The input is copied.
func FromElevations(elevations [][]float32) (*HeightField, error) {
	width := len(elevations)
	if width < 1 || len(elevations[0]) < 1 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimensions)
	}
	depth := len(elevations[0])

	copied := make([][]float32, width)
	for x, column := range elevations {
		if len(column) != depth {
			return nil, fmt.Errorf("%w: column %d has %d samples, want %d", ErrInvalidDimensions, x, len(column), depth)
		}
		copied[x] = append([]float32(nil), column...)
	}

	return &HeightField{
		width:      width,
		depth:      depth,
		scale:      1,
		elevations: copied,
	}, nil
}

// redAt returns the 8-bit non-premultiplied red sample.
func redAt(img image.Image, x, y int) uint8 {
	switch src := img.(type) {
	case *image.Gray:
		return src.GrayAt(x, y).Y
	case *image.NRGBA:
		return src.NRGBAAt(x, y).R
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).R
}

// Width returns the number of grid points along x.
func (h *HeightField) Width() int { return h.width }

// Depth returns the number of grid points along z.
func (h *HeightField) Depth() int { return h.depth }

// Scale returns the elevation scale the field was built with.
func (h *HeightField) Scale() float32 { return h.scale }

// Elevation returns the stored elevation at grid point (x, z).
// It panics when the point is outside the grid.
func (h *HeightField) Elevation(x, z int) float32 {
	return h.elevations[x][z]
}

// Range returns the lowest and highest stored elevations.
func (h *HeightField) Range() (lo, hi float32) {
	lo, hi = h.elevations[0][0], h.elevations[0][0]
	for _, column := range h.elevations {
		for _, e := range column {
			lo = min(lo, e)
			hi = max(hi, e)
		}
	}
	return lo, hi
}
