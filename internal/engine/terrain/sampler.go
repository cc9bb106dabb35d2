package terrain

import "fmt"

// SplitRule selects which of a cell's two planar patches answers a query.
//
// The mesh splits every cell along the edge from (x+1, z) to (x, z+1).
// SplitQuadrant (the default) uses the lower patch only when both fractions
// are below one half, so near the anti-diagonal corners it can disagree
// with the rendered surface. SplitDiagonal follows the mesh edge exactly.
type SplitRule int

const (
	SplitQuadrant SplitRule = iota
	SplitDiagonal
)

// ParseSplitRule converts a config value ("quadrant", "diagonal") to a SplitRule.
func ParseSplitRule(s string) (SplitRule, error) {
	switch s {
	case "", "quadrant":
		return SplitQuadrant, nil
	case "diagonal":
		return SplitDiagonal, nil
	}
	return SplitQuadrant, fmt.Errorf("unknown split rule %q", s)
}

func (r SplitRule) String() string {
	if r == SplitDiagonal {
		return "diagonal"
	}
	return "quadrant"
}

// Sampler evaluates the piecewise-planar surface of a HeightField in local
// grid coordinates. It holds no mutable state and is safe for concurrent use.
type Sampler struct {
	field *HeightField
	rule  SplitRule
}

// NewSampler creates a sampler over field using rule.
func NewSampler(field *HeightField, rule SplitRule) *Sampler {
	return &Sampler{field: field, rule: rule}
}

// Sample returns the elevation at local (x, z) using SplitQuadrant.
func Sample(field *HeightField, x, z float32) float32 {
	return NewSampler(field, SplitQuadrant).Sample(x, z)
}

// Sample returns the elevation at local (x, z). Points outside the
// interpolable range [0, width-2] x [0, depth-2] resolve to 0.
func (s *Sampler) Sample(x, z float32) float32 {
	f := s.field
	// Negated comparisons so NaN falls outside.
	if !(x >= 0) || !(z >= 0) || x > float32(f.width-2) || z > float32(f.depth-2) {
		return 0
	}

	cx, cz := int(x), int(z)
	fx := x - float32(cx)
	fz := z - float32(cz)

	h00 := f.elevations[cx][cz]
	h10 := f.elevations[cx+1][cz]
	h01 := f.elevations[cx][cz+1]
	h11 := f.elevations[cx+1][cz+1]

	if s.lowerPatch(fx, fz) {
		return h00 + fx*(h10-h00) + fz*(h01-h00)
	}

	// Fractions measured back from the far corner.
	rx := float32(cx+1) - x
	rz := float32(cz+1) - z
	return h11 - rx*(h11-h01) - rz*(h11-h10)
}

func (s *Sampler) lowerPatch(fx, fz float32) bool {
	if s.rule == SplitDiagonal {
		return fx+fz < 1
	}
	return fx < 0.5 && fz < 0.5
}
