package remap

import (
	"fmt"
	"math"
)

// Sampler performs bilinear interpolation over a regular 2-D grid.
//
// The grid covers extent [x0, x1] × [y0, y1] with nx × ny cells; sample
// (i, j) sits at the center of cell (i, j), row-major in values
// (values[i*ny+j]). Points outside the extent evaluate to 0; points in
// the outermost half-cells clamp to the edge samples.
type Sampler struct {
	x0, x1, dx float64
	y0, y1, dy float64
	nx, ny     int
	values     []float64
}

// NewSampler wraps values as a regular grid over extent
// [x0, x1, y0, y1]. The buffer is adopted, not copied.
func NewSampler(values []float64, extent [4]float64, nx, ny int) (*Sampler, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, nx, ny)
	}
	if len(values) != nx*ny {
		return nil, fmt.Errorf("%w: %d values for a %dx%d grid", ErrBadShape, len(values), nx, ny)
	}
	x0, x1 := extent[0], extent[1]
	y0, y1 := extent[2], extent[3]
	if x1 == x0 || y1 == y0 {
		return nil, fmt.Errorf("%w: [%g, %g]x[%g, %g]", ErrBadExtent, x0, x1, y0, y1)
	}
	return &Sampler{
		x0: x0, x1: x1, dx: (x1 - x0) / float64(nx),
		y0: y0, y1: y1, dy: (y1 - y0) / float64(ny),
		nx: nx, ny: ny,
		values: values,
	}, nil
}

// Eval returns the bilinear interpolation of the grid at (x, y).
func (s *Sampler) Eval(x, y float64) float64 {
	if !inside(x, s.x0, s.x1) || !inside(y, s.y0, s.y1) {
		return 0
	}
	i0, ti := cellCoord((x-s.x0)/s.dx, s.nx)
	j0, tj := cellCoord((y-s.y0)/s.dy, s.ny)
	i1, j1 := i0, j0
	if i1 < s.nx-1 {
		i1++
	}
	if j1 < s.ny-1 {
		j1++
	}
	v00 := s.values[i0*s.ny+j0]
	v01 := s.values[i0*s.ny+j1]
	v10 := s.values[i1*s.ny+j0]
	v11 := s.values[i1*s.ny+j1]
	return (1-ti)*((1-tj)*v00+tj*v01) + ti*((1-tj)*v10+tj*v11)
}

// inside reports whether v lies within [lo, hi] regardless of the
// extent's orientation.
func inside(v, lo, hi float64) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo <= v && v <= hi
}

// cellCoord converts a fractional cell position (0 at the first node)
// into a base sample index and interpolation weight under the
// cell-center convention, clamping the outermost half-cells.
func cellCoord(u float64, n int) (int, float64) {
	// Shift from node space to sample space: sample i sits at u=i+0.5.
	u -= 0.5
	if n == 1 {
		return 0, 0
	}
	i := int(math.Floor(u))
	if i < 0 {
		return 0, 0
	}
	if i >= n-1 {
		return n - 2, 1
	}
	return i, u - float64(i)
}
