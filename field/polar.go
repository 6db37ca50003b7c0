package field

import (
	"fmt"
	"math"
	"strings"

	"github.com/ctessum/sparse"

	"github.com/plasmalab/picgrid/remap"
)

// Angular and radial cell caps of the default polar output grid. The
// radial resolution additionally never exceeds half the smaller input
// dimension: beyond that the remap only invents samples.
const (
	defaultPolarAngles = 1000
	maxPolarRadii      = 1000
)

// PolarOptions configures Field.ToPolar. The zero value requests the
// defaults: full angular range, radius from zero to the upper node of
// the first axis, and the default output shape.
type PolarOptions struct {
	// Extent is the polar output span [phiMin, phiMax, rMin, rMax].
	// Nil selects [-pi, pi, 0, <upper node of axis x>].
	Extent []float64
	// Shape is the polar output resolution [nPhi, nR]. Nil selects
	// [1000, min(minInputDim/2, 1000)].
	Shape []int
	// AngleOffset rotates the sampling grid. The stored extent is
	// un-rotated afterwards, so extents stay in a canonical,
	// offset-independent frame.
	AngleOffset float64
}

// ToPolar remaps a 2-D Cartesian field onto a polar (angle × radius)
// grid via bilinear resampling. The result is a new Field; the receiver
// is untouched. Axes carrying wavenumber labels (from FFT) are renamed
// to angular and radial wavenumber.
func (f *Field) ToPolar(opts PolarOptions) (*Field, error) {
	if dims := f.Dimensions(); dims != 2 {
		return nil, fmt.Errorf("%w: got %d dimensions", ErrDimension, dims)
	}
	extent := opts.Extent
	if extent == nil {
		extent = []float64{-math.Pi, math.Pi, 0, f.Extent()[1]}
	}
	if len(extent) != 4 {
		return nil, fmt.Errorf("%w: polar extent has %d values, expected 4",
			ErrShapeMismatch, len(extent))
	}
	shape := opts.Shape
	if shape == nil {
		minDim := f.matrix.Shape[0]
		if f.matrix.Shape[1] < minDim {
			minDim = f.matrix.Shape[1]
		}
		nr := minDim / 2
		if nr > maxPolarRadii {
			nr = maxPolarRadii
		}
		if nr < 1 {
			nr = 1
		}
		shape = []int{defaultPolarAngles, nr}
	}
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: polar shape has %d values, expected 2",
			ErrShapeMismatch, len(shape))
	}

	src := f.Extent()
	sampleExtent := [4]float64{
		extent[0] - opts.AngleOffset, extent[1] - opts.AngleOffset,
		extent[2], extent[3],
	}
	vals, err := remap.CartesianToPolar(
		f.matrix.Elements, f.matrix.Shape[0], f.matrix.Shape[1],
		[4]float64{src[0], src[1], src[2], src[3]},
		sampleExtent, shape[0], shape[1],
	)
	if err != nil {
		return nil, err
	}

	ret := f.Clone()
	ret.matrix = sparse.ZerosDense(shape[0], shape[1])
	copy(ret.matrix.Elements, vals)
	// Stored extents carry the canonical (un-rotated) angles.
	ret.axes[0].SetExtent(extent[0], extent[1], shape[0])
	ret.axes[1].SetExtent(extent[2], extent[3], shape[1])
	if strings.HasPrefix(ret.axes[0].Name, "k_") && strings.HasPrefix(ret.axes[1].Name, "k_") {
		ret.axes[0].Name = "k_phi"
		ret.axes[1].Name = "|k|"
	}
	return ret, nil
}
