package field

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/dsp/fourier"
)

// epsilon0 is the vacuum permittivity in F/m, the scaling constant of
// the spectral energy density.
const epsilon0 = 8.854187817e-12

// FFT computes the 2-D spectral energy density of the field:
// 0.5*epsilon0*|F|^2 of the real-input Fourier transform over both
// dimensions. The zero-frequency component is shifted to the center
// along the axis named by shift; the other axis stays one-sided (real
// transform). The result is a new Field; the receiver is untouched.
//
// Both axes must be uniformly spaced — a spectral transform over a
// non-linear axis is physically meaningless and fails with ErrNotLinear.
// Output axes are relabeled as wavenumber normalized by k0 and rebuilt
// from the transform's frequency bins, so the coherence invariant holds
// for every input length, odd or even.
//
// The relabeling assumes the input axes are spatial coordinates. This is
// a visualization aid for spectral energy density, not a general-purpose
// transform.
func (f *Field) FFT(k0 float64, shift AxisID) (*Field, error) {
	if math.IsNaN(k0) || k0 <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadWavenumber, k0)
	}
	if dims := f.Dimensions(); dims != 2 {
		return nil, fmt.Errorf("%w: got %d dimensions", ErrDimension, dims)
	}
	if shift != AxisX && shift != AxisY {
		return nil, fmt.Errorf("%w: %s in a 2-axis field", ErrAxisRange, shift)
	}
	for _, ax := range f.axes {
		if !ax.IsLinear() {
			return nil, fmt.Errorf("%w: axis %q", ErrNotLinear, ax.Name)
		}
	}

	rows := floatRows(f.matrix)
	var spec [][]complex128
	if shift == AxisX {
		// One-sided real transform along y, then centered complex
		// transform along x.
		spec = realRows(rows)
		spec = transpose(shiftRows(complexRows(transpose(spec))))
	} else {
		// One-sided real transform along x, then centered complex
		// transform along y.
		spec = transpose(realRows(floatTranspose(rows)))
		spec = shiftRows(complexRows(spec))
	}

	m0 := len(spec)
	m1 := 0
	if m0 > 0 {
		m1 = len(spec[0])
	}
	out := sparse.ZerosDense(m0, m1)
	for i := 0; i < m0; i++ {
		for j := 0; j < m1; j++ {
			mag := cmplx.Abs(spec[i][j])
			out.Elements[i*m1+j] = 0.5 * epsilon0 * mag * mag
		}
	}

	ret := f.Clone()
	ret.matrix = out
	ret.Name = "FFT of " + f.Name
	ret.Unit = "?"
	for id, ax := range ret.axes {
		nodes := ax.gridNode
		dx := nodes[1] - nodes[0]
		// Highest frequency bin of a real transform over the node
		// sequence: floor(n/2)/(dx*n).
		nn := len(nodes)
		fmax := float64(nn/2) / (dx * float64(nn))
		var lo, hi float64
		if AxisID(id) == shift {
			lo, hi = -fmax/2, fmax/2
		} else {
			lo, hi = 0, fmax
		}
		ax.Name = "k_" + ax.Name + " / k_0"
		ax.Unit = ""
		ax.SetExtent(lo/k0, hi/k0, ret.matrix.Shape[id])
	}
	return ret, nil
}

// floatRows copies a 2-D dense array into row slices.
func floatRows(a *sparse.DenseArray) [][]float64 {
	n0, n1 := a.Shape[0], a.Shape[1]
	out := make([][]float64, n0)
	for i := 0; i < n0; i++ {
		out[i] = a.Elements[i*n1 : (i+1)*n1]
	}
	return out
}

// floatTranspose swaps the two indices of a rectangular real grid.
func floatTranspose(g [][]float64) [][]float64 {
	if len(g) == 0 {
		return nil
	}
	n0, n1 := len(g), len(g[0])
	out := make([][]float64, n1)
	for j := 0; j < n1; j++ {
		row := make([]float64, n0)
		for i := 0; i < n0; i++ {
			row[i] = g[i][j]
		}
		out[j] = row
	}
	return out
}

// realRows applies the one-sided real-input transform to every row,
// yielding len(row)/2+1 bins per row.
func realRows(g [][]float64) [][]complex128 {
	if len(g) == 0 {
		return nil
	}
	plan := fourier.NewFFT(len(g[0]))
	out := make([][]complex128, len(g))
	for i, row := range g {
		out[i] = plan.Coefficients(nil, row)
	}
	return out
}

// complexRows applies the full complex transform to every row.
func complexRows(g [][]complex128) [][]complex128 {
	if len(g) == 0 {
		return nil
	}
	plan := fourier.NewCmplxFFT(len(g[0]))
	out := make([][]complex128, len(g))
	for i, row := range g {
		out[i] = plan.Coefficients(nil, row)
	}
	return out
}

// shiftRows rolls every row so the zero-frequency bin sits at the
// center, the shifted-spectrum convention of 2-D energy plots.
func shiftRows(g [][]complex128) [][]complex128 {
	out := make([][]complex128, len(g))
	for i, row := range g {
		n := len(row)
		shifted := make([]complex128, n)
		for j := range row {
			shifted[j] = row[(j+n-n/2)%n]
		}
		out[i] = shifted
	}
	return out
}

// transpose swaps the two indices of a rectangular complex grid.
func transpose(g [][]complex128) [][]complex128 {
	if len(g) == 0 {
		return nil
	}
	n0, n1 := len(g), len(g[0])
	out := make([][]complex128, n1)
	for j := 0; j < n1; j++ {
		row := make([]complex128, n0)
		for i := 0; i < n0; i++ {
			row[i] = g[i][j]
		}
		out[j] = row
	}
	return out
}
