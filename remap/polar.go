package remap

import (
	"fmt"
	"math"
)

// CartesianToPolar samples a Cartesian grid over a polar grid.
//
// values holds the source row-major as values[i*srcNY+j] with i along x
// and j along y; srcExtent is its [x0, x1, y0, y1] node span. The polar
// grid covers polarExtent [phi0, phi1, r0, r1] with nPhi angular and nR
// radial cells, both using the cell-center convention. The returned
// buffer is row-major (angle × radius): out[i*nR+j] is the source
// sampled at (r_j*cos(phi_i), r_j*sin(phi_i)). Points outside the
// source extent are zero.
func CartesianToPolar(values []float64, srcNX, srcNY int, srcExtent, polarExtent [4]float64, nPhi, nR int) ([]float64, error) {
	if nPhi < 1 || nR < 1 {
		return nil, fmt.Errorf("%w: polar grid %dx%d", ErrBadShape, nPhi, nR)
	}
	s, err := NewSampler(values, srcExtent, srcNX, srcNY)
	if err != nil {
		return nil, err
	}
	phi0, phi1 := polarExtent[0], polarExtent[1]
	r0, r1 := polarExtent[2], polarExtent[3]
	dphi := (phi1 - phi0) / float64(nPhi)
	dr := (r1 - r0) / float64(nR)
	out := make([]float64, nPhi*nR)
	for i := 0; i < nPhi; i++ {
		phi := phi0 + (float64(i)+0.5)*dphi
		sin, cos := math.Sincos(phi)
		for j := 0; j < nR; j++ {
			r := r0 + (float64(j)+0.5)*dr
			out[i*nR+j] = s.Eval(r*cos, r*sin)
		}
	}
	return out, nil
}
