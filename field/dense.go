package field

// Internal kernels over the flat row-major element buffer of
// sparse.DenseArray. They are unexported: the public API reaches them
// through the Field transformations only.

import "github.com/ctessum/sparse"

// cloneDense returns a deep copy of a dense array.
func cloneDense(a *sparse.DenseArray) *sparse.DenseArray {
	out := sparse.ZerosDense(a.Shape...)
	copy(out.Elements, a.Elements)
	return out
}

// strides returns the row-major stride of each dimension.
func strides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= shape[i]
	}
	return s
}

// numElements is the product of the dimension lengths (1 for rank 0).
func numElements(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// squeezeDense drops all length-1 dimensions, mirroring the histogram
// convention of trusting explicit edges but collapsing implicit singleton
// dimensions. The element buffer is copied, not shared.
func squeezeDense(a *sparse.DenseArray) *sparse.DenseArray {
	shape := make([]int, 0, len(a.Shape))
	for _, d := range a.Shape {
		if d != 1 {
			shape = append(shape, d)
		}
	}
	out := sparse.ZerosDense(shape...)
	copy(out.Elements, a.Elements)
	return out
}

// eachIndex walks every index vector of shape in row-major order. The
// callback receives a reused buffer and must not retain it.
func eachIndex(shape []int, fn func(idx []int)) {
	if numElements(shape) == 0 {
		return
	}
	idx := make([]int, len(shape))
	for {
		fn(idx)
		k := len(shape) - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < shape[k] {
				break
			}
			idx[k] = 0
		}
		if k < 0 {
			return
		}
	}
}

// cropDense copies the sub-block [lo[i], hi[i]) of every dimension.
func cropDense(a *sparse.DenseArray, lo, hi []int) *sparse.DenseArray {
	shape := make([]int, len(a.Shape))
	for i := range shape {
		shape[i] = hi[i] - lo[i]
	}
	out := sparse.ZerosDense(shape...)
	src := make([]int, len(shape))
	eachIndex(shape, func(idx []int) {
		for i, v := range idx {
			src[i] = v + lo[i]
		}
		out.Set(a.Get(src...), idx...)
	})
	return out
}

// pairAvgDense averages adjacent slice pairs along axis, halving that
// dimension. An odd trailing slice is dropped, matching the node
// truncation of Axis.HalfResolution.
func pairAvgDense(a *sparse.DenseArray, axis int) *sparse.DenseArray {
	shape := make([]int, len(a.Shape))
	copy(shape, a.Shape)
	shape[axis] = a.Shape[axis] / 2
	out := sparse.ZerosDense(shape...)
	src := make([]int, len(shape))
	eachIndex(shape, func(idx []int) {
		copy(src, idx)
		src[axis] = 2 * idx[axis]
		v := a.Get(src...)
		src[axis]++
		v += a.Get(src...)
		out.Set(0.5*v, idx...)
	})
	return out
}

// meanDense collapses one dimension by its arithmetic mean.
func meanDense(a *sparse.DenseArray, axis int) *sparse.DenseArray {
	shape := make([]int, 0, len(a.Shape)-1)
	shape = append(shape, a.Shape[:axis]...)
	shape = append(shape, a.Shape[axis+1:]...)
	out := sparse.ZerosDense(shape...)
	n := a.Shape[axis]
	if n == 0 {
		return out
	}
	inv := 1.0 / float64(n)
	src := make([]int, len(a.Shape))
	eachIndex(shape, func(idx []int) {
		copy(src[:axis], idx[:axis])
		copy(src[axis+1:], idx[axis:])
		sum := 0.0
		for k := 0; k < n; k++ {
			src[axis] = k
			sum += a.Get(src...)
		}
		if len(shape) == 0 {
			out.Elements[0] = sum * inv
			return
		}
		out.Set(sum*inv, idx...)
	})
	return out
}
