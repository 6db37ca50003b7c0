package field

import "fmt"

// DefaultMaxLen is the per-axis cell cap Autoreduce aims for when callers
// have no stronger requirement; it keeps a 2-D field comfortably
// renderable.
const DefaultMaxLen = 4000

// HalfResolution halves the resolution along one axis: the axis keeps
// every other node, and the matrix averages adjacent slice pairs along
// that dimension. An odd trailing slice is dropped, exactly matching the
// axis's node truncation, so data and coordinates stay in step.
func (f *Field) HalfResolution(id AxisID) error {
	if int(id) < 0 || int(id) >= len(f.axes) {
		return fmt.Errorf("%w: %s in a %d-axis field", ErrAxisRange, id, len(f.axes))
	}
	f.axes[id].HalfResolution()
	f.matrix = pairAvgDense(f.matrix, int(id))
	return nil
}

// Autoreduce halves whichever axis exceeds maxlen cells, one axis at a
// time, rescanning after each halving, until every axis fits. Applying
// it twice with the same bound is a no-op the second time.
func (f *Field) Autoreduce(maxlen int) error {
	if maxlen < 1 {
		return fmt.Errorf("%w: got %d", ErrBadMaxLen, maxlen)
	}
	for {
		reduced := false
		for i := range f.axes {
			if f.axes[i].Len() > maxlen {
				// Cannot fail: i is in range by construction.
				if err := f.HalfResolution(AxisID(i)); err != nil {
					return err
				}
				reduced = true
				break
			}
		}
		if !reduced {
			return nil
		}
	}
}

// Cutout crops the field to the part covered by the linearized extent
// [lo0, hi0, lo1, hi1, ...]: each axis keeps the nodes inside its bounds
// and the matrix keeps the cells between the surviving nodes. A crop
// that would leave any axis without cells returns ErrEmptyCutout and
// leaves the field unmodified. No-op on 0-D fields.
func (f *Field) Cutout(extent []float64) error {
	dims := f.Dimensions()
	if dims <= 0 {
		return nil
	}
	if len(extent) != 2*dims {
		return fmt.Errorf("%w: extent has %d values, expected %d",
			ErrShapeMismatch, len(extent), 2*dims)
	}
	lo := make([]int, dims)
	hi := make([]int, dims)
	for i, ax := range f.axes {
		a, b, ok := keptNodeRun(ax.gridNode, extent[2*i], extent[2*i+1])
		if !ok || b-a < 1 {
			return fmt.Errorf("%w: axis %q over [%g, %g]",
				ErrEmptyCutout, ax.Name, extent[2*i], extent[2*i+1])
		}
		// Cells between the first and last surviving node.
		lo[i], hi[i] = a, b
	}
	f.matrix = cropDense(f.matrix, lo, hi)
	for i, ax := range f.axes {
		ax.Cutout(extent[2*i], extent[2*i+1])
	}
	return nil
}

// keptNodeRun locates the contiguous run of nodes inside [min(lo,hi),
// max(lo,hi)]. It returns the first index kept and one past the last
// cell kept (so cells [a, b) survive, bounded by nodes [a, b]).
func keptNodeRun(nodes []float64, lo, hi float64) (a, b int, ok bool) {
	if hi < lo {
		lo, hi = hi, lo
	}
	a, last := -1, -1
	for i, gn := range nodes {
		if lo <= gn && gn <= hi {
			if a < 0 {
				a = i
			}
			last = i
		}
	}
	if a < 0 {
		return 0, 0, false
	}
	return a, last, true
}

// Mean collapses one dimension by its arithmetic mean and removes the
// corresponding Axis, reducing the rank by one. No-op on 0-D and empty
// fields.
func (f *Field) Mean(id AxisID) error {
	if f.Dimensions() <= 0 {
		return nil
	}
	if int(id) < 0 || int(id) >= len(f.axes) {
		return fmt.Errorf("%w: %s in a %d-axis field", ErrAxisRange, id, len(f.axes))
	}
	f.matrix = meanDense(f.matrix, int(id))
	f.axes = append(f.axes[:id], f.axes[id+1:]...)
	return nil
}
