package field

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// linearTol bounds the variance of node spacings below which an axis is
// considered uniformly spaced.
const linearTol = 1e-7

// AxisID identifies one dimension of a Field. It replaces the loose
// string/integer axis addressing found in many post-processors with a
// type resolved once at the API boundary.
type AxisID int

// Axis identifiers for the three leading (spatial) dimensions.
const (
	AxisX AxisID = iota
	AxisY
	AxisZ
)

// String returns the conventional lowercase name of the axis.
func (id AxisID) String() string {
	switch id {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(id))
}

// Axis describes a single coordinate dimension of a grid.
//
// The authoritative state is the ordered node sequence: N cells are
// bounded by N+1 grid nodes. Cell centers, extent, label and linearity
// are all derived. Linearity is cached and recomputed lazily after any
// node mutation.
//
// An Axis is owned by exactly one Field; it is not safe for concurrent
// mutation.
type Axis struct {
	// Name is the display name, e.g. "x" or "k_x / k_0".
	Name string
	// Unit is the display unit, e.g. "m". Empty means dimensionless or
	// unknown; Label omits the bracket suffix then.
	Unit string

	gridNode []float64
	linear   bool
	// linearKnown is the dirty flag of the linearity cache: cleared on
	// every node mutation, set on recompute.
	linearKnown bool
}

// NewAxis returns an empty Axis carrying only display metadata.
// Populate it with SetExtent, SetIndexCell, SetGridNode or SetGrid.
func NewAxis(name, unit string) *Axis {
	return &Axis{Name: name, Unit: unit, gridNode: []float64{}}
}

// Len reports the number of cells: max(0, nodes-1).
func (a *Axis) Len() int {
	if n := len(a.gridNode) - 1; n > 0 {
		return n
	}
	return 0
}

// GridNode returns a copy of the node positions bounding the cells.
func (a *Axis) GridNode() []float64 {
	out := make([]float64, len(a.gridNode))
	copy(out, a.gridNode)
	return out
}

// SetGridNode replaces the node positions. The input is copied, and the
// linearity cache is invalidated.
func (a *Axis) SetGridNode(nodes []float64) {
	gn := make([]float64, len(nodes))
	copy(gn, nodes)
	a.gridNode = gn
	a.linearKnown = false
}

// Grid returns the cell centers: midpoints of consecutive nodes.
func (a *Axis) Grid() []float64 {
	n := a.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = 0.5 * (a.gridNode[i] + a.gridNode[i+1])
	}
	return out
}

// SetGrid reconstructs node positions from cell centers: interior nodes
// are midpoints of consecutive centers, the two outer nodes are
// extrapolated symmetrically so that the outermost centers stay centered
// in their cells. A single center yields a unit cell around it.
func (a *Axis) SetGrid(centers []float64) {
	n := len(centers)
	switch n {
	case 0:
		a.SetGridNode(nil)
		return
	case 1:
		a.SetGridNode([]float64{centers[0] - 0.5, centers[0] + 0.5})
		return
	}
	gn := make([]float64, n+1)
	for i := 1; i < n; i++ {
		gn[i] = 0.5 * (centers[i-1] + centers[i])
	}
	gn[0] = centers[0] - (gn[1] - centers[0])
	gn[n] = centers[n-1] + (centers[n-1] - gn[n-1])
	a.SetGridNode(gn)
}

// Extent reports the span of the outer nodes. ok is false when the axis
// has fewer than two nodes and no extent is defined.
func (a *Axis) Extent() (lo, hi float64, ok bool) {
	if len(a.gridNode) < 2 {
		return 0, 0, false
	}
	return a.gridNode[0], a.gridNode[len(a.gridNode)-1], true
}

// Label is the annotation string for plots: Name, or "Name [Unit]".
func (a *Axis) Label() string {
	if a.Unit == "" {
		return a.Name
	}
	return a.Name + " [" + a.Unit + "]"
}

// SetExtent builds a uniformly spaced axis of n cells spanning [lo, hi]
// via n+1 interpolated nodes. n below 1 collapses the axis to zero cells.
func (a *Axis) SetExtent(lo, hi float64, n int) {
	if n < 1 {
		a.SetGridNode([]float64{lo})
		return
	}
	gn := make([]float64, n+1)
	floats.Span(gn, lo, hi)
	a.gridNode = gn
	a.linearKnown = false
}

// SetIndexCell builds a single cell of unit thickness centered on the
// integer index i, spanning i±0.5. This models an axis addressed by an
// index rather than a physical range, e.g. a slice position.
func (a *Axis) SetIndexCell(i int) {
	c := float64(i)
	a.SetGridNode([]float64{c - 0.5, c + 0.5})
}

// Cutout keeps only the nodes inside [min(lo,hi), max(lo,hi)], reducing
// the cell count accordingly. Bounds that exclude every node silently
// leave an empty axis; Field.Cutout guards against that at the field
// level.
func (a *Axis) Cutout(lo, hi float64) {
	if hi < lo {
		lo, hi = hi, lo
	}
	kept := a.gridNode[:0:0]
	for _, gn := range a.gridNode {
		if lo <= gn && gn <= hi {
			kept = append(kept, gn)
		}
	}
	a.gridNode = kept
	a.linearKnown = false
}

// HalfResolution keeps every other node (indices 0, 2, 4, ...), halving
// the cell count. With an even node count the last node is dropped, so
// an odd trailing cell is absorbed.
func (a *Axis) HalfResolution() {
	kept := make([]float64, 0, (len(a.gridNode)+1)/2)
	for i := 0; i < len(a.gridNode); i += 2 {
		kept = append(kept, a.gridNode[i])
	}
	a.gridNode = kept
	a.linearKnown = false
}

// IsLinear reports whether the node spacing is uniform within tolerance.
// The result is cached; any node mutation invalidates the cache.
func (a *Axis) IsLinear() bool {
	if !a.linearKnown {
		a.linear = a.computeLinear()
		a.linearKnown = true
	}
	return a.linear
}

// RecheckLinear recomputes linearity unconditionally, bypassing the
// cache, and stores the fresh result.
func (a *Axis) RecheckLinear() bool {
	a.linear = a.computeLinear()
	a.linearKnown = true
	return a.linear
}

func (a *Axis) computeLinear() bool {
	// Fewer than three nodes cannot show non-uniform spacing.
	if len(a.gridNode) < 3 {
		return true
	}
	diffs := make([]float64, len(a.gridNode)-1)
	for i := range diffs {
		diffs[i] = a.gridNode[i+1] - a.gridNode[i]
	}
	return stat.Variance(diffs, nil) < linearTol
}

// Clone returns a deep copy sharing no state with the receiver.
func (a *Axis) Clone() *Axis {
	out := &Axis{
		Name:        a.Name,
		Unit:        a.Unit,
		gridNode:    make([]float64, len(a.gridNode)),
		linear:      a.linear,
		linearKnown: a.linearKnown,
	}
	copy(out.gridNode, a.gridNode)
	return out
}

// String implements fmt.Stringer.
func (a *Axis) String() string {
	return fmt.Sprintf("<Axis %q (%d cells)>", a.Name, a.Len())
}
