package field

import (
	"fmt"
	"math"
	"strings"

	"github.com/ctessum/sparse"
)

// Field carries an N-dimensional sample matrix together with one Axis
// per matrix dimension, plus the display metadata needed to plot and
// annotate the data.
//
// Invariant: axes[i].Len() == matrix.Shape[i] for every i, restored by
// every transformation.
type Field struct {
	// Name is the display name of the quantity, e.g. "Ez".
	Name string
	// Unit is the display unit of the sampled values.
	Unit string

	matrix *sparse.DenseArray
	axes   []*Axis
	// labelOverride replaces the autogenerated Label when non-empty.
	labelOverride string
}

// axisNames are the display names given to implicitly created axes.
var axisNames = [...]string{"x", "y", "z"}

// config collects the functional options of New.
type config struct {
	name, unit string
	edges      [3][]float64
}

// Option configures Field construction.
type Option func(*config)

// WithName sets the display name of the quantity.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithUnit sets the display unit of the sampled values.
func WithUnit(unit string) Option {
	return func(c *config) { c.unit = unit }
}

// WithXEdges supplies explicit grid-node boundaries for the first axis,
// typically the bin edges of a histogram. The count must equal
// matrix.Shape[0]+1.
func WithXEdges(edges []float64) Option {
	return func(c *config) { c.edges[0] = edges }
}

// WithYEdges supplies explicit grid-node boundaries for the second axis.
func WithYEdges(edges []float64) Option {
	return func(c *config) { c.edges[1] = edges }
}

// WithZEdges supplies explicit grid-node boundaries for the third axis.
func WithZEdges(edges []float64) Option {
	return func(c *config) { c.edges[2] = edges }
}

// New builds a Field from a sample matrix. For each of the three leading
// dimensions, explicit edges (if supplied) become that axis's grid nodes;
// otherwise the axis defaults to integer-indexed unit cells centered on
// 0..Shape[i]-1. When no edges are supplied at all, singleton dimensions
// are squeezed away first.
//
// The matrix is adopted, not copied; the caller must not mutate it
// afterwards.
func New(matrix *sparse.DenseArray, opts ...Option) (*Field, error) {
	if matrix == nil {
		return nil, ErrNilMatrix
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.edges[0] == nil && c.edges[1] == nil && c.edges[2] == nil {
		matrix = squeezeDense(matrix)
	}
	f := &Field{Name: c.name, Unit: c.unit, matrix: matrix}
	dims := f.Dimensions()
	for i := 0; i < len(c.edges); i++ {
		switch {
		case c.edges[i] != nil:
			ax := NewAxis(axisNames[i], "")
			ax.SetGridNode(c.edges[i])
			if err := f.addAxis(ax); err != nil {
				return nil, err
			}
		case dims > i:
			n := matrix.Shape[i]
			ax := NewAxis(axisNames[i], "")
			if n == 1 {
				ax.SetIndexCell(0)
			} else {
				ax.SetExtent(-0.5, float64(n)-0.5, n)
			}
			if err := f.addAxis(ax); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// addAxis appends ax as the axis of the next uncovered matrix dimension,
// enforcing that its cell count matches that dimension's length.
func (f *Field) addAxis(ax *Axis) error {
	i := len(f.axes)
	if i >= len(f.matrix.Shape) {
		return fmt.Errorf("%w: matrix has %d dimensions, no room for axis %d",
			ErrShapeMismatch, len(f.matrix.Shape), i)
	}
	if pts := f.matrix.Shape[i]; pts != ax.Len() {
		return fmt.Errorf("%w: matrix dimension %d has %d cells, new axis has %d",
			ErrShapeMismatch, i, pts, ax.Len())
	}
	f.axes = append(f.axes, ax)
	return nil
}

// Matrix exposes the underlying sample matrix. The reference is live;
// treat it as read-only unless the Field is discarded afterwards.
func (f *Field) Matrix() *sparse.DenseArray { return f.matrix }

// Shape returns a copy of the matrix dimension lengths.
func (f *Field) Shape() []int {
	out := make([]int, len(f.matrix.Shape))
	copy(out, f.matrix.Shape)
	return out
}

// Dimensions reports the matrix rank. A matrix with zero total elements
// reports -1 ("no data"), distinct from a 0-D scalar.
func (f *Field) Dimensions() int {
	if numElements(f.matrix.Shape) == 0 {
		return -1
	}
	return len(f.matrix.Shape)
}

// Axes returns the axis list. The slice is a copy, the Axis pointers are
// live.
func (f *Field) Axes() []*Axis {
	out := make([]*Axis, len(f.axes))
	copy(out, f.axes)
	return out
}

// Axis returns the axis describing matrix dimension id.
func (f *Field) Axis(id AxisID) (*Axis, error) {
	if int(id) < 0 || int(id) >= len(f.axes) {
		return nil, fmt.Errorf("%w: %s in a %d-axis field", ErrAxisRange, id, len(f.axes))
	}
	return f.axes[id], nil
}

// SetAxis replaces the axis of dimension id wholesale. The replacement's
// cell count must match the matrix dimension's length.
func (f *Field) SetAxis(id AxisID, ax *Axis) error {
	if int(id) < 0 || int(id) >= len(f.axes) {
		return fmt.Errorf("%w: %s in a %d-axis field", ErrAxisRange, id, len(f.axes))
	}
	if pts := f.matrix.Shape[id]; pts != ax.Len() {
		return fmt.Errorf("%w: axis object has %d cells, matrix dimension %d has %d",
			ErrShapeMismatch, ax.Len(), int(id), pts)
	}
	f.axes[id] = ax
	return nil
}

// Label is the annotation string for plots: the explicit override if one
// was set, otherwise Name or "Name [Unit]".
func (f *Field) Label() string {
	if f.labelOverride != "" {
		return f.labelOverride
	}
	if f.Unit == "" {
		return f.Name
	}
	return f.Name + " [" + f.Unit + "]"
}

// SetLabel overrides the autogenerated label. An empty string restores
// autogeneration.
func (f *Field) SetLabel(label string) { f.labelOverride = label }

// Extent returns the axis extents in linearized [lo0, hi0, lo1, hi1, ...]
// form, as imshow-style renderers expect. Axes without a defined extent
// (fewer than two nodes) contribute a NaN pair.
func (f *Field) Extent() []float64 {
	out := make([]float64, 0, 2*len(f.axes))
	for _, ax := range f.axes {
		lo, hi, ok := ax.Extent()
		if !ok {
			lo, hi = math.NaN(), math.NaN()
		}
		out = append(out, lo, hi)
	}
	return out
}

// SetExtent rebuilds every axis as a uniform grid over the given
// linearized extent, keeping the current cell counts. The extent length
// must be twice the number of dimensions.
func (f *Field) SetExtent(extent []float64) error {
	if len(extent) != 2*f.Dimensions() {
		return fmt.Errorf("%w: extent has %d values, expected %d",
			ErrShapeMismatch, len(extent), 2*f.Dimensions())
	}
	for i, ax := range f.axes {
		ax.SetExtent(extent[2*i], extent[2*i+1], f.matrix.Shape[i])
	}
	return nil
}

// Grid returns the cell centers of every axis.
func (f *Field) Grid() [][]float64 {
	out := make([][]float64, len(f.axes))
	for i, ax := range f.axes {
		out[i] = ax.Grid()
	}
	return out
}

// GridNodes returns the node positions of every axis.
func (f *Field) GridNodes() [][]float64 {
	out := make([][]float64, len(f.axes))
	for i, ax := range f.axes {
		out[i] = ax.GridNode()
	}
	return out
}

// IsLinear reports the linearity of every axis.
func (f *Field) IsLinear() []bool {
	out := make([]bool, len(f.axes))
	for i, ax := range f.axes {
		out[i] = ax.IsLinear()
	}
	return out
}

// Clone returns a deep copy sharing no matrix or axis state with the
// receiver.
func (f *Field) Clone() *Field {
	out := &Field{
		Name:          f.Name,
		Unit:          f.Unit,
		matrix:        cloneDense(f.matrix),
		axes:          make([]*Axis, len(f.axes)),
		labelOverride: f.labelOverride,
	}
	for i, ax := range f.axes {
		out.axes[i] = ax.Clone()
	}
	return out
}

// SuggestedFilename derives a filesystem-safe name stem from Name, for
// renderers that save one image per field.
func (f *Field) SuggestedFilename() string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range f.Name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	name := strings.TrimRight(b.String(), "_")
	if name == "" {
		return "field"
	}
	return name
}

// String implements fmt.Stringer.
func (f *Field) String() string {
	return fmt.Sprintf("<Field %q %v>", f.Name, f.matrix.Shape)
}
