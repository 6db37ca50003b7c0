package field_test

import (
	"testing"

	"github.com/ctessum/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasmalab/picgrid/field"
)

// edges returns 0,1,...,n as histogram bin edges.
func edges(n int) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// TestHalfResolution_Even checks the halving-agreement property: an
// even-length axis halves cleanly and every output cell is the average
// of the two cells it replaces.
func TestHalfResolution_Even(t *testing.T) {
	f, err := field.New(dense1d(1, 2, 3, 4), field.WithXEdges(edges(4)))
	require.NoError(t, err)

	require.NoError(t, f.HalfResolution(field.AxisX))
	assert.Equal(t, []float64{1.5, 3.5}, f.Matrix().Elements, "pairwise averages")
	ax, _ := f.Axis(field.AxisX)
	assert.Equal(t, []float64{0, 2, 4}, ax.GridNode(), "every other node survives")
	assertCoherent(t, f)
}

// TestHalfResolution_OddTruncation checks that for length 5 both the
// axis and the matrix drop the unpaired trailing cell identically.
func TestHalfResolution_OddTruncation(t *testing.T) {
	f, err := field.New(dense1d(1, 2, 3, 4, 5), field.WithXEdges(edges(5)))
	require.NoError(t, err)

	require.NoError(t, f.HalfResolution(field.AxisX))
	assert.Equal(t, []float64{1.5, 3.5}, f.Matrix().Elements, "fifth cell dropped from the data")
	ax, _ := f.Axis(field.AxisX)
	assert.Equal(t, 2, ax.Len(), "fifth cell dropped from the axis too")
	assertCoherent(t, f)
}

// TestHalfResolution_2D halves one dimension of a 2-D field and leaves
// the other untouched.
func TestHalfResolution_2D(t *testing.T) {
	f, err := field.New(dense2d(2, 4,
		1, 2, 3, 4,
		5, 6, 7, 8),
		field.WithXEdges(edges(2)), field.WithYEdges(edges(4)))
	require.NoError(t, err)

	require.NoError(t, f.HalfResolution(field.AxisY))
	assert.Equal(t, []int{2, 2}, f.Shape())
	assert.Equal(t, []float64{1.5, 3.5, 5.5, 7.5}, f.Matrix().Elements, "averaged along y only")
	assertCoherent(t, f)
}

// TestHalfResolution_AxisRange rejects out-of-range axis identifiers.
func TestHalfResolution_AxisRange(t *testing.T) {
	f, err := field.New(dense1d(1, 2), field.WithXEdges(edges(2)))
	require.NoError(t, err)
	assert.ErrorIs(t, f.HalfResolution(field.AxisZ), field.ErrAxisRange)
}

// TestAutoreduce_Idempotent verifies the halving loop reaches the bound
// and that a second call with the same bound changes nothing.
func TestAutoreduce_Idempotent(t *testing.T) {
	f, err := field.New(dense1d(1, 2, 3, 4, 5, 6, 7, 8), field.WithXEdges(edges(8)))
	require.NoError(t, err)

	require.NoError(t, f.Autoreduce(2))
	assert.Equal(t, []int{2}, f.Shape(), "8 -> 4 -> 2")
	assertCoherent(t, f)

	before := append([]float64(nil), f.Matrix().Elements...)
	require.NoError(t, f.Autoreduce(2))
	assert.Equal(t, before, f.Matrix().Elements, "second pass must be a no-op")
	assert.Equal(t, []int{2}, f.Shape())
}

// TestAutoreduce_AllAxes reduces whichever axis exceeds the bound.
func TestAutoreduce_AllAxes(t *testing.T) {
	f, err := field.New(sparse.ZerosDense(8, 4),
		field.WithXEdges(edges(8)), field.WithYEdges(edges(4)))
	require.NoError(t, err)

	require.NoError(t, f.Autoreduce(2))
	assert.Equal(t, []int{2, 2}, f.Shape())
	assertCoherent(t, f)
}

// TestAutoreduce_BadBound rejects bounds below one cell instead of
// recursing forever.
func TestAutoreduce_BadBound(t *testing.T) {
	f, err := field.New(dense1d(1, 2), field.WithXEdges(edges(2)))
	require.NoError(t, err)
	assert.ErrorIs(t, f.Autoreduce(0), field.ErrBadMaxLen)
}

// TestCutout_1D crops data and axis to the same bounds.
func TestCutout_1D(t *testing.T) {
	f, err := field.New(dense1d(1, 2, 3, 4), field.WithXEdges(edges(4)))
	require.NoError(t, err)

	require.NoError(t, f.Cutout([]float64{1, 3}))
	assert.Equal(t, []float64{2, 3}, f.Matrix().Elements, "cells between surviving nodes")
	ax, _ := f.Axis(field.AxisX)
	assert.Equal(t, []float64{1, 2, 3}, ax.GridNode())
	assertCoherent(t, f)
}

// TestCutout_2D crops both dimensions at once.
func TestCutout_2D(t *testing.T) {
	f, err := field.New(dense2d(4, 4,
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16),
		field.WithXEdges(edges(4)), field.WithYEdges(edges(4)))
	require.NoError(t, err)

	require.NoError(t, f.Cutout([]float64{1, 3, 2, 4}))
	assert.Equal(t, []int{2, 2}, f.Shape())
	assert.Equal(t, []float64{7, 8, 11, 12}, f.Matrix().Elements, "x cells 1..2, y cells 2..3")
	assertCoherent(t, f)
}

// TestCutout_EmptyRejected verifies that a crop removing every cell
// fails loudly and leaves the field untouched.
func TestCutout_EmptyRejected(t *testing.T) {
	f, err := field.New(dense1d(1, 2, 3, 4), field.WithXEdges(edges(4)))
	require.NoError(t, err)

	err = f.Cutout([]float64{10, 20})
	assert.ErrorIs(t, err, field.ErrEmptyCutout)
	assert.Equal(t, []float64{1, 2, 3, 4}, f.Matrix().Elements, "failed crop must not mutate")
	assertCoherent(t, f)
}

// TestCutout_ExtentArity rejects extents whose length is not twice the
// rank.
func TestCutout_ExtentArity(t *testing.T) {
	f, err := field.New(dense1d(1, 2), field.WithXEdges(edges(2)))
	require.NoError(t, err)
	assert.ErrorIs(t, f.Cutout([]float64{0, 1, 0, 1}), field.ErrShapeMismatch)
}

// TestMean_CollapsesAxis collapses one dimension and removes its axis.
func TestMean_CollapsesAxis(t *testing.T) {
	f, err := field.New(dense2d(2, 3,
		1, 2, 3,
		4, 5, 6),
		field.WithXEdges(edges(2)), field.WithYEdges(edges(3)))
	require.NoError(t, err)

	require.NoError(t, f.Mean(field.AxisY))
	assert.Equal(t, []int{2}, f.Shape())
	assert.Equal(t, []float64{2, 5}, f.Matrix().Elements, "row means")
	require.Len(t, f.Axes(), 1, "collapsed axis removed")
	ax, _ := f.Axis(field.AxisX)
	assert.Equal(t, "x", ax.Name, "surviving axis keeps its identity")
	assertCoherent(t, f)
}

// TestMean_FirstAxis collapses the leading dimension.
func TestMean_FirstAxis(t *testing.T) {
	f, err := field.New(dense2d(2, 3,
		1, 2, 3,
		4, 5, 6),
		field.WithXEdges(edges(2)), field.WithYEdges(edges(3)))
	require.NoError(t, err)

	require.NoError(t, f.Mean(field.AxisX))
	assert.Equal(t, []float64{2.5, 3.5, 4.5}, f.Matrix().Elements, "column means")
	assertCoherent(t, f)
}

// TestMean_To_Scalar reduces a 1-D field to a 0-D scalar.
func TestMean_To_Scalar(t *testing.T) {
	f, err := field.New(dense1d(2, 4, 6), field.WithXEdges(edges(3)))
	require.NoError(t, err)

	require.NoError(t, f.Mean(field.AxisX))
	assert.Equal(t, 0, f.Dimensions(), "scalar result")
	assert.Equal(t, []float64{4}, f.Matrix().Elements)
	assert.Empty(t, f.Axes())
}

// TestMean_AxisRange rejects out-of-range identifiers.
func TestMean_AxisRange(t *testing.T) {
	f, err := field.New(dense1d(1, 2), field.WithXEdges(edges(2)))
	require.NoError(t, err)
	assert.ErrorIs(t, f.Mean(field.AxisY), field.ErrAxisRange)
}
