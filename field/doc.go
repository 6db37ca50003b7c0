// Package field keeps sampled simulation data and its physical
// coordinate frame coherent under every transformation.
//
// What:
//
//   - Axis describes one coordinate dimension: N+1 ordered grid nodes
//     bounding N cells, with derived cell centers, extent, linearity
//     and a display label.
//   - Field wraps an N-dimensional sample matrix (*sparse.DenseArray)
//     plus exactly one Axis per matrix dimension.
//   - Transformations (Cutout, HalfResolution, Autoreduce, Mean, FFT,
//     ToPolar) update matrix and axes together, so
//     axes[i].Len() == matrix.Shape[i] holds after every operation.
//   - Elementwise arithmetic merges display metadata: field-field
//     operations concatenate names ("A + B"), field-scalar operations
//     leave the name untouched.
//
// Why:
//
//   - Particle-in-cell post-processing: histograms and field dumps carry
//     physical coordinates that must survive cropping and resampling.
//   - Plot annotation: extents, labels and linearity flags come straight
//     from the Field, in the layout imshow-style renderers expect.
//   - Spectral diagnostics: the 2-D FFT produces a spectral energy
//     density with properly rebuilt wavenumber axes.
//
// Complexity:
//
//   - HalfResolution / Mean / Cutout: O(n) in matrix size, O(n) memory.
//   - Autoreduce: O(n log n) total (each pass halves one axis).
//   - FFT: O(n log n) via gonum dsp/fourier plans.
//   - ToPolar: O(output shape) bilinear lookups.
//
// Errors:
//
//   - ErrShapeMismatch: axis cell count disagrees with a matrix dimension.
//   - ErrAxisRange: AxisID outside the field's rank.
//   - ErrNotLinear: FFT requested over a non-uniform axis.
//   - ErrDimension: FFT or ToPolar on a field that is not 2-D.
//   - ErrUnsupportedDim: CSV export of 3-D or higher data.
//   - ErrEmptyCutout: a crop would leave an axis with no cells.
//   - ErrBadMaxLen: Autoreduce bound below one cell.
//   - ErrBadWavenumber: FFT normalization k0 is not a positive number.
//
// Mutating methods (HalfResolution, Cutout, Mean, *InPlace arithmetic)
// are destructive on the receiver and not safe for concurrent use on the
// same Field. Non-mutating methods (FFT, ToPolar, copy arithmetic) work
// on a deep clone and never alias the source.
package field
