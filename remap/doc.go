// Package remap resamples regularly gridded 2-D data onto new grids.
//
// What:
//
//   - Sampler evaluates a regular 2-D grid at arbitrary physical
//     coordinates via bilinear interpolation, using the cell-center
//     convention (sample i sits at lo + (i+0.5)*spacing).
//   - CartesianToPolar samples a Cartesian grid over a polar
//     (angle × radius) grid, the resampling step behind
//     field.Field.ToPolar.
//
// Why:
//
//   - Angular spectra: energy density per emission angle needs data on
//     an angle/radius grid, not the Cartesian dump layout.
//   - Downstream reductions: once remapped, an angular profile is a
//     plain axis mean.
//
// Complexity:
//
//   - Sampler.Eval: O(1).
//   - CartesianToPolar: O(nPhi*nR), memory O(nPhi*nR).
//
// Errors:
//
//   - ErrBadShape: non-positive grid shape or element count mismatch.
//   - ErrBadExtent: zero-width source extent.
//
// Coordinates outside the source extent evaluate to zero; the outermost
// half-cells clamp to the edge samples.
package remap
