// Package picgrid is a post-processing toolkit for particle-in-cell
// plasma simulation output — sampled grid data that never loses track
// of its physical coordinate frame.
//
// 🚀 What is picgrid?
//
//	A pure-Go data-model library that brings together:
//		• Axis: one coordinate dimension — grid nodes, derived cell
//		  centers, extent, linearity, display labels
//		• Field: an N-dimensional sample matrix plus one Axis per
//		  dimension, kept coherent under every transformation
//		• Transforms: cropping, resolution halving, auto-reduction,
//		  axis mean, 2-D spectral energy density, polar remapping
//		• Arithmetic: elementwise field/scalar operations that merge
//		  display metadata sensibly
//
// ✨ Why choose picgrid?
//
//   - Coherence by construction – every operation updates data and
//     coordinate metadata together; len(axes[i]) == shape[i] always holds
//   - Plotting-ready – extents, labels and linearity flags come straight
//     from the Field, in the layout imshow-style renderers expect
//   - Deterministic – no global state, no hidden randomness
//
// Under the hood, everything is organized under two subpackages:
//
//	field/ — Axis & Field types and every coordinate-aware transformation
//	remap/ — regular-grid resampling helpers (bilinear, Cartesian→polar)
//
// Quick ASCII picture of the terminology:
//
//	+---+---+---+---+
//	  o   o   o   o     grid       (cell centers — where data is sampled)
//	o   o   o   o   o   grid nodes (cell boundaries; N cells ⇒ N+1 nodes)
//	|               |   extent
//
// Dive into the examples/ directory for end-to-end walkthroughs from
// histogram edges to a polar spectral-energy map.
//
//	go get github.com/plasmalab/picgrid/field
package picgrid
