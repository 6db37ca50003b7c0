package field

import "errors"

// Sentinel errors for field operations. Detailed messages wrap these with
// fmt.Errorf("%w: ...") so callers can match with errors.Is.
var (
	// ErrNilMatrix indicates a Field was constructed without a matrix.
	ErrNilMatrix = errors.New("field: matrix must not be nil")
	// ErrShapeMismatch indicates an axis cell count disagrees with the
	// corresponding matrix dimension, or an extent has the wrong arity.
	ErrShapeMismatch = errors.New("field: shape mismatch")
	// ErrAxisRange indicates an AxisID outside the field's rank.
	ErrAxisRange = errors.New("field: axis index out of range")
	// ErrNotLinear indicates a spectral transform over a non-uniform axis.
	ErrNotLinear = errors.New("field: axis is not linear")
	// ErrDimension indicates an operation restricted to 2-D fields was
	// requested on a field of a different rank.
	ErrDimension = errors.New("field: operation requires a 2-D field")
	// ErrUnsupportedDim indicates CSV export of 3-D or higher data.
	ErrUnsupportedDim = errors.New("field: export supports only 1-D and 2-D fields")
	// ErrEmptyCutout indicates a crop that would leave an axis with no cells.
	ErrEmptyCutout = errors.New("field: cutout leaves no cells")
	// ErrBadMaxLen indicates an Autoreduce bound below one cell.
	ErrBadMaxLen = errors.New("field: autoreduce bound must be at least 1")
	// ErrBadWavenumber indicates a non-positive FFT normalization k0.
	ErrBadWavenumber = errors.New("field: k0 must be a positive number")
)
