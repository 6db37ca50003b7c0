package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Elementwise arithmetic. Every operation exists in two variants:
//
//   - the copy form (Add, Sub, ...) deep-clones the receiver first and
//     leaves both operands untouched;
//   - the in-place form (AddInPlace, ...) mutates the receiver and
//     returns it for chaining.
//
// Field-field operations require identical matrix shapes and merge the
// display names with the operator symbol ("A + B"). Field-scalar
// operations keep the name unchanged. Units are left to the caller: the
// physically correct unit of a product or quotient is not derivable from
// display strings.

// sameShape verifies the two operands cover the same grid.
func (f *Field) sameShape(other *Field) error {
	if len(f.matrix.Shape) != len(other.matrix.Shape) {
		return fmt.Errorf("%w: operands have ranks %d and %d",
			ErrShapeMismatch, len(f.matrix.Shape), len(other.matrix.Shape))
	}
	for i, d := range f.matrix.Shape {
		if other.matrix.Shape[i] != d {
			return fmt.Errorf("%w: operand shapes %v and %v",
				ErrShapeMismatch, f.matrix.Shape, other.matrix.Shape)
		}
	}
	return nil
}

func (f *Field) mergeName(op string, other *Field) {
	f.Name = f.Name + " " + op + " " + other.Name
}

// AddInPlace adds other elementwise into the receiver.
func (f *Field) AddInPlace(other *Field) (*Field, error) {
	if err := f.sameShape(other); err != nil {
		return nil, err
	}
	floats.Add(f.matrix.Elements, other.matrix.Elements)
	f.mergeName("+", other)
	return f, nil
}

// Add returns a new Field holding the elementwise sum.
func (f *Field) Add(other *Field) (*Field, error) {
	return f.Clone().AddInPlace(other)
}

// SubInPlace subtracts other elementwise from the receiver.
func (f *Field) SubInPlace(other *Field) (*Field, error) {
	if err := f.sameShape(other); err != nil {
		return nil, err
	}
	floats.Sub(f.matrix.Elements, other.matrix.Elements)
	f.mergeName("-", other)
	return f, nil
}

// Sub returns a new Field holding the elementwise difference.
func (f *Field) Sub(other *Field) (*Field, error) {
	return f.Clone().SubInPlace(other)
}

// MulInPlace multiplies the receiver elementwise by other.
func (f *Field) MulInPlace(other *Field) (*Field, error) {
	if err := f.sameShape(other); err != nil {
		return nil, err
	}
	floats.Mul(f.matrix.Elements, other.matrix.Elements)
	f.mergeName("*", other)
	return f, nil
}

// Mul returns a new Field holding the elementwise product.
func (f *Field) Mul(other *Field) (*Field, error) {
	return f.Clone().MulInPlace(other)
}

// DivInPlace divides the receiver elementwise by other, the usual
// normalization step. Division by zero follows IEEE semantics.
func (f *Field) DivInPlace(other *Field) (*Field, error) {
	if err := f.sameShape(other); err != nil {
		return nil, err
	}
	floats.Div(f.matrix.Elements, other.matrix.Elements)
	f.mergeName("/", other)
	return f, nil
}

// Div returns a new Field holding the elementwise quotient.
func (f *Field) Div(other *Field) (*Field, error) {
	return f.Clone().DivInPlace(other)
}

// AddScalarInPlace adds s to every sample.
func (f *Field) AddScalarInPlace(s float64) *Field {
	floats.AddConst(s, f.matrix.Elements)
	return f
}

// AddScalar returns a new Field with s added to every sample.
func (f *Field) AddScalar(s float64) *Field {
	return f.Clone().AddScalarInPlace(s)
}

// SubScalarInPlace subtracts s from every sample.
func (f *Field) SubScalarInPlace(s float64) *Field {
	floats.AddConst(-s, f.matrix.Elements)
	return f
}

// SubScalar returns a new Field with s subtracted from every sample.
func (f *Field) SubScalar(s float64) *Field {
	return f.Clone().SubScalarInPlace(s)
}

// MulScalarInPlace multiplies every sample by s.
func (f *Field) MulScalarInPlace(s float64) *Field {
	floats.Scale(s, f.matrix.Elements)
	return f
}

// MulScalar returns a new Field with every sample multiplied by s.
func (f *Field) MulScalar(s float64) *Field {
	return f.Clone().MulScalarInPlace(s)
}

// DivScalarInPlace divides every sample by s. IEEE semantics apply when
// s is zero.
func (f *Field) DivScalarInPlace(s float64) *Field {
	for i, v := range f.matrix.Elements {
		f.matrix.Elements[i] = v / s
	}
	return f
}

// DivScalar returns a new Field with every sample divided by s.
func (f *Field) DivScalar(s float64) *Field {
	return f.Clone().DivScalarInPlace(s)
}

// PowInPlace raises every sample to the power p.
func (f *Field) PowInPlace(p float64) *Field {
	for i, v := range f.matrix.Elements {
		f.matrix.Elements[i] = math.Pow(v, p)
	}
	return f
}

// Pow returns a new Field with every sample raised to the power p.
func (f *Field) Pow(p float64) *Field {
	return f.Clone().PowInPlace(p)
}

// NegInPlace negates every sample.
func (f *Field) NegInPlace() *Field {
	floats.Scale(-1, f.matrix.Elements)
	return f
}

// Neg returns a new Field with every sample negated.
func (f *Field) Neg() *Field {
	return f.Clone().NegInPlace()
}

// AbsInPlace replaces every sample by its absolute value.
func (f *Field) AbsInPlace() *Field {
	for i, v := range f.matrix.Elements {
		f.matrix.Elements[i] = math.Abs(v)
	}
	return f
}

// Abs returns a new Field of absolute values.
func (f *Field) Abs() *Field {
	return f.Clone().AbsInPlace()
}
