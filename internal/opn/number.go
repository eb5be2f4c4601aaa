package opn

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Number is an OPN value (a, b). The zero value is (0, 0).
type Number struct {
	a, b float64
}

var (
	// Zero is the additive identity.
	Zero = Number{}
	// One is the multiplicative identity and the result of x^0.
	One = Number{a: 0, b: -1}
	// NegOne is -One.
	NegOne = Number{a: 0, b: 1}
)

// New returns the OPN (a, b).
func New(a, b float64) Number {
	return Number{a: a, b: b}
}

// A returns the first component.
func (x Number) A() float64 { return x.a }

// B returns the second component.
func (x Number) B() float64 { return x.b }

// Components returns both components.
func (x Number) Components() (a, b float64) { return x.a, x.b }

// String renders x as "(a, b)".
func (x Number) String() string {
	return fmt.Sprintf("(%v, %v)", x.a, x.b)
}

// IsSingular reports whether x lies in the singularity set a == b or a == -b.
func (x Number) IsSingular() bool {
	return x.a == x.b || x.a == -x.b
}

// Neg returns -x.
func (x Number) Neg() Number {
	return Number{a: -x.a, b: -x.b}
}

// Add returns x + y.
func (x Number) Add(y Number) Number {
	return Number{a: x.a + y.a, b: x.b + y.b}
}

// Sub returns x - y.
func (x Number) Sub(y Number) Number {
	return Number{a: x.a - y.a, b: x.b - y.b}
}

// Scale returns x scaled by the real k.
func (x Number) Scale(k float64) Number {
	return Number{a: x.a * k, b: x.b * k}
}

// Mul returns the OPN product (a, b) * (c, d) = (-ad-bc, -ac-bd).
func (x Number) Mul(y Number) Number {
	return Number{
		a: -x.a*y.b - x.b*y.a,
		b: -x.a*y.a - x.b*y.b,
	}
}

// Inv returns the multiplicative inverse of x.
func (x Number) Inv() (Number, error) {
	if x.IsSingular() {
		return Number{}, fail("inverse", x, ErrSingularity)
	}
	return Number{
		a: x.a / (x.a*x.a - x.b*x.b),
		b: x.b / (x.b*x.b - x.a*x.a),
	}, nil
}

// Div returns x / y, defined as x * y^-1.
func (x Number) Div(y Number) (Number, error) {
	inv, err := y.Inv()
	if err != nil {
		return Number{}, err
	}
	return x.Mul(inv), nil
}

// DivScalar returns x divided componentwise by the real k.
// Division by zero follows IEEE 754.
func (x Number) DivScalar(k float64) Number {
	return Number{a: x.a / k, b: x.b / k}
}

// RDiv returns k / x, defined as x^-1 * k.
func (x Number) RDiv(k float64) (Number, error) {
	inv, err := x.Inv()
	if err != nil {
		return Number{}, err
	}
	return inv.Scale(k), nil
}

// Equal reports exact componentwise equality.
func (x Number) Equal(y Number) bool {
	return x.a == y.a && x.b == y.b
}

// EqualApprox reports whether both components agree within tol,
// absolute or relative.
func (x Number) EqualApprox(y Number, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(x.a, y.a, tol, tol) &&
		scalar.EqualWithinAbsOrRel(x.b, y.b, tol, tol)
}

// Greater reports whether x > y. With d = x - y, x > y when
// d.a+d.b < 0, or d.a+d.b == 0 and d.a > 0.
func (x Number) Greater(y Number) bool {
	d := x.Sub(y)
	s := d.a + d.b
	return s < 0 || (s == 0 && d.a > 0)
}

// Less reports whether x < y. With d = x - y, x < y when
// d.a+d.b > 0, or d.a+d.b == 0 and d.a < 0.
func (x Number) Less(y Number) bool {
	d := x.Sub(y)
	s := d.a + d.b
	return s > 0 || (s == 0 && d.a < 0)
}

// GreaterEqual reports whether x > y or x == y.
func (x Number) GreaterEqual(y Number) bool {
	return x.Greater(y) || x.Equal(y)
}

// LessEqual reports whether x < y or x == y.
func (x Number) LessEqual(y Number) bool {
	return x.Less(y) || x.Equal(y)
}

// Compare returns -1 if x < y, +1 if x > y and 0 otherwise.
func (x Number) Compare(y Number) int {
	switch {
	case x.Less(y):
		return -1
	case x.Greater(y):
		return 1
	default:
		return 0
	}
}

// Abs returns whichever of x and -x is non-negative under the ordering.
func (x Number) Abs() Number {
	s := x.a + x.b
	if s > 0 || (s == 0 && x.a < 0) {
		return x.Neg()
	}
	return x
}
