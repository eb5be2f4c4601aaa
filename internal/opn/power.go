package opn

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// RootIndexTolerance bounds how far 1/n may sit from an integer for Pow
// to treat n as a root exponent.
const RootIndexTolerance = 1e-9

// Pow returns x raised to the real exponent n.
//
// Special cases are:
//
//	Pow(x, 0) = One
//	Pow(x, 1) = x
//	Pow(x, n) for n > 1 fails with ErrSingularity if x is singular
//	Pow(x, n) for n < 0 = Inv(Pow(x, -n))
//	Pow(x, 1/m) extracts the m-th root; m must be an integer
func (x Number) Pow(n float64) (Number, error) {
	switch {
	case math.IsNaN(n):
		return Number{}, failf("pow", x, ErrFractionalExponent, "exponent is NaN")
	case n == 0:
		return One, nil
	case n == 1:
		return x, nil
	case n > 1:
		return x.intPow(n)
	case n < 0:
		p, err := x.Pow(-n)
		if err != nil {
			return Number{}, err
		}
		return p.Inv()
	default:
		return x.root(n)
	}
}

// Root returns the m-th root of x, equivalent to Pow(x, 1/m).
func (x Number) Root(m int) (Number, error) {
	if m < 1 {
		return Number{}, failf("root", x, ErrInvalidRootIndex, "index %d", m)
	}
	return x.Pow(1 / float64(m))
}

func (x Number) intPow(n float64) (Number, error) {
	if x.IsSingular() {
		return Number{}, fail("pow", x, ErrSingularity)
	}
	if n != math.Trunc(n) {
		return Number{}, failf("pow", x, ErrFractionalExponent, "exponent %v", n)
	}
	head := (math.Pow(-1, n+1) / 2) * math.Pow(x.a+x.b, n)
	tail := 0.5 * math.Pow(x.a-x.b, n)
	return Number{a: head + tail, b: head - tail}, nil
}

// root handles exponents in (0, 1).
func (x Number) root(n float64) (Number, error) {
	m := 1 / n
	idx := math.Round(m)
	if !scalar.EqualWithinAbsOrRel(m, idx, RootIndexTolerance, RootIndexTolerance) {
		return Number{}, failf("root", x, ErrInvalidRootIndex, "1/%v = %v", n, m)
	}
	p := 1 / idx

	if math.Mod(idx, 2) == 1 {
		head := 0.5 * signedPow(x.a+x.b, p)
		tail := 0.5 * signedPow(x.a-x.b, p)
		return Number{a: head + tail, b: head - tail}, nil
	}

	if !(x.a+x.b <= 0 && x.a >= x.b) {
		return Number{}, failf("root", x, ErrDomain,
			"even root undefined unless a+b <= 0 and a >= b")
	}
	head := 0.5 * math.Pow(-x.a-x.b, p)
	tail := 0.5 * math.Pow(x.a-x.b, p)
	return Number{a: -(head + tail), b: -(head - tail)}, nil
}

// signedPow returns sign(v)*|v|^p so odd roots of negative values stay real.
func signedPow(v, p float64) float64 {
	if v < 0 {
		return -math.Pow(-v, p)
	}
	return math.Pow(v, p)
}
