package opn

import "math"

// Exp returns e**x.
//
// With x = (a, b):
//
//	Exp(x) = (0.5*(e^(a-b) - e^(-a-b)), -0.5*(e^(a-b) + e^(-a-b)))
//
// Exp fails with ErrOverflow instead of returning infinite components.
func (x Number) Exp() (Number, error) {
	p := math.Exp(x.a - x.b)
	q := math.Exp(-x.a - x.b)
	if math.IsInf(p, 0) || math.IsInf(q, 0) {
		return Number{}, failf("exp", x, ErrOverflow, "e^%v exceeds float64 range", math.Max(x.a-x.b, -x.a-x.b))
	}
	r := Number{a: 0.5 * (p - q), b: -0.5 * (p + q)}
	if math.IsInf(r.a, 0) || math.IsInf(r.b, 0) {
		return Number{}, fail("exp", x, ErrOverflow)
	}
	return r, nil
}

// RealPow returns k**x for a real base k > 0, computed as Exp(x * ln k).
func RealPow(k float64, x Number) (Number, error) {
	if !(k > 0) {
		return Number{}, failf("realpow", x, ErrDomain, "base %v must be greater than 0", k)
	}
	return x.Scale(math.Log(k)).Exp()
}
