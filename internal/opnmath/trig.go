package opnmath

import (
	gomath "math"

	"github.com/GriffinCanCode/opn/backend/internal/opn"
)

// Sin returns the sine of x: (sin a cos b, cos a sin b).
func Sin(x opn.Number) (opn.Number, error) {
	a, b := x.Components()
	sa, ca := gomath.Sincos(a)
	sb, cb := gomath.Sincos(b)
	return opn.New(sa*cb, ca*sb), nil
}

// Cos returns the cosine of x: (sin a sin b, -cos a cos b).
func Cos(x opn.Number) (opn.Number, error) {
	a, b := x.Components()
	sa, ca := gomath.Sincos(a)
	sb, cb := gomath.Sincos(b)
	return opn.New(sa*sb, -ca*cb), nil
}

func tangents(x opn.Number) (ta, tb float64) {
	a, b := x.Components()
	return gomath.Tan(a), gomath.Tan(b)
}

// Tan returns the tangent of x.
// It fails with opn.ErrUndefined when tan²a·tan²b == 1.
func Tan(x opn.Number) (opn.Number, error) {
	ta, tb := tangents(x)
	return tanOf(x, ta, tb)
}

func tanOf(x opn.Number, ta, tb float64) (opn.Number, error) {
	ta2, tb2 := ta*ta, tb*tb
	denom := 1 - ta2*tb2
	if denom == 0 {
		return opn.Number{}, undefinedError("tan", x, "1 - tan²a·tan²b is zero")
	}
	return opn.New(ta*(1+tb2)/denom, tb*(1+ta2)/denom), nil
}

// Cot returns the cotangent of x.
// It fails with opn.ErrUndefined when tan²a == tan²b.
func Cot(x opn.Number) (opn.Number, error) {
	ta, tb := tangents(x)
	return cotOf(x, ta, tb)
}

func cotOf(x opn.Number, ta, tb float64) (opn.Number, error) {
	ta2, tb2 := ta*ta, tb*tb
	h1, h2 := ta*(1+tb2), tb*(1+ta2)
	d1, d2 := ta2-tb2, tb2-ta2
	if d1 == 0 {
		return opn.Number{}, undefinedError("cot", x, "tan²a - tan²b is zero")
	}
	return opn.New(h1/d1, h2/d2), nil
}

func inUnitInterval(v float64) bool {
	return -1 <= v && v <= 1
}

// Asin returns the inverse sine of x.
// It requires a+b and a-b to lie in [-1, 1].
func Asin(x opn.Number) (opn.Number, error) {
	a, b := x.Components()
	if !inUnitInterval(a+b) || !inUnitInterval(a-b) {
		return opn.Number{}, domainError("asin", x, "requires -1 <= a+b <= 1 and -1 <= a-b <= 1")
	}
	s, d := gomath.Asin(a+b), gomath.Asin(a-b)
	return opn.New(0.5*(s+d), 0.5*(s-d)), nil
}

// Acos returns the inverse cosine of x.
// It requires a+b and a-b to lie in [-1, 1].
func Acos(x opn.Number) (opn.Number, error) {
	a, b := x.Components()
	if !inUnitInterval(a+b) || !inUnitInterval(a-b) {
		return opn.Number{}, domainError("acos", x, "requires -1 <= a+b <= 1 and -1 <= a-b <= 1")
	}
	s, d := gomath.Acos(a+b), gomath.Acos(a-b)
	return opn.New(0.5*(s+d)+gomath.Pi/2, 0.5*(s-d)+gomath.Pi/2), nil
}

// Atan returns the inverse tangent of x, taking the +√ root of each
// component's quadratic.
// It fails with opn.ErrUndefined when a == 0 or b == 0.
func Atan(x opn.Number) (opn.Number, error) {
	a, b := x.Components()
	if a == 0 || b == 0 {
		return opn.Number{}, undefinedError("atan", x, "a and b must be non-zero")
	}
	p := a*a - b*b - 1
	q := b*b - a*a - 1
	head := (p + gomath.Sqrt(p*p+4*a*a)) / (2 * a)
	tail := (q + gomath.Sqrt(q*q+4*b*b)) / (2 * b)
	return opn.New(head, tail), nil
}
