package opnmath

import (
	gomath "math"

	"github.com/GriffinCanCode/opn/backend/internal/opn"
)

// Pow returns x**n. See opn.Number.Pow for the exponent cases.
func Pow(x opn.Number, n float64) (opn.Number, error) {
	return x.Pow(n)
}

// Sqrt returns x**0.5.
func Sqrt(x opn.Number) (opn.Number, error) {
	return x.Pow(0.5)
}

// RealPow returns k**x for a real base k > 0.
func RealPow(k float64, x opn.Number) (opn.Number, error) {
	return opn.RealPow(k, x)
}

// Exp returns e**x.
func Exp(x opn.Number) (opn.Number, error) {
	return x.Exp()
}

// Ln returns the natural logarithm of x. It requires a+b < 0 and a > b.
func Ln(x opn.Number) (opn.Number, error) {
	a, b := x.Components()
	if !(a+b < 0 && a > b) {
		return opn.Number{}, domainError("ln", x, "requires a+b < 0 and a > b")
	}
	head := 0.5 * gomath.Log((b-a)/(b+a))
	tail := -0.5 * gomath.Log(b*b-a*a)
	return opn.New(head, tail), nil
}

// Log returns the logarithm of x in the given real base.
// The base must be positive and not equal to 1.
func Log(x opn.Number, base float64) (opn.Number, error) {
	if !(base > 0) || base == 1 {
		return opn.Number{}, domainError("log", x, "base must be greater than 0 and not equal to 1")
	}
	l, err := Ln(x)
	if err != nil {
		return opn.Number{}, err
	}
	return l.Scale(1 / gomath.Log(base)), nil
}

// Log2 returns the base-2 logarithm of x.
func Log2(x opn.Number) (opn.Number, error) {
	return Log(x, 2)
}

// Log10 returns the base-10 logarithm of x.
func Log10(x opn.Number) (opn.Number, error) {
	return Log(x, 10)
}
