// Package opn implements the OPN number type: an ordered pair (a, b) of
// float64 values with its own ring algebra.
//
// The algebra:
//   - Addition and subtraction are componentwise
//   - (a, b) * (c, d) = (-ad-bc, -ac-bd)
//   - (0, -1) is the multiplicative identity (One)
//   - Values with a == b or a == -b are singular and have no inverse
//
// Ordering is derived from the signed sum of the difference of two values:
// x > y when (x-y).a + (x-y).b is negative, with the first component
// breaking ties. Abs picks the representative of {x, -x} that is
// non-negative under this ordering.
//
// The power engine (Pow) covers integer powers, negative powers via the
// inverse, and integer-root extraction for exponents 1/m. Exp and RealPow
// extend the exponential to OPN arguments.
//
// Every operation returns a new value. Operations with a precondition
// return an *Error wrapping one of the sentinel errors, so callers can
// test the failure kind with errors.Is:
//
//	x := opn.New(1, -2)
//	inv, err := x.Inv()
//	if errors.Is(err, opn.ErrSingularity) {
//	    // x lies in the singularity set
//	}
package opn
