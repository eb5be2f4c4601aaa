// Package opnmath provides elementary and transcendental functions over
// opn.Number values.
//
// Each function checks its domain precondition and then applies a
// closed-form combination of real functions on the two components:
//   - Power: Pow, Sqrt, RealPow
//   - Exponential: Exp, Ln, Log, Log2, Log10
//   - Trigonometric: Sin, Cos, Tan, Cot
//   - Inverse trigonometric: Asin, Acos, Atan
//
// Every function returns (opn.Number, error); failures wrap the opn
// sentinel errors (opn.ErrDomain, opn.ErrUndefined, ...) so callers branch
// with errors.Is. Zero denominators are reported as opn.ErrUndefined and
// never as infinite components.
package opnmath
