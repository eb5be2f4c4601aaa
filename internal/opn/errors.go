package opn

import (
	"errors"
	"fmt"
)

var (
	ErrSingularity        = errors.New("multiplicative inverse does not exist")
	ErrInvalidRootIndex   = errors.New("root index must be an integer")
	ErrDomain             = errors.New("argument outside function domain")
	ErrOverflow           = errors.New("exponential overflow")
	ErrUndefined          = errors.New("division by zero")
	ErrFractionalExponent = errors.New("fractional exponent not supported")
)

// Error records a failed operation and the operand that caused it.
type Error struct {
	Op      string
	Operand Number
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Operand, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func fail(op string, x Number, err error) error {
	return &Error{Op: op, Operand: x, Err: err}
}

// failf attaches detail to a sentinel while keeping it matchable with errors.Is.
func failf(op string, x Number, err error, format string, args ...interface{}) error {
	return &Error{Op: op, Operand: x, Err: fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))}
}

// Kind returns a stable label for the failure kind of err.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSingularity):
		return "singularity"
	case errors.Is(err, ErrInvalidRootIndex):
		return "invalid_root_index"
	case errors.Is(err, ErrDomain):
		return "domain"
	case errors.Is(err, ErrOverflow):
		return "overflow"
	case errors.Is(err, ErrUndefined):
		return "undefined"
	case errors.Is(err, ErrFractionalExponent):
		return "fractional_exponent"
	default:
		return "unknown"
	}
}
