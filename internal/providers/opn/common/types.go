package common

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/opn/backend/internal/opn"
	"github.com/GriffinCanCode/opn/backend/internal/types"
)

// MathOps provides common OPN helpers
type MathOps struct{}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// FailureFromError creates a failed result carrying the OPN error kind
func FailureFromError(err error) (*types.Result, error) {
	msg := err.Error()
	return &types.Result{
		Success: false,
		Error:   &msg,
		Data:    map[string]interface{}{"kind": opn.Kind(err)},
	}, nil
}

// NumberResult wraps an OPN value as a tool result.
// NaN components are reported as undefined, infinite ones as overflow.
func NumberResult(x opn.Number) (*types.Result, error) {
	if gomath.IsNaN(x.A()) || gomath.IsNaN(x.B()) {
		return FailureFromError(&opn.Error{Op: "result", Operand: x, Err: opn.ErrUndefined})
	}
	if ValidateNumber(x.A(), "a") != nil || ValidateNumber(x.B(), "b") != nil {
		return FailureFromError(&opn.Error{Op: "result", Operand: x, Err: opn.ErrOverflow})
	}
	return Success(map[string]interface{}{
		"result": Encode(x),
		"text":   x.String(),
	})
}

// FromOp turns the outcome of an OPN operation into a tool result
func FromOp(x opn.Number, err error) (*types.Result, error) {
	if err != nil {
		return FailureFromError(err)
	}
	return NumberResult(x)
}

// Encode renders x as a JSON-friendly pair object
func Encode(x opn.Number) map[string]float64 {
	return map[string]float64{"a": x.A(), "b": x.B()}
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toFloat(val)
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetOPN extracts an OPN from params. The value may be an object
// {"a": .., "b": ..} or a two-element array [a, b].
func GetOPN(params map[string]interface{}, key string) (opn.Number, error) {
	val, ok := params[key]
	if !ok {
		return opn.Number{}, fmt.Errorf("%s parameter required", key)
	}

	var a, b float64
	var okA, okB bool
	switch v := val.(type) {
	case map[string]interface{}:
		a, okA = toFloat(v["a"])
		b, okB = toFloat(v["b"])
	case map[string]float64:
		a, okA = v["a"]
		b, okB = v["b"]
	case []interface{}:
		if len(v) != 2 {
			return opn.Number{}, fmt.Errorf("%s must have exactly 2 components, got %d", key, len(v))
		}
		a, okA = toFloat(v[0])
		b, okB = toFloat(v[1])
	case []float64:
		if len(v) != 2 {
			return opn.Number{}, fmt.Errorf("%s must have exactly 2 components, got %d", key, len(v))
		}
		a, b, okA, okB = v[0], v[1], true, true
	default:
		return opn.Number{}, fmt.Errorf("%s must be an object {a, b} or an array [a, b]", key)
	}

	if !okA || !okB {
		return opn.Number{}, fmt.Errorf("%s components a and b must be numbers", key)
	}
	if err := ValidateNumber(a, key+".a"); err != nil {
		return opn.Number{}, err
	}
	if err := ValidateNumber(b, key+".b"); err != nil {
		return opn.Number{}, err
	}
	return opn.New(a, b), nil
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if gomath.IsNaN(x) {
		return fmt.Errorf("%s is NaN", name)
	}
	if gomath.IsInf(x, 0) {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}
