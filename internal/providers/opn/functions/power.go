package functions

import (
	"context"
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/opn/backend/internal/opn"
	"github.com/GriffinCanCode/opn/backend/internal/opnmath"
	"github.com/GriffinCanCode/opn/backend/internal/providers/opn/common"
	"github.com/GriffinCanCode/opn/backend/internal/types"
)

// PowerOps handles powers and roots
type PowerOps struct {
	*common.MathOps
}

// GetTools returns power tool definitions
func (p *PowerOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "opn.pow",
			Name:        "Power",
			Description: "Raise x to a real exponent n; fractional n must be 1/m for integer m",
			Parameters: []types.Parameter{
				{Name: "x", Type: "opn", Description: "Base", Required: true},
				{Name: "n", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "opn",
		},
		{
			ID:          "opn.sqrt",
			Name:        "Square Root",
			Description: "Square root of x; requires a+b <= 0 and a >= b",
			Parameters: []types.Parameter{
				{Name: "x", Type: "opn", Description: "Value", Required: true},
			},
			Returns: "opn",
		},
		{
			ID:          "opn.root",
			Name:        "Root",
			Description: "m-th root of x for a positive integer m",
			Parameters: []types.Parameter{
				{Name: "x", Type: "opn", Description: "Value", Required: true},
				{Name: "m", Type: "number", Description: "Root index", Required: true},
			},
			Returns: "opn",
		},
	}
}

// Pow raises x to n
func (p *PowerOps) Pow(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := common.GetOPN(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	n, ok := common.GetNumber(params, "n")
	if !ok {
		return common.Failure("n parameter required")
	}
	if gomath.IsInf(n, 0) {
		return common.Failure("n is infinite")
	}
	return common.FromOp(opnmath.Pow(x, n))
}

// Sqrt takes the square root of x
func (p *PowerOps) Sqrt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := common.GetOPN(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.FromOp(opnmath.Sqrt(x))
}

// Root takes the m-th root of x
func (p *PowerOps) Root(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := common.GetOPN(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	m, ok := common.GetNumber(params, "m")
	if !ok {
		return common.Failure("m parameter required")
	}
	if m != gomath.Trunc(m) || gomath.IsInf(m, 0) {
		return common.Failure("m must be an integer")
	}
	if m < 1 || m > gomath.MaxInt32 {
		return common.FailureFromError(&opn.Error{
			Op:      "root",
			Operand: x,
			Err:     fmt.Errorf("%w: m must be in [1, %d], got %g", opn.ErrInvalidRootIndex, gomath.MaxInt32, m),
		})
	}
	return common.FromOp(x.Root(int(m)))
}
