package functions

import (
	"context"

	"github.com/GriffinCanCode/opn/backend/internal/opn"
	"github.com/GriffinCanCode/opn/backend/internal/opnmath"
	"github.com/GriffinCanCode/opn/backend/internal/providers/opn/common"
	"github.com/GriffinCanCode/opn/backend/internal/types"
)

// ExpOps handles exponentials and logarithms
type ExpOps struct {
	*common.MathOps
}

func unary(id, name, desc string) types.Tool {
	return types.Tool{
		ID:          id,
		Name:        name,
		Description: desc,
		Parameters: []types.Parameter{
			{Name: "x", Type: "opn", Description: "Value", Required: true},
		},
		Returns: "opn",
	}
}

// GetTools returns exponential tool definitions
func (e *ExpOps) GetTools() []types.Tool {
	return []types.Tool{
		unary("opn.exp", "Exponential", "e^x in closed form"),
		{
			ID:          "opn.realPow",
			Name:        "Real Power",
			Description: "k^x for a positive real base k",
			Parameters: []types.Parameter{
				{Name: "k", Type: "number", Description: "Positive base", Required: true},
				{Name: "x", Type: "opn", Description: "Exponent", Required: true},
			},
			Returns: "opn",
		},
		unary("opn.ln", "Natural Log", "ln x; requires a+b < 0 and a > b"),
		{
			ID:          "opn.log",
			Name:        "Logarithm",
			Description: "Logarithm of x in a real base",
			Parameters: []types.Parameter{
				{Name: "x", Type: "opn", Description: "Value", Required: true},
				{Name: "base", Type: "number", Description: "Positive base other than 1", Required: true},
			},
			Returns: "opn",
		},
		unary("opn.log2", "Log Base 2", "Base-2 logarithm of x"),
		unary("opn.log10", "Log Base 10", "Base-10 logarithm of x"),
	}
}

func apply(params map[string]interface{}, fn func(opn.Number) (opn.Number, error)) (*types.Result, error) {
	x, err := common.GetOPN(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.FromOp(fn(x))
}

// Exp computes e^x
func (e *ExpOps) Exp(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, opnmath.Exp)
}

// RealPow computes k^x
func (e *ExpOps) RealPow(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	k, ok := common.GetNumber(params, "k")
	if !ok {
		return common.Failure("k parameter required")
	}
	return apply(params, func(x opn.Number) (opn.Number, error) {
		return opnmath.RealPow(k, x)
	})
}

// Ln computes the natural logarithm
func (e *ExpOps) Ln(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, opnmath.Ln)
}

// Log computes the logarithm in the given base
func (e *ExpOps) Log(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	base, ok := common.GetNumber(params, "base")
	if !ok {
		return common.Failure("base parameter required")
	}
	return apply(params, func(x opn.Number) (opn.Number, error) {
		return opnmath.Log(x, base)
	})
}

// Log2 computes the base-2 logarithm
func (e *ExpOps) Log2(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, opnmath.Log2)
}

// Log10 computes the base-10 logarithm
func (e *ExpOps) Log10(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, opnmath.Log10)
}
