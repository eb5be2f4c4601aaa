package algebra

import (
	"context"

	"github.com/GriffinCanCode/opn/backend/internal/opn"
	"github.com/GriffinCanCode/opn/backend/internal/providers/opn/common"
	"github.com/GriffinCanCode/opn/backend/internal/types"
)

// AlgebraOps handles ring operations on OPN values
type AlgebraOps struct {
	*common.MathOps
}

func opnParam(name, desc string) types.Parameter {
	return types.Parameter{Name: name, Type: "opn", Description: desc, Required: true}
}

// GetTools returns algebra tool definitions
func (o *AlgebraOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "opn.add",
			Name:        "Add",
			Description: "Add two OPN values componentwise",
			Parameters:  []types.Parameter{opnParam("x", "First value"), opnParam("y", "Second value")},
			Returns:     "opn",
		},
		{
			ID:          "opn.subtract",
			Name:        "Subtract",
			Description: "Subtract y from x componentwise",
			Parameters:  []types.Parameter{opnParam("x", "Minuend"), opnParam("y", "Subtrahend")},
			Returns:     "opn",
		},
		{
			ID:          "opn.negate",
			Name:        "Negate",
			Description: "Additive inverse of x",
			Parameters:  []types.Parameter{opnParam("x", "Value")},
			Returns:     "opn",
		},
		{
			ID:          "opn.multiply",
			Name:        "Multiply",
			Description: "Multiply x by an OPN y or by a real scalar k",
			Parameters: []types.Parameter{
				opnParam("x", "Value"),
				{Name: "y", Type: "opn", Description: "OPN factor", Required: false},
				{Name: "k", Type: "number", Description: "Real factor, used when y is absent", Required: false},
			},
			Returns: "opn",
		},
		{
			ID:          "opn.divide",
			Name:        "Divide",
			Description: "Divide x by an OPN y or by a real scalar k",
			Parameters: []types.Parameter{
				opnParam("x", "Dividend"),
				{Name: "y", Type: "opn", Description: "OPN divisor", Required: false},
				{Name: "k", Type: "number", Description: "Real divisor, used when y is absent", Required: false},
			},
			Returns: "opn",
		},
		{
			ID:          "opn.rdivide",
			Name:        "Reverse Divide",
			Description: "Divide a real scalar k by x",
			Parameters: []types.Parameter{
				opnParam("x", "Divisor"),
				{Name: "k", Type: "number", Description: "Real dividend", Required: true},
			},
			Returns: "opn",
		},
		{
			ID:          "opn.inverse",
			Name:        "Inverse",
			Description: "Multiplicative inverse of x; fails when |a| == |b|",
			Parameters:  []types.Parameter{opnParam("x", "Value")},
			Returns:     "opn",
		},
		{
			ID:          "opn.abs",
			Name:        "Absolute Value",
			Description: "x if x >= 0 else -x under the OPN ordering",
			Parameters:  []types.Parameter{opnParam("x", "Value")},
			Returns:     "opn",
		},
		{
			ID:          "opn.identity",
			Name:        "Identity",
			Description: "Multiplicative identity (0, -1)",
			Parameters:  []types.Parameter{},
			Returns:     "opn",
		},
	}
}

// Add adds x and y
func (o *AlgebraOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, err := pair(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberResult(x.Add(y))
}

// Subtract subtracts y from x
func (o *AlgebraOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, err := pair(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberResult(x.Sub(y))
}

// Negate negates x
func (o *AlgebraOps) Negate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := common.GetOPN(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberResult(x.Neg())
}

// Multiply multiplies x by y or by the scalar k
func (o *AlgebraOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := common.GetOPN(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	if _, ok := params["y"]; ok {
		y, err := common.GetOPN(params, "y")
		if err != nil {
			return common.Failure(err.Error())
		}
		return common.NumberResult(x.Mul(y))
	}
	k, ok := common.GetNumber(params, "k")
	if !ok {
		return common.Failure("y or k parameter required")
	}
	if err := common.ValidateNumber(k, "k"); err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberResult(x.Scale(k))
}

// Divide divides x by y or by the scalar k
func (o *AlgebraOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := common.GetOPN(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	if _, ok := params["y"]; ok {
		y, err := common.GetOPN(params, "y")
		if err != nil {
			return common.Failure(err.Error())
		}
		return common.FromOp(x.Div(y))
	}
	k, ok := common.GetNumber(params, "k")
	if !ok {
		return common.Failure("y or k parameter required")
	}
	if err := common.ValidateNumber(k, "k"); err != nil {
		return common.Failure(err.Error())
	}
	if k == 0 {
		return common.FailureFromError(&opn.Error{Op: "divide", Operand: x, Err: opn.ErrUndefined})
	}
	return common.NumberResult(x.DivScalar(k))
}

// RDivide divides the scalar k by x
func (o *AlgebraOps) RDivide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := common.GetOPN(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	k, ok := common.GetNumber(params, "k")
	if !ok {
		return common.Failure("k parameter required")
	}
	if err := common.ValidateNumber(k, "k"); err != nil {
		return common.Failure(err.Error())
	}
	return common.FromOp(x.RDiv(k))
}

// Inverse returns the multiplicative inverse of x
func (o *AlgebraOps) Inverse(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := common.GetOPN(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.FromOp(x.Inv())
}

// Abs returns the OPN absolute value of x
func (o *AlgebraOps) Abs(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := common.GetOPN(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberResult(x.Abs())
}

// Identity returns the multiplicative identity
func (o *AlgebraOps) Identity(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.NumberResult(opn.One)
}

func pair(params map[string]interface{}) (opn.Number, opn.Number, error) {
	x, err := common.GetOPN(params, "x")
	if err != nil {
		return opn.Number{}, opn.Number{}, err
	}
	y, err := common.GetOPN(params, "y")
	if err != nil {
		return opn.Number{}, opn.Number{}, err
	}
	return x, y, nil
}
