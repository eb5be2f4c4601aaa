package algebra

import (
	"context"

	"github.com/GriffinCanCode/opn/backend/internal/opn"
	"github.com/GriffinCanCode/opn/backend/internal/providers/opn/common"
	"github.com/GriffinCanCode/opn/backend/internal/types"
)

// CompareOps handles equality and ordering of OPN values
type CompareOps struct {
	*common.MathOps
}

// GetTools returns comparison tool definitions
func (o *CompareOps) GetTools() []types.Tool {
	two := func() []types.Parameter {
		return []types.Parameter{opnParam("x", "Left operand"), opnParam("y", "Right operand")}
	}
	return []types.Tool{
		{ID: "opn.equal", Name: "Equal", Description: "Exact componentwise equality", Parameters: two(), Returns: "boolean"},
		{ID: "opn.compare", Name: "Compare", Description: "Order x and y: -1, 0 or 1", Parameters: two(), Returns: "number"},
		{ID: "opn.greater", Name: "Greater", Description: "x > y under the OPN ordering", Parameters: two(), Returns: "boolean"},
		{ID: "opn.less", Name: "Less", Description: "x < y under the OPN ordering", Parameters: two(), Returns: "boolean"},
		{ID: "opn.greaterEqual", Name: "Greater Or Equal", Description: "x > y or x == y", Parameters: two(), Returns: "boolean"},
		{ID: "opn.lessEqual", Name: "Less Or Equal", Description: "x < y or x == y", Parameters: two(), Returns: "boolean"},
	}
}

func (o *CompareOps) predicate(params map[string]interface{}, fn func(x, y opn.Number) bool) (*types.Result, error) {
	x, y, err := pair(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": fn(x, y)})
}

// Equal reports whether x == y
func (o *CompareOps) Equal(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return o.predicate(params, opn.Number.Equal)
}

// Greater reports whether x > y
func (o *CompareOps) Greater(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return o.predicate(params, opn.Number.Greater)
}

// Less reports whether x < y
func (o *CompareOps) Less(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return o.predicate(params, opn.Number.Less)
}

// GreaterEqual reports whether x >= y
func (o *CompareOps) GreaterEqual(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return o.predicate(params, opn.Number.GreaterEqual)
}

// LessEqual reports whether x <= y
func (o *CompareOps) LessEqual(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return o.predicate(params, opn.Number.LessEqual)
}

// Compare orders x and y
func (o *CompareOps) Compare(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, err := pair(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": x.Compare(y)})
}
