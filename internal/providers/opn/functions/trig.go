package functions

import (
	"context"

	"github.com/GriffinCanCode/opn/backend/internal/opnmath"
	"github.com/GriffinCanCode/opn/backend/internal/providers/opn/common"
	"github.com/GriffinCanCode/opn/backend/internal/types"
)

// TrigOps handles trigonometric functions
type TrigOps struct {
	*common.MathOps
}

// GetTools returns trig tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	return []types.Tool{
		unary("opn.sin", "Sine", "Sine of x"),
		unary("opn.cos", "Cosine", "Cosine of x"),
		unary("opn.tan", "Tangent", "Tangent of x"),
		unary("opn.cot", "Cotangent", "Cotangent of x; undefined when tan²a == tan²b"),
		unary("opn.asin", "Arcsine", "Inverse sine; requires a+b and a-b in [-1, 1]"),
		unary("opn.acos", "Arccosine", "Inverse cosine; requires a+b and a-b in [-1, 1]"),
		unary("opn.atan", "Arctangent", "Inverse tangent; requires a != 0 and b != 0"),
	}
}

// Sin computes the sine
func (t *TrigOps) Sin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, opnmath.Sin)
}

// Cos computes the cosine
func (t *TrigOps) Cos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, opnmath.Cos)
}

// Tan computes the tangent
func (t *TrigOps) Tan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, opnmath.Tan)
}

// Cot computes the cotangent
func (t *TrigOps) Cot(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, opnmath.Cot)
}

// Asin computes the inverse sine
func (t *TrigOps) Asin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, opnmath.Asin)
}

// Acos computes the inverse cosine
func (t *TrigOps) Acos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, opnmath.Acos)
}

// Atan computes the inverse tangent
func (t *TrigOps) Atan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, opnmath.Atan)
}
