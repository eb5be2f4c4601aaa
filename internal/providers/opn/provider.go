package opn

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/opn/backend/internal/providers/opn/algebra"
	"github.com/GriffinCanCode/opn/backend/internal/providers/opn/common"
	"github.com/GriffinCanCode/opn/backend/internal/providers/opn/functions"
	"github.com/GriffinCanCode/opn/backend/internal/types"
)

// Provider implements OPN operations
type Provider struct {
	// Module instances
	algebra *algebra.AlgebraOps
	compare *algebra.CompareOps
	power   *functions.PowerOps
	exp     *functions.ExpOps
	trig    *functions.TrigOps
}

// NewProvider creates a modular OPN provider
func NewProvider() *Provider {
	ops := &common.MathOps{}

	return &Provider{
		algebra: &algebra.AlgebraOps{MathOps: ops},
		compare: &algebra.CompareOps{MathOps: ops},
		power:   &functions.PowerOps{MathOps: ops},
		exp:     &functions.ExpOps{MathOps: ops},
		trig:    &functions.TrigOps{MathOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.algebra.GetTools()...)
	tools = append(tools, p.compare.GetTools()...)
	tools = append(tools, p.power.GetTools()...)
	tools = append(tools, p.exp.GetTools()...)
	tools = append(tools, p.trig.GetTools()...)

	return types.Service{
		ID:          "opn",
		Name:        "OPN Service",
		Description: "Opposite number pair algebra (arithmetic, ordering, powers, roots, exponential, logarithm, trigonometry)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"ordering",
			"powers",
			"roots",
			"exponential",
			"logarithm",
			"trigonometry",
		},
		Tools: tools,
		DataModels: []types.DataModel{
			{
				Name:   "opn",
				Fields: map[string]string{"a": "number", "b": "number"},
			},
		},
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Algebra
	case "opn.add":
		return p.algebra.Add(ctx, params, appCtx)
	case "opn.subtract":
		return p.algebra.Subtract(ctx, params, appCtx)
	case "opn.negate":
		return p.algebra.Negate(ctx, params, appCtx)
	case "opn.multiply":
		return p.algebra.Multiply(ctx, params, appCtx)
	case "opn.divide":
		return p.algebra.Divide(ctx, params, appCtx)
	case "opn.rdivide":
		return p.algebra.RDivide(ctx, params, appCtx)
	case "opn.inverse":
		return p.algebra.Inverse(ctx, params, appCtx)
	case "opn.abs":
		return p.algebra.Abs(ctx, params, appCtx)
	case "opn.identity":
		return p.algebra.Identity(ctx, params, appCtx)

	// Comparison
	case "opn.equal":
		return p.compare.Equal(ctx, params, appCtx)
	case "opn.compare":
		return p.compare.Compare(ctx, params, appCtx)
	case "opn.greater":
		return p.compare.Greater(ctx, params, appCtx)
	case "opn.less":
		return p.compare.Less(ctx, params, appCtx)
	case "opn.greaterEqual":
		return p.compare.GreaterEqual(ctx, params, appCtx)
	case "opn.lessEqual":
		return p.compare.LessEqual(ctx, params, appCtx)

	// Powers and roots
	case "opn.pow":
		return p.power.Pow(ctx, params, appCtx)
	case "opn.sqrt":
		return p.power.Sqrt(ctx, params, appCtx)
	case "opn.root":
		return p.power.Root(ctx, params, appCtx)

	// Exponential and logarithm
	case "opn.exp":
		return p.exp.Exp(ctx, params, appCtx)
	case "opn.realPow":
		return p.exp.RealPow(ctx, params, appCtx)
	case "opn.ln":
		return p.exp.Ln(ctx, params, appCtx)
	case "opn.log":
		return p.exp.Log(ctx, params, appCtx)
	case "opn.log2":
		return p.exp.Log2(ctx, params, appCtx)
	case "opn.log10":
		return p.exp.Log10(ctx, params, appCtx)

	// Trigonometry
	case "opn.sin":
		return p.trig.Sin(ctx, params, appCtx)
	case "opn.cos":
		return p.trig.Cos(ctx, params, appCtx)
	case "opn.tan":
		return p.trig.Tan(ctx, params, appCtx)
	case "opn.cot":
		return p.trig.Cot(ctx, params, appCtx)
	case "opn.asin":
		return p.trig.Asin(ctx, params, appCtx)
	case "opn.acos":
		return p.trig.Acos(ctx, params, appCtx)
	case "opn.atan":
		return p.trig.Atan(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
