package opn

import (
	"context"
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/opn/backend/internal/testutil"
	"github.com/GriffinCanCode/opn/backend/internal/types"
)

var opnv = testutil.OPN

func TestDefinition(t *testing.T) {
	def := NewProvider().Definition()

	assert.Equal(t, "opn", def.ID)
	assert.Equal(t, types.CategoryMath, def.Category)
	assert.Len(t, def.Tools, 31)

	seen := make(map[string]bool)
	for _, tool := range def.Tools {
		assert.False(t, seen[tool.ID], "duplicate tool %s", tool.ID)
		seen[tool.ID] = true
		assert.NotEmpty(t, tool.Name, tool.ID)
		assert.NotEmpty(t, tool.Returns, tool.ID)
		if tool.ID == "opn.exp" {
			assert.Equal(t, "e^x in closed form", tool.Description)
		}
	}
	assert.True(t, seen["opn.exp"])
}

func TestEveryToolIsRouted(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	for _, tool := range p.Definition().Tools {
		result, err := p.Execute(ctx, tool.ID, map[string]interface{}{}, nil)
		require.NoError(t, err, tool.ID)
		require.NotNil(t, result, tool.ID)
		if result.Error != nil {
			assert.NotContains(t, *result.Error, "unknown tool", tool.ID)
		}
	}
}

func TestAlgebraTools(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	t.Run("Add", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.add", map[string]interface{}{
			"x": opnv(1, 2),
			"y": opnv(3, -1),
		}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 4, 1)
		assert.Equal(t, "(4, 1)", result.Data["text"])
	})

	t.Run("Add with arrays", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.add", map[string]interface{}{
			"x": []interface{}{1, 2},
			"y": []interface{}{3.0, -1.0},
		}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 4, 1)
	})

	t.Run("Subtract", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.subtract", map[string]interface{}{
			"x": opnv(1, 2),
			"y": opnv(3, -1),
		}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, -2, 3)
	})

	t.Run("Negate", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.negate", map[string]interface{}{"x": opnv(1, -2)}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, -1, 2)
	})

	t.Run("Multiply by OPN", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.multiply", map[string]interface{}{
			"x": opnv(2, 3),
			"y": opnv(2, 3),
		}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, -12, -13)
	})

	t.Run("Multiply by scalar", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.multiply", map[string]interface{}{
			"x": opnv(1, 2),
			"k": 3.0,
		}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 3, 6)
	})

	t.Run("Multiply without factor", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.multiply", map[string]interface{}{"x": opnv(1, 2)}, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
	})

	t.Run("Divide by itself", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.divide", map[string]interface{}{
			"x": opnv(3, 1),
			"y": opnv(3, 1),
		}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 0, -1)
	})

	t.Run("Divide by singular", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.divide", map[string]interface{}{
			"x": opnv(3, 1),
			"y": opnv(1, 1),
		}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "singularity")
	})

	t.Run("Divide by scalar", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.divide", map[string]interface{}{
			"x": opnv(4, 2),
			"k": 2,
		}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 2, 1)
	})

	t.Run("Divide by zero scalar", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.divide", map[string]interface{}{
			"x": opnv(4, 2),
			"k": 0.0,
		}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "undefined")
	})

	t.Run("RDivide", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.rdivide", map[string]interface{}{
			"x": opnv(3, 1),
			"k": 2.0,
		}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 0.75, -0.25)
	})

	t.Run("Inverse", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.inverse", map[string]interface{}{"x": opnv(3, 1)}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 0.375, -0.125)

		result, err = p.Execute(ctx, "opn.inverse", map[string]interface{}{"x": opnv(2, -2)}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "singularity")
		assert.Equal(t, "inverse (2, -2): multiplicative inverse does not exist", *result.Error)
	})

	t.Run("Abs", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.abs", map[string]interface{}{"x": opnv(1, 2)}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, -1, -2)
	})

	t.Run("Identity", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.identity", nil, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 0, -1)
	})

	t.Run("Missing operand", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.add", map[string]interface{}{"x": opnv(1, 2)}, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
		assert.Equal(t, "y parameter required", *result.Error)
	})
}

func TestCompareTools(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	tests := []struct {
		tool string
		x, y interface{}
		want interface{}
	}{
		{"opn.equal", []interface{}{1.0, 2.0}, opnv(1, 2), true},
		{"opn.equal", opnv(1, 2), opnv(2, 1), false},
		{"opn.greater", opnv(-1, -1), opnv(0, 0), true},
		{"opn.less", opnv(-1, -1), opnv(0, 0), false},
		{"opn.less", opnv(1, 2), opnv(0, 0), true},
		{"opn.greaterEqual", opnv(1, 2), opnv(1, 2), true},
		{"opn.lessEqual", opnv(-1, -1), opnv(0, 0), false},
		{"opn.compare", opnv(1, 2), opnv(0, 0), -1},
		{"opn.compare", opnv(1, 2), opnv(1, 2), 0},
		{"opn.compare", opnv(2, -2), opnv(0, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			result, err := p.Execute(ctx, tt.tool, map[string]interface{}{"x": tt.x, "y": tt.y}, nil)
			require.NoError(t, err)
			testutil.AssertDataField(t, result, "result", tt.want)
		})
	}
}

func TestPowerTools(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	t.Run("Pow integer", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.pow", map[string]interface{}{"x": opnv(2, 3), "n": 2}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, -12, -13)
	})

	t.Run("Pow zero", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.pow", map[string]interface{}{"x": opnv(2, 3), "n": 0}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 0, -1)
	})

	t.Run("Pow invalid root index", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.pow", map[string]interface{}{"x": opnv(2, 3), "n": 0.4}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "invalid_root_index")
	})

	t.Run("Pow fractional", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.pow", map[string]interface{}{"x": opnv(2, 3), "n": 1.5}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "fractional_exponent")
	})

	t.Run("Pow missing exponent", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.pow", map[string]interface{}{"x": opnv(2, 3)}, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
	})

	t.Run("Sqrt", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.sqrt", map[string]interface{}{"x": opnv(-30, -34)}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, -5, -3)

		result, err = p.Execute(ctx, "opn.sqrt", map[string]interface{}{"x": opnv(2, 4)}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "domain")
	})

	t.Run("Root", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.root", map[string]interface{}{"x": opnv(-30, -34), "m": 2}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, -5, -3)

		result, err = p.Execute(ctx, "opn.root", map[string]interface{}{"x": opnv(-30, -34), "m": 0}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "invalid_root_index")

		result, err = p.Execute(ctx, "opn.root", map[string]interface{}{"x": opnv(-30, -34), "m": 2.5}, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
		for _, m := range []float64{-3, 1e19, float64(gomath.MaxInt32) + 1} {
			result, err = p.Execute(ctx, "opn.root", map[string]interface{}{"x": opnv(-30, -34), "m": m}, nil)
			require.NoError(t, err)
			testutil.AssertKind(t, result, "invalid_root_index")
			assert.Contains(t, *result.Error, "m must be in [1, 2147483647]")
		}
	})
}

func TestFunctionTools(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	t.Run("Exp", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.exp", map[string]interface{}{"x": opnv(0, 0)}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 0, -1)

		result, err = p.Execute(ctx, "opn.exp", map[string]interface{}{"x": opnv(1000, 0)}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "overflow")
	})

	t.Run("RealPow", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.realPow", map[string]interface{}{"k": 2.0, "x": opnv(0, 0)}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 0, -1)

		result, err = p.Execute(ctx, "opn.realPow", map[string]interface{}{"k": -2.0, "x": opnv(0, 0)}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "domain")
	})

	t.Run("Logarithms", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.ln", map[string]interface{}{"x": opnv(1, 2)}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "domain")

		result, err = p.Execute(ctx, "opn.log", map[string]interface{}{"x": opnv(1, -2), "base": 1.0}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "domain")

		result, err = p.Execute(ctx, "opn.log", map[string]interface{}{"x": opnv(1, -2)}, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)

		for _, tool := range []string{"opn.ln", "opn.log2", "opn.log10"} {
			result, err := p.Execute(ctx, tool, map[string]interface{}{"x": opnv(1, -2)}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
		}
	})

	t.Run("Trig", func(t *testing.T) {
		result, err := p.Execute(ctx, "opn.sin", map[string]interface{}{"x": opnv(0, 0)}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 0, 0)

		result, err = p.Execute(ctx, "opn.cos", map[string]interface{}{"x": opnv(0, 0)}, nil)
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 0, -1)

		result, err = p.Execute(ctx, "opn.cot", map[string]interface{}{"x": opnv(0, 0)}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "undefined")

		result, err = p.Execute(ctx, "opn.atan", map[string]interface{}{"x": opnv(0, 1)}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "undefined")

		result, err = p.Execute(ctx, "opn.asin", map[string]interface{}{"x": opnv(1, 0.5)}, nil)
		require.NoError(t, err)
		testutil.AssertKind(t, result, "domain")

		for _, tool := range []string{"opn.tan", "opn.acos", "opn.asin"} {
			result, err := p.Execute(ctx, tool, map[string]interface{}{"x": opnv(0.2, 0.3)}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
		}
	})
}

func TestUnknownTool(t *testing.T) {
	result, err := NewProvider().Execute(context.Background(), "opn.unknown", nil, nil)
	require.NoError(t, err)
	testutil.AssertError(t, result)
	assert.Equal(t, "unknown tool: opn.unknown", *result.Error)
}
