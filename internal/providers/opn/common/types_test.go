package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/opn/backend/internal/opn"
	"github.com/GriffinCanCode/opn/backend/internal/testutil"
)

func TestNumberResult(t *testing.T) {
	t.Run("finite", func(t *testing.T) {
		result, err := NumberResult(opn.New(1, 2))
		require.NoError(t, err)
		testutil.AssertOPN(t, result, 1, 2)
		assert.Equal(t, "(1, 2)", result.Data["text"])
	})

	tests := []struct {
		name string
		x    opn.Number
		kind string
	}{
		{"NaN a", opn.New(math.NaN(), 0), "undefined"},
		{"NaN b", opn.New(0, math.NaN()), "undefined"},
		{"NaN wins over Inf", opn.New(math.Inf(1), math.NaN()), "undefined"},
		{"+Inf", opn.New(math.Inf(1), 0), "overflow"},
		{"-Inf", opn.New(0, math.Inf(-1)), "overflow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NumberResult(tt.x)
			require.NoError(t, err)
			testutil.AssertKind(t, result, tt.kind)
		})
	}
}

func TestGetOPN(t *testing.T) {
	x, err := GetOPN(map[string]interface{}{"x": []interface{}{1.0, 2}}, "x")
	require.NoError(t, err)
	assert.Equal(t, opn.New(1, 2), x)

	_, err = GetOPN(map[string]interface{}{"x": []float64{1}}, "x")
	assert.EqualError(t, err, "x must have exactly 2 components, got 1")

	_, err = GetOPN(map[string]interface{}{"x": map[string]interface{}{"a": math.NaN(), "b": 0.0}}, "x")
	assert.EqualError(t, err, "x.a is NaN")

	_, err = GetOPN(map[string]interface{}{}, "x")
	assert.EqualError(t, err, "x parameter required")
}
