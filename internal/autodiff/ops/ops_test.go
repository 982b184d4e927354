package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

var central = &fd.Settings{Formula: fd.Central, Step: 1e-6}

// TestKind_String tests the printed symbols.
func TestKind_String(t *testing.T) {
	tests := []struct {
		kind ops.Kind
		want string
	}{
		{ops.None, ""},
		{ops.Add, "+"},
		{ops.Mul, "*"},
		{ops.Pow, "**"},
		{ops.Exp, "exp"},
		{ops.Tanh, "tanh"},
		{ops.ReLU, "ReLU"},
		{ops.Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

// TestKind_Arity tests operand counts per kind.
func TestKind_Arity(t *testing.T) {
	assert.Equal(t, 0, ops.None.Arity())
	assert.Equal(t, 2, ops.Add.Arity())
	assert.Equal(t, 2, ops.Mul.Arity())
	for _, k := range []ops.Kind{ops.Pow, ops.Exp, ops.Tanh, ops.ReLU} {
		assert.Equal(t, 1, k.Arity(), "arity of %s", k)
	}

	assert.False(t, ops.Kind(200).Valid())
	assert.Panics(t, func() { ops.Kind(200).Arity() })
}

// TestAddBackward tests that addition passes the gradient through unchanged.
func TestAddBackward(t *testing.T) {
	ga, gb := ops.AddBackward(0.75)
	assert.Equal(t, 0.75, ga)
	assert.Equal(t, 0.75, gb)
	assert.Equal(t, 5.0, ops.AddForward(2, 3))
}

// TestMulBackward tests the product rule.
func TestMulBackward(t *testing.T) {
	ga, gb := ops.MulBackward(3, -4, 2)
	assert.Equal(t, -8.0, ga)
	assert.Equal(t, 6.0, gb)
	assert.Equal(t, -12.0, ops.MulForward(3, -4))
}

// TestUnaryRules_Numerical compares every unary rule with a central difference.
func TestUnaryRules_Numerical(t *testing.T) {
	tests := []struct {
		name     string
		forward  func(float64) float64
		backward func(x, y, g float64) float64
		points   []float64
	}{
		{
			name:     "pow3",
			forward:  func(x float64) float64 { return ops.PowForward(x, 3) },
			backward: func(x, _, g float64) float64 { return ops.PowBackward(x, 3, g) },
			points:   []float64{-2, -0.5, 0.3, 1.7},
		},
		{
			name:     "pow-1",
			forward:  func(x float64) float64 { return ops.PowForward(x, -1) },
			backward: func(x, _, g float64) float64 { return ops.PowBackward(x, -1, g) },
			points:   []float64{-2, -0.5, 0.3, 1.7},
		},
		{
			name:     "pow0.5",
			forward:  func(x float64) float64 { return ops.PowForward(x, 0.5) },
			backward: func(x, _, g float64) float64 { return ops.PowBackward(x, 0.5, g) },
			points:   []float64{0.3, 1.7, 4},
		},
		{
			name:     "exp",
			forward:  ops.ExpForward,
			backward: func(_, y, g float64) float64 { return ops.ExpBackward(y, g) },
			points:   []float64{-3, 0, 0.4, 2},
		},
		{
			name:     "tanh",
			forward:  ops.TanhForward,
			backward: func(_, y, g float64) float64 { return ops.TanhBackward(y, g) },
			points:   []float64{-3, -0.2, 0, 0.9, 2.5},
		},
		{
			name:     "relu",
			forward:  ops.ReLUForward,
			backward: func(_, y, g float64) float64 { return ops.ReLUBackward(y, g) },
			points:   []float64{-1.5, -0.1, 0.1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range tt.points {
				got := tt.backward(x, tt.forward(x), 1)
				want := fd.Derivative(tt.forward, x, central)
				assert.InDelta(t, want, got, 1e-4, "d/dx at x=%g", x)
			}
		})
	}
}

// TestTanhForward tests the exponential formula against math.Tanh.
func TestTanhForward(t *testing.T) {
	for _, x := range []float64{-6, -1, 0, 0.5, 3} {
		assert.InDelta(t, math.Tanh(x), ops.TanhForward(x), 1e-12)
	}

	// e^{2x} overflows here; the result must saturate instead of NaN.
	assert.Equal(t, 1.0, ops.TanhForward(400))
	assert.Equal(t, -1.0, ops.TanhForward(-400))
}

// TestReLU_Boundary tests that zero clips and blocks the gradient.
func TestReLU_Boundary(t *testing.T) {
	assert.Equal(t, 0.0, ops.ReLUForward(0))
	assert.Equal(t, 0.0, ops.ReLUForward(-3))
	assert.Equal(t, 0.0, ops.ReLUBackward(0, 5))
	assert.Equal(t, 5.0, ops.ReLUBackward(1e-9, 5))
}
