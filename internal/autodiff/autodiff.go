package autodiff

import (
	"fmt"
	"math"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Add returns a new node v + other.
func (v *Value) Add(other *Value) *Value {
	return newNode(ops.AddForward(v.data, other.data), ops.Add, v, other)
}

// AddScalar returns v + c, with c promoted to a constant leaf.
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(NewValue(c))
}

// Mul returns a new node v * other.
func (v *Value) Mul(other *Value) *Value {
	return newNode(ops.MulForward(v.data, other.data), ops.Mul, v, other)
}

// MulScalar returns v * c, with c promoted to a constant leaf.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(NewValue(c))
}

// Neg returns -v, computed as v * -1.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub returns v - other, computed as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// SubScalar returns v - c, computed as v + (-c).
func (v *Value) SubScalar(c float64) *Value {
	return v.AddScalar(-c)
}

// Pow returns v raised to the constant exponent p.
//
// Panics if p is NaN or infinite; no node is built in that case.
func (v *Value) Pow(p float64) *Value {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		panic(fmt.Sprintf("autodiff: invalid exponent %v (must be a finite real number)", p))
	}
	out := newNode(ops.PowForward(v.data, p), ops.Pow, v)
	out.exponent = p
	return out
}

// Div returns v / other, computed as v * other^-1.
//
// The gradient with respect to other flows through the power rule; there is
// no dedicated quotient rule. A zero divisor is not rejected: the result
// follows IEEE-754 (±Inf or NaN) and so do the gradients.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// DivScalar returns v / c, computed as v * c^-1 with c^-1 promoted to a
// constant leaf. DivScalar(0) yields ±Inf (NaN for 0/0) rather than failing.
func (v *Value) DivScalar(c float64) *Value {
	return v.MulScalar(math.Pow(c, -1))
}

// Exp returns e^v.
func (v *Value) Exp() *Value {
	return newNode(ops.ExpForward(v.data), ops.Exp, v)
}

// Tanh returns the hyperbolic tangent of v.
func (v *Value) Tanh() *Value {
	return newNode(ops.TanhForward(v.data), ops.Tanh, v)
}

// ReLU returns max(0, v).
func (v *Value) ReLU() *Value {
	return newNode(ops.ReLUForward(v.data), ops.ReLU, v)
}

// Add returns l + r for any mix of nodes and numbers.
//
// Example:
//
//	y := autodiff.Add(1.5, x) // same as x.AddScalar(1.5)
func Add[L, R Operand](l L, r R) *Value {
	return Lift(l).Add(Lift(r))
}

// Mul returns l * r for any mix of nodes and numbers.
func Mul[L, R Operand](l L, r R) *Value {
	return Lift(l).Mul(Lift(r))
}

// Sub returns l - r for any mix of nodes and numbers.
func Sub[L, R Operand](l L, r R) *Value {
	if c, ok := scalarOf(r); ok {
		return Lift(l).SubScalar(c)
	}
	return Lift(l).Sub(Lift(r))
}

// Div returns l / r for any mix of nodes and numbers.
func Div[L, R Operand](l L, r R) *Value {
	if c, ok := scalarOf(r); ok {
		return Lift(l).DivScalar(c)
	}
	return Lift(l).Div(Lift(r))
}

// Sum returns start + terms[0] + terms[1] + ..., folded left to right.
func Sum(start *Value, terms ...*Value) *Value {
	acc := start
	for _, t := range terms {
		acc = acc.Add(t)
	}
	return acc
}
