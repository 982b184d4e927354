// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Every arithmetic or activation call records a new node that remembers the
// operation and operands that produced it. Backward on an output node walks
// that graph in reverse topological order and accumulates the gradient of
// the output into every node it depends on.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    x1 := autodiff.NewValue(2.0).SetLabel("x1")
//	    w1 := autodiff.NewValue(-3.0).SetLabel("w1")
//	    b := autodiff.NewValue(6.5).SetLabel("b")
//
//	    o := x1.Mul(w1).Add(b).Tanh()
//	    o.Backward()
//
//	    fmt.Println(w1.Grad()) // x1 * (1 - o²)
//	}
//
// Gradients accumulate across Backward calls; reset them with ZeroGrad (one
// node), ZeroGradGraph (everything below a node) or nn.ZeroGrad (a model).
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a scalar node in the computation graph.
type Value = autodiff.Value

// NewValue creates a leaf node.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// Values creates one leaf per number.
func Values(xs ...float64) []*Value {
	return autodiff.Values(xs...)
}

// Data reads the value of every node.
func Data(vs []*Value) []float64 {
	return autodiff.Data(vs)
}

// Operand is a node or a plain number.
type Operand = autodiff.Operand

// Lift returns x as a node, promoting numbers to constant leaves.
func Lift[T Operand](x T) *Value {
	return autodiff.Lift(x)
}

// LiftAll lifts every element of xs.
func LiftAll[T Operand](xs []T) []*Value {
	return autodiff.LiftAll(xs)
}

// FromAny converts dynamically typed inputs to nodes.
//
// The error wraps ErrUnsupportedOperand or ErrNilValue.
func FromAny(xs ...any) ([]*Value, error) {
	return autodiff.FromAny(xs...)
}

// Errors returned by FromAny.
var (
	ErrUnsupportedOperand = autodiff.ErrUnsupportedOperand
	ErrNilValue           = autodiff.ErrNilValue
)

// Add returns l + r for any mix of nodes and numbers.
//
// Example:
//
//	y := autodiff.Add(1, x) // 1 + x
func Add[L, R Operand](l L, r R) *Value {
	return autodiff.Add(l, r)
}

// Mul returns l * r for any mix of nodes and numbers.
func Mul[L, R Operand](l L, r R) *Value {
	return autodiff.Mul(l, r)
}

// Sub returns l - r for any mix of nodes and numbers.
func Sub[L, R Operand](l L, r R) *Value {
	return autodiff.Sub(l, r)
}

// Div returns l / r for any mix of nodes and numbers.
func Div[L, R Operand](l L, r R) *Value {
	return autodiff.Div(l, r)
}

// Sum returns start + terms[0] + terms[1] + ..., folded left to right.
func Sum(start *Value, terms ...*Value) *Value {
	return autodiff.Sum(start, terms...)
}

// Tape is the topological order of a graph, reusable across backward passes.
type Tape = autodiff.Tape

// NewTape records the graph ending at root.
//
// Example:
//
//	tape := autodiff.NewTape(loss)
//	tape.Backward()
//	tape.ZeroGrad()
func NewTape(root *Value) *Tape {
	return autodiff.NewTape(root)
}

// Op identifies the operation that produced a node.
type Op = ops.Kind

// Operation kinds reported by Value.Op.
const (
	OpNone = ops.None
	OpAdd  = ops.Add
	OpMul  = ops.Mul
	OpPow  = ops.Pow
	OpExp  = ops.Exp
	OpTanh = ops.Tanh
	OpReLU = ops.ReLU
)
