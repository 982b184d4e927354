// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Architecture:
//   - Value: a node holding a float64, its accumulated gradient and the
//     operation (ops.Kind) plus operands that produced it
//   - Operations (Add, Mul, Pow, Exp, Tanh, ReLU and their compositions)
//     build new nodes and never modify their inputs
//   - Tape: the topological order of every node reachable from an output
//   - Backward: seeds the output gradient with 1 and applies each node's
//     local rule in reverse topological order, accumulating into operands
//
// Usage:
//
//	x := autodiff.NewValue(2.0).SetLabel("x")
//	y := x.Mul(x).AddScalar(1) // y = x² + 1
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4
//
// Gradients accumulate. Calling Backward twice on the same graph without
// ZeroGrad in between sums both passes; callers that iterate (optimizers)
// must reset gradients themselves.
package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a scalar node in the computation graph.
//
// data is fixed by the operation that created the node and only changes
// through SetData. grad starts at zero and is only written by Backward and
// ZeroGrad. Nodes are shared by pointer; the same node may be an operand of
// many downstream nodes.
type Value struct {
	data     float64
	grad     float64
	op       ops.Kind
	operands []*Value // ordered; a node used twice by one op appears twice
	exponent float64  // constant exponent of an ops.Pow node
	label    string
}

// NewValue creates a leaf node (an input, parameter or constant).
func NewValue(data float64) *Value {
	return &Value{data: data}
}

// newNode creates an interior node. The operand count must match the kind.
func newNode(data float64, op ops.Kind, operands ...*Value) *Value {
	if len(operands) != op.Arity() {
		panic(fmt.Sprintf("autodiff: %s expects %d operands, got %d", op, op.Arity(), len(operands)))
	}
	return &Value{
		data:     data,
		op:       op,
		operands: operands,
	}
}

// Data returns the node's value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData replaces the node's value.
//
// This is meant for parameter updates between forward passes. Nodes already
// built on top of v keep the value they were computed with.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the gradient accumulated by Backward.
func (v *Value) Grad() float64 {
	return v.grad
}

// ZeroGrad resets this node's gradient to zero.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the operation that produced the node (ops.None for leaves).
func (v *Value) Op() ops.Kind {
	return v.op
}

// Operands returns the nodes this node was computed from, in operation order.
func (v *Value) Operands() []*Value {
	out := make([]*Value, len(v.operands))
	copy(out, v.operands)
	return out
}

// Exponent returns the constant exponent of a Pow node, and zero otherwise.
func (v *Value) Exponent() float64 {
	return v.exponent
}

// IsLeaf reports whether the node has no operands.
func (v *Value) IsLeaf() bool {
	return len(v.operands) == 0
}

// Label returns the debugging label.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets the debugging label and returns v for chaining.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// String returns the node's value, e.g. "Value(data=-6)".
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%v)", v.data)
}
