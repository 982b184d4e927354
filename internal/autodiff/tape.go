package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Tape is the topological order of every node reachable from a root.
//
// Each node appears exactly once, after all of its operands. Walking the
// tape backwards therefore visits a node only once every consumer of that
// node has already pushed its contribution into the node's gradient.
//
// Usage:
//
//	tape := NewTape(loss)
//	tape.Backward()
//	// ... update parameters ...
//	tape.ZeroGrad()
type Tape struct {
	root  *Value
	nodes []*Value // operands before consumers; root last
}

// NewTape records the topological order of the graph ending at root.
//
// The traversal is a depth-first post-order (operands in operation order,
// then the node itself) driven by an explicit stack, with an identity-based
// visited set so shared nodes are recorded once.
func NewTape(root *Value) *Tape {
	type frame struct {
		node     *Value
		expanded bool
	}

	var nodes []*Value
	visited := make(map[*Value]struct{})
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			nodes = append(nodes, f.node)
			continue
		}
		if _, seen := visited[f.node]; seen {
			continue
		}
		visited[f.node] = struct{}{}

		stack = append(stack, frame{node: f.node, expanded: true})
		// Push in reverse so the first operand is visited first.
		for i := len(f.node.operands) - 1; i >= 0; i-- {
			child := f.node.operands[i]
			if _, seen := visited[child]; !seen {
				stack = append(stack, frame{node: child})
			}
		}
	}

	return &Tape{root: root, nodes: nodes}
}

// Root returns the node the tape was recorded from.
func (t *Tape) Root() *Value {
	return t.root
}

// Nodes returns the recorded order. The slice must not be modified.
func (t *Tape) Nodes() []*Value {
	return t.nodes
}

// Len returns the number of distinct nodes on the tape.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// NumOps returns the number of non-leaf nodes on the tape.
func (t *Tape) NumOps() int {
	n := 0
	for _, v := range t.nodes {
		if !v.IsLeaf() {
			n++
		}
	}
	return n
}

// Backward sets the root gradient to 1 and applies every node's local rule
// in reverse topological order.
//
// Operand gradients are accumulated, never assigned, so contributions from
// every path sum up. Gradients left over from a previous pass are kept.
func (t *Tape) Backward() {
	t.root.grad = 1
	t.reverse((*Value).propagate)
}

// ZeroGrad resets the gradient of every node on the tape.
func (t *Tape) ZeroGrad() {
	for _, v := range t.nodes {
		v.grad = 0
	}
}

// reverse calls fn on every node, root first and leaves last.
func (t *Tape) reverse(fn func(*Value)) {
	for i := len(t.nodes) - 1; i >= 0; i-- {
		fn(t.nodes[i])
	}
}

// propagate adds this node's contribution into its operands' gradients.
func (v *Value) propagate() {
	switch v.op {
	case ops.None:
		return
	case ops.Add:
		ga, gb := ops.AddBackward(v.grad)
		v.operands[0].grad += ga
		v.operands[1].grad += gb
	case ops.Mul:
		a, b := v.operands[0], v.operands[1]
		ga, gb := ops.MulBackward(a.data, b.data, v.grad)
		a.grad += ga
		b.grad += gb
	case ops.Pow:
		a := v.operands[0]
		a.grad += ops.PowBackward(a.data, v.exponent, v.grad)
	case ops.Exp:
		v.operands[0].grad += ops.ExpBackward(v.data, v.grad)
	case ops.Tanh:
		v.operands[0].grad += ops.TanhBackward(v.data, v.grad)
	case ops.ReLU:
		v.operands[0].grad += ops.ReLUBackward(v.data, v.grad)
	default:
		panic(fmt.Sprintf("autodiff: no backward rule for operation %s", v.op))
	}
}
