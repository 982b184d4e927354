// Package ops defines the operation kinds recorded on scalar nodes and their
// local derivative rules.
//
// A node does not carry an executable backward closure. It stores the Kind
// that produced it, and the backward pass dispatches on that Kind to the
// rule defined here. Every rule takes the values it needs plus the gradient
// flowing into the node and returns the contribution for each operand:
//   - Add: d(a+b)/da = 1, d(a+b)/db = 1
//   - Mul: d(a*b)/da = b, d(a*b)/db = a
//   - Pow: d(a^p)/da = p * a^(p-1) (p is a constant, not a node)
//   - Exp: d(e^a)/da = e^a, read back from the output
//   - Tanh: d(tanh(a))/da = 1 - tanh²(a), read back from the output
//   - ReLU: d(ReLU(a))/da = 1 if output > 0, else 0
//
// Negation, subtraction and division are compositions of the kinds above
// and have no rule of their own.
package ops

import "fmt"

// Kind identifies the operation that produced a node.
type Kind uint8

// Operation kinds. None marks a leaf (input, parameter or promoted constant).
const (
	None Kind = iota
	Add
	Mul
	Pow
	Exp
	Tanh
	ReLU
)

var kindNames = [...]string{
	None: "",
	Add:  "+",
	Mul:  "*",
	Pow:  "**",
	Exp:  "exp",
	Tanh: "tanh",
	ReLU: "ReLU",
}

var kindArity = [...]int{
	None: 0,
	Add:  2,
	Mul:  2,
	Pow:  1,
	Exp:  1,
	Tanh: 1,
	ReLU: 1,
}

// String returns the short symbol used when printing a graph.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// Arity returns the number of operands a node of this kind references.
//
// Panics if k is not a valid kind.
func (k Kind) Arity() int {
	if !k.Valid() {
		panic(fmt.Sprintf("ops: unknown kind %d", uint8(k)))
	}
	return kindArity[k]
}
