package autodiff

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOperand is returned when a value cannot take part in a graph.
	ErrUnsupportedOperand = errors.New("unsupported operand type")
	// ErrNilValue is returned for a nil *Value operand.
	ErrNilValue = errors.New("nil value operand")
)

// Operand is anything an operation accepts: a node, or a plain number that
// is promoted to a constant leaf.
type Operand interface {
	float64 | float32 | int | int32 | int64 | *Value
}

// Lift returns x as a node. Numbers become new constant leaves; nodes are
// returned as they are.
//
// Panics if x is a nil *Value.
func Lift[T Operand](x T) *Value {
	switch x := any(x).(type) {
	case *Value:
		if x == nil {
			panic(fmt.Sprintf("autodiff: %v", ErrNilValue))
		}
		return x
	case float64:
		return NewValue(x)
	case float32:
		return NewValue(float64(x))
	case int:
		return NewValue(float64(x))
	case int32:
		return NewValue(float64(x))
	case int64:
		return NewValue(float64(x))
	}
	panic("autodiff: unreachable operand type")
}

// LiftAll lifts every element of xs.
func LiftAll[T Operand](xs []T) []*Value {
	out := make([]*Value, len(xs))
	for i, x := range xs {
		out[i] = Lift(x)
	}
	return out
}

// FromAny converts dynamically typed inputs to nodes.
//
// Accepted element types are the Operand types. Any other type, or a nil *Value, fails the whole call: no nodes are
// returned for a partially valid input.
func FromAny(xs ...any) ([]*Value, error) {
	out := make([]*Value, len(xs))
	for i, x := range xs {
		switch x := x.(type) {
		case *Value:
			if x == nil {
				return nil, fmt.Errorf("input %d: %w", i, ErrNilValue)
			}
			out[i] = x
		case float64:
			out[i] = NewValue(x)
		case float32:
			out[i] = NewValue(float64(x))
		case int:
			out[i] = NewValue(float64(x))
		case int32:
			out[i] = NewValue(float64(x))
		case int64:
			out[i] = NewValue(float64(x))
		default:
			return nil, fmt.Errorf("input %d: %w: %T", i, ErrUnsupportedOperand, x)
		}
	}
	return out, nil
}

// scalarOf reports the numeric value of x when x is a plain number.
func scalarOf[T Operand](x T) (float64, bool) {
	switch x := any(x).(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

// Values creates one leaf per number.
func Values(xs ...float64) []*Value {
	return LiftAll(xs)
}

// Data reads the value of every node.
func Data(vs []*Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.data
	}
	return out
}
