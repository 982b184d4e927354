// Package nn implements a small feed-forward network on top of the scalar
// autodiff engine.
//
// This package provides:
//   - Module interface: Forward over a vector of nodes, Parameters
//   - Neuron: tanh(b + Σ wᵢxᵢ) with uniformly initialized weights
//   - Layer: independent neurons applied to the same input
//   - MLP: layers chained so each layer's output feeds the next
//   - MSELoss: mean squared error built from autodiff operations
//
// No module introduces a derivative rule of its own; every forward pass is
// ordinary autodiff arithmetic, so calling Backward on a loss fills the grad
// of every weight and bias. Each forward pass builds a fresh graph on top
// of the same parameter leaves.
package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Module is the base interface for all network components.
type Module interface {
	// Forward computes the module's outputs for one input vector.
	Forward(x []*autodiff.Value) []*autodiff.Value

	// Parameters returns the trainable leaves in a stable order.
	Parameters() []*autodiff.Value
}

// checkInputs panics if x does not have exactly want elements.
func checkInputs(module string, want int, x []*autodiff.Value) {
	if len(x) != want {
		panic(fmt.Sprintf("nn: %s expects %d inputs, got %d", module, want, len(x)))
	}
}

// single returns the only element of outs.
func single(module string, outs []*autodiff.Value) *autodiff.Value {
	if len(outs) != 1 {
		panic(fmt.Sprintf("nn: %s.Call needs a single output, have %d (use Forward)", module, len(outs)))
	}
	return outs[0]
}
