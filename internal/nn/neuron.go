package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes tanh(b + w₀x₀ + w₁x₁ + ...).
//
// Example:
//
//	n := nn.NewNeuron(2)
//	out := n.Call(autodiff.Values(1.0, -2.0))
type Neuron struct {
	weights []*autodiff.Value
	bias    *autodiff.Value
}

// NewNeuron creates a neuron with nin weights and a bias, each drawn
// uniformly from [-1, 1] unless an Option says otherwise.
//
// Panics if nin is negative.
func NewNeuron(nin int, opts ...Option) *Neuron {
	if nin < 0 {
		panic(fmt.Sprintf("nn: invalid neuron input count %d", nin))
	}

	dist := newUniform(opts)
	weights := make([]*autodiff.Value, nin)
	for i := range weights {
		weights[i] = autodiff.NewValue(dist.Rand()).SetLabel(fmt.Sprintf("w%d", i))
	}

	return &Neuron{
		weights: weights,
		bias:    autodiff.NewValue(dist.Rand()).SetLabel("b"),
	}
}

// Call runs the neuron on x and returns its activation.
//
// The affine sum starts at the bias and adds wᵢxᵢ left to right.
// Panics if len(x) differs from the number of weights.
func (n *Neuron) Call(x []*autodiff.Value) *autodiff.Value {
	checkInputs("Neuron", len(n.weights), x)

	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(x[i]))
	}
	return act.Tanh()
}

// Forward returns Call(x) as a one-element slice.
func (n *Neuron) Forward(x []*autodiff.Value) []*autodiff.Value {
	return []*autodiff.Value{n.Call(x)}
}

// Weights returns the weight leaves.
func (n *Neuron) Weights() []*autodiff.Value {
	return n.weights
}

// Bias returns the bias leaf.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// InFeatures returns the number of inputs.
func (n *Neuron) InFeatures() int {
	return len(n.weights)
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}
