package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer applies nout independent neurons to the same input vector.
type Layer struct {
	neurons []*Neuron
	nin     int
}

// NewLayer creates a layer of nout neurons with nin inputs each.
//
// Panics if nin is negative or nout is less than 1.
func NewLayer(nin, nout int, opts ...Option) *Layer {
	if nout < 1 {
		panic(fmt.Sprintf("nn: invalid layer output count %d", nout))
	}

	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, opts...)
	}
	return &Layer{neurons: neurons, nin: nin}
}

// Forward returns one activation per neuron, in neuron order.
func (l *Layer) Forward(x []*autodiff.Value) []*autodiff.Value {
	checkInputs("Layer", l.nin, x)

	outs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Call(x)
	}
	return outs
}

// Call returns the activation of a single-neuron layer.
//
// Panics if the layer has more than one neuron.
func (l *Layer) Call(x []*autodiff.Value) *autodiff.Value {
	return single("Layer", l.Forward(x))
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the input width.
func (l *Layer) InFeatures() int {
	return l.nin
}

// OutFeatures returns the number of neurons.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}

// Parameters returns every neuron's parameters, in neuron order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
