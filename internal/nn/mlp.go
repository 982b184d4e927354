package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLP is a multi-layer perceptron: layers chained so that each layer's
// output becomes the next layer's input.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1})
//	out := model.Call(autodiff.Values(2.0, 3.0, -1.0))
//
// This is equivalent to:
//
//	h1 := layer0.Forward(x)
//	h2 := layer1.Forward(h1)
//	out := layer2.Call(h2)
type MLP struct {
	layers []*Layer
}

// NewMLP creates a network with nin inputs and one layer per entry of sizes.
//
// Layer i takes the previous layer's width (nin for the first) as input and
// has sizes[i] neurons. Options apply to every layer.
//
// Panics if sizes is empty or any size is less than 1.
func NewMLP(nin int, sizes []int, opts ...Option) *MLP {
	if len(sizes) == 0 {
		panic("nn: MLP needs at least one layer")
	}

	layers := make([]*Layer, len(sizes))
	in := nin
	for i, out := range sizes {
		layers[i] = NewLayer(in, out, opts...)
		in = out
	}
	return &MLP{layers: layers}
}

// Forward feeds x through every layer in order.
func (m *MLP) Forward(x []*autodiff.Value) []*autodiff.Value {
	out := x
	for _, layer := range m.layers {
		out = layer.Forward(out)
	}
	return out
}

// Call returns the output of a network whose last layer has one neuron.
//
// Panics if the last layer is wider.
func (m *MLP) Call(x []*autodiff.Value) *autodiff.Value {
	return single("MLP", m.Forward(x))
}

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (m *MLP) Layer(index int) *Layer {
	if index < 0 || index >= len(m.layers) {
		panic(fmt.Sprintf("nn: MLP.Layer index %d out of bounds [0, %d)", index, len(m.layers)))
	}
	return m.layers[index]
}

// InFeatures returns the input width of the first layer.
func (m *MLP) InFeatures() int {
	return m.layers[0].InFeatures()
}

// OutFeatures returns the output width of the last layer.
func (m *MLP) OutFeatures() int {
	return m.layers[len(m.layers)-1].OutFeatures()
}

// Parameters returns every layer's parameters, in layer order.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}
