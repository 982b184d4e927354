// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/nn"
)

// TestModuleInterface verifies that concrete types implement Module.
func TestModuleInterface(t *testing.T) {
	tests := []struct {
		name   string
		module nn.Module
		params int
	}{
		{name: "Neuron", module: nn.NewNeuron(3), params: 4},
		{name: "Layer", module: nn.NewLayer(3, 4), params: 16},
		{name: "MLP", module: nn.NewMLP(3, []int{4, 4, 1}), params: 41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.module.Forward(autodiff.Values(1, 0.5, -1))
			assert.NotEmpty(t, out)
			assert.Equal(t, tt.params, nn.NumParameters(tt.module))
		})
	}
}

// TestNetworkShape verifies that a single-output network yields one node.
func TestNetworkShape(t *testing.T) {
	model := nn.NewMLP(3, []int{4, 4, 1}, nn.WithSource(rand.NewPCG(1, 1)))

	out := model.Call(autodiff.Values(2.0, 3.0, -1.0))
	require.NotNil(t, out)
	assert.Len(t, model.Parameters(), 41)

	out.Backward()
	for _, p := range model.Parameters() {
		assert.False(t, math.IsNaN(p.Grad()), "gradient must be a number")
	}

	nn.ZeroGrad(model)
	for _, p := range model.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}
}

// TestMSELossComposition verifies the loss trains through the public API.
func TestMSELossComposition(t *testing.T) {
	model := nn.NewMLP(2, []int{3, 1}, nn.WithSource(rand.NewPCG(2, 2)), nn.WithInitRange(-0.5, 0.5))
	xs := [][]float64{{1, 0}, {0, 1}}
	ys := autodiff.Values(0.5, -0.5)

	lossAt := func() *autodiff.Value {
		preds := []*autodiff.Value{
			model.Call(autodiff.Values(xs[0]...)),
			model.Call(autodiff.Values(xs[1]...)),
		}
		return nn.NewMSELoss().Forward(preds, ys)
	}

	before := lossAt()
	nn.ZeroGrad(model)
	before.Backward()
	for _, p := range model.Parameters() {
		p.SetData(p.Data() - 0.01*p.Grad())
	}

	assert.Less(t, lossAt().Data(), before.Data())
}
