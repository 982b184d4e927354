// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/micrograd/internal/nn"
)

// Module interface defines the common interface for all network modules.
type Module = nn.Module

// Option configures parameter initialization.
type Option = nn.Option

// WithSource draws initial weights from src.
func WithSource(src rand.Source) Option {
	return nn.WithSource(src)
}

// WithInitRange sets the uniform initialization interval.
func WithInitRange(low, high float64) Option {
	return nn.WithInitRange(low, high)
}

// Neuron is a single tanh unit.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs.
//
// Example:
//
//	n := nn.NewNeuron(2)
func NewNeuron(nin int, opts ...Option) *Neuron {
	return nn.NewNeuron(nin, opts...)
}

// Layer is a set of neurons applied to the same input.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
//
// Example:
//
//	layer := nn.NewLayer(3, 4)
func NewLayer(nin, nout int, opts ...Option) *Layer {
	return nn.NewLayer(nin, nout, opts...)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates a network with nin inputs and the given layer widths.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1})
func NewMLP(nin int, sizes []int, opts ...Option) *MLP {
	return nn.NewMLP(nin, sizes, opts...)
}

// Loss Functions

// MSELoss computes mean squared error.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// ZeroGrad clears the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// NumParameters returns the number of trainable leaves in m.
func NumParameters(m Module) int {
	return nn.NumParameters(m)
}
