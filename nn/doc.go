// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small multi-layer perceptron built from autodiff
// scalar operations.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(b + Σ wᵢxᵢ) with weights drawn uniformly from [-1, 1]
//   - Layer: independent neurons sharing one input vector
//   - MLP: layers chained input to output
//   - MSELoss: mean squared error over prediction/target nodes
//   - Utilities: Module interface, ZeroGrad, NumParameters, init options
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    model := nn.NewMLP(3, []int{4, 4, 1})
//
//	    // Forward pass: a single output node
//	    out := model.Call(autodiff.Values(2.0, 3.0, -1.0))
//
//	    // Backward pass fills the grad of every weight and bias
//	    out.Backward()
//	}
//
// # Reproducible Initialization
//
// Weights come from the global generator unless a source is supplied:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.WithSource(rand.NewPCG(1, 2)))
//
// # Parameter Management
//
// Parameters are plain autodiff leaves. An external training loop reads
// Grad, writes SetData and must clear gradients itself, because Backward
// accumulates:
//
//	for step := range steps {
//	    loss := criterion.Forward(predict(model, xs), ys)
//	    nn.ZeroGrad(model)
//	    loss.Backward()
//	    for _, p := range model.Parameters() {
//	        p.SetData(p.Data() - lr*p.Grad())
//	    }
//	}
package nn
