package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// Example:
//
//	mse := nn.NewMSELoss()
//	preds := []*autodiff.Value{model.Call(x0), model.Call(x1)}
//	loss := mse.Forward(preds, autodiff.Values(1, -1))
//	loss.Backward()
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward returns the mean of the squared differences as a single node.
//
// Panics if the slices are empty or differ in length.
func (m *MSELoss) Forward(predictions, targets []*autodiff.Value) *autodiff.Value {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("nn: MSELoss got %d predictions and %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("nn: MSELoss needs at least one prediction")
	}

	squared := make([]*autodiff.Value, len(predictions))
	for i, p := range predictions {
		squared[i] = p.Sub(targets[i]).Pow(2)
	}
	sum := autodiff.Sum(squared[0], squared[1:]...)
	return sum.DivScalar(float64(len(squared)))
}
