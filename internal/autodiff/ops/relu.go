package ops

// ReLUForward returns max(0, x). Negative inputs clip to zero.
func ReLUForward(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// ReLUBackward computes the input gradient for ReLU.
//
// The mask is taken from the output: the gradient passes only where the
// output is strictly positive, so an input of exactly zero receives none.
func ReLUBackward(output, outputGrad float64) float64 {
	if output > 0 {
		return outputGrad
	}
	return 0
}
