package ops

import "math"

// TanhForward returns tanh(x) = (e^{2x} - 1) / (e^{2x} + 1).
//
// e^{2x} overflows for x above ~354; the result saturates to 1 there
// instead of becoming Inf/Inf.
func TanhForward(x float64) float64 {
	e2x := math.Exp(2 * x)
	if math.IsInf(e2x, 1) {
		return 1
	}
	return (e2x - 1) / (e2x + 1)
}

// TanhBackward computes the gradient for tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// grad_input = (1 - output²) * outputGrad.
func TanhBackward(output, outputGrad float64) float64 {
	return (1 - output*output) * outputGrad
}
