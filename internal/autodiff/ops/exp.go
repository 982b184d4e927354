package ops

import "math"

// ExpForward returns e^x.
func ExpForward(x float64) float64 {
	return math.Exp(x)
}

// ExpBackward returns the input gradient of exp.
//
// Since d(exp(x))/dx = exp(x), and we already have exp(x) as output:
// grad_input = output * outputGrad.
func ExpBackward(output, outputGrad float64) float64 {
	return output * outputGrad
}
