package ops

import "math"

// PowForward returns a raised to the constant exponent p.
func PowForward(a, p float64) float64 {
	return math.Pow(a, p)
}

// PowBackward returns the gradient of a^p with respect to a.
//
// grad_a = p * a^(p-1) * outputGrad. Division uses this rule with p = -1.
func PowBackward(a, p, outputGrad float64) float64 {
	return p * math.Pow(a, p-1) * outputGrad
}
