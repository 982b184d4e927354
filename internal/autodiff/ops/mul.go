package ops

// MulForward returns a * b.
func MulForward(a, b float64) float64 {
	return a * b
}

// MulBackward returns the operand gradients of a multiplication.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = b * outputGrad
//   - d(a*b)/db = a, so grad_b = a * outputGrad
func MulBackward(a, b, outputGrad float64) (gradA, gradB float64) {
	return b * outputGrad, a * outputGrad
}
