package ops

// AddForward returns a + b.
func AddForward(a, b float64) float64 {
	return a + b
}

// AddBackward returns the operand gradients of an addition.
//
// Since d(a+b)/da = d(a+b)/db = 1, the output gradient flows unchanged
// to both operands.
func AddBackward(outputGrad float64) (gradA, gradB float64) {
	return outputGrad, outputGrad
}
