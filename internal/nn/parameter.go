package nn

// ZeroGrad clears the gradient of every parameter of m.
//
// Backward accumulates, so this should be called before each training
// iteration to avoid summing gradients from previous iterations.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// NumParameters returns the number of trainable leaves in m.
func NumParameters(m Module) int {
	return len(m.Parameters())
}
