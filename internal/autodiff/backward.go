package autodiff

// Backward computes the gradient of v with respect to every node it depends on.
//
// v's gradient is set to 1 and each reachable node receives d(v)/d(node)
// added to whatever gradient it already holds.
//
// Example:
//
//	a := autodiff.NewValue(3)
//	y := a.Mul(a) // fan-out: a feeds both operands
//	y.Backward()
//	a.Grad() // 6
func (v *Value) Backward() {
	NewTape(v).Backward()
}

// Topo returns every node reachable from v, operands before consumers, v last.
func (v *Value) Topo() []*Value {
	return NewTape(v).Nodes()
}

// ZeroGradGraph resets the gradient of v and every node it depends on.
func (v *Value) ZeroGradGraph() {
	NewTape(v).ZeroGrad()
}
