package autodiff

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomGraph builds a DAG with heavy fan-in by drawing operands from every
// node created so far.
func randomGraph(r *rand.Rand, leaves, ops int) *Value {
	pool := make([]*Value, 0, leaves+ops)
	for range leaves {
		pool = append(pool, NewValue(r.Float64()*2-1))
	}
	pick := func() *Value { return pool[r.IntN(len(pool))] }

	for range ops {
		var v *Value
		switch r.IntN(6) {
		case 0:
			v = pick().Add(pick())
		case 1:
			v = pick().Mul(pick())
		case 2:
			v = pick().Tanh()
		case 3:
			v = pick().ReLU()
		case 4:
			v = pick().Pow(2)
		default:
			v = pick().MulScalar(0.5).Exp()
		}
		pool = append(pool, v)
	}

	// Fold everything into one root so every node is reachable.
	return Sum(pool[len(pool)-1], pool[:len(pool)-1]...).Tanh()
}

// TestTape_TopologicalOrder tests that every node is recorded once, after its operands.
func TestTape_TopologicalOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for trial := range 10 {
		root := randomGraph(r, 5, 60)
		tape := NewTape(root)

		position := make(map[*Value]int, tape.Len())
		for i, v := range tape.Nodes() {
			_, dup := position[v]
			require.False(t, dup, "trial %d: node recorded twice", trial)
			position[v] = i
		}

		for i, v := range tape.Nodes() {
			for _, operand := range v.operands {
				p, ok := position[operand]
				require.True(t, ok, "trial %d: operand missing from tape", trial)
				assert.Less(t, p, i, "trial %d: operand after consumer", trial)
			}
		}
		assert.Same(t, root, tape.Nodes()[tape.Len()-1])
	}
}

// TestTape_RulesRunAfterConsumers tests that a node's rule runs once, after every consumer's rule.
func TestTape_RulesRunAfterConsumers(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 8))
	root := randomGraph(r, 4, 80)
	tape := NewTape(root)

	consumers := make(map[*Value][]*Value)
	for _, v := range tape.Nodes() {
		for _, operand := range v.operands {
			consumers[operand] = append(consumers[operand], v)
		}
	}

	calls := make(map[*Value]int)
	step := 0
	tape.reverse(func(v *Value) {
		for _, c := range consumers[v] {
			assert.Contains(t, calls, c, "consumer rule must run first")
		}
		step++
		calls[v] = step
	})

	assert.Len(t, calls, tape.Len())
	assert.Equal(t, tape.Len(), step, "each rule runs exactly once")
}

// TestTape_SharedNodeEqualData tests that distinct nodes with equal data stay distinct.
func TestTape_SharedNodeEqualData(t *testing.T) {
	a := NewValue(1)
	b := NewValue(1)
	y := a.Mul(b)

	assert.Equal(t, 3, NewTape(y).Len())

	y.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
}

// TestPropagate_UnknownKind tests that a corrupted node fails loudly.
func TestPropagate_UnknownKind(t *testing.T) {
	v := &Value{op: 99, operands: []*Value{NewValue(1)}}
	assert.Panics(t, v.propagate)
}

// TestNewNode_ArityMismatch tests the operand-count guard.
func TestNewNode_ArityMismatch(t *testing.T) {
	assert.Panics(t, func() { newNode(1, 1, NewValue(1)) })
}
