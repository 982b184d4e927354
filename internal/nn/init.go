package nn

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Option configures parameter initialization.
type Option func(*initOptions)

type initOptions struct {
	src  rand.Source
	low  float64
	high float64
}

// WithSource draws initial weights from src instead of the global generator.
//
// The same source is shared by every neuron built with the option, so a
// seeded source reproduces a whole network.
func WithSource(src rand.Source) Option {
	return func(o *initOptions) {
		o.src = src
	}
}

// WithInitRange sets the uniform initialization interval (default [-1, 1]).
//
// Panics if low > high.
func WithInitRange(low, high float64) Option {
	if low > high {
		panic(fmt.Sprintf("nn: invalid init range [%g, %g]", low, high))
	}
	return func(o *initOptions) {
		o.low = low
		o.high = high
	}
}

// newUniform resolves opts into the distribution parameters are drawn from.
func newUniform(opts []Option) distuv.Uniform {
	options := initOptions{low: -1, high: 1}
	for _, opt := range opts {
		opt(&options)
	}
	return distuv.Uniform{Min: options.low, Max: options.high, Src: options.src}
}
