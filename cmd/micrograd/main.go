// Package main provides the micrograd CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/nn"
)

const version = "v0.1.0-dev"

// errDiverged is returned when training produces a non-finite loss.
var errDiverged = errors.New("training diverged")

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("micrograd %s\n", version)
	case "demo":
		cfg, err := parseDemoFlags(os.Args[2:])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if _, err := runDemo(os.Stdout, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "micrograd - scalar reverse-mode autodiff")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  demo       Fit an MLP(3, [4, 4, 1]) to four toy samples")
}

// demoConfig holds the demo training settings.
type demoConfig struct {
	Steps int     // Gradient steps (default: 50)
	LR    float64 // Learning rate (default: 0.1)
	Seed  uint64  // Initialization seed (default: 1337)
}

func parseDemoFlags(args []string) (demoConfig, error) {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	cfg := demoConfig{}
	fs.IntVar(&cfg.Steps, "steps", 50, "number of gradient steps")
	fs.Float64Var(&cfg.LR, "lr", 0.1, "learning rate")
	fs.Uint64Var(&cfg.Seed, "seed", 1337, "initialization seed")
	if err := fs.Parse(args); err != nil {
		return demoConfig{}, fmt.Errorf("demo: %w", err)
	}
	if cfg.Steps < 1 {
		return demoConfig{}, fmt.Errorf("demo: steps must be positive, got %d", cfg.Steps)
	}
	if !(cfg.LR > 0) || math.IsInf(cfg.LR, 1) {
		return demoConfig{}, fmt.Errorf("demo: lr must be positive and finite, got %g", cfg.LR)
	}
	return cfg, nil
}

var (
	demoInputs = [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	demoTargets = []float64{1.0, -1.0, -1.0, 1.0}
)

// runDemo trains on the toy data with plain gradient descent and returns the
// loss recorded before each step. It stops with errDiverged as soon as the
// loss is no longer finite.
func runDemo(w io.Writer, cfg demoConfig) ([]float64, error) {
	model := nn.NewMLP(3, []int{4, 4, 1}, nn.WithSource(rand.NewPCG(cfg.Seed, cfg.Seed)))
	criterion := nn.NewMSELoss()
	targets := autodiff.Values(demoTargets...)

	fmt.Fprintf(w, "model: MLP(3, [4, 4, 1]), %d parameters\n", nn.NumParameters(model))

	losses := make([]float64, 0, cfg.Steps)
	var preds []*autodiff.Value
	for step := range cfg.Steps {
		preds = predict(model)
		loss := criterion.Forward(preds, targets)
		if l := loss.Data(); math.IsNaN(l) || math.IsInf(l, 0) {
			return losses, fmt.Errorf("demo: step %d: %w (loss %g)", step, errDiverged, l)
		}
		losses = append(losses, loss.Data())

		nn.ZeroGrad(model)
		loss.Backward()
		for _, p := range model.Parameters() {
			p.SetData(p.Data() - cfg.LR*p.Grad())
		}

		fmt.Fprintf(w, "step %3d  loss %.6f\n", step, loss.Data())
	}

	got := autodiff.Data(predict(model))
	fmt.Fprintf(w, "predictions %.4f\n", got)
	fmt.Fprintf(w, "L2 distance to targets %.6f\n", floats.Distance(got, demoTargets, 2))
	return losses, nil
}

func predict(model *nn.MLP) []*autodiff.Value {
	preds := make([]*autodiff.Value, len(demoInputs))
	for i, x := range demoInputs {
		preds[i] = model.Call(autodiff.Values(x...))
	}
	return preds
}
