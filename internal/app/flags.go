package app

import (
	"flag"
	"runtime"
	"strconv"
	"time"

	"gol/pkg/golfile"
)

// StepConfig represents the command-line parameters of gol-step.
type StepConfig struct {
	Turns    int
	Capacity int
	Workers  int
	Suffix   string
	Progress time.Duration
}

// NewStepConfig returns a StepConfig populated with sensible defaults.
func NewStepConfig() *StepConfig {
	return &StepConfig{
		Turns:    1,
		Capacity: golfile.DefaultCapacity,
		Workers:  runtime.NumCPU(),
		Suffix:   ".next",
		Progress: 2 * time.Second,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *StepConfig) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Turns, "turns", c.Turns, "generations to advance each file")
	fs.IntVar(&c.Capacity, "capacity", c.Capacity, "window budget in cells per reader")
	fs.IntVar(&c.Workers, "workers", c.Workers, "files processed in parallel")
	fs.StringVar(&c.Suffix, "suffix", c.Suffix, "suffix for output files (empty rewrites the input)")
	fs.DurationVar(&c.Progress, "progress", c.Progress, "minimum interval between progress lines")
}

// GenConfig represents the command-line parameters of gol-gen.
type GenConfig struct {
	Pattern string
	Width   int
	Height  int
	Seed    int64
	Density float64
	Out     string
}

// NewGenConfig returns a GenConfig populated with sensible defaults.
func NewGenConfig() *GenConfig {
	return &GenConfig{Pattern: "random", Width: 64, Height: 64, Seed: 42, Density: 0.3, Out: "board.gol"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *GenConfig) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern to generate")
	fs.IntVar(&c.Width, "w", c.Width, "board width")
	fs.IntVar(&c.Height, "h", c.Height, "board height")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.Float64Var(&c.Density, "density", c.Density, "probability of a live cell for random patterns")
	fs.StringVar(&c.Out, "out", c.Out, "output .gol file")
}

// Map converts the pattern settings into the key/value form pattern factories read.
func (c *GenConfig) Map() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
	}
}
