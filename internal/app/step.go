package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"gol/internal/core"
	"gol/pkg/golfile"
)

// Stepper advances .gol files on disk without loading them into memory.
// Each generation is streamed from a windowed reader into a temporary file
// next to the input.
type Stepper struct {
	cfg StepConfig
	log *log.Logger
}

// NewStepper returns a Stepper using cfg. A nil logger uses the standard logger.
func NewStepper(cfg StepConfig, logger *log.Logger) *Stepper {
	if logger == nil {
		logger = log.Default()
	}
	return &Stepper{cfg: cfg, log: logger}
}

// OutputPath returns where the stepped copy of path is written.
func (s *Stepper) OutputPath(path string) string {
	return path + s.cfg.Suffix
}

// Run steps every path, at most cfg.Workers files at a time. Each file keeps
// its own reader, so readers are never shared between goroutines. The first
// failure cancels the files that have not finished.
func (s *Stepper) Run(ctx context.Context, paths []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.cfg.Workers, 1))
	for _, path := range paths {
		g.Go(func() error {
			return s.StepFile(ctx, path)
		})
	}
	return g.Wait()
}

// StepFile advances path by cfg.Turns generations and writes the result to
// OutputPath(path).
func (s *Stepper) StepFile(ctx context.Context, path string) error {
	if s.cfg.Turns <= 0 {
		return nil
	}
	src := path
	defer func() {
		if src != path {
			os.Remove(src)
		}
	}()

	throttle := core.NewThrottle(s.cfg.Progress)
	for turn := 1; turn <= s.cfg.Turns; turn++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, reads, err := s.advance(src, filepath.Dir(path))
		if err != nil {
			return fmt.Errorf("%s: turn %d: %w", path, turn, err)
		}
		if src != path {
			os.Remove(src)
		}
		src = next
		if throttle.Ready() || turn == s.cfg.Turns {
			s.log.Printf("%s: turn %d/%d (%d row reads)", path, turn, s.cfg.Turns, reads)
		}
	}

	out := s.OutputPath(path)
	if err := os.Rename(src, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	src = path
	return nil
}

// advance writes the next generation of src to a new temporary file in dir
// and returns its name with the number of row reads it took.
func (s *Stepper) advance(src, dir string) (string, int, error) {
	r, err := golfile.Open(src, s.cfg.Capacity)
	if err != nil {
		return "", 0, err
	}
	defer r.Close()

	f, err := os.CreateTemp(dir, ".gol-step-*")
	if err != nil {
		return "", 0, err
	}
	if err := golfile.EncodeTransition(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", 0, err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", 0, err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", 0, err
	}
	return f.Name(), r.Reads(), nil
}
