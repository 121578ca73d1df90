package app

import (
	"fmt"
	"os"
	"strings"

	"gol/internal/core"
	"gol/pkg/golfile"
)

// Generate builds the configured pattern and writes it to cfg.Out.
func Generate(cfg GenConfig) error {
	factory, ok := core.Patterns()[cfg.Pattern]
	if !ok {
		return fmt.Errorf("unknown pattern %q (available: %s)",
			cfg.Pattern, strings.Join(core.PatternNames(), ", "))
	}
	g := factory(cfg.Map())

	f, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}
	if err := golfile.Encode(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
