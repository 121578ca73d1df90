// Package patterns registers the seed boards available to the generator.
package patterns

import (
	"gol/internal/core"
	"gol/pkg/life"
)

// Offsets of the live cells in each shape, relative to its top-left corner.
var (
	blinker    = [][2]int{{1, 0}, {1, 1}, {1, 2}}
	glider     = [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	rPentomino = [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}
)

// Stamp draws shape onto g with its top-left corner at (x, y). Cells falling
// off the board are dropped.
func Stamp(g *life.Grid, x, y int, shape [][2]int) {
	for _, c := range shape {
		g.Set(x+c[0], y+c[1], true)
	}
}

// centered returns a board from c with shape stamped in the middle.
func centered(c Config, shape [][2]int) *life.Grid {
	g := life.NewGrid(c.Width, c.Height)
	Stamp(g, c.Width/2-1, c.Height/2-1, shape)
	return g
}

func init() {
	core.Register("empty", func(cfg map[string]string) *life.Grid {
		c := FromMap(cfg)
		return life.NewGrid(c.Width, c.Height)
	})
	core.Register("random", func(cfg map[string]string) *life.Grid {
		c := FromMap(cfg)
		g := life.NewGrid(c.Width, c.Height)
		g.Reset(c.Seed, c.Density)
		return g
	})
	core.Register("blinker", func(cfg map[string]string) *life.Grid {
		return centered(FromMap(cfg), blinker)
	})
	core.Register("glider", func(cfg map[string]string) *life.Grid {
		c := FromMap(cfg)
		g := life.NewGrid(c.Width, c.Height)
		Stamp(g, 0, 0, glider)
		return g
	})
	core.Register("rpentomino", func(cfg map[string]string) *life.Grid {
		return centered(FromMap(cfg), rPentomino)
	})
}
