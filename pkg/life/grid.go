package life

import (
	"slices"

	"gol/pkg/core"
)

// Grid is an in-memory board with non-wrapping edges.
type Grid struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// NewGrid returns an all-dead board with the provided dimensions.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([]uint8, w*h)
	return &Grid{w: w, h: h, cur: cells}
}

// FromRows builds a Grid from nested rows. The width is taken from the first
// row; missing cells in shorter rows stay dead.
func FromRows(rows [][]bool) *Grid {
	w := 0
	if len(rows) > 0 {
		w = len(rows[0])
	}
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		for x := 0; x < w && x < len(row); x++ {
			g.Set(x, y, row[x])
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the row-major 0/1 cell values.
func (g *Grid) Cells() []uint8 { return g.cur }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// Alive reports whether (x, y) is alive. Off-board cells are dead.
func (g *Grid) Alive(x, y int) bool {
	return g.inBounds(x, y) && g.cur[g.Index(x, y)] == 1
}

// Set changes the state of (x, y). Off-board writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.inBounds(x, y) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.cur[g.Index(x, y)] = v
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.cur {
		n += int(v)
	}
	return n
}

// Equal reports whether both boards have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.w == o.w && g.h == o.h && slices.Equal(g.cur, o.cur)
}

// Reset randomizes the board using the provided seed. density is the
// probability of a cell starting alive.
func (g *Grid) Reset(seed int64, density float64) {
	core.FillDensity(core.NewRNG(seed).Source(), g.cur, density)
}

// ReadCell implements Reader.
func (g *Grid) ReadCell(x, y int) (bool, error) {
	if !g.inBounds(x, y) {
		return false, OutOfRange(x, y, g.w, g.h)
	}
	return g.cur[g.Index(x, y)] == 1, nil
}

// ReadNeighbors implements Reader.
func (g *Grid) ReadNeighbors(x, y int) (Neighbors, error) {
	var n Neighbors
	if !g.inBounds(x, y) {
		return n, OutOfRange(x, y, g.w, g.h)
	}
	for i, c := range NeighborCoords(x, y) {
		if c.Valid && g.inBounds(c.X, c.Y) {
			n[i] = NeighborOf(g.cur[g.Index(c.X, c.Y)] == 1)
		}
	}
	return n, nil
}

// Step advances the board by one generation.
func (g *Grid) Step() {
	if len(g.nxt) != len(g.cur) {
		g.nxt = make([]uint8, len(g.cur))
	}
	t := NewTransition(g)
	for t.Next() {
		x, y, alive := t.Cell()
		idx := g.Index(x, y)
		g.nxt[idx] = 0
		if alive {
			g.nxt[idx] = 1
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

var _ Reader = (*Grid)(nil)
