package life

// Transition lazily computes the next generation of a Reader, one cell at a
// time in row-major order. It never holds more than one cell of output, so a
// whole generation can be streamed to a sink without building a new board.
//
// A Transition takes over its Reader: nothing else may read from it until
// the transition is finished. It is single pass; a fresh pass needs a fresh
// Reader.
type Transition struct {
	r    Reader
	x, y int

	cx, cy int
	alive  bool
	err    error
}

// NewTransition returns a Transition positioned before the first cell of r.
func NewTransition(r Reader) *Transition {
	return &Transition{r: r}
}

// Next computes the following cell. It returns false when the board is
// exhausted or a read failed; check Err to tell them apart.
func (t *Transition) Next() bool {
	if t.err != nil || t.r.Width() == 0 || t.y >= t.r.Height() {
		return false
	}
	cell, err := t.r.ReadCell(t.x, t.y)
	if err != nil {
		t.err = err
		return false
	}
	neighbors, err := t.r.ReadNeighbors(t.x, t.y)
	if err != nil {
		t.err = err
		return false
	}
	t.cx, t.cy, t.alive = t.x, t.y, IsAlive(cell, neighbors)

	t.x++
	if t.x == t.r.Width() {
		t.x = 0
		t.y++
	}
	return true
}

// Cell returns the coordinates and next-generation value produced by the
// last call to Next.
func (t *Transition) Cell() (x, y int, alive bool) { return t.cx, t.cy, t.alive }

// Err returns the read error that stopped the transition, if any.
func (t *Transition) Err() error { return t.err }

// Width returns the width of the board being transitioned.
func (t *Transition) Width() int { return t.r.Width() }

// Height returns the height of the board being transitioned.
func (t *Transition) Height() int { return t.r.Height() }
