package life

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for coordinates outside the board.
	ErrOutOfRange = errors.New("life: coordinate out of range")
	// ErrCorruptData is returned when storage holds no valid value for a cell.
	ErrCorruptData = errors.New("life: corrupt cell data")
)

// Reader is the read-only view of a board shared by every grid source.
type Reader interface {
	// ReadCell reports whether the cell at (x, y) is alive.
	ReadCell(x, y int) (bool, error)
	// ReadNeighbors returns the eight cells around (x, y). Positions off the
	// board are NeighborAbsent.
	ReadNeighbors(x, y int) (Neighbors, error)
	Width() int
	Height() int
}

// OutOfRange builds the error returned for (x, y) on a w by h board.
func OutOfRange(x, y, w, h int) error {
	return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfRange, x, y, w, h)
}

// Scanner walks the current cells of a Reader in row-major order.
type Scanner struct {
	r    Reader
	x, y int

	cx, cy int
	alive  bool
	err    error
}

// Scan returns a Scanner positioned before the first cell of r.
func Scan(r Reader) *Scanner {
	return &Scanner{r: r}
}

// Next advances to the following cell. It returns false once every cell has
// been visited or a read failed.
func (s *Scanner) Next() bool {
	if s.err != nil || s.r.Width() == 0 || s.y >= s.r.Height() {
		return false
	}
	alive, err := s.r.ReadCell(s.x, s.y)
	if err != nil {
		s.err = err
		return false
	}
	s.cx, s.cy, s.alive = s.x, s.y, alive
	s.x++
	if s.x == s.r.Width() {
		s.x = 0
		s.y++
	}
	return true
}

// Cell returns the cell produced by the last call to Next.
func (s *Scanner) Cell() (x, y int, alive bool) { return s.cx, s.cy, s.alive }

// Err returns the read error that stopped the scan, if any.
func (s *Scanner) Err() error { return s.err }

// Collect reads every cell of r into a new Grid.
func Collect(r Reader) (*Grid, error) {
	g := NewGrid(r.Width(), r.Height())
	s := Scan(r)
	for s.Next() {
		x, y, alive := s.Cell()
		g.Set(x, y, alive)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
