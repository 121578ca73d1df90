package golfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gol/pkg/life"
)

const (
	// DefaultCapacity is the window budget, in cells, used by NewReader.
	DefaultCapacity = 3000
	// minCapacity fits one 3x3 stencil.
	minCapacity = 9
)

// Window cell states. stateUnset never leaves the Reader.
const (
	stateDead  uint8 = 0
	stateAlive uint8 = 1
	stateUnset uint8 = 2
)

// Reader serves cells of a .gol stream through a fixed-size window so that
// boards much larger than memory can be read with stencil access. The window
// is a rectangle of the board anchored at a cursor; it is refilled in place
// whenever a requested cell and its neighbors are not all inside it.
//
// A Reader owns its stream and is not safe for concurrent use.
type Reader struct {
	rs     io.ReadSeeker
	closer io.Closer
	base   int64

	width, height int
	bufW, bufH    int
	buf           []uint8
	scratch       []byte

	cursorX, cursorY int
	cursorSet        bool

	reads int
}

// NewReader returns a Reader over rs with the default window budget.
func NewReader(rs io.ReadSeeker) (*Reader, error) {
	return NewReaderSize(rs, DefaultCapacity)
}

// NewReaderSize returns a Reader over rs whose window holds at most
// maxCapacity cells. rs must be positioned at the start of a .gol header.
//
// When at least three full rows fit in the budget the window spans the whole
// width and as many rows as fit. Otherwise it is three rows of
// maxCapacity/3 columns, the least needed to see every neighbor of a row.
func NewReaderSize(rs io.ReadSeeker, maxCapacity int) (*Reader, error) {
	base, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, ioError("locate header", err)
	}
	h, err := ReadHeader(rs)
	if err != nil {
		return nil, err
	}
	if maxCapacity < minCapacity {
		maxCapacity = minCapacity
	}

	r := &Reader{
		rs:     rs,
		base:   base,
		width:  int(h.Width),
		height: int(h.Height),
	}
	if r.width > 0 && r.height > 0 {
		if maxCapacity/r.width >= 3 {
			r.bufW, r.bufH = r.width, maxCapacity/r.width
		} else {
			r.bufW, r.bufH = maxCapacity/3, 3
		}
		r.bufH = min(r.bufH, r.height)
	}
	r.buf = make([]uint8, r.bufW*r.bufH)
	r.scratch = make([]byte, r.bufW)
	r.clear()
	return r, nil
}

// Open opens the .gol file at path. The returned Reader closes the file on Close.
func Open(path string, maxCapacity int) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", err)
	}
	r, err := NewReaderSize(f, maxCapacity)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.closer = f
	return r, nil
}

// Close releases the stream if the Reader opened it.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// Width returns the board width from the header.
func (r *Reader) Width() int { return r.width }

// Height returns the board height from the header.
func (r *Reader) Height() int { return r.height }

// BufferSize returns the window dimensions in cells.
func (r *Reader) BufferSize() (w, h int) { return r.bufW, r.bufH }

// Cursor returns the board coordinate of the window's top-left cell. ok is
// false until the first cell has been read.
func (r *Reader) Cursor() (x, y int, ok bool) { return r.cursorX, r.cursorY, r.cursorSet }

// Reads returns how many row segments have been read from the stream.
func (r *Reader) Reads() int { return r.reads }

// ReadCell implements life.Reader.
func (r *Reader) ReadCell(x, y int) (bool, error) {
	if !r.onBoard(x, y) {
		return false, life.OutOfRange(x, y, r.width, r.height)
	}
	bx, by, err := r.locate(x, y)
	if err != nil {
		return false, err
	}
	switch r.state(bx, by) {
	case stateAlive:
		return true, nil
	case stateDead:
		return false, nil
	}
	return false, r.corrupt(x, y)
}

// ReadNeighbors implements life.Reader. Neighbors past the board edges are
// absent; a neighbor on the board that the window cannot supply is reported
// as life.ErrCorruptData, exactly like ReadCell.
func (r *Reader) ReadNeighbors(x, y int) (life.Neighbors, error) {
	var n life.Neighbors
	if !r.onBoard(x, y) {
		return n, life.OutOfRange(x, y, r.width, r.height)
	}
	if _, _, err := r.locate(x, y); err != nil {
		return n, err
	}
	for i, c := range life.NeighborCoords(x, y) {
		if !c.Valid || c.X >= r.width || c.Y >= r.height {
			continue
		}
		switch r.state(c.X-r.cursorX, c.Y-r.cursorY) {
		case stateAlive:
			n[i] = life.NeighborAlive
		case stateDead:
			n[i] = life.NeighborDead
		default:
			return n, r.corrupt(c.X, c.Y)
		}
	}
	return n, nil
}

func (r *Reader) onBoard(x, y int) bool {
	return x >= 0 && y >= 0 && x < r.width && y < r.height
}

func (r *Reader) corrupt(x, y int) error {
	return fmt.Errorf("%w: no value for (%d,%d) in window at (%d,%d)",
		life.ErrCorruptData, x, y, r.cursorX, r.cursorY)
}

// locate returns the window coordinates of (x, y), reloading the window
// first when the cell or its neighbors are not covered.
func (r *Reader) locate(x, y int) (bx, by int, err error) {
	if !r.contains(x, y) {
		// Back off by one so the new window also covers the neighbors.
		if err := r.load(max(x-1, 0), max(y-1, 0)); err != nil {
			return 0, 0, err
		}
	}
	return x - r.cursorX, y - r.cursorY, nil
}

// contains reports whether the window covers (x, y) and every neighbor of it
// that lies on the board.
func (r *Reader) contains(x, y int) bool {
	if !r.cursorSet {
		return false
	}
	return spanContains(x, r.cursorX, r.bufW, r.width) &&
		spanContains(y, r.cursorY, r.bufH, r.height)
}

// spanContains checks one axis. A coordinate on the board edge only needs to
// be inside the span; an interior one needs a margin of one on both sides.
func spanContains(v, start, size, limit int) bool {
	if v == 0 || v == limit-1 {
		return start <= v && v < start+size
	}
	return start < v && v < start+size-1
}

func (r *Reader) state(bx, by int) uint8 {
	if bx < 0 || by < 0 || bx >= r.bufW || by >= r.bufH {
		return stateUnset
	}
	return r.buf[by*r.bufW+bx]
}

func (r *Reader) clear() {
	for i := range r.buf {
		r.buf[i] = stateUnset
	}
}

// load refills the window anchored at (x, y), pulled back so it never runs
// past the far edges of the board.
func (r *Reader) load(x, y int) error {
	x = min(x, max(r.width-r.bufW, 0))
	y = min(y, max(r.height-r.bufH, 0))

	r.cursorSet = false
	r.clear()
	for i := 0; i < r.bufH; i++ {
		if y+i >= r.height {
			break
		}
		if err := r.readRow(x, y+i, i); err != nil {
			r.clear()
			return err
		}
	}
	r.cursorX, r.cursorY, r.cursorSet = x, y, true
	return nil
}

// readRow copies board row y, starting at column x, into window row i with a
// single seek and read.
func (r *Reader) readRow(x, y, i int) error {
	n := min(r.width-x, r.bufW)
	off := r.base + HeaderSize + int64(y)*int64(r.width) + int64(x)
	if _, err := r.rs.Seek(off, io.SeekStart); err != nil {
		return ioError(fmt.Sprintf("seek row %d", y), err)
	}
	seg := r.scratch[:n]
	if _, err := io.ReadFull(r.rs, seg); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return ioError(fmt.Sprintf("read row %d", y), err)
	}
	row := r.buf[i*r.bufW : (i+1)*r.bufW]
	for j, b := range seg {
		switch b {
		case 0:
			row[j] = stateDead
		case 1:
			row[j] = stateAlive
		default:
			row[j] = stateUnset
		}
	}
	r.reads++
	return nil
}

var _ life.Reader = (*Reader)(nil)
