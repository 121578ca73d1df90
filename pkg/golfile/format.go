// Package golfile reads and writes boards in the .gol format.
//
// A .gol file starts with a 12 byte header: the ASCII magic "GOFL" followed
// by the board width and height as big-endian uint32 values. The remaining
// width*height bytes are the cells in row-major order, 0 for dead and 1 for
// alive. There is no trailer.
//
// Decode loads a whole board into memory. Reader serves cells straight from a
// seekable stream through a small sliding window, so boards far larger than
// memory can be stepped with EncodeTransition.
package golfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"gol/pkg/life"
)

const (
	// Magic identifies a .gol stream.
	Magic = "GOFL"
	// HeaderSize is the length of the magic plus both dimensions.
	HeaderSize = 12
)

var (
	// ErrInvalidFormat is returned when a stream does not start with a .gol header.
	ErrInvalidFormat = errors.New("golfile: invalid format")
	// ErrIO wraps failures of the underlying stream.
	ErrIO = errors.New("golfile: i/o failure")
)

func ioError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}

// Header holds the board dimensions stored at the start of a .gol stream.
type Header struct {
	Width  uint32
	Height uint32
}

// HeaderFor returns the header of a w by h board.
func HeaderFor(w, h int) (Header, error) {
	if w < 0 || h < 0 || uint64(w) > math.MaxUint32 || uint64(h) > math.MaxUint32 {
		return Header{}, fmt.Errorf("%w: %dx%d board does not fit the header", ErrInvalidFormat, w, h)
	}
	return Header{Width: uint32(w), Height: uint32(h)}, nil
}

// Cells returns the number of payload bytes that follow the header.
func (h Header) Cells() int64 { return int64(h.Width) * int64(h.Height) }

// ReadHeader consumes and validates a header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, fmt.Errorf("%w: short header", ErrInvalidFormat)
		}
		return Header{}, ioError("read header", err)
	}
	if string(buf[:4]) != Magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", ErrInvalidFormat, buf[:4])
	}
	return Header{
		Width:  binary.BigEndian.Uint32(buf[4:8]),
		Height: binary.BigEndian.Uint32(buf[8:12]),
	}, nil
}

// WriteTo writes the header to w.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	var buf [HeaderSize]byte
	copy(buf[:4], Magic)
	binary.BigEndian.PutUint32(buf[4:8], h.Width)
	binary.BigEndian.PutUint32(buf[8:12], h.Height)
	n, err := w.Write(buf[:])
	if err != nil {
		return int64(n), ioError("write header", err)
	}
	return int64(n), nil
}

// Encode writes g to w as a .gol stream.
func Encode(w io.Writer, g *life.Grid) error {
	h, err := HeaderFor(g.Width(), g.Height())
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if _, err := h.WriteTo(bw); err != nil {
		return err
	}
	if _, err := bw.Write(g.Cells()); err != nil {
		return ioError("write cells", err)
	}
	if err := bw.Flush(); err != nil {
		return ioError("flush", err)
	}
	return nil
}

// cellSource is satisfied by life.Scanner and life.Transition.
type cellSource interface {
	Next() bool
	Cell() (x, y int, alive bool)
	Err() error
}

// EncodeReader streams the current cells of r to w without materializing
// the board.
func EncodeReader(w io.Writer, r life.Reader) error {
	return encodeCells(w, r.Width(), r.Height(), life.Scan(r))
}

// EncodeTransition streams the next generation of r to w. Only one cell of
// the new generation is held in memory at a time.
func EncodeTransition(w io.Writer, r life.Reader) error {
	return encodeCells(w, r.Width(), r.Height(), life.NewTransition(r))
}

func encodeCells(w io.Writer, width, height int, src cellSource) error {
	h, err := HeaderFor(width, height)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if _, err := h.WriteTo(bw); err != nil {
		return err
	}
	var written int64
	for src.Next() {
		_, _, alive := src.Cell()
		var b byte
		if alive {
			b = 1
		}
		if err := bw.WriteByte(b); err != nil {
			return ioError("write cells", err)
		}
		written++
	}
	if err := src.Err(); err != nil {
		return err
	}
	if written != h.Cells() {
		return fmt.Errorf("%w: wrote %d of %d cells", life.ErrCorruptData, written, h.Cells())
	}
	if err := bw.Flush(); err != nil {
		return ioError("flush", err)
	}
	return nil
}

// Decode reads a complete .gol stream into memory.
func Decode(r io.Reader) (*life.Grid, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	w, ht := int(h.Width), int(h.Height)
	g := life.NewGrid(w, ht)
	row := make([]byte, w)
	for y := 0; y < ht; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, ioError(fmt.Sprintf("read row %d", y), err)
		}
		for x, b := range row {
			switch b {
			case 0:
			case 1:
				g.Set(x, y, true)
			default:
				return nil, fmt.Errorf("%w: byte %d at (%d,%d)", life.ErrCorruptData, b, x, y)
			}
		}
	}
	return g, nil
}
