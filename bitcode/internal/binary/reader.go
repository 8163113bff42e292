package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrNegative is returned when a cursor target or read length is negative.
var ErrNegative = errors.New("negative position or length")

// RangeError reports a read or cursor move that does not fit within the source.
type RangeError struct {
	Offset int64
	Length int64
	Size   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d) exceeds source size %d", e.Offset, e.Offset+e.Length, e.Size)
}

func (e *RangeError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// Reader is a cursor over a random-access byte source of known size.
//
// Sequential reads advance the cursor. Slice reads at an absolute position
// without touching it. A Reader is not safe for concurrent use, but any
// number of goroutines may call Slice as long as none of them moves the
// cursor.
type Reader struct {
	r    io.ReaderAt
	size int64
	pos  int64
}

// NewReader creates a Reader over the first size bytes of r.
func NewReader(r io.ReaderAt, size int64) *Reader {
	return &Reader{r: r, size: size}
}

// NewBytesReader creates a Reader over an in-memory buffer.
func NewBytesReader(data []byte) *Reader {
	return NewReader(bytes.NewReader(data), int64(len(data)))
}

// Position returns the current cursor position.
func (r *Reader) Position() int64 {
	return r.pos
}

// Size returns the total length of the source.
func (r *Reader) Size() int64 {
	return r.size
}

// Remaining returns the number of bytes between the cursor and the end.
func (r *Reader) Remaining() int64 {
	return r.size - r.pos
}

// Reset moves the cursor to an absolute position in [0, Size()].
func (r *Reader) Reset(pos int64) error {
	if pos < 0 {
		return ErrNegative
	}
	if pos > r.size {
		return &RangeError{Offset: pos, Size: r.size}
	}
	r.pos = pos
	return nil
}

// Slice reads n bytes starting at absolute offset off. The cursor is not
// moved.
func (r *Reader) Slice(off, n int64) ([]byte, error) {
	if off < 0 || n < 0 {
		return nil, ErrNegative
	}
	if off > r.size || n > r.size-off {
		return nil, &RangeError{Offset: off, Length: n, Size: r.size}
	}
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	read, err := r.r.ReadAt(buf, off)
	if read == len(buf) {
		return buf, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return nil, err
}

// ReadBytes reads exactly n bytes at the cursor and advances it.
func (r *Reader) ReadBytes(n int64) ([]byte, error) {
	buf, err := r.Slice(r.pos, n)
	if err != nil {
		return nil, err
	}
	r.pos += n
	return buf, nil
}

// ReadU32LE reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadU32LE() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// Sub returns a Reader over [off, off+n) of this source with its own
// cursor at zero. Positions in the returned Reader are relative to off.
func (r *Reader) Sub(off, n int64) (*Reader, error) {
	if off < 0 || n < 0 {
		return nil, ErrNegative
	}
	if off > r.size || n > r.size-off {
		return nil, &RangeError{Offset: off, Length: n, Size: r.size}
	}
	return NewReader(io.NewSectionReader(r.r, off, n), n), nil
}

// ParseError represents an error during binary parsing with position information.
type ParseError struct {
	Err      error
	Field    string
	Position int64
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("bitcode: %s at position %d: %v", e.Field, e.Position, e.Err)
	}
	return fmt.Sprintf("bitcode: at position %d: %v", e.Position, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapError creates a ParseError with the current position.
func (r *Reader) WrapError(field string, err error) error {
	return &ParseError{
		Position: r.pos,
		Field:    field,
		Err:      err,
	}
}
