package bitcode

import (
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	bcerrors "github.com/wippyai/llvm-bitcode/errors"

	"github.com/wippyai/llvm-bitcode/bitcode/internal/binary"
)

// Parse parses a bitcode container held in memory.
func Parse(data []byte) (*File, error) {
	return decode(binary.NewBytesReader(data))
}

// ParseReaderAt parses a bitcode container from the first size bytes of r.
// Lazy accessors keep reading from r, so it must stay valid for the
// lifetime of the returned File.
func ParseReaderAt(r io.ReaderAt, size int64) (*File, error) {
	if size < 0 {
		return nil, bcerrors.InvalidInput(bcerrors.PhaseDecode, "negative source size")
	}
	return decode(binary.NewReader(r, size))
}

func decode(r *binary.Reader) (*File, error) {
	magic, err := readU32(r, pathMagic)
	if err != nil {
		return nil, err
	}

	f := &File{Magic: magic, src: r}
	switch magic {
	case WrapperMagic:
		w, err := newWrapperFile(r)
		if err != nil {
			return nil, err
		}
		f.Contents = w
	default:
		c, err := newRawContainer(r)
		if err != nil {
			return nil, err
		}
		f.Contents = c
	}

	Logger().Debug("parsed bitcode container",
		zap.Uint32("magic", magic),
		zap.String("kind", f.Contents.Kind().String()),
		zap.Int64("size", r.Size()),
	)
	return f, nil
}

// readU32 reads a fixed little-endian field and reports short reads as an
// underflow tied to the field path.
func readU32(r *binary.Reader, path []string) (uint32, error) {
	pos, remaining := r.Position(), r.Remaining()
	v, err := r.ReadU32LE()
	if err != nil {
		return 0, underflow(bcerrors.PhaseDecode, path, pos, 4, remaining, err)
	}
	return v, nil
}

func underflow(phase bcerrors.Phase, path []string, pos, want, remaining int64, cause error) error {
	e := bcerrors.Underflow(phase, path, pos, want, remaining)
	e.Cause = cause
	return e
}

// rangeError converts a failed positional read into the matching
// structured error.
func rangeError(phase bcerrors.Phase, path []string, off, n, length int64, err error) error {
	var re *binary.RangeError
	if errors.As(err, &re) {
		e := bcerrors.OutOfBounds(phase, path, off, n, length)
		e.Cause = err
		return e
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return underflow(phase, path, off, n, length-off, err)
	}
	return bcerrors.Wrap(phase, bcerrors.KindInvalidData, err, "read "+strings.Join(path, "."))
}
