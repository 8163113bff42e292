package bitcode

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	bcerrors "github.com/wippyai/llvm-bitcode/errors"

	"github.com/wippyai/llvm-bitcode/bitcode/internal/binary"
)

// WrapperFile is a bitstream embedded in the Bitcode Wrapper.
//
// Offset is relative to the first byte after the magic and Size is the
// bitstream length. Neither is checked at construction.
type WrapperFile struct {
	body      *binary.Reader
	bitstream lazyBytes
	Version   uint32
	Offset    uint32
	Size      uint32
	Reserved  uint32
}

// newWrapperFile reads the wrapper header from r, which must be positioned
// immediately after the magic. The header is read from a view of the rest
// of the source so that Offset resolves against that view.
func newWrapperFile(r *binary.Reader) (*WrapperFile, error) {
	body, err := r.Sub(r.Position(), r.Remaining())
	if err != nil {
		return nil, r.WrapError("wrapper header", err)
	}

	w := &WrapperFile{body: body}
	if w.Version, err = readU32(body, pathVersion); err != nil {
		return nil, err
	}
	if w.Version != WrapperVersion {
		return nil, bcerrors.NotEqual(bcerrors.PhaseValidate, pathVersion, WrapperVersion, w.Version)
	}
	if w.Offset, err = readU32(body, pathOffset); err != nil {
		return nil, err
	}
	if w.Size, err = readU32(body, pathSize); err != nil {
		return nil, err
	}
	if w.Reserved, err = readU32(body, pathReserved); err != nil {
		return nil, err
	}

	// Keep the parent cursor in step with what was consumed.
	if err := r.Reset(r.Position() + body.Position()); err != nil {
		return nil, r.WrapError("wrapper header", err)
	}
	return w, nil
}

// Kind implements Container.
func (w *WrapperFile) Kind() ContainerKind {
	return KindWrapper
}

// Bitstream returns the Size bytes at Offset. The range is read on first
// call and cached; an out-of-range header fails with an out_of_bounds
// error every time.
func (w *WrapperFile) Bitstream() ([]byte, error) {
	return w.bitstream.get(func() ([]byte, error) {
		off, n := w.Range()
		length := w.body.Size()
		if off+n > length {
			return nil, bcerrors.OutOfBounds(bcerrors.PhaseMaterialize, pathBitstream, off, n, length)
		}
		data, err := w.body.Slice(off, n)
		if err != nil {
			return nil, rangeError(bcerrors.PhaseMaterialize, pathBitstream, off, n, length, err)
		}
		Logger().Debug("materialized wrapper bitstream",
			zap.Uint32("offset", w.Offset),
			zap.Uint32("size", w.Size),
		)
		return data, nil
	})
}

// IsOffsetAligned4 reports whether Offset is a multiple of 4.
func (w *WrapperFile) IsOffsetAligned4() bool {
	return w.Offset%4 == 0
}

// IsSizeValid reports whether the bitstream is non-empty and Offset+Size
// does not exceed Length, the region after the magic. The bound is not the
// file size. When it is true, Bitstream does not fail.
func (w *WrapperFile) IsSizeValid() bool {
	off, n := w.Range()
	return n > 0 && off+n <= w.body.Size()
}

// IsVersionSupported reports whether Version is WrapperVersion. A version
// mismatch already fails construction, so this is true for every
// WrapperFile returned by Parse.
func (w *WrapperFile) IsVersionSupported() bool {
	return w.Version == WrapperVersion
}

// Range returns the bitstream's offset and size, widened so that their sum
// cannot overflow.
func (w *WrapperFile) Range() (offset, size int64) {
	return int64(w.Offset), int64(w.Size)
}

// Length returns the length of the region Offset and Size are measured
// against: the source length minus the magic.
func (w *WrapperFile) Length() int64 {
	return w.body.Size()
}

// Header returns the fixed header fields.
func (w *WrapperFile) Header() WrapperHeader {
	return WrapperHeader{
		Version:  w.Version,
		Offset:   w.Offset,
		Size:     w.Size,
		Reserved: w.Reserved,
	}
}

// Check collects the advisory findings about the header into one error,
// or returns nil when the bitstream can be extracted cleanly. Individual
// findings are available through multierr.Errors.
func (w *WrapperFile) Check() error {
	var err error
	if !w.IsOffsetAligned4() {
		err = multierr.Append(err, bcerrors.InvalidData(bcerrors.PhaseValidate, pathOffset,
			fmt.Sprintf("offset %d is not 4-byte aligned", w.Offset)))
	}
	if w.Size == 0 {
		err = multierr.Append(err, bcerrors.InvalidData(bcerrors.PhaseValidate, pathSize, "bitstream is empty"))
	}
	if off, n := w.Range(); off+n > w.body.Size() {
		err = multierr.Append(err, bcerrors.OutOfBounds(bcerrors.PhaseValidate, pathSize, off, n, w.body.Size()))
	}
	return err
}

func (w *WrapperFile) materialize() error {
	_, err := w.Bitstream()
	return err
}
