package bitcode

import (
	"math"

	bcerrors "github.com/wippyai/llvm-bitcode/errors"

	"github.com/wippyai/llvm-bitcode/bitcode/internal/binary"
)

// WrapperHeader holds the fixed wrapper fields that follow the magic.
type WrapperHeader struct {
	Version  uint32
	Offset   uint32
	Size     uint32
	Reserved uint32
}

// Encode writes the magic followed by the header fields. The values are
// written as given; no field is validated.
func (h WrapperHeader) Encode() []byte {
	w := binary.NewWriter()
	w.WriteU32LE(WrapperMagic)
	w.WriteU32LE(h.Version)
	w.WriteU32LE(h.Offset)
	w.WriteU32LE(h.Size)
	w.WriteU32LE(h.Reserved)
	return w.Bytes()
}

// EncodeWrapper wraps a bare bitstream in a version 1 Bitcode Wrapper with
// the bitstream placed directly after the header.
func EncodeWrapper(bitstream []byte) ([]byte, error) {
	if uint64(len(bitstream)) > math.MaxUint32-WrapperDefaultOffset {
		return nil, bcerrors.InvalidInput(bcerrors.PhaseEncode, "bitstream too large for a 32-bit wrapper size")
	}
	h := WrapperHeader{
		Version: WrapperVersion,
		Offset:  WrapperDefaultOffset,
		Size:    uint32(len(bitstream)),
	}
	w := binary.NewWriter()
	w.WriteBytes(h.Encode())
	w.WriteBytes(bitstream)
	return w.Bytes(), nil
}
