package bitcode

import (
	"go.uber.org/zap"

	bcerrors "github.com/wippyai/llvm-bitcode/errors"

	"github.com/wippyai/llvm-bitcode/bitcode/internal/binary"
)

// RawContainer is a bare bitstream with no wrapper. Payload holds every
// byte after the magic.
type RawContainer struct {
	src        *binary.Reader
	fullStream lazyBytes
	payload    []byte
}

// newRawContainer reads the remainder of r, which must be positioned
// immediately after the magic.
func newRawContainer(r *binary.Reader) (*RawContainer, error) {
	pos, n := r.Position(), r.Remaining()
	payload, err := r.ReadBytes(n)
	if err != nil {
		return nil, rangeError(bcerrors.PhaseDecode, pathPayload, pos, n, r.Size(), err)
	}
	return &RawContainer{src: r, payload: payload}, nil
}

// Kind implements Container.
func (c *RawContainer) Kind() ContainerKind {
	return KindRaw
}

// Payload returns the bytes following the magic.
func (c *RawContainer) Payload() []byte {
	return c.payload
}

// Bitstream implements Container. It returns Payload and never fails.
func (c *RawContainer) Bitstream() ([]byte, error) {
	return c.payload, nil
}

// FullStream returns the whole source, magic included. It is read on
// first call and cached.
func (c *RawContainer) FullStream() ([]byte, error) {
	return c.fullStream.get(func() ([]byte, error) {
		n := c.src.Size()
		data, err := c.src.Slice(0, n)
		if err != nil {
			return nil, rangeError(bcerrors.PhaseMaterialize, pathFullStream, 0, n, n, err)
		}
		Logger().Debug("materialized raw full stream", zap.Int64("size", n))
		return data, nil
	})
}

func (c *RawContainer) materialize() error {
	_, err := c.FullStream()
	return err
}
