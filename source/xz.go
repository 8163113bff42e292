package source

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// xzMagic opens every xz stream.
var xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// IsXZ reports whether data starts with the xz stream magic.
func IsXZ(data []byte) bool {
	return bytes.HasPrefix(data, xzMagic)
}

func decompressXZ(data []byte, maxSize int64) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create xz reader: %w", err)
	}
	plain, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read xz stream: %w", err)
	}
	if int64(len(plain)) > maxSize {
		return nil, fmt.Errorf("decompressed size exceeds %d bytes", maxSize)
	}
	return plain, nil
}

// CompressXZ compresses data as a single xz stream.
func CompressXZ(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("create xz writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("write xz stream: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close xz stream: %w", err)
	}
	return buf.Bytes(), nil
}
