package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/llvm-bitcode/bitcode"
	bcerrors "github.com/wippyai/llvm-bitcode/errors"
)

// DefaultMaxSize bounds the decompressed size of xz inputs.
const DefaultMaxSize int64 = 1 << 30

// Source is an immutable byte image. Close releases any mapping; the bytes
// must not be used afterwards.
type Source struct {
	unmap      func([]byte) error
	path       string
	data       []byte
	mapped     bool
	compressed bool
}

type options struct {
	maxSize    int64
	decompress bool
	mmap       bool
}

// Option configures Open.
type Option func(*options)

// WithDecompress enables or disables transparent xz decompression.
// Enabled by default.
func WithDecompress(enabled bool) Option {
	return func(o *options) { o.decompress = enabled }
}

// WithMmap enables or disables memory mapping. Enabled by default.
func WithMmap(enabled bool) Option {
	return func(o *options) { o.mmap = enabled }
}

// WithMaxSize sets the largest decompressed image accepted.
func WithMaxSize(n int64) Option {
	return func(o *options) { o.maxSize = n }
}

// FromBytes wraps an in-memory buffer. The buffer is not copied.
func FromBytes(data []byte) *Source {
	return &Source{data: data}
}

// Open loads the file at path.
func Open(path string, opts ...Option) (*Source, error) {
	o := options{maxSize: DefaultMaxSize, decompress: true, mmap: true}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, bcerrors.Load("open "+path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, bcerrors.Load("stat "+path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, bcerrors.InvalidInput(bcerrors.PhaseLoad, fmt.Sprintf("%s is not a regular file", path))
	}

	s := &Source{path: path}
	size := info.Size()
	if o.mmap && size > 0 {
		data, unmap, err := mapFile(f, size)
		switch {
		case err == nil:
			s.data, s.unmap, s.mapped = data, unmap, true
		case errors.Is(err, errors.ErrUnsupported):
		default:
			Logger().Debug("mmap failed, reading file", zap.String("path", path), zap.Error(err))
		}
	}
	if !s.mapped {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, bcerrors.Load("read "+path, err)
		}
		s.data = data
	}

	if o.decompress && IsXZ(s.data) {
		plain, err := decompressXZ(s.data, o.maxSize)
		if err != nil {
			_ = s.Close()
			return nil, bcerrors.Load("decompress "+path, err)
		}
		if err := s.Close(); err != nil {
			return nil, bcerrors.Load("unmap "+path, err)
		}
		s.data, s.compressed = plain, true
	}

	Logger().Debug("opened source",
		zap.String("path", path),
		zap.Int("size", len(s.data)),
		zap.Bool("mapped", s.mapped),
		zap.Bool("compressed", s.compressed),
	)
	return s, nil
}

// Bytes returns the image. It must not be modified.
func (s *Source) Bytes() []byte {
	return s.data
}

// Len returns the image length.
func (s *Source) Len() int64 {
	return int64(len(s.data))
}

// ReaderAt returns a random-access reader over the image.
func (s *Source) ReaderAt() io.ReaderAt {
	return bytes.NewReader(s.data)
}

// Path returns the file the source was opened from, or "" for FromBytes.
func (s *Source) Path() string {
	return s.path
}

// Mapped reports whether the image is a live memory mapping.
func (s *Source) Mapped() bool {
	return s.mapped
}

// Compressed reports whether the file was xz compressed on disk.
func (s *Source) Compressed() bool {
	return s.compressed
}

// Digest returns the BLAKE3-256 digest of the image.
func (s *Source) Digest() string {
	return Digest(s.data)
}

// Parse parses the image as a bitcode container. The returned File reads
// from the image, so it must not outlive Close.
func (s *Source) Parse() (*bitcode.File, error) {
	return bitcode.Parse(s.data)
}

// Close releases the mapping, if any. It is safe to call more than once.
func (s *Source) Close() error {
	if !s.mapped {
		return nil
	}
	data, unmap := s.data, s.unmap
	s.data, s.unmap, s.mapped = nil, nil, false
	return unmap(data)
}
