package bitcode

import (
	"sync"

	"github.com/wippyai/llvm-bitcode/bitcode/internal/binary"
)

// File is a parsed bitcode container. Contents is *WrapperFile when Magic
// equals WrapperMagic and *RawContainer otherwise.
type File struct {
	Contents Container
	src      *binary.Reader
	Magic    uint32
}

// Container is the variant selected by the magic number.
type Container interface {
	// Kind reports which variant this is.
	Kind() ContainerKind
	// Bitstream returns the byte range handed to a bitstream decoder.
	Bitstream() ([]byte, error)

	materialize() error
}

// Kind reports the container variant.
func (f *File) Kind() ContainerKind {
	return f.Contents.Kind()
}

// Wrapper returns the wrapper variant, if that is what the file holds.
func (f *File) Wrapper() (*WrapperFile, bool) {
	w, ok := f.Contents.(*WrapperFile)
	return w, ok
}

// Raw returns the raw variant, if that is what the file holds.
func (f *File) Raw() (*RawContainer, bool) {
	r, ok := f.Contents.(*RawContainer)
	return r, ok
}

// Bitstream returns the embedded bitstream payload: the wrapper's bitstream
// range or the raw container's payload.
func (f *File) Bitstream() ([]byte, error) {
	return f.Contents.Bitstream()
}

// Size returns the total length of the byte source.
func (f *File) Size() int64 {
	return f.src.Size()
}

// Materialize evaluates every lazy accessor now. It returns the first
// failure; later calls return the same result.
func (f *File) Materialize() error {
	return f.Contents.materialize()
}

// lazyBytes is a write-once cache cell for a derived byte range. Failures
// are cached as well.
type lazyBytes struct {
	once sync.Once
	data []byte
	err  error
}

func (l *lazyBytes) get(fn func() ([]byte, error)) ([]byte, error) {
	l.once.Do(func() {
		l.data, l.err = fn()
	})
	return l.data, l.err
}
