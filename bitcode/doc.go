// Package bitcode reads the container layer of LLVM bitcode files.
//
// A bitcode file is either a bare LLVM bitstream or a bitstream embedded in
// the Bitcode Wrapper, a fixed header that starts with the magic
// 'B' 'C' 0xC0 0xDE (0xDEC04342 read little-endian). This package decides
// which of the two it is looking at, validates the wrapper's fixed fields and
// exposes the embedded bitstream as a byte range for a downstream bitstream
// decoder. It never interprets bit-level content.
//
// # Parsing
//
//	data, _ := os.ReadFile("module.bc")
//	f, err := bitcode.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	switch c := f.Contents.(type) {
//	case *bitcode.WrapperFile:
//	    fmt.Println(c.Version, c.Offset, c.Size)
//	case *bitcode.RawContainer:
//	    fmt.Println(len(c.Payload()))
//	}
//
// Any magic other than the wrapper magic selects RawContainer; unknown
// magics are accepted.
//
// # Wrapper layout
//
// All fields are 32-bit little-endian:
//
//	0   magic     0xDEC04342
//	4   version   must be 1
//	8   offset    start of the bitstream, relative to byte 4 (commonly 16)
//	12  size      bitstream length in bytes
//	16  reserved
//
// Offset and size are only checked when the bitstream is extracted. Callers
// that want to avoid the bounds error can consult IsSizeValid and
// IsOffsetAligned4 first, or run Check for a combined report.
//
// # Lazy extraction
//
// WrapperFile.Bitstream and RawContainer.FullStream read their range on first
// use and cache the result. Extraction reads at an absolute position and
// never moves the read cursor of the underlying source. The returned slices
// are shared with the cache and must not be modified.
package bitcode
