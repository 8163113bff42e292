// Package llvmbitcode reads the container layer of LLVM bitcode files.
//
// The library identifies whether a byte stream is a bare LLVM bitstream or
// one wrapped in the Bitcode Wrapper header, validates the wrapper's fixed
// fields and exposes the embedded bitstream as a byte range for a
// downstream bitstream decoder.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	llvmbitcode/         Root package (documentation only)
//	├── bitcode/         Magic dispatch, wrapper and raw container readers, encoder
//	├── source/          File, mmap and xz byte sources, BLAKE3 digests
//	├── errors/          Structured error types for debugging
//	└── cmd/bcinspect/   Command-line inspector
//
// # Quick Start
//
// Parse a file and hand its bitstream to a decoder:
//
//	src, err := source.Open("module.bc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	f, err := src.Parse()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if w, ok := f.Wrapper(); ok && !w.IsSizeValid() {
//	    log.Fatalf("wrapper range does not fit: %v", w.Check())
//	}
//
//	bitstream, err := f.Bitstream()
//
// # Error Handling
//
// All packages report failures as *errors.Error values carrying a Phase
// and a Kind:
//
//	not_equal      a fixed field holds the wrong value (wrapper version)
//	underflow      a read needs more bytes than remain
//	out_of_bounds  the wrapper's offset/size range exceeds the source
//
// Use errors.IsValidation, errors.IsUnderflow and errors.IsOutOfBounds to
// classify them.
//
// # Logging
//
// The bitcode and source packages log through zap and are silent by
// default. Install a logger with bitcode.SetLogger and source.SetLogger.
package llvmbitcode
