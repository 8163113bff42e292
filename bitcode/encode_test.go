package bitcode_test

import (
	"bytes"
	"testing"

	"go.uber.org/multierr"

	"github.com/wippyai/llvm-bitcode/bitcode"
	bcerrors "github.com/wippyai/llvm-bitcode/errors"
)

func TestWrapperHeaderEncode(t *testing.T) {
	h := bitcode.WrapperHeader{Version: 1, Offset: 16, Size: 4, Reserved: 0}
	want := []byte{
		0x42, 0x43, 0xC0, 0xDE,
		0x01, 0x00, 0x00, 0x00,
		0x10, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	if got := h.Encode(); !bytes.Equal(got, want) {
		t.Errorf("Encode = %x, want %x", got, want)
	}
}

func TestEncodeWrapperRoundTrip(t *testing.T) {
	payload := []byte("BC\xc0\xde\x35\x14\x00\x00")
	data, err := bitcode.EncodeWrapper(payload)
	if err != nil {
		t.Fatalf("EncodeWrapper: %v", err)
	}
	if len(data) != bitcode.MagicSize+bitcode.WrapperHeaderSize+len(payload) {
		t.Errorf("encoded length = %d", len(data))
	}

	f, err := bitcode.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	w, ok := f.Wrapper()
	if !ok {
		t.Fatal("expected wrapper")
	}
	if w.Header() != (bitcode.WrapperHeader{Version: 1, Offset: 16, Size: uint32(len(payload))}) {
		t.Errorf("Header = %+v", w.Header())
	}
	got, err := w.Bitstream()
	if err != nil || !bytes.Equal(got, payload) {
		t.Errorf("Bitstream = %x, %v", got, err)
	}
}

func TestEncodeWrapperEmpty(t *testing.T) {
	data, err := bitcode.EncodeWrapper(nil)
	if err != nil {
		t.Fatalf("EncodeWrapper: %v", err)
	}
	f, err := bitcode.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	w, _ := f.Wrapper()
	if w.IsSizeValid() {
		t.Error("empty bitstream reported as valid size")
	}
}

func TestWrapperCheck(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		kinds []bcerrors.Kind
	}{
		{
			name: "clean",
			data: wrapper(1, 16, 1, 0, 0xFF),
		},
		{
			name:  "unaligned",
			data:  wrapper(1, 17, 1, 0, 0x00, 0xFF),
			kinds: []bcerrors.Kind{bcerrors.KindInvalidData},
		},
		{
			name:  "empty",
			data:  wrapper(1, 16, 0, 0),
			kinds: []bcerrors.Kind{bcerrors.KindInvalidData},
		},
		{
			name:  "unaligned and out of bounds",
			data:  wrapper(1, 18, 100, 0),
			kinds: []bcerrors.Kind{bcerrors.KindInvalidData, bcerrors.KindOutOfBounds},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := bitcode.Parse(tt.data)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			w, _ := f.Wrapper()
			errs := multierr.Errors(w.Check())
			if len(errs) != len(tt.kinds) {
				t.Fatalf("Check returned %d findings (%v), want %d", len(errs), errs, len(tt.kinds))
			}
			for i, e := range errs {
				if got := bcerrors.KindOf(e); got != tt.kinds[i] {
					t.Errorf("finding %d kind = %q, want %q", i, got, tt.kinds[i])
				}
			}
		})
	}
}
