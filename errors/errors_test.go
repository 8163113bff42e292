package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "validation error",
			err: &Error{
				Phase:    PhaseValidate,
				Kind:     KindNotEqual,
				Path:     []string{"types", "wrapper_file", "seq", "0"},
				Expected: uint32(1),
				Actual:   uint32(2),
			},
			contains: []string{"[validate]", "not_equal", "types.wrapper_file.seq.0", "expected 1 (0x00000001)", "got 2"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindUnderflow,
			},
			contains: []string{"[decode]", "underflow"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "open source",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "invalid_data", "open source", "caused by", "underlying error"},
		},
		{
			name: "values and detail",
			err: &Error{
				Phase:    PhaseValidate,
				Kind:     KindNotEqual,
				Expected: "a",
				Actual:   "b",
				Detail:   "mismatch",
			},
			contains: []string{"expected a, got b - mismatch"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseMaterialize,
		Kind:  KindUnderflow,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause in chain")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseMaterialize,
		Kind:  KindOutOfBounds,
		Path:  []string{"bitstream"},
	}

	if !err.Is(&Error{Phase: PhaseMaterialize, Kind: KindOutOfBounds}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseMaterialize, Kind: KindUnderflow}) {
		t.Error("Is should not match different kind")
	}

	wrapped := fmt.Errorf("parse: %w", err)
	if !errors.Is(wrapped, &Error{Phase: PhaseMaterialize, Kind: KindOutOfBounds}) {
		t.Error("errors.Is should match through fmt wrapping")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseValidate, KindNotEqual).
		Path("types", "wrapper_file").
		Expected(uint32(1)).
		Actual(uint32(7)).
		Value(7).
		Cause(cause).
		Detail("field %s", "version").
		Build()

	if err.Phase != PhaseValidate {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseValidate)
	}
	if err.Kind != KindNotEqual {
		t.Errorf("Kind = %v, want %v", err.Kind, KindNotEqual)
	}
	if len(err.Path) != 2 || err.Path[0] != "types" || err.Path[1] != "wrapper_file" {
		t.Errorf("Path = %v, want [types wrapper_file]", err.Path)
	}
	if err.Expected != uint32(1) || err.Actual != uint32(7) {
		t.Errorf("Expected=%v Actual=%v", err.Expected, err.Actual)
	}
	if err.Value != 7 {
		t.Errorf("Value = %v, want 7", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "field version" {
		t.Errorf("Detail = %q, want 'field version'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("NotEqual", func(t *testing.T) {
		err := NotEqual(PhaseValidate, []string{"version"}, uint32(1), uint32(3))
		if err.Kind != KindNotEqual {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotEqual)
		}
		if err.Expected != uint32(1) || err.Actual != uint32(3) {
			t.Errorf("Expected=%v Actual=%v", err.Expected, err.Actual)
		}
		if !IsValidation(err) {
			t.Error("IsValidation = false")
		}
	})

	t.Run("Underflow", func(t *testing.T) {
		err := Underflow(PhaseDecode, []string{"offset"}, 8, 4, 1)
		if err.Kind != KindUnderflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnderflow)
		}
		if !strings.Contains(err.Detail, "need 4 bytes at position 8, 1 remaining") {
			t.Errorf("Detail = %q", err.Detail)
		}
		if !IsUnderflow(err) {
			t.Error("IsUnderflow = false")
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseMaterialize, []string{"bitstream"}, 16, 100, 20)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if !strings.Contains(err.Detail, "[16, 116)") || !strings.Contains(err.Detail, "20") {
			t.Errorf("Detail = %q", err.Detail)
		}
		if !IsOutOfBounds(fmt.Errorf("wrapped: %w", err)) {
			t.Error("IsOutOfBounds should see through wrapping")
		}
	})

	t.Run("Load", func(t *testing.T) {
		cause := errors.New("boom")
		err := Load("read file", cause)
		if err.Phase != PhaseLoad || !errors.Is(err, cause) {
			t.Errorf("Load = %v", err)
		}
	})
}

func TestConstructorsMatchBuilder(t *testing.T) {
	path := []string{"types", "wrapper_file", "seq", "0"}
	got := NotEqual(PhaseValidate, path, uint32(1), uint32(2))
	want := New(PhaseValidate, KindNotEqual).
		Path(path...).
		Expected(uint32(1)).
		Actual(uint32(2)).
		Value(uint32(2)).
		Build()
	if got.Error() != want.Error() || got.Value != want.Value {
		t.Errorf("NotEqual = %v, builder = %v", got, want)
	}
	if msg := got.Error(); msg != "[validate] not_equal at types.wrapper_file.seq.0: expected 1 (0x00000001), got 2 (0x00000002)" {
		t.Errorf("Error() = %q", msg)
	}

	oob := OutOfBounds(PhaseMaterialize, []string{"bitstream"}, 16, 9, 18)
	if oob.Detail != "range [16, 25) exceeds stream length 18" || oob.Value != int64(25) {
		t.Errorf("OutOfBounds = %+v", oob)
	}

	load := Load("read file", nil)
	if load.Phase != PhaseLoad || load.Kind != KindInvalidData || load.Detail != "read file" {
		t.Errorf("Load = %+v", load)
	}
}

func TestKindOf(t *testing.T) {
	if k := KindOf(errors.New("plain")); k != "" {
		t.Errorf("KindOf(plain) = %q, want empty", k)
	}
	if IsValidation(nil) || IsUnderflow(nil) || IsOutOfBounds(nil) {
		t.Error("predicates should be false for nil")
	}
	err := InvalidData(PhaseDecode, nil, "bad")
	if k := KindOf(err); k != KindInvalidData {
		t.Errorf("KindOf = %q, want %q", k, KindInvalidData)
	}
}
