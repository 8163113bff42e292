package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode      Phase = "decode"      // fixed field reads
	PhaseValidate    Phase = "validate"    // field value constraints
	PhaseMaterialize Phase = "materialize" // lazy byte range extraction
	PhaseEncode      Phase = "encode"      // wrapper encoding
	PhaseLoad        Phase = "load"        // byte source loading
)

// Kind categorizes the error
type Kind string

const (
	KindNotEqual     Kind = "not_equal"
	KindUnderflow    Kind = "underflow"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindInvalidData  Kind = "invalid_data"
	KindInvalidInput Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Expected any
	Actual   any
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	hasValues := e.Expected != nil || e.Actual != nil
	if hasValues {
		b.WriteString(": expected ")
		b.WriteString(formatValue(e.Expected))
		b.WriteString(", got ")
		b.WriteString(formatValue(e.Actual))
	}

	if e.Detail != "" {
		if hasValues {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

func formatValue(v any) string {
	if v == nil {
		return "<none>"
	}
	switch n := v.(type) {
	case uint32:
		return fmt.Sprintf("%d (0x%08X)", n, n)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Expected sets the value the field was required to hold
func (b *Builder) Expected(v any) *Builder {
	b.err.Expected = v
	return b
}

// Actual sets the value that was read
func (b *Builder) Actual(v any) *Builder {
	b.err.Actual = v
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotEqual creates a structural validation error for a field that must
// hold a fixed value
func NotEqual(phase Phase, path []string, expected, actual any) *Error {
	return New(phase, KindNotEqual).
		Path(path...).
		Expected(expected).
		Actual(actual).
		Value(actual).
		Build()
}

// Underflow creates an error for a read that requests more bytes than remain
func Underflow(phase Phase, path []string, pos int64, want, remaining int64) *Error {
	return New(phase, KindUnderflow).
		Path(path...).
		Value(want).
		Detail("need %d bytes at position %d, %d remaining", want, pos, remaining).
		Build()
}

// OutOfBounds creates an error for a byte range that does not fit the source
func OutOfBounds(phase Phase, path []string, offset, size, length int64) *Error {
	return New(phase, KindOutOfBounds).
		Path(path...).
		Value(offset+size).
		Detail("range [%d, %d) exceeds stream length %d", offset, offset+size, length).
		Build()
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return New(phase, KindInvalidData).Path(path...).Detail("%s", detail).Build()
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return New(phase, KindInvalidInput).Detail("%s", detail).Build()
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return New(phase, kind).Cause(cause).Detail("%s", detail).Build()
}

// Load creates a byte source loading error
func Load(detail string, cause error) *Error {
	return Wrap(PhaseLoad, KindInvalidData, cause, detail)
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsValidation reports whether err is a structural validation failure.
func IsValidation(err error) bool { return KindOf(err) == KindNotEqual }

// IsUnderflow reports whether err is a short read.
func IsUnderflow(err error) bool { return KindOf(err) == KindUnderflow }

// IsOutOfBounds reports whether err is a byte range bounds failure.
func IsOutOfBounds(err error) bool { return KindOf(err) == KindOutOfBounds }
