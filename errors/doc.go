// Package errors provides structured error types for the llvm-bitcode library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the field path, expected/actual values and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindNotEqual).
//		Path("types", "wrapper_file", "seq", "0").
//		Expected(1).
//		Actual(2).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotEqual(errors.PhaseValidate, path, uint32(1), version)
//	err := errors.OutOfBounds(errors.PhaseMaterialize, path, offset, size, length)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
