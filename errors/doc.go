// Package errors provides structured error types for the driver.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, offending
// value, and cause chain. Conversion outcome codes are deliberately NOT
// errors; this package covers memory faults, binding misuse, and
// configuration problems.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBind, errors.KindInvalidInput).
//		Path("param[3]").
//		Detail("parameter index must be 1-based").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseBuffer, nil, 24, 16)
//	err := errors.NilPointer(errors.PhaseGet, nil, "data buffer")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
