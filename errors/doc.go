// Package errors provides structured error types for the bitspec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the field path, the value and field kinds involved, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCompile, errors.KindInvalidResolution).
//		Path("telemetry", "speed").
//		Value(-0.5).
//		Detail("resolution must be positive").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseEncode, path, "bool", "f64")
//	err := errors.LayoutOverflow(name, 300, 256)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two errors match under errors.Is when their Phase and Kind are equal.
package errors
