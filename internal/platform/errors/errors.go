// Package errors provides error types and utilities for the factorization
// pipeline. It extends the standard errors package with the pipeline's
// error kinds and wrapping capabilities.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pipeline's failure scenarios
var (
	// ErrStageFailure indicates a stage found no factor; always non-fatal,
	// the orchestrator advances to the next stage
	ErrStageFailure = errors.New("stage found no factor")

	// ErrFieldConstruction indicates a probe could not build GF(p^k)
	// (invalid parameters); caught per task, never propagated
	ErrFieldConstruction = errors.New("cannot construct finite field")

	// ErrFieldTooLarge indicates a field order above the configured ceiling;
	// a deliberate short-circuit, not a true error
	ErrFieldTooLarge = errors.New("field order exceeds configured limit")

	// ErrExtensionField indicates an extension field probe (k > 1), which
	// short-circuits to an empty result
	ErrExtensionField = errors.New("extension fields not supported")

	// ErrFactorBudget indicates the general factorizer exhausted its
	// iteration budget without a full factorization
	ErrFactorBudget = errors.New("factorization budget exhausted")

	// ErrUnitOfWork indicates a single polynomial-factoring or decoding
	// step failed; caught per unit, the surrounding loop continues
	ErrUnitOfWork = errors.New("probe unit of work failed")

	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Is reports whether any error in err's chain matches target.
// Convenience wrapper around errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
// Convenience wrapper around errors.As from the standard library.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns an error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Join returns an error that wraps the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsStageFailure reports whether the error is a non-fatal stage failure.
func IsStageFailure(err error) bool {
	return Is(err, ErrStageFailure)
}

// IsResourceLimit reports whether the error is a deliberate cost
// short-circuit (oversized field or unsupported extension degree).
func IsResourceLimit(err error) bool {
	return Is(err, ErrFieldTooLarge) || Is(err, ErrExtensionField)
}

// IsFactorBudget reports whether the error is a factorizer budget failure.
func IsFactorBudget(err error) bool {
	return Is(err, ErrFactorBudget)
}
