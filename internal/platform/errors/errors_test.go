// internal/platform/errors/errors_test.go
package errors

import (
	stderrors "errors"
	"testing"
)

func TestWrapPreservesChain(t *testing.T) {
	err := Wrap(ErrFieldTooLarge, "probe GF(101^2)")

	if !Is(err, ErrFieldTooLarge) {
		t.Fatal("wrapped sentinel lost")
	}
	if got := err.Error(); got != "probe GF(101^2): field order exceeds configured limit" {
		t.Fatalf("message: %q", got)
	}
	if Wrap(nil, "context") != nil {
		t.Fatal("wrapping nil must return nil")
	}
}

func TestWrapfFormats(t *testing.T) {
	err := Wrapf(ErrFactorBudget, "n=%d after %d restarts", 10403, 24)
	if !Is(err, ErrFactorBudget) {
		t.Fatal("wrapped sentinel lost")
	}
	if got := err.Error(); got != "n=10403 after 24 restarts: factorization budget exhausted" {
		t.Fatalf("message: %q", got)
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Fatal("wrapping nil must return nil")
	}
}

func TestUnwrap(t *testing.T) {
	err := Wrap(ErrUnitOfWork, "m=4")
	if stderrors.Unwrap(err) != ErrUnitOfWork {
		t.Fatal("Unwrap must expose the cause")
	}
}

func TestClassifiers(t *testing.T) {
	if !IsStageFailure(Wrap(ErrStageFailure, "direct")) {
		t.Fatal("stage failure not detected")
	}
	if !IsResourceLimit(ErrFieldTooLarge) || !IsResourceLimit(ErrExtensionField) {
		t.Fatal("resource limits not detected")
	}
	if IsResourceLimit(ErrFactorBudget) {
		t.Fatal("budget misclassified as resource limit")
	}
	if !IsFactorBudget(Wrapf(ErrFactorBudget, "n=%d", 91)) {
		t.Fatal("budget not detected through wrap")
	}
}

func TestJoinDiscardsNils(t *testing.T) {
	if Join(nil, nil) != nil {
		t.Fatal("all-nil join must be nil")
	}
	err := Join(ErrStageFailure, nil, ErrFieldTooLarge)
	if !Is(err, ErrStageFailure) || !Is(err, ErrFieldTooLarge) {
		t.Fatal("joined errors not matchable")
	}
}
