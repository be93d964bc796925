package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"validation", ErrValidation},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"too many attempts", ErrTooManyAttempts},
		{"persistence", ErrPersistence},
		{"confirmation", ErrConfirmationRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestValidationErrorMatchesSentinel(t *testing.T) {
	verr := NewValidationError("email", "must be a valid address")
	verr.Add("name", "is required")

	wrapped := fmt.Errorf("submit: %w", verr)
	if !stdErrors.Is(wrapped, ErrValidation) {
		t.Fatalf("expected wrapped validation error to match ErrValidation")
	}

	var target *ValidationError
	if !stdErrors.As(wrapped, &target) {
		t.Fatalf("expected errors.As to extract ValidationError")
	}
	if len(target.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(target.Fields))
	}
	want := "validation failed: email: must be a valid address; name: is required"
	if target.Error() != want {
		t.Errorf("unexpected message %q", target.Error())
	}
}

func TestValidationErrorEmpty(t *testing.T) {
	var nilErr *ValidationError
	if !nilErr.Empty() {
		t.Errorf("nil validation error must be empty")
	}
	if !(&ValidationError{}).Empty() {
		t.Errorf("zero validation error must be empty")
	}
	if NewValidationError("x", "y").Empty() {
		t.Errorf("populated validation error must not be empty")
	}
}

func TestPersistenceErrorWrapsCause(t *testing.T) {
	cause := stdErrors.New("connection reset")
	err := NewPersistenceError("insert order", cause)

	if !stdErrors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence match")
	}
	if !stdErrors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	var perr *PersistenceError
	if !stdErrors.As(err, &perr) || perr.Op != "insert order" {
		t.Fatalf("expected op to be preserved, got %+v", perr)
	}
	if NewPersistenceError("noop", nil) != nil {
		t.Fatalf("expected nil for nil cause")
	}
}
