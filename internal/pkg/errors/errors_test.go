package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew_CapturesStack(t *testing.T) {
	err := Internal("Failed to create job.", stderrors.New("connection refused"))
	if len(err.StackTrace()) == 0 {
		t.Fatalf("expected stack trace")
	}
	if err.Cause() != "connection refused" {
		t.Fatalf("unexpected cause %q", err.Cause())
	}
}

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("Job not found.", nil))
	if TypeOf(wrapped) != ErrTypeNotFound {
		t.Fatalf("expected NOT_FOUND, got %s", TypeOf(wrapped))
	}
	if !Is(wrapped, ErrTypeNotFound) {
		t.Fatalf("expected Is NOT_FOUND")
	}
	if TypeOf(stderrors.New("plain")) != ErrTypeInternal {
		t.Fatalf("plain errors should map to INTERNAL")
	}
	if Is(nil, ErrTypeInternal) {
		t.Fatalf("nil error should not match")
	}
}

func TestCause_WithoutWrapped(t *testing.T) {
	err := InvalidInput("All fields are required.", nil)
	if err.Cause() != "All fields are required." {
		t.Fatalf("unexpected cause %q", err.Cause())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}
