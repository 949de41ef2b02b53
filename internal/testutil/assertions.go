package testutil

import (
	"errors"
	"testing"

	apperrors "spendwise/internal/errors"
)

// AssertAppError fails unless err carries an *AppError with the given code.
func AssertAppError(t *testing.T, err error, code string) {
	t.Helper()

	var appErr *apperrors.AppError
	switch {
	case err == nil:
		t.Fatalf("expected %s, got nil", code)
	case !errors.As(err, &appErr):
		t.Fatalf("expected %s, got %T: %v", code, err, err)
	case appErr.Code != code:
		t.Errorf("expected %s, got %s (%s)", code, appErr.Code, appErr.Message)
	}
}

// AssertNoError stops the test on a non-nil err.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
