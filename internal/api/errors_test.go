package api

import (
	"errors"
	"testing"
)

func TestToErrorDetail401(t *testing.T) {
	b := errorBody{"detail": "No active account found with the given credentials"}
	err := b.toError(401)

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %T", err)
	}
	if authErr.Status != 401 {
		t.Errorf("status = %d, want 401", authErr.Status)
	}
	if authErr.Detail == "" {
		t.Error("expected detail to be carried over")
	}
}

func TestToErrorDetail400(t *testing.T) {
	b := errorBody{"detail": "exam already submitted"}
	err := b.toError(400)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Detail != "exam already submitted" {
		t.Errorf("detail = %q", apiErr.Detail)
	}
}

func TestToErrorFieldMap(t *testing.T) {
	b := errorBody{
		"username": []any{"A user with that username already exists."},
		"password": "This password is too short.",
	}
	err := b.toError(400)

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(valErr.Fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(valErr.Fields))
	}
	if valErr.Fields["username"] != "A user with that username already exists." {
		t.Errorf("username message = %q", valErr.Fields["username"])
	}
	if valErr.Fields["password"] != "This password is too short." {
		t.Errorf("password message = %q", valErr.Fields["password"])
	}
}

func TestToErrorNilBody(t *testing.T) {
	var b errorBody

	var authErr *AuthError
	if !errors.As(b.toError(403), &authErr) {
		t.Error("403 with no body should map to AuthError")
	}

	var apiErr *APIError
	if !errors.As(b.toError(500), &apiErr) {
		t.Error("500 with no body should map to APIError")
	}
}

func TestValidationErrorMessageStable(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"email":    "invalid email",
		"username": "taken",
	}}
	want := "validation failed: email: invalid email; username: taken"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
