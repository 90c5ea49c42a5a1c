package auth

import (
	"errors"
	"testing"

	"github.com/codifymate/caprep/internal/api"
)

func TestValidateRegistration(t *testing.T) {
	valid := api.RegisterRequest{
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "longenough",
		Password2: "longenough",
	}

	tests := []struct {
		name      string
		mutate    func(*api.RegisterRequest)
		wantField string
	}{
		{"valid", func(r *api.RegisterRequest) {}, ""},
		{"missing username", func(r *api.RegisterRequest) { r.Username = "" }, "username"},
		{"short username", func(r *api.RegisterRequest) { r.Username = "ab" }, "username"},
		{"missing email", func(r *api.RegisterRequest) { r.Email = "" }, "email"},
		{"bad email", func(r *api.RegisterRequest) { r.Email = "nope" }, "email"},
		{"short password", func(r *api.RegisterRequest) { r.Password, r.Password2 = "short", "short" }, "password"},
		{"mismatched passwords", func(r *api.RegisterRequest) { r.Password2 = "different1" }, "password2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := ValidateRegistration(req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}

			var valErr *api.ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if valErr.Fields[tt.wantField] == "" {
				t.Errorf("expected message on field %q, got %v", tt.wantField, valErr.Fields)
			}
		})
	}
}
