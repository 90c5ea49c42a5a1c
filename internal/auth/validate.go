package auth

import (
	"strings"

	"github.com/codifymate/caprep/internal/api"
)

const minPasswordLength = 8

// ValidateRegistration checks the form locally before any network call.
// Returns nil when the payload is acceptable; otherwise a ValidationError
// with one message per offending field.
func ValidateRegistration(req api.RegisterRequest) error {
	fields := map[string]string{}

	username := strings.TrimSpace(req.Username)
	switch {
	case username == "":
		fields["username"] = "Username is required."
	case len(username) < 3:
		fields["username"] = "Username must be at least 3 characters."
	}

	email := strings.TrimSpace(req.Email)
	switch {
	case email == "":
		fields["email"] = "Email is required."
	case !strings.Contains(email, "@") || !strings.Contains(email, "."):
		fields["email"] = "Enter a valid email address."
	}

	switch {
	case req.Password == "":
		fields["password"] = "Password is required."
	case len(req.Password) < minPasswordLength:
		fields["password"] = "Password must be at least 8 characters."
	}

	if req.Password2 != req.Password {
		fields["password2"] = "Passwords do not match."
	}

	if len(fields) > 0 {
		return &api.ValidationError{Fields: fields}
	}
	return nil
}
