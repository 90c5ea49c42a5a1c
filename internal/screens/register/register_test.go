package register

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/auth"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestRegisterScreen_Title(t *testing.T) {
	r := New(nil)
	if r.Title() != "Create Account" {
		t.Errorf("Title = %q, want %q", r.Title(), "Create Account")
	}
}

func TestRegisterScreen_FocusCycle(t *testing.T) {
	r := New(nil)
	r.Init()

	for want := 1; want < fieldCount; want++ {
		scr, _ := r.Update(specialKey(tea.KeyTab))
		r = scr.(*RegisterScreen)
		if r.focused != want {
			t.Fatalf("focused = %d, want %d", r.focused, want)
		}
	}

	scr, _ := r.Update(specialKey(tea.KeyTab))
	r = scr.(*RegisterScreen)
	if r.focused != fieldUsername {
		t.Errorf("focused = %d, want wrap to username", r.focused)
	}
}

func TestRegisterScreen_EscapeReturns(t *testing.T) {
	r := New(nil)
	_, cmd := r.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Error("expected a command to return to sign in")
	}
}

func TestRegisterScreen_Submit(t *testing.T) {
	r := New(nil)
	r.Init()
	r.inputs[fieldUsername].Model.SetValue("learner")
	r.inputs[fieldEmail].Model.SetValue("learner@example.com")
	r.inputs[fieldPassword].Model.SetValue("hunter2hunter2")
	r.inputs[fieldPassword2].Model.SetValue("hunter2hunter2")

	scr, cmd := r.Update(specialKey(tea.KeyEnter))
	rs := scr.(*RegisterScreen)

	if cmd == nil {
		t.Fatal("expected a registration command")
	}
	if !rs.submitting {
		t.Error("expected submitting state")
	}

	_, cmd = rs.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no second request while submitting")
	}
}

func TestRegisterScreen_FieldErrors(t *testing.T) {
	r := New(nil)
	r.submitting = true

	scr, _ := r.Update(registerResultMsg{Err: &api.ValidationError{
		Fields: map[string]string{
			"username":      "A user with that username already exists.",
			"password":      "This password is too short.",
			"date_of_birth": "Unknown field.",
		},
	}})
	rs := scr.(*RegisterScreen)

	view := rs.View(100, 40)
	if !strings.Contains(view, "A user with that username already exists.") {
		t.Error("expected the username error under its field")
	}
	if !strings.Contains(view, "This password is too short.") {
		t.Error("expected the password error under its field")
	}

	// Messages for fields we do not render fall back to the banner.
	if !strings.Contains(rs.errBanner, "Unknown field.") {
		t.Errorf("banner = %q, want leftover message", rs.errBanner)
	}
}

func TestRegisterScreen_TransportFailure(t *testing.T) {
	r := New(nil)
	r.submitting = true

	scr, _ := r.Update(registerResultMsg{Err: errors.New("connection refused")})
	rs := scr.(*RegisterScreen)

	if rs.errBanner != "connection refused" {
		t.Errorf("banner = %q, want raw transport error", rs.errBanner)
	}
	if rs.submitting {
		t.Error("expected submitting to clear")
	}
}

func TestRegisterScreen_Success(t *testing.T) {
	r := New(nil)
	r.submitting = true

	user := &api.User{ID: 2, Username: "learner"}
	_, cmd := r.Update(registerResultMsg{User: user})
	if cmd == nil {
		t.Fatal("expected a session start command")
	}

	msg := cmd()
	started, ok := msg.(auth.SessionStartedMsg)
	if !ok {
		t.Fatalf("msg = %T, want auth.SessionStartedMsg", msg)
	}
	if started.User != user {
		t.Error("expected the new user on the session message")
	}
}
