package login

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/auth"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestLoginScreen_Title(t *testing.T) {
	l := New(nil)
	if l.Title() != "Sign In" {
		t.Errorf("Title = %q, want %q", l.Title(), "Sign In")
	}
}

func TestLoginScreen_FocusCycle(t *testing.T) {
	l := New(nil)
	l.Init()

	if l.focused != fieldUsername {
		t.Fatalf("focused = %d, want username", l.focused)
	}

	scr, _ := l.Update(specialKey(tea.KeyTab))
	ls := scr.(*LoginScreen)
	if ls.focused != fieldPassword {
		t.Errorf("focused = %d, want password", ls.focused)
	}

	scr, _ = ls.Update(specialKey(tea.KeyTab))
	ls = scr.(*LoginScreen)
	if ls.focused != fieldUsername {
		t.Errorf("focused = %d, want wrap to username", ls.focused)
	}
}

func TestLoginScreen_EmptySubmit(t *testing.T) {
	l := New(nil)
	l.Init()

	scr, cmd := l.Update(specialKey(tea.KeyEnter))
	ls := scr.(*LoginScreen)

	if cmd != nil {
		t.Error("expected no request for empty credentials")
	}
	if ls.errBanner == "" {
		t.Error("expected a validation banner")
	}
}

func TestLoginScreen_Submit(t *testing.T) {
	l := New(nil)
	l.Init()
	l.username.Model.SetValue("learner")
	l.password.Model.SetValue("hunter2")

	scr, cmd := l.Update(specialKey(tea.KeyEnter))
	ls := scr.(*LoginScreen)

	if cmd == nil {
		t.Fatal("expected a login command")
	}
	if !ls.submitting {
		t.Error("expected submitting state")
	}

	// A second enter while in flight is a no-op.
	_, cmd = ls.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no second request while submitting")
	}
}

func TestLoginScreen_TypingWhileSubmittingIgnored(t *testing.T) {
	l := New(nil)
	l.Init()
	l.username.Model.SetValue("learner")
	l.password.Model.SetValue("hunter2")
	l.Update(specialKey(tea.KeyEnter))

	scr, _ := l.Update(keyPress('x'))
	ls := scr.(*LoginScreen)
	if got := ls.username.Value(); got != "learner" {
		t.Errorf("username = %q, want unchanged", got)
	}
}

func TestLoginScreen_AuthFailure(t *testing.T) {
	l := New(nil)
	l.submitting = true

	scr, cmd := l.Update(loginResultMsg{Err: &api.AuthError{Status: 401}})
	ls := scr.(*LoginScreen)

	if cmd != nil {
		t.Error("expected no command after a failed login")
	}
	if ls.submitting {
		t.Error("expected submitting to clear")
	}
	if ls.errBanner != "Invalid username or password." {
		t.Errorf("banner = %q, want credential failure message", ls.errBanner)
	}
}

func TestLoginScreen_TransportFailure(t *testing.T) {
	l := New(nil)
	l.submitting = true

	scr, _ := l.Update(loginResultMsg{Err: errors.New("connection refused")})
	ls := scr.(*LoginScreen)

	if ls.errBanner != "connection refused" {
		t.Errorf("banner = %q, want raw transport error", ls.errBanner)
	}
}

func TestLoginScreen_Success(t *testing.T) {
	l := New(nil)
	l.submitting = true

	user := &api.User{ID: 1, Username: "learner"}
	_, cmd := l.Update(loginResultMsg{User: user})
	if cmd == nil {
		t.Fatal("expected a session start command")
	}

	msg := cmd()
	started, ok := msg.(auth.SessionStartedMsg)
	if !ok {
		t.Fatalf("msg = %T, want auth.SessionStartedMsg", msg)
	}
	if started.User != user {
		t.Error("expected the logged-in user on the session message")
	}
}

func TestLoginScreen_RegisterShortcut(t *testing.T) {
	l := New(nil)
	_, cmd := l.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Error("expected a command to open registration")
	}
}
