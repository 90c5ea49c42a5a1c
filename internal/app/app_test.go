package app

import (
	"errors"
	"testing"
	"time"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/auth"
)

func newTestModel() AppModel {
	client := api.New("http://127.0.0.1:1", time.Second)
	manager := auth.NewManager(client, auth.NewMemoryStorage())
	return New(Deps{Client: client, Manager: manager})
}

func TestViewEnablesFocusReporting(t *testing.T) {
	m := newTestModel()

	v := m.View()
	if !v.AltScreen {
		t.Error("expected alt screen frame")
	}
	// Focus reporting must be on for every frame, otherwise the terminal
	// never delivers the focus events the wake-up refresh check needs.
	if !v.ReportFocus {
		t.Error("expected focus reporting enabled")
	}
}

func TestRefreshFailureResetsToLogin(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(refreshDoneMsg{Err: errors.New("connection refused")})
	if cmd == nil {
		t.Fatal("expected a command after a failed refresh")
	}
	msg := cmd()
	ended, ok := msg.(auth.SessionEndedMsg)
	if !ok {
		t.Fatalf("msg = %T, want auth.SessionEndedMsg", msg)
	}
	if ended.Reason == "" {
		t.Error("expected a session-end reason")
	}
}

func TestStaleRefreshTickIsDropped(t *testing.T) {
	m := newTestModel()

	gen := m.deps.Manager.Generation()
	_, cmd := m.Update(refreshTickMsg{Generation: gen + 1})
	if cmd != nil {
		t.Error("tick from another session generation must be a no-op")
	}
}
