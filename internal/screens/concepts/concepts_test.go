package concepts

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/explain"
	"github.com/codifymate/caprep/internal/router"
)

// fakeExplainBackend is a scriptable explanation source.
type fakeExplainBackend struct {
	exp   *api.ConceptExplanation
	err   error
	calls int
}

func (f *fakeExplainBackend) ExplainConcept(_ context.Context, topic, subtopic, concept string) (*api.ConceptExplanation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.exp, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func outline() []api.KeyConcept {
	return []api.KeyConcept{
		{ID: 1, Name: "Easement", Topic: "property_ownership", Subtopic: "encumbrances", SubtopicDisplay: "Encumbrances"},
		{ID: 2, Name: "Fee simple", Topic: "property_ownership", Subtopic: "estates", SubtopicDisplay: "Estates"},
	}
}

func TestConceptsScreen_LoadFailure(t *testing.T) {
	c := New(nil, nil)

	scr, _ := c.Update(conceptsLoadedMsg{Err: errors.New("fetch concepts: connection refused")})
	c = scr.(*ConceptsScreen)

	if view := c.View(100, 40); !strings.Contains(view, "connection refused") {
		t.Error("expected the load error in the view")
	}
}

func TestConceptsScreen_EmptyOutline(t *testing.T) {
	c := New(nil, nil)

	scr, _ := c.Update(conceptsLoadedMsg{Concepts: nil})
	c = scr.(*ConceptsScreen)

	if view := c.View(100, 40); !strings.Contains(view, "No key concepts published yet.") {
		t.Error("expected the empty-outline message")
	}
}

func TestConceptsScreen_SelectOpensDialog(t *testing.T) {
	c := New(nil, nil)

	scr, _ := c.Update(conceptsLoadedMsg{Concepts: outline()})
	c = scr.(*ConceptsScreen)

	view := c.View(100, 40)
	if !strings.Contains(view, "Easement") || !strings.Contains(view, "Fee simple") {
		t.Error("expected both concepts in the menu")
	}

	// Move to the second concept and open it.
	scr, _ = c.Update(keyPress('j'))
	c = scr.(*ConceptsScreen)
	_, cmd := c.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", cmd())
	}
	dialog, ok := push.Screen.(*DialogScreen)
	if !ok {
		t.Fatalf("pushed screen = %T, want *DialogScreen", push.Screen)
	}
	if dialog.Title() != "Fee simple" {
		t.Errorf("dialog title = %q", dialog.Title())
	}
}

func TestConceptsScreen_EscapePops(t *testing.T) {
	c := New(nil, nil)

	_, cmd := c.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestDialogScreen_ShowsExplanation(t *testing.T) {
	backend := &fakeExplainBackend{
		exp: &api.ConceptExplanation{
			Concept:           "Easement",
			SimpleExplanation: "A right to use another person's land.",
			KeyPoints:         []string{"Appurtenant easements run with the land."},
			MemoryTricks:      []string{"EASE onto the land."},
			RealWorldExample:  "A shared driveway.",
			ExamTip:           "Identify the dominant tenement.",
		},
	}
	service := explain.NewService(backend, nil, explain.DefaultConfig())
	d := NewDialog(service, outline()[0])

	cmd := d.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	scr, _ := d.Update(cmd())
	d = scr.(*DialogScreen)

	view := d.View(100, 40)
	for _, want := range []string{
		"A right to use another person's land.",
		"Key points",
		"Memory tricks",
		"Real-world example",
		"Identify the dominant tenement.",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDialogScreen_RetryAfterFailure(t *testing.T) {
	backend := &fakeExplainBackend{err: errors.New("explain concept: service unavailable")}
	service := explain.NewService(backend, nil, explain.DefaultConfig())
	d := NewDialog(service, outline()[0])

	scr, _ := d.Update(d.Init()())
	d = scr.(*DialogScreen)
	if view := d.View(100, 40); !strings.Contains(view, "service unavailable") {
		t.Error("expected the failure in the view")
	}

	// The backend recovers; R reloads.
	backend.err = nil
	backend.exp = &api.ConceptExplanation{Concept: "Easement", SimpleExplanation: "A right of use."}

	scr, cmd := d.Update(keyPress('r'))
	d = scr.(*DialogScreen)
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	scr, _ = d.Update(cmd())
	d = scr.(*DialogScreen)

	if view := d.View(100, 40); !strings.Contains(view, "A right of use.") {
		t.Error("expected the recovered explanation")
	}
	if backend.calls != 2 {
		t.Errorf("backend calls = %d, want 2", backend.calls)
	}
}

func TestDialogScreen_DismissKeysPop(t *testing.T) {
	d := NewDialog(nil, outline()[0])

	for _, key := range []tea.KeyPressMsg{
		specialKey(tea.KeyEscape),
		keyPress('q'),
		specialKey(tea.KeyEnter),
	} {
		_, cmd := d.Update(key)
		if cmd == nil {
			t.Fatalf("expected a command for %v", key)
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("key %v: expected PopScreenMsg", key)
		}
	}
}
