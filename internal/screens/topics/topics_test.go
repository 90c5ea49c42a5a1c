package topics

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testCatalog() []api.Topic {
	return []api.Topic{
		{
			Code:       "practice-of-real-estate",
			Name:       "Practice of Real Estate",
			Percentage: "25%",
			Subtopics: []api.Subtopic{
				{Code: "trust-accounts", Name: "Trust Accounts"},
				{Code: "fair-housing", Name: "Fair Housing"},
			},
		},
		{
			Code:       "contracts",
			Name:       "Contracts",
			Percentage: "18%",
		},
	}
}

func loadedTopics(t *testing.T) *TopicsScreen {
	t.Helper()
	ts := New(nil, nil)
	scr, _ := ts.Update(topicsLoadedMsg{Topics: testCatalog()})
	loaded := scr.(*TopicsScreen)
	if !loaded.loaded {
		t.Fatal("expected catalog to load")
	}
	return loaded
}

func TestTopicsScreen_LoadFailure(t *testing.T) {
	ts := New(nil, nil)
	scr, _ := ts.Update(topicsLoadedMsg{Err: errors.New("connection refused")})
	loaded := scr.(*TopicsScreen)

	if loaded.errMsg == "" {
		t.Error("expected error state")
	}
	_, cmd := loaded.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Error("expected a command to leave the screen")
	}
}

func TestTopicsScreen_DrillDown(t *testing.T) {
	ts := loadedTopics(t)

	// Selecting a topic with subtopics opens its drill-down menu.
	scr, cmd := ts.Update(specialKey(tea.KeyEnter))
	loaded := scr.(*TopicsScreen)
	if cmd == nil {
		t.Fatal("expected a drill-down command")
	}
	scr, _ = loaded.Update(cmd())
	loaded = scr.(*TopicsScreen)

	if loaded.current == nil || loaded.current.Name != "Practice of Real Estate" {
		t.Fatal("expected the selected topic to open")
	}
	if len(loaded.menu.Items) != 3 {
		t.Errorf("menu items = %d, want all-of entry plus 2 subtopics", len(loaded.menu.Items))
	}
	if !strings.Contains(loaded.menu.Items[0].Label, "All of") {
		t.Errorf("first item = %q, want the whole-topic entry", loaded.menu.Items[0].Label)
	}

	// Esc goes back up a level, not off the screen.
	scr, cmd = loaded.Update(specialKey(tea.KeyEscape))
	loaded = scr.(*TopicsScreen)
	if cmd != nil {
		t.Error("expected no navigation command when leaving the drill-down")
	}
	if loaded.current != nil {
		t.Error("expected the drill-down to close")
	}
}

func TestTopicsScreen_LeafTopicStartsPractice(t *testing.T) {
	ts := loadedTopics(t)

	// Move to the topic without subtopics and select it.
	scr, _ := ts.Update(keyPress('j'))
	loaded := scr.(*TopicsScreen)
	_, cmd := loaded.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command to start practice")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.PushScreenMsg", msg)
	}
	if push.Screen.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", push.Screen.Title(), "Practice")
	}
}

func TestTopicsScreen_TitleFollowsDrillDown(t *testing.T) {
	ts := loadedTopics(t)
	if ts.Title() != "Topics" {
		t.Errorf("Title = %q, want %q", ts.Title(), "Topics")
	}

	scr, _ := ts.Update(openTopicMsg{Topic: &ts.topics[0]})
	loaded := scr.(*TopicsScreen)
	if loaded.Title() != "Practice of Real Estate" {
		t.Errorf("Title = %q, want topic name", loaded.Title())
	}
}
