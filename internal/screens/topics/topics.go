package topics

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/router"
	"github.com/codifymate/caprep/internal/screen"
	"github.com/codifymate/caprep/internal/screens/quiz"
	"github.com/codifymate/caprep/internal/store"
	"github.com/codifymate/caprep/internal/ui/components"
	"github.com/codifymate/caprep/internal/ui/layout"
	"github.com/codifymate/caprep/internal/ui/theme"
)

// TopicsScreen browses the exam topic catalog and starts practice runs.
// Topics drill down into subtopics; either level can launch practice.
type TopicsScreen struct {
	client *api.Client
	events store.EventRepo

	topics  []api.Topic
	loaded  bool
	errMsg  string
	menu    components.Menu
	current *api.Topic
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)

// topicsLoadedMsg carries the fetched topic catalog.
type topicsLoadedMsg struct {
	Topics []api.Topic
	Err    error
}

// openTopicMsg drills down into one topic's subtopics.
type openTopicMsg struct {
	Topic *api.Topic
}

// New creates the topic browser.
func New(client *api.Client, events store.EventRepo) *TopicsScreen {
	return &TopicsScreen{client: client, events: events}
}

func (t *TopicsScreen) Init() tea.Cmd {
	client := t.client
	return func() tea.Msg {
		topics, err := client.Topics(context.Background())
		return topicsLoadedMsg{Topics: topics, Err: err}
	}
}

func (t *TopicsScreen) Title() string {
	if t.current != nil {
		return t.current.Name
	}
	return "Topics"
}

func (t *TopicsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case topicsLoadedMsg:
		if msg.Err != nil {
			t.errMsg = msg.Err.Error()
			return t, nil
		}
		t.topics = msg.Topics
		t.loaded = true
		t.menu = t.topicMenu()
		return t, nil

	case openTopicMsg:
		t.current = msg.Topic
		t.menu = t.subtopicMenu(msg.Topic)
		return t, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			if t.current != nil {
				t.current = nil
				t.menu = t.topicMenu()
				return t, nil
			}
			return t, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	if !t.loaded {
		return t, nil
	}

	var cmd tea.Cmd
	t.menu, cmd = t.menu.Update(msg)
	return t, cmd
}

// topicMenu builds the top-level catalog menu. The detail column shows each
// topic's weight on the real exam.
func (t *TopicsScreen) topicMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(t.topics))
	for i := range t.topics {
		topic := &t.topics[i]

		detail := ""
		if topic.Percentage != "" {
			detail = fmt.Sprintf("%s of exam", topic.Percentage)
		}

		items = append(items, components.MenuItem{
			Label:  topic.Name,
			Detail: detail,
			Action: func() tea.Cmd {
				if len(topic.Subtopics) == 0 {
					return t.startPractice(topic.Code, "")
				}
				return func() tea.Msg {
					return openTopicMsg{Topic: topic}
				}
			},
		})
	}
	return components.NewMenu(items)
}

// subtopicMenu builds the drill-down menu for one topic.
func (t *TopicsScreen) subtopicMenu(topic *api.Topic) components.Menu {
	items := make([]components.MenuItem, 0, len(topic.Subtopics)+1)

	items = append(items, components.MenuItem{
		Label:  "All of " + topic.Name,
		Detail: fmt.Sprintf("%d subtopics", len(topic.Subtopics)),
		Action: func() tea.Cmd {
			return t.startPractice(topic.Code, "")
		},
	})

	for _, sub := range topic.Subtopics {
		sub := sub
		items = append(items, components.MenuItem{
			Label: sub.Name,
			Action: func() tea.Cmd {
				return t.startPractice(topic.Code, sub.Code)
			},
		})
	}
	return components.NewMenu(items)
}

func (t *TopicsScreen) startPractice(topic, subtopic string) tea.Cmd {
	client := t.client
	events := t.events
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quiz.NewPractice(client, events, topic, subtopic)}
	}
}

func (t *TopicsScreen) View(width, height int) string {
	if t.errMsg != "" {
		content := theme.FieldError.Render(t.errMsg) +
			"\n\n" + theme.Hint.Render("Press Esc to go back")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	if !t.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading topics..."))
	}

	heading := theme.Title.Render("Choose a topic to practice")
	if t.current != nil {
		heading = theme.Title.Render(t.current.Name)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, heading, "", t.menu.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
