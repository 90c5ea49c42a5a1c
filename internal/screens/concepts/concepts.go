package concepts

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/explain"
	"github.com/codifymate/caprep/internal/router"
	"github.com/codifymate/caprep/internal/screen"
	"github.com/codifymate/caprep/internal/ui/components"
	"github.com/codifymate/caprep/internal/ui/layout"
	"github.com/codifymate/caprep/internal/ui/theme"
)

// ConceptsScreen lists the key-concept outline. Selecting a concept opens
// the AI explanation dialog for it.
type ConceptsScreen struct {
	client  *api.Client
	service *explain.Service

	concepts []api.KeyConcept
	loaded   bool
	errMsg   string
	menu     components.Menu
}

var _ screen.Screen = (*ConceptsScreen)(nil)
var _ screen.KeyHintProvider = (*ConceptsScreen)(nil)

// conceptsLoadedMsg carries the fetched concept outline.
type conceptsLoadedMsg struct {
	Concepts []api.KeyConcept
	Err      error
}

// New creates the key-concept browser.
func New(client *api.Client, service *explain.Service) *ConceptsScreen {
	return &ConceptsScreen{client: client, service: service}
}

func (c *ConceptsScreen) Init() tea.Cmd {
	client := c.client
	return func() tea.Msg {
		concepts, err := client.KeyConcepts(context.Background())
		return conceptsLoadedMsg{Concepts: concepts, Err: err}
	}
}

func (c *ConceptsScreen) Title() string {
	return "Key Concepts"
}

func (c *ConceptsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Explain"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ConceptsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case conceptsLoadedMsg:
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		c.concepts = msg.Concepts
		c.loaded = true
		c.menu = c.buildMenu()
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	if !c.loaded {
		return c, nil
	}

	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *ConceptsScreen) buildMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(c.concepts))
	for _, concept := range c.concepts {
		concept := concept
		items = append(items, components.MenuItem{
			Label:  concept.Name,
			Detail: concept.SubtopicDisplay,
			Action: func() tea.Cmd {
				service := c.service
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: NewDialog(service, concept)}
				}
			},
		})
	}
	return components.NewMenu(items)
}

func (c *ConceptsScreen) View(width, height int) string {
	if c.errMsg != "" {
		content := theme.FieldError.Render(c.errMsg) +
			"\n\n" + theme.Hint.Render("Press Esc to go back")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	if !c.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading key concepts..."))
	}
	if len(c.concepts) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Body.Render("No key concepts published yet."))
	}

	heading := theme.Title.Render("Key concepts")
	content := lipgloss.JoinVertical(lipgloss.Left, heading, "", c.menu.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
