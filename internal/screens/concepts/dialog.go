package concepts

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/explain"
	"github.com/codifymate/caprep/internal/router"
	"github.com/codifymate/caprep/internal/screen"
	"github.com/codifymate/caprep/internal/ui/layout"
	"github.com/codifymate/caprep/internal/ui/theme"
)

// DialogScreen shows the structured explanation of one key concept.
type DialogScreen struct {
	service *explain.Service
	concept api.KeyConcept

	explanation *api.ConceptExplanation
	errMsg      string
}

var _ screen.Screen = (*DialogScreen)(nil)
var _ screen.KeyHintProvider = (*DialogScreen)(nil)

// explanationMsg carries the explanation, from the backend or the local
// provider fallback.
type explanationMsg struct {
	Explanation *api.ConceptExplanation
	Err         error
}

// NewDialog creates the explanation dialog for one concept.
func NewDialog(service *explain.Service, concept api.KeyConcept) *DialogScreen {
	return &DialogScreen{service: service, concept: concept}
}

func (d *DialogScreen) Init() tea.Cmd {
	return d.load()
}

func (d *DialogScreen) load() tea.Cmd {
	service := d.service
	concept := d.concept
	return func() tea.Msg {
		exp, err := service.Explain(context.Background(), concept.Topic, concept.Subtopic, concept.Name)
		return explanationMsg{Explanation: exp, Err: err}
	}
}

func (d *DialogScreen) Title() string {
	return d.concept.Name
}

func (d *DialogScreen) KeyHints() []layout.KeyHint {
	if d.errMsg != "" {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (d *DialogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explanationMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.errMsg = ""
		d.explanation = msg.Explanation
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			if d.errMsg != "" {
				d.errMsg = ""
				return d, d.load()
			}
		}
	}

	return d, nil
}

func (d *DialogScreen) View(width, height int) string {
	if d.errMsg != "" {
		content := theme.FieldError.Render(d.errMsg) +
			"\n\n" + theme.Hint.Render("R to retry, Esc to go back")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	if d.explanation == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Thinking about "+d.concept.Name+"..."))
	}

	exp := d.explanation
	bodyWidth := min(width-8, 76)
	wrap := theme.Body.Width(bodyWidth)

	sections := []string{
		theme.Title.Align(lipgloss.Left).Render(d.concept.Name),
		theme.Subtitle.Align(lipgloss.Left).Render(d.concept.SubtopicDisplay),
		"",
		wrap.Render(exp.SimpleExplanation),
	}

	if len(exp.KeyPoints) > 0 {
		sections = append(sections, "", sectionHeading("Key points"))
		for _, point := range exp.KeyPoints {
			sections = append(sections, wrap.Render("• "+point))
		}
	}
	if len(exp.MemoryTricks) > 0 {
		sections = append(sections, "", sectionHeading("Memory tricks"))
		for _, trick := range exp.MemoryTricks {
			sections = append(sections, wrap.Render("• "+trick))
		}
	}
	if exp.RealWorldExample != "" {
		sections = append(sections, "", sectionHeading("Real-world example"),
			wrap.Render(exp.RealWorldExample))
	}
	if exp.ExamTip != "" {
		sections = append(sections, "", sectionHeading("Exam tip"),
			lipgloss.NewStyle().Foreground(theme.Accent).Width(bodyWidth).Render(exp.ExamTip))
	}

	card := theme.Card.Width(min(width-4, 84)).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func sectionHeading(title string) string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(title)
}
