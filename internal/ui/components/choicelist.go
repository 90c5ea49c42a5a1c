package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codifymate/caprep/internal/ui/theme"
)

// ChoiceList is a four-choice answer selector. Unlike a quiz with locally
// known answers, correctness is only revealed after the server grades the
// choice, so the list starts neutral and is colored by Reveal.
type ChoiceList struct {
	Prompt  string
	Choices []string

	Cursor      int
	ChosenIndex int
	Revealed    bool

	correctIndex int
}

var choiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// NewChoiceList creates a choice list with nothing chosen.
func NewChoiceList(prompt string, choices []string) ChoiceList {
	return ChoiceList{
		Prompt:       prompt,
		Choices:      choices,
		ChosenIndex:  -1,
		correctIndex: -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Choosing is left to the parent screen
// so practice and exam flows can react differently to enter.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Choices)-1 {
			c.Cursor++
		}
	case "a", "b", "c", "d":
		i := int(kmsg.String()[0] - 'a')
		if i < len(c.Choices) {
			c.Cursor = i
		}
	}

	return c, nil
}

// Choose marks the choice under the cursor as the answer and returns it.
func (c *ChoiceList) Choose() string {
	c.ChosenIndex = c.Cursor
	return c.Choices[c.Cursor]
}

// SetChosen restores a previously saved answer by value. Unknown values
// leave the list unanswered.
func (c *ChoiceList) SetChosen(answer string) {
	for i, choice := range c.Choices {
		if choice == answer {
			c.ChosenIndex = i
			c.Cursor = i
			return
		}
	}
	c.ChosenIndex = -1
}

// Reveal colors the list with the graded outcome.
func (c *ChoiceList) Reveal(correctAnswer string) {
	c.Revealed = true
	c.correctIndex = -1
	for i, choice := range c.Choices {
		if choice == correctAnswer {
			c.correctIndex = i
			return
		}
	}
}

// Chosen returns the selected answer value, or "" when unanswered.
func (c ChoiceList) Chosen() string {
	if c.ChosenIndex < 0 || c.ChosenIndex >= len(c.Choices) {
		return ""
	}
	return c.Choices[c.ChosenIndex]
}

// IsCorrect reports whether the revealed outcome marked the chosen answer
// correct.
func (c ChoiceList) IsCorrect() bool {
	return c.Revealed && c.ChosenIndex >= 0 && c.ChosenIndex == c.correctIndex
}

// View renders the choice list.
func (c ChoiceList) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(c.Prompt) + "\n\n"

	for i, choice := range c.Choices {
		label := choiceLabels[i%len(choiceLabels)]
		prefix := "  "
		if i == c.Cursor && !c.Revealed {
			prefix = "▸ "
		}

		marker := " "
		if i == c.ChosenIndex {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, choice)

		if c.Revealed {
			switch {
			case i == c.correctIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == c.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
			continue
		}

		if i == c.Cursor {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
