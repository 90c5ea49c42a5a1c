package home

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/auth"
	"github.com/codifymate/caprep/internal/explain"
	"github.com/codifymate/caprep/internal/router"
	"github.com/codifymate/caprep/internal/screen"
	"github.com/codifymate/caprep/internal/screens/concepts"
	"github.com/codifymate/caprep/internal/screens/progress"
	"github.com/codifymate/caprep/internal/screens/quiz"
	"github.com/codifymate/caprep/internal/screens/topics"
	"github.com/codifymate/caprep/internal/store"
	"github.com/codifymate/caprep/internal/ui/components"
	"github.com/codifymate/caprep/internal/ui/layout"
	"github.com/codifymate/caprep/internal/ui/theme"
)

// HomeScreen is the main menu for a signed-in user.
type HomeScreen struct {
	manager *auth.Manager

	menu     components.Menu
	stats    *api.ExamStats
	statsCmd tea.Cmd
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// examStatsMsg carries the historical exam stats shown under the menu.
type examStatsMsg struct {
	Stats *api.ExamStats
	Err   error
}

// New creates the home screen with everything its child screens need.
func New(client *api.Client, manager *auth.Manager, events store.EventRepo, snaps store.SnapshotRepo, explainSvc *explain.Service, examBudget time.Duration) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:  "Practice",
			Detail: "untimed, graded as you go",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: topics.New(client, events)}
				}
			},
		},
		{
			Label:  "Exam Simulation",
			Detail: "timed, graded at the end",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quiz.NewExam(client, events, examBudget)}
				}
			},
		},
		{
			Label:  "Progress",
			Detail: "accuracy, streaks, weak areas",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: progress.New(client, snaps)}
				}
			},
		},
		{
			Label:  "Key Concepts",
			Detail: "AI-explained exam concepts",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: concepts.New(client, explainSvc)}
				}
			},
		},
		{
			Label: "Sign Out",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					manager.Logout()
					return auth.SessionEndedMsg{Reason: "signed out"}
				}
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	h := &HomeScreen{
		manager: manager,
		menu:    components.NewMenu(items),
	}
	h.statsCmd = func() tea.Msg {
		stats, err := client.ExamStats(context.Background())
		return examStatsMsg{Stats: stats, Err: err}
	}
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.statsCmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case examStatsMsg:
		// Stats are decoration; a fetch failure just leaves them off.
		if msg.Err == nil {
			h.stats = msg.Stats
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	greeting := theme.Title.Render("What would you like to study?")
	if username := h.manager.Username(); username != "" {
		greeting = theme.Title.Render(fmt.Sprintf("Welcome back, %s", username))
	}

	sections := []string{greeting, "", h.menu.View()}

	if h.stats != nil && h.stats.TotalAttempts > 0 {
		statsLine := theme.Hint.Render(fmt.Sprintf(
			"Exams: %d taken · %d passed · best %.0f%% · average %.0f%%",
			h.stats.TotalAttempts, h.stats.PassedCount, h.stats.BestScore, h.stats.AverageScore))
		sections = append(sections, "", statsLine)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
