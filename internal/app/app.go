package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/auth"
	"github.com/codifymate/caprep/internal/explain"
	"github.com/codifymate/caprep/internal/router"
	"github.com/codifymate/caprep/internal/screen"
	"github.com/codifymate/caprep/internal/screens/home"
	"github.com/codifymate/caprep/internal/screens/login"
	"github.com/codifymate/caprep/internal/store"
	"github.com/codifymate/caprep/internal/ui/layout"
)

// focusRefreshWindow is how close to expiry the access token may be when the
// terminal regains focus before an immediate refresh fires.
const focusRefreshWindow = 30 * time.Second

// Deps bundles everything the screens need.
type Deps struct {
	Client     *api.Client
	Manager    *auth.Manager
	Events     store.EventRepo
	Snapshots  store.SnapshotRepo
	Explain    *explain.Service
	ExamBudget time.Duration
}

// AppModel is the root Bubble Tea model. It owns the screen router and the
// session lifecycle: restore on start, proactive token refresh, focus wake
// checks, and the reset-to-login on session loss.
type AppModel struct {
	deps   Deps
	router *router.Router
	width  int
	height int
}

// sessionRestoredMsg carries the result of the startup session restore.
type sessionRestoredMsg struct {
	User *api.User
	Err  error
}

// refreshTickMsg fires when the access token is due for a proactive refresh.
// Generation ties the tick to the session that scheduled it; a stale tick is
// dropped without any network traffic.
type refreshTickMsg struct {
	Generation uint64
}

// refreshDoneMsg carries the outcome of a proactive refresh.
type refreshDoneMsg struct {
	Err error
}

// New creates the root model starting at the login screen.
func New(deps Deps) AppModel {
	return AppModel{
		deps:   deps,
		router: router.New(login.New(deps.Manager)),
	}
}

func (m AppModel) Init() tea.Cmd {
	manager := m.deps.Manager
	return func() tea.Msg {
		user, err := manager.Initialize(context.Background())
		return sessionRestoredMsg{User: user, Err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.FocusMsg:
		// The terminal may have been unfocused past the scheduled refresh.
		if m.deps.Manager.Authenticated() && m.deps.Manager.ExpiresWithin(focusRefreshWindow) {
			return m, m.refreshCmd()
		}
		return m, nil

	case sessionRestoredMsg:
		if msg.Err != nil {
			// No stored session, or the backend rejected it. Either way the
			// login screen is already showing.
			return m, nil
		}
		return m, func() tea.Msg {
			return auth.SessionStartedMsg{User: msg.User}
		}

	case auth.SessionStartedMsg:
		d := m.deps
		cmd := m.router.Reset(home.New(d.Client, d.Manager, d.Events, d.Snapshots, d.Explain, d.ExamBudget))
		return m, tea.Batch(cmd, m.scheduleRefresh())

	case auth.SessionEndedMsg:
		cmd := m.router.Reset(login.New(m.deps.Manager))
		return m, cmd

	case refreshTickMsg:
		// A tick scheduled for an older session is a no-op.
		if msg.Generation != m.deps.Manager.Generation() {
			return m, nil
		}
		return m, m.refreshCmd()

	case refreshDoneMsg:
		return m.handleRefreshDone(msg)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// refreshCmd exchanges the refresh token for a new access token.
func (m AppModel) refreshCmd() tea.Cmd {
	manager := m.deps.Manager
	return func() tea.Msg {
		err := manager.Refresh(context.Background())
		return refreshDoneMsg{Err: err}
	}
}

func (m AppModel) handleRefreshDone(msg refreshDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err == nil {
		return m, m.scheduleRefresh()
	}

	// Any refresh failure is terminal. The manager has already collapsed the
	// session, so the only thing left is the reset to login.
	fmt.Fprintf(os.Stderr, "warning: token refresh failed: %v\n", msg.Err)
	return m, func() tea.Msg {
		return auth.SessionEndedMsg{Reason: "session expired"}
	}
}

// scheduleRefresh arms a tick for just before the access token expires.
func (m AppModel) scheduleRefresh() tea.Cmd {
	manager := m.deps.Manager
	if !manager.Authenticated() {
		return nil
	}

	generation := manager.Generation()
	wait := manager.RefreshIn()
	if wait <= 0 {
		return m.refreshCmd()
	}
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return refreshTickMsg{Generation: generation}
	})
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	// Focus reporting is a per-frame view property. Without it the terminal
	// never sends the focus events the wake-up refresh check relies on.
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.deps.Manager.Username(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(New(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
