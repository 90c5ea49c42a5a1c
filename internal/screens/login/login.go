package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/auth"
	"github.com/codifymate/caprep/internal/router"
	"github.com/codifymate/caprep/internal/screen"
	"github.com/codifymate/caprep/internal/screens/register"
	"github.com/codifymate/caprep/internal/ui/components"
	"github.com/codifymate/caprep/internal/ui/layout"
	"github.com/codifymate/caprep/internal/ui/theme"
)

const (
	fieldUsername = iota
	fieldPassword
	fieldCount
)

// LoginScreen collects credentials and starts a session.
type LoginScreen struct {
	manager *auth.Manager

	username components.TextInput
	password components.TextInput
	focused  int

	submitting bool
	errBanner  string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// loginResultMsg carries the outcome of the login request.
type loginResultMsg struct {
	User *api.User
	Err  error
}

// New creates a new LoginScreen.
func New(manager *auth.Manager) *LoginScreen {
	username := components.NewTextInput("Username", "your username", 150)
	password := components.NewPasswordInput("Password", "your password", 128)

	return &LoginScreen{
		manager:  manager,
		username: username,
		password: password,
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.username.Focus()
}

func (l *LoginScreen) Title() string {
	return "Sign In"
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+R", Description: "Create account"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		return l.handleResult(msg)

	case tea.KeyMsg:
		if cmd, handled := l.handleKey(msg); handled {
			return l, cmd
		}
	}

	if l.submitting {
		return l, nil
	}

	var cmd tea.Cmd
	switch l.focused {
	case fieldUsername:
		l.username, cmd = l.username.Update(msg)
	case fieldPassword:
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l *LoginScreen) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "down":
		return l.focusField((l.focused + 1) % fieldCount), true
	case "shift+tab", "up":
		return l.focusField((l.focused + fieldCount - 1) % fieldCount), true
	case "enter":
		return l.submit(), true
	case "ctrl+r":
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: register.New(l.manager)}
		}, true
	}
	return nil, false
}

func (l *LoginScreen) focusField(i int) tea.Cmd {
	l.focused = i
	l.username.Blur()
	l.password.Blur()
	switch i {
	case fieldUsername:
		return l.username.Focus()
	case fieldPassword:
		return l.password.Focus()
	}
	return nil
}

func (l *LoginScreen) submit() tea.Cmd {
	if l.submitting {
		return nil
	}

	username := strings.TrimSpace(l.username.Value())
	password := l.password.Value()
	if username == "" || password == "" {
		l.errBanner = "Enter your username and password."
		return nil
	}

	l.submitting = true
	l.errBanner = ""

	manager := l.manager
	return func() tea.Msg {
		user, err := manager.Login(context.Background(), username, password)
		return loginResultMsg{User: user, Err: err}
	}
}

func (l *LoginScreen) handleResult(msg loginResultMsg) (screen.Screen, tea.Cmd) {
	l.submitting = false

	if msg.Err != nil {
		var authErr *api.AuthError
		if errors.As(msg.Err, &authErr) {
			l.errBanner = "Invalid username or password."
		} else {
			l.errBanner = msg.Err.Error()
		}
		return l, nil
	}

	user := msg.User
	return l, func() tea.Msg {
		return auth.SessionStartedMsg{User: user}
	}
}

func (l *LoginScreen) View(width, height int) string {
	title := theme.Title.Render("Welcome back")
	subtitle := theme.Subtitle.Render("Sign in to continue studying")

	form := l.username.View() + "\n\n" + l.password.View()

	var status string
	switch {
	case l.submitting:
		status = theme.Hint.Render("Signing in...")
	case l.errBanner != "":
		status = theme.FieldError.Render(l.errBanner)
	}

	card := theme.Card.Width(48).Render(form)

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		subtitle,
		"",
		card,
		"",
		status,
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
