package register

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
	"github.com/codifymate/caprep/internal/ui/components"
	"github.com/codifymate/caprep/internal/ui/layout"
	"github.com/codifymate/caprep/internal/ui/theme"
)

const (
	fieldUsername = iota
	fieldEmail
	fieldPassword
	fieldPassword2
	fieldCount
)

var fieldNames = [fieldCount]string{"username", "email", "password", "password2"}

// RegisterScreen collects a new account and starts a session on success.
type RegisterScreen struct {
	manager *auth.Manager

	inputs  [fieldCount]components.TextInput
	focused int

	submitting bool
	errBanner  string
}

var _ screen.Screen = (*RegisterScreen)(nil)
var _ screen.KeyHintProvider = (*RegisterScreen)(nil)

// registerResultMsg carries the outcome of the registration request.
type registerResultMsg struct {
	User *api.User
	Err  error
}

// New creates a new RegisterScreen.
func New(manager *auth.Manager) *RegisterScreen {
	r := &RegisterScreen{manager: manager}
	r.inputs[fieldUsername] = components.NewTextInput("Username", "at least 3 characters", 150)
	r.inputs[fieldEmail] = components.NewTextInput("Email", "you@example.com", 254)
	r.inputs[fieldPassword] = components.NewPasswordInput("Password", "at least 8 characters", 128)
	r.inputs[fieldPassword2] = components.NewPasswordInput("Confirm password", "same as above", 128)
	return r
}

func (r *RegisterScreen) Init() tea.Cmd {
	return r.inputs[fieldUsername].Focus()
}

func (r *RegisterScreen) Title() string {
	return "Create Account"
}

func (r *RegisterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Create account"},
		{Key: "Esc", Description: "Back to sign in"},
	}
}

func (r *RegisterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		return r.handleResult(msg)

	case tea.KeyMsg:
		if cmd, handled := r.handleKey(msg); handled {
			return r, cmd
		}
	}

	if r.submitting {
		return r, nil
	}

	var cmd tea.Cmd
	r.inputs[r.focused], cmd = r.inputs[r.focused].Update(msg)
	return r, cmd
}

func (r *RegisterScreen) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "down":
		return r.focusField((r.focused + 1) % fieldCount), true
	case "shift+tab", "up":
		return r.focusField((r.focused + fieldCount - 1) % fieldCount), true
	case "enter":
		return r.submit(), true
	case "esc":
		return func() tea.Msg { return router.PopScreenMsg{} }, true
	}
	return nil, false
}

func (r *RegisterScreen) focusField(i int) tea.Cmd {
	r.focused = i
	for j := range r.inputs {
		r.inputs[j].Blur()
	}
	return r.inputs[i].Focus()
}

func (r *RegisterScreen) submit() tea.Cmd {
	if r.submitting {
		return nil
	}

	req := api.RegisterRequest{
		Username:  strings.TrimSpace(r.inputs[fieldUsername].Value()),
		Email:     strings.TrimSpace(r.inputs[fieldEmail].Value()),
		Password:  r.inputs[fieldPassword].Value(),
		Password2: r.inputs[fieldPassword2].Value(),
	}

	r.clearFieldErrors()
	r.errBanner = ""
	r.submitting = true

	manager := r.manager
	return func() tea.Msg {
		user, err := manager.Register(context.Background(), req)
		return registerResultMsg{User: user, Err: err}
	}
}

func (r *RegisterScreen) handleResult(msg registerResultMsg) (screen.Screen, tea.Cmd) {
	r.submitting = false

	if msg.Err != nil {
		var valErr *api.ValidationError
		if errors.As(msg.Err, &valErr) {
			r.applyFieldErrors(valErr)
			return r, nil
		}
		r.errBanner = msg.Err.Error()
		return r, nil
	}

	user := msg.User
	return r, func() tea.Msg {
		return auth.SessionStartedMsg{User: user}
	}
}

func (r *RegisterScreen) clearFieldErrors() {
	for i := range r.inputs {
		r.inputs[i].ClearError()
	}
}

// applyFieldErrors attaches each message to its input. Messages for unknown
// fields fall back to the banner so nothing is silently dropped.
func (r *RegisterScreen) applyFieldErrors(valErr *api.ValidationError) {
	var leftovers []string
	for field, message := range valErr.Fields {
		matched := false
		for i, name := range fieldNames {
			if field == name {
				r.inputs[i].SetError(message)
				matched = true
				break
			}
		}
		if !matched {
			leftovers = append(leftovers, message)
		}
	}
	if len(leftovers) > 0 {
		r.errBanner = strings.Join(leftovers, " ")
	}
}

func (r *RegisterScreen) View(width, height int) string {
	title := theme.Title.Render("Create your account")
	subtitle := theme.Subtitle.Render("Start preparing for the California exam")

	parts := make([]string, 0, fieldCount)
	for i := range r.inputs {
		parts = append(parts, r.inputs[i].View())
	}
	form := strings.Join(parts, "\n\n")

	var status string
	switch {
	case r.submitting:
		status = theme.Hint.Render("Creating account...")
	case r.errBanner != "":
		status = theme.FieldError.Render(r.errBanner)
	}

	card := theme.Card.Width(52).Render(form)

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
