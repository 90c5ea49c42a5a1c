package auth

import "github.com/codifymate/caprep/internal/api"

// SessionStartedMsg announces a fresh authenticated session. The root model
// reacts by rebuilding the screen stack on top of the home screen.
type SessionStartedMsg struct {
	User *api.User
}

// SessionEndedMsg announces that the session is gone, either through an
// explicit logout or a terminal refresh failure. Everything above the login
// screen is stale once this fires.
type SessionEndedMsg struct {
	Reason string
}
