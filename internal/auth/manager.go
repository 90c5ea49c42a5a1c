package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/codifymate/caprep/internal/api"
)

// ErrNoSession indicates there are no stored credentials to restore.
var ErrNoSession = errors.New("no stored session")

// refreshLead is how long before access-token expiry a proactive refresh
// is scheduled.
const refreshLead = 10 * time.Second

// Manager owns the session lifecycle: restore, login, register, proactive
// and reactive refresh, logout. It implements api.Credentials so the REST
// client can re-authenticate mid-request.
//
// All concurrent refresh triggers (scheduled tick, focus-wake check, 401
// recovery) collapse into a single in-flight token exchange.
type Manager struct {
	client  *api.Client
	storage TokenStorage

	mu         sync.RWMutex
	user       *api.User
	access     string
	refresh    string
	expiry     time.Time
	generation uint64

	group singleflight.Group
}

// NewManager creates a Manager and installs it as the client's credential
// source.
func NewManager(client *api.Client, storage TokenStorage) *Manager {
	m := &Manager{client: client, storage: storage}
	client.SetCredentials(m)
	return m
}

// Initialize restores a persisted session: loads tokens, refreshes the
// access token if it is expired or about to expire, then fetches the
// profile. Returns ErrNoSession when nothing usable is stored.
func (m *Manager) Initialize(ctx context.Context) (*api.User, error) {
	access, okA := m.storage.Get(KeyAccessToken)
	refresh, okR := m.storage.Get(KeyRefreshToken)
	if !okA && !okR {
		return nil, ErrNoSession
	}
	if !okR {
		// An access token without its refresh token cannot outlive expiry.
		m.clearSession()
		return nil, ErrNoSession
	}

	expiry, err := tokenExpiry(access)
	if err != nil {
		// Unreadable access token; the refresh token may still work.
		expiry = time.Time{}
	}

	m.mu.Lock()
	m.access = access
	m.refresh = refresh
	m.expiry = expiry
	m.generation++
	m.mu.Unlock()

	if expiry.IsZero() || time.Until(expiry) <= refreshLead {
		if err := m.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	user, err := m.client.FetchUser(ctx)
	if err != nil {
		var authErr *api.AuthError
		if errors.As(err, &authErr) {
			m.clearSession()
		}
		return nil, err
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	return user, nil
}

// Login exchanges credentials for tokens and loads the profile. On any
// failure no partial session is left behind.
func (m *Manager) Login(ctx context.Context, username, password string) (*api.User, error) {
	pair, err := m.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	m.installSession(pair.Access, pair.Refresh)

	user, err := m.client.FetchUser(ctx)
	if err != nil {
		m.clearSession()
		return nil, err
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	return user, nil
}

// Register validates the form locally, then creates the account and signs
// the new user in. Local validation failures never reach the network.
func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) (*api.User, error) {
	if err := ValidateRegistration(req); err != nil {
		return nil, err
	}

	resp, err := m.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	m.installSession(resp.Access, resp.Refresh)

	user := resp.User
	if user == nil {
		user, err = m.client.FetchUser(ctx)
		if err != nil {
			m.clearSession()
			return nil, err
		}
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	return user, nil
}

// Refresh exchanges the refresh token for a new access token. Concurrent
// callers share one exchange. Any failed exchange, rejected token or
// unreachable backend alike, collapses the session; it is never retried
// automatically.
func (m *Manager) Refresh(ctx context.Context) error {
	_, err, _ := m.group.Do("refresh", func() (any, error) {
		m.mu.RLock()
		refresh := m.refresh
		m.mu.RUnlock()

		if refresh == "" {
			return nil, ErrNoSession
		}

		access, err := m.client.RefreshToken(ctx, refresh)
		if err != nil {
			m.clearSession()
			return nil, err
		}

		expiry, eerr := tokenExpiry(access)
		if eerr != nil {
			expiry = time.Time{}
		}

		m.mu.Lock()
		m.access = access
		m.expiry = expiry
		m.mu.Unlock()
		_ = m.storage.Set(KeyAccessToken, access)
		return nil, nil
	})
	return err
}

// Reauthenticate implements api.Credentials.
func (m *Manager) Reauthenticate(ctx context.Context) error {
	return m.Refresh(ctx)
}

// AccessToken implements api.Credentials.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.access
}

// Logout discards the session and stored credentials.
func (m *Manager) Logout() {
	m.clearSession()
}

// Authenticated reports whether a session is active.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.access != ""
}

// User returns the loaded profile, or nil.
func (m *Manager) User() *api.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Username returns the signed-in username, or "".
func (m *Manager) Username() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return ""
	}
	return m.user.Username
}

// RefreshIn returns the delay until the next proactive refresh should run.
// Zero means refresh immediately.
func (m *Manager) RefreshIn() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.expiry.IsZero() {
		return 0
	}
	d := time.Until(m.expiry) - refreshLead
	if d < 0 {
		return 0
	}
	return d
}

// ExpiresWithin reports whether the access token expires within d. An
// unknown expiry counts as expiring.
func (m *Manager) ExpiresWithin(d time.Duration) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.access == "" {
		return true
	}
	if m.expiry.IsZero() {
		return true
	}
	return time.Until(m.expiry) <= d
}

// Generation increments every time the session identity changes. Scheduled
// work captures the generation it was created under and discards itself
// when the values no longer match.
func (m *Manager) Generation() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generation
}

func (m *Manager) installSession(access, refresh string) {
	expiry, err := tokenExpiry(access)
	if err != nil {
		expiry = time.Time{}
	}

	m.mu.Lock()
	m.access = access
	m.refresh = refresh
	m.expiry = expiry
	m.user = nil
	m.generation++
	m.mu.Unlock()

	_ = m.storage.Set(KeyAccessToken, access)
	_ = m.storage.Set(KeyRefreshToken, refresh)
}

func (m *Manager) clearSession() {
	m.mu.Lock()
	m.access = ""
	m.refresh = ""
	m.expiry = time.Time{}
	m.user = nil
	m.generation++
	m.mu.Unlock()

	_ = m.storage.Remove(KeyAccessToken)
	_ = m.storage.Remove(KeyRefreshToken)
}
