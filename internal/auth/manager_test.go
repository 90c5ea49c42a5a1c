package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/codifymate/caprep/internal/api"
)

type fakeBackend struct {
	mu           sync.Mutex
	refreshCalls int32
	refreshDelay time.Duration
	rejectTokens bool

	accessToken string
	user        api.User
}

func (b *fakeBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(api.EndpointTokenObtain, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "correct-horse" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "No active account found"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.TokenPair{Access: b.accessToken, Refresh: "refresh-token"})
	})

	mux.HandleFunc(api.EndpointTokenRefresh, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.refreshCalls, 1)
		if b.refreshDelay > 0 {
			time.Sleep(b.refreshDelay)
		}
		if b.rejectTokens {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Token is invalid or expired"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access": b.accessToken})
	})

	mux.HandleFunc(api.EndpointUserDetail, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+b.accessToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"})
			return
		}
		_ = json.NewEncoder(w).Encode(b.user)
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		mux.ServeHTTP(w, r)
	})
}

func newTestManager(t *testing.T, b *fakeBackend) (*Manager, *MemoryStorage, func()) {
	t.Helper()
	srv := httptest.NewServer(b.handler(t))
	client := api.New(srv.URL, 5*time.Second)
	storage := NewMemoryStorage()
	return NewManager(client, storage), storage, srv.Close
}

func TestLoginSuccessPersistsTokens(t *testing.T) {
	b := &fakeBackend{
		accessToken: signedToken(t, time.Now().Add(time.Hour)),
		user:        api.User{ID: 7, Username: "ada"},
	}
	m, storage, done := newTestManager(t, b)
	defer done()

	user, err := m.Login(context.Background(), "ada", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "ada" {
		t.Errorf("username = %q", user.Username)
	}
	if !m.Authenticated() {
		t.Error("expected authenticated session")
	}
	if v, ok := storage.Get(KeyAccessToken); !ok || v == "" {
		t.Error("access token not persisted")
	}
	if v, ok := storage.Get(KeyRefreshToken); !ok || v == "" {
		t.Error("refresh token not persisted")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	b := &fakeBackend{accessToken: signedToken(t, time.Now().Add(time.Hour))}
	m, storage, done := newTestManager(t, b)
	defer done()

	_, err := m.Login(context.Background(), "ada", "wrong")

	var authErr *api.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if m.Authenticated() {
		t.Error("failed login must not leave a session")
	}
	if _, ok := storage.Get(KeyAccessToken); ok {
		t.Error("failed login must not persist tokens")
	}
}

func TestRegisterLocalValidationSkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer srv.Close()

	m := NewManager(api.New(srv.URL, time.Second), NewMemoryStorage())

	_, err := m.Register(context.Background(), api.RegisterRequest{
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "short",
		Password2: "short",
	})

	var valErr *api.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Fields["password"] == "" {
		t.Errorf("expected password field message, got %v", valErr.Fields)
	}
}

func TestRefreshCoalescesConcurrentCallers(t *testing.T) {
	b := &fakeBackend{
		accessToken:  signedToken(t, time.Now().Add(time.Hour)),
		refreshDelay: 50 * time.Millisecond,
	}
	m, storage, done := newTestManager(t, b)
	defer done()

	_ = storage.Set(KeyAccessToken, signedToken(t, time.Now().Add(time.Second)))
	_ = storage.Set(KeyRefreshToken, "refresh-token")
	m.mu.Lock()
	m.access, _ = storage.Get(KeyAccessToken)
	m.refresh = "refresh-token"
	m.mu.Unlock()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.Refresh(context.Background()); err != nil {
				t.Errorf("Refresh: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&b.refreshCalls); n != 1 {
		t.Errorf("refresh exchanges = %d, want 1", n)
	}
}

func TestRefreshRejectedCollapsesSession(t *testing.T) {
	b := &fakeBackend{rejectTokens: true}
	m, storage, done := newTestManager(t, b)
	defer done()

	m.installSession(signedToken(t, time.Now().Add(-time.Minute)), "dead-refresh")
	gen := m.Generation()

	err := m.Refresh(context.Background())
	var authErr *api.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if m.Authenticated() {
		t.Error("rejected refresh must clear the session")
	}
	if _, ok := storage.Get(KeyRefreshToken); ok {
		t.Error("rejected refresh must clear stored credentials")
	}
	if m.Generation() == gen {
		t.Error("session collapse must advance the generation")
	}

	// No credentials remain, so a later trigger cannot silently retry the
	// dead token.
	if err := m.Refresh(context.Background()); !errors.Is(err, ErrNoSession) {
		t.Errorf("second refresh = %v, want ErrNoSession", err)
	}
	if n := atomic.LoadInt32(&b.refreshCalls); n != 1 {
		t.Errorf("refresh exchanges = %d, want 1", n)
	}
}

func TestRefreshTransportFailureCollapsesSession(t *testing.T) {
	b := &fakeBackend{accessToken: signedToken(t, time.Now().Add(time.Hour))}
	m, storage, done := newTestManager(t, b)

	m.installSession(signedToken(t, time.Now().Add(-time.Minute)), "refresh-token")
	gen := m.Generation()

	// Kill the backend so the exchange fails before any token verdict.
	done()

	err := m.Refresh(context.Background())
	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if m.Authenticated() {
		t.Error("failed refresh must clear the session")
	}
	if _, ok := storage.Get(KeyRefreshToken); ok {
		t.Error("failed refresh must clear stored credentials")
	}
	if m.Generation() == gen {
		t.Error("session collapse must advance the generation")
	}

	if err := m.Refresh(context.Background()); !errors.Is(err, ErrNoSession) {
		t.Errorf("second refresh = %v, want ErrNoSession", err)
	}
}

func TestInitializeNoStoredSession(t *testing.T) {
	b := &fakeBackend{}
	m, _, done := newTestManager(t, b)
	defer done()

	if _, err := m.Initialize(context.Background()); !errors.Is(err, ErrNoSession) {
		t.Errorf("Initialize = %v, want ErrNoSession", err)
	}
}

func TestInitializeRefreshesExpiredAccess(t *testing.T) {
	fresh := signedToken(t, time.Now().Add(time.Hour))
	b := &fakeBackend{
		accessToken: fresh,
		user:        api.User{ID: 7, Username: "ada"},
	}
	m, storage, done := newTestManager(t, b)
	defer done()

	_ = storage.Set(KeyAccessToken, signedToken(t, time.Now().Add(-time.Minute)))
	_ = storage.Set(KeyRefreshToken, "refresh-token")

	user, err := m.Initialize(context.Background())
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if user.Username != "ada" {
		t.Errorf("username = %q", user.Username)
	}
	if n := atomic.LoadInt32(&b.refreshCalls); n != 1 {
		t.Errorf("refresh exchanges = %d, want 1", n)
	}
	if m.AccessToken() != fresh {
		t.Error("expected refreshed access token in use")
	}
}

func TestInitializeValidAccessSkipsRefresh(t *testing.T) {
	access := signedToken(t, time.Now().Add(time.Hour))
	b := &fakeBackend{
		accessToken: access,
		user:        api.User{ID: 7, Username: "ada"},
	}
	m, storage, done := newTestManager(t, b)
	defer done()

	_ = storage.Set(KeyAccessToken, access)
	_ = storage.Set(KeyRefreshToken, "refresh-token")

	if _, err := m.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if n := atomic.LoadInt32(&b.refreshCalls); n != 0 {
		t.Errorf("refresh exchanges = %d, want 0", n)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	b := &fakeBackend{
		accessToken: signedToken(t, time.Now().Add(time.Hour)),
		user:        api.User{ID: 7, Username: "ada"},
	}
	m, storage, done := newTestManager(t, b)
	defer done()

	if _, err := m.Login(context.Background(), "ada", "correct-horse"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	m.Logout()

	if m.Authenticated() {
		t.Error("expected logged-out state")
	}
	if m.User() != nil {
		t.Error("expected profile cleared")
	}
	if _, ok := storage.Get(KeyAccessToken); ok {
		t.Error("expected stored access token removed")
	}
	if _, ok := storage.Get(KeyRefreshToken); ok {
		t.Error("expected stored refresh token removed")
	}
}

func TestRefreshIn(t *testing.T) {
	b := &fakeBackend{}
	m, _, done := newTestManager(t, b)
	defer done()

	m.installSession(signedToken(t, time.Now().Add(60*time.Second)), "r")

	d := m.RefreshIn()
	if d < 45*time.Second || d > 50*time.Second {
		t.Errorf("RefreshIn = %v, want about 50s", d)
	}

	m.installSession(signedToken(t, time.Now().Add(5*time.Second)), "r")
	if d := m.RefreshIn(); d != 0 {
		t.Errorf("RefreshIn = %v, want 0 inside the lead window", d)
	}
}

func TestExpiresWithin(t *testing.T) {
	b := &fakeBackend{}
	m, _, done := newTestManager(t, b)
	defer done()

	if !m.ExpiresWithin(time.Minute) {
		t.Error("logged-out session should count as expiring")
	}

	m.installSession(signedToken(t, time.Now().Add(time.Hour)), "r")
	if m.ExpiresWithin(time.Minute) {
		t.Error("hour-long token should not expire within a minute")
	}
	if !m.ExpiresWithin(2 * time.Hour) {
		t.Error("hour-long token expires within two hours")
	}
}
