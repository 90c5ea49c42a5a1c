package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// fakeCreds is a scriptable credential source.
type fakeCreds struct {
	token        string
	reauthCalls  int32
	reauthResult error
	reauthTo     string
}

func (f *fakeCreds) AccessToken() string { return f.token }

func (f *fakeCreds) Reauthenticate(ctx context.Context) error {
	atomic.AddInt32(&f.reauthCalls, 1)
	if f.reauthResult != nil {
		return f.reauthResult
	}
	f.token = f.reauthTo
	return nil
}

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Every fake response is JSON. The client only unmarshals bodies
		// that declare it.
		w.Header().Set("Content-Type", "application/json")
		handler.ServeHTTP(w, r)
	}))
	return New(srv.URL, 5*time.Second), srv
}

func TestLoginSuccess(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != EndpointTokenObtain {
			t.Errorf("path = %q, want %q", r.URL.Path, EndpointTokenObtain)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "ada" || body["password"] != "hunter22" {
			t.Errorf("unexpected credentials: %v", body)
		}
		_ = json.NewEncoder(w).Encode(TokenPair{Access: "at", Refresh: "rt"})
	}))
	defer srv.Close()

	pair, err := c.Login(context.Background(), "ada", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if pair.Access != "at" || pair.Refresh != "rt" {
		t.Errorf("pair = %+v", pair)
	}
}

func TestLoginBadCredentialsNoReauth(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "No active account"})
	}))
	defer srv.Close()

	creds := &fakeCreds{reauthTo: "fresh"}
	c.SetCredentials(creds)

	_, err := c.Login(context.Background(), "ada", "wrong")

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	// A failed login must never trigger the refresh path.
	if n := atomic.LoadInt32(&creds.reauthCalls); n != 0 {
		t.Errorf("reauth calls = %d, want 0", n)
	}
}

func TestAuthedRequestRetriesOnceAfter401(t *testing.T) {
	var calls int32
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			if got := r.Header.Get("Authorization"); got != "Bearer stale" {
				t.Errorf("first attempt auth header = %q", got)
			}
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"})
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer fresh" {
			t.Errorf("retry auth header = %q", got)
		}
		_ = json.NewEncoder(w).Encode(User{ID: 7, Username: "ada"})
	}))
	defer srv.Close()

	creds := &fakeCreds{token: "stale", reauthTo: "fresh"}
	c.SetCredentials(creds)

	u, err := c.FetchUser(context.Background())
	if err != nil {
		t.Fatalf("FetchUser: %v", err)
	}
	if u.Username != "ada" {
		t.Errorf("username = %q", u.Username)
	}
	if n := atomic.LoadInt32(&creds.reauthCalls); n != 1 {
		t.Errorf("reauth calls = %d, want 1", n)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Errorf("server calls = %d, want 2", n)
	}
}

func TestAuthedRequestNoSecondRetry(t *testing.T) {
	var calls int32
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"})
	}))
	defer srv.Close()

	creds := &fakeCreds{token: "stale", reauthTo: "still-bad"}
	c.SetCredentials(creds)

	_, err := c.FetchUser(context.Background())

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Errorf("server calls = %d, want exactly 2 (one retry)", n)
	}
	if n := atomic.LoadInt32(&creds.reauthCalls); n != 1 {
		t.Errorf("reauth calls = %d, want 1", n)
	}
}

func TestAuthedRequestReauthFailureReturnsOriginalError(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"})
	}))
	defer srv.Close()

	creds := &fakeCreds{token: "stale", reauthResult: errors.New("refresh rejected")}
	c.SetCredentials(creds)

	_, err := c.FetchUser(context.Background())
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestQuestionsSelectorParams(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("topic"); got != "contracts" {
			t.Errorf("topic = %q", got)
		}
		if got := r.URL.Query().Get("subtopic"); got != "listing_agreements" {
			t.Errorf("subtopic = %q", got)
		}
		_ = json.NewEncoder(w).Encode([]Question{{ID: "q1", Prompt: "?", Choices: []string{"a", "b", "c", "d"}}})
	}))
	defer srv.Close()

	qs, err := c.Questions(context.Background(), QuestionSelector{Topic: "contracts", Subtopic: "listing_agreements"})
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(qs) != 1 || qs[0].ID != "q1" {
		t.Errorf("questions = %+v", qs)
	}
}

func TestQuestionsEmptySetIsNotError(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	qs, err := c.Questions(context.Background(), QuestionSelector{Topic: "financing"})
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(qs) != 0 {
		t.Errorf("expected empty set, got %d", len(qs))
	}
}

func TestCheckAnswerPath(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/practice/questions/q42/check/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["answer"] != "B" {
			t.Errorf("answer = %q", body["answer"])
		}
		_ = json.NewEncoder(w).Encode(CheckResult{IsCorrect: true, CorrectAnswer: "B"})
	}))
	defer srv.Close()

	res, err := c.CheckAnswer(context.Background(), "q42", "B")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if !res.IsCorrect {
		t.Error("expected correct")
	}
}

func TestRegisterFieldErrors(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"username": []string{"A user with that username already exists."},
		})
	}))
	defer srv.Close()

	_, err := c.Register(context.Background(), RegisterRequest{Username: "ada"})

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Fields["username"] == "" {
		t.Error("expected username field message")
	}
}

func TestTransportFailureIsRequestError(t *testing.T) {
	c := New("http://127.0.0.1:1", 500*time.Millisecond)

	_, err := c.Topics(context.Background())

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Op != "fetch topics" {
		t.Errorf("op = %q", reqErr.Op)
	}
}

func TestExplainConceptFlattensPayload(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["key_concept"] != "easement" {
			t.Errorf("key_concept = %q", body["key_concept"])
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"concept": "easement",
			"subtopic": "encumbrances",
			"main_topic": "property_ownership",
			"explanation": {
				"simple_explanation": "A right to use another's land.",
				"key_points": ["appurtenant", "in gross"],
				"memory_tricks": ["EASE onto the land"],
				"real_world_example": "A shared driveway.",
				"exam_tip": "Know who the dominant tenement is."
			}
		}`))
	}))
	defer srv.Close()

	exp, err := c.ExplainConcept(context.Background(), "property_ownership", "encumbrances", "easement")
	if err != nil {
		t.Fatalf("ExplainConcept: %v", err)
	}
	if exp.SimpleExplanation == "" || len(exp.KeyPoints) != 2 || exp.ExamTip == "" {
		t.Errorf("explanation not flattened: %+v", exp)
	}
}

func TestExplainConceptServiceFailure(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": "model overloaded"}`))
	}))
	defer srv.Close()

	_, err := c.ExplainConcept(context.Background(), "t", "s", "c")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Detail != "model overloaded" {
		t.Errorf("detail = %q", apiErr.Detail)
	}
}
