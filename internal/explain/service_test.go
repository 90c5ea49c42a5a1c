package explain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/llm"
)

type mockBackend struct {
	exp   *api.ConceptExplanation
	err   error
	calls int
}

func (m *mockBackend) ExplainConcept(ctx context.Context, topic, subtopic, concept string) (*api.ConceptExplanation, error) {
	m.calls++
	return m.exp, m.err
}

func validLLMExplanation() json.RawMessage {
	return json.RawMessage(`{
		"simple_explanation": "An easement is a right to use another's land.",
		"key_points": ["runs with the land"],
		"memory_tricks": ["EASE onto the land"],
		"real_world_example": "A shared driveway.",
		"exam_tip": "Identify the dominant tenement."
	}`)
}

func TestExplainBackendFirst(t *testing.T) {
	backend := &mockBackend{exp: &api.ConceptExplanation{Concept: "easement", SimpleExplanation: "from server"}}
	provider := llm.NewMockProvider()
	svc := NewService(backend, provider, DefaultConfig())

	exp, err := svc.Explain(context.Background(), "property_ownership", "encumbrances", "easement")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if exp.SimpleExplanation != "from server" {
		t.Errorf("explanation = %q", exp.SimpleExplanation)
	}
	if provider.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0 when backend succeeds", provider.CallCount())
	}
}

func TestExplainFallsBackToProvider(t *testing.T) {
	backend := &mockBackend{err: &api.RequestError{Op: "explain concept", Err: errors.New("connection refused")}}
	provider := llm.NewMockProvider(llm.MockResponse{Content: validLLMExplanation()})
	svc := NewService(backend, provider, DefaultConfig())

	exp, err := svc.Explain(context.Background(), "property_ownership", "encumbrances", "easement")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if exp.Concept != "easement" || exp.Topic != "property_ownership" {
		t.Errorf("identity fields = %+v", exp)
	}
	if len(exp.KeyPoints) != 1 || exp.ExamTip == "" {
		t.Errorf("content fields = %+v", exp)
	}
	if provider.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", provider.CallCount())
	}
}

func TestExplainAuthErrorNotMasked(t *testing.T) {
	backend := &mockBackend{err: &api.AuthError{Status: 401, Detail: "token expired"}}
	provider := llm.NewMockProvider(llm.MockResponse{Content: validLLMExplanation()})
	svc := NewService(backend, provider, DefaultConfig())

	_, err := svc.Explain(context.Background(), "t", "s", "c")

	var authErr *api.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if provider.CallCount() != 0 {
		t.Errorf("fallback must not run on auth failure, calls = %d", provider.CallCount())
	}
}

func TestExplainNoProviderPropagatesBackendError(t *testing.T) {
	backend := &mockBackend{err: &api.RequestError{Op: "explain concept", Err: errors.New("down")}}
	svc := NewService(backend, nil, DefaultConfig())

	_, err := svc.Explain(context.Background(), "t", "s", "c")

	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
}

func TestExplainProviderFailureSurfaces(t *testing.T) {
	backend := &mockBackend{err: &api.RequestError{Op: "explain concept", Err: errors.New("down")}}
	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(backend, provider, DefaultConfig())

	if _, err := svc.Explain(context.Background(), "t", "s", "c"); err == nil {
		t.Fatal("expected error when both sources fail")
	}
}
