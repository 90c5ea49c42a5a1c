package explain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/llm"
)

// Backend is the slice of the REST client the service needs.
type Backend interface {
	ExplainConcept(ctx context.Context, topic, subtopic, concept string) (*api.ConceptExplanation, error)
}

// Config tunes the local generation fallback.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the fallback generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// Service produces concept explanations. The backend's explanation endpoint
// is the primary source; when it is unreachable and a local LLM provider is
// configured, the service generates the explanation itself. Auth failures
// are never papered over with the fallback.
type Service struct {
	backend  Backend
	provider llm.Provider
	cfg      Config
}

// NewService creates an explanation service. provider may be nil, which
// disables the local fallback.
func NewService(backend Backend, provider llm.Provider, cfg Config) *Service {
	return &Service{backend: backend, provider: provider, cfg: cfg}
}

// Explain returns the explanation for one key concept.
func (s *Service) Explain(ctx context.Context, topic, subtopic, concept string) (*api.ConceptExplanation, error) {
	exp, err := s.backend.ExplainConcept(ctx, topic, subtopic, concept)
	if err == nil {
		return exp, nil
	}

	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		return nil, err
	}
	if s.provider == nil {
		return nil, err
	}

	return s.generate(ctx, topic, subtopic, concept)
}

type explanationOutput struct {
	SimpleExplanation string   `json:"simple_explanation"`
	KeyPoints         []string `json:"key_points"`
	MemoryTricks      []string `json:"memory_tricks"`
	RealWorldExample  string   `json:"real_world_example"`
	ExamTip           string   `json:"exam_tip"`
}

func (s *Service) generate(ctx context.Context, topic, subtopic, concept string) (*api.ConceptExplanation, error) {
	ctx = llm.WithPurpose(ctx, "concept-explanation")

	req := llm.Request{
		System: explanationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplanationUserMessage(topic, subtopic, concept)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &api.ConceptExplanation{
		Concept:           concept,
		Subtopic:          subtopic,
		Topic:             topic,
		SimpleExplanation: out.SimpleExplanation,
		KeyPoints:         out.KeyPoints,
		MemoryTricks:      out.MemoryTricks,
		RealWorldExample:  out.RealWorldExample,
		ExamTip:           out.ExamTip,
	}, nil
}
