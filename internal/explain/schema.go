package explain

import "github.com/codifymate/caprep/internal/llm"

// ExplanationSchema defines the JSON schema for concept explanations. It
// mirrors the shape the backend's explanation endpoint returns, so the UI
// renders both sources identically.
var ExplanationSchema = &llm.Schema{
	Name:        "concept-explanation",
	Description: "A structured study explanation of one real estate exam concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"simple_explanation": map[string]any{
				"type":        "string",
				"description": "Plain-language explanation of the concept (3-5 sentences)",
			},
			"key_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 facts the exam is most likely to test (one sentence each)",
			},
			"memory_tricks": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 mnemonics or memory aids",
			},
			"real_world_example": map[string]any{
				"type":        "string",
				"description": "A concrete transaction scenario showing the concept in use",
			},
			"exam_tip": map[string]any{
				"type":        "string",
				"description": "How the exam typically words questions about this concept",
			},
		},
		"required":             []any{"simple_explanation", "key_points", "memory_tricks", "real_world_example", "exam_tip"},
		"additionalProperties": false,
	},
}
