package synth

import "github.com/anvaya/paperforge/internal/llm"

// BatchSchema defines the JSON structure the provider must return for a
// batch of generated exam questions.
var BatchSchema = &llm.Schema{
	Name:        "exam-questions",
	Description: "A batch of exam questions for a question paper",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question prompt in plain text",
						},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"MCQ", "Short Answer", "Long Answer", "Fill in the Blank", "Match the Following"},
						},
						"chapter": map[string]any{
							"type": "string",
						},
						"topic": map[string]any{
							"type": "string",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"Easy", "Medium", "Hard"},
						},
						"bloom_level": map[string]any{
							"type": "string",
							"enum": []any{"Remember", "Understand", "Apply", "Analyze", "Evaluate", "Create"},
						},
						"marks": map[string]any{
							"type":    "integer",
							"minimum": 1,
							"maximum": 5,
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "Model answer or marking guidance",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options for MCQ, correct first. Empty otherwise.",
						},
					},
					"required":             []any{"text", "type", "chapter", "topic", "difficulty", "bloom_level", "marks", "answer", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
