package synth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/anvaya/paperforge/internal/llm"
	"github.com/anvaya/paperforge/internal/question"
)

// AIConfig controls the AISynthesizer's provider requests.
type AIConfig struct {
	// MaxTokens is the token budget for one batch response.
	MaxTokens int

	// Temperature controls provider output randomness (0.0-1.0).
	Temperature float64
}

// DefaultAIConfig returns the recommended request settings.
func DefaultAIConfig() AIConfig {
	return AIConfig{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// AISynthesizer asks an LLM provider for a batch of exam questions
// conforming to BatchSchema. A provider or schema failure surfaces as a
// single opaque error; no partial batch is ever returned.
type AISynthesizer struct {
	provider llm.Provider
	config   AIConfig
}

// NewAISynthesizer creates an AISynthesizer over the given provider.
func NewAISynthesizer(provider llm.Provider, cfg AIConfig) *AISynthesizer {
	return &AISynthesizer{provider: provider, config: cfg}
}

// batchOutput is the raw provider response before conversion.
type batchOutput struct {
	Questions []struct {
		Text       string   `json:"text"`
		Type       string   `json:"type"`
		Chapter    string   `json:"chapter"`
		Topic      string   `json:"topic"`
		Difficulty string   `json:"difficulty"`
		BloomLevel string   `json:"bloom_level"`
		Marks      int      `json:"marks"`
		Answer     string   `json:"answer"`
		Options    []string `json:"options"`
	} `json:"questions"`
}

// Synthesize requests count questions from the provider and converts
// them into validated records.
func (s *AISynthesizer) Synthesize(ctx context.Context, params Params, count int) ([]question.Record, error) {
	if count <= 0 {
		return nil, nil
	}

	ctx = llm.WithPurpose(ctx, "question-synthesis")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(params, count)},
		},
		Schema:      BatchSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question synthesis failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse synthesis response: %w", err)
	}
	if len(raw.Questions) < count {
		return nil, fmt.Errorf("provider returned %d questions, need %d", len(raw.Questions), count)
	}

	out := make([]question.Record, 0, count)
	for _, q := range raw.Questions[:count] {
		r := question.Record{
			ID:          uuid.NewString(),
			Text:        q.Text,
			Type:        question.Type(q.Type),
			Board:       params.Board,
			Class:       params.Class,
			Subject:     params.Subject,
			Chapter:     q.Chapter,
			Topic:       q.Topic,
			Difficulty:  question.Difficulty(q.Difficulty),
			BloomLevel:  question.BloomLevel(q.BloomLevel),
			Marks:       q.Marks,
			Answer:      q.Answer,
			IsGenerated: true,
		}
		if r.Type == question.TypeMCQ {
			if len(q.Options) != 4 {
				return nil, fmt.Errorf("generated MCQ %q has %d options, want 4", q.Text, len(q.Options))
			}
			r.Options = q.Options
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("generated question rejected: %w", err)
		}
		out = append(out, r)
	}
	return out, nil
}
