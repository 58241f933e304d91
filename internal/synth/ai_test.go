package synth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/anvaya/paperforge/internal/llm"
	"github.com/anvaya/paperforge/internal/question"
)

func batchJSON(items ...string) json.RawMessage {
	return json.RawMessage(`{"questions":[` + strings.Join(items, ",") + `]}`)
}

func shortAnswerItem() string {
	return `{
		"text": "Explain refraction through a glass slab.",
		"type": "Short Answer",
		"chapter": "Optics",
		"topic": "Refraction",
		"difficulty": "Medium",
		"bloom_level": "Understand",
		"marks": 3,
		"answer": "Light bends toward the normal entering a denser medium.",
		"options": []
	}`
}

func mcqItem(optionCount int) string {
	opts := make([]string, optionCount)
	for i := range opts {
		opts[i] = `"option"`
	}
	return `{
		"text": "Which lens converges light?",
		"type": "MCQ",
		"chapter": "Optics",
		"topic": "Lenses",
		"difficulty": "Easy",
		"bloom_level": "Remember",
		"marks": 1,
		"answer": "A",
		"options": [` + strings.Join(opts, ",") + `]
	}`
}

func TestAISynthesize_OK(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(shortAnswerItem(), mcqItem(4)),
	})
	s := NewAISynthesizer(mock, DefaultAIConfig())

	got, err := s.Synthesize(context.Background(), testParams(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	first := got[0]
	if first.Type != question.TypeShortAnswer {
		t.Errorf("unexpected type %q", first.Type)
	}
	if first.Board != question.BoardCBSE || first.Class != "10" || first.Subject != "Physics" {
		t.Errorf("scope fields must come from params, got %s/%s/%s", first.Board, first.Class, first.Subject)
	}
	if !first.IsGenerated {
		t.Error("AI records must be marked generated")
	}
	if first.ID == "" || first.ID == got[1].ID {
		t.Error("records need unique ids")
	}

	if len(got[1].Options) != 4 {
		t.Errorf("MCQ options lost in conversion")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected a single provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != BatchSchema {
		t.Error("request must carry the batch schema")
	}
	if req.System == "" {
		t.Error("request must carry the system prompt")
	}
}

func TestAISynthesize_ZeroCount(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewAISynthesizer(mock, DefaultAIConfig())
	got, err := s.Synthesize(context.Background(), testParams(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatal("zero count should synthesize nothing")
	}
	if mock.CallCount() != 0 {
		t.Fatal("zero count must not call the provider")
	}
}

func TestAISynthesize_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	s := NewAISynthesizer(mock, DefaultAIConfig())
	if _, err := s.Synthesize(context.Background(), testParams(), 1); err == nil {
		t.Fatal("expected provider error to surface")
	}
}

func TestAISynthesize_ShortBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(shortAnswerItem()),
	})
	s := NewAISynthesizer(mock, DefaultAIConfig())
	_, err := s.Synthesize(context.Background(), testParams(), 3)
	if err == nil {
		t.Fatal("expected error for short batch")
	}
	if !strings.Contains(err.Error(), "need 3") {
		t.Errorf("error should report the shortfall: %v", err)
	}
}

func TestAISynthesize_BadMCQOptionCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(mcqItem(3)),
	})
	s := NewAISynthesizer(mock, DefaultAIConfig())
	if _, err := s.Synthesize(context.Background(), testParams(), 1); err == nil {
		t.Fatal("expected error for 3-option MCQ")
	}
}

func TestAISynthesize_InvalidRecordRejectsWholeBatch(t *testing.T) {
	bad := strings.Replace(shortAnswerItem(), `"marks": 3`, `"marks": 0`, 1)
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(bad, mcqItem(4)),
	})
	s := NewAISynthesizer(mock, DefaultAIConfig())
	got, err := s.Synthesize(context.Background(), testParams(), 2)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got != nil {
		t.Fatal("no partial batch may be returned")
	}
}
