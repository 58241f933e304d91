package synth

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/anvaya/paperforge/internal/allocate"
	"github.com/anvaya/paperforge/internal/question"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 0))
}

func testParams() Params {
	return Params{
		Board:        question.BoardCBSE,
		Class:        "10",
		Subject:      "Physics",
		Chapters:     []string{"Optics"},
		Topics:       []string{"Refraction"},
		Distribution: allocate.Distribution{Easy: 40, Medium: 40, Hard: 20},
	}
}

func TestTemplate_Count(t *testing.T) {
	s := NewTemplateSynthesizer(testRNG())
	got, err := s.Synthesize(context.Background(), testParams(), 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 12 {
		t.Fatalf("expected 12 records, got %d", len(got))
	}
}

func TestTemplate_NegativeCount(t *testing.T) {
	s := NewTemplateSynthesizer(testRNG())
	if _, err := s.Synthesize(context.Background(), testParams(), -1); err == nil {
		t.Fatal("expected error for negative count")
	}
}

func TestTemplate_RecordsAreValid(t *testing.T) {
	s := NewTemplateSynthesizer(testRNG())
	got, _ := s.Synthesize(context.Background(), testParams(), 30)

	seen := map[string]bool{}
	for _, r := range got {
		if err := r.Validate(); err != nil {
			t.Fatalf("generated record invalid: %v", err)
		}
		if !r.IsGenerated {
			t.Error("records must be marked generated")
		}
		if seen[r.ID] {
			t.Fatalf("duplicate id %s", r.ID)
		}
		seen[r.ID] = true
		if r.Chapter != "Optics" || r.Topic != "Refraction" {
			t.Errorf("record should use requested chapter/topic, got %s/%s", r.Chapter, r.Topic)
		}
		if r.Type == question.TypeMCQ && len(r.Options) != 4 {
			t.Errorf("MCQ must have exactly 4 options, got %d", len(r.Options))
		}
		if r.Type == question.TypeComprehension || r.Type == question.TypeAssertionReason {
			t.Errorf("type %s must never be synthesized", r.Type)
		}
	}
}

func TestTemplate_GeneralSentinels(t *testing.T) {
	params := testParams()
	params.Chapters = nil
	params.Topics = nil

	s := NewTemplateSynthesizer(testRNG())
	got, _ := s.Synthesize(context.Background(), params, 5)
	for _, r := range got {
		if r.Chapter != GeneralChapter {
			t.Errorf("expected %q chapter, got %q", GeneralChapter, r.Chapter)
		}
		if r.Topic != GeneralTopic {
			t.Errorf("expected %q topic, got %q", GeneralTopic, r.Topic)
		}
	}
}

func TestTemplate_SingleBandDistribution(t *testing.T) {
	bands := []struct {
		dist     allocate.Distribution
		want     question.Difficulty
		min, max int
	}{
		{allocate.Distribution{Easy: 100}, question.DifficultyEasy, 1, 2},
		{allocate.Distribution{Medium: 100}, question.DifficultyMedium, 2, 3},
		{allocate.Distribution{Hard: 100}, question.DifficultyHard, 3, 5},
	}

	for _, b := range bands {
		params := testParams()
		params.Distribution = b.dist

		s := NewTemplateSynthesizer(testRNG())
		got, _ := s.Synthesize(context.Background(), params, 20)
		for _, r := range got {
			if r.Difficulty != b.want {
				t.Fatalf("dist %+v: got difficulty %s", b.dist, r.Difficulty)
			}
			if r.Marks < b.min || r.Marks > b.max {
				t.Fatalf("%s marks out of range [%d,%d]: %d", b.want, b.min, b.max, r.Marks)
			}
		}
	}
}

func TestTemplate_TextMarksSynthetic(t *testing.T) {
	s := NewTemplateSynthesizer(testRNG())
	got, _ := s.Synthesize(context.Background(), testParams(), 5)
	for _, r := range got {
		if !strings.HasPrefix(r.Text, "[Generated]") {
			t.Errorf("text should carry the generated marker: %q", r.Text)
		}
	}
}

func TestTemplate_Deterministic(t *testing.T) {
	a, _ := NewTemplateSynthesizer(testRNG()).Synthesize(context.Background(), testParams(), 10)
	b, _ := NewTemplateSynthesizer(testRNG()).Synthesize(context.Background(), testParams(), 10)
	for i := range a {
		if a[i].Text != b[i].Text || a[i].Difficulty != b[i].Difficulty || a[i].Marks != b[i].Marks {
			t.Fatalf("same seed produced different record at %d", i)
		}
	}
}
