package question

import (
	"strings"
	"testing"
)

func validRecord() Record {
	return Record{
		ID:         "q1",
		Text:       "Describe Equations in Algebra.",
		Type:       TypeShortAnswer,
		Board:      BoardCBSE,
		Class:      "10",
		Subject:    "Mathematics",
		Chapter:    "Algebra",
		Topic:      "Equations",
		Difficulty: DifficultyEasy,
		BloomLevel: BloomUnderstand,
		Marks:      2,
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validRecord().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_EmptyID(t *testing.T) {
	r := validRecord()
	r.ID = ""
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestValidate_EmptyText(t *testing.T) {
	r := validRecord()
	r.Text = ""
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestValidate_MarksBelowOne(t *testing.T) {
	r := validRecord()
	r.Marks = 0
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for zero marks")
	}
	r.Marks = -3
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for negative marks")
	}
}

func TestValidate_MCQOptions(t *testing.T) {
	r := validRecord()
	r.Type = TypeMCQ
	r.Options = []string{"only one"}
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for single-option MCQ")
	}

	r.Options = []string{"a", "b"}
	if err := r.Validate(); err != nil {
		t.Fatalf("two options should be valid: %v", err)
	}
}

func TestValidate_ImageURLWithoutFlag(t *testing.T) {
	r := validRecord()
	r.ImageURL = "https://example.com/fig.png"
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for imageUrl without hasImage")
	}
	r.HasImage = true
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_PayloadTypeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"options on short answer", func(r *Record) {
			r.Options = []string{"a", "b"}
		}},
		{"match pairs on short answer", func(r *Record) {
			r.MatchPairs = []MatchPair{{Left: "l", Right: "r"}}
		}},
		{"sub-questions on short answer", func(r *Record) {
			r.SubQuestions = []SubQuestion{{ID: "s1", Text: "t", Marks: 1}}
		}},
		{"assertion on short answer", func(r *Record) {
			r.Assertion = "a"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)
			if err := r.Validate(); err == nil {
				t.Fatal("expected payload mismatch error")
			}
		})
	}
}

func TestValidate_SubQuestionMarks(t *testing.T) {
	r := validRecord()
	r.Type = TypeComprehension
	r.SubQuestions = []SubQuestion{
		{ID: "s1", Text: "First part", Type: TypeShortAnswer, Marks: 2},
		{ID: "s2", Text: "Second part", Type: TypeShortAnswer, Marks: 0},
	}
	err := r.Validate()
	if err == nil {
		t.Fatal("expected error for sub-question with zero marks")
	}
	if !strings.Contains(err.Error(), "s2") {
		t.Errorf("error should name the offending sub-question: %v", err)
	}
}
