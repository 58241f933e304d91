package paper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/anvaya/paperforge/internal/question"
)

func testMeta() Meta {
	return Meta{
		Title:     "10 Mathematics CBSE Examination",
		Board:     question.BoardCBSE,
		Class:     "10",
		Subject:   "Mathematics",
		CreatedBy: "tester",
		Duration:  180,
	}
}

func testQuestion(id string, marks int) question.Record {
	return question.Record{
		ID:         id,
		Text:       "Describe Equations in Algebra.",
		Type:       question.TypeShortAnswer,
		Board:      question.BoardCBSE,
		Class:      "10",
		Subject:    "Mathematics",
		Difficulty: question.DifficultyEasy,
		Marks:      marks,
	}
}

func TestNew_SectionedStartsWithSectionA(t *testing.T) {
	p := New(testMeta())
	if p.IsSectionless {
		t.Fatal("paper should be sectioned")
	}
	if len(p.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(p.Sections))
	}
	if p.Sections[0].Title != "Section A" {
		t.Errorf("expected Section A, got %q", p.Sections[0].Title)
	}
	if p.ID == "" || p.Sections[0].ID == "" {
		t.Error("ids must be assigned")
	}
}

func TestNew_Sectionless(t *testing.T) {
	meta := testMeta()
	meta.IsSectionless = true
	p := New(meta)
	if len(p.Sections) != 0 {
		t.Fatal("sectionless paper must not have sections")
	}
}

func TestAddSection_AutoLetters(t *testing.T) {
	p := New(testMeta())
	s, err := p.AddSection()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Title != "Section B" {
		t.Errorf("expected Section B, got %q", s.Title)
	}
	s, _ = p.AddSection()
	if s.Title != "Section C" {
		t.Errorf("expected Section C, got %q", s.Title)
	}
}

func TestAddSection_OnSectionless(t *testing.T) {
	meta := testMeta()
	meta.IsSectionless = true
	p := New(meta)

	_, err := p.AddSection()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRemoveSection_LastSectionGuard(t *testing.T) {
	p := New(testMeta())
	err := p.RemoveSection(p.Sections[0].ID)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for last section, got %v", err)
	}
	if len(p.Sections) != 1 {
		t.Fatal("section must not be removed")
	}
}

func TestRemoveSection(t *testing.T) {
	p := New(testMeta())
	s, _ := p.AddSection()
	if err := p.RemoveSection(s.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Sections) != 1 {
		t.Fatalf("expected 1 section after removal, got %d", len(p.Sections))
	}
}

func TestRemoveSection_Unknown(t *testing.T) {
	p := New(testMeta())
	p.AddSection()
	err := p.RemoveSection("nope")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Kind != "section" {
		t.Errorf("expected section kind, got %q", nf.Kind)
	}
}

func TestUpdateSectionMeta_Partial(t *testing.T) {
	p := New(testMeta())
	id := p.Sections[0].ID

	title := "Section A: Objective"
	if err := p.UpdateSectionMeta(id, &title, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Sections[0].Title != title {
		t.Errorf("title not updated")
	}
	if p.Sections[0].Description != "" {
		t.Errorf("description should be untouched")
	}

	desc := "Answer all questions."
	if err := p.UpdateSectionMeta(id, nil, &desc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Sections[0].Title != title {
		t.Errorf("title should be untouched on description update")
	}
	if p.Sections[0].Description != desc {
		t.Errorf("description not updated")
	}
}

func TestAddQuestionToSection(t *testing.T) {
	p := New(testMeta())
	id := p.Sections[0].ID

	if err := p.AddQuestionToSection(id, testQuestion("q1", 3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Sections[0].Questions) != 1 {
		t.Fatal("question not added")
	}

	// Invalid record is rejected and the section unchanged.
	bad := testQuestion("q2", 0)
	err := p.AddQuestionToSection(id, bad)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(p.Sections[0].Questions) != 1 {
		t.Fatal("invalid question must not be added")
	}
}

func TestRemoveQuestionFromSection_OnlyNamedSection(t *testing.T) {
	p := New(testMeta())
	a := p.Sections[0].ID
	sb, _ := p.AddSection()

	p.AddQuestionToSection(a, testQuestion("q1", 2))
	p.AddQuestionToSection(sb.ID, testQuestion("q2", 2))

	// q2 lives in section B; removing it from A must fail and change nothing.
	err := p.RemoveQuestionFromSection(a, "q2")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if QuestionCount(p) != 2 {
		t.Fatal("no question should have been removed")
	}

	if err := p.RemoveQuestionFromSection(sb.ID, "q2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if QuestionCount(p) != 1 {
		t.Fatal("q2 should be removed")
	}
}

func TestDirectQuestions(t *testing.T) {
	meta := testMeta()
	meta.IsSectionless = true
	p := New(meta)

	if err := p.AddDirectQuestion(testQuestion("q1", 4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.RemoveDirectQuestion("q1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if QuestionCount(p) != 0 {
		t.Fatal("paper should be empty")
	}

	// Mixed-mode operations are rejected.
	if err := p.AddQuestionToSection("s", testQuestion("q2", 1)); err == nil {
		t.Error("sectioned op on sectionless paper must fail")
	}

	sectioned := New(testMeta())
	if err := sectioned.AddDirectQuestion(testQuestion("q3", 1)); err == nil {
		t.Error("direct op on sectioned paper must fail")
	}
}

func TestReorderQuestion(t *testing.T) {
	p := New(testMeta())
	id := p.Sections[0].ID
	for i := 0; i < 4; i++ {
		p.AddQuestionToSection(id, testQuestion(fmt.Sprintf("q%d", i), 1))
	}

	if err := p.ReorderQuestion(id, 0, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{}
	for _, q := range p.Sections[0].Questions {
		got = append(got, q.ID)
	}
	want := []string{"q1", "q2", "q0", "q3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}

	// Out-of-range indices leave the section unchanged.
	if err := p.ReorderQuestion(id, 0, 4); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if p.Sections[0].Questions[0].ID != "q1" {
		t.Fatal("failed reorder must not mutate")
	}
}

func TestTotals_ReachableQuestionsOnly(t *testing.T) {
	p := New(testMeta())
	a := p.Sections[0].ID
	sb, _ := p.AddSection()

	p.AddQuestionToSection(a, testQuestion("q1", 2))
	p.AddQuestionToSection(a, testQuestion("q2", 3))
	p.AddQuestionToSection(sb.ID, testQuestion("q3", 5))

	if got := TotalMarks(p); got != 10 {
		t.Errorf("expected 10 marks, got %d", got)
	}
	if got := QuestionCount(p); got != 3 {
		t.Errorf("expected 3 questions, got %d", got)
	}

	// Removing a section removes its questions from the totals.
	if err := p.RemoveSection(sb.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := TotalMarks(p); got != 5 {
		t.Errorf("expected 5 marks after removal, got %d", got)
	}

	// The snapshot field is unaffected by live mutation.
	if p.TotalMarks != 0 {
		t.Errorf("snapshot should still be zero, got %d", p.TotalMarks)
	}
}

func sectionMarks(s Section) int {
	total := 0
	for _, q := range s.Questions {
		total += q.Marks
	}
	return total
}

func TestMoveQuestionBetweenSections(t *testing.T) {
	p := New(testMeta())
	a := p.Sections[0].ID
	sb, _ := p.AddSection()
	b := sb.ID

	p.AddQuestionToSection(a, testQuestion("q1", 2))
	moved := testQuestion("q2", 3)
	p.AddQuestionToSection(a, moved)
	p.AddQuestionToSection(b, testQuestion("q3", 5))

	if err := p.RemoveQuestionFromSection(a, "q2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.AddQuestionToSection(b, moved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := sectionMarks(p.Sections[0]); got != 2 {
		t.Errorf("expected 2 marks left in the source section, got %d", got)
	}
	if got := sectionMarks(p.Sections[1]); got != 8 {
		t.Errorf("expected 8 marks in the destination section, got %d", got)
	}
	qs := p.Sections[1].Questions
	if qs[len(qs)-1].ID != "q2" {
		t.Errorf("moved question should land at the end, got %q", qs[len(qs)-1].ID)
	}

	// The move redistributes marks between sections without changing
	// the paper totals.
	if got := TotalMarks(p); got != 10 {
		t.Errorf("expected 10 total marks, got %d", got)
	}
	if got := QuestionCount(p); got != 3 {
		t.Errorf("expected 3 questions, got %d", got)
	}
}
