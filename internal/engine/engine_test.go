package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/anvaya/paperforge/internal/allocate"
	"github.com/anvaya/paperforge/internal/paper"
	"github.com/anvaya/paperforge/internal/question"
	"github.com/anvaya/paperforge/internal/synth"
)

// fakeSource serves a fixed pool through the same filter the store uses.
type fakeSource struct {
	pool []question.Record
	err  error
}

func (f *fakeSource) Query(_ context.Context, scope question.Scope, ref question.Refinements) ([]question.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return question.Filter(f.pool, scope, ref), nil
}

func poolRecord(i int, d question.Difficulty, t question.Type) question.Record {
	r := question.Record{
		ID:         fmt.Sprintf("q%d", i),
		Text:       fmt.Sprintf("Question %d", i),
		Type:       t,
		Board:      question.BoardCBSE,
		Class:      "10",
		Subject:    "Mathematics",
		Chapter:    "Algebra",
		Topic:      "Equations",
		Difficulty: d,
		BloomLevel: question.BloomUnderstand,
		Marks:      2,
	}
	if t == question.TypeMCQ {
		r.Options = []string{"a", "b", "c", "d"}
		r.Marks = 1
	}
	return r
}

// richPool builds 25 questions: 10 easy MCQ, 7 medium short answers,
// 3 medium long answers, 5 hard long answers.
func richPool() []question.Record {
	var pool []question.Record
	i := 0
	for n := 0; n < 10; n++ {
		pool = append(pool, poolRecord(i, question.DifficultyEasy, question.TypeMCQ))
		i++
	}
	for n := 0; n < 7; n++ {
		pool = append(pool, poolRecord(i, question.DifficultyMedium, question.TypeShortAnswer))
		i++
	}
	for n := 0; n < 3; n++ {
		pool = append(pool, poolRecord(i, question.DifficultyMedium, question.TypeLongAnswer))
		i++
	}
	for n := 0; n < 5; n++ {
		pool = append(pool, poolRecord(i, question.DifficultyHard, question.TypeLongAnswer))
		i++
	}
	return pool
}

func genParams() GenerateParams {
	return GenerateParams{
		Board:        question.BoardCBSE,
		Class:        "10",
		Subject:      "Mathematics",
		Distribution: allocate.Distribution{Easy: 40, Medium: 40, Hard: 20},
		Duration:     180,
	}
}

func bandCounts(p *paper.Paper) (easy, medium, hard int) {
	for _, s := range p.Sections {
		for _, q := range s.Questions {
			switch q.Difficulty {
			case question.DifficultyEasy:
				easy++
			case question.DifficultyMedium:
				medium++
			case question.DifficultyHard:
				hard++
			}
		}
	}
	return
}

func TestGeneratePaper_FullPool(t *testing.T) {
	eng := New(&fakeSource{pool: richPool()}, nil, DefaultEngineConfig())

	p, err := eng.GeneratePaper(context.Background(), genParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := paper.QuestionCount(p); got != 20 {
		t.Fatalf("expected 20 questions, got %d", got)
	}
	easy, medium, hard := bandCounts(p)
	if easy != 8 || medium != 8 || hard != 4 {
		t.Fatalf("expected 8/8/4 band split, got %d/%d/%d", easy, medium, hard)
	}

	if p.Title != "10 Mathematics CBSE Examination" {
		t.Errorf("unexpected title %q", p.Title)
	}
	if len(p.Instructions) != 4 {
		t.Errorf("expected the 4-line default instruction block, got %d lines", len(p.Instructions))
	}
	if p.CreatedBy != "AI Assistant" {
		t.Errorf("unexpected author %q", p.CreatedBy)
	}
	if p.TotalMarks != paper.TotalMarks(p) {
		t.Errorf("snapshot %d disagrees with computed %d", p.TotalMarks, paper.TotalMarks(p))
	}

	// Standard three-section layout, each section holding only its types.
	if len(p.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(p.Sections))
	}
	for _, q := range p.Sections[0].Questions {
		if q.Type != question.TypeMCQ && q.Type != question.TypeFillInBlank {
			t.Errorf("section A holds %q", q.Type)
		}
	}
	for _, q := range p.Sections[1].Questions {
		if q.Type != question.TypeShortAnswer {
			t.Errorf("section B holds %q", q.Type)
		}
	}
	for _, q := range p.Sections[2].Questions {
		if q.Type != question.TypeLongAnswer {
			t.Errorf("section C holds %q", q.Type)
		}
	}
}

func TestGeneratePaper_InvalidDistribution(t *testing.T) {
	eng := New(&fakeSource{pool: richPool()}, nil, DefaultEngineConfig())
	params := genParams()
	params.Distribution = allocate.Distribution{Easy: 50, Medium: 50, Hard: 50}
	if _, err := eng.GeneratePaper(context.Background(), params); err == nil {
		t.Fatal("expected distribution error")
	}
}

func TestGeneratePaper_NilSynthInsufficientPool(t *testing.T) {
	// Plenty of easy and medium questions, no hard ones at all.
	var pool []question.Record
	for i := 0; i < 12; i++ {
		pool = append(pool, poolRecord(i, question.DifficultyEasy, question.TypeMCQ))
	}
	for i := 12; i < 24; i++ {
		pool = append(pool, poolRecord(i, question.DifficultyMedium, question.TypeShortAnswer))
	}

	eng := New(&fakeSource{pool: pool}, nil, DefaultEngineConfig())
	_, err := eng.GeneratePaper(context.Background(), genParams())

	var insufficient *paper.InsufficientPoolError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientPoolError, got %v", err)
	}
	if insufficient.Difficulty != string(question.DifficultyHard) {
		t.Errorf("expected hard band shortfall, got %s", insufficient.Difficulty)
	}
}

func TestGeneratePaper_SynthCoversShortfall(t *testing.T) {
	var pool []question.Record
	for i := 0; i < 12; i++ {
		pool = append(pool, poolRecord(i, question.DifficultyEasy, question.TypeMCQ))
	}
	for i := 12; i < 24; i++ {
		pool = append(pool, poolRecord(i, question.DifficultyMedium, question.TypeShortAnswer))
	}

	synthesizer := synth.NewTemplateSynthesizer(rand.New(rand.NewPCG(7, 0)))
	eng := New(&fakeSource{pool: pool}, synthesizer, DefaultEngineConfig())

	p, err := eng.GeneratePaper(context.Background(), genParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := paper.QuestionCount(p); got != 20 {
		t.Fatalf("expected 20 questions, got %d", got)
	}

	_, _, hard := bandCounts(p)
	if hard != 4 {
		t.Fatalf("expected 4 hard questions after top-up, got %d", hard)
	}

	generated := 0
	for _, s := range p.Sections {
		for _, q := range s.Questions {
			if q.IsGenerated {
				generated++
				if q.Difficulty != question.DifficultyHard {
					t.Errorf("top-up must target the short band, got %s", q.Difficulty)
				}
			}
		}
	}
	if generated != 4 {
		t.Fatalf("expected 4 generated questions, got %d", generated)
	}
}

func TestGeneratePaper_ThinPoolPadded(t *testing.T) {
	// 5 real questions; the synthesizer pads the pool to the cap.
	pool := richPool()[:5]
	synthesizer := synth.NewTemplateSynthesizer(rand.New(rand.NewPCG(7, 0)))
	eng := New(&fakeSource{pool: pool}, synthesizer, DefaultEngineConfig())

	p, err := eng.GeneratePaper(context.Background(), genParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := paper.QuestionCount(p); got != 20 {
		t.Fatalf("expected padded paper of 20, got %d", got)
	}
}

func TestGeneratePaper_EmptyPoolNoSynth(t *testing.T) {
	eng := New(&fakeSource{}, nil, DefaultEngineConfig())
	p, err := eng.GeneratePaper(context.Background(), genParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Target caps to the empty pool; all sections exist and are empty.
	if got := paper.QuestionCount(p); got != 0 {
		t.Fatalf("expected empty paper, got %d questions", got)
	}
	if len(p.Sections) != 3 {
		t.Fatalf("expected the 3 standard sections, got %d", len(p.Sections))
	}
}

func TestGeneratePaper_TotalMarksFallback(t *testing.T) {
	eng := New(&fakeSource{}, nil, DefaultEngineConfig())
	params := genParams()
	params.TotalMarks = 80
	p, err := eng.GeneratePaper(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalMarks != 80 {
		t.Fatalf("expected requested marks fallback 80, got %d", p.TotalMarks)
	}
}

func TestGeneratePaper_SourceError(t *testing.T) {
	eng := New(&fakeSource{err: errors.New("db closed")}, nil, DefaultEngineConfig())
	if _, err := eng.GeneratePaper(context.Background(), genParams()); err == nil {
		t.Fatal("expected source error to surface")
	}
}

func TestGeneratePaper_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := New(&fakeSource{pool: richPool()}, nil, DefaultEngineConfig())
	if _, err := eng.GeneratePaper(ctx, genParams()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCreateEmptyPaper(t *testing.T) {
	p := CreateEmptyPaper(paper.Meta{
		Title:   "Draft",
		Board:   question.BoardCBSE,
		Class:   "10",
		Subject: "Mathematics",
	})
	if len(p.Sections) != 1 || p.Sections[0].Title != "Section A" {
		t.Fatal("empty paper should start with Section A")
	}
	if len(p.Instructions) != 4 {
		t.Fatal("empty paper should carry the default instructions")
	}
}
