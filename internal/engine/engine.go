// Package engine composes the filter, allocator, synthesizer, and
// assembler into the paper generation pipeline.
package engine

import (
	"context"
	"fmt"

	"github.com/anvaya/paperforge/internal/allocate"
	"github.com/anvaya/paperforge/internal/assemble"
	"github.com/anvaya/paperforge/internal/paper"
	"github.com/anvaya/paperforge/internal/question"
	"github.com/anvaya/paperforge/internal/synth"
)

// QuestionSource is the read side of the question bank the engine
// selects from.
type QuestionSource interface {
	Query(ctx context.Context, scope question.Scope, ref question.Refinements) ([]question.Record, error)
}

// GenerateParams is the target specification for one generated paper.
type GenerateParams struct {
	Board   question.Board
	Class   string
	Subject string

	// Chapters and Topics narrow the pool. Empty means all.
	Chapters []string
	Topics   []string

	Distribution allocate.Distribution

	// TotalMarks is the requested paper total. It is used as a fallback
	// snapshot when the assembled paper computes to zero marks; the
	// question count path does not depend on it.
	TotalMarks int

	// Duration is the exam length in minutes.
	Duration int
}

// DefaultInstructions is the general instruction block printed at the
// top of a generated paper.
func DefaultInstructions() []string {
	return []string{
		"Answer all questions as per the instructions in each section.",
		"Marks are indicated against each question.",
		"Draw diagrams where necessary.",
		"Write legibly for full marks.",
	}
}

// Config tunes the generation pipeline.
type Config struct {
	// MaxQuestions caps how many questions a generated paper draws.
	MaxQuestions int

	// Specs is the section layout the selection is assembled into.
	Specs []assemble.SectionSpec

	// CreatedBy is recorded as the author of generated papers.
	CreatedBy string
}

// DefaultEngineConfig returns the standard pipeline settings.
func DefaultEngineConfig() Config {
	return Config{
		MaxQuestions: allocate.DefaultMaxQuestions,
		Specs:        assemble.DefaultSpecs(),
		CreatedBy:    "AI Assistant",
	}
}

// Engine runs the generation pipeline. A nil synthesizer disables
// top-up: generation then fails with InsufficientPoolError when the
// pool cannot meet a quota.
type Engine struct {
	source QuestionSource
	synth  synth.Synthesizer
	cfg    Config
}

// New creates an Engine.
func New(source QuestionSource, synthesizer synth.Synthesizer, cfg Config) *Engine {
	return &Engine{source: source, synth: synthesizer, cfg: cfg}
}

// GeneratePaper runs filter -> allocate -> synthesize -> assemble and
// returns a structurally valid paper. The operation is atomic: on any
// error, including context cancellation, no paper is returned and
// nothing is persisted.
func (e *Engine) GeneratePaper(ctx context.Context, params GenerateParams) (*paper.Paper, error) {
	if err := params.Distribution.Validate(); err != nil {
		return nil, err
	}

	scope := question.Scope{Board: params.Board, Class: params.Class, Subject: params.Subject}
	pool, err := e.source.Query(ctx, scope, question.Refinements{
		Chapters: params.Chapters,
		Topics:   params.Topics,
	})
	if err != nil {
		return nil, fmt.Errorf("query question pool: %w", err)
	}

	// A thin pool is padded with synthetic questions before allocation
	// so the target count stays reachable.
	if len(pool) < e.cfg.MaxQuestions && e.synth != nil {
		extra, err := e.synth.Synthesize(ctx, e.synthParams(params), e.cfg.MaxQuestions-len(pool))
		if err != nil {
			return nil, fmt.Errorf("top up question pool: %w", err)
		}
		pool = append(pool, extra...)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := allocate.CapTarget(e.cfg.MaxQuestions, len(pool))
	counts, err := allocate.Split(target, params.Distribution)
	if err != nil {
		return nil, err
	}

	sel := allocate.Pick(pool, counts)
	if err := e.coverShortfall(ctx, params, &sel); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := assemble.Assemble(sel.All(), e.cfg.Specs)
	return e.buildPaper(params, res), nil
}

// coverShortfall fills per-band gaps left by Pick with synthetic
// questions, or fails when synthesis is disabled.
func (e *Engine) coverShortfall(ctx context.Context, params GenerateParams, sel *allocate.Selection) error {
	bands := []struct {
		name  question.Difficulty
		short int
		dist  allocate.Distribution
		dest  *[]question.Record
	}{
		{question.DifficultyEasy, sel.Shortfall.Easy, allocate.Distribution{Easy: 100}, &sel.Easy},
		{question.DifficultyMedium, sel.Shortfall.Medium, allocate.Distribution{Medium: 100}, &sel.Medium},
		{question.DifficultyHard, sel.Shortfall.Hard, allocate.Distribution{Hard: 100}, &sel.Hard},
	}

	for _, b := range bands {
		if b.short == 0 {
			continue
		}
		if e.synth == nil {
			return &paper.InsufficientPoolError{
				Difficulty: string(b.name),
				Want:       len(*b.dest) + b.short,
				Have:       len(*b.dest),
			}
		}
		sp := e.synthParams(params)
		sp.Distribution = b.dist
		extra, err := e.synth.Synthesize(ctx, sp, b.short)
		if err != nil {
			return fmt.Errorf("cover %s shortfall: %w", b.name, err)
		}
		*b.dest = append(*b.dest, extra...)
	}
	return nil
}

func (e *Engine) synthParams(params GenerateParams) synth.Params {
	return synth.Params{
		Board:        params.Board,
		Class:        params.Class,
		Subject:      params.Subject,
		Chapters:     params.Chapters,
		Topics:       params.Topics,
		Distribution: params.Distribution,
	}
}

// buildPaper turns assembled buckets into the final sectioned paper.
func (e *Engine) buildPaper(params GenerateParams, res assemble.Result) *paper.Paper {
	p := paper.New(paper.Meta{
		Title:        fmt.Sprintf("%s %s %s Examination", params.Class, params.Subject, params.Board),
		Board:        params.Board,
		Class:        params.Class,
		Subject:      params.Subject,
		CreatedBy:    e.cfg.CreatedBy,
		Duration:     params.Duration,
		Instructions: DefaultInstructions(),
	})

	p.Sections = p.Sections[:0]
	for _, b := range res.Buckets {
		s, _ := p.AddSection()
		s.Title = b.Spec.Title
		s.Description = b.Spec.Instructions
		s.Questions = b.Questions
	}

	// Overflow questions go into a trailing section rather than being
	// dropped.
	if len(res.Unplaced) > 0 {
		s, _ := p.AddSection()
		s.Title = s.Title + ": Additional Questions"
		s.Description = "Answer all questions in this section."
		s.Questions = res.Unplaced
	}

	// Snapshot the total; fall back to the requested marks when the
	// computed value is zero.
	p.TotalMarks = paper.TotalMarks(p)
	if p.TotalMarks == 0 {
		p.TotalMarks = params.TotalMarks
	}
	return p
}

// CreateEmptyPaper creates a blank paper for manual editing.
func CreateEmptyPaper(meta paper.Meta) *paper.Paper {
	if len(meta.Instructions) == 0 {
		meta.Instructions = DefaultInstructions()
	}
	return paper.New(meta)
}
