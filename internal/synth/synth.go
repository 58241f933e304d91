// Package synth generates placeholder questions when the real pool
// cannot satisfy a generation quota.
package synth

import (
	"context"

	"github.com/anvaya/paperforge/internal/allocate"
	"github.com/anvaya/paperforge/internal/question"
)

// Params describes the scope and difficulty mix requested questions
// must fit. Empty Chapters/Topics mean "unspecified" and fall back to
// the General sentinels.
type Params struct {
	Board        question.Board
	Class        string
	Subject      string
	Chapters     []string
	Topics       []string
	Distribution allocate.Distribution
}

// Synthesizer produces count questions matching params. Every returned
// record carries a unique id, validates structurally, and is marked
// IsGenerated so it stays visibly distinguishable from authored
// questions.
type Synthesizer interface {
	Synthesize(ctx context.Context, params Params, count int) ([]question.Record, error)
}
