package synth

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/anvaya/paperforge/internal/allocate"
	"github.com/anvaya/paperforge/internal/question"
)

// Sentinel chapter/topic used when the caller did not narrow the scope.
const (
	GeneralChapter = "General"
	GeneralTopic   = "General Topic"
)

// synthTypes is the fixed set of shapes the template synthesizer draws
// from. Comprehension and assertion-reason need authored content, so
// they are never synthesized.
var synthTypes = []question.Type{
	question.TypeMCQ,
	question.TypeShortAnswer,
	question.TypeLongAnswer,
	question.TypeFillInBlank,
	question.TypeMatchTheFollowing,
}

var bloomLevels = []question.BloomLevel{
	question.BloomRemember,
	question.BloomUnderstand,
	question.BloomApply,
	question.BloomAnalyze,
	question.BloomEvaluate,
	question.BloomCreate,
}

// TemplateSynthesizer fills quota shortfalls with templated records.
// The random source is injected so callers (and tests) control the
// nondeterminism; production code seeds it from entropy, tests from a
// fixed seed.
type TemplateSynthesizer struct {
	rng *rand.Rand
}

// NewTemplateSynthesizer creates a synthesizer over the given source.
func NewTemplateSynthesizer(rng *rand.Rand) *TemplateSynthesizer {
	return &TemplateSynthesizer{rng: rng}
}

// Synthesize generates count placeholder questions for params.
func (s *TemplateSynthesizer) Synthesize(_ context.Context, params Params, count int) ([]question.Record, error) {
	if count < 0 {
		return nil, fmt.Errorf("synthesize count must be non-negative, got %d", count)
	}

	out := make([]question.Record, 0, count)
	for range count {
		out = append(out, s.one(params))
	}
	return out, nil
}

func (s *TemplateSynthesizer) one(params Params) question.Record {
	difficulty := s.sampleDifficulty(params.Distribution)
	qType := synthTypes[s.rng.IntN(len(synthTypes))]
	chapter := pick(s.rng, params.Chapters, GeneralChapter)
	topic := pick(s.rng, params.Topics, GeneralTopic)

	r := question.Record{
		ID:          uuid.NewString(),
		Text:        fmt.Sprintf("[Generated] %s %s question about %s in %s for class %s %s.", difficulty, qType, topic, chapter, params.Class, params.Subject),
		Type:        qType,
		Board:       params.Board,
		Class:       params.Class,
		Subject:     params.Subject,
		Chapter:     chapter,
		Topic:       topic,
		Difficulty:  difficulty,
		BloomLevel:  bloomLevels[s.rng.IntN(len(bloomLevels))],
		Marks:       s.marksFor(difficulty),
		Answer:      fmt.Sprintf("Sample answer for the %s %s question about %s.", difficulty, qType, topic),
		IsGenerated: true,
	}

	switch qType {
	case question.TypeMCQ:
		// Exactly 4 options; the first is correct by convention.
		r.Options = []string{
			fmt.Sprintf("Correct answer about %s", topic),
			fmt.Sprintf("Incorrect concept related to %s", topic),
			fmt.Sprintf("Partially true statement about %s", topic),
			fmt.Sprintf("Common misconception about %s", topic),
		}
	case question.TypeMatchTheFollowing:
		r.MatchPairs = []question.MatchPair{
			{Left: fmt.Sprintf("Definition of %s", topic), Right: fmt.Sprintf("Meaning in %s", chapter)},
			{Left: fmt.Sprintf("Example of %s", topic), Right: fmt.Sprintf("Application in %s", chapter)},
			{Left: fmt.Sprintf("Property of %s", topic), Right: fmt.Sprintf("Principle in %s", chapter)},
			{Left: fmt.Sprintf("Unit of %s", topic), Right: fmt.Sprintf("Measure in %s", chapter)},
		}
	}

	return r
}

// sampleDifficulty draws a difficulty band weighted by the requested
// distribution.
func (s *TemplateSynthesizer) sampleDifficulty(dist allocate.Distribution) question.Difficulty {
	roll := s.rng.IntN(100)
	switch {
	case roll < dist.Easy:
		return question.DifficultyEasy
	case roll < dist.Easy+dist.Medium:
		return question.DifficultyMedium
	default:
		return question.DifficultyHard
	}
}

// marksFor derives a mark value from the difficulty band:
// Easy 1-2, Medium 2-3, Hard 3-5.
func (s *TemplateSynthesizer) marksFor(d question.Difficulty) int {
	switch d {
	case question.DifficultyEasy:
		return 1 + s.rng.IntN(2)
	case question.DifficultyMedium:
		return 2 + s.rng.IntN(2)
	default:
		return 3 + s.rng.IntN(3)
	}
}

func pick(rng *rand.Rand, list []string, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return list[rng.IntN(len(list))]
}
