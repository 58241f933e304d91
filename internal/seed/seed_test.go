package seed

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/anvaya/paperforge/internal/question"
)

type captureInserter struct {
	records []question.Record
	err     error
}

func (c *captureInserter) Create(_ context.Context, rec question.Record) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	c.records = append(c.records, rec)
	return rec.ID, nil
}

func TestBank_AllRecordsValid(t *testing.T) {
	bank := Bank(100, 7)
	if len(bank) != 100 {
		t.Fatalf("expected 100 records, got %d", len(bank))
	}
	for _, r := range bank {
		if err := r.Validate(); err != nil {
			t.Fatalf("seed record invalid: %v", err)
		}
		if r.IsGenerated {
			t.Error("seed records are authored content, not generated")
		}
		chapters, ok := chaptersBySubject[r.Subject]
		if !ok {
			t.Fatalf("unknown subject %q", r.Subject)
		}
		found := false
		for _, c := range chapters {
			if c == r.Chapter {
				found = true
			}
		}
		if !found {
			t.Errorf("chapter %q does not belong to subject %q", r.Chapter, r.Subject)
		}
	}
}

func TestBank_ReproducibleContent(t *testing.T) {
	a := Bank(20, 99)
	b := Bank(20, 99)
	for i := range a {
		if a[i].Text != b[i].Text || a[i].Subject != b[i].Subject || a[i].Marks != b[i].Marks {
			t.Fatalf("same seed produced different record at %d", i)
		}
	}
}

func TestRecord_MarksFollowDifficulty(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 0))
	ranges := map[question.Difficulty][2]int{
		question.DifficultyEasy:   {1, 2},
		question.DifficultyMedium: {2, 3},
		question.DifficultyHard:   {3, 5},
	}
	for i := 0; i < 200; i++ {
		r := Record(rng)
		bounds := ranges[r.Difficulty]
		if r.Marks < bounds[0] || r.Marks > bounds[1] {
			t.Fatalf("%s marks %d out of [%d,%d]", r.Difficulty, r.Marks, bounds[0], bounds[1])
		}
	}
}

func TestRun_InsertsCount(t *testing.T) {
	ins := &captureInserter{}
	rng := rand.New(rand.NewPCG(1, 0))

	n, err := Run(context.Background(), ins, rng, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 10 || len(ins.records) != 10 {
		t.Fatalf("expected 10 inserts, got %d/%d", n, len(ins.records))
	}
}

func TestRun_DefaultCount(t *testing.T) {
	ins := &captureInserter{}
	rng := rand.New(rand.NewPCG(1, 0))

	n, err := Run(context.Background(), ins, rng, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != DefaultCount {
		t.Fatalf("expected default count %d, got %d", DefaultCount, n)
	}
}

func TestRun_StopsOnInsertError(t *testing.T) {
	ins := &captureInserter{err: errors.New("db closed")}
	rng := rand.New(rand.NewPCG(1, 0))

	n, err := Run(context.Background(), ins, rng, 10)
	if err == nil {
		t.Fatal("expected insert error")
	}
	if n != 0 {
		t.Fatalf("expected 0 successful inserts, got %d", n)
	}
}

func TestRun_RespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ins := &captureInserter{}
	rng := rand.New(rand.NewPCG(1, 0))
	if _, err := Run(ctx, ins, rng, 10); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
