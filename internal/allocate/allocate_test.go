package allocate

import (
	"fmt"
	"testing"

	"github.com/anvaya/paperforge/internal/question"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		target int
		dist   Distribution
		want   Counts
	}{
		// Exact splits, no remainder.
		{20, Distribution{Easy: 40, Medium: 40, Hard: 20}, Counts{8, 8, 4}},
		{10, Distribution{Easy: 50, Medium: 30, Hard: 20}, Counts{5, 3, 2}},
		{0, Distribution{Easy: 40, Medium: 40, Hard: 20}, Counts{0, 0, 0}},

		// Remainder 1 goes to easy.
		{10, Distribution{Easy: 34, Medium: 33, Hard: 33}, Counts{4, 3, 3}},

		// Remainder 1 again with a hard-heavy split.
		{10, Distribution{Easy: 25, Medium: 25, Hard: 50}, Counts{3, 2, 5}},

		// Extreme distributions.
		{7, Distribution{Easy: 100, Medium: 0, Hard: 0}, Counts{7, 0, 0}},
		{7, Distribution{Easy: 0, Medium: 0, Hard: 100}, Counts{0, 0, 7}},

		// Remainder 2 with a skewed split: 5*33=1.65->1, 5*33->1, 5*34->1.7->1, rem 2.
		{5, Distribution{Easy: 33, Medium: 33, Hard: 34}, Counts{2, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%d-%d-%d", tt.target, tt.dist.Easy, tt.dist.Medium, tt.dist.Hard), func(t *testing.T) {
			got, err := Split(tt.target, tt.dist)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
			if got.Total() != tt.target {
				t.Fatalf("counts sum %d, want target %d", got.Total(), tt.target)
			}
		})
	}
}

func TestSplit_SumAlwaysTarget(t *testing.T) {
	dists := []Distribution{
		{34, 33, 33},
		{40, 40, 20},
		{1, 1, 98},
		{98, 1, 1},
		{33, 34, 33},
	}
	for target := 0; target <= 50; target++ {
		for _, d := range dists {
			got, err := Split(target, d)
			if err != nil {
				t.Fatalf("target %d dist %+v: %v", target, d, err)
			}
			if got.Total() != target {
				t.Fatalf("target %d dist %+v: counts %+v sum %d", target, d, got, got.Total())
			}
		}
	}
}

func TestSplit_Errors(t *testing.T) {
	if _, err := Split(-1, Distribution{Easy: 40, Medium: 40, Hard: 20}); err == nil {
		t.Error("expected error for negative target")
	}
	if _, err := Split(10, Distribution{Easy: 40, Medium: 40, Hard: 30}); err == nil {
		t.Error("expected error for sum 110")
	}
	if _, err := Split(10, Distribution{Easy: 120, Medium: -10, Hard: -10}); err == nil {
		t.Error("expected error for negative percentage")
	}
}

func TestCapTarget(t *testing.T) {
	if got := CapTarget(20, 12); got != 12 {
		t.Errorf("expected 12, got %d", got)
	}
	if got := CapTarget(20, 25); got != 20 {
		t.Errorf("expected 20, got %d", got)
	}
	if got := CapTarget(20, 0); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func bandPool(easy, medium, hard int) []question.Record {
	var pool []question.Record
	add := func(d question.Difficulty, n int) {
		for i := 0; i < n; i++ {
			pool = append(pool, question.Record{
				ID:         fmt.Sprintf("%s-%d", d, i),
				Text:       "x",
				Difficulty: d,
				Marks:      1,
			})
		}
	}
	add(question.DifficultyEasy, easy)
	add(question.DifficultyMedium, medium)
	add(question.DifficultyHard, hard)
	return pool
}

func TestPick_FullPool(t *testing.T) {
	sel := Pick(bandPool(10, 10, 5), Counts{Easy: 8, Medium: 8, Hard: 4})
	if len(sel.Easy) != 8 || len(sel.Medium) != 8 || len(sel.Hard) != 4 {
		t.Fatalf("unexpected band sizes: %d/%d/%d", len(sel.Easy), len(sel.Medium), len(sel.Hard))
	}
	if sel.Shortfall != (Counts{}) {
		t.Fatalf("expected no shortfall, got %+v", sel.Shortfall)
	}
	if len(sel.All()) != 20 {
		t.Fatalf("expected 20 total, got %d", len(sel.All()))
	}
}

func TestPick_ReportsShortfall(t *testing.T) {
	sel := Pick(bandPool(2, 5, 0), Counts{Easy: 4, Medium: 3, Hard: 2})
	want := Counts{Easy: 2, Medium: 0, Hard: 2}
	if sel.Shortfall != want {
		t.Fatalf("expected shortfall %+v, got %+v", want, sel.Shortfall)
	}
}

func TestPick_PreservesPoolOrder(t *testing.T) {
	pool := bandPool(3, 0, 0)
	sel := Pick(pool, Counts{Easy: 3})
	for i, r := range sel.Easy {
		if r.ID != pool[i].ID {
			t.Fatalf("pick reordered the pool: got %s at %d", r.ID, i)
		}
	}
}
