package assemble

import (
	"fmt"
	"testing"

	"github.com/anvaya/paperforge/internal/question"
)

func typed(t question.Type, n int) []question.Record {
	out := make([]question.Record, n)
	for i := range out {
		out[i] = question.Record{
			ID:    fmt.Sprintf("%s-%d", t, i),
			Text:  "x",
			Type:  t,
			Marks: 1,
		}
	}
	return out
}

func TestAssemble_AllBucketsPresent(t *testing.T) {
	res := Assemble(nil, DefaultSpecs())
	if len(res.Buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(res.Buckets))
	}
	for _, b := range res.Buckets {
		if len(b.Questions) != 0 {
			t.Errorf("bucket %s should be empty", b.Spec.Label)
		}
	}
	if len(res.Unplaced) != 0 {
		t.Errorf("expected no unplaced questions")
	}
}

func TestAssemble_ByType(t *testing.T) {
	var sel []question.Record
	sel = append(sel, typed(question.TypeMCQ, 3)...)
	sel = append(sel, typed(question.TypeFillInBlank, 2)...)
	sel = append(sel, typed(question.TypeShortAnswer, 4)...)
	sel = append(sel, typed(question.TypeLongAnswer, 2)...)

	res := Assemble(sel, DefaultSpecs())

	if got := len(res.Buckets[0].Questions); got != 5 {
		t.Errorf("section A: expected 5 questions, got %d", got)
	}
	if got := len(res.Buckets[1].Questions); got != 4 {
		t.Errorf("section B: expected 4 questions, got %d", got)
	}
	if got := len(res.Buckets[2].Questions); got != 2 {
		t.Errorf("section C: expected 2 questions, got %d", got)
	}
	if len(res.Unplaced) != 0 {
		t.Errorf("expected no unplaced questions, got %d", len(res.Unplaced))
	}
}

func TestAssemble_CapOverflowReported(t *testing.T) {
	sel := typed(question.TypeShortAnswer, 9) // cap is 7

	res := Assemble(sel, DefaultSpecs())

	if got := len(res.Buckets[1].Questions); got != 7 {
		t.Fatalf("section B: expected 7 questions, got %d", got)
	}
	if got := len(res.Unplaced); got != 2 {
		t.Fatalf("expected 2 unplaced, got %d", got)
	}

	// Nothing lost, nothing duplicated.
	total := len(res.Unplaced)
	for _, b := range res.Buckets {
		total += len(b.Questions)
	}
	if total != len(sel) {
		t.Fatalf("question count changed: in %d, out %d", len(sel), total)
	}
}

func TestAssemble_UnmatchedTypeUnplaced(t *testing.T) {
	sel := typed(question.TypeComprehension, 2)
	res := Assemble(sel, DefaultSpecs())
	if len(res.Unplaced) != 2 {
		t.Fatalf("expected 2 unplaced comprehension questions, got %d", len(res.Unplaced))
	}
}

func TestAssemble_FirstMatchingSpecWins(t *testing.T) {
	specs := []SectionSpec{
		{Label: "A", Types: []question.Type{question.TypeMCQ}, Cap: 1},
		{Label: "B", Types: []question.Type{question.TypeMCQ}, Cap: 5},
	}
	sel := typed(question.TypeMCQ, 3)

	res := Assemble(sel, specs)
	if len(res.Buckets[0].Questions) != 1 {
		t.Errorf("first spec should fill to cap first")
	}
	if len(res.Buckets[1].Questions) != 2 {
		t.Errorf("overflow should spill to the next accepting spec, got %d", len(res.Buckets[1].Questions))
	}
}

func TestAssemble_PreservesOrderWithinBucket(t *testing.T) {
	sel := typed(question.TypeLongAnswer, 4)
	res := Assemble(sel, DefaultSpecs())
	for i, q := range res.Buckets[2].Questions {
		if q.ID != sel[i].ID {
			t.Fatalf("order changed at %d: got %s", i, q.ID)
		}
	}
}

func TestDefaultSpecs_Caps(t *testing.T) {
	specs := DefaultSpecs()
	caps := []int{10, 7, 5}
	for i, spec := range specs {
		if spec.Cap != caps[i] {
			t.Errorf("spec %s: expected cap %d, got %d", spec.Label, caps[i], spec.Cap)
		}
	}
}
