package question

import (
	"reflect"
	"testing"
)

func makePool() []Record {
	base := validRecord()
	pool := make([]Record, 0, 6)

	r1 := base
	r1.ID = "q1"
	r1.Text = "Describe Equations in Algebra."
	pool = append(pool, r1)

	r2 := base
	r2.ID = "q2"
	r2.Chapter = "Geometry"
	r2.Topic = "Triangles"
	r2.Text = "Explain Triangles in Geometry."
	r2.Difficulty = DifficultyMedium
	pool = append(pool, r2)

	r3 := base
	r3.ID = "q3"
	r3.Board = BoardICSE
	pool = append(pool, r3)

	r4 := base
	r4.ID = "q4"
	r4.Class = "12"
	pool = append(pool, r4)

	r5 := base
	r5.ID = "q5"
	r5.Subject = "Physics"
	r5.Chapter = "Optics"
	pool = append(pool, r5)

	r6 := base
	r6.ID = "q6"
	r6.Type = TypeMCQ
	r6.Options = []string{"a", "b", "c", "d"}
	r6.Difficulty = DifficultyHard
	r6.Text = "Which of the following best describes Polynomials?"
	r6.Topic = "Polynomials"
	pool = append(pool, r6)

	return pool
}

func mathScope() Scope {
	return Scope{Board: BoardCBSE, Class: "10", Subject: "Mathematics"}
}

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilter_ScopeOnly(t *testing.T) {
	got := Filter(makePool(), mathScope(), Refinements{})
	want := []string{"q1", "q2", "q6"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestFilter_ScopeIsCaseSensitive(t *testing.T) {
	scope := mathScope()
	scope.Subject = "mathematics"
	got := Filter(makePool(), scope, Refinements{})
	if len(got) != 0 {
		t.Fatalf("lowercase subject should match nothing, got %v", ids(got))
	}
}

func TestFilter_Chapters(t *testing.T) {
	got := Filter(makePool(), mathScope(), Refinements{Chapters: []string{"Geometry"}})
	if !reflect.DeepEqual(ids(got), []string{"q2"}) {
		t.Fatalf("expected [q2], got %v", ids(got))
	}
}

func TestFilter_TypeAndDifficulty(t *testing.T) {
	got := Filter(makePool(), mathScope(), Refinements{Type: TypeMCQ})
	if !reflect.DeepEqual(ids(got), []string{"q6"}) {
		t.Fatalf("expected [q6], got %v", ids(got))
	}

	got = Filter(makePool(), mathScope(), Refinements{Difficulty: DifficultyMedium})
	if !reflect.DeepEqual(ids(got), []string{"q2"}) {
		t.Fatalf("expected [q2], got %v", ids(got))
	}
}

func TestFilter_SearchCaseInsensitive(t *testing.T) {
	got := Filter(makePool(), mathScope(), Refinements{Search: "POLYNOMIALS"})
	if !reflect.DeepEqual(ids(got), []string{"q6"}) {
		t.Fatalf("expected [q6], got %v", ids(got))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	scope := mathScope()
	ref := Refinements{Chapters: []string{"Algebra"}, Search: "describe"}

	once := Filter(makePool(), scope, ref)
	twice := Filter(once, scope, ref)
	if !reflect.DeepEqual(once, twice) {
		t.Fatal("filtering an already-filtered pool changed the result")
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	pool := makePool()
	before := ids(pool)
	_ = Filter(pool, mathScope(), Refinements{Type: TypeMCQ})
	if !reflect.DeepEqual(ids(pool), before) {
		t.Fatal("input pool was reordered")
	}
}

func TestFilter_EmptyResult(t *testing.T) {
	got := Filter(makePool(), mathScope(), Refinements{Chapters: []string{"Calculus"}})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}
}
