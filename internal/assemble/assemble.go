// Package assemble partitions a selected question list into the fixed
// paper sections by question type.
package assemble

import "github.com/anvaya/paperforge/internal/question"

// SectionSpec describes one target section: which question types it
// accepts, how many it holds, and the static title/instruction strings
// printed on the paper. The instruction text is caller-supplied copy,
// never derived from the questions inside.
type SectionSpec struct {
	Label        string
	Title        string
	Instructions string
	Types        []question.Type
	Cap          int
}

// DefaultSpecs returns the standard three-section exam layout:
// Section A for objective questions, B for short answers, C for long
// answers. The caps (10/7/5) are observed behavior constants.
func DefaultSpecs() []SectionSpec {
	return []SectionSpec{
		{
			Label:        "A",
			Title:        "Section A: Multiple Choice and Very Short Answer Questions",
			Instructions: "Answer all questions. Each question carries 1 mark.",
			Types:        []question.Type{question.TypeMCQ, question.TypeFillInBlank},
			Cap:          10,
		},
		{
			Label:        "B",
			Title:        "Section B: Short Answer Questions",
			Instructions: "Answer any 5 questions. Each question carries 3 marks.",
			Types:        []question.Type{question.TypeShortAnswer},
			Cap:          7,
		},
		{
			Label:        "C",
			Title:        "Section C: Long Answer Questions",
			Instructions: "Answer any 3 questions. Each question carries 5 marks.",
			Types:        []question.Type{question.TypeLongAnswer},
			Cap:          5,
		},
	}
}

// Bucket is one assembled section before it becomes part of a paper.
type Bucket struct {
	Spec      SectionSpec
	Questions []question.Record
}

// Result is the outcome of assembling a selection. Buckets always has
// one entry per spec, in spec order, even when a bucket is empty.
// Unplaced holds every input question that matched no spec or arrived
// after its section's cap was reached; nothing is silently dropped.
type Result struct {
	Buckets  []Bucket
	Unplaced []question.Record
}

// Assemble distributes selection across specs. Each question goes to
// the first spec that accepts its type and still has room; within a
// bucket, input order is preserved. A question appears in exactly one
// bucket or in Unplaced.
func Assemble(selection []question.Record, specs []SectionSpec) Result {
	res := Result{Buckets: make([]Bucket, len(specs))}
	for i, spec := range specs {
		res.Buckets[i].Spec = spec
	}

	for _, q := range selection {
		if !place(&res, q) {
			res.Unplaced = append(res.Unplaced, q)
		}
	}
	return res
}

func place(res *Result, q question.Record) bool {
	for i := range res.Buckets {
		b := &res.Buckets[i]
		if !accepts(b.Spec, q.Type) {
			continue
		}
		if len(b.Questions) >= b.Spec.Cap {
			continue
		}
		b.Questions = append(b.Questions, q)
		return true
	}
	return false
}

func accepts(spec SectionSpec, t question.Type) bool {
	for _, st := range spec.Types {
		if st == t {
			return true
		}
	}
	return false
}
