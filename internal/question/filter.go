package question

import "strings"

// Scope selects questions written for one board, class and subject.
// All three fields are matched exactly, case-sensitive.
type Scope struct {
	Board   Board
	Class   string
	Subject string
}

// Refinements narrows a scoped pool further. Zero-valued fields are
// ignored; a set field must match for a record to pass.
type Refinements struct {
	// Chapters keeps records whose Chapter is in the list. Empty = all.
	Chapters []string

	// Topics keeps records whose Topic is in the list. Empty = all.
	Topics []string

	// Type keeps records of one question type.
	Type Type

	// Difficulty keeps records of one difficulty band.
	Difficulty Difficulty

	// Search keeps records whose text contains this string,
	// case-insensitive.
	Search string
}

// Filter returns the records of pool that match scope and every set
// refinement, preserving pool order. It never errors; an empty result
// means nothing matched.
func Filter(pool []Record, scope Scope, ref Refinements) []Record {
	var out []Record
	for _, r := range pool {
		if !matchesScope(r, scope) {
			continue
		}
		if !matchesRefinements(r, ref) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesScope(r Record, scope Scope) bool {
	return r.Board == scope.Board && r.Class == scope.Class && r.Subject == scope.Subject
}

func matchesRefinements(r Record, ref Refinements) bool {
	if len(ref.Chapters) > 0 && !contains(ref.Chapters, r.Chapter) {
		return false
	}
	if len(ref.Topics) > 0 && !contains(ref.Topics, r.Topic) {
		return false
	}
	if ref.Type != "" && r.Type != ref.Type {
		return false
	}
	if ref.Difficulty != "" && r.Difficulty != ref.Difficulty {
		return false
	}
	if ref.Search != "" && !strings.Contains(strings.ToLower(r.Text), strings.ToLower(ref.Search)) {
		return false
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
