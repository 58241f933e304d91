package paper

import "fmt"

// ValidationError reports a caller-violated structural invariant:
// removing the last section, out-of-range reorder indices, or using a
// sectioned operation on a sectionless paper (and vice versa). The
// aggregate is unchanged when one is returned.
type ValidationError struct {
	Op      string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// NotFoundError reports that a referenced section or question id does
// not exist in the paper.
type NotFoundError struct {
	Kind string // "section" or "question"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// InsufficientPoolError reports that the filtered pool cannot meet a
// difficulty quota and no synthesizer is available to cover the gap.
type InsufficientPoolError struct {
	Difficulty string
	Want       int
	Have       int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("pool has %d %s questions, need %d and synthesis is disabled", e.Have, e.Difficulty, e.Want)
}
