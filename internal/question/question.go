// Package question defines the question bank value types and the pure
// filter used to narrow a pool to a requested scope.
package question

import "fmt"

// Board identifies the examination board a question was written for.
type Board string

const (
	BoardCBSE  Board = "CBSE"
	BoardICSE  Board = "ICSE"
	BoardState Board = "State"
)

// Difficulty is the question's difficulty band.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// BloomLevel is the Bloom's taxonomy cognitive level a question targets.
type BloomLevel string

const (
	BloomRemember   BloomLevel = "Remember"
	BloomUnderstand BloomLevel = "Understand"
	BloomApply      BloomLevel = "Apply"
	BloomAnalyze    BloomLevel = "Analyze"
	BloomEvaluate   BloomLevel = "Evaluate"
	BloomCreate     BloomLevel = "Create"
)

// Type is the pedagogical shape of a question. It selects which payload
// fields on a Record are meaningful.
type Type string

const (
	TypeMCQ               Type = "MCQ"
	TypeShortAnswer       Type = "Short Answer"
	TypeLongAnswer        Type = "Long Answer"
	TypeFillInBlank       Type = "Fill in the Blank"
	TypeMatchTheFollowing Type = "Match the Following"
	TypeAssertionReason   Type = "Assertion and Reason"
	TypeComprehension     Type = "Comprehension"
)

// MatchPair is one left/right pairing in a match-the-following question.
type MatchPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// SubQuestion is a child item of a comprehension question. Sub-questions
// carry their own marks and are graded independently; the parent Record's
// Marks is not required to equal the sum of its sub-questions' marks.
type SubQuestion struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Type    Type     `json:"type"`
	Marks   int      `json:"marks"`
	Options []string `json:"options,omitempty"`
	Answer  string   `json:"answer,omitempty"`
}

// Record is a single question in the bank. Records are treated as
// immutable values: an edit produces a replacement Record with the same ID.
type Record struct {
	// ID is an opaque identifier, unique and stable for the record's lifetime.
	ID string `json:"id"`

	// Text is the question prompt shown on the printed paper.
	Text string `json:"text"`

	Type    Type   `json:"type"`
	Board   Board  `json:"board"`
	Class   string `json:"class"`
	Subject string `json:"subject"`

	// Chapter and Topic are free-text classification used for filtering.
	Chapter string `json:"chapter"`
	Topic   string `json:"topic"`

	Difficulty Difficulty `json:"difficulty"`
	BloomLevel BloomLevel `json:"bloomLevel"`

	// Marks is the mark value printed against the question. Always >= 1.
	Marks int `json:"marks"`

	// Answer is the expected answer or marking guidance. Optional.
	Answer string `json:"answer,omitempty"`

	// Options holds the choices for an MCQ. By convention the first
	// option is the correct one for generated records.
	Options []string `json:"options,omitempty"`

	// MatchPairs holds the pairings for a match-the-following question.
	MatchPairs []MatchPair `json:"matchPairs,omitempty"`

	// SubQuestions holds the child items of a comprehension question.
	SubQuestions []SubQuestion `json:"subQuestions,omitempty"`

	// Assertion and Reason hold the two statements of an
	// assertion-and-reason question.
	Assertion string `json:"assertion,omitempty"`
	Reason    string `json:"reason,omitempty"`

	// HasImage indicates an attached figure. ImageURL is set only when
	// HasImage is true.
	HasImage bool   `json:"hasImage,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`

	// IsGenerated marks records produced by the synthesizer rather than
	// authored by a teacher.
	IsGenerated bool `json:"isGenerated,omitempty"`
}

// Validate checks the structural invariants of a Record. It returns nil
// for a well-formed record and a descriptive error for the first
// violation found.
func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("question id is empty")
	}
	if r.Text == "" {
		return fmt.Errorf("question %s: text is empty", r.ID)
	}
	if r.Marks < 1 {
		return fmt.Errorf("question %s: marks must be >= 1, got %d", r.ID, r.Marks)
	}
	if r.Type == TypeMCQ && r.Options != nil && len(r.Options) < 2 {
		return fmt.Errorf("question %s: MCQ needs at least 2 options, got %d", r.ID, len(r.Options))
	}
	if r.ImageURL != "" && !r.HasImage {
		return fmt.Errorf("question %s: imageUrl set without hasImage", r.ID)
	}
	if err := r.validatePayload(); err != nil {
		return err
	}
	return nil
}

// validatePayload rejects payload fields that don't belong to the
// record's type tag.
func (r Record) validatePayload() error {
	if r.Type != TypeMCQ && len(r.Options) > 0 {
		return fmt.Errorf("question %s: options only valid for MCQ, type is %q", r.ID, r.Type)
	}
	if r.Type != TypeMatchTheFollowing && len(r.MatchPairs) > 0 {
		return fmt.Errorf("question %s: matchPairs only valid for Match the Following, type is %q", r.ID, r.Type)
	}
	if r.Type != TypeComprehension && len(r.SubQuestions) > 0 {
		return fmt.Errorf("question %s: subQuestions only valid for Comprehension, type is %q", r.ID, r.Type)
	}
	if r.Type != TypeAssertionReason && (r.Assertion != "" || r.Reason != "") {
		return fmt.Errorf("question %s: assertion/reason only valid for Assertion and Reason, type is %q", r.ID, r.Type)
	}
	for _, sq := range r.SubQuestions {
		if sq.Marks < 1 {
			return fmt.Errorf("question %s: sub-question %s marks must be >= 1, got %d", r.ID, sq.ID, sq.Marks)
		}
	}
	return nil
}
