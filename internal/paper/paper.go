// Package paper holds the exam paper aggregate and its mutation
// operations. The aggregate is the single source of truth while a paper
// is being edited; derived totals are recomputed on every read rather
// than cached.
package paper

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anvaya/paperforge/internal/question"
)

// Section is a named, ordered grouping of questions within a sectioned
// paper. Its question list is mutated in place by the aggregate's
// operations.
type Section struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Questions   []question.Record `json:"questions"`
}

// Paper is the top-level exam document. Exactly one of Sections or
// DirectQuestions is populated, selected by IsSectionless.
type Paper struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Board     question.Board `json:"board"`
	Class     string         `json:"class"`
	Subject   string         `json:"subject"`
	CreatedBy string         `json:"createdBy"`
	CreatedAt time.Time      `json:"createdAt"`

	// Duration is the exam length in minutes.
	Duration int `json:"duration"`

	// Instructions is the general instruction block, one line per entry.
	Instructions []string `json:"instructions"`

	// TotalMarks is a snapshot taken at save time. It may diverge from
	// TotalMarks() while editing is in progress; the live value always
	// comes from the method.
	TotalMarks int `json:"totalMarks"`

	IsSectionless   bool              `json:"isSectionless"`
	Sections        []Section         `json:"sections,omitempty"`
	DirectQuestions []question.Record `json:"questions,omitempty"`
}

// Meta carries the fields needed to create a new empty paper.
type Meta struct {
	Title         string
	Board         question.Board
	Class         string
	Subject       string
	CreatedBy     string
	Duration      int
	Instructions  []string
	IsSectionless bool
}

// sectionLetters indexes auto-numbered section titles.
const sectionLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// New creates an empty paper from meta. Sectioned papers start with one
// empty "Section A"; sectionless papers start with an empty question
// list.
func New(meta Meta) *Paper {
	p := &Paper{
		ID:            uuid.NewString(),
		Title:         meta.Title,
		Board:         meta.Board,
		Class:         meta.Class,
		Subject:       meta.Subject,
		CreatedBy:     meta.CreatedBy,
		CreatedAt:     time.Now(),
		Duration:      meta.Duration,
		Instructions:  meta.Instructions,
		IsSectionless: meta.IsSectionless,
	}
	if !p.IsSectionless {
		p.Sections = []Section{{
			ID:    uuid.NewString(),
			Title: "Section A",
		}}
	}
	return p
}

// TotalMarks sums marks over every question reachable from p. Always
// computed fresh; the TotalMarks field on the struct is only a
// save-time snapshot.
func TotalMarks(p *Paper) int {
	total := 0
	for _, q := range p.allQuestions() {
		total += q.Marks
	}
	return total
}

// QuestionCount counts every question reachable from p.
func QuestionCount(p *Paper) int {
	return len(p.allQuestions())
}

func (p *Paper) allQuestions() []question.Record {
	if p.IsSectionless {
		return p.DirectQuestions
	}
	var all []question.Record
	for _, s := range p.Sections {
		all = append(all, s.Questions...)
	}
	return all
}

// AddSection appends a new empty section with an auto-numbered title.
func (p *Paper) AddSection() (*Section, error) {
	if p.IsSectionless {
		return nil, &ValidationError{Op: "add section", Message: "paper is sectionless"}
	}
	title := "Section"
	if n := len(p.Sections); n < len(sectionLetters) {
		title = fmt.Sprintf("Section %c", sectionLetters[n])
	}
	p.Sections = append(p.Sections, Section{
		ID:    uuid.NewString(),
		Title: title,
	})
	return &p.Sections[len(p.Sections)-1], nil
}

// RemoveSection deletes the named section. A sectioned paper must keep
// at least one section.
func (p *Paper) RemoveSection(sectionID string) error {
	if p.IsSectionless {
		return &ValidationError{Op: "remove section", Message: "paper is sectionless"}
	}
	idx := p.sectionIndex(sectionID)
	if idx < 0 {
		return &NotFoundError{Kind: "section", ID: sectionID}
	}
	if len(p.Sections) == 1 {
		return &ValidationError{Op: "remove section", Message: "paper must keep at least one section"}
	}
	p.Sections = append(p.Sections[:idx], p.Sections[idx+1:]...)
	return nil
}

// UpdateSectionMeta applies a partial update to a section's title and
// description. Nil fields are left unchanged.
func (p *Paper) UpdateSectionMeta(sectionID string, title, description *string) error {
	if p.IsSectionless {
		return &ValidationError{Op: "update section", Message: "paper is sectionless"}
	}
	idx := p.sectionIndex(sectionID)
	if idx < 0 {
		return &NotFoundError{Kind: "section", ID: sectionID}
	}
	if title != nil {
		p.Sections[idx].Title = *title
	}
	if description != nil {
		p.Sections[idx].Description = *description
	}
	return nil
}

// AddQuestionToSection appends q to the named section.
func (p *Paper) AddQuestionToSection(sectionID string, q question.Record) error {
	if p.IsSectionless {
		return &ValidationError{Op: "add question", Message: "paper is sectionless, use AddDirectQuestion"}
	}
	idx := p.sectionIndex(sectionID)
	if idx < 0 {
		return &NotFoundError{Kind: "section", ID: sectionID}
	}
	if err := q.Validate(); err != nil {
		return &ValidationError{Op: "add question", Message: err.Error()}
	}
	p.Sections[idx].Questions = append(p.Sections[idx].Questions, q)
	return nil
}

// RemoveQuestionFromSection removes the question with questionID from
// the named section only.
func (p *Paper) RemoveQuestionFromSection(sectionID, questionID string) error {
	if p.IsSectionless {
		return &ValidationError{Op: "remove question", Message: "paper is sectionless, use RemoveDirectQuestion"}
	}
	idx := p.sectionIndex(sectionID)
	if idx < 0 {
		return &NotFoundError{Kind: "section", ID: sectionID}
	}
	s := &p.Sections[idx]
	for i, q := range s.Questions {
		if q.ID == questionID {
			s.Questions = append(s.Questions[:i], s.Questions[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "question", ID: questionID}
}

// AddDirectQuestion appends q to a sectionless paper's flat list.
func (p *Paper) AddDirectQuestion(q question.Record) error {
	if !p.IsSectionless {
		return &ValidationError{Op: "add question", Message: "paper has sections, use AddQuestionToSection"}
	}
	if err := q.Validate(); err != nil {
		return &ValidationError{Op: "add question", Message: err.Error()}
	}
	p.DirectQuestions = append(p.DirectQuestions, q)
	return nil
}

// RemoveDirectQuestion removes the question with questionID from a
// sectionless paper's flat list.
func (p *Paper) RemoveDirectQuestion(questionID string) error {
	if !p.IsSectionless {
		return &ValidationError{Op: "remove question", Message: "paper has sections, use RemoveQuestionFromSection"}
	}
	for i, q := range p.DirectQuestions {
		if q.ID == questionID {
			p.DirectQuestions = append(p.DirectQuestions[:i], p.DirectQuestions[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "question", ID: questionID}
}

// ReorderQuestion moves the question at fromIndex to toIndex within a
// section, shifting the questions in between.
func (p *Paper) ReorderQuestion(sectionID string, fromIndex, toIndex int) error {
	if p.IsSectionless {
		return &ValidationError{Op: "reorder question", Message: "paper is sectionless"}
	}
	idx := p.sectionIndex(sectionID)
	if idx < 0 {
		return &NotFoundError{Kind: "section", ID: sectionID}
	}
	qs := p.Sections[idx].Questions
	if fromIndex < 0 || fromIndex >= len(qs) || toIndex < 0 || toIndex >= len(qs) {
		return &ValidationError{
			Op:      "reorder question",
			Message: fmt.Sprintf("indices %d -> %d out of range for %d questions", fromIndex, toIndex, len(qs)),
		}
	}
	moved := qs[fromIndex]
	qs = append(qs[:fromIndex], qs[fromIndex+1:]...)
	qs = append(qs[:toIndex], append([]question.Record{moved}, qs[toIndex:]...)...)
	p.Sections[idx].Questions = qs
	return nil
}

func (p *Paper) sectionIndex(sectionID string) int {
	for i, s := range p.Sections {
		if s.ID == sectionID {
			return i
		}
	}
	return -1
}
