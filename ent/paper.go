// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anvaya/paperforge/ent/paper"
)

// Paper is the model entity for the Paper schema.
type Paper struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Board holds the value of the "board" field.
	Board string `json:"board,omitempty"`
	// Class holds the value of the "class" field.
	Class string `json:"class,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Exam length in minutes
	Duration int `json:"duration,omitempty"`
	// Snapshot taken at save time
	TotalMarks int `json:"total_marks,omitempty"`
	// IsSectionless holds the value of the "is_sectionless" field.
	IsSectionless bool `json:"is_sectionless,omitempty"`
	// Instructions holds the value of the "instructions" field.
	Instructions []string `json:"instructions,omitempty"`
	// Sections holds the value of the "sections" field.
	Sections []map[string]interface{} `json:"sections,omitempty"`
	// Flat question list for sectionless papers
	Questions    []map[string]interface{} `json:"questions,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Paper) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paper.FieldInstructions, paper.FieldSections, paper.FieldQuestions:
			values[i] = new([]byte)
		case paper.FieldIsSectionless:
			values[i] = new(sql.NullBool)
		case paper.FieldDuration, paper.FieldTotalMarks:
			values[i] = new(sql.NullInt64)
		case paper.FieldID, paper.FieldTitle, paper.FieldBoard, paper.FieldClass, paper.FieldSubject, paper.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case paper.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Paper fields.
func (_m *Paper) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paper.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case paper.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case paper.FieldBoard:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field board", values[i])
			} else if value.Valid {
				_m.Board = value.String
			}
		case paper.FieldClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class", values[i])
			} else if value.Valid {
				_m.Class = value.String
			}
		case paper.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case paper.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case paper.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case paper.FieldDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = int(value.Int64)
			}
		case paper.FieldTotalMarks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_marks", values[i])
			} else if value.Valid {
				_m.TotalMarks = int(value.Int64)
			}
		case paper.FieldIsSectionless:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_sectionless", values[i])
			} else if value.Valid {
				_m.IsSectionless = value.Bool
			}
		case paper.FieldInstructions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field instructions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Instructions); err != nil {
					return fmt.Errorf("unmarshal field instructions: %w", err)
				}
			}
		case paper.FieldSections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sections); err != nil {
					return fmt.Errorf("unmarshal field sections: %w", err)
				}
			}
		case paper.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Paper.
// This includes values selected through modifiers, order, etc.
func (_m *Paper) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Paper.
// Note that you need to call Paper.Unwrap() before calling this method if this Paper
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Paper) Update() *PaperUpdateOne {
	return NewPaperClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Paper entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Paper) Unwrap() *Paper {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Paper is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Paper) String() string {
	var builder strings.Builder
	builder.WriteString("Paper(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("board=")
	builder.WriteString(_m.Board)
	builder.WriteString(", ")
	builder.WriteString("class=")
	builder.WriteString(_m.Class)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Duration))
	builder.WriteString(", ")
	builder.WriteString("total_marks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMarks))
	builder.WriteString(", ")
	builder.WriteString("is_sectionless=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSectionless))
	builder.WriteString(", ")
	builder.WriteString("instructions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Instructions))
	builder.WriteString(", ")
	builder.WriteString("sections=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sections))
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteByte(')')
	return builder.String()
}

// Papers is a parsable slice of Paper.
type Papers []*Paper
