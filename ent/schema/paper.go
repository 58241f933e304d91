package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Paper is a saved question paper. The section/question structure is
// stored as JSON; the scalar columns carry the metadata the list views
// filter and sort on. The total_marks column is the save-time snapshot,
// not the live computed value.
type Paper struct {
	ent.Schema
}

func (Paper) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable(),
		field.String("title"),
		field.String("board"),
		field.String("class"),
		field.String("subject"),
		field.String("created_by"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Int("duration").
			NonNegative().
			Comment("Exam length in minutes"),
		field.Int("total_marks").
			NonNegative().
			Comment("Snapshot taken at save time"),
		field.Bool("is_sectionless").
			Default(false),
		field.JSON("instructions", []string{}).
			Optional(),
		field.JSON("sections", []map[string]any{}).
			Optional(),
		field.JSON("questions", []map[string]any{}).
			Optional().
			Comment("Flat question list for sectionless papers"),
	}
}

func (Paper) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("board", "class", "subject"),
		index.Fields("created_at"),
	}
}
