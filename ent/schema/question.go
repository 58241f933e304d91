package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a persisted question bank record. Scope and
// classification attributes get typed columns so queries can filter on
// them; the type-specific payload (options, match pairs, sub-questions,
// assertion/reason) is stored as JSON.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("Opaque question id, assigned by the caller"),
		field.Text("text"),
		field.String("type"),
		field.String("board"),
		field.String("class"),
		field.String("subject"),
		field.String("chapter"),
		field.String("topic"),
		field.String("difficulty"),
		field.String("bloom_level"),
		field.Int("marks").
			Positive(),
		field.Text("answer").
			Optional(),
		field.Bool("has_image").
			Default(false),
		field.String("image_url").
			Optional(),
		field.Bool("is_generated").
			Default(false),
		field.JSON("payload", map[string]any{}).
			Optional().
			Comment("Type-specific variant payload as JSON"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("board", "class", "subject"),
		index.Fields("difficulty"),
		index.Fields("created_at"),
	}
}
