package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMCall is the durable usage log of provider requests made during AI
// question synthesis.
type LLMCall struct {
	ent.Schema
}

func (LLMCall) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("provider"),
		field.String("model"),
		field.String("purpose"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.Text("error_message").
			Optional(),
	}
}

func (LLMCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
