// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMCall is the predicate function for llmcall builders.
type LLMCall func(*sql.Selector)

// Paper is the predicate function for paper builders.
type Paper func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)
