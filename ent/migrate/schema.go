// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmCallsColumns holds the columns for the "llm_calls" table.
	LlmCallsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// LlmCallsTable holds the schema information for the "llm_calls" table.
	LlmCallsTable = &schema.Table{
		Name:       "llm_calls",
		Columns:    LlmCallsColumns,
		PrimaryKey: []*schema.Column{LlmCallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmcall_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmCallsColumns[1]},
			},
		},
	}
	// PapersColumns holds the columns for the "papers" table.
	PapersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "board", Type: field.TypeString},
		{Name: "class", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "created_by", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "duration", Type: field.TypeInt},
		{Name: "total_marks", Type: field.TypeInt},
		{Name: "is_sectionless", Type: field.TypeBool, Default: false},
		{Name: "instructions", Type: field.TypeJSON, Nullable: true},
		{Name: "sections", Type: field.TypeJSON, Nullable: true},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
	}
	// PapersTable holds the schema information for the "papers" table.
	PapersTable = &schema.Table{
		Name:       "papers",
		Columns:    PapersColumns,
		PrimaryKey: []*schema.Column{PapersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "paper_board_class_subject",
				Unique:  false,
				Columns: []*schema.Column{PapersColumns[2], PapersColumns[3], PapersColumns[4]},
			},
			{
				Name:    "paper_created_at",
				Unique:  false,
				Columns: []*schema.Column{PapersColumns[6]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeString},
		{Name: "board", Type: field.TypeString},
		{Name: "class", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "chapter", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "bloom_level", Type: field.TypeString},
		{Name: "marks", Type: field.TypeInt},
		{Name: "answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "has_image", Type: field.TypeBool, Default: false},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "is_generated", Type: field.TypeBool, Default: false},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_board_class_subject",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[3], QuestionsColumns[4], QuestionsColumns[5]},
			},
			{
				Name:    "question_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[8]},
			},
			{
				Name:    "question_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[16]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmCallsTable,
		PapersTable,
		QuestionsTable,
	}
)

func init() {
}
