// Code generated by ent, DO NOT EDIT.

package paper

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the paper type in the database.
	Label = "paper"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldBoard holds the string denoting the board field in the database.
	FieldBoard = "board"
	// FieldClass holds the string denoting the class field in the database.
	FieldClass = "class"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// FieldTotalMarks holds the string denoting the total_marks field in the database.
	FieldTotalMarks = "total_marks"
	// FieldIsSectionless holds the string denoting the is_sectionless field in the database.
	FieldIsSectionless = "is_sectionless"
	// FieldInstructions holds the string denoting the instructions field in the database.
	FieldInstructions = "instructions"
	// FieldSections holds the string denoting the sections field in the database.
	FieldSections = "sections"
	// FieldQuestions holds the string denoting the questions field in the database.
	FieldQuestions = "questions"
	// Table holds the table name of the paper in the database.
	Table = "papers"
)

// Columns holds all SQL columns for paper fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldBoard,
	FieldClass,
	FieldSubject,
	FieldCreatedBy,
	FieldCreatedAt,
	FieldDuration,
	FieldTotalMarks,
	FieldIsSectionless,
	FieldInstructions,
	FieldSections,
	FieldQuestions,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	DurationValidator func(int) error
	// TotalMarksValidator is a validator for the "total_marks" field. It is called by the builders before save.
	TotalMarksValidator func(int) error
	// DefaultIsSectionless holds the default value on creation for the "is_sectionless" field.
	DefaultIsSectionless bool
)

// OrderOption defines the ordering options for the Paper queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByBoard orders the results by the board field.
func ByBoard(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoard, opts...).ToFunc()
}

// ByClass orders the results by the class field.
func ByClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClass, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByTotalMarks orders the results by the total_marks field.
func ByTotalMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMarks, opts...).ToFunc()
}

// ByIsSectionless orders the results by the is_sectionless field.
func ByIsSectionless(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSectionless, opts...).ToFunc()
}
