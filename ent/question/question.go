// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldBoard holds the string denoting the board field in the database.
	FieldBoard = "board"
	// FieldClass holds the string denoting the class field in the database.
	FieldClass = "class"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldChapter holds the string denoting the chapter field in the database.
	FieldChapter = "chapter"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldBloomLevel holds the string denoting the bloom_level field in the database.
	FieldBloomLevel = "bloom_level"
	// FieldMarks holds the string denoting the marks field in the database.
	FieldMarks = "marks"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldHasImage holds the string denoting the has_image field in the database.
	FieldHasImage = "has_image"
	// FieldImageURL holds the string denoting the image_url field in the database.
	FieldImageURL = "image_url"
	// FieldIsGenerated holds the string denoting the is_generated field in the database.
	FieldIsGenerated = "is_generated"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldText,
	FieldType,
	FieldBoard,
	FieldClass,
	FieldSubject,
	FieldChapter,
	FieldTopic,
	FieldDifficulty,
	FieldBloomLevel,
	FieldMarks,
	FieldAnswer,
	FieldHasImage,
	FieldImageURL,
	FieldIsGenerated,
	FieldPayload,
	FieldCreatedAt,
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
	// MarksValidator is a validator for the "marks" field. It is called by the builders before save.
	MarksValidator func(int) error
	// DefaultHasImage holds the default value on creation for the "has_image" field.
	DefaultHasImage bool
	// DefaultIsGenerated holds the default value on creation for the "is_generated" field.
	DefaultIsGenerated bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
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

// ByChapter orders the results by the chapter field.
func ByChapter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapter, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByBloomLevel orders the results by the bloom_level field.
func ByBloomLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloomLevel, opts...).ToFunc()
}

// ByMarks orders the results by the marks field.
func ByMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarks, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByHasImage orders the results by the has_image field.
func ByHasImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasImage, opts...).ToFunc()
}

// ByImageURL orders the results by the image_url field.
func ByImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURL, opts...).ToFunc()
}

// ByIsGenerated orders the results by the is_generated field.
func ByIsGenerated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsGenerated, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
