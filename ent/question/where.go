// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anvaya/paperforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldID, id))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldText, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldType, v))
}

// Board applies equality check predicate on the "board" field. It's identical to BoardEQ.
func Board(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldBoard, v))
}

// Class applies equality check predicate on the "class" field. It's identical to ClassEQ.
func Class(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldClass, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubject, v))
}

// Chapter applies equality check predicate on the "chapter" field. It's identical to ChapterEQ.
func Chapter(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldChapter, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopic, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// BloomLevel applies equality check predicate on the "bloom_level" field. It's identical to BloomLevelEQ.
func BloomLevel(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldBloomLevel, v))
}

// Marks applies equality check predicate on the "marks" field. It's identical to MarksEQ.
func Marks(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldMarks, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAnswer, v))
}

// HasImage applies equality check predicate on the "has_image" field. It's identical to HasImageEQ.
func HasImage(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldHasImage, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldImageURL, v))
}

// IsGenerated applies equality check predicate on the "is_generated" field. It's identical to IsGeneratedEQ.
func IsGenerated(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsGenerated, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldText, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldType, v))
}

// BoardEQ applies the EQ predicate on the "board" field.
func BoardEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldBoard, v))
}

// BoardNEQ applies the NEQ predicate on the "board" field.
func BoardNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldBoard, v))
}

// BoardIn applies the In predicate on the "board" field.
func BoardIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldBoard, vs...))
}

// BoardNotIn applies the NotIn predicate on the "board" field.
func BoardNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldBoard, vs...))
}

// BoardGT applies the GT predicate on the "board" field.
func BoardGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldBoard, v))
}

// BoardGTE applies the GTE predicate on the "board" field.
func BoardGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldBoard, v))
}

// BoardLT applies the LT predicate on the "board" field.
func BoardLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldBoard, v))
}

// BoardLTE applies the LTE predicate on the "board" field.
func BoardLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldBoard, v))
}

// BoardContains applies the Contains predicate on the "board" field.
func BoardContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldBoard, v))
}

// BoardHasPrefix applies the HasPrefix predicate on the "board" field.
func BoardHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldBoard, v))
}

// BoardHasSuffix applies the HasSuffix predicate on the "board" field.
func BoardHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldBoard, v))
}

// BoardEqualFold applies the EqualFold predicate on the "board" field.
func BoardEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldBoard, v))
}

// BoardContainsFold applies the ContainsFold predicate on the "board" field.
func BoardContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldBoard, v))
}

// ClassEQ applies the EQ predicate on the "class" field.
func ClassEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldClass, v))
}

// ClassNEQ applies the NEQ predicate on the "class" field.
func ClassNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldClass, v))
}

// ClassIn applies the In predicate on the "class" field.
func ClassIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldClass, vs...))
}

// ClassNotIn applies the NotIn predicate on the "class" field.
func ClassNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldClass, vs...))
}

// ClassGT applies the GT predicate on the "class" field.
func ClassGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldClass, v))
}

// ClassGTE applies the GTE predicate on the "class" field.
func ClassGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldClass, v))
}

// ClassLT applies the LT predicate on the "class" field.
func ClassLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldClass, v))
}

// ClassLTE applies the LTE predicate on the "class" field.
func ClassLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldClass, v))
}

// ClassContains applies the Contains predicate on the "class" field.
func ClassContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldClass, v))
}

// ClassHasPrefix applies the HasPrefix predicate on the "class" field.
func ClassHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldClass, v))
}

// ClassHasSuffix applies the HasSuffix predicate on the "class" field.
func ClassHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldClass, v))
}

// ClassEqualFold applies the EqualFold predicate on the "class" field.
func ClassEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldClass, v))
}

// ClassContainsFold applies the ContainsFold predicate on the "class" field.
func ClassContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldClass, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSubject, v))
}

// ChapterEQ applies the EQ predicate on the "chapter" field.
func ChapterEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldChapter, v))
}

// ChapterNEQ applies the NEQ predicate on the "chapter" field.
func ChapterNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldChapter, v))
}

// ChapterIn applies the In predicate on the "chapter" field.
func ChapterIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldChapter, vs...))
}

// ChapterNotIn applies the NotIn predicate on the "chapter" field.
func ChapterNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldChapter, vs...))
}

// ChapterGT applies the GT predicate on the "chapter" field.
func ChapterGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldChapter, v))
}

// ChapterGTE applies the GTE predicate on the "chapter" field.
func ChapterGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldChapter, v))
}

// ChapterLT applies the LT predicate on the "chapter" field.
func ChapterLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldChapter, v))
}

// ChapterLTE applies the LTE predicate on the "chapter" field.
func ChapterLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldChapter, v))
}

// ChapterContains applies the Contains predicate on the "chapter" field.
func ChapterContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldChapter, v))
}

// ChapterHasPrefix applies the HasPrefix predicate on the "chapter" field.
func ChapterHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldChapter, v))
}

// ChapterHasSuffix applies the HasSuffix predicate on the "chapter" field.
func ChapterHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldChapter, v))
}

// ChapterEqualFold applies the EqualFold predicate on the "chapter" field.
func ChapterEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldChapter, v))
}

// ChapterContainsFold applies the ContainsFold predicate on the "chapter" field.
func ChapterContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldChapter, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldTopic, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldDifficulty, v))
}

// BloomLevelEQ applies the EQ predicate on the "bloom_level" field.
func BloomLevelEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldBloomLevel, v))
}

// BloomLevelNEQ applies the NEQ predicate on the "bloom_level" field.
func BloomLevelNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldBloomLevel, v))
}

// BloomLevelIn applies the In predicate on the "bloom_level" field.
func BloomLevelIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldBloomLevel, vs...))
}

// BloomLevelNotIn applies the NotIn predicate on the "bloom_level" field.
func BloomLevelNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldBloomLevel, vs...))
}

// BloomLevelGT applies the GT predicate on the "bloom_level" field.
func BloomLevelGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldBloomLevel, v))
}

// BloomLevelGTE applies the GTE predicate on the "bloom_level" field.
func BloomLevelGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldBloomLevel, v))
}

// BloomLevelLT applies the LT predicate on the "bloom_level" field.
func BloomLevelLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldBloomLevel, v))
}

// BloomLevelLTE applies the LTE predicate on the "bloom_level" field.
func BloomLevelLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldBloomLevel, v))
}

// BloomLevelContains applies the Contains predicate on the "bloom_level" field.
func BloomLevelContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldBloomLevel, v))
}

// BloomLevelHasPrefix applies the HasPrefix predicate on the "bloom_level" field.
func BloomLevelHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldBloomLevel, v))
}

// BloomLevelHasSuffix applies the HasSuffix predicate on the "bloom_level" field.
func BloomLevelHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldBloomLevel, v))
}

// BloomLevelEqualFold applies the EqualFold predicate on the "bloom_level" field.
func BloomLevelEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldBloomLevel, v))
}

// BloomLevelContainsFold applies the ContainsFold predicate on the "bloom_level" field.
func BloomLevelContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldBloomLevel, v))
}

// MarksEQ applies the EQ predicate on the "marks" field.
func MarksEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldMarks, v))
}

// MarksNEQ applies the NEQ predicate on the "marks" field.
func MarksNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldMarks, v))
}

// MarksIn applies the In predicate on the "marks" field.
func MarksIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldMarks, vs...))
}

// MarksNotIn applies the NotIn predicate on the "marks" field.
func MarksNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldMarks, vs...))
}

// MarksGT applies the GT predicate on the "marks" field.
func MarksGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldMarks, v))
}

// MarksGTE applies the GTE predicate on the "marks" field.
func MarksGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldMarks, v))
}

// MarksLT applies the LT predicate on the "marks" field.
func MarksLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldMarks, v))
}

// MarksLTE applies the LTE predicate on the "marks" field.
func MarksLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldMarks, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerIsNil applies the IsNil predicate on the "answer" field.
func AnswerIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldAnswer))
}

// AnswerNotNil applies the NotNil predicate on the "answer" field.
func AnswerNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldAnswer))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldAnswer, v))
}

// HasImageEQ applies the EQ predicate on the "has_image" field.
func HasImageEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldHasImage, v))
}

// HasImageNEQ applies the NEQ predicate on the "has_image" field.
func HasImageNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldHasImage, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLIsNil applies the IsNil predicate on the "image_url" field.
func ImageURLIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldImageURL))
}

// ImageURLNotNil applies the NotNil predicate on the "image_url" field.
func ImageURLNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldImageURL))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldImageURL, v))
}

// IsGeneratedEQ applies the EQ predicate on the "is_generated" field.
func IsGeneratedEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsGenerated, v))
}

// IsGeneratedNEQ applies the NEQ predicate on the "is_generated" field.
func IsGeneratedNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldIsGenerated, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
