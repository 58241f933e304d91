// Code generated by ent, DO NOT EDIT.

package paper

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anvaya/paperforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldTitle, v))
}

// Board applies equality check predicate on the "board" field. It's identical to BoardEQ.
func Board(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldBoard, v))
}

// Class applies equality check predicate on the "class" field. It's identical to ClassEQ.
func Class(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldClass, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldSubject, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldCreatedAt, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v int) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldDuration, v))
}

// TotalMarks applies equality check predicate on the "total_marks" field. It's identical to TotalMarksEQ.
func TotalMarks(v int) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldTotalMarks, v))
}

// IsSectionless applies equality check predicate on the "is_sectionless" field. It's identical to IsSectionlessEQ.
func IsSectionless(v bool) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldIsSectionless, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldTitle, v))
}

// BoardEQ applies the EQ predicate on the "board" field.
func BoardEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldBoard, v))
}

// BoardNEQ applies the NEQ predicate on the "board" field.
func BoardNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldBoard, v))
}

// BoardIn applies the In predicate on the "board" field.
func BoardIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldBoard, vs...))
}

// BoardNotIn applies the NotIn predicate on the "board" field.
func BoardNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldBoard, vs...))
}

// BoardGT applies the GT predicate on the "board" field.
func BoardGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldBoard, v))
}

// BoardGTE applies the GTE predicate on the "board" field.
func BoardGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldBoard, v))
}

// BoardLT applies the LT predicate on the "board" field.
func BoardLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldBoard, v))
}

// BoardLTE applies the LTE predicate on the "board" field.
func BoardLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldBoard, v))
}

// BoardContains applies the Contains predicate on the "board" field.
func BoardContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldBoard, v))
}

// BoardHasPrefix applies the HasPrefix predicate on the "board" field.
func BoardHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldBoard, v))
}

// BoardHasSuffix applies the HasSuffix predicate on the "board" field.
func BoardHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldBoard, v))
}

// BoardEqualFold applies the EqualFold predicate on the "board" field.
func BoardEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldBoard, v))
}

// BoardContainsFold applies the ContainsFold predicate on the "board" field.
func BoardContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldBoard, v))
}

// ClassEQ applies the EQ predicate on the "class" field.
func ClassEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldClass, v))
}

// ClassNEQ applies the NEQ predicate on the "class" field.
func ClassNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldClass, v))
}

// ClassIn applies the In predicate on the "class" field.
func ClassIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldClass, vs...))
}

// ClassNotIn applies the NotIn predicate on the "class" field.
func ClassNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldClass, vs...))
}

// ClassGT applies the GT predicate on the "class" field.
func ClassGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldClass, v))
}

// ClassGTE applies the GTE predicate on the "class" field.
func ClassGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldClass, v))
}

// ClassLT applies the LT predicate on the "class" field.
func ClassLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldClass, v))
}

// ClassLTE applies the LTE predicate on the "class" field.
func ClassLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldClass, v))
}

// ClassContains applies the Contains predicate on the "class" field.
func ClassContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldClass, v))
}

// ClassHasPrefix applies the HasPrefix predicate on the "class" field.
func ClassHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldClass, v))
}

// ClassHasSuffix applies the HasSuffix predicate on the "class" field.
func ClassHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldClass, v))
}

// ClassEqualFold applies the EqualFold predicate on the "class" field.
func ClassEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldClass, v))
}

// ClassContainsFold applies the ContainsFold predicate on the "class" field.
func ClassContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldClass, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldSubject, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldCreatedAt, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v int) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v int) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...int) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...int) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v int) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v int) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v int) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v int) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldDuration, v))
}

// TotalMarksEQ applies the EQ predicate on the "total_marks" field.
func TotalMarksEQ(v int) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldTotalMarks, v))
}

// TotalMarksNEQ applies the NEQ predicate on the "total_marks" field.
func TotalMarksNEQ(v int) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldTotalMarks, v))
}

// TotalMarksIn applies the In predicate on the "total_marks" field.
func TotalMarksIn(vs ...int) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldTotalMarks, vs...))
}

// TotalMarksNotIn applies the NotIn predicate on the "total_marks" field.
func TotalMarksNotIn(vs ...int) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldTotalMarks, vs...))
}

// TotalMarksGT applies the GT predicate on the "total_marks" field.
func TotalMarksGT(v int) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldTotalMarks, v))
}

// TotalMarksGTE applies the GTE predicate on the "total_marks" field.
func TotalMarksGTE(v int) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldTotalMarks, v))
}

// TotalMarksLT applies the LT predicate on the "total_marks" field.
func TotalMarksLT(v int) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldTotalMarks, v))
}

// TotalMarksLTE applies the LTE predicate on the "total_marks" field.
func TotalMarksLTE(v int) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldTotalMarks, v))
}

// IsSectionlessEQ applies the EQ predicate on the "is_sectionless" field.
func IsSectionlessEQ(v bool) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldIsSectionless, v))
}

// IsSectionlessNEQ applies the NEQ predicate on the "is_sectionless" field.
func IsSectionlessNEQ(v bool) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldIsSectionless, v))
}

// InstructionsIsNil applies the IsNil predicate on the "instructions" field.
func InstructionsIsNil() predicate.Paper {
	return predicate.Paper(sql.FieldIsNull(FieldInstructions))
}

// InstructionsNotNil applies the NotNil predicate on the "instructions" field.
func InstructionsNotNil() predicate.Paper {
	return predicate.Paper(sql.FieldNotNull(FieldInstructions))
}

// SectionsIsNil applies the IsNil predicate on the "sections" field.
func SectionsIsNil() predicate.Paper {
	return predicate.Paper(sql.FieldIsNull(FieldSections))
}

// SectionsNotNil applies the NotNil predicate on the "sections" field.
func SectionsNotNil() predicate.Paper {
	return predicate.Paper(sql.FieldNotNull(FieldSections))
}

// QuestionsIsNil applies the IsNil predicate on the "questions" field.
func QuestionsIsNil() predicate.Paper {
	return predicate.Paper(sql.FieldIsNull(FieldQuestions))
}

// QuestionsNotNil applies the NotNil predicate on the "questions" field.
func QuestionsNotNil() predicate.Paper {
	return predicate.Paper(sql.FieldNotNull(FieldQuestions))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Paper) predicate.Paper {
	return predicate.Paper(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Paper) predicate.Paper {
	return predicate.Paper(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Paper) predicate.Paper {
	return predicate.Paper(sql.NotPredicates(p))
}
