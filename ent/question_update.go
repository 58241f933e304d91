// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anvaya/paperforge/ent/predicate"
	"github.com/anvaya/paperforge/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionUpdate) SetText(v string) *QuestionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableText(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *QuestionUpdate) SetType(v string) *QuestionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableType(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetBoard sets the "board" field.
func (_u *QuestionUpdate) SetBoard(v string) *QuestionUpdate {
	_u.mutation.SetBoard(v)
	return _u
}

// SetNillableBoard sets the "board" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableBoard(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetBoard(*v)
	}
	return _u
}

// SetClass sets the "class" field.
func (_u *QuestionUpdate) SetClass(v string) *QuestionUpdate {
	_u.mutation.SetClass(v)
	return _u
}

// SetNillableClass sets the "class" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableClass(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetClass(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuestionUpdate) SetSubject(v string) *QuestionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSubject(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *QuestionUpdate) SetChapter(v string) *QuestionUpdate {
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableChapter(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionUpdate) SetTopic(v string) *QuestionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTopic(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdate) SetDifficulty(v string) *QuestionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDifficulty(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetBloomLevel sets the "bloom_level" field.
func (_u *QuestionUpdate) SetBloomLevel(v string) *QuestionUpdate {
	_u.mutation.SetBloomLevel(v)
	return _u
}

// SetNillableBloomLevel sets the "bloom_level" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableBloomLevel(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetBloomLevel(*v)
	}
	return _u
}

// SetMarks sets the "marks" field.
func (_u *QuestionUpdate) SetMarks(v int) *QuestionUpdate {
	_u.mutation.ResetMarks()
	_u.mutation.SetMarks(v)
	return _u
}

// SetNillableMarks sets the "marks" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableMarks(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetMarks(*v)
	}
	return _u
}

// AddMarks adds value to the "marks" field.
func (_u *QuestionUpdate) AddMarks(v int) *QuestionUpdate {
	_u.mutation.AddMarks(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionUpdate) SetAnswer(v string) *QuestionUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *QuestionUpdate) ClearAnswer() *QuestionUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// SetHasImage sets the "has_image" field.
func (_u *QuestionUpdate) SetHasImage(v bool) *QuestionUpdate {
	_u.mutation.SetHasImage(v)
	return _u
}

// SetNillableHasImage sets the "has_image" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableHasImage(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetHasImage(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *QuestionUpdate) SetImageURL(v string) *QuestionUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableImageURL(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *QuestionUpdate) ClearImageURL() *QuestionUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// SetIsGenerated sets the "is_generated" field.
func (_u *QuestionUpdate) SetIsGenerated(v bool) *QuestionUpdate {
	_u.mutation.SetIsGenerated(v)
	return _u
}

// SetNillableIsGenerated sets the "is_generated" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableIsGenerated(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetIsGenerated(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QuestionUpdate) SetPayload(v map[string]interface{}) *QuestionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *QuestionUpdate) ClearPayload() *QuestionUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.Marks(); ok {
		if err := question.MarksValidator(v); err != nil {
			return &ValidationError{Name: "marks", err: fmt.Errorf(`ent: validator failed for field "Question.marks": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Board(); ok {
		_spec.SetField(question.FieldBoard, field.TypeString, value)
	}
	if value, ok := _u.mutation.Class(); ok {
		_spec.SetField(question.FieldClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(question.FieldChapter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloomLevel(); ok {
		_spec.SetField(question.FieldBloomLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Marks(); ok {
		_spec.SetField(question.FieldMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarks(); ok {
		_spec.AddField(question.FieldMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(question.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.HasImage(); ok {
		_spec.SetField(question.FieldHasImage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(question.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(question.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.IsGenerated(); ok {
		_spec.SetField(question.FieldIsGenerated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(question.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(question.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetText sets the "text" field.
func (_u *QuestionUpdateOne) SetText(v string) *QuestionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableText(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *QuestionUpdateOne) SetType(v string) *QuestionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableType(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetBoard sets the "board" field.
func (_u *QuestionUpdateOne) SetBoard(v string) *QuestionUpdateOne {
	_u.mutation.SetBoard(v)
	return _u
}

// SetNillableBoard sets the "board" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableBoard(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetBoard(*v)
	}
	return _u
}

// SetClass sets the "class" field.
func (_u *QuestionUpdateOne) SetClass(v string) *QuestionUpdateOne {
	_u.mutation.SetClass(v)
	return _u
}

// SetNillableClass sets the "class" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableClass(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetClass(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuestionUpdateOne) SetSubject(v string) *QuestionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSubject(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *QuestionUpdateOne) SetChapter(v string) *QuestionUpdateOne {
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableChapter(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionUpdateOne) SetTopic(v string) *QuestionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTopic(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdateOne) SetDifficulty(v string) *QuestionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDifficulty(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetBloomLevel sets the "bloom_level" field.
func (_u *QuestionUpdateOne) SetBloomLevel(v string) *QuestionUpdateOne {
	_u.mutation.SetBloomLevel(v)
	return _u
}

// SetNillableBloomLevel sets the "bloom_level" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableBloomLevel(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetBloomLevel(*v)
	}
	return _u
}

// SetMarks sets the "marks" field.
func (_u *QuestionUpdateOne) SetMarks(v int) *QuestionUpdateOne {
	_u.mutation.ResetMarks()
	_u.mutation.SetMarks(v)
	return _u
}

// SetNillableMarks sets the "marks" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableMarks(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetMarks(*v)
	}
	return _u
}

// AddMarks adds value to the "marks" field.
func (_u *QuestionUpdateOne) AddMarks(v int) *QuestionUpdateOne {
	_u.mutation.AddMarks(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionUpdateOne) SetAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *QuestionUpdateOne) ClearAnswer() *QuestionUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// SetHasImage sets the "has_image" field.
func (_u *QuestionUpdateOne) SetHasImage(v bool) *QuestionUpdateOne {
	_u.mutation.SetHasImage(v)
	return _u
}

// SetNillableHasImage sets the "has_image" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableHasImage(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetHasImage(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *QuestionUpdateOne) SetImageURL(v string) *QuestionUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableImageURL(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *QuestionUpdateOne) ClearImageURL() *QuestionUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// SetIsGenerated sets the "is_generated" field.
func (_u *QuestionUpdateOne) SetIsGenerated(v bool) *QuestionUpdateOne {
	_u.mutation.SetIsGenerated(v)
	return _u
}

// SetNillableIsGenerated sets the "is_generated" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableIsGenerated(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetIsGenerated(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QuestionUpdateOne) SetPayload(v map[string]interface{}) *QuestionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *QuestionUpdateOne) ClearPayload() *QuestionUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Marks(); ok {
		if err := question.MarksValidator(v); err != nil {
			return &ValidationError{Name: "marks", err: fmt.Errorf(`ent: validator failed for field "Question.marks": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Board(); ok {
		_spec.SetField(question.FieldBoard, field.TypeString, value)
	}
	if value, ok := _u.mutation.Class(); ok {
		_spec.SetField(question.FieldClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(question.FieldChapter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloomLevel(); ok {
		_spec.SetField(question.FieldBloomLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Marks(); ok {
		_spec.SetField(question.FieldMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarks(); ok {
		_spec.AddField(question.FieldMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(question.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.HasImage(); ok {
		_spec.SetField(question.FieldHasImage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(question.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(question.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.IsGenerated(); ok {
		_spec.SetField(question.FieldIsGenerated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(question.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(question.FieldPayload, field.TypeJSON)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
