// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anvaya/paperforge/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetText sets the "text" field.
func (_c *QuestionCreate) SetText(v string) *QuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetType sets the "type" field.
func (_c *QuestionCreate) SetType(v string) *QuestionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetBoard sets the "board" field.
func (_c *QuestionCreate) SetBoard(v string) *QuestionCreate {
	_c.mutation.SetBoard(v)
	return _c
}

// SetClass sets the "class" field.
func (_c *QuestionCreate) SetClass(v string) *QuestionCreate {
	_c.mutation.SetClass(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *QuestionCreate) SetSubject(v string) *QuestionCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetChapter sets the "chapter" field.
func (_c *QuestionCreate) SetChapter(v string) *QuestionCreate {
	_c.mutation.SetChapter(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuestionCreate) SetTopic(v string) *QuestionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionCreate) SetDifficulty(v string) *QuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetBloomLevel sets the "bloom_level" field.
func (_c *QuestionCreate) SetBloomLevel(v string) *QuestionCreate {
	_c.mutation.SetBloomLevel(v)
	return _c
}

// SetMarks sets the "marks" field.
func (_c *QuestionCreate) SetMarks(v int) *QuestionCreate {
	_c.mutation.SetMarks(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *QuestionCreate) SetAnswer(v string) *QuestionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableAnswer(v *string) *QuestionCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetHasImage sets the "has_image" field.
func (_c *QuestionCreate) SetHasImage(v bool) *QuestionCreate {
	_c.mutation.SetHasImage(v)
	return _c
}

// SetNillableHasImage sets the "has_image" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableHasImage(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetHasImage(*v)
	}
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *QuestionCreate) SetImageURL(v string) *QuestionCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableImageURL(v *string) *QuestionCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetIsGenerated sets the "is_generated" field.
func (_c *QuestionCreate) SetIsGenerated(v bool) *QuestionCreate {
	_c.mutation.SetIsGenerated(v)
	return _c
}

// SetNillableIsGenerated sets the "is_generated" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableIsGenerated(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetIsGenerated(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *QuestionCreate) SetPayload(v map[string]interface{}) *QuestionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v string) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.HasImage(); !ok {
		v := question.DefaultHasImage
		_c.mutation.SetHasImage(v)
	}
	if _, ok := _c.mutation.IsGenerated(); !ok {
		v := question.DefaultIsGenerated
		_c.mutation.SetIsGenerated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Question.text"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Question.type"`)}
	}
	if _, ok := _c.mutation.Board(); !ok {
		return &ValidationError{Name: "board", err: errors.New(`ent: missing required field "Question.board"`)}
	}
	if _, ok := _c.mutation.Class(); !ok {
		return &ValidationError{Name: "class", err: errors.New(`ent: missing required field "Question.class"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Question.subject"`)}
	}
	if _, ok := _c.mutation.Chapter(); !ok {
		return &ValidationError{Name: "chapter", err: errors.New(`ent: missing required field "Question.chapter"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Question.topic"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if _, ok := _c.mutation.BloomLevel(); !ok {
		return &ValidationError{Name: "bloom_level", err: errors.New(`ent: missing required field "Question.bloom_level"`)}
	}
	if _, ok := _c.mutation.Marks(); !ok {
		return &ValidationError{Name: "marks", err: errors.New(`ent: missing required field "Question.marks"`)}
	}
	if v, ok := _c.mutation.Marks(); ok {
		if err := question.MarksValidator(v); err != nil {
			return &ValidationError{Name: "marks", err: fmt.Errorf(`ent: validator failed for field "Question.marks": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HasImage(); !ok {
		return &ValidationError{Name: "has_image", err: errors.New(`ent: missing required field "Question.has_image"`)}
	}
	if _, ok := _c.mutation.IsGenerated(); !ok {
		return &ValidationError{Name: "is_generated", err: errors.New(`ent: missing required field "Question.is_generated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Question.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Board(); ok {
		_spec.SetField(question.FieldBoard, field.TypeString, value)
		_node.Board = value
	}
	if value, ok := _c.mutation.Class(); ok {
		_spec.SetField(question.FieldClass, field.TypeString, value)
		_node.Class = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Chapter(); ok {
		_spec.SetField(question.FieldChapter, field.TypeString, value)
		_node.Chapter = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.BloomLevel(); ok {
		_spec.SetField(question.FieldBloomLevel, field.TypeString, value)
		_node.BloomLevel = value
	}
	if value, ok := _c.mutation.Marks(); ok {
		_spec.SetField(question.FieldMarks, field.TypeInt, value)
		_node.Marks = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.HasImage(); ok {
		_spec.SetField(question.FieldHasImage, field.TypeBool, value)
		_node.HasImage = value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(question.FieldImageURL, field.TypeString, value)
		_node.ImageURL = value
	}
	if value, ok := _c.mutation.IsGenerated(); ok {
		_spec.SetField(question.FieldIsGenerated, field.TypeBool, value)
		_node.IsGenerated = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(question.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.Create().
//		SetText(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetText(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertOne {
	_c.conflict = opts
	return &QuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflictColumns(columns ...string) *QuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertOne{
		create: _c,
	}
}

type (
	// QuestionUpsertOne is the builder for "upsert"-ing
	//  one Question node.
	QuestionUpsertOne struct {
		create *QuestionCreate
	}

	// QuestionUpsert is the "OnConflict" setter.
	QuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetText sets the "text" field.
func (u *QuestionUpsert) SetText(v string) *QuestionUpsert {
	u.Set(question.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateText() *QuestionUpsert {
	u.SetExcluded(question.FieldText)
	return u
}

// SetType sets the "type" field.
func (u *QuestionUpsert) SetType(v string) *QuestionUpsert {
	u.Set(question.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateType() *QuestionUpsert {
	u.SetExcluded(question.FieldType)
	return u
}

// SetBoard sets the "board" field.
func (u *QuestionUpsert) SetBoard(v string) *QuestionUpsert {
	u.Set(question.FieldBoard, v)
	return u
}

// UpdateBoard sets the "board" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateBoard() *QuestionUpsert {
	u.SetExcluded(question.FieldBoard)
	return u
}

// SetClass sets the "class" field.
func (u *QuestionUpsert) SetClass(v string) *QuestionUpsert {
	u.Set(question.FieldClass, v)
	return u
}

// UpdateClass sets the "class" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateClass() *QuestionUpsert {
	u.SetExcluded(question.FieldClass)
	return u
}

// SetSubject sets the "subject" field.
func (u *QuestionUpsert) SetSubject(v string) *QuestionUpsert {
	u.Set(question.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateSubject() *QuestionUpsert {
	u.SetExcluded(question.FieldSubject)
	return u
}

// SetChapter sets the "chapter" field.
func (u *QuestionUpsert) SetChapter(v string) *QuestionUpsert {
	u.Set(question.FieldChapter, v)
	return u
}

// UpdateChapter sets the "chapter" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateChapter() *QuestionUpsert {
	u.SetExcluded(question.FieldChapter)
	return u
}

// SetTopic sets the "topic" field.
func (u *QuestionUpsert) SetTopic(v string) *QuestionUpsert {
	u.Set(question.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateTopic() *QuestionUpsert {
	u.SetExcluded(question.FieldTopic)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsert) SetDifficulty(v string) *QuestionUpsert {
	u.Set(question.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateDifficulty() *QuestionUpsert {
	u.SetExcluded(question.FieldDifficulty)
	return u
}

// SetBloomLevel sets the "bloom_level" field.
func (u *QuestionUpsert) SetBloomLevel(v string) *QuestionUpsert {
	u.Set(question.FieldBloomLevel, v)
	return u
}

// UpdateBloomLevel sets the "bloom_level" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateBloomLevel() *QuestionUpsert {
	u.SetExcluded(question.FieldBloomLevel)
	return u
}

// SetMarks sets the "marks" field.
func (u *QuestionUpsert) SetMarks(v int) *QuestionUpsert {
	u.Set(question.FieldMarks, v)
	return u
}

// UpdateMarks sets the "marks" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateMarks() *QuestionUpsert {
	u.SetExcluded(question.FieldMarks)
	return u
}

// AddMarks adds v to the "marks" field.
func (u *QuestionUpsert) AddMarks(v int) *QuestionUpsert {
	u.Add(question.FieldMarks, v)
	return u
}

// SetAnswer sets the "answer" field.
func (u *QuestionUpsert) SetAnswer(v string) *QuestionUpsert {
	u.Set(question.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateAnswer() *QuestionUpsert {
	u.SetExcluded(question.FieldAnswer)
	return u
}

// ClearAnswer clears the value of the "answer" field.
func (u *QuestionUpsert) ClearAnswer() *QuestionUpsert {
	u.SetNull(question.FieldAnswer)
	return u
}

// SetHasImage sets the "has_image" field.
func (u *QuestionUpsert) SetHasImage(v bool) *QuestionUpsert {
	u.Set(question.FieldHasImage, v)
	return u
}

// UpdateHasImage sets the "has_image" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateHasImage() *QuestionUpsert {
	u.SetExcluded(question.FieldHasImage)
	return u
}

// SetImageURL sets the "image_url" field.
func (u *QuestionUpsert) SetImageURL(v string) *QuestionUpsert {
	u.Set(question.FieldImageURL, v)
	return u
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateImageURL() *QuestionUpsert {
	u.SetExcluded(question.FieldImageURL)
	return u
}

// ClearImageURL clears the value of the "image_url" field.
func (u *QuestionUpsert) ClearImageURL() *QuestionUpsert {
	u.SetNull(question.FieldImageURL)
	return u
}

// SetIsGenerated sets the "is_generated" field.
func (u *QuestionUpsert) SetIsGenerated(v bool) *QuestionUpsert {
	u.Set(question.FieldIsGenerated, v)
	return u
}

// UpdateIsGenerated sets the "is_generated" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateIsGenerated() *QuestionUpsert {
	u.SetExcluded(question.FieldIsGenerated)
	return u
}

// SetPayload sets the "payload" field.
func (u *QuestionUpsert) SetPayload(v map[string]interface{}) *QuestionUpsert {
	u.Set(question.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *QuestionUpsert) UpdatePayload() *QuestionUpsert {
	u.SetExcluded(question.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *QuestionUpsert) ClearPayload() *QuestionUpsert {
	u.SetNull(question.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(question.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionUpsertOne) UpdateNewValues() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(question.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(question.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionUpsertOne) Ignore() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertOne) DoNothing() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreate.OnConflict
// documentation for more info.
func (u *QuestionUpsertOne) Update(set func(*QuestionUpsert)) *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *QuestionUpsertOne) SetText(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateText() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateText()
	})
}

// SetType sets the "type" field.
func (u *QuestionUpsertOne) SetType(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateType() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateType()
	})
}

// SetBoard sets the "board" field.
func (u *QuestionUpsertOne) SetBoard(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetBoard(v)
	})
}

// UpdateBoard sets the "board" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateBoard() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateBoard()
	})
}

// SetClass sets the "class" field.
func (u *QuestionUpsertOne) SetClass(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetClass(v)
	})
}

// UpdateClass sets the "class" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateClass() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateClass()
	})
}

// SetSubject sets the "subject" field.
func (u *QuestionUpsertOne) SetSubject(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateSubject() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSubject()
	})
}

// SetChapter sets the "chapter" field.
func (u *QuestionUpsertOne) SetChapter(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetChapter(v)
	})
}

// UpdateChapter sets the "chapter" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateChapter() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateChapter()
	})
}

// SetTopic sets the "topic" field.
func (u *QuestionUpsertOne) SetTopic(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateTopic() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTopic()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsertOne) SetDifficulty(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateDifficulty() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficulty()
	})
}

// SetBloomLevel sets the "bloom_level" field.
func (u *QuestionUpsertOne) SetBloomLevel(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetBloomLevel(v)
	})
}

// UpdateBloomLevel sets the "bloom_level" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateBloomLevel() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateBloomLevel()
	})
}

// SetMarks sets the "marks" field.
func (u *QuestionUpsertOne) SetMarks(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetMarks(v)
	})
}

// AddMarks adds v to the "marks" field.
func (u *QuestionUpsertOne) AddMarks(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.AddMarks(v)
	})
}

// UpdateMarks sets the "marks" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateMarks() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateMarks()
	})
}

// SetAnswer sets the "answer" field.
func (u *QuestionUpsertOne) SetAnswer(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateAnswer() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateAnswer()
	})
}

// ClearAnswer clears the value of the "answer" field.
func (u *QuestionUpsertOne) ClearAnswer() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearAnswer()
	})
}

// SetHasImage sets the "has_image" field.
func (u *QuestionUpsertOne) SetHasImage(v bool) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetHasImage(v)
	})
}

// UpdateHasImage sets the "has_image" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateHasImage() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateHasImage()
	})
}

// SetImageURL sets the "image_url" field.
func (u *QuestionUpsertOne) SetImageURL(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateImageURL() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateImageURL()
	})
}

// ClearImageURL clears the value of the "image_url" field.
func (u *QuestionUpsertOne) ClearImageURL() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearImageURL()
	})
}

// SetIsGenerated sets the "is_generated" field.
func (u *QuestionUpsertOne) SetIsGenerated(v bool) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetIsGenerated(v)
	})
}

// UpdateIsGenerated sets the "is_generated" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateIsGenerated() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateIsGenerated()
	})
}

// SetPayload sets the "payload" field.
func (u *QuestionUpsertOne) SetPayload(v map[string]interface{}) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdatePayload() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *QuestionUpsertOne) ClearPayload() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearPayload()
	})
}

// Exec executes the query.
func (u *QuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QuestionUpsertOne.ID is not supported by MySQL driver. Use QuestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetText(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertBulk {
	_c.conflict = opts
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflictColumns(columns ...string) *QuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// QuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of Question nodes.
type QuestionUpsertBulk struct {
	create *QuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(question.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionUpsertBulk) UpdateNewValues() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(question.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(question.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionUpsertBulk) Ignore() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertBulk) DoNothing() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionUpsertBulk) Update(set func(*QuestionUpsert)) *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *QuestionUpsertBulk) SetText(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateText() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateText()
	})
}

// SetType sets the "type" field.
func (u *QuestionUpsertBulk) SetType(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateType() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateType()
	})
}

// SetBoard sets the "board" field.
func (u *QuestionUpsertBulk) SetBoard(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetBoard(v)
	})
}

// UpdateBoard sets the "board" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateBoard() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateBoard()
	})
}

// SetClass sets the "class" field.
func (u *QuestionUpsertBulk) SetClass(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetClass(v)
	})
}

// UpdateClass sets the "class" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateClass() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateClass()
	})
}

// SetSubject sets the "subject" field.
func (u *QuestionUpsertBulk) SetSubject(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateSubject() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSubject()
	})
}

// SetChapter sets the "chapter" field.
func (u *QuestionUpsertBulk) SetChapter(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetChapter(v)
	})
}

// UpdateChapter sets the "chapter" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateChapter() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateChapter()
	})
}

// SetTopic sets the "topic" field.
func (u *QuestionUpsertBulk) SetTopic(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateTopic() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTopic()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsertBulk) SetDifficulty(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateDifficulty() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficulty()
	})
}

// SetBloomLevel sets the "bloom_level" field.
func (u *QuestionUpsertBulk) SetBloomLevel(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetBloomLevel(v)
	})
}

// UpdateBloomLevel sets the "bloom_level" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateBloomLevel() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateBloomLevel()
	})
}

// SetMarks sets the "marks" field.
func (u *QuestionUpsertBulk) SetMarks(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetMarks(v)
	})
}

// AddMarks adds v to the "marks" field.
func (u *QuestionUpsertBulk) AddMarks(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.AddMarks(v)
	})
}

// UpdateMarks sets the "marks" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateMarks() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateMarks()
	})
}

// SetAnswer sets the "answer" field.
func (u *QuestionUpsertBulk) SetAnswer(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateAnswer() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateAnswer()
	})
}

// ClearAnswer clears the value of the "answer" field.
func (u *QuestionUpsertBulk) ClearAnswer() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearAnswer()
	})
}

// SetHasImage sets the "has_image" field.
func (u *QuestionUpsertBulk) SetHasImage(v bool) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetHasImage(v)
	})
}

// UpdateHasImage sets the "has_image" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateHasImage() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateHasImage()
	})
}

// SetImageURL sets the "image_url" field.
func (u *QuestionUpsertBulk) SetImageURL(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateImageURL() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateImageURL()
	})
}

// ClearImageURL clears the value of the "image_url" field.
func (u *QuestionUpsertBulk) ClearImageURL() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearImageURL()
	})
}

// SetIsGenerated sets the "is_generated" field.
func (u *QuestionUpsertBulk) SetIsGenerated(v bool) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetIsGenerated(v)
	})
}

// UpdateIsGenerated sets the "is_generated" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateIsGenerated() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateIsGenerated()
	})
}

// SetPayload sets the "payload" field.
func (u *QuestionUpsertBulk) SetPayload(v map[string]interface{}) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdatePayload() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *QuestionUpsertBulk) ClearPayload() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearPayload()
	})
}

// Exec executes the query.
func (u *QuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
