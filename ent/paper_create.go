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
	"github.com/anvaya/paperforge/ent/paper"
)

// PaperCreate is the builder for creating a Paper entity.
type PaperCreate struct {
	config
	mutation *PaperMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *PaperCreate) SetTitle(v string) *PaperCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBoard sets the "board" field.
func (_c *PaperCreate) SetBoard(v string) *PaperCreate {
	_c.mutation.SetBoard(v)
	return _c
}

// SetClass sets the "class" field.
func (_c *PaperCreate) SetClass(v string) *PaperCreate {
	_c.mutation.SetClass(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *PaperCreate) SetSubject(v string) *PaperCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *PaperCreate) SetCreatedBy(v string) *PaperCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaperCreate) SetCreatedAt(v time.Time) *PaperCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaperCreate) SetNillableCreatedAt(v *time.Time) *PaperCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDuration sets the "duration" field.
func (_c *PaperCreate) SetDuration(v int) *PaperCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetTotalMarks sets the "total_marks" field.
func (_c *PaperCreate) SetTotalMarks(v int) *PaperCreate {
	_c.mutation.SetTotalMarks(v)
	return _c
}

// SetIsSectionless sets the "is_sectionless" field.
func (_c *PaperCreate) SetIsSectionless(v bool) *PaperCreate {
	_c.mutation.SetIsSectionless(v)
	return _c
}

// SetNillableIsSectionless sets the "is_sectionless" field if the given value is not nil.
func (_c *PaperCreate) SetNillableIsSectionless(v *bool) *PaperCreate {
	if v != nil {
		_c.SetIsSectionless(*v)
	}
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *PaperCreate) SetInstructions(v []string) *PaperCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetSections sets the "sections" field.
func (_c *PaperCreate) SetSections(v []map[string]interface{}) *PaperCreate {
	_c.mutation.SetSections(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *PaperCreate) SetQuestions(v []map[string]interface{}) *PaperCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PaperCreate) SetID(v string) *PaperCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PaperMutation object of the builder.
func (_c *PaperCreate) Mutation() *PaperMutation {
	return _c.mutation
}

// Save creates the Paper in the database.
func (_c *PaperCreate) Save(ctx context.Context) (*Paper, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaperCreate) SaveX(ctx context.Context) *Paper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaperCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paper.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsSectionless(); !ok {
		v := paper.DefaultIsSectionless
		_c.mutation.SetIsSectionless(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaperCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Paper.title"`)}
	}
	if _, ok := _c.mutation.Board(); !ok {
		return &ValidationError{Name: "board", err: errors.New(`ent: missing required field "Paper.board"`)}
	}
	if _, ok := _c.mutation.Class(); !ok {
		return &ValidationError{Name: "class", err: errors.New(`ent: missing required field "Paper.class"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Paper.subject"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Paper.created_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Paper.created_at"`)}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "Paper.duration"`)}
	}
	if v, ok := _c.mutation.Duration(); ok {
		if err := paper.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "Paper.duration": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalMarks(); !ok {
		return &ValidationError{Name: "total_marks", err: errors.New(`ent: missing required field "Paper.total_marks"`)}
	}
	if v, ok := _c.mutation.TotalMarks(); ok {
		if err := paper.TotalMarksValidator(v); err != nil {
			return &ValidationError{Name: "total_marks", err: fmt.Errorf(`ent: validator failed for field "Paper.total_marks": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsSectionless(); !ok {
		return &ValidationError{Name: "is_sectionless", err: errors.New(`ent: missing required field "Paper.is_sectionless"`)}
	}
	return nil
}

func (_c *PaperCreate) sqlSave(ctx context.Context) (*Paper, error) {
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
			return nil, fmt.Errorf("unexpected Paper.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaperCreate) createSpec() (*Paper, *sqlgraph.CreateSpec) {
	var (
		_node = &Paper{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paper.Table, sqlgraph.NewFieldSpec(paper.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(paper.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Board(); ok {
		_spec.SetField(paper.FieldBoard, field.TypeString, value)
		_node.Board = value
	}
	if value, ok := _c.mutation.Class(); ok {
		_spec.SetField(paper.FieldClass, field.TypeString, value)
		_node.Class = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(paper.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(paper.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paper.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(paper.FieldDuration, field.TypeInt, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.TotalMarks(); ok {
		_spec.SetField(paper.FieldTotalMarks, field.TypeInt, value)
		_node.TotalMarks = value
	}
	if value, ok := _c.mutation.IsSectionless(); ok {
		_spec.SetField(paper.FieldIsSectionless, field.TypeBool, value)
		_node.IsSectionless = value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(paper.FieldInstructions, field.TypeJSON, value)
		_node.Instructions = value
	}
	if value, ok := _c.mutation.Sections(); ok {
		_spec.SetField(paper.FieldSections, field.TypeJSON, value)
		_node.Sections = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(paper.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Paper.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaperUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *PaperCreate) OnConflict(opts ...sql.ConflictOption) *PaperUpsertOne {
	_c.conflict = opts
	return &PaperUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaperCreate) OnConflictColumns(columns ...string) *PaperUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaperUpsertOne{
		create: _c,
	}
}

type (
	// PaperUpsertOne is the builder for "upsert"-ing
	//  one Paper node.
	PaperUpsertOne struct {
		create *PaperCreate
	}

	// PaperUpsert is the "OnConflict" setter.
	PaperUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *PaperUpsert) SetTitle(v string) *PaperUpsert {
	u.Set(paper.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PaperUpsert) UpdateTitle() *PaperUpsert {
	u.SetExcluded(paper.FieldTitle)
	return u
}

// SetBoard sets the "board" field.
func (u *PaperUpsert) SetBoard(v string) *PaperUpsert {
	u.Set(paper.FieldBoard, v)
	return u
}

// UpdateBoard sets the "board" field to the value that was provided on create.
func (u *PaperUpsert) UpdateBoard() *PaperUpsert {
	u.SetExcluded(paper.FieldBoard)
	return u
}

// SetClass sets the "class" field.
func (u *PaperUpsert) SetClass(v string) *PaperUpsert {
	u.Set(paper.FieldClass, v)
	return u
}

// UpdateClass sets the "class" field to the value that was provided on create.
func (u *PaperUpsert) UpdateClass() *PaperUpsert {
	u.SetExcluded(paper.FieldClass)
	return u
}

// SetSubject sets the "subject" field.
func (u *PaperUpsert) SetSubject(v string) *PaperUpsert {
	u.Set(paper.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *PaperUpsert) UpdateSubject() *PaperUpsert {
	u.SetExcluded(paper.FieldSubject)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *PaperUpsert) SetCreatedBy(v string) *PaperUpsert {
	u.Set(paper.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PaperUpsert) UpdateCreatedBy() *PaperUpsert {
	u.SetExcluded(paper.FieldCreatedBy)
	return u
}

// SetDuration sets the "duration" field.
func (u *PaperUpsert) SetDuration(v int) *PaperUpsert {
	u.Set(paper.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *PaperUpsert) UpdateDuration() *PaperUpsert {
	u.SetExcluded(paper.FieldDuration)
	return u
}

// AddDuration adds v to the "duration" field.
func (u *PaperUpsert) AddDuration(v int) *PaperUpsert {
	u.Add(paper.FieldDuration, v)
	return u
}

// SetTotalMarks sets the "total_marks" field.
func (u *PaperUpsert) SetTotalMarks(v int) *PaperUpsert {
	u.Set(paper.FieldTotalMarks, v)
	return u
}

// UpdateTotalMarks sets the "total_marks" field to the value that was provided on create.
func (u *PaperUpsert) UpdateTotalMarks() *PaperUpsert {
	u.SetExcluded(paper.FieldTotalMarks)
	return u
}

// AddTotalMarks adds v to the "total_marks" field.
func (u *PaperUpsert) AddTotalMarks(v int) *PaperUpsert {
	u.Add(paper.FieldTotalMarks, v)
	return u
}

// SetIsSectionless sets the "is_sectionless" field.
func (u *PaperUpsert) SetIsSectionless(v bool) *PaperUpsert {
	u.Set(paper.FieldIsSectionless, v)
	return u
}

// UpdateIsSectionless sets the "is_sectionless" field to the value that was provided on create.
func (u *PaperUpsert) UpdateIsSectionless() *PaperUpsert {
	u.SetExcluded(paper.FieldIsSectionless)
	return u
}

// SetInstructions sets the "instructions" field.
func (u *PaperUpsert) SetInstructions(v []string) *PaperUpsert {
	u.Set(paper.FieldInstructions, v)
	return u
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PaperUpsert) UpdateInstructions() *PaperUpsert {
	u.SetExcluded(paper.FieldInstructions)
	return u
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PaperUpsert) ClearInstructions() *PaperUpsert {
	u.SetNull(paper.FieldInstructions)
	return u
}

// SetSections sets the "sections" field.
func (u *PaperUpsert) SetSections(v []map[string]interface{}) *PaperUpsert {
	u.Set(paper.FieldSections, v)
	return u
}

// UpdateSections sets the "sections" field to the value that was provided on create.
func (u *PaperUpsert) UpdateSections() *PaperUpsert {
	u.SetExcluded(paper.FieldSections)
	return u
}

// ClearSections clears the value of the "sections" field.
func (u *PaperUpsert) ClearSections() *PaperUpsert {
	u.SetNull(paper.FieldSections)
	return u
}

// SetQuestions sets the "questions" field.
func (u *PaperUpsert) SetQuestions(v []map[string]interface{}) *PaperUpsert {
	u.Set(paper.FieldQuestions, v)
	return u
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *PaperUpsert) UpdateQuestions() *PaperUpsert {
	u.SetExcluded(paper.FieldQuestions)
	return u
}

// ClearQuestions clears the value of the "questions" field.
func (u *PaperUpsert) ClearQuestions() *PaperUpsert {
	u.SetNull(paper.FieldQuestions)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paper.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaperUpsertOne) UpdateNewValues() *PaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(paper.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(paper.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Paper.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaperUpsertOne) Ignore() *PaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaperUpsertOne) DoNothing() *PaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaperCreate.OnConflict
// documentation for more info.
func (u *PaperUpsertOne) Update(set func(*PaperUpsert)) *PaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaperUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *PaperUpsertOne) SetTitle(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateTitle() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateTitle()
	})
}

// SetBoard sets the "board" field.
func (u *PaperUpsertOne) SetBoard(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetBoard(v)
	})
}

// UpdateBoard sets the "board" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateBoard() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateBoard()
	})
}

// SetClass sets the "class" field.
func (u *PaperUpsertOne) SetClass(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetClass(v)
	})
}

// UpdateClass sets the "class" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateClass() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateClass()
	})
}

// SetSubject sets the "subject" field.
func (u *PaperUpsertOne) SetSubject(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateSubject() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateSubject()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *PaperUpsertOne) SetCreatedBy(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateCreatedBy() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateCreatedBy()
	})
}

// SetDuration sets the "duration" field.
func (u *PaperUpsertOne) SetDuration(v int) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *PaperUpsertOne) AddDuration(v int) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateDuration() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateDuration()
	})
}

// SetTotalMarks sets the "total_marks" field.
func (u *PaperUpsertOne) SetTotalMarks(v int) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetTotalMarks(v)
	})
}

// AddTotalMarks adds v to the "total_marks" field.
func (u *PaperUpsertOne) AddTotalMarks(v int) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.AddTotalMarks(v)
	})
}

// UpdateTotalMarks sets the "total_marks" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateTotalMarks() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateTotalMarks()
	})
}

// SetIsSectionless sets the "is_sectionless" field.
func (u *PaperUpsertOne) SetIsSectionless(v bool) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetIsSectionless(v)
	})
}

// UpdateIsSectionless sets the "is_sectionless" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateIsSectionless() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateIsSectionless()
	})
}

// SetInstructions sets the "instructions" field.
func (u *PaperUpsertOne) SetInstructions(v []string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateInstructions() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateInstructions()
	})
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PaperUpsertOne) ClearInstructions() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.ClearInstructions()
	})
}

// SetSections sets the "sections" field.
func (u *PaperUpsertOne) SetSections(v []map[string]interface{}) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetSections(v)
	})
}

// UpdateSections sets the "sections" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateSections() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateSections()
	})
}

// ClearSections clears the value of the "sections" field.
func (u *PaperUpsertOne) ClearSections() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.ClearSections()
	})
}

// SetQuestions sets the "questions" field.
func (u *PaperUpsertOne) SetQuestions(v []map[string]interface{}) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetQuestions(v)
	})
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateQuestions() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateQuestions()
	})
}

// ClearQuestions clears the value of the "questions" field.
func (u *PaperUpsertOne) ClearQuestions() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.ClearQuestions()
	})
}

// Exec executes the query.
func (u *PaperUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaperCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaperUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaperUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PaperUpsertOne.ID is not supported by MySQL driver. Use PaperUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaperUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaperCreateBulk is the builder for creating many Paper entities in bulk.
type PaperCreateBulk struct {
	config
	err      error
	builders []*PaperCreate
	conflict []sql.ConflictOption
}

// Save creates the Paper entities in the database.
func (_c *PaperCreateBulk) Save(ctx context.Context) ([]*Paper, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Paper, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaperMutation)
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
func (_c *PaperCreateBulk) SaveX(ctx context.Context) []*Paper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Paper.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaperUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *PaperCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaperUpsertBulk {
	_c.conflict = opts
	return &PaperUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaperCreateBulk) OnConflictColumns(columns ...string) *PaperUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaperUpsertBulk{
		create: _c,
	}
}

// PaperUpsertBulk is the builder for "upsert"-ing
// a bulk of Paper nodes.
type PaperUpsertBulk struct {
	create *PaperCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paper.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaperUpsertBulk) UpdateNewValues() *PaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(paper.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(paper.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaperUpsertBulk) Ignore() *PaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaperUpsertBulk) DoNothing() *PaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaperCreateBulk.OnConflict
// documentation for more info.
func (u *PaperUpsertBulk) Update(set func(*PaperUpsert)) *PaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaperUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *PaperUpsertBulk) SetTitle(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateTitle() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateTitle()
	})
}

// SetBoard sets the "board" field.
func (u *PaperUpsertBulk) SetBoard(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetBoard(v)
	})
}

// UpdateBoard sets the "board" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateBoard() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateBoard()
	})
}

// SetClass sets the "class" field.
func (u *PaperUpsertBulk) SetClass(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetClass(v)
	})
}

// UpdateClass sets the "class" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateClass() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateClass()
	})
}

// SetSubject sets the "subject" field.
func (u *PaperUpsertBulk) SetSubject(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateSubject() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateSubject()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *PaperUpsertBulk) SetCreatedBy(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateCreatedBy() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateCreatedBy()
	})
}

// SetDuration sets the "duration" field.
func (u *PaperUpsertBulk) SetDuration(v int) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *PaperUpsertBulk) AddDuration(v int) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateDuration() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateDuration()
	})
}

// SetTotalMarks sets the "total_marks" field.
func (u *PaperUpsertBulk) SetTotalMarks(v int) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetTotalMarks(v)
	})
}

// AddTotalMarks adds v to the "total_marks" field.
func (u *PaperUpsertBulk) AddTotalMarks(v int) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.AddTotalMarks(v)
	})
}

// UpdateTotalMarks sets the "total_marks" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateTotalMarks() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateTotalMarks()
	})
}

// SetIsSectionless sets the "is_sectionless" field.
func (u *PaperUpsertBulk) SetIsSectionless(v bool) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetIsSectionless(v)
	})
}

// UpdateIsSectionless sets the "is_sectionless" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateIsSectionless() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateIsSectionless()
	})
}

// SetInstructions sets the "instructions" field.
func (u *PaperUpsertBulk) SetInstructions(v []string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateInstructions() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateInstructions()
	})
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PaperUpsertBulk) ClearInstructions() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.ClearInstructions()
	})
}

// SetSections sets the "sections" field.
func (u *PaperUpsertBulk) SetSections(v []map[string]interface{}) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetSections(v)
	})
}

// UpdateSections sets the "sections" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateSections() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateSections()
	})
}

// ClearSections clears the value of the "sections" field.
func (u *PaperUpsertBulk) ClearSections() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.ClearSections()
	})
}

// SetQuestions sets the "questions" field.
func (u *PaperUpsertBulk) SetQuestions(v []map[string]interface{}) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetQuestions(v)
	})
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateQuestions() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateQuestions()
	})
}

// ClearQuestions clears the value of the "questions" field.
func (u *PaperUpsertBulk) ClearQuestions() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.ClearQuestions()
	})
}

// Exec executes the query.
func (u *PaperUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PaperCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaperCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaperUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
