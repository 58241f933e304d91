// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/anvaya/paperforge/ent/paper"
	"github.com/anvaya/paperforge/ent/predicate"
)

// PaperUpdate is the builder for updating Paper entities.
type PaperUpdate struct {
	config
	hooks    []Hook
	mutation *PaperMutation
}

// Where appends a list predicates to the PaperUpdate builder.
func (_u *PaperUpdate) Where(ps ...predicate.Paper) *PaperUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PaperUpdate) SetTitle(v string) *PaperUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableTitle(v *string) *PaperUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBoard sets the "board" field.
func (_u *PaperUpdate) SetBoard(v string) *PaperUpdate {
	_u.mutation.SetBoard(v)
	return _u
}

// SetNillableBoard sets the "board" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableBoard(v *string) *PaperUpdate {
	if v != nil {
		_u.SetBoard(*v)
	}
	return _u
}

// SetClass sets the "class" field.
func (_u *PaperUpdate) SetClass(v string) *PaperUpdate {
	_u.mutation.SetClass(v)
	return _u
}

// SetNillableClass sets the "class" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableClass(v *string) *PaperUpdate {
	if v != nil {
		_u.SetClass(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PaperUpdate) SetSubject(v string) *PaperUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableSubject(v *string) *PaperUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PaperUpdate) SetCreatedBy(v string) *PaperUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableCreatedBy(v *string) *PaperUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *PaperUpdate) SetDuration(v int) *PaperUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableDuration(v *int) *PaperUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *PaperUpdate) AddDuration(v int) *PaperUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// SetTotalMarks sets the "total_marks" field.
func (_u *PaperUpdate) SetTotalMarks(v int) *PaperUpdate {
	_u.mutation.ResetTotalMarks()
	_u.mutation.SetTotalMarks(v)
	return _u
}

// SetNillableTotalMarks sets the "total_marks" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableTotalMarks(v *int) *PaperUpdate {
	if v != nil {
		_u.SetTotalMarks(*v)
	}
	return _u
}

// AddTotalMarks adds value to the "total_marks" field.
func (_u *PaperUpdate) AddTotalMarks(v int) *PaperUpdate {
	_u.mutation.AddTotalMarks(v)
	return _u
}

// SetIsSectionless sets the "is_sectionless" field.
func (_u *PaperUpdate) SetIsSectionless(v bool) *PaperUpdate {
	_u.mutation.SetIsSectionless(v)
	return _u
}

// SetNillableIsSectionless sets the "is_sectionless" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableIsSectionless(v *bool) *PaperUpdate {
	if v != nil {
		_u.SetIsSectionless(*v)
	}
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PaperUpdate) SetInstructions(v []string) *PaperUpdate {
	_u.mutation.SetInstructions(v)
	return _u
}

// AppendInstructions appends value to the "instructions" field.
func (_u *PaperUpdate) AppendInstructions(v []string) *PaperUpdate {
	_u.mutation.AppendInstructions(v)
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PaperUpdate) ClearInstructions() *PaperUpdate {
	_u.mutation.ClearInstructions()
	return _u
}

// SetSections sets the "sections" field.
func (_u *PaperUpdate) SetSections(v []map[string]interface{}) *PaperUpdate {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *PaperUpdate) AppendSections(v []map[string]interface{}) *PaperUpdate {
	_u.mutation.AppendSections(v)
	return _u
}

// ClearSections clears the value of the "sections" field.
func (_u *PaperUpdate) ClearSections() *PaperUpdate {
	_u.mutation.ClearSections()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *PaperUpdate) SetQuestions(v []map[string]interface{}) *PaperUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *PaperUpdate) AppendQuestions(v []map[string]interface{}) *PaperUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *PaperUpdate) ClearQuestions() *PaperUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// Mutation returns the PaperMutation object of the builder.
func (_u *PaperUpdate) Mutation() *PaperMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaperUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaperUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaperUpdate) check() error {
	if v, ok := _u.mutation.Duration(); ok {
		if err := paper.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "Paper.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalMarks(); ok {
		if err := paper.TotalMarksValidator(v); err != nil {
			return &ValidationError{Name: "total_marks", err: fmt.Errorf(`ent: validator failed for field "Paper.total_marks": %w`, err)}
		}
	}
	return nil
}

func (_u *PaperUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paper.Table, paper.Columns, sqlgraph.NewFieldSpec(paper.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(paper.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Board(); ok {
		_spec.SetField(paper.FieldBoard, field.TypeString, value)
	}
	if value, ok := _u.mutation.Class(); ok {
		_spec.SetField(paper.FieldClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(paper.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(paper.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(paper.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(paper.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMarks(); ok {
		_spec.SetField(paper.FieldTotalMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMarks(); ok {
		_spec.AddField(paper.FieldTotalMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsSectionless(); ok {
		_spec.SetField(paper.FieldIsSectionless, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(paper.FieldInstructions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInstructions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, paper.FieldInstructions, value)
		})
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(paper.FieldInstructions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(paper.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, paper.FieldSections, value)
		})
	}
	if _u.mutation.SectionsCleared() {
		_spec.ClearField(paper.FieldSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(paper.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, paper.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(paper.FieldQuestions, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaperUpdateOne is the builder for updating a single Paper entity.
type PaperUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaperMutation
}

// SetTitle sets the "title" field.
func (_u *PaperUpdateOne) SetTitle(v string) *PaperUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableTitle(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBoard sets the "board" field.
func (_u *PaperUpdateOne) SetBoard(v string) *PaperUpdateOne {
	_u.mutation.SetBoard(v)
	return _u
}

// SetNillableBoard sets the "board" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableBoard(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetBoard(*v)
	}
	return _u
}

// SetClass sets the "class" field.
func (_u *PaperUpdateOne) SetClass(v string) *PaperUpdateOne {
	_u.mutation.SetClass(v)
	return _u
}

// SetNillableClass sets the "class" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableClass(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetClass(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PaperUpdateOne) SetSubject(v string) *PaperUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableSubject(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PaperUpdateOne) SetCreatedBy(v string) *PaperUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableCreatedBy(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *PaperUpdateOne) SetDuration(v int) *PaperUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableDuration(v *int) *PaperUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *PaperUpdateOne) AddDuration(v int) *PaperUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// SetTotalMarks sets the "total_marks" field.
func (_u *PaperUpdateOne) SetTotalMarks(v int) *PaperUpdateOne {
	_u.mutation.ResetTotalMarks()
	_u.mutation.SetTotalMarks(v)
	return _u
}

// SetNillableTotalMarks sets the "total_marks" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableTotalMarks(v *int) *PaperUpdateOne {
	if v != nil {
		_u.SetTotalMarks(*v)
	}
	return _u
}

// AddTotalMarks adds value to the "total_marks" field.
func (_u *PaperUpdateOne) AddTotalMarks(v int) *PaperUpdateOne {
	_u.mutation.AddTotalMarks(v)
	return _u
}

// SetIsSectionless sets the "is_sectionless" field.
func (_u *PaperUpdateOne) SetIsSectionless(v bool) *PaperUpdateOne {
	_u.mutation.SetIsSectionless(v)
	return _u
}

// SetNillableIsSectionless sets the "is_sectionless" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableIsSectionless(v *bool) *PaperUpdateOne {
	if v != nil {
		_u.SetIsSectionless(*v)
	}
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PaperUpdateOne) SetInstructions(v []string) *PaperUpdateOne {
	_u.mutation.SetInstructions(v)
	return _u
}

// AppendInstructions appends value to the "instructions" field.
func (_u *PaperUpdateOne) AppendInstructions(v []string) *PaperUpdateOne {
	_u.mutation.AppendInstructions(v)
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PaperUpdateOne) ClearInstructions() *PaperUpdateOne {
	_u.mutation.ClearInstructions()
	return _u
}

// SetSections sets the "sections" field.
func (_u *PaperUpdateOne) SetSections(v []map[string]interface{}) *PaperUpdateOne {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *PaperUpdateOne) AppendSections(v []map[string]interface{}) *PaperUpdateOne {
	_u.mutation.AppendSections(v)
	return _u
}

// ClearSections clears the value of the "sections" field.
func (_u *PaperUpdateOne) ClearSections() *PaperUpdateOne {
	_u.mutation.ClearSections()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *PaperUpdateOne) SetQuestions(v []map[string]interface{}) *PaperUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *PaperUpdateOne) AppendQuestions(v []map[string]interface{}) *PaperUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *PaperUpdateOne) ClearQuestions() *PaperUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// Mutation returns the PaperMutation object of the builder.
func (_u *PaperUpdateOne) Mutation() *PaperMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaperUpdate builder.
func (_u *PaperUpdateOne) Where(ps ...predicate.Paper) *PaperUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaperUpdateOne) Select(field string, fields ...string) *PaperUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Paper entity.
func (_u *PaperUpdateOne) Save(ctx context.Context) (*Paper, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperUpdateOne) SaveX(ctx context.Context) *Paper {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaperUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaperUpdateOne) check() error {
	if v, ok := _u.mutation.Duration(); ok {
		if err := paper.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "Paper.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalMarks(); ok {
		if err := paper.TotalMarksValidator(v); err != nil {
			return &ValidationError{Name: "total_marks", err: fmt.Errorf(`ent: validator failed for field "Paper.total_marks": %w`, err)}
		}
	}
	return nil
}

func (_u *PaperUpdateOne) sqlSave(ctx context.Context) (_node *Paper, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paper.Table, paper.Columns, sqlgraph.NewFieldSpec(paper.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Paper.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paper.FieldID)
		for _, f := range fields {
			if !paper.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paper.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(paper.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Board(); ok {
		_spec.SetField(paper.FieldBoard, field.TypeString, value)
	}
	if value, ok := _u.mutation.Class(); ok {
		_spec.SetField(paper.FieldClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(paper.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(paper.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(paper.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(paper.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMarks(); ok {
		_spec.SetField(paper.FieldTotalMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMarks(); ok {
		_spec.AddField(paper.FieldTotalMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsSectionless(); ok {
		_spec.SetField(paper.FieldIsSectionless, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(paper.FieldInstructions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInstructions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, paper.FieldInstructions, value)
		})
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(paper.FieldInstructions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(paper.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, paper.FieldSections, value)
		})
	}
	if _u.mutation.SectionsCleared() {
		_spec.ClearField(paper.FieldSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(paper.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, paper.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(paper.FieldQuestions, field.TypeJSON)
	}
	_node = &Paper{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
