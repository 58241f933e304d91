// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anvaya/paperforge/ent/llmcall"
)

// LLMCallCreate is the builder for creating a LLMCall entity.
type LLMCallCreate struct {
	config
	mutation *LLMCallMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTimestamp sets the "timestamp" field.
func (_c *LLMCallCreate) SetTimestamp(v time.Time) *LLMCallCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableTimestamp(v *time.Time) *LLMCallCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMCallCreate) SetProvider(v string) *LLMCallCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMCallCreate) SetModel(v string) *LLMCallCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *LLMCallCreate) SetPurpose(v string) *LLMCallCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *LLMCallCreate) SetInputTokens(v int) *LLMCallCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableInputTokens(v *int) *LLMCallCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *LLMCallCreate) SetOutputTokens(v int) *LLMCallCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableOutputTokens(v *int) *LLMCallCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *LLMCallCreate) SetLatencyMs(v int64) *LLMCallCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableLatencyMs(v *int64) *LLMCallCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *LLMCallCreate) SetSuccess(v bool) *LLMCallCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LLMCallCreate) SetErrorMessage(v string) *LLMCallCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableErrorMessage(v *string) *LLMCallCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the LLMCallMutation object of the builder.
func (_c *LLMCallCreate) Mutation() *LLMCallMutation {
	return _c.mutation
}

// Save creates the LLMCall in the database.
func (_c *LLMCallCreate) Save(ctx context.Context) (*LLMCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMCallCreate) SaveX(ctx context.Context) *LLMCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMCallCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := llmcall.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := llmcall.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := llmcall.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := llmcall.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMCallCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LLMCall.timestamp"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMCall.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMCall.model"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "LLMCall.purpose"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "LLMCall.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "LLMCall.output_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "LLMCall.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "LLMCall.success"`)}
	}
	return nil
}

func (_c *LLMCallCreate) sqlSave(ctx context.Context) (*LLMCall, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMCallCreate) createSpec() (*LLMCall, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmcall.Table, sqlgraph.NewFieldSpec(llmcall.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(llmcall.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmcall.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmcall.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(llmcall.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(llmcall.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(llmcall.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(llmcall.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(llmcall.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(llmcall.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMCall.Create().
//		SetTimestamp(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMCallUpsert) {
//			SetTimestamp(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMCallCreate) OnConflict(opts ...sql.ConflictOption) *LLMCallUpsertOne {
	_c.conflict = opts
	return &LLMCallUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMCallCreate) OnConflictColumns(columns ...string) *LLMCallUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMCallUpsertOne{
		create: _c,
	}
}

type (
	// LLMCallUpsertOne is the builder for "upsert"-ing
	//  one LLMCall node.
	LLMCallUpsertOne struct {
		create *LLMCallCreate
	}

	// LLMCallUpsert is the "OnConflict" setter.
	LLMCallUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *LLMCallUpsert) SetProvider(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateProvider() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldProvider)
	return u
}

// SetModel sets the "model" field.
func (u *LLMCallUpsert) SetModel(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateModel() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldModel)
	return u
}

// SetPurpose sets the "purpose" field.
func (u *LLMCallUpsert) SetPurpose(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldPurpose, v)
	return u
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdatePurpose() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldPurpose)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMCallUpsert) SetInputTokens(v int) *LLMCallUpsert {
	u.Set(llmcall.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateInputTokens() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMCallUpsert) AddInputTokens(v int) *LLMCallUpsert {
	u.Add(llmcall.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMCallUpsert) SetOutputTokens(v int) *LLMCallUpsert {
	u.Set(llmcall.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateOutputTokens() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMCallUpsert) AddOutputTokens(v int) *LLMCallUpsert {
	u.Add(llmcall.FieldOutputTokens, v)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMCallUpsert) SetLatencyMs(v int64) *LLMCallUpsert {
	u.Set(llmcall.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateLatencyMs() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMCallUpsert) AddLatencyMs(v int64) *LLMCallUpsert {
	u.Add(llmcall.FieldLatencyMs, v)
	return u
}

// SetSuccess sets the "success" field.
func (u *LLMCallUpsert) SetSuccess(v bool) *LLMCallUpsert {
	u.Set(llmcall.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateSuccess() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldSuccess)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMCallUpsert) SetErrorMessage(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateErrorMessage() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMCallUpsert) ClearErrorMessage() *LLMCallUpsert {
	u.SetNull(llmcall.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LLMCallUpsertOne) UpdateNewValues() *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(llmcall.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LLMCallUpsertOne) Ignore() *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMCallUpsertOne) DoNothing() *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMCallCreate.OnConflict
// documentation for more info.
func (u *LLMCallUpsertOne) Update(set func(*LLMCallUpsert)) *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMCallUpsertOne) SetProvider(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateProvider() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMCallUpsertOne) SetModel(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateModel() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateModel()
	})
}

// SetPurpose sets the "purpose" field.
func (u *LLMCallUpsertOne) SetPurpose(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetPurpose(v)
	})
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdatePurpose() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdatePurpose()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMCallUpsertOne) SetInputTokens(v int) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMCallUpsertOne) AddInputTokens(v int) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateInputTokens() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMCallUpsertOne) SetOutputTokens(v int) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMCallUpsertOne) AddOutputTokens(v int) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateOutputTokens() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMCallUpsertOne) SetLatencyMs(v int64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMCallUpsertOne) AddLatencyMs(v int64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateLatencyMs() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *LLMCallUpsertOne) SetSuccess(v bool) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateSuccess() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMCallUpsertOne) SetErrorMessage(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateErrorMessage() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMCallUpsertOne) ClearErrorMessage() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *LLMCallUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMCallCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMCallUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LLMCallUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LLMCallUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LLMCallCreateBulk is the builder for creating many LLMCall entities in bulk.
type LLMCallCreateBulk struct {
	config
	err      error
	builders []*LLMCallCreate
	conflict []sql.ConflictOption
}

// Save creates the LLMCall entities in the database.
func (_c *LLMCallCreateBulk) Save(ctx context.Context) ([]*LLMCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMCallMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *LLMCallCreateBulk) SaveX(ctx context.Context) []*LLMCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMCall.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMCallUpsert) {
//			SetTimestamp(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMCallCreateBulk) OnConflict(opts ...sql.ConflictOption) *LLMCallUpsertBulk {
	_c.conflict = opts
	return &LLMCallUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMCallCreateBulk) OnConflictColumns(columns ...string) *LLMCallUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMCallUpsertBulk{
		create: _c,
	}
}

// LLMCallUpsertBulk is the builder for "upsert"-ing
// a bulk of LLMCall nodes.
type LLMCallUpsertBulk struct {
	create *LLMCallCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LLMCallUpsertBulk) UpdateNewValues() *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(llmcall.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LLMCallUpsertBulk) Ignore() *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMCallUpsertBulk) DoNothing() *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMCallCreateBulk.OnConflict
// documentation for more info.
func (u *LLMCallUpsertBulk) Update(set func(*LLMCallUpsert)) *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMCallUpsertBulk) SetProvider(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateProvider() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMCallUpsertBulk) SetModel(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateModel() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateModel()
	})
}

// SetPurpose sets the "purpose" field.
func (u *LLMCallUpsertBulk) SetPurpose(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetPurpose(v)
	})
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdatePurpose() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdatePurpose()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMCallUpsertBulk) SetInputTokens(v int) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMCallUpsertBulk) AddInputTokens(v int) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateInputTokens() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMCallUpsertBulk) SetOutputTokens(v int) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMCallUpsertBulk) AddOutputTokens(v int) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateOutputTokens() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMCallUpsertBulk) SetLatencyMs(v int64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMCallUpsertBulk) AddLatencyMs(v int64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateLatencyMs() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *LLMCallUpsertBulk) SetSuccess(v bool) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateSuccess() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMCallUpsertBulk) SetErrorMessage(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateErrorMessage() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMCallUpsertBulk) ClearErrorMessage() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *LLMCallUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LLMCallCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMCallCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMCallUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
