// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anvaya/paperforge/ent/llmcall"
	"github.com/anvaya/paperforge/ent/paper"
	"github.com/anvaya/paperforge/ent/predicate"
	"github.com/anvaya/paperforge/ent/question"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLLMCall  = "LLMCall"
	TypePaper    = "Paper"
	TypeQuestion = "Question"
)

// LLMCallMutation represents an operation that mutates the LLMCall nodes in the graph.
type LLMCallMutation struct {
	config
	op               Op
	typ              string
	id               *int
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMCall, error)
	predicates       []predicate.LLMCall
}

var _ ent.Mutation = (*LLMCallMutation)(nil)

// llmcallOption allows management of the mutation configuration using functional options.
type llmcallOption func(*LLMCallMutation)

// newLLMCallMutation creates new mutation for the LLMCall entity.
func newLLMCallMutation(c config, op Op, opts ...llmcallOption) *LLMCallMutation {
	m := &LLMCallMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMCallID sets the ID field of the mutation.
func withLLMCallID(id int) llmcallOption {
	return func(m *LLMCallMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMCall
		)
		m.oldValue = func(ctx context.Context) (*LLMCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMCall sets the old LLMCall of the mutation.
func withLLMCall(node *LLMCall) llmcallOption {
	return func(m *LLMCallMutation) {
		m.oldValue = func(context.Context) (*LLMCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMCallMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMCallMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMCallMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMCallMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMCallMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMCallMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMCallMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMCallMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMCallMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMCallMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMCallMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMCallMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMCallMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMCallMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMCallMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMCallMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMCallMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMCallMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMCallMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMCallMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMCallMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMCallMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMCallMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMCallMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMCallMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMCallMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMCallMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMCallMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMCallMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMCallMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMCallMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMCallMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMCallMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMCallMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMCallMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llmcall.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMCallMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llmcall.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMCallMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llmcall.FieldErrorMessage)
}

// Where appends a list predicates to the LLMCallMutation builder.
func (m *LLMCallMutation) Where(ps ...predicate.LLMCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMCall).
func (m *LLMCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMCallMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.timestamp != nil {
		fields = append(fields, llmcall.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmcall.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmcall.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmcall.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmcall.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmcall.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmcall.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmcall.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmcall.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmcall.FieldTimestamp:
		return m.Timestamp()
	case llmcall.FieldProvider:
		return m.Provider()
	case llmcall.FieldModel:
		return m.Model()
	case llmcall.FieldPurpose:
		return m.Purpose()
	case llmcall.FieldInputTokens:
		return m.InputTokens()
	case llmcall.FieldOutputTokens:
		return m.OutputTokens()
	case llmcall.FieldLatencyMs:
		return m.LatencyMs()
	case llmcall.FieldSuccess:
		return m.Success()
	case llmcall.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmcall.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmcall.FieldProvider:
		return m.OldProvider(ctx)
	case llmcall.FieldModel:
		return m.OldModel(ctx)
	case llmcall.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmcall.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmcall.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmcall.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmcall.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmcall.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmcall.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmcall.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmcall.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmcall.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmcall.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmcall.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmcall.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmcall.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmcall.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMCallMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmcall.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmcall.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmcall.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmcall.FieldInputTokens:
		return m.AddedInputTokens()
	case llmcall.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmcall.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmcall.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmcall.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmcall.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmcall.FieldErrorMessage) {
		fields = append(fields, llmcall.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMCallMutation) ClearField(name string) error {
	switch name {
	case llmcall.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMCallMutation) ResetField(name string) error {
	switch name {
	case llmcall.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmcall.FieldProvider:
		m.ResetProvider()
		return nil
	case llmcall.FieldModel:
		m.ResetModel()
		return nil
	case llmcall.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmcall.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmcall.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmcall.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmcall.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmcall.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMCallMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMCallMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMCallMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMCallMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMCall edge %s", name)
}

// PaperMutation represents an operation that mutates the Paper nodes in the graph.
type PaperMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	title              *string
	board              *string
	class              *string
	subject            *string
	created_by         *string
	created_at         *time.Time
	duration           *int
	addduration        *int
	total_marks        *int
	addtotal_marks     *int
	is_sectionless     *bool
	instructions       *[]string
	appendinstructions []string
	sections           *[]map[string]interface{}
	appendsections     []map[string]interface{}
	questions          *[]map[string]interface{}
	appendquestions    []map[string]interface{}
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Paper, error)
	predicates         []predicate.Paper
}

var _ ent.Mutation = (*PaperMutation)(nil)

// paperOption allows management of the mutation configuration using functional options.
type paperOption func(*PaperMutation)

// newPaperMutation creates new mutation for the Paper entity.
func newPaperMutation(c config, op Op, opts ...paperOption) *PaperMutation {
	m := &PaperMutation{
		config:        c,
		op:            op,
		typ:           TypePaper,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaperID sets the ID field of the mutation.
func withPaperID(id string) paperOption {
	return func(m *PaperMutation) {
		var (
			err   error
			once  sync.Once
			value *Paper
		)
		m.oldValue = func(ctx context.Context) (*Paper, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Paper.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaper sets the old Paper of the mutation.
func withPaper(node *Paper) paperOption {
	return func(m *PaperMutation) {
		m.oldValue = func(context.Context) (*Paper, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaperMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaperMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Paper entities.
func (m *PaperMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaperMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaperMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Paper.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *PaperMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PaperMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PaperMutation) ResetTitle() {
	m.title = nil
}

// SetBoard sets the "board" field.
func (m *PaperMutation) SetBoard(s string) {
	m.board = &s
}

// Board returns the value of the "board" field in the mutation.
func (m *PaperMutation) Board() (r string, exists bool) {
	v := m.board
	if v == nil {
		return
	}
	return *v, true
}

// OldBoard returns the old "board" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldBoard(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoard is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoard requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoard: %w", err)
	}
	return oldValue.Board, nil
}

// ResetBoard resets all changes to the "board" field.
func (m *PaperMutation) ResetBoard() {
	m.board = nil
}

// SetClass sets the "class" field.
func (m *PaperMutation) SetClass(s string) {
	m.class = &s
}

// Class returns the value of the "class" field in the mutation.
func (m *PaperMutation) Class() (r string, exists bool) {
	v := m.class
	if v == nil {
		return
	}
	return *v, true
}

// OldClass returns the old "class" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldClass(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClass: %w", err)
	}
	return oldValue.Class, nil
}

// ResetClass resets all changes to the "class" field.
func (m *PaperMutation) ResetClass() {
	m.class = nil
}

// SetSubject sets the "subject" field.
func (m *PaperMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *PaperMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *PaperMutation) ResetSubject() {
	m.subject = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *PaperMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *PaperMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *PaperMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PaperMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaperMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaperMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDuration sets the "duration" field.
func (m *PaperMutation) SetDuration(i int) {
	m.duration = &i
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *PaperMutation) Duration() (r int, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds i to the "duration" field.
func (m *PaperMutation) AddDuration(i int) {
	if m.addduration != nil {
		*m.addduration += i
	} else {
		m.addduration = &i
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *PaperMutation) AddedDuration() (r int, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *PaperMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// SetTotalMarks sets the "total_marks" field.
func (m *PaperMutation) SetTotalMarks(i int) {
	m.total_marks = &i
	m.addtotal_marks = nil
}

// TotalMarks returns the value of the "total_marks" field in the mutation.
func (m *PaperMutation) TotalMarks() (r int, exists bool) {
	v := m.total_marks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMarks returns the old "total_marks" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldTotalMarks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMarks: %w", err)
	}
	return oldValue.TotalMarks, nil
}

// AddTotalMarks adds i to the "total_marks" field.
func (m *PaperMutation) AddTotalMarks(i int) {
	if m.addtotal_marks != nil {
		*m.addtotal_marks += i
	} else {
		m.addtotal_marks = &i
	}
}

// AddedTotalMarks returns the value that was added to the "total_marks" field in this mutation.
func (m *PaperMutation) AddedTotalMarks() (r int, exists bool) {
	v := m.addtotal_marks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMarks resets all changes to the "total_marks" field.
func (m *PaperMutation) ResetTotalMarks() {
	m.total_marks = nil
	m.addtotal_marks = nil
}

// SetIsSectionless sets the "is_sectionless" field.
func (m *PaperMutation) SetIsSectionless(b bool) {
	m.is_sectionless = &b
}

// IsSectionless returns the value of the "is_sectionless" field in the mutation.
func (m *PaperMutation) IsSectionless() (r bool, exists bool) {
	v := m.is_sectionless
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSectionless returns the old "is_sectionless" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldIsSectionless(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSectionless is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSectionless requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSectionless: %w", err)
	}
	return oldValue.IsSectionless, nil
}

// ResetIsSectionless resets all changes to the "is_sectionless" field.
func (m *PaperMutation) ResetIsSectionless() {
	m.is_sectionless = nil
}

// SetInstructions sets the "instructions" field.
func (m *PaperMutation) SetInstructions(s []string) {
	m.instructions = &s
	m.appendinstructions = nil
}

// Instructions returns the value of the "instructions" field in the mutation.
func (m *PaperMutation) Instructions() (r []string, exists bool) {
	v := m.instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructions returns the old "instructions" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldInstructions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructions: %w", err)
	}
	return oldValue.Instructions, nil
}

// AppendInstructions adds s to the "instructions" field.
func (m *PaperMutation) AppendInstructions(s []string) {
	m.appendinstructions = append(m.appendinstructions, s...)
}

// AppendedInstructions returns the list of values that were appended to the "instructions" field in this mutation.
func (m *PaperMutation) AppendedInstructions() ([]string, bool) {
	if len(m.appendinstructions) == 0 {
		return nil, false
	}
	return m.appendinstructions, true
}

// ClearInstructions clears the value of the "instructions" field.
func (m *PaperMutation) ClearInstructions() {
	m.instructions = nil
	m.appendinstructions = nil
	m.clearedFields[paper.FieldInstructions] = struct{}{}
}

// InstructionsCleared returns if the "instructions" field was cleared in this mutation.
func (m *PaperMutation) InstructionsCleared() bool {
	_, ok := m.clearedFields[paper.FieldInstructions]
	return ok
}

// ResetInstructions resets all changes to the "instructions" field.
func (m *PaperMutation) ResetInstructions() {
	m.instructions = nil
	m.appendinstructions = nil
	delete(m.clearedFields, paper.FieldInstructions)
}

// SetSections sets the "sections" field.
func (m *PaperMutation) SetSections(value []map[string]interface{}) {
	m.sections = &value
	m.appendsections = nil
}

// Sections returns the value of the "sections" field in the mutation.
func (m *PaperMutation) Sections() (r []map[string]interface{}, exists bool) {
	v := m.sections
	if v == nil {
		return
	}
	return *v, true
}

// OldSections returns the old "sections" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldSections(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSections: %w", err)
	}
	return oldValue.Sections, nil
}

// AppendSections adds value to the "sections" field.
func (m *PaperMutation) AppendSections(value []map[string]interface{}) {
	m.appendsections = append(m.appendsections, value...)
}

// AppendedSections returns the list of values that were appended to the "sections" field in this mutation.
func (m *PaperMutation) AppendedSections() ([]map[string]interface{}, bool) {
	if len(m.appendsections) == 0 {
		return nil, false
	}
	return m.appendsections, true
}

// ClearSections clears the value of the "sections" field.
func (m *PaperMutation) ClearSections() {
	m.sections = nil
	m.appendsections = nil
	m.clearedFields[paper.FieldSections] = struct{}{}
}

// SectionsCleared returns if the "sections" field was cleared in this mutation.
func (m *PaperMutation) SectionsCleared() bool {
	_, ok := m.clearedFields[paper.FieldSections]
	return ok
}

// ResetSections resets all changes to the "sections" field.
func (m *PaperMutation) ResetSections() {
	m.sections = nil
	m.appendsections = nil
	delete(m.clearedFields, paper.FieldSections)
}

// SetQuestions sets the "questions" field.
func (m *PaperMutation) SetQuestions(value []map[string]interface{}) {
	m.questions = &value
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *PaperMutation) Questions() (r []map[string]interface{}, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldQuestions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds value to the "questions" field.
func (m *PaperMutation) AppendQuestions(value []map[string]interface{}) {
	m.appendquestions = append(m.appendquestions, value...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *PaperMutation) AppendedQuestions() ([]map[string]interface{}, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ClearQuestions clears the value of the "questions" field.
func (m *PaperMutation) ClearQuestions() {
	m.questions = nil
	m.appendquestions = nil
	m.clearedFields[paper.FieldQuestions] = struct{}{}
}

// QuestionsCleared returns if the "questions" field was cleared in this mutation.
func (m *PaperMutation) QuestionsCleared() bool {
	_, ok := m.clearedFields[paper.FieldQuestions]
	return ok
}

// ResetQuestions resets all changes to the "questions" field.
func (m *PaperMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
	delete(m.clearedFields, paper.FieldQuestions)
}

// Where appends a list predicates to the PaperMutation builder.
func (m *PaperMutation) Where(ps ...predicate.Paper) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaperMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaperMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Paper, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaperMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaperMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Paper).
func (m *PaperMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaperMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.title != nil {
		fields = append(fields, paper.FieldTitle)
	}
	if m.board != nil {
		fields = append(fields, paper.FieldBoard)
	}
	if m.class != nil {
		fields = append(fields, paper.FieldClass)
	}
	if m.subject != nil {
		fields = append(fields, paper.FieldSubject)
	}
	if m.created_by != nil {
		fields = append(fields, paper.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, paper.FieldCreatedAt)
	}
	if m.duration != nil {
		fields = append(fields, paper.FieldDuration)
	}
	if m.total_marks != nil {
		fields = append(fields, paper.FieldTotalMarks)
	}
	if m.is_sectionless != nil {
		fields = append(fields, paper.FieldIsSectionless)
	}
	if m.instructions != nil {
		fields = append(fields, paper.FieldInstructions)
	}
	if m.sections != nil {
		fields = append(fields, paper.FieldSections)
	}
	if m.questions != nil {
		fields = append(fields, paper.FieldQuestions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaperMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paper.FieldTitle:
		return m.Title()
	case paper.FieldBoard:
		return m.Board()
	case paper.FieldClass:
		return m.Class()
	case paper.FieldSubject:
		return m.Subject()
	case paper.FieldCreatedBy:
		return m.CreatedBy()
	case paper.FieldCreatedAt:
		return m.CreatedAt()
	case paper.FieldDuration:
		return m.Duration()
	case paper.FieldTotalMarks:
		return m.TotalMarks()
	case paper.FieldIsSectionless:
		return m.IsSectionless()
	case paper.FieldInstructions:
		return m.Instructions()
	case paper.FieldSections:
		return m.Sections()
	case paper.FieldQuestions:
		return m.Questions()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaperMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paper.FieldTitle:
		return m.OldTitle(ctx)
	case paper.FieldBoard:
		return m.OldBoard(ctx)
	case paper.FieldClass:
		return m.OldClass(ctx)
	case paper.FieldSubject:
		return m.OldSubject(ctx)
	case paper.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case paper.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case paper.FieldDuration:
		return m.OldDuration(ctx)
	case paper.FieldTotalMarks:
		return m.OldTotalMarks(ctx)
	case paper.FieldIsSectionless:
		return m.OldIsSectionless(ctx)
	case paper.FieldInstructions:
		return m.OldInstructions(ctx)
	case paper.FieldSections:
		return m.OldSections(ctx)
	case paper.FieldQuestions:
		return m.OldQuestions(ctx)
	}
	return nil, fmt.Errorf("unknown Paper field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paper.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case paper.FieldBoard:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoard(v)
		return nil
	case paper.FieldClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClass(v)
		return nil
	case paper.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case paper.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case paper.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case paper.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case paper.FieldTotalMarks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMarks(v)
		return nil
	case paper.FieldIsSectionless:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSectionless(v)
		return nil
	case paper.FieldInstructions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructions(v)
		return nil
	case paper.FieldSections:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSections(v)
		return nil
	case paper.FieldQuestions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	}
	return fmt.Errorf("unknown Paper field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaperMutation) AddedFields() []string {
	var fields []string
	if m.addduration != nil {
		fields = append(fields, paper.FieldDuration)
	}
	if m.addtotal_marks != nil {
		fields = append(fields, paper.FieldTotalMarks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaperMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paper.FieldDuration:
		return m.AddedDuration()
	case paper.FieldTotalMarks:
		return m.AddedTotalMarks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paper.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	case paper.FieldTotalMarks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMarks(v)
		return nil
	}
	return fmt.Errorf("unknown Paper numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaperMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paper.FieldInstructions) {
		fields = append(fields, paper.FieldInstructions)
	}
	if m.FieldCleared(paper.FieldSections) {
		fields = append(fields, paper.FieldSections)
	}
	if m.FieldCleared(paper.FieldQuestions) {
		fields = append(fields, paper.FieldQuestions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaperMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaperMutation) ClearField(name string) error {
	switch name {
	case paper.FieldInstructions:
		m.ClearInstructions()
		return nil
	case paper.FieldSections:
		m.ClearSections()
		return nil
	case paper.FieldQuestions:
		m.ClearQuestions()
		return nil
	}
	return fmt.Errorf("unknown Paper nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaperMutation) ResetField(name string) error {
	switch name {
	case paper.FieldTitle:
		m.ResetTitle()
		return nil
	case paper.FieldBoard:
		m.ResetBoard()
		return nil
	case paper.FieldClass:
		m.ResetClass()
		return nil
	case paper.FieldSubject:
		m.ResetSubject()
		return nil
	case paper.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case paper.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case paper.FieldDuration:
		m.ResetDuration()
		return nil
	case paper.FieldTotalMarks:
		m.ResetTotalMarks()
		return nil
	case paper.FieldIsSectionless:
		m.ResetIsSectionless()
		return nil
	case paper.FieldInstructions:
		m.ResetInstructions()
		return nil
	case paper.FieldSections:
		m.ResetSections()
		return nil
	case paper.FieldQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown Paper field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaperMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaperMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaperMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaperMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaperMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaperMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaperMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Paper unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaperMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Paper edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	text          *string
	_type         *string
	board         *string
	class         *string
	subject       *string
	chapter       *string
	topic         *string
	difficulty    *string
	bloom_level   *string
	marks         *int
	addmarks      *int
	answer        *string
	has_image     *bool
	image_url     *string
	is_generated  *bool
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Question, error)
	predicates    []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id string) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetText sets the "text" field.
func (m *QuestionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *QuestionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *QuestionMutation) ResetText() {
	m.text = nil
}

// SetType sets the "type" field.
func (m *QuestionMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *QuestionMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *QuestionMutation) ResetType() {
	m._type = nil
}

// SetBoard sets the "board" field.
func (m *QuestionMutation) SetBoard(s string) {
	m.board = &s
}

// Board returns the value of the "board" field in the mutation.
func (m *QuestionMutation) Board() (r string, exists bool) {
	v := m.board
	if v == nil {
		return
	}
	return *v, true
}

// OldBoard returns the old "board" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldBoard(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoard is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoard requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoard: %w", err)
	}
	return oldValue.Board, nil
}

// ResetBoard resets all changes to the "board" field.
func (m *QuestionMutation) ResetBoard() {
	m.board = nil
}

// SetClass sets the "class" field.
func (m *QuestionMutation) SetClass(s string) {
	m.class = &s
}

// Class returns the value of the "class" field in the mutation.
func (m *QuestionMutation) Class() (r string, exists bool) {
	v := m.class
	if v == nil {
		return
	}
	return *v, true
}

// OldClass returns the old "class" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldClass(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClass: %w", err)
	}
	return oldValue.Class, nil
}

// ResetClass resets all changes to the "class" field.
func (m *QuestionMutation) ResetClass() {
	m.class = nil
}

// SetSubject sets the "subject" field.
func (m *QuestionMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *QuestionMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *QuestionMutation) ResetSubject() {
	m.subject = nil
}

// SetChapter sets the "chapter" field.
func (m *QuestionMutation) SetChapter(s string) {
	m.chapter = &s
}

// Chapter returns the value of the "chapter" field in the mutation.
func (m *QuestionMutation) Chapter() (r string, exists bool) {
	v := m.chapter
	if v == nil {
		return
	}
	return *v, true
}

// OldChapter returns the old "chapter" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldChapter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapter: %w", err)
	}
	return oldValue.Chapter, nil
}

// ResetChapter resets all changes to the "chapter" field.
func (m *QuestionMutation) ResetChapter() {
	m.chapter = nil
}

// SetTopic sets the "topic" field.
func (m *QuestionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *QuestionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *QuestionMutation) ResetTopic() {
	m.topic = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *QuestionMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *QuestionMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *QuestionMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetBloomLevel sets the "bloom_level" field.
func (m *QuestionMutation) SetBloomLevel(s string) {
	m.bloom_level = &s
}

// BloomLevel returns the value of the "bloom_level" field in the mutation.
func (m *QuestionMutation) BloomLevel() (r string, exists bool) {
	v := m.bloom_level
	if v == nil {
		return
	}
	return *v, true
}

// OldBloomLevel returns the old "bloom_level" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldBloomLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloomLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloomLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloomLevel: %w", err)
	}
	return oldValue.BloomLevel, nil
}

// ResetBloomLevel resets all changes to the "bloom_level" field.
func (m *QuestionMutation) ResetBloomLevel() {
	m.bloom_level = nil
}

// SetMarks sets the "marks" field.
func (m *QuestionMutation) SetMarks(i int) {
	m.marks = &i
	m.addmarks = nil
}

// Marks returns the value of the "marks" field in the mutation.
func (m *QuestionMutation) Marks() (r int, exists bool) {
	v := m.marks
	if v == nil {
		return
	}
	return *v, true
}

// OldMarks returns the old "marks" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldMarks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarks: %w", err)
	}
	return oldValue.Marks, nil
}

// AddMarks adds i to the "marks" field.
func (m *QuestionMutation) AddMarks(i int) {
	if m.addmarks != nil {
		*m.addmarks += i
	} else {
		m.addmarks = &i
	}
}

// AddedMarks returns the value that was added to the "marks" field in this mutation.
func (m *QuestionMutation) AddedMarks() (r int, exists bool) {
	v := m.addmarks
	if v == nil {
		return
	}
	return *v, true
}

// ResetMarks resets all changes to the "marks" field.
func (m *QuestionMutation) ResetMarks() {
	m.marks = nil
	m.addmarks = nil
}

// SetAnswer sets the "answer" field.
func (m *QuestionMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *QuestionMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ClearAnswer clears the value of the "answer" field.
func (m *QuestionMutation) ClearAnswer() {
	m.answer = nil
	m.clearedFields[question.FieldAnswer] = struct{}{}
}

// AnswerCleared returns if the "answer" field was cleared in this mutation.
func (m *QuestionMutation) AnswerCleared() bool {
	_, ok := m.clearedFields[question.FieldAnswer]
	return ok
}

// ResetAnswer resets all changes to the "answer" field.
func (m *QuestionMutation) ResetAnswer() {
	m.answer = nil
	delete(m.clearedFields, question.FieldAnswer)
}

// SetHasImage sets the "has_image" field.
func (m *QuestionMutation) SetHasImage(b bool) {
	m.has_image = &b
}

// HasImage returns the value of the "has_image" field in the mutation.
func (m *QuestionMutation) HasImage() (r bool, exists bool) {
	v := m.has_image
	if v == nil {
		return
	}
	return *v, true
}

// OldHasImage returns the old "has_image" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldHasImage(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasImage: %w", err)
	}
	return oldValue.HasImage, nil
}

// ResetHasImage resets all changes to the "has_image" field.
func (m *QuestionMutation) ResetHasImage() {
	m.has_image = nil
}

// SetImageURL sets the "image_url" field.
func (m *QuestionMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *QuestionMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *QuestionMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[question.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *QuestionMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[question.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *QuestionMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, question.FieldImageURL)
}

// SetIsGenerated sets the "is_generated" field.
func (m *QuestionMutation) SetIsGenerated(b bool) {
	m.is_generated = &b
}

// IsGenerated returns the value of the "is_generated" field in the mutation.
func (m *QuestionMutation) IsGenerated() (r bool, exists bool) {
	v := m.is_generated
	if v == nil {
		return
	}
	return *v, true
}

// OldIsGenerated returns the old "is_generated" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldIsGenerated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsGenerated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsGenerated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsGenerated: %w", err)
	}
	return oldValue.IsGenerated, nil
}

// ResetIsGenerated resets all changes to the "is_generated" field.
func (m *QuestionMutation) ResetIsGenerated() {
	m.is_generated = nil
}

// SetPayload sets the "payload" field.
func (m *QuestionMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *QuestionMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *QuestionMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[question.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *QuestionMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[question.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *QuestionMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, question.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.text != nil {
		fields = append(fields, question.FieldText)
	}
	if m._type != nil {
		fields = append(fields, question.FieldType)
	}
	if m.board != nil {
		fields = append(fields, question.FieldBoard)
	}
	if m.class != nil {
		fields = append(fields, question.FieldClass)
	}
	if m.subject != nil {
		fields = append(fields, question.FieldSubject)
	}
	if m.chapter != nil {
		fields = append(fields, question.FieldChapter)
	}
	if m.topic != nil {
		fields = append(fields, question.FieldTopic)
	}
	if m.difficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.bloom_level != nil {
		fields = append(fields, question.FieldBloomLevel)
	}
	if m.marks != nil {
		fields = append(fields, question.FieldMarks)
	}
	if m.answer != nil {
		fields = append(fields, question.FieldAnswer)
	}
	if m.has_image != nil {
		fields = append(fields, question.FieldHasImage)
	}
	if m.image_url != nil {
		fields = append(fields, question.FieldImageURL)
	}
	if m.is_generated != nil {
		fields = append(fields, question.FieldIsGenerated)
	}
	if m.payload != nil {
		fields = append(fields, question.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldText:
		return m.Text()
	case question.FieldType:
		return m.GetType()
	case question.FieldBoard:
		return m.Board()
	case question.FieldClass:
		return m.Class()
	case question.FieldSubject:
		return m.Subject()
	case question.FieldChapter:
		return m.Chapter()
	case question.FieldTopic:
		return m.Topic()
	case question.FieldDifficulty:
		return m.Difficulty()
	case question.FieldBloomLevel:
		return m.BloomLevel()
	case question.FieldMarks:
		return m.Marks()
	case question.FieldAnswer:
		return m.Answer()
	case question.FieldHasImage:
		return m.HasImage()
	case question.FieldImageURL:
		return m.ImageURL()
	case question.FieldIsGenerated:
		return m.IsGenerated()
	case question.FieldPayload:
		return m.Payload()
	case question.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldText:
		return m.OldText(ctx)
	case question.FieldType:
		return m.OldType(ctx)
	case question.FieldBoard:
		return m.OldBoard(ctx)
	case question.FieldClass:
		return m.OldClass(ctx)
	case question.FieldSubject:
		return m.OldSubject(ctx)
	case question.FieldChapter:
		return m.OldChapter(ctx)
	case question.FieldTopic:
		return m.OldTopic(ctx)
	case question.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case question.FieldBloomLevel:
		return m.OldBloomLevel(ctx)
	case question.FieldMarks:
		return m.OldMarks(ctx)
	case question.FieldAnswer:
		return m.OldAnswer(ctx)
	case question.FieldHasImage:
		return m.OldHasImage(ctx)
	case question.FieldImageURL:
		return m.OldImageURL(ctx)
	case question.FieldIsGenerated:
		return m.OldIsGenerated(ctx)
	case question.FieldPayload:
		return m.OldPayload(ctx)
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case question.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case question.FieldBoard:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoard(v)
		return nil
	case question.FieldClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClass(v)
		return nil
	case question.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case question.FieldChapter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapter(v)
		return nil
	case question.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case question.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case question.FieldBloomLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloomLevel(v)
		return nil
	case question.FieldMarks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarks(v)
		return nil
	case question.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case question.FieldHasImage:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasImage(v)
		return nil
	case question.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case question.FieldIsGenerated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsGenerated(v)
		return nil
	case question.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addmarks != nil {
		fields = append(fields, question.FieldMarks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldMarks:
		return m.AddedMarks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldMarks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMarks(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldAnswer) {
		fields = append(fields, question.FieldAnswer)
	}
	if m.FieldCleared(question.FieldImageURL) {
		fields = append(fields, question.FieldImageURL)
	}
	if m.FieldCleared(question.FieldPayload) {
		fields = append(fields, question.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldAnswer:
		m.ClearAnswer()
		return nil
	case question.FieldImageURL:
		m.ClearImageURL()
		return nil
	case question.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldText:
		m.ResetText()
		return nil
	case question.FieldType:
		m.ResetType()
		return nil
	case question.FieldBoard:
		m.ResetBoard()
		return nil
	case question.FieldClass:
		m.ResetClass()
		return nil
	case question.FieldSubject:
		m.ResetSubject()
		return nil
	case question.FieldChapter:
		m.ResetChapter()
		return nil
	case question.FieldTopic:
		m.ResetTopic()
		return nil
	case question.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case question.FieldBloomLevel:
		m.ResetBloomLevel()
		return nil
	case question.FieldMarks:
		m.ResetMarks()
		return nil
	case question.FieldAnswer:
		m.ResetAnswer()
		return nil
	case question.FieldHasImage:
		m.ResetHasImage()
		return nil
	case question.FieldImageURL:
		m.ResetImageURL()
		return nil
	case question.FieldIsGenerated:
		m.ResetIsGenerated()
		return nil
	case question.FieldPayload:
		m.ResetPayload()
		return nil
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}
