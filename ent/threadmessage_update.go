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
	"github.com/oikos-sh/brigade/ent/predicate"
	"github.com/oikos-sh/brigade/ent/threadmessage"
)

// ThreadMessageUpdate is the builder for updating ThreadMessage entities.
type ThreadMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ThreadMessageMutation
}

// Where appends a list predicates to the ThreadMessageUpdate builder.
func (_u *ThreadMessageUpdate) Where(ps ...predicate.ThreadMessage) *ThreadMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *ThreadMessageUpdate) SetContent(v string) *ThreadMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ThreadMessageUpdate) SetNillableContent(v *string) *ThreadMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *ThreadMessageUpdate) SetToolCalls(v []map[string]interface{}) *ThreadMessageUpdate {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *ThreadMessageUpdate) AppendToolCalls(v []map[string]interface{}) *ThreadMessageUpdate {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *ThreadMessageUpdate) ClearToolCalls() *ThreadMessageUpdate {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetToolCallID sets the "tool_call_id" field.
func (_u *ThreadMessageUpdate) SetToolCallID(v string) *ThreadMessageUpdate {
	_u.mutation.SetToolCallID(v)
	return _u
}

// SetNillableToolCallID sets the "tool_call_id" field if the given value is not nil.
func (_u *ThreadMessageUpdate) SetNillableToolCallID(v *string) *ThreadMessageUpdate {
	if v != nil {
		_u.SetToolCallID(*v)
	}
	return _u
}

// ClearToolCallID clears the value of the "tool_call_id" field.
func (_u *ThreadMessageUpdate) ClearToolCallID() *ThreadMessageUpdate {
	_u.mutation.ClearToolCallID()
	return _u
}

// SetName sets the "name" field.
func (_u *ThreadMessageUpdate) SetName(v string) *ThreadMessageUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ThreadMessageUpdate) SetNillableName(v *string) *ThreadMessageUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ThreadMessageUpdate) ClearName() *ThreadMessageUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ThreadMessageUpdate) SetMetadata(v map[string]interface{}) *ThreadMessageUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ThreadMessageUpdate) ClearMetadata() *ThreadMessageUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ThreadMessageMutation object of the builder.
func (_u *ThreadMessageUpdate) Mutation() *ThreadMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ThreadMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThreadMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ThreadMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThreadMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThreadMessageUpdate) check() error {
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ThreadMessage.thread"`)
	}
	return nil
}

func (_u *ThreadMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(threadmessage.Table, threadmessage.Columns, sqlgraph.NewFieldSpec(threadmessage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(threadmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(threadmessage.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, threadmessage.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(threadmessage.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCallID(); ok {
		_spec.SetField(threadmessage.FieldToolCallID, field.TypeString, value)
	}
	if _u.mutation.ToolCallIDCleared() {
		_spec.ClearField(threadmessage.FieldToolCallID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(threadmessage.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(threadmessage.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(threadmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(threadmessage.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{threadmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ThreadMessageUpdateOne is the builder for updating a single ThreadMessage entity.
type ThreadMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ThreadMessageMutation
}

// SetContent sets the "content" field.
func (_u *ThreadMessageUpdateOne) SetContent(v string) *ThreadMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ThreadMessageUpdateOne) SetNillableContent(v *string) *ThreadMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *ThreadMessageUpdateOne) SetToolCalls(v []map[string]interface{}) *ThreadMessageUpdateOne {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *ThreadMessageUpdateOne) AppendToolCalls(v []map[string]interface{}) *ThreadMessageUpdateOne {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *ThreadMessageUpdateOne) ClearToolCalls() *ThreadMessageUpdateOne {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetToolCallID sets the "tool_call_id" field.
func (_u *ThreadMessageUpdateOne) SetToolCallID(v string) *ThreadMessageUpdateOne {
	_u.mutation.SetToolCallID(v)
	return _u
}

// SetNillableToolCallID sets the "tool_call_id" field if the given value is not nil.
func (_u *ThreadMessageUpdateOne) SetNillableToolCallID(v *string) *ThreadMessageUpdateOne {
	if v != nil {
		_u.SetToolCallID(*v)
	}
	return _u
}

// ClearToolCallID clears the value of the "tool_call_id" field.
func (_u *ThreadMessageUpdateOne) ClearToolCallID() *ThreadMessageUpdateOne {
	_u.mutation.ClearToolCallID()
	return _u
}

// SetName sets the "name" field.
func (_u *ThreadMessageUpdateOne) SetName(v string) *ThreadMessageUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ThreadMessageUpdateOne) SetNillableName(v *string) *ThreadMessageUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ThreadMessageUpdateOne) ClearName() *ThreadMessageUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ThreadMessageUpdateOne) SetMetadata(v map[string]interface{}) *ThreadMessageUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ThreadMessageUpdateOne) ClearMetadata() *ThreadMessageUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ThreadMessageMutation object of the builder.
func (_u *ThreadMessageUpdateOne) Mutation() *ThreadMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ThreadMessageUpdate builder.
func (_u *ThreadMessageUpdateOne) Where(ps ...predicate.ThreadMessage) *ThreadMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ThreadMessageUpdateOne) Select(field string, fields ...string) *ThreadMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ThreadMessage entity.
func (_u *ThreadMessageUpdateOne) Save(ctx context.Context) (*ThreadMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThreadMessageUpdateOne) SaveX(ctx context.Context) *ThreadMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ThreadMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThreadMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThreadMessageUpdateOne) check() error {
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ThreadMessage.thread"`)
	}
	return nil
}

func (_u *ThreadMessageUpdateOne) sqlSave(ctx context.Context) (_node *ThreadMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(threadmessage.Table, threadmessage.Columns, sqlgraph.NewFieldSpec(threadmessage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ThreadMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, threadmessage.FieldID)
		for _, f := range fields {
			if !threadmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != threadmessage.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(threadmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(threadmessage.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, threadmessage.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(threadmessage.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCallID(); ok {
		_spec.SetField(threadmessage.FieldToolCallID, field.TypeString, value)
	}
	if _u.mutation.ToolCallIDCleared() {
		_spec.ClearField(threadmessage.FieldToolCallID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(threadmessage.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(threadmessage.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(threadmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(threadmessage.FieldMetadata, field.TypeJSON)
	}
	_node = &ThreadMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{threadmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
