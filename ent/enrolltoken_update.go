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
	"github.com/oikos-sh/brigade/ent/enrolltoken"
	"github.com/oikos-sh/brigade/ent/predicate"
)

// EnrollTokenUpdate is the builder for updating EnrollToken entities.
type EnrollTokenUpdate struct {
	config
	hooks    []Hook
	mutation *EnrollTokenMutation
}

// Where appends a list predicates to the EnrollTokenUpdate builder.
func (_u *EnrollTokenUpdate) Where(ps ...predicate.EnrollToken) *EnrollTokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTokenHash sets the "token_hash" field.
func (_u *EnrollTokenUpdate) SetTokenHash(v string) *EnrollTokenUpdate {
	_u.mutation.SetTokenHash(v)
	return _u
}

// SetNillableTokenHash sets the "token_hash" field if the given value is not nil.
func (_u *EnrollTokenUpdate) SetNillableTokenHash(v *string) *EnrollTokenUpdate {
	if v != nil {
		_u.SetTokenHash(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *EnrollTokenUpdate) SetCreatedBy(v int) *EnrollTokenUpdate {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *EnrollTokenUpdate) SetNillableCreatedBy(v *int) *EnrollTokenUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *EnrollTokenUpdate) AddCreatedBy(v int) *EnrollTokenUpdate {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *EnrollTokenUpdate) SetExpiresAt(v time.Time) *EnrollTokenUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *EnrollTokenUpdate) SetNillableExpiresAt(v *time.Time) *EnrollTokenUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *EnrollTokenUpdate) SetUsedAt(v time.Time) *EnrollTokenUpdate {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *EnrollTokenUpdate) SetNillableUsedAt(v *time.Time) *EnrollTokenUpdate {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *EnrollTokenUpdate) ClearUsedAt() *EnrollTokenUpdate {
	_u.mutation.ClearUsedAt()
	return _u
}

// SetRunnerID sets the "runner_id" field.
func (_u *EnrollTokenUpdate) SetRunnerID(v int) *EnrollTokenUpdate {
	_u.mutation.ResetRunnerID()
	_u.mutation.SetRunnerID(v)
	return _u
}

// SetNillableRunnerID sets the "runner_id" field if the given value is not nil.
func (_u *EnrollTokenUpdate) SetNillableRunnerID(v *int) *EnrollTokenUpdate {
	if v != nil {
		_u.SetRunnerID(*v)
	}
	return _u
}

// AddRunnerID adds value to the "runner_id" field.
func (_u *EnrollTokenUpdate) AddRunnerID(v int) *EnrollTokenUpdate {
	_u.mutation.AddRunnerID(v)
	return _u
}

// ClearRunnerID clears the value of the "runner_id" field.
func (_u *EnrollTokenUpdate) ClearRunnerID() *EnrollTokenUpdate {
	_u.mutation.ClearRunnerID()
	return _u
}

// Mutation returns the EnrollTokenMutation object of the builder.
func (_u *EnrollTokenUpdate) Mutation() *EnrollTokenMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnrollTokenUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnrollTokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollTokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EnrollTokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(enrolltoken.Table, enrolltoken.Columns, sqlgraph.NewFieldSpec(enrolltoken.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TokenHash(); ok {
		_spec.SetField(enrolltoken.FieldTokenHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(enrolltoken.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(enrolltoken.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(enrolltoken.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(enrolltoken.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(enrolltoken.FieldUsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RunnerID(); ok {
		_spec.SetField(enrolltoken.FieldRunnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRunnerID(); ok {
		_spec.AddField(enrolltoken.FieldRunnerID, field.TypeInt, value)
	}
	if _u.mutation.RunnerIDCleared() {
		_spec.ClearField(enrolltoken.FieldRunnerID, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrolltoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnrollTokenUpdateOne is the builder for updating a single EnrollToken entity.
type EnrollTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnrollTokenMutation
}

// SetTokenHash sets the "token_hash" field.
func (_u *EnrollTokenUpdateOne) SetTokenHash(v string) *EnrollTokenUpdateOne {
	_u.mutation.SetTokenHash(v)
	return _u
}

// SetNillableTokenHash sets the "token_hash" field if the given value is not nil.
func (_u *EnrollTokenUpdateOne) SetNillableTokenHash(v *string) *EnrollTokenUpdateOne {
	if v != nil {
		_u.SetTokenHash(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *EnrollTokenUpdateOne) SetCreatedBy(v int) *EnrollTokenUpdateOne {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *EnrollTokenUpdateOne) SetNillableCreatedBy(v *int) *EnrollTokenUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *EnrollTokenUpdateOne) AddCreatedBy(v int) *EnrollTokenUpdateOne {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *EnrollTokenUpdateOne) SetExpiresAt(v time.Time) *EnrollTokenUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *EnrollTokenUpdateOne) SetNillableExpiresAt(v *time.Time) *EnrollTokenUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *EnrollTokenUpdateOne) SetUsedAt(v time.Time) *EnrollTokenUpdateOne {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *EnrollTokenUpdateOne) SetNillableUsedAt(v *time.Time) *EnrollTokenUpdateOne {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *EnrollTokenUpdateOne) ClearUsedAt() *EnrollTokenUpdateOne {
	_u.mutation.ClearUsedAt()
	return _u
}

// SetRunnerID sets the "runner_id" field.
func (_u *EnrollTokenUpdateOne) SetRunnerID(v int) *EnrollTokenUpdateOne {
	_u.mutation.ResetRunnerID()
	_u.mutation.SetRunnerID(v)
	return _u
}

// SetNillableRunnerID sets the "runner_id" field if the given value is not nil.
func (_u *EnrollTokenUpdateOne) SetNillableRunnerID(v *int) *EnrollTokenUpdateOne {
	if v != nil {
		_u.SetRunnerID(*v)
	}
	return _u
}

// AddRunnerID adds value to the "runner_id" field.
func (_u *EnrollTokenUpdateOne) AddRunnerID(v int) *EnrollTokenUpdateOne {
	_u.mutation.AddRunnerID(v)
	return _u
}

// ClearRunnerID clears the value of the "runner_id" field.
func (_u *EnrollTokenUpdateOne) ClearRunnerID() *EnrollTokenUpdateOne {
	_u.mutation.ClearRunnerID()
	return _u
}

// Mutation returns the EnrollTokenMutation object of the builder.
func (_u *EnrollTokenUpdateOne) Mutation() *EnrollTokenMutation {
	return _u.mutation
}

// Where appends a list predicates to the EnrollTokenUpdate builder.
func (_u *EnrollTokenUpdateOne) Where(ps ...predicate.EnrollToken) *EnrollTokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnrollTokenUpdateOne) Select(field string, fields ...string) *EnrollTokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EnrollToken entity.
func (_u *EnrollTokenUpdateOne) Save(ctx context.Context) (*EnrollToken, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollTokenUpdateOne) SaveX(ctx context.Context) *EnrollToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnrollTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollTokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EnrollTokenUpdateOne) sqlSave(ctx context.Context) (_node *EnrollToken, err error) {
	_spec := sqlgraph.NewUpdateSpec(enrolltoken.Table, enrolltoken.Columns, sqlgraph.NewFieldSpec(enrolltoken.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EnrollToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enrolltoken.FieldID)
		for _, f := range fields {
			if !enrolltoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != enrolltoken.FieldID {
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
	if value, ok := _u.mutation.TokenHash(); ok {
		_spec.SetField(enrolltoken.FieldTokenHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(enrolltoken.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(enrolltoken.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(enrolltoken.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(enrolltoken.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(enrolltoken.FieldUsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RunnerID(); ok {
		_spec.SetField(enrolltoken.FieldRunnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRunnerID(); ok {
		_spec.AddField(enrolltoken.FieldRunnerID, field.TypeInt, value)
	}
	if _u.mutation.RunnerIDCleared() {
		_spec.ClearField(enrolltoken.FieldRunnerID, field.TypeInt)
	}
	_node = &EnrollToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrolltoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
