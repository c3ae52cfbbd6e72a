// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oikos-sh/brigade/ent/enrolltoken"
)

// EnrollTokenCreate is the builder for creating a EnrollToken entity.
type EnrollTokenCreate struct {
	config
	mutation *EnrollTokenMutation
	hooks    []Hook
}

// SetTokenHash sets the "token_hash" field.
func (_c *EnrollTokenCreate) SetTokenHash(v string) *EnrollTokenCreate {
	_c.mutation.SetTokenHash(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *EnrollTokenCreate) SetCreatedBy(v int) *EnrollTokenCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *EnrollTokenCreate) SetExpiresAt(v time.Time) *EnrollTokenCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetUsedAt sets the "used_at" field.
func (_c *EnrollTokenCreate) SetUsedAt(v time.Time) *EnrollTokenCreate {
	_c.mutation.SetUsedAt(v)
	return _c
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_c *EnrollTokenCreate) SetNillableUsedAt(v *time.Time) *EnrollTokenCreate {
	if v != nil {
		_c.SetUsedAt(*v)
	}
	return _c
}

// SetRunnerID sets the "runner_id" field.
func (_c *EnrollTokenCreate) SetRunnerID(v int) *EnrollTokenCreate {
	_c.mutation.SetRunnerID(v)
	return _c
}

// SetNillableRunnerID sets the "runner_id" field if the given value is not nil.
func (_c *EnrollTokenCreate) SetNillableRunnerID(v *int) *EnrollTokenCreate {
	if v != nil {
		_c.SetRunnerID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EnrollTokenCreate) SetCreatedAt(v time.Time) *EnrollTokenCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EnrollTokenCreate) SetNillableCreatedAt(v *time.Time) *EnrollTokenCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the EnrollTokenMutation object of the builder.
func (_c *EnrollTokenCreate) Mutation() *EnrollTokenMutation {
	return _c.mutation
}

// Save creates the EnrollToken in the database.
func (_c *EnrollTokenCreate) Save(ctx context.Context) (*EnrollToken, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnrollTokenCreate) SaveX(ctx context.Context) *EnrollToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrollTokenCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrollTokenCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnrollTokenCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := enrolltoken.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnrollTokenCreate) check() error {
	if _, ok := _c.mutation.TokenHash(); !ok {
		return &ValidationError{Name: "token_hash", err: errors.New(`ent: missing required field "EnrollToken.token_hash"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "EnrollToken.created_by"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "EnrollToken.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EnrollToken.created_at"`)}
	}
	return nil
}

func (_c *EnrollTokenCreate) sqlSave(ctx context.Context) (*EnrollToken, error) {
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

func (_c *EnrollTokenCreate) createSpec() (*EnrollToken, *sqlgraph.CreateSpec) {
	var (
		_node = &EnrollToken{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(enrolltoken.Table, sqlgraph.NewFieldSpec(enrolltoken.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TokenHash(); ok {
		_spec.SetField(enrolltoken.FieldTokenHash, field.TypeString, value)
		_node.TokenHash = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(enrolltoken.FieldCreatedBy, field.TypeInt, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(enrolltoken.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.UsedAt(); ok {
		_spec.SetField(enrolltoken.FieldUsedAt, field.TypeTime, value)
		_node.UsedAt = &value
	}
	if value, ok := _c.mutation.RunnerID(); ok {
		_spec.SetField(enrolltoken.FieldRunnerID, field.TypeInt, value)
		_node.RunnerID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(enrolltoken.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EnrollTokenCreateBulk is the builder for creating many EnrollToken entities in bulk.
type EnrollTokenCreateBulk struct {
	config
	err      error
	builders []*EnrollTokenCreate
}

// Save creates the EnrollToken entities in the database.
func (_c *EnrollTokenCreateBulk) Save(ctx context.Context) ([]*EnrollToken, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EnrollToken, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnrollTokenMutation)
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
func (_c *EnrollTokenCreateBulk) SaveX(ctx context.Context) []*EnrollToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrollTokenCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrollTokenCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
