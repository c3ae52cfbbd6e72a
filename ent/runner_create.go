// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oikos-sh/brigade/ent/runner"
	"github.com/oikos-sh/brigade/ent/runnerjob"
)

// RunnerCreate is the builder for creating a Runner entity.
type RunnerCreate struct {
	config
	mutation *RunnerMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *RunnerCreate) SetName(v string) *RunnerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunnerCreate) SetStatus(v runner.Status) *RunnerCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunnerCreate) SetNillableStatus(v *runner.Status) *RunnerCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSecretHash sets the "secret_hash" field.
func (_c *RunnerCreate) SetSecretHash(v string) *RunnerCreate {
	_c.mutation.SetSecretHash(v)
	return _c
}

// SetLabels sets the "labels" field.
func (_c *RunnerCreate) SetLabels(v map[string]string) *RunnerCreate {
	_c.mutation.SetLabels(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *RunnerCreate) SetMetadata(v map[string]interface{}) *RunnerCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunnerCreate) SetCreatedAt(v time.Time) *RunnerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunnerCreate) SetNillableCreatedAt(v *time.Time) *RunnerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *RunnerCreate) SetLastSeenAt(v time.Time) *RunnerCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *RunnerCreate) SetNillableLastSeenAt(v *time.Time) *RunnerCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// AddJobIDs adds the "jobs" edge to the RunnerJob entity by IDs.
func (_c *RunnerCreate) AddJobIDs(ids ...int) *RunnerCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the RunnerJob entity.
func (_c *RunnerCreate) AddJobs(v ...*RunnerJob) *RunnerCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the RunnerMutation object of the builder.
func (_c *RunnerCreate) Mutation() *RunnerMutation {
	return _c.mutation
}

// Save creates the Runner in the database.
func (_c *RunnerCreate) Save(ctx context.Context) (*Runner, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunnerCreate) SaveX(ctx context.Context) *Runner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunnerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunnerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunnerCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := runner.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runner.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunnerCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Runner.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Runner.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := runner.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Runner.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SecretHash(); !ok {
		return &ValidationError{Name: "secret_hash", err: errors.New(`ent: missing required field "Runner.secret_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Runner.created_at"`)}
	}
	return nil
}

func (_c *RunnerCreate) sqlSave(ctx context.Context) (*Runner, error) {
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

func (_c *RunnerCreate) createSpec() (*Runner, *sqlgraph.CreateSpec) {
	var (
		_node = &Runner{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runner.Table, sqlgraph.NewFieldSpec(runner.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(runner.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(runner.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SecretHash(); ok {
		_spec.SetField(runner.FieldSecretHash, field.TypeString, value)
		_node.SecretHash = value
	}
	if value, ok := _c.mutation.Labels(); ok {
		_spec.SetField(runner.FieldLabels, field.TypeJSON, value)
		_node.Labels = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(runner.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runner.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(runner.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = &value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   runner.JobsTable,
			Columns: []string{runner.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runnerjob.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunnerCreateBulk is the builder for creating many Runner entities in bulk.
type RunnerCreateBulk struct {
	config
	err      error
	builders []*RunnerCreate
}

// Save creates the Runner entities in the database.
func (_c *RunnerCreateBulk) Save(ctx context.Context) ([]*Runner, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Runner, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunnerMutation)
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
func (_c *RunnerCreateBulk) SaveX(ctx context.Context) []*Runner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunnerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunnerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
