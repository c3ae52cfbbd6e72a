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

// RunnerJobCreate is the builder for creating a RunnerJob entity.
type RunnerJobCreate struct {
	config
	mutation *RunnerJobMutation
	hooks    []Hook
}

// SetRunnerID sets the "runner_id" field.
func (_c *RunnerJobCreate) SetRunnerID(v int) *RunnerJobCreate {
	_c.mutation.SetRunnerID(v)
	return _c
}

// SetCommand sets the "command" field.
func (_c *RunnerJobCreate) SetCommand(v string) *RunnerJobCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunnerJobCreate) SetStatus(v runnerjob.Status) *RunnerJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunnerJobCreate) SetNillableStatus(v *runnerjob.Status) *RunnerJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *RunnerJobCreate) SetOutput(v string) *RunnerJobCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *RunnerJobCreate) SetNillableOutput(v *string) *RunnerJobCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *RunnerJobCreate) SetError(v string) *RunnerJobCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *RunnerJobCreate) SetNillableError(v *string) *RunnerJobCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunnerJobCreate) SetCreatedAt(v time.Time) *RunnerJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunnerJobCreate) SetNillableCreatedAt(v *time.Time) *RunnerJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunnerJobCreate) SetStartedAt(v time.Time) *RunnerJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunnerJobCreate) SetNillableStartedAt(v *time.Time) *RunnerJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *RunnerJobCreate) SetFinishedAt(v time.Time) *RunnerJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *RunnerJobCreate) SetNillableFinishedAt(v *time.Time) *RunnerJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetRunner sets the "runner" edge to the Runner entity.
func (_c *RunnerJobCreate) SetRunner(v *Runner) *RunnerJobCreate {
	return _c.SetRunnerID(v.ID)
}

// Mutation returns the RunnerJobMutation object of the builder.
func (_c *RunnerJobCreate) Mutation() *RunnerJobMutation {
	return _c.mutation
}

// Save creates the RunnerJob in the database.
func (_c *RunnerJobCreate) Save(ctx context.Context) (*RunnerJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunnerJobCreate) SaveX(ctx context.Context) *RunnerJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunnerJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunnerJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunnerJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := runnerjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runnerjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunnerJobCreate) check() error {
	if _, ok := _c.mutation.RunnerID(); !ok {
		return &ValidationError{Name: "runner_id", err: errors.New(`ent: missing required field "RunnerJob.runner_id"`)}
	}
	if _, ok := _c.mutation.Command(); !ok {
		return &ValidationError{Name: "command", err: errors.New(`ent: missing required field "RunnerJob.command"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RunnerJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := runnerjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunnerJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunnerJob.created_at"`)}
	}
	if len(_c.mutation.RunnerIDs()) == 0 {
		return &ValidationError{Name: "runner", err: errors.New(`ent: missing required edge "RunnerJob.runner"`)}
	}
	return nil
}

func (_c *RunnerJobCreate) sqlSave(ctx context.Context) (*RunnerJob, error) {
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

func (_c *RunnerJobCreate) createSpec() (*RunnerJob, *sqlgraph.CreateSpec) {
	var (
		_node = &RunnerJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runnerjob.Table, sqlgraph.NewFieldSpec(runnerjob.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(runnerjob.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(runnerjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(runnerjob.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(runnerjob.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runnerjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(runnerjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(runnerjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.RunnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runnerjob.RunnerTable,
			Columns: []string{runnerjob.RunnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runner.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunnerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunnerJobCreateBulk is the builder for creating many RunnerJob entities in bulk.
type RunnerJobCreateBulk struct {
	config
	err      error
	builders []*RunnerJobCreate
}

// Save creates the RunnerJob entities in the database.
func (_c *RunnerJobCreateBulk) Save(ctx context.Context) ([]*RunnerJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunnerJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunnerJobMutation)
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
func (_c *RunnerJobCreateBulk) SaveX(ctx context.Context) []*RunnerJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunnerJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunnerJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
