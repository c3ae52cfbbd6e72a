// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/ent/user"
)

// CommisJobCreate is the builder for creating a CommisJob entity.
type CommisJobCreate struct {
	config
	mutation *CommisJobMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *CommisJobCreate) SetOwnerID(v int) *CommisJobCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetTask sets the "task" field.
func (_c *CommisJobCreate) SetTask(v string) *CommisJobCreate {
	_c.mutation.SetTask(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *CommisJobCreate) SetModel(v string) *CommisJobCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CommisJobCreate) SetStatus(v commisjob.Status) *CommisJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CommisJobCreate) SetNillableStatus(v *commisjob.Status) *CommisJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConciergeCourseID sets the "concierge_course_id" field.
func (_c *CommisJobCreate) SetConciergeCourseID(v int) *CommisJobCreate {
	_c.mutation.SetConciergeCourseID(v)
	return _c
}

// SetNillableConciergeCourseID sets the "concierge_course_id" field if the given value is not nil.
func (_c *CommisJobCreate) SetNillableConciergeCourseID(v *int) *CommisJobCreate {
	if v != nil {
		_c.SetConciergeCourseID(*v)
	}
	return _c
}

// SetToolCallID sets the "tool_call_id" field.
func (_c *CommisJobCreate) SetToolCallID(v string) *CommisJobCreate {
	_c.mutation.SetToolCallID(v)
	return _c
}

// SetNillableToolCallID sets the "tool_call_id" field if the given value is not nil.
func (_c *CommisJobCreate) SetNillableToolCallID(v *string) *CommisJobCreate {
	if v != nil {
		_c.SetToolCallID(*v)
	}
	return _c
}

// SetCommisID sets the "commis_id" field.
func (_c *CommisJobCreate) SetCommisID(v string) *CommisJobCreate {
	_c.mutation.SetCommisID(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *CommisJobCreate) SetConfig(v map[string]interface{}) *CommisJobCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetError sets the "error" field.
func (_c *CommisJobCreate) SetError(v string) *CommisJobCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *CommisJobCreate) SetNillableError(v *string) *CommisJobCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommisJobCreate) SetCreatedAt(v time.Time) *CommisJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommisJobCreate) SetNillableCreatedAt(v *time.Time) *CommisJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CommisJobCreate) SetStartedAt(v time.Time) *CommisJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CommisJobCreate) SetNillableStartedAt(v *time.Time) *CommisJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *CommisJobCreate) SetFinishedAt(v time.Time) *CommisJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *CommisJobCreate) SetNillableFinishedAt(v *time.Time) *CommisJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *CommisJobCreate) SetLastHeartbeatAt(v time.Time) *CommisJobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *CommisJobCreate) SetNillableLastHeartbeatAt(v *time.Time) *CommisJobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *CommisJobCreate) SetOwner(v *User) *CommisJobCreate {
	return _c.SetOwnerID(v.ID)
}

// SetConciergeCourse sets the "concierge_course" edge to the Course entity.
func (_c *CommisJobCreate) SetConciergeCourse(v *Course) *CommisJobCreate {
	return _c.SetConciergeCourseID(v.ID)
}

// Mutation returns the CommisJobMutation object of the builder.
func (_c *CommisJobCreate) Mutation() *CommisJobMutation {
	return _c.mutation
}

// Save creates the CommisJob in the database.
func (_c *CommisJobCreate) Save(ctx context.Context) (*CommisJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommisJobCreate) SaveX(ctx context.Context) *CommisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommisJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommisJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommisJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := commisjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := commisjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommisJobCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "CommisJob.owner_id"`)}
	}
	if _, ok := _c.mutation.Task(); !ok {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required field "CommisJob.task"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "CommisJob.model"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CommisJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := commisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CommisJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CommisID(); !ok {
		return &ValidationError{Name: "commis_id", err: errors.New(`ent: missing required field "CommisJob.commis_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CommisJob.created_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "CommisJob.owner"`)}
	}
	return nil
}

func (_c *CommisJobCreate) sqlSave(ctx context.Context) (*CommisJob, error) {
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

func (_c *CommisJobCreate) createSpec() (*CommisJob, *sqlgraph.CreateSpec) {
	var (
		_node = &CommisJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commisjob.Table, sqlgraph.NewFieldSpec(commisjob.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Task(); ok {
		_spec.SetField(commisjob.FieldTask, field.TypeString, value)
		_node.Task = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(commisjob.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(commisjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ToolCallID(); ok {
		_spec.SetField(commisjob.FieldToolCallID, field.TypeString, value)
		_node.ToolCallID = &value
	}
	if value, ok := _c.mutation.CommisID(); ok {
		_spec.SetField(commisjob.FieldCommisID, field.TypeString, value)
		_node.CommisID = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(commisjob.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(commisjob.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(commisjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(commisjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(commisjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(commisjob.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commisjob.OwnerTable,
			Columns: []string{commisjob.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OwnerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConciergeCourseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commisjob.ConciergeCourseTable,
			Columns: []string{commisjob.ConciergeCourseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConciergeCourseID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CommisJobCreateBulk is the builder for creating many CommisJob entities in bulk.
type CommisJobCreateBulk struct {
	config
	err      error
	builders []*CommisJobCreate
}

// Save creates the CommisJob entities in the database.
func (_c *CommisJobCreateBulk) Save(ctx context.Context) ([]*CommisJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommisJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommisJobMutation)
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
func (_c *CommisJobCreateBulk) SaveX(ctx context.Context) []*CommisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommisJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommisJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
