// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/ent/fiche"
	"github.com/oikos-sh/brigade/ent/thread"
	"github.com/oikos-sh/brigade/ent/user"
)

// FicheCreate is the builder for creating a Fiche entity.
type FicheCreate struct {
	config
	mutation *FicheMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *FicheCreate) SetOwnerID(v int) *FicheCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *FicheCreate) SetName(v string) *FicheCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSystemInstructions sets the "system_instructions" field.
func (_c *FicheCreate) SetSystemInstructions(v string) *FicheCreate {
	_c.mutation.SetSystemInstructions(v)
	return _c
}

// SetTaskInstructions sets the "task_instructions" field.
func (_c *FicheCreate) SetTaskInstructions(v string) *FicheCreate {
	_c.mutation.SetTaskInstructions(v)
	return _c
}

// SetNillableTaskInstructions sets the "task_instructions" field if the given value is not nil.
func (_c *FicheCreate) SetNillableTaskInstructions(v *string) *FicheCreate {
	if v != nil {
		_c.SetTaskInstructions(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *FicheCreate) SetModel(v string) *FicheCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetAllowedTools sets the "allowed_tools" field.
func (_c *FicheCreate) SetAllowedTools(v []string) *FicheCreate {
	_c.mutation.SetAllowedTools(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FicheCreate) SetStatus(v fiche.Status) *FicheCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FicheCreate) SetNillableStatus(v *fiche.Status) *FicheCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *FicheCreate) SetLastError(v string) *FicheCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *FicheCreate) SetNillableLastError(v *string) *FicheCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *FicheCreate) SetLastRunAt(v time.Time) *FicheCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *FicheCreate) SetNillableLastRunAt(v *time.Time) *FicheCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *FicheCreate) SetNextRunAt(v time.Time) *FicheCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_c *FicheCreate) SetNillableNextRunAt(v *time.Time) *FicheCreate {
	if v != nil {
		_c.SetNextRunAt(*v)
	}
	return _c
}

// SetIsConcierge sets the "is_concierge" field.
func (_c *FicheCreate) SetIsConcierge(v bool) *FicheCreate {
	_c.mutation.SetIsConcierge(v)
	return _c
}

// SetNillableIsConcierge sets the "is_concierge" field if the given value is not nil.
func (_c *FicheCreate) SetNillableIsConcierge(v *bool) *FicheCreate {
	if v != nil {
		_c.SetIsConcierge(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FicheCreate) SetCreatedAt(v time.Time) *FicheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FicheCreate) SetNillableCreatedAt(v *time.Time) *FicheCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FicheCreate) SetUpdatedAt(v time.Time) *FicheCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FicheCreate) SetNillableUpdatedAt(v *time.Time) *FicheCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *FicheCreate) SetOwner(v *User) *FicheCreate {
	return _c.SetOwnerID(v.ID)
}

// AddThreadIDs adds the "threads" edge to the Thread entity by IDs.
func (_c *FicheCreate) AddThreadIDs(ids ...int) *FicheCreate {
	_c.mutation.AddThreadIDs(ids...)
	return _c
}

// AddThreads adds the "threads" edges to the Thread entity.
func (_c *FicheCreate) AddThreads(v ...*Thread) *FicheCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddThreadIDs(ids...)
}

// AddCourseIDs adds the "courses" edge to the Course entity by IDs.
func (_c *FicheCreate) AddCourseIDs(ids ...int) *FicheCreate {
	_c.mutation.AddCourseIDs(ids...)
	return _c
}

// AddCourses adds the "courses" edges to the Course entity.
func (_c *FicheCreate) AddCourses(v ...*Course) *FicheCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCourseIDs(ids...)
}

// Mutation returns the FicheMutation object of the builder.
func (_c *FicheCreate) Mutation() *FicheMutation {
	return _c.mutation
}

// Save creates the Fiche in the database.
func (_c *FicheCreate) Save(ctx context.Context) (*Fiche, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FicheCreate) SaveX(ctx context.Context) *Fiche {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FicheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FicheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FicheCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := fiche.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsConcierge(); !ok {
		v := fiche.DefaultIsConcierge
		_c.mutation.SetIsConcierge(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fiche.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fiche.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FicheCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Fiche.owner_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Fiche.name"`)}
	}
	if _, ok := _c.mutation.SystemInstructions(); !ok {
		return &ValidationError{Name: "system_instructions", err: errors.New(`ent: missing required field "Fiche.system_instructions"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Fiche.model"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Fiche.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := fiche.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Fiche.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsConcierge(); !ok {
		return &ValidationError{Name: "is_concierge", err: errors.New(`ent: missing required field "Fiche.is_concierge"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Fiche.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Fiche.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Fiche.owner"`)}
	}
	return nil
}

func (_c *FicheCreate) sqlSave(ctx context.Context) (*Fiche, error) {
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

func (_c *FicheCreate) createSpec() (*Fiche, *sqlgraph.CreateSpec) {
	var (
		_node = &Fiche{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fiche.Table, sqlgraph.NewFieldSpec(fiche.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(fiche.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SystemInstructions(); ok {
		_spec.SetField(fiche.FieldSystemInstructions, field.TypeString, value)
		_node.SystemInstructions = value
	}
	if value, ok := _c.mutation.TaskInstructions(); ok {
		_spec.SetField(fiche.FieldTaskInstructions, field.TypeString, value)
		_node.TaskInstructions = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(fiche.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.AllowedTools(); ok {
		_spec.SetField(fiche.FieldAllowedTools, field.TypeJSON, value)
		_node.AllowedTools = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fiche.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(fiche.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(fiche.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(fiche.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = &value
	}
	if value, ok := _c.mutation.IsConcierge(); ok {
		_spec.SetField(fiche.FieldIsConcierge, field.TypeBool, value)
		_node.IsConcierge = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fiche.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fiche.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fiche.OwnerTable,
			Columns: []string{fiche.OwnerColumn},
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
	if nodes := _c.mutation.ThreadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fiche.ThreadsTable,
			Columns: []string{fiche.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CoursesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fiche.CoursesTable,
			Columns: []string{fiche.CoursesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FicheCreateBulk is the builder for creating many Fiche entities in bulk.
type FicheCreateBulk struct {
	config
	err      error
	builders []*FicheCreate
}

// Save creates the Fiche entities in the database.
func (_c *FicheCreateBulk) Save(ctx context.Context) ([]*Fiche, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Fiche, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FicheMutation)
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
func (_c *FicheCreateBulk) SaveX(ctx context.Context) []*Fiche {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FicheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FicheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
