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
	"github.com/oikos-sh/brigade/ent/courseevent"
	"github.com/oikos-sh/brigade/ent/fiche"
	"github.com/oikos-sh/brigade/ent/user"
)

// CourseCreate is the builder for creating a Course entity.
type CourseCreate struct {
	config
	mutation *CourseMutation
	hooks    []Hook
}

// SetFicheID sets the "fiche_id" field.
func (_c *CourseCreate) SetFicheID(v int) *CourseCreate {
	_c.mutation.SetFicheID(v)
	return _c
}

// SetThreadID sets the "thread_id" field.
func (_c *CourseCreate) SetThreadID(v int) *CourseCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *CourseCreate) SetOwnerID(v int) *CourseCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CourseCreate) SetStatus(v course.Status) *CourseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CourseCreate) SetNillableStatus(v *course.Status) *CourseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *CourseCreate) SetTrigger(v course.Trigger) *CourseCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_c *CourseCreate) SetNillableTrigger(v *course.Trigger) *CourseCreate {
	if v != nil {
		_c.SetTrigger(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *CourseCreate) SetCorrelationID(v string) *CourseCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetContinuationOfCourseID sets the "continuation_of_course_id" field.
func (_c *CourseCreate) SetContinuationOfCourseID(v int) *CourseCreate {
	_c.mutation.SetContinuationOfCourseID(v)
	return _c
}

// SetNillableContinuationOfCourseID sets the "continuation_of_course_id" field if the given value is not nil.
func (_c *CourseCreate) SetNillableContinuationOfCourseID(v *int) *CourseCreate {
	if v != nil {
		_c.SetContinuationOfCourseID(*v)
	}
	return _c
}

// SetAssistantMessageID sets the "assistant_message_id" field.
func (_c *CourseCreate) SetAssistantMessageID(v int) *CourseCreate {
	_c.mutation.SetAssistantMessageID(v)
	return _c
}

// SetNillableAssistantMessageID sets the "assistant_message_id" field if the given value is not nil.
func (_c *CourseCreate) SetNillableAssistantMessageID(v *int) *CourseCreate {
	if v != nil {
		_c.SetAssistantMessageID(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *CourseCreate) SetSummary(v string) *CourseCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *CourseCreate) SetNillableSummary(v *string) *CourseCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *CourseCreate) SetError(v string) *CourseCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *CourseCreate) SetNillableError(v *string) *CourseCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CourseCreate) SetCreatedAt(v time.Time) *CourseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CourseCreate) SetNillableCreatedAt(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CourseCreate) SetStartedAt(v time.Time) *CourseCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CourseCreate) SetNillableStartedAt(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *CourseCreate) SetFinishedAt(v time.Time) *CourseCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *CourseCreate) SetNillableFinishedAt(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetFiche sets the "fiche" edge to the Fiche entity.
func (_c *CourseCreate) SetFiche(v *Fiche) *CourseCreate {
	return _c.SetFicheID(v.ID)
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *CourseCreate) SetOwner(v *User) *CourseCreate {
	return _c.SetOwnerID(v.ID)
}

// AddCommisJobIDs adds the "commis_jobs" edge to the CommisJob entity by IDs.
func (_c *CourseCreate) AddCommisJobIDs(ids ...int) *CourseCreate {
	_c.mutation.AddCommisJobIDs(ids...)
	return _c
}

// AddCommisJobs adds the "commis_jobs" edges to the CommisJob entity.
func (_c *CourseCreate) AddCommisJobs(v ...*CommisJob) *CourseCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCommisJobIDs(ids...)
}

// AddEventIDs adds the "events" edge to the CourseEvent entity by IDs.
func (_c *CourseCreate) AddEventIDs(ids ...int) *CourseCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the CourseEvent entity.
func (_c *CourseCreate) AddEvents(v ...*CourseEvent) *CourseCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_c *CourseCreate) Mutation() *CourseMutation {
	return _c.mutation
}

// Save creates the Course in the database.
func (_c *CourseCreate) Save(ctx context.Context) (*Course, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseCreate) SaveX(ctx context.Context) *Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := course.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		v := course.DefaultTrigger
		_c.mutation.SetTrigger(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := course.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseCreate) check() error {
	if _, ok := _c.mutation.FicheID(); !ok {
		return &ValidationError{Name: "fiche_id", err: errors.New(`ent: missing required field "Course.fiche_id"`)}
	}
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "Course.thread_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Course.owner_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Course.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := course.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Course.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "Course.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := course.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "Course.trigger": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "Course.correlation_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Course.created_at"`)}
	}
	if len(_c.mutation.FicheIDs()) == 0 {
		return &ValidationError{Name: "fiche", err: errors.New(`ent: missing required edge "Course.fiche"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Course.owner"`)}
	}
	return nil
}

func (_c *CourseCreate) sqlSave(ctx context.Context) (*Course, error) {
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

func (_c *CourseCreate) createSpec() (*Course, *sqlgraph.CreateSpec) {
	var (
		_node = &Course{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(course.Table, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(course.FieldThreadID, field.TypeInt, value)
		_node.ThreadID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(course.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(course.FieldTrigger, field.TypeEnum, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(course.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.ContinuationOfCourseID(); ok {
		_spec.SetField(course.FieldContinuationOfCourseID, field.TypeInt, value)
		_node.ContinuationOfCourseID = &value
	}
	if value, ok := _c.mutation.AssistantMessageID(); ok {
		_spec.SetField(course.FieldAssistantMessageID, field.TypeInt, value)
		_node.AssistantMessageID = &value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(course.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(course.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(course.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(course.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(course.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.FicheIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   course.FicheTable,
			Columns: []string{course.FicheColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fiche.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FicheID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   course.OwnerTable,
			Columns: []string{course.OwnerColumn},
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
	if nodes := _c.mutation.CommisJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.CommisJobsTable,
			Columns: []string{course.CommisJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commisjob.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EventsTable,
			Columns: []string{course.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CourseCreateBulk is the builder for creating many Course entities in bulk.
type CourseCreateBulk struct {
	config
	err      error
	builders []*CourseCreate
}

// Save creates the Course entities in the database.
func (_c *CourseCreateBulk) Save(ctx context.Context) ([]*Course, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Course, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseMutation)
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
func (_c *CourseCreateBulk) SaveX(ctx context.Context) []*Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
