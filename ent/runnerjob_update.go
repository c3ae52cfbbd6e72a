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
	"github.com/oikos-sh/brigade/ent/predicate"
	"github.com/oikos-sh/brigade/ent/runner"
	"github.com/oikos-sh/brigade/ent/runnerjob"
)

// RunnerJobUpdate is the builder for updating RunnerJob entities.
type RunnerJobUpdate struct {
	config
	hooks    []Hook
	mutation *RunnerJobMutation
}

// Where appends a list predicates to the RunnerJobUpdate builder.
func (_u *RunnerJobUpdate) Where(ps ...predicate.RunnerJob) *RunnerJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunnerID sets the "runner_id" field.
func (_u *RunnerJobUpdate) SetRunnerID(v int) *RunnerJobUpdate {
	_u.mutation.SetRunnerID(v)
	return _u
}

// SetNillableRunnerID sets the "runner_id" field if the given value is not nil.
func (_u *RunnerJobUpdate) SetNillableRunnerID(v *int) *RunnerJobUpdate {
	if v != nil {
		_u.SetRunnerID(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *RunnerJobUpdate) SetCommand(v string) *RunnerJobUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *RunnerJobUpdate) SetNillableCommand(v *string) *RunnerJobUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunnerJobUpdate) SetStatus(v runnerjob.Status) *RunnerJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunnerJobUpdate) SetNillableStatus(v *runnerjob.Status) *RunnerJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *RunnerJobUpdate) SetOutput(v string) *RunnerJobUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *RunnerJobUpdate) SetNillableOutput(v *string) *RunnerJobUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *RunnerJobUpdate) ClearOutput() *RunnerJobUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *RunnerJobUpdate) SetError(v string) *RunnerJobUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *RunnerJobUpdate) SetNillableError(v *string) *RunnerJobUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *RunnerJobUpdate) ClearError() *RunnerJobUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunnerJobUpdate) SetStartedAt(v time.Time) *RunnerJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunnerJobUpdate) SetNillableStartedAt(v *time.Time) *RunnerJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunnerJobUpdate) ClearStartedAt() *RunnerJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RunnerJobUpdate) SetFinishedAt(v time.Time) *RunnerJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RunnerJobUpdate) SetNillableFinishedAt(v *time.Time) *RunnerJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RunnerJobUpdate) ClearFinishedAt() *RunnerJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetRunner sets the "runner" edge to the Runner entity.
func (_u *RunnerJobUpdate) SetRunner(v *Runner) *RunnerJobUpdate {
	return _u.SetRunnerID(v.ID)
}

// Mutation returns the RunnerJobMutation object of the builder.
func (_u *RunnerJobUpdate) Mutation() *RunnerJobMutation {
	return _u.mutation
}

// ClearRunner clears the "runner" edge to the Runner entity.
func (_u *RunnerJobUpdate) ClearRunner() *RunnerJobUpdate {
	_u.mutation.ClearRunner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunnerJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunnerJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunnerJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunnerJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunnerJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := runnerjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunnerJob.status": %w`, err)}
		}
	}
	if _u.mutation.RunnerCleared() && len(_u.mutation.RunnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunnerJob.runner"`)
	}
	return nil
}

func (_u *RunnerJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runnerjob.Table, runnerjob.Columns, sqlgraph.NewFieldSpec(runnerjob.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(runnerjob.FieldCommand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runnerjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(runnerjob.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(runnerjob.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(runnerjob.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(runnerjob.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(runnerjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(runnerjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(runnerjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(runnerjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.RunnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runnerjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunnerJobUpdateOne is the builder for updating a single RunnerJob entity.
type RunnerJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunnerJobMutation
}

// SetRunnerID sets the "runner_id" field.
func (_u *RunnerJobUpdateOne) SetRunnerID(v int) *RunnerJobUpdateOne {
	_u.mutation.SetRunnerID(v)
	return _u
}

// SetNillableRunnerID sets the "runner_id" field if the given value is not nil.
func (_u *RunnerJobUpdateOne) SetNillableRunnerID(v *int) *RunnerJobUpdateOne {
	if v != nil {
		_u.SetRunnerID(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *RunnerJobUpdateOne) SetCommand(v string) *RunnerJobUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *RunnerJobUpdateOne) SetNillableCommand(v *string) *RunnerJobUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunnerJobUpdateOne) SetStatus(v runnerjob.Status) *RunnerJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunnerJobUpdateOne) SetNillableStatus(v *runnerjob.Status) *RunnerJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *RunnerJobUpdateOne) SetOutput(v string) *RunnerJobUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *RunnerJobUpdateOne) SetNillableOutput(v *string) *RunnerJobUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *RunnerJobUpdateOne) ClearOutput() *RunnerJobUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *RunnerJobUpdateOne) SetError(v string) *RunnerJobUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *RunnerJobUpdateOne) SetNillableError(v *string) *RunnerJobUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *RunnerJobUpdateOne) ClearError() *RunnerJobUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunnerJobUpdateOne) SetStartedAt(v time.Time) *RunnerJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunnerJobUpdateOne) SetNillableStartedAt(v *time.Time) *RunnerJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunnerJobUpdateOne) ClearStartedAt() *RunnerJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RunnerJobUpdateOne) SetFinishedAt(v time.Time) *RunnerJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RunnerJobUpdateOne) SetNillableFinishedAt(v *time.Time) *RunnerJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RunnerJobUpdateOne) ClearFinishedAt() *RunnerJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetRunner sets the "runner" edge to the Runner entity.
func (_u *RunnerJobUpdateOne) SetRunner(v *Runner) *RunnerJobUpdateOne {
	return _u.SetRunnerID(v.ID)
}

// Mutation returns the RunnerJobMutation object of the builder.
func (_u *RunnerJobUpdateOne) Mutation() *RunnerJobMutation {
	return _u.mutation
}

// ClearRunner clears the "runner" edge to the Runner entity.
func (_u *RunnerJobUpdateOne) ClearRunner() *RunnerJobUpdateOne {
	_u.mutation.ClearRunner()
	return _u
}

// Where appends a list predicates to the RunnerJobUpdate builder.
func (_u *RunnerJobUpdateOne) Where(ps ...predicate.RunnerJob) *RunnerJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunnerJobUpdateOne) Select(field string, fields ...string) *RunnerJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunnerJob entity.
func (_u *RunnerJobUpdateOne) Save(ctx context.Context) (*RunnerJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunnerJobUpdateOne) SaveX(ctx context.Context) *RunnerJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunnerJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunnerJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunnerJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := runnerjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunnerJob.status": %w`, err)}
		}
	}
	if _u.mutation.RunnerCleared() && len(_u.mutation.RunnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunnerJob.runner"`)
	}
	return nil
}

func (_u *RunnerJobUpdateOne) sqlSave(ctx context.Context) (_node *RunnerJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runnerjob.Table, runnerjob.Columns, sqlgraph.NewFieldSpec(runnerjob.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunnerJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runnerjob.FieldID)
		for _, f := range fields {
			if !runnerjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runnerjob.FieldID {
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
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(runnerjob.FieldCommand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runnerjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(runnerjob.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(runnerjob.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(runnerjob.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(runnerjob.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(runnerjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(runnerjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(runnerjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(runnerjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.RunnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RunnerJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runnerjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
