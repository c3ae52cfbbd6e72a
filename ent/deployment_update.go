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
	"github.com/oikos-sh/brigade/ent/deployment"
	"github.com/oikos-sh/brigade/ent/instance"
	"github.com/oikos-sh/brigade/ent/predicate"
)

// DeploymentUpdate is the builder for updating Deployment entities.
type DeploymentUpdate struct {
	config
	hooks    []Hook
	mutation *DeploymentMutation
}

// Where appends a list predicates to the DeploymentUpdate builder.
func (_u *DeploymentUpdate) Where(ps ...predicate.Deployment) *DeploymentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetImage sets the "image" field.
func (_u *DeploymentUpdate) SetImage(v string) *DeploymentUpdate {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableImage(v *string) *DeploymentUpdate {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeploymentUpdate) SetStatus(v deployment.Status) *DeploymentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableStatus(v *deployment.Status) *DeploymentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMaxParallel sets the "max_parallel" field.
func (_u *DeploymentUpdate) SetMaxParallel(v int) *DeploymentUpdate {
	_u.mutation.ResetMaxParallel()
	_u.mutation.SetMaxParallel(v)
	return _u
}

// SetNillableMaxParallel sets the "max_parallel" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableMaxParallel(v *int) *DeploymentUpdate {
	if v != nil {
		_u.SetMaxParallel(*v)
	}
	return _u
}

// AddMaxParallel adds value to the "max_parallel" field.
func (_u *DeploymentUpdate) AddMaxParallel(v int) *DeploymentUpdate {
	_u.mutation.AddMaxParallel(v)
	return _u
}

// SetFailureThreshold sets the "failure_threshold" field.
func (_u *DeploymentUpdate) SetFailureThreshold(v int) *DeploymentUpdate {
	_u.mutation.ResetFailureThreshold()
	_u.mutation.SetFailureThreshold(v)
	return _u
}

// SetNillableFailureThreshold sets the "failure_threshold" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableFailureThreshold(v *int) *DeploymentUpdate {
	if v != nil {
		_u.SetFailureThreshold(*v)
	}
	return _u
}

// AddFailureThreshold adds value to the "failure_threshold" field.
func (_u *DeploymentUpdate) AddFailureThreshold(v int) *DeploymentUpdate {
	_u.mutation.AddFailureThreshold(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *DeploymentUpdate) SetFailureCount(v int) *DeploymentUpdate {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableFailureCount(v *int) *DeploymentUpdate {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *DeploymentUpdate) AddFailureCount(v int) *DeploymentUpdate {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetError sets the "error" field.
func (_u *DeploymentUpdate) SetError(v string) *DeploymentUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableError(v *string) *DeploymentUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *DeploymentUpdate) ClearError() *DeploymentUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *DeploymentUpdate) SetFinishedAt(v time.Time) *DeploymentUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableFinishedAt(v *time.Time) *DeploymentUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *DeploymentUpdate) ClearFinishedAt() *DeploymentUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddInstanceIDs adds the "instances" edge to the Instance entity by IDs.
func (_u *DeploymentUpdate) AddInstanceIDs(ids ...int) *DeploymentUpdate {
	_u.mutation.AddInstanceIDs(ids...)
	return _u
}

// AddInstances adds the "instances" edges to the Instance entity.
func (_u *DeploymentUpdate) AddInstances(v ...*Instance) *DeploymentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstanceIDs(ids...)
}

// Mutation returns the DeploymentMutation object of the builder.
func (_u *DeploymentUpdate) Mutation() *DeploymentMutation {
	return _u.mutation
}

// ClearInstances clears all "instances" edges to the Instance entity.
func (_u *DeploymentUpdate) ClearInstances() *DeploymentUpdate {
	_u.mutation.ClearInstances()
	return _u
}

// RemoveInstanceIDs removes the "instances" edge to Instance entities by IDs.
func (_u *DeploymentUpdate) RemoveInstanceIDs(ids ...int) *DeploymentUpdate {
	_u.mutation.RemoveInstanceIDs(ids...)
	return _u
}

// RemoveInstances removes "instances" edges to Instance entities.
func (_u *DeploymentUpdate) RemoveInstances(v ...*Instance) *DeploymentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstanceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeploymentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeploymentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeploymentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeploymentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeploymentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deployment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deployment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeploymentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deployment.Table, deployment.Columns, sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(deployment.FieldImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deployment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxParallel(); ok {
		_spec.SetField(deployment.FieldMaxParallel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxParallel(); ok {
		_spec.AddField(deployment.FieldMaxParallel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureThreshold(); ok {
		_spec.SetField(deployment.FieldFailureThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureThreshold(); ok {
		_spec.AddField(deployment.FieldFailureThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(deployment.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(deployment.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(deployment.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(deployment.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(deployment.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(deployment.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.InstancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deployment.InstancesTable,
			Columns: []string{deployment.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instance.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstancesIDs(); len(nodes) > 0 && !_u.mutation.InstancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deployment.InstancesTable,
			Columns: []string{deployment.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instance.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deployment.InstancesTable,
			Columns: []string{deployment.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instance.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deployment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeploymentUpdateOne is the builder for updating a single Deployment entity.
type DeploymentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeploymentMutation
}

// SetImage sets the "image" field.
func (_u *DeploymentUpdateOne) SetImage(v string) *DeploymentUpdateOne {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableImage(v *string) *DeploymentUpdateOne {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeploymentUpdateOne) SetStatus(v deployment.Status) *DeploymentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableStatus(v *deployment.Status) *DeploymentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMaxParallel sets the "max_parallel" field.
func (_u *DeploymentUpdateOne) SetMaxParallel(v int) *DeploymentUpdateOne {
	_u.mutation.ResetMaxParallel()
	_u.mutation.SetMaxParallel(v)
	return _u
}

// SetNillableMaxParallel sets the "max_parallel" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableMaxParallel(v *int) *DeploymentUpdateOne {
	if v != nil {
		_u.SetMaxParallel(*v)
	}
	return _u
}

// AddMaxParallel adds value to the "max_parallel" field.
func (_u *DeploymentUpdateOne) AddMaxParallel(v int) *DeploymentUpdateOne {
	_u.mutation.AddMaxParallel(v)
	return _u
}

// SetFailureThreshold sets the "failure_threshold" field.
func (_u *DeploymentUpdateOne) SetFailureThreshold(v int) *DeploymentUpdateOne {
	_u.mutation.ResetFailureThreshold()
	_u.mutation.SetFailureThreshold(v)
	return _u
}

// SetNillableFailureThreshold sets the "failure_threshold" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableFailureThreshold(v *int) *DeploymentUpdateOne {
	if v != nil {
		_u.SetFailureThreshold(*v)
	}
	return _u
}

// AddFailureThreshold adds value to the "failure_threshold" field.
func (_u *DeploymentUpdateOne) AddFailureThreshold(v int) *DeploymentUpdateOne {
	_u.mutation.AddFailureThreshold(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *DeploymentUpdateOne) SetFailureCount(v int) *DeploymentUpdateOne {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableFailureCount(v *int) *DeploymentUpdateOne {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *DeploymentUpdateOne) AddFailureCount(v int) *DeploymentUpdateOne {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetError sets the "error" field.
func (_u *DeploymentUpdateOne) SetError(v string) *DeploymentUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableError(v *string) *DeploymentUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *DeploymentUpdateOne) ClearError() *DeploymentUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *DeploymentUpdateOne) SetFinishedAt(v time.Time) *DeploymentUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableFinishedAt(v *time.Time) *DeploymentUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *DeploymentUpdateOne) ClearFinishedAt() *DeploymentUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddInstanceIDs adds the "instances" edge to the Instance entity by IDs.
func (_u *DeploymentUpdateOne) AddInstanceIDs(ids ...int) *DeploymentUpdateOne {
	_u.mutation.AddInstanceIDs(ids...)
	return _u
}

// AddInstances adds the "instances" edges to the Instance entity.
func (_u *DeploymentUpdateOne) AddInstances(v ...*Instance) *DeploymentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstanceIDs(ids...)
}

// Mutation returns the DeploymentMutation object of the builder.
func (_u *DeploymentUpdateOne) Mutation() *DeploymentMutation {
	return _u.mutation
}

// ClearInstances clears all "instances" edges to the Instance entity.
func (_u *DeploymentUpdateOne) ClearInstances() *DeploymentUpdateOne {
	_u.mutation.ClearInstances()
	return _u
}

// RemoveInstanceIDs removes the "instances" edge to Instance entities by IDs.
func (_u *DeploymentUpdateOne) RemoveInstanceIDs(ids ...int) *DeploymentUpdateOne {
	_u.mutation.RemoveInstanceIDs(ids...)
	return _u
}

// RemoveInstances removes "instances" edges to Instance entities.
func (_u *DeploymentUpdateOne) RemoveInstances(v ...*Instance) *DeploymentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstanceIDs(ids...)
}

// Where appends a list predicates to the DeploymentUpdate builder.
func (_u *DeploymentUpdateOne) Where(ps ...predicate.Deployment) *DeploymentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeploymentUpdateOne) Select(field string, fields ...string) *DeploymentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Deployment entity.
func (_u *DeploymentUpdateOne) Save(ctx context.Context) (*Deployment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeploymentUpdateOne) SaveX(ctx context.Context) *Deployment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeploymentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeploymentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeploymentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deployment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deployment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeploymentUpdateOne) sqlSave(ctx context.Context) (_node *Deployment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deployment.Table, deployment.Columns, sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Deployment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deployment.FieldID)
		for _, f := range fields {
			if !deployment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deployment.FieldID {
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
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(deployment.FieldImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deployment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxParallel(); ok {
		_spec.SetField(deployment.FieldMaxParallel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxParallel(); ok {
		_spec.AddField(deployment.FieldMaxParallel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureThreshold(); ok {
		_spec.SetField(deployment.FieldFailureThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureThreshold(); ok {
		_spec.AddField(deployment.FieldFailureThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(deployment.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(deployment.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(deployment.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(deployment.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(deployment.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(deployment.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.InstancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deployment.InstancesTable,
			Columns: []string{deployment.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instance.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstancesIDs(); len(nodes) > 0 && !_u.mutation.InstancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deployment.InstancesTable,
			Columns: []string{deployment.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instance.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deployment.InstancesTable,
			Columns: []string{deployment.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instance.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Deployment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deployment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
