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
	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/ent/predicate"
	"github.com/oikos-sh/brigade/ent/user"
)

// CommisJobUpdate is the builder for updating CommisJob entities.
type CommisJobUpdate struct {
	config
	hooks    []Hook
	mutation *CommisJobMutation
}

// Where appends a list predicates to the CommisJobUpdate builder.
func (_u *CommisJobUpdate) Where(ps ...predicate.CommisJob) *CommisJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *CommisJobUpdate) SetOwnerID(v int) *CommisJobUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *CommisJobUpdate) SetNillableOwnerID(v *int) *CommisJobUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetTask sets the "task" field.
func (_u *CommisJobUpdate) SetTask(v string) *CommisJobUpdate {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *CommisJobUpdate) SetNillableTask(v *string) *CommisJobUpdate {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *CommisJobUpdate) SetModel(v string) *CommisJobUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CommisJobUpdate) SetNillableModel(v *string) *CommisJobUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommisJobUpdate) SetStatus(v commisjob.Status) *CommisJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommisJobUpdate) SetNillableStatus(v *commisjob.Status) *CommisJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConciergeCourseID sets the "concierge_course_id" field.
func (_u *CommisJobUpdate) SetConciergeCourseID(v int) *CommisJobUpdate {
	_u.mutation.SetConciergeCourseID(v)
	return _u
}

// SetNillableConciergeCourseID sets the "concierge_course_id" field if the given value is not nil.
func (_u *CommisJobUpdate) SetNillableConciergeCourseID(v *int) *CommisJobUpdate {
	if v != nil {
		_u.SetConciergeCourseID(*v)
	}
	return _u
}

// ClearConciergeCourseID clears the value of the "concierge_course_id" field.
func (_u *CommisJobUpdate) ClearConciergeCourseID() *CommisJobUpdate {
	_u.mutation.ClearConciergeCourseID()
	return _u
}

// SetToolCallID sets the "tool_call_id" field.
func (_u *CommisJobUpdate) SetToolCallID(v string) *CommisJobUpdate {
	_u.mutation.SetToolCallID(v)
	return _u
}

// SetNillableToolCallID sets the "tool_call_id" field if the given value is not nil.
func (_u *CommisJobUpdate) SetNillableToolCallID(v *string) *CommisJobUpdate {
	if v != nil {
		_u.SetToolCallID(*v)
	}
	return _u
}

// ClearToolCallID clears the value of the "tool_call_id" field.
func (_u *CommisJobUpdate) ClearToolCallID() *CommisJobUpdate {
	_u.mutation.ClearToolCallID()
	return _u
}

// SetConfig sets the "config" field.
func (_u *CommisJobUpdate) SetConfig(v map[string]interface{}) *CommisJobUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *CommisJobUpdate) ClearConfig() *CommisJobUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetError sets the "error" field.
func (_u *CommisJobUpdate) SetError(v string) *CommisJobUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *CommisJobUpdate) SetNillableError(v *string) *CommisJobUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *CommisJobUpdate) ClearError() *CommisJobUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CommisJobUpdate) SetStartedAt(v time.Time) *CommisJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CommisJobUpdate) SetNillableStartedAt(v *time.Time) *CommisJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CommisJobUpdate) ClearStartedAt() *CommisJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *CommisJobUpdate) SetFinishedAt(v time.Time) *CommisJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *CommisJobUpdate) SetNillableFinishedAt(v *time.Time) *CommisJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *CommisJobUpdate) ClearFinishedAt() *CommisJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *CommisJobUpdate) SetLastHeartbeatAt(v time.Time) *CommisJobUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *CommisJobUpdate) SetNillableLastHeartbeatAt(v *time.Time) *CommisJobUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *CommisJobUpdate) ClearLastHeartbeatAt() *CommisJobUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *CommisJobUpdate) SetOwner(v *User) *CommisJobUpdate {
	return _u.SetOwnerID(v.ID)
}

// SetConciergeCourse sets the "concierge_course" edge to the Course entity.
func (_u *CommisJobUpdate) SetConciergeCourse(v *Course) *CommisJobUpdate {
	return _u.SetConciergeCourseID(v.ID)
}

// Mutation returns the CommisJobMutation object of the builder.
func (_u *CommisJobUpdate) Mutation() *CommisJobMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *CommisJobUpdate) ClearOwner() *CommisJobUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearConciergeCourse clears the "concierge_course" edge to the Course entity.
func (_u *CommisJobUpdate) ClearConciergeCourse() *CommisJobUpdate {
	_u.mutation.ClearConciergeCourse()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommisJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommisJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommisJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommisJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommisJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := commisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CommisJob.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommisJob.owner"`)
	}
	return nil
}

func (_u *CommisJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commisjob.Table, commisjob.Columns, sqlgraph.NewFieldSpec(commisjob.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(commisjob.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(commisjob.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commisjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ToolCallID(); ok {
		_spec.SetField(commisjob.FieldToolCallID, field.TypeString, value)
	}
	if _u.mutation.ToolCallIDCleared() {
		_spec.ClearField(commisjob.FieldToolCallID, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(commisjob.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(commisjob.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(commisjob.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(commisjob.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(commisjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(commisjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(commisjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(commisjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(commisjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(commisjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConciergeCourseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConciergeCourseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommisJobUpdateOne is the builder for updating a single CommisJob entity.
type CommisJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommisJobMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *CommisJobUpdateOne) SetOwnerID(v int) *CommisJobUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *CommisJobUpdateOne) SetNillableOwnerID(v *int) *CommisJobUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetTask sets the "task" field.
func (_u *CommisJobUpdateOne) SetTask(v string) *CommisJobUpdateOne {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *CommisJobUpdateOne) SetNillableTask(v *string) *CommisJobUpdateOne {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *CommisJobUpdateOne) SetModel(v string) *CommisJobUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CommisJobUpdateOne) SetNillableModel(v *string) *CommisJobUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommisJobUpdateOne) SetStatus(v commisjob.Status) *CommisJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommisJobUpdateOne) SetNillableStatus(v *commisjob.Status) *CommisJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConciergeCourseID sets the "concierge_course_id" field.
func (_u *CommisJobUpdateOne) SetConciergeCourseID(v int) *CommisJobUpdateOne {
	_u.mutation.SetConciergeCourseID(v)
	return _u
}

// SetNillableConciergeCourseID sets the "concierge_course_id" field if the given value is not nil.
func (_u *CommisJobUpdateOne) SetNillableConciergeCourseID(v *int) *CommisJobUpdateOne {
	if v != nil {
		_u.SetConciergeCourseID(*v)
	}
	return _u
}

// ClearConciergeCourseID clears the value of the "concierge_course_id" field.
func (_u *CommisJobUpdateOne) ClearConciergeCourseID() *CommisJobUpdateOne {
	_u.mutation.ClearConciergeCourseID()
	return _u
}

// SetToolCallID sets the "tool_call_id" field.
func (_u *CommisJobUpdateOne) SetToolCallID(v string) *CommisJobUpdateOne {
	_u.mutation.SetToolCallID(v)
	return _u
}

// SetNillableToolCallID sets the "tool_call_id" field if the given value is not nil.
func (_u *CommisJobUpdateOne) SetNillableToolCallID(v *string) *CommisJobUpdateOne {
	if v != nil {
		_u.SetToolCallID(*v)
	}
	return _u
}

// ClearToolCallID clears the value of the "tool_call_id" field.
func (_u *CommisJobUpdateOne) ClearToolCallID() *CommisJobUpdateOne {
	_u.mutation.ClearToolCallID()
	return _u
}

// SetConfig sets the "config" field.
func (_u *CommisJobUpdateOne) SetConfig(v map[string]interface{}) *CommisJobUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *CommisJobUpdateOne) ClearConfig() *CommisJobUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetError sets the "error" field.
func (_u *CommisJobUpdateOne) SetError(v string) *CommisJobUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *CommisJobUpdateOne) SetNillableError(v *string) *CommisJobUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *CommisJobUpdateOne) ClearError() *CommisJobUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CommisJobUpdateOne) SetStartedAt(v time.Time) *CommisJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CommisJobUpdateOne) SetNillableStartedAt(v *time.Time) *CommisJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CommisJobUpdateOne) ClearStartedAt() *CommisJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *CommisJobUpdateOne) SetFinishedAt(v time.Time) *CommisJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *CommisJobUpdateOne) SetNillableFinishedAt(v *time.Time) *CommisJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *CommisJobUpdateOne) ClearFinishedAt() *CommisJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *CommisJobUpdateOne) SetLastHeartbeatAt(v time.Time) *CommisJobUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *CommisJobUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *CommisJobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *CommisJobUpdateOne) ClearLastHeartbeatAt() *CommisJobUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *CommisJobUpdateOne) SetOwner(v *User) *CommisJobUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// SetConciergeCourse sets the "concierge_course" edge to the Course entity.
func (_u *CommisJobUpdateOne) SetConciergeCourse(v *Course) *CommisJobUpdateOne {
	return _u.SetConciergeCourseID(v.ID)
}

// Mutation returns the CommisJobMutation object of the builder.
func (_u *CommisJobUpdateOne) Mutation() *CommisJobMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *CommisJobUpdateOne) ClearOwner() *CommisJobUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearConciergeCourse clears the "concierge_course" edge to the Course entity.
func (_u *CommisJobUpdateOne) ClearConciergeCourse() *CommisJobUpdateOne {
	_u.mutation.ClearConciergeCourse()
	return _u
}

// Where appends a list predicates to the CommisJobUpdate builder.
func (_u *CommisJobUpdateOne) Where(ps ...predicate.CommisJob) *CommisJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommisJobUpdateOne) Select(field string, fields ...string) *CommisJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommisJob entity.
func (_u *CommisJobUpdateOne) Save(ctx context.Context) (*CommisJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommisJobUpdateOne) SaveX(ctx context.Context) *CommisJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommisJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommisJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommisJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := commisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CommisJob.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommisJob.owner"`)
	}
	return nil
}

func (_u *CommisJobUpdateOne) sqlSave(ctx context.Context) (_node *CommisJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commisjob.Table, commisjob.Columns, sqlgraph.NewFieldSpec(commisjob.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CommisJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commisjob.FieldID)
		for _, f := range fields {
			if !commisjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != commisjob.FieldID {
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
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(commisjob.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(commisjob.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commisjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ToolCallID(); ok {
		_spec.SetField(commisjob.FieldToolCallID, field.TypeString, value)
	}
	if _u.mutation.ToolCallIDCleared() {
		_spec.ClearField(commisjob.FieldToolCallID, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(commisjob.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(commisjob.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(commisjob.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(commisjob.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(commisjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(commisjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(commisjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(commisjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(commisjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(commisjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConciergeCourseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConciergeCourseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CommisJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
