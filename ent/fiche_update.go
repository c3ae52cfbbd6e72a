// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/ent/fiche"
	"github.com/oikos-sh/brigade/ent/predicate"
	"github.com/oikos-sh/brigade/ent/thread"
	"github.com/oikos-sh/brigade/ent/user"
)

// FicheUpdate is the builder for updating Fiche entities.
type FicheUpdate struct {
	config
	hooks    []Hook
	mutation *FicheMutation
}

// Where appends a list predicates to the FicheUpdate builder.
func (_u *FicheUpdate) Where(ps ...predicate.Fiche) *FicheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *FicheUpdate) SetOwnerID(v int) *FicheUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *FicheUpdate) SetNillableOwnerID(v *int) *FicheUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FicheUpdate) SetName(v string) *FicheUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FicheUpdate) SetNillableName(v *string) *FicheUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSystemInstructions sets the "system_instructions" field.
func (_u *FicheUpdate) SetSystemInstructions(v string) *FicheUpdate {
	_u.mutation.SetSystemInstructions(v)
	return _u
}

// SetNillableSystemInstructions sets the "system_instructions" field if the given value is not nil.
func (_u *FicheUpdate) SetNillableSystemInstructions(v *string) *FicheUpdate {
	if v != nil {
		_u.SetSystemInstructions(*v)
	}
	return _u
}

// SetTaskInstructions sets the "task_instructions" field.
func (_u *FicheUpdate) SetTaskInstructions(v string) *FicheUpdate {
	_u.mutation.SetTaskInstructions(v)
	return _u
}

// SetNillableTaskInstructions sets the "task_instructions" field if the given value is not nil.
func (_u *FicheUpdate) SetNillableTaskInstructions(v *string) *FicheUpdate {
	if v != nil {
		_u.SetTaskInstructions(*v)
	}
	return _u
}

// ClearTaskInstructions clears the value of the "task_instructions" field.
func (_u *FicheUpdate) ClearTaskInstructions() *FicheUpdate {
	_u.mutation.ClearTaskInstructions()
	return _u
}

// SetModel sets the "model" field.
func (_u *FicheUpdate) SetModel(v string) *FicheUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *FicheUpdate) SetNillableModel(v *string) *FicheUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAllowedTools sets the "allowed_tools" field.
func (_u *FicheUpdate) SetAllowedTools(v []string) *FicheUpdate {
	_u.mutation.SetAllowedTools(v)
	return _u
}

// AppendAllowedTools appends value to the "allowed_tools" field.
func (_u *FicheUpdate) AppendAllowedTools(v []string) *FicheUpdate {
	_u.mutation.AppendAllowedTools(v)
	return _u
}

// ClearAllowedTools clears the value of the "allowed_tools" field.
func (_u *FicheUpdate) ClearAllowedTools() *FicheUpdate {
	_u.mutation.ClearAllowedTools()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FicheUpdate) SetStatus(v fiche.Status) *FicheUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FicheUpdate) SetNillableStatus(v *fiche.Status) *FicheUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *FicheUpdate) SetLastError(v string) *FicheUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *FicheUpdate) SetNillableLastError(v *string) *FicheUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *FicheUpdate) ClearLastError() *FicheUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *FicheUpdate) SetLastRunAt(v time.Time) *FicheUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *FicheUpdate) SetNillableLastRunAt(v *time.Time) *FicheUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *FicheUpdate) ClearLastRunAt() *FicheUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *FicheUpdate) SetNextRunAt(v time.Time) *FicheUpdate {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *FicheUpdate) SetNillableNextRunAt(v *time.Time) *FicheUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *FicheUpdate) ClearNextRunAt() *FicheUpdate {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetIsConcierge sets the "is_concierge" field.
func (_u *FicheUpdate) SetIsConcierge(v bool) *FicheUpdate {
	_u.mutation.SetIsConcierge(v)
	return _u
}

// SetNillableIsConcierge sets the "is_concierge" field if the given value is not nil.
func (_u *FicheUpdate) SetNillableIsConcierge(v *bool) *FicheUpdate {
	if v != nil {
		_u.SetIsConcierge(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FicheUpdate) SetUpdatedAt(v time.Time) *FicheUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *FicheUpdate) SetOwner(v *User) *FicheUpdate {
	return _u.SetOwnerID(v.ID)
}

// AddThreadIDs adds the "threads" edge to the Thread entity by IDs.
func (_u *FicheUpdate) AddThreadIDs(ids ...int) *FicheUpdate {
	_u.mutation.AddThreadIDs(ids...)
	return _u
}

// AddThreads adds the "threads" edges to the Thread entity.
func (_u *FicheUpdate) AddThreads(v ...*Thread) *FicheUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThreadIDs(ids...)
}

// AddCourseIDs adds the "courses" edge to the Course entity by IDs.
func (_u *FicheUpdate) AddCourseIDs(ids ...int) *FicheUpdate {
	_u.mutation.AddCourseIDs(ids...)
	return _u
}

// AddCourses adds the "courses" edges to the Course entity.
func (_u *FicheUpdate) AddCourses(v ...*Course) *FicheUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCourseIDs(ids...)
}

// Mutation returns the FicheMutation object of the builder.
func (_u *FicheUpdate) Mutation() *FicheMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *FicheUpdate) ClearOwner() *FicheUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearThreads clears all "threads" edges to the Thread entity.
func (_u *FicheUpdate) ClearThreads() *FicheUpdate {
	_u.mutation.ClearThreads()
	return _u
}

// RemoveThreadIDs removes the "threads" edge to Thread entities by IDs.
func (_u *FicheUpdate) RemoveThreadIDs(ids ...int) *FicheUpdate {
	_u.mutation.RemoveThreadIDs(ids...)
	return _u
}

// RemoveThreads removes "threads" edges to Thread entities.
func (_u *FicheUpdate) RemoveThreads(v ...*Thread) *FicheUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThreadIDs(ids...)
}

// ClearCourses clears all "courses" edges to the Course entity.
func (_u *FicheUpdate) ClearCourses() *FicheUpdate {
	_u.mutation.ClearCourses()
	return _u
}

// RemoveCourseIDs removes the "courses" edge to Course entities by IDs.
func (_u *FicheUpdate) RemoveCourseIDs(ids ...int) *FicheUpdate {
	_u.mutation.RemoveCourseIDs(ids...)
	return _u
}

// RemoveCourses removes "courses" edges to Course entities.
func (_u *FicheUpdate) RemoveCourses(v ...*Course) *FicheUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCourseIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FicheUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FicheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FicheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FicheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FicheUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fiche.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FicheUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fiche.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Fiche.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Fiche.owner"`)
	}
	return nil
}

func (_u *FicheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fiche.Table, fiche.Columns, sqlgraph.NewFieldSpec(fiche.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(fiche.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemInstructions(); ok {
		_spec.SetField(fiche.FieldSystemInstructions, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskInstructions(); ok {
		_spec.SetField(fiche.FieldTaskInstructions, field.TypeString, value)
	}
	if _u.mutation.TaskInstructionsCleared() {
		_spec.ClearField(fiche.FieldTaskInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(fiche.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AllowedTools(); ok {
		_spec.SetField(fiche.FieldAllowedTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fiche.FieldAllowedTools, value)
		})
	}
	if _u.mutation.AllowedToolsCleared() {
		_spec.ClearField(fiche.FieldAllowedTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fiche.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(fiche.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(fiche.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(fiche.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(fiche.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(fiche.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(fiche.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsConcierge(); ok {
		_spec.SetField(fiche.FieldIsConcierge, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fiche.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ThreadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThreadsIDs(); len(nodes) > 0 && !_u.mutation.ThreadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThreadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CoursesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCoursesIDs(); len(nodes) > 0 && !_u.mutation.CoursesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CoursesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fiche.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FicheUpdateOne is the builder for updating a single Fiche entity.
type FicheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FicheMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *FicheUpdateOne) SetOwnerID(v int) *FicheUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *FicheUpdateOne) SetNillableOwnerID(v *int) *FicheUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FicheUpdateOne) SetName(v string) *FicheUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FicheUpdateOne) SetNillableName(v *string) *FicheUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSystemInstructions sets the "system_instructions" field.
func (_u *FicheUpdateOne) SetSystemInstructions(v string) *FicheUpdateOne {
	_u.mutation.SetSystemInstructions(v)
	return _u
}

// SetNillableSystemInstructions sets the "system_instructions" field if the given value is not nil.
func (_u *FicheUpdateOne) SetNillableSystemInstructions(v *string) *FicheUpdateOne {
	if v != nil {
		_u.SetSystemInstructions(*v)
	}
	return _u
}

// SetTaskInstructions sets the "task_instructions" field.
func (_u *FicheUpdateOne) SetTaskInstructions(v string) *FicheUpdateOne {
	_u.mutation.SetTaskInstructions(v)
	return _u
}

// SetNillableTaskInstructions sets the "task_instructions" field if the given value is not nil.
func (_u *FicheUpdateOne) SetNillableTaskInstructions(v *string) *FicheUpdateOne {
	if v != nil {
		_u.SetTaskInstructions(*v)
	}
	return _u
}

// ClearTaskInstructions clears the value of the "task_instructions" field.
func (_u *FicheUpdateOne) ClearTaskInstructions() *FicheUpdateOne {
	_u.mutation.ClearTaskInstructions()
	return _u
}

// SetModel sets the "model" field.
func (_u *FicheUpdateOne) SetModel(v string) *FicheUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *FicheUpdateOne) SetNillableModel(v *string) *FicheUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAllowedTools sets the "allowed_tools" field.
func (_u *FicheUpdateOne) SetAllowedTools(v []string) *FicheUpdateOne {
	_u.mutation.SetAllowedTools(v)
	return _u
}

// AppendAllowedTools appends value to the "allowed_tools" field.
func (_u *FicheUpdateOne) AppendAllowedTools(v []string) *FicheUpdateOne {
	_u.mutation.AppendAllowedTools(v)
	return _u
}

// ClearAllowedTools clears the value of the "allowed_tools" field.
func (_u *FicheUpdateOne) ClearAllowedTools() *FicheUpdateOne {
	_u.mutation.ClearAllowedTools()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FicheUpdateOne) SetStatus(v fiche.Status) *FicheUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FicheUpdateOne) SetNillableStatus(v *fiche.Status) *FicheUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *FicheUpdateOne) SetLastError(v string) *FicheUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *FicheUpdateOne) SetNillableLastError(v *string) *FicheUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *FicheUpdateOne) ClearLastError() *FicheUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *FicheUpdateOne) SetLastRunAt(v time.Time) *FicheUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *FicheUpdateOne) SetNillableLastRunAt(v *time.Time) *FicheUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *FicheUpdateOne) ClearLastRunAt() *FicheUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *FicheUpdateOne) SetNextRunAt(v time.Time) *FicheUpdateOne {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *FicheUpdateOne) SetNillableNextRunAt(v *time.Time) *FicheUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *FicheUpdateOne) ClearNextRunAt() *FicheUpdateOne {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetIsConcierge sets the "is_concierge" field.
func (_u *FicheUpdateOne) SetIsConcierge(v bool) *FicheUpdateOne {
	_u.mutation.SetIsConcierge(v)
	return _u
}

// SetNillableIsConcierge sets the "is_concierge" field if the given value is not nil.
func (_u *FicheUpdateOne) SetNillableIsConcierge(v *bool) *FicheUpdateOne {
	if v != nil {
		_u.SetIsConcierge(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FicheUpdateOne) SetUpdatedAt(v time.Time) *FicheUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *FicheUpdateOne) SetOwner(v *User) *FicheUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// AddThreadIDs adds the "threads" edge to the Thread entity by IDs.
func (_u *FicheUpdateOne) AddThreadIDs(ids ...int) *FicheUpdateOne {
	_u.mutation.AddThreadIDs(ids...)
	return _u
}

// AddThreads adds the "threads" edges to the Thread entity.
func (_u *FicheUpdateOne) AddThreads(v ...*Thread) *FicheUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThreadIDs(ids...)
}

// AddCourseIDs adds the "courses" edge to the Course entity by IDs.
func (_u *FicheUpdateOne) AddCourseIDs(ids ...int) *FicheUpdateOne {
	_u.mutation.AddCourseIDs(ids...)
	return _u
}

// AddCourses adds the "courses" edges to the Course entity.
func (_u *FicheUpdateOne) AddCourses(v ...*Course) *FicheUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCourseIDs(ids...)
}

// Mutation returns the FicheMutation object of the builder.
func (_u *FicheUpdateOne) Mutation() *FicheMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *FicheUpdateOne) ClearOwner() *FicheUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearThreads clears all "threads" edges to the Thread entity.
func (_u *FicheUpdateOne) ClearThreads() *FicheUpdateOne {
	_u.mutation.ClearThreads()
	return _u
}

// RemoveThreadIDs removes the "threads" edge to Thread entities by IDs.
func (_u *FicheUpdateOne) RemoveThreadIDs(ids ...int) *FicheUpdateOne {
	_u.mutation.RemoveThreadIDs(ids...)
	return _u
}

// RemoveThreads removes "threads" edges to Thread entities.
func (_u *FicheUpdateOne) RemoveThreads(v ...*Thread) *FicheUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThreadIDs(ids...)
}

// ClearCourses clears all "courses" edges to the Course entity.
func (_u *FicheUpdateOne) ClearCourses() *FicheUpdateOne {
	_u.mutation.ClearCourses()
	return _u
}

// RemoveCourseIDs removes the "courses" edge to Course entities by IDs.
func (_u *FicheUpdateOne) RemoveCourseIDs(ids ...int) *FicheUpdateOne {
	_u.mutation.RemoveCourseIDs(ids...)
	return _u
}

// RemoveCourses removes "courses" edges to Course entities.
func (_u *FicheUpdateOne) RemoveCourses(v ...*Course) *FicheUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCourseIDs(ids...)
}

// Where appends a list predicates to the FicheUpdate builder.
func (_u *FicheUpdateOne) Where(ps ...predicate.Fiche) *FicheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FicheUpdateOne) Select(field string, fields ...string) *FicheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Fiche entity.
func (_u *FicheUpdateOne) Save(ctx context.Context) (*Fiche, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FicheUpdateOne) SaveX(ctx context.Context) *Fiche {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FicheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FicheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FicheUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fiche.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FicheUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fiche.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Fiche.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Fiche.owner"`)
	}
	return nil
}

func (_u *FicheUpdateOne) sqlSave(ctx context.Context) (_node *Fiche, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fiche.Table, fiche.Columns, sqlgraph.NewFieldSpec(fiche.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Fiche.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fiche.FieldID)
		for _, f := range fields {
			if !fiche.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fiche.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(fiche.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemInstructions(); ok {
		_spec.SetField(fiche.FieldSystemInstructions, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskInstructions(); ok {
		_spec.SetField(fiche.FieldTaskInstructions, field.TypeString, value)
	}
	if _u.mutation.TaskInstructionsCleared() {
		_spec.ClearField(fiche.FieldTaskInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(fiche.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AllowedTools(); ok {
		_spec.SetField(fiche.FieldAllowedTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fiche.FieldAllowedTools, value)
		})
	}
	if _u.mutation.AllowedToolsCleared() {
		_spec.ClearField(fiche.FieldAllowedTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fiche.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(fiche.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(fiche.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(fiche.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(fiche.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(fiche.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(fiche.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsConcierge(); ok {
		_spec.SetField(fiche.FieldIsConcierge, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fiche.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ThreadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThreadsIDs(); len(nodes) > 0 && !_u.mutation.ThreadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThreadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CoursesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCoursesIDs(); len(nodes) > 0 && !_u.mutation.CoursesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CoursesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Fiche{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fiche.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
