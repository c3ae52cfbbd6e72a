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
	"github.com/oikos-sh/brigade/ent/courseevent"
	"github.com/oikos-sh/brigade/ent/fiche"
	"github.com/oikos-sh/brigade/ent/predicate"
	"github.com/oikos-sh/brigade/ent/user"
)

// CourseUpdate is the builder for updating Course entities.
type CourseUpdate struct {
	config
	hooks    []Hook
	mutation *CourseMutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdate) Where(ps ...predicate.Course) *CourseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFicheID sets the "fiche_id" field.
func (_u *CourseUpdate) SetFicheID(v int) *CourseUpdate {
	_u.mutation.SetFicheID(v)
	return _u
}

// SetNillableFicheID sets the "fiche_id" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableFicheID(v *int) *CourseUpdate {
	if v != nil {
		_u.SetFicheID(*v)
	}
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *CourseUpdate) SetThreadID(v int) *CourseUpdate {
	_u.mutation.ResetThreadID()
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableThreadID(v *int) *CourseUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// AddThreadID adds value to the "thread_id" field.
func (_u *CourseUpdate) AddThreadID(v int) *CourseUpdate {
	_u.mutation.AddThreadID(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *CourseUpdate) SetOwnerID(v int) *CourseUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableOwnerID(v *int) *CourseUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CourseUpdate) SetStatus(v course.Status) *CourseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableStatus(v *course.Status) *CourseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContinuationOfCourseID sets the "continuation_of_course_id" field.
func (_u *CourseUpdate) SetContinuationOfCourseID(v int) *CourseUpdate {
	_u.mutation.ResetContinuationOfCourseID()
	_u.mutation.SetContinuationOfCourseID(v)
	return _u
}

// SetNillableContinuationOfCourseID sets the "continuation_of_course_id" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableContinuationOfCourseID(v *int) *CourseUpdate {
	if v != nil {
		_u.SetContinuationOfCourseID(*v)
	}
	return _u
}

// AddContinuationOfCourseID adds value to the "continuation_of_course_id" field.
func (_u *CourseUpdate) AddContinuationOfCourseID(v int) *CourseUpdate {
	_u.mutation.AddContinuationOfCourseID(v)
	return _u
}

// ClearContinuationOfCourseID clears the value of the "continuation_of_course_id" field.
func (_u *CourseUpdate) ClearContinuationOfCourseID() *CourseUpdate {
	_u.mutation.ClearContinuationOfCourseID()
	return _u
}

// SetAssistantMessageID sets the "assistant_message_id" field.
func (_u *CourseUpdate) SetAssistantMessageID(v int) *CourseUpdate {
	_u.mutation.ResetAssistantMessageID()
	_u.mutation.SetAssistantMessageID(v)
	return _u
}

// SetNillableAssistantMessageID sets the "assistant_message_id" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableAssistantMessageID(v *int) *CourseUpdate {
	if v != nil {
		_u.SetAssistantMessageID(*v)
	}
	return _u
}

// AddAssistantMessageID adds value to the "assistant_message_id" field.
func (_u *CourseUpdate) AddAssistantMessageID(v int) *CourseUpdate {
	_u.mutation.AddAssistantMessageID(v)
	return _u
}

// ClearAssistantMessageID clears the value of the "assistant_message_id" field.
func (_u *CourseUpdate) ClearAssistantMessageID() *CourseUpdate {
	_u.mutation.ClearAssistantMessageID()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CourseUpdate) SetSummary(v string) *CourseUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableSummary(v *string) *CourseUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CourseUpdate) ClearSummary() *CourseUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetError sets the "error" field.
func (_u *CourseUpdate) SetError(v string) *CourseUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableError(v *string) *CourseUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *CourseUpdate) ClearError() *CourseUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CourseUpdate) SetStartedAt(v time.Time) *CourseUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableStartedAt(v *time.Time) *CourseUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CourseUpdate) ClearStartedAt() *CourseUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *CourseUpdate) SetFinishedAt(v time.Time) *CourseUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableFinishedAt(v *time.Time) *CourseUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *CourseUpdate) ClearFinishedAt() *CourseUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetFiche sets the "fiche" edge to the Fiche entity.
func (_u *CourseUpdate) SetFiche(v *Fiche) *CourseUpdate {
	return _u.SetFicheID(v.ID)
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *CourseUpdate) SetOwner(v *User) *CourseUpdate {
	return _u.SetOwnerID(v.ID)
}

// AddCommisJobIDs adds the "commis_jobs" edge to the CommisJob entity by IDs.
func (_u *CourseUpdate) AddCommisJobIDs(ids ...int) *CourseUpdate {
	_u.mutation.AddCommisJobIDs(ids...)
	return _u
}

// AddCommisJobs adds the "commis_jobs" edges to the CommisJob entity.
func (_u *CourseUpdate) AddCommisJobs(v ...*CommisJob) *CourseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommisJobIDs(ids...)
}

// AddEventIDs adds the "events" edge to the CourseEvent entity by IDs.
func (_u *CourseUpdate) AddEventIDs(ids ...int) *CourseUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the CourseEvent entity.
func (_u *CourseUpdate) AddEvents(v ...*CourseEvent) *CourseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdate) Mutation() *CourseMutation {
	return _u.mutation
}

// ClearFiche clears the "fiche" edge to the Fiche entity.
func (_u *CourseUpdate) ClearFiche() *CourseUpdate {
	_u.mutation.ClearFiche()
	return _u
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *CourseUpdate) ClearOwner() *CourseUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearCommisJobs clears all "commis_jobs" edges to the CommisJob entity.
func (_u *CourseUpdate) ClearCommisJobs() *CourseUpdate {
	_u.mutation.ClearCommisJobs()
	return _u
}

// RemoveCommisJobIDs removes the "commis_jobs" edge to CommisJob entities by IDs.
func (_u *CourseUpdate) RemoveCommisJobIDs(ids ...int) *CourseUpdate {
	_u.mutation.RemoveCommisJobIDs(ids...)
	return _u
}

// RemoveCommisJobs removes "commis_jobs" edges to CommisJob entities.
func (_u *CourseUpdate) RemoveCommisJobs(v ...*CommisJob) *CourseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommisJobIDs(ids...)
}

// ClearEvents clears all "events" edges to the CourseEvent entity.
func (_u *CourseUpdate) ClearEvents() *CourseUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to CourseEvent entities by IDs.
func (_u *CourseUpdate) RemoveEventIDs(ids ...int) *CourseUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to CourseEvent entities.
func (_u *CourseUpdate) RemoveEvents(v ...*CourseEvent) *CourseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := course.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Course.status": %w`, err)}
		}
	}
	if _u.mutation.FicheCleared() && len(_u.mutation.FicheIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Course.fiche"`)
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Course.owner"`)
	}
	return nil
}

func (_u *CourseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(course.FieldThreadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedThreadID(); ok {
		_spec.AddField(course.FieldThreadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(course.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContinuationOfCourseID(); ok {
		_spec.SetField(course.FieldContinuationOfCourseID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContinuationOfCourseID(); ok {
		_spec.AddField(course.FieldContinuationOfCourseID, field.TypeInt, value)
	}
	if _u.mutation.ContinuationOfCourseIDCleared() {
		_spec.ClearField(course.FieldContinuationOfCourseID, field.TypeInt)
	}
	if value, ok := _u.mutation.AssistantMessageID(); ok {
		_spec.SetField(course.FieldAssistantMessageID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssistantMessageID(); ok {
		_spec.AddField(course.FieldAssistantMessageID, field.TypeInt, value)
	}
	if _u.mutation.AssistantMessageIDCleared() {
		_spec.ClearField(course.FieldAssistantMessageID, field.TypeInt)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(course.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(course.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(course.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(course.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(course.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(course.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(course.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(course.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.FicheCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FicheIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommisJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommisJobsIDs(); len(nodes) > 0 && !_u.mutation.CommisJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommisJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseUpdateOne is the builder for updating a single Course entity.
type CourseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseMutation
}

// SetFicheID sets the "fiche_id" field.
func (_u *CourseUpdateOne) SetFicheID(v int) *CourseUpdateOne {
	_u.mutation.SetFicheID(v)
	return _u
}

// SetNillableFicheID sets the "fiche_id" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableFicheID(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetFicheID(*v)
	}
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *CourseUpdateOne) SetThreadID(v int) *CourseUpdateOne {
	_u.mutation.ResetThreadID()
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableThreadID(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// AddThreadID adds value to the "thread_id" field.
func (_u *CourseUpdateOne) AddThreadID(v int) *CourseUpdateOne {
	_u.mutation.AddThreadID(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *CourseUpdateOne) SetOwnerID(v int) *CourseUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableOwnerID(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CourseUpdateOne) SetStatus(v course.Status) *CourseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableStatus(v *course.Status) *CourseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContinuationOfCourseID sets the "continuation_of_course_id" field.
func (_u *CourseUpdateOne) SetContinuationOfCourseID(v int) *CourseUpdateOne {
	_u.mutation.ResetContinuationOfCourseID()
	_u.mutation.SetContinuationOfCourseID(v)
	return _u
}

// SetNillableContinuationOfCourseID sets the "continuation_of_course_id" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableContinuationOfCourseID(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetContinuationOfCourseID(*v)
	}
	return _u
}

// AddContinuationOfCourseID adds value to the "continuation_of_course_id" field.
func (_u *CourseUpdateOne) AddContinuationOfCourseID(v int) *CourseUpdateOne {
	_u.mutation.AddContinuationOfCourseID(v)
	return _u
}

// ClearContinuationOfCourseID clears the value of the "continuation_of_course_id" field.
func (_u *CourseUpdateOne) ClearContinuationOfCourseID() *CourseUpdateOne {
	_u.mutation.ClearContinuationOfCourseID()
	return _u
}

// SetAssistantMessageID sets the "assistant_message_id" field.
func (_u *CourseUpdateOne) SetAssistantMessageID(v int) *CourseUpdateOne {
	_u.mutation.ResetAssistantMessageID()
	_u.mutation.SetAssistantMessageID(v)
	return _u
}

// SetNillableAssistantMessageID sets the "assistant_message_id" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableAssistantMessageID(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetAssistantMessageID(*v)
	}
	return _u
}

// AddAssistantMessageID adds value to the "assistant_message_id" field.
func (_u *CourseUpdateOne) AddAssistantMessageID(v int) *CourseUpdateOne {
	_u.mutation.AddAssistantMessageID(v)
	return _u
}

// ClearAssistantMessageID clears the value of the "assistant_message_id" field.
func (_u *CourseUpdateOne) ClearAssistantMessageID() *CourseUpdateOne {
	_u.mutation.ClearAssistantMessageID()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CourseUpdateOne) SetSummary(v string) *CourseUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableSummary(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CourseUpdateOne) ClearSummary() *CourseUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetError sets the "error" field.
func (_u *CourseUpdateOne) SetError(v string) *CourseUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableError(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *CourseUpdateOne) ClearError() *CourseUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CourseUpdateOne) SetStartedAt(v time.Time) *CourseUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableStartedAt(v *time.Time) *CourseUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CourseUpdateOne) ClearStartedAt() *CourseUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *CourseUpdateOne) SetFinishedAt(v time.Time) *CourseUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableFinishedAt(v *time.Time) *CourseUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *CourseUpdateOne) ClearFinishedAt() *CourseUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetFiche sets the "fiche" edge to the Fiche entity.
func (_u *CourseUpdateOne) SetFiche(v *Fiche) *CourseUpdateOne {
	return _u.SetFicheID(v.ID)
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *CourseUpdateOne) SetOwner(v *User) *CourseUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// AddCommisJobIDs adds the "commis_jobs" edge to the CommisJob entity by IDs.
func (_u *CourseUpdateOne) AddCommisJobIDs(ids ...int) *CourseUpdateOne {
	_u.mutation.AddCommisJobIDs(ids...)
	return _u
}

// AddCommisJobs adds the "commis_jobs" edges to the CommisJob entity.
func (_u *CourseUpdateOne) AddCommisJobs(v ...*CommisJob) *CourseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommisJobIDs(ids...)
}

// AddEventIDs adds the "events" edge to the CourseEvent entity by IDs.
func (_u *CourseUpdateOne) AddEventIDs(ids ...int) *CourseUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the CourseEvent entity.
func (_u *CourseUpdateOne) AddEvents(v ...*CourseEvent) *CourseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdateOne) Mutation() *CourseMutation {
	return _u.mutation
}

// ClearFiche clears the "fiche" edge to the Fiche entity.
func (_u *CourseUpdateOne) ClearFiche() *CourseUpdateOne {
	_u.mutation.ClearFiche()
	return _u
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *CourseUpdateOne) ClearOwner() *CourseUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearCommisJobs clears all "commis_jobs" edges to the CommisJob entity.
func (_u *CourseUpdateOne) ClearCommisJobs() *CourseUpdateOne {
	_u.mutation.ClearCommisJobs()
	return _u
}

// RemoveCommisJobIDs removes the "commis_jobs" edge to CommisJob entities by IDs.
func (_u *CourseUpdateOne) RemoveCommisJobIDs(ids ...int) *CourseUpdateOne {
	_u.mutation.RemoveCommisJobIDs(ids...)
	return _u
}

// RemoveCommisJobs removes "commis_jobs" edges to CommisJob entities.
func (_u *CourseUpdateOne) RemoveCommisJobs(v ...*CommisJob) *CourseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommisJobIDs(ids...)
}

// ClearEvents clears all "events" edges to the CourseEvent entity.
func (_u *CourseUpdateOne) ClearEvents() *CourseUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to CourseEvent entities by IDs.
func (_u *CourseUpdateOne) RemoveEventIDs(ids ...int) *CourseUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to CourseEvent entities.
func (_u *CourseUpdateOne) RemoveEvents(v ...*CourseEvent) *CourseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdateOne) Where(ps ...predicate.Course) *CourseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseUpdateOne) Select(field string, fields ...string) *CourseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Course entity.
func (_u *CourseUpdateOne) Save(ctx context.Context) (*Course, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdateOne) SaveX(ctx context.Context) *Course {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := course.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Course.status": %w`, err)}
		}
	}
	if _u.mutation.FicheCleared() && len(_u.mutation.FicheIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Course.fiche"`)
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Course.owner"`)
	}
	return nil
}

func (_u *CourseUpdateOne) sqlSave(ctx context.Context) (_node *Course, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Course.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, course.FieldID)
		for _, f := range fields {
			if !course.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != course.FieldID {
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
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(course.FieldThreadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedThreadID(); ok {
		_spec.AddField(course.FieldThreadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(course.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContinuationOfCourseID(); ok {
		_spec.SetField(course.FieldContinuationOfCourseID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContinuationOfCourseID(); ok {
		_spec.AddField(course.FieldContinuationOfCourseID, field.TypeInt, value)
	}
	if _u.mutation.ContinuationOfCourseIDCleared() {
		_spec.ClearField(course.FieldContinuationOfCourseID, field.TypeInt)
	}
	if value, ok := _u.mutation.AssistantMessageID(); ok {
		_spec.SetField(course.FieldAssistantMessageID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssistantMessageID(); ok {
		_spec.AddField(course.FieldAssistantMessageID, field.TypeInt, value)
	}
	if _u.mutation.AssistantMessageIDCleared() {
		_spec.ClearField(course.FieldAssistantMessageID, field.TypeInt)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(course.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(course.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(course.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(course.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(course.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(course.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(course.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(course.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.FicheCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FicheIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommisJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommisJobsIDs(); len(nodes) > 0 && !_u.mutation.CommisJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommisJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Course{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
