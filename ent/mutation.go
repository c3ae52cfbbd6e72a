// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/ent/courseevent"
	"github.com/oikos-sh/brigade/ent/deployment"
	"github.com/oikos-sh/brigade/ent/enrolltoken"
	"github.com/oikos-sh/brigade/ent/fiche"
	"github.com/oikos-sh/brigade/ent/instance"
	"github.com/oikos-sh/brigade/ent/predicate"
	"github.com/oikos-sh/brigade/ent/runner"
	"github.com/oikos-sh/brigade/ent/runnerjob"
	"github.com/oikos-sh/brigade/ent/thread"
	"github.com/oikos-sh/brigade/ent/threadmessage"
	"github.com/oikos-sh/brigade/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCommisJob     = "CommisJob"
	TypeCourse        = "Course"
	TypeCourseEvent   = "CourseEvent"
	TypeDeployment    = "Deployment"
	TypeEnrollToken   = "EnrollToken"
	TypeFiche         = "Fiche"
	TypeInstance      = "Instance"
	TypeRunner        = "Runner"
	TypeRunnerJob     = "RunnerJob"
	TypeThread        = "Thread"
	TypeThreadMessage = "ThreadMessage"
	TypeUser          = "User"
)

// CommisJobMutation represents an operation that mutates the CommisJob nodes in the graph.
type CommisJobMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	task                    *string
	model                   *string
	status                  *commisjob.Status
	tool_call_id            *string
	commis_id               *string
	_config                 *map[string]interface{}
	error                   *string
	created_at              *time.Time
	started_at              *time.Time
	finished_at             *time.Time
	last_heartbeat_at       *time.Time
	clearedFields           map[string]struct{}
	owner                   *int
	clearedowner            bool
	concierge_course        *int
	clearedconcierge_course bool
	done                    bool
	oldValue                func(context.Context) (*CommisJob, error)
	predicates              []predicate.CommisJob
}

var _ ent.Mutation = (*CommisJobMutation)(nil)

// commisjobOption allows management of the mutation configuration using functional options.
type commisjobOption func(*CommisJobMutation)

// newCommisJobMutation creates new mutation for the CommisJob entity.
func newCommisJobMutation(c config, op Op, opts ...commisjobOption) *CommisJobMutation {
	m := &CommisJobMutation{
		config:        c,
		op:            op,
		typ:           TypeCommisJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommisJobID sets the ID field of the mutation.
func withCommisJobID(id int) commisjobOption {
	return func(m *CommisJobMutation) {
		var (
			err   error
			once  sync.Once
			value *CommisJob
		)
		m.oldValue = func(ctx context.Context) (*CommisJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CommisJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommisJob sets the old CommisJob of the mutation.
func withCommisJob(node *CommisJob) commisjobOption {
	return func(m *CommisJobMutation) {
		m.oldValue = func(context.Context) (*CommisJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommisJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommisJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommisJobMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommisJobMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CommisJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *CommisJobMutation) SetOwnerID(i int) {
	m.owner = &i
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *CommisJobMutation) OwnerID() (r int, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the CommisJob entity.
// If the CommisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommisJobMutation) OldOwnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *CommisJobMutation) ResetOwnerID() {
	m.owner = nil
}

// SetTask sets the "task" field.
func (m *CommisJobMutation) SetTask(s string) {
	m.task = &s
}

// Task returns the value of the "task" field in the mutation.
func (m *CommisJobMutation) Task() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTask returns the old "task" field's value of the CommisJob entity.
// If the CommisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommisJobMutation) OldTask(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTask: %w", err)
	}
	return oldValue.Task, nil
}

// ResetTask resets all changes to the "task" field.
func (m *CommisJobMutation) ResetTask() {
	m.task = nil
}

// SetModel sets the "model" field.
func (m *CommisJobMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *CommisJobMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the CommisJob entity.
// If the CommisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommisJobMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *CommisJobMutation) ResetModel() {
	m.model = nil
}

// SetStatus sets the "status" field.
func (m *CommisJobMutation) SetStatus(c commisjob.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CommisJobMutation) Status() (r commisjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CommisJob entity.
// If the CommisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommisJobMutation) OldStatus(ctx context.Context) (v commisjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CommisJobMutation) ResetStatus() {
	m.status = nil
}

// SetConciergeCourseID sets the "concierge_course_id" field.
func (m *CommisJobMutation) SetConciergeCourseID(i int) {
	m.concierge_course = &i
}

// ConciergeCourseID returns the value of the "concierge_course_id" field in the mutation.
func (m *CommisJobMutation) ConciergeCourseID() (r int, exists bool) {
	v := m.concierge_course
	if v == nil {
		return
	}
	return *v, true
}

// OldConciergeCourseID returns the old "concierge_course_id" field's value of the CommisJob entity.
// If the CommisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommisJobMutation) OldConciergeCourseID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConciergeCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConciergeCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConciergeCourseID: %w", err)
	}
	return oldValue.ConciergeCourseID, nil
}

// ClearConciergeCourseID clears the value of the "concierge_course_id" field.
func (m *CommisJobMutation) ClearConciergeCourseID() {
	m.concierge_course = nil
	m.clearedFields[commisjob.FieldConciergeCourseID] = struct{}{}
}

// ConciergeCourseIDCleared returns if the "concierge_course_id" field was cleared in this mutation.
func (m *CommisJobMutation) ConciergeCourseIDCleared() bool {
	_, ok := m.clearedFields[commisjob.FieldConciergeCourseID]
	return ok
}

// ResetConciergeCourseID resets all changes to the "concierge_course_id" field.
func (m *CommisJobMutation) ResetConciergeCourseID() {
	m.concierge_course = nil
	delete(m.clearedFields, commisjob.FieldConciergeCourseID)
}

// SetToolCallID sets the "tool_call_id" field.
func (m *CommisJobMutation) SetToolCallID(s string) {
	m.tool_call_id = &s
}

// ToolCallID returns the value of the "tool_call_id" field in the mutation.
func (m *CommisJobMutation) ToolCallID() (r string, exists bool) {
	v := m.tool_call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCallID returns the old "tool_call_id" field's value of the CommisJob entity.
// If the CommisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommisJobMutation) OldToolCallID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCallID: %w", err)
	}
	return oldValue.ToolCallID, nil
}

// ClearToolCallID clears the value of the "tool_call_id" field.
func (m *CommisJobMutation) ClearToolCallID() {
	m.tool_call_id = nil
	m.clearedFields[commisjob.FieldToolCallID] = struct{}{}
}

// ToolCallIDCleared returns if the "tool_call_id" field was cleared in this mutation.
func (m *CommisJobMutation) ToolCallIDCleared() bool {
	_, ok := m.clearedFields[commisjob.FieldToolCallID]
	return ok
}

// ResetToolCallID resets all changes to the "tool_call_id" field.
func (m *CommisJobMutation) ResetToolCallID() {
	m.tool_call_id = nil
	delete(m.clearedFields, commisjob.FieldToolCallID)
}

// SetCommisID sets the "commis_id" field.
func (m *CommisJobMutation) SetCommisID(s string) {
	m.commis_id = &s
}

// CommisID returns the value of the "commis_id" field in the mutation.
func (m *CommisJobMutation) CommisID() (r string, exists bool) {
	v := m.commis_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommisID returns the old "commis_id" field's value of the CommisJob entity.
// If the CommisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommisJobMutation) OldCommisID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommisID: %w", err)
	}
	return oldValue.CommisID, nil
}

// ResetCommisID resets all changes to the "commis_id" field.
func (m *CommisJobMutation) ResetCommisID() {
	m.commis_id = nil
}

// SetConfig sets the "config" field.
func (m *CommisJobMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *CommisJobMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the CommisJob entity.
// If the CommisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommisJobMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *CommisJobMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[commisjob.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *CommisJobMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[commisjob.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *CommisJobMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, commisjob.FieldConfig)
}

// SetError sets the "error" field.
func (m *CommisJobMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *CommisJobMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the CommisJob entity.
// If the CommisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommisJobMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *CommisJobMutation) ClearError() {
	m.error = nil
	m.clearedFields[commisjob.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *CommisJobMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[commisjob.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *CommisJobMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, commisjob.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *CommisJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommisJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CommisJob entity.
// If the CommisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommisJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommisJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *CommisJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CommisJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the CommisJob entity.
// If the CommisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommisJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *CommisJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[commisjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *CommisJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[commisjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CommisJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, commisjob.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *CommisJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *CommisJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the CommisJob entity.
// If the CommisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommisJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *CommisJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[commisjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *CommisJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[commisjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *CommisJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, commisjob.FieldFinishedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *CommisJobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *CommisJobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the CommisJob entity.
// If the CommisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommisJobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *CommisJobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[commisjob.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *CommisJobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[commisjob.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *CommisJobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, commisjob.FieldLastHeartbeatAt)
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *CommisJobMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[commisjob.FieldOwnerID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *CommisJobMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *CommisJobMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *CommisJobMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// ClearConciergeCourse clears the "concierge_course" edge to the Course entity.
func (m *CommisJobMutation) ClearConciergeCourse() {
	m.clearedconcierge_course = true
	m.clearedFields[commisjob.FieldConciergeCourseID] = struct{}{}
}

// ConciergeCourseCleared reports if the "concierge_course" edge to the Course entity was cleared.
func (m *CommisJobMutation) ConciergeCourseCleared() bool {
	return m.ConciergeCourseIDCleared() || m.clearedconcierge_course
}

// ConciergeCourseIDs returns the "concierge_course" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConciergeCourseID instead. It exists only for internal usage by the builders.
func (m *CommisJobMutation) ConciergeCourseIDs() (ids []int) {
	if id := m.concierge_course; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConciergeCourse resets all changes to the "concierge_course" edge.
func (m *CommisJobMutation) ResetConciergeCourse() {
	m.concierge_course = nil
	m.clearedconcierge_course = false
}

// Where appends a list predicates to the CommisJobMutation builder.
func (m *CommisJobMutation) Where(ps ...predicate.CommisJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommisJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommisJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CommisJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommisJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommisJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CommisJob).
func (m *CommisJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommisJobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.owner != nil {
		fields = append(fields, commisjob.FieldOwnerID)
	}
	if m.task != nil {
		fields = append(fields, commisjob.FieldTask)
	}
	if m.model != nil {
		fields = append(fields, commisjob.FieldModel)
	}
	if m.status != nil {
		fields = append(fields, commisjob.FieldStatus)
	}
	if m.concierge_course != nil {
		fields = append(fields, commisjob.FieldConciergeCourseID)
	}
	if m.tool_call_id != nil {
		fields = append(fields, commisjob.FieldToolCallID)
	}
	if m.commis_id != nil {
		fields = append(fields, commisjob.FieldCommisID)
	}
	if m._config != nil {
		fields = append(fields, commisjob.FieldConfig)
	}
	if m.error != nil {
		fields = append(fields, commisjob.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, commisjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, commisjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, commisjob.FieldFinishedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, commisjob.FieldLastHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommisJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case commisjob.FieldOwnerID:
		return m.OwnerID()
	case commisjob.FieldTask:
		return m.Task()
	case commisjob.FieldModel:
		return m.Model()
	case commisjob.FieldStatus:
		return m.Status()
	case commisjob.FieldConciergeCourseID:
		return m.ConciergeCourseID()
	case commisjob.FieldToolCallID:
		return m.ToolCallID()
	case commisjob.FieldCommisID:
		return m.CommisID()
	case commisjob.FieldConfig:
		return m.Config()
	case commisjob.FieldError:
		return m.Error()
	case commisjob.FieldCreatedAt:
		return m.CreatedAt()
	case commisjob.FieldStartedAt:
		return m.StartedAt()
	case commisjob.FieldFinishedAt:
		return m.FinishedAt()
	case commisjob.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommisJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case commisjob.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case commisjob.FieldTask:
		return m.OldTask(ctx)
	case commisjob.FieldModel:
		return m.OldModel(ctx)
	case commisjob.FieldStatus:
		return m.OldStatus(ctx)
	case commisjob.FieldConciergeCourseID:
		return m.OldConciergeCourseID(ctx)
	case commisjob.FieldToolCallID:
		return m.OldToolCallID(ctx)
	case commisjob.FieldCommisID:
		return m.OldCommisID(ctx)
	case commisjob.FieldConfig:
		return m.OldConfig(ctx)
	case commisjob.FieldError:
		return m.OldError(ctx)
	case commisjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case commisjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case commisjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case commisjob.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown CommisJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommisJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case commisjob.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case commisjob.FieldTask:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTask(v)
		return nil
	case commisjob.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case commisjob.FieldStatus:
		v, ok := value.(commisjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case commisjob.FieldConciergeCourseID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConciergeCourseID(v)
		return nil
	case commisjob.FieldToolCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCallID(v)
		return nil
	case commisjob.FieldCommisID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommisID(v)
		return nil
	case commisjob.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case commisjob.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case commisjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case commisjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case commisjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case commisjob.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown CommisJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommisJobMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommisJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommisJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CommisJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommisJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(commisjob.FieldConciergeCourseID) {
		fields = append(fields, commisjob.FieldConciergeCourseID)
	}
	if m.FieldCleared(commisjob.FieldToolCallID) {
		fields = append(fields, commisjob.FieldToolCallID)
	}
	if m.FieldCleared(commisjob.FieldConfig) {
		fields = append(fields, commisjob.FieldConfig)
	}
	if m.FieldCleared(commisjob.FieldError) {
		fields = append(fields, commisjob.FieldError)
	}
	if m.FieldCleared(commisjob.FieldStartedAt) {
		fields = append(fields, commisjob.FieldStartedAt)
	}
	if m.FieldCleared(commisjob.FieldFinishedAt) {
		fields = append(fields, commisjob.FieldFinishedAt)
	}
	if m.FieldCleared(commisjob.FieldLastHeartbeatAt) {
		fields = append(fields, commisjob.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommisJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommisJobMutation) ClearField(name string) error {
	switch name {
	case commisjob.FieldConciergeCourseID:
		m.ClearConciergeCourseID()
		return nil
	case commisjob.FieldToolCallID:
		m.ClearToolCallID()
		return nil
	case commisjob.FieldConfig:
		m.ClearConfig()
		return nil
	case commisjob.FieldError:
		m.ClearError()
		return nil
	case commisjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case commisjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case commisjob.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown CommisJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommisJobMutation) ResetField(name string) error {
	switch name {
	case commisjob.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case commisjob.FieldTask:
		m.ResetTask()
		return nil
	case commisjob.FieldModel:
		m.ResetModel()
		return nil
	case commisjob.FieldStatus:
		m.ResetStatus()
		return nil
	case commisjob.FieldConciergeCourseID:
		m.ResetConciergeCourseID()
		return nil
	case commisjob.FieldToolCallID:
		m.ResetToolCallID()
		return nil
	case commisjob.FieldCommisID:
		m.ResetCommisID()
		return nil
	case commisjob.FieldConfig:
		m.ResetConfig()
		return nil
	case commisjob.FieldError:
		m.ResetError()
		return nil
	case commisjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case commisjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case commisjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case commisjob.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown CommisJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommisJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.owner != nil {
		edges = append(edges, commisjob.EdgeOwner)
	}
	if m.concierge_course != nil {
		edges = append(edges, commisjob.EdgeConciergeCourse)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommisJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case commisjob.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case commisjob.EdgeConciergeCourse:
		if id := m.concierge_course; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommisJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommisJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommisJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedowner {
		edges = append(edges, commisjob.EdgeOwner)
	}
	if m.clearedconcierge_course {
		edges = append(edges, commisjob.EdgeConciergeCourse)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommisJobMutation) EdgeCleared(name string) bool {
	switch name {
	case commisjob.EdgeOwner:
		return m.clearedowner
	case commisjob.EdgeConciergeCourse:
		return m.clearedconcierge_course
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommisJobMutation) ClearEdge(name string) error {
	switch name {
	case commisjob.EdgeOwner:
		m.ClearOwner()
		return nil
	case commisjob.EdgeConciergeCourse:
		m.ClearConciergeCourse()
		return nil
	}
	return fmt.Errorf("unknown CommisJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommisJobMutation) ResetEdge(name string) error {
	switch name {
	case commisjob.EdgeOwner:
		m.ResetOwner()
		return nil
	case commisjob.EdgeConciergeCourse:
		m.ResetConciergeCourse()
		return nil
	}
	return fmt.Errorf("unknown CommisJob edge %s", name)
}

// CourseMutation represents an operation that mutates the Course nodes in the graph.
type CourseMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int
	thread_id                    *int
	addthread_id                 *int
	status                       *course.Status
	trigger                      *course.Trigger
	correlation_id               *string
	continuation_of_course_id    *int
	addcontinuation_of_course_id *int
	assistant_message_id         *int
	addassistant_message_id      *int
	summary                      *string
	error                        *string
	created_at                   *time.Time
	started_at                   *time.Time
	finished_at                  *time.Time
	clearedFields                map[string]struct{}
	fiche                        *int
	clearedfiche                 bool
	owner                        *int
	clearedowner                 bool
	commis_jobs                  map[int]struct{}
	removedcommis_jobs           map[int]struct{}
	clearedcommis_jobs           bool
	events                       map[int]struct{}
	removedevents                map[int]struct{}
	clearedevents                bool
	done                         bool
	oldValue                     func(context.Context) (*Course, error)
	predicates                   []predicate.Course
}

var _ ent.Mutation = (*CourseMutation)(nil)

// courseOption allows management of the mutation configuration using functional options.
type courseOption func(*CourseMutation)

// newCourseMutation creates new mutation for the Course entity.
func newCourseMutation(c config, op Op, opts ...courseOption) *CourseMutation {
	m := &CourseMutation{
		config:        c,
		op:            op,
		typ:           TypeCourse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseID sets the ID field of the mutation.
func withCourseID(id int) courseOption {
	return func(m *CourseMutation) {
		var (
			err   error
			once  sync.Once
			value *Course
		)
		m.oldValue = func(ctx context.Context) (*Course, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Course.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourse sets the old Course of the mutation.
func withCourse(node *Course) courseOption {
	return func(m *CourseMutation) {
		m.oldValue = func(context.Context) (*Course, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Course.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFicheID sets the "fiche_id" field.
func (m *CourseMutation) SetFicheID(i int) {
	m.fiche = &i
}

// FicheID returns the value of the "fiche_id" field in the mutation.
func (m *CourseMutation) FicheID() (r int, exists bool) {
	v := m.fiche
	if v == nil {
		return
	}
	return *v, true
}

// OldFicheID returns the old "fiche_id" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldFicheID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFicheID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFicheID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFicheID: %w", err)
	}
	return oldValue.FicheID, nil
}

// ResetFicheID resets all changes to the "fiche_id" field.
func (m *CourseMutation) ResetFicheID() {
	m.fiche = nil
}

// SetThreadID sets the "thread_id" field.
func (m *CourseMutation) SetThreadID(i int) {
	m.thread_id = &i
	m.addthread_id = nil
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *CourseMutation) ThreadID() (r int, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldThreadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// AddThreadID adds i to the "thread_id" field.
func (m *CourseMutation) AddThreadID(i int) {
	if m.addthread_id != nil {
		*m.addthread_id += i
	} else {
		m.addthread_id = &i
	}
}

// AddedThreadID returns the value that was added to the "thread_id" field in this mutation.
func (m *CourseMutation) AddedThreadID() (r int, exists bool) {
	v := m.addthread_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *CourseMutation) ResetThreadID() {
	m.thread_id = nil
	m.addthread_id = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *CourseMutation) SetOwnerID(i int) {
	m.owner = &i
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *CourseMutation) OwnerID() (r int, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldOwnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *CourseMutation) ResetOwnerID() {
	m.owner = nil
}

// SetStatus sets the "status" field.
func (m *CourseMutation) SetStatus(c course.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CourseMutation) Status() (r course.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldStatus(ctx context.Context) (v course.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CourseMutation) ResetStatus() {
	m.status = nil
}

// SetTrigger sets the "trigger" field.
func (m *CourseMutation) SetTrigger(c course.Trigger) {
	m.trigger = &c
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *CourseMutation) Trigger() (r course.Trigger, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldTrigger(ctx context.Context) (v course.Trigger, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *CourseMutation) ResetTrigger() {
	m.trigger = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *CourseMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *CourseMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *CourseMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetContinuationOfCourseID sets the "continuation_of_course_id" field.
func (m *CourseMutation) SetContinuationOfCourseID(i int) {
	m.continuation_of_course_id = &i
	m.addcontinuation_of_course_id = nil
}

// ContinuationOfCourseID returns the value of the "continuation_of_course_id" field in the mutation.
func (m *CourseMutation) ContinuationOfCourseID() (r int, exists bool) {
	v := m.continuation_of_course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContinuationOfCourseID returns the old "continuation_of_course_id" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldContinuationOfCourseID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContinuationOfCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContinuationOfCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContinuationOfCourseID: %w", err)
	}
	return oldValue.ContinuationOfCourseID, nil
}

// AddContinuationOfCourseID adds i to the "continuation_of_course_id" field.
func (m *CourseMutation) AddContinuationOfCourseID(i int) {
	if m.addcontinuation_of_course_id != nil {
		*m.addcontinuation_of_course_id += i
	} else {
		m.addcontinuation_of_course_id = &i
	}
}

// AddedContinuationOfCourseID returns the value that was added to the "continuation_of_course_id" field in this mutation.
func (m *CourseMutation) AddedContinuationOfCourseID() (r int, exists bool) {
	v := m.addcontinuation_of_course_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearContinuationOfCourseID clears the value of the "continuation_of_course_id" field.
func (m *CourseMutation) ClearContinuationOfCourseID() {
	m.continuation_of_course_id = nil
	m.addcontinuation_of_course_id = nil
	m.clearedFields[course.FieldContinuationOfCourseID] = struct{}{}
}

// ContinuationOfCourseIDCleared returns if the "continuation_of_course_id" field was cleared in this mutation.
func (m *CourseMutation) ContinuationOfCourseIDCleared() bool {
	_, ok := m.clearedFields[course.FieldContinuationOfCourseID]
	return ok
}

// ResetContinuationOfCourseID resets all changes to the "continuation_of_course_id" field.
func (m *CourseMutation) ResetContinuationOfCourseID() {
	m.continuation_of_course_id = nil
	m.addcontinuation_of_course_id = nil
	delete(m.clearedFields, course.FieldContinuationOfCourseID)
}

// SetAssistantMessageID sets the "assistant_message_id" field.
func (m *CourseMutation) SetAssistantMessageID(i int) {
	m.assistant_message_id = &i
	m.addassistant_message_id = nil
}

// AssistantMessageID returns the value of the "assistant_message_id" field in the mutation.
func (m *CourseMutation) AssistantMessageID() (r int, exists bool) {
	v := m.assistant_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssistantMessageID returns the old "assistant_message_id" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldAssistantMessageID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssistantMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssistantMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssistantMessageID: %w", err)
	}
	return oldValue.AssistantMessageID, nil
}

// AddAssistantMessageID adds i to the "assistant_message_id" field.
func (m *CourseMutation) AddAssistantMessageID(i int) {
	if m.addassistant_message_id != nil {
		*m.addassistant_message_id += i
	} else {
		m.addassistant_message_id = &i
	}
}

// AddedAssistantMessageID returns the value that was added to the "assistant_message_id" field in this mutation.
func (m *CourseMutation) AddedAssistantMessageID() (r int, exists bool) {
	v := m.addassistant_message_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearAssistantMessageID clears the value of the "assistant_message_id" field.
func (m *CourseMutation) ClearAssistantMessageID() {
	m.assistant_message_id = nil
	m.addassistant_message_id = nil
	m.clearedFields[course.FieldAssistantMessageID] = struct{}{}
}

// AssistantMessageIDCleared returns if the "assistant_message_id" field was cleared in this mutation.
func (m *CourseMutation) AssistantMessageIDCleared() bool {
	_, ok := m.clearedFields[course.FieldAssistantMessageID]
	return ok
}

// ResetAssistantMessageID resets all changes to the "assistant_message_id" field.
func (m *CourseMutation) ResetAssistantMessageID() {
	m.assistant_message_id = nil
	m.addassistant_message_id = nil
	delete(m.clearedFields, course.FieldAssistantMessageID)
}

// SetSummary sets the "summary" field.
func (m *CourseMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *CourseMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *CourseMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[course.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *CourseMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[course.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *CourseMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, course.FieldSummary)
}

// SetError sets the "error" field.
func (m *CourseMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *CourseMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *CourseMutation) ClearError() {
	m.error = nil
	m.clearedFields[course.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *CourseMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[course.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *CourseMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, course.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *CourseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CourseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CourseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *CourseMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CourseMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *CourseMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[course.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *CourseMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[course.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CourseMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, course.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *CourseMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *CourseMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *CourseMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[course.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *CourseMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[course.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *CourseMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, course.FieldFinishedAt)
}

// ClearFiche clears the "fiche" edge to the Fiche entity.
func (m *CourseMutation) ClearFiche() {
	m.clearedfiche = true
	m.clearedFields[course.FieldFicheID] = struct{}{}
}

// FicheCleared reports if the "fiche" edge to the Fiche entity was cleared.
func (m *CourseMutation) FicheCleared() bool {
	return m.clearedfiche
}

// FicheIDs returns the "fiche" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FicheID instead. It exists only for internal usage by the builders.
func (m *CourseMutation) FicheIDs() (ids []int) {
	if id := m.fiche; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFiche resets all changes to the "fiche" edge.
func (m *CourseMutation) ResetFiche() {
	m.fiche = nil
	m.clearedfiche = false
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *CourseMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[course.FieldOwnerID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *CourseMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *CourseMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *CourseMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// AddCommisJobIDs adds the "commis_jobs" edge to the CommisJob entity by ids.
func (m *CourseMutation) AddCommisJobIDs(ids ...int) {
	if m.commis_jobs == nil {
		m.commis_jobs = make(map[int]struct{})
	}
	for i := range ids {
		m.commis_jobs[ids[i]] = struct{}{}
	}
}

// ClearCommisJobs clears the "commis_jobs" edge to the CommisJob entity.
func (m *CourseMutation) ClearCommisJobs() {
	m.clearedcommis_jobs = true
}

// CommisJobsCleared reports if the "commis_jobs" edge to the CommisJob entity was cleared.
func (m *CourseMutation) CommisJobsCleared() bool {
	return m.clearedcommis_jobs
}

// RemoveCommisJobIDs removes the "commis_jobs" edge to the CommisJob entity by IDs.
func (m *CourseMutation) RemoveCommisJobIDs(ids ...int) {
	if m.removedcommis_jobs == nil {
		m.removedcommis_jobs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.commis_jobs, ids[i])
		m.removedcommis_jobs[ids[i]] = struct{}{}
	}
}

// RemovedCommisJobs returns the removed IDs of the "commis_jobs" edge to the CommisJob entity.
func (m *CourseMutation) RemovedCommisJobsIDs() (ids []int) {
	for id := range m.removedcommis_jobs {
		ids = append(ids, id)
	}
	return
}

// CommisJobsIDs returns the "commis_jobs" edge IDs in the mutation.
func (m *CourseMutation) CommisJobsIDs() (ids []int) {
	for id := range m.commis_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetCommisJobs resets all changes to the "commis_jobs" edge.
func (m *CourseMutation) ResetCommisJobs() {
	m.commis_jobs = nil
	m.clearedcommis_jobs = false
	m.removedcommis_jobs = nil
}

// AddEventIDs adds the "events" edge to the CourseEvent entity by ids.
func (m *CourseMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the CourseEvent entity.
func (m *CourseMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the CourseEvent entity was cleared.
func (m *CourseMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the CourseEvent entity by IDs.
func (m *CourseMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the CourseEvent entity.
func (m *CourseMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *CourseMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *CourseMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the CourseMutation builder.
func (m *CourseMutation) Where(ps ...predicate.Course) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Course, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Course).
func (m *CourseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.fiche != nil {
		fields = append(fields, course.FieldFicheID)
	}
	if m.thread_id != nil {
		fields = append(fields, course.FieldThreadID)
	}
	if m.owner != nil {
		fields = append(fields, course.FieldOwnerID)
	}
	if m.status != nil {
		fields = append(fields, course.FieldStatus)
	}
	if m.trigger != nil {
		fields = append(fields, course.FieldTrigger)
	}
	if m.correlation_id != nil {
		fields = append(fields, course.FieldCorrelationID)
	}
	if m.continuation_of_course_id != nil {
		fields = append(fields, course.FieldContinuationOfCourseID)
	}
	if m.assistant_message_id != nil {
		fields = append(fields, course.FieldAssistantMessageID)
	}
	if m.summary != nil {
		fields = append(fields, course.FieldSummary)
	}
	if m.error != nil {
		fields = append(fields, course.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, course.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, course.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, course.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case course.FieldFicheID:
		return m.FicheID()
	case course.FieldThreadID:
		return m.ThreadID()
	case course.FieldOwnerID:
		return m.OwnerID()
	case course.FieldStatus:
		return m.Status()
	case course.FieldTrigger:
		return m.Trigger()
	case course.FieldCorrelationID:
		return m.CorrelationID()
	case course.FieldContinuationOfCourseID:
		return m.ContinuationOfCourseID()
	case course.FieldAssistantMessageID:
		return m.AssistantMessageID()
	case course.FieldSummary:
		return m.Summary()
	case course.FieldError:
		return m.Error()
	case course.FieldCreatedAt:
		return m.CreatedAt()
	case course.FieldStartedAt:
		return m.StartedAt()
	case course.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case course.FieldFicheID:
		return m.OldFicheID(ctx)
	case course.FieldThreadID:
		return m.OldThreadID(ctx)
	case course.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case course.FieldStatus:
		return m.OldStatus(ctx)
	case course.FieldTrigger:
		return m.OldTrigger(ctx)
	case course.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case course.FieldContinuationOfCourseID:
		return m.OldContinuationOfCourseID(ctx)
	case course.FieldAssistantMessageID:
		return m.OldAssistantMessageID(ctx)
	case course.FieldSummary:
		return m.OldSummary(ctx)
	case course.FieldError:
		return m.OldError(ctx)
	case course.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case course.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case course.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Course field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case course.FieldFicheID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFicheID(v)
		return nil
	case course.FieldThreadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case course.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case course.FieldStatus:
		v, ok := value.(course.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case course.FieldTrigger:
		v, ok := value.(course.Trigger)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case course.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case course.FieldContinuationOfCourseID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContinuationOfCourseID(v)
		return nil
	case course.FieldAssistantMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssistantMessageID(v)
		return nil
	case course.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case course.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case course.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case course.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case course.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Course field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseMutation) AddedFields() []string {
	var fields []string
	if m.addthread_id != nil {
		fields = append(fields, course.FieldThreadID)
	}
	if m.addcontinuation_of_course_id != nil {
		fields = append(fields, course.FieldContinuationOfCourseID)
	}
	if m.addassistant_message_id != nil {
		fields = append(fields, course.FieldAssistantMessageID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case course.FieldThreadID:
		return m.AddedThreadID()
	case course.FieldContinuationOfCourseID:
		return m.AddedContinuationOfCourseID()
	case course.FieldAssistantMessageID:
		return m.AddedAssistantMessageID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case course.FieldThreadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThreadID(v)
		return nil
	case course.FieldContinuationOfCourseID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContinuationOfCourseID(v)
		return nil
	case course.FieldAssistantMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssistantMessageID(v)
		return nil
	}
	return fmt.Errorf("unknown Course numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(course.FieldContinuationOfCourseID) {
		fields = append(fields, course.FieldContinuationOfCourseID)
	}
	if m.FieldCleared(course.FieldAssistantMessageID) {
		fields = append(fields, course.FieldAssistantMessageID)
	}
	if m.FieldCleared(course.FieldSummary) {
		fields = append(fields, course.FieldSummary)
	}
	if m.FieldCleared(course.FieldError) {
		fields = append(fields, course.FieldError)
	}
	if m.FieldCleared(course.FieldStartedAt) {
		fields = append(fields, course.FieldStartedAt)
	}
	if m.FieldCleared(course.FieldFinishedAt) {
		fields = append(fields, course.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseMutation) ClearField(name string) error {
	switch name {
	case course.FieldContinuationOfCourseID:
		m.ClearContinuationOfCourseID()
		return nil
	case course.FieldAssistantMessageID:
		m.ClearAssistantMessageID()
		return nil
	case course.FieldSummary:
		m.ClearSummary()
		return nil
	case course.FieldError:
		m.ClearError()
		return nil
	case course.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case course.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Course nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseMutation) ResetField(name string) error {
	switch name {
	case course.FieldFicheID:
		m.ResetFicheID()
		return nil
	case course.FieldThreadID:
		m.ResetThreadID()
		return nil
	case course.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case course.FieldStatus:
		m.ResetStatus()
		return nil
	case course.FieldTrigger:
		m.ResetTrigger()
		return nil
	case course.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case course.FieldContinuationOfCourseID:
		m.ResetContinuationOfCourseID()
		return nil
	case course.FieldAssistantMessageID:
		m.ResetAssistantMessageID()
		return nil
	case course.FieldSummary:
		m.ResetSummary()
		return nil
	case course.FieldError:
		m.ResetError()
		return nil
	case course.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case course.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case course.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Course field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.fiche != nil {
		edges = append(edges, course.EdgeFiche)
	}
	if m.owner != nil {
		edges = append(edges, course.EdgeOwner)
	}
	if m.commis_jobs != nil {
		edges = append(edges, course.EdgeCommisJobs)
	}
	if m.events != nil {
		edges = append(edges, course.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case course.EdgeFiche:
		if id := m.fiche; id != nil {
			return []ent.Value{*id}
		}
	case course.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case course.EdgeCommisJobs:
		ids := make([]ent.Value, 0, len(m.commis_jobs))
		for id := range m.commis_jobs {
			ids = append(ids, id)
		}
		return ids
	case course.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedcommis_jobs != nil {
		edges = append(edges, course.EdgeCommisJobs)
	}
	if m.removedevents != nil {
		edges = append(edges, course.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case course.EdgeCommisJobs:
		ids := make([]ent.Value, 0, len(m.removedcommis_jobs))
		for id := range m.removedcommis_jobs {
			ids = append(ids, id)
		}
		return ids
	case course.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedfiche {
		edges = append(edges, course.EdgeFiche)
	}
	if m.clearedowner {
		edges = append(edges, course.EdgeOwner)
	}
	if m.clearedcommis_jobs {
		edges = append(edges, course.EdgeCommisJobs)
	}
	if m.clearedevents {
		edges = append(edges, course.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseMutation) EdgeCleared(name string) bool {
	switch name {
	case course.EdgeFiche:
		return m.clearedfiche
	case course.EdgeOwner:
		return m.clearedowner
	case course.EdgeCommisJobs:
		return m.clearedcommis_jobs
	case course.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseMutation) ClearEdge(name string) error {
	switch name {
	case course.EdgeFiche:
		m.ClearFiche()
		return nil
	case course.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Course unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseMutation) ResetEdge(name string) error {
	switch name {
	case course.EdgeFiche:
		m.ResetFiche()
		return nil
	case course.EdgeOwner:
		m.ResetOwner()
		return nil
	case course.EdgeCommisJobs:
		m.ResetCommisJobs()
		return nil
	case course.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Course edge %s", name)
}

// CourseEventMutation represents an operation that mutates the CourseEvent nodes in the graph.
type CourseEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	event_type    *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	course        *int
	clearedcourse bool
	done          bool
	oldValue      func(context.Context) (*CourseEvent, error)
	predicates    []predicate.CourseEvent
}

var _ ent.Mutation = (*CourseEventMutation)(nil)

// courseeventOption allows management of the mutation configuration using functional options.
type courseeventOption func(*CourseEventMutation)

// newCourseEventMutation creates new mutation for the CourseEvent entity.
func newCourseEventMutation(c config, op Op, opts ...courseeventOption) *CourseEventMutation {
	m := &CourseEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCourseEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseEventID sets the ID field of the mutation.
func withCourseEventID(id int) courseeventOption {
	return func(m *CourseEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CourseEvent
		)
		m.oldValue = func(ctx context.Context) (*CourseEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CourseEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourseEvent sets the old CourseEvent of the mutation.
func withCourseEvent(node *CourseEvent) courseeventOption {
	return func(m *CourseEventMutation) {
		m.oldValue = func(context.Context) (*CourseEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CourseEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCourseID sets the "course_id" field.
func (m *CourseEventMutation) SetCourseID(i int) {
	m.course = &i
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *CourseEventMutation) CourseID() (r int, exists bool) {
	v := m.course
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the CourseEvent entity.
// If the CourseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEventMutation) OldCourseID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *CourseEventMutation) ResetCourseID() {
	m.course = nil
}

// SetEventType sets the "event_type" field.
func (m *CourseEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *CourseEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the CourseEvent entity.
// If the CourseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *CourseEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *CourseEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *CourseEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the CourseEvent entity.
// If the CourseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *CourseEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[courseevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *CourseEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[courseevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *CourseEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, courseevent.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *CourseEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CourseEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CourseEvent entity.
// If the CourseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CourseEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCourse clears the "course" edge to the Course entity.
func (m *CourseEventMutation) ClearCourse() {
	m.clearedcourse = true
	m.clearedFields[courseevent.FieldCourseID] = struct{}{}
}

// CourseCleared reports if the "course" edge to the Course entity was cleared.
func (m *CourseEventMutation) CourseCleared() bool {
	return m.clearedcourse
}

// CourseIDs returns the "course" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourseID instead. It exists only for internal usage by the builders.
func (m *CourseEventMutation) CourseIDs() (ids []int) {
	if id := m.course; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourse resets all changes to the "course" edge.
func (m *CourseEventMutation) ResetCourse() {
	m.course = nil
	m.clearedcourse = false
}

// Where appends a list predicates to the CourseEventMutation builder.
func (m *CourseEventMutation) Where(ps ...predicate.CourseEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CourseEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CourseEvent).
func (m *CourseEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.course != nil {
		fields = append(fields, courseevent.FieldCourseID)
	}
	if m.event_type != nil {
		fields = append(fields, courseevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, courseevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, courseevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case courseevent.FieldCourseID:
		return m.CourseID()
	case courseevent.FieldEventType:
		return m.EventType()
	case courseevent.FieldPayload:
		return m.Payload()
	case courseevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case courseevent.FieldCourseID:
		return m.OldCourseID(ctx)
	case courseevent.FieldEventType:
		return m.OldEventType(ctx)
	case courseevent.FieldPayload:
		return m.OldPayload(ctx)
	case courseevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CourseEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case courseevent.FieldCourseID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case courseevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case courseevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case courseevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CourseEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseEventMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CourseEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(courseevent.FieldPayload) {
		fields = append(fields, courseevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseEventMutation) ClearField(name string) error {
	switch name {
	case courseevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown CourseEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseEventMutation) ResetField(name string) error {
	switch name {
	case courseevent.FieldCourseID:
		m.ResetCourseID()
		return nil
	case courseevent.FieldEventType:
		m.ResetEventType()
		return nil
	case courseevent.FieldPayload:
		m.ResetPayload()
		return nil
	case courseevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CourseEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.course != nil {
		edges = append(edges, courseevent.EdgeCourse)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case courseevent.EdgeCourse:
		if id := m.course; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcourse {
		edges = append(edges, courseevent.EdgeCourse)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseEventMutation) EdgeCleared(name string) bool {
	switch name {
	case courseevent.EdgeCourse:
		return m.clearedcourse
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseEventMutation) ClearEdge(name string) error {
	switch name {
	case courseevent.EdgeCourse:
		m.ClearCourse()
		return nil
	}
	return fmt.Errorf("unknown CourseEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseEventMutation) ResetEdge(name string) error {
	switch name {
	case courseevent.EdgeCourse:
		m.ResetCourse()
		return nil
	}
	return fmt.Errorf("unknown CourseEvent edge %s", name)
}

// DeploymentMutation represents an operation that mutates the Deployment nodes in the graph.
type DeploymentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	image                *string
	status               *deployment.Status
	max_parallel         *int
	addmax_parallel      *int
	failure_threshold    *int
	addfailure_threshold *int
	failure_count        *int
	addfailure_count     *int
	error                *string
	created_at           *time.Time
	finished_at          *time.Time
	clearedFields        map[string]struct{}
	instances            map[int]struct{}
	removedinstances     map[int]struct{}
	clearedinstances     bool
	done                 bool
	oldValue             func(context.Context) (*Deployment, error)
	predicates           []predicate.Deployment
}

var _ ent.Mutation = (*DeploymentMutation)(nil)

// deploymentOption allows management of the mutation configuration using functional options.
type deploymentOption func(*DeploymentMutation)

// newDeploymentMutation creates new mutation for the Deployment entity.
func newDeploymentMutation(c config, op Op, opts ...deploymentOption) *DeploymentMutation {
	m := &DeploymentMutation{
		config:        c,
		op:            op,
		typ:           TypeDeployment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeploymentID sets the ID field of the mutation.
func withDeploymentID(id string) deploymentOption {
	return func(m *DeploymentMutation) {
		var (
			err   error
			once  sync.Once
			value *Deployment
		)
		m.oldValue = func(ctx context.Context) (*Deployment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Deployment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeployment sets the old Deployment of the mutation.
func withDeployment(node *Deployment) deploymentOption {
	return func(m *DeploymentMutation) {
		m.oldValue = func(context.Context) (*Deployment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeploymentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeploymentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Deployment entities.
func (m *DeploymentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeploymentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeploymentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Deployment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetImage sets the "image" field.
func (m *DeploymentMutation) SetImage(s string) {
	m.image = &s
}

// Image returns the value of the "image" field in the mutation.
func (m *DeploymentMutation) Image() (r string, exists bool) {
	v := m.image
	if v == nil {
		return
	}
	return *v, true
}

// OldImage returns the old "image" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldImage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImage: %w", err)
	}
	return oldValue.Image, nil
}

// ResetImage resets all changes to the "image" field.
func (m *DeploymentMutation) ResetImage() {
	m.image = nil
}

// SetStatus sets the "status" field.
func (m *DeploymentMutation) SetStatus(d deployment.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DeploymentMutation) Status() (r deployment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldStatus(ctx context.Context) (v deployment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DeploymentMutation) ResetStatus() {
	m.status = nil
}

// SetMaxParallel sets the "max_parallel" field.
func (m *DeploymentMutation) SetMaxParallel(i int) {
	m.max_parallel = &i
	m.addmax_parallel = nil
}

// MaxParallel returns the value of the "max_parallel" field in the mutation.
func (m *DeploymentMutation) MaxParallel() (r int, exists bool) {
	v := m.max_parallel
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxParallel returns the old "max_parallel" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldMaxParallel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxParallel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxParallel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxParallel: %w", err)
	}
	return oldValue.MaxParallel, nil
}

// AddMaxParallel adds i to the "max_parallel" field.
func (m *DeploymentMutation) AddMaxParallel(i int) {
	if m.addmax_parallel != nil {
		*m.addmax_parallel += i
	} else {
		m.addmax_parallel = &i
	}
}

// AddedMaxParallel returns the value that was added to the "max_parallel" field in this mutation.
func (m *DeploymentMutation) AddedMaxParallel() (r int, exists bool) {
	v := m.addmax_parallel
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxParallel resets all changes to the "max_parallel" field.
func (m *DeploymentMutation) ResetMaxParallel() {
	m.max_parallel = nil
	m.addmax_parallel = nil
}

// SetFailureThreshold sets the "failure_threshold" field.
func (m *DeploymentMutation) SetFailureThreshold(i int) {
	m.failure_threshold = &i
	m.addfailure_threshold = nil
}

// FailureThreshold returns the value of the "failure_threshold" field in the mutation.
func (m *DeploymentMutation) FailureThreshold() (r int, exists bool) {
	v := m.failure_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureThreshold returns the old "failure_threshold" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldFailureThreshold(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureThreshold: %w", err)
	}
	return oldValue.FailureThreshold, nil
}

// AddFailureThreshold adds i to the "failure_threshold" field.
func (m *DeploymentMutation) AddFailureThreshold(i int) {
	if m.addfailure_threshold != nil {
		*m.addfailure_threshold += i
	} else {
		m.addfailure_threshold = &i
	}
}

// AddedFailureThreshold returns the value that was added to the "failure_threshold" field in this mutation.
func (m *DeploymentMutation) AddedFailureThreshold() (r int, exists bool) {
	v := m.addfailure_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailureThreshold resets all changes to the "failure_threshold" field.
func (m *DeploymentMutation) ResetFailureThreshold() {
	m.failure_threshold = nil
	m.addfailure_threshold = nil
}

// SetFailureCount sets the "failure_count" field.
func (m *DeploymentMutation) SetFailureCount(i int) {
	m.failure_count = &i
	m.addfailure_count = nil
}

// FailureCount returns the value of the "failure_count" field in the mutation.
func (m *DeploymentMutation) FailureCount() (r int, exists bool) {
	v := m.failure_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureCount returns the old "failure_count" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldFailureCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureCount: %w", err)
	}
	return oldValue.FailureCount, nil
}

// AddFailureCount adds i to the "failure_count" field.
func (m *DeploymentMutation) AddFailureCount(i int) {
	if m.addfailure_count != nil {
		*m.addfailure_count += i
	} else {
		m.addfailure_count = &i
	}
}

// AddedFailureCount returns the value that was added to the "failure_count" field in this mutation.
func (m *DeploymentMutation) AddedFailureCount() (r int, exists bool) {
	v := m.addfailure_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailureCount resets all changes to the "failure_count" field.
func (m *DeploymentMutation) ResetFailureCount() {
	m.failure_count = nil
	m.addfailure_count = nil
}

// SetError sets the "error" field.
func (m *DeploymentMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *DeploymentMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *DeploymentMutation) ClearError() {
	m.error = nil
	m.clearedFields[deployment.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *DeploymentMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[deployment.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *DeploymentMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, deployment.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *DeploymentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeploymentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeploymentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *DeploymentMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *DeploymentMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *DeploymentMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[deployment.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *DeploymentMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[deployment.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *DeploymentMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, deployment.FieldFinishedAt)
}

// AddInstanceIDs adds the "instances" edge to the Instance entity by ids.
func (m *DeploymentMutation) AddInstanceIDs(ids ...int) {
	if m.instances == nil {
		m.instances = make(map[int]struct{})
	}
	for i := range ids {
		m.instances[ids[i]] = struct{}{}
	}
}

// ClearInstances clears the "instances" edge to the Instance entity.
func (m *DeploymentMutation) ClearInstances() {
	m.clearedinstances = true
}

// InstancesCleared reports if the "instances" edge to the Instance entity was cleared.
func (m *DeploymentMutation) InstancesCleared() bool {
	return m.clearedinstances
}

// RemoveInstanceIDs removes the "instances" edge to the Instance entity by IDs.
func (m *DeploymentMutation) RemoveInstanceIDs(ids ...int) {
	if m.removedinstances == nil {
		m.removedinstances = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.instances, ids[i])
		m.removedinstances[ids[i]] = struct{}{}
	}
}

// RemovedInstances returns the removed IDs of the "instances" edge to the Instance entity.
func (m *DeploymentMutation) RemovedInstancesIDs() (ids []int) {
	for id := range m.removedinstances {
		ids = append(ids, id)
	}
	return
}

// InstancesIDs returns the "instances" edge IDs in the mutation.
func (m *DeploymentMutation) InstancesIDs() (ids []int) {
	for id := range m.instances {
		ids = append(ids, id)
	}
	return
}

// ResetInstances resets all changes to the "instances" edge.
func (m *DeploymentMutation) ResetInstances() {
	m.instances = nil
	m.clearedinstances = false
	m.removedinstances = nil
}

// Where appends a list predicates to the DeploymentMutation builder.
func (m *DeploymentMutation) Where(ps ...predicate.Deployment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeploymentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeploymentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Deployment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeploymentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeploymentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Deployment).
func (m *DeploymentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeploymentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.image != nil {
		fields = append(fields, deployment.FieldImage)
	}
	if m.status != nil {
		fields = append(fields, deployment.FieldStatus)
	}
	if m.max_parallel != nil {
		fields = append(fields, deployment.FieldMaxParallel)
	}
	if m.failure_threshold != nil {
		fields = append(fields, deployment.FieldFailureThreshold)
	}
	if m.failure_count != nil {
		fields = append(fields, deployment.FieldFailureCount)
	}
	if m.error != nil {
		fields = append(fields, deployment.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, deployment.FieldCreatedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, deployment.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeploymentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deployment.FieldImage:
		return m.Image()
	case deployment.FieldStatus:
		return m.Status()
	case deployment.FieldMaxParallel:
		return m.MaxParallel()
	case deployment.FieldFailureThreshold:
		return m.FailureThreshold()
	case deployment.FieldFailureCount:
		return m.FailureCount()
	case deployment.FieldError:
		return m.Error()
	case deployment.FieldCreatedAt:
		return m.CreatedAt()
	case deployment.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeploymentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deployment.FieldImage:
		return m.OldImage(ctx)
	case deployment.FieldStatus:
		return m.OldStatus(ctx)
	case deployment.FieldMaxParallel:
		return m.OldMaxParallel(ctx)
	case deployment.FieldFailureThreshold:
		return m.OldFailureThreshold(ctx)
	case deployment.FieldFailureCount:
		return m.OldFailureCount(ctx)
	case deployment.FieldError:
		return m.OldError(ctx)
	case deployment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deployment.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Deployment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeploymentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deployment.FieldImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImage(v)
		return nil
	case deployment.FieldStatus:
		v, ok := value.(deployment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case deployment.FieldMaxParallel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxParallel(v)
		return nil
	case deployment.FieldFailureThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureThreshold(v)
		return nil
	case deployment.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureCount(v)
		return nil
	case deployment.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case deployment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deployment.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Deployment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeploymentMutation) AddedFields() []string {
	var fields []string
	if m.addmax_parallel != nil {
		fields = append(fields, deployment.FieldMaxParallel)
	}
	if m.addfailure_threshold != nil {
		fields = append(fields, deployment.FieldFailureThreshold)
	}
	if m.addfailure_count != nil {
		fields = append(fields, deployment.FieldFailureCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeploymentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deployment.FieldMaxParallel:
		return m.AddedMaxParallel()
	case deployment.FieldFailureThreshold:
		return m.AddedFailureThreshold()
	case deployment.FieldFailureCount:
		return m.AddedFailureCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeploymentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deployment.FieldMaxParallel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxParallel(v)
		return nil
	case deployment.FieldFailureThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailureThreshold(v)
		return nil
	case deployment.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailureCount(v)
		return nil
	}
	return fmt.Errorf("unknown Deployment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeploymentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deployment.FieldError) {
		fields = append(fields, deployment.FieldError)
	}
	if m.FieldCleared(deployment.FieldFinishedAt) {
		fields = append(fields, deployment.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeploymentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeploymentMutation) ClearField(name string) error {
	switch name {
	case deployment.FieldError:
		m.ClearError()
		return nil
	case deployment.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Deployment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeploymentMutation) ResetField(name string) error {
	switch name {
	case deployment.FieldImage:
		m.ResetImage()
		return nil
	case deployment.FieldStatus:
		m.ResetStatus()
		return nil
	case deployment.FieldMaxParallel:
		m.ResetMaxParallel()
		return nil
	case deployment.FieldFailureThreshold:
		m.ResetFailureThreshold()
		return nil
	case deployment.FieldFailureCount:
		m.ResetFailureCount()
		return nil
	case deployment.FieldError:
		m.ResetError()
		return nil
	case deployment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deployment.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Deployment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeploymentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.instances != nil {
		edges = append(edges, deployment.EdgeInstances)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeploymentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deployment.EdgeInstances:
		ids := make([]ent.Value, 0, len(m.instances))
		for id := range m.instances {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeploymentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedinstances != nil {
		edges = append(edges, deployment.EdgeInstances)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeploymentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case deployment.EdgeInstances:
		ids := make([]ent.Value, 0, len(m.removedinstances))
		for id := range m.removedinstances {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeploymentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstances {
		edges = append(edges, deployment.EdgeInstances)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeploymentMutation) EdgeCleared(name string) bool {
	switch name {
	case deployment.EdgeInstances:
		return m.clearedinstances
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeploymentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Deployment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeploymentMutation) ResetEdge(name string) error {
	switch name {
	case deployment.EdgeInstances:
		m.ResetInstances()
		return nil
	}
	return fmt.Errorf("unknown Deployment edge %s", name)
}

// EnrollTokenMutation represents an operation that mutates the EnrollToken nodes in the graph.
type EnrollTokenMutation struct {
	config
	op            Op
	typ           string
	id            *int
	token_hash    *string
	created_by    *int
	addcreated_by *int
	expires_at    *time.Time
	used_at       *time.Time
	runner_id     *int
	addrunner_id  *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*EnrollToken, error)
	predicates    []predicate.EnrollToken
}

var _ ent.Mutation = (*EnrollTokenMutation)(nil)

// enrolltokenOption allows management of the mutation configuration using functional options.
type enrolltokenOption func(*EnrollTokenMutation)

// newEnrollTokenMutation creates new mutation for the EnrollToken entity.
func newEnrollTokenMutation(c config, op Op, opts ...enrolltokenOption) *EnrollTokenMutation {
	m := &EnrollTokenMutation{
		config:        c,
		op:            op,
		typ:           TypeEnrollToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnrollTokenID sets the ID field of the mutation.
func withEnrollTokenID(id int) enrolltokenOption {
	return func(m *EnrollTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *EnrollToken
		)
		m.oldValue = func(ctx context.Context) (*EnrollToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EnrollToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnrollToken sets the old EnrollToken of the mutation.
func withEnrollToken(node *EnrollToken) enrolltokenOption {
	return func(m *EnrollTokenMutation) {
		m.oldValue = func(context.Context) (*EnrollToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnrollTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnrollTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnrollTokenMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnrollTokenMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EnrollToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTokenHash sets the "token_hash" field.
func (m *EnrollTokenMutation) SetTokenHash(s string) {
	m.token_hash = &s
}

// TokenHash returns the value of the "token_hash" field in the mutation.
func (m *EnrollTokenMutation) TokenHash() (r string, exists bool) {
	v := m.token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenHash returns the old "token_hash" field's value of the EnrollToken entity.
// If the EnrollToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollTokenMutation) OldTokenHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenHash: %w", err)
	}
	return oldValue.TokenHash, nil
}

// ResetTokenHash resets all changes to the "token_hash" field.
func (m *EnrollTokenMutation) ResetTokenHash() {
	m.token_hash = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *EnrollTokenMutation) SetCreatedBy(i int) {
	m.created_by = &i
	m.addcreated_by = nil
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *EnrollTokenMutation) CreatedBy() (r int, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the EnrollToken entity.
// If the EnrollToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollTokenMutation) OldCreatedBy(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// AddCreatedBy adds i to the "created_by" field.
func (m *EnrollTokenMutation) AddCreatedBy(i int) {
	if m.addcreated_by != nil {
		*m.addcreated_by += i
	} else {
		m.addcreated_by = &i
	}
}

// AddedCreatedBy returns the value that was added to the "created_by" field in this mutation.
func (m *EnrollTokenMutation) AddedCreatedBy() (r int, exists bool) {
	v := m.addcreated_by
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *EnrollTokenMutation) ResetCreatedBy() {
	m.created_by = nil
	m.addcreated_by = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *EnrollTokenMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *EnrollTokenMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the EnrollToken entity.
// If the EnrollToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollTokenMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *EnrollTokenMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetUsedAt sets the "used_at" field.
func (m *EnrollTokenMutation) SetUsedAt(t time.Time) {
	m.used_at = &t
}

// UsedAt returns the value of the "used_at" field in the mutation.
func (m *EnrollTokenMutation) UsedAt() (r time.Time, exists bool) {
	v := m.used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedAt returns the old "used_at" field's value of the EnrollToken entity.
// If the EnrollToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollTokenMutation) OldUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedAt: %w", err)
	}
	return oldValue.UsedAt, nil
}

// ClearUsedAt clears the value of the "used_at" field.
func (m *EnrollTokenMutation) ClearUsedAt() {
	m.used_at = nil
	m.clearedFields[enrolltoken.FieldUsedAt] = struct{}{}
}

// UsedAtCleared returns if the "used_at" field was cleared in this mutation.
func (m *EnrollTokenMutation) UsedAtCleared() bool {
	_, ok := m.clearedFields[enrolltoken.FieldUsedAt]
	return ok
}

// ResetUsedAt resets all changes to the "used_at" field.
func (m *EnrollTokenMutation) ResetUsedAt() {
	m.used_at = nil
	delete(m.clearedFields, enrolltoken.FieldUsedAt)
}

// SetRunnerID sets the "runner_id" field.
func (m *EnrollTokenMutation) SetRunnerID(i int) {
	m.runner_id = &i
	m.addrunner_id = nil
}

// RunnerID returns the value of the "runner_id" field in the mutation.
func (m *EnrollTokenMutation) RunnerID() (r int, exists bool) {
	v := m.runner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunnerID returns the old "runner_id" field's value of the EnrollToken entity.
// If the EnrollToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollTokenMutation) OldRunnerID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunnerID: %w", err)
	}
	return oldValue.RunnerID, nil
}

// AddRunnerID adds i to the "runner_id" field.
func (m *EnrollTokenMutation) AddRunnerID(i int) {
	if m.addrunner_id != nil {
		*m.addrunner_id += i
	} else {
		m.addrunner_id = &i
	}
}

// AddedRunnerID returns the value that was added to the "runner_id" field in this mutation.
func (m *EnrollTokenMutation) AddedRunnerID() (r int, exists bool) {
	v := m.addrunner_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearRunnerID clears the value of the "runner_id" field.
func (m *EnrollTokenMutation) ClearRunnerID() {
	m.runner_id = nil
	m.addrunner_id = nil
	m.clearedFields[enrolltoken.FieldRunnerID] = struct{}{}
}

// RunnerIDCleared returns if the "runner_id" field was cleared in this mutation.
func (m *EnrollTokenMutation) RunnerIDCleared() bool {
	_, ok := m.clearedFields[enrolltoken.FieldRunnerID]
	return ok
}

// ResetRunnerID resets all changes to the "runner_id" field.
func (m *EnrollTokenMutation) ResetRunnerID() {
	m.runner_id = nil
	m.addrunner_id = nil
	delete(m.clearedFields, enrolltoken.FieldRunnerID)
}

// SetCreatedAt sets the "created_at" field.
func (m *EnrollTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EnrollTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EnrollToken entity.
// If the EnrollToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EnrollTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EnrollTokenMutation builder.
func (m *EnrollTokenMutation) Where(ps ...predicate.EnrollToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnrollTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnrollTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EnrollToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnrollTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnrollTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EnrollToken).
func (m *EnrollTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnrollTokenMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.token_hash != nil {
		fields = append(fields, enrolltoken.FieldTokenHash)
	}
	if m.created_by != nil {
		fields = append(fields, enrolltoken.FieldCreatedBy)
	}
	if m.expires_at != nil {
		fields = append(fields, enrolltoken.FieldExpiresAt)
	}
	if m.used_at != nil {
		fields = append(fields, enrolltoken.FieldUsedAt)
	}
	if m.runner_id != nil {
		fields = append(fields, enrolltoken.FieldRunnerID)
	}
	if m.created_at != nil {
		fields = append(fields, enrolltoken.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnrollTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case enrolltoken.FieldTokenHash:
		return m.TokenHash()
	case enrolltoken.FieldCreatedBy:
		return m.CreatedBy()
	case enrolltoken.FieldExpiresAt:
		return m.ExpiresAt()
	case enrolltoken.FieldUsedAt:
		return m.UsedAt()
	case enrolltoken.FieldRunnerID:
		return m.RunnerID()
	case enrolltoken.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnrollTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case enrolltoken.FieldTokenHash:
		return m.OldTokenHash(ctx)
	case enrolltoken.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case enrolltoken.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case enrolltoken.FieldUsedAt:
		return m.OldUsedAt(ctx)
	case enrolltoken.FieldRunnerID:
		return m.OldRunnerID(ctx)
	case enrolltoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EnrollToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrollTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case enrolltoken.FieldTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenHash(v)
		return nil
	case enrolltoken.FieldCreatedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case enrolltoken.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case enrolltoken.FieldUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedAt(v)
		return nil
	case enrolltoken.FieldRunnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunnerID(v)
		return nil
	case enrolltoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EnrollToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnrollTokenMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_by != nil {
		fields = append(fields, enrolltoken.FieldCreatedBy)
	}
	if m.addrunner_id != nil {
		fields = append(fields, enrolltoken.FieldRunnerID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnrollTokenMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case enrolltoken.FieldCreatedBy:
		return m.AddedCreatedBy()
	case enrolltoken.FieldRunnerID:
		return m.AddedRunnerID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrollTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	case enrolltoken.FieldCreatedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedBy(v)
		return nil
	case enrolltoken.FieldRunnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRunnerID(v)
		return nil
	}
	return fmt.Errorf("unknown EnrollToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnrollTokenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(enrolltoken.FieldUsedAt) {
		fields = append(fields, enrolltoken.FieldUsedAt)
	}
	if m.FieldCleared(enrolltoken.FieldRunnerID) {
		fields = append(fields, enrolltoken.FieldRunnerID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnrollTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnrollTokenMutation) ClearField(name string) error {
	switch name {
	case enrolltoken.FieldUsedAt:
		m.ClearUsedAt()
		return nil
	case enrolltoken.FieldRunnerID:
		m.ClearRunnerID()
		return nil
	}
	return fmt.Errorf("unknown EnrollToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnrollTokenMutation) ResetField(name string) error {
	switch name {
	case enrolltoken.FieldTokenHash:
		m.ResetTokenHash()
		return nil
	case enrolltoken.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case enrolltoken.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case enrolltoken.FieldUsedAt:
		m.ResetUsedAt()
		return nil
	case enrolltoken.FieldRunnerID:
		m.ResetRunnerID()
		return nil
	case enrolltoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EnrollToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnrollTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnrollTokenMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnrollTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnrollTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnrollTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnrollTokenMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnrollTokenMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EnrollToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnrollTokenMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EnrollToken edge %s", name)
}

// FicheMutation represents an operation that mutates the Fiche nodes in the graph.
type FicheMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	name                *string
	system_instructions *string
	task_instructions   *string
	model               *string
	allowed_tools       *[]string
	appendallowed_tools []string
	status              *fiche.Status
	last_error          *string
	last_run_at         *time.Time
	next_run_at         *time.Time
	is_concierge        *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	owner               *int
	clearedowner        bool
	threads             map[int]struct{}
	removedthreads      map[int]struct{}
	clearedthreads      bool
	courses             map[int]struct{}
	removedcourses      map[int]struct{}
	clearedcourses      bool
	done                bool
	oldValue            func(context.Context) (*Fiche, error)
	predicates          []predicate.Fiche
}

var _ ent.Mutation = (*FicheMutation)(nil)

// ficheOption allows management of the mutation configuration using functional options.
type ficheOption func(*FicheMutation)

// newFicheMutation creates new mutation for the Fiche entity.
func newFicheMutation(c config, op Op, opts ...ficheOption) *FicheMutation {
	m := &FicheMutation{
		config:        c,
		op:            op,
		typ:           TypeFiche,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFicheID sets the ID field of the mutation.
func withFicheID(id int) ficheOption {
	return func(m *FicheMutation) {
		var (
			err   error
			once  sync.Once
			value *Fiche
		)
		m.oldValue = func(ctx context.Context) (*Fiche, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Fiche.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFiche sets the old Fiche of the mutation.
func withFiche(node *Fiche) ficheOption {
	return func(m *FicheMutation) {
		m.oldValue = func(context.Context) (*Fiche, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FicheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FicheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FicheMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FicheMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Fiche.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *FicheMutation) SetOwnerID(i int) {
	m.owner = &i
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *FicheMutation) OwnerID() (r int, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Fiche entity.
// If the Fiche object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FicheMutation) OldOwnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *FicheMutation) ResetOwnerID() {
	m.owner = nil
}

// SetName sets the "name" field.
func (m *FicheMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FicheMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Fiche entity.
// If the Fiche object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FicheMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FicheMutation) ResetName() {
	m.name = nil
}

// SetSystemInstructions sets the "system_instructions" field.
func (m *FicheMutation) SetSystemInstructions(s string) {
	m.system_instructions = &s
}

// SystemInstructions returns the value of the "system_instructions" field in the mutation.
func (m *FicheMutation) SystemInstructions() (r string, exists bool) {
	v := m.system_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemInstructions returns the old "system_instructions" field's value of the Fiche entity.
// If the Fiche object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FicheMutation) OldSystemInstructions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemInstructions: %w", err)
	}
	return oldValue.SystemInstructions, nil
}

// ResetSystemInstructions resets all changes to the "system_instructions" field.
func (m *FicheMutation) ResetSystemInstructions() {
	m.system_instructions = nil
}

// SetTaskInstructions sets the "task_instructions" field.
func (m *FicheMutation) SetTaskInstructions(s string) {
	m.task_instructions = &s
}

// TaskInstructions returns the value of the "task_instructions" field in the mutation.
func (m *FicheMutation) TaskInstructions() (r string, exists bool) {
	v := m.task_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskInstructions returns the old "task_instructions" field's value of the Fiche entity.
// If the Fiche object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FicheMutation) OldTaskInstructions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskInstructions: %w", err)
	}
	return oldValue.TaskInstructions, nil
}

// ClearTaskInstructions clears the value of the "task_instructions" field.
func (m *FicheMutation) ClearTaskInstructions() {
	m.task_instructions = nil
	m.clearedFields[fiche.FieldTaskInstructions] = struct{}{}
}

// TaskInstructionsCleared returns if the "task_instructions" field was cleared in this mutation.
func (m *FicheMutation) TaskInstructionsCleared() bool {
	_, ok := m.clearedFields[fiche.FieldTaskInstructions]
	return ok
}

// ResetTaskInstructions resets all changes to the "task_instructions" field.
func (m *FicheMutation) ResetTaskInstructions() {
	m.task_instructions = nil
	delete(m.clearedFields, fiche.FieldTaskInstructions)
}

// SetModel sets the "model" field.
func (m *FicheMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *FicheMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Fiche entity.
// If the Fiche object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FicheMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *FicheMutation) ResetModel() {
	m.model = nil
}

// SetAllowedTools sets the "allowed_tools" field.
func (m *FicheMutation) SetAllowedTools(s []string) {
	m.allowed_tools = &s
	m.appendallowed_tools = nil
}

// AllowedTools returns the value of the "allowed_tools" field in the mutation.
func (m *FicheMutation) AllowedTools() (r []string, exists bool) {
	v := m.allowed_tools
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedTools returns the old "allowed_tools" field's value of the Fiche entity.
// If the Fiche object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FicheMutation) OldAllowedTools(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedTools: %w", err)
	}
	return oldValue.AllowedTools, nil
}

// AppendAllowedTools adds s to the "allowed_tools" field.
func (m *FicheMutation) AppendAllowedTools(s []string) {
	m.appendallowed_tools = append(m.appendallowed_tools, s...)
}

// AppendedAllowedTools returns the list of values that were appended to the "allowed_tools" field in this mutation.
func (m *FicheMutation) AppendedAllowedTools() ([]string, bool) {
	if len(m.appendallowed_tools) == 0 {
		return nil, false
	}
	return m.appendallowed_tools, true
}

// ClearAllowedTools clears the value of the "allowed_tools" field.
func (m *FicheMutation) ClearAllowedTools() {
	m.allowed_tools = nil
	m.appendallowed_tools = nil
	m.clearedFields[fiche.FieldAllowedTools] = struct{}{}
}

// AllowedToolsCleared returns if the "allowed_tools" field was cleared in this mutation.
func (m *FicheMutation) AllowedToolsCleared() bool {
	_, ok := m.clearedFields[fiche.FieldAllowedTools]
	return ok
}

// ResetAllowedTools resets all changes to the "allowed_tools" field.
func (m *FicheMutation) ResetAllowedTools() {
	m.allowed_tools = nil
	m.appendallowed_tools = nil
	delete(m.clearedFields, fiche.FieldAllowedTools)
}

// SetStatus sets the "status" field.
func (m *FicheMutation) SetStatus(f fiche.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FicheMutation) Status() (r fiche.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Fiche entity.
// If the Fiche object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FicheMutation) OldStatus(ctx context.Context) (v fiche.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FicheMutation) ResetStatus() {
	m.status = nil
}

// SetLastError sets the "last_error" field.
func (m *FicheMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *FicheMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Fiche entity.
// If the Fiche object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FicheMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *FicheMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[fiche.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *FicheMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[fiche.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *FicheMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, fiche.FieldLastError)
}

// SetLastRunAt sets the "last_run_at" field.
func (m *FicheMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *FicheMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the Fiche entity.
// If the Fiche object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FicheMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *FicheMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[fiche.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *FicheMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[fiche.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *FicheMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, fiche.FieldLastRunAt)
}

// SetNextRunAt sets the "next_run_at" field.
func (m *FicheMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *FicheMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the Fiche entity.
// If the Fiche object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FicheMutation) OldNextRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (m *FicheMutation) ClearNextRunAt() {
	m.next_run_at = nil
	m.clearedFields[fiche.FieldNextRunAt] = struct{}{}
}

// NextRunAtCleared returns if the "next_run_at" field was cleared in this mutation.
func (m *FicheMutation) NextRunAtCleared() bool {
	_, ok := m.clearedFields[fiche.FieldNextRunAt]
	return ok
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *FicheMutation) ResetNextRunAt() {
	m.next_run_at = nil
	delete(m.clearedFields, fiche.FieldNextRunAt)
}

// SetIsConcierge sets the "is_concierge" field.
func (m *FicheMutation) SetIsConcierge(b bool) {
	m.is_concierge = &b
}

// IsConcierge returns the value of the "is_concierge" field in the mutation.
func (m *FicheMutation) IsConcierge() (r bool, exists bool) {
	v := m.is_concierge
	if v == nil {
		return
	}
	return *v, true
}

// OldIsConcierge returns the old "is_concierge" field's value of the Fiche entity.
// If the Fiche object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FicheMutation) OldIsConcierge(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsConcierge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsConcierge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsConcierge: %w", err)
	}
	return oldValue.IsConcierge, nil
}

// ResetIsConcierge resets all changes to the "is_concierge" field.
func (m *FicheMutation) ResetIsConcierge() {
	m.is_concierge = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FicheMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FicheMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Fiche entity.
// If the Fiche object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FicheMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FicheMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FicheMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FicheMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Fiche entity.
// If the Fiche object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FicheMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FicheMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *FicheMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[fiche.FieldOwnerID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *FicheMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *FicheMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *FicheMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// AddThreadIDs adds the "threads" edge to the Thread entity by ids.
func (m *FicheMutation) AddThreadIDs(ids ...int) {
	if m.threads == nil {
		m.threads = make(map[int]struct{})
	}
	for i := range ids {
		m.threads[ids[i]] = struct{}{}
	}
}

// ClearThreads clears the "threads" edge to the Thread entity.
func (m *FicheMutation) ClearThreads() {
	m.clearedthreads = true
}

// ThreadsCleared reports if the "threads" edge to the Thread entity was cleared.
func (m *FicheMutation) ThreadsCleared() bool {
	return m.clearedthreads
}

// RemoveThreadIDs removes the "threads" edge to the Thread entity by IDs.
func (m *FicheMutation) RemoveThreadIDs(ids ...int) {
	if m.removedthreads == nil {
		m.removedthreads = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.threads, ids[i])
		m.removedthreads[ids[i]] = struct{}{}
	}
}

// RemovedThreads returns the removed IDs of the "threads" edge to the Thread entity.
func (m *FicheMutation) RemovedThreadsIDs() (ids []int) {
	for id := range m.removedthreads {
		ids = append(ids, id)
	}
	return
}

// ThreadsIDs returns the "threads" edge IDs in the mutation.
func (m *FicheMutation) ThreadsIDs() (ids []int) {
	for id := range m.threads {
		ids = append(ids, id)
	}
	return
}

// ResetThreads resets all changes to the "threads" edge.
func (m *FicheMutation) ResetThreads() {
	m.threads = nil
	m.clearedthreads = false
	m.removedthreads = nil
}

// AddCourseIDs adds the "courses" edge to the Course entity by ids.
func (m *FicheMutation) AddCourseIDs(ids ...int) {
	if m.courses == nil {
		m.courses = make(map[int]struct{})
	}
	for i := range ids {
		m.courses[ids[i]] = struct{}{}
	}
}

// ClearCourses clears the "courses" edge to the Course entity.
func (m *FicheMutation) ClearCourses() {
	m.clearedcourses = true
}

// CoursesCleared reports if the "courses" edge to the Course entity was cleared.
func (m *FicheMutation) CoursesCleared() bool {
	return m.clearedcourses
}

// RemoveCourseIDs removes the "courses" edge to the Course entity by IDs.
func (m *FicheMutation) RemoveCourseIDs(ids ...int) {
	if m.removedcourses == nil {
		m.removedcourses = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.courses, ids[i])
		m.removedcourses[ids[i]] = struct{}{}
	}
}

// RemovedCourses returns the removed IDs of the "courses" edge to the Course entity.
func (m *FicheMutation) RemovedCoursesIDs() (ids []int) {
	for id := range m.removedcourses {
		ids = append(ids, id)
	}
	return
}

// CoursesIDs returns the "courses" edge IDs in the mutation.
func (m *FicheMutation) CoursesIDs() (ids []int) {
	for id := range m.courses {
		ids = append(ids, id)
	}
	return
}

// ResetCourses resets all changes to the "courses" edge.
func (m *FicheMutation) ResetCourses() {
	m.courses = nil
	m.clearedcourses = false
	m.removedcourses = nil
}

// Where appends a list predicates to the FicheMutation builder.
func (m *FicheMutation) Where(ps ...predicate.Fiche) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FicheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FicheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Fiche, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FicheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FicheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Fiche).
func (m *FicheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FicheMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.owner != nil {
		fields = append(fields, fiche.FieldOwnerID)
	}
	if m.name != nil {
		fields = append(fields, fiche.FieldName)
	}
	if m.system_instructions != nil {
		fields = append(fields, fiche.FieldSystemInstructions)
	}
	if m.task_instructions != nil {
		fields = append(fields, fiche.FieldTaskInstructions)
	}
	if m.model != nil {
		fields = append(fields, fiche.FieldModel)
	}
	if m.allowed_tools != nil {
		fields = append(fields, fiche.FieldAllowedTools)
	}
	if m.status != nil {
		fields = append(fields, fiche.FieldStatus)
	}
	if m.last_error != nil {
		fields = append(fields, fiche.FieldLastError)
	}
	if m.last_run_at != nil {
		fields = append(fields, fiche.FieldLastRunAt)
	}
	if m.next_run_at != nil {
		fields = append(fields, fiche.FieldNextRunAt)
	}
	if m.is_concierge != nil {
		fields = append(fields, fiche.FieldIsConcierge)
	}
	if m.created_at != nil {
		fields = append(fields, fiche.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fiche.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FicheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fiche.FieldOwnerID:
		return m.OwnerID()
	case fiche.FieldName:
		return m.Name()
	case fiche.FieldSystemInstructions:
		return m.SystemInstructions()
	case fiche.FieldTaskInstructions:
		return m.TaskInstructions()
	case fiche.FieldModel:
		return m.Model()
	case fiche.FieldAllowedTools:
		return m.AllowedTools()
	case fiche.FieldStatus:
		return m.Status()
	case fiche.FieldLastError:
		return m.LastError()
	case fiche.FieldLastRunAt:
		return m.LastRunAt()
	case fiche.FieldNextRunAt:
		return m.NextRunAt()
	case fiche.FieldIsConcierge:
		return m.IsConcierge()
	case fiche.FieldCreatedAt:
		return m.CreatedAt()
	case fiche.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FicheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fiche.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case fiche.FieldName:
		return m.OldName(ctx)
	case fiche.FieldSystemInstructions:
		return m.OldSystemInstructions(ctx)
	case fiche.FieldTaskInstructions:
		return m.OldTaskInstructions(ctx)
	case fiche.FieldModel:
		return m.OldModel(ctx)
	case fiche.FieldAllowedTools:
		return m.OldAllowedTools(ctx)
	case fiche.FieldStatus:
		return m.OldStatus(ctx)
	case fiche.FieldLastError:
		return m.OldLastError(ctx)
	case fiche.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case fiche.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case fiche.FieldIsConcierge:
		return m.OldIsConcierge(ctx)
	case fiche.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fiche.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Fiche field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FicheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fiche.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case fiche.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case fiche.FieldSystemInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemInstructions(v)
		return nil
	case fiche.FieldTaskInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskInstructions(v)
		return nil
	case fiche.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case fiche.FieldAllowedTools:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedTools(v)
		return nil
	case fiche.FieldStatus:
		v, ok := value.(fiche.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fiche.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case fiche.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case fiche.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case fiche.FieldIsConcierge:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsConcierge(v)
		return nil
	case fiche.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fiche.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Fiche field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FicheMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FicheMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FicheMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Fiche numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FicheMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fiche.FieldTaskInstructions) {
		fields = append(fields, fiche.FieldTaskInstructions)
	}
	if m.FieldCleared(fiche.FieldAllowedTools) {
		fields = append(fields, fiche.FieldAllowedTools)
	}
	if m.FieldCleared(fiche.FieldLastError) {
		fields = append(fields, fiche.FieldLastError)
	}
	if m.FieldCleared(fiche.FieldLastRunAt) {
		fields = append(fields, fiche.FieldLastRunAt)
	}
	if m.FieldCleared(fiche.FieldNextRunAt) {
		fields = append(fields, fiche.FieldNextRunAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FicheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FicheMutation) ClearField(name string) error {
	switch name {
	case fiche.FieldTaskInstructions:
		m.ClearTaskInstructions()
		return nil
	case fiche.FieldAllowedTools:
		m.ClearAllowedTools()
		return nil
	case fiche.FieldLastError:
		m.ClearLastError()
		return nil
	case fiche.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	case fiche.FieldNextRunAt:
		m.ClearNextRunAt()
		return nil
	}
	return fmt.Errorf("unknown Fiche nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FicheMutation) ResetField(name string) error {
	switch name {
	case fiche.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case fiche.FieldName:
		m.ResetName()
		return nil
	case fiche.FieldSystemInstructions:
		m.ResetSystemInstructions()
		return nil
	case fiche.FieldTaskInstructions:
		m.ResetTaskInstructions()
		return nil
	case fiche.FieldModel:
		m.ResetModel()
		return nil
	case fiche.FieldAllowedTools:
		m.ResetAllowedTools()
		return nil
	case fiche.FieldStatus:
		m.ResetStatus()
		return nil
	case fiche.FieldLastError:
		m.ResetLastError()
		return nil
	case fiche.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case fiche.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case fiche.FieldIsConcierge:
		m.ResetIsConcierge()
		return nil
	case fiche.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fiche.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Fiche field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FicheMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.owner != nil {
		edges = append(edges, fiche.EdgeOwner)
	}
	if m.threads != nil {
		edges = append(edges, fiche.EdgeThreads)
	}
	if m.courses != nil {
		edges = append(edges, fiche.EdgeCourses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FicheMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fiche.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case fiche.EdgeThreads:
		ids := make([]ent.Value, 0, len(m.threads))
		for id := range m.threads {
			ids = append(ids, id)
		}
		return ids
	case fiche.EdgeCourses:
		ids := make([]ent.Value, 0, len(m.courses))
		for id := range m.courses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FicheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedthreads != nil {
		edges = append(edges, fiche.EdgeThreads)
	}
	if m.removedcourses != nil {
		edges = append(edges, fiche.EdgeCourses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FicheMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case fiche.EdgeThreads:
		ids := make([]ent.Value, 0, len(m.removedthreads))
		for id := range m.removedthreads {
			ids = append(ids, id)
		}
		return ids
	case fiche.EdgeCourses:
		ids := make([]ent.Value, 0, len(m.removedcourses))
		for id := range m.removedcourses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FicheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedowner {
		edges = append(edges, fiche.EdgeOwner)
	}
	if m.clearedthreads {
		edges = append(edges, fiche.EdgeThreads)
	}
	if m.clearedcourses {
		edges = append(edges, fiche.EdgeCourses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FicheMutation) EdgeCleared(name string) bool {
	switch name {
	case fiche.EdgeOwner:
		return m.clearedowner
	case fiche.EdgeThreads:
		return m.clearedthreads
	case fiche.EdgeCourses:
		return m.clearedcourses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FicheMutation) ClearEdge(name string) error {
	switch name {
	case fiche.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Fiche unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FicheMutation) ResetEdge(name string) error {
	switch name {
	case fiche.EdgeOwner:
		m.ResetOwner()
		return nil
	case fiche.EdgeThreads:
		m.ResetThreads()
		return nil
	case fiche.EdgeCourses:
		m.ResetCourses()
		return nil
	}
	return fmt.Errorf("unknown Fiche edge %s", name)
}

// InstanceMutation represents an operation that mutates the Instance nodes in the graph.
type InstanceMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	subdomain          *string
	container_name     *string
	status             *instance.Status
	deploy_ring        *int
	adddeploy_ring     *int
	deploy_state       *instance.DeployState
	current_image      *string
	last_healthy_image *string
	image_digest       *string
	deploy_error       *string
	last_health_at     *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	deployment         *string
	cleareddeployment  bool
	done               bool
	oldValue           func(context.Context) (*Instance, error)
	predicates         []predicate.Instance
}

var _ ent.Mutation = (*InstanceMutation)(nil)

// instanceOption allows management of the mutation configuration using functional options.
type instanceOption func(*InstanceMutation)

// newInstanceMutation creates new mutation for the Instance entity.
func newInstanceMutation(c config, op Op, opts ...instanceOption) *InstanceMutation {
	m := &InstanceMutation{
		config:        c,
		op:            op,
		typ:           TypeInstance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInstanceID sets the ID field of the mutation.
func withInstanceID(id int) instanceOption {
	return func(m *InstanceMutation) {
		var (
			err   error
			once  sync.Once
			value *Instance
		)
		m.oldValue = func(ctx context.Context) (*Instance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Instance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInstance sets the old Instance of the mutation.
func withInstance(node *Instance) instanceOption {
	return func(m *InstanceMutation) {
		m.oldValue = func(context.Context) (*Instance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InstanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InstanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InstanceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InstanceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Instance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubdomain sets the "subdomain" field.
func (m *InstanceMutation) SetSubdomain(s string) {
	m.subdomain = &s
}

// Subdomain returns the value of the "subdomain" field in the mutation.
func (m *InstanceMutation) Subdomain() (r string, exists bool) {
	v := m.subdomain
	if v == nil {
		return
	}
	return *v, true
}

// OldSubdomain returns the old "subdomain" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldSubdomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubdomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubdomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubdomain: %w", err)
	}
	return oldValue.Subdomain, nil
}

// ResetSubdomain resets all changes to the "subdomain" field.
func (m *InstanceMutation) ResetSubdomain() {
	m.subdomain = nil
}

// SetContainerName sets the "container_name" field.
func (m *InstanceMutation) SetContainerName(s string) {
	m.container_name = &s
}

// ContainerName returns the value of the "container_name" field in the mutation.
func (m *InstanceMutation) ContainerName() (r string, exists bool) {
	v := m.container_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContainerName returns the old "container_name" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldContainerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContainerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContainerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContainerName: %w", err)
	}
	return oldValue.ContainerName, nil
}

// ResetContainerName resets all changes to the "container_name" field.
func (m *InstanceMutation) ResetContainerName() {
	m.container_name = nil
}

// SetStatus sets the "status" field.
func (m *InstanceMutation) SetStatus(i instance.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InstanceMutation) Status() (r instance.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldStatus(ctx context.Context) (v instance.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InstanceMutation) ResetStatus() {
	m.status = nil
}

// SetDeployRing sets the "deploy_ring" field.
func (m *InstanceMutation) SetDeployRing(i int) {
	m.deploy_ring = &i
	m.adddeploy_ring = nil
}

// DeployRing returns the value of the "deploy_ring" field in the mutation.
func (m *InstanceMutation) DeployRing() (r int, exists bool) {
	v := m.deploy_ring
	if v == nil {
		return
	}
	return *v, true
}

// OldDeployRing returns the old "deploy_ring" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldDeployRing(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeployRing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeployRing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeployRing: %w", err)
	}
	return oldValue.DeployRing, nil
}

// AddDeployRing adds i to the "deploy_ring" field.
func (m *InstanceMutation) AddDeployRing(i int) {
	if m.adddeploy_ring != nil {
		*m.adddeploy_ring += i
	} else {
		m.adddeploy_ring = &i
	}
}

// AddedDeployRing returns the value that was added to the "deploy_ring" field in this mutation.
func (m *InstanceMutation) AddedDeployRing() (r int, exists bool) {
	v := m.adddeploy_ring
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeployRing resets all changes to the "deploy_ring" field.
func (m *InstanceMutation) ResetDeployRing() {
	m.deploy_ring = nil
	m.adddeploy_ring = nil
}

// SetDeployState sets the "deploy_state" field.
func (m *InstanceMutation) SetDeployState(is instance.DeployState) {
	m.deploy_state = &is
}

// DeployState returns the value of the "deploy_state" field in the mutation.
func (m *InstanceMutation) DeployState() (r instance.DeployState, exists bool) {
	v := m.deploy_state
	if v == nil {
		return
	}
	return *v, true
}

// OldDeployState returns the old "deploy_state" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldDeployState(ctx context.Context) (v instance.DeployState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeployState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeployState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeployState: %w", err)
	}
	return oldValue.DeployState, nil
}

// ResetDeployState resets all changes to the "deploy_state" field.
func (m *InstanceMutation) ResetDeployState() {
	m.deploy_state = nil
}

// SetCurrentImage sets the "current_image" field.
func (m *InstanceMutation) SetCurrentImage(s string) {
	m.current_image = &s
}

// CurrentImage returns the value of the "current_image" field in the mutation.
func (m *InstanceMutation) CurrentImage() (r string, exists bool) {
	v := m.current_image
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentImage returns the old "current_image" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldCurrentImage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentImage: %w", err)
	}
	return oldValue.CurrentImage, nil
}

// ClearCurrentImage clears the value of the "current_image" field.
func (m *InstanceMutation) ClearCurrentImage() {
	m.current_image = nil
	m.clearedFields[instance.FieldCurrentImage] = struct{}{}
}

// CurrentImageCleared returns if the "current_image" field was cleared in this mutation.
func (m *InstanceMutation) CurrentImageCleared() bool {
	_, ok := m.clearedFields[instance.FieldCurrentImage]
	return ok
}

// ResetCurrentImage resets all changes to the "current_image" field.
func (m *InstanceMutation) ResetCurrentImage() {
	m.current_image = nil
	delete(m.clearedFields, instance.FieldCurrentImage)
}

// SetLastHealthyImage sets the "last_healthy_image" field.
func (m *InstanceMutation) SetLastHealthyImage(s string) {
	m.last_healthy_image = &s
}

// LastHealthyImage returns the value of the "last_healthy_image" field in the mutation.
func (m *InstanceMutation) LastHealthyImage() (r string, exists bool) {
	v := m.last_healthy_image
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHealthyImage returns the old "last_healthy_image" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldLastHealthyImage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHealthyImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHealthyImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHealthyImage: %w", err)
	}
	return oldValue.LastHealthyImage, nil
}

// ClearLastHealthyImage clears the value of the "last_healthy_image" field.
func (m *InstanceMutation) ClearLastHealthyImage() {
	m.last_healthy_image = nil
	m.clearedFields[instance.FieldLastHealthyImage] = struct{}{}
}

// LastHealthyImageCleared returns if the "last_healthy_image" field was cleared in this mutation.
func (m *InstanceMutation) LastHealthyImageCleared() bool {
	_, ok := m.clearedFields[instance.FieldLastHealthyImage]
	return ok
}

// ResetLastHealthyImage resets all changes to the "last_healthy_image" field.
func (m *InstanceMutation) ResetLastHealthyImage() {
	m.last_healthy_image = nil
	delete(m.clearedFields, instance.FieldLastHealthyImage)
}

// SetImageDigest sets the "image_digest" field.
func (m *InstanceMutation) SetImageDigest(s string) {
	m.image_digest = &s
}

// ImageDigest returns the value of the "image_digest" field in the mutation.
func (m *InstanceMutation) ImageDigest() (r string, exists bool) {
	v := m.image_digest
	if v == nil {
		return
	}
	return *v, true
}

// OldImageDigest returns the old "image_digest" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldImageDigest(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageDigest: %w", err)
	}
	return oldValue.ImageDigest, nil
}

// ClearImageDigest clears the value of the "image_digest" field.
func (m *InstanceMutation) ClearImageDigest() {
	m.image_digest = nil
	m.clearedFields[instance.FieldImageDigest] = struct{}{}
}

// ImageDigestCleared returns if the "image_digest" field was cleared in this mutation.
func (m *InstanceMutation) ImageDigestCleared() bool {
	_, ok := m.clearedFields[instance.FieldImageDigest]
	return ok
}

// ResetImageDigest resets all changes to the "image_digest" field.
func (m *InstanceMutation) ResetImageDigest() {
	m.image_digest = nil
	delete(m.clearedFields, instance.FieldImageDigest)
}

// SetDeployID sets the "deploy_id" field.
func (m *InstanceMutation) SetDeployID(s string) {
	m.deployment = &s
}

// DeployID returns the value of the "deploy_id" field in the mutation.
func (m *InstanceMutation) DeployID() (r string, exists bool) {
	v := m.deployment
	if v == nil {
		return
	}
	return *v, true
}

// OldDeployID returns the old "deploy_id" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldDeployID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeployID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeployID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeployID: %w", err)
	}
	return oldValue.DeployID, nil
}

// ClearDeployID clears the value of the "deploy_id" field.
func (m *InstanceMutation) ClearDeployID() {
	m.deployment = nil
	m.clearedFields[instance.FieldDeployID] = struct{}{}
}

// DeployIDCleared returns if the "deploy_id" field was cleared in this mutation.
func (m *InstanceMutation) DeployIDCleared() bool {
	_, ok := m.clearedFields[instance.FieldDeployID]
	return ok
}

// ResetDeployID resets all changes to the "deploy_id" field.
func (m *InstanceMutation) ResetDeployID() {
	m.deployment = nil
	delete(m.clearedFields, instance.FieldDeployID)
}

// SetDeployError sets the "deploy_error" field.
func (m *InstanceMutation) SetDeployError(s string) {
	m.deploy_error = &s
}

// DeployError returns the value of the "deploy_error" field in the mutation.
func (m *InstanceMutation) DeployError() (r string, exists bool) {
	v := m.deploy_error
	if v == nil {
		return
	}
	return *v, true
}

// OldDeployError returns the old "deploy_error" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldDeployError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeployError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeployError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeployError: %w", err)
	}
	return oldValue.DeployError, nil
}

// ClearDeployError clears the value of the "deploy_error" field.
func (m *InstanceMutation) ClearDeployError() {
	m.deploy_error = nil
	m.clearedFields[instance.FieldDeployError] = struct{}{}
}

// DeployErrorCleared returns if the "deploy_error" field was cleared in this mutation.
func (m *InstanceMutation) DeployErrorCleared() bool {
	_, ok := m.clearedFields[instance.FieldDeployError]
	return ok
}

// ResetDeployError resets all changes to the "deploy_error" field.
func (m *InstanceMutation) ResetDeployError() {
	m.deploy_error = nil
	delete(m.clearedFields, instance.FieldDeployError)
}

// SetLastHealthAt sets the "last_health_at" field.
func (m *InstanceMutation) SetLastHealthAt(t time.Time) {
	m.last_health_at = &t
}

// LastHealthAt returns the value of the "last_health_at" field in the mutation.
func (m *InstanceMutation) LastHealthAt() (r time.Time, exists bool) {
	v := m.last_health_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHealthAt returns the old "last_health_at" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldLastHealthAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHealthAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHealthAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHealthAt: %w", err)
	}
	return oldValue.LastHealthAt, nil
}

// ClearLastHealthAt clears the value of the "last_health_at" field.
func (m *InstanceMutation) ClearLastHealthAt() {
	m.last_health_at = nil
	m.clearedFields[instance.FieldLastHealthAt] = struct{}{}
}

// LastHealthAtCleared returns if the "last_health_at" field was cleared in this mutation.
func (m *InstanceMutation) LastHealthAtCleared() bool {
	_, ok := m.clearedFields[instance.FieldLastHealthAt]
	return ok
}

// ResetLastHealthAt resets all changes to the "last_health_at" field.
func (m *InstanceMutation) ResetLastHealthAt() {
	m.last_health_at = nil
	delete(m.clearedFields, instance.FieldLastHealthAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *InstanceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InstanceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InstanceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeploymentID sets the "deployment" edge to the Deployment entity by id.
func (m *InstanceMutation) SetDeploymentID(id string) {
	m.deployment = &id
}

// ClearDeployment clears the "deployment" edge to the Deployment entity.
func (m *InstanceMutation) ClearDeployment() {
	m.cleareddeployment = true
	m.clearedFields[instance.FieldDeployID] = struct{}{}
}

// DeploymentCleared reports if the "deployment" edge to the Deployment entity was cleared.
func (m *InstanceMutation) DeploymentCleared() bool {
	return m.DeployIDCleared() || m.cleareddeployment
}

// DeploymentID returns the "deployment" edge ID in the mutation.
func (m *InstanceMutation) DeploymentID() (id string, exists bool) {
	if m.deployment != nil {
		return *m.deployment, true
	}
	return
}

// DeploymentIDs returns the "deployment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DeploymentID instead. It exists only for internal usage by the builders.
func (m *InstanceMutation) DeploymentIDs() (ids []string) {
	if id := m.deployment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDeployment resets all changes to the "deployment" edge.
func (m *InstanceMutation) ResetDeployment() {
	m.deployment = nil
	m.cleareddeployment = false
}

// Where appends a list predicates to the InstanceMutation builder.
func (m *InstanceMutation) Where(ps ...predicate.Instance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InstanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InstanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Instance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InstanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InstanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Instance).
func (m *InstanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InstanceMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.subdomain != nil {
		fields = append(fields, instance.FieldSubdomain)
	}
	if m.container_name != nil {
		fields = append(fields, instance.FieldContainerName)
	}
	if m.status != nil {
		fields = append(fields, instance.FieldStatus)
	}
	if m.deploy_ring != nil {
		fields = append(fields, instance.FieldDeployRing)
	}
	if m.deploy_state != nil {
		fields = append(fields, instance.FieldDeployState)
	}
	if m.current_image != nil {
		fields = append(fields, instance.FieldCurrentImage)
	}
	if m.last_healthy_image != nil {
		fields = append(fields, instance.FieldLastHealthyImage)
	}
	if m.image_digest != nil {
		fields = append(fields, instance.FieldImageDigest)
	}
	if m.deployment != nil {
		fields = append(fields, instance.FieldDeployID)
	}
	if m.deploy_error != nil {
		fields = append(fields, instance.FieldDeployError)
	}
	if m.last_health_at != nil {
		fields = append(fields, instance.FieldLastHealthAt)
	}
	if m.created_at != nil {
		fields = append(fields, instance.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InstanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case instance.FieldSubdomain:
		return m.Subdomain()
	case instance.FieldContainerName:
		return m.ContainerName()
	case instance.FieldStatus:
		return m.Status()
	case instance.FieldDeployRing:
		return m.DeployRing()
	case instance.FieldDeployState:
		return m.DeployState()
	case instance.FieldCurrentImage:
		return m.CurrentImage()
	case instance.FieldLastHealthyImage:
		return m.LastHealthyImage()
	case instance.FieldImageDigest:
		return m.ImageDigest()
	case instance.FieldDeployID:
		return m.DeployID()
	case instance.FieldDeployError:
		return m.DeployError()
	case instance.FieldLastHealthAt:
		return m.LastHealthAt()
	case instance.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InstanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case instance.FieldSubdomain:
		return m.OldSubdomain(ctx)
	case instance.FieldContainerName:
		return m.OldContainerName(ctx)
	case instance.FieldStatus:
		return m.OldStatus(ctx)
	case instance.FieldDeployRing:
		return m.OldDeployRing(ctx)
	case instance.FieldDeployState:
		return m.OldDeployState(ctx)
	case instance.FieldCurrentImage:
		return m.OldCurrentImage(ctx)
	case instance.FieldLastHealthyImage:
		return m.OldLastHealthyImage(ctx)
	case instance.FieldImageDigest:
		return m.OldImageDigest(ctx)
	case instance.FieldDeployID:
		return m.OldDeployID(ctx)
	case instance.FieldDeployError:
		return m.OldDeployError(ctx)
	case instance.FieldLastHealthAt:
		return m.OldLastHealthAt(ctx)
	case instance.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Instance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case instance.FieldSubdomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubdomain(v)
		return nil
	case instance.FieldContainerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContainerName(v)
		return nil
	case instance.FieldStatus:
		v, ok := value.(instance.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case instance.FieldDeployRing:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeployRing(v)
		return nil
	case instance.FieldDeployState:
		v, ok := value.(instance.DeployState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeployState(v)
		return nil
	case instance.FieldCurrentImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentImage(v)
		return nil
	case instance.FieldLastHealthyImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHealthyImage(v)
		return nil
	case instance.FieldImageDigest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageDigest(v)
		return nil
	case instance.FieldDeployID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeployID(v)
		return nil
	case instance.FieldDeployError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeployError(v)
		return nil
	case instance.FieldLastHealthAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHealthAt(v)
		return nil
	case instance.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Instance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InstanceMutation) AddedFields() []string {
	var fields []string
	if m.adddeploy_ring != nil {
		fields = append(fields, instance.FieldDeployRing)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InstanceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case instance.FieldDeployRing:
		return m.AddedDeployRing()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case instance.FieldDeployRing:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeployRing(v)
		return nil
	}
	return fmt.Errorf("unknown Instance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InstanceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(instance.FieldCurrentImage) {
		fields = append(fields, instance.FieldCurrentImage)
	}
	if m.FieldCleared(instance.FieldLastHealthyImage) {
		fields = append(fields, instance.FieldLastHealthyImage)
	}
	if m.FieldCleared(instance.FieldImageDigest) {
		fields = append(fields, instance.FieldImageDigest)
	}
	if m.FieldCleared(instance.FieldDeployID) {
		fields = append(fields, instance.FieldDeployID)
	}
	if m.FieldCleared(instance.FieldDeployError) {
		fields = append(fields, instance.FieldDeployError)
	}
	if m.FieldCleared(instance.FieldLastHealthAt) {
		fields = append(fields, instance.FieldLastHealthAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InstanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InstanceMutation) ClearField(name string) error {
	switch name {
	case instance.FieldCurrentImage:
		m.ClearCurrentImage()
		return nil
	case instance.FieldLastHealthyImage:
		m.ClearLastHealthyImage()
		return nil
	case instance.FieldImageDigest:
		m.ClearImageDigest()
		return nil
	case instance.FieldDeployID:
		m.ClearDeployID()
		return nil
	case instance.FieldDeployError:
		m.ClearDeployError()
		return nil
	case instance.FieldLastHealthAt:
		m.ClearLastHealthAt()
		return nil
	}
	return fmt.Errorf("unknown Instance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InstanceMutation) ResetField(name string) error {
	switch name {
	case instance.FieldSubdomain:
		m.ResetSubdomain()
		return nil
	case instance.FieldContainerName:
		m.ResetContainerName()
		return nil
	case instance.FieldStatus:
		m.ResetStatus()
		return nil
	case instance.FieldDeployRing:
		m.ResetDeployRing()
		return nil
	case instance.FieldDeployState:
		m.ResetDeployState()
		return nil
	case instance.FieldCurrentImage:
		m.ResetCurrentImage()
		return nil
	case instance.FieldLastHealthyImage:
		m.ResetLastHealthyImage()
		return nil
	case instance.FieldImageDigest:
		m.ResetImageDigest()
		return nil
	case instance.FieldDeployID:
		m.ResetDeployID()
		return nil
	case instance.FieldDeployError:
		m.ResetDeployError()
		return nil
	case instance.FieldLastHealthAt:
		m.ResetLastHealthAt()
		return nil
	case instance.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Instance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InstanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deployment != nil {
		edges = append(edges, instance.EdgeDeployment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InstanceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case instance.EdgeDeployment:
		if id := m.deployment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InstanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InstanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InstanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeployment {
		edges = append(edges, instance.EdgeDeployment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InstanceMutation) EdgeCleared(name string) bool {
	switch name {
	case instance.EdgeDeployment:
		return m.cleareddeployment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InstanceMutation) ClearEdge(name string) error {
	switch name {
	case instance.EdgeDeployment:
		m.ClearDeployment()
		return nil
	}
	return fmt.Errorf("unknown Instance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InstanceMutation) ResetEdge(name string) error {
	switch name {
	case instance.EdgeDeployment:
		m.ResetDeployment()
		return nil
	}
	return fmt.Errorf("unknown Instance edge %s", name)
}

// RunnerMutation represents an operation that mutates the Runner nodes in the graph.
type RunnerMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	status        *runner.Status
	secret_hash   *string
	labels        *map[string]string
	metadata      *map[string]interface{}
	created_at    *time.Time
	last_seen_at  *time.Time
	clearedFields map[string]struct{}
	jobs          map[int]struct{}
	removedjobs   map[int]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*Runner, error)
	predicates    []predicate.Runner
}

var _ ent.Mutation = (*RunnerMutation)(nil)

// runnerOption allows management of the mutation configuration using functional options.
type runnerOption func(*RunnerMutation)

// newRunnerMutation creates new mutation for the Runner entity.
func newRunnerMutation(c config, op Op, opts ...runnerOption) *RunnerMutation {
	m := &RunnerMutation{
		config:        c,
		op:            op,
		typ:           TypeRunner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunnerID sets the ID field of the mutation.
func withRunnerID(id int) runnerOption {
	return func(m *RunnerMutation) {
		var (
			err   error
			once  sync.Once
			value *Runner
		)
		m.oldValue = func(ctx context.Context) (*Runner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Runner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunner sets the old Runner of the mutation.
func withRunner(node *Runner) runnerOption {
	return func(m *RunnerMutation) {
		m.oldValue = func(context.Context) (*Runner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunnerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunnerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunnerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunnerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Runner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RunnerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RunnerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RunnerMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *RunnerMutation) SetStatus(r runner.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunnerMutation) Status() (r runner.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldStatus(ctx context.Context) (v runner.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunnerMutation) ResetStatus() {
	m.status = nil
}

// SetSecretHash sets the "secret_hash" field.
func (m *RunnerMutation) SetSecretHash(s string) {
	m.secret_hash = &s
}

// SecretHash returns the value of the "secret_hash" field in the mutation.
func (m *RunnerMutation) SecretHash() (r string, exists bool) {
	v := m.secret_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSecretHash returns the old "secret_hash" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldSecretHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecretHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecretHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecretHash: %w", err)
	}
	return oldValue.SecretHash, nil
}

// ResetSecretHash resets all changes to the "secret_hash" field.
func (m *RunnerMutation) ResetSecretHash() {
	m.secret_hash = nil
}

// SetLabels sets the "labels" field.
func (m *RunnerMutation) SetLabels(value map[string]string) {
	m.labels = &value
}

// Labels returns the value of the "labels" field in the mutation.
func (m *RunnerMutation) Labels() (r map[string]string, exists bool) {
	v := m.labels
	if v == nil {
		return
	}
	return *v, true
}

// OldLabels returns the old "labels" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldLabels(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabels: %w", err)
	}
	return oldValue.Labels, nil
}

// ClearLabels clears the value of the "labels" field.
func (m *RunnerMutation) ClearLabels() {
	m.labels = nil
	m.clearedFields[runner.FieldLabels] = struct{}{}
}

// LabelsCleared returns if the "labels" field was cleared in this mutation.
func (m *RunnerMutation) LabelsCleared() bool {
	_, ok := m.clearedFields[runner.FieldLabels]
	return ok
}

// ResetLabels resets all changes to the "labels" field.
func (m *RunnerMutation) ResetLabels() {
	m.labels = nil
	delete(m.clearedFields, runner.FieldLabels)
}

// SetMetadata sets the "metadata" field.
func (m *RunnerMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *RunnerMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *RunnerMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[runner.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *RunnerMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[runner.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *RunnerMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, runner.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunnerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunnerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunnerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *RunnerMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *RunnerMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldLastSeenAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (m *RunnerMutation) ClearLastSeenAt() {
	m.last_seen_at = nil
	m.clearedFields[runner.FieldLastSeenAt] = struct{}{}
}

// LastSeenAtCleared returns if the "last_seen_at" field was cleared in this mutation.
func (m *RunnerMutation) LastSeenAtCleared() bool {
	_, ok := m.clearedFields[runner.FieldLastSeenAt]
	return ok
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *RunnerMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
	delete(m.clearedFields, runner.FieldLastSeenAt)
}

// AddJobIDs adds the "jobs" edge to the RunnerJob entity by ids.
func (m *RunnerMutation) AddJobIDs(ids ...int) {
	if m.jobs == nil {
		m.jobs = make(map[int]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the RunnerJob entity.
func (m *RunnerMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the RunnerJob entity was cleared.
func (m *RunnerMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the RunnerJob entity by IDs.
func (m *RunnerMutation) RemoveJobIDs(ids ...int) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the RunnerJob entity.
func (m *RunnerMutation) RemovedJobsIDs() (ids []int) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *RunnerMutation) JobsIDs() (ids []int) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *RunnerMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the RunnerMutation builder.
func (m *RunnerMutation) Where(ps ...predicate.Runner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunnerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunnerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Runner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunnerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunnerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Runner).
func (m *RunnerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunnerMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, runner.FieldName)
	}
	if m.status != nil {
		fields = append(fields, runner.FieldStatus)
	}
	if m.secret_hash != nil {
		fields = append(fields, runner.FieldSecretHash)
	}
	if m.labels != nil {
		fields = append(fields, runner.FieldLabels)
	}
	if m.metadata != nil {
		fields = append(fields, runner.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, runner.FieldCreatedAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, runner.FieldLastSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunnerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runner.FieldName:
		return m.Name()
	case runner.FieldStatus:
		return m.Status()
	case runner.FieldSecretHash:
		return m.SecretHash()
	case runner.FieldLabels:
		return m.Labels()
	case runner.FieldMetadata:
		return m.Metadata()
	case runner.FieldCreatedAt:
		return m.CreatedAt()
	case runner.FieldLastSeenAt:
		return m.LastSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunnerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runner.FieldName:
		return m.OldName(ctx)
	case runner.FieldStatus:
		return m.OldStatus(ctx)
	case runner.FieldSecretHash:
		return m.OldSecretHash(ctx)
	case runner.FieldLabels:
		return m.OldLabels(ctx)
	case runner.FieldMetadata:
		return m.OldMetadata(ctx)
	case runner.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case runner.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown Runner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunnerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runner.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case runner.FieldStatus:
		v, ok := value.(runner.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case runner.FieldSecretHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecretHash(v)
		return nil
	case runner.FieldLabels:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabels(v)
		return nil
	case runner.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case runner.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case runner.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown Runner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunnerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunnerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunnerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Runner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunnerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runner.FieldLabels) {
		fields = append(fields, runner.FieldLabels)
	}
	if m.FieldCleared(runner.FieldMetadata) {
		fields = append(fields, runner.FieldMetadata)
	}
	if m.FieldCleared(runner.FieldLastSeenAt) {
		fields = append(fields, runner.FieldLastSeenAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunnerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunnerMutation) ClearField(name string) error {
	switch name {
	case runner.FieldLabels:
		m.ClearLabels()
		return nil
	case runner.FieldMetadata:
		m.ClearMetadata()
		return nil
	case runner.FieldLastSeenAt:
		m.ClearLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown Runner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunnerMutation) ResetField(name string) error {
	switch name {
	case runner.FieldName:
		m.ResetName()
		return nil
	case runner.FieldStatus:
		m.ResetStatus()
		return nil
	case runner.FieldSecretHash:
		m.ResetSecretHash()
		return nil
	case runner.FieldLabels:
		m.ResetLabels()
		return nil
	case runner.FieldMetadata:
		m.ResetMetadata()
		return nil
	case runner.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case runner.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown Runner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunnerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, runner.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunnerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runner.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunnerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, runner.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunnerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case runner.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunnerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, runner.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunnerMutation) EdgeCleared(name string) bool {
	switch name {
	case runner.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunnerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Runner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunnerMutation) ResetEdge(name string) error {
	switch name {
	case runner.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Runner edge %s", name)
}

// RunnerJobMutation represents an operation that mutates the RunnerJob nodes in the graph.
type RunnerJobMutation struct {
	config
	op            Op
	typ           string
	id            *int
	command       *string
	status        *runnerjob.Status
	output        *string
	error         *string
	created_at    *time.Time
	started_at    *time.Time
	finished_at   *time.Time
	clearedFields map[string]struct{}
	runner        *int
	clearedrunner bool
	done          bool
	oldValue      func(context.Context) (*RunnerJob, error)
	predicates    []predicate.RunnerJob
}

var _ ent.Mutation = (*RunnerJobMutation)(nil)

// runnerjobOption allows management of the mutation configuration using functional options.
type runnerjobOption func(*RunnerJobMutation)

// newRunnerJobMutation creates new mutation for the RunnerJob entity.
func newRunnerJobMutation(c config, op Op, opts ...runnerjobOption) *RunnerJobMutation {
	m := &RunnerJobMutation{
		config:        c,
		op:            op,
		typ:           TypeRunnerJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunnerJobID sets the ID field of the mutation.
func withRunnerJobID(id int) runnerjobOption {
	return func(m *RunnerJobMutation) {
		var (
			err   error
			once  sync.Once
			value *RunnerJob
		)
		m.oldValue = func(ctx context.Context) (*RunnerJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunnerJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunnerJob sets the old RunnerJob of the mutation.
func withRunnerJob(node *RunnerJob) runnerjobOption {
	return func(m *RunnerJobMutation) {
		m.oldValue = func(context.Context) (*RunnerJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunnerJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunnerJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunnerJobMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunnerJobMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunnerJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunnerID sets the "runner_id" field.
func (m *RunnerJobMutation) SetRunnerID(i int) {
	m.runner = &i
}

// RunnerID returns the value of the "runner_id" field in the mutation.
func (m *RunnerJobMutation) RunnerID() (r int, exists bool) {
	v := m.runner
	if v == nil {
		return
	}
	return *v, true
}

// OldRunnerID returns the old "runner_id" field's value of the RunnerJob entity.
// If the RunnerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerJobMutation) OldRunnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunnerID: %w", err)
	}
	return oldValue.RunnerID, nil
}

// ResetRunnerID resets all changes to the "runner_id" field.
func (m *RunnerJobMutation) ResetRunnerID() {
	m.runner = nil
}

// SetCommand sets the "command" field.
func (m *RunnerJobMutation) SetCommand(s string) {
	m.command = &s
}

// Command returns the value of the "command" field in the mutation.
func (m *RunnerJobMutation) Command() (r string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the RunnerJob entity.
// If the RunnerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerJobMutation) OldCommand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ResetCommand resets all changes to the "command" field.
func (m *RunnerJobMutation) ResetCommand() {
	m.command = nil
}

// SetStatus sets the "status" field.
func (m *RunnerJobMutation) SetStatus(r runnerjob.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunnerJobMutation) Status() (r runnerjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RunnerJob entity.
// If the RunnerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerJobMutation) OldStatus(ctx context.Context) (v runnerjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunnerJobMutation) ResetStatus() {
	m.status = nil
}

// SetOutput sets the "output" field.
func (m *RunnerJobMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *RunnerJobMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the RunnerJob entity.
// If the RunnerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerJobMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *RunnerJobMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[runnerjob.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *RunnerJobMutation) OutputCleared() bool {
	_, ok := m.clearedFields[runnerjob.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *RunnerJobMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, runnerjob.FieldOutput)
}

// SetError sets the "error" field.
func (m *RunnerJobMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *RunnerJobMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the RunnerJob entity.
// If the RunnerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerJobMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *RunnerJobMutation) ClearError() {
	m.error = nil
	m.clearedFields[runnerjob.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *RunnerJobMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[runnerjob.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *RunnerJobMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, runnerjob.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunnerJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunnerJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunnerJob entity.
// If the RunnerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunnerJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunnerJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunnerJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the RunnerJob entity.
// If the RunnerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunnerJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[runnerjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunnerJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[runnerjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunnerJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, runnerjob.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *RunnerJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *RunnerJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the RunnerJob entity.
// If the RunnerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *RunnerJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[runnerjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *RunnerJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[runnerjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *RunnerJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, runnerjob.FieldFinishedAt)
}

// ClearRunner clears the "runner" edge to the Runner entity.
func (m *RunnerJobMutation) ClearRunner() {
	m.clearedrunner = true
	m.clearedFields[runnerjob.FieldRunnerID] = struct{}{}
}

// RunnerCleared reports if the "runner" edge to the Runner entity was cleared.
func (m *RunnerJobMutation) RunnerCleared() bool {
	return m.clearedrunner
}

// RunnerIDs returns the "runner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunnerID instead. It exists only for internal usage by the builders.
func (m *RunnerJobMutation) RunnerIDs() (ids []int) {
	if id := m.runner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRunner resets all changes to the "runner" edge.
func (m *RunnerJobMutation) ResetRunner() {
	m.runner = nil
	m.clearedrunner = false
}

// Where appends a list predicates to the RunnerJobMutation builder.
func (m *RunnerJobMutation) Where(ps ...predicate.RunnerJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunnerJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunnerJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunnerJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunnerJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunnerJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunnerJob).
func (m *RunnerJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunnerJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.runner != nil {
		fields = append(fields, runnerjob.FieldRunnerID)
	}
	if m.command != nil {
		fields = append(fields, runnerjob.FieldCommand)
	}
	if m.status != nil {
		fields = append(fields, runnerjob.FieldStatus)
	}
	if m.output != nil {
		fields = append(fields, runnerjob.FieldOutput)
	}
	if m.error != nil {
		fields = append(fields, runnerjob.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, runnerjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, runnerjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, runnerjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunnerJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runnerjob.FieldRunnerID:
		return m.RunnerID()
	case runnerjob.FieldCommand:
		return m.Command()
	case runnerjob.FieldStatus:
		return m.Status()
	case runnerjob.FieldOutput:
		return m.Output()
	case runnerjob.FieldError:
		return m.Error()
	case runnerjob.FieldCreatedAt:
		return m.CreatedAt()
	case runnerjob.FieldStartedAt:
		return m.StartedAt()
	case runnerjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunnerJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runnerjob.FieldRunnerID:
		return m.OldRunnerID(ctx)
	case runnerjob.FieldCommand:
		return m.OldCommand(ctx)
	case runnerjob.FieldStatus:
		return m.OldStatus(ctx)
	case runnerjob.FieldOutput:
		return m.OldOutput(ctx)
	case runnerjob.FieldError:
		return m.OldError(ctx)
	case runnerjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case runnerjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case runnerjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunnerJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunnerJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runnerjob.FieldRunnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunnerID(v)
		return nil
	case runnerjob.FieldCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case runnerjob.FieldStatus:
		v, ok := value.(runnerjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case runnerjob.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case runnerjob.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case runnerjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case runnerjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case runnerjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunnerJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunnerJobMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunnerJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunnerJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RunnerJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunnerJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runnerjob.FieldOutput) {
		fields = append(fields, runnerjob.FieldOutput)
	}
	if m.FieldCleared(runnerjob.FieldError) {
		fields = append(fields, runnerjob.FieldError)
	}
	if m.FieldCleared(runnerjob.FieldStartedAt) {
		fields = append(fields, runnerjob.FieldStartedAt)
	}
	if m.FieldCleared(runnerjob.FieldFinishedAt) {
		fields = append(fields, runnerjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunnerJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunnerJobMutation) ClearField(name string) error {
	switch name {
	case runnerjob.FieldOutput:
		m.ClearOutput()
		return nil
	case runnerjob.FieldError:
		m.ClearError()
		return nil
	case runnerjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case runnerjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown RunnerJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunnerJobMutation) ResetField(name string) error {
	switch name {
	case runnerjob.FieldRunnerID:
		m.ResetRunnerID()
		return nil
	case runnerjob.FieldCommand:
		m.ResetCommand()
		return nil
	case runnerjob.FieldStatus:
		m.ResetStatus()
		return nil
	case runnerjob.FieldOutput:
		m.ResetOutput()
		return nil
	case runnerjob.FieldError:
		m.ResetError()
		return nil
	case runnerjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case runnerjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case runnerjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown RunnerJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunnerJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.runner != nil {
		edges = append(edges, runnerjob.EdgeRunner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunnerJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runnerjob.EdgeRunner:
		if id := m.runner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunnerJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunnerJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunnerJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrunner {
		edges = append(edges, runnerjob.EdgeRunner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunnerJobMutation) EdgeCleared(name string) bool {
	switch name {
	case runnerjob.EdgeRunner:
		return m.clearedrunner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunnerJobMutation) ClearEdge(name string) error {
	switch name {
	case runnerjob.EdgeRunner:
		m.ClearRunner()
		return nil
	}
	return fmt.Errorf("unknown RunnerJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunnerJobMutation) ResetEdge(name string) error {
	switch name {
	case runnerjob.EdgeRunner:
		m.ResetRunner()
		return nil
	}
	return fmt.Errorf("unknown RunnerJob edge %s", name)
}

// ThreadMutation represents an operation that mutates the Thread nodes in the graph.
type ThreadMutation struct {
	config
	op              Op
	typ             string
	id              *int
	owner_id        *int
	addowner_id     *int
	title           *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	fiche           *int
	clearedfiche    bool
	messages        map[int]struct{}
	removedmessages map[int]struct{}
	clearedmessages bool
	done            bool
	oldValue        func(context.Context) (*Thread, error)
	predicates      []predicate.Thread
}

var _ ent.Mutation = (*ThreadMutation)(nil)

// threadOption allows management of the mutation configuration using functional options.
type threadOption func(*ThreadMutation)

// newThreadMutation creates new mutation for the Thread entity.
func newThreadMutation(c config, op Op, opts ...threadOption) *ThreadMutation {
	m := &ThreadMutation{
		config:        c,
		op:            op,
		typ:           TypeThread,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThreadID sets the ID field of the mutation.
func withThreadID(id int) threadOption {
	return func(m *ThreadMutation) {
		var (
			err   error
			once  sync.Once
			value *Thread
		)
		m.oldValue = func(ctx context.Context) (*Thread, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Thread.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThread sets the old Thread of the mutation.
func withThread(node *Thread) threadOption {
	return func(m *ThreadMutation) {
		m.oldValue = func(context.Context) (*Thread, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThreadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThreadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThreadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThreadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Thread.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFicheID sets the "fiche_id" field.
func (m *ThreadMutation) SetFicheID(i int) {
	m.fiche = &i
}

// FicheID returns the value of the "fiche_id" field in the mutation.
func (m *ThreadMutation) FicheID() (r int, exists bool) {
	v := m.fiche
	if v == nil {
		return
	}
	return *v, true
}

// OldFicheID returns the old "fiche_id" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldFicheID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFicheID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFicheID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFicheID: %w", err)
	}
	return oldValue.FicheID, nil
}

// ResetFicheID resets all changes to the "fiche_id" field.
func (m *ThreadMutation) ResetFicheID() {
	m.fiche = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *ThreadMutation) SetOwnerID(i int) {
	m.owner_id = &i
	m.addowner_id = nil
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ThreadMutation) OwnerID() (r int, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldOwnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// AddOwnerID adds i to the "owner_id" field.
func (m *ThreadMutation) AddOwnerID(i int) {
	if m.addowner_id != nil {
		*m.addowner_id += i
	} else {
		m.addowner_id = &i
	}
}

// AddedOwnerID returns the value that was added to the "owner_id" field in this mutation.
func (m *ThreadMutation) AddedOwnerID() (r int, exists bool) {
	v := m.addowner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ThreadMutation) ResetOwnerID() {
	m.owner_id = nil
	m.addowner_id = nil
}

// SetTitle sets the "title" field.
func (m *ThreadMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ThreadMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ThreadMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[thread.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ThreadMutation) TitleCleared() bool {
	_, ok := m.clearedFields[thread.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ThreadMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, thread.FieldTitle)
}

// SetCreatedAt sets the "created_at" field.
func (m *ThreadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ThreadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ThreadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ThreadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ThreadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ThreadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearFiche clears the "fiche" edge to the Fiche entity.
func (m *ThreadMutation) ClearFiche() {
	m.clearedfiche = true
	m.clearedFields[thread.FieldFicheID] = struct{}{}
}

// FicheCleared reports if the "fiche" edge to the Fiche entity was cleared.
func (m *ThreadMutation) FicheCleared() bool {
	return m.clearedfiche
}

// FicheIDs returns the "fiche" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FicheID instead. It exists only for internal usage by the builders.
func (m *ThreadMutation) FicheIDs() (ids []int) {
	if id := m.fiche; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFiche resets all changes to the "fiche" edge.
func (m *ThreadMutation) ResetFiche() {
	m.fiche = nil
	m.clearedfiche = false
}

// AddMessageIDs adds the "messages" edge to the ThreadMessage entity by ids.
func (m *ThreadMutation) AddMessageIDs(ids ...int) {
	if m.messages == nil {
		m.messages = make(map[int]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ThreadMessage entity.
func (m *ThreadMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ThreadMessage entity was cleared.
func (m *ThreadMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ThreadMessage entity by IDs.
func (m *ThreadMutation) RemoveMessageIDs(ids ...int) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ThreadMessage entity.
func (m *ThreadMutation) RemovedMessagesIDs() (ids []int) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ThreadMutation) MessagesIDs() (ids []int) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ThreadMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ThreadMutation builder.
func (m *ThreadMutation) Where(ps ...predicate.Thread) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThreadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThreadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Thread, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThreadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThreadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Thread).
func (m *ThreadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThreadMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.fiche != nil {
		fields = append(fields, thread.FieldFicheID)
	}
	if m.owner_id != nil {
		fields = append(fields, thread.FieldOwnerID)
	}
	if m.title != nil {
		fields = append(fields, thread.FieldTitle)
	}
	if m.created_at != nil {
		fields = append(fields, thread.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, thread.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThreadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case thread.FieldFicheID:
		return m.FicheID()
	case thread.FieldOwnerID:
		return m.OwnerID()
	case thread.FieldTitle:
		return m.Title()
	case thread.FieldCreatedAt:
		return m.CreatedAt()
	case thread.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThreadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case thread.FieldFicheID:
		return m.OldFicheID(ctx)
	case thread.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case thread.FieldTitle:
		return m.OldTitle(ctx)
	case thread.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case thread.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Thread field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case thread.FieldFicheID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFicheID(v)
		return nil
	case thread.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case thread.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case thread.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case thread.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Thread field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThreadMutation) AddedFields() []string {
	var fields []string
	if m.addowner_id != nil {
		fields = append(fields, thread.FieldOwnerID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThreadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case thread.FieldOwnerID:
		return m.AddedOwnerID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case thread.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOwnerID(v)
		return nil
	}
	return fmt.Errorf("unknown Thread numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThreadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(thread.FieldTitle) {
		fields = append(fields, thread.FieldTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThreadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThreadMutation) ClearField(name string) error {
	switch name {
	case thread.FieldTitle:
		m.ClearTitle()
		return nil
	}
	return fmt.Errorf("unknown Thread nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThreadMutation) ResetField(name string) error {
	switch name {
	case thread.FieldFicheID:
		m.ResetFicheID()
		return nil
	case thread.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case thread.FieldTitle:
		m.ResetTitle()
		return nil
	case thread.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case thread.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Thread field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThreadMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.fiche != nil {
		edges = append(edges, thread.EdgeFiche)
	}
	if m.messages != nil {
		edges = append(edges, thread.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThreadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case thread.EdgeFiche:
		if id := m.fiche; id != nil {
			return []ent.Value{*id}
		}
	case thread.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThreadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, thread.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThreadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case thread.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThreadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfiche {
		edges = append(edges, thread.EdgeFiche)
	}
	if m.clearedmessages {
		edges = append(edges, thread.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThreadMutation) EdgeCleared(name string) bool {
	switch name {
	case thread.EdgeFiche:
		return m.clearedfiche
	case thread.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThreadMutation) ClearEdge(name string) error {
	switch name {
	case thread.EdgeFiche:
		m.ClearFiche()
		return nil
	}
	return fmt.Errorf("unknown Thread unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThreadMutation) ResetEdge(name string) error {
	switch name {
	case thread.EdgeFiche:
		m.ResetFiche()
		return nil
	case thread.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown Thread edge %s", name)
}

// ThreadMessageMutation represents an operation that mutates the ThreadMessage nodes in the graph.
type ThreadMessageMutation struct {
	config
	op               Op
	typ              string
	id               *int
	role             *threadmessage.Role
	content          *string
	tool_calls       *[]map[string]interface{}
	appendtool_calls []map[string]interface{}
	tool_call_id     *string
	name             *string
	metadata         *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	thread           *int
	clearedthread    bool
	done             bool
	oldValue         func(context.Context) (*ThreadMessage, error)
	predicates       []predicate.ThreadMessage
}

var _ ent.Mutation = (*ThreadMessageMutation)(nil)

// threadmessageOption allows management of the mutation configuration using functional options.
type threadmessageOption func(*ThreadMessageMutation)

// newThreadMessageMutation creates new mutation for the ThreadMessage entity.
func newThreadMessageMutation(c config, op Op, opts ...threadmessageOption) *ThreadMessageMutation {
	m := &ThreadMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeThreadMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThreadMessageID sets the ID field of the mutation.
func withThreadMessageID(id int) threadmessageOption {
	return func(m *ThreadMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ThreadMessage
		)
		m.oldValue = func(ctx context.Context) (*ThreadMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ThreadMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThreadMessage sets the old ThreadMessage of the mutation.
func withThreadMessage(node *ThreadMessage) threadmessageOption {
	return func(m *ThreadMessageMutation) {
		m.oldValue = func(context.Context) (*ThreadMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThreadMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThreadMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThreadMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThreadMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ThreadMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *ThreadMessageMutation) SetThreadID(i int) {
	m.thread = &i
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *ThreadMessageMutation) ThreadID() (r int, exists bool) {
	v := m.thread
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the ThreadMessage entity.
// If the ThreadMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMessageMutation) OldThreadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *ThreadMessageMutation) ResetThreadID() {
	m.thread = nil
}

// SetRole sets the "role" field.
func (m *ThreadMessageMutation) SetRole(t threadmessage.Role) {
	m.role = &t
}

// Role returns the value of the "role" field in the mutation.
func (m *ThreadMessageMutation) Role() (r threadmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ThreadMessage entity.
// If the ThreadMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMessageMutation) OldRole(ctx context.Context) (v threadmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ThreadMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ThreadMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ThreadMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ThreadMessage entity.
// If the ThreadMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ThreadMessageMutation) ResetContent() {
	m.content = nil
}

// SetToolCalls sets the "tool_calls" field.
func (m *ThreadMessageMutation) SetToolCalls(value []map[string]interface{}) {
	m.tool_calls = &value
	m.appendtool_calls = nil
}

// ToolCalls returns the value of the "tool_calls" field in the mutation.
func (m *ThreadMessageMutation) ToolCalls() (r []map[string]interface{}, exists bool) {
	v := m.tool_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCalls returns the old "tool_calls" field's value of the ThreadMessage entity.
// If the ThreadMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMessageMutation) OldToolCalls(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCalls: %w", err)
	}
	return oldValue.ToolCalls, nil
}

// AppendToolCalls adds value to the "tool_calls" field.
func (m *ThreadMessageMutation) AppendToolCalls(value []map[string]interface{}) {
	m.appendtool_calls = append(m.appendtool_calls, value...)
}

// AppendedToolCalls returns the list of values that were appended to the "tool_calls" field in this mutation.
func (m *ThreadMessageMutation) AppendedToolCalls() ([]map[string]interface{}, bool) {
	if len(m.appendtool_calls) == 0 {
		return nil, false
	}
	return m.appendtool_calls, true
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (m *ThreadMessageMutation) ClearToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	m.clearedFields[threadmessage.FieldToolCalls] = struct{}{}
}

// ToolCallsCleared returns if the "tool_calls" field was cleared in this mutation.
func (m *ThreadMessageMutation) ToolCallsCleared() bool {
	_, ok := m.clearedFields[threadmessage.FieldToolCalls]
	return ok
}

// ResetToolCalls resets all changes to the "tool_calls" field.
func (m *ThreadMessageMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	delete(m.clearedFields, threadmessage.FieldToolCalls)
}

// SetToolCallID sets the "tool_call_id" field.
func (m *ThreadMessageMutation) SetToolCallID(s string) {
	m.tool_call_id = &s
}

// ToolCallID returns the value of the "tool_call_id" field in the mutation.
func (m *ThreadMessageMutation) ToolCallID() (r string, exists bool) {
	v := m.tool_call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCallID returns the old "tool_call_id" field's value of the ThreadMessage entity.
// If the ThreadMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMessageMutation) OldToolCallID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCallID: %w", err)
	}
	return oldValue.ToolCallID, nil
}

// ClearToolCallID clears the value of the "tool_call_id" field.
func (m *ThreadMessageMutation) ClearToolCallID() {
	m.tool_call_id = nil
	m.clearedFields[threadmessage.FieldToolCallID] = struct{}{}
}

// ToolCallIDCleared returns if the "tool_call_id" field was cleared in this mutation.
func (m *ThreadMessageMutation) ToolCallIDCleared() bool {
	_, ok := m.clearedFields[threadmessage.FieldToolCallID]
	return ok
}

// ResetToolCallID resets all changes to the "tool_call_id" field.
func (m *ThreadMessageMutation) ResetToolCallID() {
	m.tool_call_id = nil
	delete(m.clearedFields, threadmessage.FieldToolCallID)
}

// SetName sets the "name" field.
func (m *ThreadMessageMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ThreadMessageMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ThreadMessage entity.
// If the ThreadMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMessageMutation) OldName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *ThreadMessageMutation) ClearName() {
	m.name = nil
	m.clearedFields[threadmessage.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *ThreadMessageMutation) NameCleared() bool {
	_, ok := m.clearedFields[threadmessage.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *ThreadMessageMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, threadmessage.FieldName)
}

// SetMetadata sets the "metadata" field.
func (m *ThreadMessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ThreadMessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ThreadMessage entity.
// If the ThreadMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ThreadMessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[threadmessage.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ThreadMessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[threadmessage.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ThreadMessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, threadmessage.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ThreadMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ThreadMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ThreadMessage entity.
// If the ThreadMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ThreadMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearThread clears the "thread" edge to the Thread entity.
func (m *ThreadMessageMutation) ClearThread() {
	m.clearedthread = true
	m.clearedFields[threadmessage.FieldThreadID] = struct{}{}
}

// ThreadCleared reports if the "thread" edge to the Thread entity was cleared.
func (m *ThreadMessageMutation) ThreadCleared() bool {
	return m.clearedthread
}

// ThreadIDs returns the "thread" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ThreadID instead. It exists only for internal usage by the builders.
func (m *ThreadMessageMutation) ThreadIDs() (ids []int) {
	if id := m.thread; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetThread resets all changes to the "thread" edge.
func (m *ThreadMessageMutation) ResetThread() {
	m.thread = nil
	m.clearedthread = false
}

// Where appends a list predicates to the ThreadMessageMutation builder.
func (m *ThreadMessageMutation) Where(ps ...predicate.ThreadMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThreadMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThreadMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ThreadMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThreadMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThreadMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ThreadMessage).
func (m *ThreadMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThreadMessageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.thread != nil {
		fields = append(fields, threadmessage.FieldThreadID)
	}
	if m.role != nil {
		fields = append(fields, threadmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, threadmessage.FieldContent)
	}
	if m.tool_calls != nil {
		fields = append(fields, threadmessage.FieldToolCalls)
	}
	if m.tool_call_id != nil {
		fields = append(fields, threadmessage.FieldToolCallID)
	}
	if m.name != nil {
		fields = append(fields, threadmessage.FieldName)
	}
	if m.metadata != nil {
		fields = append(fields, threadmessage.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, threadmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThreadMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case threadmessage.FieldThreadID:
		return m.ThreadID()
	case threadmessage.FieldRole:
		return m.Role()
	case threadmessage.FieldContent:
		return m.Content()
	case threadmessage.FieldToolCalls:
		return m.ToolCalls()
	case threadmessage.FieldToolCallID:
		return m.ToolCallID()
	case threadmessage.FieldName:
		return m.Name()
	case threadmessage.FieldMetadata:
		return m.Metadata()
	case threadmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThreadMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case threadmessage.FieldThreadID:
		return m.OldThreadID(ctx)
	case threadmessage.FieldRole:
		return m.OldRole(ctx)
	case threadmessage.FieldContent:
		return m.OldContent(ctx)
	case threadmessage.FieldToolCalls:
		return m.OldToolCalls(ctx)
	case threadmessage.FieldToolCallID:
		return m.OldToolCallID(ctx)
	case threadmessage.FieldName:
		return m.OldName(ctx)
	case threadmessage.FieldMetadata:
		return m.OldMetadata(ctx)
	case threadmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ThreadMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case threadmessage.FieldThreadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case threadmessage.FieldRole:
		v, ok := value.(threadmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case threadmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case threadmessage.FieldToolCalls:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCalls(v)
		return nil
	case threadmessage.FieldToolCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCallID(v)
		return nil
	case threadmessage.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case threadmessage.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case threadmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ThreadMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThreadMessageMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThreadMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ThreadMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThreadMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(threadmessage.FieldToolCalls) {
		fields = append(fields, threadmessage.FieldToolCalls)
	}
	if m.FieldCleared(threadmessage.FieldToolCallID) {
		fields = append(fields, threadmessage.FieldToolCallID)
	}
	if m.FieldCleared(threadmessage.FieldName) {
		fields = append(fields, threadmessage.FieldName)
	}
	if m.FieldCleared(threadmessage.FieldMetadata) {
		fields = append(fields, threadmessage.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThreadMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThreadMessageMutation) ClearField(name string) error {
	switch name {
	case threadmessage.FieldToolCalls:
		m.ClearToolCalls()
		return nil
	case threadmessage.FieldToolCallID:
		m.ClearToolCallID()
		return nil
	case threadmessage.FieldName:
		m.ClearName()
		return nil
	case threadmessage.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ThreadMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThreadMessageMutation) ResetField(name string) error {
	switch name {
	case threadmessage.FieldThreadID:
		m.ResetThreadID()
		return nil
	case threadmessage.FieldRole:
		m.ResetRole()
		return nil
	case threadmessage.FieldContent:
		m.ResetContent()
		return nil
	case threadmessage.FieldToolCalls:
		m.ResetToolCalls()
		return nil
	case threadmessage.FieldToolCallID:
		m.ResetToolCallID()
		return nil
	case threadmessage.FieldName:
		m.ResetName()
		return nil
	case threadmessage.FieldMetadata:
		m.ResetMetadata()
		return nil
	case threadmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ThreadMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThreadMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.thread != nil {
		edges = append(edges, threadmessage.EdgeThread)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThreadMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case threadmessage.EdgeThread:
		if id := m.thread; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThreadMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThreadMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThreadMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedthread {
		edges = append(edges, threadmessage.EdgeThread)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThreadMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case threadmessage.EdgeThread:
		return m.clearedthread
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThreadMessageMutation) ClearEdge(name string) error {
	switch name {
	case threadmessage.EdgeThread:
		m.ClearThread()
		return nil
	}
	return fmt.Errorf("unknown ThreadMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThreadMessageMutation) ResetEdge(name string) error {
	switch name {
	case threadmessage.EdgeThread:
		m.ResetThread()
		return nil
	}
	return fmt.Errorf("unknown ThreadMessage edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	email              *string
	display_name       *string
	is_admin           *bool
	sealed_credentials *[]byte
	created_at         *time.Time
	clearedFields      map[string]struct{}
	fiches             map[int]struct{}
	removedfiches      map[int]struct{}
	clearedfiches      bool
	courses            map[int]struct{}
	removedcourses     map[int]struct{}
	clearedcourses     bool
	commis_jobs        map[int]struct{}
	removedcommis_jobs map[int]struct{}
	clearedcommis_jobs bool
	done               bool
	oldValue           func(context.Context) (*User, error)
	predicates         []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *UserMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[user.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *UserMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[user.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, user.FieldDisplayName)
}

// SetIsAdmin sets the "is_admin" field.
func (m *UserMutation) SetIsAdmin(b bool) {
	m.is_admin = &b
}

// IsAdmin returns the value of the "is_admin" field in the mutation.
func (m *UserMutation) IsAdmin() (r bool, exists bool) {
	v := m.is_admin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAdmin returns the old "is_admin" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsAdmin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAdmin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAdmin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAdmin: %w", err)
	}
	return oldValue.IsAdmin, nil
}

// ResetIsAdmin resets all changes to the "is_admin" field.
func (m *UserMutation) ResetIsAdmin() {
	m.is_admin = nil
}

// SetSealedCredentials sets the "sealed_credentials" field.
func (m *UserMutation) SetSealedCredentials(b []byte) {
	m.sealed_credentials = &b
}

// SealedCredentials returns the value of the "sealed_credentials" field in the mutation.
func (m *UserMutation) SealedCredentials() (r []byte, exists bool) {
	v := m.sealed_credentials
	if v == nil {
		return
	}
	return *v, true
}

// OldSealedCredentials returns the old "sealed_credentials" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSealedCredentials(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSealedCredentials is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSealedCredentials requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSealedCredentials: %w", err)
	}
	return oldValue.SealedCredentials, nil
}

// ClearSealedCredentials clears the value of the "sealed_credentials" field.
func (m *UserMutation) ClearSealedCredentials() {
	m.sealed_credentials = nil
	m.clearedFields[user.FieldSealedCredentials] = struct{}{}
}

// SealedCredentialsCleared returns if the "sealed_credentials" field was cleared in this mutation.
func (m *UserMutation) SealedCredentialsCleared() bool {
	_, ok := m.clearedFields[user.FieldSealedCredentials]
	return ok
}

// ResetSealedCredentials resets all changes to the "sealed_credentials" field.
func (m *UserMutation) ResetSealedCredentials() {
	m.sealed_credentials = nil
	delete(m.clearedFields, user.FieldSealedCredentials)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddFichIDs adds the "fiches" edge to the Fiche entity by ids.
func (m *UserMutation) AddFichIDs(ids ...int) {
	if m.fiches == nil {
		m.fiches = make(map[int]struct{})
	}
	for i := range ids {
		m.fiches[ids[i]] = struct{}{}
	}
}

// ClearFiches clears the "fiches" edge to the Fiche entity.
func (m *UserMutation) ClearFiches() {
	m.clearedfiches = true
}

// FichesCleared reports if the "fiches" edge to the Fiche entity was cleared.
func (m *UserMutation) FichesCleared() bool {
	return m.clearedfiches
}

// RemoveFichIDs removes the "fiches" edge to the Fiche entity by IDs.
func (m *UserMutation) RemoveFichIDs(ids ...int) {
	if m.removedfiches == nil {
		m.removedfiches = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.fiches, ids[i])
		m.removedfiches[ids[i]] = struct{}{}
	}
}

// RemovedFiches returns the removed IDs of the "fiches" edge to the Fiche entity.
func (m *UserMutation) RemovedFichesIDs() (ids []int) {
	for id := range m.removedfiches {
		ids = append(ids, id)
	}
	return
}

// FichesIDs returns the "fiches" edge IDs in the mutation.
func (m *UserMutation) FichesIDs() (ids []int) {
	for id := range m.fiches {
		ids = append(ids, id)
	}
	return
}

// ResetFiches resets all changes to the "fiches" edge.
func (m *UserMutation) ResetFiches() {
	m.fiches = nil
	m.clearedfiches = false
	m.removedfiches = nil
}

// AddCourseIDs adds the "courses" edge to the Course entity by ids.
func (m *UserMutation) AddCourseIDs(ids ...int) {
	if m.courses == nil {
		m.courses = make(map[int]struct{})
	}
	for i := range ids {
		m.courses[ids[i]] = struct{}{}
	}
}

// ClearCourses clears the "courses" edge to the Course entity.
func (m *UserMutation) ClearCourses() {
	m.clearedcourses = true
}

// CoursesCleared reports if the "courses" edge to the Course entity was cleared.
func (m *UserMutation) CoursesCleared() bool {
	return m.clearedcourses
}

// RemoveCourseIDs removes the "courses" edge to the Course entity by IDs.
func (m *UserMutation) RemoveCourseIDs(ids ...int) {
	if m.removedcourses == nil {
		m.removedcourses = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.courses, ids[i])
		m.removedcourses[ids[i]] = struct{}{}
	}
}

// RemovedCourses returns the removed IDs of the "courses" edge to the Course entity.
func (m *UserMutation) RemovedCoursesIDs() (ids []int) {
	for id := range m.removedcourses {
		ids = append(ids, id)
	}
	return
}

// CoursesIDs returns the "courses" edge IDs in the mutation.
func (m *UserMutation) CoursesIDs() (ids []int) {
	for id := range m.courses {
		ids = append(ids, id)
	}
	return
}

// ResetCourses resets all changes to the "courses" edge.
func (m *UserMutation) ResetCourses() {
	m.courses = nil
	m.clearedcourses = false
	m.removedcourses = nil
}

// AddCommisJobIDs adds the "commis_jobs" edge to the CommisJob entity by ids.
func (m *UserMutation) AddCommisJobIDs(ids ...int) {
	if m.commis_jobs == nil {
		m.commis_jobs = make(map[int]struct{})
	}
	for i := range ids {
		m.commis_jobs[ids[i]] = struct{}{}
	}
}

// ClearCommisJobs clears the "commis_jobs" edge to the CommisJob entity.
func (m *UserMutation) ClearCommisJobs() {
	m.clearedcommis_jobs = true
}

// CommisJobsCleared reports if the "commis_jobs" edge to the CommisJob entity was cleared.
func (m *UserMutation) CommisJobsCleared() bool {
	return m.clearedcommis_jobs
}

// RemoveCommisJobIDs removes the "commis_jobs" edge to the CommisJob entity by IDs.
func (m *UserMutation) RemoveCommisJobIDs(ids ...int) {
	if m.removedcommis_jobs == nil {
		m.removedcommis_jobs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.commis_jobs, ids[i])
		m.removedcommis_jobs[ids[i]] = struct{}{}
	}
}

// RemovedCommisJobs returns the removed IDs of the "commis_jobs" edge to the CommisJob entity.
func (m *UserMutation) RemovedCommisJobsIDs() (ids []int) {
	for id := range m.removedcommis_jobs {
		ids = append(ids, id)
	}
	return
}

// CommisJobsIDs returns the "commis_jobs" edge IDs in the mutation.
func (m *UserMutation) CommisJobsIDs() (ids []int) {
	for id := range m.commis_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetCommisJobs resets all changes to the "commis_jobs" edge.
func (m *UserMutation) ResetCommisJobs() {
	m.commis_jobs = nil
	m.clearedcommis_jobs = false
	m.removedcommis_jobs = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.is_admin != nil {
		fields = append(fields, user.FieldIsAdmin)
	}
	if m.sealed_credentials != nil {
		fields = append(fields, user.FieldSealedCredentials)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldIsAdmin:
		return m.IsAdmin()
	case user.FieldSealedCredentials:
		return m.SealedCredentials()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldIsAdmin:
		return m.OldIsAdmin(ctx)
	case user.FieldSealedCredentials:
		return m.OldSealedCredentials(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldIsAdmin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAdmin(v)
		return nil
	case user.FieldSealedCredentials:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSealedCredentials(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDisplayName) {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.FieldCleared(user.FieldSealedCredentials) {
		fields = append(fields, user.FieldSealedCredentials)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case user.FieldSealedCredentials:
		m.ClearSealedCredentials()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldIsAdmin:
		m.ResetIsAdmin()
		return nil
	case user.FieldSealedCredentials:
		m.ResetSealedCredentials()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.fiches != nil {
		edges = append(edges, user.EdgeFiches)
	}
	if m.courses != nil {
		edges = append(edges, user.EdgeCourses)
	}
	if m.commis_jobs != nil {
		edges = append(edges, user.EdgeCommisJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeFiches:
		ids := make([]ent.Value, 0, len(m.fiches))
		for id := range m.fiches {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCourses:
		ids := make([]ent.Value, 0, len(m.courses))
		for id := range m.courses {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCommisJobs:
		ids := make([]ent.Value, 0, len(m.commis_jobs))
		for id := range m.commis_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfiches != nil {
		edges = append(edges, user.EdgeFiches)
	}
	if m.removedcourses != nil {
		edges = append(edges, user.EdgeCourses)
	}
	if m.removedcommis_jobs != nil {
		edges = append(edges, user.EdgeCommisJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeFiches:
		ids := make([]ent.Value, 0, len(m.removedfiches))
		for id := range m.removedfiches {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCourses:
		ids := make([]ent.Value, 0, len(m.removedcourses))
		for id := range m.removedcourses {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCommisJobs:
		ids := make([]ent.Value, 0, len(m.removedcommis_jobs))
		for id := range m.removedcommis_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedfiches {
		edges = append(edges, user.EdgeFiches)
	}
	if m.clearedcourses {
		edges = append(edges, user.EdgeCourses)
	}
	if m.clearedcommis_jobs {
		edges = append(edges, user.EdgeCommisJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeFiches:
		return m.clearedfiches
	case user.EdgeCourses:
		return m.clearedcourses
	case user.EdgeCommisJobs:
		return m.clearedcommis_jobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeFiches:
		m.ResetFiches()
		return nil
	case user.EdgeCourses:
		m.ResetCourses()
		return nil
	case user.EdgeCommisJobs:
		m.ResetCommisJobs()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
