// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/ent/user"
)

// CommisJob is the model entity for the CommisJob schema.
type CommisJob struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID int `json:"owner_id,omitempty"`
	// Task holds the value of the "task" field.
	Task string `json:"task,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Status holds the value of the "status" field.
	Status commisjob.Status `json:"status,omitempty"`
	// ConciergeCourseID holds the value of the "concierge_course_id" field.
	ConciergeCourseID *int `json:"concierge_course_id,omitempty"`
	// From the concierge's suspending assistant message
	ToolCallID *string `json:"tool_call_id,omitempty"`
	// Filesystem key into the artifact store
	CommisID string `json:"commis_id,omitempty"`
	// execution_mode, git_repo, resume_session_id, owner_id, ...
	Config map[string]interface{} `json:"config,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// For stale-job reclaim
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CommisJobQuery when eager-loading is set.
	Edges        CommisJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CommisJobEdges holds the relations/edges for other nodes in the graph.
type CommisJobEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// ConciergeCourse holds the value of the concierge_course edge.
	ConciergeCourse *Course `json:"concierge_course,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommisJobEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// ConciergeCourseOrErr returns the ConciergeCourse value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommisJobEdges) ConciergeCourseOrErr() (*Course, error) {
	if e.ConciergeCourse != nil {
		return e.ConciergeCourse, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: course.Label}
	}
	return nil, &NotLoadedError{edge: "concierge_course"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CommisJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case commisjob.FieldConfig:
			values[i] = new([]byte)
		case commisjob.FieldID, commisjob.FieldOwnerID, commisjob.FieldConciergeCourseID:
			values[i] = new(sql.NullInt64)
		case commisjob.FieldTask, commisjob.FieldModel, commisjob.FieldStatus, commisjob.FieldToolCallID, commisjob.FieldCommisID, commisjob.FieldError:
			values[i] = new(sql.NullString)
		case commisjob.FieldCreatedAt, commisjob.FieldStartedAt, commisjob.FieldFinishedAt, commisjob.FieldLastHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CommisJob fields.
func (_m *CommisJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case commisjob.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case commisjob.FieldOwnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = int(value.Int64)
			}
		case commisjob.FieldTask:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task", values[i])
			} else if value.Valid {
				_m.Task = value.String
			}
		case commisjob.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case commisjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = commisjob.Status(value.String)
			}
		case commisjob.FieldConciergeCourseID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concierge_course_id", values[i])
			} else if value.Valid {
				_m.ConciergeCourseID = new(int)
				*_m.ConciergeCourseID = int(value.Int64)
			}
		case commisjob.FieldToolCallID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_call_id", values[i])
			} else if value.Valid {
				_m.ToolCallID = new(string)
				*_m.ToolCallID = value.String
			}
		case commisjob.FieldCommisID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commis_id", values[i])
			} else if value.Valid {
				_m.CommisID = value.String
			}
		case commisjob.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case commisjob.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case commisjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case commisjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case commisjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case commisjob.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CommisJob.
// This includes values selected through modifiers, order, etc.
func (_m *CommisJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the CommisJob entity.
func (_m *CommisJob) QueryOwner() *UserQuery {
	return NewCommisJobClient(_m.config).QueryOwner(_m)
}

// QueryConciergeCourse queries the "concierge_course" edge of the CommisJob entity.
func (_m *CommisJob) QueryConciergeCourse() *CourseQuery {
	return NewCommisJobClient(_m.config).QueryConciergeCourse(_m)
}

// Update returns a builder for updating this CommisJob.
// Note that you need to call CommisJob.Unwrap() before calling this method if this CommisJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CommisJob) Update() *CommisJobUpdateOne {
	return NewCommisJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CommisJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CommisJob) Unwrap() *CommisJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CommisJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CommisJob) String() string {
	var builder strings.Builder
	builder.WriteString("CommisJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("task=")
	builder.WriteString(_m.Task)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ConciergeCourseID; v != nil {
		builder.WriteString("concierge_course_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ToolCallID; v != nil {
		builder.WriteString("tool_call_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("commis_id=")
	builder.WriteString(_m.CommisID)
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CommisJobs is a parsable slice of CommisJob.
type CommisJobs []*CommisJob
