// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/oikos-sh/brigade/ent/runner"
	"github.com/oikos-sh/brigade/ent/runnerjob"
)

// RunnerJob is the model entity for the RunnerJob schema.
type RunnerJob struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunnerID holds the value of the "runner_id" field.
	RunnerID int `json:"runner_id,omitempty"`
	// Command holds the value of the "command" field.
	Command string `json:"command,omitempty"`
	// Status holds the value of the "status" field.
	Status runnerjob.Status `json:"status,omitempty"`
	// Output holds the value of the "output" field.
	Output string `json:"output,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunnerJobQuery when eager-loading is set.
	Edges        RunnerJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunnerJobEdges holds the relations/edges for other nodes in the graph.
type RunnerJobEdges struct {
	// Runner holds the value of the runner edge.
	Runner *Runner `json:"runner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunnerOrErr returns the Runner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunnerJobEdges) RunnerOrErr() (*Runner, error) {
	if e.Runner != nil {
		return e.Runner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: runner.Label}
	}
	return nil, &NotLoadedError{edge: "runner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunnerJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runnerjob.FieldID, runnerjob.FieldRunnerID:
			values[i] = new(sql.NullInt64)
		case runnerjob.FieldCommand, runnerjob.FieldStatus, runnerjob.FieldOutput, runnerjob.FieldError:
			values[i] = new(sql.NullString)
		case runnerjob.FieldCreatedAt, runnerjob.FieldStartedAt, runnerjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunnerJob fields.
func (_m *RunnerJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runnerjob.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case runnerjob.FieldRunnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field runner_id", values[i])
			} else if value.Valid {
				_m.RunnerID = int(value.Int64)
			}
		case runnerjob.FieldCommand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command", values[i])
			} else if value.Valid {
				_m.Command = value.String
			}
		case runnerjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = runnerjob.Status(value.String)
			}
		case runnerjob.FieldOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value.Valid {
				_m.Output = value.String
			}
		case runnerjob.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case runnerjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case runnerjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case runnerjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RunnerJob.
// This includes values selected through modifiers, order, etc.
func (_m *RunnerJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRunner queries the "runner" edge of the RunnerJob entity.
func (_m *RunnerJob) QueryRunner() *RunnerQuery {
	return NewRunnerJobClient(_m.config).QueryRunner(_m)
}

// Update returns a builder for updating this RunnerJob.
// Note that you need to call RunnerJob.Unwrap() before calling this method if this RunnerJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunnerJob) Update() *RunnerJobUpdateOne {
	return NewRunnerJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunnerJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunnerJob) Unwrap() *RunnerJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunnerJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunnerJob) String() string {
	var builder strings.Builder
	builder.WriteString("RunnerJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("runner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunnerID))
	builder.WriteString(", ")
	builder.WriteString("command=")
	builder.WriteString(_m.Command)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(_m.Output)
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
	builder.WriteByte(')')
	return builder.String()
}

// RunnerJobs is a parsable slice of RunnerJob.
type RunnerJobs []*RunnerJob
