// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/oikos-sh/brigade/ent/fiche"
	"github.com/oikos-sh/brigade/ent/user"
)

// Fiche is the model entity for the Fiche schema.
type Fiche struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID int `json:"owner_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// SystemInstructions holds the value of the "system_instructions" field.
	SystemInstructions string `json:"system_instructions,omitempty"`
	// TaskInstructions holds the value of the "task_instructions" field.
	TaskInstructions string `json:"task_instructions,omitempty"`
	// LLM model identifier
	Model string `json:"model,omitempty"`
	// AllowedTools holds the value of the "allowed_tools" field.
	AllowedTools []string `json:"allowed_tools,omitempty"`
	// Status holds the value of the "status" field.
	Status fiche.Status `json:"status,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// LastRunAt holds the value of the "last_run_at" field.
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
	// NextRunAt holds the value of the "next_run_at" field.
	NextRunAt *time.Time `json:"next_run_at,omitempty"`
	// The per-user concierge fiche created on first chat
	IsConcierge bool `json:"is_concierge,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FicheQuery when eager-loading is set.
	Edges        FicheEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FicheEdges holds the relations/edges for other nodes in the graph.
type FicheEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// Threads holds the value of the threads edge.
	Threads []*Thread `json:"threads,omitempty"`
	// Courses holds the value of the courses edge.
	Courses []*Course `json:"courses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FicheEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// ThreadsOrErr returns the Threads value or an error if the edge
// was not loaded in eager-loading.
func (e FicheEdges) ThreadsOrErr() ([]*Thread, error) {
	if e.loadedTypes[1] {
		return e.Threads, nil
	}
	return nil, &NotLoadedError{edge: "threads"}
}

// CoursesOrErr returns the Courses value or an error if the edge
// was not loaded in eager-loading.
func (e FicheEdges) CoursesOrErr() ([]*Course, error) {
	if e.loadedTypes[2] {
		return e.Courses, nil
	}
	return nil, &NotLoadedError{edge: "courses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Fiche) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fiche.FieldAllowedTools:
			values[i] = new([]byte)
		case fiche.FieldIsConcierge:
			values[i] = new(sql.NullBool)
		case fiche.FieldID, fiche.FieldOwnerID:
			values[i] = new(sql.NullInt64)
		case fiche.FieldName, fiche.FieldSystemInstructions, fiche.FieldTaskInstructions, fiche.FieldModel, fiche.FieldStatus, fiche.FieldLastError:
			values[i] = new(sql.NullString)
		case fiche.FieldLastRunAt, fiche.FieldNextRunAt, fiche.FieldCreatedAt, fiche.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Fiche fields.
func (_m *Fiche) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fiche.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case fiche.FieldOwnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = int(value.Int64)
			}
		case fiche.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case fiche.FieldSystemInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_instructions", values[i])
			} else if value.Valid {
				_m.SystemInstructions = value.String
			}
		case fiche.FieldTaskInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_instructions", values[i])
			} else if value.Valid {
				_m.TaskInstructions = value.String
			}
		case fiche.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case fiche.FieldAllowedTools:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_tools", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AllowedTools); err != nil {
					return fmt.Errorf("unmarshal field allowed_tools: %w", err)
				}
			}
		case fiche.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = fiche.Status(value.String)
			}
		case fiche.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case fiche.FieldLastRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_at", values[i])
			} else if value.Valid {
				_m.LastRunAt = new(time.Time)
				*_m.LastRunAt = value.Time
			}
		case fiche.FieldNextRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_run_at", values[i])
			} else if value.Valid {
				_m.NextRunAt = new(time.Time)
				*_m.NextRunAt = value.Time
			}
		case fiche.FieldIsConcierge:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_concierge", values[i])
			} else if value.Valid {
				_m.IsConcierge = value.Bool
			}
		case fiche.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fiche.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Fiche.
// This includes values selected through modifiers, order, etc.
func (_m *Fiche) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the Fiche entity.
func (_m *Fiche) QueryOwner() *UserQuery {
	return NewFicheClient(_m.config).QueryOwner(_m)
}

// QueryThreads queries the "threads" edge of the Fiche entity.
func (_m *Fiche) QueryThreads() *ThreadQuery {
	return NewFicheClient(_m.config).QueryThreads(_m)
}

// QueryCourses queries the "courses" edge of the Fiche entity.
func (_m *Fiche) QueryCourses() *CourseQuery {
	return NewFicheClient(_m.config).QueryCourses(_m)
}

// Update returns a builder for updating this Fiche.
// Note that you need to call Fiche.Unwrap() before calling this method if this Fiche
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Fiche) Update() *FicheUpdateOne {
	return NewFicheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Fiche entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Fiche) Unwrap() *Fiche {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Fiche is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Fiche) String() string {
	var builder strings.Builder
	builder.WriteString("Fiche(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("system_instructions=")
	builder.WriteString(_m.SystemInstructions)
	builder.WriteString(", ")
	builder.WriteString("task_instructions=")
	builder.WriteString(_m.TaskInstructions)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("allowed_tools=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowedTools))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastRunAt; v != nil {
		builder.WriteString("last_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextRunAt; v != nil {
		builder.WriteString("next_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_concierge=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsConcierge))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Fiches is a parsable slice of Fiche.
type Fiches []*Fiche
