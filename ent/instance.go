// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/oikos-sh/brigade/ent/deployment"
	"github.com/oikos-sh/brigade/ent/instance"
)

// Instance is the model entity for the Instance schema.
type Instance struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Subdomain holds the value of the "subdomain" field.
	Subdomain string `json:"subdomain,omitempty"`
	// ContainerName holds the value of the "container_name" field.
	ContainerName string `json:"container_name,omitempty"`
	// Status holds the value of the "status" field.
	Status instance.Status `json:"status,omitempty"`
	// DeployRing holds the value of the "deploy_ring" field.
	DeployRing int `json:"deploy_ring,omitempty"`
	// DeployState holds the value of the "deploy_state" field.
	DeployState instance.DeployState `json:"deploy_state,omitempty"`
	// CurrentImage holds the value of the "current_image" field.
	CurrentImage string `json:"current_image,omitempty"`
	// LastHealthyImage holds the value of the "last_healthy_image" field.
	LastHealthyImage *string `json:"last_healthy_image,omitempty"`
	// Digest of the pulled image, when the provisioner reports one
	ImageDigest *string `json:"image_digest,omitempty"`
	// The deployment currently (or last) touching this instance
	DeployID *string `json:"deploy_id,omitempty"`
	// DeployError holds the value of the "deploy_error" field.
	DeployError *string `json:"deploy_error,omitempty"`
	// LastHealthAt holds the value of the "last_health_at" field.
	LastHealthAt *time.Time `json:"last_health_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InstanceQuery when eager-loading is set.
	Edges        InstanceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InstanceEdges holds the relations/edges for other nodes in the graph.
type InstanceEdges struct {
	// Deployment holds the value of the deployment edge.
	Deployment *Deployment `json:"deployment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DeploymentOrErr returns the Deployment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InstanceEdges) DeploymentOrErr() (*Deployment, error) {
	if e.Deployment != nil {
		return e.Deployment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: deployment.Label}
	}
	return nil, &NotLoadedError{edge: "deployment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Instance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case instance.FieldID, instance.FieldDeployRing:
			values[i] = new(sql.NullInt64)
		case instance.FieldSubdomain, instance.FieldContainerName, instance.FieldStatus, instance.FieldDeployState, instance.FieldCurrentImage, instance.FieldLastHealthyImage, instance.FieldImageDigest, instance.FieldDeployID, instance.FieldDeployError:
			values[i] = new(sql.NullString)
		case instance.FieldLastHealthAt, instance.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Instance fields.
func (_m *Instance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case instance.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case instance.FieldSubdomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subdomain", values[i])
			} else if value.Valid {
				_m.Subdomain = value.String
			}
		case instance.FieldContainerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field container_name", values[i])
			} else if value.Valid {
				_m.ContainerName = value.String
			}
		case instance.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = instance.Status(value.String)
			}
		case instance.FieldDeployRing:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field deploy_ring", values[i])
			} else if value.Valid {
				_m.DeployRing = int(value.Int64)
			}
		case instance.FieldDeployState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deploy_state", values[i])
			} else if value.Valid {
				_m.DeployState = instance.DeployState(value.String)
			}
		case instance.FieldCurrentImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_image", values[i])
			} else if value.Valid {
				_m.CurrentImage = value.String
			}
		case instance.FieldLastHealthyImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_healthy_image", values[i])
			} else if value.Valid {
				_m.LastHealthyImage = new(string)
				*_m.LastHealthyImage = value.String
			}
		case instance.FieldImageDigest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_digest", values[i])
			} else if value.Valid {
				_m.ImageDigest = new(string)
				*_m.ImageDigest = value.String
			}
		case instance.FieldDeployID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deploy_id", values[i])
			} else if value.Valid {
				_m.DeployID = new(string)
				*_m.DeployID = value.String
			}
		case instance.FieldDeployError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deploy_error", values[i])
			} else if value.Valid {
				_m.DeployError = new(string)
				*_m.DeployError = value.String
			}
		case instance.FieldLastHealthAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_health_at", values[i])
			} else if value.Valid {
				_m.LastHealthAt = new(time.Time)
				*_m.LastHealthAt = value.Time
			}
		case instance.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Instance.
// This includes values selected through modifiers, order, etc.
func (_m *Instance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDeployment queries the "deployment" edge of the Instance entity.
func (_m *Instance) QueryDeployment() *DeploymentQuery {
	return NewInstanceClient(_m.config).QueryDeployment(_m)
}

// Update returns a builder for updating this Instance.
// Note that you need to call Instance.Unwrap() before calling this method if this Instance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Instance) Update() *InstanceUpdateOne {
	return NewInstanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Instance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Instance) Unwrap() *Instance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Instance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Instance) String() string {
	var builder strings.Builder
	builder.WriteString("Instance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subdomain=")
	builder.WriteString(_m.Subdomain)
	builder.WriteString(", ")
	builder.WriteString("container_name=")
	builder.WriteString(_m.ContainerName)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("deploy_ring=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeployRing))
	builder.WriteString(", ")
	builder.WriteString("deploy_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeployState))
	builder.WriteString(", ")
	builder.WriteString("current_image=")
	builder.WriteString(_m.CurrentImage)
	builder.WriteString(", ")
	if v := _m.LastHealthyImage; v != nil {
		builder.WriteString("last_healthy_image=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ImageDigest; v != nil {
		builder.WriteString("image_digest=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeployID; v != nil {
		builder.WriteString("deploy_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeployError; v != nil {
		builder.WriteString("deploy_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHealthAt; v != nil {
		builder.WriteString("last_health_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Instances is a parsable slice of Instance.
type Instances []*Instance
