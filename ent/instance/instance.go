// Code generated by ent, DO NOT EDIT.

package instance

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the instance type in the database.
	Label = "instance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubdomain holds the string denoting the subdomain field in the database.
	FieldSubdomain = "subdomain"
	// FieldContainerName holds the string denoting the container_name field in the database.
	FieldContainerName = "container_name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDeployRing holds the string denoting the deploy_ring field in the database.
	FieldDeployRing = "deploy_ring"
	// FieldDeployState holds the string denoting the deploy_state field in the database.
	FieldDeployState = "deploy_state"
	// FieldCurrentImage holds the string denoting the current_image field in the database.
	FieldCurrentImage = "current_image"
	// FieldLastHealthyImage holds the string denoting the last_healthy_image field in the database.
	FieldLastHealthyImage = "last_healthy_image"
	// FieldImageDigest holds the string denoting the image_digest field in the database.
	FieldImageDigest = "image_digest"
	// FieldDeployID holds the string denoting the deploy_id field in the database.
	FieldDeployID = "deploy_id"
	// FieldDeployError holds the string denoting the deploy_error field in the database.
	FieldDeployError = "deploy_error"
	// FieldLastHealthAt holds the string denoting the last_health_at field in the database.
	FieldLastHealthAt = "last_health_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDeployment holds the string denoting the deployment edge name in mutations.
	EdgeDeployment = "deployment"
	// DeploymentFieldID holds the string denoting the ID field of the Deployment.
	DeploymentFieldID = "deploy_id"
	// Table holds the table name of the instance in the database.
	Table = "instances"
	// DeploymentTable is the table that holds the deployment relation/edge.
	DeploymentTable = "instances"
	// DeploymentInverseTable is the table name for the Deployment entity.
	// It exists in this package in order to avoid circular dependency with the "deployment" package.
	DeploymentInverseTable = "deployments"
	// DeploymentColumn is the table column denoting the deployment relation/edge.
	DeploymentColumn = "deploy_id"
)

// Columns holds all SQL columns for instance fields.
var Columns = []string{
	FieldID,
	FieldSubdomain,
	FieldContainerName,
	FieldStatus,
	FieldDeployRing,
	FieldDeployState,
	FieldCurrentImage,
	FieldLastHealthyImage,
	FieldImageDigest,
	FieldDeployID,
	FieldDeployError,
	FieldLastHealthAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDeployRing holds the default value on creation for the "deploy_ring" field.
	DefaultDeployRing int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive         Status = "active"
	StatusFailed         Status = "failed"
	StatusDeprovisioning Status = "deprovisioning"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusFailed, StatusDeprovisioning:
		return nil
	default:
		return fmt.Errorf("instance: invalid enum value for status field: %q", s)
	}
}

// DeployState defines the type for the "deploy_state" enum field.
type DeployState string

// DeployStateIdle is the default value of the DeployState enum.
const DefaultDeployState = DeployStateIdle

// DeployState values.
const (
	DeployStateIdle       DeployState = "idle"
	DeployStatePending    DeployState = "pending"
	DeployStateDeploying  DeployState = "deploying"
	DeployStateSucceeded  DeployState = "succeeded"
	DeployStateFailed     DeployState = "failed"
	DeployStateRolledBack DeployState = "rolled_back"
	DeployStateSkipped    DeployState = "skipped"
)

func (ds DeployState) String() string {
	return string(ds)
}

// DeployStateValidator is a validator for the "deploy_state" field enum values. It is called by the builders before save.
func DeployStateValidator(ds DeployState) error {
	switch ds {
	case DeployStateIdle, DeployStatePending, DeployStateDeploying, DeployStateSucceeded, DeployStateFailed, DeployStateRolledBack, DeployStateSkipped:
		return nil
	default:
		return fmt.Errorf("instance: invalid enum value for deploy_state field: %q", ds)
	}
}

// OrderOption defines the ordering options for the Instance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubdomain orders the results by the subdomain field.
func BySubdomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubdomain, opts...).ToFunc()
}

// ByContainerName orders the results by the container_name field.
func ByContainerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContainerName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDeployRing orders the results by the deploy_ring field.
func ByDeployRing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeployRing, opts...).ToFunc()
}

// ByDeployState orders the results by the deploy_state field.
func ByDeployState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeployState, opts...).ToFunc()
}

// ByCurrentImage orders the results by the current_image field.
func ByCurrentImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentImage, opts...).ToFunc()
}

// ByLastHealthyImage orders the results by the last_healthy_image field.
func ByLastHealthyImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHealthyImage, opts...).ToFunc()
}

// ByImageDigest orders the results by the image_digest field.
func ByImageDigest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageDigest, opts...).ToFunc()
}

// ByDeployID orders the results by the deploy_id field.
func ByDeployID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeployID, opts...).ToFunc()
}

// ByDeployError orders the results by the deploy_error field.
func ByDeployError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeployError, opts...).ToFunc()
}

// ByLastHealthAt orders the results by the last_health_at field.
func ByLastHealthAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHealthAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDeploymentField orders the results by deployment field.
func ByDeploymentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeploymentStep(), sql.OrderByField(field, opts...))
	}
}
func newDeploymentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeploymentInverseTable, DeploymentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DeploymentTable, DeploymentColumn),
	)
}
