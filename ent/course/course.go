// Code generated by ent, DO NOT EDIT.

package course

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the course type in the database.
	Label = "course"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFicheID holds the string denoting the fiche_id field in the database.
	FieldFicheID = "fiche_id"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldContinuationOfCourseID holds the string denoting the continuation_of_course_id field in the database.
	FieldContinuationOfCourseID = "continuation_of_course_id"
	// FieldAssistantMessageID holds the string denoting the assistant_message_id field in the database.
	FieldAssistantMessageID = "assistant_message_id"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeFiche holds the string denoting the fiche edge name in mutations.
	EdgeFiche = "fiche"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// EdgeCommisJobs holds the string denoting the commis_jobs edge name in mutations.
	EdgeCommisJobs = "commis_jobs"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// Table holds the table name of the course in the database.
	Table = "courses"
	// FicheTable is the table that holds the fiche relation/edge.
	FicheTable = "courses"
	// FicheInverseTable is the table name for the Fiche entity.
	// It exists in this package in order to avoid circular dependency with the "fiche" package.
	FicheInverseTable = "fiches"
	// FicheColumn is the table column denoting the fiche relation/edge.
	FicheColumn = "fiche_id"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "courses"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "owner_id"
	// CommisJobsTable is the table that holds the commis_jobs relation/edge.
	CommisJobsTable = "commis_jobs"
	// CommisJobsInverseTable is the table name for the CommisJob entity.
	// It exists in this package in order to avoid circular dependency with the "commisjob" package.
	CommisJobsInverseTable = "commis_jobs"
	// CommisJobsColumn is the table column denoting the commis_jobs relation/edge.
	CommisJobsColumn = "concierge_course_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "course_events"
	// EventsInverseTable is the table name for the CourseEvent entity.
	// It exists in this package in order to avoid circular dependency with the "courseevent" package.
	EventsInverseTable = "course_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "course_id"
)

// Columns holds all SQL columns for course fields.
var Columns = []string{
	FieldID,
	FieldFicheID,
	FieldThreadID,
	FieldOwnerID,
	FieldStatus,
	FieldTrigger,
	FieldCorrelationID,
	FieldContinuationOfCourseID,
	FieldAssistantMessageID,
	FieldSummary,
	FieldError,
	FieldCreatedAt,
	FieldStartedAt,
	FieldFinishedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
	StatusWaiting   Status = "waiting"
	StatusDeferred  Status = "deferred"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusRunning, StatusSuccess, StatusFailed, StatusCancelled, StatusWaiting, StatusDeferred:
		return nil
	default:
		return fmt.Errorf("course: invalid enum value for status field: %q", s)
	}
}

// Trigger defines the type for the "trigger" enum field.
type Trigger string

// TriggerAPI is the default value of the Trigger enum.
const DefaultTrigger = TriggerAPI

// Trigger values.
const (
	TriggerAPI          Trigger = "api"
	TriggerManual       Trigger = "manual"
	TriggerSchedule     Trigger = "schedule"
	TriggerContinuation Trigger = "continuation"
)

func (t Trigger) String() string {
	return string(t)
}

// TriggerValidator is a validator for the "trigger" field enum values. It is called by the builders before save.
func TriggerValidator(t Trigger) error {
	switch t {
	case TriggerAPI, TriggerManual, TriggerSchedule, TriggerContinuation:
		return nil
	default:
		return fmt.Errorf("course: invalid enum value for trigger field: %q", t)
	}
}

// OrderOption defines the ordering options for the Course queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFicheID orders the results by the fiche_id field.
func ByFicheID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFicheID, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByContinuationOfCourseID orders the results by the continuation_of_course_id field.
func ByContinuationOfCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContinuationOfCourseID, opts...).ToFunc()
}

// ByAssistantMessageID orders the results by the assistant_message_id field.
func ByAssistantMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssistantMessageID, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByFicheField orders the results by fiche field.
func ByFicheField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFicheStep(), sql.OrderByField(field, opts...))
	}
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}

// ByCommisJobsCount orders the results by commis_jobs count.
func ByCommisJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCommisJobsStep(), opts...)
	}
}

// ByCommisJobs orders the results by commis_jobs terms.
func ByCommisJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommisJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFicheStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FicheInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FicheTable, FicheColumn),
	)
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
func newCommisJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommisJobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CommisJobsTable, CommisJobsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
