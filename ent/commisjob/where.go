// Code generated by ent, DO NOT EDIT.

package commisjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/oikos-sh/brigade/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldOwnerID, v))
}

// Task applies equality check predicate on the "task" field. It's identical to TaskEQ.
func Task(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldTask, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldModel, v))
}

// ConciergeCourseID applies equality check predicate on the "concierge_course_id" field. It's identical to ConciergeCourseIDEQ.
func ConciergeCourseID(v int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldConciergeCourseID, v))
}

// ToolCallID applies equality check predicate on the "tool_call_id" field. It's identical to ToolCallIDEQ.
func ToolCallID(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldToolCallID, v))
}

// CommisID applies equality check predicate on the "commis_id" field. It's identical to CommisIDEQ.
func CommisID(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldCommisID, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldFinishedAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotIn(FieldOwnerID, vs...))
}

// TaskEQ applies the EQ predicate on the "task" field.
func TaskEQ(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldTask, v))
}

// TaskNEQ applies the NEQ predicate on the "task" field.
func TaskNEQ(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNEQ(FieldTask, v))
}

// TaskIn applies the In predicate on the "task" field.
func TaskIn(vs ...string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIn(FieldTask, vs...))
}

// TaskNotIn applies the NotIn predicate on the "task" field.
func TaskNotIn(vs ...string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotIn(FieldTask, vs...))
}

// TaskGT applies the GT predicate on the "task" field.
func TaskGT(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGT(FieldTask, v))
}

// TaskGTE applies the GTE predicate on the "task" field.
func TaskGTE(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGTE(FieldTask, v))
}

// TaskLT applies the LT predicate on the "task" field.
func TaskLT(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLT(FieldTask, v))
}

// TaskLTE applies the LTE predicate on the "task" field.
func TaskLTE(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLTE(FieldTask, v))
}

// TaskContains applies the Contains predicate on the "task" field.
func TaskContains(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldContains(FieldTask, v))
}

// TaskHasPrefix applies the HasPrefix predicate on the "task" field.
func TaskHasPrefix(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldHasPrefix(FieldTask, v))
}

// TaskHasSuffix applies the HasSuffix predicate on the "task" field.
func TaskHasSuffix(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldHasSuffix(FieldTask, v))
}

// TaskEqualFold applies the EqualFold predicate on the "task" field.
func TaskEqualFold(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEqualFold(FieldTask, v))
}

// TaskContainsFold applies the ContainsFold predicate on the "task" field.
func TaskContainsFold(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldContainsFold(FieldTask, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldContainsFold(FieldModel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotIn(FieldStatus, vs...))
}

// ConciergeCourseIDEQ applies the EQ predicate on the "concierge_course_id" field.
func ConciergeCourseIDEQ(v int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldConciergeCourseID, v))
}

// ConciergeCourseIDNEQ applies the NEQ predicate on the "concierge_course_id" field.
func ConciergeCourseIDNEQ(v int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNEQ(FieldConciergeCourseID, v))
}

// ConciergeCourseIDIn applies the In predicate on the "concierge_course_id" field.
func ConciergeCourseIDIn(vs ...int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIn(FieldConciergeCourseID, vs...))
}

// ConciergeCourseIDNotIn applies the NotIn predicate on the "concierge_course_id" field.
func ConciergeCourseIDNotIn(vs ...int) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotIn(FieldConciergeCourseID, vs...))
}

// ConciergeCourseIDIsNil applies the IsNil predicate on the "concierge_course_id" field.
func ConciergeCourseIDIsNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIsNull(FieldConciergeCourseID))
}

// ConciergeCourseIDNotNil applies the NotNil predicate on the "concierge_course_id" field.
func ConciergeCourseIDNotNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotNull(FieldConciergeCourseID))
}

// ToolCallIDEQ applies the EQ predicate on the "tool_call_id" field.
func ToolCallIDEQ(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldToolCallID, v))
}

// ToolCallIDNEQ applies the NEQ predicate on the "tool_call_id" field.
func ToolCallIDNEQ(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNEQ(FieldToolCallID, v))
}

// ToolCallIDIn applies the In predicate on the "tool_call_id" field.
func ToolCallIDIn(vs ...string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIn(FieldToolCallID, vs...))
}

// ToolCallIDNotIn applies the NotIn predicate on the "tool_call_id" field.
func ToolCallIDNotIn(vs ...string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotIn(FieldToolCallID, vs...))
}

// ToolCallIDGT applies the GT predicate on the "tool_call_id" field.
func ToolCallIDGT(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGT(FieldToolCallID, v))
}

// ToolCallIDGTE applies the GTE predicate on the "tool_call_id" field.
func ToolCallIDGTE(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGTE(FieldToolCallID, v))
}

// ToolCallIDLT applies the LT predicate on the "tool_call_id" field.
func ToolCallIDLT(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLT(FieldToolCallID, v))
}

// ToolCallIDLTE applies the LTE predicate on the "tool_call_id" field.
func ToolCallIDLTE(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLTE(FieldToolCallID, v))
}

// ToolCallIDContains applies the Contains predicate on the "tool_call_id" field.
func ToolCallIDContains(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldContains(FieldToolCallID, v))
}

// ToolCallIDHasPrefix applies the HasPrefix predicate on the "tool_call_id" field.
func ToolCallIDHasPrefix(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldHasPrefix(FieldToolCallID, v))
}

// ToolCallIDHasSuffix applies the HasSuffix predicate on the "tool_call_id" field.
func ToolCallIDHasSuffix(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldHasSuffix(FieldToolCallID, v))
}

// ToolCallIDIsNil applies the IsNil predicate on the "tool_call_id" field.
func ToolCallIDIsNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIsNull(FieldToolCallID))
}

// ToolCallIDNotNil applies the NotNil predicate on the "tool_call_id" field.
func ToolCallIDNotNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotNull(FieldToolCallID))
}

// ToolCallIDEqualFold applies the EqualFold predicate on the "tool_call_id" field.
func ToolCallIDEqualFold(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEqualFold(FieldToolCallID, v))
}

// ToolCallIDContainsFold applies the ContainsFold predicate on the "tool_call_id" field.
func ToolCallIDContainsFold(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldContainsFold(FieldToolCallID, v))
}

// CommisIDEQ applies the EQ predicate on the "commis_id" field.
func CommisIDEQ(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldCommisID, v))
}

// CommisIDNEQ applies the NEQ predicate on the "commis_id" field.
func CommisIDNEQ(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNEQ(FieldCommisID, v))
}

// CommisIDIn applies the In predicate on the "commis_id" field.
func CommisIDIn(vs ...string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIn(FieldCommisID, vs...))
}

// CommisIDNotIn applies the NotIn predicate on the "commis_id" field.
func CommisIDNotIn(vs ...string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotIn(FieldCommisID, vs...))
}

// CommisIDGT applies the GT predicate on the "commis_id" field.
func CommisIDGT(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGT(FieldCommisID, v))
}

// CommisIDGTE applies the GTE predicate on the "commis_id" field.
func CommisIDGTE(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGTE(FieldCommisID, v))
}

// CommisIDLT applies the LT predicate on the "commis_id" field.
func CommisIDLT(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLT(FieldCommisID, v))
}

// CommisIDLTE applies the LTE predicate on the "commis_id" field.
func CommisIDLTE(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLTE(FieldCommisID, v))
}

// CommisIDContains applies the Contains predicate on the "commis_id" field.
func CommisIDContains(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldContains(FieldCommisID, v))
}

// CommisIDHasPrefix applies the HasPrefix predicate on the "commis_id" field.
func CommisIDHasPrefix(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldHasPrefix(FieldCommisID, v))
}

// CommisIDHasSuffix applies the HasSuffix predicate on the "commis_id" field.
func CommisIDHasSuffix(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldHasSuffix(FieldCommisID, v))
}

// CommisIDEqualFold applies the EqualFold predicate on the "commis_id" field.
func CommisIDEqualFold(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEqualFold(FieldCommisID, v))
}

// CommisIDContainsFold applies the ContainsFold predicate on the "commis_id" field.
func CommisIDContainsFold(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldContainsFold(FieldCommisID, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotNull(FieldConfig))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldContainsFold(FieldError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotNull(FieldFinishedAt))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.CommisJob {
	return predicate.CommisJob(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.CommisJob {
	return predicate.CommisJob(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.CommisJob {
	return predicate.CommisJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.CommisJob {
	return predicate.CommisJob(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConciergeCourse applies the HasEdge predicate on the "concierge_course" edge.
func HasConciergeCourse() predicate.CommisJob {
	return predicate.CommisJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConciergeCourseTable, ConciergeCourseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConciergeCourseWith applies the HasEdge predicate on the "concierge_course" edge with a given conditions (other predicates).
func HasConciergeCourseWith(preds ...predicate.Course) predicate.CommisJob {
	return predicate.CommisJob(func(s *sql.Selector) {
		step := newConciergeCourseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommisJob) predicate.CommisJob {
	return predicate.CommisJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommisJob) predicate.CommisJob {
	return predicate.CommisJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommisJob) predicate.CommisJob {
	return predicate.CommisJob(sql.NotPredicates(p))
}
