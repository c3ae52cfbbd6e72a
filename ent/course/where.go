// Code generated by ent, DO NOT EDIT.

package course

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/oikos-sh/brigade/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldID, id))
}

// FicheID applies equality check predicate on the "fiche_id" field. It's identical to FicheIDEQ.
func FicheID(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldFicheID, v))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldThreadID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldOwnerID, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldCorrelationID, v))
}

// ContinuationOfCourseID applies equality check predicate on the "continuation_of_course_id" field. It's identical to ContinuationOfCourseIDEQ.
func ContinuationOfCourseID(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldContinuationOfCourseID, v))
}

// AssistantMessageID applies equality check predicate on the "assistant_message_id" field. It's identical to AssistantMessageIDEQ.
func AssistantMessageID(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldAssistantMessageID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldSummary, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldFinishedAt, v))
}

// FicheIDEQ applies the EQ predicate on the "fiche_id" field.
func FicheIDEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldFicheID, v))
}

// FicheIDNEQ applies the NEQ predicate on the "fiche_id" field.
func FicheIDNEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldFicheID, v))
}

// FicheIDIn applies the In predicate on the "fiche_id" field.
func FicheIDIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldFicheID, vs...))
}

// FicheIDNotIn applies the NotIn predicate on the "fiche_id" field.
func FicheIDNotIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldFicheID, vs...))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v int) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v int) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v int) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v int) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldThreadID, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldOwnerID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldStatus, vs...))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v Trigger) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v Trigger) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...Trigger) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...Trigger) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldTrigger, vs...))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.Course {
	return predicate.Course(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.Course {
	return predicate.Course(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.Course {
	return predicate.Course(sql.FieldContainsFold(FieldCorrelationID, v))
}

// ContinuationOfCourseIDEQ applies the EQ predicate on the "continuation_of_course_id" field.
func ContinuationOfCourseIDEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldContinuationOfCourseID, v))
}

// ContinuationOfCourseIDNEQ applies the NEQ predicate on the "continuation_of_course_id" field.
func ContinuationOfCourseIDNEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldContinuationOfCourseID, v))
}

// ContinuationOfCourseIDIn applies the In predicate on the "continuation_of_course_id" field.
func ContinuationOfCourseIDIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldContinuationOfCourseID, vs...))
}

// ContinuationOfCourseIDNotIn applies the NotIn predicate on the "continuation_of_course_id" field.
func ContinuationOfCourseIDNotIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldContinuationOfCourseID, vs...))
}

// ContinuationOfCourseIDGT applies the GT predicate on the "continuation_of_course_id" field.
func ContinuationOfCourseIDGT(v int) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldContinuationOfCourseID, v))
}

// ContinuationOfCourseIDGTE applies the GTE predicate on the "continuation_of_course_id" field.
func ContinuationOfCourseIDGTE(v int) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldContinuationOfCourseID, v))
}

// ContinuationOfCourseIDLT applies the LT predicate on the "continuation_of_course_id" field.
func ContinuationOfCourseIDLT(v int) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldContinuationOfCourseID, v))
}

// ContinuationOfCourseIDLTE applies the LTE predicate on the "continuation_of_course_id" field.
func ContinuationOfCourseIDLTE(v int) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldContinuationOfCourseID, v))
}

// ContinuationOfCourseIDIsNil applies the IsNil predicate on the "continuation_of_course_id" field.
func ContinuationOfCourseIDIsNil() predicate.Course {
	return predicate.Course(sql.FieldIsNull(FieldContinuationOfCourseID))
}

// ContinuationOfCourseIDNotNil applies the NotNil predicate on the "continuation_of_course_id" field.
func ContinuationOfCourseIDNotNil() predicate.Course {
	return predicate.Course(sql.FieldNotNull(FieldContinuationOfCourseID))
}

// AssistantMessageIDEQ applies the EQ predicate on the "assistant_message_id" field.
func AssistantMessageIDEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldAssistantMessageID, v))
}

// AssistantMessageIDNEQ applies the NEQ predicate on the "assistant_message_id" field.
func AssistantMessageIDNEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldAssistantMessageID, v))
}

// AssistantMessageIDIn applies the In predicate on the "assistant_message_id" field.
func AssistantMessageIDIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldAssistantMessageID, vs...))
}

// AssistantMessageIDNotIn applies the NotIn predicate on the "assistant_message_id" field.
func AssistantMessageIDNotIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldAssistantMessageID, vs...))
}

// AssistantMessageIDGT applies the GT predicate on the "assistant_message_id" field.
func AssistantMessageIDGT(v int) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldAssistantMessageID, v))
}

// AssistantMessageIDGTE applies the GTE predicate on the "assistant_message_id" field.
func AssistantMessageIDGTE(v int) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldAssistantMessageID, v))
}

// AssistantMessageIDLT applies the LT predicate on the "assistant_message_id" field.
func AssistantMessageIDLT(v int) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldAssistantMessageID, v))
}

// AssistantMessageIDLTE applies the LTE predicate on the "assistant_message_id" field.
func AssistantMessageIDLTE(v int) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldAssistantMessageID, v))
}

// AssistantMessageIDIsNil applies the IsNil predicate on the "assistant_message_id" field.
func AssistantMessageIDIsNil() predicate.Course {
	return predicate.Course(sql.FieldIsNull(FieldAssistantMessageID))
}

// AssistantMessageIDNotNil applies the NotNil predicate on the "assistant_message_id" field.
func AssistantMessageIDNotNil() predicate.Course {
	return predicate.Course(sql.FieldNotNull(FieldAssistantMessageID))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Course {
	return predicate.Course(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Course {
	return predicate.Course(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Course {
	return predicate.Course(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Course {
	return predicate.Course(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Course {
	return predicate.Course(sql.FieldContainsFold(FieldSummary, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Course {
	return predicate.Course(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Course {
	return predicate.Course(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Course {
	return predicate.Course(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Course {
	return predicate.Course(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Course {
	return predicate.Course(sql.FieldContainsFold(FieldError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Course {
	return predicate.Course(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Course {
	return predicate.Course(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.Course {
	return predicate.Course(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.Course {
	return predicate.Course(sql.FieldNotNull(FieldFinishedAt))
}

// HasFiche applies the HasEdge predicate on the "fiche" edge.
func HasFiche() predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FicheTable, FicheColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFicheWith applies the HasEdge predicate on the "fiche" edge with a given conditions (other predicates).
func HasFicheWith(preds ...predicate.Fiche) predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := newFicheStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCommisJobs applies the HasEdge predicate on the "commis_jobs" edge.
func HasCommisJobs() predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CommisJobsTable, CommisJobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommisJobsWith applies the HasEdge predicate on the "commis_jobs" edge with a given conditions (other predicates).
func HasCommisJobsWith(preds ...predicate.CommisJob) predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := newCommisJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.CourseEvent) predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Course) predicate.Course {
	return predicate.Course(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Course) predicate.Course {
	return predicate.Course(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Course) predicate.Course {
	return predicate.Course(sql.NotPredicates(p))
}
