// Code generated by ent, DO NOT EDIT.

package fiche

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/oikos-sh/brigade/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Fiche {
	return predicate.Fiche(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Fiche {
	return predicate.Fiche(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Fiche {
	return predicate.Fiche(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Fiche {
	return predicate.Fiche(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Fiche {
	return predicate.Fiche(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Fiche {
	return predicate.Fiche(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Fiche {
	return predicate.Fiche(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v int) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldOwnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldName, v))
}

// SystemInstructions applies equality check predicate on the "system_instructions" field. It's identical to SystemInstructionsEQ.
func SystemInstructions(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldSystemInstructions, v))
}

// TaskInstructions applies equality check predicate on the "task_instructions" field. It's identical to TaskInstructionsEQ.
func TaskInstructions(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldTaskInstructions, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldModel, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldLastError, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldLastRunAt, v))
}

// NextRunAt applies equality check predicate on the "next_run_at" field. It's identical to NextRunAtEQ.
func NextRunAt(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldNextRunAt, v))
}

// IsConcierge applies equality check predicate on the "is_concierge" field. It's identical to IsConciergeEQ.
func IsConcierge(v bool) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldIsConcierge, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v int) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v int) predicate.Fiche {
	return predicate.Fiche(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...int) predicate.Fiche {
	return predicate.Fiche(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...int) predicate.Fiche {
	return predicate.Fiche(sql.FieldNotIn(FieldOwnerID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Fiche {
	return predicate.Fiche(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Fiche {
	return predicate.Fiche(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldContainsFold(FieldName, v))
}

// SystemInstructionsEQ applies the EQ predicate on the "system_instructions" field.
func SystemInstructionsEQ(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldSystemInstructions, v))
}

// SystemInstructionsNEQ applies the NEQ predicate on the "system_instructions" field.
func SystemInstructionsNEQ(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldNEQ(FieldSystemInstructions, v))
}

// SystemInstructionsIn applies the In predicate on the "system_instructions" field.
func SystemInstructionsIn(vs ...string) predicate.Fiche {
	return predicate.Fiche(sql.FieldIn(FieldSystemInstructions, vs...))
}

// SystemInstructionsNotIn applies the NotIn predicate on the "system_instructions" field.
func SystemInstructionsNotIn(vs ...string) predicate.Fiche {
	return predicate.Fiche(sql.FieldNotIn(FieldSystemInstructions, vs...))
}

// SystemInstructionsGT applies the GT predicate on the "system_instructions" field.
func SystemInstructionsGT(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldGT(FieldSystemInstructions, v))
}

// SystemInstructionsGTE applies the GTE predicate on the "system_instructions" field.
func SystemInstructionsGTE(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldGTE(FieldSystemInstructions, v))
}

// SystemInstructionsLT applies the LT predicate on the "system_instructions" field.
func SystemInstructionsLT(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldLT(FieldSystemInstructions, v))
}

// SystemInstructionsLTE applies the LTE predicate on the "system_instructions" field.
func SystemInstructionsLTE(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldLTE(FieldSystemInstructions, v))
}

// SystemInstructionsContains applies the Contains predicate on the "system_instructions" field.
func SystemInstructionsContains(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldContains(FieldSystemInstructions, v))
}

// SystemInstructionsHasPrefix applies the HasPrefix predicate on the "system_instructions" field.
func SystemInstructionsHasPrefix(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldHasPrefix(FieldSystemInstructions, v))
}

// SystemInstructionsHasSuffix applies the HasSuffix predicate on the "system_instructions" field.
func SystemInstructionsHasSuffix(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldHasSuffix(FieldSystemInstructions, v))
}

// SystemInstructionsEqualFold applies the EqualFold predicate on the "system_instructions" field.
func SystemInstructionsEqualFold(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEqualFold(FieldSystemInstructions, v))
}

// SystemInstructionsContainsFold applies the ContainsFold predicate on the "system_instructions" field.
func SystemInstructionsContainsFold(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldContainsFold(FieldSystemInstructions, v))
}

// TaskInstructionsEQ applies the EQ predicate on the "task_instructions" field.
func TaskInstructionsEQ(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldTaskInstructions, v))
}

// TaskInstructionsNEQ applies the NEQ predicate on the "task_instructions" field.
func TaskInstructionsNEQ(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldNEQ(FieldTaskInstructions, v))
}

// TaskInstructionsIn applies the In predicate on the "task_instructions" field.
func TaskInstructionsIn(vs ...string) predicate.Fiche {
	return predicate.Fiche(sql.FieldIn(FieldTaskInstructions, vs...))
}

// TaskInstructionsNotIn applies the NotIn predicate on the "task_instructions" field.
func TaskInstructionsNotIn(vs ...string) predicate.Fiche {
	return predicate.Fiche(sql.FieldNotIn(FieldTaskInstructions, vs...))
}

// TaskInstructionsGT applies the GT predicate on the "task_instructions" field.
func TaskInstructionsGT(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldGT(FieldTaskInstructions, v))
}

// TaskInstructionsGTE applies the GTE predicate on the "task_instructions" field.
func TaskInstructionsGTE(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldGTE(FieldTaskInstructions, v))
}

// TaskInstructionsLT applies the LT predicate on the "task_instructions" field.
func TaskInstructionsLT(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldLT(FieldTaskInstructions, v))
}

// TaskInstructionsLTE applies the LTE predicate on the "task_instructions" field.
func TaskInstructionsLTE(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldLTE(FieldTaskInstructions, v))
}

// TaskInstructionsContains applies the Contains predicate on the "task_instructions" field.
func TaskInstructionsContains(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldContains(FieldTaskInstructions, v))
}

// TaskInstructionsHasPrefix applies the HasPrefix predicate on the "task_instructions" field.
func TaskInstructionsHasPrefix(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldHasPrefix(FieldTaskInstructions, v))
}

// TaskInstructionsHasSuffix applies the HasSuffix predicate on the "task_instructions" field.
func TaskInstructionsHasSuffix(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldHasSuffix(FieldTaskInstructions, v))
}

// TaskInstructionsIsNil applies the IsNil predicate on the "task_instructions" field.
func TaskInstructionsIsNil() predicate.Fiche {
	return predicate.Fiche(sql.FieldIsNull(FieldTaskInstructions))
}

// TaskInstructionsNotNil applies the NotNil predicate on the "task_instructions" field.
func TaskInstructionsNotNil() predicate.Fiche {
	return predicate.Fiche(sql.FieldNotNull(FieldTaskInstructions))
}

// TaskInstructionsEqualFold applies the EqualFold predicate on the "task_instructions" field.
func TaskInstructionsEqualFold(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEqualFold(FieldTaskInstructions, v))
}

// TaskInstructionsContainsFold applies the ContainsFold predicate on the "task_instructions" field.
func TaskInstructionsContainsFold(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldContainsFold(FieldTaskInstructions, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Fiche {
	return predicate.Fiche(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Fiche {
	return predicate.Fiche(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldContainsFold(FieldModel, v))
}

// AllowedToolsIsNil applies the IsNil predicate on the "allowed_tools" field.
func AllowedToolsIsNil() predicate.Fiche {
	return predicate.Fiche(sql.FieldIsNull(FieldAllowedTools))
}

// AllowedToolsNotNil applies the NotNil predicate on the "allowed_tools" field.
func AllowedToolsNotNil() predicate.Fiche {
	return predicate.Fiche(sql.FieldNotNull(FieldAllowedTools))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Fiche {
	return predicate.Fiche(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Fiche {
	return predicate.Fiche(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Fiche {
	return predicate.Fiche(sql.FieldNotIn(FieldStatus, vs...))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Fiche {
	return predicate.Fiche(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Fiche {
	return predicate.Fiche(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Fiche {
	return predicate.Fiche(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Fiche {
	return predicate.Fiche(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Fiche {
	return predicate.Fiche(sql.FieldContainsFold(FieldLastError, v))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.Fiche {
	return predicate.Fiche(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.Fiche {
	return predicate.Fiche(sql.FieldNotNull(FieldLastRunAt))
}

// NextRunAtEQ applies the EQ predicate on the "next_run_at" field.
func NextRunAtEQ(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldNextRunAt, v))
}

// NextRunAtNEQ applies the NEQ predicate on the "next_run_at" field.
func NextRunAtNEQ(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldNEQ(FieldNextRunAt, v))
}

// NextRunAtIn applies the In predicate on the "next_run_at" field.
func NextRunAtIn(vs ...time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldIn(FieldNextRunAt, vs...))
}

// NextRunAtNotIn applies the NotIn predicate on the "next_run_at" field.
func NextRunAtNotIn(vs ...time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldNotIn(FieldNextRunAt, vs...))
}

// NextRunAtGT applies the GT predicate on the "next_run_at" field.
func NextRunAtGT(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldGT(FieldNextRunAt, v))
}

// NextRunAtGTE applies the GTE predicate on the "next_run_at" field.
func NextRunAtGTE(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldGTE(FieldNextRunAt, v))
}

// NextRunAtLT applies the LT predicate on the "next_run_at" field.
func NextRunAtLT(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldLT(FieldNextRunAt, v))
}

// NextRunAtLTE applies the LTE predicate on the "next_run_at" field.
func NextRunAtLTE(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldLTE(FieldNextRunAt, v))
}

// NextRunAtIsNil applies the IsNil predicate on the "next_run_at" field.
func NextRunAtIsNil() predicate.Fiche {
	return predicate.Fiche(sql.FieldIsNull(FieldNextRunAt))
}

// NextRunAtNotNil applies the NotNil predicate on the "next_run_at" field.
func NextRunAtNotNil() predicate.Fiche {
	return predicate.Fiche(sql.FieldNotNull(FieldNextRunAt))
}

// IsConciergeEQ applies the EQ predicate on the "is_concierge" field.
func IsConciergeEQ(v bool) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldIsConcierge, v))
}

// IsConciergeNEQ applies the NEQ predicate on the "is_concierge" field.
func IsConciergeNEQ(v bool) predicate.Fiche {
	return predicate.Fiche(sql.FieldNEQ(FieldIsConcierge, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Fiche {
	return predicate.Fiche(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Fiche {
	return predicate.Fiche(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Fiche {
	return predicate.Fiche(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasThreads applies the HasEdge predicate on the "threads" edge.
func HasThreads() predicate.Fiche {
	return predicate.Fiche(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ThreadsTable, ThreadsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasThreadsWith applies the HasEdge predicate on the "threads" edge with a given conditions (other predicates).
func HasThreadsWith(preds ...predicate.Thread) predicate.Fiche {
	return predicate.Fiche(func(s *sql.Selector) {
		step := newThreadsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCourses applies the HasEdge predicate on the "courses" edge.
func HasCourses() predicate.Fiche {
	return predicate.Fiche(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CoursesTable, CoursesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCoursesWith applies the HasEdge predicate on the "courses" edge with a given conditions (other predicates).
func HasCoursesWith(preds ...predicate.Course) predicate.Fiche {
	return predicate.Fiche(func(s *sql.Selector) {
		step := newCoursesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Fiche) predicate.Fiche {
	return predicate.Fiche(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Fiche) predicate.Fiche {
	return predicate.Fiche(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Fiche) predicate.Fiche {
	return predicate.Fiche(sql.NotPredicates(p))
}
