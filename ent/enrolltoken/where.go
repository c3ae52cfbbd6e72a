// Code generated by ent, DO NOT EDIT.

package enrolltoken

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/oikos-sh/brigade/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLTE(FieldID, id))
}

// TokenHash applies equality check predicate on the "token_hash" field. It's identical to TokenHashEQ.
func TokenHash(v string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldTokenHash, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldCreatedBy, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldExpiresAt, v))
}

// UsedAt applies equality check predicate on the "used_at" field. It's identical to UsedAtEQ.
func UsedAt(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldUsedAt, v))
}

// RunnerID applies equality check predicate on the "runner_id" field. It's identical to RunnerIDEQ.
func RunnerID(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldRunnerID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldCreatedAt, v))
}

// TokenHashEQ applies the EQ predicate on the "token_hash" field.
func TokenHashEQ(v string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldTokenHash, v))
}

// TokenHashNEQ applies the NEQ predicate on the "token_hash" field.
func TokenHashNEQ(v string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNEQ(FieldTokenHash, v))
}

// TokenHashIn applies the In predicate on the "token_hash" field.
func TokenHashIn(vs ...string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldIn(FieldTokenHash, vs...))
}

// TokenHashNotIn applies the NotIn predicate on the "token_hash" field.
func TokenHashNotIn(vs ...string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNotIn(FieldTokenHash, vs...))
}

// TokenHashGT applies the GT predicate on the "token_hash" field.
func TokenHashGT(v string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGT(FieldTokenHash, v))
}

// TokenHashGTE applies the GTE predicate on the "token_hash" field.
func TokenHashGTE(v string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGTE(FieldTokenHash, v))
}

// TokenHashLT applies the LT predicate on the "token_hash" field.
func TokenHashLT(v string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLT(FieldTokenHash, v))
}

// TokenHashLTE applies the LTE predicate on the "token_hash" field.
func TokenHashLTE(v string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLTE(FieldTokenHash, v))
}

// TokenHashContains applies the Contains predicate on the "token_hash" field.
func TokenHashContains(v string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldContains(FieldTokenHash, v))
}

// TokenHashHasPrefix applies the HasPrefix predicate on the "token_hash" field.
func TokenHashHasPrefix(v string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldHasPrefix(FieldTokenHash, v))
}

// TokenHashHasSuffix applies the HasSuffix predicate on the "token_hash" field.
func TokenHashHasSuffix(v string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldHasSuffix(FieldTokenHash, v))
}

// TokenHashEqualFold applies the EqualFold predicate on the "token_hash" field.
func TokenHashEqualFold(v string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEqualFold(FieldTokenHash, v))
}

// TokenHashContainsFold applies the ContainsFold predicate on the "token_hash" field.
func TokenHashContainsFold(v string) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldContainsFold(FieldTokenHash, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLTE(FieldCreatedBy, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLTE(FieldExpiresAt, v))
}

// UsedAtEQ applies the EQ predicate on the "used_at" field.
func UsedAtEQ(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldUsedAt, v))
}

// UsedAtNEQ applies the NEQ predicate on the "used_at" field.
func UsedAtNEQ(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNEQ(FieldUsedAt, v))
}

// UsedAtIn applies the In predicate on the "used_at" field.
func UsedAtIn(vs ...time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldIn(FieldUsedAt, vs...))
}

// UsedAtNotIn applies the NotIn predicate on the "used_at" field.
func UsedAtNotIn(vs ...time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNotIn(FieldUsedAt, vs...))
}

// UsedAtGT applies the GT predicate on the "used_at" field.
func UsedAtGT(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGT(FieldUsedAt, v))
}

// UsedAtGTE applies the GTE predicate on the "used_at" field.
func UsedAtGTE(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGTE(FieldUsedAt, v))
}

// UsedAtLT applies the LT predicate on the "used_at" field.
func UsedAtLT(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLT(FieldUsedAt, v))
}

// UsedAtLTE applies the LTE predicate on the "used_at" field.
func UsedAtLTE(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLTE(FieldUsedAt, v))
}

// UsedAtIsNil applies the IsNil predicate on the "used_at" field.
func UsedAtIsNil() predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldIsNull(FieldUsedAt))
}

// UsedAtNotNil applies the NotNil predicate on the "used_at" field.
func UsedAtNotNil() predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNotNull(FieldUsedAt))
}

// RunnerIDEQ applies the EQ predicate on the "runner_id" field.
func RunnerIDEQ(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldRunnerID, v))
}

// RunnerIDNEQ applies the NEQ predicate on the "runner_id" field.
func RunnerIDNEQ(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNEQ(FieldRunnerID, v))
}

// RunnerIDIn applies the In predicate on the "runner_id" field.
func RunnerIDIn(vs ...int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldIn(FieldRunnerID, vs...))
}

// RunnerIDNotIn applies the NotIn predicate on the "runner_id" field.
func RunnerIDNotIn(vs ...int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNotIn(FieldRunnerID, vs...))
}

// RunnerIDGT applies the GT predicate on the "runner_id" field.
func RunnerIDGT(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGT(FieldRunnerID, v))
}

// RunnerIDGTE applies the GTE predicate on the "runner_id" field.
func RunnerIDGTE(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGTE(FieldRunnerID, v))
}

// RunnerIDLT applies the LT predicate on the "runner_id" field.
func RunnerIDLT(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLT(FieldRunnerID, v))
}

// RunnerIDLTE applies the LTE predicate on the "runner_id" field.
func RunnerIDLTE(v int) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLTE(FieldRunnerID, v))
}

// RunnerIDIsNil applies the IsNil predicate on the "runner_id" field.
func RunnerIDIsNil() predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldIsNull(FieldRunnerID))
}

// RunnerIDNotNil applies the NotNil predicate on the "runner_id" field.
func RunnerIDNotNil() predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNotNull(FieldRunnerID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EnrollToken {
	return predicate.EnrollToken(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EnrollToken) predicate.EnrollToken {
	return predicate.EnrollToken(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EnrollToken) predicate.EnrollToken {
	return predicate.EnrollToken(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EnrollToken) predicate.EnrollToken {
	return predicate.EnrollToken(sql.NotPredicates(p))
}
