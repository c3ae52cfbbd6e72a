// Code generated by ent, DO NOT EDIT.

package instance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/oikos-sh/brigade/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldID, id))
}

// Subdomain applies equality check predicate on the "subdomain" field. It's identical to SubdomainEQ.
func Subdomain(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldSubdomain, v))
}

// ContainerName applies equality check predicate on the "container_name" field. It's identical to ContainerNameEQ.
func ContainerName(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldContainerName, v))
}

// DeployRing applies equality check predicate on the "deploy_ring" field. It's identical to DeployRingEQ.
func DeployRing(v int) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldDeployRing, v))
}

// CurrentImage applies equality check predicate on the "current_image" field. It's identical to CurrentImageEQ.
func CurrentImage(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldCurrentImage, v))
}

// LastHealthyImage applies equality check predicate on the "last_healthy_image" field. It's identical to LastHealthyImageEQ.
func LastHealthyImage(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldLastHealthyImage, v))
}

// ImageDigest applies equality check predicate on the "image_digest" field. It's identical to ImageDigestEQ.
func ImageDigest(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldImageDigest, v))
}

// DeployID applies equality check predicate on the "deploy_id" field. It's identical to DeployIDEQ.
func DeployID(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldDeployID, v))
}

// DeployError applies equality check predicate on the "deploy_error" field. It's identical to DeployErrorEQ.
func DeployError(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldDeployError, v))
}

// LastHealthAt applies equality check predicate on the "last_health_at" field. It's identical to LastHealthAtEQ.
func LastHealthAt(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldLastHealthAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldCreatedAt, v))
}

// SubdomainEQ applies the EQ predicate on the "subdomain" field.
func SubdomainEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldSubdomain, v))
}

// SubdomainNEQ applies the NEQ predicate on the "subdomain" field.
func SubdomainNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldSubdomain, v))
}

// SubdomainIn applies the In predicate on the "subdomain" field.
func SubdomainIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldSubdomain, vs...))
}

// SubdomainNotIn applies the NotIn predicate on the "subdomain" field.
func SubdomainNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldSubdomain, vs...))
}

// SubdomainGT applies the GT predicate on the "subdomain" field.
func SubdomainGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldSubdomain, v))
}

// SubdomainGTE applies the GTE predicate on the "subdomain" field.
func SubdomainGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldSubdomain, v))
}

// SubdomainLT applies the LT predicate on the "subdomain" field.
func SubdomainLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldSubdomain, v))
}

// SubdomainLTE applies the LTE predicate on the "subdomain" field.
func SubdomainLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldSubdomain, v))
}

// SubdomainContains applies the Contains predicate on the "subdomain" field.
func SubdomainContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldSubdomain, v))
}

// SubdomainHasPrefix applies the HasPrefix predicate on the "subdomain" field.
func SubdomainHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldSubdomain, v))
}

// SubdomainHasSuffix applies the HasSuffix predicate on the "subdomain" field.
func SubdomainHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldSubdomain, v))
}

// SubdomainEqualFold applies the EqualFold predicate on the "subdomain" field.
func SubdomainEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldSubdomain, v))
}

// SubdomainContainsFold applies the ContainsFold predicate on the "subdomain" field.
func SubdomainContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldSubdomain, v))
}

// ContainerNameEQ applies the EQ predicate on the "container_name" field.
func ContainerNameEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldContainerName, v))
}

// ContainerNameNEQ applies the NEQ predicate on the "container_name" field.
func ContainerNameNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldContainerName, v))
}

// ContainerNameIn applies the In predicate on the "container_name" field.
func ContainerNameIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldContainerName, vs...))
}

// ContainerNameNotIn applies the NotIn predicate on the "container_name" field.
func ContainerNameNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldContainerName, vs...))
}

// ContainerNameGT applies the GT predicate on the "container_name" field.
func ContainerNameGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldContainerName, v))
}

// ContainerNameGTE applies the GTE predicate on the "container_name" field.
func ContainerNameGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldContainerName, v))
}

// ContainerNameLT applies the LT predicate on the "container_name" field.
func ContainerNameLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldContainerName, v))
}

// ContainerNameLTE applies the LTE predicate on the "container_name" field.
func ContainerNameLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldContainerName, v))
}

// ContainerNameContains applies the Contains predicate on the "container_name" field.
func ContainerNameContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldContainerName, v))
}

// ContainerNameHasPrefix applies the HasPrefix predicate on the "container_name" field.
func ContainerNameHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldContainerName, v))
}

// ContainerNameHasSuffix applies the HasSuffix predicate on the "container_name" field.
func ContainerNameHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldContainerName, v))
}

// ContainerNameEqualFold applies the EqualFold predicate on the "container_name" field.
func ContainerNameEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldContainerName, v))
}

// ContainerNameContainsFold applies the ContainsFold predicate on the "container_name" field.
func ContainerNameContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldContainerName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldStatus, vs...))
}

// DeployRingEQ applies the EQ predicate on the "deploy_ring" field.
func DeployRingEQ(v int) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldDeployRing, v))
}

// DeployRingNEQ applies the NEQ predicate on the "deploy_ring" field.
func DeployRingNEQ(v int) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldDeployRing, v))
}

// DeployRingIn applies the In predicate on the "deploy_ring" field.
func DeployRingIn(vs ...int) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldDeployRing, vs...))
}

// DeployRingNotIn applies the NotIn predicate on the "deploy_ring" field.
func DeployRingNotIn(vs ...int) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldDeployRing, vs...))
}

// DeployRingGT applies the GT predicate on the "deploy_ring" field.
func DeployRingGT(v int) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldDeployRing, v))
}

// DeployRingGTE applies the GTE predicate on the "deploy_ring" field.
func DeployRingGTE(v int) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldDeployRing, v))
}

// DeployRingLT applies the LT predicate on the "deploy_ring" field.
func DeployRingLT(v int) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldDeployRing, v))
}

// DeployRingLTE applies the LTE predicate on the "deploy_ring" field.
func DeployRingLTE(v int) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldDeployRing, v))
}

// DeployStateEQ applies the EQ predicate on the "deploy_state" field.
func DeployStateEQ(v DeployState) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldDeployState, v))
}

// DeployStateNEQ applies the NEQ predicate on the "deploy_state" field.
func DeployStateNEQ(v DeployState) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldDeployState, v))
}

// DeployStateIn applies the In predicate on the "deploy_state" field.
func DeployStateIn(vs ...DeployState) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldDeployState, vs...))
}

// DeployStateNotIn applies the NotIn predicate on the "deploy_state" field.
func DeployStateNotIn(vs ...DeployState) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldDeployState, vs...))
}

// CurrentImageEQ applies the EQ predicate on the "current_image" field.
func CurrentImageEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldCurrentImage, v))
}

// CurrentImageNEQ applies the NEQ predicate on the "current_image" field.
func CurrentImageNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldCurrentImage, v))
}

// CurrentImageIn applies the In predicate on the "current_image" field.
func CurrentImageIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldCurrentImage, vs...))
}

// CurrentImageNotIn applies the NotIn predicate on the "current_image" field.
func CurrentImageNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldCurrentImage, vs...))
}

// CurrentImageGT applies the GT predicate on the "current_image" field.
func CurrentImageGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldCurrentImage, v))
}

// CurrentImageGTE applies the GTE predicate on the "current_image" field.
func CurrentImageGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldCurrentImage, v))
}

// CurrentImageLT applies the LT predicate on the "current_image" field.
func CurrentImageLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldCurrentImage, v))
}

// CurrentImageLTE applies the LTE predicate on the "current_image" field.
func CurrentImageLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldCurrentImage, v))
}

// CurrentImageContains applies the Contains predicate on the "current_image" field.
func CurrentImageContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldCurrentImage, v))
}

// CurrentImageHasPrefix applies the HasPrefix predicate on the "current_image" field.
func CurrentImageHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldCurrentImage, v))
}

// CurrentImageHasSuffix applies the HasSuffix predicate on the "current_image" field.
func CurrentImageHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldCurrentImage, v))
}

// CurrentImageIsNil applies the IsNil predicate on the "current_image" field.
func CurrentImageIsNil() predicate.Instance {
	return predicate.Instance(sql.FieldIsNull(FieldCurrentImage))
}

// CurrentImageNotNil applies the NotNil predicate on the "current_image" field.
func CurrentImageNotNil() predicate.Instance {
	return predicate.Instance(sql.FieldNotNull(FieldCurrentImage))
}

// CurrentImageEqualFold applies the EqualFold predicate on the "current_image" field.
func CurrentImageEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldCurrentImage, v))
}

// CurrentImageContainsFold applies the ContainsFold predicate on the "current_image" field.
func CurrentImageContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldCurrentImage, v))
}

// LastHealthyImageEQ applies the EQ predicate on the "last_healthy_image" field.
func LastHealthyImageEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldLastHealthyImage, v))
}

// LastHealthyImageNEQ applies the NEQ predicate on the "last_healthy_image" field.
func LastHealthyImageNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldLastHealthyImage, v))
}

// LastHealthyImageIn applies the In predicate on the "last_healthy_image" field.
func LastHealthyImageIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldLastHealthyImage, vs...))
}

// LastHealthyImageNotIn applies the NotIn predicate on the "last_healthy_image" field.
func LastHealthyImageNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldLastHealthyImage, vs...))
}

// LastHealthyImageGT applies the GT predicate on the "last_healthy_image" field.
func LastHealthyImageGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldLastHealthyImage, v))
}

// LastHealthyImageGTE applies the GTE predicate on the "last_healthy_image" field.
func LastHealthyImageGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldLastHealthyImage, v))
}

// LastHealthyImageLT applies the LT predicate on the "last_healthy_image" field.
func LastHealthyImageLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldLastHealthyImage, v))
}

// LastHealthyImageLTE applies the LTE predicate on the "last_healthy_image" field.
func LastHealthyImageLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldLastHealthyImage, v))
}

// LastHealthyImageContains applies the Contains predicate on the "last_healthy_image" field.
func LastHealthyImageContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldLastHealthyImage, v))
}

// LastHealthyImageHasPrefix applies the HasPrefix predicate on the "last_healthy_image" field.
func LastHealthyImageHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldLastHealthyImage, v))
}

// LastHealthyImageHasSuffix applies the HasSuffix predicate on the "last_healthy_image" field.
func LastHealthyImageHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldLastHealthyImage, v))
}

// LastHealthyImageIsNil applies the IsNil predicate on the "last_healthy_image" field.
func LastHealthyImageIsNil() predicate.Instance {
	return predicate.Instance(sql.FieldIsNull(FieldLastHealthyImage))
}

// LastHealthyImageNotNil applies the NotNil predicate on the "last_healthy_image" field.
func LastHealthyImageNotNil() predicate.Instance {
	return predicate.Instance(sql.FieldNotNull(FieldLastHealthyImage))
}

// LastHealthyImageEqualFold applies the EqualFold predicate on the "last_healthy_image" field.
func LastHealthyImageEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldLastHealthyImage, v))
}

// LastHealthyImageContainsFold applies the ContainsFold predicate on the "last_healthy_image" field.
func LastHealthyImageContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldLastHealthyImage, v))
}

// ImageDigestEQ applies the EQ predicate on the "image_digest" field.
func ImageDigestEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldImageDigest, v))
}

// ImageDigestNEQ applies the NEQ predicate on the "image_digest" field.
func ImageDigestNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldImageDigest, v))
}

// ImageDigestIn applies the In predicate on the "image_digest" field.
func ImageDigestIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldImageDigest, vs...))
}

// ImageDigestNotIn applies the NotIn predicate on the "image_digest" field.
func ImageDigestNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldImageDigest, vs...))
}

// ImageDigestGT applies the GT predicate on the "image_digest" field.
func ImageDigestGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldImageDigest, v))
}

// ImageDigestGTE applies the GTE predicate on the "image_digest" field.
func ImageDigestGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldImageDigest, v))
}

// ImageDigestLT applies the LT predicate on the "image_digest" field.
func ImageDigestLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldImageDigest, v))
}

// ImageDigestLTE applies the LTE predicate on the "image_digest" field.
func ImageDigestLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldImageDigest, v))
}

// ImageDigestContains applies the Contains predicate on the "image_digest" field.
func ImageDigestContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldImageDigest, v))
}

// ImageDigestHasPrefix applies the HasPrefix predicate on the "image_digest" field.
func ImageDigestHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldImageDigest, v))
}

// ImageDigestHasSuffix applies the HasSuffix predicate on the "image_digest" field.
func ImageDigestHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldImageDigest, v))
}

// ImageDigestIsNil applies the IsNil predicate on the "image_digest" field.
func ImageDigestIsNil() predicate.Instance {
	return predicate.Instance(sql.FieldIsNull(FieldImageDigest))
}

// ImageDigestNotNil applies the NotNil predicate on the "image_digest" field.
func ImageDigestNotNil() predicate.Instance {
	return predicate.Instance(sql.FieldNotNull(FieldImageDigest))
}

// ImageDigestEqualFold applies the EqualFold predicate on the "image_digest" field.
func ImageDigestEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldImageDigest, v))
}

// ImageDigestContainsFold applies the ContainsFold predicate on the "image_digest" field.
func ImageDigestContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldImageDigest, v))
}

// DeployIDEQ applies the EQ predicate on the "deploy_id" field.
func DeployIDEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldDeployID, v))
}

// DeployIDNEQ applies the NEQ predicate on the "deploy_id" field.
func DeployIDNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldDeployID, v))
}

// DeployIDIn applies the In predicate on the "deploy_id" field.
func DeployIDIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldDeployID, vs...))
}

// DeployIDNotIn applies the NotIn predicate on the "deploy_id" field.
func DeployIDNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldDeployID, vs...))
}

// DeployIDGT applies the GT predicate on the "deploy_id" field.
func DeployIDGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldDeployID, v))
}

// DeployIDGTE applies the GTE predicate on the "deploy_id" field.
func DeployIDGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldDeployID, v))
}

// DeployIDLT applies the LT predicate on the "deploy_id" field.
func DeployIDLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldDeployID, v))
}

// DeployIDLTE applies the LTE predicate on the "deploy_id" field.
func DeployIDLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldDeployID, v))
}

// DeployIDContains applies the Contains predicate on the "deploy_id" field.
func DeployIDContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldDeployID, v))
}

// DeployIDHasPrefix applies the HasPrefix predicate on the "deploy_id" field.
func DeployIDHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldDeployID, v))
}

// DeployIDHasSuffix applies the HasSuffix predicate on the "deploy_id" field.
func DeployIDHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldDeployID, v))
}

// DeployIDIsNil applies the IsNil predicate on the "deploy_id" field.
func DeployIDIsNil() predicate.Instance {
	return predicate.Instance(sql.FieldIsNull(FieldDeployID))
}

// DeployIDNotNil applies the NotNil predicate on the "deploy_id" field.
func DeployIDNotNil() predicate.Instance {
	return predicate.Instance(sql.FieldNotNull(FieldDeployID))
}

// DeployIDEqualFold applies the EqualFold predicate on the "deploy_id" field.
func DeployIDEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldDeployID, v))
}

// DeployIDContainsFold applies the ContainsFold predicate on the "deploy_id" field.
func DeployIDContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldDeployID, v))
}

// DeployErrorEQ applies the EQ predicate on the "deploy_error" field.
func DeployErrorEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldDeployError, v))
}

// DeployErrorNEQ applies the NEQ predicate on the "deploy_error" field.
func DeployErrorNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldDeployError, v))
}

// DeployErrorIn applies the In predicate on the "deploy_error" field.
func DeployErrorIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldDeployError, vs...))
}

// DeployErrorNotIn applies the NotIn predicate on the "deploy_error" field.
func DeployErrorNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldDeployError, vs...))
}

// DeployErrorGT applies the GT predicate on the "deploy_error" field.
func DeployErrorGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldDeployError, v))
}

// DeployErrorGTE applies the GTE predicate on the "deploy_error" field.
func DeployErrorGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldDeployError, v))
}

// DeployErrorLT applies the LT predicate on the "deploy_error" field.
func DeployErrorLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldDeployError, v))
}

// DeployErrorLTE applies the LTE predicate on the "deploy_error" field.
func DeployErrorLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldDeployError, v))
}

// DeployErrorContains applies the Contains predicate on the "deploy_error" field.
func DeployErrorContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldDeployError, v))
}

// DeployErrorHasPrefix applies the HasPrefix predicate on the "deploy_error" field.
func DeployErrorHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldDeployError, v))
}

// DeployErrorHasSuffix applies the HasSuffix predicate on the "deploy_error" field.
func DeployErrorHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldDeployError, v))
}

// DeployErrorIsNil applies the IsNil predicate on the "deploy_error" field.
func DeployErrorIsNil() predicate.Instance {
	return predicate.Instance(sql.FieldIsNull(FieldDeployError))
}

// DeployErrorNotNil applies the NotNil predicate on the "deploy_error" field.
func DeployErrorNotNil() predicate.Instance {
	return predicate.Instance(sql.FieldNotNull(FieldDeployError))
}

// DeployErrorEqualFold applies the EqualFold predicate on the "deploy_error" field.
func DeployErrorEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldDeployError, v))
}

// DeployErrorContainsFold applies the ContainsFold predicate on the "deploy_error" field.
func DeployErrorContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldDeployError, v))
}

// LastHealthAtEQ applies the EQ predicate on the "last_health_at" field.
func LastHealthAtEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldLastHealthAt, v))
}

// LastHealthAtNEQ applies the NEQ predicate on the "last_health_at" field.
func LastHealthAtNEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldLastHealthAt, v))
}

// LastHealthAtIn applies the In predicate on the "last_health_at" field.
func LastHealthAtIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldLastHealthAt, vs...))
}

// LastHealthAtNotIn applies the NotIn predicate on the "last_health_at" field.
func LastHealthAtNotIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldLastHealthAt, vs...))
}

// LastHealthAtGT applies the GT predicate on the "last_health_at" field.
func LastHealthAtGT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldLastHealthAt, v))
}

// LastHealthAtGTE applies the GTE predicate on the "last_health_at" field.
func LastHealthAtGTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldLastHealthAt, v))
}

// LastHealthAtLT applies the LT predicate on the "last_health_at" field.
func LastHealthAtLT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldLastHealthAt, v))
}

// LastHealthAtLTE applies the LTE predicate on the "last_health_at" field.
func LastHealthAtLTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldLastHealthAt, v))
}

// LastHealthAtIsNil applies the IsNil predicate on the "last_health_at" field.
func LastHealthAtIsNil() predicate.Instance {
	return predicate.Instance(sql.FieldIsNull(FieldLastHealthAt))
}

// LastHealthAtNotNil applies the NotNil predicate on the "last_health_at" field.
func LastHealthAtNotNil() predicate.Instance {
	return predicate.Instance(sql.FieldNotNull(FieldLastHealthAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDeployment applies the HasEdge predicate on the "deployment" edge.
func HasDeployment() predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DeploymentTable, DeploymentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeploymentWith applies the HasEdge predicate on the "deployment" edge with a given conditions (other predicates).
func HasDeploymentWith(preds ...predicate.Deployment) predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := newDeploymentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Instance) predicate.Instance {
	return predicate.Instance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Instance) predicate.Instance {
	return predicate.Instance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Instance) predicate.Instance {
	return predicate.Instance(sql.NotPredicates(p))
}
