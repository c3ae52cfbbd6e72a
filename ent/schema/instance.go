package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Instance holds the schema definition for the Instance entity: a data-plane
// container hosting a tenant. Instances are grouped into deploy rings; lower
// rings roll out first.
type Instance struct {
	ent.Schema
}

// Fields of the Instance.
func (Instance) Fields() []ent.Field {
	return []ent.Field{
		field.String("subdomain").
			Unique(),
		field.String("container_name"),
		field.Enum("status").
			Values("active", "failed", "deprovisioning").
			Default("active"),
		field.Int("deploy_ring").
			Default(0),
		field.Enum("deploy_state").
			Values("idle", "pending", "deploying", "succeeded", "failed", "rolled_back", "skipped").
			Default("idle"),
		field.String("current_image").
			Optional(),
		field.String("last_healthy_image").
			Optional().
			Nillable(),
		field.String("image_digest").
			Optional().
			Nillable().
			Comment("Digest of the pulled image, when the provisioner reports one"),
		field.String("deploy_id").
			Optional().
			Nillable().
			Comment("The deployment currently (or last) touching this instance"),
		field.String("deploy_error").
			Optional().
			Nillable(),
		field.Time("last_health_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Instance.
func (Instance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("deployment", Deployment.Type).
			Ref("instances").
			Field("deploy_id").
			Unique(),
	}
}

// Indexes of the Instance.
func (Instance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "deploy_ring"),
		index.Fields("deploy_id"),
		index.Fields("deploy_state"),
	}
}
