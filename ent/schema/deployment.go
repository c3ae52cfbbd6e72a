package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Deployment holds the schema definition for the Deployment entity: one
// rolling rollout of a container image across data-plane instances.
//
// At most one deployment may be non-terminal (pending, in_progress, paused)
// at any time; creation is rejected with a conflict otherwise.
type Deployment struct {
	ent.Schema
}

// Fields of the Deployment.
func (Deployment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("deploy_id").
			Unique().
			Immutable().
			Comment("Random-suffixed id, e.g. dep-20260824T101500-a1b2c3"),
		field.String("image"),
		field.Enum("status").
			Values("pending", "in_progress", "paused", "completed", "failed").
			Default("pending"),
		field.Int("max_parallel").
			Default(1).
			Comment("Cohort size within a ring"),
		field.Int("failure_threshold").
			Default(1).
			Comment("Failure budget; rollout pauses when failure_count reaches it"),
		field.Int("failure_count").
			Default(0),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Deployment.
func (Deployment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("instances", Instance.Type),
	}
}

// Indexes of the Deployment.
func (Deployment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
