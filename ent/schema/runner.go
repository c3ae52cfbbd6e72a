package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Runner holds the schema definition for the Runner entity: an external host
// that executes shell commands on behalf of the platform. Runners enroll via
// single-use tokens and authenticate with a salted-hash secret.
type Runner struct {
	ent.Schema
}

// Fields of the Runner.
func (Runner) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique(),
		field.Enum("status").
			Values("offline", "online", "revoked").
			Default("offline"),
		field.String("secret_hash").
			Sensitive().
			Comment("salt$sha256 of the runner secret; plaintext is never stored"),
		field.JSON("labels", map[string]string{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Runner.
func (Runner) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", RunnerJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Runner.
func (Runner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
