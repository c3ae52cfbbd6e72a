package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Fiche holds the schema definition for the Fiche entity: a durable,
// configured agent (system prompt, model, allowed tools) owned by one user.
type Fiche struct {
	ent.Schema
}

// Fields of the Fiche.
func (Fiche) Fields() []ent.Field {
	return []ent.Field{
		field.Int("owner_id"),
		field.String("name"),
		field.Text("system_instructions"),
		field.Text("task_instructions").
			Optional(),
		field.String("model").
			Comment("LLM model identifier"),
		field.JSON("allowed_tools", []string{}).
			Optional(),
		field.Enum("status").
			Values("idle", "running", "failed").
			Default("idle"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.Time("next_run_at").
			Optional().
			Nillable(),
		field.Bool("is_concierge").
			Default(false).
			Comment("The per-user concierge fiche created on first chat"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Fiche.
func (Fiche) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("fiches").
			Field("owner_id").
			Unique().
			Required(),
		edge.To("threads", Thread.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("courses", Course.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Fiche.
func (Fiche) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("owner_id", "is_concierge"),
		index.Fields("status"),
	}
}
