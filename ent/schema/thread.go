package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Thread holds the schema definition for the Thread entity: the persistent
// conversation context for a fiche.
type Thread struct {
	ent.Schema
}

// Fields of the Thread.
func (Thread) Fields() []ent.Field {
	return []ent.Field{
		field.Int("fiche_id"),
		field.Int("owner_id"),
		field.String("title").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Thread.
func (Thread) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("fiche", Fiche.Type).
			Ref("threads").
			Field("fiche_id").
			Unique().
			Required(),
		edge.To("messages", ThreadMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Thread.
func (Thread) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fiche_id"),
		index.Fields("owner_id"),
	}
}
