package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Every multi-tenant read in the system filters by the owning user's id.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique(),
		field.String("display_name").
			Optional(),
		field.Bool("is_admin").
			Default(false),
		field.Bytes("sealed_credentials").
			Optional().
			Sensitive().
			Comment("Connector credentials, symmetrically encrypted at rest"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("fiches", Fiche.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("courses", Course.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("commis_jobs", CommisJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
