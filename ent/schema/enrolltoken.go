package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EnrollToken holds the schema definition for the EnrollToken entity: a
// single-use, TTL-bound token minted by an operator for runner registration.
// Only a salted hash of the token is stored. used_at is set atomically on
// first successful registration (UPDATE ... WHERE used_at IS NULL RETURNING).
type EnrollToken struct {
	ent.Schema
}

// Fields of the EnrollToken.
func (EnrollToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("token_hash").
			Unique().
			Sensitive().
			Comment("salt$sha256 of the opaque token"),
		field.Int("created_by").
			Comment("Minting user id"),
		field.Time("expires_at"),
		field.Time("used_at").
			Optional().
			Nillable(),
		field.Int("runner_id").
			Optional().
			Nillable().
			Comment("The runner registered with this token"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the EnrollToken.
func (EnrollToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
	}
}
