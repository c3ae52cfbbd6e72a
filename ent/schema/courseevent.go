package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CourseEvent holds the schema definition for the CourseEvent entity: one row
// of the append-only, course-keyed event log. The log is derived data — it
// feeds SSE catchup, timelines, and inbox signals — and is never the source
// of truth for course status.
type CourseEvent struct {
	ent.Schema
}

// Fields of the CourseEvent.
func (CourseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("course_id").
			Immutable(),
		field.String("event_type").
			Immutable().
			Comment("concierge_started, commis_spawned, commis_complete, tool_started, ..."),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CourseEvent.
func (CourseEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course", Course.Type).
			Ref("events").
			Field("course_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CourseEvent.
func (CourseEvent) Indexes() []ent.Index {
	return []ent.Index{
		// SSE catchup and timeline replay order
		index.Fields("course_id", "id"),
		index.Fields("course_id", "event_type"),
		index.Fields("created_at"),
	}
}
