package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Course holds the schema definition for the Course entity: one end-to-end
// execution of a fiche on a thread.
//
// Status lifecycle:
//
//	queued  → running
//	running → success | failed | cancelled | waiting | deferred
//	waiting → running (continuation resume) | failed (missing tool_call_id)
//	any non-terminal → cancelled (operator intent)
//
// waiting means a spawned commis job is in flight; deferred means another
// course is expected to settle this one later.
type Course struct {
	ent.Schema
}

// Fields of the Course.
func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.Int("fiche_id"),
		field.Int("thread_id"),
		field.Int("owner_id"),
		field.Enum("status").
			Values("queued", "running", "success", "failed", "cancelled", "waiting", "deferred").
			Default("queued"),
		field.Enum("trigger").
			Values("api", "manual", "schedule", "continuation").
			Default("api").
			Immutable(),
		field.String("correlation_id").
			Immutable().
			Comment("Stable across continuation courses"),
		field.Int("continuation_of_course_id").
			Optional().
			Nillable(),
		field.Int("assistant_message_id").
			Optional().
			Nillable().
			Comment("The paused assistant message carrying the suspending tool_calls"),
		field.Text("summary").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Course.
func (Course) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("fiche", Fiche.Type).
			Ref("courses").
			Field("fiche_id").
			Unique().
			Required(),
		edge.From("owner", User.Type).
			Ref("courses").
			Field("owner_id").
			Unique().
			Required(),
		edge.To("commis_jobs", CommisJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", CourseEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Course.
func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("owner_id", "created_at"),
		index.Fields("owner_id", "status"),
		index.Fields("fiche_id", "status"),
		index.Fields("correlation_id"),
		index.Fields("continuation_of_course_id"),
	}
}
