package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CommisJob holds the schema definition for the CommisJob entity: the durable
// queue row describing one commis invocation spawned by a concierge tool call.
//
// queued → running happens only via the dispatcher's atomic claim
// (FOR UPDATE SKIP LOCKED); there is no check-then-update path.
type CommisJob struct {
	ent.Schema
}

// Fields of the CommisJob.
func (CommisJob) Fields() []ent.Field {
	return []ent.Field{
		field.Int("owner_id"),
		field.Text("task"),
		field.String("model"),
		field.Enum("status").
			Values("queued", "running", "success", "failed", "timeout").
			Default("queued"),
		field.Int("concierge_course_id").
			Optional().
			Nillable(),
		field.String("tool_call_id").
			Optional().
			Nillable().
			Comment("From the concierge's suspending assistant message"),
		field.String("commis_id").
			Unique().
			Immutable().
			Comment("Filesystem key into the artifact store"),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("execution_mode, git_repo, resume_session_id, owner_id, ..."),
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
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For stale-job reclaim"),
	}
}

// Edges of the CommisJob.
func (CommisJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("commis_jobs").
			Field("owner_id").
			Unique().
			Required(),
		edge.From("concierge_course", Course.Type).
			Ref("commis_jobs").
			Field("concierge_course_id").
			Unique(),
	}
}

// Indexes of the CommisJob.
func (CommisJob) Indexes() []ent.Index {
	return []ent.Index{
		// Claim order
		index.Fields("status", "created_at"),
		// Stale reclaim scan
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("concierge_course_id"),
		index.Fields("owner_id", "created_at"),
	}
}
