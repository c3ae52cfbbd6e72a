package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunnerJob holds the schema definition for the RunnerJob entity: a command
// dispatched to an external runner host.
type RunnerJob struct {
	ent.Schema
}

// Fields of the RunnerJob.
func (RunnerJob) Fields() []ent.Field {
	return []ent.Field{
		field.Int("runner_id"),
		field.Text("command"),
		field.Enum("status").
			Values("queued", "running", "completed", "failed", "cancelled").
			Default("queued"),
		field.Text("output").
			Optional(),
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

// Edges of the RunnerJob.
func (RunnerJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("runner", Runner.Type).
			Ref("jobs").
			Field("runner_id").
			Unique().
			Required(),
	}
}

// Indexes of the RunnerJob.
func (RunnerJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("runner_id", "created_at"),
	}
}
