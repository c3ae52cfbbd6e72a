package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ThreadMessage holds the schema definition for the ThreadMessage entity:
// one ordered row of a thread's conversation log.
//
// Role semantics:
//   - assistant rows may carry tool_calls (the LLM's requested invocations)
//   - tool rows carry tool_call_id + name, pairing them with the assistant
//     row that requested them
type ThreadMessage struct {
	ent.Schema
}

// Fields of the ThreadMessage.
func (ThreadMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Int("thread_id").
			Immutable(),
		field.Enum("role").
			Values("system", "user", "assistant", "tool").
			Immutable(),
		field.Text("content"),
		field.JSON("tool_calls", []map[string]interface{}{}).
			Optional().
			Comment("Assistant rows only: [{id, name, arguments}]"),
		field.String("tool_call_id").
			Optional().
			Nillable().
			Comment("Tool rows only: pairs the result with its request"),
		field.String("name").
			Optional().
			Nillable().
			Comment("Tool rows only: the tool that produced the content"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ThreadMessage.
func (ThreadMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("messages").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ThreadMessage.
func (ThreadMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Conversation replay order
		index.Fields("thread_id", "id"),
		// Continuation idempotency lookup
		index.Fields("thread_id", "tool_call_id"),
	}
}
