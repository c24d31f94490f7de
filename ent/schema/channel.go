package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Channel holds the schema definition for the Channel entity: a conversation
// surface through which a session user talks to an agent. A channel may carry
// its own permission set, consulted for default-resource resolution and
// pre-authorization before the context's and the agent's.
type Channel struct {
	ent.Schema
}

// Fields of the Channel.
func (Channel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("channel_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("default_agent_id").
			Optional().
			Nillable(),
		field.String("context_id").
			Optional().
			Nillable(),
		field.String("permission_set_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Channel.
func (Channel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("default_agent", Agent.Type).
			Field("default_agent_id").
			Unique(),
		edge.To("allowed_agents", Agent.Type),
		edge.To("context", ChannelContext.Type).
			Field("context_id").
			Unique(),
		edge.To("permission_set", PermissionSet.Type).
			Field("permission_set_id").
			Unique(),
		edge.To("messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
