package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Agent holds the schema definition for the Agent entity: an LLM agent that
// submits jobs and, with sufficient clearance, approves them.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("system_prompt").
			Optional(),
		field.String("role_id").
			Optional().
			Nillable().
			Comment("Agents without a role are denied everything"),
		field.String("model_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("role", Role.Type).
			Field("role_id").
			Unique(),
		edge.To("model", ProviderModel.Type).
			Field("model_id").
			Unique(),
	}
}
