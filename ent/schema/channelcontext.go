package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// ChannelContext holds the schema definition for the ChannelContext entity:
// a grouping of channels (a workspace or team scope) that can carry a shared
// permission set.
type ChannelContext struct {
	ent.Schema
}

// Fields of the ChannelContext.
func (ChannelContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("context_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("permission_set_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChannelContext.
func (ChannelContext) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("permission_set", PermissionSet.Type).
			Field("permission_set_id").
			Unique(),
	}
}
