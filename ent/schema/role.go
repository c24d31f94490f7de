package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Role holds the schema definition for the Role entity. A role owns exactly
// one permission set; agents and users acquire permissions through their role.
type Role struct {
	ent.Schema
}

// Fields of the Role.
func (Role) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("role_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("description").
			Optional(),
		field.String("permission_set_id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Role.
func (Role) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("permission_set", PermissionSet.Type).
			Field("permission_set_id").
			Unique().
			Required(),
	}
}
