package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Grant holds the schema definition for the Grant entity: one
// (resource, clearance) record inside a permission set for one resource
// category. A resource_id equal to the wildcard sentinel matches every
// resource of the category; such rows are immutable once written (enforced
// by a client hook in pkg/database).
type Grant struct {
	ent.Schema
}

// Fields of the Grant.
func (Grant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("grant_id").
			Unique().
			Immutable(),
		field.String("permission_set_id").
			Immutable(),
		field.Enum("category").
			Values(
				"dangerous_shell",
				"safe_shell",
				"local_info_store",
				"external_info_store",
				"website",
				"search_engine",
				"container",
				"audio_device",
				"agent",
				"task",
				"skill",
			),
		field.String("resource_id").
			Comment("Opaque resource identifier, or the wildcard sentinel"),
		field.Enum("clearance").
			Values("unset", "same_level_user", "whitelisted_user", "permitted_agent", "whitelisted_agent", "independent").
			Default("unset"),
		field.Bool("is_default").
			Default(false).
			Comment("Designates the category's default grant for resource resolution"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Grant.
func (Grant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("permission_set", PermissionSet.Type).
			Ref("grants").
			Field("permission_set_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Grant.
func (Grant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("permission_set_id", "category", "resource_id").
			Unique(),
		// At most one default grant per category within a set
		index.Fields("permission_set_id", "category").
			Unique().
			Annotations(entsql.IndexWhere("is_default")),
	}
}
