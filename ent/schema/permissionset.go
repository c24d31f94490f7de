package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// PermissionSet holds the schema definition for the PermissionSet entity.
// A permission set is owned by exactly one Role, Channel, or ChannelContext
// and carries the grants, global flags, and approver whitelists that the
// clearance evaluator reads.
type PermissionSet struct {
	ent.Schema
}

// Fields of the PermissionSet.
func (PermissionSet) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("permission_set_id").
			Unique().
			Immutable(),
		field.Enum("default_clearance").
			Values("unset", "same_level_user", "whitelisted_user", "permitted_agent", "whitelisted_agent", "independent").
			Default("unset").
			Comment("Fallback clearance when a grant carries none"),
		field.Bool("allow_create_sub_agent").
			Default(false),
		field.Bool("allow_create_container").
			Default(false),
		field.Bool("allow_register_info_store").
			Default(false),
		field.Bool("allow_edit_any_task").
			Default(false),
		field.Bool("allow_localhost_browser").
			Default(false),
		field.Bool("allow_localhost_cli").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PermissionSet.
func (PermissionSet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("grants", Grant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("whitelisted_users", User.Type).
			Comment("Users qualified as WhitelistedUser approvers"),
		edge.To("whitelisted_agents", Agent.Type).
			Comment("Agents qualified as WhitelistedAgent approvers"),
	}
}
