package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SystemUser holds the schema definition for the SystemUser entity: an OS
// account that dangerous-shell jobs run as. Its directories feed the working
// directory fallback chain.
type SystemUser struct {
	ent.Schema
}

// Fields of the SystemUser.
func (SystemUser) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("system_user_id").
			Unique().
			Immutable(),
		field.String("username").
			Unique(),
		field.String("working_directory").
			Optional().
			Nillable(),
		field.String("sandbox_root").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
