package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Container holds the schema definition for the Container entity: a
// registered sandbox workspace. Containers of kind sandboxed_dsl are the
// execution targets of safe-shell jobs.
type Container struct {
	ent.Schema
}

// Fields of the Container.
func (Container) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("container_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("path").
			Comment("Workspace root on the sandbox host"),
		field.String("description").
			Optional(),
		field.Enum("kind").
			Values("sandboxed_dsl", "generic").
			Default("sandboxed_dsl"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
