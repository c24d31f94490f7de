package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Skill holds the schema definition for the Skill entity: a reusable
// instruction document an agent can read once granted access.
type Skill struct {
	ent.Schema
}

// Fields of the Skill.
func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("skill_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
