package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// InfoStore holds the schema definition for the InfoStore entity: a
// registered knowledge source, local (filesystem, database) or external
// (hosted API).
type InfoStore struct {
	ent.Schema
}

// Fields of the InfoStore.
func (InfoStore) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("store_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Enum("kind").
			Values("local", "external"),
		field.String("location").
			Comment("Path or URL depending on kind"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
