package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobLogEntry holds the schema definition for the JobLogEntry entity:
// the append-only audit trail of a job. Every state transition, denial
// reason, and execution error lands here.
type JobLogEntry struct {
	ent.Schema
}

// Fields of the JobLogEntry.
func (JobLogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.Enum("severity").
			Values("info", "warning", "error").
			Default("info"),
		field.Text("message"),
		field.Int("sequence").
			Comment("Tie-breaker for entries sharing a timestamp"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the JobLogEntry.
func (JobLogEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("log_entries").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the JobLogEntry.
func (JobLogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "created_at"),
		index.Fields("job_id", "sequence"),
	}
}
