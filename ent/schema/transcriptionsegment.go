package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TranscriptionSegment holds the schema definition for the
// TranscriptionSegment entity: one recognized span of speech within a live
// transcription job. Times are offsets from the start of the stream, already
// shifted by the position of the chunk they were recognized in.
type TranscriptionSegment struct {
	ent.Schema
}

// Fields of the TranscriptionSegment.
func (TranscriptionSegment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("segment_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.Int("chunk_index").
			Immutable(),
		field.Text("text").
			Immutable(),
		field.Float("start_seconds").
			Immutable(),
		field.Float("end_seconds").
			Immutable(),
		field.Float("confidence").
			Optional().
			Nillable().
			Immutable(),
		field.Time("captured_at").
			Default(time.Now).
			Immutable().
			Comment("Wall-clock persistence time, used by the polling read path"),
	}
}

// Edges of the TranscriptionSegment.
func (TranscriptionSegment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("segments").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TranscriptionSegment.
func (TranscriptionSegment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "start_seconds"),
		index.Fields("job_id", "captured_at"),
	}
}
