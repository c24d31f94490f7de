// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/transcriptionsegment"
)

// TranscriptionSegment is the model entity for the TranscriptionSegment schema.
type TranscriptionSegment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// ChunkIndex holds the value of the "chunk_index" field.
	ChunkIndex int `json:"chunk_index,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// StartSeconds holds the value of the "start_seconds" field.
	StartSeconds float64 `json:"start_seconds,omitempty"`
	// EndSeconds holds the value of the "end_seconds" field.
	EndSeconds float64 `json:"end_seconds,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// Wall-clock persistence time, used by the polling read path
	CapturedAt time.Time `json:"captured_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TranscriptionSegmentQuery when eager-loading is set.
	Edges        TranscriptionSegmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TranscriptionSegmentEdges holds the relations/edges for other nodes in the graph.
type TranscriptionSegmentEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TranscriptionSegmentEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TranscriptionSegment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transcriptionsegment.FieldStartSeconds, transcriptionsegment.FieldEndSeconds, transcriptionsegment.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case transcriptionsegment.FieldChunkIndex:
			values[i] = new(sql.NullInt64)
		case transcriptionsegment.FieldID, transcriptionsegment.FieldJobID, transcriptionsegment.FieldText:
			values[i] = new(sql.NullString)
		case transcriptionsegment.FieldCapturedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TranscriptionSegment fields.
func (_m *TranscriptionSegment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transcriptionsegment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case transcriptionsegment.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case transcriptionsegment.FieldChunkIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_index", values[i])
			} else if value.Valid {
				_m.ChunkIndex = int(value.Int64)
			}
		case transcriptionsegment.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case transcriptionsegment.FieldStartSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field start_seconds", values[i])
			} else if value.Valid {
				_m.StartSeconds = value.Float64
			}
		case transcriptionsegment.FieldEndSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field end_seconds", values[i])
			} else if value.Valid {
				_m.EndSeconds = value.Float64
			}
		case transcriptionsegment.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case transcriptionsegment.FieldCapturedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field captured_at", values[i])
			} else if value.Valid {
				_m.CapturedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TranscriptionSegment.
// This includes values selected through modifiers, order, etc.
func (_m *TranscriptionSegment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the TranscriptionSegment entity.
func (_m *TranscriptionSegment) QueryJob() *JobQuery {
	return NewTranscriptionSegmentClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this TranscriptionSegment.
// Note that you need to call TranscriptionSegment.Unwrap() before calling this method if this TranscriptionSegment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TranscriptionSegment) Update() *TranscriptionSegmentUpdateOne {
	return NewTranscriptionSegmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TranscriptionSegment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TranscriptionSegment) Unwrap() *TranscriptionSegment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TranscriptionSegment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TranscriptionSegment) String() string {
	var builder strings.Builder
	builder.WriteString("TranscriptionSegment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("chunk_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkIndex))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("start_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartSeconds))
	builder.WriteString(", ")
	builder.WriteString("end_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndSeconds))
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("captured_at=")
	builder.WriteString(_m.CapturedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TranscriptionSegments is a parsable slice of TranscriptionSegment.
type TranscriptionSegments []*TranscriptionSegment
