// Code generated by ent, DO NOT EDIT.

package transcriptionsegment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the transcriptionsegment type in the database.
	Label = "transcription_segment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "segment_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldChunkIndex holds the string denoting the chunk_index field in the database.
	FieldChunkIndex = "chunk_index"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldStartSeconds holds the string denoting the start_seconds field in the database.
	FieldStartSeconds = "start_seconds"
	// FieldEndSeconds holds the string denoting the end_seconds field in the database.
	FieldEndSeconds = "end_seconds"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldCapturedAt holds the string denoting the captured_at field in the database.
	FieldCapturedAt = "captured_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// Table holds the table name of the transcriptionsegment in the database.
	Table = "transcription_segments"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "transcription_segments"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for transcriptionsegment fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldChunkIndex,
	FieldText,
	FieldStartSeconds,
	FieldEndSeconds,
	FieldConfidence,
	FieldCapturedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCapturedAt holds the default value on creation for the "captured_at" field.
	DefaultCapturedAt func() time.Time
)

// OrderOption defines the ordering options for the TranscriptionSegment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByChunkIndex orders the results by the chunk_index field.
func ByChunkIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkIndex, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByStartSeconds orders the results by the start_seconds field.
func ByStartSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartSeconds, opts...).ToFunc()
}

// ByEndSeconds orders the results by the end_seconds field.
func ByEndSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndSeconds, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCapturedAt orders the results by the captured_at field.
func ByCapturedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapturedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
