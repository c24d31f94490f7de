// Code generated by ent, DO NOT EDIT.

package transcriptionsegment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldJobID, v))
}

// ChunkIndex applies equality check predicate on the "chunk_index" field. It's identical to ChunkIndexEQ.
func ChunkIndex(v int) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldChunkIndex, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldText, v))
}

// StartSeconds applies equality check predicate on the "start_seconds" field. It's identical to StartSecondsEQ.
func StartSeconds(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldStartSeconds, v))
}

// EndSeconds applies equality check predicate on the "end_seconds" field. It's identical to EndSecondsEQ.
func EndSeconds(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldEndSeconds, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldConfidence, v))
}

// CapturedAt applies equality check predicate on the "captured_at" field. It's identical to CapturedAtEQ.
func CapturedAt(v time.Time) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldCapturedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldContainsFold(FieldJobID, v))
}

// ChunkIndexEQ applies the EQ predicate on the "chunk_index" field.
func ChunkIndexEQ(v int) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldChunkIndex, v))
}

// ChunkIndexNEQ applies the NEQ predicate on the "chunk_index" field.
func ChunkIndexNEQ(v int) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNEQ(FieldChunkIndex, v))
}

// ChunkIndexIn applies the In predicate on the "chunk_index" field.
func ChunkIndexIn(vs ...int) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldIn(FieldChunkIndex, vs...))
}

// ChunkIndexNotIn applies the NotIn predicate on the "chunk_index" field.
func ChunkIndexNotIn(vs ...int) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNotIn(FieldChunkIndex, vs...))
}

// ChunkIndexGT applies the GT predicate on the "chunk_index" field.
func ChunkIndexGT(v int) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGT(FieldChunkIndex, v))
}

// ChunkIndexGTE applies the GTE predicate on the "chunk_index" field.
func ChunkIndexGTE(v int) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGTE(FieldChunkIndex, v))
}

// ChunkIndexLT applies the LT predicate on the "chunk_index" field.
func ChunkIndexLT(v int) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLT(FieldChunkIndex, v))
}

// ChunkIndexLTE applies the LTE predicate on the "chunk_index" field.
func ChunkIndexLTE(v int) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLTE(FieldChunkIndex, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldContainsFold(FieldText, v))
}

// StartSecondsEQ applies the EQ predicate on the "start_seconds" field.
func StartSecondsEQ(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldStartSeconds, v))
}

// StartSecondsNEQ applies the NEQ predicate on the "start_seconds" field.
func StartSecondsNEQ(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNEQ(FieldStartSeconds, v))
}

// StartSecondsIn applies the In predicate on the "start_seconds" field.
func StartSecondsIn(vs ...float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldIn(FieldStartSeconds, vs...))
}

// StartSecondsNotIn applies the NotIn predicate on the "start_seconds" field.
func StartSecondsNotIn(vs ...float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNotIn(FieldStartSeconds, vs...))
}

// StartSecondsGT applies the GT predicate on the "start_seconds" field.
func StartSecondsGT(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGT(FieldStartSeconds, v))
}

// StartSecondsGTE applies the GTE predicate on the "start_seconds" field.
func StartSecondsGTE(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGTE(FieldStartSeconds, v))
}

// StartSecondsLT applies the LT predicate on the "start_seconds" field.
func StartSecondsLT(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLT(FieldStartSeconds, v))
}

// StartSecondsLTE applies the LTE predicate on the "start_seconds" field.
func StartSecondsLTE(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLTE(FieldStartSeconds, v))
}

// EndSecondsEQ applies the EQ predicate on the "end_seconds" field.
func EndSecondsEQ(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldEndSeconds, v))
}

// EndSecondsNEQ applies the NEQ predicate on the "end_seconds" field.
func EndSecondsNEQ(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNEQ(FieldEndSeconds, v))
}

// EndSecondsIn applies the In predicate on the "end_seconds" field.
func EndSecondsIn(vs ...float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldIn(FieldEndSeconds, vs...))
}

// EndSecondsNotIn applies the NotIn predicate on the "end_seconds" field.
func EndSecondsNotIn(vs ...float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNotIn(FieldEndSeconds, vs...))
}

// EndSecondsGT applies the GT predicate on the "end_seconds" field.
func EndSecondsGT(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGT(FieldEndSeconds, v))
}

// EndSecondsGTE applies the GTE predicate on the "end_seconds" field.
func EndSecondsGTE(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGTE(FieldEndSeconds, v))
}

// EndSecondsLT applies the LT predicate on the "end_seconds" field.
func EndSecondsLT(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLT(FieldEndSeconds, v))
}

// EndSecondsLTE applies the LTE predicate on the "end_seconds" field.
func EndSecondsLTE(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLTE(FieldEndSeconds, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNotNull(FieldConfidence))
}

// CapturedAtEQ applies the EQ predicate on the "captured_at" field.
func CapturedAtEQ(v time.Time) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldEQ(FieldCapturedAt, v))
}

// CapturedAtNEQ applies the NEQ predicate on the "captured_at" field.
func CapturedAtNEQ(v time.Time) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNEQ(FieldCapturedAt, v))
}

// CapturedAtIn applies the In predicate on the "captured_at" field.
func CapturedAtIn(vs ...time.Time) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldIn(FieldCapturedAt, vs...))
}

// CapturedAtNotIn applies the NotIn predicate on the "captured_at" field.
func CapturedAtNotIn(vs ...time.Time) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldNotIn(FieldCapturedAt, vs...))
}

// CapturedAtGT applies the GT predicate on the "captured_at" field.
func CapturedAtGT(v time.Time) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGT(FieldCapturedAt, v))
}

// CapturedAtGTE applies the GTE predicate on the "captured_at" field.
func CapturedAtGTE(v time.Time) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldGTE(FieldCapturedAt, v))
}

// CapturedAtLT applies the LT predicate on the "captured_at" field.
func CapturedAtLT(v time.Time) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLT(FieldCapturedAt, v))
}

// CapturedAtLTE applies the LTE predicate on the "captured_at" field.
func CapturedAtLTE(v time.Time) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.FieldLTE(FieldCapturedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TranscriptionSegment) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TranscriptionSegment) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TranscriptionSegment) predicate.TranscriptionSegment {
	return predicate.TranscriptionSegment(sql.NotPredicates(p))
}
