// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAgentID, v))
}

// ChannelID applies equality check predicate on the "channel_id" field. It's identical to ChannelIDEQ.
func ChannelID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldChannelID, v))
}

// CallerUserID applies equality check predicate on the "caller_user_id" field. It's identical to CallerUserIDEQ.
func CallerUserID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCallerUserID, v))
}

// CallerAgentID applies equality check predicate on the "caller_agent_id" field. It's identical to CallerAgentIDEQ.
func CallerAgentID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCallerAgentID, v))
}

// ResourceID applies equality check predicate on the "resource_id" field. It's identical to ResourceIDEQ.
func ResourceID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldResourceID, v))
}

// ApprovedByUserID applies equality check predicate on the "approved_by_user_id" field. It's identical to ApprovedByUserIDEQ.
func ApprovedByUserID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldApprovedByUserID, v))
}

// ApprovedByAgentID applies equality check predicate on the "approved_by_agent_id" field. It's identical to ApprovedByAgentIDEQ.
func ApprovedByAgentID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldApprovedByAgentID, v))
}

// ResultData applies equality check predicate on the "result_data" field. It's identical to ResultDataEQ.
func ResultData(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldResultData, v))
}

// ErrorLog applies equality check predicate on the "error_log" field. It's identical to ErrorLogEQ.
func ErrorLog(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorLog, v))
}

// Script applies equality check predicate on the "script" field. It's identical to ScriptEQ.
func Script(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldScript, v))
}

// WorkingDirectory applies equality check predicate on the "working_directory" field. It's identical to WorkingDirectoryEQ.
func WorkingDirectory(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkingDirectory, v))
}

// TranscriptionModelID applies equality check predicate on the "transcription_model_id" field. It's identical to TranscriptionModelIDEQ.
func TranscriptionModelID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTranscriptionModelID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLanguage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldAgentID, v))
}

// ChannelIDEQ applies the EQ predicate on the "channel_id" field.
func ChannelIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldChannelID, v))
}

// ChannelIDNEQ applies the NEQ predicate on the "channel_id" field.
func ChannelIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldChannelID, v))
}

// ChannelIDIn applies the In predicate on the "channel_id" field.
func ChannelIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldChannelID, vs...))
}

// ChannelIDNotIn applies the NotIn predicate on the "channel_id" field.
func ChannelIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldChannelID, vs...))
}

// ChannelIDGT applies the GT predicate on the "channel_id" field.
func ChannelIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldChannelID, v))
}

// ChannelIDGTE applies the GTE predicate on the "channel_id" field.
func ChannelIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldChannelID, v))
}

// ChannelIDLT applies the LT predicate on the "channel_id" field.
func ChannelIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldChannelID, v))
}

// ChannelIDLTE applies the LTE predicate on the "channel_id" field.
func ChannelIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldChannelID, v))
}

// ChannelIDContains applies the Contains predicate on the "channel_id" field.
func ChannelIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldChannelID, v))
}

// ChannelIDHasPrefix applies the HasPrefix predicate on the "channel_id" field.
func ChannelIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldChannelID, v))
}

// ChannelIDHasSuffix applies the HasSuffix predicate on the "channel_id" field.
func ChannelIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldChannelID, v))
}

// ChannelIDIsNil applies the IsNil predicate on the "channel_id" field.
func ChannelIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldChannelID))
}

// ChannelIDNotNil applies the NotNil predicate on the "channel_id" field.
func ChannelIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldChannelID))
}

// ChannelIDEqualFold applies the EqualFold predicate on the "channel_id" field.
func ChannelIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldChannelID, v))
}

// ChannelIDContainsFold applies the ContainsFold predicate on the "channel_id" field.
func ChannelIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldChannelID, v))
}

// CallerUserIDEQ applies the EQ predicate on the "caller_user_id" field.
func CallerUserIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCallerUserID, v))
}

// CallerUserIDNEQ applies the NEQ predicate on the "caller_user_id" field.
func CallerUserIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCallerUserID, v))
}

// CallerUserIDIn applies the In predicate on the "caller_user_id" field.
func CallerUserIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCallerUserID, vs...))
}

// CallerUserIDNotIn applies the NotIn predicate on the "caller_user_id" field.
func CallerUserIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCallerUserID, vs...))
}

// CallerUserIDGT applies the GT predicate on the "caller_user_id" field.
func CallerUserIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCallerUserID, v))
}

// CallerUserIDGTE applies the GTE predicate on the "caller_user_id" field.
func CallerUserIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCallerUserID, v))
}

// CallerUserIDLT applies the LT predicate on the "caller_user_id" field.
func CallerUserIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCallerUserID, v))
}

// CallerUserIDLTE applies the LTE predicate on the "caller_user_id" field.
func CallerUserIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCallerUserID, v))
}

// CallerUserIDContains applies the Contains predicate on the "caller_user_id" field.
func CallerUserIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldCallerUserID, v))
}

// CallerUserIDHasPrefix applies the HasPrefix predicate on the "caller_user_id" field.
func CallerUserIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldCallerUserID, v))
}

// CallerUserIDHasSuffix applies the HasSuffix predicate on the "caller_user_id" field.
func CallerUserIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldCallerUserID, v))
}

// CallerUserIDIsNil applies the IsNil predicate on the "caller_user_id" field.
func CallerUserIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCallerUserID))
}

// CallerUserIDNotNil applies the NotNil predicate on the "caller_user_id" field.
func CallerUserIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCallerUserID))
}

// CallerUserIDEqualFold applies the EqualFold predicate on the "caller_user_id" field.
func CallerUserIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldCallerUserID, v))
}

// CallerUserIDContainsFold applies the ContainsFold predicate on the "caller_user_id" field.
func CallerUserIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldCallerUserID, v))
}

// CallerAgentIDEQ applies the EQ predicate on the "caller_agent_id" field.
func CallerAgentIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCallerAgentID, v))
}

// CallerAgentIDNEQ applies the NEQ predicate on the "caller_agent_id" field.
func CallerAgentIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCallerAgentID, v))
}

// CallerAgentIDIn applies the In predicate on the "caller_agent_id" field.
func CallerAgentIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCallerAgentID, vs...))
}

// CallerAgentIDNotIn applies the NotIn predicate on the "caller_agent_id" field.
func CallerAgentIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCallerAgentID, vs...))
}

// CallerAgentIDGT applies the GT predicate on the "caller_agent_id" field.
func CallerAgentIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCallerAgentID, v))
}

// CallerAgentIDGTE applies the GTE predicate on the "caller_agent_id" field.
func CallerAgentIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCallerAgentID, v))
}

// CallerAgentIDLT applies the LT predicate on the "caller_agent_id" field.
func CallerAgentIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCallerAgentID, v))
}

// CallerAgentIDLTE applies the LTE predicate on the "caller_agent_id" field.
func CallerAgentIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCallerAgentID, v))
}

// CallerAgentIDContains applies the Contains predicate on the "caller_agent_id" field.
func CallerAgentIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldCallerAgentID, v))
}

// CallerAgentIDHasPrefix applies the HasPrefix predicate on the "caller_agent_id" field.
func CallerAgentIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldCallerAgentID, v))
}

// CallerAgentIDHasSuffix applies the HasSuffix predicate on the "caller_agent_id" field.
func CallerAgentIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldCallerAgentID, v))
}

// CallerAgentIDIsNil applies the IsNil predicate on the "caller_agent_id" field.
func CallerAgentIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCallerAgentID))
}

// CallerAgentIDNotNil applies the NotNil predicate on the "caller_agent_id" field.
func CallerAgentIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCallerAgentID))
}

// CallerAgentIDEqualFold applies the EqualFold predicate on the "caller_agent_id" field.
func CallerAgentIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldCallerAgentID, v))
}

// CallerAgentIDContainsFold applies the ContainsFold predicate on the "caller_agent_id" field.
func CallerAgentIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldCallerAgentID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v Action) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v Action) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...Action) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...Action) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAction, vs...))
}

// ResourceIDEQ applies the EQ predicate on the "resource_id" field.
func ResourceIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldResourceID, v))
}

// ResourceIDNEQ applies the NEQ predicate on the "resource_id" field.
func ResourceIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldResourceID, v))
}

// ResourceIDIn applies the In predicate on the "resource_id" field.
func ResourceIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldResourceID, vs...))
}

// ResourceIDNotIn applies the NotIn predicate on the "resource_id" field.
func ResourceIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldResourceID, vs...))
}

// ResourceIDGT applies the GT predicate on the "resource_id" field.
func ResourceIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldResourceID, v))
}

// ResourceIDGTE applies the GTE predicate on the "resource_id" field.
func ResourceIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldResourceID, v))
}

// ResourceIDLT applies the LT predicate on the "resource_id" field.
func ResourceIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldResourceID, v))
}

// ResourceIDLTE applies the LTE predicate on the "resource_id" field.
func ResourceIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldResourceID, v))
}

// ResourceIDContains applies the Contains predicate on the "resource_id" field.
func ResourceIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldResourceID, v))
}

// ResourceIDHasPrefix applies the HasPrefix predicate on the "resource_id" field.
func ResourceIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldResourceID, v))
}

// ResourceIDHasSuffix applies the HasSuffix predicate on the "resource_id" field.
func ResourceIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldResourceID, v))
}

// ResourceIDIsNil applies the IsNil predicate on the "resource_id" field.
func ResourceIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldResourceID))
}

// ResourceIDNotNil applies the NotNil predicate on the "resource_id" field.
func ResourceIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldResourceID))
}

// ResourceIDEqualFold applies the EqualFold predicate on the "resource_id" field.
func ResourceIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldResourceID, v))
}

// ResourceIDContainsFold applies the ContainsFold predicate on the "resource_id" field.
func ResourceIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldResourceID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// EffectiveClearanceEQ applies the EQ predicate on the "effective_clearance" field.
func EffectiveClearanceEQ(v EffectiveClearance) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEffectiveClearance, v))
}

// EffectiveClearanceNEQ applies the NEQ predicate on the "effective_clearance" field.
func EffectiveClearanceNEQ(v EffectiveClearance) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldEffectiveClearance, v))
}

// EffectiveClearanceIn applies the In predicate on the "effective_clearance" field.
func EffectiveClearanceIn(vs ...EffectiveClearance) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldEffectiveClearance, vs...))
}

// EffectiveClearanceNotIn applies the NotIn predicate on the "effective_clearance" field.
func EffectiveClearanceNotIn(vs ...EffectiveClearance) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldEffectiveClearance, vs...))
}

// EffectiveClearanceIsNil applies the IsNil predicate on the "effective_clearance" field.
func EffectiveClearanceIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldEffectiveClearance))
}

// EffectiveClearanceNotNil applies the NotNil predicate on the "effective_clearance" field.
func EffectiveClearanceNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldEffectiveClearance))
}

// ApprovedByUserIDEQ applies the EQ predicate on the "approved_by_user_id" field.
func ApprovedByUserIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldApprovedByUserID, v))
}

// ApprovedByUserIDNEQ applies the NEQ predicate on the "approved_by_user_id" field.
func ApprovedByUserIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldApprovedByUserID, v))
}

// ApprovedByUserIDIn applies the In predicate on the "approved_by_user_id" field.
func ApprovedByUserIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldApprovedByUserID, vs...))
}

// ApprovedByUserIDNotIn applies the NotIn predicate on the "approved_by_user_id" field.
func ApprovedByUserIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldApprovedByUserID, vs...))
}

// ApprovedByUserIDGT applies the GT predicate on the "approved_by_user_id" field.
func ApprovedByUserIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldApprovedByUserID, v))
}

// ApprovedByUserIDGTE applies the GTE predicate on the "approved_by_user_id" field.
func ApprovedByUserIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldApprovedByUserID, v))
}

// ApprovedByUserIDLT applies the LT predicate on the "approved_by_user_id" field.
func ApprovedByUserIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldApprovedByUserID, v))
}

// ApprovedByUserIDLTE applies the LTE predicate on the "approved_by_user_id" field.
func ApprovedByUserIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldApprovedByUserID, v))
}

// ApprovedByUserIDContains applies the Contains predicate on the "approved_by_user_id" field.
func ApprovedByUserIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldApprovedByUserID, v))
}

// ApprovedByUserIDHasPrefix applies the HasPrefix predicate on the "approved_by_user_id" field.
func ApprovedByUserIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldApprovedByUserID, v))
}

// ApprovedByUserIDHasSuffix applies the HasSuffix predicate on the "approved_by_user_id" field.
func ApprovedByUserIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldApprovedByUserID, v))
}

// ApprovedByUserIDIsNil applies the IsNil predicate on the "approved_by_user_id" field.
func ApprovedByUserIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldApprovedByUserID))
}

// ApprovedByUserIDNotNil applies the NotNil predicate on the "approved_by_user_id" field.
func ApprovedByUserIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldApprovedByUserID))
}

// ApprovedByUserIDEqualFold applies the EqualFold predicate on the "approved_by_user_id" field.
func ApprovedByUserIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldApprovedByUserID, v))
}

// ApprovedByUserIDContainsFold applies the ContainsFold predicate on the "approved_by_user_id" field.
func ApprovedByUserIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldApprovedByUserID, v))
}

// ApprovedByAgentIDEQ applies the EQ predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldApprovedByAgentID, v))
}

// ApprovedByAgentIDNEQ applies the NEQ predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldApprovedByAgentID, v))
}

// ApprovedByAgentIDIn applies the In predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldApprovedByAgentID, vs...))
}

// ApprovedByAgentIDNotIn applies the NotIn predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldApprovedByAgentID, vs...))
}

// ApprovedByAgentIDGT applies the GT predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldApprovedByAgentID, v))
}

// ApprovedByAgentIDGTE applies the GTE predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldApprovedByAgentID, v))
}

// ApprovedByAgentIDLT applies the LT predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldApprovedByAgentID, v))
}

// ApprovedByAgentIDLTE applies the LTE predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldApprovedByAgentID, v))
}

// ApprovedByAgentIDContains applies the Contains predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldApprovedByAgentID, v))
}

// ApprovedByAgentIDHasPrefix applies the HasPrefix predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldApprovedByAgentID, v))
}

// ApprovedByAgentIDHasSuffix applies the HasSuffix predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldApprovedByAgentID, v))
}

// ApprovedByAgentIDIsNil applies the IsNil predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldApprovedByAgentID))
}

// ApprovedByAgentIDNotNil applies the NotNil predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldApprovedByAgentID))
}

// ApprovedByAgentIDEqualFold applies the EqualFold predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldApprovedByAgentID, v))
}

// ApprovedByAgentIDContainsFold applies the ContainsFold predicate on the "approved_by_agent_id" field.
func ApprovedByAgentIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldApprovedByAgentID, v))
}

// ResultDataEQ applies the EQ predicate on the "result_data" field.
func ResultDataEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldResultData, v))
}

// ResultDataNEQ applies the NEQ predicate on the "result_data" field.
func ResultDataNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldResultData, v))
}

// ResultDataIn applies the In predicate on the "result_data" field.
func ResultDataIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldResultData, vs...))
}

// ResultDataNotIn applies the NotIn predicate on the "result_data" field.
func ResultDataNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldResultData, vs...))
}

// ResultDataGT applies the GT predicate on the "result_data" field.
func ResultDataGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldResultData, v))
}

// ResultDataGTE applies the GTE predicate on the "result_data" field.
func ResultDataGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldResultData, v))
}

// ResultDataLT applies the LT predicate on the "result_data" field.
func ResultDataLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldResultData, v))
}

// ResultDataLTE applies the LTE predicate on the "result_data" field.
func ResultDataLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldResultData, v))
}

// ResultDataContains applies the Contains predicate on the "result_data" field.
func ResultDataContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldResultData, v))
}

// ResultDataHasPrefix applies the HasPrefix predicate on the "result_data" field.
func ResultDataHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldResultData, v))
}

// ResultDataHasSuffix applies the HasSuffix predicate on the "result_data" field.
func ResultDataHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldResultData, v))
}

// ResultDataIsNil applies the IsNil predicate on the "result_data" field.
func ResultDataIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldResultData))
}

// ResultDataNotNil applies the NotNil predicate on the "result_data" field.
func ResultDataNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldResultData))
}

// ResultDataEqualFold applies the EqualFold predicate on the "result_data" field.
func ResultDataEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldResultData, v))
}

// ResultDataContainsFold applies the ContainsFold predicate on the "result_data" field.
func ResultDataContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldResultData, v))
}

// ErrorLogEQ applies the EQ predicate on the "error_log" field.
func ErrorLogEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorLog, v))
}

// ErrorLogNEQ applies the NEQ predicate on the "error_log" field.
func ErrorLogNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorLog, v))
}

// ErrorLogIn applies the In predicate on the "error_log" field.
func ErrorLogIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorLog, vs...))
}

// ErrorLogNotIn applies the NotIn predicate on the "error_log" field.
func ErrorLogNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorLog, vs...))
}

// ErrorLogGT applies the GT predicate on the "error_log" field.
func ErrorLogGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorLog, v))
}

// ErrorLogGTE applies the GTE predicate on the "error_log" field.
func ErrorLogGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorLog, v))
}

// ErrorLogLT applies the LT predicate on the "error_log" field.
func ErrorLogLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorLog, v))
}

// ErrorLogLTE applies the LTE predicate on the "error_log" field.
func ErrorLogLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorLog, v))
}

// ErrorLogContains applies the Contains predicate on the "error_log" field.
func ErrorLogContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldErrorLog, v))
}

// ErrorLogHasPrefix applies the HasPrefix predicate on the "error_log" field.
func ErrorLogHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldErrorLog, v))
}

// ErrorLogHasSuffix applies the HasSuffix predicate on the "error_log" field.
func ErrorLogHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldErrorLog, v))
}

// ErrorLogIsNil applies the IsNil predicate on the "error_log" field.
func ErrorLogIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorLog))
}

// ErrorLogNotNil applies the NotNil predicate on the "error_log" field.
func ErrorLogNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorLog))
}

// ErrorLogEqualFold applies the EqualFold predicate on the "error_log" field.
func ErrorLogEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldErrorLog, v))
}

// ErrorLogContainsFold applies the ContainsFold predicate on the "error_log" field.
func ErrorLogContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldErrorLog, v))
}

// ShellKindEQ applies the EQ predicate on the "shell_kind" field.
func ShellKindEQ(v ShellKind) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldShellKind, v))
}

// ShellKindNEQ applies the NEQ predicate on the "shell_kind" field.
func ShellKindNEQ(v ShellKind) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldShellKind, v))
}

// ShellKindIn applies the In predicate on the "shell_kind" field.
func ShellKindIn(vs ...ShellKind) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldShellKind, vs...))
}

// ShellKindNotIn applies the NotIn predicate on the "shell_kind" field.
func ShellKindNotIn(vs ...ShellKind) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldShellKind, vs...))
}

// ShellKindIsNil applies the IsNil predicate on the "shell_kind" field.
func ShellKindIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldShellKind))
}

// ShellKindNotNil applies the NotNil predicate on the "shell_kind" field.
func ShellKindNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldShellKind))
}

// ScriptEQ applies the EQ predicate on the "script" field.
func ScriptEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldScript, v))
}

// ScriptNEQ applies the NEQ predicate on the "script" field.
func ScriptNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldScript, v))
}

// ScriptIn applies the In predicate on the "script" field.
func ScriptIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldScript, vs...))
}

// ScriptNotIn applies the NotIn predicate on the "script" field.
func ScriptNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldScript, vs...))
}

// ScriptGT applies the GT predicate on the "script" field.
func ScriptGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldScript, v))
}

// ScriptGTE applies the GTE predicate on the "script" field.
func ScriptGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldScript, v))
}

// ScriptLT applies the LT predicate on the "script" field.
func ScriptLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldScript, v))
}

// ScriptLTE applies the LTE predicate on the "script" field.
func ScriptLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldScript, v))
}

// ScriptContains applies the Contains predicate on the "script" field.
func ScriptContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldScript, v))
}

// ScriptHasPrefix applies the HasPrefix predicate on the "script" field.
func ScriptHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldScript, v))
}

// ScriptHasSuffix applies the HasSuffix predicate on the "script" field.
func ScriptHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldScript, v))
}

// ScriptIsNil applies the IsNil predicate on the "script" field.
func ScriptIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldScript))
}

// ScriptNotNil applies the NotNil predicate on the "script" field.
func ScriptNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldScript))
}

// ScriptEqualFold applies the EqualFold predicate on the "script" field.
func ScriptEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldScript, v))
}

// ScriptContainsFold applies the ContainsFold predicate on the "script" field.
func ScriptContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldScript, v))
}

// WorkingDirectoryEQ applies the EQ predicate on the "working_directory" field.
func WorkingDirectoryEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkingDirectory, v))
}

// WorkingDirectoryNEQ applies the NEQ predicate on the "working_directory" field.
func WorkingDirectoryNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldWorkingDirectory, v))
}

// WorkingDirectoryIn applies the In predicate on the "working_directory" field.
func WorkingDirectoryIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldWorkingDirectory, vs...))
}

// WorkingDirectoryNotIn applies the NotIn predicate on the "working_directory" field.
func WorkingDirectoryNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldWorkingDirectory, vs...))
}

// WorkingDirectoryGT applies the GT predicate on the "working_directory" field.
func WorkingDirectoryGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldWorkingDirectory, v))
}

// WorkingDirectoryGTE applies the GTE predicate on the "working_directory" field.
func WorkingDirectoryGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldWorkingDirectory, v))
}

// WorkingDirectoryLT applies the LT predicate on the "working_directory" field.
func WorkingDirectoryLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldWorkingDirectory, v))
}

// WorkingDirectoryLTE applies the LTE predicate on the "working_directory" field.
func WorkingDirectoryLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldWorkingDirectory, v))
}

// WorkingDirectoryContains applies the Contains predicate on the "working_directory" field.
func WorkingDirectoryContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldWorkingDirectory, v))
}

// WorkingDirectoryHasPrefix applies the HasPrefix predicate on the "working_directory" field.
func WorkingDirectoryHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldWorkingDirectory, v))
}

// WorkingDirectoryHasSuffix applies the HasSuffix predicate on the "working_directory" field.
func WorkingDirectoryHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldWorkingDirectory, v))
}

// WorkingDirectoryIsNil applies the IsNil predicate on the "working_directory" field.
func WorkingDirectoryIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldWorkingDirectory))
}

// WorkingDirectoryNotNil applies the NotNil predicate on the "working_directory" field.
func WorkingDirectoryNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldWorkingDirectory))
}

// WorkingDirectoryEqualFold applies the EqualFold predicate on the "working_directory" field.
func WorkingDirectoryEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldWorkingDirectory, v))
}

// WorkingDirectoryContainsFold applies the ContainsFold predicate on the "working_directory" field.
func WorkingDirectoryContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldWorkingDirectory, v))
}

// TranscriptionModelIDEQ applies the EQ predicate on the "transcription_model_id" field.
func TranscriptionModelIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTranscriptionModelID, v))
}

// TranscriptionModelIDNEQ applies the NEQ predicate on the "transcription_model_id" field.
func TranscriptionModelIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTranscriptionModelID, v))
}

// TranscriptionModelIDIn applies the In predicate on the "transcription_model_id" field.
func TranscriptionModelIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTranscriptionModelID, vs...))
}

// TranscriptionModelIDNotIn applies the NotIn predicate on the "transcription_model_id" field.
func TranscriptionModelIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTranscriptionModelID, vs...))
}

// TranscriptionModelIDGT applies the GT predicate on the "transcription_model_id" field.
func TranscriptionModelIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTranscriptionModelID, v))
}

// TranscriptionModelIDGTE applies the GTE predicate on the "transcription_model_id" field.
func TranscriptionModelIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTranscriptionModelID, v))
}

// TranscriptionModelIDLT applies the LT predicate on the "transcription_model_id" field.
func TranscriptionModelIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTranscriptionModelID, v))
}

// TranscriptionModelIDLTE applies the LTE predicate on the "transcription_model_id" field.
func TranscriptionModelIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTranscriptionModelID, v))
}

// TranscriptionModelIDContains applies the Contains predicate on the "transcription_model_id" field.
func TranscriptionModelIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTranscriptionModelID, v))
}

// TranscriptionModelIDHasPrefix applies the HasPrefix predicate on the "transcription_model_id" field.
func TranscriptionModelIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTranscriptionModelID, v))
}

// TranscriptionModelIDHasSuffix applies the HasSuffix predicate on the "transcription_model_id" field.
func TranscriptionModelIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTranscriptionModelID, v))
}

// TranscriptionModelIDIsNil applies the IsNil predicate on the "transcription_model_id" field.
func TranscriptionModelIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldTranscriptionModelID))
}

// TranscriptionModelIDNotNil applies the NotNil predicate on the "transcription_model_id" field.
func TranscriptionModelIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldTranscriptionModelID))
}

// TranscriptionModelIDEqualFold applies the EqualFold predicate on the "transcription_model_id" field.
func TranscriptionModelIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTranscriptionModelID, v))
}

// TranscriptionModelIDContainsFold applies the ContainsFold predicate on the "transcription_model_id" field.
func TranscriptionModelIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTranscriptionModelID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldLanguage, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCompletedAt))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChannel applies the HasEdge predicate on the "channel" edge.
func HasChannel() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ChannelTable, ChannelColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChannelWith applies the HasEdge predicate on the "channel" edge with a given conditions (other predicates).
func HasChannelWith(preds ...predicate.Channel) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newChannelStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLogEntries applies the HasEdge predicate on the "log_entries" edge.
func HasLogEntries() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogEntriesTable, LogEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogEntriesWith applies the HasEdge predicate on the "log_entries" edge with a given conditions (other predicates).
func HasLogEntriesWith(preds ...predicate.JobLogEntry) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newLogEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSegments applies the HasEdge predicate on the "segments" edge.
func HasSegments() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SegmentsTable, SegmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSegmentsWith applies the HasEdge predicate on the "segments" edge with a given conditions (other predicates).
func HasSegmentsWith(preds ...predicate.TranscriptionSegment) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newSegmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
