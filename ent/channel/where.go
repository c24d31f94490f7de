// Code generated by ent, DO NOT EDIT.

package channel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldName, v))
}

// DefaultAgentID applies equality check predicate on the "default_agent_id" field. It's identical to DefaultAgentIDEQ.
func DefaultAgentID(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldDefaultAgentID, v))
}

// ContextID applies equality check predicate on the "context_id" field. It's identical to ContextIDEQ.
func ContextID(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldContextID, v))
}

// PermissionSetID applies equality check predicate on the "permission_set_id" field. It's identical to PermissionSetIDEQ.
func PermissionSetID(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldPermissionSetID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldName, v))
}

// DefaultAgentIDEQ applies the EQ predicate on the "default_agent_id" field.
func DefaultAgentIDEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldDefaultAgentID, v))
}

// DefaultAgentIDNEQ applies the NEQ predicate on the "default_agent_id" field.
func DefaultAgentIDNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldDefaultAgentID, v))
}

// DefaultAgentIDIn applies the In predicate on the "default_agent_id" field.
func DefaultAgentIDIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldDefaultAgentID, vs...))
}

// DefaultAgentIDNotIn applies the NotIn predicate on the "default_agent_id" field.
func DefaultAgentIDNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldDefaultAgentID, vs...))
}

// DefaultAgentIDGT applies the GT predicate on the "default_agent_id" field.
func DefaultAgentIDGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldDefaultAgentID, v))
}

// DefaultAgentIDGTE applies the GTE predicate on the "default_agent_id" field.
func DefaultAgentIDGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldDefaultAgentID, v))
}

// DefaultAgentIDLT applies the LT predicate on the "default_agent_id" field.
func DefaultAgentIDLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldDefaultAgentID, v))
}

// DefaultAgentIDLTE applies the LTE predicate on the "default_agent_id" field.
func DefaultAgentIDLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldDefaultAgentID, v))
}

// DefaultAgentIDContains applies the Contains predicate on the "default_agent_id" field.
func DefaultAgentIDContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldDefaultAgentID, v))
}

// DefaultAgentIDHasPrefix applies the HasPrefix predicate on the "default_agent_id" field.
func DefaultAgentIDHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldDefaultAgentID, v))
}

// DefaultAgentIDHasSuffix applies the HasSuffix predicate on the "default_agent_id" field.
func DefaultAgentIDHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldDefaultAgentID, v))
}

// DefaultAgentIDIsNil applies the IsNil predicate on the "default_agent_id" field.
func DefaultAgentIDIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldDefaultAgentID))
}

// DefaultAgentIDNotNil applies the NotNil predicate on the "default_agent_id" field.
func DefaultAgentIDNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldDefaultAgentID))
}

// DefaultAgentIDEqualFold applies the EqualFold predicate on the "default_agent_id" field.
func DefaultAgentIDEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldDefaultAgentID, v))
}

// DefaultAgentIDContainsFold applies the ContainsFold predicate on the "default_agent_id" field.
func DefaultAgentIDContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldDefaultAgentID, v))
}

// ContextIDEQ applies the EQ predicate on the "context_id" field.
func ContextIDEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldContextID, v))
}

// ContextIDNEQ applies the NEQ predicate on the "context_id" field.
func ContextIDNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldContextID, v))
}

// ContextIDIn applies the In predicate on the "context_id" field.
func ContextIDIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldContextID, vs...))
}

// ContextIDNotIn applies the NotIn predicate on the "context_id" field.
func ContextIDNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldContextID, vs...))
}

// ContextIDGT applies the GT predicate on the "context_id" field.
func ContextIDGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldContextID, v))
}

// ContextIDGTE applies the GTE predicate on the "context_id" field.
func ContextIDGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldContextID, v))
}

// ContextIDLT applies the LT predicate on the "context_id" field.
func ContextIDLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldContextID, v))
}

// ContextIDLTE applies the LTE predicate on the "context_id" field.
func ContextIDLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldContextID, v))
}

// ContextIDContains applies the Contains predicate on the "context_id" field.
func ContextIDContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldContextID, v))
}

// ContextIDHasPrefix applies the HasPrefix predicate on the "context_id" field.
func ContextIDHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldContextID, v))
}

// ContextIDHasSuffix applies the HasSuffix predicate on the "context_id" field.
func ContextIDHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldContextID, v))
}

// ContextIDIsNil applies the IsNil predicate on the "context_id" field.
func ContextIDIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldContextID))
}

// ContextIDNotNil applies the NotNil predicate on the "context_id" field.
func ContextIDNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldContextID))
}

// ContextIDEqualFold applies the EqualFold predicate on the "context_id" field.
func ContextIDEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldContextID, v))
}

// ContextIDContainsFold applies the ContainsFold predicate on the "context_id" field.
func ContextIDContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldContextID, v))
}

// PermissionSetIDEQ applies the EQ predicate on the "permission_set_id" field.
func PermissionSetIDEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldPermissionSetID, v))
}

// PermissionSetIDNEQ applies the NEQ predicate on the "permission_set_id" field.
func PermissionSetIDNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldPermissionSetID, v))
}

// PermissionSetIDIn applies the In predicate on the "permission_set_id" field.
func PermissionSetIDIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldPermissionSetID, vs...))
}

// PermissionSetIDNotIn applies the NotIn predicate on the "permission_set_id" field.
func PermissionSetIDNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldPermissionSetID, vs...))
}

// PermissionSetIDGT applies the GT predicate on the "permission_set_id" field.
func PermissionSetIDGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldPermissionSetID, v))
}

// PermissionSetIDGTE applies the GTE predicate on the "permission_set_id" field.
func PermissionSetIDGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldPermissionSetID, v))
}

// PermissionSetIDLT applies the LT predicate on the "permission_set_id" field.
func PermissionSetIDLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldPermissionSetID, v))
}

// PermissionSetIDLTE applies the LTE predicate on the "permission_set_id" field.
func PermissionSetIDLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldPermissionSetID, v))
}

// PermissionSetIDContains applies the Contains predicate on the "permission_set_id" field.
func PermissionSetIDContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldPermissionSetID, v))
}

// PermissionSetIDHasPrefix applies the HasPrefix predicate on the "permission_set_id" field.
func PermissionSetIDHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldPermissionSetID, v))
}

// PermissionSetIDHasSuffix applies the HasSuffix predicate on the "permission_set_id" field.
func PermissionSetIDHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldPermissionSetID, v))
}

// PermissionSetIDIsNil applies the IsNil predicate on the "permission_set_id" field.
func PermissionSetIDIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldPermissionSetID))
}

// PermissionSetIDNotNil applies the NotNil predicate on the "permission_set_id" field.
func PermissionSetIDNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldPermissionSetID))
}

// PermissionSetIDEqualFold applies the EqualFold predicate on the "permission_set_id" field.
func PermissionSetIDEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldPermissionSetID, v))
}

// PermissionSetIDContainsFold applies the ContainsFold predicate on the "permission_set_id" field.
func PermissionSetIDContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldPermissionSetID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDefaultAgent applies the HasEdge predicate on the "default_agent" edge.
func HasDefaultAgent() predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, DefaultAgentTable, DefaultAgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDefaultAgentWith applies the HasEdge predicate on the "default_agent" edge with a given conditions (other predicates).
func HasDefaultAgentWith(preds ...predicate.Agent) predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := newDefaultAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAllowedAgents applies the HasEdge predicate on the "allowed_agents" edge.
func HasAllowedAgents() predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AllowedAgentsTable, AllowedAgentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAllowedAgentsWith applies the HasEdge predicate on the "allowed_agents" edge with a given conditions (other predicates).
func HasAllowedAgentsWith(preds ...predicate.Agent) predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := newAllowedAgentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContext applies the HasEdge predicate on the "context" edge.
func HasContext() predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ContextTable, ContextColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContextWith applies the HasEdge predicate on the "context" edge with a given conditions (other predicates).
func HasContextWith(preds ...predicate.ChannelContext) predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := newContextStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPermissionSet applies the HasEdge predicate on the "permission_set" edge.
func HasPermissionSet() predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, PermissionSetTable, PermissionSetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPermissionSetWith applies the HasEdge predicate on the "permission_set" edge with a given conditions (other predicates).
func HasPermissionSetWith(preds ...predicate.PermissionSet) predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := newPermissionSetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.ChatMessage) predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Channel) predicate.Channel {
	return predicate.Channel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Channel) predicate.Channel {
	return predicate.Channel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Channel) predicate.Channel {
	return predicate.Channel(sql.NotPredicates(p))
}
