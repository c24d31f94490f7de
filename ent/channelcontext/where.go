// Code generated by ent, DO NOT EDIT.

package channelcontext

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldEQ(FieldName, v))
}

// PermissionSetID applies equality check predicate on the "permission_set_id" field. It's identical to PermissionSetIDEQ.
func PermissionSetID(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldEQ(FieldPermissionSetID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldContainsFold(FieldName, v))
}

// PermissionSetIDEQ applies the EQ predicate on the "permission_set_id" field.
func PermissionSetIDEQ(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldEQ(FieldPermissionSetID, v))
}

// PermissionSetIDNEQ applies the NEQ predicate on the "permission_set_id" field.
func PermissionSetIDNEQ(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldNEQ(FieldPermissionSetID, v))
}

// PermissionSetIDIn applies the In predicate on the "permission_set_id" field.
func PermissionSetIDIn(vs ...string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldIn(FieldPermissionSetID, vs...))
}

// PermissionSetIDNotIn applies the NotIn predicate on the "permission_set_id" field.
func PermissionSetIDNotIn(vs ...string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldNotIn(FieldPermissionSetID, vs...))
}

// PermissionSetIDGT applies the GT predicate on the "permission_set_id" field.
func PermissionSetIDGT(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldGT(FieldPermissionSetID, v))
}

// PermissionSetIDGTE applies the GTE predicate on the "permission_set_id" field.
func PermissionSetIDGTE(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldGTE(FieldPermissionSetID, v))
}

// PermissionSetIDLT applies the LT predicate on the "permission_set_id" field.
func PermissionSetIDLT(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldLT(FieldPermissionSetID, v))
}

// PermissionSetIDLTE applies the LTE predicate on the "permission_set_id" field.
func PermissionSetIDLTE(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldLTE(FieldPermissionSetID, v))
}

// PermissionSetIDContains applies the Contains predicate on the "permission_set_id" field.
func PermissionSetIDContains(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldContains(FieldPermissionSetID, v))
}

// PermissionSetIDHasPrefix applies the HasPrefix predicate on the "permission_set_id" field.
func PermissionSetIDHasPrefix(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldHasPrefix(FieldPermissionSetID, v))
}

// PermissionSetIDHasSuffix applies the HasSuffix predicate on the "permission_set_id" field.
func PermissionSetIDHasSuffix(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldHasSuffix(FieldPermissionSetID, v))
}

// PermissionSetIDIsNil applies the IsNil predicate on the "permission_set_id" field.
func PermissionSetIDIsNil() predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldIsNull(FieldPermissionSetID))
}

// PermissionSetIDNotNil applies the NotNil predicate on the "permission_set_id" field.
func PermissionSetIDNotNil() predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldNotNull(FieldPermissionSetID))
}

// PermissionSetIDEqualFold applies the EqualFold predicate on the "permission_set_id" field.
func PermissionSetIDEqualFold(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldEqualFold(FieldPermissionSetID, v))
}

// PermissionSetIDContainsFold applies the ContainsFold predicate on the "permission_set_id" field.
func PermissionSetIDContainsFold(v string) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldContainsFold(FieldPermissionSetID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChannelContext {
	return predicate.ChannelContext(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPermissionSet applies the HasEdge predicate on the "permission_set" edge.
func HasPermissionSet() predicate.ChannelContext {
	return predicate.ChannelContext(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, PermissionSetTable, PermissionSetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPermissionSetWith applies the HasEdge predicate on the "permission_set" edge with a given conditions (other predicates).
func HasPermissionSetWith(preds ...predicate.PermissionSet) predicate.ChannelContext {
	return predicate.ChannelContext(func(s *sql.Selector) {
		step := newPermissionSetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChannelContext) predicate.ChannelContext {
	return predicate.ChannelContext(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChannelContext) predicate.ChannelContext {
	return predicate.ChannelContext(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChannelContext) predicate.ChannelContext {
	return predicate.ChannelContext(sql.NotPredicates(p))
}
