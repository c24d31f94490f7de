// Code generated by ent, DO NOT EDIT.

package grant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Grant {
	return predicate.Grant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Grant {
	return predicate.Grant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Grant {
	return predicate.Grant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Grant {
	return predicate.Grant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Grant {
	return predicate.Grant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Grant {
	return predicate.Grant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Grant {
	return predicate.Grant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Grant {
	return predicate.Grant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Grant {
	return predicate.Grant(sql.FieldContainsFold(FieldID, id))
}

// PermissionSetID applies equality check predicate on the "permission_set_id" field. It's identical to PermissionSetIDEQ.
func PermissionSetID(v string) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldPermissionSetID, v))
}

// ResourceID applies equality check predicate on the "resource_id" field. It's identical to ResourceIDEQ.
func ResourceID(v string) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldResourceID, v))
}

// IsDefault applies equality check predicate on the "is_default" field. It's identical to IsDefaultEQ.
func IsDefault(v bool) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldIsDefault, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldCreatedAt, v))
}

// PermissionSetIDEQ applies the EQ predicate on the "permission_set_id" field.
func PermissionSetIDEQ(v string) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldPermissionSetID, v))
}

// PermissionSetIDNEQ applies the NEQ predicate on the "permission_set_id" field.
func PermissionSetIDNEQ(v string) predicate.Grant {
	return predicate.Grant(sql.FieldNEQ(FieldPermissionSetID, v))
}

// PermissionSetIDIn applies the In predicate on the "permission_set_id" field.
func PermissionSetIDIn(vs ...string) predicate.Grant {
	return predicate.Grant(sql.FieldIn(FieldPermissionSetID, vs...))
}

// PermissionSetIDNotIn applies the NotIn predicate on the "permission_set_id" field.
func PermissionSetIDNotIn(vs ...string) predicate.Grant {
	return predicate.Grant(sql.FieldNotIn(FieldPermissionSetID, vs...))
}

// PermissionSetIDGT applies the GT predicate on the "permission_set_id" field.
func PermissionSetIDGT(v string) predicate.Grant {
	return predicate.Grant(sql.FieldGT(FieldPermissionSetID, v))
}

// PermissionSetIDGTE applies the GTE predicate on the "permission_set_id" field.
func PermissionSetIDGTE(v string) predicate.Grant {
	return predicate.Grant(sql.FieldGTE(FieldPermissionSetID, v))
}

// PermissionSetIDLT applies the LT predicate on the "permission_set_id" field.
func PermissionSetIDLT(v string) predicate.Grant {
	return predicate.Grant(sql.FieldLT(FieldPermissionSetID, v))
}

// PermissionSetIDLTE applies the LTE predicate on the "permission_set_id" field.
func PermissionSetIDLTE(v string) predicate.Grant {
	return predicate.Grant(sql.FieldLTE(FieldPermissionSetID, v))
}

// PermissionSetIDContains applies the Contains predicate on the "permission_set_id" field.
func PermissionSetIDContains(v string) predicate.Grant {
	return predicate.Grant(sql.FieldContains(FieldPermissionSetID, v))
}

// PermissionSetIDHasPrefix applies the HasPrefix predicate on the "permission_set_id" field.
func PermissionSetIDHasPrefix(v string) predicate.Grant {
	return predicate.Grant(sql.FieldHasPrefix(FieldPermissionSetID, v))
}

// PermissionSetIDHasSuffix applies the HasSuffix predicate on the "permission_set_id" field.
func PermissionSetIDHasSuffix(v string) predicate.Grant {
	return predicate.Grant(sql.FieldHasSuffix(FieldPermissionSetID, v))
}

// PermissionSetIDEqualFold applies the EqualFold predicate on the "permission_set_id" field.
func PermissionSetIDEqualFold(v string) predicate.Grant {
	return predicate.Grant(sql.FieldEqualFold(FieldPermissionSetID, v))
}

// PermissionSetIDContainsFold applies the ContainsFold predicate on the "permission_set_id" field.
func PermissionSetIDContainsFold(v string) predicate.Grant {
	return predicate.Grant(sql.FieldContainsFold(FieldPermissionSetID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.Grant {
	return predicate.Grant(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.Grant {
	return predicate.Grant(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.Grant {
	return predicate.Grant(sql.FieldNotIn(FieldCategory, vs...))
}

// ResourceIDEQ applies the EQ predicate on the "resource_id" field.
func ResourceIDEQ(v string) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldResourceID, v))
}

// ResourceIDNEQ applies the NEQ predicate on the "resource_id" field.
func ResourceIDNEQ(v string) predicate.Grant {
	return predicate.Grant(sql.FieldNEQ(FieldResourceID, v))
}

// ResourceIDIn applies the In predicate on the "resource_id" field.
func ResourceIDIn(vs ...string) predicate.Grant {
	return predicate.Grant(sql.FieldIn(FieldResourceID, vs...))
}

// ResourceIDNotIn applies the NotIn predicate on the "resource_id" field.
func ResourceIDNotIn(vs ...string) predicate.Grant {
	return predicate.Grant(sql.FieldNotIn(FieldResourceID, vs...))
}

// ResourceIDGT applies the GT predicate on the "resource_id" field.
func ResourceIDGT(v string) predicate.Grant {
	return predicate.Grant(sql.FieldGT(FieldResourceID, v))
}

// ResourceIDGTE applies the GTE predicate on the "resource_id" field.
func ResourceIDGTE(v string) predicate.Grant {
	return predicate.Grant(sql.FieldGTE(FieldResourceID, v))
}

// ResourceIDLT applies the LT predicate on the "resource_id" field.
func ResourceIDLT(v string) predicate.Grant {
	return predicate.Grant(sql.FieldLT(FieldResourceID, v))
}

// ResourceIDLTE applies the LTE predicate on the "resource_id" field.
func ResourceIDLTE(v string) predicate.Grant {
	return predicate.Grant(sql.FieldLTE(FieldResourceID, v))
}

// ResourceIDContains applies the Contains predicate on the "resource_id" field.
func ResourceIDContains(v string) predicate.Grant {
	return predicate.Grant(sql.FieldContains(FieldResourceID, v))
}

// ResourceIDHasPrefix applies the HasPrefix predicate on the "resource_id" field.
func ResourceIDHasPrefix(v string) predicate.Grant {
	return predicate.Grant(sql.FieldHasPrefix(FieldResourceID, v))
}

// ResourceIDHasSuffix applies the HasSuffix predicate on the "resource_id" field.
func ResourceIDHasSuffix(v string) predicate.Grant {
	return predicate.Grant(sql.FieldHasSuffix(FieldResourceID, v))
}

// ResourceIDEqualFold applies the EqualFold predicate on the "resource_id" field.
func ResourceIDEqualFold(v string) predicate.Grant {
	return predicate.Grant(sql.FieldEqualFold(FieldResourceID, v))
}

// ResourceIDContainsFold applies the ContainsFold predicate on the "resource_id" field.
func ResourceIDContainsFold(v string) predicate.Grant {
	return predicate.Grant(sql.FieldContainsFold(FieldResourceID, v))
}

// ClearanceEQ applies the EQ predicate on the "clearance" field.
func ClearanceEQ(v Clearance) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldClearance, v))
}

// ClearanceNEQ applies the NEQ predicate on the "clearance" field.
func ClearanceNEQ(v Clearance) predicate.Grant {
	return predicate.Grant(sql.FieldNEQ(FieldClearance, v))
}

// ClearanceIn applies the In predicate on the "clearance" field.
func ClearanceIn(vs ...Clearance) predicate.Grant {
	return predicate.Grant(sql.FieldIn(FieldClearance, vs...))
}

// ClearanceNotIn applies the NotIn predicate on the "clearance" field.
func ClearanceNotIn(vs ...Clearance) predicate.Grant {
	return predicate.Grant(sql.FieldNotIn(FieldClearance, vs...))
}

// IsDefaultEQ applies the EQ predicate on the "is_default" field.
func IsDefaultEQ(v bool) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldIsDefault, v))
}

// IsDefaultNEQ applies the NEQ predicate on the "is_default" field.
func IsDefaultNEQ(v bool) predicate.Grant {
	return predicate.Grant(sql.FieldNEQ(FieldIsDefault, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPermissionSet applies the HasEdge predicate on the "permission_set" edge.
func HasPermissionSet() predicate.Grant {
	return predicate.Grant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PermissionSetTable, PermissionSetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPermissionSetWith applies the HasEdge predicate on the "permission_set" edge with a given conditions (other predicates).
func HasPermissionSetWith(preds ...predicate.PermissionSet) predicate.Grant {
	return predicate.Grant(func(s *sql.Selector) {
		step := newPermissionSetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Grant) predicate.Grant {
	return predicate.Grant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Grant) predicate.Grant {
	return predicate.Grant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Grant) predicate.Grant {
	return predicate.Grant(sql.NotPredicates(p))
}
