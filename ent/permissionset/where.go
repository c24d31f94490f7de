// Code generated by ent, DO NOT EDIT.

package permissionset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldContainsFold(FieldID, id))
}

// AllowCreateSubAgent applies equality check predicate on the "allow_create_sub_agent" field. It's identical to AllowCreateSubAgentEQ.
func AllowCreateSubAgent(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldAllowCreateSubAgent, v))
}

// AllowCreateContainer applies equality check predicate on the "allow_create_container" field. It's identical to AllowCreateContainerEQ.
func AllowCreateContainer(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldAllowCreateContainer, v))
}

// AllowRegisterInfoStore applies equality check predicate on the "allow_register_info_store" field. It's identical to AllowRegisterInfoStoreEQ.
func AllowRegisterInfoStore(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldAllowRegisterInfoStore, v))
}

// AllowEditAnyTask applies equality check predicate on the "allow_edit_any_task" field. It's identical to AllowEditAnyTaskEQ.
func AllowEditAnyTask(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldAllowEditAnyTask, v))
}

// AllowLocalhostBrowser applies equality check predicate on the "allow_localhost_browser" field. It's identical to AllowLocalhostBrowserEQ.
func AllowLocalhostBrowser(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldAllowLocalhostBrowser, v))
}

// AllowLocalhostCli applies equality check predicate on the "allow_localhost_cli" field. It's identical to AllowLocalhostCliEQ.
func AllowLocalhostCli(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldAllowLocalhostCli, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldUpdatedAt, v))
}

// DefaultClearanceEQ applies the EQ predicate on the "default_clearance" field.
func DefaultClearanceEQ(v DefaultClearance) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldDefaultClearance, v))
}

// DefaultClearanceNEQ applies the NEQ predicate on the "default_clearance" field.
func DefaultClearanceNEQ(v DefaultClearance) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNEQ(FieldDefaultClearance, v))
}

// DefaultClearanceIn applies the In predicate on the "default_clearance" field.
func DefaultClearanceIn(vs ...DefaultClearance) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldIn(FieldDefaultClearance, vs...))
}

// DefaultClearanceNotIn applies the NotIn predicate on the "default_clearance" field.
func DefaultClearanceNotIn(vs ...DefaultClearance) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNotIn(FieldDefaultClearance, vs...))
}

// AllowCreateSubAgentEQ applies the EQ predicate on the "allow_create_sub_agent" field.
func AllowCreateSubAgentEQ(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldAllowCreateSubAgent, v))
}

// AllowCreateSubAgentNEQ applies the NEQ predicate on the "allow_create_sub_agent" field.
func AllowCreateSubAgentNEQ(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNEQ(FieldAllowCreateSubAgent, v))
}

// AllowCreateContainerEQ applies the EQ predicate on the "allow_create_container" field.
func AllowCreateContainerEQ(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldAllowCreateContainer, v))
}

// AllowCreateContainerNEQ applies the NEQ predicate on the "allow_create_container" field.
func AllowCreateContainerNEQ(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNEQ(FieldAllowCreateContainer, v))
}

// AllowRegisterInfoStoreEQ applies the EQ predicate on the "allow_register_info_store" field.
func AllowRegisterInfoStoreEQ(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldAllowRegisterInfoStore, v))
}

// AllowRegisterInfoStoreNEQ applies the NEQ predicate on the "allow_register_info_store" field.
func AllowRegisterInfoStoreNEQ(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNEQ(FieldAllowRegisterInfoStore, v))
}

// AllowEditAnyTaskEQ applies the EQ predicate on the "allow_edit_any_task" field.
func AllowEditAnyTaskEQ(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldAllowEditAnyTask, v))
}

// AllowEditAnyTaskNEQ applies the NEQ predicate on the "allow_edit_any_task" field.
func AllowEditAnyTaskNEQ(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNEQ(FieldAllowEditAnyTask, v))
}

// AllowLocalhostBrowserEQ applies the EQ predicate on the "allow_localhost_browser" field.
func AllowLocalhostBrowserEQ(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldAllowLocalhostBrowser, v))
}

// AllowLocalhostBrowserNEQ applies the NEQ predicate on the "allow_localhost_browser" field.
func AllowLocalhostBrowserNEQ(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNEQ(FieldAllowLocalhostBrowser, v))
}

// AllowLocalhostCliEQ applies the EQ predicate on the "allow_localhost_cli" field.
func AllowLocalhostCliEQ(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldAllowLocalhostCli, v))
}

// AllowLocalhostCliNEQ applies the NEQ predicate on the "allow_localhost_cli" field.
func AllowLocalhostCliNEQ(v bool) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNEQ(FieldAllowLocalhostCli, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PermissionSet {
	return predicate.PermissionSet(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasGrants applies the HasEdge predicate on the "grants" edge.
func HasGrants() predicate.PermissionSet {
	return predicate.PermissionSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GrantsTable, GrantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGrantsWith applies the HasEdge predicate on the "grants" edge with a given conditions (other predicates).
func HasGrantsWith(preds ...predicate.Grant) predicate.PermissionSet {
	return predicate.PermissionSet(func(s *sql.Selector) {
		step := newGrantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWhitelistedUsers applies the HasEdge predicate on the "whitelisted_users" edge.
func HasWhitelistedUsers() predicate.PermissionSet {
	return predicate.PermissionSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WhitelistedUsersTable, WhitelistedUsersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWhitelistedUsersWith applies the HasEdge predicate on the "whitelisted_users" edge with a given conditions (other predicates).
func HasWhitelistedUsersWith(preds ...predicate.User) predicate.PermissionSet {
	return predicate.PermissionSet(func(s *sql.Selector) {
		step := newWhitelistedUsersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWhitelistedAgents applies the HasEdge predicate on the "whitelisted_agents" edge.
func HasWhitelistedAgents() predicate.PermissionSet {
	return predicate.PermissionSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WhitelistedAgentsTable, WhitelistedAgentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWhitelistedAgentsWith applies the HasEdge predicate on the "whitelisted_agents" edge with a given conditions (other predicates).
func HasWhitelistedAgentsWith(preds ...predicate.Agent) predicate.PermissionSet {
	return predicate.PermissionSet(func(s *sql.Selector) {
		step := newWhitelistedAgentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PermissionSet) predicate.PermissionSet {
	return predicate.PermissionSet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PermissionSet) predicate.PermissionSet {
	return predicate.PermissionSet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PermissionSet) predicate.PermissionSet {
	return predicate.PermissionSet(sql.NotPredicates(p))
}
