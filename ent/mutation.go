// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/agent"
	"github.com/codeready-toolchain/warden/ent/channel"
	"github.com/codeready-toolchain/warden/ent/channelcontext"
	"github.com/codeready-toolchain/warden/ent/chatmessage"
	"github.com/codeready-toolchain/warden/ent/container"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/infostore"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/joblogentry"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	"github.com/codeready-toolchain/warden/ent/predicate"
	"github.com/codeready-toolchain/warden/ent/providermodel"
	"github.com/codeready-toolchain/warden/ent/role"
	"github.com/codeready-toolchain/warden/ent/skill"
	"github.com/codeready-toolchain/warden/ent/systemuser"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/ent/transcriptionsegment"
	"github.com/codeready-toolchain/warden/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent                = "Agent"
	TypeChannel              = "Channel"
	TypeChannelContext       = "ChannelContext"
	TypeChatMessage          = "ChatMessage"
	TypeContainer            = "Container"
	TypeGrant                = "Grant"
	TypeInfoStore            = "InfoStore"
	TypeJob                  = "Job"
	TypeJobLogEntry          = "JobLogEntry"
	TypePermissionSet        = "PermissionSet"
	TypeProviderModel        = "ProviderModel"
	TypeRole                 = "Role"
	TypeSkill                = "Skill"
	TypeSystemUser           = "SystemUser"
	TypeTask                 = "Task"
	TypeTranscriptionSegment = "TranscriptionSegment"
	TypeUser                 = "User"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	system_prompt *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	role          *string
	clearedrole   bool
	model         *string
	clearedmodel  bool
	done          bool
	oldValue      func(context.Context) (*Agent, error)
	predicates    []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AgentMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AgentMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (m *AgentMutation) ClearSystemPrompt() {
	m.system_prompt = nil
	m.clearedFields[agent.FieldSystemPrompt] = struct{}{}
}

// SystemPromptCleared returns if the "system_prompt" field was cleared in this mutation.
func (m *AgentMutation) SystemPromptCleared() bool {
	_, ok := m.clearedFields[agent.FieldSystemPrompt]
	return ok
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AgentMutation) ResetSystemPrompt() {
	m.system_prompt = nil
	delete(m.clearedFields, agent.FieldSystemPrompt)
}

// SetRoleID sets the "role_id" field.
func (m *AgentMutation) SetRoleID(s string) {
	m.role = &s
}

// RoleID returns the value of the "role_id" field in the mutation.
func (m *AgentMutation) RoleID() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleID returns the old "role_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRoleID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleID: %w", err)
	}
	return oldValue.RoleID, nil
}

// ClearRoleID clears the value of the "role_id" field.
func (m *AgentMutation) ClearRoleID() {
	m.role = nil
	m.clearedFields[agent.FieldRoleID] = struct{}{}
}

// RoleIDCleared returns if the "role_id" field was cleared in this mutation.
func (m *AgentMutation) RoleIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldRoleID]
	return ok
}

// ResetRoleID resets all changes to the "role_id" field.
func (m *AgentMutation) ResetRoleID() {
	m.role = nil
	delete(m.clearedFields, agent.FieldRoleID)
}

// SetModelID sets the "model_id" field.
func (m *AgentMutation) SetModelID(s string) {
	m.model = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *AgentMutation) ModelID() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldModelID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ClearModelID clears the value of the "model_id" field.
func (m *AgentMutation) ClearModelID() {
	m.model = nil
	m.clearedFields[agent.FieldModelID] = struct{}{}
}

// ModelIDCleared returns if the "model_id" field was cleared in this mutation.
func (m *AgentMutation) ModelIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldModelID]
	return ok
}

// ResetModelID resets all changes to the "model_id" field.
func (m *AgentMutation) ResetModelID() {
	m.model = nil
	delete(m.clearedFields, agent.FieldModelID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRole clears the "role" edge to the Role entity.
func (m *AgentMutation) ClearRole() {
	m.clearedrole = true
	m.clearedFields[agent.FieldRoleID] = struct{}{}
}

// RoleCleared reports if the "role" edge to the Role entity was cleared.
func (m *AgentMutation) RoleCleared() bool {
	return m.RoleIDCleared() || m.clearedrole
}

// RoleIDs returns the "role" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoleID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) RoleIDs() (ids []string) {
	if id := m.role; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRole resets all changes to the "role" edge.
func (m *AgentMutation) ResetRole() {
	m.role = nil
	m.clearedrole = false
}

// ClearModel clears the "model" edge to the ProviderModel entity.
func (m *AgentMutation) ClearModel() {
	m.clearedmodel = true
	m.clearedFields[agent.FieldModelID] = struct{}{}
}

// ModelCleared reports if the "model" edge to the ProviderModel entity was cleared.
func (m *AgentMutation) ModelCleared() bool {
	return m.ModelIDCleared() || m.clearedmodel
}

// ModelIDs returns the "model" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ModelID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) ModelIDs() (ids []string) {
	if id := m.model; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetModel resets all changes to the "model" edge.
func (m *AgentMutation) ResetModel() {
	m.model = nil
	m.clearedmodel = false
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.system_prompt != nil {
		fields = append(fields, agent.FieldSystemPrompt)
	}
	if m.role != nil {
		fields = append(fields, agent.FieldRoleID)
	}
	if m.model != nil {
		fields = append(fields, agent.FieldModelID)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldName:
		return m.Name()
	case agent.FieldSystemPrompt:
		return m.SystemPrompt()
	case agent.FieldRoleID:
		return m.RoleID()
	case agent.FieldModelID:
		return m.ModelID()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case agent.FieldRoleID:
		return m.OldRoleID(ctx)
	case agent.FieldModelID:
		return m.OldModelID(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case agent.FieldRoleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleID(v)
		return nil
	case agent.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldSystemPrompt) {
		fields = append(fields, agent.FieldSystemPrompt)
	}
	if m.FieldCleared(agent.FieldRoleID) {
		fields = append(fields, agent.FieldRoleID)
	}
	if m.FieldCleared(agent.FieldModelID) {
		fields = append(fields, agent.FieldModelID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldSystemPrompt:
		m.ClearSystemPrompt()
		return nil
	case agent.FieldRoleID:
		m.ClearRoleID()
		return nil
	case agent.FieldModelID:
		m.ClearModelID()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case agent.FieldRoleID:
		m.ResetRoleID()
		return nil
	case agent.FieldModelID:
		m.ResetModelID()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.role != nil {
		edges = append(edges, agent.EdgeRole)
	}
	if m.model != nil {
		edges = append(edges, agent.EdgeModel)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeRole:
		if id := m.role; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgeModel:
		if id := m.model; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrole {
		edges = append(edges, agent.EdgeRole)
	}
	if m.clearedmodel {
		edges = append(edges, agent.EdgeModel)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeRole:
		return m.clearedrole
	case agent.EdgeModel:
		return m.clearedmodel
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeRole:
		m.ClearRole()
		return nil
	case agent.EdgeModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeRole:
		m.ResetRole()
		return nil
	case agent.EdgeModel:
		m.ResetModel()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// ChannelMutation represents an operation that mutates the Channel nodes in the graph.
type ChannelMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	name                  *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	default_agent         *string
	cleareddefault_agent  bool
	allowed_agents        map[string]struct{}
	removedallowed_agents map[string]struct{}
	clearedallowed_agents bool
	context               *string
	clearedcontext        bool
	permission_set        *string
	clearedpermission_set bool
	messages              map[string]struct{}
	removedmessages       map[string]struct{}
	clearedmessages       bool
	done                  bool
	oldValue              func(context.Context) (*Channel, error)
	predicates            []predicate.Channel
}

var _ ent.Mutation = (*ChannelMutation)(nil)

// channelOption allows management of the mutation configuration using functional options.
type channelOption func(*ChannelMutation)

// newChannelMutation creates new mutation for the Channel entity.
func newChannelMutation(c config, op Op, opts ...channelOption) *ChannelMutation {
	m := &ChannelMutation{
		config:        c,
		op:            op,
		typ:           TypeChannel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChannelID sets the ID field of the mutation.
func withChannelID(id string) channelOption {
	return func(m *ChannelMutation) {
		var (
			err   error
			once  sync.Once
			value *Channel
		)
		m.oldValue = func(ctx context.Context) (*Channel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Channel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChannel sets the old Channel of the mutation.
func withChannel(node *Channel) channelOption {
	return func(m *ChannelMutation) {
		m.oldValue = func(context.Context) (*Channel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChannelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChannelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Channel entities.
func (m *ChannelMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChannelMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChannelMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Channel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ChannelMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ChannelMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ChannelMutation) ResetName() {
	m.name = nil
}

// SetDefaultAgentID sets the "default_agent_id" field.
func (m *ChannelMutation) SetDefaultAgentID(s string) {
	m.default_agent = &s
}

// DefaultAgentID returns the value of the "default_agent_id" field in the mutation.
func (m *ChannelMutation) DefaultAgentID() (r string, exists bool) {
	v := m.default_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultAgentID returns the old "default_agent_id" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldDefaultAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultAgentID: %w", err)
	}
	return oldValue.DefaultAgentID, nil
}

// ClearDefaultAgentID clears the value of the "default_agent_id" field.
func (m *ChannelMutation) ClearDefaultAgentID() {
	m.default_agent = nil
	m.clearedFields[channel.FieldDefaultAgentID] = struct{}{}
}

// DefaultAgentIDCleared returns if the "default_agent_id" field was cleared in this mutation.
func (m *ChannelMutation) DefaultAgentIDCleared() bool {
	_, ok := m.clearedFields[channel.FieldDefaultAgentID]
	return ok
}

// ResetDefaultAgentID resets all changes to the "default_agent_id" field.
func (m *ChannelMutation) ResetDefaultAgentID() {
	m.default_agent = nil
	delete(m.clearedFields, channel.FieldDefaultAgentID)
}

// SetContextID sets the "context_id" field.
func (m *ChannelMutation) SetContextID(s string) {
	m.context = &s
}

// ContextID returns the value of the "context_id" field in the mutation.
func (m *ChannelMutation) ContextID() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContextID returns the old "context_id" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldContextID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextID: %w", err)
	}
	return oldValue.ContextID, nil
}

// ClearContextID clears the value of the "context_id" field.
func (m *ChannelMutation) ClearContextID() {
	m.context = nil
	m.clearedFields[channel.FieldContextID] = struct{}{}
}

// ContextIDCleared returns if the "context_id" field was cleared in this mutation.
func (m *ChannelMutation) ContextIDCleared() bool {
	_, ok := m.clearedFields[channel.FieldContextID]
	return ok
}

// ResetContextID resets all changes to the "context_id" field.
func (m *ChannelMutation) ResetContextID() {
	m.context = nil
	delete(m.clearedFields, channel.FieldContextID)
}

// SetPermissionSetID sets the "permission_set_id" field.
func (m *ChannelMutation) SetPermissionSetID(s string) {
	m.permission_set = &s
}

// PermissionSetID returns the value of the "permission_set_id" field in the mutation.
func (m *ChannelMutation) PermissionSetID() (r string, exists bool) {
	v := m.permission_set
	if v == nil {
		return
	}
	return *v, true
}

// OldPermissionSetID returns the old "permission_set_id" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldPermissionSetID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPermissionSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPermissionSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPermissionSetID: %w", err)
	}
	return oldValue.PermissionSetID, nil
}

// ClearPermissionSetID clears the value of the "permission_set_id" field.
func (m *ChannelMutation) ClearPermissionSetID() {
	m.permission_set = nil
	m.clearedFields[channel.FieldPermissionSetID] = struct{}{}
}

// PermissionSetIDCleared returns if the "permission_set_id" field was cleared in this mutation.
func (m *ChannelMutation) PermissionSetIDCleared() bool {
	_, ok := m.clearedFields[channel.FieldPermissionSetID]
	return ok
}

// ResetPermissionSetID resets all changes to the "permission_set_id" field.
func (m *ChannelMutation) ResetPermissionSetID() {
	m.permission_set = nil
	delete(m.clearedFields, channel.FieldPermissionSetID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChannelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChannelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChannelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDefaultAgent clears the "default_agent" edge to the Agent entity.
func (m *ChannelMutation) ClearDefaultAgent() {
	m.cleareddefault_agent = true
	m.clearedFields[channel.FieldDefaultAgentID] = struct{}{}
}

// DefaultAgentCleared reports if the "default_agent" edge to the Agent entity was cleared.
func (m *ChannelMutation) DefaultAgentCleared() bool {
	return m.DefaultAgentIDCleared() || m.cleareddefault_agent
}

// DefaultAgentIDs returns the "default_agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DefaultAgentID instead. It exists only for internal usage by the builders.
func (m *ChannelMutation) DefaultAgentIDs() (ids []string) {
	if id := m.default_agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDefaultAgent resets all changes to the "default_agent" edge.
func (m *ChannelMutation) ResetDefaultAgent() {
	m.default_agent = nil
	m.cleareddefault_agent = false
}

// AddAllowedAgentIDs adds the "allowed_agents" edge to the Agent entity by ids.
func (m *ChannelMutation) AddAllowedAgentIDs(ids ...string) {
	if m.allowed_agents == nil {
		m.allowed_agents = make(map[string]struct{})
	}
	for i := range ids {
		m.allowed_agents[ids[i]] = struct{}{}
	}
}

// ClearAllowedAgents clears the "allowed_agents" edge to the Agent entity.
func (m *ChannelMutation) ClearAllowedAgents() {
	m.clearedallowed_agents = true
}

// AllowedAgentsCleared reports if the "allowed_agents" edge to the Agent entity was cleared.
func (m *ChannelMutation) AllowedAgentsCleared() bool {
	return m.clearedallowed_agents
}

// RemoveAllowedAgentIDs removes the "allowed_agents" edge to the Agent entity by IDs.
func (m *ChannelMutation) RemoveAllowedAgentIDs(ids ...string) {
	if m.removedallowed_agents == nil {
		m.removedallowed_agents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.allowed_agents, ids[i])
		m.removedallowed_agents[ids[i]] = struct{}{}
	}
}

// RemovedAllowedAgents returns the removed IDs of the "allowed_agents" edge to the Agent entity.
func (m *ChannelMutation) RemovedAllowedAgentsIDs() (ids []string) {
	for id := range m.removedallowed_agents {
		ids = append(ids, id)
	}
	return
}

// AllowedAgentsIDs returns the "allowed_agents" edge IDs in the mutation.
func (m *ChannelMutation) AllowedAgentsIDs() (ids []string) {
	for id := range m.allowed_agents {
		ids = append(ids, id)
	}
	return
}

// ResetAllowedAgents resets all changes to the "allowed_agents" edge.
func (m *ChannelMutation) ResetAllowedAgents() {
	m.allowed_agents = nil
	m.clearedallowed_agents = false
	m.removedallowed_agents = nil
}

// ClearContext clears the "context" edge to the ChannelContext entity.
func (m *ChannelMutation) ClearContext() {
	m.clearedcontext = true
	m.clearedFields[channel.FieldContextID] = struct{}{}
}

// ContextCleared reports if the "context" edge to the ChannelContext entity was cleared.
func (m *ChannelMutation) ContextCleared() bool {
	return m.ContextIDCleared() || m.clearedcontext
}

// ContextIDs returns the "context" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContextID instead. It exists only for internal usage by the builders.
func (m *ChannelMutation) ContextIDs() (ids []string) {
	if id := m.context; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContext resets all changes to the "context" edge.
func (m *ChannelMutation) ResetContext() {
	m.context = nil
	m.clearedcontext = false
}

// ClearPermissionSet clears the "permission_set" edge to the PermissionSet entity.
func (m *ChannelMutation) ClearPermissionSet() {
	m.clearedpermission_set = true
	m.clearedFields[channel.FieldPermissionSetID] = struct{}{}
}

// PermissionSetCleared reports if the "permission_set" edge to the PermissionSet entity was cleared.
func (m *ChannelMutation) PermissionSetCleared() bool {
	return m.PermissionSetIDCleared() || m.clearedpermission_set
}

// PermissionSetIDs returns the "permission_set" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PermissionSetID instead. It exists only for internal usage by the builders.
func (m *ChannelMutation) PermissionSetIDs() (ids []string) {
	if id := m.permission_set; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPermissionSet resets all changes to the "permission_set" edge.
func (m *ChannelMutation) ResetPermissionSet() {
	m.permission_set = nil
	m.clearedpermission_set = false
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by ids.
func (m *ChannelMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ChatMessage entity.
func (m *ChannelMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ChatMessage entity was cleared.
func (m *ChannelMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ChatMessage entity by IDs.
func (m *ChannelMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ChatMessage entity.
func (m *ChannelMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ChannelMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ChannelMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ChannelMutation builder.
func (m *ChannelMutation) Where(ps ...predicate.Channel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChannelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChannelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Channel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChannelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChannelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Channel).
func (m *ChannelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChannelMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, channel.FieldName)
	}
	if m.default_agent != nil {
		fields = append(fields, channel.FieldDefaultAgentID)
	}
	if m.context != nil {
		fields = append(fields, channel.FieldContextID)
	}
	if m.permission_set != nil {
		fields = append(fields, channel.FieldPermissionSetID)
	}
	if m.created_at != nil {
		fields = append(fields, channel.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChannelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case channel.FieldName:
		return m.Name()
	case channel.FieldDefaultAgentID:
		return m.DefaultAgentID()
	case channel.FieldContextID:
		return m.ContextID()
	case channel.FieldPermissionSetID:
		return m.PermissionSetID()
	case channel.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChannelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case channel.FieldName:
		return m.OldName(ctx)
	case channel.FieldDefaultAgentID:
		return m.OldDefaultAgentID(ctx)
	case channel.FieldContextID:
		return m.OldContextID(ctx)
	case channel.FieldPermissionSetID:
		return m.OldPermissionSetID(ctx)
	case channel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Channel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case channel.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case channel.FieldDefaultAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultAgentID(v)
		return nil
	case channel.FieldContextID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextID(v)
		return nil
	case channel.FieldPermissionSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPermissionSetID(v)
		return nil
	case channel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Channel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChannelMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChannelMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Channel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChannelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(channel.FieldDefaultAgentID) {
		fields = append(fields, channel.FieldDefaultAgentID)
	}
	if m.FieldCleared(channel.FieldContextID) {
		fields = append(fields, channel.FieldContextID)
	}
	if m.FieldCleared(channel.FieldPermissionSetID) {
		fields = append(fields, channel.FieldPermissionSetID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChannelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChannelMutation) ClearField(name string) error {
	switch name {
	case channel.FieldDefaultAgentID:
		m.ClearDefaultAgentID()
		return nil
	case channel.FieldContextID:
		m.ClearContextID()
		return nil
	case channel.FieldPermissionSetID:
		m.ClearPermissionSetID()
		return nil
	}
	return fmt.Errorf("unknown Channel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChannelMutation) ResetField(name string) error {
	switch name {
	case channel.FieldName:
		m.ResetName()
		return nil
	case channel.FieldDefaultAgentID:
		m.ResetDefaultAgentID()
		return nil
	case channel.FieldContextID:
		m.ResetContextID()
		return nil
	case channel.FieldPermissionSetID:
		m.ResetPermissionSetID()
		return nil
	case channel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Channel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChannelMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.default_agent != nil {
		edges = append(edges, channel.EdgeDefaultAgent)
	}
	if m.allowed_agents != nil {
		edges = append(edges, channel.EdgeAllowedAgents)
	}
	if m.context != nil {
		edges = append(edges, channel.EdgeContext)
	}
	if m.permission_set != nil {
		edges = append(edges, channel.EdgePermissionSet)
	}
	if m.messages != nil {
		edges = append(edges, channel.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChannelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case channel.EdgeDefaultAgent:
		if id := m.default_agent; id != nil {
			return []ent.Value{*id}
		}
	case channel.EdgeAllowedAgents:
		ids := make([]ent.Value, 0, len(m.allowed_agents))
		for id := range m.allowed_agents {
			ids = append(ids, id)
		}
		return ids
	case channel.EdgeContext:
		if id := m.context; id != nil {
			return []ent.Value{*id}
		}
	case channel.EdgePermissionSet:
		if id := m.permission_set; id != nil {
			return []ent.Value{*id}
		}
	case channel.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChannelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedallowed_agents != nil {
		edges = append(edges, channel.EdgeAllowedAgents)
	}
	if m.removedmessages != nil {
		edges = append(edges, channel.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChannelMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case channel.EdgeAllowedAgents:
		ids := make([]ent.Value, 0, len(m.removedallowed_agents))
		for id := range m.removedallowed_agents {
			ids = append(ids, id)
		}
		return ids
	case channel.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChannelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.cleareddefault_agent {
		edges = append(edges, channel.EdgeDefaultAgent)
	}
	if m.clearedallowed_agents {
		edges = append(edges, channel.EdgeAllowedAgents)
	}
	if m.clearedcontext {
		edges = append(edges, channel.EdgeContext)
	}
	if m.clearedpermission_set {
		edges = append(edges, channel.EdgePermissionSet)
	}
	if m.clearedmessages {
		edges = append(edges, channel.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChannelMutation) EdgeCleared(name string) bool {
	switch name {
	case channel.EdgeDefaultAgent:
		return m.cleareddefault_agent
	case channel.EdgeAllowedAgents:
		return m.clearedallowed_agents
	case channel.EdgeContext:
		return m.clearedcontext
	case channel.EdgePermissionSet:
		return m.clearedpermission_set
	case channel.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChannelMutation) ClearEdge(name string) error {
	switch name {
	case channel.EdgeDefaultAgent:
		m.ClearDefaultAgent()
		return nil
	case channel.EdgeContext:
		m.ClearContext()
		return nil
	case channel.EdgePermissionSet:
		m.ClearPermissionSet()
		return nil
	}
	return fmt.Errorf("unknown Channel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChannelMutation) ResetEdge(name string) error {
	switch name {
	case channel.EdgeDefaultAgent:
		m.ResetDefaultAgent()
		return nil
	case channel.EdgeAllowedAgents:
		m.ResetAllowedAgents()
		return nil
	case channel.EdgeContext:
		m.ResetContext()
		return nil
	case channel.EdgePermissionSet:
		m.ResetPermissionSet()
		return nil
	case channel.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown Channel edge %s", name)
}

// ChannelContextMutation represents an operation that mutates the ChannelContext nodes in the graph.
type ChannelContextMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	name                  *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	permission_set        *string
	clearedpermission_set bool
	done                  bool
	oldValue              func(context.Context) (*ChannelContext, error)
	predicates            []predicate.ChannelContext
}

var _ ent.Mutation = (*ChannelContextMutation)(nil)

// channelcontextOption allows management of the mutation configuration using functional options.
type channelcontextOption func(*ChannelContextMutation)

// newChannelContextMutation creates new mutation for the ChannelContext entity.
func newChannelContextMutation(c config, op Op, opts ...channelcontextOption) *ChannelContextMutation {
	m := &ChannelContextMutation{
		config:        c,
		op:            op,
		typ:           TypeChannelContext,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChannelContextID sets the ID field of the mutation.
func withChannelContextID(id string) channelcontextOption {
	return func(m *ChannelContextMutation) {
		var (
			err   error
			once  sync.Once
			value *ChannelContext
		)
		m.oldValue = func(ctx context.Context) (*ChannelContext, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChannelContext.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChannelContext sets the old ChannelContext of the mutation.
func withChannelContext(node *ChannelContext) channelcontextOption {
	return func(m *ChannelContextMutation) {
		m.oldValue = func(context.Context) (*ChannelContext, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChannelContextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChannelContextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChannelContext entities.
func (m *ChannelContextMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChannelContextMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChannelContextMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChannelContext.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ChannelContextMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ChannelContextMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ChannelContext entity.
// If the ChannelContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelContextMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ChannelContextMutation) ResetName() {
	m.name = nil
}

// SetPermissionSetID sets the "permission_set_id" field.
func (m *ChannelContextMutation) SetPermissionSetID(s string) {
	m.permission_set = &s
}

// PermissionSetID returns the value of the "permission_set_id" field in the mutation.
func (m *ChannelContextMutation) PermissionSetID() (r string, exists bool) {
	v := m.permission_set
	if v == nil {
		return
	}
	return *v, true
}

// OldPermissionSetID returns the old "permission_set_id" field's value of the ChannelContext entity.
// If the ChannelContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelContextMutation) OldPermissionSetID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPermissionSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPermissionSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPermissionSetID: %w", err)
	}
	return oldValue.PermissionSetID, nil
}

// ClearPermissionSetID clears the value of the "permission_set_id" field.
func (m *ChannelContextMutation) ClearPermissionSetID() {
	m.permission_set = nil
	m.clearedFields[channelcontext.FieldPermissionSetID] = struct{}{}
}

// PermissionSetIDCleared returns if the "permission_set_id" field was cleared in this mutation.
func (m *ChannelContextMutation) PermissionSetIDCleared() bool {
	_, ok := m.clearedFields[channelcontext.FieldPermissionSetID]
	return ok
}

// ResetPermissionSetID resets all changes to the "permission_set_id" field.
func (m *ChannelContextMutation) ResetPermissionSetID() {
	m.permission_set = nil
	delete(m.clearedFields, channelcontext.FieldPermissionSetID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChannelContextMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChannelContextMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChannelContext entity.
// If the ChannelContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelContextMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChannelContextMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPermissionSet clears the "permission_set" edge to the PermissionSet entity.
func (m *ChannelContextMutation) ClearPermissionSet() {
	m.clearedpermission_set = true
	m.clearedFields[channelcontext.FieldPermissionSetID] = struct{}{}
}

// PermissionSetCleared reports if the "permission_set" edge to the PermissionSet entity was cleared.
func (m *ChannelContextMutation) PermissionSetCleared() bool {
	return m.PermissionSetIDCleared() || m.clearedpermission_set
}

// PermissionSetIDs returns the "permission_set" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PermissionSetID instead. It exists only for internal usage by the builders.
func (m *ChannelContextMutation) PermissionSetIDs() (ids []string) {
	if id := m.permission_set; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPermissionSet resets all changes to the "permission_set" edge.
func (m *ChannelContextMutation) ResetPermissionSet() {
	m.permission_set = nil
	m.clearedpermission_set = false
}

// Where appends a list predicates to the ChannelContextMutation builder.
func (m *ChannelContextMutation) Where(ps ...predicate.ChannelContext) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChannelContextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChannelContextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChannelContext, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChannelContextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChannelContextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChannelContext).
func (m *ChannelContextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChannelContextMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, channelcontext.FieldName)
	}
	if m.permission_set != nil {
		fields = append(fields, channelcontext.FieldPermissionSetID)
	}
	if m.created_at != nil {
		fields = append(fields, channelcontext.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChannelContextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case channelcontext.FieldName:
		return m.Name()
	case channelcontext.FieldPermissionSetID:
		return m.PermissionSetID()
	case channelcontext.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChannelContextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case channelcontext.FieldName:
		return m.OldName(ctx)
	case channelcontext.FieldPermissionSetID:
		return m.OldPermissionSetID(ctx)
	case channelcontext.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChannelContext field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelContextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case channelcontext.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case channelcontext.FieldPermissionSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPermissionSetID(v)
		return nil
	case channelcontext.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChannelContext field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChannelContextMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChannelContextMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelContextMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChannelContext numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChannelContextMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(channelcontext.FieldPermissionSetID) {
		fields = append(fields, channelcontext.FieldPermissionSetID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChannelContextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChannelContextMutation) ClearField(name string) error {
	switch name {
	case channelcontext.FieldPermissionSetID:
		m.ClearPermissionSetID()
		return nil
	}
	return fmt.Errorf("unknown ChannelContext nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChannelContextMutation) ResetField(name string) error {
	switch name {
	case channelcontext.FieldName:
		m.ResetName()
		return nil
	case channelcontext.FieldPermissionSetID:
		m.ResetPermissionSetID()
		return nil
	case channelcontext.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChannelContext field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChannelContextMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.permission_set != nil {
		edges = append(edges, channelcontext.EdgePermissionSet)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChannelContextMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case channelcontext.EdgePermissionSet:
		if id := m.permission_set; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChannelContextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChannelContextMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChannelContextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpermission_set {
		edges = append(edges, channelcontext.EdgePermissionSet)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChannelContextMutation) EdgeCleared(name string) bool {
	switch name {
	case channelcontext.EdgePermissionSet:
		return m.clearedpermission_set
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChannelContextMutation) ClearEdge(name string) error {
	switch name {
	case channelcontext.EdgePermissionSet:
		m.ClearPermissionSet()
		return nil
	}
	return fmt.Errorf("unknown ChannelContext unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChannelContextMutation) ResetEdge(name string) error {
	switch name {
	case channelcontext.EdgePermissionSet:
		m.ResetPermissionSet()
		return nil
	}
	return fmt.Errorf("unknown ChannelContext edge %s", name)
}

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op             Op
	typ            string
	id             *string
	role           *chatmessage.Role
	content        *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	channel        *string
	clearedchannel bool
	done           bool
	oldValue       func(context.Context) (*ChatMessage, error)
	predicates     []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannelID sets the "channel_id" field.
func (m *ChatMessageMutation) SetChannelID(s string) {
	m.channel = &s
}

// ChannelID returns the value of the "channel_id" field in the mutation.
func (m *ChatMessageMutation) ChannelID() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelID returns the old "channel_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldChannelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelID: %w", err)
	}
	return oldValue.ChannelID, nil
}

// ResetChannelID resets all changes to the "channel_id" field.
func (m *ChatMessageMutation) ResetChannelID() {
	m.channel = nil
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(c chatmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r chatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v chatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearChannel clears the "channel" edge to the Channel entity.
func (m *ChatMessageMutation) ClearChannel() {
	m.clearedchannel = true
	m.clearedFields[chatmessage.FieldChannelID] = struct{}{}
}

// ChannelCleared reports if the "channel" edge to the Channel entity was cleared.
func (m *ChatMessageMutation) ChannelCleared() bool {
	return m.clearedchannel
}

// ChannelIDs returns the "channel" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChannelID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) ChannelIDs() (ids []string) {
	if id := m.channel; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChannel resets all changes to the "channel" edge.
func (m *ChatMessageMutation) ResetChannel() {
	m.channel = nil
	m.clearedchannel = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.channel != nil {
		fields = append(fields, chatmessage.FieldChannelID)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldChannelID:
		return m.ChannelID()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldChannelID:
		return m.OldChannelID(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldChannelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelID(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(chatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldChannelID:
		m.ResetChannelID()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.channel != nil {
		edges = append(edges, chatmessage.EdgeChannel)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeChannel:
		if id := m.channel; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchannel {
		edges = append(edges, chatmessage.EdgeChannel)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeChannel:
		return m.clearedchannel
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeChannel:
		m.ClearChannel()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeChannel:
		m.ResetChannel()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// ContainerMutation represents an operation that mutates the Container nodes in the graph.
type ContainerMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	_path         *string
	description   *string
	kind          *container.Kind
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Container, error)
	predicates    []predicate.Container
}

var _ ent.Mutation = (*ContainerMutation)(nil)

// containerOption allows management of the mutation configuration using functional options.
type containerOption func(*ContainerMutation)

// newContainerMutation creates new mutation for the Container entity.
func newContainerMutation(c config, op Op, opts ...containerOption) *ContainerMutation {
	m := &ContainerMutation{
		config:        c,
		op:            op,
		typ:           TypeContainer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContainerID sets the ID field of the mutation.
func withContainerID(id string) containerOption {
	return func(m *ContainerMutation) {
		var (
			err   error
			once  sync.Once
			value *Container
		)
		m.oldValue = func(ctx context.Context) (*Container, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Container.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContainer sets the old Container of the mutation.
func withContainer(node *Container) containerOption {
	return func(m *ContainerMutation) {
		m.oldValue = func(context.Context) (*Container, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContainerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContainerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Container entities.
func (m *ContainerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContainerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContainerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Container.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ContainerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ContainerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Container entity.
// If the Container object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContainerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ContainerMutation) ResetName() {
	m.name = nil
}

// SetPath sets the "path" field.
func (m *ContainerMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *ContainerMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Container entity.
// If the Container object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContainerMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *ContainerMutation) ResetPath() {
	m._path = nil
}

// SetDescription sets the "description" field.
func (m *ContainerMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ContainerMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Container entity.
// If the Container object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContainerMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ContainerMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[container.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ContainerMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[container.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ContainerMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, container.FieldDescription)
}

// SetKind sets the "kind" field.
func (m *ContainerMutation) SetKind(c container.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ContainerMutation) Kind() (r container.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Container entity.
// If the Container object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContainerMutation) OldKind(ctx context.Context) (v container.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ContainerMutation) ResetKind() {
	m.kind = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContainerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContainerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Container entity.
// If the Container object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContainerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContainerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ContainerMutation builder.
func (m *ContainerMutation) Where(ps ...predicate.Container) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContainerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContainerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Container, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContainerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContainerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Container).
func (m *ContainerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContainerMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, container.FieldName)
	}
	if m._path != nil {
		fields = append(fields, container.FieldPath)
	}
	if m.description != nil {
		fields = append(fields, container.FieldDescription)
	}
	if m.kind != nil {
		fields = append(fields, container.FieldKind)
	}
	if m.created_at != nil {
		fields = append(fields, container.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContainerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case container.FieldName:
		return m.Name()
	case container.FieldPath:
		return m.Path()
	case container.FieldDescription:
		return m.Description()
	case container.FieldKind:
		return m.Kind()
	case container.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContainerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case container.FieldName:
		return m.OldName(ctx)
	case container.FieldPath:
		return m.OldPath(ctx)
	case container.FieldDescription:
		return m.OldDescription(ctx)
	case container.FieldKind:
		return m.OldKind(ctx)
	case container.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Container field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContainerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case container.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case container.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case container.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case container.FieldKind:
		v, ok := value.(container.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case container.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Container field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContainerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContainerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContainerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Container numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContainerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(container.FieldDescription) {
		fields = append(fields, container.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContainerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContainerMutation) ClearField(name string) error {
	switch name {
	case container.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Container nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContainerMutation) ResetField(name string) error {
	switch name {
	case container.FieldName:
		m.ResetName()
		return nil
	case container.FieldPath:
		m.ResetPath()
		return nil
	case container.FieldDescription:
		m.ResetDescription()
		return nil
	case container.FieldKind:
		m.ResetKind()
		return nil
	case container.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Container field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContainerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContainerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContainerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContainerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContainerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContainerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContainerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Container unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContainerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Container edge %s", name)
}

// GrantMutation represents an operation that mutates the Grant nodes in the graph.
type GrantMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	category              *grant.Category
	resource_id           *string
	clearance             *grant.Clearance
	is_default            *bool
	created_at            *time.Time
	clearedFields         map[string]struct{}
	permission_set        *string
	clearedpermission_set bool
	done                  bool
	oldValue              func(context.Context) (*Grant, error)
	predicates            []predicate.Grant
}

var _ ent.Mutation = (*GrantMutation)(nil)

// grantOption allows management of the mutation configuration using functional options.
type grantOption func(*GrantMutation)

// newGrantMutation creates new mutation for the Grant entity.
func newGrantMutation(c config, op Op, opts ...grantOption) *GrantMutation {
	m := &GrantMutation{
		config:        c,
		op:            op,
		typ:           TypeGrant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGrantID sets the ID field of the mutation.
func withGrantID(id string) grantOption {
	return func(m *GrantMutation) {
		var (
			err   error
			once  sync.Once
			value *Grant
		)
		m.oldValue = func(ctx context.Context) (*Grant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Grant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGrant sets the old Grant of the mutation.
func withGrant(node *Grant) grantOption {
	return func(m *GrantMutation) {
		m.oldValue = func(context.Context) (*Grant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GrantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GrantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Grant entities.
func (m *GrantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GrantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GrantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Grant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPermissionSetID sets the "permission_set_id" field.
func (m *GrantMutation) SetPermissionSetID(s string) {
	m.permission_set = &s
}

// PermissionSetID returns the value of the "permission_set_id" field in the mutation.
func (m *GrantMutation) PermissionSetID() (r string, exists bool) {
	v := m.permission_set
	if v == nil {
		return
	}
	return *v, true
}

// OldPermissionSetID returns the old "permission_set_id" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldPermissionSetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPermissionSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPermissionSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPermissionSetID: %w", err)
	}
	return oldValue.PermissionSetID, nil
}

// ResetPermissionSetID resets all changes to the "permission_set_id" field.
func (m *GrantMutation) ResetPermissionSetID() {
	m.permission_set = nil
}

// SetCategory sets the "category" field.
func (m *GrantMutation) SetCategory(gr grant.Category) {
	m.category = &gr
}

// Category returns the value of the "category" field in the mutation.
func (m *GrantMutation) Category() (r grant.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldCategory(ctx context.Context) (v grant.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *GrantMutation) ResetCategory() {
	m.category = nil
}

// SetResourceID sets the "resource_id" field.
func (m *GrantMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *GrantMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *GrantMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetClearance sets the "clearance" field.
func (m *GrantMutation) SetClearance(gr grant.Clearance) {
	m.clearance = &gr
}

// Clearance returns the value of the "clearance" field in the mutation.
func (m *GrantMutation) Clearance() (r grant.Clearance, exists bool) {
	v := m.clearance
	if v == nil {
		return
	}
	return *v, true
}

// OldClearance returns the old "clearance" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldClearance(ctx context.Context) (v grant.Clearance, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClearance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClearance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClearance: %w", err)
	}
	return oldValue.Clearance, nil
}

// ResetClearance resets all changes to the "clearance" field.
func (m *GrantMutation) ResetClearance() {
	m.clearance = nil
}

// SetIsDefault sets the "is_default" field.
func (m *GrantMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *GrantMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *GrantMutation) ResetIsDefault() {
	m.is_default = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GrantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GrantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GrantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPermissionSet clears the "permission_set" edge to the PermissionSet entity.
func (m *GrantMutation) ClearPermissionSet() {
	m.clearedpermission_set = true
	m.clearedFields[grant.FieldPermissionSetID] = struct{}{}
}

// PermissionSetCleared reports if the "permission_set" edge to the PermissionSet entity was cleared.
func (m *GrantMutation) PermissionSetCleared() bool {
	return m.clearedpermission_set
}

// PermissionSetIDs returns the "permission_set" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PermissionSetID instead. It exists only for internal usage by the builders.
func (m *GrantMutation) PermissionSetIDs() (ids []string) {
	if id := m.permission_set; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPermissionSet resets all changes to the "permission_set" edge.
func (m *GrantMutation) ResetPermissionSet() {
	m.permission_set = nil
	m.clearedpermission_set = false
}

// Where appends a list predicates to the GrantMutation builder.
func (m *GrantMutation) Where(ps ...predicate.Grant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GrantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GrantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Grant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GrantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GrantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Grant).
func (m *GrantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GrantMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.permission_set != nil {
		fields = append(fields, grant.FieldPermissionSetID)
	}
	if m.category != nil {
		fields = append(fields, grant.FieldCategory)
	}
	if m.resource_id != nil {
		fields = append(fields, grant.FieldResourceID)
	}
	if m.clearance != nil {
		fields = append(fields, grant.FieldClearance)
	}
	if m.is_default != nil {
		fields = append(fields, grant.FieldIsDefault)
	}
	if m.created_at != nil {
		fields = append(fields, grant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GrantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case grant.FieldPermissionSetID:
		return m.PermissionSetID()
	case grant.FieldCategory:
		return m.Category()
	case grant.FieldResourceID:
		return m.ResourceID()
	case grant.FieldClearance:
		return m.Clearance()
	case grant.FieldIsDefault:
		return m.IsDefault()
	case grant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GrantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case grant.FieldPermissionSetID:
		return m.OldPermissionSetID(ctx)
	case grant.FieldCategory:
		return m.OldCategory(ctx)
	case grant.FieldResourceID:
		return m.OldResourceID(ctx)
	case grant.FieldClearance:
		return m.OldClearance(ctx)
	case grant.FieldIsDefault:
		return m.OldIsDefault(ctx)
	case grant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Grant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GrantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case grant.FieldPermissionSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPermissionSetID(v)
		return nil
	case grant.FieldCategory:
		v, ok := value.(grant.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case grant.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case grant.FieldClearance:
		v, ok := value.(grant.Clearance)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClearance(v)
		return nil
	case grant.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	case grant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Grant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GrantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GrantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GrantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Grant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GrantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GrantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GrantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Grant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GrantMutation) ResetField(name string) error {
	switch name {
	case grant.FieldPermissionSetID:
		m.ResetPermissionSetID()
		return nil
	case grant.FieldCategory:
		m.ResetCategory()
		return nil
	case grant.FieldResourceID:
		m.ResetResourceID()
		return nil
	case grant.FieldClearance:
		m.ResetClearance()
		return nil
	case grant.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	case grant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Grant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GrantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.permission_set != nil {
		edges = append(edges, grant.EdgePermissionSet)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GrantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case grant.EdgePermissionSet:
		if id := m.permission_set; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GrantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GrantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GrantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpermission_set {
		edges = append(edges, grant.EdgePermissionSet)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GrantMutation) EdgeCleared(name string) bool {
	switch name {
	case grant.EdgePermissionSet:
		return m.clearedpermission_set
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GrantMutation) ClearEdge(name string) error {
	switch name {
	case grant.EdgePermissionSet:
		m.ClearPermissionSet()
		return nil
	}
	return fmt.Errorf("unknown Grant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GrantMutation) ResetEdge(name string) error {
	switch name {
	case grant.EdgePermissionSet:
		m.ResetPermissionSet()
		return nil
	}
	return fmt.Errorf("unknown Grant edge %s", name)
}

// InfoStoreMutation represents an operation that mutates the InfoStore nodes in the graph.
type InfoStoreMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	kind          *infostore.Kind
	location      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*InfoStore, error)
	predicates    []predicate.InfoStore
}

var _ ent.Mutation = (*InfoStoreMutation)(nil)

// infostoreOption allows management of the mutation configuration using functional options.
type infostoreOption func(*InfoStoreMutation)

// newInfoStoreMutation creates new mutation for the InfoStore entity.
func newInfoStoreMutation(c config, op Op, opts ...infostoreOption) *InfoStoreMutation {
	m := &InfoStoreMutation{
		config:        c,
		op:            op,
		typ:           TypeInfoStore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInfoStoreID sets the ID field of the mutation.
func withInfoStoreID(id string) infostoreOption {
	return func(m *InfoStoreMutation) {
		var (
			err   error
			once  sync.Once
			value *InfoStore
		)
		m.oldValue = func(ctx context.Context) (*InfoStore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InfoStore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInfoStore sets the old InfoStore of the mutation.
func withInfoStore(node *InfoStore) infostoreOption {
	return func(m *InfoStoreMutation) {
		m.oldValue = func(context.Context) (*InfoStore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InfoStoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InfoStoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InfoStore entities.
func (m *InfoStoreMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InfoStoreMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InfoStoreMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InfoStore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *InfoStoreMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *InfoStoreMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the InfoStore entity.
// If the InfoStore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InfoStoreMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *InfoStoreMutation) ResetName() {
	m.name = nil
}

// SetKind sets the "kind" field.
func (m *InfoStoreMutation) SetKind(i infostore.Kind) {
	m.kind = &i
}

// Kind returns the value of the "kind" field in the mutation.
func (m *InfoStoreMutation) Kind() (r infostore.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the InfoStore entity.
// If the InfoStore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InfoStoreMutation) OldKind(ctx context.Context) (v infostore.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *InfoStoreMutation) ResetKind() {
	m.kind = nil
}

// SetLocation sets the "location" field.
func (m *InfoStoreMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *InfoStoreMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the InfoStore entity.
// If the InfoStore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InfoStoreMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ResetLocation resets all changes to the "location" field.
func (m *InfoStoreMutation) ResetLocation() {
	m.location = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InfoStoreMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InfoStoreMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InfoStore entity.
// If the InfoStore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InfoStoreMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InfoStoreMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the InfoStoreMutation builder.
func (m *InfoStoreMutation) Where(ps ...predicate.InfoStore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InfoStoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InfoStoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InfoStore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InfoStoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InfoStoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InfoStore).
func (m *InfoStoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InfoStoreMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, infostore.FieldName)
	}
	if m.kind != nil {
		fields = append(fields, infostore.FieldKind)
	}
	if m.location != nil {
		fields = append(fields, infostore.FieldLocation)
	}
	if m.created_at != nil {
		fields = append(fields, infostore.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InfoStoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case infostore.FieldName:
		return m.Name()
	case infostore.FieldKind:
		return m.Kind()
	case infostore.FieldLocation:
		return m.Location()
	case infostore.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InfoStoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case infostore.FieldName:
		return m.OldName(ctx)
	case infostore.FieldKind:
		return m.OldKind(ctx)
	case infostore.FieldLocation:
		return m.OldLocation(ctx)
	case infostore.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InfoStore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InfoStoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case infostore.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case infostore.FieldKind:
		v, ok := value.(infostore.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case infostore.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case infostore.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InfoStore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InfoStoreMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InfoStoreMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InfoStoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InfoStore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InfoStoreMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InfoStoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InfoStoreMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InfoStore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InfoStoreMutation) ResetField(name string) error {
	switch name {
	case infostore.FieldName:
		m.ResetName()
		return nil
	case infostore.FieldKind:
		m.ResetKind()
		return nil
	case infostore.FieldLocation:
		m.ResetLocation()
		return nil
	case infostore.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InfoStore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InfoStoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InfoStoreMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InfoStoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InfoStoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InfoStoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InfoStoreMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InfoStoreMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InfoStore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InfoStoreMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InfoStore edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	caller_user_id         *string
	caller_agent_id        *string
	action                 *job.Action
	resource_id            *string
	status                 *job.Status
	effective_clearance    *job.EffectiveClearance
	approved_by_user_id    *string
	approved_by_agent_id   *string
	result_data            *string
	error_log              *string
	shell_kind             *job.ShellKind
	script                 *string
	working_directory      *string
	transcription_model_id *string
	language               *string
	payload                *map[string]interface{}
	created_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	clearedFields          map[string]struct{}
	agent                  *string
	clearedagent           bool
	channel                *string
	clearedchannel         bool
	log_entries            map[string]struct{}
	removedlog_entries     map[string]struct{}
	clearedlog_entries     bool
	segments               map[string]struct{}
	removedsegments        map[string]struct{}
	clearedsegments        bool
	done                   bool
	oldValue               func(context.Context) (*Job, error)
	predicates             []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *JobMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *JobMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *JobMutation) ResetAgentID() {
	m.agent = nil
}

// SetChannelID sets the "channel_id" field.
func (m *JobMutation) SetChannelID(s string) {
	m.channel = &s
}

// ChannelID returns the value of the "channel_id" field in the mutation.
func (m *JobMutation) ChannelID() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelID returns the old "channel_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldChannelID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelID: %w", err)
	}
	return oldValue.ChannelID, nil
}

// ClearChannelID clears the value of the "channel_id" field.
func (m *JobMutation) ClearChannelID() {
	m.channel = nil
	m.clearedFields[job.FieldChannelID] = struct{}{}
}

// ChannelIDCleared returns if the "channel_id" field was cleared in this mutation.
func (m *JobMutation) ChannelIDCleared() bool {
	_, ok := m.clearedFields[job.FieldChannelID]
	return ok
}

// ResetChannelID resets all changes to the "channel_id" field.
func (m *JobMutation) ResetChannelID() {
	m.channel = nil
	delete(m.clearedFields, job.FieldChannelID)
}

// SetCallerUserID sets the "caller_user_id" field.
func (m *JobMutation) SetCallerUserID(s string) {
	m.caller_user_id = &s
}

// CallerUserID returns the value of the "caller_user_id" field in the mutation.
func (m *JobMutation) CallerUserID() (r string, exists bool) {
	v := m.caller_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallerUserID returns the old "caller_user_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCallerUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallerUserID: %w", err)
	}
	return oldValue.CallerUserID, nil
}

// ClearCallerUserID clears the value of the "caller_user_id" field.
func (m *JobMutation) ClearCallerUserID() {
	m.caller_user_id = nil
	m.clearedFields[job.FieldCallerUserID] = struct{}{}
}

// CallerUserIDCleared returns if the "caller_user_id" field was cleared in this mutation.
func (m *JobMutation) CallerUserIDCleared() bool {
	_, ok := m.clearedFields[job.FieldCallerUserID]
	return ok
}

// ResetCallerUserID resets all changes to the "caller_user_id" field.
func (m *JobMutation) ResetCallerUserID() {
	m.caller_user_id = nil
	delete(m.clearedFields, job.FieldCallerUserID)
}

// SetCallerAgentID sets the "caller_agent_id" field.
func (m *JobMutation) SetCallerAgentID(s string) {
	m.caller_agent_id = &s
}

// CallerAgentID returns the value of the "caller_agent_id" field in the mutation.
func (m *JobMutation) CallerAgentID() (r string, exists bool) {
	v := m.caller_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallerAgentID returns the old "caller_agent_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCallerAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallerAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallerAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallerAgentID: %w", err)
	}
	return oldValue.CallerAgentID, nil
}

// ClearCallerAgentID clears the value of the "caller_agent_id" field.
func (m *JobMutation) ClearCallerAgentID() {
	m.caller_agent_id = nil
	m.clearedFields[job.FieldCallerAgentID] = struct{}{}
}

// CallerAgentIDCleared returns if the "caller_agent_id" field was cleared in this mutation.
func (m *JobMutation) CallerAgentIDCleared() bool {
	_, ok := m.clearedFields[job.FieldCallerAgentID]
	return ok
}

// ResetCallerAgentID resets all changes to the "caller_agent_id" field.
func (m *JobMutation) ResetCallerAgentID() {
	m.caller_agent_id = nil
	delete(m.clearedFields, job.FieldCallerAgentID)
}

// SetAction sets the "action" field.
func (m *JobMutation) SetAction(j job.Action) {
	m.action = &j
}

// Action returns the value of the "action" field in the mutation.
func (m *JobMutation) Action() (r job.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAction(ctx context.Context) (v job.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *JobMutation) ResetAction() {
	m.action = nil
}

// SetResourceID sets the "resource_id" field.
func (m *JobMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *JobMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResourceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *JobMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[job.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *JobMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[job.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *JobMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, job.FieldResourceID)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetEffectiveClearance sets the "effective_clearance" field.
func (m *JobMutation) SetEffectiveClearance(jc job.EffectiveClearance) {
	m.effective_clearance = &jc
}

// EffectiveClearance returns the value of the "effective_clearance" field in the mutation.
func (m *JobMutation) EffectiveClearance() (r job.EffectiveClearance, exists bool) {
	v := m.effective_clearance
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveClearance returns the old "effective_clearance" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldEffectiveClearance(ctx context.Context) (v job.EffectiveClearance, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveClearance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveClearance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveClearance: %w", err)
	}
	return oldValue.EffectiveClearance, nil
}

// ClearEffectiveClearance clears the value of the "effective_clearance" field.
func (m *JobMutation) ClearEffectiveClearance() {
	m.effective_clearance = nil
	m.clearedFields[job.FieldEffectiveClearance] = struct{}{}
}

// EffectiveClearanceCleared returns if the "effective_clearance" field was cleared in this mutation.
func (m *JobMutation) EffectiveClearanceCleared() bool {
	_, ok := m.clearedFields[job.FieldEffectiveClearance]
	return ok
}

// ResetEffectiveClearance resets all changes to the "effective_clearance" field.
func (m *JobMutation) ResetEffectiveClearance() {
	m.effective_clearance = nil
	delete(m.clearedFields, job.FieldEffectiveClearance)
}

// SetApprovedByUserID sets the "approved_by_user_id" field.
func (m *JobMutation) SetApprovedByUserID(s string) {
	m.approved_by_user_id = &s
}

// ApprovedByUserID returns the value of the "approved_by_user_id" field in the mutation.
func (m *JobMutation) ApprovedByUserID() (r string, exists bool) {
	v := m.approved_by_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedByUserID returns the old "approved_by_user_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldApprovedByUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedByUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedByUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedByUserID: %w", err)
	}
	return oldValue.ApprovedByUserID, nil
}

// ClearApprovedByUserID clears the value of the "approved_by_user_id" field.
func (m *JobMutation) ClearApprovedByUserID() {
	m.approved_by_user_id = nil
	m.clearedFields[job.FieldApprovedByUserID] = struct{}{}
}

// ApprovedByUserIDCleared returns if the "approved_by_user_id" field was cleared in this mutation.
func (m *JobMutation) ApprovedByUserIDCleared() bool {
	_, ok := m.clearedFields[job.FieldApprovedByUserID]
	return ok
}

// ResetApprovedByUserID resets all changes to the "approved_by_user_id" field.
func (m *JobMutation) ResetApprovedByUserID() {
	m.approved_by_user_id = nil
	delete(m.clearedFields, job.FieldApprovedByUserID)
}

// SetApprovedByAgentID sets the "approved_by_agent_id" field.
func (m *JobMutation) SetApprovedByAgentID(s string) {
	m.approved_by_agent_id = &s
}

// ApprovedByAgentID returns the value of the "approved_by_agent_id" field in the mutation.
func (m *JobMutation) ApprovedByAgentID() (r string, exists bool) {
	v := m.approved_by_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedByAgentID returns the old "approved_by_agent_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldApprovedByAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedByAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedByAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedByAgentID: %w", err)
	}
	return oldValue.ApprovedByAgentID, nil
}

// ClearApprovedByAgentID clears the value of the "approved_by_agent_id" field.
func (m *JobMutation) ClearApprovedByAgentID() {
	m.approved_by_agent_id = nil
	m.clearedFields[job.FieldApprovedByAgentID] = struct{}{}
}

// ApprovedByAgentIDCleared returns if the "approved_by_agent_id" field was cleared in this mutation.
func (m *JobMutation) ApprovedByAgentIDCleared() bool {
	_, ok := m.clearedFields[job.FieldApprovedByAgentID]
	return ok
}

// ResetApprovedByAgentID resets all changes to the "approved_by_agent_id" field.
func (m *JobMutation) ResetApprovedByAgentID() {
	m.approved_by_agent_id = nil
	delete(m.clearedFields, job.FieldApprovedByAgentID)
}

// SetResultData sets the "result_data" field.
func (m *JobMutation) SetResultData(s string) {
	m.result_data = &s
}

// ResultData returns the value of the "result_data" field in the mutation.
func (m *JobMutation) ResultData() (r string, exists bool) {
	v := m.result_data
	if v == nil {
		return
	}
	return *v, true
}

// OldResultData returns the old "result_data" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResultData(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultData: %w", err)
	}
	return oldValue.ResultData, nil
}

// ClearResultData clears the value of the "result_data" field.
func (m *JobMutation) ClearResultData() {
	m.result_data = nil
	m.clearedFields[job.FieldResultData] = struct{}{}
}

// ResultDataCleared returns if the "result_data" field was cleared in this mutation.
func (m *JobMutation) ResultDataCleared() bool {
	_, ok := m.clearedFields[job.FieldResultData]
	return ok
}

// ResetResultData resets all changes to the "result_data" field.
func (m *JobMutation) ResetResultData() {
	m.result_data = nil
	delete(m.clearedFields, job.FieldResultData)
}

// SetErrorLog sets the "error_log" field.
func (m *JobMutation) SetErrorLog(s string) {
	m.error_log = &s
}

// ErrorLog returns the value of the "error_log" field in the mutation.
func (m *JobMutation) ErrorLog() (r string, exists bool) {
	v := m.error_log
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorLog returns the old "error_log" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorLog(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorLog: %w", err)
	}
	return oldValue.ErrorLog, nil
}

// ClearErrorLog clears the value of the "error_log" field.
func (m *JobMutation) ClearErrorLog() {
	m.error_log = nil
	m.clearedFields[job.FieldErrorLog] = struct{}{}
}

// ErrorLogCleared returns if the "error_log" field was cleared in this mutation.
func (m *JobMutation) ErrorLogCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorLog]
	return ok
}

// ResetErrorLog resets all changes to the "error_log" field.
func (m *JobMutation) ResetErrorLog() {
	m.error_log = nil
	delete(m.clearedFields, job.FieldErrorLog)
}

// SetShellKind sets the "shell_kind" field.
func (m *JobMutation) SetShellKind(jk job.ShellKind) {
	m.shell_kind = &jk
}

// ShellKind returns the value of the "shell_kind" field in the mutation.
func (m *JobMutation) ShellKind() (r job.ShellKind, exists bool) {
	v := m.shell_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldShellKind returns the old "shell_kind" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldShellKind(ctx context.Context) (v job.ShellKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShellKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShellKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShellKind: %w", err)
	}
	return oldValue.ShellKind, nil
}

// ClearShellKind clears the value of the "shell_kind" field.
func (m *JobMutation) ClearShellKind() {
	m.shell_kind = nil
	m.clearedFields[job.FieldShellKind] = struct{}{}
}

// ShellKindCleared returns if the "shell_kind" field was cleared in this mutation.
func (m *JobMutation) ShellKindCleared() bool {
	_, ok := m.clearedFields[job.FieldShellKind]
	return ok
}

// ResetShellKind resets all changes to the "shell_kind" field.
func (m *JobMutation) ResetShellKind() {
	m.shell_kind = nil
	delete(m.clearedFields, job.FieldShellKind)
}

// SetScript sets the "script" field.
func (m *JobMutation) SetScript(s string) {
	m.script = &s
}

// Script returns the value of the "script" field in the mutation.
func (m *JobMutation) Script() (r string, exists bool) {
	v := m.script
	if v == nil {
		return
	}
	return *v, true
}

// OldScript returns the old "script" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldScript(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScript: %w", err)
	}
	return oldValue.Script, nil
}

// ClearScript clears the value of the "script" field.
func (m *JobMutation) ClearScript() {
	m.script = nil
	m.clearedFields[job.FieldScript] = struct{}{}
}

// ScriptCleared returns if the "script" field was cleared in this mutation.
func (m *JobMutation) ScriptCleared() bool {
	_, ok := m.clearedFields[job.FieldScript]
	return ok
}

// ResetScript resets all changes to the "script" field.
func (m *JobMutation) ResetScript() {
	m.script = nil
	delete(m.clearedFields, job.FieldScript)
}

// SetWorkingDirectory sets the "working_directory" field.
func (m *JobMutation) SetWorkingDirectory(s string) {
	m.working_directory = &s
}

// WorkingDirectory returns the value of the "working_directory" field in the mutation.
func (m *JobMutation) WorkingDirectory() (r string, exists bool) {
	v := m.working_directory
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkingDirectory returns the old "working_directory" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldWorkingDirectory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkingDirectory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkingDirectory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkingDirectory: %w", err)
	}
	return oldValue.WorkingDirectory, nil
}

// ClearWorkingDirectory clears the value of the "working_directory" field.
func (m *JobMutation) ClearWorkingDirectory() {
	m.working_directory = nil
	m.clearedFields[job.FieldWorkingDirectory] = struct{}{}
}

// WorkingDirectoryCleared returns if the "working_directory" field was cleared in this mutation.
func (m *JobMutation) WorkingDirectoryCleared() bool {
	_, ok := m.clearedFields[job.FieldWorkingDirectory]
	return ok
}

// ResetWorkingDirectory resets all changes to the "working_directory" field.
func (m *JobMutation) ResetWorkingDirectory() {
	m.working_directory = nil
	delete(m.clearedFields, job.FieldWorkingDirectory)
}

// SetTranscriptionModelID sets the "transcription_model_id" field.
func (m *JobMutation) SetTranscriptionModelID(s string) {
	m.transcription_model_id = &s
}

// TranscriptionModelID returns the value of the "transcription_model_id" field in the mutation.
func (m *JobMutation) TranscriptionModelID() (r string, exists bool) {
	v := m.transcription_model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptionModelID returns the old "transcription_model_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTranscriptionModelID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptionModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptionModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptionModelID: %w", err)
	}
	return oldValue.TranscriptionModelID, nil
}

// ClearTranscriptionModelID clears the value of the "transcription_model_id" field.
func (m *JobMutation) ClearTranscriptionModelID() {
	m.transcription_model_id = nil
	m.clearedFields[job.FieldTranscriptionModelID] = struct{}{}
}

// TranscriptionModelIDCleared returns if the "transcription_model_id" field was cleared in this mutation.
func (m *JobMutation) TranscriptionModelIDCleared() bool {
	_, ok := m.clearedFields[job.FieldTranscriptionModelID]
	return ok
}

// ResetTranscriptionModelID resets all changes to the "transcription_model_id" field.
func (m *JobMutation) ResetTranscriptionModelID() {
	m.transcription_model_id = nil
	delete(m.clearedFields, job.FieldTranscriptionModelID)
}

// SetLanguage sets the "language" field.
func (m *JobMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *JobMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLanguage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *JobMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[job.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *JobMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[job.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *JobMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, job.FieldLanguage)
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *JobMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[job.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *JobMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[job.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, job.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *JobMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[job.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *JobMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *JobMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *JobMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// ClearChannel clears the "channel" edge to the Channel entity.
func (m *JobMutation) ClearChannel() {
	m.clearedchannel = true
	m.clearedFields[job.FieldChannelID] = struct{}{}
}

// ChannelCleared reports if the "channel" edge to the Channel entity was cleared.
func (m *JobMutation) ChannelCleared() bool {
	return m.ChannelIDCleared() || m.clearedchannel
}

// ChannelIDs returns the "channel" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChannelID instead. It exists only for internal usage by the builders.
func (m *JobMutation) ChannelIDs() (ids []string) {
	if id := m.channel; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChannel resets all changes to the "channel" edge.
func (m *JobMutation) ResetChannel() {
	m.channel = nil
	m.clearedchannel = false
}

// AddLogEntryIDs adds the "log_entries" edge to the JobLogEntry entity by ids.
func (m *JobMutation) AddLogEntryIDs(ids ...string) {
	if m.log_entries == nil {
		m.log_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.log_entries[ids[i]] = struct{}{}
	}
}

// ClearLogEntries clears the "log_entries" edge to the JobLogEntry entity.
func (m *JobMutation) ClearLogEntries() {
	m.clearedlog_entries = true
}

// LogEntriesCleared reports if the "log_entries" edge to the JobLogEntry entity was cleared.
func (m *JobMutation) LogEntriesCleared() bool {
	return m.clearedlog_entries
}

// RemoveLogEntryIDs removes the "log_entries" edge to the JobLogEntry entity by IDs.
func (m *JobMutation) RemoveLogEntryIDs(ids ...string) {
	if m.removedlog_entries == nil {
		m.removedlog_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.log_entries, ids[i])
		m.removedlog_entries[ids[i]] = struct{}{}
	}
}

// RemovedLogEntries returns the removed IDs of the "log_entries" edge to the JobLogEntry entity.
func (m *JobMutation) RemovedLogEntriesIDs() (ids []string) {
	for id := range m.removedlog_entries {
		ids = append(ids, id)
	}
	return
}

// LogEntriesIDs returns the "log_entries" edge IDs in the mutation.
func (m *JobMutation) LogEntriesIDs() (ids []string) {
	for id := range m.log_entries {
		ids = append(ids, id)
	}
	return
}

// ResetLogEntries resets all changes to the "log_entries" edge.
func (m *JobMutation) ResetLogEntries() {
	m.log_entries = nil
	m.clearedlog_entries = false
	m.removedlog_entries = nil
}

// AddSegmentIDs adds the "segments" edge to the TranscriptionSegment entity by ids.
func (m *JobMutation) AddSegmentIDs(ids ...string) {
	if m.segments == nil {
		m.segments = make(map[string]struct{})
	}
	for i := range ids {
		m.segments[ids[i]] = struct{}{}
	}
}

// ClearSegments clears the "segments" edge to the TranscriptionSegment entity.
func (m *JobMutation) ClearSegments() {
	m.clearedsegments = true
}

// SegmentsCleared reports if the "segments" edge to the TranscriptionSegment entity was cleared.
func (m *JobMutation) SegmentsCleared() bool {
	return m.clearedsegments
}

// RemoveSegmentIDs removes the "segments" edge to the TranscriptionSegment entity by IDs.
func (m *JobMutation) RemoveSegmentIDs(ids ...string) {
	if m.removedsegments == nil {
		m.removedsegments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.segments, ids[i])
		m.removedsegments[ids[i]] = struct{}{}
	}
}

// RemovedSegments returns the removed IDs of the "segments" edge to the TranscriptionSegment entity.
func (m *JobMutation) RemovedSegmentsIDs() (ids []string) {
	for id := range m.removedsegments {
		ids = append(ids, id)
	}
	return
}

// SegmentsIDs returns the "segments" edge IDs in the mutation.
func (m *JobMutation) SegmentsIDs() (ids []string) {
	for id := range m.segments {
		ids = append(ids, id)
	}
	return
}

// ResetSegments resets all changes to the "segments" edge.
func (m *JobMutation) ResetSegments() {
	m.segments = nil
	m.clearedsegments = false
	m.removedsegments = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.agent != nil {
		fields = append(fields, job.FieldAgentID)
	}
	if m.channel != nil {
		fields = append(fields, job.FieldChannelID)
	}
	if m.caller_user_id != nil {
		fields = append(fields, job.FieldCallerUserID)
	}
	if m.caller_agent_id != nil {
		fields = append(fields, job.FieldCallerAgentID)
	}
	if m.action != nil {
		fields = append(fields, job.FieldAction)
	}
	if m.resource_id != nil {
		fields = append(fields, job.FieldResourceID)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.effective_clearance != nil {
		fields = append(fields, job.FieldEffectiveClearance)
	}
	if m.approved_by_user_id != nil {
		fields = append(fields, job.FieldApprovedByUserID)
	}
	if m.approved_by_agent_id != nil {
		fields = append(fields, job.FieldApprovedByAgentID)
	}
	if m.result_data != nil {
		fields = append(fields, job.FieldResultData)
	}
	if m.error_log != nil {
		fields = append(fields, job.FieldErrorLog)
	}
	if m.shell_kind != nil {
		fields = append(fields, job.FieldShellKind)
	}
	if m.script != nil {
		fields = append(fields, job.FieldScript)
	}
	if m.working_directory != nil {
		fields = append(fields, job.FieldWorkingDirectory)
	}
	if m.transcription_model_id != nil {
		fields = append(fields, job.FieldTranscriptionModelID)
	}
	if m.language != nil {
		fields = append(fields, job.FieldLanguage)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAgentID:
		return m.AgentID()
	case job.FieldChannelID:
		return m.ChannelID()
	case job.FieldCallerUserID:
		return m.CallerUserID()
	case job.FieldCallerAgentID:
		return m.CallerAgentID()
	case job.FieldAction:
		return m.Action()
	case job.FieldResourceID:
		return m.ResourceID()
	case job.FieldStatus:
		return m.Status()
	case job.FieldEffectiveClearance:
		return m.EffectiveClearance()
	case job.FieldApprovedByUserID:
		return m.ApprovedByUserID()
	case job.FieldApprovedByAgentID:
		return m.ApprovedByAgentID()
	case job.FieldResultData:
		return m.ResultData()
	case job.FieldErrorLog:
		return m.ErrorLog()
	case job.FieldShellKind:
		return m.ShellKind()
	case job.FieldScript:
		return m.Script()
	case job.FieldWorkingDirectory:
		return m.WorkingDirectory()
	case job.FieldTranscriptionModelID:
		return m.TranscriptionModelID()
	case job.FieldLanguage:
		return m.Language()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldAgentID:
		return m.OldAgentID(ctx)
	case job.FieldChannelID:
		return m.OldChannelID(ctx)
	case job.FieldCallerUserID:
		return m.OldCallerUserID(ctx)
	case job.FieldCallerAgentID:
		return m.OldCallerAgentID(ctx)
	case job.FieldAction:
		return m.OldAction(ctx)
	case job.FieldResourceID:
		return m.OldResourceID(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldEffectiveClearance:
		return m.OldEffectiveClearance(ctx)
	case job.FieldApprovedByUserID:
		return m.OldApprovedByUserID(ctx)
	case job.FieldApprovedByAgentID:
		return m.OldApprovedByAgentID(ctx)
	case job.FieldResultData:
		return m.OldResultData(ctx)
	case job.FieldErrorLog:
		return m.OldErrorLog(ctx)
	case job.FieldShellKind:
		return m.OldShellKind(ctx)
	case job.FieldScript:
		return m.OldScript(ctx)
	case job.FieldWorkingDirectory:
		return m.OldWorkingDirectory(ctx)
	case job.FieldTranscriptionModelID:
		return m.OldTranscriptionModelID(ctx)
	case job.FieldLanguage:
		return m.OldLanguage(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case job.FieldChannelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelID(v)
		return nil
	case job.FieldCallerUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallerUserID(v)
		return nil
	case job.FieldCallerAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallerAgentID(v)
		return nil
	case job.FieldAction:
		v, ok := value.(job.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case job.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldEffectiveClearance:
		v, ok := value.(job.EffectiveClearance)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveClearance(v)
		return nil
	case job.FieldApprovedByUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedByUserID(v)
		return nil
	case job.FieldApprovedByAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedByAgentID(v)
		return nil
	case job.FieldResultData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultData(v)
		return nil
	case job.FieldErrorLog:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorLog(v)
		return nil
	case job.FieldShellKind:
		v, ok := value.(job.ShellKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShellKind(v)
		return nil
	case job.FieldScript:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScript(v)
		return nil
	case job.FieldWorkingDirectory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkingDirectory(v)
		return nil
	case job.FieldTranscriptionModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptionModelID(v)
		return nil
	case job.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldChannelID) {
		fields = append(fields, job.FieldChannelID)
	}
	if m.FieldCleared(job.FieldCallerUserID) {
		fields = append(fields, job.FieldCallerUserID)
	}
	if m.FieldCleared(job.FieldCallerAgentID) {
		fields = append(fields, job.FieldCallerAgentID)
	}
	if m.FieldCleared(job.FieldResourceID) {
		fields = append(fields, job.FieldResourceID)
	}
	if m.FieldCleared(job.FieldEffectiveClearance) {
		fields = append(fields, job.FieldEffectiveClearance)
	}
	if m.FieldCleared(job.FieldApprovedByUserID) {
		fields = append(fields, job.FieldApprovedByUserID)
	}
	if m.FieldCleared(job.FieldApprovedByAgentID) {
		fields = append(fields, job.FieldApprovedByAgentID)
	}
	if m.FieldCleared(job.FieldResultData) {
		fields = append(fields, job.FieldResultData)
	}
	if m.FieldCleared(job.FieldErrorLog) {
		fields = append(fields, job.FieldErrorLog)
	}
	if m.FieldCleared(job.FieldShellKind) {
		fields = append(fields, job.FieldShellKind)
	}
	if m.FieldCleared(job.FieldScript) {
		fields = append(fields, job.FieldScript)
	}
	if m.FieldCleared(job.FieldWorkingDirectory) {
		fields = append(fields, job.FieldWorkingDirectory)
	}
	if m.FieldCleared(job.FieldTranscriptionModelID) {
		fields = append(fields, job.FieldTranscriptionModelID)
	}
	if m.FieldCleared(job.FieldLanguage) {
		fields = append(fields, job.FieldLanguage)
	}
	if m.FieldCleared(job.FieldPayload) {
		fields = append(fields, job.FieldPayload)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldChannelID:
		m.ClearChannelID()
		return nil
	case job.FieldCallerUserID:
		m.ClearCallerUserID()
		return nil
	case job.FieldCallerAgentID:
		m.ClearCallerAgentID()
		return nil
	case job.FieldResourceID:
		m.ClearResourceID()
		return nil
	case job.FieldEffectiveClearance:
		m.ClearEffectiveClearance()
		return nil
	case job.FieldApprovedByUserID:
		m.ClearApprovedByUserID()
		return nil
	case job.FieldApprovedByAgentID:
		m.ClearApprovedByAgentID()
		return nil
	case job.FieldResultData:
		m.ClearResultData()
		return nil
	case job.FieldErrorLog:
		m.ClearErrorLog()
		return nil
	case job.FieldShellKind:
		m.ClearShellKind()
		return nil
	case job.FieldScript:
		m.ClearScript()
		return nil
	case job.FieldWorkingDirectory:
		m.ClearWorkingDirectory()
		return nil
	case job.FieldTranscriptionModelID:
		m.ClearTranscriptionModelID()
		return nil
	case job.FieldLanguage:
		m.ClearLanguage()
		return nil
	case job.FieldPayload:
		m.ClearPayload()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldAgentID:
		m.ResetAgentID()
		return nil
	case job.FieldChannelID:
		m.ResetChannelID()
		return nil
	case job.FieldCallerUserID:
		m.ResetCallerUserID()
		return nil
	case job.FieldCallerAgentID:
		m.ResetCallerAgentID()
		return nil
	case job.FieldAction:
		m.ResetAction()
		return nil
	case job.FieldResourceID:
		m.ResetResourceID()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldEffectiveClearance:
		m.ResetEffectiveClearance()
		return nil
	case job.FieldApprovedByUserID:
		m.ResetApprovedByUserID()
		return nil
	case job.FieldApprovedByAgentID:
		m.ResetApprovedByAgentID()
		return nil
	case job.FieldResultData:
		m.ResetResultData()
		return nil
	case job.FieldErrorLog:
		m.ResetErrorLog()
		return nil
	case job.FieldShellKind:
		m.ResetShellKind()
		return nil
	case job.FieldScript:
		m.ResetScript()
		return nil
	case job.FieldWorkingDirectory:
		m.ResetWorkingDirectory()
		return nil
	case job.FieldTranscriptionModelID:
		m.ResetTranscriptionModelID()
		return nil
	case job.FieldLanguage:
		m.ResetLanguage()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.agent != nil {
		edges = append(edges, job.EdgeAgent)
	}
	if m.channel != nil {
		edges = append(edges, job.EdgeChannel)
	}
	if m.log_entries != nil {
		edges = append(edges, job.EdgeLogEntries)
	}
	if m.segments != nil {
		edges = append(edges, job.EdgeSegments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case job.EdgeChannel:
		if id := m.channel; id != nil {
			return []ent.Value{*id}
		}
	case job.EdgeLogEntries:
		ids := make([]ent.Value, 0, len(m.log_entries))
		for id := range m.log_entries {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.segments))
		for id := range m.segments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedlog_entries != nil {
		edges = append(edges, job.EdgeLogEntries)
	}
	if m.removedsegments != nil {
		edges = append(edges, job.EdgeSegments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeLogEntries:
		ids := make([]ent.Value, 0, len(m.removedlog_entries))
		for id := range m.removedlog_entries {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.removedsegments))
		for id := range m.removedsegments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedagent {
		edges = append(edges, job.EdgeAgent)
	}
	if m.clearedchannel {
		edges = append(edges, job.EdgeChannel)
	}
	if m.clearedlog_entries {
		edges = append(edges, job.EdgeLogEntries)
	}
	if m.clearedsegments {
		edges = append(edges, job.EdgeSegments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeAgent:
		return m.clearedagent
	case job.EdgeChannel:
		return m.clearedchannel
	case job.EdgeLogEntries:
		return m.clearedlog_entries
	case job.EdgeSegments:
		return m.clearedsegments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeAgent:
		m.ClearAgent()
		return nil
	case job.EdgeChannel:
		m.ClearChannel()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeAgent:
		m.ResetAgent()
		return nil
	case job.EdgeChannel:
		m.ResetChannel()
		return nil
	case job.EdgeLogEntries:
		m.ResetLogEntries()
		return nil
	case job.EdgeSegments:
		m.ResetSegments()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobLogEntryMutation represents an operation that mutates the JobLogEntry nodes in the graph.
type JobLogEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	severity      *joblogentry.Severity
	message       *string
	sequence      *int
	addsequence   *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	job           *string
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*JobLogEntry, error)
	predicates    []predicate.JobLogEntry
}

var _ ent.Mutation = (*JobLogEntryMutation)(nil)

// joblogentryOption allows management of the mutation configuration using functional options.
type joblogentryOption func(*JobLogEntryMutation)

// newJobLogEntryMutation creates new mutation for the JobLogEntry entity.
func newJobLogEntryMutation(c config, op Op, opts ...joblogentryOption) *JobLogEntryMutation {
	m := &JobLogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeJobLogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobLogEntryID sets the ID field of the mutation.
func withJobLogEntryID(id string) joblogentryOption {
	return func(m *JobLogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *JobLogEntry
		)
		m.oldValue = func(ctx context.Context) (*JobLogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobLogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobLogEntry sets the old JobLogEntry of the mutation.
func withJobLogEntry(node *JobLogEntry) joblogentryOption {
	return func(m *JobLogEntryMutation) {
		m.oldValue = func(context.Context) (*JobLogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobLogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobLogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobLogEntry entities.
func (m *JobLogEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobLogEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobLogEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobLogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobLogEntryMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobLogEntryMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobLogEntry entity.
// If the JobLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogEntryMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobLogEntryMutation) ResetJobID() {
	m.job = nil
}

// SetSeverity sets the "severity" field.
func (m *JobLogEntryMutation) SetSeverity(j joblogentry.Severity) {
	m.severity = &j
}

// Severity returns the value of the "severity" field in the mutation.
func (m *JobLogEntryMutation) Severity() (r joblogentry.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the JobLogEntry entity.
// If the JobLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogEntryMutation) OldSeverity(ctx context.Context) (v joblogentry.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *JobLogEntryMutation) ResetSeverity() {
	m.severity = nil
}

// SetMessage sets the "message" field.
func (m *JobLogEntryMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *JobLogEntryMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the JobLogEntry entity.
// If the JobLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogEntryMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *JobLogEntryMutation) ResetMessage() {
	m.message = nil
}

// SetSequence sets the "sequence" field.
func (m *JobLogEntryMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *JobLogEntryMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the JobLogEntry entity.
// If the JobLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogEntryMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *JobLogEntryMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *JobLogEntryMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *JobLogEntryMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobLogEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobLogEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobLogEntry entity.
// If the JobLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobLogEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobLogEntryMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[joblogentry.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobLogEntryMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobLogEntryMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobLogEntryMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobLogEntryMutation builder.
func (m *JobLogEntryMutation) Where(ps ...predicate.JobLogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobLogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobLogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobLogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobLogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobLogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobLogEntry).
func (m *JobLogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobLogEntryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.job != nil {
		fields = append(fields, joblogentry.FieldJobID)
	}
	if m.severity != nil {
		fields = append(fields, joblogentry.FieldSeverity)
	}
	if m.message != nil {
		fields = append(fields, joblogentry.FieldMessage)
	}
	if m.sequence != nil {
		fields = append(fields, joblogentry.FieldSequence)
	}
	if m.created_at != nil {
		fields = append(fields, joblogentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobLogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case joblogentry.FieldJobID:
		return m.JobID()
	case joblogentry.FieldSeverity:
		return m.Severity()
	case joblogentry.FieldMessage:
		return m.Message()
	case joblogentry.FieldSequence:
		return m.Sequence()
	case joblogentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobLogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case joblogentry.FieldJobID:
		return m.OldJobID(ctx)
	case joblogentry.FieldSeverity:
		return m.OldSeverity(ctx)
	case joblogentry.FieldMessage:
		return m.OldMessage(ctx)
	case joblogentry.FieldSequence:
		return m.OldSequence(ctx)
	case joblogentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobLogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobLogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case joblogentry.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case joblogentry.FieldSeverity:
		v, ok := value.(joblogentry.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case joblogentry.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case joblogentry.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case joblogentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobLogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobLogEntryMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, joblogentry.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobLogEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case joblogentry.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobLogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case joblogentry.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown JobLogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobLogEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobLogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobLogEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown JobLogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobLogEntryMutation) ResetField(name string) error {
	switch name {
	case joblogentry.FieldJobID:
		m.ResetJobID()
		return nil
	case joblogentry.FieldSeverity:
		m.ResetSeverity()
		return nil
	case joblogentry.FieldMessage:
		m.ResetMessage()
		return nil
	case joblogentry.FieldSequence:
		m.ResetSequence()
		return nil
	case joblogentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobLogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobLogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, joblogentry.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobLogEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case joblogentry.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobLogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobLogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobLogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, joblogentry.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobLogEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case joblogentry.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobLogEntryMutation) ClearEdge(name string) error {
	switch name {
	case joblogentry.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobLogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobLogEntryMutation) ResetEdge(name string) error {
	switch name {
	case joblogentry.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobLogEntry edge %s", name)
}

// PermissionSetMutation represents an operation that mutates the PermissionSet nodes in the graph.
type PermissionSetMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	default_clearance         *permissionset.DefaultClearance
	allow_create_sub_agent    *bool
	allow_create_container    *bool
	allow_register_info_store *bool
	allow_edit_any_task       *bool
	allow_localhost_browser   *bool
	allow_localhost_cli       *bool
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	grants                    map[string]struct{}
	removedgrants             map[string]struct{}
	clearedgrants             bool
	whitelisted_users         map[string]struct{}
	removedwhitelisted_users  map[string]struct{}
	clearedwhitelisted_users  bool
	whitelisted_agents        map[string]struct{}
	removedwhitelisted_agents map[string]struct{}
	clearedwhitelisted_agents bool
	done                      bool
	oldValue                  func(context.Context) (*PermissionSet, error)
	predicates                []predicate.PermissionSet
}

var _ ent.Mutation = (*PermissionSetMutation)(nil)

// permissionsetOption allows management of the mutation configuration using functional options.
type permissionsetOption func(*PermissionSetMutation)

// newPermissionSetMutation creates new mutation for the PermissionSet entity.
func newPermissionSetMutation(c config, op Op, opts ...permissionsetOption) *PermissionSetMutation {
	m := &PermissionSetMutation{
		config:        c,
		op:            op,
		typ:           TypePermissionSet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPermissionSetID sets the ID field of the mutation.
func withPermissionSetID(id string) permissionsetOption {
	return func(m *PermissionSetMutation) {
		var (
			err   error
			once  sync.Once
			value *PermissionSet
		)
		m.oldValue = func(ctx context.Context) (*PermissionSet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PermissionSet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPermissionSet sets the old PermissionSet of the mutation.
func withPermissionSet(node *PermissionSet) permissionsetOption {
	return func(m *PermissionSetMutation) {
		m.oldValue = func(context.Context) (*PermissionSet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PermissionSetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PermissionSetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PermissionSet entities.
func (m *PermissionSetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PermissionSetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PermissionSetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PermissionSet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDefaultClearance sets the "default_clearance" field.
func (m *PermissionSetMutation) SetDefaultClearance(pc permissionset.DefaultClearance) {
	m.default_clearance = &pc
}

// DefaultClearance returns the value of the "default_clearance" field in the mutation.
func (m *PermissionSetMutation) DefaultClearance() (r permissionset.DefaultClearance, exists bool) {
	v := m.default_clearance
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultClearance returns the old "default_clearance" field's value of the PermissionSet entity.
// If the PermissionSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionSetMutation) OldDefaultClearance(ctx context.Context) (v permissionset.DefaultClearance, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultClearance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultClearance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultClearance: %w", err)
	}
	return oldValue.DefaultClearance, nil
}

// ResetDefaultClearance resets all changes to the "default_clearance" field.
func (m *PermissionSetMutation) ResetDefaultClearance() {
	m.default_clearance = nil
}

// SetAllowCreateSubAgent sets the "allow_create_sub_agent" field.
func (m *PermissionSetMutation) SetAllowCreateSubAgent(b bool) {
	m.allow_create_sub_agent = &b
}

// AllowCreateSubAgent returns the value of the "allow_create_sub_agent" field in the mutation.
func (m *PermissionSetMutation) AllowCreateSubAgent() (r bool, exists bool) {
	v := m.allow_create_sub_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowCreateSubAgent returns the old "allow_create_sub_agent" field's value of the PermissionSet entity.
// If the PermissionSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionSetMutation) OldAllowCreateSubAgent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowCreateSubAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowCreateSubAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowCreateSubAgent: %w", err)
	}
	return oldValue.AllowCreateSubAgent, nil
}

// ResetAllowCreateSubAgent resets all changes to the "allow_create_sub_agent" field.
func (m *PermissionSetMutation) ResetAllowCreateSubAgent() {
	m.allow_create_sub_agent = nil
}

// SetAllowCreateContainer sets the "allow_create_container" field.
func (m *PermissionSetMutation) SetAllowCreateContainer(b bool) {
	m.allow_create_container = &b
}

// AllowCreateContainer returns the value of the "allow_create_container" field in the mutation.
func (m *PermissionSetMutation) AllowCreateContainer() (r bool, exists bool) {
	v := m.allow_create_container
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowCreateContainer returns the old "allow_create_container" field's value of the PermissionSet entity.
// If the PermissionSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionSetMutation) OldAllowCreateContainer(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowCreateContainer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowCreateContainer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowCreateContainer: %w", err)
	}
	return oldValue.AllowCreateContainer, nil
}

// ResetAllowCreateContainer resets all changes to the "allow_create_container" field.
func (m *PermissionSetMutation) ResetAllowCreateContainer() {
	m.allow_create_container = nil
}

// SetAllowRegisterInfoStore sets the "allow_register_info_store" field.
func (m *PermissionSetMutation) SetAllowRegisterInfoStore(b bool) {
	m.allow_register_info_store = &b
}

// AllowRegisterInfoStore returns the value of the "allow_register_info_store" field in the mutation.
func (m *PermissionSetMutation) AllowRegisterInfoStore() (r bool, exists bool) {
	v := m.allow_register_info_store
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowRegisterInfoStore returns the old "allow_register_info_store" field's value of the PermissionSet entity.
// If the PermissionSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionSetMutation) OldAllowRegisterInfoStore(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowRegisterInfoStore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowRegisterInfoStore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowRegisterInfoStore: %w", err)
	}
	return oldValue.AllowRegisterInfoStore, nil
}

// ResetAllowRegisterInfoStore resets all changes to the "allow_register_info_store" field.
func (m *PermissionSetMutation) ResetAllowRegisterInfoStore() {
	m.allow_register_info_store = nil
}

// SetAllowEditAnyTask sets the "allow_edit_any_task" field.
func (m *PermissionSetMutation) SetAllowEditAnyTask(b bool) {
	m.allow_edit_any_task = &b
}

// AllowEditAnyTask returns the value of the "allow_edit_any_task" field in the mutation.
func (m *PermissionSetMutation) AllowEditAnyTask() (r bool, exists bool) {
	v := m.allow_edit_any_task
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowEditAnyTask returns the old "allow_edit_any_task" field's value of the PermissionSet entity.
// If the PermissionSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionSetMutation) OldAllowEditAnyTask(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowEditAnyTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowEditAnyTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowEditAnyTask: %w", err)
	}
	return oldValue.AllowEditAnyTask, nil
}

// ResetAllowEditAnyTask resets all changes to the "allow_edit_any_task" field.
func (m *PermissionSetMutation) ResetAllowEditAnyTask() {
	m.allow_edit_any_task = nil
}

// SetAllowLocalhostBrowser sets the "allow_localhost_browser" field.
func (m *PermissionSetMutation) SetAllowLocalhostBrowser(b bool) {
	m.allow_localhost_browser = &b
}

// AllowLocalhostBrowser returns the value of the "allow_localhost_browser" field in the mutation.
func (m *PermissionSetMutation) AllowLocalhostBrowser() (r bool, exists bool) {
	v := m.allow_localhost_browser
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowLocalhostBrowser returns the old "allow_localhost_browser" field's value of the PermissionSet entity.
// If the PermissionSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionSetMutation) OldAllowLocalhostBrowser(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowLocalhostBrowser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowLocalhostBrowser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowLocalhostBrowser: %w", err)
	}
	return oldValue.AllowLocalhostBrowser, nil
}

// ResetAllowLocalhostBrowser resets all changes to the "allow_localhost_browser" field.
func (m *PermissionSetMutation) ResetAllowLocalhostBrowser() {
	m.allow_localhost_browser = nil
}

// SetAllowLocalhostCli sets the "allow_localhost_cli" field.
func (m *PermissionSetMutation) SetAllowLocalhostCli(b bool) {
	m.allow_localhost_cli = &b
}

// AllowLocalhostCli returns the value of the "allow_localhost_cli" field in the mutation.
func (m *PermissionSetMutation) AllowLocalhostCli() (r bool, exists bool) {
	v := m.allow_localhost_cli
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowLocalhostCli returns the old "allow_localhost_cli" field's value of the PermissionSet entity.
// If the PermissionSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionSetMutation) OldAllowLocalhostCli(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowLocalhostCli is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowLocalhostCli requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowLocalhostCli: %w", err)
	}
	return oldValue.AllowLocalhostCli, nil
}

// ResetAllowLocalhostCli resets all changes to the "allow_localhost_cli" field.
func (m *PermissionSetMutation) ResetAllowLocalhostCli() {
	m.allow_localhost_cli = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PermissionSetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PermissionSetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PermissionSet entity.
// If the PermissionSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionSetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PermissionSetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PermissionSetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PermissionSetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PermissionSet entity.
// If the PermissionSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionSetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PermissionSetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddGrantIDs adds the "grants" edge to the Grant entity by ids.
func (m *PermissionSetMutation) AddGrantIDs(ids ...string) {
	if m.grants == nil {
		m.grants = make(map[string]struct{})
	}
	for i := range ids {
		m.grants[ids[i]] = struct{}{}
	}
}

// ClearGrants clears the "grants" edge to the Grant entity.
func (m *PermissionSetMutation) ClearGrants() {
	m.clearedgrants = true
}

// GrantsCleared reports if the "grants" edge to the Grant entity was cleared.
func (m *PermissionSetMutation) GrantsCleared() bool {
	return m.clearedgrants
}

// RemoveGrantIDs removes the "grants" edge to the Grant entity by IDs.
func (m *PermissionSetMutation) RemoveGrantIDs(ids ...string) {
	if m.removedgrants == nil {
		m.removedgrants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.grants, ids[i])
		m.removedgrants[ids[i]] = struct{}{}
	}
}

// RemovedGrants returns the removed IDs of the "grants" edge to the Grant entity.
func (m *PermissionSetMutation) RemovedGrantsIDs() (ids []string) {
	for id := range m.removedgrants {
		ids = append(ids, id)
	}
	return
}

// GrantsIDs returns the "grants" edge IDs in the mutation.
func (m *PermissionSetMutation) GrantsIDs() (ids []string) {
	for id := range m.grants {
		ids = append(ids, id)
	}
	return
}

// ResetGrants resets all changes to the "grants" edge.
func (m *PermissionSetMutation) ResetGrants() {
	m.grants = nil
	m.clearedgrants = false
	m.removedgrants = nil
}

// AddWhitelistedUserIDs adds the "whitelisted_users" edge to the User entity by ids.
func (m *PermissionSetMutation) AddWhitelistedUserIDs(ids ...string) {
	if m.whitelisted_users == nil {
		m.whitelisted_users = make(map[string]struct{})
	}
	for i := range ids {
		m.whitelisted_users[ids[i]] = struct{}{}
	}
}

// ClearWhitelistedUsers clears the "whitelisted_users" edge to the User entity.
func (m *PermissionSetMutation) ClearWhitelistedUsers() {
	m.clearedwhitelisted_users = true
}

// WhitelistedUsersCleared reports if the "whitelisted_users" edge to the User entity was cleared.
func (m *PermissionSetMutation) WhitelistedUsersCleared() bool {
	return m.clearedwhitelisted_users
}

// RemoveWhitelistedUserIDs removes the "whitelisted_users" edge to the User entity by IDs.
func (m *PermissionSetMutation) RemoveWhitelistedUserIDs(ids ...string) {
	if m.removedwhitelisted_users == nil {
		m.removedwhitelisted_users = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.whitelisted_users, ids[i])
		m.removedwhitelisted_users[ids[i]] = struct{}{}
	}
}

// RemovedWhitelistedUsers returns the removed IDs of the "whitelisted_users" edge to the User entity.
func (m *PermissionSetMutation) RemovedWhitelistedUsersIDs() (ids []string) {
	for id := range m.removedwhitelisted_users {
		ids = append(ids, id)
	}
	return
}

// WhitelistedUsersIDs returns the "whitelisted_users" edge IDs in the mutation.
func (m *PermissionSetMutation) WhitelistedUsersIDs() (ids []string) {
	for id := range m.whitelisted_users {
		ids = append(ids, id)
	}
	return
}

// ResetWhitelistedUsers resets all changes to the "whitelisted_users" edge.
func (m *PermissionSetMutation) ResetWhitelistedUsers() {
	m.whitelisted_users = nil
	m.clearedwhitelisted_users = false
	m.removedwhitelisted_users = nil
}

// AddWhitelistedAgentIDs adds the "whitelisted_agents" edge to the Agent entity by ids.
func (m *PermissionSetMutation) AddWhitelistedAgentIDs(ids ...string) {
	if m.whitelisted_agents == nil {
		m.whitelisted_agents = make(map[string]struct{})
	}
	for i := range ids {
		m.whitelisted_agents[ids[i]] = struct{}{}
	}
}

// ClearWhitelistedAgents clears the "whitelisted_agents" edge to the Agent entity.
func (m *PermissionSetMutation) ClearWhitelistedAgents() {
	m.clearedwhitelisted_agents = true
}

// WhitelistedAgentsCleared reports if the "whitelisted_agents" edge to the Agent entity was cleared.
func (m *PermissionSetMutation) WhitelistedAgentsCleared() bool {
	return m.clearedwhitelisted_agents
}

// RemoveWhitelistedAgentIDs removes the "whitelisted_agents" edge to the Agent entity by IDs.
func (m *PermissionSetMutation) RemoveWhitelistedAgentIDs(ids ...string) {
	if m.removedwhitelisted_agents == nil {
		m.removedwhitelisted_agents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.whitelisted_agents, ids[i])
		m.removedwhitelisted_agents[ids[i]] = struct{}{}
	}
}

// RemovedWhitelistedAgents returns the removed IDs of the "whitelisted_agents" edge to the Agent entity.
func (m *PermissionSetMutation) RemovedWhitelistedAgentsIDs() (ids []string) {
	for id := range m.removedwhitelisted_agents {
		ids = append(ids, id)
	}
	return
}

// WhitelistedAgentsIDs returns the "whitelisted_agents" edge IDs in the mutation.
func (m *PermissionSetMutation) WhitelistedAgentsIDs() (ids []string) {
	for id := range m.whitelisted_agents {
		ids = append(ids, id)
	}
	return
}

// ResetWhitelistedAgents resets all changes to the "whitelisted_agents" edge.
func (m *PermissionSetMutation) ResetWhitelistedAgents() {
	m.whitelisted_agents = nil
	m.clearedwhitelisted_agents = false
	m.removedwhitelisted_agents = nil
}

// Where appends a list predicates to the PermissionSetMutation builder.
func (m *PermissionSetMutation) Where(ps ...predicate.PermissionSet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PermissionSetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PermissionSetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PermissionSet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PermissionSetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PermissionSetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PermissionSet).
func (m *PermissionSetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PermissionSetMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.default_clearance != nil {
		fields = append(fields, permissionset.FieldDefaultClearance)
	}
	if m.allow_create_sub_agent != nil {
		fields = append(fields, permissionset.FieldAllowCreateSubAgent)
	}
	if m.allow_create_container != nil {
		fields = append(fields, permissionset.FieldAllowCreateContainer)
	}
	if m.allow_register_info_store != nil {
		fields = append(fields, permissionset.FieldAllowRegisterInfoStore)
	}
	if m.allow_edit_any_task != nil {
		fields = append(fields, permissionset.FieldAllowEditAnyTask)
	}
	if m.allow_localhost_browser != nil {
		fields = append(fields, permissionset.FieldAllowLocalhostBrowser)
	}
	if m.allow_localhost_cli != nil {
		fields = append(fields, permissionset.FieldAllowLocalhostCli)
	}
	if m.created_at != nil {
		fields = append(fields, permissionset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, permissionset.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PermissionSetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case permissionset.FieldDefaultClearance:
		return m.DefaultClearance()
	case permissionset.FieldAllowCreateSubAgent:
		return m.AllowCreateSubAgent()
	case permissionset.FieldAllowCreateContainer:
		return m.AllowCreateContainer()
	case permissionset.FieldAllowRegisterInfoStore:
		return m.AllowRegisterInfoStore()
	case permissionset.FieldAllowEditAnyTask:
		return m.AllowEditAnyTask()
	case permissionset.FieldAllowLocalhostBrowser:
		return m.AllowLocalhostBrowser()
	case permissionset.FieldAllowLocalhostCli:
		return m.AllowLocalhostCli()
	case permissionset.FieldCreatedAt:
		return m.CreatedAt()
	case permissionset.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PermissionSetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case permissionset.FieldDefaultClearance:
		return m.OldDefaultClearance(ctx)
	case permissionset.FieldAllowCreateSubAgent:
		return m.OldAllowCreateSubAgent(ctx)
	case permissionset.FieldAllowCreateContainer:
		return m.OldAllowCreateContainer(ctx)
	case permissionset.FieldAllowRegisterInfoStore:
		return m.OldAllowRegisterInfoStore(ctx)
	case permissionset.FieldAllowEditAnyTask:
		return m.OldAllowEditAnyTask(ctx)
	case permissionset.FieldAllowLocalhostBrowser:
		return m.OldAllowLocalhostBrowser(ctx)
	case permissionset.FieldAllowLocalhostCli:
		return m.OldAllowLocalhostCli(ctx)
	case permissionset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case permissionset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PermissionSet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PermissionSetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case permissionset.FieldDefaultClearance:
		v, ok := value.(permissionset.DefaultClearance)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultClearance(v)
		return nil
	case permissionset.FieldAllowCreateSubAgent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowCreateSubAgent(v)
		return nil
	case permissionset.FieldAllowCreateContainer:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowCreateContainer(v)
		return nil
	case permissionset.FieldAllowRegisterInfoStore:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowRegisterInfoStore(v)
		return nil
	case permissionset.FieldAllowEditAnyTask:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowEditAnyTask(v)
		return nil
	case permissionset.FieldAllowLocalhostBrowser:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowLocalhostBrowser(v)
		return nil
	case permissionset.FieldAllowLocalhostCli:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowLocalhostCli(v)
		return nil
	case permissionset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case permissionset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PermissionSet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PermissionSetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PermissionSetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PermissionSetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PermissionSet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PermissionSetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PermissionSetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PermissionSetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PermissionSet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PermissionSetMutation) ResetField(name string) error {
	switch name {
	case permissionset.FieldDefaultClearance:
		m.ResetDefaultClearance()
		return nil
	case permissionset.FieldAllowCreateSubAgent:
		m.ResetAllowCreateSubAgent()
		return nil
	case permissionset.FieldAllowCreateContainer:
		m.ResetAllowCreateContainer()
		return nil
	case permissionset.FieldAllowRegisterInfoStore:
		m.ResetAllowRegisterInfoStore()
		return nil
	case permissionset.FieldAllowEditAnyTask:
		m.ResetAllowEditAnyTask()
		return nil
	case permissionset.FieldAllowLocalhostBrowser:
		m.ResetAllowLocalhostBrowser()
		return nil
	case permissionset.FieldAllowLocalhostCli:
		m.ResetAllowLocalhostCli()
		return nil
	case permissionset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case permissionset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PermissionSet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PermissionSetMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.grants != nil {
		edges = append(edges, permissionset.EdgeGrants)
	}
	if m.whitelisted_users != nil {
		edges = append(edges, permissionset.EdgeWhitelistedUsers)
	}
	if m.whitelisted_agents != nil {
		edges = append(edges, permissionset.EdgeWhitelistedAgents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PermissionSetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case permissionset.EdgeGrants:
		ids := make([]ent.Value, 0, len(m.grants))
		for id := range m.grants {
			ids = append(ids, id)
		}
		return ids
	case permissionset.EdgeWhitelistedUsers:
		ids := make([]ent.Value, 0, len(m.whitelisted_users))
		for id := range m.whitelisted_users {
			ids = append(ids, id)
		}
		return ids
	case permissionset.EdgeWhitelistedAgents:
		ids := make([]ent.Value, 0, len(m.whitelisted_agents))
		for id := range m.whitelisted_agents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PermissionSetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedgrants != nil {
		edges = append(edges, permissionset.EdgeGrants)
	}
	if m.removedwhitelisted_users != nil {
		edges = append(edges, permissionset.EdgeWhitelistedUsers)
	}
	if m.removedwhitelisted_agents != nil {
		edges = append(edges, permissionset.EdgeWhitelistedAgents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PermissionSetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case permissionset.EdgeGrants:
		ids := make([]ent.Value, 0, len(m.removedgrants))
		for id := range m.removedgrants {
			ids = append(ids, id)
		}
		return ids
	case permissionset.EdgeWhitelistedUsers:
		ids := make([]ent.Value, 0, len(m.removedwhitelisted_users))
		for id := range m.removedwhitelisted_users {
			ids = append(ids, id)
		}
		return ids
	case permissionset.EdgeWhitelistedAgents:
		ids := make([]ent.Value, 0, len(m.removedwhitelisted_agents))
		for id := range m.removedwhitelisted_agents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PermissionSetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedgrants {
		edges = append(edges, permissionset.EdgeGrants)
	}
	if m.clearedwhitelisted_users {
		edges = append(edges, permissionset.EdgeWhitelistedUsers)
	}
	if m.clearedwhitelisted_agents {
		edges = append(edges, permissionset.EdgeWhitelistedAgents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PermissionSetMutation) EdgeCleared(name string) bool {
	switch name {
	case permissionset.EdgeGrants:
		return m.clearedgrants
	case permissionset.EdgeWhitelistedUsers:
		return m.clearedwhitelisted_users
	case permissionset.EdgeWhitelistedAgents:
		return m.clearedwhitelisted_agents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PermissionSetMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PermissionSet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PermissionSetMutation) ResetEdge(name string) error {
	switch name {
	case permissionset.EdgeGrants:
		m.ResetGrants()
		return nil
	case permissionset.EdgeWhitelistedUsers:
		m.ResetWhitelistedUsers()
		return nil
	case permissionset.EdgeWhitelistedAgents:
		m.ResetWhitelistedAgents()
		return nil
	}
	return fmt.Errorf("unknown PermissionSet edge %s", name)
}

// ProviderModelMutation represents an operation that mutates the ProviderModel nodes in the graph.
type ProviderModelMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	provider          *providermodel.Provider
	model_name        *string
	encrypted_api_key *string
	base_url          *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ProviderModel, error)
	predicates        []predicate.ProviderModel
}

var _ ent.Mutation = (*ProviderModelMutation)(nil)

// providermodelOption allows management of the mutation configuration using functional options.
type providermodelOption func(*ProviderModelMutation)

// newProviderModelMutation creates new mutation for the ProviderModel entity.
func newProviderModelMutation(c config, op Op, opts ...providermodelOption) *ProviderModelMutation {
	m := &ProviderModelMutation{
		config:        c,
		op:            op,
		typ:           TypeProviderModel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProviderModelID sets the ID field of the mutation.
func withProviderModelID(id string) providermodelOption {
	return func(m *ProviderModelMutation) {
		var (
			err   error
			once  sync.Once
			value *ProviderModel
		)
		m.oldValue = func(ctx context.Context) (*ProviderModel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProviderModel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProviderModel sets the old ProviderModel of the mutation.
func withProviderModel(node *ProviderModel) providermodelOption {
	return func(m *ProviderModelMutation) {
		m.oldValue = func(context.Context) (*ProviderModel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProviderModelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProviderModelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProviderModel entities.
func (m *ProviderModelMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProviderModelMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProviderModelMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProviderModel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProviderModelMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProviderModelMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ProviderModel entity.
// If the ProviderModel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderModelMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProviderModelMutation) ResetName() {
	m.name = nil
}

// SetProvider sets the "provider" field.
func (m *ProviderModelMutation) SetProvider(pr providermodel.Provider) {
	m.provider = &pr
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ProviderModelMutation) Provider() (r providermodel.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ProviderModel entity.
// If the ProviderModel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderModelMutation) OldProvider(ctx context.Context) (v providermodel.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ProviderModelMutation) ResetProvider() {
	m.provider = nil
}

// SetModelName sets the "model_name" field.
func (m *ProviderModelMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ProviderModelMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ProviderModel entity.
// If the ProviderModel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderModelMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ProviderModelMutation) ResetModelName() {
	m.model_name = nil
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (m *ProviderModelMutation) SetEncryptedAPIKey(s string) {
	m.encrypted_api_key = &s
}

// EncryptedAPIKey returns the value of the "encrypted_api_key" field in the mutation.
func (m *ProviderModelMutation) EncryptedAPIKey() (r string, exists bool) {
	v := m.encrypted_api_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedAPIKey returns the old "encrypted_api_key" field's value of the ProviderModel entity.
// If the ProviderModel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderModelMutation) OldEncryptedAPIKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedAPIKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedAPIKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedAPIKey: %w", err)
	}
	return oldValue.EncryptedAPIKey, nil
}

// ClearEncryptedAPIKey clears the value of the "encrypted_api_key" field.
func (m *ProviderModelMutation) ClearEncryptedAPIKey() {
	m.encrypted_api_key = nil
	m.clearedFields[providermodel.FieldEncryptedAPIKey] = struct{}{}
}

// EncryptedAPIKeyCleared returns if the "encrypted_api_key" field was cleared in this mutation.
func (m *ProviderModelMutation) EncryptedAPIKeyCleared() bool {
	_, ok := m.clearedFields[providermodel.FieldEncryptedAPIKey]
	return ok
}

// ResetEncryptedAPIKey resets all changes to the "encrypted_api_key" field.
func (m *ProviderModelMutation) ResetEncryptedAPIKey() {
	m.encrypted_api_key = nil
	delete(m.clearedFields, providermodel.FieldEncryptedAPIKey)
}

// SetBaseURL sets the "base_url" field.
func (m *ProviderModelMutation) SetBaseURL(s string) {
	m.base_url = &s
}

// BaseURL returns the value of the "base_url" field in the mutation.
func (m *ProviderModelMutation) BaseURL() (r string, exists bool) {
	v := m.base_url
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseURL returns the old "base_url" field's value of the ProviderModel entity.
// If the ProviderModel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderModelMutation) OldBaseURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseURL: %w", err)
	}
	return oldValue.BaseURL, nil
}

// ClearBaseURL clears the value of the "base_url" field.
func (m *ProviderModelMutation) ClearBaseURL() {
	m.base_url = nil
	m.clearedFields[providermodel.FieldBaseURL] = struct{}{}
}

// BaseURLCleared returns if the "base_url" field was cleared in this mutation.
func (m *ProviderModelMutation) BaseURLCleared() bool {
	_, ok := m.clearedFields[providermodel.FieldBaseURL]
	return ok
}

// ResetBaseURL resets all changes to the "base_url" field.
func (m *ProviderModelMutation) ResetBaseURL() {
	m.base_url = nil
	delete(m.clearedFields, providermodel.FieldBaseURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProviderModelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProviderModelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProviderModel entity.
// If the ProviderModel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderModelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProviderModelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProviderModelMutation builder.
func (m *ProviderModelMutation) Where(ps ...predicate.ProviderModel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProviderModelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProviderModelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProviderModel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProviderModelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProviderModelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProviderModel).
func (m *ProviderModelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProviderModelMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, providermodel.FieldName)
	}
	if m.provider != nil {
		fields = append(fields, providermodel.FieldProvider)
	}
	if m.model_name != nil {
		fields = append(fields, providermodel.FieldModelName)
	}
	if m.encrypted_api_key != nil {
		fields = append(fields, providermodel.FieldEncryptedAPIKey)
	}
	if m.base_url != nil {
		fields = append(fields, providermodel.FieldBaseURL)
	}
	if m.created_at != nil {
		fields = append(fields, providermodel.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProviderModelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case providermodel.FieldName:
		return m.Name()
	case providermodel.FieldProvider:
		return m.Provider()
	case providermodel.FieldModelName:
		return m.ModelName()
	case providermodel.FieldEncryptedAPIKey:
		return m.EncryptedAPIKey()
	case providermodel.FieldBaseURL:
		return m.BaseURL()
	case providermodel.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProviderModelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case providermodel.FieldName:
		return m.OldName(ctx)
	case providermodel.FieldProvider:
		return m.OldProvider(ctx)
	case providermodel.FieldModelName:
		return m.OldModelName(ctx)
	case providermodel.FieldEncryptedAPIKey:
		return m.OldEncryptedAPIKey(ctx)
	case providermodel.FieldBaseURL:
		return m.OldBaseURL(ctx)
	case providermodel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProviderModel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderModelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case providermodel.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case providermodel.FieldProvider:
		v, ok := value.(providermodel.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case providermodel.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case providermodel.FieldEncryptedAPIKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedAPIKey(v)
		return nil
	case providermodel.FieldBaseURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseURL(v)
		return nil
	case providermodel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProviderModel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProviderModelMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProviderModelMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderModelMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProviderModel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProviderModelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(providermodel.FieldEncryptedAPIKey) {
		fields = append(fields, providermodel.FieldEncryptedAPIKey)
	}
	if m.FieldCleared(providermodel.FieldBaseURL) {
		fields = append(fields, providermodel.FieldBaseURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProviderModelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProviderModelMutation) ClearField(name string) error {
	switch name {
	case providermodel.FieldEncryptedAPIKey:
		m.ClearEncryptedAPIKey()
		return nil
	case providermodel.FieldBaseURL:
		m.ClearBaseURL()
		return nil
	}
	return fmt.Errorf("unknown ProviderModel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProviderModelMutation) ResetField(name string) error {
	switch name {
	case providermodel.FieldName:
		m.ResetName()
		return nil
	case providermodel.FieldProvider:
		m.ResetProvider()
		return nil
	case providermodel.FieldModelName:
		m.ResetModelName()
		return nil
	case providermodel.FieldEncryptedAPIKey:
		m.ResetEncryptedAPIKey()
		return nil
	case providermodel.FieldBaseURL:
		m.ResetBaseURL()
		return nil
	case providermodel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProviderModel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProviderModelMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProviderModelMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProviderModelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProviderModelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProviderModelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProviderModelMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProviderModelMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProviderModel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProviderModelMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProviderModel edge %s", name)
}

// RoleMutation represents an operation that mutates the Role nodes in the graph.
type RoleMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	name                  *string
	description           *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	permission_set        *string
	clearedpermission_set bool
	done                  bool
	oldValue              func(context.Context) (*Role, error)
	predicates            []predicate.Role
}

var _ ent.Mutation = (*RoleMutation)(nil)

// roleOption allows management of the mutation configuration using functional options.
type roleOption func(*RoleMutation)

// newRoleMutation creates new mutation for the Role entity.
func newRoleMutation(c config, op Op, opts ...roleOption) *RoleMutation {
	m := &RoleMutation{
		config:        c,
		op:            op,
		typ:           TypeRole,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoleID sets the ID field of the mutation.
func withRoleID(id string) roleOption {
	return func(m *RoleMutation) {
		var (
			err   error
			once  sync.Once
			value *Role
		)
		m.oldValue = func(ctx context.Context) (*Role, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Role.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRole sets the old Role of the mutation.
func withRole(node *Role) roleOption {
	return func(m *RoleMutation) {
		m.oldValue = func(context.Context) (*Role, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Role entities.
func (m *RoleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Role.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RoleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RoleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Role entity.
// If the Role object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RoleMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *RoleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RoleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Role entity.
// If the Role object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RoleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[role.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RoleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[role.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RoleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, role.FieldDescription)
}

// SetPermissionSetID sets the "permission_set_id" field.
func (m *RoleMutation) SetPermissionSetID(s string) {
	m.permission_set = &s
}

// PermissionSetID returns the value of the "permission_set_id" field in the mutation.
func (m *RoleMutation) PermissionSetID() (r string, exists bool) {
	v := m.permission_set
	if v == nil {
		return
	}
	return *v, true
}

// OldPermissionSetID returns the old "permission_set_id" field's value of the Role entity.
// If the Role object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleMutation) OldPermissionSetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPermissionSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPermissionSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPermissionSetID: %w", err)
	}
	return oldValue.PermissionSetID, nil
}

// ResetPermissionSetID resets all changes to the "permission_set_id" field.
func (m *RoleMutation) ResetPermissionSetID() {
	m.permission_set = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RoleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Role entity.
// If the Role object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPermissionSet clears the "permission_set" edge to the PermissionSet entity.
func (m *RoleMutation) ClearPermissionSet() {
	m.clearedpermission_set = true
	m.clearedFields[role.FieldPermissionSetID] = struct{}{}
}

// PermissionSetCleared reports if the "permission_set" edge to the PermissionSet entity was cleared.
func (m *RoleMutation) PermissionSetCleared() bool {
	return m.clearedpermission_set
}

// PermissionSetIDs returns the "permission_set" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PermissionSetID instead. It exists only for internal usage by the builders.
func (m *RoleMutation) PermissionSetIDs() (ids []string) {
	if id := m.permission_set; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPermissionSet resets all changes to the "permission_set" edge.
func (m *RoleMutation) ResetPermissionSet() {
	m.permission_set = nil
	m.clearedpermission_set = false
}

// Where appends a list predicates to the RoleMutation builder.
func (m *RoleMutation) Where(ps ...predicate.Role) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Role, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Role).
func (m *RoleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoleMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, role.FieldName)
	}
	if m.description != nil {
		fields = append(fields, role.FieldDescription)
	}
	if m.permission_set != nil {
		fields = append(fields, role.FieldPermissionSetID)
	}
	if m.created_at != nil {
		fields = append(fields, role.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case role.FieldName:
		return m.Name()
	case role.FieldDescription:
		return m.Description()
	case role.FieldPermissionSetID:
		return m.PermissionSetID()
	case role.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case role.FieldName:
		return m.OldName(ctx)
	case role.FieldDescription:
		return m.OldDescription(ctx)
	case role.FieldPermissionSetID:
		return m.OldPermissionSetID(ctx)
	case role.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Role field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case role.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case role.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case role.FieldPermissionSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPermissionSetID(v)
		return nil
	case role.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Role field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Role numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(role.FieldDescription) {
		fields = append(fields, role.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoleMutation) ClearField(name string) error {
	switch name {
	case role.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Role nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoleMutation) ResetField(name string) error {
	switch name {
	case role.FieldName:
		m.ResetName()
		return nil
	case role.FieldDescription:
		m.ResetDescription()
		return nil
	case role.FieldPermissionSetID:
		m.ResetPermissionSetID()
		return nil
	case role.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Role field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.permission_set != nil {
		edges = append(edges, role.EdgePermissionSet)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case role.EdgePermissionSet:
		if id := m.permission_set; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpermission_set {
		edges = append(edges, role.EdgePermissionSet)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoleMutation) EdgeCleared(name string) bool {
	switch name {
	case role.EdgePermissionSet:
		return m.clearedpermission_set
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoleMutation) ClearEdge(name string) error {
	switch name {
	case role.EdgePermissionSet:
		m.ClearPermissionSet()
		return nil
	}
	return fmt.Errorf("unknown Role unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoleMutation) ResetEdge(name string) error {
	switch name {
	case role.EdgePermissionSet:
		m.ResetPermissionSet()
		return nil
	}
	return fmt.Errorf("unknown Role edge %s", name)
}

// SkillMutation represents an operation that mutates the Skill nodes in the graph.
type SkillMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	content       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Skill, error)
	predicates    []predicate.Skill
}

var _ ent.Mutation = (*SkillMutation)(nil)

// skillOption allows management of the mutation configuration using functional options.
type skillOption func(*SkillMutation)

// newSkillMutation creates new mutation for the Skill entity.
func newSkillMutation(c config, op Op, opts ...skillOption) *SkillMutation {
	m := &SkillMutation{
		config:        c,
		op:            op,
		typ:           TypeSkill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillID sets the ID field of the mutation.
func withSkillID(id string) skillOption {
	return func(m *SkillMutation) {
		var (
			err   error
			once  sync.Once
			value *Skill
		)
		m.oldValue = func(ctx context.Context) (*Skill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Skill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkill sets the old Skill of the mutation.
func withSkill(node *Skill) skillOption {
	return func(m *SkillMutation) {
		m.oldValue = func(context.Context) (*Skill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Skill entities.
func (m *SkillMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Skill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SkillMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SkillMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SkillMutation) ResetName() {
	m.name = nil
}

// SetContent sets the "content" field.
func (m *SkillMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SkillMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *SkillMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SkillMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SkillMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SkillMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SkillMutation builder.
func (m *SkillMutation) Where(ps ...predicate.Skill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Skill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Skill).
func (m *SkillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, skill.FieldName)
	}
	if m.content != nil {
		fields = append(fields, skill.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, skill.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skill.FieldName:
		return m.Name()
	case skill.FieldContent:
		return m.Content()
	case skill.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skill.FieldName:
		return m.OldName(ctx)
	case skill.FieldContent:
		return m.OldContent(ctx)
	case skill.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Skill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skill.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case skill.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case skill.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Skill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Skill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Skill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillMutation) ResetField(name string) error {
	switch name {
	case skill.FieldName:
		m.ResetName()
		return nil
	case skill.FieldContent:
		m.ResetContent()
		return nil
	case skill.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Skill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Skill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Skill edge %s", name)
}

// SystemUserMutation represents an operation that mutates the SystemUser nodes in the graph.
type SystemUserMutation struct {
	config
	op                Op
	typ               string
	id                *string
	username          *string
	working_directory *string
	sandbox_root      *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SystemUser, error)
	predicates        []predicate.SystemUser
}

var _ ent.Mutation = (*SystemUserMutation)(nil)

// systemuserOption allows management of the mutation configuration using functional options.
type systemuserOption func(*SystemUserMutation)

// newSystemUserMutation creates new mutation for the SystemUser entity.
func newSystemUserMutation(c config, op Op, opts ...systemuserOption) *SystemUserMutation {
	m := &SystemUserMutation{
		config:        c,
		op:            op,
		typ:           TypeSystemUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSystemUserID sets the ID field of the mutation.
func withSystemUserID(id string) systemuserOption {
	return func(m *SystemUserMutation) {
		var (
			err   error
			once  sync.Once
			value *SystemUser
		)
		m.oldValue = func(ctx context.Context) (*SystemUser, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SystemUser.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSystemUser sets the old SystemUser of the mutation.
func withSystemUser(node *SystemUser) systemuserOption {
	return func(m *SystemUserMutation) {
		m.oldValue = func(context.Context) (*SystemUser, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SystemUserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SystemUserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SystemUser entities.
func (m *SystemUserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SystemUserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SystemUserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SystemUser.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *SystemUserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *SystemUserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the SystemUser entity.
// If the SystemUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemUserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *SystemUserMutation) ResetUsername() {
	m.username = nil
}

// SetWorkingDirectory sets the "working_directory" field.
func (m *SystemUserMutation) SetWorkingDirectory(s string) {
	m.working_directory = &s
}

// WorkingDirectory returns the value of the "working_directory" field in the mutation.
func (m *SystemUserMutation) WorkingDirectory() (r string, exists bool) {
	v := m.working_directory
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkingDirectory returns the old "working_directory" field's value of the SystemUser entity.
// If the SystemUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemUserMutation) OldWorkingDirectory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkingDirectory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkingDirectory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkingDirectory: %w", err)
	}
	return oldValue.WorkingDirectory, nil
}

// ClearWorkingDirectory clears the value of the "working_directory" field.
func (m *SystemUserMutation) ClearWorkingDirectory() {
	m.working_directory = nil
	m.clearedFields[systemuser.FieldWorkingDirectory] = struct{}{}
}

// WorkingDirectoryCleared returns if the "working_directory" field was cleared in this mutation.
func (m *SystemUserMutation) WorkingDirectoryCleared() bool {
	_, ok := m.clearedFields[systemuser.FieldWorkingDirectory]
	return ok
}

// ResetWorkingDirectory resets all changes to the "working_directory" field.
func (m *SystemUserMutation) ResetWorkingDirectory() {
	m.working_directory = nil
	delete(m.clearedFields, systemuser.FieldWorkingDirectory)
}

// SetSandboxRoot sets the "sandbox_root" field.
func (m *SystemUserMutation) SetSandboxRoot(s string) {
	m.sandbox_root = &s
}

// SandboxRoot returns the value of the "sandbox_root" field in the mutation.
func (m *SystemUserMutation) SandboxRoot() (r string, exists bool) {
	v := m.sandbox_root
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxRoot returns the old "sandbox_root" field's value of the SystemUser entity.
// If the SystemUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemUserMutation) OldSandboxRoot(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxRoot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxRoot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxRoot: %w", err)
	}
	return oldValue.SandboxRoot, nil
}

// ClearSandboxRoot clears the value of the "sandbox_root" field.
func (m *SystemUserMutation) ClearSandboxRoot() {
	m.sandbox_root = nil
	m.clearedFields[systemuser.FieldSandboxRoot] = struct{}{}
}

// SandboxRootCleared returns if the "sandbox_root" field was cleared in this mutation.
func (m *SystemUserMutation) SandboxRootCleared() bool {
	_, ok := m.clearedFields[systemuser.FieldSandboxRoot]
	return ok
}

// ResetSandboxRoot resets all changes to the "sandbox_root" field.
func (m *SystemUserMutation) ResetSandboxRoot() {
	m.sandbox_root = nil
	delete(m.clearedFields, systemuser.FieldSandboxRoot)
}

// SetCreatedAt sets the "created_at" field.
func (m *SystemUserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SystemUserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SystemUser entity.
// If the SystemUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemUserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SystemUserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SystemUserMutation builder.
func (m *SystemUserMutation) Where(ps ...predicate.SystemUser) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SystemUserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SystemUserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SystemUser, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SystemUserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SystemUserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SystemUser).
func (m *SystemUserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SystemUserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.username != nil {
		fields = append(fields, systemuser.FieldUsername)
	}
	if m.working_directory != nil {
		fields = append(fields, systemuser.FieldWorkingDirectory)
	}
	if m.sandbox_root != nil {
		fields = append(fields, systemuser.FieldSandboxRoot)
	}
	if m.created_at != nil {
		fields = append(fields, systemuser.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SystemUserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case systemuser.FieldUsername:
		return m.Username()
	case systemuser.FieldWorkingDirectory:
		return m.WorkingDirectory()
	case systemuser.FieldSandboxRoot:
		return m.SandboxRoot()
	case systemuser.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SystemUserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case systemuser.FieldUsername:
		return m.OldUsername(ctx)
	case systemuser.FieldWorkingDirectory:
		return m.OldWorkingDirectory(ctx)
	case systemuser.FieldSandboxRoot:
		return m.OldSandboxRoot(ctx)
	case systemuser.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SystemUser field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemUserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case systemuser.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case systemuser.FieldWorkingDirectory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkingDirectory(v)
		return nil
	case systemuser.FieldSandboxRoot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxRoot(v)
		return nil
	case systemuser.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SystemUser field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SystemUserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SystemUserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemUserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SystemUser numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SystemUserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(systemuser.FieldWorkingDirectory) {
		fields = append(fields, systemuser.FieldWorkingDirectory)
	}
	if m.FieldCleared(systemuser.FieldSandboxRoot) {
		fields = append(fields, systemuser.FieldSandboxRoot)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SystemUserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SystemUserMutation) ClearField(name string) error {
	switch name {
	case systemuser.FieldWorkingDirectory:
		m.ClearWorkingDirectory()
		return nil
	case systemuser.FieldSandboxRoot:
		m.ClearSandboxRoot()
		return nil
	}
	return fmt.Errorf("unknown SystemUser nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SystemUserMutation) ResetField(name string) error {
	switch name {
	case systemuser.FieldUsername:
		m.ResetUsername()
		return nil
	case systemuser.FieldWorkingDirectory:
		m.ResetWorkingDirectory()
		return nil
	case systemuser.FieldSandboxRoot:
		m.ResetSandboxRoot()
		return nil
	case systemuser.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SystemUser field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SystemUserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SystemUserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SystemUserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SystemUserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SystemUserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SystemUserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SystemUserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SystemUser unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SystemUserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SystemUser edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	name                       *string
	repeat_interval_seconds    *int
	addrepeat_interval_seconds *int
	max_retries                *int
	addmax_retries             *int
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*Task, error)
	predicates                 []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TaskMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaskMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TaskMutation) ResetName() {
	m.name = nil
}

// SetRepeatIntervalSeconds sets the "repeat_interval_seconds" field.
func (m *TaskMutation) SetRepeatIntervalSeconds(i int) {
	m.repeat_interval_seconds = &i
	m.addrepeat_interval_seconds = nil
}

// RepeatIntervalSeconds returns the value of the "repeat_interval_seconds" field in the mutation.
func (m *TaskMutation) RepeatIntervalSeconds() (r int, exists bool) {
	v := m.repeat_interval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldRepeatIntervalSeconds returns the old "repeat_interval_seconds" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRepeatIntervalSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepeatIntervalSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepeatIntervalSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepeatIntervalSeconds: %w", err)
	}
	return oldValue.RepeatIntervalSeconds, nil
}

// AddRepeatIntervalSeconds adds i to the "repeat_interval_seconds" field.
func (m *TaskMutation) AddRepeatIntervalSeconds(i int) {
	if m.addrepeat_interval_seconds != nil {
		*m.addrepeat_interval_seconds += i
	} else {
		m.addrepeat_interval_seconds = &i
	}
}

// AddedRepeatIntervalSeconds returns the value that was added to the "repeat_interval_seconds" field in this mutation.
func (m *TaskMutation) AddedRepeatIntervalSeconds() (r int, exists bool) {
	v := m.addrepeat_interval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepeatIntervalSeconds resets all changes to the "repeat_interval_seconds" field.
func (m *TaskMutation) ResetRepeatIntervalSeconds() {
	m.repeat_interval_seconds = nil
	m.addrepeat_interval_seconds = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *TaskMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *TaskMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *TaskMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *TaskMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *TaskMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, task.FieldName)
	}
	if m.repeat_interval_seconds != nil {
		fields = append(fields, task.FieldRepeatIntervalSeconds)
	}
	if m.max_retries != nil {
		fields = append(fields, task.FieldMaxRetries)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldName:
		return m.Name()
	case task.FieldRepeatIntervalSeconds:
		return m.RepeatIntervalSeconds()
	case task.FieldMaxRetries:
		return m.MaxRetries()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldName:
		return m.OldName(ctx)
	case task.FieldRepeatIntervalSeconds:
		return m.OldRepeatIntervalSeconds(ctx)
	case task.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case task.FieldRepeatIntervalSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepeatIntervalSeconds(v)
		return nil
	case task.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addrepeat_interval_seconds != nil {
		fields = append(fields, task.FieldRepeatIntervalSeconds)
	}
	if m.addmax_retries != nil {
		fields = append(fields, task.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldRepeatIntervalSeconds:
		return m.AddedRepeatIntervalSeconds()
	case task.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldRepeatIntervalSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepeatIntervalSeconds(v)
		return nil
	case task.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldName:
		m.ResetName()
		return nil
	case task.FieldRepeatIntervalSeconds:
		m.ResetRepeatIntervalSeconds()
		return nil
	case task.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

// TranscriptionSegmentMutation represents an operation that mutates the TranscriptionSegment nodes in the graph.
type TranscriptionSegmentMutation struct {
	config
	op               Op
	typ              string
	id               *string
	chunk_index      *int
	addchunk_index   *int
	text             *string
	start_seconds    *float64
	addstart_seconds *float64
	end_seconds      *float64
	addend_seconds   *float64
	confidence       *float64
	addconfidence    *float64
	captured_at      *time.Time
	clearedFields    map[string]struct{}
	job              *string
	clearedjob       bool
	done             bool
	oldValue         func(context.Context) (*TranscriptionSegment, error)
	predicates       []predicate.TranscriptionSegment
}

var _ ent.Mutation = (*TranscriptionSegmentMutation)(nil)

// transcriptionsegmentOption allows management of the mutation configuration using functional options.
type transcriptionsegmentOption func(*TranscriptionSegmentMutation)

// newTranscriptionSegmentMutation creates new mutation for the TranscriptionSegment entity.
func newTranscriptionSegmentMutation(c config, op Op, opts ...transcriptionsegmentOption) *TranscriptionSegmentMutation {
	m := &TranscriptionSegmentMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscriptionSegment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptionSegmentID sets the ID field of the mutation.
func withTranscriptionSegmentID(id string) transcriptionsegmentOption {
	return func(m *TranscriptionSegmentMutation) {
		var (
			err   error
			once  sync.Once
			value *TranscriptionSegment
		)
		m.oldValue = func(ctx context.Context) (*TranscriptionSegment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TranscriptionSegment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscriptionSegment sets the old TranscriptionSegment of the mutation.
func withTranscriptionSegment(node *TranscriptionSegment) transcriptionsegmentOption {
	return func(m *TranscriptionSegmentMutation) {
		m.oldValue = func(context.Context) (*TranscriptionSegment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptionSegmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptionSegmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TranscriptionSegment entities.
func (m *TranscriptionSegmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptionSegmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptionSegmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TranscriptionSegment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *TranscriptionSegmentMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *TranscriptionSegmentMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the TranscriptionSegment entity.
// If the TranscriptionSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionSegmentMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *TranscriptionSegmentMutation) ResetJobID() {
	m.job = nil
}

// SetChunkIndex sets the "chunk_index" field.
func (m *TranscriptionSegmentMutation) SetChunkIndex(i int) {
	m.chunk_index = &i
	m.addchunk_index = nil
}

// ChunkIndex returns the value of the "chunk_index" field in the mutation.
func (m *TranscriptionSegmentMutation) ChunkIndex() (r int, exists bool) {
	v := m.chunk_index
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkIndex returns the old "chunk_index" field's value of the TranscriptionSegment entity.
// If the TranscriptionSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionSegmentMutation) OldChunkIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkIndex: %w", err)
	}
	return oldValue.ChunkIndex, nil
}

// AddChunkIndex adds i to the "chunk_index" field.
func (m *TranscriptionSegmentMutation) AddChunkIndex(i int) {
	if m.addchunk_index != nil {
		*m.addchunk_index += i
	} else {
		m.addchunk_index = &i
	}
}

// AddedChunkIndex returns the value that was added to the "chunk_index" field in this mutation.
func (m *TranscriptionSegmentMutation) AddedChunkIndex() (r int, exists bool) {
	v := m.addchunk_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkIndex resets all changes to the "chunk_index" field.
func (m *TranscriptionSegmentMutation) ResetChunkIndex() {
	m.chunk_index = nil
	m.addchunk_index = nil
}

// SetText sets the "text" field.
func (m *TranscriptionSegmentMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *TranscriptionSegmentMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the TranscriptionSegment entity.
// If the TranscriptionSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionSegmentMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *TranscriptionSegmentMutation) ResetText() {
	m.text = nil
}

// SetStartSeconds sets the "start_seconds" field.
func (m *TranscriptionSegmentMutation) SetStartSeconds(f float64) {
	m.start_seconds = &f
	m.addstart_seconds = nil
}

// StartSeconds returns the value of the "start_seconds" field in the mutation.
func (m *TranscriptionSegmentMutation) StartSeconds() (r float64, exists bool) {
	v := m.start_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldStartSeconds returns the old "start_seconds" field's value of the TranscriptionSegment entity.
// If the TranscriptionSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionSegmentMutation) OldStartSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartSeconds: %w", err)
	}
	return oldValue.StartSeconds, nil
}

// AddStartSeconds adds f to the "start_seconds" field.
func (m *TranscriptionSegmentMutation) AddStartSeconds(f float64) {
	if m.addstart_seconds != nil {
		*m.addstart_seconds += f
	} else {
		m.addstart_seconds = &f
	}
}

// AddedStartSeconds returns the value that was added to the "start_seconds" field in this mutation.
func (m *TranscriptionSegmentMutation) AddedStartSeconds() (r float64, exists bool) {
	v := m.addstart_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartSeconds resets all changes to the "start_seconds" field.
func (m *TranscriptionSegmentMutation) ResetStartSeconds() {
	m.start_seconds = nil
	m.addstart_seconds = nil
}

// SetEndSeconds sets the "end_seconds" field.
func (m *TranscriptionSegmentMutation) SetEndSeconds(f float64) {
	m.end_seconds = &f
	m.addend_seconds = nil
}

// EndSeconds returns the value of the "end_seconds" field in the mutation.
func (m *TranscriptionSegmentMutation) EndSeconds() (r float64, exists bool) {
	v := m.end_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldEndSeconds returns the old "end_seconds" field's value of the TranscriptionSegment entity.
// If the TranscriptionSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionSegmentMutation) OldEndSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndSeconds: %w", err)
	}
	return oldValue.EndSeconds, nil
}

// AddEndSeconds adds f to the "end_seconds" field.
func (m *TranscriptionSegmentMutation) AddEndSeconds(f float64) {
	if m.addend_seconds != nil {
		*m.addend_seconds += f
	} else {
		m.addend_seconds = &f
	}
}

// AddedEndSeconds returns the value that was added to the "end_seconds" field in this mutation.
func (m *TranscriptionSegmentMutation) AddedEndSeconds() (r float64, exists bool) {
	v := m.addend_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndSeconds resets all changes to the "end_seconds" field.
func (m *TranscriptionSegmentMutation) ResetEndSeconds() {
	m.end_seconds = nil
	m.addend_seconds = nil
}

// SetConfidence sets the "confidence" field.
func (m *TranscriptionSegmentMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *TranscriptionSegmentMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the TranscriptionSegment entity.
// If the TranscriptionSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionSegmentMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *TranscriptionSegmentMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *TranscriptionSegmentMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *TranscriptionSegmentMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[transcriptionsegment.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *TranscriptionSegmentMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[transcriptionsegment.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *TranscriptionSegmentMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, transcriptionsegment.FieldConfidence)
}

// SetCapturedAt sets the "captured_at" field.
func (m *TranscriptionSegmentMutation) SetCapturedAt(t time.Time) {
	m.captured_at = &t
}

// CapturedAt returns the value of the "captured_at" field in the mutation.
func (m *TranscriptionSegmentMutation) CapturedAt() (r time.Time, exists bool) {
	v := m.captured_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCapturedAt returns the old "captured_at" field's value of the TranscriptionSegment entity.
// If the TranscriptionSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionSegmentMutation) OldCapturedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapturedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapturedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapturedAt: %w", err)
	}
	return oldValue.CapturedAt, nil
}

// ResetCapturedAt resets all changes to the "captured_at" field.
func (m *TranscriptionSegmentMutation) ResetCapturedAt() {
	m.captured_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *TranscriptionSegmentMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[transcriptionsegment.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *TranscriptionSegmentMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *TranscriptionSegmentMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *TranscriptionSegmentMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the TranscriptionSegmentMutation builder.
func (m *TranscriptionSegmentMutation) Where(ps ...predicate.TranscriptionSegment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptionSegmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptionSegmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TranscriptionSegment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptionSegmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptionSegmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TranscriptionSegment).
func (m *TranscriptionSegmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptionSegmentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.job != nil {
		fields = append(fields, transcriptionsegment.FieldJobID)
	}
	if m.chunk_index != nil {
		fields = append(fields, transcriptionsegment.FieldChunkIndex)
	}
	if m.text != nil {
		fields = append(fields, transcriptionsegment.FieldText)
	}
	if m.start_seconds != nil {
		fields = append(fields, transcriptionsegment.FieldStartSeconds)
	}
	if m.end_seconds != nil {
		fields = append(fields, transcriptionsegment.FieldEndSeconds)
	}
	if m.confidence != nil {
		fields = append(fields, transcriptionsegment.FieldConfidence)
	}
	if m.captured_at != nil {
		fields = append(fields, transcriptionsegment.FieldCapturedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptionSegmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcriptionsegment.FieldJobID:
		return m.JobID()
	case transcriptionsegment.FieldChunkIndex:
		return m.ChunkIndex()
	case transcriptionsegment.FieldText:
		return m.Text()
	case transcriptionsegment.FieldStartSeconds:
		return m.StartSeconds()
	case transcriptionsegment.FieldEndSeconds:
		return m.EndSeconds()
	case transcriptionsegment.FieldConfidence:
		return m.Confidence()
	case transcriptionsegment.FieldCapturedAt:
		return m.CapturedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptionSegmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcriptionsegment.FieldJobID:
		return m.OldJobID(ctx)
	case transcriptionsegment.FieldChunkIndex:
		return m.OldChunkIndex(ctx)
	case transcriptionsegment.FieldText:
		return m.OldText(ctx)
	case transcriptionsegment.FieldStartSeconds:
		return m.OldStartSeconds(ctx)
	case transcriptionsegment.FieldEndSeconds:
		return m.OldEndSeconds(ctx)
	case transcriptionsegment.FieldConfidence:
		return m.OldConfidence(ctx)
	case transcriptionsegment.FieldCapturedAt:
		return m.OldCapturedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TranscriptionSegment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptionSegmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcriptionsegment.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case transcriptionsegment.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkIndex(v)
		return nil
	case transcriptionsegment.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case transcriptionsegment.FieldStartSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartSeconds(v)
		return nil
	case transcriptionsegment.FieldEndSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndSeconds(v)
		return nil
	case transcriptionsegment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case transcriptionsegment.FieldCapturedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapturedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptionSegment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptionSegmentMutation) AddedFields() []string {
	var fields []string
	if m.addchunk_index != nil {
		fields = append(fields, transcriptionsegment.FieldChunkIndex)
	}
	if m.addstart_seconds != nil {
		fields = append(fields, transcriptionsegment.FieldStartSeconds)
	}
	if m.addend_seconds != nil {
		fields = append(fields, transcriptionsegment.FieldEndSeconds)
	}
	if m.addconfidence != nil {
		fields = append(fields, transcriptionsegment.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptionSegmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcriptionsegment.FieldChunkIndex:
		return m.AddedChunkIndex()
	case transcriptionsegment.FieldStartSeconds:
		return m.AddedStartSeconds()
	case transcriptionsegment.FieldEndSeconds:
		return m.AddedEndSeconds()
	case transcriptionsegment.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptionSegmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcriptionsegment.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkIndex(v)
		return nil
	case transcriptionsegment.FieldStartSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartSeconds(v)
		return nil
	case transcriptionsegment.FieldEndSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndSeconds(v)
		return nil
	case transcriptionsegment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptionSegment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptionSegmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcriptionsegment.FieldConfidence) {
		fields = append(fields, transcriptionsegment.FieldConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptionSegmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptionSegmentMutation) ClearField(name string) error {
	switch name {
	case transcriptionsegment.FieldConfidence:
		m.ClearConfidence()
		return nil
	}
	return fmt.Errorf("unknown TranscriptionSegment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptionSegmentMutation) ResetField(name string) error {
	switch name {
	case transcriptionsegment.FieldJobID:
		m.ResetJobID()
		return nil
	case transcriptionsegment.FieldChunkIndex:
		m.ResetChunkIndex()
		return nil
	case transcriptionsegment.FieldText:
		m.ResetText()
		return nil
	case transcriptionsegment.FieldStartSeconds:
		m.ResetStartSeconds()
		return nil
	case transcriptionsegment.FieldEndSeconds:
		m.ResetEndSeconds()
		return nil
	case transcriptionsegment.FieldConfidence:
		m.ResetConfidence()
		return nil
	case transcriptionsegment.FieldCapturedAt:
		m.ResetCapturedAt()
		return nil
	}
	return fmt.Errorf("unknown TranscriptionSegment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptionSegmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, transcriptionsegment.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptionSegmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcriptionsegment.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptionSegmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptionSegmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptionSegmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, transcriptionsegment.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptionSegmentMutation) EdgeCleared(name string) bool {
	switch name {
	case transcriptionsegment.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptionSegmentMutation) ClearEdge(name string) error {
	switch name {
	case transcriptionsegment.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown TranscriptionSegment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptionSegmentMutation) ResetEdge(name string) error {
	switch name {
	case transcriptionsegment.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown TranscriptionSegment edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	email         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	role          *string
	clearedrole   bool
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetRoleID sets the "role_id" field.
func (m *UserMutation) SetRoleID(s string) {
	m.role = &s
}

// RoleID returns the value of the "role_id" field in the mutation.
func (m *UserMutation) RoleID() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleID returns the old "role_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRoleID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleID: %w", err)
	}
	return oldValue.RoleID, nil
}

// ClearRoleID clears the value of the "role_id" field.
func (m *UserMutation) ClearRoleID() {
	m.role = nil
	m.clearedFields[user.FieldRoleID] = struct{}{}
}

// RoleIDCleared returns if the "role_id" field was cleared in this mutation.
func (m *UserMutation) RoleIDCleared() bool {
	_, ok := m.clearedFields[user.FieldRoleID]
	return ok
}

// ResetRoleID resets all changes to the "role_id" field.
func (m *UserMutation) ResetRoleID() {
	m.role = nil
	delete(m.clearedFields, user.FieldRoleID)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRole clears the "role" edge to the Role entity.
func (m *UserMutation) ClearRole() {
	m.clearedrole = true
	m.clearedFields[user.FieldRoleID] = struct{}{}
}

// RoleCleared reports if the "role" edge to the Role entity was cleared.
func (m *UserMutation) RoleCleared() bool {
	return m.RoleIDCleared() || m.clearedrole
}

// RoleIDs returns the "role" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoleID instead. It exists only for internal usage by the builders.
func (m *UserMutation) RoleIDs() (ids []string) {
	if id := m.role; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRole resets all changes to the "role" edge.
func (m *UserMutation) ResetRole() {
	m.role = nil
	m.clearedrole = false
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRoleID)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldRoleID:
		return m.RoleID()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldRoleID:
		return m.OldRoleID(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldRoleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleID(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	if m.FieldCleared(user.FieldRoleID) {
		fields = append(fields, user.FieldRoleID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	case user.FieldRoleID:
		m.ClearRoleID()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldRoleID:
		m.ResetRoleID()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.role != nil {
		edges = append(edges, user.EdgeRole)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeRole:
		if id := m.role; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrole {
		edges = append(edges, user.EdgeRole)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeRole:
		return m.clearedrole
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeRole:
		m.ClearRole()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeRole:
		m.ResetRole()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
