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
	"github.com/forgeworks/forge/ent/predicate"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketartifact"
	"github.com/forgeworks/forge/ent/ticketevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeProject        = "Project"
	TypeTicket         = "Ticket"
	TypeTicketArtifact = "TicketArtifact"
	TypeTicketEvent    = "TicketEvent"
)

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant_id      *string
	name           *string
	repo_url       *string
	default_branch *string
	settings       *map[string]interface{}
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	tickets        map[string]struct{}
	removedtickets map[string]struct{}
	clearedtickets bool
	done           bool
	oldValue       func(context.Context) (*Project, error)
	predicates     []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ProjectMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ProjectMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ProjectMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetRepoURL sets the "repo_url" field.
func (m *ProjectMutation) SetRepoURL(s string) {
	m.repo_url = &s
}

// RepoURL returns the value of the "repo_url" field in the mutation.
func (m *ProjectMutation) RepoURL() (r string, exists bool) {
	v := m.repo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoURL returns the old "repo_url" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldRepoURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoURL: %w", err)
	}
	return oldValue.RepoURL, nil
}

// ClearRepoURL clears the value of the "repo_url" field.
func (m *ProjectMutation) ClearRepoURL() {
	m.repo_url = nil
	m.clearedFields[project.FieldRepoURL] = struct{}{}
}

// RepoURLCleared returns if the "repo_url" field was cleared in this mutation.
func (m *ProjectMutation) RepoURLCleared() bool {
	_, ok := m.clearedFields[project.FieldRepoURL]
	return ok
}

// ResetRepoURL resets all changes to the "repo_url" field.
func (m *ProjectMutation) ResetRepoURL() {
	m.repo_url = nil
	delete(m.clearedFields, project.FieldRepoURL)
}

// SetDefaultBranch sets the "default_branch" field.
func (m *ProjectMutation) SetDefaultBranch(s string) {
	m.default_branch = &s
}

// DefaultBranch returns the value of the "default_branch" field in the mutation.
func (m *ProjectMutation) DefaultBranch() (r string, exists bool) {
	v := m.default_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultBranch returns the old "default_branch" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDefaultBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultBranch: %w", err)
	}
	return oldValue.DefaultBranch, nil
}

// ResetDefaultBranch resets all changes to the "default_branch" field.
func (m *ProjectMutation) ResetDefaultBranch() {
	m.default_branch = nil
}

// SetSettings sets the "settings" field.
func (m *ProjectMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *ProjectMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *ProjectMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[project.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *ProjectMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[project.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *ProjectMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, project.FieldSettings)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTicketIDs adds the "tickets" edge to the Ticket entity by ids.
func (m *ProjectMutation) AddTicketIDs(ids ...string) {
	if m.tickets == nil {
		m.tickets = make(map[string]struct{})
	}
	for i := range ids {
		m.tickets[ids[i]] = struct{}{}
	}
}

// ClearTickets clears the "tickets" edge to the Ticket entity.
func (m *ProjectMutation) ClearTickets() {
	m.clearedtickets = true
}

// TicketsCleared reports if the "tickets" edge to the Ticket entity was cleared.
func (m *ProjectMutation) TicketsCleared() bool {
	return m.clearedtickets
}

// RemoveTicketIDs removes the "tickets" edge to the Ticket entity by IDs.
func (m *ProjectMutation) RemoveTicketIDs(ids ...string) {
	if m.removedtickets == nil {
		m.removedtickets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tickets, ids[i])
		m.removedtickets[ids[i]] = struct{}{}
	}
}

// RemovedTickets returns the removed IDs of the "tickets" edge to the Ticket entity.
func (m *ProjectMutation) RemovedTicketsIDs() (ids []string) {
	for id := range m.removedtickets {
		ids = append(ids, id)
	}
	return
}

// TicketsIDs returns the "tickets" edge IDs in the mutation.
func (m *ProjectMutation) TicketsIDs() (ids []string) {
	for id := range m.tickets {
		ids = append(ids, id)
	}
	return
}

// ResetTickets resets all changes to the "tickets" edge.
func (m *ProjectMutation) ResetTickets() {
	m.tickets = nil
	m.clearedtickets = false
	m.removedtickets = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, project.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.repo_url != nil {
		fields = append(fields, project.FieldRepoURL)
	}
	if m.default_branch != nil {
		fields = append(fields, project.FieldDefaultBranch)
	}
	if m.settings != nil {
		fields = append(fields, project.FieldSettings)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldTenantID:
		return m.TenantID()
	case project.FieldName:
		return m.Name()
	case project.FieldRepoURL:
		return m.RepoURL()
	case project.FieldDefaultBranch:
		return m.DefaultBranch()
	case project.FieldSettings:
		return m.Settings()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldTenantID:
		return m.OldTenantID(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldRepoURL:
		return m.OldRepoURL(ctx)
	case project.FieldDefaultBranch:
		return m.OldDefaultBranch(ctx)
	case project.FieldSettings:
		return m.OldSettings(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldRepoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoURL(v)
		return nil
	case project.FieldDefaultBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultBranch(v)
		return nil
	case project.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldRepoURL) {
		fields = append(fields, project.FieldRepoURL)
	}
	if m.FieldCleared(project.FieldSettings) {
		fields = append(fields, project.FieldSettings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldRepoURL:
		m.ClearRepoURL()
		return nil
	case project.FieldSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldTenantID:
		m.ResetTenantID()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldRepoURL:
		m.ResetRepoURL()
		return nil
	case project.FieldDefaultBranch:
		m.ResetDefaultBranch()
		return nil
	case project.FieldSettings:
		m.ResetSettings()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tickets != nil {
		edges = append(edges, project.EdgeTickets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTickets:
		ids := make([]ent.Value, 0, len(m.tickets))
		for id := range m.tickets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtickets != nil {
		edges = append(edges, project.EdgeTickets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTickets:
		ids := make([]ent.Value, 0, len(m.removedtickets))
		for id := range m.removedtickets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtickets {
		edges = append(edges, project.EdgeTickets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeTickets:
		return m.clearedtickets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeTickets:
		m.ResetTickets()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// TicketMutation represents an operation that mutates the Ticket nodes in the graph.
type TicketMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	build_id            *string
	title               *string
	description         *string
	acceptance_criteria *string
	state               *ticket.State
	depends_on          *[]string
	appenddepends_on    []string
	assignee_id         *string
	assignee_type       *ticket.AssigneeType
	vm_id               *string
	engine_id           *string
	execution_mode      *ticket.ExecutionMode
	workflow_id         *string
	size                *ticket.Size
	branch_name         *string
	pr_url              *string
	retry_count         *int
	addretry_count      *int
	rejection_count     *int
	addrejection_count  *int
	retry_strategy      *map[string]interface{}
	verification_status *ticket.VerificationStatus
	hold_reason         *string
	error               *string
	inputs              *map[string]interface{}
	outputs             *map[string]interface{}
	metadata            *map[string]interface{}
	started_at          *time.Time
	completed_at        *time.Time
	last_heartbeat      *time.Time
	lease_expires       *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	project             *string
	clearedproject      bool
	artifacts           map[string]struct{}
	removedartifacts    map[string]struct{}
	clearedartifacts    bool
	events              map[string]struct{}
	removedevents       map[string]struct{}
	clearedevents       bool
	done                bool
	oldValue            func(context.Context) (*Ticket, error)
	predicates          []predicate.Ticket
}

var _ ent.Mutation = (*TicketMutation)(nil)

// ticketOption allows management of the mutation configuration using functional options.
type ticketOption func(*TicketMutation)

// newTicketMutation creates new mutation for the Ticket entity.
func newTicketMutation(c config, op Op, opts ...ticketOption) *TicketMutation {
	m := &TicketMutation{
		config:        c,
		op:            op,
		typ:           TypeTicket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketID sets the ID field of the mutation.
func withTicketID(id string) ticketOption {
	return func(m *TicketMutation) {
		var (
			err   error
			once  sync.Once
			value *Ticket
		)
		m.oldValue = func(ctx context.Context) (*Ticket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Ticket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicket sets the old Ticket of the mutation.
func withTicket(node *Ticket) ticketOption {
	return func(m *TicketMutation) {
		m.oldValue = func(context.Context) (*Ticket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Ticket entities.
func (m *TicketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Ticket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TicketMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TicketMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TicketMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *TicketMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TicketMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TicketMutation) ResetProjectID() {
	m.project = nil
}

// SetBuildID sets the "build_id" field.
func (m *TicketMutation) SetBuildID(s string) {
	m.build_id = &s
}

// BuildID returns the value of the "build_id" field in the mutation.
func (m *TicketMutation) BuildID() (r string, exists bool) {
	v := m.build_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildID returns the old "build_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldBuildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildID: %w", err)
	}
	return oldValue.BuildID, nil
}

// ClearBuildID clears the value of the "build_id" field.
func (m *TicketMutation) ClearBuildID() {
	m.build_id = nil
	m.clearedFields[ticket.FieldBuildID] = struct{}{}
}

// BuildIDCleared returns if the "build_id" field was cleared in this mutation.
func (m *TicketMutation) BuildIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldBuildID]
	return ok
}

// ResetBuildID resets all changes to the "build_id" field.
func (m *TicketMutation) ResetBuildID() {
	m.build_id = nil
	delete(m.clearedFields, ticket.FieldBuildID)
}

// SetTitle sets the "title" field.
func (m *TicketMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TicketMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TicketMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TicketMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TicketMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldDescription(ctx context.Context) (v string, err error) {
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
func (m *TicketMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[ticket.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TicketMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[ticket.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TicketMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, ticket.FieldDescription)
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (m *TicketMutation) SetAcceptanceCriteria(s string) {
	m.acceptance_criteria = &s
}

// AcceptanceCriteria returns the value of the "acceptance_criteria" field in the mutation.
func (m *TicketMutation) AcceptanceCriteria() (r string, exists bool) {
	v := m.acceptance_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptanceCriteria returns the old "acceptance_criteria" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldAcceptanceCriteria(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptanceCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptanceCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptanceCriteria: %w", err)
	}
	return oldValue.AcceptanceCriteria, nil
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (m *TicketMutation) ClearAcceptanceCriteria() {
	m.acceptance_criteria = nil
	m.clearedFields[ticket.FieldAcceptanceCriteria] = struct{}{}
}

// AcceptanceCriteriaCleared returns if the "acceptance_criteria" field was cleared in this mutation.
func (m *TicketMutation) AcceptanceCriteriaCleared() bool {
	_, ok := m.clearedFields[ticket.FieldAcceptanceCriteria]
	return ok
}

// ResetAcceptanceCriteria resets all changes to the "acceptance_criteria" field.
func (m *TicketMutation) ResetAcceptanceCriteria() {
	m.acceptance_criteria = nil
	delete(m.clearedFields, ticket.FieldAcceptanceCriteria)
}

// SetState sets the "state" field.
func (m *TicketMutation) SetState(t ticket.State) {
	m.state = &t
}

// State returns the value of the "state" field in the mutation.
func (m *TicketMutation) State() (r ticket.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldState(ctx context.Context) (v ticket.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *TicketMutation) ResetState() {
	m.state = nil
}

// SetDependsOn sets the "depends_on" field.
func (m *TicketMutation) SetDependsOn(s []string) {
	m.depends_on = &s
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *TicketMutation) DependsOn() (r []string, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldDependsOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds s to the "depends_on" field.
func (m *TicketMutation) AppendDependsOn(s []string) {
	m.appenddepends_on = append(m.appenddepends_on, s...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *TicketMutation) AppendedDependsOn() ([]string, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ClearDependsOn clears the value of the "depends_on" field.
func (m *TicketMutation) ClearDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	m.clearedFields[ticket.FieldDependsOn] = struct{}{}
}

// DependsOnCleared returns if the "depends_on" field was cleared in this mutation.
func (m *TicketMutation) DependsOnCleared() bool {
	_, ok := m.clearedFields[ticket.FieldDependsOn]
	return ok
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *TicketMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	delete(m.clearedFields, ticket.FieldDependsOn)
}

// SetAssigneeID sets the "assignee_id" field.
func (m *TicketMutation) SetAssigneeID(s string) {
	m.assignee_id = &s
}

// AssigneeID returns the value of the "assignee_id" field in the mutation.
func (m *TicketMutation) AssigneeID() (r string, exists bool) {
	v := m.assignee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeID returns the old "assignee_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldAssigneeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeID: %w", err)
	}
	return oldValue.AssigneeID, nil
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (m *TicketMutation) ClearAssigneeID() {
	m.assignee_id = nil
	m.clearedFields[ticket.FieldAssigneeID] = struct{}{}
}

// AssigneeIDCleared returns if the "assignee_id" field was cleared in this mutation.
func (m *TicketMutation) AssigneeIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldAssigneeID]
	return ok
}

// ResetAssigneeID resets all changes to the "assignee_id" field.
func (m *TicketMutation) ResetAssigneeID() {
	m.assignee_id = nil
	delete(m.clearedFields, ticket.FieldAssigneeID)
}

// SetAssigneeType sets the "assignee_type" field.
func (m *TicketMutation) SetAssigneeType(tt ticket.AssigneeType) {
	m.assignee_type = &tt
}

// AssigneeType returns the value of the "assignee_type" field in the mutation.
func (m *TicketMutation) AssigneeType() (r ticket.AssigneeType, exists bool) {
	v := m.assignee_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeType returns the old "assignee_type" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldAssigneeType(ctx context.Context) (v *ticket.AssigneeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeType: %w", err)
	}
	return oldValue.AssigneeType, nil
}

// ClearAssigneeType clears the value of the "assignee_type" field.
func (m *TicketMutation) ClearAssigneeType() {
	m.assignee_type = nil
	m.clearedFields[ticket.FieldAssigneeType] = struct{}{}
}

// AssigneeTypeCleared returns if the "assignee_type" field was cleared in this mutation.
func (m *TicketMutation) AssigneeTypeCleared() bool {
	_, ok := m.clearedFields[ticket.FieldAssigneeType]
	return ok
}

// ResetAssigneeType resets all changes to the "assignee_type" field.
func (m *TicketMutation) ResetAssigneeType() {
	m.assignee_type = nil
	delete(m.clearedFields, ticket.FieldAssigneeType)
}

// SetVMID sets the "vm_id" field.
func (m *TicketMutation) SetVMID(s string) {
	m.vm_id = &s
}

// VMID returns the value of the "vm_id" field in the mutation.
func (m *TicketMutation) VMID() (r string, exists bool) {
	v := m.vm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVMID returns the old "vm_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldVMID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVMID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVMID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVMID: %w", err)
	}
	return oldValue.VMID, nil
}

// ClearVMID clears the value of the "vm_id" field.
func (m *TicketMutation) ClearVMID() {
	m.vm_id = nil
	m.clearedFields[ticket.FieldVMID] = struct{}{}
}

// VMIDCleared returns if the "vm_id" field was cleared in this mutation.
func (m *TicketMutation) VMIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldVMID]
	return ok
}

// ResetVMID resets all changes to the "vm_id" field.
func (m *TicketMutation) ResetVMID() {
	m.vm_id = nil
	delete(m.clearedFields, ticket.FieldVMID)
}

// SetEngineID sets the "engine_id" field.
func (m *TicketMutation) SetEngineID(s string) {
	m.engine_id = &s
}

// EngineID returns the value of the "engine_id" field in the mutation.
func (m *TicketMutation) EngineID() (r string, exists bool) {
	v := m.engine_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineID returns the old "engine_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldEngineID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineID: %w", err)
	}
	return oldValue.EngineID, nil
}

// ClearEngineID clears the value of the "engine_id" field.
func (m *TicketMutation) ClearEngineID() {
	m.engine_id = nil
	m.clearedFields[ticket.FieldEngineID] = struct{}{}
}

// EngineIDCleared returns if the "engine_id" field was cleared in this mutation.
func (m *TicketMutation) EngineIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldEngineID]
	return ok
}

// ResetEngineID resets all changes to the "engine_id" field.
func (m *TicketMutation) ResetEngineID() {
	m.engine_id = nil
	delete(m.clearedFields, ticket.FieldEngineID)
}

// SetExecutionMode sets the "execution_mode" field.
func (m *TicketMutation) SetExecutionMode(tm ticket.ExecutionMode) {
	m.execution_mode = &tm
}

// ExecutionMode returns the value of the "execution_mode" field in the mutation.
func (m *TicketMutation) ExecutionMode() (r ticket.ExecutionMode, exists bool) {
	v := m.execution_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionMode returns the old "execution_mode" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldExecutionMode(ctx context.Context) (v ticket.ExecutionMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionMode: %w", err)
	}
	return oldValue.ExecutionMode, nil
}

// ResetExecutionMode resets all changes to the "execution_mode" field.
func (m *TicketMutation) ResetExecutionMode() {
	m.execution_mode = nil
}

// SetWorkflowID sets the "workflow_id" field.
func (m *TicketMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *TicketMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldWorkflowID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (m *TicketMutation) ClearWorkflowID() {
	m.workflow_id = nil
	m.clearedFields[ticket.FieldWorkflowID] = struct{}{}
}

// WorkflowIDCleared returns if the "workflow_id" field was cleared in this mutation.
func (m *TicketMutation) WorkflowIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldWorkflowID]
	return ok
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *TicketMutation) ResetWorkflowID() {
	m.workflow_id = nil
	delete(m.clearedFields, ticket.FieldWorkflowID)
}

// SetSize sets the "size" field.
func (m *TicketMutation) SetSize(t ticket.Size) {
	m.size = &t
}

// Size returns the value of the "size" field in the mutation.
func (m *TicketMutation) Size() (r ticket.Size, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldSize(ctx context.Context) (v ticket.Size, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// ResetSize resets all changes to the "size" field.
func (m *TicketMutation) ResetSize() {
	m.size = nil
}

// SetBranchName sets the "branch_name" field.
func (m *TicketMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *TicketMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldBranchName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ClearBranchName clears the value of the "branch_name" field.
func (m *TicketMutation) ClearBranchName() {
	m.branch_name = nil
	m.clearedFields[ticket.FieldBranchName] = struct{}{}
}

// BranchNameCleared returns if the "branch_name" field was cleared in this mutation.
func (m *TicketMutation) BranchNameCleared() bool {
	_, ok := m.clearedFields[ticket.FieldBranchName]
	return ok
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *TicketMutation) ResetBranchName() {
	m.branch_name = nil
	delete(m.clearedFields, ticket.FieldBranchName)
}

// SetPrURL sets the "pr_url" field.
func (m *TicketMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *TicketMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldPrURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *TicketMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[ticket.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *TicketMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[ticket.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *TicketMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, ticket.FieldPrURL)
}

// SetRetryCount sets the "retry_count" field.
func (m *TicketMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TicketMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TicketMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TicketMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TicketMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetRejectionCount sets the "rejection_count" field.
func (m *TicketMutation) SetRejectionCount(i int) {
	m.rejection_count = &i
	m.addrejection_count = nil
}

// RejectionCount returns the value of the "rejection_count" field in the mutation.
func (m *TicketMutation) RejectionCount() (r int, exists bool) {
	v := m.rejection_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionCount returns the old "rejection_count" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldRejectionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionCount: %w", err)
	}
	return oldValue.RejectionCount, nil
}

// AddRejectionCount adds i to the "rejection_count" field.
func (m *TicketMutation) AddRejectionCount(i int) {
	if m.addrejection_count != nil {
		*m.addrejection_count += i
	} else {
		m.addrejection_count = &i
	}
}

// AddedRejectionCount returns the value that was added to the "rejection_count" field in this mutation.
func (m *TicketMutation) AddedRejectionCount() (r int, exists bool) {
	v := m.addrejection_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRejectionCount resets all changes to the "rejection_count" field.
func (m *TicketMutation) ResetRejectionCount() {
	m.rejection_count = nil
	m.addrejection_count = nil
}

// SetRetryStrategy sets the "retry_strategy" field.
func (m *TicketMutation) SetRetryStrategy(value map[string]interface{}) {
	m.retry_strategy = &value
}

// RetryStrategy returns the value of the "retry_strategy" field in the mutation.
func (m *TicketMutation) RetryStrategy() (r map[string]interface{}, exists bool) {
	v := m.retry_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryStrategy returns the old "retry_strategy" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldRetryStrategy(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryStrategy: %w", err)
	}
	return oldValue.RetryStrategy, nil
}

// ClearRetryStrategy clears the value of the "retry_strategy" field.
func (m *TicketMutation) ClearRetryStrategy() {
	m.retry_strategy = nil
	m.clearedFields[ticket.FieldRetryStrategy] = struct{}{}
}

// RetryStrategyCleared returns if the "retry_strategy" field was cleared in this mutation.
func (m *TicketMutation) RetryStrategyCleared() bool {
	_, ok := m.clearedFields[ticket.FieldRetryStrategy]
	return ok
}

// ResetRetryStrategy resets all changes to the "retry_strategy" field.
func (m *TicketMutation) ResetRetryStrategy() {
	m.retry_strategy = nil
	delete(m.clearedFields, ticket.FieldRetryStrategy)
}

// SetVerificationStatus sets the "verification_status" field.
func (m *TicketMutation) SetVerificationStatus(ts ticket.VerificationStatus) {
	m.verification_status = &ts
}

// VerificationStatus returns the value of the "verification_status" field in the mutation.
func (m *TicketMutation) VerificationStatus() (r ticket.VerificationStatus, exists bool) {
	v := m.verification_status
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationStatus returns the old "verification_status" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldVerificationStatus(ctx context.Context) (v *ticket.VerificationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationStatus: %w", err)
	}
	return oldValue.VerificationStatus, nil
}

// ClearVerificationStatus clears the value of the "verification_status" field.
func (m *TicketMutation) ClearVerificationStatus() {
	m.verification_status = nil
	m.clearedFields[ticket.FieldVerificationStatus] = struct{}{}
}

// VerificationStatusCleared returns if the "verification_status" field was cleared in this mutation.
func (m *TicketMutation) VerificationStatusCleared() bool {
	_, ok := m.clearedFields[ticket.FieldVerificationStatus]
	return ok
}

// ResetVerificationStatus resets all changes to the "verification_status" field.
func (m *TicketMutation) ResetVerificationStatus() {
	m.verification_status = nil
	delete(m.clearedFields, ticket.FieldVerificationStatus)
}

// SetHoldReason sets the "hold_reason" field.
func (m *TicketMutation) SetHoldReason(s string) {
	m.hold_reason = &s
}

// HoldReason returns the value of the "hold_reason" field in the mutation.
func (m *TicketMutation) HoldReason() (r string, exists bool) {
	v := m.hold_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldHoldReason returns the old "hold_reason" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldHoldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHoldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHoldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHoldReason: %w", err)
	}
	return oldValue.HoldReason, nil
}

// ClearHoldReason clears the value of the "hold_reason" field.
func (m *TicketMutation) ClearHoldReason() {
	m.hold_reason = nil
	m.clearedFields[ticket.FieldHoldReason] = struct{}{}
}

// HoldReasonCleared returns if the "hold_reason" field was cleared in this mutation.
func (m *TicketMutation) HoldReasonCleared() bool {
	_, ok := m.clearedFields[ticket.FieldHoldReason]
	return ok
}

// ResetHoldReason resets all changes to the "hold_reason" field.
func (m *TicketMutation) ResetHoldReason() {
	m.hold_reason = nil
	delete(m.clearedFields, ticket.FieldHoldReason)
}

// SetError sets the "error" field.
func (m *TicketMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *TicketMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *TicketMutation) ClearError() {
	m.error = nil
	m.clearedFields[ticket.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *TicketMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[ticket.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *TicketMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, ticket.FieldError)
}

// SetInputs sets the "inputs" field.
func (m *TicketMutation) SetInputs(value map[string]interface{}) {
	m.inputs = &value
}

// Inputs returns the value of the "inputs" field in the mutation.
func (m *TicketMutation) Inputs() (r map[string]interface{}, exists bool) {
	v := m.inputs
	if v == nil {
		return
	}
	return *v, true
}

// OldInputs returns the old "inputs" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldInputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputs: %w", err)
	}
	return oldValue.Inputs, nil
}

// ClearInputs clears the value of the "inputs" field.
func (m *TicketMutation) ClearInputs() {
	m.inputs = nil
	m.clearedFields[ticket.FieldInputs] = struct{}{}
}

// InputsCleared returns if the "inputs" field was cleared in this mutation.
func (m *TicketMutation) InputsCleared() bool {
	_, ok := m.clearedFields[ticket.FieldInputs]
	return ok
}

// ResetInputs resets all changes to the "inputs" field.
func (m *TicketMutation) ResetInputs() {
	m.inputs = nil
	delete(m.clearedFields, ticket.FieldInputs)
}

// SetOutputs sets the "outputs" field.
func (m *TicketMutation) SetOutputs(value map[string]interface{}) {
	m.outputs = &value
}

// Outputs returns the value of the "outputs" field in the mutation.
func (m *TicketMutation) Outputs() (r map[string]interface{}, exists bool) {
	v := m.outputs
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputs returns the old "outputs" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldOutputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputs: %w", err)
	}
	return oldValue.Outputs, nil
}

// ClearOutputs clears the value of the "outputs" field.
func (m *TicketMutation) ClearOutputs() {
	m.outputs = nil
	m.clearedFields[ticket.FieldOutputs] = struct{}{}
}

// OutputsCleared returns if the "outputs" field was cleared in this mutation.
func (m *TicketMutation) OutputsCleared() bool {
	_, ok := m.clearedFields[ticket.FieldOutputs]
	return ok
}

// ResetOutputs resets all changes to the "outputs" field.
func (m *TicketMutation) ResetOutputs() {
	m.outputs = nil
	delete(m.clearedFields, ticket.FieldOutputs)
}

// SetMetadata sets the "metadata" field.
func (m *TicketMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *TicketMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *TicketMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[ticket.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *TicketMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[ticket.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *TicketMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, ticket.FieldMetadata)
}

// SetStartedAt sets the "started_at" field.
func (m *TicketMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TicketMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *TicketMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[ticket.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TicketMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[ticket.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TicketMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, ticket.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TicketMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TicketMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *TicketMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[ticket.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TicketMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[ticket.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TicketMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, ticket.FieldCompletedAt)
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *TicketMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *TicketMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *TicketMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[ticket.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *TicketMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[ticket.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *TicketMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, ticket.FieldLastHeartbeat)
}

// SetLeaseExpires sets the "lease_expires" field.
func (m *TicketMutation) SetLeaseExpires(t time.Time) {
	m.lease_expires = &t
}

// LeaseExpires returns the value of the "lease_expires" field in the mutation.
func (m *TicketMutation) LeaseExpires() (r time.Time, exists bool) {
	v := m.lease_expires
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpires returns the old "lease_expires" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldLeaseExpires(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpires is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpires requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpires: %w", err)
	}
	return oldValue.LeaseExpires, nil
}

// ClearLeaseExpires clears the value of the "lease_expires" field.
func (m *TicketMutation) ClearLeaseExpires() {
	m.lease_expires = nil
	m.clearedFields[ticket.FieldLeaseExpires] = struct{}{}
}

// LeaseExpiresCleared returns if the "lease_expires" field was cleared in this mutation.
func (m *TicketMutation) LeaseExpiresCleared() bool {
	_, ok := m.clearedFields[ticket.FieldLeaseExpires]
	return ok
}

// ResetLeaseExpires resets all changes to the "lease_expires" field.
func (m *TicketMutation) ResetLeaseExpires() {
	m.lease_expires = nil
	delete(m.clearedFields, ticket.FieldLeaseExpires)
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TicketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TicketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TicketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TicketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TicketMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[ticket.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TicketMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TicketMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TicketMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddArtifactIDs adds the "artifacts" edge to the TicketArtifact entity by ids.
func (m *TicketMutation) AddArtifactIDs(ids ...string) {
	if m.artifacts == nil {
		m.artifacts = make(map[string]struct{})
	}
	for i := range ids {
		m.artifacts[ids[i]] = struct{}{}
	}
}

// ClearArtifacts clears the "artifacts" edge to the TicketArtifact entity.
func (m *TicketMutation) ClearArtifacts() {
	m.clearedartifacts = true
}

// ArtifactsCleared reports if the "artifacts" edge to the TicketArtifact entity was cleared.
func (m *TicketMutation) ArtifactsCleared() bool {
	return m.clearedartifacts
}

// RemoveArtifactIDs removes the "artifacts" edge to the TicketArtifact entity by IDs.
func (m *TicketMutation) RemoveArtifactIDs(ids ...string) {
	if m.removedartifacts == nil {
		m.removedartifacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.artifacts, ids[i])
		m.removedartifacts[ids[i]] = struct{}{}
	}
}

// RemovedArtifacts returns the removed IDs of the "artifacts" edge to the TicketArtifact entity.
func (m *TicketMutation) RemovedArtifactsIDs() (ids []string) {
	for id := range m.removedartifacts {
		ids = append(ids, id)
	}
	return
}

// ArtifactsIDs returns the "artifacts" edge IDs in the mutation.
func (m *TicketMutation) ArtifactsIDs() (ids []string) {
	for id := range m.artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetArtifacts resets all changes to the "artifacts" edge.
func (m *TicketMutation) ResetArtifacts() {
	m.artifacts = nil
	m.clearedartifacts = false
	m.removedartifacts = nil
}

// AddEventIDs adds the "events" edge to the TicketEvent entity by ids.
func (m *TicketMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the TicketEvent entity.
func (m *TicketMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the TicketEvent entity was cleared.
func (m *TicketMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the TicketEvent entity by IDs.
func (m *TicketMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the TicketEvent entity.
func (m *TicketMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *TicketMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *TicketMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the TicketMutation builder.
func (m *TicketMutation) Where(ps ...predicate.Ticket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Ticket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Ticket).
func (m *TicketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketMutation) Fields() []string {
	fields := make([]string, 0, 32)
	if m.tenant_id != nil {
		fields = append(fields, ticket.FieldTenantID)
	}
	if m.project != nil {
		fields = append(fields, ticket.FieldProjectID)
	}
	if m.build_id != nil {
		fields = append(fields, ticket.FieldBuildID)
	}
	if m.title != nil {
		fields = append(fields, ticket.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, ticket.FieldDescription)
	}
	if m.acceptance_criteria != nil {
		fields = append(fields, ticket.FieldAcceptanceCriteria)
	}
	if m.state != nil {
		fields = append(fields, ticket.FieldState)
	}
	if m.depends_on != nil {
		fields = append(fields, ticket.FieldDependsOn)
	}
	if m.assignee_id != nil {
		fields = append(fields, ticket.FieldAssigneeID)
	}
	if m.assignee_type != nil {
		fields = append(fields, ticket.FieldAssigneeType)
	}
	if m.vm_id != nil {
		fields = append(fields, ticket.FieldVMID)
	}
	if m.engine_id != nil {
		fields = append(fields, ticket.FieldEngineID)
	}
	if m.execution_mode != nil {
		fields = append(fields, ticket.FieldExecutionMode)
	}
	if m.workflow_id != nil {
		fields = append(fields, ticket.FieldWorkflowID)
	}
	if m.size != nil {
		fields = append(fields, ticket.FieldSize)
	}
	if m.branch_name != nil {
		fields = append(fields, ticket.FieldBranchName)
	}
	if m.pr_url != nil {
		fields = append(fields, ticket.FieldPrURL)
	}
	if m.retry_count != nil {
		fields = append(fields, ticket.FieldRetryCount)
	}
	if m.rejection_count != nil {
		fields = append(fields, ticket.FieldRejectionCount)
	}
	if m.retry_strategy != nil {
		fields = append(fields, ticket.FieldRetryStrategy)
	}
	if m.verification_status != nil {
		fields = append(fields, ticket.FieldVerificationStatus)
	}
	if m.hold_reason != nil {
		fields = append(fields, ticket.FieldHoldReason)
	}
	if m.error != nil {
		fields = append(fields, ticket.FieldError)
	}
	if m.inputs != nil {
		fields = append(fields, ticket.FieldInputs)
	}
	if m.outputs != nil {
		fields = append(fields, ticket.FieldOutputs)
	}
	if m.metadata != nil {
		fields = append(fields, ticket.FieldMetadata)
	}
	if m.started_at != nil {
		fields = append(fields, ticket.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, ticket.FieldCompletedAt)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, ticket.FieldLastHeartbeat)
	}
	if m.lease_expires != nil {
		fields = append(fields, ticket.FieldLeaseExpires)
	}
	if m.created_at != nil {
		fields = append(fields, ticket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ticket.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldTenantID:
		return m.TenantID()
	case ticket.FieldProjectID:
		return m.ProjectID()
	case ticket.FieldBuildID:
		return m.BuildID()
	case ticket.FieldTitle:
		return m.Title()
	case ticket.FieldDescription:
		return m.Description()
	case ticket.FieldAcceptanceCriteria:
		return m.AcceptanceCriteria()
	case ticket.FieldState:
		return m.State()
	case ticket.FieldDependsOn:
		return m.DependsOn()
	case ticket.FieldAssigneeID:
		return m.AssigneeID()
	case ticket.FieldAssigneeType:
		return m.AssigneeType()
	case ticket.FieldVMID:
		return m.VMID()
	case ticket.FieldEngineID:
		return m.EngineID()
	case ticket.FieldExecutionMode:
		return m.ExecutionMode()
	case ticket.FieldWorkflowID:
		return m.WorkflowID()
	case ticket.FieldSize:
		return m.Size()
	case ticket.FieldBranchName:
		return m.BranchName()
	case ticket.FieldPrURL:
		return m.PrURL()
	case ticket.FieldRetryCount:
		return m.RetryCount()
	case ticket.FieldRejectionCount:
		return m.RejectionCount()
	case ticket.FieldRetryStrategy:
		return m.RetryStrategy()
	case ticket.FieldVerificationStatus:
		return m.VerificationStatus()
	case ticket.FieldHoldReason:
		return m.HoldReason()
	case ticket.FieldError:
		return m.Error()
	case ticket.FieldInputs:
		return m.Inputs()
	case ticket.FieldOutputs:
		return m.Outputs()
	case ticket.FieldMetadata:
		return m.Metadata()
	case ticket.FieldStartedAt:
		return m.StartedAt()
	case ticket.FieldCompletedAt:
		return m.CompletedAt()
	case ticket.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case ticket.FieldLeaseExpires:
		return m.LeaseExpires()
	case ticket.FieldCreatedAt:
		return m.CreatedAt()
	case ticket.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticket.FieldTenantID:
		return m.OldTenantID(ctx)
	case ticket.FieldProjectID:
		return m.OldProjectID(ctx)
	case ticket.FieldBuildID:
		return m.OldBuildID(ctx)
	case ticket.FieldTitle:
		return m.OldTitle(ctx)
	case ticket.FieldDescription:
		return m.OldDescription(ctx)
	case ticket.FieldAcceptanceCriteria:
		return m.OldAcceptanceCriteria(ctx)
	case ticket.FieldState:
		return m.OldState(ctx)
	case ticket.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case ticket.FieldAssigneeID:
		return m.OldAssigneeID(ctx)
	case ticket.FieldAssigneeType:
		return m.OldAssigneeType(ctx)
	case ticket.FieldVMID:
		return m.OldVMID(ctx)
	case ticket.FieldEngineID:
		return m.OldEngineID(ctx)
	case ticket.FieldExecutionMode:
		return m.OldExecutionMode(ctx)
	case ticket.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case ticket.FieldSize:
		return m.OldSize(ctx)
	case ticket.FieldBranchName:
		return m.OldBranchName(ctx)
	case ticket.FieldPrURL:
		return m.OldPrURL(ctx)
	case ticket.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case ticket.FieldRejectionCount:
		return m.OldRejectionCount(ctx)
	case ticket.FieldRetryStrategy:
		return m.OldRetryStrategy(ctx)
	case ticket.FieldVerificationStatus:
		return m.OldVerificationStatus(ctx)
	case ticket.FieldHoldReason:
		return m.OldHoldReason(ctx)
	case ticket.FieldError:
		return m.OldError(ctx)
	case ticket.FieldInputs:
		return m.OldInputs(ctx)
	case ticket.FieldOutputs:
		return m.OldOutputs(ctx)
	case ticket.FieldMetadata:
		return m.OldMetadata(ctx)
	case ticket.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case ticket.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case ticket.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case ticket.FieldLeaseExpires:
		return m.OldLeaseExpires(ctx)
	case ticket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ticket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Ticket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case ticket.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case ticket.FieldBuildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildID(v)
		return nil
	case ticket.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case ticket.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case ticket.FieldAcceptanceCriteria:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptanceCriteria(v)
		return nil
	case ticket.FieldState:
		v, ok := value.(ticket.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case ticket.FieldDependsOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case ticket.FieldAssigneeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeID(v)
		return nil
	case ticket.FieldAssigneeType:
		v, ok := value.(ticket.AssigneeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeType(v)
		return nil
	case ticket.FieldVMID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVMID(v)
		return nil
	case ticket.FieldEngineID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineID(v)
		return nil
	case ticket.FieldExecutionMode:
		v, ok := value.(ticket.ExecutionMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionMode(v)
		return nil
	case ticket.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case ticket.FieldSize:
		v, ok := value.(ticket.Size)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case ticket.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case ticket.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case ticket.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case ticket.FieldRejectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionCount(v)
		return nil
	case ticket.FieldRetryStrategy:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryStrategy(v)
		return nil
	case ticket.FieldVerificationStatus:
		v, ok := value.(ticket.VerificationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationStatus(v)
		return nil
	case ticket.FieldHoldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHoldReason(v)
		return nil
	case ticket.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case ticket.FieldInputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputs(v)
		return nil
	case ticket.FieldOutputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputs(v)
		return nil
	case ticket.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case ticket.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case ticket.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case ticket.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case ticket.FieldLeaseExpires:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpires(v)
		return nil
	case ticket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ticket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, ticket.FieldRetryCount)
	}
	if m.addrejection_count != nil {
		fields = append(fields, ticket.FieldRejectionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldRetryCount:
		return m.AddedRetryCount()
	case ticket.FieldRejectionCount:
		return m.AddedRejectionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case ticket.FieldRejectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRejectionCount(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticket.FieldBuildID) {
		fields = append(fields, ticket.FieldBuildID)
	}
	if m.FieldCleared(ticket.FieldDescription) {
		fields = append(fields, ticket.FieldDescription)
	}
	if m.FieldCleared(ticket.FieldAcceptanceCriteria) {
		fields = append(fields, ticket.FieldAcceptanceCriteria)
	}
	if m.FieldCleared(ticket.FieldDependsOn) {
		fields = append(fields, ticket.FieldDependsOn)
	}
	if m.FieldCleared(ticket.FieldAssigneeID) {
		fields = append(fields, ticket.FieldAssigneeID)
	}
	if m.FieldCleared(ticket.FieldAssigneeType) {
		fields = append(fields, ticket.FieldAssigneeType)
	}
	if m.FieldCleared(ticket.FieldVMID) {
		fields = append(fields, ticket.FieldVMID)
	}
	if m.FieldCleared(ticket.FieldEngineID) {
		fields = append(fields, ticket.FieldEngineID)
	}
	if m.FieldCleared(ticket.FieldWorkflowID) {
		fields = append(fields, ticket.FieldWorkflowID)
	}
	if m.FieldCleared(ticket.FieldBranchName) {
		fields = append(fields, ticket.FieldBranchName)
	}
	if m.FieldCleared(ticket.FieldPrURL) {
		fields = append(fields, ticket.FieldPrURL)
	}
	if m.FieldCleared(ticket.FieldRetryStrategy) {
		fields = append(fields, ticket.FieldRetryStrategy)
	}
	if m.FieldCleared(ticket.FieldVerificationStatus) {
		fields = append(fields, ticket.FieldVerificationStatus)
	}
	if m.FieldCleared(ticket.FieldHoldReason) {
		fields = append(fields, ticket.FieldHoldReason)
	}
	if m.FieldCleared(ticket.FieldError) {
		fields = append(fields, ticket.FieldError)
	}
	if m.FieldCleared(ticket.FieldInputs) {
		fields = append(fields, ticket.FieldInputs)
	}
	if m.FieldCleared(ticket.FieldOutputs) {
		fields = append(fields, ticket.FieldOutputs)
	}
	if m.FieldCleared(ticket.FieldMetadata) {
		fields = append(fields, ticket.FieldMetadata)
	}
	if m.FieldCleared(ticket.FieldStartedAt) {
		fields = append(fields, ticket.FieldStartedAt)
	}
	if m.FieldCleared(ticket.FieldCompletedAt) {
		fields = append(fields, ticket.FieldCompletedAt)
	}
	if m.FieldCleared(ticket.FieldLastHeartbeat) {
		fields = append(fields, ticket.FieldLastHeartbeat)
	}
	if m.FieldCleared(ticket.FieldLeaseExpires) {
		fields = append(fields, ticket.FieldLeaseExpires)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketMutation) ClearField(name string) error {
	switch name {
	case ticket.FieldBuildID:
		m.ClearBuildID()
		return nil
	case ticket.FieldDescription:
		m.ClearDescription()
		return nil
	case ticket.FieldAcceptanceCriteria:
		m.ClearAcceptanceCriteria()
		return nil
	case ticket.FieldDependsOn:
		m.ClearDependsOn()
		return nil
	case ticket.FieldAssigneeID:
		m.ClearAssigneeID()
		return nil
	case ticket.FieldAssigneeType:
		m.ClearAssigneeType()
		return nil
	case ticket.FieldVMID:
		m.ClearVMID()
		return nil
	case ticket.FieldEngineID:
		m.ClearEngineID()
		return nil
	case ticket.FieldWorkflowID:
		m.ClearWorkflowID()
		return nil
	case ticket.FieldBranchName:
		m.ClearBranchName()
		return nil
	case ticket.FieldPrURL:
		m.ClearPrURL()
		return nil
	case ticket.FieldRetryStrategy:
		m.ClearRetryStrategy()
		return nil
	case ticket.FieldVerificationStatus:
		m.ClearVerificationStatus()
		return nil
	case ticket.FieldHoldReason:
		m.ClearHoldReason()
		return nil
	case ticket.FieldError:
		m.ClearError()
		return nil
	case ticket.FieldInputs:
		m.ClearInputs()
		return nil
	case ticket.FieldOutputs:
		m.ClearOutputs()
		return nil
	case ticket.FieldMetadata:
		m.ClearMetadata()
		return nil
	case ticket.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case ticket.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case ticket.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	case ticket.FieldLeaseExpires:
		m.ClearLeaseExpires()
		return nil
	}
	return fmt.Errorf("unknown Ticket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketMutation) ResetField(name string) error {
	switch name {
	case ticket.FieldTenantID:
		m.ResetTenantID()
		return nil
	case ticket.FieldProjectID:
		m.ResetProjectID()
		return nil
	case ticket.FieldBuildID:
		m.ResetBuildID()
		return nil
	case ticket.FieldTitle:
		m.ResetTitle()
		return nil
	case ticket.FieldDescription:
		m.ResetDescription()
		return nil
	case ticket.FieldAcceptanceCriteria:
		m.ResetAcceptanceCriteria()
		return nil
	case ticket.FieldState:
		m.ResetState()
		return nil
	case ticket.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case ticket.FieldAssigneeID:
		m.ResetAssigneeID()
		return nil
	case ticket.FieldAssigneeType:
		m.ResetAssigneeType()
		return nil
	case ticket.FieldVMID:
		m.ResetVMID()
		return nil
	case ticket.FieldEngineID:
		m.ResetEngineID()
		return nil
	case ticket.FieldExecutionMode:
		m.ResetExecutionMode()
		return nil
	case ticket.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case ticket.FieldSize:
		m.ResetSize()
		return nil
	case ticket.FieldBranchName:
		m.ResetBranchName()
		return nil
	case ticket.FieldPrURL:
		m.ResetPrURL()
		return nil
	case ticket.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case ticket.FieldRejectionCount:
		m.ResetRejectionCount()
		return nil
	case ticket.FieldRetryStrategy:
		m.ResetRetryStrategy()
		return nil
	case ticket.FieldVerificationStatus:
		m.ResetVerificationStatus()
		return nil
	case ticket.FieldHoldReason:
		m.ResetHoldReason()
		return nil
	case ticket.FieldError:
		m.ResetError()
		return nil
	case ticket.FieldInputs:
		m.ResetInputs()
		return nil
	case ticket.FieldOutputs:
		m.ResetOutputs()
		return nil
	case ticket.FieldMetadata:
		m.ResetMetadata()
		return nil
	case ticket.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case ticket.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case ticket.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case ticket.FieldLeaseExpires:
		m.ResetLeaseExpires()
		return nil
	case ticket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ticket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, ticket.EdgeProject)
	}
	if m.artifacts != nil {
		edges = append(edges, ticket.EdgeArtifacts)
	}
	if m.events != nil {
		edges = append(edges, ticket.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case ticket.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.artifacts))
		for id := range m.artifacts {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedartifacts != nil {
		edges = append(edges, ticket.EdgeArtifacts)
	}
	if m.removedevents != nil {
		edges = append(edges, ticket.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.removedartifacts))
		for id := range m.removedartifacts {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, ticket.EdgeProject)
	}
	if m.clearedartifacts {
		edges = append(edges, ticket.EdgeArtifacts)
	}
	if m.clearedevents {
		edges = append(edges, ticket.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketMutation) EdgeCleared(name string) bool {
	switch name {
	case ticket.EdgeProject:
		return m.clearedproject
	case ticket.EdgeArtifacts:
		return m.clearedartifacts
	case ticket.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketMutation) ClearEdge(name string) error {
	switch name {
	case ticket.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Ticket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketMutation) ResetEdge(name string) error {
	switch name {
	case ticket.EdgeProject:
		m.ResetProject()
		return nil
	case ticket.EdgeArtifacts:
		m.ResetArtifacts()
		return nil
	case ticket.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Ticket edge %s", name)
}

// TicketArtifactMutation represents an operation that mutates the TicketArtifact nodes in the graph.
type TicketArtifactMutation struct {
	config
	op            Op
	typ           string
	id            *string
	kind          *ticketartifact.Kind
	attempt       *int
	addattempt    *int
	content       *string
	metadata      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	ticket        *string
	clearedticket bool
	done          bool
	oldValue      func(context.Context) (*TicketArtifact, error)
	predicates    []predicate.TicketArtifact
}

var _ ent.Mutation = (*TicketArtifactMutation)(nil)

// ticketartifactOption allows management of the mutation configuration using functional options.
type ticketartifactOption func(*TicketArtifactMutation)

// newTicketArtifactMutation creates new mutation for the TicketArtifact entity.
func newTicketArtifactMutation(c config, op Op, opts ...ticketartifactOption) *TicketArtifactMutation {
	m := &TicketArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeTicketArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketArtifactID sets the ID field of the mutation.
func withTicketArtifactID(id string) ticketartifactOption {
	return func(m *TicketArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *TicketArtifact
		)
		m.oldValue = func(ctx context.Context) (*TicketArtifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TicketArtifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicketArtifact sets the old TicketArtifact of the mutation.
func withTicketArtifact(node *TicketArtifact) ticketartifactOption {
	return func(m *TicketArtifactMutation) {
		m.oldValue = func(context.Context) (*TicketArtifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TicketArtifact entities.
func (m *TicketArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TicketArtifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *TicketArtifactMutation) SetTicketID(s string) {
	m.ticket = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *TicketArtifactMutation) TicketID() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the TicketArtifact entity.
// If the TicketArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketArtifactMutation) OldTicketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *TicketArtifactMutation) ResetTicketID() {
	m.ticket = nil
}

// SetKind sets the "kind" field.
func (m *TicketArtifactMutation) SetKind(t ticketartifact.Kind) {
	m.kind = &t
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TicketArtifactMutation) Kind() (r ticketartifact.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the TicketArtifact entity.
// If the TicketArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketArtifactMutation) OldKind(ctx context.Context) (v ticketartifact.Kind, err error) {
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
func (m *TicketArtifactMutation) ResetKind() {
	m.kind = nil
}

// SetAttempt sets the "attempt" field.
func (m *TicketArtifactMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *TicketArtifactMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the TicketArtifact entity.
// If the TicketArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketArtifactMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *TicketArtifactMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *TicketArtifactMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *TicketArtifactMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetContent sets the "content" field.
func (m *TicketArtifactMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *TicketArtifactMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the TicketArtifact entity.
// If the TicketArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketArtifactMutation) OldContent(ctx context.Context) (v string, err error) {
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
func (m *TicketArtifactMutation) ResetContent() {
	m.content = nil
}

// SetMetadata sets the "metadata" field.
func (m *TicketArtifactMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *TicketArtifactMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the TicketArtifact entity.
// If the TicketArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketArtifactMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *TicketArtifactMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[ticketartifact.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *TicketArtifactMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[ticketartifact.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *TicketArtifactMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, ticketartifact.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TicketArtifact entity.
// If the TicketArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TicketArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *TicketArtifactMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[ticketartifact.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *TicketArtifactMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *TicketArtifactMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *TicketArtifactMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the TicketArtifactMutation builder.
func (m *TicketArtifactMutation) Where(ps ...predicate.TicketArtifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TicketArtifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TicketArtifact).
func (m *TicketArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketArtifactMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.ticket != nil {
		fields = append(fields, ticketartifact.FieldTicketID)
	}
	if m.kind != nil {
		fields = append(fields, ticketartifact.FieldKind)
	}
	if m.attempt != nil {
		fields = append(fields, ticketartifact.FieldAttempt)
	}
	if m.content != nil {
		fields = append(fields, ticketartifact.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, ticketartifact.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, ticketartifact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticketartifact.FieldTicketID:
		return m.TicketID()
	case ticketartifact.FieldKind:
		return m.Kind()
	case ticketartifact.FieldAttempt:
		return m.Attempt()
	case ticketartifact.FieldContent:
		return m.Content()
	case ticketartifact.FieldMetadata:
		return m.Metadata()
	case ticketartifact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticketartifact.FieldTicketID:
		return m.OldTicketID(ctx)
	case ticketartifact.FieldKind:
		return m.OldKind(ctx)
	case ticketartifact.FieldAttempt:
		return m.OldAttempt(ctx)
	case ticketartifact.FieldContent:
		return m.OldContent(ctx)
	case ticketartifact.FieldMetadata:
		return m.OldMetadata(ctx)
	case ticketartifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TicketArtifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticketartifact.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case ticketartifact.FieldKind:
		v, ok := value.(ticketartifact.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case ticketartifact.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case ticketartifact.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case ticketartifact.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case ticketartifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TicketArtifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, ticketartifact.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ticketartifact.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ticketartifact.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown TicketArtifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticketartifact.FieldMetadata) {
		fields = append(fields, ticketartifact.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketArtifactMutation) ClearField(name string) error {
	switch name {
	case ticketartifact.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown TicketArtifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketArtifactMutation) ResetField(name string) error {
	switch name {
	case ticketartifact.FieldTicketID:
		m.ResetTicketID()
		return nil
	case ticketartifact.FieldKind:
		m.ResetKind()
		return nil
	case ticketartifact.FieldAttempt:
		m.ResetAttempt()
		return nil
	case ticketartifact.FieldContent:
		m.ResetContent()
		return nil
	case ticketartifact.FieldMetadata:
		m.ResetMetadata()
		return nil
	case ticketartifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TicketArtifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, ticketartifact.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticketartifact.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, ticketartifact.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case ticketartifact.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketArtifactMutation) ClearEdge(name string) error {
	switch name {
	case ticketartifact.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown TicketArtifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketArtifactMutation) ResetEdge(name string) error {
	switch name {
	case ticketartifact.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown TicketArtifact edge %s", name)
}

// TicketEventMutation represents an operation that mutates the TicketEvent nodes in the graph.
type TicketEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	kind          *ticketevent.Kind
	from_state    *string
	to_state      *string
	actor         *string
	message       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	ticket        *string
	clearedticket bool
	done          bool
	oldValue      func(context.Context) (*TicketEvent, error)
	predicates    []predicate.TicketEvent
}

var _ ent.Mutation = (*TicketEventMutation)(nil)

// ticketeventOption allows management of the mutation configuration using functional options.
type ticketeventOption func(*TicketEventMutation)

// newTicketEventMutation creates new mutation for the TicketEvent entity.
func newTicketEventMutation(c config, op Op, opts ...ticketeventOption) *TicketEventMutation {
	m := &TicketEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTicketEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketEventID sets the ID field of the mutation.
func withTicketEventID(id string) ticketeventOption {
	return func(m *TicketEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TicketEvent
		)
		m.oldValue = func(ctx context.Context) (*TicketEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TicketEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicketEvent sets the old TicketEvent of the mutation.
func withTicketEvent(node *TicketEvent) ticketeventOption {
	return func(m *TicketEventMutation) {
		m.oldValue = func(context.Context) (*TicketEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TicketEvent entities.
func (m *TicketEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TicketEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *TicketEventMutation) SetTicketID(s string) {
	m.ticket = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *TicketEventMutation) TicketID() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the TicketEvent entity.
// If the TicketEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketEventMutation) OldTicketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *TicketEventMutation) ResetTicketID() {
	m.ticket = nil
}

// SetKind sets the "kind" field.
func (m *TicketEventMutation) SetKind(t ticketevent.Kind) {
	m.kind = &t
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TicketEventMutation) Kind() (r ticketevent.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the TicketEvent entity.
// If the TicketEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketEventMutation) OldKind(ctx context.Context) (v ticketevent.Kind, err error) {
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
func (m *TicketEventMutation) ResetKind() {
	m.kind = nil
}

// SetFromState sets the "from_state" field.
func (m *TicketEventMutation) SetFromState(s string) {
	m.from_state = &s
}

// FromState returns the value of the "from_state" field in the mutation.
func (m *TicketEventMutation) FromState() (r string, exists bool) {
	v := m.from_state
	if v == nil {
		return
	}
	return *v, true
}

// OldFromState returns the old "from_state" field's value of the TicketEvent entity.
// If the TicketEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketEventMutation) OldFromState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromState: %w", err)
	}
	return oldValue.FromState, nil
}

// ClearFromState clears the value of the "from_state" field.
func (m *TicketEventMutation) ClearFromState() {
	m.from_state = nil
	m.clearedFields[ticketevent.FieldFromState] = struct{}{}
}

// FromStateCleared returns if the "from_state" field was cleared in this mutation.
func (m *TicketEventMutation) FromStateCleared() bool {
	_, ok := m.clearedFields[ticketevent.FieldFromState]
	return ok
}

// ResetFromState resets all changes to the "from_state" field.
func (m *TicketEventMutation) ResetFromState() {
	m.from_state = nil
	delete(m.clearedFields, ticketevent.FieldFromState)
}

// SetToState sets the "to_state" field.
func (m *TicketEventMutation) SetToState(s string) {
	m.to_state = &s
}

// ToState returns the value of the "to_state" field in the mutation.
func (m *TicketEventMutation) ToState() (r string, exists bool) {
	v := m.to_state
	if v == nil {
		return
	}
	return *v, true
}

// OldToState returns the old "to_state" field's value of the TicketEvent entity.
// If the TicketEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketEventMutation) OldToState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToState: %w", err)
	}
	return oldValue.ToState, nil
}

// ClearToState clears the value of the "to_state" field.
func (m *TicketEventMutation) ClearToState() {
	m.to_state = nil
	m.clearedFields[ticketevent.FieldToState] = struct{}{}
}

// ToStateCleared returns if the "to_state" field was cleared in this mutation.
func (m *TicketEventMutation) ToStateCleared() bool {
	_, ok := m.clearedFields[ticketevent.FieldToState]
	return ok
}

// ResetToState resets all changes to the "to_state" field.
func (m *TicketEventMutation) ResetToState() {
	m.to_state = nil
	delete(m.clearedFields, ticketevent.FieldToState)
}

// SetActor sets the "actor" field.
func (m *TicketEventMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *TicketEventMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the TicketEvent entity.
// If the TicketEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketEventMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *TicketEventMutation) ResetActor() {
	m.actor = nil
}

// SetMessage sets the "message" field.
func (m *TicketEventMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *TicketEventMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the TicketEvent entity.
// If the TicketEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketEventMutation) OldMessage(ctx context.Context) (v string, err error) {
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

// ClearMessage clears the value of the "message" field.
func (m *TicketEventMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[ticketevent.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *TicketEventMutation) MessageCleared() bool {
	_, ok := m.clearedFields[ticketevent.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *TicketEventMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, ticketevent.FieldMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TicketEvent entity.
// If the TicketEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TicketEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *TicketEventMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[ticketevent.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *TicketEventMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *TicketEventMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *TicketEventMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the TicketEventMutation builder.
func (m *TicketEventMutation) Where(ps ...predicate.TicketEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TicketEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TicketEvent).
func (m *TicketEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.ticket != nil {
		fields = append(fields, ticketevent.FieldTicketID)
	}
	if m.kind != nil {
		fields = append(fields, ticketevent.FieldKind)
	}
	if m.from_state != nil {
		fields = append(fields, ticketevent.FieldFromState)
	}
	if m.to_state != nil {
		fields = append(fields, ticketevent.FieldToState)
	}
	if m.actor != nil {
		fields = append(fields, ticketevent.FieldActor)
	}
	if m.message != nil {
		fields = append(fields, ticketevent.FieldMessage)
	}
	if m.created_at != nil {
		fields = append(fields, ticketevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticketevent.FieldTicketID:
		return m.TicketID()
	case ticketevent.FieldKind:
		return m.Kind()
	case ticketevent.FieldFromState:
		return m.FromState()
	case ticketevent.FieldToState:
		return m.ToState()
	case ticketevent.FieldActor:
		return m.Actor()
	case ticketevent.FieldMessage:
		return m.Message()
	case ticketevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticketevent.FieldTicketID:
		return m.OldTicketID(ctx)
	case ticketevent.FieldKind:
		return m.OldKind(ctx)
	case ticketevent.FieldFromState:
		return m.OldFromState(ctx)
	case ticketevent.FieldToState:
		return m.OldToState(ctx)
	case ticketevent.FieldActor:
		return m.OldActor(ctx)
	case ticketevent.FieldMessage:
		return m.OldMessage(ctx)
	case ticketevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TicketEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticketevent.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case ticketevent.FieldKind:
		v, ok := value.(ticketevent.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case ticketevent.FieldFromState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromState(v)
		return nil
	case ticketevent.FieldToState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToState(v)
		return nil
	case ticketevent.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case ticketevent.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case ticketevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TicketEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TicketEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticketevent.FieldFromState) {
		fields = append(fields, ticketevent.FieldFromState)
	}
	if m.FieldCleared(ticketevent.FieldToState) {
		fields = append(fields, ticketevent.FieldToState)
	}
	if m.FieldCleared(ticketevent.FieldMessage) {
		fields = append(fields, ticketevent.FieldMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketEventMutation) ClearField(name string) error {
	switch name {
	case ticketevent.FieldFromState:
		m.ClearFromState()
		return nil
	case ticketevent.FieldToState:
		m.ClearToState()
		return nil
	case ticketevent.FieldMessage:
		m.ClearMessage()
		return nil
	}
	return fmt.Errorf("unknown TicketEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketEventMutation) ResetField(name string) error {
	switch name {
	case ticketevent.FieldTicketID:
		m.ResetTicketID()
		return nil
	case ticketevent.FieldKind:
		m.ResetKind()
		return nil
	case ticketevent.FieldFromState:
		m.ResetFromState()
		return nil
	case ticketevent.FieldToState:
		m.ResetToState()
		return nil
	case ticketevent.FieldActor:
		m.ResetActor()
		return nil
	case ticketevent.FieldMessage:
		m.ResetMessage()
		return nil
	case ticketevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TicketEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, ticketevent.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticketevent.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, ticketevent.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketEventMutation) EdgeCleared(name string) bool {
	switch name {
	case ticketevent.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketEventMutation) ClearEdge(name string) error {
	switch name {
	case ticketevent.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown TicketEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketEventMutation) ResetEdge(name string) error {
	switch name {
	case ticketevent.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown TicketEvent edge %s", name)
}
