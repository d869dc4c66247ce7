// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeworks/forge/ent/predicate"
	"github.com/forgeworks/forge/ent/ticketartifact"
)

// TicketArtifactUpdate is the builder for updating TicketArtifact entities.
type TicketArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *TicketArtifactMutation
}

// Where appends a list predicates to the TicketArtifactUpdate builder.
func (_u *TicketArtifactUpdate) Where(ps ...predicate.TicketArtifact) *TicketArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *TicketArtifactUpdate) SetKind(v ticketartifact.Kind) *TicketArtifactUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TicketArtifactUpdate) SetNillableKind(v *ticketartifact.Kind) *TicketArtifactUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *TicketArtifactUpdate) SetAttempt(v int) *TicketArtifactUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *TicketArtifactUpdate) SetNillableAttempt(v *int) *TicketArtifactUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *TicketArtifactUpdate) AddAttempt(v int) *TicketArtifactUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *TicketArtifactUpdate) SetContent(v string) *TicketArtifactUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TicketArtifactUpdate) SetNillableContent(v *string) *TicketArtifactUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TicketArtifactUpdate) SetMetadata(v map[string]interface{}) *TicketArtifactUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TicketArtifactUpdate) ClearMetadata() *TicketArtifactUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the TicketArtifactMutation object of the builder.
func (_u *TicketArtifactUpdate) Mutation() *TicketArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketArtifactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketArtifactUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := ticketartifact.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TicketArtifact.kind": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TicketArtifact.ticket"`)
	}
	return nil
}

func (_u *TicketArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticketartifact.Table, ticketartifact.Columns, sqlgraph.NewFieldSpec(ticketartifact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(ticketartifact.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(ticketartifact.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(ticketartifact.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(ticketartifact.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(ticketartifact.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(ticketartifact.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketArtifactUpdateOne is the builder for updating a single TicketArtifact entity.
type TicketArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketArtifactMutation
}

// SetKind sets the "kind" field.
func (_u *TicketArtifactUpdateOne) SetKind(v ticketartifact.Kind) *TicketArtifactUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TicketArtifactUpdateOne) SetNillableKind(v *ticketartifact.Kind) *TicketArtifactUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *TicketArtifactUpdateOne) SetAttempt(v int) *TicketArtifactUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *TicketArtifactUpdateOne) SetNillableAttempt(v *int) *TicketArtifactUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *TicketArtifactUpdateOne) AddAttempt(v int) *TicketArtifactUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *TicketArtifactUpdateOne) SetContent(v string) *TicketArtifactUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TicketArtifactUpdateOne) SetNillableContent(v *string) *TicketArtifactUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TicketArtifactUpdateOne) SetMetadata(v map[string]interface{}) *TicketArtifactUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TicketArtifactUpdateOne) ClearMetadata() *TicketArtifactUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the TicketArtifactMutation object of the builder.
func (_u *TicketArtifactUpdateOne) Mutation() *TicketArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the TicketArtifactUpdate builder.
func (_u *TicketArtifactUpdateOne) Where(ps ...predicate.TicketArtifact) *TicketArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketArtifactUpdateOne) Select(field string, fields ...string) *TicketArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TicketArtifact entity.
func (_u *TicketArtifactUpdateOne) Save(ctx context.Context) (*TicketArtifact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketArtifactUpdateOne) SaveX(ctx context.Context) *TicketArtifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketArtifactUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := ticketartifact.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TicketArtifact.kind": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TicketArtifact.ticket"`)
	}
	return nil
}

func (_u *TicketArtifactUpdateOne) sqlSave(ctx context.Context) (_node *TicketArtifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticketartifact.Table, ticketartifact.Columns, sqlgraph.NewFieldSpec(ticketartifact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TicketArtifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticketartifact.FieldID)
		for _, f := range fields {
			if !ticketartifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticketartifact.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(ticketartifact.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(ticketartifact.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(ticketartifact.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(ticketartifact.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(ticketartifact.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(ticketartifact.FieldMetadata, field.TypeJSON)
	}
	_node = &TicketArtifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
