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
	"github.com/forgeworks/forge/ent/ticketevent"
)

// TicketEventUpdate is the builder for updating TicketEvent entities.
type TicketEventUpdate struct {
	config
	hooks    []Hook
	mutation *TicketEventMutation
}

// Where appends a list predicates to the TicketEventUpdate builder.
func (_u *TicketEventUpdate) Where(ps ...predicate.TicketEvent) *TicketEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *TicketEventUpdate) SetKind(v ticketevent.Kind) *TicketEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TicketEventUpdate) SetNillableKind(v *ticketevent.Kind) *TicketEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *TicketEventUpdate) SetFromState(v string) *TicketEventUpdate {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *TicketEventUpdate) SetNillableFromState(v *string) *TicketEventUpdate {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// ClearFromState clears the value of the "from_state" field.
func (_u *TicketEventUpdate) ClearFromState() *TicketEventUpdate {
	_u.mutation.ClearFromState()
	return _u
}

// SetToState sets the "to_state" field.
func (_u *TicketEventUpdate) SetToState(v string) *TicketEventUpdate {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *TicketEventUpdate) SetNillableToState(v *string) *TicketEventUpdate {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// ClearToState clears the value of the "to_state" field.
func (_u *TicketEventUpdate) ClearToState() *TicketEventUpdate {
	_u.mutation.ClearToState()
	return _u
}

// SetActor sets the "actor" field.
func (_u *TicketEventUpdate) SetActor(v string) *TicketEventUpdate {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *TicketEventUpdate) SetNillableActor(v *string) *TicketEventUpdate {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *TicketEventUpdate) SetMessage(v string) *TicketEventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *TicketEventUpdate) SetNillableMessage(v *string) *TicketEventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *TicketEventUpdate) ClearMessage() *TicketEventUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// Mutation returns the TicketEventMutation object of the builder.
func (_u *TicketEventUpdate) Mutation() *TicketEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := ticketevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TicketEvent.kind": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TicketEvent.ticket"`)
	}
	return nil
}

func (_u *TicketEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticketevent.Table, ticketevent.Columns, sqlgraph.NewFieldSpec(ticketevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(ticketevent.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(ticketevent.FieldFromState, field.TypeString, value)
	}
	if _u.mutation.FromStateCleared() {
		_spec.ClearField(ticketevent.FieldFromState, field.TypeString)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(ticketevent.FieldToState, field.TypeString, value)
	}
	if _u.mutation.ToStateCleared() {
		_spec.ClearField(ticketevent.FieldToState, field.TypeString)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(ticketevent.FieldActor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(ticketevent.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(ticketevent.FieldMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketEventUpdateOne is the builder for updating a single TicketEvent entity.
type TicketEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketEventMutation
}

// SetKind sets the "kind" field.
func (_u *TicketEventUpdateOne) SetKind(v ticketevent.Kind) *TicketEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TicketEventUpdateOne) SetNillableKind(v *ticketevent.Kind) *TicketEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *TicketEventUpdateOne) SetFromState(v string) *TicketEventUpdateOne {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *TicketEventUpdateOne) SetNillableFromState(v *string) *TicketEventUpdateOne {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// ClearFromState clears the value of the "from_state" field.
func (_u *TicketEventUpdateOne) ClearFromState() *TicketEventUpdateOne {
	_u.mutation.ClearFromState()
	return _u
}

// SetToState sets the "to_state" field.
func (_u *TicketEventUpdateOne) SetToState(v string) *TicketEventUpdateOne {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *TicketEventUpdateOne) SetNillableToState(v *string) *TicketEventUpdateOne {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// ClearToState clears the value of the "to_state" field.
func (_u *TicketEventUpdateOne) ClearToState() *TicketEventUpdateOne {
	_u.mutation.ClearToState()
	return _u
}

// SetActor sets the "actor" field.
func (_u *TicketEventUpdateOne) SetActor(v string) *TicketEventUpdateOne {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *TicketEventUpdateOne) SetNillableActor(v *string) *TicketEventUpdateOne {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *TicketEventUpdateOne) SetMessage(v string) *TicketEventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *TicketEventUpdateOne) SetNillableMessage(v *string) *TicketEventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *TicketEventUpdateOne) ClearMessage() *TicketEventUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// Mutation returns the TicketEventMutation object of the builder.
func (_u *TicketEventUpdateOne) Mutation() *TicketEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TicketEventUpdate builder.
func (_u *TicketEventUpdateOne) Where(ps ...predicate.TicketEvent) *TicketEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketEventUpdateOne) Select(field string, fields ...string) *TicketEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TicketEvent entity.
func (_u *TicketEventUpdateOne) Save(ctx context.Context) (*TicketEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketEventUpdateOne) SaveX(ctx context.Context) *TicketEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := ticketevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TicketEvent.kind": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TicketEvent.ticket"`)
	}
	return nil
}

func (_u *TicketEventUpdateOne) sqlSave(ctx context.Context) (_node *TicketEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticketevent.Table, ticketevent.Columns, sqlgraph.NewFieldSpec(ticketevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TicketEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticketevent.FieldID)
		for _, f := range fields {
			if !ticketevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticketevent.FieldID {
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
		_spec.SetField(ticketevent.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(ticketevent.FieldFromState, field.TypeString, value)
	}
	if _u.mutation.FromStateCleared() {
		_spec.ClearField(ticketevent.FieldFromState, field.TypeString)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(ticketevent.FieldToState, field.TypeString, value)
	}
	if _u.mutation.ToStateCleared() {
		_spec.ClearField(ticketevent.FieldToState, field.TypeString)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(ticketevent.FieldActor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(ticketevent.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(ticketevent.FieldMessage, field.TypeString)
	}
	_node = &TicketEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
