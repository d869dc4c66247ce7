// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketevent"
)

// TicketEventCreate is the builder for creating a TicketEvent entity.
type TicketEventCreate struct {
	config
	mutation *TicketEventMutation
	hooks    []Hook
}

// SetTicketID sets the "ticket_id" field.
func (_c *TicketEventCreate) SetTicketID(v string) *TicketEventCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *TicketEventCreate) SetKind(v ticketevent.Kind) *TicketEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetFromState sets the "from_state" field.
func (_c *TicketEventCreate) SetFromState(v string) *TicketEventCreate {
	_c.mutation.SetFromState(v)
	return _c
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_c *TicketEventCreate) SetNillableFromState(v *string) *TicketEventCreate {
	if v != nil {
		_c.SetFromState(*v)
	}
	return _c
}

// SetToState sets the "to_state" field.
func (_c *TicketEventCreate) SetToState(v string) *TicketEventCreate {
	_c.mutation.SetToState(v)
	return _c
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_c *TicketEventCreate) SetNillableToState(v *string) *TicketEventCreate {
	if v != nil {
		_c.SetToState(*v)
	}
	return _c
}

// SetActor sets the "actor" field.
func (_c *TicketEventCreate) SetActor(v string) *TicketEventCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *TicketEventCreate) SetMessage(v string) *TicketEventCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *TicketEventCreate) SetNillableMessage(v *string) *TicketEventCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketEventCreate) SetCreatedAt(v time.Time) *TicketEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketEventCreate) SetNillableCreatedAt(v *time.Time) *TicketEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TicketEventCreate) SetID(v string) *TicketEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_c *TicketEventCreate) SetTicket(v *Ticket) *TicketEventCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the TicketEventMutation object of the builder.
func (_c *TicketEventCreate) Mutation() *TicketEventMutation {
	return _c.mutation
}

// Save creates the TicketEvent in the database.
func (_c *TicketEventCreate) Save(ctx context.Context) (*TicketEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketEventCreate) SaveX(ctx context.Context) *TicketEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticketevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketEventCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "TicketEvent.ticket_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TicketEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := ticketevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TicketEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "TicketEvent.actor"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TicketEvent.created_at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "TicketEvent.ticket"`)}
	}
	return nil
}

func (_c *TicketEventCreate) sqlSave(ctx context.Context) (*TicketEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TicketEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketEventCreate) createSpec() (*TicketEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TicketEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticketevent.Table, sqlgraph.NewFieldSpec(ticketevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(ticketevent.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.FromState(); ok {
		_spec.SetField(ticketevent.FieldFromState, field.TypeString, value)
		_node.FromState = value
	}
	if value, ok := _c.mutation.ToState(); ok {
		_spec.SetField(ticketevent.FieldToState, field.TypeString, value)
		_node.ToState = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(ticketevent.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(ticketevent.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticketevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ticketevent.TicketTable,
			Columns: []string{ticketevent.TicketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TicketID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TicketEventCreateBulk is the builder for creating many TicketEvent entities in bulk.
type TicketEventCreateBulk struct {
	config
	err      error
	builders []*TicketEventCreate
}

// Save creates the TicketEvent entities in the database.
func (_c *TicketEventCreateBulk) Save(ctx context.Context) ([]*TicketEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TicketEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TicketEventCreateBulk) SaveX(ctx context.Context) []*TicketEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
