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
	"github.com/forgeworks/forge/ent/ticketartifact"
)

// TicketArtifactCreate is the builder for creating a TicketArtifact entity.
type TicketArtifactCreate struct {
	config
	mutation *TicketArtifactMutation
	hooks    []Hook
}

// SetTicketID sets the "ticket_id" field.
func (_c *TicketArtifactCreate) SetTicketID(v string) *TicketArtifactCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *TicketArtifactCreate) SetKind(v ticketartifact.Kind) *TicketArtifactCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *TicketArtifactCreate) SetAttempt(v int) *TicketArtifactCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *TicketArtifactCreate) SetNillableAttempt(v *int) *TicketArtifactCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *TicketArtifactCreate) SetContent(v string) *TicketArtifactCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *TicketArtifactCreate) SetMetadata(v map[string]interface{}) *TicketArtifactCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketArtifactCreate) SetCreatedAt(v time.Time) *TicketArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketArtifactCreate) SetNillableCreatedAt(v *time.Time) *TicketArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TicketArtifactCreate) SetID(v string) *TicketArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_c *TicketArtifactCreate) SetTicket(v *Ticket) *TicketArtifactCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the TicketArtifactMutation object of the builder.
func (_c *TicketArtifactCreate) Mutation() *TicketArtifactMutation {
	return _c.mutation
}

// Save creates the TicketArtifact in the database.
func (_c *TicketArtifactCreate) Save(ctx context.Context) (*TicketArtifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketArtifactCreate) SaveX(ctx context.Context) *TicketArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketArtifactCreate) defaults() {
	if _, ok := _c.mutation.Attempt(); !ok {
		v := ticketartifact.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticketartifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketArtifactCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "TicketArtifact.ticket_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TicketArtifact.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := ticketartifact.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TicketArtifact.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "TicketArtifact.attempt"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "TicketArtifact.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TicketArtifact.created_at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "TicketArtifact.ticket"`)}
	}
	return nil
}

func (_c *TicketArtifactCreate) sqlSave(ctx context.Context) (*TicketArtifact, error) {
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
			return nil, fmt.Errorf("unexpected TicketArtifact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketArtifactCreate) createSpec() (*TicketArtifact, *sqlgraph.CreateSpec) {
	var (
		_node = &TicketArtifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticketartifact.Table, sqlgraph.NewFieldSpec(ticketartifact.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(ticketartifact.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(ticketartifact.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(ticketartifact.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(ticketartifact.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticketartifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ticketartifact.TicketTable,
			Columns: []string{ticketartifact.TicketColumn},
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

// TicketArtifactCreateBulk is the builder for creating many TicketArtifact entities in bulk.
type TicketArtifactCreateBulk struct {
	config
	err      error
	builders []*TicketArtifactCreate
}

// Save creates the TicketArtifact entities in the database.
func (_c *TicketArtifactCreateBulk) Save(ctx context.Context) ([]*TicketArtifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TicketArtifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketArtifactMutation)
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
func (_c *TicketArtifactCreateBulk) SaveX(ctx context.Context) []*TicketArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
