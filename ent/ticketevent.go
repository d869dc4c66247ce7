// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketevent"
)

// TicketEvent is the model entity for the TicketEvent schema.
type TicketEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TicketID holds the value of the "ticket_id" field.
	TicketID string `json:"ticket_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind ticketevent.Kind `json:"kind,omitempty"`
	// Set for transition events
	FromState string `json:"from_state,omitempty"`
	// ToState holds the value of the "to_state" field.
	ToState string `json:"to_state,omitempty"`
	// Agent id, or scheduler / reaper / sweep / pipeline
	Actor string `json:"actor,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TicketEventQuery when eager-loading is set.
	Edges        TicketEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TicketEventEdges holds the relations/edges for other nodes in the graph.
type TicketEventEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *Ticket `json:"ticket,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TicketEventEdges) TicketOrErr() (*Ticket, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ticket.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TicketEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ticketevent.FieldID, ticketevent.FieldTicketID, ticketevent.FieldKind, ticketevent.FieldFromState, ticketevent.FieldToState, ticketevent.FieldActor, ticketevent.FieldMessage:
			values[i] = new(sql.NullString)
		case ticketevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TicketEvent fields.
func (_m *TicketEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ticketevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ticketevent.FieldTicketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = value.String
			}
		case ticketevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = ticketevent.Kind(value.String)
			}
		case ticketevent.FieldFromState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_state", values[i])
			} else if value.Valid {
				_m.FromState = value.String
			}
		case ticketevent.FieldToState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_state", values[i])
			} else if value.Valid {
				_m.ToState = value.String
			}
		case ticketevent.FieldActor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor", values[i])
			} else if value.Valid {
				_m.Actor = value.String
			}
		case ticketevent.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case ticketevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TicketEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TicketEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the TicketEvent entity.
func (_m *TicketEvent) QueryTicket() *TicketQuery {
	return NewTicketEventClient(_m.config).QueryTicket(_m)
}

// Update returns a builder for updating this TicketEvent.
// Note that you need to call TicketEvent.Unwrap() before calling this method if this TicketEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TicketEvent) Update() *TicketEventUpdateOne {
	return NewTicketEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TicketEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TicketEvent) Unwrap() *TicketEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TicketEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TicketEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TicketEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticket_id=")
	builder.WriteString(_m.TicketID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("from_state=")
	builder.WriteString(_m.FromState)
	builder.WriteString(", ")
	builder.WriteString("to_state=")
	builder.WriteString(_m.ToState)
	builder.WriteString(", ")
	builder.WriteString("actor=")
	builder.WriteString(_m.Actor)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TicketEvents is a parsable slice of TicketEvent.
type TicketEvents []*TicketEvent
