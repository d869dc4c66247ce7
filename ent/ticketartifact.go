// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketartifact"
)

// TicketArtifact is the model entity for the TicketArtifact schema.
type TicketArtifact struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TicketID holds the value of the "ticket_id" field.
	TicketID string `json:"ticket_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind ticketartifact.Kind `json:"kind,omitempty"`
	// Verification attempt this artifact belongs to; 0 when unrelated
	Attempt int `json:"attempt,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TicketArtifactQuery when eager-loading is set.
	Edges        TicketArtifactEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TicketArtifactEdges holds the relations/edges for other nodes in the graph.
type TicketArtifactEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *Ticket `json:"ticket,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TicketArtifactEdges) TicketOrErr() (*Ticket, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ticket.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TicketArtifact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ticketartifact.FieldMetadata:
			values[i] = new([]byte)
		case ticketartifact.FieldAttempt:
			values[i] = new(sql.NullInt64)
		case ticketartifact.FieldID, ticketartifact.FieldTicketID, ticketartifact.FieldKind, ticketartifact.FieldContent:
			values[i] = new(sql.NullString)
		case ticketartifact.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TicketArtifact fields.
func (_m *TicketArtifact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ticketartifact.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ticketartifact.FieldTicketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = value.String
			}
		case ticketartifact.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = ticketartifact.Kind(value.String)
			}
		case ticketartifact.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case ticketartifact.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case ticketartifact.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case ticketartifact.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TicketArtifact.
// This includes values selected through modifiers, order, etc.
func (_m *TicketArtifact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the TicketArtifact entity.
func (_m *TicketArtifact) QueryTicket() *TicketQuery {
	return NewTicketArtifactClient(_m.config).QueryTicket(_m)
}

// Update returns a builder for updating this TicketArtifact.
// Note that you need to call TicketArtifact.Unwrap() before calling this method if this TicketArtifact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TicketArtifact) Update() *TicketArtifactUpdateOne {
	return NewTicketArtifactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TicketArtifact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TicketArtifact) Unwrap() *TicketArtifact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TicketArtifact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TicketArtifact) String() string {
	var builder strings.Builder
	builder.WriteString("TicketArtifact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticket_id=")
	builder.WriteString(_m.TicketID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TicketArtifacts is a parsable slice of TicketArtifact.
type TicketArtifacts []*TicketArtifact
