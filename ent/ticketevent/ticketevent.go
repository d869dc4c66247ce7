// Code generated by ent, DO NOT EDIT.

package ticketevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the ticketevent type in the database.
	Label = "ticket_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldTicketID holds the string denoting the ticket_id field in the database.
	FieldTicketID = "ticket_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldFromState holds the string denoting the from_state field in the database.
	FieldFromState = "from_state"
	// FieldToState holds the string denoting the to_state field in the database.
	FieldToState = "to_state"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTicket holds the string denoting the ticket edge name in mutations.
	EdgeTicket = "ticket"
	// TicketFieldID holds the string denoting the ID field of the Ticket.
	TicketFieldID = "ticket_id"
	// Table holds the table name of the ticketevent in the database.
	Table = "ticket_events"
	// TicketTable is the table that holds the ticket relation/edge.
	TicketTable = "ticket_events"
	// TicketInverseTable is the table name for the Ticket entity.
	// It exists in this package in order to avoid circular dependency with the "ticket" package.
	TicketInverseTable = "tickets"
	// TicketColumn is the table column denoting the ticket relation/edge.
	TicketColumn = "ticket_id"
)

// Columns holds all SQL columns for ticketevent fields.
var Columns = []string{
	FieldID,
	FieldTicketID,
	FieldKind,
	FieldFromState,
	FieldToState,
	FieldActor,
	FieldMessage,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindTransition Kind = "transition"
	KindProgress   Kind = "progress"
	KindHeartbeat  Kind = "heartbeat"
	KindNote       Kind = "note"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindTransition, KindProgress, KindHeartbeat, KindNote:
		return nil
	default:
		return fmt.Errorf("ticketevent: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the TicketEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTicketID orders the results by the ticket_id field.
func ByTicketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByFromState orders the results by the from_state field.
func ByFromState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromState, opts...).ToFunc()
}

// ByToState orders the results by the to_state field.
func ByToState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToState, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTicketField orders the results by ticket field.
func ByTicketField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTicketStep(), sql.OrderByField(field, opts...))
	}
}
func newTicketStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TicketInverseTable, TicketFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
	)
}
