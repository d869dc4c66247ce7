// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Ticket is the predicate function for ticket builders.
type Ticket func(*sql.Selector)

// TicketArtifact is the predicate function for ticketartifact builders.
type TicketArtifact func(*sql.Selector)

// TicketEvent is the predicate function for ticketevent builders.
type TicketEvent func(*sql.Selector)
