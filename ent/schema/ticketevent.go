package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketEvent holds the schema definition for the ticket's append-only
// progress log: state transitions, heartbeat progress notes, and free-form
// notes. Compacted for terminal tickets by the retention sweep.
type TicketEvent struct {
	ent.Schema
}

// Fields of the TicketEvent.
func (TicketEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.Enum("kind").
			Values("transition", "progress", "heartbeat", "note"),
		field.String("from_state").
			Optional().
			Comment("Set for transition events"),
		field.String("to_state").
			Optional(),
		field.String("actor").
			Comment("Agent id, or scheduler / reaper / sweep / pipeline"),
		field.Text("message").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TicketEvent.
func (TicketEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("events").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TicketEvent.
func (TicketEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "created_at"),
		index.Fields("kind", "created_at"),
	}
}
