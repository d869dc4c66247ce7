package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketArtifact holds the schema definition for append-only artifacts a
// ticket accumulates: verifier feedback, evidence bundles, pipeline errors,
// agent output summaries. Artifacts are never rewritten, only appended.
type TicketArtifact struct {
	ent.Schema
}

// Fields of the TicketArtifact.
func (TicketArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.Enum("kind").
			Values("verification_feedback", "verification_evidence",
				"pipeline_error", "agent_output"),
		field.Int("attempt").
			Default(0).
			Comment("Verification attempt this artifact belongs to; 0 when unrelated"),
		field.Text("content"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TicketArtifact.
func (TicketArtifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("artifacts").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TicketArtifact.
func (TicketArtifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "kind"),
		index.Fields("ticket_id", "attempt"),
	}
}
