package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ticket holds the schema definition for the Ticket entity, the central
// unit of work driven from draft to a submitted pull request.
type Ticket struct {
	ent.Schema
}

// Fields of the Ticket.
func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable().
			Comment("Partitions all visibility"),
		field.String("project_id").
			Comment("Joins to repository URL and settings"),
		field.String("build_id").
			Optional().
			Comment("Activation batch; tickets generated together share one"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Text("acceptance_criteria").
			Optional().
			Comment("Handed verbatim to the verifier"),
		field.Enum("state").
			Values("draft", "blocked", "ready", "assigned", "in_progress",
				"verifying", "in_review", "needs_review", "done", "on_hold", "cancelled").
			Default("draft"),
		field.JSON("depends_on", []string{}).
			Optional().
			Comment("Ticket ids that must reach done before this one activates"),
		field.String("assignee_id").
			Optional().
			Nillable().
			Comment("Logical agent id (forge-agent, sentinel-agent) or a human"),
		field.Enum("assignee_type").
			Values("agent", "human").
			Optional().
			Nillable(),
		field.String("vm_id").
			Optional().
			Nillable().
			Comment("Bound VM slot; null iff not currently dispatched"),
		field.String("engine_id").
			Optional().
			Nillable().
			Comment("Engine instance that dispatched this ticket (direct mode only); drives startup lease recovery"),
		field.Enum("execution_mode").
			Values("pull", "direct", "workflow").
			Default("pull"),
		field.String("workflow_id").
			Optional().
			Nillable(),
		field.Enum("size").
			Values("small", "medium", "large").
			Default("medium").
			Comment("Claim-order tiebreak: small before medium before large"),
		field.String("branch_name").
			Optional().
			Nillable(),
		field.String("pr_url").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.Int("rejection_count").
			Default(0),
		field.JSON("retry_strategy", map[string]interface{}{}).
			Optional().
			Comment("Last classification: category, attempts remaining, backoff plan"),
		field.Enum("verification_status").
			Values("pending", "passed", "failed").
			Optional().
			Nillable(),
		field.String("hold_reason").
			Optional().
			Nillable(),
		field.Text("error").
			Optional().
			Nillable().
			Comment("Last failure report from the agent"),
		field.JSON("inputs", map[string]interface{}{}).
			Optional().
			Comment("Opaque to the core; parsed only by the consuming agent"),
		field.JSON("outputs", map[string]interface{}{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat").
			Optional().
			Nillable(),
		field.Time("lease_expires").
			Optional().
			Nillable().
			Comment("Lease deadline; the reaper returns expired rows to ready"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Ticket.
func (Ticket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("tickets").
			Field("project_id").
			Unique().
			Required(),
		edge.To("artifacts", TicketArtifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", TicketEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Ticket.
func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("build_id"),
		index.Fields("project_id", "state"),

		// Scheduler scan paths. The partial index over the ready pool is
		// raw SQL in pkg/database/migrations.go.
		index.Fields("state", "created_at"),
		index.Fields("state", "updated_at"),
		index.Fields("state", "lease_expires"),
		index.Fields("engine_id", "state"),
	}
}
