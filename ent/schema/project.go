package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity: the repository
// a batch of tickets is executed against.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name"),
		field.String("repo_url").
			Optional().
			Comment("Git remote the agents push branches to; empty disables verification"),
		field.String("default_branch").
			Default("main").
			Comment("PR base branch"),
		field.JSON("settings", map[string]interface{}{}).
			Optional().
			Comment("Project-level agent settings, merged under ticket metadata at claim"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tickets", Ticket.Type),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
	}
}
