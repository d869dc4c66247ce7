// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "repo_url", Type: field.TypeString, Nullable: true},
		{Name: "default_branch", Type: field.TypeString, Default: "main"},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
		},
	}
	// TicketsColumns holds the columns for the "tickets" table.
	TicketsColumns = []*schema.Column{
		{Name: "ticket_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "build_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "acceptance_criteria", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"draft", "blocked", "ready", "assigned", "in_progress", "verifying", "in_review", "needs_review", "done", "on_hold", "cancelled"}, Default: "draft"},
		{Name: "depends_on", Type: field.TypeJSON, Nullable: true},
		{Name: "assignee_id", Type: field.TypeString, Nullable: true},
		{Name: "assignee_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"agent", "human"}},
		{Name: "vm_id", Type: field.TypeString, Nullable: true},
		{Name: "engine_id", Type: field.TypeString, Nullable: true},
		{Name: "execution_mode", Type: field.TypeEnum, Enums: []string{"pull", "direct", "workflow"}, Default: "pull"},
		{Name: "workflow_id", Type: field.TypeString, Nullable: true},
		{Name: "size", Type: field.TypeEnum, Enums: []string{"small", "medium", "large"}, Default: "medium"},
		{Name: "branch_name", Type: field.TypeString, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "rejection_count", Type: field.TypeInt, Default: 0},
		{Name: "retry_strategy", Type: field.TypeJSON, Nullable: true},
		{Name: "verification_status", Type: field.TypeEnum, Nullable: true, Enums: []string{"pending", "passed", "failed"}},
		{Name: "hold_reason", Type: field.TypeString, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "inputs", Type: field.TypeJSON, Nullable: true},
		{Name: "outputs", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "lease_expires", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// TicketsTable holds the schema information for the "tickets" table.
	TicketsTable = &schema.Table{
		Name:       "tickets",
		Columns:    TicketsColumns,
		PrimaryKey: []*schema.Column{TicketsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tickets_projects_tickets",
				Columns:    []*schema.Column{TicketsColumns[32]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ticket_state",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[6]},
			},
			{
				Name:    "ticket_build_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[2]},
			},
			{
				Name:    "ticket_project_id_state",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[32], TicketsColumns[6]},
			},
			{
				Name:    "ticket_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[6], TicketsColumns[30]},
			},
			{
				Name:    "ticket_state_updated_at",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[6], TicketsColumns[31]},
			},
			{
				Name:    "ticket_state_lease_expires",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[6], TicketsColumns[29]},
			},
			{
				Name:    "ticket_engine_id_state",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[11], TicketsColumns[6]},
			},
		},
	}
	// TicketArtifactsColumns holds the columns for the "ticket_artifacts" table.
	TicketArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"verification_feedback", "verification_evidence", "pipeline_error", "agent_output"}},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeString},
	}
	// TicketArtifactsTable holds the schema information for the "ticket_artifacts" table.
	TicketArtifactsTable = &schema.Table{
		Name:       "ticket_artifacts",
		Columns:    TicketArtifactsColumns,
		PrimaryKey: []*schema.Column{TicketArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ticket_artifacts_tickets_artifacts",
				Columns:    []*schema.Column{TicketArtifactsColumns[6]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ticketartifact_ticket_id_kind",
				Unique:  false,
				Columns: []*schema.Column{TicketArtifactsColumns[6], TicketArtifactsColumns[1]},
			},
			{
				Name:    "ticketartifact_ticket_id_attempt",
				Unique:  false,
				Columns: []*schema.Column{TicketArtifactsColumns[6], TicketArtifactsColumns[2]},
			},
		},
	}
	// TicketEventsColumns holds the columns for the "ticket_events" table.
	TicketEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"transition", "progress", "heartbeat", "note"}},
		{Name: "from_state", Type: field.TypeString, Nullable: true},
		{Name: "to_state", Type: field.TypeString, Nullable: true},
		{Name: "actor", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeString},
	}
	// TicketEventsTable holds the schema information for the "ticket_events" table.
	TicketEventsTable = &schema.Table{
		Name:       "ticket_events",
		Columns:    TicketEventsColumns,
		PrimaryKey: []*schema.Column{TicketEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ticket_events_tickets_events",
				Columns:    []*schema.Column{TicketEventsColumns[7]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ticketevent_ticket_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TicketEventsColumns[7], TicketEventsColumns[6]},
			},
			{
				Name:    "ticketevent_kind_created_at",
				Unique:  false,
				Columns: []*schema.Column{TicketEventsColumns[1], TicketEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProjectsTable,
		TicketsTable,
		TicketArtifactsTable,
		TicketEventsTable,
	}
)

func init() {
	TicketsTable.ForeignKeys[0].RefTable = ProjectsTable
	TicketArtifactsTable.ForeignKeys[0].RefTable = TicketsTable
	TicketEventsTable.ForeignKeys[0].RefTable = TicketsTable
}
