package models

import (
	"time"

	"github.com/forgeworks/forge/ent"
)

// CreateTicketRequest carries a new ticket from the upstream planner. The
// ticket lands in draft; activation later routes it to ready or blocked.
type CreateTicketRequest struct {
	TicketID           string         `json:"ticket_id,omitempty"`
	TenantID           string         `json:"tenant_id"`
	ProjectID          string         `json:"project_id"`
	BuildID            string         `json:"build_id,omitempty"`
	Title              string         `json:"title"`
	Description        string         `json:"description,omitempty"`
	AcceptanceCriteria string         `json:"acceptance_criteria,omitempty"`
	DependsOn          []string       `json:"depends_on,omitempty"`
	ExecutionMode      string         `json:"execution_mode,omitempty"`
	WorkflowID         string         `json:"workflow_id,omitempty"`
	Size               string         `json:"size,omitempty"`
	Inputs             map[string]any `json:"inputs,omitempty"`
	Metadata           map[string]any `json:"metadata,omitempty"`
}

// TicketFilters contains filtering options for listing tickets
type TicketFilters struct {
	State         string     `json:"state,omitempty"`
	ProjectID     string     `json:"project_id,omitempty"`
	BuildID       string     `json:"build_id,omitempty"`
	AssigneeID    string     `json:"assignee_id,omitempty"`
	ExecutionMode string     `json:"execution_mode,omitempty"`
	Search        string     `json:"search,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// TicketListResponse contains a paginated ticket list
type TicketListResponse struct {
	Tickets    []*ent.Ticket `json:"tickets"`
	TotalCount int           `json:"total_count"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
}

// ActivationCounts summarizes one activateBuild pass. Activation is
// idempotent: a second pass over the same build reports zero everywhere.
type ActivationCounts struct {
	Ready   int `json:"ready"`
	Blocked int `json:"blocked"`
}

// Total returns the number of tickets the pass activated.
func (c ActivationCounts) Total() int {
	return c.Ready + c.Blocked
}
