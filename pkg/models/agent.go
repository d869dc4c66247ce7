package models

import "github.com/forgeworks/forge/ent"

// ClaimRequest is sent by a pull-agent asking for work.
type ClaimRequest struct {
	AgentID   string       `json:"agent_id"`
	VMID      string       `json:"vm_id,omitempty"`
	ProjectID string       `json:"project_id,omitempty"`
	Filter    *ClaimFilter `json:"ticket_filter,omitempty"`
}

// ClaimFilter narrows claim selection. State selects the claim pool:
// "ready" (default, forge agents) or "in_review" (sentinel agents).
type ClaimFilter struct {
	State   string `json:"state,omitempty"`
	Size    string `json:"size,omitempty"`
	BuildID string `json:"build_id,omitempty"`
}

// ClaimResponse returns the claimed ticket, or a null ticket with an
// advisory backoff when the pool is empty.
type ClaimResponse struct {
	Ticket       *ent.Ticket    `json:"ticket"`
	Project      *ent.Project   `json:"project,omitempty"`
	Settings     map[string]any `json:"settings,omitempty"`
	RetryAfterMS int64          `json:"retry_after_ms,omitempty"`
}

// StartRequest confirms the working branch after a claim.
type StartRequest struct {
	TicketID   string `json:"ticket_id"`
	AgentID    string `json:"agent_id"`
	BranchName string `json:"branch_name"`
}

// HeartbeatRequest extends the agent's lease and optionally appends
// progress to the ticket's event log.
type HeartbeatRequest struct {
	AgentID       string `json:"agent_id"`
	TicketID      string `json:"ticket_id"`
	Progress      string `json:"progress,omitempty"`
	StatusMessage string `json:"status_message,omitempty"`
}

// CompleteRequest reports a finished execution: code pushed, branch known.
type CompleteRequest struct {
	AgentID       string         `json:"agent_id"`
	TicketID      string         `json:"ticket_id"`
	PrURL         string         `json:"pr_url,omitempty"`
	BranchName    string         `json:"branch_name,omitempty"`
	FilesInvolved []string       `json:"files_involved,omitempty"`
	Outputs       map[string]any `json:"outputs,omitempty"`
}

// FailRequest reports a failed execution for classification.
type FailRequest struct {
	TicketID     string `json:"ticket_id"`
	AgentID      string `json:"agent_id"`
	ErrorMessage string `json:"error_message"`
}

// ReleaseRequest is a voluntary yield: the agent gives the ticket back
// without marking it failed.
type ReleaseRequest struct {
	TicketID string `json:"ticket_id"`
	AgentID  string `json:"agent_id"`
	Reason   string `json:"reason,omitempty"`
}
