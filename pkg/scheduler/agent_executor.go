package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/pkg/services"
	"github.com/forgeworks/forge/pkg/vmpool"
)

// AgentExecutor runs a ticket by driving the coding agent that lives inside
// the acquired VM slot over HTTP. The task context bounds the whole call, so
// the client itself carries no timeout.
type AgentExecutor struct {
	httpClient *http.Client
	projects   *services.ProjectService
	logger     *slog.Logger
}

// NewAgentExecutor creates the direct-mode executor.
func NewAgentExecutor(projects *services.ProjectService) *AgentExecutor {
	return &AgentExecutor{
		httpClient: &http.Client{},
		projects:   projects,
		logger:     slog.With("component", "agent_executor"),
	}
}

// executePayload is the work order posted to the in-slot agent.
type executePayload struct {
	TicketID           string         `json:"ticket_id"`
	Title              string         `json:"title"`
	Description        string         `json:"description,omitempty"`
	AcceptanceCriteria string         `json:"acceptance_criteria,omitempty"`
	RepoURL            string         `json:"repo_url,omitempty"`
	DefaultBranch      string         `json:"default_branch,omitempty"`
	Settings           map[string]any `json:"settings,omitempty"`
	Inputs             map[string]any `json:"inputs,omitempty"`
}

// executeResponse is what the agent reports back when it finishes.
type executeResponse struct {
	BranchName string         `json:"branch_name"`
	Outputs    map[string]any `json:"outputs,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// Execute posts the ticket to the slot's agent and blocks until the agent
// reports an outcome or ctx expires. Never returns nil.
func (e *AgentExecutor) Execute(ctx context.Context, t *ent.Ticket, slot *vmpool.Slot) *ExecutionResult {
	if slot == nil || slot.Endpoint == "" {
		return &ExecutionResult{Error: errors.New("slot has no agent endpoint")}
	}

	project, err := e.projects.GetProject(ctx, t.ProjectID)
	if err != nil {
		return &ExecutionResult{Error: fmt.Errorf("load project: %w", err)}
	}

	settings, err := services.EffectiveSettings(project, t.Metadata)
	if err != nil {
		return &ExecutionResult{Error: fmt.Errorf("merge agent settings: %w", err)}
	}

	payload := executePayload{
		TicketID:           t.ID,
		Title:              t.Title,
		Description:        t.Description,
		AcceptanceCriteria: t.AcceptanceCriteria,
		RepoURL:            project.RepoURL,
		DefaultBranch:      project.DefaultBranch,
		Settings:           settings,
		Inputs:             t.Inputs,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return &ExecutionResult{Error: fmt.Errorf("marshal work order: %w", err)}
	}

	url := strings.TrimRight(slot.Endpoint, "/") + "/v1/execute"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &ExecutionResult{Error: fmt.Errorf("build agent request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	e.logger.Info("Handing ticket to agent",
		"ticket_id", t.ID, "endpoint", slot.Endpoint)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return &ExecutionResult{Error: fmt.Errorf("agent request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &ExecutionResult{Error: fmt.Errorf("agent returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))}
	}

	var out executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return &ExecutionResult{Error: fmt.Errorf("decode agent response: %w", err)}
	}

	if out.Error != "" {
		return &ExecutionResult{Error: errors.New(out.Error)}
	}
	if out.BranchName == "" {
		return &ExecutionResult{Error: errors.New("agent reported success without a branch")}
	}

	return &ExecutionResult{BranchName: out.BranchName, Outputs: out.Outputs}
}
