// Package verification calls the external verifier service that checks a
// ticket's branch against its acceptance criteria.
package verification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/forgeworks/forge/pkg/config"
)

// Phase names one stage of the verification run.
type Phase string

const (
	PhaseStatic    Phase = "static"
	PhaseAutomated Phase = "automated"
	PhaseSentinel  Phase = "sentinel"
)

// AllPhases returns the full verification sequence in run order.
func AllPhases() []Phase {
	return []Phase{PhaseStatic, PhaseAutomated, PhaseSentinel}
}

// Status is the verifier's verdict on the branch.
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// Request carries everything the verifier needs to check one completion
// attempt of a ticket.
type Request struct {
	TicketID           string  `json:"ticket_id"`
	BranchName         string  `json:"branch_name"`
	RepoURL            string  `json:"repo_url"`
	Attempt            int     `json:"attempt"`
	AcceptanceCriteria string  `json:"acceptance_criteria,omitempty"`
	Phases             []Phase `json:"phases"`
}

// Verdict is the verifier's answer. FeedbackForAgent is only meaningful on a
// failed verdict; Evidence is the raw per-phase output kept for audit.
type Verdict struct {
	Status           Status         `json:"status"`
	ReadyForPR       bool           `json:"ready_for_pr"`
	FeedbackForAgent string         `json:"feedback_for_agent,omitempty"`
	Evidence         map[string]any `json:"evidence,omitempty"`
}

// Client verifies completed ticket branches. Implementations must be safe
// for concurrent use; the pipeline calls from many ticket goroutines.
type Client interface {
	Verify(ctx context.Context, req *Request) (*Verdict, error)
}

// HTTPClient implements Client against the verifier service's REST API.
type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewHTTPClient creates a verifier client from config.
func NewHTTPClient(cfg *config.VerifierConfig) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     slog.Default(),
	}
}

// Verify posts the attempt to the verifier and returns its verdict. Transport
// failures and non-2xx responses are errors; the caller classifies them, a
// verdict of failed is not an error.
func (c *HTTPClient) Verify(ctx context.Context, req *Request) (*Verdict, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("verifier base URL is not configured")
	}
	if req.TicketID == "" {
		return nil, fmt.Errorf("ticket_id is required")
	}
	if req.BranchName == "" {
		return nil, fmt.Errorf("branch_name is required")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode verify request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/verify", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("verify ticket %s: %w", req.TicketID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("verifier returned HTTP %d for ticket %s: %s",
			resp.StatusCode, req.TicketID, strings.TrimSpace(string(body)))
	}

	var verdict Verdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return nil, fmt.Errorf("decode verdict: %w", err)
	}
	if verdict.Status != StatusPassed && verdict.Status != StatusFailed {
		return nil, fmt.Errorf("verifier returned unknown status %q for ticket %s", verdict.Status, req.TicketID)
	}

	c.logger.Info("Verification verdict received",
		"ticket_id", req.TicketID,
		"attempt", req.Attempt,
		"status", verdict.Status,
		"ready_for_pr", verdict.ReadyForPR)
	return &verdict, nil
}
