// Package vmpool talks to the VM pool manager that hands out isolated
// execution slots for ticket work.
package vmpool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/forgeworks/forge/pkg/config"
)

// ErrPoolExhausted is returned by Acquire when the pool has no free slot.
// The scheduler backs off and retries instead of failing the ticket.
var ErrPoolExhausted = errors.New("vm pool exhausted")

// Slot is one leased VM.
type Slot struct {
	ID       string `json:"id"`
	Endpoint string `json:"endpoint"`
}

// SlotHealth is the pool manager's liveness view of a slot.
type SlotHealth struct {
	Alive bool   `json:"alive"`
	IP    string `json:"ip,omitempty"`
}

// AcquireRequest asks the pool for a slot on behalf of a ticket.
type AcquireRequest struct {
	TicketID  string `json:"ticket_id"`
	ProjectID string `json:"project_id,omitempty"`
}

// Adapter is the engine's view of the VM pool. Implementations must be safe
// for concurrent use.
//
// Acquire waits as long as the caller's context allows; the scheduler bounds
// it with its vm_acquire_timeout. Release and Kill are idempotent so the
// reaper and the drain path can fire them without checking slot state first.
// Health is for watchdog probes only, never the dispatch hot path.
type Adapter interface {
	Acquire(ctx context.Context, req *AcquireRequest) (*Slot, error)
	Release(ctx context.Context, vmID string) error
	Kill(ctx context.Context, vmID string) error
	Health(ctx context.Context, vmID string) (*SlotHealth, error)
}

// HTTPAdapter implements Adapter against the pool manager's REST API.
type HTTPAdapter struct {
	httpClient     *http.Client
	baseURL        string
	requestTimeout time.Duration
	logger         *slog.Logger
}

// NewHTTPAdapter creates a pool adapter from config.
func NewHTTPAdapter(cfg *config.VMPoolConfig) *HTTPAdapter {
	return &HTTPAdapter{
		// No client-level timeout: Acquire is bounded by the caller's
		// context, everything else by requestTimeout per call.
		httpClient:     &http.Client{},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		requestTimeout: cfg.RequestTimeout,
		logger:         slog.Default(),
	}
}

// Acquire leases a slot for the ticket. A pool-manager 503 means no capacity
// and maps to ErrPoolExhausted.
func (a *HTTPAdapter) Acquire(ctx context.Context, req *AcquireRequest) (*Slot, error) {
	if a.baseURL == "" {
		return nil, fmt.Errorf("vm pool base URL is not configured")
	}
	if req.TicketID == "" {
		return nil, fmt.Errorf("ticket_id is required")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode acquire request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/slots", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("acquire slot for ticket %s: %w", req.TicketID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var slot Slot
		if err := json.NewDecoder(resp.Body).Decode(&slot); err != nil {
			return nil, fmt.Errorf("decode slot response: %w", err)
		}
		if slot.ID == "" {
			return nil, fmt.Errorf("pool manager returned a slot without an id")
		}
		a.logger.Info("VM slot acquired", "ticket_id", req.TicketID, "vm_id", slot.ID)
		return &slot, nil

	case http.StatusServiceUnavailable:
		return nil, fmt.Errorf("acquire slot for ticket %s: %w", req.TicketID, ErrPoolExhausted)

	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("pool manager returned HTTP %d acquiring slot for ticket %s: %s",
			resp.StatusCode, req.TicketID, strings.TrimSpace(string(body)))
	}
}

// Release returns a slot to the pool. Releasing a slot the pool no longer
// knows is a no-op.
func (a *HTTPAdapter) Release(ctx context.Context, vmID string) error {
	return a.slotCall(ctx, http.MethodDelete, vmID, "")
}

// Kill hard-terminates a slot (zombie VM after a lease expiry). Killing a
// slot the pool no longer knows is a no-op.
func (a *HTTPAdapter) Kill(ctx context.Context, vmID string) error {
	return a.slotCall(ctx, http.MethodPost, vmID, "/kill")
}

// slotCall issues one short slot operation bounded by requestTimeout.
// 404 is success: the slot is already gone, which is what we wanted.
func (a *HTTPAdapter) slotCall(ctx context.Context, method, vmID, suffix string) error {
	if a.baseURL == "" {
		return fmt.Errorf("vm pool base URL is not configured")
	}
	if vmID == "" {
		return fmt.Errorf("vm_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	apiURL := a.baseURL + "/v1/slots/" + url.PathEscape(vmID) + suffix
	req, err := http.NewRequestWithContext(ctx, method, apiURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, apiURL, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusAccepted:
		return nil
	case http.StatusNotFound:
		a.logger.Debug("VM slot already gone", "vm_id", vmID)
		return nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("pool manager returned HTTP %d for slot %s: %s",
			resp.StatusCode, vmID, strings.TrimSpace(string(body)))
	}
}

// Health probes one slot. An unknown slot reports not alive rather than an
// error, so watchdogs can treat "gone" and "dead" the same way.
func (a *HTTPAdapter) Health(ctx context.Context, vmID string) (*SlotHealth, error) {
	if a.baseURL == "" {
		return nil, fmt.Errorf("vm pool base URL is not configured")
	}
	if vmID == "" {
		return nil, fmt.Errorf("vm_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	apiURL := a.baseURL + "/v1/slots/" + url.PathEscape(vmID) + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("probe slot %s: %w", vmID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var health SlotHealth
		if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
			return nil, fmt.Errorf("decode health response: %w", err)
		}
		return &health, nil
	case http.StatusNotFound:
		return &SlotHealth{Alive: false}, nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("pool manager returned HTTP %d probing slot %s: %s",
			resp.StatusCode, vmID, strings.TrimSpace(string(body)))
	}
}
