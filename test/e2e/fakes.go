package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/forgeworks/forge/pkg/gitforge"
	"github.com/forgeworks/forge/pkg/verification"
	"github.com/forgeworks/forge/pkg/vmpool"
)

// ────────────────────────────────────────────────────────────
// Scripted verifier
// ────────────────────────────────────────────────────────────

// ScriptedVerifier pops queued verdicts in order; once the queue is empty
// every call passes. A scripted error takes precedence over verdicts.
type ScriptedVerifier struct {
	mu       sync.Mutex
	verdicts []*verification.Verdict
	requests []*verification.Request
	err      error
}

// NewScriptedVerifier creates a verifier preloaded with verdicts.
func NewScriptedVerifier(verdicts ...*verification.Verdict) *ScriptedVerifier {
	return &ScriptedVerifier{verdicts: verdicts}
}

// FailOnce queues one failed verdict with the given agent feedback.
func (v *ScriptedVerifier) FailOnce(feedback string) *ScriptedVerifier {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.verdicts = append(v.verdicts, &verification.Verdict{
		Status:           verification.StatusFailed,
		FeedbackForAgent: feedback,
		Evidence:         map[string]any{"phase": "automated"},
	})
	return v
}

// SetError makes every subsequent call fail at the transport level.
func (v *ScriptedVerifier) SetError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.err = err
}

func (v *ScriptedVerifier) Verify(ctx context.Context, req *verification.Request) (*verification.Verdict, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.requests = append(v.requests, req)
	if v.err != nil {
		return nil, v.err
	}
	if len(v.verdicts) == 0 {
		return &verification.Verdict{Status: verification.StatusPassed, ReadyForPR: true}, nil
	}
	verdict := v.verdicts[0]
	v.verdicts = v.verdicts[1:]
	return verdict, nil
}

// Requests returns a copy of every verify request seen so far.
func (v *ScriptedVerifier) Requests() []*verification.Request {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]*verification.Request(nil), v.requests...)
}

// RequestCount returns how many verify calls were made.
func (v *ScriptedVerifier) RequestCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.requests)
}

// ────────────────────────────────────────────────────────────
// Scripted git forge
// ────────────────────────────────────────────────────────────

// ScriptedForge records PR requests and mints one URL per call.
type ScriptedForge struct {
	mu   sync.Mutex
	reqs []gitforge.PRRequest
	next int
	err  error
}

// NewScriptedForge creates a forge that accepts every PR.
func NewScriptedForge() *ScriptedForge {
	return &ScriptedForge{}
}

// SetError makes every subsequent call fail.
func (f *ScriptedForge) SetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *ScriptedForge) CreatePullRequest(ctx context.Context, req gitforge.PRRequest) (*gitforge.PullRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	f.next++
	return &gitforge.PullRequest{
		URL:    fmt.Sprintf("https://github.com/forgeworks/checkout-service/pull/%d", f.next),
		Number: f.next,
	}, nil
}

// Requests returns a copy of every PR request seen so far.
func (f *ScriptedForge) Requests() []gitforge.PRRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]gitforge.PRRequest(nil), f.reqs...)
}

// RequestCount returns how many PRs were requested.
func (f *ScriptedForge) RequestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reqs)
}

// ────────────────────────────────────────────────────────────
// Fake VM slot pool
// ────────────────────────────────────────────────────────────

// FakeSlotPool is an in-memory vmpool.Adapter. Slots point at Endpoint, which
// direct-mode tests set to an in-slot agent stub.
type FakeSlotPool struct {
	mu       sync.Mutex
	nextID   int
	capacity int // 0 = unlimited
	inUse    int
	Endpoint string
	acquired []string
	released []string
	killed   []string
}

// NewFakeSlotPool creates an unlimited pool with no agent endpoint.
func NewFakeSlotPool() *FakeSlotPool {
	return &FakeSlotPool{}
}

func (f *FakeSlotPool) Acquire(ctx context.Context, req *vmpool.AcquireRequest) (*vmpool.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.capacity > 0 && f.inUse >= f.capacity {
		return nil, fmt.Errorf("acquire for %s: %w", req.TicketID, vmpool.ErrPoolExhausted)
	}
	f.nextID++
	f.inUse++
	id := fmt.Sprintf("vm-%03d", f.nextID)
	f.acquired = append(f.acquired, id)
	return &vmpool.Slot{ID: id, Endpoint: f.Endpoint}, nil
}

func (f *FakeSlotPool) Release(ctx context.Context, vmID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released = append(f.released, vmID)
	if f.inUse > 0 {
		f.inUse--
	}
	return nil
}

func (f *FakeSlotPool) Kill(ctx context.Context, vmID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.killed = append(f.killed, vmID)
	if f.inUse > 0 {
		f.inUse--
	}
	return nil
}

func (f *FakeSlotPool) Health(ctx context.Context, vmID string) (*vmpool.SlotHealth, error) {
	return &vmpool.SlotHealth{Alive: true}, nil
}

// ReleasedIDs returns a copy of the released slot ids.
func (f *FakeSlotPool) ReleasedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.released...)
}

// KilledIDs returns a copy of the killed slot ids.
func (f *FakeSlotPool) KilledIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.killed...)
}

// ────────────────────────────────────────────────────────────
// In-slot agent stub (direct mode)
// ────────────────────────────────────────────────────────────

// inSlotWorkOrder mirrors the wire shape the engine posts to /v1/execute.
type inSlotWorkOrder struct {
	TicketID string         `json:"ticket_id"`
	Title    string         `json:"title"`
	RepoURL  string         `json:"repo_url,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
}

// inSlotOutcome mirrors the agent's execution report.
type inSlotOutcome struct {
	BranchName string         `json:"branch_name"`
	Outputs    map[string]any `json:"outputs,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// StartInSlotAgent serves a fake coding agent the way one lives inside a VM
// slot: POST /v1/execute gets the work order and answers with respond's
// outcome. The server is torn down with the test.
func StartInSlotAgent(t *testing.T, respond func(ticketID string) (branch string, errText string)) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/execute", func(w http.ResponseWriter, r *http.Request) {
		var order inSlotWorkOrder
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		branch, errText := respond(order.TicketID)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(inSlotOutcome{
			BranchName: branch,
			Outputs:    map[string]any{"files_changed": 1},
			Error:      errText,
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}
