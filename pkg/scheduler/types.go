// Package scheduler drives direct-mode ticket execution: it polls the ready
// pool, claims tickets atomically, binds VM slots, supervises execution under
// heartbeat leases, reaps expired leases, and hands completions to the
// post-execution pipeline.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/pkg/vmpool"
)

// PendingSlot is the vm_id placeholder written by the claim step before a
// real slot is acquired. It satisfies the dispatch invariants during the
// short acquire window and is swapped for the slot id by BindVM.
const PendingSlot = "vm-pending"

// Sentinel errors for the claim loop.
var (
	// ErrAtCapacity indicates the concurrent execution limit has been
	// reached; the loop sleeps at the base interval without backing off.
	ErrAtCapacity = errors.New("at capacity")
)

// TicketExecutor runs one ticket inside its VM slot.
//
// The executor owns the in-VM protocol only. The scheduler handles claiming,
// the lease heartbeat, terminal state writes, and slot cleanup. A nil result
// or an expired context is synthesized into a failure by the caller.
type TicketExecutor interface {
	Execute(ctx context.Context, t *ent.Ticket, slot *vmpool.Slot) *ExecutionResult
}

// ExecutionResult is the terminal verdict of one execution attempt. A nil
// Error means the agent pushed its work to BranchName; a non-nil Error flows
// through failure classification.
type ExecutionResult struct {
	BranchName string
	Outputs    map[string]any
	Error      error
}

// Health is a point-in-time snapshot of the scheduler, served by the status
// endpoint.
type Health struct {
	Running          bool              `json:"running"`
	EngineID         string            `json:"engine_id"`
	ActiveExecutions int               `json:"active_executions"`
	ActiveTickets    []ExecutionStatus `json:"active_tickets,omitempty"`
	PendingTickets   int               `json:"pending_tickets"`
	MaxConcurrent    int               `json:"max_concurrent"`
	TicketsReaped    int               `json:"tickets_reaped"`
	LastReaperScan   time.Time         `json:"last_reaper_scan"`
	UptimeSeconds    int64             `json:"uptime_seconds"`
	DBReachable      bool              `json:"db_reachable"`
}

// ExecutionStatus describes one in-flight execution task.
type ExecutionStatus struct {
	TicketID   string `json:"ticket_id"`
	AgeSeconds int64  `json:"age_seconds"`
}
