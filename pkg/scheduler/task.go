package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/lifecycle"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/services"
	"github.com/forgeworks/forge/pkg/vmpool"
)

// runTask supervises one claimed ticket end to end: acquire a VM slot, bind
// it, keep the lease alive, run the executor, and land the outcome. Terminal
// writes use background contexts so a shutdown mid-write cannot strand the
// row.
func (s *Scheduler) runTask(ctx context.Context, t *ent.Ticket) {
	log := slog.With("ticket_id", t.ID, "engine_id", s.engineID)

	executor, ok := s.executors[t.ExecutionMode]
	if !ok {
		// Unreachable in practice: reservation filters on registered modes.
		log.Error("No executor registered for mode", "mode", t.ExecutionMode)
		s.unclaim(t.ID, "no executor for execution mode")
		return
	}

	acquireCtx, cancelAcquire := context.WithTimeout(ctx, s.cfg.VMAcquireTimeout)
	slot, err := s.pool.Acquire(acquireCtx, &vmpool.AcquireRequest{
		TicketID:  t.ID,
		ProjectID: t.ProjectID,
	})
	cancelAcquire()
	if err != nil {
		switch {
		case errors.Is(err, vmpool.ErrPoolExhausted):
			log.Info("VM pool exhausted, returning ticket to pool")
			s.unclaim(t.ID, "vm pool exhausted")
		case ctx.Err() != nil:
			log.Info("Interrupted while acquiring VM, returning ticket to pool")
			s.unclaim(t.ID, "shutdown drain")
		default:
			log.Warn("VM acquire failed, returning ticket to pool", "error", err)
			s.unclaim(t.ID, "vm acquire failed")
		}
		return
	}

	// Exactly one release per acquired slot, on every exit path. The pool
	// treats an already-freed slot as a no-op, so this is safe alongside the
	// reaper's kill.
	var releaseOnce sync.Once
	releaseSlot := func() {
		releaseOnce.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.pool.Release(releaseCtx, slot.ID); err != nil {
				log.Warn("Failed to release VM slot", "vm_id", slot.ID, "error", err)
			}
		})
	}
	defer releaseSlot()

	bound, err := s.tickets.BindVM(ctx, t.ID, PendingSlot, slot.ID)
	if err != nil {
		log.Error("Failed to bind VM slot", "vm_id", slot.ID, "error", err)
		s.unclaim(t.ID, "vm bind failed")
		return
	}
	if !bound {
		// Reaped or cancelled while the acquire was in flight; the slot just
		// goes back.
		log.Info("Ticket moved during VM acquire, dropping claim", "vm_id", slot.ID)
		return
	}

	log.Info("Dispatching ticket", "vm_id", slot.ID, "mode", t.ExecutionMode)

	execCtx, cancelExec := context.WithTimeout(ctx, s.cfg.TicketTimeout)
	defer cancelExec()

	hbStop := make(chan struct{})
	hbDone := make(chan struct{})
	go s.runHeartbeat(execCtx, t, cancelExec, hbStop, hbDone)

	result := executor.Execute(execCtx, t, slot)

	close(hbStop)
	<-hbDone

	switch {
	case ctx.Err() != nil:
		// Shutdown drain or an operator cancel. Hand the work back; the
		// guard quietly refuses for rows that already left in_progress.
		log.Info("Execution interrupted, returning ticket to pool")
		s.unclaim(t.ID, "shutdown drain")
		return
	case errors.Is(execCtx.Err(), context.DeadlineExceeded):
		result = &ExecutionResult{Error: fmt.Errorf("ticket timeout after %v", s.cfg.TicketTimeout)}
	case result == nil:
		result = &ExecutionResult{Error: fmt.Errorf("executor returned no result")}
	}

	if result.Error == nil && result.BranchName == "" {
		result.Error = fmt.Errorf("execution completed without a branch")
	}

	if result.Error != nil {
		log.Warn("Execution failed", "error", result.Error)
		state, err := s.failures.Route(context.Background(), t.ID, "scheduler", result.Error.Error())
		if err != nil {
			log.Error("Failed to route execution failure", "error", err)
			return
		}
		log.Info("Execution failure routed", "next_state", state)
		return
	}

	branch, outputs := result.BranchName, result.Outputs
	moved, err := s.tickets.Transition(context.Background(), services.TransitionInput{
		TicketID: t.ID,
		From:     []ticket.State{ticket.StateInProgress},
		To:       ticket.StateVerifying,
		Actor:    "scheduler",
		Cause:    "execution complete",
		Mutate: func(u *ent.TicketUpdate) {
			u.SetBranchName(branch)
			if len(outputs) > 0 {
				u.SetOutputs(outputs)
			}
		},
	})
	if err != nil {
		log.Error("Failed to record completion", "error", err)
		return
	}
	if !moved {
		log.Warn("Ticket moved before completion could be recorded")
		return
	}

	log.Info("Execution complete, queueing verification", "branch_name", branch)
	s.pipeline.RunAsync(t.ID)
}

// runHeartbeat extends the ticket's lease on a fixed cadence for as long as
// the execution runs. A rejected heartbeat means the lease was lost — the
// reaper or another engine owns the row now — so the execution is cancelled.
func (s *Scheduler) runHeartbeat(ctx context.Context, t *ent.Ticket, cancelExec context.CancelFunc, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	agentID := lifecycle.ForgeAgent
	if t.AssigneeID != nil && *t.AssigneeID != "" {
		agentID = *t.AssigneeID
	}

	ticker := time.NewTicker(s.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			ok, err := s.tickets.Heartbeat(ctx, models.HeartbeatRequest{
				AgentID:  agentID,
				TicketID: t.ID,
			}, s.cfg.LeaseWindow)
			if err != nil {
				slog.Warn("Heartbeat failed", "ticket_id", t.ID, "error", err)
				continue
			}
			if !ok {
				slog.Warn("Lease lost, aborting execution", "ticket_id", t.ID)
				cancelExec()
				return
			}
		}
	}
}

// unclaim returns a dispatched ticket to the ready pool with its bindings
// cleared. A false guard is expected here: the row may have been reaped or
// cancelled while the task was unwinding.
func (s *Scheduler) unclaim(ticketID, cause string) {
	ok, err := s.tickets.Transition(context.Background(), services.TransitionInput{
		TicketID: ticketID,
		From:     []ticket.State{ticket.StateInProgress, ticket.StateAssigned},
		To:       ticket.StateReady,
		Actor:    "scheduler",
		Cause:    cause,
		Mutate:   services.ClearDispatch,
	})
	if err != nil {
		slog.Error("Failed to return ticket to pool",
			"ticket_id", ticketID, "cause", cause, "error", err)
		return
	}
	if !ok {
		slog.Debug("Unclaim skipped, ticket already moved",
			"ticket_id", ticketID, "cause", cause)
	}
}
