package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/services"
)

// runReaper periodically returns tickets with expired leases to the ready
// pool. Expiry is judged on the database clock, so any replica can reap work
// stranded by any other.
func (s *Scheduler) runReaper(ctx context.Context) {
	log := slog.With("engine_id", s.engineID)
	log.Info("Lease reaper started", "interval", s.cfg.ReaperInterval)

	ticker := time.NewTicker(s.cfg.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			log.Info("Lease reaper shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, lease reaper shutting down")
			return
		case <-ticker.C:
			reaped, err := s.reapExpiredLeases(ctx)
			if err != nil {
				log.Error("Lease scan failed", "error", err)
			} else if reaped > 0 {
				log.Info("Reaped expired leases", "count", reaped)
			}
		}
	}
}

// reapExpiredLeases scans for dispatched tickets whose lease ran out and
// returns each to ready. Progress already written to the event log survives;
// lease expiry is treated like a voluntary release, so the retry budget is
// untouched.
func (s *Scheduler) reapExpiredLeases(ctx context.Context) (int, error) {
	expired, err := s.tickets.ListExpiredLeases(ctx)

	s.mu.Lock()
	s.lastReaperScan = time.Now()
	s.mu.Unlock()

	if err != nil {
		return 0, err
	}

	reaped := 0
	for _, t := range expired {
		if s.reapTicket(ctx, t, "lease expired") {
			reaped++
		}
	}

	if reaped > 0 {
		s.mu.Lock()
		s.reapCount += reaped
		s.mu.Unlock()
	}
	return reaped, nil
}

// reapTicket returns one stranded ticket to the ready pool and tears down
// whatever still holds it: a local task gets cancelled and cleans up after
// itself, a slot bound by a dead engine gets killed directly. Losing the
// guard race is fine — a heartbeat may land between the scan and the write.
func (s *Scheduler) reapTicket(ctx context.Context, t *ent.Ticket, cause string) bool {
	var boundVM string
	if t.VMID != nil {
		boundVM = *t.VMID
	}

	ok, err := s.tickets.Transition(ctx, services.TransitionInput{
		TicketID: t.ID,
		From:     []ticket.State{ticket.StateAssigned, ticket.StateInProgress},
		To:       ticket.StateReady,
		Actor:    "reaper",
		Cause:    cause,
		Mutate:   services.ClearDispatch,
	})
	if err != nil {
		slog.Error("Failed to reap ticket", "ticket_id", t.ID, "error", err)
		return false
	}
	if !ok {
		slog.Debug("Reap lost to a concurrent heartbeat or transition", "ticket_id", t.ID)
		return false
	}

	slog.Warn("Ticket reaped",
		"ticket_id", t.ID,
		"cause", cause,
		"vm_id", boundVM,
		"last_heartbeat", t.LastHeartbeat)

	s.mu.RLock()
	task := s.active[t.ID]
	s.mu.RUnlock()

	if task != nil {
		// One of ours stalled; its cleanup releases the slot.
		task.cancel()
	} else if isPoolSlot(boundVM) {
		killCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.pool.Kill(killCtx, boundVM); err != nil {
			slog.Warn("Failed to kill VM of reaped ticket",
				"ticket_id", t.ID, "vm_id", boundVM, "error", err)
		}
	}
	return true
}

// recoverStrandedTickets runs once at startup: any ticket still bound to
// this engine id belongs to a previous run that died without draining, so
// it goes straight back to the ready pool without waiting out the lease.
func (s *Scheduler) recoverStrandedTickets(ctx context.Context) error {
	stranded, err := s.tickets.ListBoundToEngine(ctx, s.engineID)
	if err != nil {
		return err
	}
	if len(stranded) == 0 {
		return nil
	}

	slog.Warn("Recovering tickets stranded by previous run",
		"engine_id", s.engineID, "count", len(stranded))

	recovered := 0
	for _, t := range stranded {
		if s.reapTicket(ctx, t, "engine restart recovery") {
			recovered++
		}
	}

	s.mu.Lock()
	s.reapCount += recovered
	s.mu.Unlock()

	slog.Info("Startup recovery complete", "recovered", recovered)
	return nil
}
