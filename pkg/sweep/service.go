// Package sweep runs the background maintenance passes over the ticket pool:
// dependency unblocking, stuck-ticket reporting, and progress-log compaction.
package sweep

import (
	"context"
	"log/slog"
	"time"

	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/services"
)

// Service owns the sweep loop. Every pass is idempotent and safe to run
// concurrently with scheduling and with other replicas: the unblock pass
// writes through guarded transitions, the other two never change state.
type Service struct {
	config  *config.SweepConfig
	tickets *services.TicketService
	events  *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a sweep service. Call Start to begin sweeping.
func NewService(cfg *config.SweepConfig, tickets *services.TicketService, events *services.EventService) *Service {
	return &Service{
		config:  cfg,
		tickets: tickets,
		events:  events,
	}
}

// Start launches the background loop. Calling Start twice is a no-op.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx)

	slog.Info("Sweep service started",
		"unblock_interval", s.config.UnblockInterval,
		"stuck_threshold", s.config.StuckThreshold,
		"event_retention", s.config.EventRetention)
}

// Stop halts the loop and waits for an in-flight pass to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Sweep service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	// Settle the dependency graph immediately so tickets whose dependencies
	// completed while the engine was down do not wait a full interval.
	s.unblockEligible(ctx)

	unblock := time.NewTicker(s.config.UnblockInterval)
	defer unblock.Stop()
	stuck := time.NewTicker(s.config.StuckReportInterval)
	defer stuck.Stop()
	compact := time.NewTicker(s.config.CompactionInterval)
	defer compact.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-unblock.C:
			s.unblockEligible(ctx)
		case <-stuck.C:
			s.reportStuck(ctx)
		case <-compact.C:
			s.compactEvents(ctx)
		}
	}
}

// unblockEligible promotes blocked tickets whose dependencies are all done.
// A dependency id with no backing row never satisfies the gate: the ticket
// stays blocked and the stuck report surfaces it eventually. Losing the
// transition guard to a concurrent replica is fine, the row already moved.
func (s *Service) unblockEligible(ctx context.Context) {
	blocked, err := s.tickets.ListBlocked(ctx)
	if err != nil {
		slog.Error("Sweep: failed to list blocked tickets", "error", err)
		return
	}
	if len(blocked) == 0 {
		return
	}

	var depIDs []string
	seen := map[string]bool{}
	for _, t := range blocked {
		for _, id := range t.DependsOn {
			if !seen[id] {
				seen[id] = true
				depIDs = append(depIDs, id)
			}
		}
	}
	states, err := s.tickets.DependencyStates(ctx, depIDs)
	if err != nil {
		slog.Error("Sweep: failed to resolve dependency states", "error", err)
		return
	}

	unblocked := 0
	for _, t := range blocked {
		if !allDone(t.DependsOn, states) {
			continue
		}
		ok, err := s.tickets.Transition(ctx, services.TransitionInput{
			TicketID: t.ID,
			From:     []ticket.State{ticket.StateBlocked},
			To:       ticket.StateReady,
			Actor:    "sweep",
			Cause:    "all dependencies done",
		})
		if err != nil {
			slog.Error("Sweep: failed to unblock ticket", "ticket_id", t.ID, "error", err)
			continue
		}
		if ok {
			unblocked++
		}
	}
	if unblocked > 0 {
		slog.Info("Sweep: tickets unblocked", "count", unblocked)
	}
}

// reportStuck logs tickets that sat unchanged in a working state past the
// threshold. Diagnostic only: no state changes here.
func (s *Service) reportStuck(ctx context.Context) {
	stuck, err := s.tickets.ListStuck(ctx, s.config.StuckThreshold)
	if err != nil {
		slog.Error("Sweep: failed to list stuck tickets", "error", err)
		return
	}
	for _, t := range stuck {
		slog.Warn("Ticket stuck",
			"ticket_id", t.ID,
			"state", t.State,
			"idle", time.Since(t.UpdatedAt).Round(time.Second),
			"retry_count", t.RetryCount)
	}
}

// compactEvents trims aged progress events of terminal tickets.
func (s *Service) compactEvents(ctx context.Context) {
	n, err := s.events.CompactTerminalEvents(ctx, s.config.EventRetention)
	if err != nil {
		slog.Error("Sweep: event compaction failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Sweep: compacted terminal ticket events", "deleted", n)
	}
}

// allDone reports whether every dependency id resolves to a done ticket.
func allDone(deps []string, states map[string]ticket.State) bool {
	for _, id := range deps {
		if states[id] != ticket.StateDone {
			return false
		}
	}
	return true
}
