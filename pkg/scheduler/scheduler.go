package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/services"
	"github.com/forgeworks/forge/pkg/vmpool"
)

// Scheduler is the single active dispatch loop of the engine. It reserves
// ready tickets for the execution modes it has executors for, claims them
// with a conditional update, and supervises each execution in its own task
// goroutine. Concurrency is bounded by the active-task map, which the
// scheduler owns exclusively.
type Scheduler struct {
	engineID string
	tickets  *services.TicketService
	pool     vmpool.Adapter
	pipeline *Pipeline
	failures *FailureRouter
	cfg      *config.SchedulerConfig

	// executors is populated via RegisterExecutor before Start and is
	// read-only afterwards.
	executors map[ticket.ExecutionMode]TicketExecutor

	stopCh   chan struct{}
	stopOnce sync.Once
	loopWG   sync.WaitGroup // claim loop + reaper
	taskWG   sync.WaitGroup // execution tasks

	mu             sync.RWMutex
	started        bool
	startedAt      time.Time
	active         map[string]*activeTask
	reapCount      int
	lastReaperScan time.Time
}

// activeTask tracks one in-flight execution for cancellation and health
// reporting.
type activeTask struct {
	cancel    context.CancelFunc
	startedAt time.Time
}

// NewScheduler creates a scheduler. Executors are registered separately so
// the wiring in main can decide which execution modes this engine serves.
func NewScheduler(engineID string, tickets *services.TicketService, pool vmpool.Adapter, pipeline *Pipeline, failures *FailureRouter, cfg *config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		engineID:  engineID,
		tickets:   tickets,
		pool:      pool,
		pipeline:  pipeline,
		failures:  failures,
		cfg:       cfg,
		executors: make(map[ticket.ExecutionMode]TicketExecutor),
		stopCh:    make(chan struct{}),
		active:    make(map[string]*activeTask),
	}
}

// RegisterExecutor binds an execution mode to its executor. Tickets in modes
// with no executor are never reserved by this engine. Must be called before
// Start.
func (s *Scheduler) RegisterExecutor(mode ticket.ExecutionMode, executor TicketExecutor) {
	s.executors[mode] = executor
}

// Start recovers work stranded by this engine's previous run, then spawns
// the claim loop and the lease reaper. Safe to call multiple times;
// subsequent calls are no-ops.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		slog.Warn("Scheduler already started, ignoring duplicate Start call", "engine_id", s.engineID)
		return nil
	}
	s.started = true
	s.startedAt = time.Now()
	s.mu.Unlock()

	if len(s.executors) == 0 {
		return fmt.Errorf("no executors registered")
	}

	if err := s.recoverStrandedTickets(ctx); err != nil {
		return fmt.Errorf("startup lease recovery: %w", err)
	}

	slog.Info("Starting scheduler",
		"engine_id", s.engineID,
		"max_concurrent", s.cfg.MaxConcurrent,
		"modes", s.registeredModes())

	s.loopWG.Add(2)
	go func() {
		defer s.loopWG.Done()
		s.runClaimLoop(ctx)
	}()
	go func() {
		defer s.loopWG.Done()
		s.runReaper(ctx)
	}()
	return nil
}

// Stop drains the scheduler: the loops exit, active tasks get up to
// GracefulShutdownTimeout to finish, and stragglers are cancelled, which
// returns their tickets to ready and releases their slots.
func (s *Scheduler) Stop() {
	slog.Info("Stopping scheduler", "engine_id", s.engineID, "active_executions", s.activeCount())

	s.stopOnce.Do(func() { close(s.stopCh) })
	s.loopWG.Wait()

	done := make(chan struct{})
	go func() {
		s.taskWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Scheduler drained cleanly")
	case <-time.After(s.cfg.GracefulShutdownTimeout):
		slog.Warn("Drain timeout, cancelling remaining executions", "remaining", s.activeCount())
		s.mu.RLock()
		for _, task := range s.active {
			task.cancel()
		}
		s.mu.RUnlock()
		s.taskWG.Wait()
	}

	s.mu.Lock()
	s.started = false
	s.mu.Unlock()
	slog.Info("Scheduler stopped")
}

// CancelTicket terminates a ticket: the row is transitioned to cancelled
// first, then the supervising task (if this engine runs one) is cancelled
// and any still-bound VM slot is killed.
func (s *Scheduler) CancelTicket(ctx context.Context, ticketID, actor, reason string) (*ent.Ticket, error) {
	// Capture the VM binding before the cancel clears it.
	before, err := s.tickets.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	var boundVM string
	if before.VMID != nil {
		boundVM = *before.VMID
	}

	cancelled, err := s.tickets.CancelTicket(ctx, ticketID, actor, reason)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	task := s.active[ticketID]
	s.mu.RUnlock()

	if task != nil {
		// The task's cleanup releases its own slot.
		task.cancel()
	} else if isPoolSlot(boundVM) {
		killCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.pool.Kill(killCtx, boundVM); err != nil {
			slog.Warn("Failed to kill VM of cancelled ticket",
				"ticket_id", ticketID, "vm_id", boundVM, "error", err)
		}
	}

	return cancelled, nil
}

// Health reports the scheduler snapshot plus the ready-pool depth.
func (s *Scheduler) Health() *Health {
	ctx := context.Background()

	pending, err := s.tickets.CountByState(ctx, ticket.StateReady)
	dbReachable := err == nil
	if err != nil {
		slog.Error("Failed to query pending depth for health check",
			"engine_id", s.engineID, "error", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	executions := make([]ExecutionStatus, 0, len(s.active))
	for id, task := range s.active {
		executions = append(executions, ExecutionStatus{
			TicketID:   id,
			AgeSeconds: int64(now.Sub(task.startedAt).Seconds()),
		})
	}

	var uptime int64
	if s.started {
		uptime = int64(now.Sub(s.startedAt).Seconds())
	}

	return &Health{
		Running:          s.started,
		EngineID:         s.engineID,
		ActiveExecutions: len(s.active),
		ActiveTickets:    executions,
		PendingTickets:   pending,
		MaxConcurrent:    s.cfg.MaxConcurrent,
		TicketsReaped:    s.reapCount,
		LastReaperScan:   s.lastReaperScan,
		UptimeSeconds:    uptime,
		DBReachable:      dbReachable,
	}
}

// runClaimLoop is the adaptive poll loop: reserve candidates up to capacity,
// claim each, and back off while the pool is empty.
func (s *Scheduler) runClaimLoop(ctx context.Context) {
	log := slog.With("engine_id", s.engineID)
	log.Info("Claim loop started")

	interval := s.cfg.BasePollInterval
	for {
		select {
		case <-s.stopCh:
			log.Info("Claim loop shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, claim loop shutting down")
			return
		default:
			claimed, err := s.pollOnce(ctx)
			switch {
			case err == ErrAtCapacity:
				s.sleep(s.jittered(s.cfg.BasePollInterval))
			case err != nil:
				log.Error("Poll cycle failed", "error", err)
				s.sleep(time.Second)
			case claimed > 0:
				interval = s.cfg.BasePollInterval
				s.sleep(s.jittered(interval))
			default:
				interval = s.nextBackoff(interval)
				s.sleep(s.jittered(interval))
			}
		}
	}
}

// pollOnce reserves up to the free capacity and claims each candidate.
// Returns how many claims this cycle won.
func (s *Scheduler) pollOnce(ctx context.Context) (int, error) {
	capacity := s.cfg.MaxConcurrent - s.activeCount()
	if capacity <= 0 {
		return 0, ErrAtCapacity
	}

	candidates, err := s.tickets.ReserveReady(ctx, capacity, s.registeredModes(), nil)
	if err != nil {
		return 0, fmt.Errorf("reserve ready tickets: %w", err)
	}

	claimed := 0
	for _, t := range candidates {
		ok, err := s.tickets.Claim(ctx, t.ID, PendingSlot, s.engineID, s.cfg.LeaseWindow)
		if err != nil {
			slog.Error("Claim failed", "ticket_id", t.ID, "error", err)
			continue
		}
		if !ok {
			// Another claimer won or the row moved; normal under contention.
			slog.Debug("Claim lost", "ticket_id", t.ID)
			continue
		}
		claimed++
		s.spawnTask(t)
	}
	return claimed, nil
}

// spawnTask registers and launches the execution task for a claimed ticket.
func (s *Scheduler) spawnTask(t *ent.Ticket) {
	// Tasks get their own root context: process shutdown drains them via
	// Stop rather than by cancelling the loop context, so terminal writes
	// are never lost mid-flight.
	taskCtx, cancel := context.WithCancel(context.Background())
	task := &activeTask{cancel: cancel, startedAt: time.Now()}

	s.mu.Lock()
	s.active[t.ID] = task
	s.mu.Unlock()

	s.taskWG.Add(1)
	go func() {
		defer s.taskWG.Done()
		defer func() {
			s.mu.Lock()
			// Guard against a reaped ticket being re-claimed while this
			// task is still unwinding: only remove our own registration.
			if cur, ok := s.active[t.ID]; ok && cur == task {
				delete(s.active, t.ID)
			}
			s.mu.Unlock()
			cancel()
		}()
		s.runTask(taskCtx, t)
	}()
}

// registeredModes returns the execution modes this engine can dispatch.
func (s *Scheduler) registeredModes() []ticket.ExecutionMode {
	modes := make([]ticket.ExecutionMode, 0, len(s.executors))
	for mode := range s.executors {
		modes = append(modes, mode)
	}
	return modes
}

func (s *Scheduler) activeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.active)
}

// nextBackoff grows the poll interval after an empty cycle.
func (s *Scheduler) nextBackoff(current time.Duration) time.Duration {
	next := time.Duration(float64(current) * s.cfg.BackoffFactor)
	if next > s.cfg.BackoffMax {
		next = s.cfg.BackoffMax
	}
	return next
}

// jittered spreads an interval by ± the configured jitter.
func (s *Scheduler) jittered(base time.Duration) time.Duration {
	jitter := s.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// sleep waits for the given duration or until stop is signalled.
func (s *Scheduler) sleep(d time.Duration) {
	select {
	case <-s.stopCh:
	case <-time.After(d):
	}
}

// isPoolSlot reports whether a vm_id names a slot leased from the pool, as
// opposed to the pre-acquire placeholder or a pull agent's surrogate.
func isPoolSlot(vmID string) bool {
	return vmID != "" && vmID != PendingSlot && !strings.HasPrefix(vmID, services.AgentSlotPrefix)
}
