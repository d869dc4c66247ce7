package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketevent"
	"github.com/forgeworks/forge/pkg/lifecycle"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/google/uuid"
)

// notBeforeGuard keeps retried tickets out of the claim pools until the
// advisory delay written by the failure classifier has passed. The timestamp
// lives inside the retry_strategy document, so no extra column is needed and
// tickets that never failed pass the guard for free.
const notBeforeGuard = `((retry_strategy ->> 'not_before') IS NULL OR (retry_strategy ->> 'not_before')::timestamptz <= now())`

// AgentSlotPrefix marks vm_id values that stand in for a pull agent's own
// sandbox. They satisfy the dispatch invariants but name no pool slot, so
// the reaper must never ask the pool to kill one.
const AgentSlotPrefix = "agent-slot/"

// TicketService owns ticket persistence. Every state change flows through a
// guarded conditional update: a write that matches zero rows means the row
// moved underneath the caller and is reported as false, never as an error.
type TicketService struct {
	client *ent.Client
}

// NewTicketService creates a new TicketService
func NewTicketService(client *ent.Client) *TicketService {
	return &TicketService{client: client}
}

// ─── Intake ──────────────────────────────────────────────────────────────────

// CreateTicket inserts a draft ticket handed over by the upstream planner.
// The ticket stays in draft until its build is activated.
func (s *TicketService) CreateTicket(httpCtx context.Context, req models.CreateTicketRequest) (*ent.Ticket, error) {
	if req.TenantID == "" {
		return nil, NewValidationError("tenant_id", "required")
	}
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	ticketID := req.TicketID
	if ticketID == "" {
		ticketID = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := s.client.Project.Query().
		Where(project.IDEQ(req.ProjectID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("project %s: %w", req.ProjectID, ErrNotFound)
	}

	builder := s.client.Ticket.Create().
		SetID(ticketID).
		SetTenantID(req.TenantID).
		SetProjectID(req.ProjectID).
		SetTitle(req.Title)

	if req.BuildID != "" {
		builder.SetBuildID(req.BuildID)
	}
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.AcceptanceCriteria != "" {
		builder.SetAcceptanceCriteria(req.AcceptanceCriteria)
	}
	if len(req.DependsOn) > 0 {
		builder.SetDependsOn(req.DependsOn)
	}
	if req.ExecutionMode != "" {
		mode := ticket.ExecutionMode(req.ExecutionMode)
		if err := ticket.ExecutionModeValidator(mode); err != nil {
			return nil, NewValidationError("execution_mode", err.Error())
		}
		builder.SetExecutionMode(mode)
	}
	if req.WorkflowID != "" {
		builder.SetWorkflowID(req.WorkflowID)
	}
	if req.Size != "" {
		size := ticket.Size(req.Size)
		if err := ticket.SizeValidator(size); err != nil {
			return nil, NewValidationError("size", err.Error())
		}
		builder.SetSize(size)
	}
	if req.Inputs != nil {
		builder.SetInputs(req.Inputs)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return t, nil
}

// ActivateBuild routes every draft ticket of a batch into the pool: tickets
// whose dependencies are all done (or that have none) become ready, the rest
// blocked. Both get the forge-agent assignment that makes them claimable
// later. Idempotent: a second pass finds no drafts and reports zero counts.
func (s *TicketService) ActivateBuild(httpCtx context.Context, buildID string) (*models.ActivationCounts, error) {
	if buildID == "" {
		return nil, NewValidationError("build_id", "required")
	}

	// Use background context with timeout for critical bulk write
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	total, err := tx.Ticket.Query().
		Where(ticket.BuildIDEQ(buildID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count build tickets: %w", err)
	}
	if total == 0 {
		return nil, fmt.Errorf("build %s: %w", buildID, ErrNotFound)
	}

	drafts, err := tx.Ticket.Query().
		Where(
			ticket.BuildIDEQ(buildID),
			ticket.StateEQ(ticket.StateDraft),
		).
		Order(ent.Asc(ticket.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query draft tickets: %w", err)
	}
	if len(drafts) == 0 {
		return &models.ActivationCounts{}, nil // already activated
	}

	// Resolve all dependency states in one query across the batch. A
	// dependency id that resolves to no row counts as unresolved; the
	// ticket blocks and the stuck report will surface it.
	var depIDs []string
	for _, t := range drafts {
		depIDs = append(depIDs, t.DependsOn...)
	}
	done := map[string]bool{}
	if len(depIDs) > 0 {
		deps, err := tx.Ticket.Query().
			Where(ticket.IDIn(depIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
		}
		for _, d := range deps {
			done[d.ID] = d.State == ticket.StateDone
		}
	}

	var readyIDs, blockedIDs []string
	for _, t := range drafts {
		if depsResolved(t.DependsOn, done) {
			readyIDs = append(readyIDs, t.ID)
		} else {
			blockedIDs = append(blockedIDs, t.ID)
		}
	}

	counts := &models.ActivationCounts{}
	if len(readyIDs) > 0 {
		n, err := tx.Ticket.Update().
			Where(ticket.IDIn(readyIDs...), ticket.StateEQ(ticket.StateDraft)).
			SetState(ticket.StateReady).
			SetAssigneeID(lifecycle.ForgeAgent).
			SetAssigneeType(ticket.AssigneeTypeAgent).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to activate ready tickets: %w", err)
		}
		counts.Ready = n
		if err := appendActivationEvents(ctx, tx, readyIDs, ticket.StateReady); err != nil {
			return nil, err
		}
	}
	if len(blockedIDs) > 0 {
		n, err := tx.Ticket.Update().
			Where(ticket.IDIn(blockedIDs...), ticket.StateEQ(ticket.StateDraft)).
			SetState(ticket.StateBlocked).
			SetAssigneeID(lifecycle.ForgeAgent).
			SetAssigneeType(ticket.AssigneeTypeAgent).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to block gated tickets: %w", err)
		}
		counts.Blocked = n
		if err := appendActivationEvents(ctx, tx, blockedIDs, ticket.StateBlocked); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit activation: %w", err)
	}

	slog.Info("Build activated",
		"build_id", buildID,
		"ready", counts.Ready,
		"blocked", counts.Blocked)
	return counts, nil
}

// depsResolved reports whether every dependency id is known and done.
func depsResolved(deps []string, done map[string]bool) bool {
	for _, id := range deps {
		if !done[id] {
			return false
		}
	}
	return true
}

// appendActivationEvents bulk-writes the draft transition events.
func appendActivationEvents(ctx context.Context, tx *ent.Tx, ids []string, to ticket.State) error {
	builders := make([]*ent.TicketEventCreate, 0, len(ids))
	for _, id := range ids {
		builders = append(builders, tx.TicketEvent.Create().
			SetID(uuid.New().String()).
			SetTicketID(id).
			SetKind(ticketevent.KindTransition).
			SetFromState(string(ticket.StateDraft)).
			SetToState(string(to)).
			SetActor("activation").
			SetMessage("build activation"))
	}
	if _, err := tx.TicketEvent.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to append activation events: %w", err)
	}
	return nil
}

// ─── Claim paths ─────────────────────────────────────────────────────────────

// ReserveReady returns up to limit dispatch candidates: ready tickets with an
// agent assignment and no VM bound, oldest first. The read takes no locks;
// callers must still win the conditional Claim before acting on a row.
func (s *TicketService) ReserveReady(ctx context.Context, limit int, modes []ticket.ExecutionMode, excludeVMIDs []string) ([]*ent.Ticket, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := s.client.Ticket.Query().
		Where(
			ticket.StateEQ(ticket.StateReady),
			ticket.AssigneeIDNotNil(),
			ticket.AssigneeTypeEQ(ticket.AssigneeTypeAgent),
		).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP(notBeforeGuard))
		})

	if len(excludeVMIDs) > 0 {
		// NOT IN over a nullable column drops NULL rows, so the unbound
		// case is OR'ed in explicitly.
		query = query.Where(ticket.Or(
			ticket.VMIDIsNil(),
			ticket.Not(ticket.VMIDIn(excludeVMIDs...)),
		))
	} else {
		query = query.Where(ticket.VMIDIsNil())
	}
	if len(modes) > 0 {
		query = query.Where(ticket.ExecutionModeIn(modes...))
	}

	tickets, err := query.
		Order(ent.Asc(ticket.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve ready tickets: %w", err)
	}
	return tickets, nil
}

// Claim atomically moves a ready ticket to in_progress, binding the VM slot
// and opening the lease. The conditional update is the serialization point
// between competing dispatchers: exactly one caller sees true.
func (s *TicketService) Claim(httpCtx context.Context, ticketID, vmID, engineID string, leaseWindow time.Duration) (bool, error) {
	if ticketID == "" {
		return false, NewValidationError("ticket_id", "required")
	}
	if vmID == "" {
		return false, NewValidationError("vm_id", "required")
	}
	if leaseWindow <= 0 {
		return false, NewValidationError("lease_window", "must be positive")
	}

	// Use background context with timeout so shutdown cannot strand a
	// half-claimed row
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	update := tx.Ticket.Update().
		Where(
			ticket.IDEQ(ticketID),
			ticket.StateEQ(ticket.StateReady),
			ticket.VMIDIsNil(),
		).
		SetState(ticket.StateInProgress).
		SetVMID(vmID).
		SetStartedAt(now).
		SetLastHeartbeat(now).
		SetLeaseExpires(now.Add(leaseWindow))
	if engineID != "" {
		update = update.SetEngineID(engineID)
	} else {
		update = update.ClearEngineID()
	}

	count, err := update.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to claim ticket: %w", err)
	}
	if count == 0 {
		return false, nil // another claimer won, or the row moved
	}

	if err := appendTransitionEvent(ctx, tx, ticketID, ticket.StateReady, ticket.StateInProgress, "scheduler", "claimed for dispatch"); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit claim: %w", err)
	}

	slog.Info("Ticket state transition",
		"ticket_id", ticketID,
		"from", ticket.StateReady,
		"to", ticket.StateInProgress,
		"actor", "scheduler",
		"vm_id", vmID)
	return true, nil
}

// BindVM swaps the placeholder written at claim time for the real slot id
// once the pool acquire returns. Guarded on the current binding so a
// reaped-and-reclaimed ticket is never cross-bound.
func (s *TicketService) BindVM(httpCtx context.Context, ticketID, currentVMID, vmID string) (bool, error) {
	if ticketID == "" {
		return false, NewValidationError("ticket_id", "required")
	}
	if vmID == "" {
		return false, NewValidationError("vm_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Ticket.Update().
		Where(
			ticket.IDEQ(ticketID),
			ticket.StateEQ(ticket.StateInProgress),
			ticket.VMIDEQ(currentVMID),
		).
		SetVMID(vmID).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to bind vm: %w", err)
	}
	return count == 1, nil
}

// ClaimNext claims the next eligible ticket for a pull agent using FOR UPDATE
// SKIP LOCKED, so competing agents dequeue distinct rows. Selection is oldest
// first with the small-before-large size tiebreak. Forge agents claim from
// the ready pool; sentinel agents target in_review, which is a read-only
// lookup because review rows already belong to the sentinel and advance only
// through approve or reject.
func (s *TicketService) ClaimNext(httpCtx context.Context, req models.ClaimRequest, leaseWindow time.Duration) (*ent.Ticket, error) {
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if leaseWindow <= 0 {
		return nil, NewValidationError("lease_window", "must be positive")
	}

	target := ticket.StateReady
	if req.Filter != nil && req.Filter.State != "" {
		switch ticket.State(req.Filter.State) {
		case ticket.StateReady:
		case ticket.StateInReview:
			target = ticket.StateInReview
		default:
			return nil, NewValidationError("ticket_filter.state", "must be ready or in_review")
		}
	}
	if target == ticket.StateInReview {
		return s.nextReviewTicket(httpCtx, req)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := tx.Ticket.Query().
		Where(
			ticket.StateEQ(ticket.StateReady),
			ticket.AssigneeIDNotNil(),
			ticket.AssigneeTypeEQ(ticket.AssigneeTypeAgent),
			ticket.VMIDIsNil(),
			ticket.ExecutionModeEQ(ticket.ExecutionModePull),
		).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP(notBeforeGuard))
		})
	query = applyClaimFilter(query, req)

	row, err := query.
		Order(claimOrder()...).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTicketsAvailable
		}
		return nil, fmt.Errorf("failed to query claim pool: %w", err)
	}

	// Pull agents that manage their own environment get a surrogate slot
	// id, keeping "vm_id set while dispatched" uniform for the reaper.
	vmID := req.VMID
	if vmID == "" {
		vmID = AgentSlotPrefix + req.AgentID
	}

	now := time.Now()
	row, err = row.Update().
		SetState(ticket.StateInProgress).
		SetAssigneeID(req.AgentID).
		SetAssigneeType(ticket.AssigneeTypeAgent).
		SetVMID(vmID).
		SetStartedAt(now).
		SetLastHeartbeat(now).
		SetLeaseExpires(now.Add(leaseWindow)).
		ClearEngineID().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim ticket: %w", err)
	}

	if err := appendTransitionEvent(ctx, tx, row.ID, ticket.StateReady, ticket.StateInProgress, req.AgentID, "claimed via agent surface"); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	slog.Info("Ticket state transition",
		"ticket_id", row.ID,
		"from", ticket.StateReady,
		"to", ticket.StateInProgress,
		"actor", req.AgentID,
		"vm_id", vmID)
	return row, nil
}

// nextReviewTicket finds the oldest in_review ticket for a sentinel poll.
func (s *TicketService) nextReviewTicket(ctx context.Context, req models.ClaimRequest) (*ent.Ticket, error) {
	query := s.client.Ticket.Query().
		Where(
			ticket.StateEQ(ticket.StateInReview),
			ticket.AssigneeIDEQ(lifecycle.SentinelAgent),
		)
	query = applyClaimFilter(query, req)

	row, err := query.Order(claimOrder()...).First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTicketsAvailable
		}
		return nil, fmt.Errorf("failed to query review pool: %w", err)
	}
	return row, nil
}

// applyClaimFilter narrows a claim query by the optional request filters.
func applyClaimFilter(query *ent.TicketQuery, req models.ClaimRequest) *ent.TicketQuery {
	if req.ProjectID != "" {
		query = query.Where(ticket.ProjectIDEQ(req.ProjectID))
	}
	if req.Filter == nil {
		return query
	}
	if req.Filter.Size != "" {
		query = query.Where(ticket.SizeEQ(ticket.Size(req.Filter.Size)))
	}
	if req.Filter.BuildID != "" {
		query = query.Where(ticket.BuildIDEQ(req.Filter.BuildID))
	}
	return query
}

// claimOrder is oldest-first with the size tiebreak small < medium < large.
func claimOrder() []ticket.OrderOption {
	return []ticket.OrderOption{
		ent.Asc(ticket.FieldCreatedAt),
		func(sel *sql.Selector) {
			sel.OrderExpr(sql.Expr("CASE size WHEN 'small' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END"))
		},
	}
}

// ─── Lease upkeep ────────────────────────────────────────────────────────────

// Heartbeat extends the agent's lease and optionally appends a progress or
// status note to the ticket's event log. False means the agent no longer
// owns the row (reaped, reassigned, or never held); the agent must stop
// working and release its environment.
func (s *TicketService) Heartbeat(httpCtx context.Context, req models.HeartbeatRequest, leaseWindow time.Duration) (bool, error) {
	if req.TicketID == "" {
		return false, NewValidationError("ticket_id", "required")
	}
	if req.AgentID == "" {
		return false, NewValidationError("agent_id", "required")
	}
	if leaseWindow <= 0 {
		return false, NewValidationError("lease_window", "must be positive")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	count, err := tx.Ticket.Update().
		Where(
			ticket.IDEQ(req.TicketID),
			ticket.AssigneeIDEQ(req.AgentID),
			ticket.StateIn(lifecycle.ActiveStates()...),
		).
		SetLastHeartbeat(now).
		SetLeaseExpires(now.Add(leaseWindow)).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to extend lease: %w", err)
	}
	if count == 0 {
		return false, nil
	}

	kind, message := ticketevent.KindProgress, req.Progress
	if message == "" {
		kind, message = ticketevent.KindHeartbeat, req.StatusMessage
	}
	if message != "" {
		_, err = tx.TicketEvent.Create().
			SetID(uuid.New().String()).
			SetTicketID(req.TicketID).
			SetKind(kind).
			SetActor(req.AgentID).
			SetMessage(message).
			Save(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to append progress: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit heartbeat: %w", err)
	}
	return true, nil
}

// ConfirmBranch records the working branch an agent created after its claim.
// The write is conditional on the agent still owning the in_progress row, and
// idempotent: repeating the call with the same branch changes nothing. False
// means the agent no longer owns the row.
func (s *TicketService) ConfirmBranch(httpCtx context.Context, req models.StartRequest) (bool, error) {
	if req.TicketID == "" {
		return false, NewValidationError("ticket_id", "required")
	}
	if req.AgentID == "" {
		return false, NewValidationError("agent_id", "required")
	}
	if req.BranchName == "" {
		return false, NewValidationError("branch_name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Ticket.Update().
		Where(
			ticket.IDEQ(req.TicketID),
			ticket.AssigneeIDEQ(req.AgentID),
			ticket.StateEQ(ticket.StateInProgress),
		).
		SetBranchName(req.BranchName).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to confirm branch: %w", err)
	}
	return count > 0, nil
}

// ─── Guarded transitions ─────────────────────────────────────────────────────

// TransitionInput describes one guarded state transition.
type TransitionInput struct {
	TicketID string
	// From lists the states the row may currently be in. The update is
	// conditional on the observed state being one of them.
	From []ticket.State
	To   ticket.State
	// Actor is recorded on the transition event: an agent id, or one of
	// scheduler, reaper, sweep, pipeline, activation, operator.
	Actor string
	// Cause is a short human-readable reason recorded on the event.
	Cause string
	// Assignee, when set, additionally conditions the update on the current
	// assignee_id. Agent-surface writes use it as the ownership guard: a
	// reaped-and-reclaimed row fails the guard instead of being overwritten.
	Assignee string
	// Mutate, when set, applies additional field writes inside the same
	// conditional update.
	Mutate func(*ent.TicketUpdate)
}

// Transition is the single write path for ticket state. It applies the state
// change plus any extra field writes atomically, conditional on the observed
// state being one of the expected ones, and appends a transition event in the
// same transaction. A false return means the guard rejected the write: the
// world moved, and the caller must re-read and re-decide rather than retry
// the same transition blindly.
func (s *TicketService) Transition(httpCtx context.Context, in TransitionInput) (bool, error) {
	if in.TicketID == "" {
		return false, NewValidationError("ticket_id", "required")
	}
	if len(in.From) == 0 {
		return false, NewValidationError("from", "at least one expected state required")
	}
	if in.Actor == "" {
		return false, NewValidationError("actor", "required")
	}
	for _, from := range in.From {
		if !lifecycle.CanTransition(from, in.To) {
			return false, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, in.To)
		}
	}

	// Use background context with timeout so shutdown cannot strand a
	// half-applied transition
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.Ticket.Query().
		Where(ticket.IDEQ(in.TicketID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to read ticket: %w", err)
	}

	observed := row.State
	allowed := false
	for _, from := range in.From {
		if observed == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return false, nil
	}
	if in.Assignee != "" && (row.AssigneeID == nil || *row.AssigneeID != in.Assignee) {
		return false, nil
	}

	// The update re-checks the observed state, closing the read-update gap:
	// a concurrent writer makes this match zero rows.
	update := tx.Ticket.Update().
		Where(
			ticket.IDEQ(in.TicketID),
			ticket.StateEQ(observed),
		).
		SetState(in.To)
	if in.Assignee != "" {
		update = update.Where(ticket.AssigneeIDEQ(in.Assignee))
	}
	if in.Mutate != nil {
		in.Mutate(update)
	}
	count, err := update.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to apply transition: %w", err)
	}
	if count == 0 {
		return false, nil
	}

	if err := appendTransitionEvent(ctx, tx, in.TicketID, observed, in.To, in.Actor, in.Cause); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transition: %w", err)
	}

	slog.Info("Ticket state transition",
		"ticket_id", in.TicketID,
		"from", observed,
		"to", in.To,
		"actor", in.Actor,
		"cause", in.Cause)
	return true, nil
}

// ClearDispatch is the field mutation that detaches a ticket from its slot
// and lease when it leaves the dispatched states. The assignment is kept so
// the row stays claimable: ready rows must carry an agent assignee.
func ClearDispatch(u *ent.TicketUpdate) {
	u.ClearVMID().
		ClearLeaseExpires().
		ClearEngineID().
		ClearLastHeartbeat()
}

// appendTransitionEvent records a state change on the ticket's event log
// inside the caller's transaction.
func appendTransitionEvent(ctx context.Context, tx *ent.Tx, ticketID string, from, to ticket.State, actor, cause string) error {
	_, err := tx.TicketEvent.Create().
		SetID(uuid.New().String()).
		SetTicketID(ticketID).
		SetKind(ticketevent.KindTransition).
		SetFromState(string(from)).
		SetToState(string(to)).
		SetActor(actor).
		SetMessage(cause).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append transition event: %w", err)
	}
	return nil
}

// ─── Operator actions ────────────────────────────────────────────────────────

// ResumeTicket returns an on_hold ticket to the pool with a fresh retry
// budget. This is the human escape hatch for tickets the classifier parked.
func (s *TicketService) ResumeTicket(ctx context.Context, ticketID, actor string) (*ent.Ticket, error) {
	return s.operatorTransition(ctx, ticketID, actor, "operator resume",
		[]ticket.State{ticket.StateOnHold}, ticket.StateReady,
		func(u *ent.TicketUpdate) {
			u.SetAssigneeID(lifecycle.ForgeAgent).
				SetAssigneeType(ticket.AssigneeTypeAgent).
				SetRetryCount(0).
				ClearRetryStrategy().
				ClearHoldReason().
				ClearError()
		})
}

// CancelTicket terminates any non-terminal ticket. The caller is responsible
// for killing a bound VM slot after the transition lands.
func (s *TicketService) CancelTicket(ctx context.Context, ticketID, actor, reason string) (*ent.Ticket, error) {
	cause := "operator cancel"
	if reason != "" {
		cause = reason
	}
	return s.operatorTransition(ctx, ticketID, actor, cause,
		lifecycle.NonTerminalStates(), ticket.StateCancelled,
		func(u *ent.TicketUpdate) {
			u.SetCompletedAt(time.Now())
			ClearDispatch(u)
		})
}

// ReplayTicket routes a needs_review ticket back to the pool for another
// execution attempt, clearing the previous verification outcome.
func (s *TicketService) ReplayTicket(ctx context.Context, ticketID, actor string) (*ent.Ticket, error) {
	return s.operatorTransition(ctx, ticketID, actor, "replay for another attempt",
		[]ticket.State{ticket.StateNeedsReview}, ticket.StateReady,
		func(u *ent.TicketUpdate) {
			u.SetAssigneeID(lifecycle.ForgeAgent).
				SetAssigneeType(ticket.AssigneeTypeAgent).
				ClearVerificationStatus().
				ClearPrURL()
		})
}

// ApproveTicket records the sentinel's approval of a review ticket.
func (s *TicketService) ApproveTicket(ctx context.Context, ticketID, actor string) (*ent.Ticket, error) {
	return s.operatorTransition(ctx, ticketID, actor, "review approved",
		[]ticket.State{ticket.StateInReview}, ticket.StateDone,
		func(u *ent.TicketUpdate) {
			u.SetCompletedAt(time.Now())
			ClearDispatch(u)
		})
}

// RejectTicket records the sentinel's rejection, parking the ticket in
// needs_review for a replay decision.
func (s *TicketService) RejectTicket(ctx context.Context, ticketID, actor, reason string) (*ent.Ticket, error) {
	cause := "review rejected"
	if reason != "" {
		cause = reason
	}
	return s.operatorTransition(ctx, ticketID, actor, cause,
		[]ticket.State{ticket.StateInReview}, ticket.StateNeedsReview,
		func(u *ent.TicketUpdate) {
			u.AddRejectionCount(1)
		})
}

// operatorTransition wraps Transition for the single-ticket admin actions,
// mapping a guard rejection to ErrGuardConflict with the observed state.
func (s *TicketService) operatorTransition(ctx context.Context, ticketID, actor, cause string, from []ticket.State, to ticket.State, mutate func(*ent.TicketUpdate)) (*ent.Ticket, error) {
	if actor == "" {
		actor = "operator"
	}
	ok, err := s.Transition(ctx, TransitionInput{
		TicketID: ticketID,
		From:     from,
		To:       to,
		Actor:    actor,
		Cause:    cause,
		Mutate:   mutate,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		row, err := s.GetTicket(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: ticket %s is %s", ErrGuardConflict, ticketID, row.State)
	}
	return s.GetTicket(ctx, ticketID)
}

// ─── Reads ───────────────────────────────────────────────────────────────────

// GetTicket retrieves a ticket by id with its project edge loaded.
func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (*ent.Ticket, error) {
	if ticketID == "" {
		return nil, NewValidationError("ticket_id", "required")
	}

	t, err := s.client.Ticket.Query().
		Where(ticket.IDEQ(ticketID)).
		WithProject().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return t, nil
}

// ListTickets lists tickets with filtering and pagination
func (s *TicketService) ListTickets(ctx context.Context, filters models.TicketFilters) (*models.TicketListResponse, error) {
	query := s.client.Ticket.Query()

	if filters.State != "" {
		state := ticket.State(filters.State)
		if err := ticket.StateValidator(state); err != nil {
			return nil, NewValidationError("state", err.Error())
		}
		query = query.Where(ticket.StateEQ(state))
	}
	if filters.ProjectID != "" {
		query = query.Where(ticket.ProjectIDEQ(filters.ProjectID))
	}
	if filters.BuildID != "" {
		query = query.Where(ticket.BuildIDEQ(filters.BuildID))
	}
	if filters.AssigneeID != "" {
		query = query.Where(ticket.AssigneeIDEQ(filters.AssigneeID))
	}
	if filters.ExecutionMode != "" {
		mode := ticket.ExecutionMode(filters.ExecutionMode)
		if err := ticket.ExecutionModeValidator(mode); err != nil {
			return nil, NewValidationError("execution_mode", err.Error())
		}
		query = query.Where(ticket.ExecutionModeEQ(mode))
	}
	if filters.Search != "" {
		// Matches the GIN index expression over title and description.
		term := filters.Search
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sql.P(func(b *sql.Builder) {
				b.WriteString("to_tsvector('english', title || ' ' || COALESCE(description, '')) @@ plainto_tsquery(")
				b.Arg(term)
				b.WriteString(")")
			}))
		})
	}
	if filters.CreatedAfter != nil {
		query = query.Where(ticket.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(ticket.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	tickets, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(ticket.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &models.TicketListResponse{
		Tickets:    tickets,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ListStuck returns non-terminal, non-ready tickets untouched for longer
// than the threshold. Diagnostic only; nothing is mutated.
func (s *TicketService) ListStuck(ctx context.Context, olderThan time.Duration) ([]*ent.Ticket, error) {
	if olderThan <= 0 {
		return nil, NewValidationError("older_than", "must be positive")
	}
	threshold := time.Now().Add(-olderThan)

	states := make([]ticket.State, 0, 8)
	for _, st := range lifecycle.NonTerminalStates() {
		if st != ticket.StateReady {
			states = append(states, st)
		}
	}

	tickets, err := s.client.Ticket.Query().
		Where(
			ticket.StateIn(states...),
			ticket.UpdatedAtLT(threshold),
		).
		Order(ent.Asc(ticket.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stuck tickets: %w", err)
	}
	return tickets, nil
}

// ListExpiredLeases returns dispatched tickets whose lease has lapsed. The
// comparison uses the database clock so the reaper and racing heartbeats
// resolve against the same time source.
func (s *TicketService) ListExpiredLeases(ctx context.Context) ([]*ent.Ticket, error) {
	tickets, err := s.client.Ticket.Query().
		Where(
			ticket.StateIn(ticket.StateAssigned, ticket.StateInProgress),
			ticket.LeaseExpiresNotNil(),
		).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP("lease_expires < now()"))
		}).
		Order(ent.Asc(ticket.FieldLeaseExpires)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired leases: %w", err)
	}
	return tickets, nil
}

// ListBoundToEngine returns dispatched rows still marked with the given
// engine id, used at startup to recover work stranded by the previous run.
func (s *TicketService) ListBoundToEngine(ctx context.Context, engineID string) ([]*ent.Ticket, error) {
	if engineID == "" {
		return nil, NewValidationError("engine_id", "required")
	}
	tickets, err := s.client.Ticket.Query().
		Where(
			ticket.EngineIDEQ(engineID),
			ticket.StateIn(ticket.StateAssigned, ticket.StateInProgress),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list engine-bound tickets: %w", err)
	}
	return tickets, nil
}

// ListVerifying returns tickets sitting in verifying, oldest update first.
// The pipeline scan re-drives rows whose pipeline run was lost to a crash or
// that a pull agent completed without an engine-side supervisor.
func (s *TicketService) ListVerifying(ctx context.Context, limit int) ([]*ent.Ticket, error) {
	query := s.client.Ticket.Query().
		Where(ticket.StateEQ(ticket.StateVerifying)).
		Order(ent.Asc(ticket.FieldUpdatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}
	tickets, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list verifying tickets: %w", err)
	}
	return tickets, nil
}

// ListBlocked returns blocked tickets for the dependency-unblock sweep.
func (s *TicketService) ListBlocked(ctx context.Context) ([]*ent.Ticket, error) {
	tickets, err := s.client.Ticket.Query().
		Where(ticket.StateEQ(ticket.StateBlocked)).
		Order(ent.Asc(ticket.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked tickets: %w", err)
	}
	return tickets, nil
}

// DependencyStates resolves the states of the given ticket ids in one query.
// Ids with no backing row are absent from the result.
func (s *TicketService) DependencyStates(ctx context.Context, ids []string) (map[string]ticket.State, error) {
	if len(ids) == 0 {
		return map[string]ticket.State{}, nil
	}
	rows, err := s.client.Ticket.Query().
		Where(ticket.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependency states: %w", err)
	}
	states := make(map[string]ticket.State, len(rows))
	for _, r := range rows {
		states[r.ID] = r.State
	}
	return states, nil
}

// CountActive returns the number of tickets currently holding a VM slot.
func (s *TicketService) CountActive(ctx context.Context) (int, error) {
	count, err := s.client.Ticket.Query().
		Where(ticket.StateIn(lifecycle.ActiveStates()...)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active tickets: %w", err)
	}
	return count, nil
}

// CountByState returns the number of tickets in the given state.
func (s *TicketService) CountByState(ctx context.Context, state ticket.State) (int, error) {
	count, err := s.client.Ticket.Query().
		Where(ticket.StateEQ(state)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count tickets by state: %w", err)
	}
	return count, nil
}
