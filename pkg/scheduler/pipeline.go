package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketartifact"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/gitforge"
	"github.com/forgeworks/forge/pkg/lifecycle"
	"github.com/forgeworks/forge/pkg/notify"
	"github.com/forgeworks/forge/pkg/services"
	"github.com/forgeworks/forge/pkg/verification"
)

// verifyingScanLimit caps how many stranded rows one scan cycle re-enters.
const verifyingScanLimit = 50

// Pipeline carries a ticket from verifying to its post-execution state:
// verified work gets a pull request and a reviewer, failed verification gets
// stored feedback and a human decision, infrastructure trouble follows the
// configured error policy. Each ticket is processed by at most one run at a
// time, and a periodic scan re-enters rows stranded in verifying by a crash.
type Pipeline struct {
	tickets   *services.TicketService
	artifacts *services.ArtifactService
	projects  *services.ProjectService
	verifier  verification.Client
	forge     gitforge.Client
	notifier  *notify.Service
	cfg       *config.PipelineConfig

	mu       sync.Mutex
	inflight map[string]struct{}

	stopCh   chan struct{}
	stopOnce sync.Once
	runWG    sync.WaitGroup
}

// NewPipeline wires the pipeline. verifier, forge, and notifier may each be
// nil: a nil verifier routes tickets through the error policy, a nil forge
// skips PR creation, a nil notifier skips notifications.
func NewPipeline(tickets *services.TicketService, artifacts *services.ArtifactService, projects *services.ProjectService, verifier verification.Client, forge gitforge.Client, notifier *notify.Service, cfg *config.PipelineConfig) *Pipeline {
	return &Pipeline{
		tickets:   tickets,
		artifacts: artifacts,
		projects:  projects,
		verifier:  verifier,
		forge:     forge,
		notifier:  notifier,
		cfg:       cfg,
		inflight:  make(map[string]struct{}),
		stopCh:    make(chan struct{}),
	}
}

// Start spawns the verifying scan. It drives two kinds of rows: tickets a
// pull agent completed (no engine-side supervisor queued a run for them) and
// tickets stranded by a crash between execution and pipeline completion.
func (p *Pipeline) Start(ctx context.Context) {
	p.runWG.Add(1)
	go func() {
		defer p.runWG.Done()
		p.runScan(ctx)
	}()
}

// Stop halts the scan and waits for in-flight runs to land.
func (p *Pipeline) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.runWG.Wait()
}

// RunAsync processes a ticket in the background. Duplicate submissions for a
// ticket already being processed are dropped.
func (p *Pipeline) RunAsync(ticketID string) {
	p.runWG.Add(1)
	go func() {
		defer p.runWG.Done()
		if err := p.Run(context.Background(), ticketID); err != nil {
			slog.Error("Pipeline run failed", "ticket_id", ticketID, "error", err)
		}
	}()
}

// Run executes the post-execution pipeline for one ticket. Safe to call for
// any ticket id; rows not in verifying are skipped.
func (p *Pipeline) Run(ctx context.Context, ticketID string) error {
	if !p.begin(ticketID) {
		return nil
	}
	defer p.end(ticketID)

	t, err := p.tickets.GetTicket(ctx, ticketID)
	if err != nil {
		return fmt.Errorf("load ticket: %w", err)
	}
	if t.State != ticket.StateVerifying {
		slog.Debug("Pipeline skipped, ticket not in verifying",
			"ticket_id", ticketID, "state", t.State)
		return nil
	}

	project, err := p.projects.GetProject(ctx, t.ProjectID)
	if err != nil {
		return p.handlePipelineError(ctx, t, 0, fmt.Sprintf("load project: %v", err))
	}

	attempt, err := p.attemptNumber(ctx, t.ID)
	if err != nil {
		return p.handlePipelineError(ctx, t, 0, fmt.Sprintf("count verification attempts: %v", err))
	}

	var branch string
	if t.BranchName != nil {
		branch = *t.BranchName
	}

	// The push must never be lost: anything that prevents verification from
	// even starting goes through the error policy rather than failing the
	// ticket.
	switch {
	case p.verifier == nil:
		return p.handlePipelineError(ctx, t, attempt, "no verifier configured")
	case project.RepoURL == "":
		return p.handlePipelineError(ctx, t, attempt, "project has no repo_url, verification impossible")
	case branch == "":
		return p.handlePipelineError(ctx, t, attempt, "ticket reached verification without a branch")
	}

	slog.Info("Verification starting",
		"ticket_id", t.ID, "branch_name", branch, "attempt", attempt)

	verdict, err := p.verifier.Verify(ctx, &verification.Request{
		TicketID:           t.ID,
		BranchName:         branch,
		RepoURL:            project.RepoURL,
		Attempt:            attempt,
		AcceptanceCriteria: t.AcceptanceCriteria,
		Phases:             verification.AllPhases(),
	})
	if err != nil {
		return p.handlePipelineError(ctx, t, attempt, fmt.Sprintf("verification: %v", err))
	}

	if verdict.Status == verification.StatusPassed || verdict.ReadyForPR {
		return p.landPassed(ctx, t, project, branch, attempt, verdict)
	}
	return p.landFailed(ctx, t, attempt, verdict)
}

// landPassed opens the pull request and hands the ticket to the sentinel
// reviewer.
func (p *Pipeline) landPassed(ctx context.Context, t *ent.Ticket, project *ent.Project, branch string, attempt int, verdict *verification.Verdict) error {
	p.appendArtifact(ctx, t.ID, ticketartifact.KindVerificationEvidence, attempt,
		string(verdict.Status), verdict.Evidence)

	if p.forge == nil {
		return p.handlePipelineError(ctx, t, attempt, "verification passed but no git forge configured")
	}

	pr, err := p.forge.CreatePullRequest(ctx, gitforge.PRRequest{
		RepoURL:    project.RepoURL,
		Branch:     branch,
		BaseBranch: project.DefaultBranch,
		Title:      t.Title,
		Body:       prBody(t),
	})
	if err != nil {
		return p.handlePipelineError(ctx, t, attempt, fmt.Sprintf("create pull request: %v", err))
	}

	ok, err := p.tickets.Transition(ctx, services.TransitionInput{
		TicketID: t.ID,
		From:     []ticket.State{ticket.StateVerifying},
		To:       ticket.StateInReview,
		Actor:    "pipeline",
		Cause:    fmt.Sprintf("verification passed on attempt %d", attempt),
		Mutate: func(u *ent.TicketUpdate) {
			u.SetPrURL(pr.URL).
				SetAssigneeID(lifecycle.SentinelAgent).
				SetAssigneeType(ticket.AssigneeTypeAgent).
				SetVerificationStatus(ticket.VerificationStatusPassed)
			services.ClearDispatch(u)
		},
	})
	if err != nil {
		return err
	}
	if !ok {
		slog.Warn("Ticket moved before review handoff", "ticket_id", t.ID)
		return nil
	}

	slog.Info("Ticket handed to review",
		"ticket_id", t.ID, "pr_url", pr.URL, "attempt", attempt)
	return nil
}

// landFailed stores the verifier's output and parks the ticket in
// needs_review. Within the attempt budget the stored artifact is agent
// feedback for the next execution; past it, evidence for a human decision.
func (p *Pipeline) landFailed(ctx context.Context, t *ent.Ticket, attempt int, verdict *verification.Verdict) error {
	var cause string
	if attempt < p.cfg.MaxAttempts {
		p.appendArtifact(ctx, t.ID, ticketartifact.KindVerificationFeedback, attempt,
			verdict.FeedbackForAgent, verdict.Evidence)
		cause = fmt.Sprintf("verification failed on attempt %d of %d", attempt, p.cfg.MaxAttempts)
	} else {
		p.appendArtifact(ctx, t.ID, ticketartifact.KindVerificationEvidence, attempt,
			verdict.FeedbackForAgent, verdict.Evidence)
		cause = fmt.Sprintf("verification attempt budget exhausted (%d of %d)", attempt, p.cfg.MaxAttempts)
	}

	ok, err := p.tickets.Transition(ctx, services.TransitionInput{
		TicketID: t.ID,
		From:     []ticket.State{ticket.StateVerifying},
		To:       ticket.StateNeedsReview,
		Actor:    "pipeline",
		Cause:    cause,
		Mutate: func(u *ent.TicketUpdate) {
			u.SetVerificationStatus(ticket.VerificationStatusFailed)
			services.ClearDispatch(u)
		},
	})
	if err != nil {
		return err
	}
	if !ok {
		slog.Warn("Ticket moved before verification failure landed", "ticket_id", t.ID)
		return nil
	}

	slog.Info("Verification failed, ticket needs review",
		"ticket_id", t.ID, "attempt", attempt, "max_attempts", p.cfg.MaxAttempts)

	if fresh, err := p.tickets.GetTicket(ctx, t.ID); err == nil {
		p.notifier.TicketNeedsReview(ctx, fresh, attempt)
	}
	return nil
}

// handlePipelineError applies the configured policy to a ticket whose
// verification machinery (not its code) failed. The pushed branch is always
// preserved; the policy only decides which state presents it.
func (p *Pipeline) handlePipelineError(ctx context.Context, t *ent.Ticket, attempt int, reason string) error {
	slog.Warn("Pipeline error", "ticket_id", t.ID, "attempt", attempt, "reason", reason)

	p.appendArtifact(ctx, t.ID, ticketartifact.KindPipelineError, attempt, reason, nil)

	if p.cfg.OnError == config.PipelineErrorNeedsReview {
		ok, err := p.tickets.Transition(ctx, services.TransitionInput{
			TicketID: t.ID,
			From:     []ticket.State{ticket.StateVerifying},
			To:       ticket.StateNeedsReview,
			Actor:    "pipeline",
			Cause:    "pipeline error: " + reason,
			Mutate: func(u *ent.TicketUpdate) {
				services.ClearDispatch(u)
			},
		})
		if err != nil {
			return err
		}
		if ok {
			if fresh, err := p.tickets.GetTicket(ctx, t.ID); err == nil {
				p.notifier.TicketNeedsReview(ctx, fresh, attempt)
			}
		}
		return nil
	}

	ok, err := p.tickets.Transition(ctx, services.TransitionInput{
		TicketID: t.ID,
		From:     []ticket.State{ticket.StateVerifying},
		To:       ticket.StateDone,
		Actor:    "pipeline",
		Cause:    "completed with warning: " + reason,
		Mutate: func(u *ent.TicketUpdate) {
			u.SetCompletedAt(time.Now())
			services.ClearDispatch(u)
		},
	})
	if err != nil {
		return err
	}
	if !ok {
		slog.Warn("Ticket moved before pipeline error landed", "ticket_id", t.ID)
	}
	return nil
}

// attemptNumber derives the verification attempt from the feedback ledger.
// Replays restart execution, not the attempt count, so the budget spans the
// ticket's whole life.
func (p *Pipeline) attemptNumber(ctx context.Context, ticketID string) (int, error) {
	prior, err := p.artifacts.CountByKind(ctx, ticketID, ticketartifact.KindVerificationFeedback)
	if err != nil {
		return 0, err
	}
	return prior + 1, nil
}

// appendArtifact is best-effort: losing an artifact must not derail the
// state machine.
func (p *Pipeline) appendArtifact(ctx context.Context, ticketID string, kind ticketartifact.Kind, attempt int, content string, metadata map[string]any) {
	if _, err := p.artifacts.Append(ctx, ticketID, kind, attempt, content, metadata); err != nil {
		slog.Error("Failed to append artifact",
			"ticket_id", ticketID, "kind", kind, "error", err)
	}
}

// runScan periodically drives verifying rows no local run owns.
func (p *Pipeline) runScan(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.scanVerifying(ctx)
		}
	}
}

// scanVerifying queues a run for each verifying row this engine is not
// already processing. Cross-replica duplicates are tolerated: the state
// guard lets exactly one outcome land.
func (p *Pipeline) scanVerifying(ctx context.Context) {
	rows, err := p.tickets.ListVerifying(ctx, verifyingScanLimit)
	if err != nil {
		slog.Error("Verifying scan failed", "error", err)
		return
	}
	for _, t := range rows {
		if p.isInflight(t.ID) {
			continue
		}
		slog.Info("Queueing verification run", "ticket_id", t.ID)
		p.RunAsync(t.ID)
	}
}

func (p *Pipeline) begin(ticketID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, busy := p.inflight[ticketID]; busy {
		return false
	}
	p.inflight[ticketID] = struct{}{}
	return true
}

func (p *Pipeline) end(ticketID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inflight, ticketID)
}

func (p *Pipeline) isInflight(ticketID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, busy := p.inflight[ticketID]
	return busy
}

// prBody renders the pull request description from the ticket.
func prBody(t *ent.Ticket) string {
	body := fmt.Sprintf("Automated change for ticket `%s`.", t.ID)
	if t.Description != "" {
		body += "\n\n" + t.Description
	}
	if t.AcceptanceCriteria != "" {
		body += "\n\n### Acceptance criteria\n\n" + t.AcceptanceCriteria
	}
	return body
}
