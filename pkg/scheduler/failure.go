package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/notify"
	"github.com/forgeworks/forge/pkg/retry"
	"github.com/forgeworks/forge/pkg/services"
)

// FailureRouter lands execution failures: classify the error text, then
// either schedule a retry with a backoff gate or park the ticket on hold for
// an operator. Both the scheduler's direct executions and the agent-facing
// fail endpoint route through it, so retry accounting has a single owner.
type FailureRouter struct {
	tickets  *services.TicketService
	policies *retry.Classifier
	notifier *notify.Service
}

// NewFailureRouter wires the router. notifier may be nil; hold notifications
// are then skipped.
func NewFailureRouter(tickets *services.TicketService, policies *retry.Classifier, notifier *notify.Service) *FailureRouter {
	if policies == nil {
		policies = retry.NewClassifier(nil)
	}
	return &FailureRouter{tickets: tickets, policies: policies, notifier: notifier}
}

// Route classifies errorText against the ticket's current retry count and
// applies the verdict: retryable failures go back to ready with the retry
// budget spent and a not-before gate, exhausted or non-retryable ones go to
// on_hold. Returns the state the ticket landed in.
func (r *FailureRouter) Route(ctx context.Context, ticketID, actor, errorText string) (ticket.State, error) {
	// Re-read for the current retry count: the caller's copy may predate a
	// reap-and-reclaim cycle.
	t, err := r.tickets.GetTicket(ctx, ticketID)
	if err != nil {
		return "", fmt.Errorf("load ticket for failure routing: %w", err)
	}

	c := r.policies.Classify(errorText, t.RetryCount)
	strategy := retry.StrategyDocument(c, time.Now())

	log := slog.With(
		"ticket_id", ticketID,
		"category", c.Category,
		"retry_count", t.RetryCount,
		"should_retry", c.ShouldRetry)

	if c.ShouldRetry {
		nextCount := t.RetryCount + 1
		cause := fmt.Sprintf("retry %d/%d scheduled (%s)", nextCount, c.MaxRetries, c.Category)
		ok, err := r.tickets.Transition(ctx, services.TransitionInput{
			TicketID: ticketID,
			From:     []ticket.State{ticket.StateInProgress, ticket.StateAssigned},
			To:       ticket.StateReady,
			Actor:    actor,
			Cause:    cause,
			Mutate: func(u *ent.TicketUpdate) {
				u.SetRetryCount(nextCount).
					SetRetryStrategy(strategy).
					SetError(errorText)
				services.ClearDispatch(u)
			},
		})
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("%w: ticket %s moved before the failure landed", services.ErrGuardConflict, ticketID)
		}
		log.Info("Failure classified as retryable",
			"next_delay_ms", c.NextDelayMS,
			"attempts_remaining", c.AttemptsRemaining)
		return ticket.StateReady, nil
	}

	holdReason := fmt.Sprintf("retry budget exhausted after %d attempts (%s)", t.RetryCount, c.Category)
	if c.Category == retry.CategoryAmbiguity {
		holdReason = "specification ambiguity reported by agent"
	}

	ok, err := r.tickets.Transition(ctx, services.TransitionInput{
		TicketID: ticketID,
		From:     []ticket.State{ticket.StateInProgress, ticket.StateAssigned},
		To:       ticket.StateOnHold,
		Actor:    actor,
		Cause:    holdReason,
		Mutate: func(u *ent.TicketUpdate) {
			u.SetHoldReason(holdReason).
				SetRetryStrategy(strategy).
				SetError(errorText)
			services.ClearDispatch(u)
		},
	})
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: ticket %s moved before the failure landed", services.ErrGuardConflict, ticketID)
	}

	log.Warn("Ticket placed on hold", "hold_reason", holdReason)

	if held, err := r.tickets.GetTicket(ctx, ticketID); err == nil {
		r.notifier.TicketHeld(ctx, held, holdReason)
	}
	return ticket.StateOnHold, nil
}

// RouteReported lands a failure reported by the owning agent over HTTP. It
// differs from Route in two ways: every report consumes an attempt (the
// count increments even when the verdict is hold, so the budget reads as
// attempts made, not retries remaining), and the writes carry the agent
// ownership guard so a reaped-and-reclaimed row rejects the stale reporter.
// Ambiguity reports stay free of charge: the hold is a question for a human,
// not a burnt attempt.
func (r *FailureRouter) RouteReported(ctx context.Context, ticketID, agentID, errorText string) (ticket.State, error) {
	t, err := r.tickets.GetTicket(ctx, ticketID)
	if err != nil {
		return "", fmt.Errorf("load ticket for failure routing: %w", err)
	}

	consumed := t.RetryCount + 1
	c := r.policies.Classify(errorText, consumed)
	strategy := retry.StrategyDocument(c, time.Now())

	log := slog.With(
		"ticket_id", ticketID,
		"agent_id", agentID,
		"category", c.Category,
		"attempts", consumed,
		"should_retry", c.ShouldRetry)

	if c.ShouldRetry {
		cause := fmt.Sprintf("retry %d/%d scheduled (%s)", consumed, c.MaxRetries, c.Category)
		ok, err := r.tickets.Transition(ctx, services.TransitionInput{
			TicketID: ticketID,
			From:     []ticket.State{ticket.StateInProgress, ticket.StateAssigned},
			To:       ticket.StateReady,
			Actor:    agentID,
			Assignee: agentID,
			Cause:    cause,
			Mutate: func(u *ent.TicketUpdate) {
				u.SetRetryCount(consumed).
					SetRetryStrategy(strategy).
					SetError(errorText)
				services.ClearDispatch(u)
			},
		})
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("%w: agent %s no longer owns ticket %s", services.ErrGuardConflict, agentID, ticketID)
		}
		log.Info("Reported failure classified as retryable", "next_delay_ms", c.NextDelayMS)
		return ticket.StateReady, nil
	}

	holdReason := fmt.Sprintf("retry budget exhausted after %d attempts (%s)", consumed, c.Category)
	countWrite := consumed
	if c.Category == retry.CategoryAmbiguity {
		holdReason = "specification ambiguity reported by agent"
		countWrite = t.RetryCount
	}

	ok, err := r.tickets.Transition(ctx, services.TransitionInput{
		TicketID: ticketID,
		From:     []ticket.State{ticket.StateInProgress, ticket.StateAssigned},
		To:       ticket.StateOnHold,
		Actor:    agentID,
		Assignee: agentID,
		Cause:    holdReason,
		Mutate: func(u *ent.TicketUpdate) {
			u.SetRetryCount(countWrite).
				SetHoldReason(holdReason).
				SetRetryStrategy(strategy).
				SetError(errorText)
			services.ClearDispatch(u)
		},
	})
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: agent %s no longer owns ticket %s", services.ErrGuardConflict, agentID, ticketID)
	}

	log.Warn("Ticket placed on hold", "hold_reason", holdReason)

	if held, err := r.tickets.GetTicket(ctx, ticketID); err == nil {
		r.notifier.TicketHeld(ctx, held, holdReason)
	}
	return ticket.StateOnHold, nil
}
