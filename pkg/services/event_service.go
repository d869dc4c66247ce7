package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketevent"
	"github.com/google/uuid"
)

// EventService manages the append-only per-ticket event log.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// AppendNote attaches a free-form note to a ticket's timeline. Transition,
// progress, and heartbeat events are written by TicketService inside the
// transactions that produce them; notes are the out-of-band channel.
func (s *EventService) AppendNote(httpCtx context.Context, ticketID, actor, message string) (*ent.TicketEvent, error) {
	if ticketID == "" {
		return nil, NewValidationError("ticket_id", "required")
	}
	if message == "" {
		return nil, NewValidationError("message", "required")
	}
	if actor == "" {
		actor = "operator"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	evt, err := s.client.TicketEvent.Create().
		SetID(uuid.New().String()).
		SetTicketID(ticketID).
		SetKind(ticketevent.KindNote).
		SetActor(actor).
		SetMessage(message).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to append note: %w", err)
	}
	return evt, nil
}

// ListForTicket returns a ticket's events oldest first. A limit of zero or
// less returns the full log.
func (s *EventService) ListForTicket(ctx context.Context, ticketID string, limit int) ([]*ent.TicketEvent, error) {
	if ticketID == "" {
		return nil, NewValidationError("ticket_id", "required")
	}

	query := s.client.TicketEvent.Query().
		Where(ticketevent.TicketIDEQ(ticketID)).
		Order(ent.Asc(ticketevent.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket events: %w", err)
	}
	return events, nil
}

// CompactTerminalEvents removes events older than the retention window from
// tickets that have reached a terminal state. The ticket rows themselves are
// never deleted; only their timeline shrinks.
func (s *EventService) CompactTerminalEvents(ctx context.Context, retention time.Duration) (int, error) {
	if retention <= 0 {
		return 0, NewValidationError("retention", "must be positive")
	}
	cutoff := time.Now().Add(-retention)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.TicketEvent.Delete().
		Where(
			ticketevent.CreatedAtLT(cutoff),
			ticketevent.HasTicketWith(
				ticket.StateIn(ticket.StateDone, ticket.StateCancelled),
			),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to compact terminal events: %w", err)
	}
	return count, nil
}
