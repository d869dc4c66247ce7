package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticketartifact"
	"github.com/google/uuid"
)

// ArtifactService manages the append-only artifacts a ticket accumulates
// across attempts: verifier feedback, evidence bundles, pipeline errors,
// agent output summaries.
type ArtifactService struct {
	client *ent.Client
}

// NewArtifactService creates a new ArtifactService
func NewArtifactService(client *ent.Client) *ArtifactService {
	return &ArtifactService{client: client}
}

// Append records an artifact. Attempt ties verification artifacts to the
// attempt that produced them; pass 0 for artifacts outside the verification
// loop.
func (s *ArtifactService) Append(httpCtx context.Context, ticketID string, kind ticketartifact.Kind, attempt int, content string, metadata map[string]any) (*ent.TicketArtifact, error) {
	if ticketID == "" {
		return nil, NewValidationError("ticket_id", "required")
	}
	if attempt < 0 {
		return nil, NewValidationError("attempt", "must not be negative")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.TicketArtifact.Create().
		SetID(uuid.New().String()).
		SetTicketID(ticketID).
		SetKind(kind).
		SetAttempt(attempt).
		SetContent(content)
	if metadata != nil {
		builder.SetMetadata(metadata)
	}

	artifact, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to append artifact: %w", err)
	}
	return artifact, nil
}

// ListForTicket returns a ticket's artifacts oldest first, optionally
// narrowed to the given kinds.
func (s *ArtifactService) ListForTicket(ctx context.Context, ticketID string, kinds ...ticketartifact.Kind) ([]*ent.TicketArtifact, error) {
	if ticketID == "" {
		return nil, NewValidationError("ticket_id", "required")
	}

	query := s.client.TicketArtifact.Query().
		Where(ticketartifact.TicketIDEQ(ticketID))
	if len(kinds) > 0 {
		query = query.Where(ticketartifact.KindIn(kinds...))
	}

	artifacts, err := query.
		Order(ent.Asc(ticketartifact.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return artifacts, nil
}

// LatestByKind returns the most recent artifact of a kind, or ErrNotFound.
func (s *ArtifactService) LatestByKind(ctx context.Context, ticketID string, kind ticketartifact.Kind) (*ent.TicketArtifact, error) {
	if ticketID == "" {
		return nil, NewValidationError("ticket_id", "required")
	}

	artifact, err := s.client.TicketArtifact.Query().
		Where(
			ticketartifact.TicketIDEQ(ticketID),
			ticketartifact.KindEQ(kind),
		).
		Order(ent.Desc(ticketartifact.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest artifact: %w", err)
	}
	return artifact, nil
}

// CountByKind counts a ticket's artifacts of one kind. The verification
// pipeline numbers attempts by counting prior feedback artifacts.
func (s *ArtifactService) CountByKind(ctx context.Context, ticketID string, kind ticketartifact.Kind) (int, error) {
	if ticketID == "" {
		return 0, NewValidationError("ticket_id", "required")
	}

	count, err := s.client.TicketArtifact.Query().
		Where(
			ticketartifact.TicketIDEQ(ticketID),
			ticketartifact.KindEQ(kind),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count artifacts: %w", err)
	}
	return count, nil
}
