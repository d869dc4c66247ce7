package api

import (
	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/pkg/database"
	"github.com/forgeworks/forge/pkg/scheduler"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database"`
	Engine   *scheduler.Health      `json:"engine,omitempty"`
}

// StatusResponse is returned by GET /status: the scheduler's view of the
// engine plus build metadata.
type StatusResponse struct {
	Version string           `json:"version"`
	Engine  scheduler.Health `json:"engine"`
}

// AckResponse acknowledges an agent-surface write that carries no payload.
type AckResponse struct {
	TicketID string `json:"ticket_id"`
	Status   string `json:"status"`
}

// EventsResponse is returned by GET /api/v1/tickets/:id/events.
type EventsResponse struct {
	Events []*ent.TicketEvent `json:"events"`
}

// ArtifactsResponse is returned by GET /api/v1/tickets/:id/artifacts.
type ArtifactsResponse struct {
	Artifacts []*ent.TicketArtifact `json:"artifacts"`
}

// ProjectsResponse is returned by GET /api/v1/projects.
type ProjectsResponse struct {
	Projects []*ent.Project `json:"projects"`
}

// StuckTicketsResponse is returned by GET /api/v1/tickets/stuck.
type StuckTicketsResponse struct {
	Tickets []*ent.Ticket `json:"tickets"`
}
