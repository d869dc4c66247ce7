// Package api exposes the engine over HTTP: the agent surface pull-agents
// drive (claim, start, heartbeat, complete, fail, release) and the
// engine/operator surface (ticket intake, build activation, reads, operator
// actions, health).
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/database"
	"github.com/forgeworks/forge/pkg/scheduler"
	"github.com/forgeworks/forge/pkg/services"
)

// Server is the HTTP front of the engine. Core collaborators arrive through
// NewServer; the rest are injected with Set* calls and checked by
// ValidateWiring before the listener opens.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client
	tickets  *services.TicketService
	projects *services.ProjectService
	sched    *scheduler.Scheduler
	pipeline *scheduler.Pipeline

	artifacts *services.ArtifactService
	events    *services.EventService
	failures  *scheduler.FailureRouter

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the HTTP server and registers its routes. The scheduler
// and pipeline may be nil for ingress-only deployments; the agent execution
// endpoints then degrade (complete falls back to the pipeline scan, cancel
// skips the local task teardown).
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	tickets *services.TicketService,
	projects *services.ProjectService,
	sched *scheduler.Scheduler,
	pipeline *scheduler.Pipeline,
) *Server {
	s := &Server{
		cfg:      cfg,
		dbClient: dbClient,
		tickets:  tickets,
		projects: projects,
		sched:    sched,
		pipeline: pipeline,
	}
	s.echo = s.routes()
	return s
}

// SetArtifactService injects the artifact store used by the artifact reads.
func (s *Server) SetArtifactService(artifacts *services.ArtifactService) {
	s.artifacts = artifacts
}

// SetEventService injects the event store used by notes and event reads.
func (s *Server) SetEventService(events *services.EventService) {
	s.events = events
}

// SetFailureRouter injects the classifier route used by POST /agent/fail.
func (s *Server) SetFailureRouter(failures *scheduler.FailureRouter) {
	s.failures = failures
}

// ValidateWiring reports the first missing dependency. Called before the
// listener opens so a misassembled server fails loudly instead of 500ing on
// the first request.
func (s *Server) ValidateWiring() error {
	switch {
	case s.cfg == nil:
		return fmt.Errorf("api: config not set")
	case s.dbClient == nil:
		return fmt.Errorf("api: database client not set")
	case s.tickets == nil:
		return fmt.Errorf("api: ticket service not set")
	case s.projects == nil:
		return fmt.Errorf("api: project service not set")
	case s.artifacts == nil:
		return fmt.Errorf("api: artifact service not set — did you forget SetArtifactService?")
	case s.events == nil:
		return fmt.Errorf("api: event service not set — did you forget SetEventService?")
	case s.failures == nil:
		return fmt.Errorf("api: failure router not set — did you forget SetFailureRouter?")
	}
	return nil
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.Use(requestLogger())
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/status", s.statusHandler)

	v1 := e.Group("/api/v1")

	agent := v1.Group("/agent")
	agent.POST("/claim", s.claimHandler)
	agent.POST("/start", s.startHandler)
	agent.POST("/heartbeat", s.heartbeatHandler)
	agent.POST("/complete", s.completeHandler)
	agent.POST("/fail", s.failHandler)
	agent.POST("/release", s.releaseHandler)

	v1.POST("/tickets", s.createTicketHandler)
	v1.GET("/tickets", s.listTicketsHandler)
	v1.GET("/tickets/stuck", s.stuckTicketsHandler)
	v1.GET("/tickets/:id", s.getTicketHandler)
	v1.GET("/tickets/:id/events", s.listEventsHandler)
	v1.GET("/tickets/:id/artifacts", s.listArtifactsHandler)
	v1.POST("/tickets/:id/notes", s.addNoteHandler)
	v1.POST("/tickets/:id/resume", s.resumeTicketHandler)
	v1.POST("/tickets/:id/cancel", s.cancelTicketHandler)
	v1.POST("/tickets/:id/replay", s.replayTicketHandler)
	v1.POST("/tickets/:id/approve", s.approveTicketHandler)
	v1.POST("/tickets/:id/reject", s.rejectTicketHandler)

	v1.POST("/builds/:build_id/activate", s.activateBuildHandler)

	v1.POST("/projects", s.createProjectHandler)
	v1.GET("/projects", s.listProjectsHandler)
	v1.GET("/projects/:id", s.getProjectHandler)

	return e
}

// Start serves on the given address and blocks until the server closes.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.echo}
	return s.http.ListenAndServe()
}

// StartWithListener serves on an existing listener. Tests use it with an
// ephemeral port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.http = &http.Server{Handler: s.echo}
	return s.http.Serve(ln)
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
