package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/services"
)

// claimHandler handles POST /api/v1/agent/claim. Pull-agents ask for the
// oldest claimable ticket; an empty pool returns a null ticket with an
// advisory backoff instead of an error, so agents can poll in a plain loop.
func (s *Server) claimHandler(c *echo.Context) error {
	var req models.ClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}

	row, err := s.tickets.ClaimNext(c.Request().Context(), req, s.cfg.Scheduler.LeaseWindow)
	if errors.Is(err, services.ErrNoTicketsAvailable) {
		return c.JSON(http.StatusOK, &models.ClaimResponse{
			Ticket:       nil,
			RetryAfterMS: s.cfg.Scheduler.BasePollInterval.Milliseconds(),
		})
	}
	if err != nil {
		return mapAgentError(err)
	}

	project, err := s.projects.GetProject(c.Request().Context(), row.ProjectID)
	if err != nil {
		return mapAgentError(err)
	}
	settings, err := services.EffectiveSettings(project, row.Metadata)
	if err != nil {
		return mapAgentError(err)
	}

	return c.JSON(http.StatusOK, &models.ClaimResponse{
		Ticket:   row,
		Project:  project,
		Settings: settings,
	})
}

// startHandler handles POST /api/v1/agent/start: the agent confirms the
// branch it is working on. Idempotent on the same branch.
func (s *Server) startHandler(c *echo.Context) error {
	var req models.StartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ok, err := s.tickets.ConfirmBranch(c.Request().Context(), req)
	if err != nil {
		return mapAgentError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, "agent no longer owns the ticket")
	}
	return c.JSON(http.StatusOK, &AckResponse{TicketID: req.TicketID, Status: "started"})
}

// heartbeatHandler handles POST /api/v1/agent/heartbeat: lease extension
// plus optional progress. 404 tells the agent its claim is gone (reaped or
// reassigned) and it must stop working.
func (s *Server) heartbeatHandler(c *echo.Context) error {
	var req models.HeartbeatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ok, err := s.tickets.Heartbeat(c.Request().Context(), req, s.cfg.Scheduler.LeaseWindow)
	if err != nil {
		return mapAgentError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no active lease for this agent on the ticket")
	}
	return c.JSON(http.StatusOK, &AckResponse{TicketID: req.TicketID, Status: "extended"})
}

// completeHandler handles POST /api/v1/agent/complete: the agent pushed its
// branch and is done. The ticket moves to verifying and the pipeline takes
// over; a duplicate report while verifying is a no-op.
func (s *Server) completeHandler(c *echo.Context) error {
	var req models.CompleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TicketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket_id is required")
	}
	if req.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}

	row, err := s.tickets.GetTicket(c.Request().Context(), req.TicketID)
	if err != nil {
		return mapAgentError(err)
	}
	if row.State == ticket.StateVerifying {
		return c.JSON(http.StatusOK, &AckResponse{TicketID: req.TicketID, Status: "verifying"})
	}

	branch := req.BranchName
	if branch == "" && row.BranchName != nil {
		branch = *row.BranchName
	}
	if branch == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "branch_name is required: nothing was pushed")
	}

	outputs := req.Outputs
	if len(req.FilesInvolved) > 0 {
		if outputs == nil {
			outputs = map[string]any{}
		}
		outputs["files_involved"] = req.FilesInvolved
	}

	ok, err := s.tickets.Transition(c.Request().Context(), services.TransitionInput{
		TicketID: req.TicketID,
		From:     []ticket.State{ticket.StateInProgress},
		To:       ticket.StateVerifying,
		Actor:    req.AgentID,
		Assignee: req.AgentID,
		Cause:    "agent reported completion",
		Mutate: func(u *ent.TicketUpdate) {
			u.SetBranchName(branch)
			if req.PrURL != "" {
				u.SetPrURL(req.PrURL)
			}
			if len(outputs) > 0 {
				u.SetOutputs(outputs)
			}
		},
	})
	if err != nil {
		return mapAgentError(err)
	}
	if !ok {
		// The row moved since the read. A concurrent duplicate that already
		// landed in verifying still deserves the no-op answer.
		fresh, err := s.tickets.GetTicket(c.Request().Context(), req.TicketID)
		if err == nil && fresh.State == ticket.StateVerifying {
			return c.JSON(http.StatusOK, &AckResponse{TicketID: req.TicketID, Status: "verifying"})
		}
		return echo.NewHTTPError(http.StatusForbidden, "agent no longer owns the ticket")
	}

	if s.pipeline != nil {
		s.pipeline.RunAsync(req.TicketID)
	}
	return c.JSON(http.StatusOK, &AckResponse{TicketID: req.TicketID, Status: "verifying"})
}

// failHandler handles POST /api/v1/agent/fail: classification decides
// between another attempt and a hold for a human.
func (s *Server) failHandler(c *echo.Context) error {
	var req models.FailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TicketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket_id is required")
	}
	if req.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}
	if req.ErrorMessage == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "error_message is required")
	}

	landed, err := s.failures.RouteReported(c.Request().Context(), req.TicketID, req.AgentID, req.ErrorMessage)
	if err != nil {
		return mapAgentError(err)
	}
	return c.JSON(http.StatusOK, &AckResponse{TicketID: req.TicketID, Status: string(landed)})
}

// releaseHandler handles POST /api/v1/agent/release: a voluntary yield. The
// ticket returns to the pool with its retry budget untouched, exactly like a
// lease expiry.
func (s *Server) releaseHandler(c *echo.Context) error {
	var req models.ReleaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TicketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket_id is required")
	}
	if req.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}

	cause := "voluntary release"
	if req.Reason != "" {
		cause = "voluntary release: " + req.Reason
	}
	ok, err := s.tickets.Transition(c.Request().Context(), services.TransitionInput{
		TicketID: req.TicketID,
		From:     []ticket.State{ticket.StateInProgress, ticket.StateAssigned},
		To:       ticket.StateReady,
		Actor:    req.AgentID,
		Assignee: req.AgentID,
		Cause:    cause,
		Mutate:   services.ClearDispatch,
	})
	if err != nil {
		return mapAgentError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, "agent no longer owns the ticket")
	}
	return c.JSON(http.StatusOK, &AckResponse{TicketID: req.TicketID, Status: "released"})
}
