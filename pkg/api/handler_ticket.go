package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/forgeworks/forge/ent/ticketartifact"
	"github.com/forgeworks/forge/pkg/models"
)

// createTicketHandler handles POST /api/v1/tickets: the planner ingress.
// Tickets land in draft and wait for their build's activation.
func (s *Server) createTicketHandler(c *echo.Context) error {
	var req models.CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	row, err := s.tickets.CreateTicket(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, row)
}

// getTicketHandler handles GET /api/v1/tickets/:id.
func (s *Server) getTicketHandler(c *echo.Context) error {
	row, err := s.tickets.GetTicket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// listTicketsHandler handles GET /api/v1/tickets. Enum filters are validated
// by the service; the handler only parses the wire format.
func (s *Server) listTicketsHandler(c *echo.Context) error {
	filters := models.TicketFilters{
		State:         c.QueryParam("state"),
		ProjectID:     c.QueryParam("project_id"),
		BuildID:       c.QueryParam("build_id"),
		AssigneeID:    c.QueryParam("assignee_id"),
		ExecutionMode: c.QueryParam("execution_mode"),
		Search:        c.QueryParam("search"),
	}

	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be an integer")
		}
		filters.Limit = limit
	}
	if v := c.QueryParam("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid offset: must be an integer")
		}
		filters.Offset = offset
	}
	if v := c.QueryParam("created_after"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_after: must be RFC3339")
		}
		filters.CreatedAfter = &ts
	}
	if v := c.QueryParam("created_before"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_before: must be RFC3339")
		}
		filters.CreatedBefore = &ts
	}

	resp, err := s.tickets.ListTickets(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// stuckTicketsHandler handles GET /api/v1/tickets/stuck?older_than=30m —
// the diagnostic view of rows that stopped moving.
func (s *Server) stuckTicketsHandler(c *echo.Context) error {
	olderThan := s.cfg.Sweep.StuckThreshold
	if v := c.QueryParam("older_than"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid older_than: must be a duration like 30m")
		}
		olderThan = d
	}

	rows, err := s.tickets.ListStuck(c.Request().Context(), olderThan)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StuckTicketsResponse{Tickets: rows})
}

// listEventsHandler handles GET /api/v1/tickets/:id/events — the ticket's
// progress log, oldest first.
func (s *Server) listEventsHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be an integer")
		}
		limit = n
	}

	events, err := s.events.ListForTicket(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &EventsResponse{Events: events})
}

// listArtifactsHandler handles GET /api/v1/tickets/:id/artifacts with an
// optional kind filter.
func (s *Server) listArtifactsHandler(c *echo.Context) error {
	var kinds []ticketartifact.Kind
	if v := c.QueryParam("kind"); v != "" {
		kind := ticketartifact.Kind(v)
		if err := ticketartifact.KindValidator(kind); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid kind: %s", v))
		}
		kinds = append(kinds, kind)
	}

	artifacts, err := s.artifacts.ListForTicket(c.Request().Context(), c.Param("id"), kinds...)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ArtifactsResponse{Artifacts: artifacts})
}

// addNoteHandler handles POST /api/v1/tickets/:id/notes: a human annotation
// on the progress log.
func (s *Server) addNoteHandler(c *echo.Context) error {
	var req addNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	event, err := s.events.AppendNote(c.Request().Context(), c.Param("id"), extractAuthor(c), req.Message)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, event)
}

// resumeTicketHandler handles POST /api/v1/tickets/:id/resume: the human
// escape hatch for held tickets. The retry budget starts over.
func (s *Server) resumeTicketHandler(c *echo.Context) error {
	row, err := s.tickets.ResumeTicket(c.Request().Context(), c.Param("id"), extractAuthor(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// cancelTicketHandler handles POST /api/v1/tickets/:id/cancel. When the
// scheduler is attached the cancel also tears down a running execution task
// and its VM slot.
func (s *Server) cancelTicketHandler(c *echo.Context) error {
	var req cancelTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, actor := c.Param("id"), extractAuthor(c)
	if s.sched != nil {
		row, err := s.sched.CancelTicket(c.Request().Context(), id, actor, req.Reason)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(http.StatusOK, row)
	}
	row, err := s.tickets.CancelTicket(c.Request().Context(), id, actor, req.Reason)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// replayTicketHandler handles POST /api/v1/tickets/:id/replay: send a
// needs_review ticket around the loop again.
func (s *Server) replayTicketHandler(c *echo.Context) error {
	row, err := s.tickets.ReplayTicket(c.Request().Context(), c.Param("id"), extractAuthor(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// approveTicketHandler handles POST /api/v1/tickets/:id/approve.
func (s *Server) approveTicketHandler(c *echo.Context) error {
	row, err := s.tickets.ApproveTicket(c.Request().Context(), c.Param("id"), extractAuthor(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// rejectTicketHandler handles POST /api/v1/tickets/:id/reject.
func (s *Server) rejectTicketHandler(c *echo.Context) error {
	var req rejectTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	row, err := s.tickets.RejectTicket(c.Request().Context(), c.Param("id"), extractAuthor(c), req.Reason)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}
