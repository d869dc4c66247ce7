package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/forgeworks/forge/pkg/database"
	"github.com/forgeworks/forge/pkg/scheduler"
	"github.com/forgeworks/forge/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only forge's own components (database, scheduler) are checked. External
// dependencies (forge host, VM pool) are excluded so the orchestrator does
// not restart forge when an external service is down.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status := healthStatusHealthy

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		status = healthStatusUnhealthy
	}

	var engine *scheduler.Health
	if s.sched != nil {
		engine = s.sched.Health()
		if !engine.Running || !engine.DBReachable {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:   status,
		Version:  version.GitCommit,
		Database: dbHealth,
		Engine:   engine,
	})
}

// statusHandler handles GET /status: the operator's live view of the
// execution engine. Ingress-only deployments report a non-running engine.
func (s *Server) statusHandler(c *echo.Context) error {
	resp := &StatusResponse{Version: version.GitCommit}
	if s.sched != nil {
		resp.Engine = *s.sched.Health()
	}
	return c.JSON(http.StatusOK, resp)
}
