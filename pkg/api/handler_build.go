package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// activateBuildHandler handles POST /api/v1/builds/:build_id/activate.
// Every draft ticket in the build is gated in one transaction: tickets
// whose dependencies are already done go to ready, the rest to blocked.
func (s *Server) activateBuildHandler(c *echo.Context) error {
	counts, err := s.tickets.ActivateBuild(c.Request().Context(), c.Param("build_id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, counts)
}
