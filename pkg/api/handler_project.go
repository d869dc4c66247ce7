package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/forgeworks/forge/pkg/models"
)

// createProjectHandler handles POST /api/v1/projects.
func (s *Server) createProjectHandler(c *echo.Context) error {
	var req models.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := s.projects.CreateProject(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, project)
}

// getProjectHandler handles GET /api/v1/projects/:id.
func (s *Server) getProjectHandler(c *echo.Context) error {
	project, err := s.projects.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, project)
}

// listProjectsHandler handles GET /api/v1/projects.
func (s *Server) listProjectsHandler(c *echo.Context) error {
	projects, err := s.projects.ListProjects(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ProjectsResponse{Projects: projects})
}
