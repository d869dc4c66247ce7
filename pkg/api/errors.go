package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/forgeworks/forge/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses for the
// operator surface. Guard conflicts are 409: the resource is in a state that
// rejects the action, and the caller may re-read and decide again.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrGuardConflict) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if errors.Is(err, services.ErrIllegalTransition) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// mapAgentError is the agent-surface variant. A guard conflict means the
// agent no longer owns the row — 403 tells it to stop work and release its
// environment, unlike the operator's retryable 409.
func mapAgentError(err error) *echo.HTTPError {
	if errors.Is(err, services.ErrGuardConflict) {
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	if errors.Is(err, services.ErrIllegalTransition) {
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	return mapServiceError(err)
}
