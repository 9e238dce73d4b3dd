package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/infrastructure/security"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to HTTP status codes.
//   - Logs collaborator and unexpected failures without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Input and policy errors first: a collaborator may carry one of them.
	switch {
	case errors.Is(err, domain.ErrTypeMismatch),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrProtectedField),
		errors.Is(err, domain.ErrUnknownField):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrUniqueness):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrAuthentication), errors.Is(err, security.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	}

	event := log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path())

	if errors.Is(err, domain.ErrCollaborator) {
		event.Msg("collaborator failure")
		return http.StatusBadGateway, "upstream dependency failed"
	}

	event.Msg("unhandled error")
	return http.StatusInternalServerError, "internal server error"
}
