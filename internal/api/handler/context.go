package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitchenops/timerkit/internal/api/middleware"
	"github.com/kitchenops/timerkit/internal/core/domain"
)

const maxPatchBytes = 1 << 20

// callerID returns the authenticated user id injected by the Auth middleware.
func callerID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// keepOwner rejects a partial update that would hand the record to another user.
func keepOwner(c echo.Context, userID domain.Optional[string]) error {
	if !userID.Set {
		return nil
	}
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	if userID.Value != caller {
		return echo.NewHTTPError(http.StatusForbidden, "cannot transfer ownership")
	}
	return nil
}

// bindValid binds the request body into req and runs struct validation.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

// patchBody returns the raw JSON of a partial update. Decoding is left to the
// domain so protected and unknown keys can be told apart.
func patchBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxPatchBytes))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return body, nil
}
