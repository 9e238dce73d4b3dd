package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitchenops/timerkit/internal/api/metrics"
	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

// UserHandler serves the /v1/users/:userId routes. Ownership is enforced by
// middleware.RequireSelf before these run.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Get handles GET /v1/users/:userId.
//
// @Summary   Get a user
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Param     userId  path      string  true  "User ID"
// @Success   200     {object}  domain.User
// @Failure   403     {object}  errorResponse
// @Router    /v1/users/{userId} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.GetUser(c.Request().Context(), c.Param("userId"))
	metrics.Observe("get_user", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PATCH /v1/users/:userId. Changed user names and emails are
// re-checked for uniqueness.
//
// @Summary   Partially update a user
// @Tags      users
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     userId  path      string  true  "User ID"
// @Success   200     {object}  domain.User
// @Failure   409     {object}  errorResponse
// @Failure   422     {object}  errorResponse
// @Router    /v1/users/{userId} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	body, err := patchBody(c)
	if err != nil {
		return err
	}
	patch, err := domain.DecodeUserPatch(body)
	if err != nil {
		metrics.Observe("update_user", err)
		return err
	}

	user, err := h.users.UpdateUser(c.Request().Context(), c.Param("userId"), patch)
	metrics.Observe("update_user", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword handles POST /v1/users/:userId/password.
//
// @Summary   Change a user's password
// @Tags      users
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     userId  path      string                 true  "User ID"
// @Param     body    body      changePasswordRequest  true  "Current and new password"
// @Success   200     {object}  domain.User
// @Failure   401     {object}  errorResponse
// @Router    /v1/users/{userId}/password [post]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	user, err := h.users.ChangePassword(c.Request().Context(), c.Param("userId"), req.CurrentPassword, req.NewPassword)
	metrics.Observe("change_password", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /v1/users/:userId.
//
// @Summary   Delete a user
// @Tags      users
// @Security  BearerAuth
// @Param     userId  path  string  true  "User ID"
// @Success   204
// @Router    /v1/users/{userId} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	err := h.users.DeleteUser(c.Request().Context(), c.Param("userId"))
	metrics.Observe("delete_user", err)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
