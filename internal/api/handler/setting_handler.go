package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitchenops/timerkit/internal/api/metrics"
	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

type SettingHandler struct {
	settings ports.SettingService
}

func NewSettingHandler(settings ports.SettingService) *SettingHandler {
	return &SettingHandler{settings: settings}
}

// Create handles POST /v1/settings.
//
// @Summary   Create a setting
// @Tags      settings
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      createSettingRequest  true  "Setting to create"
// @Success   201   {object}  domain.Setting
// @Router    /v1/settings [post]
func (h *SettingHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req createSettingRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	setting, err := h.settings.CreateSetting(c.Request().Context(), userID, req.Name, req.Value)
	metrics.Observe("create_setting", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, setting)
}

// Get handles GET /v1/settings/:id.
//
// @Summary   Get a setting
// @Tags      settings
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Setting ID"
// @Success   200  {object}  domain.Setting
// @Router    /v1/settings/{id} [get]
func (h *SettingHandler) Get(c echo.Context) error {
	setting, err := h.settings.GetSetting(c.Request().Context(), c.Param("id"))
	metrics.Observe("get_setting", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, setting)
}

// ListByUser handles GET /v1/users/:userId/settings.
//
// @Summary   List a user's settings
// @Tags      settings
// @Produce   json
// @Security  BearerAuth
// @Param     userId  path     string  true  "User ID"
// @Success   200     {array}  domain.Setting
// @Router    /v1/users/{userId}/settings [get]
func (h *SettingHandler) ListByUser(c echo.Context) error {
	settings, err := h.settings.GetSettingsByUserID(c.Request().Context(), c.Param("userId"))
	metrics.Observe("get_settings_by_user_id", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update handles PATCH /v1/settings/:id. A new value must keep the JSON kind
// of the stored one.
//
// @Summary   Partially update a setting
// @Tags      settings
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Setting ID"
// @Success   200  {object}  domain.Setting
// @Failure   403  {object}  errorResponse  "userId names another user"
// @Failure   422  {object}  errorResponse
// @Router    /v1/settings/{id} [patch]
func (h *SettingHandler) Update(c echo.Context) error {
	body, err := patchBody(c)
	if err != nil {
		return err
	}
	patch, err := domain.DecodeSettingPatch(body)
	if err != nil {
		metrics.Observe("update_setting", err)
		return err
	}
	if err := keepOwner(c, patch.UserID); err != nil {
		return err
	}

	setting, err := h.settings.UpdateSetting(c.Request().Context(), c.Param("id"), patch)
	metrics.Observe("update_setting", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, setting)
}

// Delete handles DELETE /v1/settings/:id.
//
// @Summary   Delete a setting
// @Tags      settings
// @Security  BearerAuth
// @Param     id  path  string  true  "Setting ID"
// @Success   204
// @Router    /v1/settings/{id} [delete]
func (h *SettingHandler) Delete(c echo.Context) error {
	err := h.settings.DeleteSetting(c.Request().Context(), c.Param("id"))
	metrics.Observe("delete_setting", err)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
