package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitchenops/timerkit/internal/api/metrics"
	"github.com/kitchenops/timerkit/internal/api/middleware"
	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

type AlertHandler struct {
	alerts     ports.TimerAlertService
	timerOwner middleware.OwnerResolver
}

// NewAlertHandler returns an alert handler. timerOwner guards moving an alert
// onto another timer.
func NewAlertHandler(alerts ports.TimerAlertService, timerOwner middleware.OwnerResolver) *AlertHandler {
	return &AlertHandler{alerts: alerts, timerOwner: timerOwner}
}

// Create handles POST /v1/timers/:id/alerts.
//
// @Summary      Create an alert on a timer
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Timer ID"
// @Param        body  body      createTimerAlertRequest  true  "Alert to create"
// @Success      201   {object}  domain.TimerAlert
// @Failure      422   {object}  errorResponse
// @Router       /v1/timers/{id}/alerts [post]
func (h *AlertHandler) Create(c echo.Context) error {
	var req createTimerAlertRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	alert, err := h.alerts.CreateTimerAlert(c.Request().Context(), c.Param("id"), *req.ActivationTime, req.Message)
	metrics.Observe("create_timer_alert", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, alert)
}

// ListByTimer handles GET /v1/timers/:id/alerts.
//
// @Summary   List a timer's alerts
// @Tags      alerts
// @Produce   json
// @Security  BearerAuth
// @Param     id   path     string  true  "Timer ID"
// @Success   200  {array}  domain.TimerAlert
// @Router    /v1/timers/{id}/alerts [get]
func (h *AlertHandler) ListByTimer(c echo.Context) error {
	alerts, err := h.alerts.GetTimerAlertsByTimerID(c.Request().Context(), c.Param("id"))
	metrics.Observe("get_timer_alerts_by_timer_id", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, alerts)
}

// Get handles GET /v1/alerts/:id.
//
// @Summary   Get an alert
// @Tags      alerts
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Alert ID"
// @Success   200  {object}  domain.TimerAlert
// @Failure   404  {object}  errorResponse
// @Router    /v1/alerts/{id} [get]
func (h *AlertHandler) Get(c echo.Context) error {
	alert, err := h.alerts.GetTimerAlert(c.Request().Context(), c.Param("id"))
	metrics.Observe("get_timer_alert", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, alert)
}

// Update handles PATCH /v1/alerts/:id. The activated flag is protected.
//
// @Summary   Partially update an alert
// @Tags      alerts
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Alert ID"
// @Success   200  {object}  domain.TimerAlert
// @Failure   422  {object}  errorResponse
// @Router    /v1/alerts/{id} [patch]
func (h *AlertHandler) Update(c echo.Context) error {
	body, err := patchBody(c)
	if err != nil {
		return err
	}
	patch, err := domain.DecodeTimerAlertPatch(body)
	if err != nil {
		metrics.Observe("update_timer_alert", err)
		return err
	}
	if patch.TimerID.Set {
		if err := middleware.CheckOwner(c, h.timerOwner, patch.TimerID.Value); err != nil {
			return err
		}
	}

	alert, err := h.alerts.UpdateTimerAlert(c.Request().Context(), c.Param("id"), patch)
	metrics.Observe("update_timer_alert", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, alert)
}

// Activate handles POST /v1/alerts/:id/activate and delivers the alert message.
//
// @Summary   Activate an alert
// @Tags      alerts
// @Security  BearerAuth
// @Param     id   path      string  true  "Alert ID"
// @Success   200  {object}  domain.TimerAlert
// @Failure   502  {object}  errorResponse
// @Router    /v1/alerts/{id}/activate [post]
func (h *AlertHandler) Activate(c echo.Context) error {
	alert, err := h.alerts.ActivateTimerAlert(c.Request().Context(), c.Param("id"))
	metrics.Observe("activate_timer_alert", err)
	if err != nil {
		return err
	}
	metrics.AlertsActivatedTotal.Inc()
	return c.JSON(http.StatusOK, alert)
}

// Deactivate handles POST /v1/alerts/:id/deactivate.
//
// @Summary   Deactivate an alert
// @Tags      alerts
// @Security  BearerAuth
// @Param     id   path      string  true  "Alert ID"
// @Success   200  {object}  domain.TimerAlert
// @Router    /v1/alerts/{id}/deactivate [post]
func (h *AlertHandler) Deactivate(c echo.Context) error {
	alert, err := h.alerts.DeactivateTimerAlert(c.Request().Context(), c.Param("id"))
	metrics.Observe("deactivate_timer_alert", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, alert)
}

// Delete handles DELETE /v1/alerts/:id.
//
// @Summary   Delete an alert
// @Tags      alerts
// @Security  BearerAuth
// @Param     id  path  string  true  "Alert ID"
// @Success   204
// @Router    /v1/alerts/{id} [delete]
func (h *AlertHandler) Delete(c echo.Context) error {
	err := h.alerts.DeleteTimerAlert(c.Request().Context(), c.Param("id"))
	metrics.Observe("delete_timer_alert", err)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
