package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitchenops/timerkit/internal/api/metrics"
	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

type TimerHandler struct {
	timers ports.TimerService
}

func NewTimerHandler(timers ports.TimerService) *TimerHandler {
	return &TimerHandler{timers: timers}
}

// Create handles POST /v1/timers. The owner is the authenticated caller.
//
// @Summary      Create a timer
// @Tags         timers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTimerRequest  true  "Timer to create"
// @Success      201   {object}  domain.Timer
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/timers [post]
func (h *TimerHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req createTimerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	timer, err := h.timers.CreateTimer(c.Request().Context(), userID, req.Name, *req.Duration, *req.IntervalDuration)
	metrics.Observe("create_timer", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, timer)
}

// Get handles GET /v1/timers/:id.
//
// @Summary      Get a timer
// @Tags         timers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Timer ID"
// @Success      200  {object}  domain.Timer
// @Failure      404  {object}  errorResponse
// @Router       /v1/timers/{id} [get]
func (h *TimerHandler) Get(c echo.Context) error {
	timer, err := h.timers.GetTimer(c.Request().Context(), c.Param("id"))
	metrics.Observe("get_timer", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, timer)
}

// ListByUser handles GET /v1/users/:userId/timers.
//
// @Summary      List a user's timers
// @Tags         timers
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Success      200     {array}   domain.Timer
// @Router       /v1/users/{userId}/timers [get]
func (h *TimerHandler) ListByUser(c echo.Context) error {
	timers, err := h.timers.GetTimersByUserID(c.Request().Context(), c.Param("userId"))
	metrics.Observe("get_timers_by_user_id", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, timers)
}

// Update handles PATCH /v1/timers/:id.
//
// @Summary      Partially update a timer
// @Tags         timers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Timer ID"
// @Success      200   {object}  domain.Timer
// @Failure      422   {object}  errorResponse
// @Router       /v1/timers/{id} [patch]
func (h *TimerHandler) Update(c echo.Context) error {
	body, err := patchBody(c)
	if err != nil {
		return err
	}
	patch, err := domain.DecodeTimerPatch(body)
	if err != nil {
		metrics.Observe("update_timer", err)
		return err
	}

	timer, err := h.timers.UpdateTimer(c.Request().Context(), c.Param("id"), patch)
	metrics.Observe("update_timer", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, timer)
}

// Start handles POST /v1/timers/:id/start.
//
// @Summary   Start a timer
// @Tags      timers
// @Security  BearerAuth
// @Param     id   path      string  true  "Timer ID"
// @Success   200  {object}  domain.Timer
// @Router    /v1/timers/{id}/start [post]
func (h *TimerHandler) Start(c echo.Context) error {
	return h.transition(c, "start_timer", h.timers.StartTimer)
}

// Stop handles POST /v1/timers/:id/stop.
//
// @Summary   Stop a timer
// @Tags      timers
// @Security  BearerAuth
// @Param     id   path      string  true  "Timer ID"
// @Success   200  {object}  domain.Timer
// @Router    /v1/timers/{id}/stop [post]
func (h *TimerHandler) Stop(c echo.Context) error {
	return h.transition(c, "stop_timer", h.timers.StopTimer)
}

// Decrement handles POST /v1/timers/:id/decrement.
//
// @Summary   Decrement a timer by one interval
// @Tags      timers
// @Security  BearerAuth
// @Param     id   path      string  true  "Timer ID"
// @Success   200  {object}  domain.Timer
// @Router    /v1/timers/{id}/decrement [post]
func (h *TimerHandler) Decrement(c echo.Context) error {
	timer, err := h.timers.DecrementTimer(c.Request().Context(), c.Param("id"))
	metrics.Observe("decrement_timer", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, timer)
}

// Reset handles POST /v1/timers/:id/reset.
//
// @Summary   Reset a timer to its full duration
// @Tags      timers
// @Security  BearerAuth
// @Param     id   path      string  true  "Timer ID"
// @Success   200  {object}  domain.Timer
// @Router    /v1/timers/{id}/reset [post]
func (h *TimerHandler) Reset(c echo.Context) error {
	return h.transition(c, "reset_timer", h.timers.ResetTimer)
}

func (h *TimerHandler) transition(c echo.Context, useCase string, op func(ctx context.Context, id string) (domain.Timer, error)) error {
	timer, err := op(c.Request().Context(), c.Param("id"))
	metrics.Observe(useCase, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, timer)
}

// Delete handles DELETE /v1/timers/:id.
//
// @Summary   Delete a timer
// @Tags      timers
// @Security  BearerAuth
// @Param     id  path  string  true  "Timer ID"
// @Success   204
// @Router    /v1/timers/{id} [delete]
func (h *TimerHandler) Delete(c echo.Context) error {
	err := h.timers.DeleteTimer(c.Request().Context(), c.Param("id"))
	metrics.Observe("delete_timer", err)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
