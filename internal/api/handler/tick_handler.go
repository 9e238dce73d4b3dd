package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kitchenops/timerkit/internal/api/metrics"
	"github.com/kitchenops/timerkit/internal/api/middleware"
)

// TickQueue accepts timer ids whose countdown should advance by one interval.
type TickQueue interface {
	Enqueue(ctx context.Context, timerID string) error
}

// TickDedup remembers which entries of a tick batch were already queued.
// FirstSeen claims key; Forget releases a claim whose entry was not queued.
type TickDedup interface {
	FirstSeen(ctx context.Context, key string) (bool, error)
	Forget(ctx context.Context, key string) error
}

type TickHandler struct {
	queue      TickQueue
	dedup      TickDedup
	timerOwner middleware.OwnerResolver
}

// NewTickHandler returns a handler that queues ticks. dedup may be nil, in
// which case tick ids are ignored. timerOwner restricts ticks to the caller's
// own timers.
func NewTickHandler(queue TickQueue, dedup TickDedup, timerOwner middleware.OwnerResolver) *TickHandler {
	return &TickHandler{queue: queue, dedup: dedup, timerOwner: timerOwner}
}

// Enqueue handles POST /v1/timers/ticks.
//
// Ticks for the same timer are applied in the order they are queued. With a
// tickId every entry of the batch is claimed on its own, so a retry after a
// partial failure queues only the entries that did not make it. A batch whose
// entries were all queued before is acknowledged with 200.
//
// @Summary      Queue timer ticks
// @Tags         timers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tickRequest  true  "Timers to tick"
// @Success      202   {object}  tickResponse
// @Success      200   {object}  tickResponse  "duplicate tick id"
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/timers/ticks [post]
func (h *TickHandler) Enqueue(c echo.Context) error {
	var req tickRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	checked := make(map[string]bool, len(req.TimerIDs))
	for _, id := range req.TimerIDs {
		if checked[id] {
			continue
		}
		if err := middleware.CheckOwner(c, h.timerOwner, id); err != nil {
			metrics.Observe("enqueue_ticks", err)
			return err
		}
		checked[id] = true
	}

	dedup := h.dedup != nil && req.TickID != ""
	accepted := 0
	for i, id := range req.TimerIDs {
		key := req.TickID + ":" + strconv.Itoa(i)
		if dedup {
			first, err := h.dedup.FirstSeen(ctx, key)
			if err != nil {
				metrics.Observe("enqueue_ticks", err)
				return err
			}
			if !first {
				continue
			}
		}

		if err := h.queue.Enqueue(ctx, id); err != nil {
			if dedup {
				if ferr := h.dedup.Forget(ctx, key); ferr != nil {
					err = errors.Join(err, ferr)
				}
			}
			metrics.Observe("enqueue_ticks", err)
			return echo.NewHTTPError(http.StatusServiceUnavailable, "tick queue unavailable").SetInternal(err)
		}
		accepted++
	}

	metrics.Observe("enqueue_ticks", nil)
	if dedup && accepted == 0 {
		return c.JSON(http.StatusOK, tickResponse{Duplicate: true})
	}
	return c.JSON(http.StatusAccepted, tickResponse{Accepted: accepted})
}
