// Package metrics defines and registers the custom Prometheus metrics of the
// timerkit API. Metrics register with the default registry on import, which is
// the registry echoprometheus serves on /metrics.
package metrics

import (
	"context"
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

const namespace = "timerkit"

// UseCasesTotal counts use-case invocations.
// Labels:
//   - use_case: e.g. "create_timer", "activate_timer_alert"
//   - outcome: "ok", "rejected" (bad input, conflict, auth) or "failed" (collaborator)
var UseCasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "use_cases_total",
		Help:      "Total number of use-case invocations by outcome.",
	},
	[]string{"use_case", "outcome"},
)

// TimersFinishedTotal counts decrements that brought a timer from a positive
// remaining duration to zero.
var TimersFinishedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timers_finished_total",
		Help:      "Total number of timers whose countdown reached zero.",
	},
)

// AlertsActivatedTotal counts alerts activated and delivered.
var AlertsActivatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_activated_total",
		Help:      "Total number of timer alerts activated with their message sent.",
	},
)

// TicksTotal counts ticks applied by the dispatcher.
// Label:
//   - result: "applied" or "error"
var TicksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ticks_total",
		Help:      "Total number of queued timer ticks processed, by result.",
	},
	[]string{"result"},
)

// TickQueueDepth tracks the ticks waiting in each dispatcher worker channel.
var TickQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "tick_queue_depth",
		Help:      "Current number of ticks pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// Outcome classifies a use-case error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUniqueness):
		return "rejected"
	case errors.Is(err, domain.ErrCollaborator):
		return "failed"
	default:
		return "rejected"
	}
}

// Observe records one invocation of useCase.
func Observe(useCase string, err error) {
	UseCasesTotal.WithLabelValues(useCase, Outcome(err)).Inc()
}

// TickRecorder feeds dispatcher activity into the tick metrics.
type TickRecorder struct{}

func (TickRecorder) QueueDepth(worker, depth int) {
	TickQueueDepth.WithLabelValues(strconv.Itoa(worker)).Set(float64(depth))
}

func (TickRecorder) TickApplied(_ domain.Timer, err error) {
	if err != nil {
		TicksTotal.WithLabelValues("error").Inc()
		return
	}
	TicksTotal.WithLabelValues("applied").Inc()
}

// FinishCounter implements ports.FinishObserver over TimersFinishedTotal.
type FinishCounter struct{}

func (FinishCounter) TimerFinished(context.Context, domain.Timer) {
	TimersFinishedTotal.Inc()
}
