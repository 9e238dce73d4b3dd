package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// ErrStopped is returned by Enqueue once Stop has been called.
var ErrStopped = errors.New("tick dispatcher stopped")

// Recorder observes dispatcher activity. A nil Recorder is allowed.
type Recorder interface {
	QueueDepth(worker, depth int)
	TickApplied(timer domain.Timer, err error)
}

// TickDispatcher applies timer ticks on a fixed set of workers. Ticks are
// sharded by timer id so every tick of one timer runs on the same worker, in
// the order it was enqueued.
type TickDispatcher struct {
	workers  []chan string
	ticker   ports.TimerTicker
	recorder Recorder
	log      zerolog.Logger

	// mu guards the worker channels against being closed while an Enqueue
	// is sending on them.
	mu       sync.RWMutex
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewTickDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewTickDispatcher(numWorkers int, ticker ports.TimerTicker, recorder Recorder, log zerolog.Logger) *TickDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &TickDispatcher{
		workers:  make([]chan string, numWorkers),
		ticker:   ticker,
		recorder: recorder,
		done:     make(chan struct{}),
		log:      log.With().Str("component", "tick_dispatcher").Logger(),
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers exit when ctx is cancelled or
// after Stop has drained their queue.
func (d *TickDispatcher) Start(ctx context.Context) {
	d.wg.Add(len(d.workers))
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Stop rejects further ticks, closes the queues and waits for workers to
// finish what was already enqueued. It is safe to call more than once and
// concurrently with Enqueue.
func (d *TickDispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.done)
		d.mu.Lock()
		for _, ch := range d.workers {
			close(ch)
		}
		d.mu.Unlock()
	})
	d.wg.Wait()
}

// Enqueue hands a tick for timerID to its worker. It blocks while that
// worker's queue is full, until ctx is done or the dispatcher is stopped.
func (d *TickDispatcher) Enqueue(ctx context.Context, timerID string) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	select {
	case <-d.done:
		return ErrStopped
	default:
	}

	idx := d.shardIndex(timerID)
	select {
	case d.workers[idx] <- timerID:
		d.observeDepth(idx)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.done:
		return ErrStopped
	}
}

// shardIndex maps a timer id deterministically to a worker index.
func (d *TickDispatcher) shardIndex(timerID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(timerID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *TickDispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case timerID, ok := <-ch:
			if !ok {
				return
			}
			d.observeDepth(id)
			timer, err := d.ticker.DecrementTimer(ctx, timerID)
			if d.recorder != nil {
				d.recorder.TickApplied(timer, err)
			}
			if err != nil {
				d.log.Error().Err(err).
					Str("timer_id", timerID).
					Int("worker_id", id).
					Msg("tick failed")
			}
		}
	}
}

func (d *TickDispatcher) observeDepth(worker int) {
	if d.recorder != nil {
		d.recorder.QueueDepth(worker, len(d.workers[worker]))
	}
}
