package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// recordingQueue records queued ids. When failAfter > 0, the call after that
// many successes fails once.
type recordingQueue struct {
	ids       []string
	err       error
	failAfter int
}

func (q *recordingQueue) Enqueue(_ context.Context, id string) error {
	if q.err != nil {
		return q.err
	}
	if q.failAfter > 0 && len(q.ids) == q.failAfter {
		q.failAfter = 0
		return errors.New("queue full")
	}
	q.ids = append(q.ids, id)
	return nil
}

type memDedup map[string]bool

func (m memDedup) FirstSeen(_ context.Context, key string) (bool, error) {
	if m[key] {
		return false, nil
	}
	m[key] = true
	return true, nil
}

func (m memDedup) Forget(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

// ownedBy resolves every known timer to its owner.
func ownedBy(owners map[string]string) func(context.Context, string) (string, error) {
	return func(_ context.Context, id string) (string, error) {
		owner, ok := owners[id]
		if !ok {
			return "", domain.Collaborator("findTimerById", domain.ErrNotFound)
		}
		return owner, nil
	}
}

func decodeTick(t *testing.T, body []byte) tickResponse {
	t.Helper()
	var resp tickResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestTickHandler_Enqueue(t *testing.T) {
	queue := &recordingQueue{}
	h := NewTickHandler(queue, nil, ownedBy(map[string]string{"t1": "u1", "t2": "u1"}))

	c, rec := newTestContext(http.MethodPost, "/v1/timers/ticks", `{"timerIds":["t1","t2","t1"]}`)
	if err := h.Enqueue(asUser(c, "u1")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if resp := decodeTick(t, rec.Body.Bytes()); resp.Accepted != 3 || resp.Duplicate {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(queue.ids) != 3 || queue.ids[0] != "t1" || queue.ids[1] != "t2" || queue.ids[2] != "t1" {
		t.Fatalf("unexpected queue order: %v", queue.ids)
	}
}

func TestTickHandler_DuplicateTickID(t *testing.T) {
	queue := &recordingQueue{}
	h := NewTickHandler(queue, memDedup{}, nil)
	body := `{"tickId":"k1","timerIds":["t1"]}`

	c, rec := newTestContext(http.MethodPost, "/v1/timers/ticks", body)
	if err := h.Enqueue(asUser(c, "u1")); err != nil || rec.Code != http.StatusAccepted {
		t.Fatalf("first tick: code %d err %v", rec.Code, err)
	}

	c, rec = newTestContext(http.MethodPost, "/v1/timers/ticks", body)
	if err := h.Enqueue(asUser(c, "u1")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !decodeTick(t, rec.Body.Bytes()).Duplicate {
		t.Fatalf("expected 200 duplicate for a replay, got %d %s", rec.Code, rec.Body.String())
	}
	if len(queue.ids) != 1 {
		t.Fatalf("replayed tick must not be queued again, got %v", queue.ids)
	}
}

func TestTickHandler_RetryAfterFailureQueuesTheRest(t *testing.T) {
	queue := &recordingQueue{failAfter: 1}
	dedup := memDedup{}
	h := NewTickHandler(queue, dedup, nil)
	body := `{"tickId":"k2","timerIds":["t1","t2","t3"]}`

	c, _ := newTestContext(http.MethodPost, "/v1/timers/ticks", body)
	if code := httpCode(h.Enqueue(asUser(c, "u1"))); code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 on the failing attempt, got %d", code)
	}
	if dedup["k2:1"] {
		t.Fatalf("failed entry must not stay claimed")
	}

	c, rec := newTestContext(http.MethodPost, "/v1/timers/ticks", body)
	if err := h.Enqueue(asUser(c, "u1")); err != nil {
		t.Fatalf("retry returned error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202 on retry, got %d", rec.Code)
	}
	if resp := decodeTick(t, rec.Body.Bytes()); resp.Accepted != 2 {
		t.Fatalf("expected the two missing entries to be queued, got %+v", resp)
	}
	want := []string{"t1", "t2", "t3"}
	if len(queue.ids) != len(want) {
		t.Fatalf("expected each tick queued exactly once, got %v", queue.ids)
	}
	for i, id := range want {
		if queue.ids[i] != id {
			t.Fatalf("expected %v, got %v", want, queue.ids)
		}
	}
}

func TestTickHandler_ForeignTimer(t *testing.T) {
	queue := &recordingQueue{}
	h := NewTickHandler(queue, nil, ownedBy(map[string]string{"mine": "u1", "theirs": "u2"}))

	c, _ := newTestContext(http.MethodPost, "/v1/timers/ticks", `{"timerIds":["mine","theirs"]}`)
	if code := httpCode(h.Enqueue(asUser(c, "u1"))); code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's timer, got %d", code)
	}
	if len(queue.ids) != 0 {
		t.Fatalf("nothing may be queued when a timer is foreign, got %v", queue.ids)
	}
}

func TestTickHandler_Validation(t *testing.T) {
	h := NewTickHandler(&recordingQueue{}, nil, nil)

	for _, body := range []string{`{}`, `{"timerIds":[]}`, `{"timerIds":[""]}`} {
		c, _ := newTestContext(http.MethodPost, "/v1/timers/ticks", body)
		if code := httpCode(h.Enqueue(asUser(c, "u1"))); code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %d", body, code)
		}
	}
}

func TestTickHandler_QueueClosed(t *testing.T) {
	h := NewTickHandler(&recordingQueue{err: errors.New("dispatcher stopped")}, nil, nil)

	c, _ := newTestContext(http.MethodPost, "/v1/timers/ticks", `{"timerIds":["t1"]}`)
	if code := httpCode(h.Enqueue(asUser(c, "u1"))); code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", code)
	}
}
