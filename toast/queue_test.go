package toast

import (
	"fmt"
	"testing"
	"time"

	"github.com/hexworth/blockfolio/engine"
	"github.com/hexworth/blockfolio/parameter"
)

func newTestQueue() (*Queue, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewQueue(clock, nil), clock
}

// TestSingleFlightFIFO verifies a burst of enqueues yields at most one
// visible toast at any sampled instant, in enqueue order
func TestSingleFlightFIFO(t *testing.T) {
	q, clock := newTestQueue()

	const n = 5
	for i := 0; i < n; i++ {
		q.Enqueue(fmt.Sprintf("toast-%d", i), "body")
	}

	cycle := parameter.ToastDisplayDuration + parameter.ToastDismissDuration
	step := 100 * time.Millisecond

	seen := make([]string, 0, n)
	for elapsed := time.Duration(0); elapsed < cycle*(n+1); elapsed += step {
		q.Update(clock.Now())

		if cur, state, ok := q.Visible(); ok {
			if state != StateVisible && state != StateDismissing {
				t.Fatalf("visible toast in state %v", state)
			}
			if len(seen) == 0 || seen[len(seen)-1] != cur.Title {
				seen = append(seen, cur.Title)
			}
		}
		clock.Advance(step)
	}

	if len(seen) != n {
		t.Fatalf("expected %d distinct toasts, saw %d: %v", n, len(seen), seen)
	}
	for i, title := range seen {
		if want := fmt.Sprintf("toast-%d", i); title != want {
			t.Errorf("position %d: got %q, want %q", i, title, want)
		}
	}
}

// TestVisibleDuration verifies a toast stays visible for exactly the
// display interval before dismissing
func TestVisibleDuration(t *testing.T) {
	q, clock := newTestQueue()
	q.Enqueue("hello", "world")

	q.Update(clock.Now())
	if _, state, ok := q.Visible(); !ok || state != StateVisible {
		t.Fatalf("expected visible toast, got state %v ok %v", state, ok)
	}

	clock.Advance(parameter.ToastDisplayDuration - time.Millisecond)
	q.Update(clock.Now())
	if _, state, _ := q.Visible(); state != StateVisible {
		t.Errorf("expected still visible just before interval end, got %v", state)
	}

	clock.Advance(time.Millisecond)
	q.Update(clock.Now())
	if _, state, _ := q.Visible(); state != StateDismissing {
		t.Errorf("expected dismissing at interval end, got %v", state)
	}

	clock.Advance(parameter.ToastDismissDuration)
	q.Update(clock.Now())
	if _, _, ok := q.Visible(); ok {
		t.Error("expected toast removed after exit animation")
	}
}

// TestNextToastWaitsFullCycle verifies the successor appears no earlier
// than display + exit after the predecessor became visible
func TestNextToastWaitsFullCycle(t *testing.T) {
	q, clock := newTestQueue()
	q.Enqueue("first", "")
	q.Enqueue("second", "")

	q.Update(clock.Now())

	cycle := parameter.ToastDisplayDuration + parameter.ToastDismissDuration

	clock.Advance(cycle - time.Millisecond)
	q.Update(clock.Now())
	if cur, _, ok := q.Visible(); ok && cur.Title == "second" {
		t.Fatal("second toast appeared before the full cycle elapsed")
	}

	clock.Advance(time.Millisecond)
	q.Update(clock.Now())
	cur, state, ok := q.Visible()
	if !ok || cur.Title != "second" || state != StateVisible {
		t.Fatalf("expected second toast visible, got %+v state %v ok %v", cur, state, ok)
	}
}

// TestEnqueueWhileVisibleDoesNotAlterCurrent verifies late arrivals wait
func TestEnqueueWhileVisibleDoesNotAlterCurrent(t *testing.T) {
	q, clock := newTestQueue()
	q.Enqueue("first", "")
	q.Update(clock.Now())

	clock.Advance(time.Second)
	q.Enqueue("late", "")
	q.Update(clock.Now())

	if cur, _, _ := q.Visible(); cur.Title != "first" {
		t.Errorf("current toast changed to %q", cur.Title)
	}
	if q.Pending() != 1 {
		t.Errorf("expected 1 pending, got %d", q.Pending())
	}
}

// TestEmptyQueueIdle verifies Update on an empty queue is a no-op
func TestEmptyQueueIdle(t *testing.T) {
	q, clock := newTestQueue()
	for i := 0; i < 10; i++ {
		q.Update(clock.Now())
		clock.Advance(time.Second)
	}
	if _, _, ok := q.Visible(); ok {
		t.Error("idle queue produced a visible toast")
	}
}
