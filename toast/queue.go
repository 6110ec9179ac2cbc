package toast

import (
	"sync"
	"time"

	"github.com/hexworth/blockfolio/audio"
	"github.com/hexworth/blockfolio/core"
	"github.com/hexworth/blockfolio/engine"
	"github.com/hexworth/blockfolio/parameter"
)

// Queue serializes notification requests into a single on-screen
// presentation at a time
//
// Invariants:
//   - At most one toast is visible or dismissing at any instant
//   - Visibility order matches enqueue order, no deduplication
//   - Enqueue never blocks and never drops
//
// Transitions are driven by per-tick Update calls against the injected
// clock, never by wall-clock timers
type Queue struct {
	mu     sync.Mutex
	clock  engine.Clock
	sounds audio.Player

	pending    []Toast
	current    *Toast
	state      State
	stateUntil time.Time
}

// NewQueue creates an empty toast queue
func NewQueue(clock engine.Clock, sounds audio.Player) *Queue {
	if sounds == nil {
		sounds = audio.NopPlayer{}
	}
	return &Queue{
		clock:  clock,
		sounds: sounds,
		state:  StateRemoved,
	}
}

// Enqueue appends a notification request
// Safe for concurrent callers; a toast arriving while another is visible
// waits without altering the visible one
func (q *Queue) Enqueue(title, description string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, Toast{
		Title:       title,
		Description: description,
		CreatedAt:   q.clock.Now(),
	})
}

// Notify implements core.Notifier
func (q *Queue) Notify(title, description string) {
	q.Enqueue(title, description)
}

// Update advances the toast state machine to the given time
// Called once per game tick
func (q *Queue) Update(now time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		switch q.state {
		case StateRemoved:
			if len(q.pending) == 0 {
				return
			}
			q.processNext(now)

		case StateVisible:
			if now.Before(q.stateUntil) {
				return
			}
			q.state = StateDismissing
			q.stateUntil = q.stateUntil.Add(parameter.ToastDismissDuration)

		case StateDismissing:
			if now.Before(q.stateUntil) {
				return
			}
			q.current = nil
			q.state = StateRemoved
		}
	}
}

// processNext dequeues the head and makes it visible
// Caller holds the lock and has verified the queue is non-empty
func (q *Queue) processNext(now time.Time) {
	next := q.pending[0]
	q.pending = q.pending[1:]
	q.current = &next
	q.state = StateVisible
	q.stateUntil = now.Add(parameter.ToastDisplayDuration)
	q.sounds.Play(core.SoundToast)
}

// Visible returns the toast currently on screen and its state
// ok is false when nothing is visible or dismissing
func (q *Queue) Visible() (t Toast, state State, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.current == nil {
		return Toast{}, StateRemoved, false
	}
	return *q.current, q.state, true
}

// Pending returns the number of queued, not-yet-visible toasts
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
