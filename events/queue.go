package events

import (
	"sync"

	"github.com/hexworth/blockfolio/parameter"
)

// Queue buffers game events between their producers (key handling, the
// parkour step, trivia breaks) and the tick that drains them. Bounded at
// EventQueueSize: when a burst outruns the consumer the oldest events are
// evicted, since a stale progression event is worth less than a fresh one
type Queue struct {
	mu      sync.Mutex
	pending []GameEvent
	evicted uint64
}

// NewQueue creates an empty queue at full capacity
func NewQueue() *Queue {
	return &Queue{
		pending: make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Push appends an event, evicting the oldest when the buffer is full
func (q *Queue) Push(event GameEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) >= parameter.EventQueueSize {
		q.pending = q.pending[1:]
		q.evicted++
	}
	q.pending = append(q.pending, event)
}

// Consume drains every pending event in arrival order
// Returns nil when the queue is empty
func (q *Queue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	drained := q.pending
	q.pending = make([]GameEvent, 0, parameter.EventQueueSize)
	return drained
}

// Evicted reports how many events were discarded unread
func (q *Queue) Evicted() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.evicted
}
