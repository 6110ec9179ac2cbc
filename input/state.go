package input

import (
	"sync"
	"time"

	"github.com/hexworth/blockfolio/parameter"
)

// Snapshot is the per-tick view of active movement intents
// Jump is edge-triggered: reading a snapshot consumes the latched jump
type Snapshot struct {
	Left  bool
	Right bool
	Jump  bool
}

// State tracks held movement intents between key events and physics ticks
// Terminals deliver key-down only, so a direction counts as held until
// InputHoldWindow elapses without a repeat press
//
// Press runs on the event-poll goroutine and Snapshot on the tick goroutine,
// so all fields are mutex-guarded
type State struct {
	mu          sync.Mutex
	leftUntil   time.Time
	rightUntil  time.Time
	jumpLatched bool
}

// NewState creates an empty input state
func NewState() *State {
	return &State{}
}

// Press records a movement intent at the given time
// Non-movement intents are ignored
func (s *State) Press(t IntentType, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch t {
	case IntentMoveLeft:
		s.leftUntil = now.Add(parameter.InputHoldWindow)
	case IntentMoveRight:
		s.rightUntil = now.Add(parameter.InputHoldWindow)
	case IntentJump:
		s.jumpLatched = true
	}
}

// Snapshot returns the currently active intents and consumes the jump latch
func (s *State) Snapshot(now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Left:  now.Before(s.leftUntil),
		Right: now.Before(s.rightUntil),
		Jump:  s.jumpLatched,
	}
	s.jumpLatched = false

	// Opposite holds cancel out rather than favoring one side
	if snap.Left && snap.Right {
		snap.Left = false
		snap.Right = false
	}
	return snap
}

// Reset clears all held intents, used when a minigame releases its bindings
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leftUntil = time.Time{}
	s.rightUntil = time.Time{}
	s.jumpLatched = false
}
