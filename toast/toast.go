package toast

import "time"

// State is the lifecycle stage of a toast
type State uint8

const (
	StateQueued State = iota
	StateVisible
	StateDismissing
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StateQueued:
		return "queued"
	case StateVisible:
		return "visible"
	case StateDismissing:
		return "dismissing"
	case StateRemoved:
		return "removed"
	}
	return "unknown"
}

// Toast is a transient on-screen notification
// Immutable once enqueued
type Toast struct {
	Title       string
	Description string
	CreatedAt   time.Time
}
