package engine

import (
	"github.com/hexworth/blockfolio/audio"
	"github.com/hexworth/blockfolio/core"
	"github.com/hexworth/blockfolio/events"
	"github.com/hexworth/blockfolio/input"
	"github.com/hexworth/blockfolio/progress"
)

// GameContext carries every shared collaborator a subsystem may need
// Passed explicitly at construction; no package-level mutable state
type GameContext struct {
	Clock    Clock
	Progress *progress.State
	Notifier core.Notifier
	Audio    audio.Player
	Input    *input.State
	Events   *events.Queue
}

// NewGameContext builds a context with safe no-op collaborators for any
// field left nil, so subsystems never branch on collaborator availability
func NewGameContext(clock Clock) *GameContext {
	if clock == nil {
		clock = NewTimeProvider()
	}
	return &GameContext{
		Clock:    clock,
		Progress: progress.NewState(),
		Notifier: core.NopNotifier{},
		Audio:    audio.NopPlayer{},
		Input:    input.NewState(),
		Events:   events.NewQueue(),
	}
}
