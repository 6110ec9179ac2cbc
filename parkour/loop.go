package parkour

import (
	"sync/atomic"
	"time"

	"github.com/hexworth/blockfolio/core"
	"github.com/hexworth/blockfolio/engine"
	"github.com/hexworth/blockfolio/events"
	"github.com/hexworth/blockfolio/parameter"
)

// Loop binds a running Sim to the game's collaborators: the input snapshot
// source, the notification sink, the sound trigger and the progress state
//
// Lifecycle: Start -> Step per tick -> Destroy. Destroy is idempotent and
// guarantees no later Step has any effect
type Loop struct {
	ctx       *engine.GameContext
	sim       *Sim
	destroyed atomic.Bool
}

// Start creates a loop over the given level
func Start(ctx *engine.GameContext, level Level) *Loop {
	return &Loop{
		ctx: ctx,
		sim: NewSim(level),
	}
}

// Step advances the simulation by dt using the current input snapshot and
// routes the tick outcome to the context's sinks
func (l *Loop) Step(dt time.Duration) {
	if l.destroyed.Load() || l.sim.Done() {
		return
	}

	snap := l.ctx.Input.Snapshot(l.ctx.Clock.Now())
	out := l.sim.Step(dt, snap)

	if out.Jumped {
		l.ctx.Audio.Play(core.SoundJump)
	}
	if out.Landed {
		l.ctx.Audio.Play(core.SoundLand)
	}

	if out.Fell {
		l.ctx.Audio.Play(core.SoundFall)
		l.ctx.Notifier.Notify("Ouch!", "You fell off the course. Back to the start.")
		l.ctx.Events.Push(events.GameEvent{
			Type:      events.EventParkourFell,
			Timestamp: l.ctx.Clock.Now(),
		})
		if l.ctx.Progress.Unlock(parameter.AchFirstFall) {
			l.pushAchievement(parameter.AchFirstFall, "Hard Landing")
		}
	}

	if out.Won {
		l.ctx.Audio.Play(core.SoundWin)
		l.ctx.Notifier.Notify("Course complete!", "You reached the goal flag.")

		applied, leveledUp := l.ctx.Progress.AddXP(parameter.ParkourXPAward)
		l.ctx.Events.Push(events.GameEvent{
			Type:      events.EventXPAwarded,
			Payload:   &events.XPAwardPayload{Amount: applied, Total: l.ctx.Progress.XP()},
			Timestamp: l.ctx.Clock.Now(),
		})
		if leveledUp {
			l.ctx.Events.Push(events.GameEvent{
				Type:      events.EventLevelUp,
				Payload:   &events.LevelUpPayload{Level: l.ctx.Progress.Level()},
				Timestamp: l.ctx.Clock.Now(),
			})
		}
		if l.ctx.Progress.Unlock(parameter.AchParkourComplete) {
			l.pushAchievement(parameter.AchParkourComplete, "Parkour Master")
		}
		l.ctx.Events.Push(events.GameEvent{
			Type:      events.EventParkourComplete,
			Timestamp: l.ctx.Clock.Now(),
		})
	}
}

func (l *Loop) pushAchievement(id, title string) {
	l.ctx.Events.Push(events.GameEvent{
		Type:      events.EventAchievementUnlocked,
		Payload:   &events.AchievementPayload{ID: id, Title: title},
		Timestamp: l.ctx.Clock.Now(),
	})
}

// Body returns the current body state for rendering
func (l *Loop) Body() Body {
	return l.sim.Body()
}

// Level returns the level being played
func (l *Loop) Level() Level {
	return l.sim.Level()
}

// Done reports whether the course was completed
func (l *Loop) Done() bool {
	return l.sim.Done()
}

// Destroy stops the loop and releases held input
// Idempotent; no tick after Destroy mutates the simulation
func (l *Loop) Destroy() {
	if l.destroyed.CompareAndSwap(false, true) {
		l.ctx.Input.Reset()
	}
}
