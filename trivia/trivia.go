package trivia

import (
	"github.com/hexworth/blockfolio/core"
	"github.com/hexworth/blockfolio/engine"
	"github.com/hexworth/blockfolio/events"
	"github.com/hexworth/blockfolio/parameter"
)

// Block is one breakable block hiding a fact
type Block struct {
	Label  string
	Fact   string
	Broken bool
}

// Field is a row of breakable trivia blocks
// Breaking a block reveals its fact through the notification sink and
// awards experience; invalid or repeated breaks are no-ops with a denied
// sound cue
type Field struct {
	ctx    *engine.GameContext
	blocks []Block
	cursor int
}

// NewField creates a field over the given blocks
func NewField(ctx *engine.GameContext, blocks []Block) *Field {
	return &Field{
		ctx:    ctx,
		blocks: blocks,
	}
}

// DefaultBlocks returns the built-in fact bank
func DefaultBlocks() []Block {
	return []Block{
		{Label: "Go", Fact: "This site's engine is written in Go, end to end."},
		{Label: "Uptime", Fact: "The longest-running service I maintain has seen 3 years without a restart."},
		{Label: "Keys", Fact: "I type on a split keyboard with blank keycaps."},
		{Label: "First", Fact: "My first program drew a spinning cube in QBasic."},
		{Label: "Terminal", Fact: "Everything you see here is plain terminal cells."},
		{Label: "Coffee", Fact: "Cold brew, no sugar. The build fails otherwise."},
	}
}

// Blocks returns the current block states for rendering
func (f *Field) Blocks() []Block {
	return f.blocks
}

// Cursor returns the selected block index
func (f *Field) Cursor() int {
	return f.cursor
}

// MoveCursor shifts the selection by delta, clamped to the field
func (f *Field) MoveCursor(delta int) {
	f.cursor += delta
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor >= len(f.blocks) {
		f.cursor = len(f.blocks) - 1
	}
}

// Break breaks the block at index, revealing its fact and awarding XP
// Out-of-range indices and already-broken blocks are no-ops with a denied
// cue; returns whether a block was broken
func (f *Field) Break(index int) bool {
	if index < 0 || index >= len(f.blocks) || f.blocks[index].Broken {
		f.ctx.Audio.Play(core.SoundDenied)
		return false
	}

	f.blocks[index].Broken = true
	f.ctx.Audio.Play(core.SoundBreak)
	f.ctx.Notifier.Notify("Did you know?", f.blocks[index].Fact)

	applied, leveledUp := f.ctx.Progress.AddXP(parameter.TriviaXPAward)
	f.ctx.Events.Push(events.GameEvent{
		Type:      events.EventBlockBroken,
		Payload:   &events.BlockBrokenPayload{Index: index},
		Timestamp: f.ctx.Clock.Now(),
	})
	f.ctx.Events.Push(events.GameEvent{
		Type:      events.EventXPAwarded,
		Payload:   &events.XPAwardPayload{Amount: applied, Total: f.ctx.Progress.XP()},
		Timestamp: f.ctx.Clock.Now(),
	})
	if leveledUp {
		f.ctx.Events.Push(events.GameEvent{
			Type:      events.EventLevelUp,
			Payload:   &events.LevelUpPayload{Level: f.ctx.Progress.Level()},
			Timestamp: f.ctx.Clock.Now(),
		})
	}

	if f.Cleared() && f.ctx.Progress.Unlock(parameter.AchTriviaClear) {
		f.ctx.Events.Push(events.GameEvent{
			Type:      events.EventAchievementUnlocked,
			Payload:   &events.AchievementPayload{ID: parameter.AchTriviaClear, Title: "Lorekeeper"},
			Timestamp: f.ctx.Clock.Now(),
		})
	}
	return true
}

// Cleared reports whether every block is broken
func (f *Field) Cleared() bool {
	for _, b := range f.blocks {
		if !b.Broken {
			return false
		}
	}
	return true
}
