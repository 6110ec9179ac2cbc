package trivia

import (
	"sync"
	"testing"
	"time"

	"github.com/hexworth/blockfolio/engine"
	"github.com/hexworth/blockfolio/parameter"
)

type recordingNotifier struct {
	mu    sync.Mutex
	descs []string
}

func (r *recordingNotifier) Notify(title, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.descs = append(r.descs, description)
}

func newTestField(blocks []Block) (*Field, *recordingNotifier, *engine.GameContext) {
	clock := engine.NewMockTimeProvider(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	ctx := engine.NewGameContext(clock)
	rec := &recordingNotifier{}
	ctx.Notifier = rec
	return NewField(ctx, blocks), rec, ctx
}

// TestBreakRevealsFactOnce verifies a block breaks once, reveals its fact
// and awards XP; repeats are no-ops
func TestBreakRevealsFactOnce(t *testing.T) {
	f, rec, ctx := newTestField([]Block{{Label: "a", Fact: "fact-a"}})

	if !f.Break(0) {
		t.Fatal("first break failed")
	}
	if f.Break(0) {
		t.Error("second break succeeded on broken block")
	}

	if len(rec.descs) != 1 || rec.descs[0] != "fact-a" {
		t.Errorf("expected one fact reveal, got %v", rec.descs)
	}
	if xp := ctx.Progress.XP(); xp != parameter.TriviaXPAward {
		t.Errorf("expected %d XP, got %d", parameter.TriviaXPAward, xp)
	}
}

// TestBreakOutOfRangeNoOp verifies invalid indices never panic or mutate
func TestBreakOutOfRangeNoOp(t *testing.T) {
	f, rec, ctx := newTestField([]Block{{Label: "a", Fact: "fact-a"}})

	if f.Break(-1) || f.Break(1) || f.Break(99) {
		t.Error("out-of-range break succeeded")
	}
	if len(rec.descs) != 0 {
		t.Errorf("out-of-range break notified: %v", rec.descs)
	}
	if ctx.Progress.XP() != 0 {
		t.Errorf("out-of-range break awarded XP: %d", ctx.Progress.XP())
	}
}

// TestClearUnlocksAchievement verifies clearing the field unlocks the
// lorekeeper achievement exactly once
func TestClearUnlocksAchievement(t *testing.T) {
	f, _, ctx := newTestField([]Block{
		{Label: "a", Fact: "fa"},
		{Label: "b", Fact: "fb"},
	})

	f.Break(0)
	if ctx.Progress.Has(parameter.AchTriviaClear) {
		t.Fatal("achievement unlocked before clear")
	}

	f.Break(1)
	if !f.Cleared() {
		t.Fatal("field not cleared")
	}
	if !ctx.Progress.Has(parameter.AchTriviaClear) {
		t.Error("achievement not unlocked on clear")
	}
}

// TestCursorClamps verifies cursor movement stays inside the field
func TestCursorClamps(t *testing.T) {
	f, _, _ := newTestField(DefaultBlocks())

	f.MoveCursor(-5)
	if f.Cursor() != 0 {
		t.Errorf("cursor escaped left: %d", f.Cursor())
	}
	f.MoveCursor(100)
	if f.Cursor() != len(DefaultBlocks())-1 {
		t.Errorf("cursor escaped right: %d", f.Cursor())
	}
}
