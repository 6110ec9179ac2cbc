package game

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hexworth/blockfolio/core"
	"github.com/hexworth/blockfolio/engine"
	"github.com/hexworth/blockfolio/parameter"
	"github.com/hexworth/blockfolio/toast"
)

type recordingPlayer struct {
	mu     sync.Mutex
	played []core.SoundType
}

func (p *recordingPlayer) Play(t core.SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, t)
	return true
}

func (p *recordingPlayer) ToggleMute() bool { return false }
func (p *recordingPlayer) IsMuted() bool    { return false }

func (p *recordingPlayer) count(t core.SoundType) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, s := range p.played {
		if s == t {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T) (*Game, *engine.MockTimeProvider, *recordingPlayer) {
	t.Helper()

	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	ctx := engine.NewGameContext(clock)
	player := &recordingPlayer{}
	ctx.Audio = player

	toasts := toast.NewQueue(clock, player)
	ctx.Notifier = toasts

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)

	savePath := filepath.Join(t.TempDir(), "save.json")
	return New(ctx, screen, toasts, nil, savePath), clock, player
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func tick(g *Game, clock *engine.MockTimeProvider) {
	clock.Advance(parameter.TickInterval)
	g.Tick(clock.Now(), parameter.TickInterval)
}

func TestTitleConfirmEntersOverworld(t *testing.T) {
	g, clock, _ := newTestGame(t)

	g.HandleKey(key(tcell.KeyEnter, 0))
	if g.Mode() != ModeOverworld {
		t.Fatalf("mode = %v, want overworld", g.Mode())
	}

	tick(g, clock)
	if !g.visited[0] {
		t.Error("entering the first biome did not record a visit")
	}
}

func TestHotbarOutOfRangeIsNoOp(t *testing.T) {
	g, clock, player := newTestGame(t)
	g.HandleKey(key(tcell.KeyEnter, 0))
	tick(g, clock)

	before := g.hb.SelectedIndex()
	g.HandleKey(key(tcell.KeyRune, '9'))

	if g.Mode() != ModeOverworld {
		t.Errorf("mode = %v, want overworld", g.Mode())
	}
	if g.hb.SelectedIndex() != before {
		t.Errorf("selected index changed to %d", g.hb.SelectedIndex())
	}
	if player.count(core.SoundDenied) != 1 {
		t.Errorf("denied sound played %d times, want 1", player.count(core.SoundDenied))
	}
}

func TestHotbarOpensParkourAndEscapeLeaves(t *testing.T) {
	g, clock, _ := newTestGame(t)
	g.HandleKey(key(tcell.KeyEnter, 0))
	tick(g, clock)

	g.HandleKey(key(tcell.KeyRune, '5'))
	if g.Mode() != ModeParkour {
		t.Fatalf("mode = %v, want parkour", g.Mode())
	}
	if g.loop == nil {
		t.Fatal("no parkour loop after entering parkour")
	}
	tick(g, clock)

	g.HandleKey(key(tcell.KeyEscape, 0))
	if g.Mode() != ModeOverworld {
		t.Errorf("mode = %v, want overworld after escape", g.Mode())
	}
	if g.loop != nil {
		t.Error("parkour loop not released on leave")
	}
}

func TestTriviaBreakShowsToast(t *testing.T) {
	g, clock, _ := newTestGame(t)
	g.HandleKey(key(tcell.KeyEnter, 0))
	tick(g, clock)

	g.HandleKey(key(tcell.KeyRune, '6'))
	if g.Mode() != ModeTrivia {
		t.Fatalf("mode = %v, want trivia", g.Mode())
	}

	g.HandleKey(key(tcell.KeyEnter, 0))
	tick(g, clock)

	vis, _, ok := g.toasts.Visible()
	if !ok {
		t.Fatal("no toast visible after breaking a block")
	}
	if vis.Title != "Did you know?" {
		t.Errorf("toast title = %q", vis.Title)
	}
	if g.ctx.Progress.XP() != parameter.TriviaXPAward {
		t.Errorf("xp = %d, want %d", g.ctx.Progress.XP(), parameter.TriviaXPAward)
	}
}

func TestAllBiomesUnlocksCartographer(t *testing.T) {
	g, clock, _ := newTestGame(t)
	g.HandleKey(key(tcell.KeyEnter, 0))
	tick(g, clock)

	for _, r := range []rune{'2', '3', '4'} {
		g.HandleKey(key(tcell.KeyRune, r))
		tick(g, clock)
	}
	// the unlock is pushed during dispatch, surfaced on the next tick
	tick(g, clock)

	if !g.ctx.Progress.Has(parameter.AchAllBiomes) {
		t.Fatal("visiting every biome did not unlock the achievement")
	}
}

func TestCartographerUnlockIsOneTime(t *testing.T) {
	g, clock, _ := newTestGame(t)
	g.HandleKey(key(tcell.KeyEnter, 0))
	tick(g, clock)

	for pass := 0; pass < 2; pass++ {
		for _, r := range []rune{'2', '3', '4', '1'} {
			g.HandleKey(key(tcell.KeyRune, r))
			tick(g, clock)
		}
	}
	tick(g, clock)

	if got := len(g.ctx.Progress.Achievements()); got != 1 {
		t.Errorf("achievements = %d, want 1", got)
	}
}

func TestQuitClosesDone(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.HandleKey(key(tcell.KeyCtrlC, 0))
	select {
	case <-g.Done():
	default:
		t.Fatal("done channel not closed after quit")
	}

	// a second quit must not panic
	g.HandleKey(key(tcell.KeyCtrlC, 0))
}
