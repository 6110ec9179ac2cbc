package game

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hexworth/blockfolio/biome"
	"github.com/hexworth/blockfolio/core"
	"github.com/hexworth/blockfolio/engine"
	"github.com/hexworth/blockfolio/events"
	"github.com/hexworth/blockfolio/gallery"
	"github.com/hexworth/blockfolio/hotbar"
	"github.com/hexworth/blockfolio/input"
	"github.com/hexworth/blockfolio/parkour"
	"github.com/hexworth/blockfolio/render"
	"github.com/hexworth/blockfolio/toast"
	"github.com/hexworth/blockfolio/trivia"
)

// Game owns the mode machine and the per-mode subsystem lifecycles.
// HandleKey runs on the event poll goroutine, Tick on the scheduler
// goroutine; the mutex covers all mode and subsystem state.
type Game struct {
	mu sync.Mutex

	ctx    *engine.GameContext
	screen tcell.Screen
	toasts *toast.Queue
	router *events.Router[*Game]

	mode Mode
	hb   *hotbar.Hotbar

	biomeIdx int
	visited  map[int]bool

	loop  *parkour.Loop
	field *trivia.Field

	projects      []gallery.Project
	galleryCursor int

	savePath string

	quitOnce sync.Once
	done     chan struct{}
}

// New assembles the game over a context whose Notifier is the given
// toast queue. Projects may be empty when the gallery store failed to
// open; the gallery screen then shows a placeholder.
func New(ctx *engine.GameContext, screen tcell.Screen, toasts *toast.Queue, projects []gallery.Project, savePath string) *Game {
	g := &Game{
		ctx:      ctx,
		screen:   screen,
		toasts:   toasts,
		mode:     ModeTitle,
		hb:       hotbar.New(hotbar.DefaultSlots()),
		visited:  make(map[int]bool),
		field:    trivia.NewField(ctx, trivia.DefaultBlocks()),
		projects: projects,
		savePath: savePath,
		done:     make(chan struct{}),
	}

	g.router = events.NewRouter[*Game](ctx.Events)
	g.router.Register(&progressHandler{})
	g.router.Register(&biomeHandler{})

	return g
}

// Done is closed when the player quits
func (g *Game) Done() <-chan struct{} {
	return g.done
}

// Mode returns the active screen
func (g *Game) Mode() Mode {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mode
}

// HandleKey translates a key event in the active mode's context and
// applies the resulting intent
func (g *Game) HandleKey(ev *tcell.EventKey) {
	g.mu.Lock()
	defer g.mu.Unlock()

	intent := input.Translate(ev, g.mode.inputContext())
	g.apply(intent)
}

func (g *Game) apply(intent input.Intent) {
	switch intent.Type {
	case input.IntentNone:
		return
	case input.IntentQuit:
		g.requestQuit()
		return
	case input.IntentToggleMute:
		g.ctx.Audio.ToggleMute()
		return
	}

	switch g.mode {
	case ModeTitle:
		g.applyTitle(intent)
	case ModeOverworld:
		g.applyOverworld(intent)
	case ModeParkour:
		g.applyParkour(intent)
	case ModeTrivia:
		g.applyTrivia(intent)
	case ModeGallery:
		g.applyGallery(intent)
	}
}

func (g *Game) applyTitle(intent input.Intent) {
	switch intent.Type {
	case input.IntentConfirm:
		g.ctx.Audio.Play(core.SoundSelect)
		g.enterBiome(0)
	case input.IntentBack:
		g.requestQuit()
	}
}

func (g *Game) applyOverworld(intent input.Intent) {
	switch intent.Type {
	case input.IntentSelectSlot:
		g.selectSlot(intent.Slot)
	case input.IntentScrollUp, input.IntentCursorLeft:
		g.enterBiome((g.biomeIdx + len(biome.Biomes) - 1) % len(biome.Biomes))
	case input.IntentScrollDown, input.IntentCursorRight:
		g.enterBiome((g.biomeIdx + 1) % len(biome.Biomes))
	case input.IntentBack:
		g.mode = ModeTitle
	}
}

func (g *Game) applyParkour(intent input.Intent) {
	switch intent.Type {
	case input.IntentMoveLeft, input.IntentMoveRight, input.IntentJump:
		g.ctx.Input.Press(intent.Type, g.ctx.Clock.Now())
	case input.IntentConfirm:
		if g.loop != nil && g.loop.Done() {
			g.leaveParkour()
		}
	case input.IntentBack:
		g.leaveParkour()
	}
}

func (g *Game) applyTrivia(intent input.Intent) {
	switch intent.Type {
	case input.IntentCursorLeft:
		g.field.MoveCursor(-1)
	case input.IntentCursorRight:
		g.field.MoveCursor(1)
	case input.IntentBreakBlock, input.IntentConfirm:
		g.field.Break(g.field.Cursor())
	case input.IntentBack:
		g.mode = ModeOverworld
	}
}

func (g *Game) applyGallery(intent input.Intent) {
	switch intent.Type {
	case input.IntentScrollUp:
		if g.galleryCursor > 0 {
			g.galleryCursor--
			g.ctx.Audio.Play(core.SoundSelect)
		}
	case input.IntentScrollDown:
		if g.galleryCursor < len(g.projects)-1 {
			g.galleryCursor++
			g.ctx.Audio.Play(core.SoundSelect)
		}
	case input.IntentBack:
		g.mode = ModeOverworld
	}
}

// selectSlot routes a hotbar digit. Out-of-range digits keep the
// current selection and play the denial cue.
func (g *Game) selectSlot(index int) {
	if !g.hb.Select(index) {
		g.ctx.Audio.Play(core.SoundDenied)
		return
	}

	slot := g.hb.Selected()
	switch slot.Kind {
	case hotbar.TargetBiome:
		g.ctx.Audio.Play(core.SoundSelect)
		g.enterBiome(slot.Biome)
	case hotbar.TargetParkour:
		g.ctx.Audio.Play(core.SoundSelect)
		g.enterParkour()
	case hotbar.TargetTrivia:
		g.ctx.Audio.Play(core.SoundSelect)
		g.mode = ModeTrivia
	case hotbar.TargetGallery:
		g.ctx.Audio.Play(core.SoundSelect)
		g.mode = ModeGallery
	}
}

func (g *Game) enterBiome(index int) {
	g.mode = ModeOverworld
	g.biomeIdx = index
	g.ctx.Events.Push(events.GameEvent{
		Type:      events.EventBiomeEntered,
		Payload:   &events.BiomeEnteredPayload{Biome: index},
		Timestamp: g.ctx.Clock.Now(),
	})
}

func (g *Game) enterParkour() {
	if g.loop != nil {
		g.loop.Destroy()
	}
	g.loop = parkour.Start(g.ctx, parkour.DefaultLevel())
	g.mode = ModeParkour
}

func (g *Game) leaveParkour() {
	if g.loop != nil {
		g.loop.Destroy()
		g.loop = nil
	}
	g.mode = ModeOverworld
}

func (g *Game) requestQuit() {
	g.quitOnce.Do(func() {
		close(g.done)
	})
}

// Tick advances the active subsystems and redraws.
// Called from the scheduler at the fixed cadence.
func (g *Game) Tick(now time.Time, dt time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.mode == ModeParkour && g.loop != nil {
		g.loop.Step(dt)
	}

	g.router.DispatchAll(g)
	g.toasts.Update(now)
	g.draw()
}

func (g *Game) draw() {
	g.screen.Clear()

	switch g.mode {
	case ModeTitle:
		render.DrawTitle(g.screen)
	case ModeOverworld:
		render.DrawBiome(g.screen, biome.Biomes[g.biomeIdx])
	case ModeParkour:
		render.DrawParkour(g.screen, g.loop)
	case ModeTrivia:
		render.DrawTrivia(g.screen, g.field)
	case ModeGallery:
		render.DrawGallery(g.screen, g.projects, g.galleryCursor)
	}

	if g.mode != ModeTitle {
		render.DrawHUD(g.screen, g.hb, g.ctx.Progress, g.ctx.Audio.IsMuted())
	}
	if t, state, ok := g.toasts.Visible(); ok {
		render.DrawToast(g.screen, t, state)
	}

	g.screen.Show()
}

// saveProgress persists the blob; save failures are not fatal to play
func (g *Game) saveProgress() {
	_ = g.ctx.Progress.Save(g.savePath, g.ctx.Clock.Now())
}

// Shutdown persists progress on the way out
func (g *Game) Shutdown() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.loop != nil {
		g.loop.Destroy()
		g.loop = nil
	}
	g.saveProgress()
}
