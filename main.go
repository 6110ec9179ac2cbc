package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	_ "github.com/joho/godotenv/autoload"

	"github.com/hexworth/blockfolio/audio"
	"github.com/hexworth/blockfolio/engine"
	"github.com/hexworth/blockfolio/gallery"
	"github.com/hexworth/blockfolio/game"
	"github.com/hexworth/blockfolio/parameter"
	"github.com/hexworth/blockfolio/progress"
	"github.com/hexworth/blockfolio/toast"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("blockfolio: %v", err)
	}
}

func run() error {
	clock := engine.NewTimeProvider()
	savePath := progress.SavePath()

	ctx := engine.NewGameContext(clock)
	ctx.Progress = progress.Load(savePath)

	sound := audio.NewService()
	sound.Init(audio.LoadConfig())
	defer sound.Stop()
	ctx.Audio = sound.Player()

	toasts := toast.NewQueue(clock, ctx.Audio)
	ctx.Notifier = toasts

	// Gallery failures degrade to an empty project list
	var projects []gallery.Project
	store, err := gallery.Open(galleryPath(savePath))
	if err == nil {
		projects, _ = store.Projects()
		store.Close()
	} else {
		log.Printf("gallery store unavailable: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	g := game.New(ctx, screen, toasts, projects, savePath)

	scheduler := engine.NewTickScheduler(clock, parameter.TickInterval, g.Tick)
	scheduler.Start()
	defer scheduler.Stop()

	keys := make(chan *tcell.EventKey, 16)
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				keys <- ev
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-keys:
			g.HandleKey(ev)
		case <-g.Done():
			g.Shutdown()
			return nil
		}
	}
}

func galleryPath(savePath string) string {
	if p := os.Getenv("BLOCKFOLIO_GALLERY_DB"); p != "" {
		return p
	}
	return filepath.Join(filepath.Dir(savePath), "gallery.db")
}
