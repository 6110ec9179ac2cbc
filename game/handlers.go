package game

import (
	"fmt"

	"github.com/hexworth/blockfolio/biome"
	"github.com/hexworth/blockfolio/core"
	"github.com/hexworth/blockfolio/events"
	"github.com/hexworth/blockfolio/parameter"
)

// progressHandler surfaces progression events as toasts and persists
// the save blob whenever durable state changed
type progressHandler struct{}

func (progressHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventAchievementUnlocked,
		events.EventXPAwarded,
		events.EventLevelUp,
	}
}

func (progressHandler) HandleEvent(g *Game, event events.GameEvent) {
	switch event.Type {
	case events.EventAchievementUnlocked:
		p, ok := event.Payload.(*events.AchievementPayload)
		if !ok {
			return
		}
		g.toasts.Enqueue("Achievement unlocked!", p.Title)
		g.ctx.Audio.Play(core.SoundLevelUp)
		g.saveProgress()

	case events.EventXPAwarded:
		g.saveProgress()

	case events.EventLevelUp:
		p, ok := event.Payload.(*events.LevelUpPayload)
		if !ok {
			return
		}
		g.toasts.Enqueue("Level up!", fmt.Sprintf("You reached level %d", p.Level))
		g.ctx.Audio.Play(core.SoundLevelUp)
	}
}

// biomeHandler tracks section visits and unlocks the full-tour
// achievement once every biome has been entered
type biomeHandler struct{}

func (biomeHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventBiomeEntered}
}

func (biomeHandler) HandleEvent(g *Game, event events.GameEvent) {
	p, ok := event.Payload.(*events.BiomeEnteredPayload)
	if !ok {
		return
	}
	g.visited[p.Biome] = true
	if len(g.visited) < len(biome.Biomes) {
		return
	}
	if !g.ctx.Progress.Unlock(parameter.AchAllBiomes) {
		return
	}
	g.ctx.Events.Push(events.GameEvent{
		Type: events.EventAchievementUnlocked,
		Payload: &events.AchievementPayload{
			ID:    parameter.AchAllBiomes,
			Title: "Cartographer",
		},
		Timestamp: event.Timestamp,
	})
}
