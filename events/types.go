package events

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventAchievementUnlocked signals a first-time achievement unlock
	// Trigger: Progress.Unlock returning true
	// Consumer: Game (toast + save) | Payload: *AchievementPayload
	EventAchievementUnlocked EventType = iota

	// EventXPAwarded signals an experience increment (already clamped)
	// Trigger: parkour win, trivia block break
	// Consumer: Game (save) | Payload: *XPAwardPayload
	EventXPAwarded

	// EventLevelUp signals the progress level increased
	// Trigger: Progress.AddXP crossing a level threshold
	// Consumer: Game (toast + sound) | Payload: *LevelUpPayload
	EventLevelUp

	// EventParkourFell signals the body fell through the arena bottom
	// Trigger: parkour fall-through check, once per fall
	// Consumer: Game (achievement bookkeeping) | Payload: nil
	EventParkourFell

	// EventParkourComplete signals the course win threshold was crossed
	// Trigger: parkour win check, terminates the loop
	// Consumer: Game | Payload: nil
	EventParkourComplete

	// EventBlockBroken signals a trivia block was broken
	// Trigger: trivia Break on an intact block
	// Consumer: Game | Payload: *BlockBrokenPayload
	EventBlockBroken

	// EventBiomeEntered signals navigation into a biome section
	// Trigger: hotbar selection
	// Consumer: Game (visit tracking) | Payload: *BiomeEnteredPayload
	EventBiomeEntered
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// AchievementPayload identifies a newly unlocked achievement
type AchievementPayload struct {
	ID    string
	Title string
}

// XPAwardPayload carries the applied experience delta
type XPAwardPayload struct {
	Amount int
	Total  int
}

// LevelUpPayload carries the level reached
type LevelUpPayload struct {
	Level int
}

// BlockBrokenPayload identifies the broken trivia block
type BlockBrokenPayload struct {
	Index int
}

// BiomeEnteredPayload identifies the biome section entered
type BiomeEnteredPayload struct {
	Biome int
}
