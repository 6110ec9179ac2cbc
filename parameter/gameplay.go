package parameter

// Experience
const (
	// XPMax caps total experience; awards past the cap are clamped, not lost
	XPMax = 100

	// XPPerLevel is the experience span of one level
	XPPerLevel = 25

	// ParkourXPAward is granted once on completing the parkour course
	ParkourXPAward = 15

	// TriviaXPAward is granted per trivia block broken
	TriviaXPAward = 5
)

// Achievement identifiers, persisted in the save blob
const (
	AchParkourComplete = "parkour-master"
	AchFirstFall       = "hard-landing"
	AchTriviaClear     = "lorekeeper"
	AchAllBiomes       = "cartographer"
)
