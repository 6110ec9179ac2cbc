package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundSelect  SoundType = iota // Hotbar slot change
	SoundDenied                   // Invalid slot or unknown block
	SoundJump                     // Parkour jump
	SoundLand                     // Parkour landing on a platform
	SoundFall                     // Parkour fall-through reset
	SoundBreak                    // Trivia block broken
	SoundToast                    // Notification appears
	SoundLevelUp                  // Level gained
	SoundWin                      // Parkour course complete
	SoundTypeCount
)
