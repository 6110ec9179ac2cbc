package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+C, Ctrl+Q
	IntentBack       // ESC, leave current screen
	IntentToggleMute // m

	// Navigation
	IntentConfirm    // Enter
	IntentSelectSlot // 1-9 hotbar digits
	IntentScrollUp   // k, Up arrow
	IntentScrollDown // j, Down arrow

	// Parkour controls
	IntentMoveLeft  // h, a, Left arrow
	IntentMoveRight // l, d, Right arrow
	IntentJump      // Space, w, Up arrow

	// Trivia controls
	IntentBreakBlock // Enter/Space on the cursor block
	IntentCursorLeft
	IntentCursorRight
)

// Intent represents a parsed semantic action
// Pure data struct with no function pointers or engine dependencies
type Intent struct {
	Type IntentType
	Slot int  // Hotbar slot for IntentSelectSlot (0-based)
	Char rune // Originating rune, for debugging
}
