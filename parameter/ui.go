package parameter

import "time"

// Tick & Input
const (
	// TickInterval is the fixed game logic tick period
	TickInterval = 33 * time.Millisecond

	// InputHoldWindow is how long a movement key counts as held after its
	// last press event (terminals deliver no key-up)
	InputHoldWindow = 150 * time.Millisecond
)

// Toast timing
const (
	// ToastDisplayDuration is how long a toast stays fully visible
	ToastDisplayDuration = 3000 * time.Millisecond

	// ToastDismissDuration is the exit animation window before the next
	// queued toast may appear
	ToastDismissDuration = 500 * time.Millisecond
)

// Toast layout
const (
	// ToastWidth is the on-screen toast box width in cells
	ToastWidth = 34

	// ToastMargin is the gap between the toast box and the screen edge
	ToastMargin = 1
)

// Hotbar layout
const (
	// HotbarSlotWidth is the drawn width of one hotbar slot
	HotbarSlotWidth = 12

	// HotbarRow is the row offset from the bottom of the screen
	HotbarRow = 2
)
