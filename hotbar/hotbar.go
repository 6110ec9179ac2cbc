package hotbar

// TargetKind discriminates what a slot navigates to
type TargetKind uint8

const (
	TargetBiome TargetKind = iota
	TargetParkour
	TargetTrivia
	TargetGallery
)

// Slot is one selectable hotbar entry
type Slot struct {
	Label string
	Kind  TargetKind
	Biome int // Biome index for TargetBiome slots
}

// Hotbar is a row of selectable slots mapping to navigation targets
type Hotbar struct {
	slots    []Slot
	selected int
}

// New creates a hotbar over the given slots; the first slot is selected
func New(slots []Slot) *Hotbar {
	return &Hotbar{slots: slots}
}

// DefaultSlots returns the standard navigation row: the four biomes plus
// the minigames and the gallery
func DefaultSlots() []Slot {
	return []Slot{
		{Label: "Meadow", Kind: TargetBiome, Biome: 0},
		{Label: "Caverns", Kind: TargetBiome, Biome: 1},
		{Label: "Peaks", Kind: TargetBiome, Biome: 2},
		{Label: "Harbor", Kind: TargetBiome, Biome: 3},
		{Label: "Parkour", Kind: TargetParkour},
		{Label: "Trivia", Kind: TargetTrivia},
		{Label: "Gallery", Kind: TargetGallery},
	}
}

// Slots returns the slot row for rendering
func (h *Hotbar) Slots() []Slot {
	return h.slots
}

// SelectedIndex returns the active slot index
func (h *Hotbar) SelectedIndex() int {
	return h.selected
}

// Selected returns the active slot
func (h *Hotbar) Selected() Slot {
	return h.slots[h.selected]
}

// Select activates the slot at index
// Out-of-range indices are a no-op returning false, never a panic
func (h *Hotbar) Select(index int) bool {
	if index < 0 || index >= len(h.slots) {
		return false
	}
	h.selected = index
	return true
}
