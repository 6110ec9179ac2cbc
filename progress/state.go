package progress

import (
	"sort"
	"sync"
	"time"

	"github.com/hexworth/blockfolio/parameter"
)

// State holds the player's persistent progression: experience, level,
// one-time achievement flags and volume preferences
// All access is mutex-guarded; input callbacks and the tick share it
type State struct {
	mu           sync.Mutex
	xp           int
	level        int
	achievements map[string]struct{}
	volume       float64
	sfxVolume    float64
	darkTheme    bool
	lastSave     time.Time
}

// NewState returns the default progress: level 1, no XP, no achievements
func NewState() *State {
	return &State{
		level:        1,
		achievements: make(map[string]struct{}),
		volume:       parameter.AudioDefaultVolume,
		sfxVolume:    parameter.AudioDefaultVolume,
	}
}

// XP returns the current clamped experience total
func (s *State) XP() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.xp
}

// Level returns the current level
func (s *State) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// AddXP applies an experience award, clamping the total at XPMax
// Returns the applied (possibly truncated) delta and whether a level was
// gained
func (s *State) AddXP(amount int) (applied int, leveledUp bool) {
	if amount <= 0 {
		return 0, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.xp
	s.xp += amount
	if s.xp > parameter.XPMax {
		s.xp = parameter.XPMax
	}
	applied = s.xp - before

	newLevel := levelForXP(s.xp)
	if newLevel > s.level {
		s.level = newLevel
		leveledUp = true
	}
	return applied, leveledUp
}

// levelForXP maps a clamped XP total onto a level, starting at 1
func levelForXP(xp int) int {
	return 1 + xp/parameter.XPPerLevel
}

// Unlock records an achievement; returns true only on first unlock
func (s *State) Unlock(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.achievements[id]; ok {
		return false
	}
	s.achievements[id] = struct{}{}
	return true
}

// Has reports whether the achievement is unlocked
func (s *State) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.achievements[id]
	return ok
}

// Achievements returns the unlocked set in sorted order
func (s *State) Achievements() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.achievements))
	for id := range s.achievements {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Volume returns the master music volume preference
func (s *State) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// SFXVolume returns the effect volume preference
func (s *State) SFXVolume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sfxVolume
}

// SetVolumes stores the volume preferences
func (s *State) SetVolumes(volume, sfx float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = volume
	s.sfxVolume = sfx
}

// DarkTheme returns the theme preference
func (s *State) DarkTheme() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkTheme
}

// SetDarkTheme stores the theme preference
func (s *State) SetDarkTheme(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkTheme = dark
}

// LastSave returns the timestamp of the most recent successful save
func (s *State) LastSave() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSave
}
