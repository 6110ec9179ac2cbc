package progress

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// saveBlob is the single serialized record persisted between sessions
type saveBlob struct {
	XP                   int       `json:"xp"`
	Level                int       `json:"level"`
	UnlockedAchievements []string  `json:"unlockedAchievements"`
	Volume               float64   `json:"volume"`
	SFXVolume            float64   `json:"sfxVolume"`
	DarkTheme            bool      `json:"darkTheme"`
	LastSave             time.Time `json:"lastSave"`
}

const saveFileName = "blockfolio_save.json"

// SavePath resolves the save file location
// BLOCKFOLIO_SAVE_PATH overrides; otherwise the user config dir, falling
// back to the working directory
func SavePath() string {
	if p := os.Getenv("BLOCKFOLIO_SAVE_PATH"); p != "" {
		return p
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "blockfolio", saveFileName)
	}
	return saveFileName
}

// Load reads the save blob from path
// A missing or unparsable blob yields default progress, never an error
func Load(path string) *State {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewState()
	}

	var blob saveBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return NewState()
	}

	s := NewState()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.xp = blob.XP
	s.level = blob.Level
	if s.level < 1 {
		s.level = 1
	}
	for _, id := range blob.UnlockedAchievements {
		s.achievements[id] = struct{}{}
	}
	s.volume = blob.Volume
	s.sfxVolume = blob.SFXVolume
	s.darkTheme = blob.DarkTheme
	s.lastSave = blob.LastSave
	return s
}

// Save writes the blob to path, creating parent directories as needed
func (s *State) Save(path string, now time.Time) error {
	s.mu.Lock()
	s.lastSave = now
	blob := saveBlob{
		XP:                   s.xp,
		Level:                s.level,
		UnlockedAchievements: make([]string, 0, len(s.achievements)),
		Volume:               s.volume,
		SFXVolume:            s.sfxVolume,
		DarkTheme:            s.darkTheme,
		LastSave:             s.lastSave,
	}
	for id := range s.achievements {
		blob.UnlockedAchievements = append(blob.UnlockedAchievements, id)
	}
	s.mu.Unlock()

	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
