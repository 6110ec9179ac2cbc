package audio

import (
	"sync/atomic"

	"github.com/hexworth/blockfolio/core"
)

// Player defines the minimal audio interface consumed by game systems
// All failures stay inside the implementation; callers never branch on
// audio availability
type Player interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// NopPlayer silently swallows all playback, the default when no audio
// backend is available
type NopPlayer struct{}

func (NopPlayer) Play(core.SoundType) bool { return false }
func (NopPlayer) ToggleMute() bool         { return true }
func (NopPlayer) IsMuted() bool            { return true }

// Service wraps Engine with graceful degradation: speaker failures mark the
// service disabled and Player() degrades to NopPlayer
type Service struct {
	engine   *Engine
	disabled atomic.Bool
}

// NewService creates an uninitialized audio service
func NewService() *Service {
	return &Service{}
}

// Init builds and initializes the engine from config
// Backend failure sets the disabled flag; no error is returned
func (s *Service) Init(cfg *Config) {
	engine := NewEngine(cfg)
	if err := engine.Initialize(); err != nil {
		s.disabled.Store(true)
		return
	}
	s.engine = engine
}

// Stop tears down the engine if one is running
func (s *Service) Stop() {
	if s.engine != nil {
		s.engine.Cleanup()
	}
}

// IsDisabled returns true if audio is unavailable
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the playback interface, NopPlayer when disabled
func (s *Service) Player() Player {
	if s.disabled.Load() || s.engine == nil {
		return NopPlayer{}
	}
	return s.engine
}
