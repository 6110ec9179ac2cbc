package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/hexworth/blockfolio/core"
	"github.com/hexworth/blockfolio/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Engine plays generated sound effects through a single beep mixer
type Engine struct {
	mu          sync.Mutex
	config      *Config
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

// NewEngine creates an engine with the given config (nil = defaults)
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Engine{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	e.muted.Store(!cfg.Enabled)
	return e
}

// Initialize sets up the speaker and attaches the mixer
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Cleanup silences the mixer; the speaker itself has no close
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// Play fires the effect for the given sound type
// Returns false when the effect was skipped (uninitialized, muted, unknown)
func (e *Engine) Play(t core.SoundType) bool {
	if e.muted.Load() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return false
	}

	streamer := e.streamerFor(t)
	if streamer == nil {
		return false
	}

	vol := e.config.MasterVolume
	if ev, ok := e.config.EffectVolumes[t]; ok {
		vol *= ev
	}

	speaker.Lock()
	e.mixer.Add(&effects.Gain{Streamer: streamer, Gain: vol - 1})
	speaker.Unlock()
	return true
}

// streamerFor builds a finite streamer per effect; nil for unknown types
func (e *Engine) streamerFor(t core.SoundType) beep.Streamer {
	ms := func(d time.Duration) int { return sampleRate.N(d) }

	switch t {
	case core.SoundSelect:
		return NewArpeggioGenerator(sampleRate, []float64{660, 880}, ms(45*time.Millisecond))
	case core.SoundDenied:
		return beep.Take(ms(150*time.Millisecond), NewBuzzGenerator(sampleRate, 120))
	case core.SoundJump:
		return NewChirpGenerator(sampleRate, 320, 640, ms(120*time.Millisecond))
	case core.SoundLand:
		return NewChirpGenerator(sampleRate, 200, 140, ms(70*time.Millisecond))
	case core.SoundFall:
		return NewChirpGenerator(sampleRate, 520, 90, ms(350*time.Millisecond))
	case core.SoundBreak:
		return beep.Take(ms(250*time.Millisecond), NewCrackGenerator(sampleRate, time.Now().UnixNano()))
	case core.SoundToast:
		return NewArpeggioGenerator(sampleRate, []float64{880, 1175}, ms(55*time.Millisecond))
	case core.SoundLevelUp:
		return NewArpeggioGenerator(sampleRate, []float64{523, 659, 784, 1047}, ms(90*time.Millisecond))
	case core.SoundWin:
		return NewArpeggioGenerator(sampleRate, []float64{523, 659, 784, 1047, 1319}, ms(110*time.Millisecond))
	}
	return nil
}

// ToggleMute flips the mute state and returns the new state
func (e *Engine) ToggleMute() bool {
	for {
		old := e.muted.Load()
		if e.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports the current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}
