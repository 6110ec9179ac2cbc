package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ChirpGenerator sweeps a sine from startFreq to endFreq over its lifetime
// Used for jump (rising) and fall (dropping) effects
type ChirpGenerator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	samples   int
	pos       int
}

// NewChirpGenerator creates a frequency sweep of the given sample length
func NewChirpGenerator(sr beep.SampleRate, startFreq, endFreq float64, samples int) *ChirpGenerator {
	return &ChirpGenerator{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		samples:   samples,
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.samples)
		freq := g.startFreq + (g.endFreq-g.startFreq)*progress

		// Fade out over the sweep
		amplitude := 0.25 * (1.0 - progress*0.7)
		sample := amplitude * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz with harmonics, used for the
// denied/error cue
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Square-ish wave with harmonics for harsh buzz
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Envelope to fade in
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.02, 1.0)
		sample *= envelope * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// CrackGenerator generates a breaking/crackling burst for block breaks
type CrackGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrackGenerator creates a crack sound generator
func NewCrackGenerator(sr beep.SampleRate, seed int64) *CrackGenerator {
	return &CrackGenerator{
		sr:   sr,
		seed: seed,
	}
}

func (g *CrackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, fast exponential decay
		envelope := math.Exp(-t * 12)

		// LCG noise for the crackle
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Low rumble underneath
		rumble := 0.3 * math.Sin(2*math.Pi*90*t)

		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrackGenerator) Err() error {
	return nil
}

// ArpeggioGenerator plays a short note sequence, used for level-up and win
type ArpeggioGenerator struct {
	sr         beep.SampleRate
	freqs      []float64
	noteLength int // Samples per note
	pos        int
}

// NewArpeggioGenerator creates an arpeggio over the given frequencies
func NewArpeggioGenerator(sr beep.SampleRate, freqs []float64, noteLength int) *ArpeggioGenerator {
	return &ArpeggioGenerator{
		sr:         sr,
		freqs:      freqs,
		noteLength: noteLength,
	}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.noteLength * len(g.freqs)
	for i := range samples {
		if g.pos >= total {
			return i, i > 0
		}
		note := g.pos / g.noteLength
		notePos := g.pos % g.noteLength
		t := float64(g.pos) / float64(g.sr)

		// Per-note envelope, short release tail
		envelope := 1.0
		release := g.noteLength / 4
		if notePos > g.noteLength-release {
			envelope = float64(g.noteLength-notePos) / float64(release)
		}

		sample := 0.22 * envelope * math.Sin(2*math.Pi*g.freqs[note]*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}
