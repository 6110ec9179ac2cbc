package parameter

import "time"

// Audio engine
const (
	// AudioSampleRate for all generated effect streamers
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master volume when no config overrides it
	AudioDefaultVolume = 0.7
)
