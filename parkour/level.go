package parkour

// Level defines a course: static platforms, the spawn point, arena bounds
// and the win threshold near the right edge
type Level struct {
	Platforms []Platform
	SpawnX    float64
	SpawnY    float64
	Width     float64 // Arena width; horizontal positions clamp to [0, Width)
	Height    float64 // Arena height; falling past it resets the body
	WinX      float64 // Crossing this X completes the course
}

// DefaultLevel returns the built-in course: a staircase of ledges rising
// toward the goal flag on the right
func DefaultLevel() Level {
	return Level{
		Platforms: []Platform{
			{X: 0, Y: 20, W: 16, H: 2},   // Spawn ledge
			{X: 20, Y: 18, W: 8, H: 2},   // First gap hop
			{X: 32, Y: 15, W: 7, H: 2},   // Rising steps
			{X: 43, Y: 12, W: 7, H: 2},
			{X: 54, Y: 15, W: 6, H: 2},   // Drop-down
			{X: 64, Y: 13, W: 12, H: 2},  // Goal ledge
		},
		SpawnX: 2,
		SpawnY: 16,
		Width:  78,
		Height: 26,
		WinX:   72,
	}
}

// SpawnBody returns a fresh body at the level's spawn point
func (l Level) SpawnBody() Body {
	return Body{
		X: l.SpawnX,
		Y: l.SpawnY,
		W: 2,
		H: 2,
	}
}
