package parkour

// Body is the controllable kinematic body
// Mutated once per simulation tick; owned exclusively by the running Sim
type Body struct {
	X, Y       float64 // Top-left corner in cells
	VelX, VelY float64 // Cells per reference frame
	W, H       float64
	OnGround   bool
}

// Bottom returns the Y coordinate of the body's bottom edge
func (b Body) Bottom() float64 {
	return b.Y + b.H
}

// Right returns the X coordinate of the body's right edge
func (b Body) Right() float64 {
	return b.X + b.W
}

// Platform is a static axis-aligned surface
// Immutable for the lifetime of a session
type Platform struct {
	X, Y, W, H float64
}

// Right returns the X coordinate of the platform's right edge
func (p Platform) Right() float64 {
	return p.X + p.W
}
