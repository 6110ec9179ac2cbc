package parameter

import "time"

// Parkour kinematics, expressed in terminal cells per reference frame
// All per-frame values are normalized by elapsed time against RefFrameRate
const (
	// RefFrameRate is the reference frame rate the per-frame constants assume
	RefFrameRate = 60.0

	// Gravity is downward acceleration in cells per frame squared
	Gravity = 0.08

	// JumpVelocity is the instant vertical velocity on jump (negative = up)
	JumpVelocity = -0.95

	// MoveSpeed is the fixed horizontal speed in cells per frame
	MoveSpeed = 0.6

	// MaxTickDelta caps elapsed time per physics tick so a stalled frame
	// cannot teleport the body across the course
	MaxTickDelta = 50 * time.Millisecond
)
