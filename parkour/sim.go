package parkour

import (
	"time"

	"github.com/hexworth/blockfolio/input"
	"github.com/hexworth/blockfolio/parameter"
)

// Outcome reports what a single simulation tick produced
type Outcome struct {
	Jumped bool // Jump initiated this tick
	Landed bool // Transitioned from airborne to grounded
	Fell   bool // Fell through the arena bottom and was reset to spawn
	Won    bool // Crossed the win threshold; the sim is finished
}

// Sim is the parkour kinematic simulation
// Fully decoupled from rendering and wall-clock scheduling: callers drive
// it by calling Step with explicit elapsed time, which makes it
// deterministic under test
type Sim struct {
	level Level
	body  Body
	done  bool
}

// NewSim creates a simulation with the body at the level spawn point
func NewSim(level Level) *Sim {
	return &Sim{
		level: level,
		body:  level.SpawnBody(),
	}
}

// Body returns a copy of the current body state
func (s *Sim) Body() Body {
	return s.body
}

// Level returns the level being simulated
func (s *Sim) Level() Level {
	return s.level
}

// Done reports whether the course has been completed
func (s *Sim) Done() bool {
	return s.done
}

// Step advances the simulation by one tick
// Elapsed time is clamped to MaxTickDelta before being normalized against
// the reference frame rate, so a stalled frame cannot teleport the body
// across the course. Steps after completion are no-ops
func (s *Sim) Step(dt time.Duration, in input.Snapshot) Outcome {
	var out Outcome
	if s.done {
		return out
	}

	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}
	scale := dt.Seconds() * parameter.RefFrameRate

	b := &s.body

	// Horizontal intent maps directly to velocity, no acceleration model
	switch {
	case in.Left:
		b.VelX = -parameter.MoveSpeed
	case in.Right:
		b.VelX = parameter.MoveSpeed
	default:
		b.VelX = 0
	}

	// Gravity, then jump; the jump consults OnGround from the previous
	// tick's collision pass (edge-triggered input)
	b.VelY += parameter.Gravity * scale
	if in.Jump && b.OnGround {
		b.VelY = parameter.JumpVelocity
		b.OnGround = false
		out.Jumped = true
	}

	prevBottom := b.Bottom()
	b.X += b.VelX * scale
	b.Y += b.VelY * scale

	wasAirborne := !b.OnGround
	s.resolveCollisions(prevBottom)
	if b.OnGround && wasAirborne && !out.Jumped {
		out.Landed = true
	}

	// Clamp horizontal position to arena bounds
	if b.X < 0 {
		b.X = 0
	}
	if b.Right() > s.level.Width {
		b.X = s.level.Width - b.W
	}

	// Fall-through: reset to spawn, reported exactly once per fall
	if b.Y > s.level.Height {
		s.body = s.level.SpawnBody()
		out.Fell = true
		return out
	}

	// Win threshold near the right bound terminates the simulation
	if b.X >= s.level.WinX {
		s.done = true
		out.Won = true
	}

	return out
}

// resolveCollisions lands the body on the nearest platform surface its
// bottom edge crossed while descending this tick
//
// A platform registers when the body horizontally overlaps it and its top
// lies between the bottom edge's position before and after integration;
// among registering platforms the highest surface wins, the one the body
// reached first on the way down. This is an explicit tie-break by vertical
// proximity rather than platform declaration order. Testing the crossing
// instead of end-of-tick proximity means a fast fall cannot step over a
// surface in a single integration step
func (s *Sim) resolveCollisions(prevBottom float64) {
	b := &s.body
	b.OnGround = false

	if b.VelY < 0 {
		return // Ascending bodies pass through surfaces
	}

	bottom := b.Bottom()
	bestTop := 0.0
	found := false
	for _, p := range s.level.Platforms {
		if b.Right() <= p.X || b.X >= p.Right() {
			continue
		}
		if prevBottom > p.Y || bottom < p.Y {
			continue
		}
		if !found || p.Y < bestTop {
			bestTop = p.Y
			found = true
		}
	}

	if found {
		b.Y = bestTop - b.H
		b.VelY = 0
		b.OnGround = true
	}
}
