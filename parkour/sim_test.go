package parkour

import (
	"testing"
	"time"

	"github.com/hexworth/blockfolio/input"
	"github.com/hexworth/blockfolio/parameter"
)

// tickDT normalizes to exactly one reference frame per step
const tickDT = time.Second / 60

// flatLevel is a single long runway, handy for deterministic traversal
func flatLevel() Level {
	return Level{
		Platforms: []Platform{{X: 0, Y: 20, W: 70, H: 2}},
		SpawnX:    2,
		SpawnY:    16,
		Width:     78,
		Height:    26,
		WinX:      40,
	}
}

// settle runs ticks with no input until the body lands
func settle(t *testing.T, s *Sim) {
	t.Helper()
	for i := 0; i < 50; i++ {
		s.Step(tickDT, input.Snapshot{})
		if s.Body().OnGround {
			return
		}
	}
	t.Fatal("body never landed")
}

// TestRestStateIdempotent verifies a grounded body with no input keeps its
// exact position and OnGround across ticks
func TestRestStateIdempotent(t *testing.T) {
	s := NewSim(flatLevel())
	settle(t, s)

	rest := s.Body()
	for i := 0; i < 20; i++ {
		s.Step(tickDT, input.Snapshot{})
		b := s.Body()
		if !b.OnGround {
			t.Fatalf("tick %d: body left the ground at rest", i)
		}
		if b.X != rest.X || b.Y != rest.Y {
			t.Fatalf("tick %d: rest position drifted: (%v,%v) -> (%v,%v)",
				i, rest.X, rest.Y, b.X, b.Y)
		}
	}
}

// TestJumpEdgeTrigger verifies a jump while grounded clears OnGround within
// one tick and yields immediate upward velocity
func TestJumpEdgeTrigger(t *testing.T) {
	s := NewSim(flatLevel())
	settle(t, s)

	out := s.Step(tickDT, input.Snapshot{Jump: true})
	b := s.Body()

	if !out.Jumped {
		t.Error("jump outcome not reported")
	}
	if b.OnGround {
		t.Error("body still grounded after jump tick")
	}
	if b.VelY >= 0 {
		t.Errorf("expected upward (negative) velocity, got %v", b.VelY)
	}

	// Airborne jump intent is ignored
	out = s.Step(tickDT, input.Snapshot{Jump: true})
	if out.Jumped {
		t.Error("jump triggered while airborne")
	}
}

// TestLandingSnapsToSurface verifies a jump arc ends back on the platform
// top with zero vertical velocity
func TestLandingSnapsToSurface(t *testing.T) {
	level := flatLevel()
	s := NewSim(level)
	settle(t, s)
	rest := s.Body()

	s.Step(tickDT, input.Snapshot{Jump: true})

	landed := false
	for i := 0; i < 200; i++ {
		out := s.Step(tickDT, input.Snapshot{})
		if out.Landed {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("body never landed after jump")
	}

	b := s.Body()
	if b.Y != rest.Y || b.VelY != 0 || !b.OnGround {
		t.Errorf("bad landing state: %+v, want Y=%v", b, rest.Y)
	}
}

// TestNearestSurfaceWins verifies overlapping platforms resolve by vertical
// proximity, not declaration order
func TestNearestSurfaceWins(t *testing.T) {
	level := Level{
		Platforms: []Platform{
			// Lower surface declared first; order must not win
			{X: 0, Y: 21.0, W: 30, H: 2},
			// Higher surface, reached first on the way down, declared last
			{X: 0, Y: 20.8, W: 30, H: 2},
		},
		SpawnX: 2,
		SpawnY: 16,
		Width:  40,
		Height: 30,
		WinX:   38,
	}
	s := NewSim(level)

	// One tick carried the bottom edge from 20.5 to 23.5, across both tops
	s.body = Body{X: 2, Y: 21.5, VelY: 3.0, W: 2, H: 2}
	s.resolveCollisions(20.5)

	b := s.Body()
	if want := 20.8 - b.H; b.Y != want {
		t.Errorf("expected snap to nearest surface (Y=%v), got Y=%v", want, b.Y)
	}
	if !b.OnGround || b.VelY != 0 {
		t.Errorf("bad collision state: %+v", b)
	}
}

// TestFastFallLandsAtGameTickRate verifies a long drop at the real tick
// cadence lands instead of slipping past the surface between two
// integration steps
func TestFastFallLandsAtGameTickRate(t *testing.T) {
	level := Level{
		Platforms: []Platform{{X: 0, Y: 20, W: 70, H: 2}},
		SpawnX:    2,
		SpawnY:    2, // Long drop: terminal displacement well over one cell per tick
		Width:     78,
		Height:    26,
		WinX:      70,
	}
	s := NewSim(level)

	for i := 0; i < 60; i++ {
		out := s.Step(parameter.TickInterval, input.Snapshot{})
		if out.Fell {
			t.Fatalf("tick %d: body fell through a solid platform", i)
		}
		if s.Body().OnGround {
			break
		}
	}

	b := s.Body()
	if !b.OnGround {
		t.Fatal("body never landed from a long drop")
	}
	if want := 20.0 - b.H; b.Y != want {
		t.Errorf("expected snap to surface (Y=%v), got Y=%v", want, b.Y)
	}
}

// TestFallResetOnce verifies falling past the arena bottom resets the body
// to spawn with zero velocity and reports the fall exactly once
func TestFallResetOnce(t *testing.T) {
	level := Level{
		Platforms: []Platform{{X: 0, Y: 20, W: 10, H: 2}},
		SpawnX:    2,
		SpawnY:    16,
		Width:     78,
		Height:    26,
		WinX:      70,
	}
	s := NewSim(level)
	settle(t, s)

	// Walk right off the 10-cell ledge and fall
	falls := 0
	for i := 0; i < 400; i++ {
		out := s.Step(tickDT, input.Snapshot{Right: true})
		if out.Fell {
			falls++
			b := s.Body()
			if b.X != level.SpawnX || b.Y != level.SpawnY {
				t.Fatalf("body not reset to spawn: %+v", b)
			}
			if b.VelX != 0 || b.VelY != 0 {
				t.Fatalf("velocity not zeroed on reset: %+v", b)
			}
			break
		}
	}
	if falls != 1 {
		t.Fatalf("expected exactly one fall, got %d", falls)
	}
}

// TestHorizontalClamp verifies the body cannot leave the arena bounds
func TestHorizontalClamp(t *testing.T) {
	s := NewSim(flatLevel())
	settle(t, s)

	for i := 0; i < 100; i++ {
		s.Step(tickDT, input.Snapshot{Left: true})
	}
	if b := s.Body(); b.X != 0 {
		t.Errorf("expected clamp at left bound, got X=%v", b.X)
	}
}

// TestDeltaClampPreventsTunneling verifies a huge frame gap cannot carry
// the body through a platform surface
func TestDeltaClampPreventsTunneling(t *testing.T) {
	s := NewSim(flatLevel())
	settle(t, s)

	// A two-second stall should behave like one clamped tick, not launch
	// the body through the floor
	for i := 0; i < 20; i++ {
		s.Step(2*time.Second, input.Snapshot{})
	}
	if b := s.Body(); !b.OnGround {
		t.Errorf("body tunneled through platform after long frame gap: %+v", b)
	}
}

// TestWinStopsSim verifies crossing the threshold finishes the sim and
// makes further steps no-ops
func TestWinStopsSim(t *testing.T) {
	s := NewSim(flatLevel())
	settle(t, s)

	wins := 0
	for i := 0; i < 2000 && !s.Done(); i++ {
		out := s.Step(tickDT, input.Snapshot{Right: true})
		if out.Won {
			wins++
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one win, got %d", wins)
	}

	final := s.Body()
	out := s.Step(tickDT, input.Snapshot{Right: true})
	if out != (Outcome{}) {
		t.Errorf("finished sim produced outcome %+v", out)
	}
	if got := s.Body(); got != final {
		t.Errorf("finished sim mutated body: %+v -> %+v", final, got)
	}
}
