package game

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestClampDelta(t *testing.T) {
	if got := ClampDelta(1.0 / 60); got != 1.0/60 {
		t.Fatalf("nominal delta altered to %f", got)
	}
	if got := ClampDelta(10); got != MaxDeltaTime {
		t.Fatalf("stalled delta clamped to %f, want %f", got, MaxDeltaTime)
	}
	if got := ClampDelta(0); got != MinDeltaTime {
		t.Fatalf("zero delta clamped to %f, want %f", got, MinDeltaTime)
	}
	if got := ClampDelta(-1); got != MinDeltaTime {
		t.Fatalf("negative delta clamped to %f, want %f", got, MinDeltaTime)
	}
	if got := ClampDelta(math32.NaN()); got != MinDeltaTime {
		t.Fatalf("NaN delta clamped to %f, want %f", got, MinDeltaTime)
	}
}

func TestClampFloat(t *testing.T) {
	if got := ClampFloat(5, 0, 1); got != 1 {
		t.Fatalf("clamp above = %f", got)
	}
	if got := ClampFloat(-5, 0, 1); got != 0 {
		t.Fatalf("clamp below = %f", got)
	}
	if got := ClampFloat(0.5, 0, 1); got != 0.5 {
		t.Fatalf("clamp inside = %f", got)
	}
}

func TestNormalizeInput(t *testing.T) {
	// Overlong diagonals shrink to the unit circle.
	n := NormalizeInput(mgl32.Vec2{1, 1})
	if d := math32.Abs(n.Len() - 1); d > 1e-5 {
		t.Fatalf("diagonal input normalised to length %f", n.Len())
	}
	// Analog magnitudes inside the unit disc pass through.
	soft := NormalizeInput(mgl32.Vec2{0.3, 0})
	if soft != (mgl32.Vec2{0.3, 0}) {
		t.Fatalf("partial input altered to %v", soft)
	}
	if z := NormalizeInput(mgl32.Vec2{}); z != (mgl32.Vec2{}) {
		t.Fatalf("zero input altered to %v", z)
	}
}

func TestRound32(t *testing.T) {
	if got := Round32(1.23456, 2); !Float32ApproxEq(got, 1.23) {
		t.Fatalf("Round32 = %f, want 1.23", got)
	}
}

func TestVec3HzDistSqr(t *testing.T) {
	if got := Vec3HzDistSqr(mgl32.Vec3{3, 100, 4}); got != 25 {
		t.Fatalf("horizontal distance squared = %f, want 25", got)
	}
}
