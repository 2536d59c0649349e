package scavenge

import (
	"math"
	"testing"

	"github.com/dkrajewski/tui-scavenger/internal/config"
	"github.com/dkrajewski/tui-scavenger/internal/core"
)

func testBounds() core.Rect {
	return core.NewRect(0, 0, 6000, 4000)
}

func defaultCfg() *config.Config {
	cfg := config.Default()
	return &cfg
}

func newTestActor() Actor {
	cfg := defaultCfg()
	return newActor(1000, 1000, cfg.Person, cfg.Items.Capacity)
}

func TestActorMoveAxisAligned(t *testing.T) {
	a := newTestActor()
	start := a.Pos

	a.Move(core.Vec2{X: 1}, false, 1.0, testBounds())

	if got := a.Pos.X - start.X; math.Abs(got-300) > 1e-9 {
		t.Errorf("expected displacement 300, got %v", got)
	}
	if a.Pos.Y != start.Y {
		t.Errorf("axis move should not change Y, got %v", a.Pos.Y)
	}
}

func TestActorMoveDiagonalScaled(t *testing.T) {
	a := newTestActor()
	start := a.Pos

	a.Move(core.Vec2{X: 1, Y: 1}, false, 1.0, testBounds())

	disp := a.Pos.Sub(start).Len()
	want := 300 * diagonalFactor * math.Sqrt2
	if math.Abs(disp-want) > 1e-6 {
		t.Errorf("diagonal displacement = %v, want %v", disp, want)
	}
	// A diagonal step must not travel further than an axis step.
	if disp > 300+1e-6 {
		t.Errorf("diagonal step %v outruns axis step 300", disp)
	}
}

func TestActorMoveUnitVectorFullSpeed(t *testing.T) {
	// A precomputed unit vector (AI heading) has both components nonzero
	// but length 1, so the diagonal scale-down must not apply.
	a := newTestActor()
	start := a.Pos
	dir := core.Vec2{X: 1, Y: 1}.Normalize()

	a.Move(dir, false, 1.0, testBounds())

	disp := a.Pos.Sub(start).Len()
	if math.Abs(disp-300) > 1e-6 {
		t.Errorf("unit-vector displacement = %v, want 300", disp)
	}
}

func TestActorSprint(t *testing.T) {
	a := newTestActor()
	start := a.Pos

	a.Move(core.Vec2{X: 1}, true, 1.0, testBounds())

	if got := a.Pos.X - start.X; math.Abs(got-400) > 1e-9 {
		t.Errorf("sprint displacement = %v, want 400", got)
	}
}

func TestActorClampToBounds(t *testing.T) {
	a := newTestActor()
	bounds := testBounds()

	// Run hard into the left wall.
	for i := 0; i < 300; i++ {
		a.Move(core.Vec2{X: -1}, true, 1.0/60, bounds)
	}

	if a.Box.X != bounds.X {
		t.Errorf("box X = %d, want clamped to %d", a.Box.X, bounds.X)
	}
	if a.Pos.X != float64(bounds.X) {
		t.Errorf("float pos not resynced after clamp: %v", a.Pos.X)
	}

	// Clamping is idempotent: another frame against the wall stays put.
	a.Move(core.Vec2{X: -1}, true, 1.0/60, bounds)
	if a.Box.X != bounds.X || a.Pos.X != float64(bounds.X) {
		t.Error("clamp not stable on repeated wall contact")
	}
}

func TestActorClampBottomRight(t *testing.T) {
	a := newTestActor()
	bounds := testBounds()
	a.Pos = core.Vec2{X: 1e7, Y: 1e7}
	a.SyncBox()
	a.clampToBounds(bounds)

	if a.Box.Right() != bounds.Right() {
		t.Errorf("box right = %d, want %d", a.Box.Right(), bounds.Right())
	}
	if a.Box.Bottom() != bounds.Bottom() {
		t.Errorf("box bottom = %d, want %d", a.Box.Bottom(), bounds.Bottom())
	}
}

func TestActorSetCenter(t *testing.T) {
	a := newTestActor()
	a.SetCenter(core.Vec2{X: 500, Y: 500})

	cx, cy := a.Box.Center()
	if cx != 500 || cy != 500 {
		t.Errorf("center = (%d, %d), want (500, 500)", cx, cy)
	}
}

func TestActorZeroDirIsNoOp(t *testing.T) {
	a := newTestActor()
	start := a.Pos

	a.Move(core.Vec2{}, true, 1.0, testBounds())

	if a.Pos != start {
		t.Errorf("zero direction moved actor from %v to %v", start, a.Pos)
	}
}
