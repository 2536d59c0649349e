package scavenge

import (
	"math"
	"testing"

	"github.com/dkrajewski/tui-scavenger/internal/config"
)

func newTestVehicle(tier int) *Vehicle {
	cfg := config.Default()
	vc := cfg.Vehicles
	return NewVehicle(2000, 2000, vc.Tiers[tier], vc.Friction)
}

func TestVehicleAccelerationCapsAtMaxSpeed(t *testing.T) {
	v := newTestVehicle(0) // small: accel 900, max 900

	for i := 0; i < 120; i++ {
		v.Drive(0, -1, 1.0/60, testBounds())
	}
	if v.Speed != v.MaxSpeed {
		t.Errorf("speed = %v, want capped at %v", v.Speed, v.MaxSpeed)
	}

	// Recenter away from the walls so the cap, not boundary clamping,
	// bounds the reverse run.
	v.Pos.X = 5000
	for i := 0; i < 180; i++ {
		v.Drive(0, 1, 1.0/60, testBounds())
	}
	if v.Speed != -v.MaxSpeed {
		t.Errorf("reverse speed = %v, want capped at %v", v.Speed, -v.MaxSpeed)
	}
}

func TestVehicleFrictionStopsAtZero(t *testing.T) {
	v := newTestVehicle(0)
	v.Speed = 100

	// Friction 300/s: a bit over 20 coasting frames kills the momentum.
	for i := 0; i < 60; i++ {
		v.Drive(0, 0, 1.0/60, testBounds())
	}
	if v.Speed != 0 {
		t.Errorf("speed after coasting = %v, want exactly 0", v.Speed)
	}

	v.Speed = -100
	for i := 0; i < 60; i++ {
		v.Drive(0, 0, 1.0/60, testBounds())
	}
	if v.Speed != 0 {
		t.Errorf("reverse speed after coasting = %v, want exactly 0", v.Speed)
	}
}

func TestVehicleSteeringNeedsMomentum(t *testing.T) {
	v := newTestVehicle(0)

	v.Drive(1, 0, 1.0/60, testBounds())
	if v.Angle != 0 {
		t.Errorf("stationary vehicle turned to %v", v.Angle)
	}

	v.Speed = 100
	v.Drive(1, 0, 1.0/60, testBounds())
	if v.Angle <= 0 {
		t.Errorf("moving vehicle should steer, angle = %v", v.Angle)
	}
}

func TestVehicleMovesAlongHeading(t *testing.T) {
	v := newTestVehicle(0)
	v.Angle = 90 // straight down
	v.Speed = 60
	start := v.Pos

	v.Drive(0, 0, 1.0/60, testBounds())

	if math.Abs(v.Pos.X-start.X) > 1e-6 {
		t.Errorf("heading 90 should not move X, moved %v", v.Pos.X-start.X)
	}
	if v.Pos.Y <= start.Y {
		t.Errorf("heading 90 should move down, Y went %v -> %v", start.Y, v.Pos.Y)
	}
}

func TestVehicleBoundaryKillsMomentum(t *testing.T) {
	v := newTestVehicle(0)
	v.Pos.X = 10
	v.Angle = 180 // toward the left wall
	v.Speed = v.MaxSpeed

	for i := 0; i < 10; i++ {
		v.Drive(0, 0, 1.0/60, testBounds())
	}

	if v.Box.X != 0 {
		t.Errorf("box X = %d, want clamped to 0", v.Box.X)
	}
	if v.Speed != 0 {
		t.Errorf("speed = %v, want 0 after hitting the wall", v.Speed)
	}
}

func TestCarsManagerSpawnDeterministic(t *testing.T) {
	cfg := defaultCfg()
	m := NewCarsManager(cfg, testBounds())
	m.Spawn()

	if len(m.Cars) != cfg.Vehicles.Amount {
		t.Fatalf("fleet size = %d, want %d", len(m.Cars), cfg.Vehicles.Amount)
	}
	for i, car := range m.Cars {
		want := cfg.Vehicles.Tiers[i%len(cfg.Vehicles.Tiers)].Name
		if car.Tier != want {
			t.Errorf("car %d tier = %s, want %s", i, car.Tier, want)
		}
	}
	if m.Cars[0].Pos == m.Cars[1].Pos {
		t.Error("cars should spawn at distinct positions")
	}

	// Spawning again on a full fleet is a no-op.
	m.Spawn()
	if len(m.Cars) != cfg.Vehicles.Amount {
		t.Errorf("fleet grew past the configured amount: %d", len(m.Cars))
	}
}

func TestVehicleHandleGoesStaleOnRemove(t *testing.T) {
	cfg := defaultCfg()
	m := NewCarsManager(cfg, testBounds())
	m.Spawn()

	h := m.Handle(1)
	if _, ok := m.Get(h); !ok {
		t.Fatal("fresh handle should resolve")
	}

	m.Remove(1)
	if _, ok := m.Get(h); ok {
		t.Error("handle should go stale after removal")
	}
	if _, ok := m.Get(NoVehicle); ok {
		t.Error("the null handle must never resolve")
	}
}
