package scavenge

import (
	"math"

	"github.com/dkrajewski/tui-scavenger/internal/config"
	"github.com/dkrajewski/tui-scavenger/internal/core"
)

// rotationSpeedFloor is the |speed| below which a vehicle cannot turn,
// so a stationary vehicle can't spin in place.
const rotationSpeedFloor = 1.0

// Vehicle is an independent kinematic body a player can possess. Speed is a
// signed scalar along the heading (negative = reverse) and always satisfies
// |Speed| <= MaxSpeed.
type Vehicle struct {
	Pos core.Vec2
	Box core.Rect

	Speed         float64 // current signed speed
	Angle         float64 // heading in degrees
	MaxSpeed      float64
	Acceleration  float64
	RotationSpeed float64
	Friction      float64

	HP     int
	Hiding bool // occupant is invisible while inside
	Tier   string
}

// NewVehicle creates a vehicle of the given tier at (x, y).
func NewVehicle(x, y float64, tier config.VehicleTier, friction float64) *Vehicle {
	v := &Vehicle{
		Pos:           core.Vec2{X: x, Y: y},
		Box:           core.NewRect(0, 0, tier.HitboxW, tier.HitboxH),
		MaxSpeed:      tier.MaxSpeed,
		Acceleration:  tier.Acceleration,
		RotationSpeed: tier.RotationSpeed,
		Friction:      friction,
		HP:            tier.Health,
		Hiding:        tier.Hiding,
		Tier:          tier.Name,
	}
	v.syncBox()
	return v
}

// Drive advances the vehicle one step: throttle/friction, then polar
// integration and steering, then boundary clamping.
func (v *Vehicle) Drive(dx, dy int, dt float64, bounds core.Rect) {
	v.accelerate(dy, dt)
	v.integrate(dx, dt)
	v.clampToBounds(bounds)
}

// accelerate applies throttle toward the per-sign speed cap, or friction
// decay toward zero when there is no vertical input. Decay clamps at the
// zero crossing; it never pushes the speed into the opposite sign.
func (v *Vehicle) accelerate(dy int, dt float64) {
	push := -dy // up key means forward

	switch {
	case push > 0:
		if v.Speed < v.MaxSpeed {
			v.Speed += v.Acceleration * dt
			if v.Speed > v.MaxSpeed {
				v.Speed = v.MaxSpeed
			}
		}
	case push < 0:
		if v.Speed > -v.MaxSpeed {
			v.Speed -= v.Acceleration * dt
			if v.Speed < -v.MaxSpeed {
				v.Speed = -v.MaxSpeed
			}
		}
	default:
		if v.Speed > 0 {
			v.Speed -= v.Friction * dt
			if v.Speed < 0 {
				v.Speed = 0
			}
		} else if v.Speed < 0 {
			v.Speed += v.Friction * dt
			if v.Speed > 0 {
				v.Speed = 0
			}
		}
	}
}

// integrate moves the vehicle along its heading and applies steering.
// Steering only engages above the speed floor.
func (v *Vehicle) integrate(dx int, dt float64) {
	rad := v.Angle * math.Pi / 180
	v.Pos.X += v.Speed * math.Cos(rad) * dt
	v.Pos.Y += v.Speed * math.Sin(rad) * dt
	v.syncBox()

	if math.Abs(v.Speed) > rotationSpeedFloor {
		v.Angle += float64(dx) * v.RotationSpeed * dt
	}
}

func (v *Vehicle) syncBox() {
	v.Box.X = int(math.Floor(v.Pos.X))
	v.Box.Y = int(math.Floor(v.Pos.Y))
}

// clampToBounds clamps the box to the map and resyncs the float position,
// like actor clamping, but hitting any edge also kills momentum entirely.
func (v *Vehicle) clampToBounds(bounds core.Rect) {
	clamped := false

	if v.Box.X < bounds.X {
		v.Box.X = bounds.X
		v.Pos.X = float64(v.Box.X)
		clamped = true
	} else if v.Box.Right() > bounds.Right() {
		v.Box.X = bounds.Right() - v.Box.W
		v.Pos.X = float64(v.Box.X)
		clamped = true
	}

	if v.Box.Y < bounds.Y {
		v.Box.Y = bounds.Y
		v.Pos.Y = float64(v.Box.Y)
		clamped = true
	} else if v.Box.Bottom() > bounds.Bottom() {
		v.Box.Y = bounds.Bottom() - v.Box.H
		v.Pos.Y = float64(v.Box.Y)
		clamped = true
	}

	if clamped {
		v.Speed = 0
	}
}

// VehicleHandle refers to a vehicle by slot index plus generation. A stale
// generation (the slot was recycled) resolves to nothing instead of
// dangling.
type VehicleHandle struct {
	Index int
	Gen   int
}

// NoVehicle is the null handle.
var NoVehicle = VehicleHandle{Index: -1}

// Valid reports whether the handle refers to any slot at all. Whether the
// slot is still live is the cars manager's call.
func (h VehicleHandle) Valid() bool {
	return h.Index >= 0
}

// CarsManager owns all spawned vehicles.
type CarsManager struct {
	cfg    *config.Config
	bounds core.Rect

	Cars []*Vehicle
	gens []int
}

// NewCarsManager creates an empty vehicle manager.
func NewCarsManager(cfg *config.Config, bounds core.Rect) *CarsManager {
	return &CarsManager{cfg: cfg, bounds: bounds}
}

// Spawn tops the vehicle population up to the configured amount. Vehicles
// take deterministic offset-incremented slots from the configured anchor,
// cycling through the tier catalog.
func (m *CarsManager) Spawn() {
	vc := m.cfg.Vehicles
	if len(vc.Tiers) == 0 {
		return
	}
	for i := len(m.Cars); i < vc.Amount; i++ {
		tier := vc.Tiers[i%len(vc.Tiers)]
		x := float64(vc.FirstX + i*(tier.HitboxW+100))
		y := float64(vc.FirstY)
		m.Cars = append(m.Cars, NewVehicle(x, y, tier, vc.Friction))
		m.gens = append(m.gens, 0)
	}
}

// Handle returns the handle for the vehicle at slot i.
func (m *CarsManager) Handle(i int) VehicleHandle {
	return VehicleHandle{Index: i, Gen: m.gens[i]}
}

// Get resolves a handle. Returns false for the null handle, out-of-range
// indices and stale generations.
func (m *CarsManager) Get(h VehicleHandle) (*Vehicle, bool) {
	if !h.Valid() || h.Index >= len(m.Cars) {
		return nil, false
	}
	if m.gens[h.Index] != h.Gen {
		return nil, false
	}
	return m.Cars[h.Index], true
}

// Remove destroys the vehicle at slot i and bumps the slot generation so
// outstanding handles go stale. Callers must drop possession through Get
// before touching the vehicle again.
func (m *CarsManager) Remove(i int) {
	if i < 0 || i >= len(m.Cars) {
		return
	}
	m.Cars[i] = nil
	m.gens[i]++
}

// Reset clears and fully respawns the fleet.
func (m *CarsManager) Reset() {
	m.Cars = m.Cars[:0]
	m.gens = m.gens[:0]
	m.Spawn()
}
