package scavenge

import (
	"math"

	"github.com/dkrajewski/tui-scavenger/internal/config"
	"github.com/dkrajewski/tui-scavenger/internal/core"
)

// diagonalFactor keeps diagonal keyboard movement at the same magnitude as
// axis-aligned movement (1/sqrt(2)).
const diagonalFactor = 0.7071

// Actor is the shared kinematic/health/inventory core for the player and
// enemies. Pos is the authoritative sub-unit position; Box is a derived
// collision cache whose origin is always floor(Pos), resynced on every
// mutation.
type Actor struct {
	Pos core.Vec2
	Box core.Rect

	HP          int
	MaxHP       int
	Speed       float64
	SprintBonus float64
	Inventory   *Inventory
	Visible     bool
}

func newActor(x, y float64, person config.PersonConfig, capacity int) Actor {
	a := Actor{
		Pos:         core.Vec2{X: x, Y: y},
		Box:         core.NewRect(0, 0, person.HitboxW, person.HitboxH),
		HP:          person.HP,
		MaxHP:       person.HP,
		Speed:       person.Speed,
		SprintBonus: person.SprintBonus,
		Inventory:   NewInventory(capacity),
		Visible:     true,
	}
	a.SyncBox()
	return a
}

// Alive reports whether the actor still has health.
func (a *Actor) Alive() bool {
	return a.HP > 0
}

// SyncBox snaps the collision box origin to floor(Pos).
func (a *Actor) SyncBox() {
	a.Box.X = int(math.Floor(a.Pos.X))
	a.Box.Y = int(math.Floor(a.Pos.Y))
}

// Move integrates one movement step. dir is either a keyboard intent pair
// with components in {-1, 0, 1} or a precomputed unit vector (enemy AI);
// keyboard diagonals are scaled back so they don't outrun axis movement.
// A zero direction is a legal no-op: speed is computed, displacement is
// zero, and the box is still resynced and clamped.
func (a *Actor) Move(dir core.Vec2, sprint bool, dt float64, bounds core.Rect) {
	speed := a.Speed
	if sprint {
		speed += a.SprintBonus
	}
	if dir.X != 0 && dir.Y != 0 && dir.Len() > 1 {
		speed *= diagonalFactor
	}

	a.Pos.X += dir.X * speed * dt
	a.Pos.Y += dir.Y * speed * dt
	a.SyncBox()
	a.clampToBounds(bounds)
}

// SetCenter repositions the actor so its box is centered on c. Used to keep
// a driver glued to their vehicle.
func (a *Actor) SetCenter(c core.Vec2) {
	a.Pos.X = c.X - float64(a.Box.W)/2
	a.Pos.Y = c.Y - float64(a.Box.H)/2
	a.SyncBox()
}

// clampToBounds clamps the box to the map on all four sides independently.
// Whenever a clamp fires the float position is resynchronized from the
// clamped box coordinate, so drift can't accumulate outside the map.
func (a *Actor) clampToBounds(bounds core.Rect) {
	if a.Box.X < bounds.X {
		a.Box.X = bounds.X
		a.Pos.X = float64(a.Box.X)
	} else if a.Box.Right() > bounds.Right() {
		a.Box.X = bounds.Right() - a.Box.W
		a.Pos.X = float64(a.Box.X)
	}

	if a.Box.Y < bounds.Y {
		a.Box.Y = bounds.Y
		a.Pos.Y = float64(a.Box.Y)
	} else if a.Box.Bottom() > bounds.Bottom() {
		a.Box.Y = bounds.Bottom() - a.Box.H
		a.Pos.Y = float64(a.Box.Y)
	}
}

// Player is the user-controlled actor. The vehicle reference is a handle
// into the cars manager, never a raw pointer, so removal can invalidate it.
type Player struct {
	Actor
	Vehicle VehicleHandle
}

// NewPlayer creates a player at the given position.
func NewPlayer(x, y float64, cfg *config.Config) *Player {
	return &Player{
		Actor:   newActor(x, y, cfg.Person, cfg.Items.Capacity),
		Vehicle: NoVehicle,
	}
}
