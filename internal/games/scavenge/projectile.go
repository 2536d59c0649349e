package scavenge

import (
	"math"

	"github.com/dkrajewski/tui-scavenger/internal/config"
	"github.com/dkrajewski/tui-scavenger/internal/core"
)

// projectileSize is the square hitbox side of every projectile.
const projectileSize = 4

// Projectile is a live shot in flight. It carries the stats of the weapon
// that fired it and dies when its travelled distance exceeds the weapon's
// range or it connects with a target, whichever comes first.
type Projectile struct {
	Pos core.Vec2
	Box core.Rect

	Dir       core.Vec2 // unit direction
	Speed     float64
	Damage    int
	MaxRange  float64
	Blast     float64 // splash radius on impact, 0 for direct-hit weapons
	Travelled float64
}

// NewProjectile spawns a projectile at origin heading along dir. Speed is
// picked from the projectile config by the firing weapon's category.
func NewProjectile(origin core.Vec2, dir core.Vec2, weapon *Item, pc config.ProjectileConfig) *Projectile {
	p := &Projectile{
		Pos:      origin,
		Box:      core.NewRect(0, 0, projectileSize, projectileSize),
		Dir:      dir,
		Speed:    speedFor(weapon.Category, pc),
		Damage:   weapon.Damage,
		MaxRange: weapon.Range,
		Blast:    weapon.ExplosionRadius,
	}
	p.syncBox()
	return p
}

func speedFor(c ItemCategory, pc config.ProjectileConfig) float64 {
	switch c {
	case CategoryThrowable:
		return pc.GrenadeSpeed
	case CategorySpecial:
		return pc.SpecialSpeed
	default:
		return pc.BulletSpeed
	}
}

// Move integrates one step of flight and accumulates travelled distance.
func (p *Projectile) Move(dt float64) {
	step := p.Speed * dt
	p.Pos.X += p.Dir.X * step
	p.Pos.Y += p.Dir.Y * step
	p.Travelled += step
	p.syncBox()
}

// Expired reports whether the projectile has exceeded its weapon's range.
// The comparison is strict: a shot exactly at max range is still live.
func (p *Projectile) Expired() bool {
	return p.Travelled > p.MaxRange
}

func (p *Projectile) syncBox() {
	p.Box.X = int(math.Floor(p.Pos.X))
	p.Box.Y = int(math.Floor(p.Pos.Y))
}

// ProjectileManager owns all projectiles in flight, capped at the
// configured limit.
type ProjectileManager struct {
	limit int

	Shots []*Projectile
}

// NewProjectileManager creates an empty projectile manager.
func NewProjectileManager(limit int) *ProjectileManager {
	return &ProjectileManager{limit: limit}
}

// Add registers a projectile. Returns false when the pool is at its limit;
// the shot is simply lost (the weapon cooldown was already consumed).
func (m *ProjectileManager) Add(p *Projectile) bool {
	if len(m.Shots) >= m.limit {
		return false
	}
	m.Shots = append(m.Shots, p)
	return true
}

// Reset discards all projectiles in flight.
func (m *ProjectileManager) Reset() {
	m.Shots = m.Shots[:0]
}
