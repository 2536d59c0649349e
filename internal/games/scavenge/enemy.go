package scavenge

import (
	"math"
	"math/rand"
	"time"

	"github.com/dkrajewski/tui-scavenger/internal/config"
	"github.com/dkrajewski/tui-scavenger/internal/core"
)

// EnemyState is the AI mode an enemy is in on a given frame.
type EnemyState int

const (
	EnemyWandering EnemyState = iota
	EnemyChasing
	EnemyDead
)

func (s EnemyState) String() string {
	switch s {
	case EnemyWandering:
		return "wandering"
	case EnemyChasing:
		return "chasing"
	case EnemyDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Enemy is an AI-driven hostile actor. Dir is the unit movement vector the
// last Think decided on; wandering keeps it between decisions, chasing
// re-aims it every frame.
type Enemy struct {
	Actor

	State     EnemyState
	Dir       core.Vec2
	Sprinting bool

	Damage      int
	ChaseRadius float64
	Points      int

	DecisionInterval time.Duration
	AttackInterval   time.Duration
	FadeTime         time.Duration

	LastDecision time.Duration
	LastAttack   time.Duration
	DiedAt       time.Duration
}

// NewEnemy creates a live wandering enemy at (x, y).
func NewEnemy(x, y float64, cfg *config.Config) *Enemy {
	ec := cfg.Enemy
	return &Enemy{
		Actor:            newActor(x, y, cfg.Person, cfg.Items.Capacity),
		State:            EnemyWandering,
		Damage:           ec.Damage,
		ChaseRadius:      ec.ChaseRadius,
		Points:           ec.PointsGiven,
		DecisionInterval: time.Duration(ec.DecisionInterval) * time.Millisecond,
		AttackInterval:   time.Duration(ec.AttackInterval) * time.Millisecond,
		FadeTime:         time.Duration(ec.FadeTime) * time.Millisecond,
		LastDecision:     -time.Hour,
		LastAttack:       -time.Hour,
	}
}

// Dead reports whether the enemy has been killed.
func (e *Enemy) Dead() bool {
	return e.State == EnemyDead
}

// FadeExpired reports whether a dead enemy's corpse has finished fading
// at sim time now.
func (e *Enemy) FadeExpired(now time.Duration) bool {
	return e.Dead() && now-e.DiedAt > e.FadeTime
}

// Kill transitions the enemy to the dead state and starts the corpse fade.
// Killing a dead enemy is a no-op.
func (e *Enemy) Kill(now time.Duration) {
	if e.Dead() {
		return
	}
	e.HP = 0
	e.State = EnemyDead
	e.Dir = core.Vec2{}
	e.Sprinting = false
	e.DiedAt = now
}

// Think picks this frame's movement intent. Within chase radius of a
// visible target the enemy locks a fresh unit vector at it every frame and
// sprints; otherwise it wanders, rerolling a random heading only when the
// decision interval has elapsed. A hidden target (player inside a covered
// vehicle) is treated as absent.
func (e *Enemy) Think(target core.Vec2, targetVisible bool, now time.Duration, rng *rand.Rand) {
	if e.Dead() {
		return
	}

	self := e.Box.CenterVec()
	if targetVisible && self.Dist(target) <= e.ChaseRadius {
		e.State = EnemyChasing
		e.Dir = target.Sub(self).Normalize()
		e.Sprinting = true
		return
	}

	e.Sprinting = false
	if e.State != EnemyWandering || now-e.LastDecision > e.DecisionInterval {
		angle := rng.Float64() * 2 * math.Pi
		e.Dir = core.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
		e.LastDecision = now
	}
	e.State = EnemyWandering
}

// Update integrates the decided movement. Dead enemies don't move.
func (e *Enemy) Update(dt float64, bounds core.Rect) {
	if e.Dead() {
		return
	}
	e.Move(e.Dir, e.Sprinting, dt, bounds)
}

// TryAttack applies contact damage to the player if the attack cooldown
// has elapsed. Returns true when a hit landed.
func (e *Enemy) TryAttack(p *Player, now time.Duration) bool {
	if e.Dead() || !e.Box.Intersects(p.Box) {
		return false
	}
	if now-e.LastAttack <= e.AttackInterval {
		return false
	}
	e.LastAttack = now
	p.HP -= e.Damage
	return true
}

// EnemyManager owns the enemy population.
type EnemyManager struct {
	cfg    *config.Config
	bounds core.Rect
	rng    *rand.Rand

	Enemies []*Enemy
}

// NewEnemyManager creates an empty enemy manager.
func NewEnemyManager(cfg *config.Config, bounds core.Rect, rng *rand.Rand) *EnemyManager {
	return &EnemyManager{cfg: cfg, bounds: bounds, rng: rng}
}

// Spawn tops the population up to the configured limit. Fresh enemies get
// a random position and one loot roll into slot 0, so most of them carry
// a droppable weapon.
func (m *EnemyManager) Spawn() {
	for i := len(m.Enemies); i < m.cfg.Enemy.Limit; i++ {
		pos := m.randomPos()
		e := NewEnemy(pos.X, pos.Y, m.cfg)
		if item := rollLoot(m.rng, m.cfg); item != nil {
			e.Inventory.Add(item)
		}
		m.Enemies = append(m.Enemies, e)
	}
}

// ReapFaded compacts out corpses whose fade has expired. Live enemies and
// still-fading corpses are kept; the population deficit is backfilled by
// the next Spawn.
func (m *EnemyManager) ReapFaded(now time.Duration) {
	kept := m.Enemies[:0]
	for _, e := range m.Enemies {
		if !e.FadeExpired(now) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(m.Enemies); i++ {
		m.Enemies[i] = nil
	}
	m.Enemies = kept
}

// Reset clears and fully respawns the population.
func (m *EnemyManager) Reset() {
	m.Enemies = m.Enemies[:0]
	m.Spawn()
}

func (m *EnemyManager) randomPos() core.Vec2 {
	w := m.cfg.Person.HitboxW
	h := m.cfg.Person.HitboxH
	x := float64(m.bounds.X) + m.rng.Float64()*float64(m.bounds.W-w)
	y := float64(m.bounds.Y) + m.rng.Float64()*float64(m.bounds.H-h)
	return core.Vec2{X: x, Y: y}
}
