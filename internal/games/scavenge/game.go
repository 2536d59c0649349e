// Package scavenge implements Scrapyard City, a top-down scavenging shooter:
// one player against a rolling population of hostile scavengers on a large
// scrolling map, with ground loot, a slot inventory and drivable vehicles.
//
// The package is pure simulation. Rendering targets the abstract screen
// buffer, input arrives as semantic action frames, and all timing runs on a
// simulation clock advanced one fixed tick per Step, so runs are fully
// deterministic for a given seed.
package scavenge

import (
	"math/rand"
	"time"

	"github.com/dkrajewski/tui-scavenger/internal/config"
	"github.com/dkrajewski/tui-scavenger/internal/core"
	"github.com/dkrajewski/tui-scavenger/internal/registry"
)

func init() {
	registry.Register("scavenge", func() registry.Game { return New() })
}

type phase int

const (
	phaseMenu phase = iota
	phasePlaying
	phasePaused
	phaseOver
)

// Game is the scavenge simulation root.
type Game struct {
	cfg        *config.Config
	configPath string

	rt      core.RuntimeConfig
	rng     *rand.Rand
	bounds  core.Rect
	tickDur time.Duration
	dt      float64
	now     time.Duration

	player  *Player
	enemies *EnemyManager
	items   *ItemManager
	cars    *CarsManager
	shots   *ProjectileManager

	phase     phase
	score     int
	highScore int
}

// New creates an uninitialized game; Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string    { return "scavenge" }
func (g *Game) Title() string { return "Scrapyard City" }

// SetConfigPath overrides the tuning config location. Takes effect on the
// next Reset.
func (g *Game) SetConfigPath(path string) {
	g.configPath = path
}

// SetHighScore injects the persisted high score for the HUD. The platform
// calls this after loading the store; the game never touches storage.
func (g *Game) SetHighScore(hs int) {
	g.highScore = hs
}

// SetScreenSize updates the cell grid used for aim mapping when the
// terminal is resized mid-run.
func (g *Game) SetScreenSize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h
}

// Reset initializes the simulation and shows the start menu.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = &cfg

	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.bounds = core.NewRect(0, 0, cfg.Map.Width, cfg.Map.Height)
	g.tickDur = time.Second / time.Duration(rt.TickRate)
	g.dt = 1.0 / float64(rt.TickRate)

	g.items = NewItemManager(g.cfg, g.bounds, g.rng)
	g.enemies = NewEnemyManager(g.cfg, g.bounds, g.rng)
	g.cars = NewCarsManager(g.cfg, g.bounds)
	g.shots = NewProjectileManager(g.cfg.Projectile.Limit)

	g.resetWorld()
	g.phase = phaseMenu
}

// resetWorld rebuilds the run state: fresh player at the map center, fresh
// populations, zeroed clock and score.
func (g *Game) resetWorld() {
	g.now = 0
	g.score = 0
	g.player = NewPlayer(float64(g.bounds.W)/2, float64(g.bounds.H)/2, g.cfg)
	g.items.Reset()
	g.enemies.Reset()
	g.cars.Reset()
	g.shots.Reset()
}

// State returns the platform-visible state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == phaseOver,
		Paused:   g.phase == phasePaused,
		InMenu:   g.phase == phaseMenu,
	}
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case phaseMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.resetWorld()
			g.phase = phasePlaying
		}
		return core.StepResult{State: g.State()}

	case phaseOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.resetWorld()
			g.phase = phasePlaying
		}
		return core.StepResult{State: g.State()}

	case phasePaused:
		if in.Has(core.ActionPause) {
			g.phase = phasePlaying
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.phase = phasePaused
		return core.StepResult{State: g.State()}
	}

	// The clock only runs while actually playing, so cooldowns and fade
	// timers freeze across pauses.
	g.now += g.tickDur

	g.handleInventory(in)
	g.handleVehicle(in)

	target := g.player.Box.CenterVec()
	for _, e := range g.enemies.Enemies {
		e.Think(target, g.player.Visible, g.now, g.rng)
	}
	for _, e := range g.enemies.Enemies {
		e.Update(g.dt, g.bounds)
		if g.player.Visible {
			e.TryAttack(g.player, g.now)
		}
	}

	g.movePlayer(in)
	g.handleFire(in)
	g.updateProjectiles()

	g.enemies.ReapFaded(g.now)
	g.enemies.Spawn()
	g.items.Spawn()
	g.cars.Spawn()

	if g.player.HP <= 0 {
		g.player.HP = 0
		if g.score > g.highScore {
			g.highScore = g.score
		}
		g.phase = phaseOver
	}
	return core.StepResult{State: g.State()}
}

// handleInventory applies slot selection, wheel scrolling, pickup and drop.
func (g *Game) handleInventory(in core.InputFrame) {
	inv := g.player.Inventory
	if in.Slot >= 0 {
		inv.Select(in.Slot)
	}
	if in.Scroll != 0 {
		inv.Scroll(in.Scroll)
	}

	if in.Has(core.ActionPickup) {
		for _, it := range g.items.Ground {
			if !it.Box.Intersects(g.player.Box) {
				continue
			}
			if inv.Add(it) {
				g.items.Remove(it)
				break
			}
		}
	}

	if in.Has(core.ActionDrop) {
		if it := inv.RemoveSelected(); it != nil {
			it.PlaceAt(g.player.Box.CenterVec())
			g.items.Drop(it)
		}
	}
}

// handleVehicle toggles possession: exit when driving, otherwise enter the
// first vehicle overlapping the player.
func (g *Game) handleVehicle(in core.InputFrame) {
	if !in.Has(core.ActionInteract) {
		return
	}

	if _, ok := g.cars.Get(g.player.Vehicle); ok {
		g.player.Vehicle = NoVehicle
		g.player.Visible = true
		return
	}
	g.player.Vehicle = NoVehicle

	for i, car := range g.cars.Cars {
		if car != nil && car.Box.Intersects(g.player.Box) {
			g.player.Vehicle = g.cars.Handle(i)
			return
		}
	}
}

// movePlayer moves either the possessed vehicle (with the player glued to
// its center) or the player on foot. A stale vehicle handle silently drops
// possession and restores the player.
func (g *Game) movePlayer(in core.InputFrame) {
	dx, dy := in.MoveDir()

	if g.player.Vehicle.Valid() {
		car, ok := g.cars.Get(g.player.Vehicle)
		if !ok {
			g.player.Vehicle = NoVehicle
			g.player.Visible = true
		} else {
			car.Drive(dx, dy, g.dt, g.bounds)
			g.player.SetCenter(car.Box.CenterVec())
			g.player.Visible = !car.Hiding
			return
		}
	}

	dir := core.Vec2{X: float64(dx), Y: float64(dy)}
	g.player.Move(dir, in.Has(core.ActionSprint), g.dt, g.bounds)
}

// handleFire uses the selected item: food heals and is consumed, weapons
// spawn a projectile toward the aim point. The cooldown stamp lands before
// the projectile spawn, so a full pool still consumes the use.
func (g *Game) handleFire(in core.InputFrame) {
	if !in.Has(core.ActionFire) {
		return
	}
	item := g.player.Inventory.Selected()
	if item == nil || !item.Ready(g.now) {
		return
	}
	item.StampUse(g.now)

	if item.Category == CategoryFood {
		g.player.HP += item.Heal
		if g.player.HP > g.player.MaxHP {
			g.player.HP = g.player.MaxHP
		}
		g.player.Inventory.RemoveSelected()
		return
	}

	origin := g.player.Box.CenterVec()
	dir := g.screenToWorld(in.AimX, in.AimY).Sub(origin).Normalize()
	if dir.Len() == 0 {
		dir = core.Vec2{X: 1}
	}
	g.shots.Add(NewProjectile(origin, dir, item, g.cfg.Projectile))
}

// updateProjectiles advances every shot, resolves the first live enemy each
// one touches, and compacts out spent shots. A hit consumes the projectile
// even when the enemy survives.
func (g *Game) updateProjectiles() {
	kept := g.shots.Shots[:0]
	for _, p := range g.shots.Shots {
		p.Move(g.dt)
		if p.Expired() {
			continue
		}

		hit := false
		for _, e := range g.enemies.Enemies {
			if e.Dead() || !p.Box.Intersects(e.Box) {
				continue
			}
			g.damageEnemy(e, p.Damage)
			if p.Blast > 0 {
				g.explodeAt(p.Pos, p.Blast, p.Damage, e)
			}
			hit = true
			break
		}
		if !hit {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(g.shots.Shots); i++ {
		g.shots.Shots[i] = nil
	}
	g.shots.Shots = kept
}

func (g *Game) damageEnemy(e *Enemy, dmg int) {
	e.HP -= dmg
	if e.HP <= 0 {
		g.killEnemy(e)
	}
}

// explodeAt splashes full damage onto every other live enemy within radius
// of the impact point. The directly hit enemy is excluded; it already took
// the hit.
func (g *Game) explodeAt(at core.Vec2, radius float64, dmg int, struck *Enemy) {
	for _, e := range g.enemies.Enemies {
		if e == struck || e.Dead() {
			continue
		}
		if e.Box.CenterVec().Dist(at) <= radius {
			g.damageEnemy(e, dmg)
		}
	}
}

// killEnemy scores the kill and spills the enemy's carried loot onto the
// ground where it fell.
func (g *Game) killEnemy(e *Enemy) {
	e.Kill(g.now)
	g.score += e.Points

	if loot := e.Inventory.Slot(0); loot != nil {
		loot.PlaceAt(e.Box.CenterVec())
		g.items.Drop(loot)
	}
}

// viewCells returns the screen region the world viewport maps onto: the
// full width, minus the HUD row on top and the inventory bar on the bottom.
func (g *Game) viewCells() (w, h int) {
	w = g.rt.ScreenW
	h = g.rt.ScreenH - 2
	if h < 1 {
		h = 1
	}
	return w, h
}

// camera returns the world-space viewport rectangle, centered on the player
// and clamped to the map.
func (g *Game) camera() core.Rect {
	mc := g.cfg.Map
	cx, cy := g.player.Box.Center()
	x := core.Clamp(cx-mc.ViewportW/2, 0, g.bounds.W-mc.ViewportW)
	y := core.Clamp(cy-mc.ViewportH/2, 0, g.bounds.H-mc.ViewportH)
	return core.NewRect(x, y, mc.ViewportW, mc.ViewportH)
}

// screenToWorld converts a screen cell (e.g. the mouse aim point) to world
// coordinates through the current camera.
func (g *Game) screenToWorld(sx, sy int) core.Vec2 {
	cam := g.camera()
	vw, vh := g.viewCells()
	// Row 0 is the HUD; the viewport starts one row down.
	fx := float64(sx) / float64(vw)
	fy := float64(sy-1) / float64(vh)
	return core.Vec2{
		X: float64(cam.X) + fx*float64(cam.W),
		Y: float64(cam.Y) + fy*float64(cam.H),
	}
}
