package scavenge

import (
	"strings"
	"testing"
	"time"

	"github.com/dkrajewski/tui-scavenger/internal/config"
	"github.com/dkrajewski/tui-scavenger/internal/core"
	"github.com/dkrajewski/tui-scavenger/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func startGame(g *Game) {
	g.Step(frame(core.ActionConfirm))
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("scavenge")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "scavenge" || g.Title() != "Scrapyard City" {
		t.Errorf("unexpected identity: %s / %s", g.ID(), g.Title())
	}
}

func TestGameStartsInMenu(t *testing.T) {
	g := newTestGame(t)

	st := g.State()
	if !st.InMenu {
		t.Fatal("game should open on the start menu")
	}

	// Movement keys do nothing on the menu.
	g.Step(frame(core.ActionRight))
	if !g.State().InMenu {
		t.Error("movement input should not leave the menu")
	}

	startGame(g)
	st = g.State()
	if st.InMenu || st.GameOver || st.Paused {
		t.Errorf("confirm should start the run, state = %+v", st)
	}
}

func TestGamePauseFreezesClock(t *testing.T) {
	g := newTestGame(t)
	startGame(g)
	g.Step(frame())
	before := g.now

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause action should pause")
	}
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionRight))
	}
	if g.now != before {
		t.Error("simulation clock advanced while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Fatal("second pause action should resume")
	}
	g.Step(frame())
	if g.now == before {
		t.Error("simulation clock should run again after resume")
	}
}

func TestGamePopulationsMaintained(t *testing.T) {
	g := newTestGame(t)
	startGame(g)

	for i := 0; i < 240; i++ {
		g.Step(frame())
	}

	s := g.Snapshot()
	if s.Enemies != g.cfg.Enemy.Limit {
		t.Errorf("enemy population = %d, want %d", s.Enemies, g.cfg.Enemy.Limit)
	}
	if s.Cars != g.cfg.Vehicles.Amount {
		t.Errorf("vehicle count = %d, want %d", s.Cars, g.cfg.Vehicles.Amount)
	}
	if s.Items != g.cfg.Items.Limit {
		t.Errorf("ground items = %d, want %d", s.Items, g.cfg.Items.Limit)
	}
}

func TestGameDeterministicForSeed(t *testing.T) {
	script := func(g *Game) []uint64 {
		startGame(g)
		hashes := make([]uint64, 0, 120)
		for i := 0; i < 120; i++ {
			f := frame(core.ActionRight, core.ActionSprint)
			if i%3 == 0 {
				f.Set(core.ActionFire)
				f.AimX, f.AimY = 60, 10
			}
			g.Step(f)
			hashes = append(hashes, g.Hash())
		}
		return hashes
	}

	a := New()
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	b := New()
	b.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})

	ha, hb := script(a), script(b)
	for i := range ha {
		if ha[i] != hb[i] {
			t.Fatalf("same seed diverged at tick %d: %x vs %x", i, ha[i], hb[i])
		}
	}

	c := New()
	c.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 43})
	hc := script(c)
	if hc[len(hc)-1] == ha[len(ha)-1] {
		t.Error("different seeds should produce different runs")
	}
}

func TestGamePickupAndDrop(t *testing.T) {
	g := newTestGame(t)
	startGame(g)

	g.items.Ground = nil // only the item under test on the ground
	item := weaponByName(t, "Pistol")
	item.PlaceAt(g.player.Box.CenterVec())
	g.items.Drop(item)
	before := len(g.items.Ground)

	g.handleInventory(frame(core.ActionPickup))
	if g.player.Inventory.Selected() != item {
		t.Fatal("pickup should place the item in the selected slot")
	}
	if len(g.items.Ground) != before-1 {
		t.Error("picked-up item should leave the ground")
	}

	g.handleInventory(frame(core.ActionDrop))
	if g.player.Inventory.Selected() != nil {
		t.Error("drop should clear the selected slot")
	}
	if len(g.items.Ground) != before {
		t.Error("dropped item should return to the ground")
	}
}

func TestGamePickupIntoFullInventory(t *testing.T) {
	g := newTestGame(t)
	startGame(g)
	for i := 0; i < g.player.Inventory.Capacity(); i++ {
		g.player.Inventory.Add(weaponByName(t, "Crowbar"))
	}

	g.items.Ground = nil
	for _, name := range []string{"Pistol", "Rifle"} {
		item := weaponByName(t, name)
		item.PlaceAt(g.player.Box.CenterVec())
		g.items.Drop(item)
	}

	g.handleInventory(frame(core.ActionPickup))
	if len(g.items.Ground) != 2 {
		t.Error("pickup into a full inventory should leave every item on the ground")
	}

	// Once a slot frees up, pickup takes exactly one of the overlapping items.
	g.player.Inventory.RemoveSelected()
	g.handleInventory(frame(core.ActionPickup))
	if len(g.items.Ground) != 1 {
		t.Errorf("pickup should take one item, %d left on the ground", len(g.items.Ground))
	}
}

func TestGameSlotAndScrollInput(t *testing.T) {
	g := newTestGame(t)
	startGame(g)

	f := frame()
	f.Slot = 6
	g.handleInventory(f)
	if g.player.Inventory.SelectedIndex() != 6 {
		t.Errorf("slot select = %d, want 6", g.player.Inventory.SelectedIndex())
	}

	f = frame()
	f.Scroll = -1
	g.handleInventory(f)
	if g.player.Inventory.SelectedIndex() != 5 {
		t.Errorf("scroll = %d, want 5", g.player.Inventory.SelectedIndex())
	}
}

func TestGameFireCooldown(t *testing.T) {
	g := newTestGame(t)
	startGame(g)
	g.player.Inventory.Add(weaponByName(t, "Pistol"))

	f := frame(core.ActionFire)
	f.AimX, f.AimY = 79, 12

	g.now = time.Second
	g.handleFire(f)
	if len(g.shots.Shots) != 1 {
		t.Fatalf("shots = %d, want 1", len(g.shots.Shots))
	}

	// Still inside the 300ms use speed.
	g.now += 100 * time.Millisecond
	g.handleFire(f)
	if len(g.shots.Shots) != 1 {
		t.Error("weapon fired inside its cooldown")
	}

	g.now += 300 * time.Millisecond
	g.handleFire(f)
	if len(g.shots.Shots) != 2 {
		t.Error("weapon should fire again after the cooldown")
	}
}

func TestGameFireEmptyHandIsNoOp(t *testing.T) {
	g := newTestGame(t)
	startGame(g)

	f := frame(core.ActionFire)
	f.AimX, f.AimY = 79, 12
	g.now = time.Second
	g.handleFire(f)

	if len(g.shots.Shots) != 0 {
		t.Error("firing with an empty slot should spawn nothing")
	}
}

func TestGameFoodHealsAndConsumes(t *testing.T) {
	g := newTestGame(t)
	startGame(g)
	cfg := config.Default()

	g.player.HP = 50
	g.player.Inventory.Add(newFood(cfg.Food[0], 1, 1))
	g.now = time.Second
	g.handleFire(frame(core.ActionFire))

	if g.player.HP != 75 {
		t.Errorf("HP after eating = %d, want 75", g.player.HP)
	}
	if g.player.Inventory.Selected() != nil {
		t.Error("food should be consumed on use")
	}

	// Healing clamps at max HP.
	g.player.HP = 90
	g.player.Inventory.Add(newFood(cfg.Food[0], 1, 1))
	g.now += time.Second
	g.handleFire(frame(core.ActionFire))
	if g.player.HP != g.player.MaxHP {
		t.Errorf("HP after overheal = %d, want %d", g.player.HP, g.player.MaxHP)
	}
}

func TestGameKillScoresAndDropsLoot(t *testing.T) {
	g := newTestGame(t)
	startGame(g)

	e := NewEnemy(4000, 1000, g.cfg)
	e.HP = 10
	loot := weaponByName(t, "Rifle")
	e.Inventory.Add(loot)
	g.enemies.Enemies = []*Enemy{e}

	itemsBefore := len(g.items.Ground)
	p := NewProjectile(e.Box.CenterVec(), core.Vec2{X: 1}, weaponByName(t, "Pistol"), g.cfg.Projectile)
	g.shots.Add(p)
	g.updateProjectiles()

	if !e.Dead() {
		t.Fatal("enemy should die from the hit")
	}
	if g.score != g.cfg.Enemy.PointsGiven {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Enemy.PointsGiven)
	}
	if len(g.shots.Shots) != 0 {
		t.Error("projectile should be consumed by the hit")
	}
	if len(g.items.Ground) != itemsBefore+1 {
		t.Error("killed enemy should spill its carried loot")
	}
}

func TestGameProjectileHitsFirstEnemyOnly(t *testing.T) {
	g := newTestGame(t)
	startGame(g)

	a := NewEnemy(4000, 1000, g.cfg)
	b := NewEnemy(4000, 1000, g.cfg)
	g.enemies.Enemies = []*Enemy{a, b}

	p := NewProjectile(a.Box.CenterVec(), core.Vec2{X: 1}, weaponByName(t, "Pistol"), g.cfg.Projectile)
	g.shots.Add(p)
	g.updateProjectiles()

	hurt := 0
	for _, e := range []*Enemy{a, b} {
		if e.HP < e.MaxHP {
			hurt++
		}
	}
	if hurt != 1 {
		t.Errorf("one projectile hurt %d enemies, want exactly 1", hurt)
	}
}

func TestGameGrenadeSplashesNearbyEnemies(t *testing.T) {
	g := newTestGame(t)
	startGame(g)

	struck := NewEnemy(4000, 1000, g.cfg)
	near := NewEnemy(4020, 1000, g.cfg) // inside the 50 blast radius
	far := NewEnemy(4500, 1000, g.cfg)
	g.enemies.Enemies = []*Enemy{struck, near, far}

	p := NewProjectile(struck.Box.CenterVec(), core.Vec2{X: 1}, weaponByName(t, "Grenade"), g.cfg.Projectile)
	g.shots.Add(p)
	g.updateProjectiles()

	if struck.HP == struck.MaxHP {
		t.Error("directly hit enemy took no damage")
	}
	if near.HP == near.MaxHP {
		t.Error("enemy inside the blast radius took no splash damage")
	}
	if far.HP != far.MaxHP {
		t.Errorf("enemy far outside the blast took damage, HP = %d", far.HP)
	}
}

func TestGameDeadEnemyBlocksNothing(t *testing.T) {
	g := newTestGame(t)
	startGame(g)

	corpse := NewEnemy(4000, 1000, g.cfg)
	corpse.Kill(g.now)
	live := NewEnemy(4000, 1000, g.cfg)
	g.enemies.Enemies = []*Enemy{corpse, live}

	p := NewProjectile(corpse.Box.CenterVec(), core.Vec2{X: 1}, weaponByName(t, "Pistol"), g.cfg.Projectile)
	g.shots.Add(p)
	g.updateProjectiles()

	if live.HP == live.MaxHP {
		t.Error("projectile should pass the corpse and hit the live enemy")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t)
	startGame(g)
	g.score = 50
	g.player.HP = 0

	g.Step(frame())
	if !g.State().GameOver {
		t.Fatal("zero HP should end the run")
	}
	if g.highScore != 50 {
		t.Errorf("high score = %d, want 50", g.highScore)
	}

	// Input other than restart/confirm is ignored on the game over screen.
	g.Step(frame(core.ActionRight))
	if !g.State().GameOver {
		t.Fatal("movement should not leave the game over screen")
	}

	g.Step(frame(core.ActionRestart))
	st := g.State()
	if st.GameOver || st.InMenu {
		t.Fatal("restart should begin a fresh run")
	}
	if st.Score != 0 || g.player.HP != g.player.MaxHP || g.now != 0 {
		t.Error("restart should reset score, health and the clock")
	}
	if g.highScore != 50 {
		t.Error("restart must keep the high score")
	}
}

func TestGameVehiclePossession(t *testing.T) {
	g := newTestGame(t)
	startGame(g)

	car := g.cars.Cars[1] // medium tier hides its driver
	g.player.SetCenter(car.Box.CenterVec())

	g.Step(frame(core.ActionInteract))
	if !g.Snapshot().Driving {
		t.Fatal("interact on an overlapping vehicle should enter it")
	}
	if g.player.Visible {
		t.Error("driver of a covered vehicle should be hidden")
	}

	// Drive forward: the car gains speed and the player rides its center.
	for i := 0; i < 30; i++ {
		g.Step(frame(core.ActionUp))
	}
	if car.Speed <= 0 {
		t.Errorf("car speed = %v, want forward momentum", car.Speed)
	}
	pc := g.player.Box.CenterVec()
	cc := car.Box.CenterVec()
	if core.Dist(pc, cc) > 2 {
		t.Errorf("player center %v should track car center %v", pc, cc)
	}

	g.Step(frame(core.ActionInteract))
	if g.Snapshot().Driving {
		t.Fatal("interact while driving should exit")
	}
	if !g.player.Visible {
		t.Error("player should be visible again after exiting")
	}
}

func TestGameStaleVehicleHandleRecovers(t *testing.T) {
	g := newTestGame(t)
	startGame(g)

	car := g.cars.Cars[1]
	g.player.SetCenter(car.Box.CenterVec())
	g.Step(frame(core.ActionInteract))
	if !g.Snapshot().Driving {
		t.Fatal("setup: player should be driving")
	}

	g.cars.Remove(1)
	g.Step(frame())

	if g.Snapshot().Driving {
		t.Error("removing the vehicle should drop possession")
	}
	if !g.player.Visible {
		t.Error("player should reappear when the vehicle vanishes")
	}
}

func TestGameCameraClamps(t *testing.T) {
	g := newTestGame(t)
	startGame(g)

	g.player.Pos = core.Vec2{}
	g.player.SyncBox()
	cam := g.camera()
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("camera at origin corner = (%d, %d), want (0, 0)", cam.X, cam.Y)
	}

	g.player.Pos = core.Vec2{X: 6000, Y: 4000}
	g.player.SyncBox()
	cam = g.camera()
	if cam.Right() != g.bounds.Right() || cam.Bottom() != g.bounds.Bottom() {
		t.Errorf("camera should clamp to the far corner, got %+v", cam)
	}
}

func TestGameRenderFrames(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "S C R A P Y A R D") {
		t.Error("menu frame should show the title")
	}

	startGame(g)
	g.Step(frame())
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "hp ") || !strings.Contains(out, "score ") {
		t.Error("playing frame should show the HUD")
	}
	if !strings.Contains(out, "@") {
		t.Error("playing frame should show the player")
	}

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused frame should show the overlay")
	}
}
