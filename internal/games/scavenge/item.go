package scavenge

import (
	"math/rand"
	"time"

	"github.com/dkrajewski/tui-scavenger/internal/config"
	"github.com/dkrajewski/tui-scavenger/internal/core"
)

// ItemCategory tags an item variant. Weapon categories carry damage/range
// payloads, food carries a heal payload; switching on the category is how
// every use-site handles items exhaustively.
type ItemCategory int

const (
	CategoryMelee ItemCategory = iota
	CategoryPistol
	CategoryRifle
	CategorySpecial
	CategoryThrowable
	CategoryFood
)

// String returns the category name as used in config files.
func (c ItemCategory) String() string {
	switch c {
	case CategoryMelee:
		return "melee"
	case CategoryPistol:
		return "pistol"
	case CategoryRifle:
		return "rifle"
	case CategorySpecial:
		return "special"
	case CategoryThrowable:
		return "throwable"
	case CategoryFood:
		return "food"
	default:
		return "unknown"
	}
}

// IsWeapon reports whether the category fires projectiles when used.
func (c ItemCategory) IsWeapon() bool {
	return c != CategoryFood
}

func parseCategory(s string) ItemCategory {
	switch s {
	case "melee":
		return CategoryMelee
	case "pistol":
		return CategoryPistol
	case "rifle":
		return CategoryRifle
	case "special":
		return CategorySpecial
	case "throwable":
		return CategoryThrowable
	default:
		return CategoryFood
	}
}

// Item is a world item instance: catalog template fields plus world
// placement and a per-instance use cooldown stamp. An item is owned either
// by the ground list or by exactly one inventory slot, never both.
type Item struct {
	Name     string
	Category ItemCategory

	// Weapon payload
	Damage          int
	Range           float64
	ExplosionRadius float64

	// Food payload
	Heal int

	UseSpeed time.Duration
	lastUse  time.Duration

	// Ground placement; meaningless while the item sits in an inventory.
	Pos core.Vec2
	Box core.Rect
}

func newWeapon(spec config.WeaponSpec, w, h int) *Item {
	return &Item{
		Name:            spec.Name,
		Category:        parseCategory(spec.Category),
		Damage:          spec.Damage,
		Range:           spec.Range,
		ExplosionRadius: spec.ExplosionRadius,
		UseSpeed:        time.Duration(spec.UseSpeed) * time.Millisecond,
		lastUse:         -time.Hour, // fresh items are immediately usable
		Box:             core.NewRect(0, 0, w, h),
	}
}

func newFood(spec config.FoodSpec, w, h int) *Item {
	return &Item{
		Name:     spec.Name,
		Category: CategoryFood,
		Heal:     spec.Heal,
		UseSpeed: time.Duration(spec.UseSpeed) * time.Millisecond,
		lastUse:  -time.Hour,
		Box:      core.NewRect(0, 0, w, h),
	}
}

// PlaceAt positions the item in the world at pos.
func (it *Item) PlaceAt(pos core.Vec2) {
	it.Pos = pos
	it.Box.X = int(pos.X)
	it.Box.Y = int(pos.Y)
}

// Ready reports whether the use-speed cooldown has elapsed at sim time now.
func (it *Item) Ready(now time.Duration) bool {
	return now-it.lastUse > it.UseSpeed
}

// StampUse records an activation at sim time now. Stamped before the
// projectile spawns so a failed spawn still consumes the cooldown.
func (it *Item) StampUse(now time.Duration) {
	it.lastUse = now
}

// rollLoot rolls a uniform value against the catalog's spawn-frequency
// bands and returns a fresh item for the first matching band. A roll
// landing in a gap between bands returns nil: spawning nothing is an
// accepted outcome, not an error.
func rollLoot(rng *rand.Rand, cfg *config.Config) *Item {
	r := rng.Float64()
	for _, spec := range cfg.Weapons {
		if r >= spec.FreqLow && r < spec.FreqHigh {
			return newWeapon(spec, cfg.Items.SizeW, cfg.Items.SizeH)
		}
	}
	for _, spec := range cfg.Food {
		if r >= spec.FreqLow && r < spec.FreqHigh {
			return newFood(spec, cfg.Items.SizeW, cfg.Items.SizeH)
		}
	}
	return nil
}

// ItemManager owns all items lying on the ground.
type ItemManager struct {
	cfg    *config.Config
	bounds core.Rect
	rng    *rand.Rand

	Ground []*Item
}

// NewItemManager creates an empty ground item manager.
func NewItemManager(cfg *config.Config, bounds core.Rect, rng *rand.Rand) *ItemManager {
	return &ItemManager{cfg: cfg, bounds: bounds, rng: rng}
}

// Spawn tops the ground population up toward the configured limit. Each
// deficit slot gets one loot roll; gap rolls leave the slot empty this
// frame and a later Spawn retries.
func (m *ItemManager) Spawn() {
	for i := len(m.Ground); i < m.cfg.Items.Limit; i++ {
		item := rollLoot(m.rng, m.cfg)
		if item == nil {
			continue
		}
		item.PlaceAt(m.randomPos(item.Box.W, item.Box.H))
		m.Ground = append(m.Ground, item)
	}
}

// Drop puts an item (back) on the ground at its current position.
func (m *ItemManager) Drop(item *Item) {
	m.Ground = append(m.Ground, item)
}

// Remove takes an item off the ground list by identity.
func (m *ItemManager) Remove(item *Item) {
	for i, it := range m.Ground {
		if it == item {
			m.Ground = append(m.Ground[:i], m.Ground[i+1:]...)
			return
		}
	}
}

// Reset clears the ground and respawns from scratch.
func (m *ItemManager) Reset() {
	m.Ground = m.Ground[:0]
	m.Spawn()
}

func (m *ItemManager) randomPos(w, h int) core.Vec2 {
	x := float64(m.bounds.X) + m.rng.Float64()*float64(m.bounds.W-w)
	y := float64(m.bounds.Y) + m.rng.Float64()*float64(m.bounds.H-h)
	return core.Vec2{X: x, Y: y}
}
