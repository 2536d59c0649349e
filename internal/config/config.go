// Package config provides YAML-based tuning configuration for the game.
// A Config is loaded once at startup and treated as immutable afterwards;
// run state (score, high score) lives in the game, never here.
package config

// Config contains all tuning parameters for the scavenge game.
type Config struct {
	Map        MapConfig        `yaml:"map"`
	Person     PersonConfig     `yaml:"person"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Items      ItemsConfig      `yaml:"items"`
	Vehicles   VehiclesConfig   `yaml:"vehicles"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Weapons    []WeaponSpec     `yaml:"weapons"`
	Food       []FoodSpec       `yaml:"food"`
}

// MapConfig defines the world map and the camera viewport, in world units.
type MapConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	ViewportW int `yaml:"viewport_w"`
	ViewportH int `yaml:"viewport_h"`
}

// PersonConfig defines shared parameters for the player and enemies.
type PersonConfig struct {
	HitboxW     int     `yaml:"hitbox_w"`
	HitboxH     int     `yaml:"hitbox_h"`
	HP          int     `yaml:"hp"`
	Speed       float64 `yaml:"speed"`
	SprintBonus float64 `yaml:"sprint_bonus"`
}

// EnemyConfig defines enemy population and AI timing parameters.
// Intervals are milliseconds of simulation time.
type EnemyConfig struct {
	Limit            int     `yaml:"limit"`
	Damage           int     `yaml:"damage"`
	ChaseRadius      float64 `yaml:"chase_radius"`
	DecisionInterval int     `yaml:"decision_interval_ms"`
	AttackInterval   int     `yaml:"attack_interval_ms"`
	FadeTime         int     `yaml:"fade_time_ms"`
	PointsGiven      int     `yaml:"points_given"`
}

// ItemsConfig defines ground item population and inventory sizing.
type ItemsConfig struct {
	Limit    int `yaml:"limit"`
	Capacity int `yaml:"inventory_capacity"`
	SizeW    int `yaml:"size_w"`
	SizeH    int `yaml:"size_h"`
}

// VehiclesConfig defines vehicle spawning and the shared friction constant.
type VehiclesConfig struct {
	Amount   int           `yaml:"amount"`
	FirstX   int           `yaml:"first_x"`
	FirstY   int           `yaml:"first_y"`
	Friction float64       `yaml:"friction"`
	Tiers    []VehicleTier `yaml:"tiers"`
}

// VehicleTier is one vehicle category (small/medium/large).
type VehicleTier struct {
	Name          string  `yaml:"name"`
	HitboxW       int     `yaml:"hitbox_w"`
	HitboxH       int     `yaml:"hitbox_h"`
	Acceleration  float64 `yaml:"acceleration"`
	MaxSpeed      float64 `yaml:"max_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	Health        int     `yaml:"health"`
	Hiding        bool    `yaml:"hiding"`
}

// ProjectileConfig defines projectile speeds per weapon class and the live
// projectile cap.
type ProjectileConfig struct {
	BulletSpeed  float64 `yaml:"bullet_speed"`
	GrenadeSpeed float64 `yaml:"grenade_speed"`
	SpecialSpeed float64 `yaml:"special_speed"`
	Limit        int     `yaml:"limit"`
}

// WeaponSpec is a catalog entry for a weapon template. Frequency is a
// [low, high) band rolled against a uniform value when spawning loot;
// bands are non-overlapping by config contract, and gaps between bands
// mean "no weapon" rather than an error.
type WeaponSpec struct {
	Name            string  `yaml:"name"`
	Category        string  `yaml:"category"` // melee, pistol, rifle, special, throwable
	Damage          int     `yaml:"damage"`
	Range           float64 `yaml:"range"`
	ExplosionRadius float64 `yaml:"explosion_radius"`
	UseSpeed        int     `yaml:"use_speed_ms"`
	FreqLow         float64 `yaml:"freq_low"`
	FreqHigh        float64 `yaml:"freq_high"`
}

// FoodSpec is a catalog entry for a consumable item.
type FoodSpec struct {
	Name     string  `yaml:"name"`
	Heal     int     `yaml:"heal"`
	UseSpeed int     `yaml:"use_speed_ms"`
	FreqLow  float64 `yaml:"freq_low"`
	FreqHigh float64 `yaml:"freq_high"`
}
