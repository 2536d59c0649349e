package config

import (
	_ "embed"
)

//go:embed defaults/scavenge.yaml
var defaultScavengeYAML []byte

// Default returns the built-in configuration, used when no config file is
// found and as the last-resort fallback if the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Map: MapConfig{
			Width:     6000,
			Height:    4000,
			ViewportW: 1200,
			ViewportH: 800,
		},
		Person: PersonConfig{
			HitboxW:     40,
			HitboxH:     60,
			HP:          100,
			Speed:       300.0,
			SprintBonus: 100.0,
		},
		Enemy: EnemyConfig{
			Limit:            25,
			Damage:           10,
			ChaseRadius:      300.0,
			DecisionInterval: 1000,
			AttackInterval:   1000,
			FadeTime:         3000,
			PointsGiven:      10,
		},
		Items: ItemsConfig{
			Limit:    100,
			Capacity: 9,
			SizeW:    64,
			SizeH:    64,
		},
		Vehicles: VehiclesConfig{
			Amount:   3,
			FirstX:   100,
			FirstY:   100,
			Friction: 300.0,
			Tiers: []VehicleTier{
				{Name: "small", HitboxW: 30, HitboxH: 70, Acceleration: 900.0, MaxSpeed: 900.0, RotationSpeed: 90.0, Health: 70, Hiding: false},
				{Name: "medium", HitboxW: 50, HitboxH: 70, Acceleration: 450.0, MaxSpeed: 800.0, RotationSpeed: 60.0, Health: 20, Hiding: true},
				{Name: "large", HitboxW: 60, HitboxH: 80, Acceleration: 150.0, MaxSpeed: 500.0, RotationSpeed: 30.0, Health: 500, Hiding: true},
			},
		},
		Projectile: ProjectileConfig{
			BulletSpeed:  500.0,
			GrenadeSpeed: 300.0,
			SpecialSpeed: 50.0,
			Limit:        200,
		},
		Weapons: []WeaponSpec{
			{Name: "Crowbar", Category: "melee", Damage: 20, Range: 50.0, UseSpeed: 500, FreqLow: 0.0, FreqHigh: 0.2},
			{Name: "Pistol", Category: "pistol", Damage: 15, Range: 600.0, UseSpeed: 300, FreqLow: 0.3, FreqHigh: 0.4},
			{Name: "Rifle", Category: "rifle", Damage: 20, Range: 800.0, UseSpeed: 100, FreqLow: 0.5, FreqHigh: 0.6},
			{Name: "Flamethrower", Category: "special", Damage: 5, Range: 500.0, UseSpeed: 50, FreqLow: 0.7, FreqHigh: 0.75},
			{Name: "Grenade", Category: "throwable", Damage: 50, Range: 1000.0, ExplosionRadius: 50.0, UseSpeed: 1500, FreqLow: 0.8, FreqHigh: 0.9},
		},
		Food: []FoodSpec{
			{Name: "Canned Beans", Heal: 25, UseSpeed: 800, FreqLow: 0.9, FreqHigh: 1.0},
		},
	}
}
