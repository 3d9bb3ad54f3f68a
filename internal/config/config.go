// Package config provides YAML-based tuning configuration for the game.
// The defaults are the intended balance; a custom file exists for
// experimentation, not difficulty selection.
package config

import (
	"time"

	"github.com/vovakirdan/kablewey/internal/sim"
)

// Config contains all tuning for the kablewey game.
type Config struct {
	Field      FieldConfig      `yaml:"field"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Cleanup    CleanupConfig    `yaml:"cleanup"`
}

// FieldConfig defines the playfield extent in simulation units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyConfig defines the enemy's start position and planner timing.
// Durations are in milliseconds.
type EnemyConfig struct {
	StartX            float64 `yaml:"start_x"`
	StartY            float64 `yaml:"start_y"`
	MoveDurationMinMs int     `yaml:"move_duration_min_ms"`
	MoveDurationMaxMs int     `yaml:"move_duration_max_ms"`
	FirstShotDelayMs  int     `yaml:"first_shot_delay_ms"`
	FireDelayMinMs    int     `yaml:"fire_delay_min_ms"`
	FireDelayMaxMs    int     `yaml:"fire_delay_max_ms"`
	LethalChance      float64 `yaml:"lethal_chance"`
}

// PlayerConfig defines the player's start position, speed, and hitbox.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ProjectileConfig defines projectile speed and hitbox.
type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CleanupConfig controls off-screen projectile removal.
type CleanupConfig struct {
	// PruneFactor scales the playfield diagonal into the removal distance.
	PruneFactor float64 `yaml:"prune_factor"`
}

// Tuning converts the config into the simulation's tuning parameters.
func (c Config) Tuning() sim.Tuning {
	return sim.Tuning{
		FieldW:          c.Field.Width,
		FieldH:          c.Field.Height,
		EnemyStart:      sim.Vec2{X: c.Enemy.StartX, Y: c.Enemy.StartY},
		PlayerStart:     sim.Vec2{X: c.Player.StartX, Y: c.Player.StartY},
		ProjectileSpeed: c.Projectile.Speed,
		PlayerSpeed:     c.Player.Speed,
		MoveDurationMin: time.Duration(c.Enemy.MoveDurationMinMs) * time.Millisecond,
		MoveDurationMax: time.Duration(c.Enemy.MoveDurationMaxMs) * time.Millisecond,
		FirstShotDelay:  time.Duration(c.Enemy.FirstShotDelayMs) * time.Millisecond,
		FireDelayMin:    time.Duration(c.Enemy.FireDelayMinMs) * time.Millisecond,
		FireDelayMax:    time.Duration(c.Enemy.FireDelayMaxMs) * time.Millisecond,
		LethalChance:    c.Enemy.LethalChance,
		ProjectileW:     c.Projectile.Width,
		ProjectileH:     c.Projectile.Height,
		PlayerW:         c.Player.Width,
		PlayerH:         c.Player.Height,
		PruneFactor:     c.Cleanup.PruneFactor,
	}
}
