package config

import (
	_ "embed"
)

//go:embed defaults/kablewey.yaml
var defaultYAML []byte

// Default returns the standard game tuning.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Enemy: EnemyConfig{
			StartX:            50,
			StartY:            50,
			MoveDurationMinMs: 300,
			MoveDurationMaxMs: 2000,
			FirstShotDelayMs:  1000,
			FireDelayMinMs:    200,
			FireDelayMaxMs:    700,
			LethalChance:      0.2,
		},
		Player: PlayerConfig{
			StartX: 50,
			StartY: 550,
			Speed:  1000,
			Width:  64,
			Height: 32,
		},
		Projectile: ProjectileConfig{
			Speed:  500,
			Width:  16,
			Height: 32,
		},
		Cleanup: CleanupConfig{
			PruneFactor: 2.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
