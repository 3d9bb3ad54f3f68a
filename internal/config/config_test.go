package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if cfg != Default() {
		t.Errorf("embedded default %+v differs from hardcoded default %+v", cfg, Default())
	}
}

func TestDefaultTuningConstants(t *testing.T) {
	tuning := Default().Tuning()

	if tuning.ProjectileSpeed != 500 {
		t.Errorf("projectile speed = %v, expected 500", tuning.ProjectileSpeed)
	}
	if tuning.PlayerSpeed != 1000 {
		t.Errorf("player speed = %v, expected 1000", tuning.PlayerSpeed)
	}
	if tuning.MoveDurationMin != 300*time.Millisecond || tuning.MoveDurationMax != 2000*time.Millisecond {
		t.Errorf("move duration range = [%v, %v], expected [300ms, 2s]", tuning.MoveDurationMin, tuning.MoveDurationMax)
	}
	if tuning.FirstShotDelay != time.Second {
		t.Errorf("first shot delay = %v, expected 1s", tuning.FirstShotDelay)
	}
	if tuning.FireDelayMin != 200*time.Millisecond || tuning.FireDelayMax != 700*time.Millisecond {
		t.Errorf("fire delay range = [%v, %v], expected [200ms, 700ms]", tuning.FireDelayMin, tuning.FireDelayMax)
	}
	if tuning.LethalChance != 0.2 {
		t.Errorf("lethal chance = %v, expected 0.2", tuning.LethalChance)
	}
	if tuning.FieldW != 800 || tuning.FieldH != 600 {
		t.Errorf("field = %vx%v, expected 800x600", tuning.FieldW, tuning.FieldH)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := `
field:
  width: 1024
  height: 768
enemy:
  lethal_chance: 0.5
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Field.Width != 1024 || cfg.Field.Height != 768 {
		t.Errorf("field = %vx%v, expected 1024x768", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Enemy.LethalChance != 0.5 {
		t.Errorf("lethal chance = %v, expected 0.5", cfg.Enemy.LethalChance)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should fail for an explicitly named missing file")
	}
}
