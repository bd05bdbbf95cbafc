package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

const testFieldH = 480.0

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(testFieldH); err != nil {
		t.Fatalf("Default config should validate, got: %v", err)
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Physics.JumpImpulse != -6.0 {
		t.Errorf("jump_impulse = %v, expected -6.0", cfg.Physics.JumpImpulse)
	}
	if cfg.Obstacles.GapHeight != 180 {
		t.Errorf("gap_height = %v, expected 180", cfg.Obstacles.GapHeight)
	}
	if cfg.Obstacles.SpawnIntervalMs != 1500 {
		t.Errorf("spawn_interval_ms = %v, expected 1500", cfg.Obstacles.SpawnIntervalMs)
	}
	if cfg.Player.Width != 30 || cfg.Player.Height != 30 {
		t.Errorf("player size = %vx%v, expected 30x30", cfg.Player.Width, cfg.Player.Height)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must not drift apart.
	if Default() != hardcodedDefault() {
		t.Errorf("embedded default %+v differs from hardcoded fallback %+v", Default(), hardcodedDefault())
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"upward gravity", func(c *Config) { c.Physics.Gravity = -0.3 }},
		{"downward jump impulse", func(c *Config) { c.Physics.JumpImpulse = 6 }},
		{"zero player width", func(c *Config) { c.Player.Width = 0 }},
		{"zero obstacle speed", func(c *Config) { c.Obstacles.Speed = 0 }},
		{"zero spawn interval", func(c *Config) { c.Obstacles.SpawnIntervalMs = 0 }},
		{"zero obstacle width", func(c *Config) { c.Obstacles.Width = 0 }},
		{"gap narrower than player", func(c *Config) { c.Obstacles.GapHeight = 20 }},
		{"negative margin", func(c *Config) { c.Obstacles.BottomMargin = -1 }},
		{"empty gap placement range", func(c *Config) { c.Obstacles.MinTopHeight = 400 }},
		{"negative scroll speed", func(c *Config) { c.Backdrop.ScrollSpeed = -0.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(testFieldH); err == nil {
				t.Error("Validate should reject this config")
			}
		})
	}
}

func TestValidateGapPlacementBoundary(t *testing.T) {
	cfg := Default()

	// Exactly filling the field leaves a single legal position: still valid.
	cfg.Obstacles.MinTopHeight = testFieldH - cfg.Obstacles.GapHeight - cfg.Obstacles.BottomMargin
	if err := cfg.Validate(testFieldH); err != nil {
		t.Errorf("boundary config should validate, got: %v", err)
	}

	cfg.Obstacles.MinTopHeight++
	if err := cfg.Validate(testFieldH); err == nil {
		t.Error("config past the boundary should be rejected")
	}
}

func TestMaxTopHeight(t *testing.T) {
	cfg := Default()

	got := cfg.MaxTopHeight(testFieldH)
	expected := testFieldH - cfg.Obstacles.GapHeight - cfg.Obstacles.BottomMargin
	if got != expected {
		t.Errorf("MaxTopHeight = %v, expected %v", got, expected)
	}
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	cfg := Default()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var back Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if back != cfg {
		t.Errorf("round trip changed the config: %+v -> %+v", cfg, back)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")

	data := []byte("physics:\n  gravity: 0.5\n  jump_impulse: -8\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5 from custom file", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse != -8 {
		t.Errorf("jump_impulse = %v, expected -8 from custom file", cfg.Physics.JumpImpulse)
	}
	// Unset sections stay zero: a partial custom file is the caller's
	// responsibility and Validate will flag it.
	if cfg.Obstacles.Speed != 0 {
		t.Errorf("unset obstacle speed should be zero, got %v", cfg.Obstacles.Speed)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should fail for an explicitly requested missing file")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("physics: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should fail for a malformed explicit config")
	}
}

func TestLoadWithoutCustomPathFallsBack(t *testing.T) {
	// Run from a directory without configs/ and a home without
	// ~/.floppy so the loader reaches the embedded default.
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Error(err)
		}
	})

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if err := cfg.Validate(testFieldH); err != nil {
		t.Errorf("fallback config should validate, got: %v", err)
	}
}
