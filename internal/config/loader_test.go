package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultInvadersConfig(t *testing.T) {
	cfg := DefaultInvadersConfig()

	if cfg.Player.Width <= 0 || cfg.Player.Speed <= 0 {
		t.Errorf("default player config not positive: %+v", cfg.Player)
	}
	if cfg.Projectile.PoolSize <= 0 || cfg.Projectile.Speed <= 0 {
		t.Errorf("default projectile config not positive: %+v", cfg.Projectile)
	}
	if cfg.Wave.Rows <= 0 || cfg.Wave.Cols <= 0 || cfg.Wave.EnemySize <= 0 {
		t.Errorf("default wave config not positive: %+v", cfg.Wave)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML must stay in sync with the hardcoded fallback
	var embedded InvadersConfig
	if err := yaml.Unmarshal(defaultInvadersYAML, &embedded); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	hardcoded := DefaultInvadersConfig()

	if embedded != hardcoded {
		t.Errorf("embedded default %+v differs from hardcoded %+v", embedded, hardcoded)
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := `player:
  width: 80
  height: 30
  speed: 12
projectile:
  width: 6
  height: 24
  speed: 25
  pool_size: 5
wave:
  rows: 1
  cols: 4
  enemy_size: 50
  speed: 2
  entry_step: 10
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}

	if cfg.Player.Width != 80 || cfg.Player.Speed != 12 {
		t.Errorf("player config = %+v, expected custom values", cfg.Player)
	}
	if cfg.Projectile.PoolSize != 5 {
		t.Errorf("pool size = %d, expected 5", cfg.Projectile.PoolSize)
	}
	if cfg.Wave.EntryStep != 10 {
		t.Errorf("entry step = %d, expected 10", cfg.Wave.EntryStep)
	}
}

func TestLoadInvadersMissingCustomPath(t *testing.T) {
	if _, err := LoadInvaders(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadInvaders() with a missing explicit path should fail")
	}
}

func TestLoadInvadersMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml:"), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	if _, err := LoadInvaders(path); err == nil {
		t.Error("LoadInvaders() with malformed YAML should fail")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"nightmare", ""},
		{"", ""},
	}

	for _, tc := range tests {
		if got := ParsePreset(tc.input); got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	t.Run("easy loosens the game", func(t *testing.T) {
		cfg := DefaultInvadersConfig()
		base := cfg
		ApplyInvadersPreset(&cfg, DifficultyEasy)

		if cfg.Projectile.PoolSize <= base.Projectile.PoolSize {
			t.Error("easy preset should grow the pool")
		}
		if cfg.Wave.Rows >= base.Wave.Rows {
			t.Error("easy preset should shrink the wave")
		}
	})

	t.Run("hard tightens the game", func(t *testing.T) {
		cfg := DefaultInvadersConfig()
		base := cfg
		ApplyInvadersPreset(&cfg, DifficultyHard)

		if cfg.Projectile.PoolSize >= base.Projectile.PoolSize {
			t.Error("hard preset should shrink the pool")
		}
		if cfg.Wave.Speed <= base.Wave.Speed {
			t.Error("hard preset should speed up the wave")
		}
	})

	t.Run("normal changes nothing", func(t *testing.T) {
		cfg := DefaultInvadersConfig()
		base := cfg
		ApplyInvadersPreset(&cfg, DifficultyNormal)

		if cfg != base {
			t.Errorf("normal preset modified config: %+v", cfg)
		}
	})
}
