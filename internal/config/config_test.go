package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolateHome(t)

	tests := []struct {
		id       string
		title    string
		goal     int
		speed    float64
		interval int
	}{
		{VariantFlu, "Flu Season", 3, 100, 1000},
		{VariantMeasles, "Measles Outbreak", 5, 90, 1100},
		{VariantBooster, "Booster Rush", 3, 130, 900},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			if GetDefaultYAML(tc.id) == nil {
				t.Fatalf("no embedded YAML for %s", tc.id)
			}

			cfg, err := Load(tc.id, "")
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if cfg.Title != tc.title || cfg.Session.Goal != tc.goal {
				t.Errorf("title/goal = %q/%d, expected %q/%d", cfg.Title, cfg.Session.Goal, tc.title, tc.goal)
			}
			if cfg.Hazards.Speed != tc.speed || cfg.Hazards.SpawnIntervalMs != tc.interval {
				t.Errorf("speed/interval = %g/%d, expected %g/%d",
					cfg.Hazards.Speed, cfg.Hazards.SpawnIntervalMs, tc.speed, tc.interval)
			}
			if len(cfg.Messages) == 0 {
				t.Error("expected end-screen messages")
			}

			def := DefaultConfig(tc.id)
			if def.Session.Goal != tc.goal || def.Hazards.Speed != tc.speed {
				t.Errorf("DefaultConfig(%s) disagrees with embedded YAML", tc.id)
			}
			if err := def.Validate(); err != nil {
				t.Errorf("DefaultConfig(%s) invalid: %v", tc.id, err)
			}
		})
	}
}

func TestUnknownVariantFallsBackToHardcoded(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("smallpox", "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Title != "Flu Season" {
		t.Errorf("Title = %q, expected flu fallback", cfg.Title)
	}
	if GetDefaultYAML("smallpox") != nil {
		t.Error("GetDefaultYAML should return nil for unknown variant")
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "title: Custom\nsession:\n  goal: 7\nhazards:\n  speed: 250\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(VariantFlu, path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Title != "Custom" || cfg.Session.Goal != 7 || cfg.Hazards.Speed != 250 {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.Hazards.SpawnIntervalMs != 1000 || cfg.Collectibles.LifetimeMs != 1000 {
		t.Errorf("partial file lost defaults: %+v", cfg.Hazards)
	}
	if cfg.Session.CollectibleName != "Flu" {
		t.Errorf("CollectibleName = %q, expected Flu", cfg.Session.CollectibleName)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	if _, err := Load(VariantFlu, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("hazards: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(VariantFlu, broken); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("session:\n  goal: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(VariantFlu, invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadCustomPathRejectsZeroReward(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "free.yaml")
	if err := os.WriteFile(path, []byte("hazards:\n  reward: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(VariantFlu, path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Load() error = %v, expected ErrInvalidConfig", err)
	}
	if !strings.Contains(err.Error(), "reward") {
		t.Errorf("error %q does not name the reward field", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, ".germsmash", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "flu.yaml"), []byte("session:\n  goal: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(VariantFlu, "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Session.Goal != 9 {
		t.Errorf("Goal = %d, expected user override 9", cfg.Session.Goal)
	}
}

func TestInvalidUserConfigIsSkipped(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, ".germsmash", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "measles.yaml"), []byte("hazards:\n  speed: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(VariantMeasles, "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Hazards.Speed != 90 {
		t.Errorf("Speed = %g, expected embedded default 90", cfg.Hazards.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GermSmashConfig)
	}{
		{"zero goal", func(c *GermSmashConfig) { c.Session.Goal = 0 }},
		{"zero speed", func(c *GermSmashConfig) { c.Hazards.Speed = 0 }},
		{"zero floor", func(c *GermSmashConfig) { c.Hazards.SpawnFloorMs = 0 }},
		{"interval below floor", func(c *GermSmashConfig) { c.Hazards.SpawnIntervalMs = 400 }},
		{"negative reward", func(c *GermSmashConfig) { c.Hazards.Reward = -1 }},
		{"zero reward", func(c *GermSmashConfig) { c.Hazards.Reward = 0 }},
		{"negative lifetime", func(c *GermSmashConfig) { c.Collectibles.LifetimeMs = -5 }},
		{"negative margin", func(c *GermSmashConfig) { c.Collectibles.Margin = -1 }},
		{"zero cell", func(c *GermSmashConfig) { c.World.CellHeight = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig(VariantFlu)
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestSettingsConversion(t *testing.T) {
	cfg := DefaultConfig(VariantMeasles)
	s := cfg.Settings(800, 480)

	if s.GoalCount != 5 || s.InitialHazardSpeed != 90 {
		t.Errorf("goal/speed = %d/%g", s.GoalCount, s.InitialHazardSpeed)
	}
	if s.InitialSpawnInterval != 1100*time.Millisecond || s.SpawnFloor != 500*time.Millisecond {
		t.Errorf("interval/floor = %v/%v", s.InitialSpawnInterval, s.SpawnFloor)
	}
	if s.CollectibleLifetime != time.Second || s.CollectibleCooldown != 2*time.Second {
		t.Errorf("lifetime/cooldown = %v/%v", s.CollectibleLifetime, s.CollectibleCooldown)
	}
	if s.AreaWidth != 800 || s.AreaHeight != 480 {
		t.Errorf("area = %gx%g", s.AreaWidth, s.AreaHeight)
	}
	if s.CollectibleName != "Vaccines" {
		t.Errorf("CollectibleName = %q", s.CollectibleName)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("converted settings invalid: %v", err)
	}
}

func TestInstructions(t *testing.T) {
	cfg := DefaultConfig(VariantFlu)
	got := cfg.Instructions()
	if !strings.HasPrefix(got, "Collect 3 Flu vaccines to protect your classmate,") {
		t.Errorf("Instructions() = %q", got)
	}

	cfg.Session.CollectibleName = ""
	if !strings.HasPrefix(cfg.Instructions(), "Collect 3 vaccines") {
		t.Errorf("Instructions() without name = %q", cfg.Instructions())
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		speed    float64
		interval int
	}{
		{DifficultyNormal, 100, 1000},
		{DifficultyEasy, 75, 1333},
		{DifficultyHard, 130, 769},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig(VariantFlu)
			ApplyPreset(&cfg, tc.preset)
			if cfg.Hazards.Speed != tc.speed || cfg.Hazards.SpawnIntervalMs != tc.interval {
				t.Errorf("speed/interval = %g/%d, expected %g/%d",
					cfg.Hazards.Speed, cfg.Hazards.SpawnIntervalMs, tc.speed, tc.interval)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestApplyPresetRespectsFloor(t *testing.T) {
	cfg := DefaultConfig(VariantFlu)
	cfg.Hazards.SpawnIntervalMs = 550
	cfg.Difficulty.HardScale = 2

	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Hazards.SpawnIntervalMs != cfg.Hazards.SpawnFloorMs {
		t.Errorf("interval = %d, expected clamp to floor %d", cfg.Hazards.SpawnIntervalMs, cfg.Hazards.SpawnFloorMs)
	}
}

func TestParsePreset(t *testing.T) {
	for in, expected := range map[string]DifficultyPreset{
		"easy":   DifficultyEasy,
		"hard":   DifficultyHard,
		"normal": DifficultyNormal,
		"insane": DifficultyNormal,
		"":       DifficultyNormal,
	} {
		if got := ParsePreset(in); got != expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", in, got, expected)
		}
	}
}
