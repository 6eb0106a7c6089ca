// Package config provides YAML-based variant configuration and difficulty
// presets for Germ Smash.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/germ-smash/internal/encounter"
)

// ErrInvalidConfig is returned when a loaded config cannot start a session.
var ErrInvalidConfig = errors.New("config: invalid config")

// GermSmashConfig contains all configuration for one game variant.
type GermSmashConfig struct {
	Title        string             `yaml:"title"`
	Session      SessionConfig      `yaml:"session"`
	Hazards      HazardConfig       `yaml:"hazards"`
	Collectibles CollectibleConfig  `yaml:"collectibles"`
	World        WorldConfig        `yaml:"world"`
	Messages     []string           `yaml:"messages"` // end-screen facts, one picked at random
	Difficulty   DifficultySettings `yaml:"difficulty"`
}

// SessionConfig defines the win condition.
type SessionConfig struct {
	Goal            int    `yaml:"goal"`
	CollectibleName string `yaml:"collectible_name"` // e.g. "Flu", used in the instructions
}

// HazardConfig defines germ speed, spawn rate and their ramp.
type HazardConfig struct {
	Speed               float64 `yaml:"speed"` // world units per second
	SpeedIncrement      float64 `yaml:"speed_increment"`
	SpawnIntervalMs     int     `yaml:"spawn_interval_ms"`
	IntervalDecrementMs int     `yaml:"interval_decrement_ms"`
	SpawnFloorMs        int     `yaml:"spawn_floor_ms"`
	Reward              int     `yaml:"reward"`
}

// CollectibleConfig defines vaccine timing and placement.
type CollectibleConfig struct {
	LifetimeMs   int     `yaml:"lifetime_ms"`
	CooldownMs   int     `yaml:"cooldown_ms"`
	FirstDelayMs int     `yaml:"first_delay_ms"`
	Margin       float64 `yaml:"margin"` // world units kept clear of the edges
}

// WorldConfig maps terminal cells to world units.
type WorldConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultySettings holds the multipliers applied by the presets.
type DifficultySettings struct {
	EasyScale float64 `yaml:"easy_scale"` // < 1 slows germs and spawns
	HardScale float64 `yaml:"hard_scale"` // > 1 speeds them up
}

// Validate reports the first field that would make a session impossible.
func (c GermSmashConfig) Validate() error {
	switch {
	case c.Session.Goal < 1:
		return fmt.Errorf("%w: session.goal must be at least 1", ErrInvalidConfig)
	case c.Hazards.Speed <= 0:
		return fmt.Errorf("%w: hazards.speed must be positive", ErrInvalidConfig)
	case c.Hazards.SpawnFloorMs <= 0:
		return fmt.Errorf("%w: hazards.spawn_floor_ms must be positive", ErrInvalidConfig)
	case c.Hazards.SpawnIntervalMs < c.Hazards.SpawnFloorMs:
		return fmt.Errorf("%w: hazards.spawn_interval_ms %d is below spawn_floor_ms %d",
			ErrInvalidConfig, c.Hazards.SpawnIntervalMs, c.Hazards.SpawnFloorMs)
	case c.Hazards.Reward <= 0:
		return fmt.Errorf("%w: hazards.reward must be positive, got %d", ErrInvalidConfig, c.Hazards.Reward)
	case c.Hazards.SpeedIncrement < 0 || c.Hazards.IntervalDecrementMs < 0:
		return fmt.Errorf("%w: hazard ramp values must not be negative", ErrInvalidConfig)
	case c.Collectibles.LifetimeMs < 0 || c.Collectibles.CooldownMs < 0 || c.Collectibles.FirstDelayMs < 0:
		return fmt.Errorf("%w: collectible timings must not be negative", ErrInvalidConfig)
	case c.Collectibles.Margin < 0:
		return fmt.Errorf("%w: collectibles.margin must not be negative", ErrInvalidConfig)
	case c.World.CellWidth <= 0 || c.World.CellHeight <= 0:
		return fmt.Errorf("%w: world cell size must be positive", ErrInvalidConfig)
	}
	return nil
}

// Settings converts the config into controller settings for a play area of
// areaW x areaH world units. Zero ramp values fall back to the controller
// defaults.
func (c GermSmashConfig) Settings(areaW, areaH float64) encounter.Settings {
	return encounter.Settings{
		GoalCount:             c.Session.Goal,
		InitialHazardSpeed:    c.Hazards.Speed,
		InitialSpawnInterval:  ms(c.Hazards.SpawnIntervalMs),
		SpawnFloor:            ms(c.Hazards.SpawnFloorMs),
		HazardReward:          c.Hazards.Reward,
		SpeedIncrement:        c.Hazards.SpeedIncrement,
		IntervalDecrement:     ms(c.Hazards.IntervalDecrementMs),
		CollectibleLifetime:   ms(c.Collectibles.LifetimeMs),
		CollectibleCooldown:   ms(c.Collectibles.CooldownMs),
		FirstCollectibleDelay: ms(c.Collectibles.FirstDelayMs),
		CollectibleMargin:     c.Collectibles.Margin,
		AreaWidth:             areaW,
		AreaHeight:            areaH,
		CollectibleName:       encounter.DefaultCollectibleName,
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Instructions returns the start-screen text for this variant.
func (c GermSmashConfig) Instructions() string {
	what := "vaccines"
	if c.Session.CollectibleName != "" {
		what = c.Session.CollectibleName + " vaccines"
	}
	return fmt.Sprintf("Collect %d %s to protect your classmate,\nand smash the germs along the way!",
		c.Session.Goal, what)
}
