package config

import "math"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Default preset multipliers, used when the config leaves them at zero.
const (
	defaultEasyScale = 0.75
	defaultHardScale = 1.3
)

// ParsePreset maps a CLI string to a preset. Unknown values are normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// ScaleForPreset returns the speed multiplier the preset applies.
func (d DifficultySettings) ScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		if d.EasyScale > 0 {
			return d.EasyScale
		}
		return defaultEasyScale
	case DifficultyHard:
		if d.HardScale > 0 {
			return d.HardScale
		}
		return defaultHardScale
	default:
		return 1
	}
}

// ApplyPreset scales the starting germ speed up and the spawn interval down
// by the preset multiplier. The interval never drops below the spawn floor.
func ApplyPreset(cfg *GermSmashConfig, preset DifficultyPreset) {
	k := cfg.Difficulty.ScaleForPreset(preset)
	if k == 1 {
		return
	}
	cfg.Hazards.Speed = math.Round(cfg.Hazards.Speed * k)

	interval := int(math.Round(float64(cfg.Hazards.SpawnIntervalMs) / k))
	if interval < cfg.Hazards.SpawnFloorMs {
		interval = cfg.Hazards.SpawnFloorMs
	}
	cfg.Hazards.SpawnIntervalMs = interval
}
