package config

import (
	"embed"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Variant IDs with embedded defaults.
const (
	VariantFlu     = "flu"
	VariantMeasles = "measles"
	VariantBooster = "booster"
)

var defaultMessages = []string{
	"Washing your hands for 20 seconds removes most germs.",
	"Vaccines teach your immune system to recognise germs before they make you sick.",
	"Cover your cough with your elbow to keep germs from spreading.",
	"Staying home when you are sick protects your classmates.",
	"When enough people are vaccinated, the whole class is protected.",
}

// DefaultConfig returns the hard-coded configuration of a variant. Unknown
// IDs get the flu settings.
func DefaultConfig(id string) GermSmashConfig {
	cfg := GermSmashConfig{
		Title: "Flu Season",
		Session: SessionConfig{
			Goal:            3,
			CollectibleName: "Flu",
		},
		Hazards: HazardConfig{
			Speed:               100,
			SpeedIncrement:      50,
			SpawnIntervalMs:     1000,
			IntervalDecrementMs: 200,
			SpawnFloorMs:        500,
			Reward:              10,
		},
		Collectibles: CollectibleConfig{
			LifetimeMs:   1000,
			CooldownMs:   2000,
			FirstDelayMs: 2000,
			Margin:       50,
		},
		World: WorldConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Messages: append([]string(nil), defaultMessages...),
		Difficulty: DifficultySettings{
			EasyScale: defaultEasyScale,
			HardScale: defaultHardScale,
		},
	}

	switch id {
	case VariantMeasles:
		cfg.Title = "Measles Outbreak"
		cfg.Session = SessionConfig{Goal: 5, CollectibleName: "MMR"}
		cfg.Hazards.Speed = 90
		cfg.Hazards.SpawnIntervalMs = 1100
	case VariantBooster:
		cfg.Title = "Booster Rush"
		cfg.Session = SessionConfig{Goal: 3, CollectibleName: "Booster"}
		cfg.Hazards.Speed = 130
		cfg.Hazards.SpawnIntervalMs = 900
	}
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a variant, or nil.
func GetDefaultYAML(id string) []byte {
	data, err := defaultsFS.ReadFile("defaults/" + id + ".yaml")
	if err != nil {
		return nil
	}
	return data
}
