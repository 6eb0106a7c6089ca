package encounter

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSettings is returned by StartSession for settings that violate
// the session contract.
var ErrInvalidSettings = errors.New("encounter: invalid settings")

// Outcome is the terminal state of a session.
type Outcome int

const (
	Ongoing Outcome = iota
	Lost
	Won
)

// String returns a lowercase name suitable for logs and storage.
func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Handle identifies an entity owned by the presentation collaborator.
// The zero Handle means "no entity".
type Handle uint64

// Label names a HUD text slot.
type Label string

const (
	LabelScore        Label = "score"
	LabelCollectibles Label = "collectibles"
)

// Sound names an effect the presentation collaborator can play.
type Sound int

const (
	SoundSmash Sound = iota // hazard destroyed
	SoundWin                // session won
	SoundFail               // session lost
)

// State is the mutable session state owned by the Controller.
type State struct {
	Score                int
	CollectiblesGathered int
	Outcome              Outcome
	HazardSpeed          float64       // world units per second
	HazardSpawnInterval  time.Duration // period of the hazard spawn timer
	CollectibleActive    bool
}

// Snapshot is the read-only view handed to HUD rendering.
type Snapshot struct {
	Score                int
	CollectiblesGathered int
	GoalCount            int
	Outcome              Outcome
	HazardSpeed          float64
	HazardSpawnInterval  time.Duration
	LiveHazards          int
}

// Settings configures one session.
type Settings struct {
	GoalCount            int
	InitialHazardSpeed   float64
	InitialSpawnInterval time.Duration
	SpawnFloor           time.Duration

	// Zero means the package default for each field below.
	HazardReward          int
	SpeedIncrement        float64
	IntervalDecrement     time.Duration
	CollectibleLifetime   time.Duration
	CollectibleCooldown   time.Duration
	FirstCollectibleDelay time.Duration
	CollectibleMargin     float64

	// Play area in world units. Hazards spawn on its boundary.
	AreaWidth  float64
	AreaHeight float64

	// CollectibleName is shown in the progress label, e.g. "Vaccines".
	CollectibleName string
}

// Default tuning values.
const (
	DefaultHazardReward          = 10
	DefaultSpeedIncrement        = 50.0
	DefaultIntervalDecrement     = 200 * time.Millisecond
	DefaultSpawnFloor            = 500 * time.Millisecond
	DefaultCollectibleLifetime   = 1000 * time.Millisecond
	DefaultCollectibleCooldown   = 2000 * time.Millisecond
	DefaultFirstCollectibleDelay = 2000 * time.Millisecond
	DefaultCollectibleMargin     = 50.0
	DefaultCollectibleName       = "Vaccines"
)

// DefaultSettings returns the flu variant settings on an
// 800x600 play area.
func DefaultSettings() Settings {
	return Settings{
		GoalCount:             3,
		InitialHazardSpeed:    100,
		InitialSpawnInterval:  1000 * time.Millisecond,
		SpawnFloor:            DefaultSpawnFloor,
		HazardReward:          DefaultHazardReward,
		SpeedIncrement:        DefaultSpeedIncrement,
		IntervalDecrement:     DefaultIntervalDecrement,
		CollectibleLifetime:   DefaultCollectibleLifetime,
		CollectibleCooldown:   DefaultCollectibleCooldown,
		FirstCollectibleDelay: DefaultFirstCollectibleDelay,
		CollectibleMargin:     DefaultCollectibleMargin,
		AreaWidth:             800,
		AreaHeight:            600,
		CollectibleName:       DefaultCollectibleName,
	}
}

// withDefaults fills zero-valued tunables. Session parameters
// (goal, speed, intervals, area) are left alone so Validate can reject them.
func (s Settings) withDefaults() Settings {
	if s.HazardReward == 0 {
		s.HazardReward = DefaultHazardReward
	}
	if s.SpeedIncrement == 0 {
		s.SpeedIncrement = DefaultSpeedIncrement
	}
	if s.IntervalDecrement == 0 {
		s.IntervalDecrement = DefaultIntervalDecrement
	}
	if s.CollectibleLifetime == 0 {
		s.CollectibleLifetime = DefaultCollectibleLifetime
	}
	if s.CollectibleCooldown == 0 {
		s.CollectibleCooldown = DefaultCollectibleCooldown
	}
	if s.FirstCollectibleDelay == 0 {
		s.FirstCollectibleDelay = DefaultFirstCollectibleDelay
	}
	if s.CollectibleName == "" {
		s.CollectibleName = DefaultCollectibleName
	}
	return s
}

// Validate reports the first contract violation in s.
func (s Settings) Validate() error {
	switch {
	case s.GoalCount < 1:
		return fmt.Errorf("%w: goal count must be at least 1, got %d", ErrInvalidSettings, s.GoalCount)
	case s.InitialHazardSpeed <= 0:
		return fmt.Errorf("%w: hazard speed must be positive, got %g", ErrInvalidSettings, s.InitialHazardSpeed)
	case s.SpawnFloor <= 0:
		return fmt.Errorf("%w: spawn floor must be positive, got %v", ErrInvalidSettings, s.SpawnFloor)
	case s.InitialSpawnInterval < s.SpawnFloor:
		return fmt.Errorf("%w: spawn interval %v is below floor %v", ErrInvalidSettings, s.InitialSpawnInterval, s.SpawnFloor)
	case s.HazardReward < 0:
		return fmt.Errorf("%w: hazard reward must not be negative, got %d", ErrInvalidSettings, s.HazardReward)
	case s.SpeedIncrement <= 0:
		return fmt.Errorf("%w: speed increment must be positive, got %g", ErrInvalidSettings, s.SpeedIncrement)
	case s.IntervalDecrement < 0:
		return fmt.Errorf("%w: interval decrement must not be negative, got %v", ErrInvalidSettings, s.IntervalDecrement)
	case s.CollectibleLifetime <= 0 || s.CollectibleCooldown <= 0 || s.FirstCollectibleDelay < 0:
		return fmt.Errorf("%w: collectible timings must be positive", ErrInvalidSettings)
	case s.AreaWidth <= 0 || s.AreaHeight <= 0:
		return fmt.Errorf("%w: play area %gx%g is empty", ErrInvalidSettings, s.AreaWidth, s.AreaHeight)
	case s.CollectibleMargin < 0 || 2*s.CollectibleMargin > s.AreaWidth || 2*s.CollectibleMargin > s.AreaHeight:
		return fmt.Errorf("%w: collectible margin %g leaves no interior in %gx%g",
			ErrInvalidSettings, s.CollectibleMargin, s.AreaWidth, s.AreaHeight)
	}
	return nil
}
