package encounter

import (
	"time"

	"github.com/vovakirdan/germ-smash/internal/timer"
)

// Presentation is the host runtime the controller drives: entity creation,
// motion, hit testing, HUD text, sound and scene transitions.
// Operations on destroyed or unknown handles must be no-ops.
type Presentation interface {
	CreateHazard(at Point) Handle
	CreateCollectible(at Point) Handle
	DestroyEntity(h Handle)

	// MoveEntityToward steers h toward target at speed world units per second.
	MoveEntityToward(h Handle, target Point, speed float64)
	EntityBoundsContain(h Handle, p Point) bool
	TargetPosition() Point

	// ShowSmash plays the destroyed-hazard visual at h's position.
	ShowSmash(h Handle)
	// HaltMotion freezes every entity in place.
	HaltMotion()

	SetText(label Label, text string)
	PlaySound(s Sound)
	TransitionToOutcome(o Outcome)
}

// Scheduler is the host timer service. *timer.Service satisfies it.
type Scheduler interface {
	ScheduleAfter(delay time.Duration, fn func()) timer.ID
	ScheduleEvery(interval time.Duration, fn func()) timer.ID
	Reconfigure(id timer.ID, interval time.Duration)
	Cancel(id timer.ID)
}

var _ Scheduler = (*timer.Service)(nil)
