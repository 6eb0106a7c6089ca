// Package encounter implements the spawn, collection and win/lose loop of a
// germ smashing session. The Controller owns the session state and drives an
// injected Presentation and Scheduler; it has no terminal, audio or storage
// dependencies so the game logic stays pure and testable.
package encounter

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/germ-smash/internal/timer"
)

// Controller drives one session at a time from start to a terminal outcome.
// All methods must be called from the host's single update goroutine.
type Controller struct {
	view   Presentation
	sched  Scheduler
	rng    *rand.Rand
	logger *log.Logger

	settings Settings
	state    State
	started  bool

	hazards     []Handle // live hazards, oldest first
	collectible Handle   // active collectible, zero if none

	spawnTimer       timer.ID // periodic hazard spawn
	expiryTimer      timer.ID // active collectible timeout
	collectibleTimer timer.ID // pending SpawnCollectible
}

// New creates a controller. A nil rng falls back to a fixed seed.
func New(view Presentation, sched Scheduler, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Controller{
		view:   view,
		sched:  sched,
		rng:    rng,
		logger: log.Default().WithPrefix("encounter"),
	}
}

// SetLogger replaces the controller's logger.
func (c *Controller) SetLogger(l *log.Logger) {
	if l != nil {
		c.logger = l
	}
}

// StartSession resets the state and begins a new session. Timers and
// entities left over from a previous session are cancelled and destroyed.
func (c *Controller) StartSession(s Settings) error {
	s = s.withDefaults()
	if err := s.Validate(); err != nil {
		return err
	}

	c.Stop()
	for _, h := range c.hazards {
		c.view.DestroyEntity(h)
	}
	c.hazards = c.hazards[:0]
	if c.collectible != 0 {
		c.view.DestroyEntity(c.collectible)
		c.collectible = 0
	}

	c.settings = s
	c.state = State{
		Outcome:             Ongoing,
		HazardSpeed:         s.InitialHazardSpeed,
		HazardSpawnInterval: s.InitialSpawnInterval,
	}
	c.started = true

	c.spawnTimer = c.sched.ScheduleEvery(s.InitialSpawnInterval, c.OnHazardSpawnTick)
	c.collectibleTimer = c.sched.ScheduleAfter(s.FirstCollectibleDelay, c.spawnScheduledCollectible)

	c.refreshScore()
	c.refreshProgress()

	c.logger.Debug("session started",
		"goal", s.GoalCount,
		"speed", s.InitialHazardSpeed,
		"interval", s.InitialSpawnInterval,
	)
	return nil
}

// Stop cancels every pending timer without changing the outcome.
func (c *Controller) Stop() {
	c.cancel(&c.spawnTimer)
	c.cancel(&c.expiryTimer)
	c.cancel(&c.collectibleTimer)
}

func (c *Controller) cancel(id *timer.ID) {
	if *id != 0 {
		c.sched.Cancel(*id)
		*id = 0
	}
}

func (c *Controller) ongoing() bool {
	return c.started && c.state.Outcome == Ongoing
}

// OnHazardSpawnTick creates one hazard on the play-area boundary. The edge
// is chosen uniformly first, then the position along it.
func (c *Controller) OnHazardSpawnTick() {
	if !c.ongoing() {
		return
	}
	at := c.randomEdgePoint()
	h := c.view.CreateHazard(at)
	c.hazards = append(c.hazards, h)
	c.logger.Debug("hazard spawned", "x", at.X, "y", at.Y, "live", len(c.hazards))
}

func (c *Controller) randomEdgePoint() Point {
	w, h := c.settings.AreaWidth, c.settings.AreaHeight
	switch c.rng.Intn(4) {
	case 0: // top
		return Point{X: c.between(0, w), Y: 0}
	case 1: // bottom
		return Point{X: c.between(0, w), Y: h}
	case 2: // left
		return Point{X: 0, Y: c.between(0, h)}
	default: // right
		return Point{X: w, Y: c.between(0, h)}
	}
}

// between returns a uniform integer-valued position in [lo, hi].
func (c *Controller) between(lo, hi float64) float64 {
	span := int(hi - lo)
	if span <= 0 {
		return lo
	}
	return lo + float64(c.rng.Intn(span+1))
}

// Update steers every live hazard toward the target at the current speed.
// The host calls it once per frame before integrating motion.
func (c *Controller) Update() {
	if !c.ongoing() || len(c.hazards) == 0 {
		return
	}
	target := c.view.TargetPosition()
	for _, h := range c.hazards {
		c.view.MoveEntityToward(h, target, c.state.HazardSpeed)
	}
}

// OnHazardReachedTarget ends the session as lost. Only the first call while
// the session is ongoing has any effect.
func (c *Controller) OnHazardReachedTarget() {
	if !c.ongoing() {
		return
	}
	c.finish(Lost)
}

// OnTap routes a tap: the active collectible sees it first, then hazards.
func (c *Controller) OnTap(p Point) {
	if !c.ongoing() {
		return
	}
	if c.state.CollectibleActive && c.view.EntityBoundsContain(c.collectible, p) {
		c.OnCollectibleTapped()
	}
	c.OnHazardTapped(p)
}

// OnHazardTapped smashes the oldest hazard whose bounds contain p and
// reports whether one was hit.
func (c *Controller) OnHazardTapped(p Point) bool {
	if !c.ongoing() {
		return false
	}
	for i, h := range c.hazards {
		if !c.view.EntityBoundsContain(h, p) {
			continue
		}
		c.hazards = append(c.hazards[:i], c.hazards[i+1:]...)
		c.view.ShowSmash(h)
		c.view.DestroyEntity(h)
		c.view.PlaySound(SoundSmash)
		c.state.Score += c.settings.HazardReward
		c.refreshScore()
		return true
	}
	return false
}

// SpawnCollectible places a collectible at a random interior position unless
// one is already active or the session is over.
func (c *Controller) SpawnCollectible() {
	if c.state.CollectibleActive || !c.ongoing() {
		return
	}
	m := c.settings.CollectibleMargin
	at := Point{
		X: c.between(m, c.settings.AreaWidth-m),
		Y: c.between(m, c.settings.AreaHeight-m),
	}
	h := c.view.CreateCollectible(at)
	c.collectible = h
	c.state.CollectibleActive = true

	c.cancel(&c.expiryTimer)
	c.expiryTimer = c.sched.ScheduleAfter(c.settings.CollectibleLifetime, func() {
		c.expire(h)
	})
}

func (c *Controller) spawnScheduledCollectible() {
	c.collectibleTimer = 0
	c.SpawnCollectible()
}

// expire handles the timeout armed for collectible h. A timeout for a
// collectible that was already tapped or replaced does nothing.
func (c *Controller) expire(h Handle) {
	c.expiryTimer = 0
	if c.collectible != h {
		return
	}
	c.OnCollectibleExpired()
}

// OnCollectibleExpired removes an untapped collectible and schedules the next.
func (c *Controller) OnCollectibleExpired() {
	if !c.state.CollectibleActive || !c.ongoing() {
		return
	}
	c.cancel(&c.expiryTimer)
	c.view.DestroyEntity(c.collectible)
	c.collectible = 0
	c.state.CollectibleActive = false
	c.scheduleNextCollectible()
}

// OnCollectibleTapped counts a collected item, ramps the difficulty and
// either wins the session or schedules the next collectible.
func (c *Controller) OnCollectibleTapped() {
	if !c.ongoing() {
		return
	}
	c.cancel(&c.expiryTimer)
	if c.collectible != 0 {
		c.view.DestroyEntity(c.collectible)
		c.collectible = 0
	}
	c.state.CollectibleActive = false
	c.state.CollectiblesGathered++
	c.refreshProgress()

	c.IncreaseDifficulty()

	if c.state.CollectiblesGathered >= c.settings.GoalCount {
		c.finish(Won)
		return
	}
	c.scheduleNextCollectible()
}

func (c *Controller) scheduleNextCollectible() {
	c.cancel(&c.collectibleTimer)
	c.collectibleTimer = c.sched.ScheduleAfter(c.settings.CollectibleCooldown, c.spawnScheduledCollectible)
}

// IncreaseDifficulty speeds hazards up and shortens the spawn interval down
// to the floor. The new interval applies from the next spawn on.
func (c *Controller) IncreaseDifficulty() {
	c.state.HazardSpeed += c.settings.SpeedIncrement

	next := c.state.HazardSpawnInterval - c.settings.IntervalDecrement
	if next < c.settings.SpawnFloor {
		next = c.settings.SpawnFloor
	}
	c.state.HazardSpawnInterval = next

	if c.spawnTimer != 0 {
		c.sched.Reconfigure(c.spawnTimer, next)
	}
	c.logger.Debug("difficulty increased", "speed", c.state.HazardSpeed, "interval", next)
}

// finish moves the session to a terminal outcome exactly once.
func (c *Controller) finish(o Outcome) {
	c.state.Outcome = o
	c.view.HaltMotion()
	c.Stop()

	if o == Won {
		c.view.PlaySound(SoundWin)
	} else {
		c.view.PlaySound(SoundFail)
	}
	c.view.TransitionToOutcome(o)

	c.logger.Info("session ended",
		"outcome", o,
		"score", c.state.Score,
		"collected", c.state.CollectiblesGathered,
		"goal", c.settings.GoalCount,
	)
}

func (c *Controller) refreshScore() {
	c.view.SetText(LabelScore, fmt.Sprintf("Score: %d", c.state.Score))
}

func (c *Controller) refreshProgress() {
	c.view.SetText(LabelCollectibles, fmt.Sprintf("%s: %d/%d",
		c.settings.CollectibleName, c.state.CollectiblesGathered, c.settings.GoalCount))
}

// State returns a copy of the session state.
func (c *Controller) State() State {
	return c.state
}

// Settings returns the settings of the current session.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Snapshot returns the read-only HUD view of the session.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Score:                c.state.Score,
		CollectiblesGathered: c.state.CollectiblesGathered,
		GoalCount:            c.settings.GoalCount,
		Outcome:              c.state.Outcome,
		HazardSpeed:          c.state.HazardSpeed,
		HazardSpawnInterval:  c.state.HazardSpawnInterval,
		LiveHazards:          len(c.hazards),
	}
}
