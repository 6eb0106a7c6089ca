package encounter

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/germ-smash/internal/timer"
)

// fakeEntity is a square entity tracked by fakeView.
type fakeEntity struct {
	kind      string
	at        Point
	half      float64
	speed     float64
	destroyed bool
}

// fakeView records every call the controller makes.
type fakeView struct {
	next        Handle
	entities    map[Handle]*fakeEntity
	target      Point
	texts       map[Label]string
	sounds      []Sound
	smashed     []Handle
	transitions []Outcome
	halted      bool
}

func newFakeView() *fakeView {
	return &fakeView{
		entities: make(map[Handle]*fakeEntity),
		texts:    make(map[Label]string),
		target:   Point{X: 400, Y: 300},
	}
}

func (v *fakeView) create(kind string, at Point) Handle {
	v.next++
	v.entities[v.next] = &fakeEntity{kind: kind, at: at, half: 10}
	return v.next
}

func (v *fakeView) CreateHazard(at Point) Handle      { return v.create("hazard", at) }
func (v *fakeView) CreateCollectible(at Point) Handle { return v.create("collectible", at) }

func (v *fakeView) DestroyEntity(h Handle) {
	if e, ok := v.entities[h]; ok {
		e.destroyed = true
	}
}

func (v *fakeView) MoveEntityToward(h Handle, _ Point, speed float64) {
	if e, ok := v.entities[h]; ok && !e.destroyed {
		e.speed = speed
	}
}

func (v *fakeView) EntityBoundsContain(h Handle, p Point) bool {
	e, ok := v.entities[h]
	if !ok || e.destroyed {
		return false
	}
	return p.X >= e.at.X-e.half && p.X <= e.at.X+e.half &&
		p.Y >= e.at.Y-e.half && p.Y <= e.at.Y+e.half
}

func (v *fakeView) TargetPosition() Point            { return v.target }
func (v *fakeView) ShowSmash(h Handle)               { v.smashed = append(v.smashed, h) }
func (v *fakeView) HaltMotion()                      { v.halted = true }
func (v *fakeView) SetText(label Label, text string) { v.texts[label] = text }
func (v *fakeView) PlaySound(s Sound)                { v.sounds = append(v.sounds, s) }
func (v *fakeView) TransitionToOutcome(o Outcome)    { v.transitions = append(v.transitions, o) }

func (v *fakeView) live(kind string) []Handle {
	var out []Handle
	for h := Handle(1); h <= v.next; h++ {
		if e := v.entities[h]; e.kind == kind && !e.destroyed {
			out = append(out, h)
		}
	}
	return out
}

func newTestController(t *testing.T, s Settings) (*Controller, *fakeView, *timer.Service) {
	t.Helper()
	view := newFakeView()
	clock := timer.New()
	c := New(view, clock, rand.New(rand.NewSource(42)))
	if err := c.StartSession(s); err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	return c, view, clock
}

func TestStartSessionInitialState(t *testing.T) {
	c, view, clock := newTestController(t, DefaultSettings())

	st := c.State()
	if st.Score != 0 || st.CollectiblesGathered != 0 || st.CollectibleActive {
		t.Errorf("unexpected initial state: %+v", st)
	}
	if st.Outcome != Ongoing {
		t.Errorf("Outcome = %v, expected ongoing", st.Outcome)
	}
	if st.HazardSpeed != 100 || st.HazardSpawnInterval != time.Second {
		t.Errorf("speed/interval = %v/%v, expected 100/1s", st.HazardSpeed, st.HazardSpawnInterval)
	}
	if clock.Pending() != 2 {
		t.Errorf("Pending() = %d, expected spawn timer and first collectible", clock.Pending())
	}
	if view.texts[LabelScore] != "Score: 0" {
		t.Errorf("score label = %q", view.texts[LabelScore])
	}
	if view.texts[LabelCollectibles] != "Vaccines: 0/3" {
		t.Errorf("progress label = %q", view.texts[LabelCollectibles])
	}
}

func TestStartSessionRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero goal", func(s *Settings) { s.GoalCount = 0 }},
		{"negative goal", func(s *Settings) { s.GoalCount = -3 }},
		{"zero speed", func(s *Settings) { s.InitialHazardSpeed = 0 }},
		{"zero floor", func(s *Settings) { s.SpawnFloor = 0 }},
		{"interval below floor", func(s *Settings) { s.InitialSpawnInterval = 100 * time.Millisecond }},
		{"empty area", func(s *Settings) { s.AreaWidth = 0 }},
		{"margin too wide", func(s *Settings) { s.CollectibleMargin = 500 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(&s)

			clock := timer.New()
			c := New(newFakeView(), clock, nil)
			err := c.StartSession(s)
			if !errors.Is(err, ErrInvalidSettings) {
				t.Fatalf("StartSession() error = %v, expected ErrInvalidSettings", err)
			}
			if clock.Pending() != 0 {
				t.Errorf("rejected session scheduled %d timers", clock.Pending())
			}
		})
	}
}

func TestHazardSpawnOnBoundary(t *testing.T) {
	s := DefaultSettings()
	c, view, clock := newTestController(t, s)

	clock.Advance(20 * time.Second)

	hazards := view.live("hazard")
	if len(hazards) != 20 {
		t.Fatalf("expected 20 hazards after 20s at 1s interval, got %d", len(hazards))
	}
	for _, h := range hazards {
		p := view.entities[h].at
		onEdge := p.X == 0 || p.X == s.AreaWidth || p.Y == 0 || p.Y == s.AreaHeight
		if !onEdge {
			t.Errorf("hazard at (%g, %g) is not on the boundary", p.X, p.Y)
		}
		if p.X < 0 || p.X > s.AreaWidth || p.Y < 0 || p.Y > s.AreaHeight {
			t.Errorf("hazard at (%g, %g) is outside the play area", p.X, p.Y)
		}
	}
	if c.Snapshot().LiveHazards != 20 {
		t.Errorf("LiveHazards = %d, expected 20", c.Snapshot().LiveHazards)
	}
}

func TestEdgeSelectionIsUniformPerEdge(t *testing.T) {
	s := DefaultSettings()
	view := newFakeView()
	c := New(view, timer.New(), rand.New(rand.NewSource(7)))
	if err := c.StartSession(s); err != nil {
		t.Fatal(err)
	}

	counts := map[string]int{}
	const n = 4000
	for i := 0; i < n; i++ {
		c.OnHazardSpawnTick()
	}
	for _, h := range view.live("hazard") {
		p := view.entities[h].at
		switch {
		case p.Y == 0 && p.X != 0 && p.X != s.AreaWidth:
			counts["top"]++
		case p.Y == s.AreaHeight && p.X != 0 && p.X != s.AreaWidth:
			counts["bottom"]++
		case p.X == 0 && p.Y != 0 && p.Y != s.AreaHeight:
			counts["left"]++
		case p.X == s.AreaWidth && p.Y != 0 && p.Y != s.AreaHeight:
			counts["right"]++
		}
	}

	// Each edge should get about a quarter regardless of its length.
	for _, edge := range []string{"top", "bottom", "left", "right"} {
		if counts[edge] < n/4-200 || counts[edge] > n/4+200 {
			t.Errorf("edge %s got %d of %d spawns", edge, counts[edge], n)
		}
	}
}

func TestUpdateSteersHazardsAtCurrentSpeed(t *testing.T) {
	c, view, _ := newTestController(t, DefaultSettings())
	c.OnHazardSpawnTick()
	c.OnHazardSpawnTick()

	c.Update()
	for _, h := range view.live("hazard") {
		if view.entities[h].speed != 100 {
			t.Errorf("hazard %d speed = %g, expected 100", h, view.entities[h].speed)
		}
	}

	c.IncreaseDifficulty()
	c.Update()
	for _, h := range view.live("hazard") {
		if view.entities[h].speed != 150 {
			t.Errorf("hazard %d speed = %g after ramp, expected 150", h, view.entities[h].speed)
		}
	}
}

// Three collections with goal 3 win the session.
func TestCollectingGoalWins(t *testing.T) {
	s := DefaultSettings()
	s.GoalCount = 3
	c, view, clock := newTestController(t, s)

	for i := 1; i <= 3; i++ {
		if got := c.State().Outcome; got != Ongoing {
			t.Fatalf("outcome became %v before goal reached (after %d)", got, i-1)
		}
		c.OnCollectibleTapped()
		if got := c.State().CollectiblesGathered; got != i {
			t.Fatalf("CollectiblesGathered = %d, expected %d", got, i)
		}
	}

	if c.State().Outcome != Won {
		t.Errorf("Outcome = %v, expected won", c.State().Outcome)
	}
	if len(view.transitions) != 1 || view.transitions[0] != Won {
		t.Errorf("transitions = %v, expected [won]", view.transitions)
	}
	if !view.halted {
		t.Error("winning should halt motion")
	}
	if clock.Pending() != 0 {
		t.Errorf("winning left %d timers pending", clock.Pending())
	}

	// Further taps are ignored once the session is over.
	c.OnCollectibleTapped()
	if c.State().CollectiblesGathered != 3 {
		t.Errorf("CollectiblesGathered changed after win: %d", c.State().CollectiblesGathered)
	}
	if len(view.transitions) != 1 {
		t.Errorf("duplicate transition after win: %v", view.transitions)
	}
}

func TestCollectingThroughSpawnedEntities(t *testing.T) {
	s := DefaultSettings()
	s.GoalCount = 2
	c, view, clock := newTestController(t, s)

	clock.Advance(s.FirstCollectibleDelay)
	items := view.live("collectible")
	if len(items) != 1 {
		t.Fatalf("expected first collectible after %v, got %d", s.FirstCollectibleDelay, len(items))
	}

	c.OnTap(view.entities[items[0]].at)
	if c.State().CollectiblesGathered != 1 || c.State().CollectibleActive {
		t.Fatalf("tap did not collect: %+v", c.State())
	}
	if len(view.live("collectible")) != 0 {
		t.Error("collected entity was not destroyed")
	}

	// Next one arrives after the cooldown.
	clock.Advance(s.CollectibleCooldown)
	items = view.live("collectible")
	if len(items) != 1 {
		t.Fatalf("expected second collectible after cooldown, got %d", len(items))
	}
	c.OnTap(view.entities[items[0]].at)

	if c.State().Outcome != Won {
		t.Errorf("Outcome = %v, expected won", c.State().Outcome)
	}
}

// stackUnderCollectible spawns n hazards and moves them onto the active
// collectible. Handles are returned oldest first.
func stackUnderCollectible(t *testing.T, c *Controller, view *fakeView, n int) (Handle, []Handle) {
	t.Helper()
	c.SpawnCollectible()
	items := view.live("collectible")
	if len(items) != 1 {
		t.Fatalf("expected one collectible, got %d", len(items))
	}
	at := view.entities[items[0]].at
	for i := 0; i < n; i++ {
		c.OnHazardSpawnTick()
	}
	germs := view.live("hazard")
	if len(germs) != n {
		t.Fatalf("expected %d hazards, got %d", n, len(germs))
	}
	for _, h := range germs {
		view.entities[h].at = at
	}
	return items[0], germs
}

func TestStackedTapCollectsThenSmashesOldest(t *testing.T) {
	s := DefaultSettings()
	s.GoalCount = 2
	c, view, _ := newTestController(t, s)
	item, germs := stackUnderCollectible(t, c, view, 2)

	c.OnTap(view.entities[item].at)

	st := c.State()
	if st.CollectiblesGathered != 1 || st.CollectibleActive {
		t.Fatalf("tap did not collect: %+v", st)
	}
	if st.Score != s.HazardReward {
		t.Errorf("Score = %d, expected %d for one smash", st.Score, s.HazardReward)
	}
	if !view.entities[item].destroyed {
		t.Error("collectible survived the tap")
	}
	if !view.entities[germs[0]].destroyed {
		t.Error("oldest hazard under the tap was not smashed")
	}
	if view.entities[germs[1]].destroyed {
		t.Error("younger hazard was smashed by the same tap")
	}
	if len(view.smashed) != 1 || view.smashed[0] != germs[0] {
		t.Errorf("smashed = %v, expected [%d]", view.smashed, germs[0])
	}
	if st.Outcome != Ongoing {
		t.Errorf("Outcome = %v, expected ongoing", st.Outcome)
	}
}

func TestWinningTapSmashesNothing(t *testing.T) {
	s := DefaultSettings()
	s.GoalCount = 1
	c, view, clock := newTestController(t, s)
	item, germs := stackUnderCollectible(t, c, view, 1)

	c.OnTap(view.entities[item].at)

	st := c.State()
	if st.Outcome != Won {
		t.Fatalf("Outcome = %v, expected won", st.Outcome)
	}
	if st.Score != 0 {
		t.Errorf("Score = %d, expected 0: the winning tap must not smash", st.Score)
	}
	if view.entities[germs[0]].destroyed || len(view.smashed) != 0 {
		t.Errorf("hazard smashed after the win: smashed = %v", view.smashed)
	}
	if !view.entities[item].destroyed {
		t.Error("collectible survived the winning tap")
	}
	if clock.Pending() != 0 {
		t.Errorf("winning left %d timers pending", clock.Pending())
	}
}

func TestCollectiblePositionRespectsMargin(t *testing.T) {
	s := DefaultSettings()
	c, view, _ := newTestController(t, s)

	for i := 0; i < 200; i++ {
		c.SpawnCollectible()
		h := view.live("collectible")[0]
		p := view.entities[h].at
		if p.X < s.CollectibleMargin || p.X > s.AreaWidth-s.CollectibleMargin ||
			p.Y < s.CollectibleMargin || p.Y > s.AreaHeight-s.CollectibleMargin {
			t.Fatalf("collectible at (%g, %g) violates margin %g", p.X, p.Y, s.CollectibleMargin)
		}
		c.OnCollectibleExpired()
	}
}

// A second loss trigger changes nothing.
func TestHazardReachedTargetIsIdempotent(t *testing.T) {
	c, view, clock := newTestController(t, DefaultSettings())
	c.OnHazardSpawnTick()

	c.OnHazardReachedTarget()
	if c.State().Outcome != Lost {
		t.Fatalf("Outcome = %v, expected lost", c.State().Outcome)
	}
	before := c.State()
	soundsBefore := len(view.sounds)

	c.OnHazardReachedTarget()

	if c.State() != before {
		t.Errorf("state changed on duplicate trigger: %+v -> %+v", before, c.State())
	}
	if len(view.transitions) != 1 || view.transitions[0] != Lost {
		t.Errorf("transitions = %v, expected exactly [lost]", view.transitions)
	}
	if len(view.sounds) != soundsBefore {
		t.Error("duplicate trigger played another sound")
	}
	if view.sounds[len(view.sounds)-1] != SoundFail {
		t.Errorf("last sound = %v, expected fail", view.sounds[len(view.sounds)-1])
	}
	if clock.Pending() != 0 {
		t.Errorf("loss left %d timers pending", clock.Pending())
	}
}

func TestTerminalSessionIgnoresCallbacks(t *testing.T) {
	c, view, _ := newTestController(t, DefaultSettings())
	c.OnHazardSpawnTick()
	h := view.live("hazard")[0]
	c.OnHazardReachedTarget()

	before := c.State()
	c.OnHazardSpawnTick()
	c.SpawnCollectible()
	c.OnCollectibleExpired()
	c.OnCollectibleTapped()
	if c.OnHazardTapped(view.entities[h].at) {
		t.Error("tap smashed a hazard after the session ended")
	}
	c.OnTap(view.entities[h].at)
	c.Update()

	if c.State() != before {
		t.Errorf("state mutated after loss: %+v -> %+v", before, c.State())
	}
	if len(view.live("hazard")) != 1 || len(view.live("collectible")) != 0 {
		t.Error("entities were created or destroyed after the session ended")
	}
}

// When hazards overlap, a tap removes only the oldest.
func TestHazardTapRemovesOldestMatch(t *testing.T) {
	c, view, _ := newTestController(t, DefaultSettings())

	c.OnHazardSpawnTick()
	c.OnHazardSpawnTick()
	hs := view.live("hazard")
	// Stack both hazards on the same spot.
	view.entities[hs[0]].at = Point{X: 200, Y: 200}
	view.entities[hs[1]].at = Point{X: 205, Y: 200}

	if !c.OnHazardTapped(Point{X: 203, Y: 201}) {
		t.Fatal("tap inside both hazards missed")
	}

	if c.State().Score != 10 {
		t.Errorf("Score = %d, expected 10", c.State().Score)
	}
	if !view.entities[hs[0]].destroyed {
		t.Error("oldest hazard should be destroyed")
	}
	if view.entities[hs[1]].destroyed {
		t.Error("only one hazard should be destroyed")
	}
	if len(view.smashed) != 1 || view.smashed[0] != hs[0] {
		t.Errorf("smashed = %v, expected [%d]", view.smashed, hs[0])
	}
	if view.sounds[len(view.sounds)-1] != SoundSmash {
		t.Error("smash sound not played")
	}
	if view.texts[LabelScore] != "Score: 10" {
		t.Errorf("score label = %q", view.texts[LabelScore])
	}
	if c.Snapshot().LiveHazards != 1 {
		t.Errorf("LiveHazards = %d, expected 1", c.Snapshot().LiveHazards)
	}
}

func TestHazardTapMiss(t *testing.T) {
	c, view, _ := newTestController(t, DefaultSettings())
	c.OnHazardSpawnTick()
	view.entities[view.live("hazard")[0]].at = Point{X: 100, Y: 100}

	if c.OnHazardTapped(Point{X: 300, Y: 300}) {
		t.Error("tap far from hazard reported a hit")
	}
	if c.State().Score != 0 {
		t.Errorf("Score = %d after miss", c.State().Score)
	}

	// A second tap on a just-destroyed hazard must be a no-op.
	c.OnHazardTapped(Point{X: 100, Y: 100})
	if c.OnHazardTapped(Point{X: 100, Y: 100}) {
		t.Error("tap on destroyed hazard reported a hit")
	}
	if c.State().Score != 10 {
		t.Errorf("Score = %d, expected 10", c.State().Score)
	}
}

func TestSingleCollectibleAtATime(t *testing.T) {
	c, view, _ := newTestController(t, DefaultSettings())

	c.SpawnCollectible()
	c.SpawnCollectible()

	if n := len(view.live("collectible")); n != 1 {
		t.Errorf("expected 1 active collectible, got %d", n)
	}
	if !c.State().CollectibleActive {
		t.Error("CollectibleActive should be true")
	}
}

// Expiry destroys the collectible and schedules the next spawn.
func TestCollectibleExpiry(t *testing.T) {
	s := DefaultSettings()
	c, view, clock := newTestController(t, s)

	clock.Advance(s.FirstCollectibleDelay)
	if len(view.live("collectible")) != 1 {
		t.Fatal("first collectible not spawned")
	}

	clock.Advance(s.CollectibleLifetime)
	if n := len(view.live("collectible")); n != 0 {
		t.Fatalf("collectible survived its lifetime, %d active", n)
	}
	if c.State().CollectibleActive || c.State().CollectiblesGathered != 0 {
		t.Errorf("unexpected state after expiry: %+v", c.State())
	}

	due, ok := clock.Due(c.collectibleTimer)
	if !ok {
		t.Fatal("next collectible spawn not scheduled")
	}
	if want := clock.Now() + 2000*time.Millisecond; due != want {
		t.Errorf("next spawn due at %v, expected %v", due, want)
	}

	clock.Advance(s.CollectibleCooldown)
	if len(view.live("collectible")) != 1 {
		t.Error("collectible not respawned after cooldown")
	}
}

func TestDirectExpiryCall(t *testing.T) {
	c, view, clock := newTestController(t, DefaultSettings())
	c.SpawnCollectible()

	c.OnCollectibleExpired()

	if len(view.live("collectible")) != 0 {
		t.Error("collectible not destroyed")
	}
	if c.State().CollectiblesGathered != 0 {
		t.Error("expiry must not count as collection")
	}
	due, ok := clock.Due(c.collectibleTimer)
	if !ok || due != clock.Now()+2*time.Second {
		t.Errorf("next spawn due = %v, %v; expected +2s", due, ok)
	}
	if c.expiryTimer != 0 {
		t.Error("expiry timer should be cleared")
	}
}

func TestStaleExpiryAfterTapIsIgnored(t *testing.T) {
	s := DefaultSettings()
	s.GoalCount = 5
	c, view, clock := newTestController(t, s)

	c.SpawnCollectible()
	first := view.live("collectible")[0]
	c.OnTap(view.entities[first].at)

	// Cooldown (2s) is longer than lifetime (1s): the old expiry must not fire
	// against anything, and the next collectible should get its full lifetime.
	clock.Advance(s.CollectibleCooldown)
	items := view.live("collectible")
	if len(items) != 1 {
		t.Fatalf("expected one new collectible, got %d", len(items))
	}
	clock.Advance(s.CollectibleLifetime - time.Millisecond)
	if len(view.live("collectible")) != 1 {
		t.Error("new collectible expired early")
	}
	if c.State().CollectiblesGathered != 1 {
		t.Errorf("CollectiblesGathered = %d, expected 1", c.State().CollectiblesGathered)
	}
}

// Repeated ramps never push the interval below the floor.
func TestIncreaseDifficultyClampsInterval(t *testing.T) {
	c, _, _ := newTestController(t, DefaultSettings())

	expected := []time.Duration{800, 600, 500, 500}
	prevSpeed := c.State().HazardSpeed
	for i, want := range expected {
		c.IncreaseDifficulty()
		st := c.State()
		if st.HazardSpawnInterval != want*time.Millisecond {
			t.Errorf("call %d: interval = %v, expected %v", i+1, st.HazardSpawnInterval, want*time.Millisecond)
		}
		if st.HazardSpeed <= prevSpeed {
			t.Errorf("call %d: speed %g did not increase from %g", i+1, st.HazardSpeed, prevSpeed)
		}
		if st.HazardSpeed != prevSpeed+50 {
			t.Errorf("call %d: speed = %g, expected +50", i+1, st.HazardSpeed)
		}
		prevSpeed = st.HazardSpeed
	}
}

func TestIncreaseDifficultyReconfiguresSpawnTimer(t *testing.T) {
	c, view, clock := newTestController(t, DefaultSettings())

	// Half way into the first 1s wait the interval drops to 800ms; the
	// in-flight wait still ends at 1s.
	clock.Advance(500 * time.Millisecond)
	c.IncreaseDifficulty()

	clock.Advance(499 * time.Millisecond)
	if n := len(view.live("hazard")); n != 0 {
		t.Fatalf("spawned %d hazards before first 1s wait ended", n)
	}
	clock.Advance(1 * time.Millisecond)
	if n := len(view.live("hazard")); n != 1 {
		t.Fatalf("expected first spawn at 1s, got %d hazards", n)
	}
	clock.Advance(800 * time.Millisecond)
	if n := len(view.live("hazard")); n != 2 {
		t.Errorf("expected second spawn 800ms later, got %d hazards", n)
	}
}

func TestRestartCancelsPreviousTimers(t *testing.T) {
	s := DefaultSettings()
	c, view, clock := newTestController(t, s)

	clock.Advance(2500 * time.Millisecond) // two hazards and one collectible
	if err := c.StartSession(s); err != nil {
		t.Fatal(err)
	}

	if clock.Pending() != 2 {
		t.Errorf("Pending() = %d after restart, expected 2 fresh timers", clock.Pending())
	}
	if len(view.live("hazard")) != 0 || len(view.live("collectible")) != 0 {
		t.Error("restart should destroy entities from the previous session")
	}
	st := c.State()
	if st.Score != 0 || st.CollectiblesGathered != 0 || st.CollectibleActive || st.Outcome != Ongoing {
		t.Errorf("state not reset: %+v", st)
	}

	// The old collectible's expiry must not touch the new session.
	clock.Advance(999 * time.Millisecond)
	if len(view.live("hazard")) != 0 {
		t.Error("stale spawn timer fired after restart")
	}
}

func TestRestartAfterLoss(t *testing.T) {
	s := DefaultSettings()
	c, view, _ := newTestController(t, s)
	c.OnHazardReachedTarget()

	if err := c.StartSession(s); err != nil {
		t.Fatal(err)
	}
	if c.State().Outcome != Ongoing {
		t.Errorf("Outcome = %v after restart", c.State().Outcome)
	}
	c.OnHazardReachedTarget()
	if len(view.transitions) != 2 {
		t.Errorf("expected one transition per session, got %v", view.transitions)
	}
}

func TestCallbacksBeforeStartAreNoOps(t *testing.T) {
	view := newFakeView()
	c := New(view, timer.New(), nil)

	c.OnHazardSpawnTick()
	c.SpawnCollectible()
	c.OnCollectibleTapped()
	c.OnHazardReachedTarget()

	if len(view.entities) != 0 || len(view.transitions) != 0 {
		t.Error("controller acted before StartSession")
	}
}

func TestOutcomeString(t *testing.T) {
	if Ongoing.String() != "ongoing" || Lost.String() != "lost" || Won.String() != "won" {
		t.Error("unexpected Outcome strings")
	}
	if Outcome(99).String() != "unknown" {
		t.Error("unknown outcome should stringify as unknown")
	}
}
