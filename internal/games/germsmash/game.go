// Package germsmash is the terminal host for the germ smashing encounter:
// a start screen, the play scene driven by encounter.Controller and an end
// screen with a restart button.
package germsmash

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/germ-smash/internal/config"
	"github.com/vovakirdan/germ-smash/internal/core"
	"github.com/vovakirdan/germ-smash/internal/encounter"
	"github.com/vovakirdan/germ-smash/internal/registry"
	"github.com/vovakirdan/germ-smash/internal/timer"
)

// Scene is the screen the game is showing.
type Scene int

const (
	SceneStart Scene = iota
	ScenePlay
	SceneEnd
)

func (s Scene) String() string {
	switch s {
	case SceneStart:
		return "start"
	case ScenePlay:
		return "play"
	case SceneEnd:
		return "end"
	default:
		return "unknown"
	}
}

const (
	minScreenW = 30
	minScreenH = 12
	tinyGerms  = 50
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// sounder receives effects from every game created after SetSounder.
var sounder Sounder

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetSounder sets the audio sink used by new games. nil mutes them.
func SetSounder(s Sounder) {
	sounder = s
}

type tinyGerm struct {
	x, y  int
	color core.Color
}

// Game hosts one variant.
type Game struct {
	id      string
	cfg     config.GermSmashConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	logger  *log.Logger

	clock *timer.Service
	world *World
	ctrl  *encounter.Controller

	scene    Scene
	paused   bool
	tick     time.Duration
	elapsed  time.Duration
	notice   string // shown on the start screen, e.g. a too-small terminal
	message  string
	germs    []tinyGerm
	button   core.Rect
	outcome  encounter.Outcome
	sessions int
}

// New creates a game for variant id.
func New(id string) *Game {
	return &Game{
		id:     id,
		cfg:    config.DefaultConfig(id),
		logger: log.Default().WithPrefix(id),
	}
}

func (g *Game) ID() string { return g.id }

func (g *Game) Title() string { return g.cfg.Title }

// Reset loads the variant config and returns to the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	cfg, err := config.Load(g.id, configPath)
	if err != nil {
		g.logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultConfig(g.id)
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = time.Second / time.Duration(runtime.TickRate)

	g.clock = timer.New()
	g.world = nil
	g.ensureWorld()

	g.scene = SceneStart
	g.paused = false
	g.elapsed = 0
	g.notice = ""
	g.message = ""
	g.germs = nil
	g.outcome = encounter.Ongoing
	g.sessions = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.scene {
	case SceneStart:
		if in.Has(core.ActionConfirm) || g.tapped(in, g.beginButton()) {
			g.startSession()
		}
	case ScenePlay:
		g.stepPlay(in)
	case SceneEnd:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) || g.tapped(in, g.button) {
			g.startSession()
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlay(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.elapsed += g.tick
	g.clock.Advance(g.tick)
	g.ctrl.Update()
	g.world.Step(g.tick)
	if g.world.Overlaps() > 0 {
		g.ctrl.OnHazardReachedTarget()
	}
	for _, t := range in.Taps {
		g.ctrl.OnTap(g.world.CellCenter(t.X, t.Y))
	}

	if o, ok := g.world.Transitioned(); ok {
		g.enterEnd(o)
	}
}

// startSession begins a fresh session with fresh timers and a new portrait.
func (g *Game) startSession() {
	if g.runtime.ScreenW < minScreenW || g.runtime.ScreenH < minScreenH {
		g.notice = "Terminal too small to play"
		g.scene = SceneStart
		return
	}

	g.clock.CancelAll()
	g.ensureWorld()
	g.world.Reset(portraits[g.rng.Intn(len(portraits))])

	settings := g.cfg.Settings(g.world.Width(), g.world.Height())
	if err := g.ctrl.StartSession(settings); err != nil {
		g.logger.Error("cannot start session", "err", err)
		g.notice = "Cannot start: invalid configuration"
		g.scene = SceneStart
		return
	}

	g.notice = ""
	g.scene = ScenePlay
	g.paused = false
	g.elapsed = 0
	g.outcome = encounter.Ongoing
	g.sessions++
}

// ensureWorld builds the field and its controller unless the current one
// already matches the terminal size.
func (g *Game) ensureWorld() {
	cw, ch := g.cfg.World.CellWidth, g.cfg.World.CellHeight
	w, h := float64(g.runtime.ScreenW)*cw, float64(g.runtime.ScreenH)*ch
	if g.world != nil && g.world.Width() == w && g.world.Height() == h {
		return
	}
	g.world = NewWorld(g.runtime.ScreenW, g.runtime.ScreenH, cw, ch, sounder)
	g.ctrl = encounter.New(g.world, g.clock, g.rng)
	g.ctrl.SetLogger(g.logger)
}

func (g *Game) enterEnd(o encounter.Outcome) {
	g.scene = SceneEnd
	g.outcome = o

	st := g.ctrl.State()
	g.logger.Debug("session over",
		"outcome", o,
		"collected", st.CollectiblesGathered,
		"goal", g.ctrl.Settings().GoalCount,
		"speed", st.HazardSpeed,
		"interval", st.HazardSpawnInterval,
		"elapsed", g.elapsed,
	)
	if n := len(g.cfg.Messages); n > 0 {
		g.message = g.cfg.Messages[g.rng.Intn(n)]
	} else {
		g.message = ""
	}

	g.scatterGerms()
	g.button = g.endButton()
}

func (g *Game) scatterGerms() {
	g.germs = g.germs[:0]
	for range tinyGerms {
		g.germs = append(g.germs, tinyGerm{
			x:     g.rng.Intn(max(g.runtime.ScreenW, 1)),
			y:     g.rng.Intn(max(g.runtime.ScreenH, 1)),
			color: core.GermColors[g.rng.Intn(len(core.GermColors))],
		})
	}
}

// Resize relays out the end screen for a w x h terminal without leaving
// it. Other scenes are restarted through Reset.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	if g.scene != SceneEnd {
		return
	}
	g.scatterGerms()
	g.button = g.endButton()
}

func (g *Game) tapped(in core.InputFrame, r core.Rect) bool {
	for _, t := range in.Taps {
		if r.Contains(t.X, t.Y) {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Paused: g.paused,
		Goal:   g.cfg.Session.Goal,
	}
	if g.ctrl != nil && g.sessions > 0 {
		snap := g.ctrl.Snapshot()
		st.Score = snap.Score
		st.Collected = snap.CollectiblesGathered
		st.Goal = snap.GoalCount
	}
	if g.scene == SceneEnd {
		st.GameOver = true
		st.Won = g.outcome == encounter.Won
	}
	return st
}

// Scene returns the current scene.
func (g *Game) Scene() Scene { return g.scene }

// Elapsed returns the play time of the current session.
func (g *Game) Elapsed() time.Duration { return g.elapsed }

func init() {
	for _, id := range []string{config.VariantFlu, config.VariantMeasles, config.VariantBooster} {
		registry.Register(id, func() registry.Game { return New(id) })
	}
}
