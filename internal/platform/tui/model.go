package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/germ-smash/internal/core"
	"github.com/vovakirdan/germ-smash/internal/registry"
	"github.com/vovakirdan/germ-smash/internal/storage"
)

// LocalPlayer is the player name recorded for games played in the local terminal.
const LocalPlayer = "local"

// timedGame is implemented by games that report their own play time.
type timedGame interface {
	Elapsed() time.Duration
}

// resizableGame is implemented by games that can relayout a result screen
// without starting over.
type resizableGame interface {
	Resize(w, h int)
}

// Muter toggles sound effects. *audio.Player satisfies it.
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

var muter Muter

// SetMuter sets what the M key toggles in models created afterwards.
// nil disables the key.
func SetMuter(m Muter) {
	muter = m
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	muter      Muter
	logger     *log.Logger
	started    time.Time
	quitting   bool
	backToMenu bool
	recorded   bool // result of the current game over has been stored
}

// NewGameModel creates a model for game. store may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == "" {
		player = LocalPlayer
	}
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		muter:      muter,
		logger:     log.Default().WithPrefix("tui"),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	// Mute is handled here; games never see it.
	if action, _ := m.keyMapper.MapKey(msg); action == core.ActionMute {
		if m.muter != nil {
			muted := !m.muter.Muted()
			m.muter.SetMuted(muted)
			m.logger.Info("sound toggled", "muted", muted)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc leaves when the game is over or paused
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize restarts the game for the new size. A result on screen is
// kept and only relaid out.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	} else if rg, ok := m.game.(resizableGame); ok {
		rg.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.recorded:
		m.record()
		m.recorded = true
	case !m.gameState.GameOver && wasOver:
		// restarted from the end screen
		m.recorded = false
		m.started = time.Now()
	case m.started.IsZero():
		m.started = time.Now()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// record stores the finished game. Failures are logged and play continues.
func (m GameModel) record() {
	st := m.gameState
	outcome := "lost"
	if st.Won {
		outcome = "won"
	}
	m.logger.Info("game over",
		"game", m.game.ID(),
		"player", m.player,
		"outcome", outcome,
		"score", st.Score,
	)
	if m.store == nil {
		return
	}

	if st.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), st.Score); err != nil {
			m.logger.Error("save score failed", "err", err)
		}
	}

	duration := time.Since(m.started)
	if tg, ok := m.game.(timedGame); ok {
		duration = tg.Elapsed()
	}
	rec := storage.SessionRecord{
		GameID:    m.game.ID(),
		Player:    m.player,
		Outcome:   outcome,
		Score:     st.Score,
		Collected: st.Collected,
		Goal:      st.Goal,
		Duration:  duration,
	}
	if _, err := m.store.SaveSession(rec); err != nil {
		m.logger.Error("save session failed", "err", err)
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.germsmash/screenshots.
func (m GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".germsmash", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the local terminal until the player quits or goes back.
// It reports whether the player asked to return to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewGameModel(game, store, cfg, LocalPlayer),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(GameModel); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
