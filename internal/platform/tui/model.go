package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-evolution/internal/core"
	"github.com/vovakirdan/snake-evolution/internal/registry"
	"github.com/vovakirdan/snake-evolution/internal/storage"
)

// maxFrameSeconds caps the wall-clock delta fed into a single simulation
// step so a stalled terminal does not teleport the snake.
const maxFrameSeconds = 0.25

// sessionReporter is implemented by games that expose how long the
// current run has lasted, for session history persistence.
type sessionReporter interface {
	Elapsed() float64
}

// Model is the Bubble Tea model for running a snake session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	savedRun   bool // score/session already persisted for current game over
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.gameState.GameOver {
			m.quitting = true
			return m, tea.Quit
		}
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone:
		// Unmapped key, ignore.
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. A resize restarts the
// current run with the new dimensions; a finished run keeps its overlay.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = core.ClampF(now.Sub(m.lastTick).Seconds(), 0, maxFrameSeconds)
	}
	m.lastTick = now

	// Fresh run after restart: allow persisting the next game over.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.savedRun = false
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	if m.gameState.GameOver && !m.savedRun {
		m.persistRun()
		m.savedRun = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// persistRun saves the finished run's score and session record.
// Persistence is best-effort: failures are logged, never fatal.
func (m *Model) persistRun() {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			log.Warn("failed to save score", "game", m.game.ID(), "err", err)
		}
	}

	var duration float64
	if sr, ok := m.game.(sessionReporter); ok {
		duration = sr.Elapsed()
	}
	rec := storage.SessionRecord{
		Mode:      m.game.ID(),
		Score:     m.gameState.Score,
		Duration:  duration,
		EndReason: m.gameState.EndReason,
	}
	if _, err := m.store.SaveSession(rec); err != nil {
		log.Warn("failed to save session", "game", m.game.ID(), "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a single game session.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
