package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// Game is the contract between the platform and a playable game.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Summary() core.Summary
}

// Model is the Bubble Tea model for a play session: the game plus the
// scoreboard it can switch to between games.
type Model struct {
	game        Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	fixedSeed   bool
	inputFrame  core.InputFrame
	keys        *KeyMapper
	gameState   core.GameState
	scores      *ScoreboardModel
	quitting    bool
	resultSaved bool // Whether the result has been saved for the current game
}

// NewModel creates a new Bubble Tea model for the given game and starts
// the first round.
func NewModel(game Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		fixedSeed:  fixedSeed,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
	}
	m.newRound()
	return m
}

// newRound resets the game and logs the start.
func (m *Model) newRound() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.resultSaved = false
	m.logger.Info("game started", "id", m.game.Summary().ID, "seed", m.config.Seed)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.scores == nil {
			m.keys.MapMouseToFrame(msg, &m.inputFrame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scores != nil {
		return m.updateScores(msg)
	}

	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		if m.gameState.GameOver || m.gameState.Paused {
			scores := NewScoreboardModel(m.store, m.currentBoard(), m.config.ScreenW, m.config.ScreenH)
			m.scores = &scores
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// updateScores forwards input to the scoreboard until it is closed.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	scores, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case scores.IsGoingBack():
		m.scores = nil
		return m, nil
	}

	m.scores = &scores
	return m, cmd
}

// handleResize processes window resize events. The board survives.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	if m.scores != nil {
		return m.updateScores(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.scores != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.newRound()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the result on game over (once)
	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult writes the finished game to the ledger.
func (m *Model) saveResult() {
	sum := m.game.Summary()
	m.logger.Info("game finished",
		"id", sum.ID,
		"board", m.currentBoard().String(),
		"won", sum.Won,
		"revealed", sum.SafeRevealed,
		"elapsed", sum.Elapsed.Round(time.Millisecond),
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		GameID:       sum.ID,
		Board:        m.currentBoard(),
		Won:          sum.Won,
		SafeRevealed: sum.SafeRevealed,
		Duration:     sum.Elapsed,
	})
	if err != nil {
		m.logger.Error("could not save result", "id", sum.ID, "error", err)
	}
}

// currentBoard returns the size of the board being played.
func (m Model) currentBoard() storage.BoardSize {
	sum := m.game.Summary()
	return storage.BoardSize{Rows: sum.Rows, Columns: sum.Columns, Mines: sum.Mines}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".mines", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Click to reveal, right-click to flag
	)

	_, err := p.Run()
	return err
}
