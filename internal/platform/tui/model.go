package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hoppy/internal/core"
	"github.com/vovakirdan/hoppy/internal/storage"
)

// Game is a scene host the model can drive.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig) error
	Step(in core.InputFrame) core.StepResult
	Render(s *core.Screen)
	State() core.GameState
	Ticks() int
}

// Options carries the model's optional collaborators.
type Options struct {
	Store     *storage.Store // nil plays without saving scores
	Logger    *log.Logger
	Board     string // leaderboard scores are saved to, defaults to the game ID
	Player    string
	Clipboard bool // copy screenshots to the system clipboard
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	board      string
	player     string
	clipboard  bool
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	status     string
}

// hudHeight is the number of rows below the playfield.
const hudHeight = 1

// NewModel creates a model for a game that has already been Reset.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	board := opts.Board
	if board == "" {
		board = game.ID()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-hudHeight)),
		store:      opts.Store,
		logger:     logger,
		board:      board,
		player:     opts.Player,
		clipboard:  opts.Clipboard,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}

	if m.store != nil {
		best, err := m.store.HighScore(board)
		if err != nil {
			logger.Warn("could not load high score", "board", board, "error", err)
		}
		m.best = best
	}
	return m
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

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + filepath.Base(path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The scene is scaled to the
// new size, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-hudHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame = core.NewInputFrame()

	if result.Restarted {
		m.scoreSaved = false
		m.status = ""
		m.logger.Debug("run restarted", "run", result.State.RunID)
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.finishRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// finishRun records a finished run once.
func (m *Model) finishRun() {
	m.scoreSaved = true
	st := m.gameState
	ticks := m.game.Ticks()
	m.logger.Info("game over", "score", st.Score, "ticks", ticks, "run", st.RunID, "player", m.player)

	if st.Score > m.best {
		m.best = st.Score
	}
	if m.store == nil || st.Score <= 0 {
		return
	}

	_, err := m.store.SaveRun(storage.Run{
		RunID:  st.RunID,
		Board:  m.board,
		Player: m.player,
		Score:  st.Score,
		Ticks:  ticks,
	})
	if err != nil {
		m.logger.Error("could not save score", "run", st.RunID, "error", err)
	}
}

// saveScreenshot writes the current frame to ~/.arcade/screenshots and,
// when enabled, copies it to the clipboard.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)
	text := m.screen.String()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	if m.clipboard {
		if err := clipboard.WriteAll(text); err != nil {
			m.logger.Warn("could not copy screenshot to clipboard", "error", err)
		}
	}
	return path, nil
}

var (
	hudScoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	hudMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	hud := hudScoreStyle.Render(fmt.Sprintf(" %s  score %d  best %d ", m.game.Title(), m.gameState.Score, m.best))
	if m.status != "" {
		hud += hudMutedStyle.Render(m.status + "  ")
	}
	hud += m.help.View(m.keys)

	return RenderScreen(m.screen) + "\n" + hud
}

// Run starts the Bubble Tea program for a game that has already been Reset.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
