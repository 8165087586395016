package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trapjump/internal/config"
	"github.com/vovakirdan/trapjump/internal/core"
	"github.com/vovakirdan/trapjump/internal/games/trapjump"
	"github.com/vovakirdan/trapjump/internal/games/trapjump/engine"
	"github.com/vovakirdan/trapjump/internal/storage"
)

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(r storage.RunRecord) (int64, error)
}

// Options configures the play screen.
type Options struct {
	Runtime    core.RuntimeConfig
	Runs       RunRecorder // nil disables run history
	Logger     *log.Logger
	Difficulty string
}

// Terminal rows below the game screen for the short and full help.
const (
	helpRows     = 1
	fullHelpRows = 3
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for playing trapjump.
type Model struct {
	game      *trapjump.Game
	screen    *core.Screen
	runs      RunRecorder
	logger    *log.Logger
	config    core.RuntimeConfig
	interval  time.Duration
	diff      string
	keys      KeyMap
	help      help.Model
	input     *InputCollector
	gameState core.GameState
	runSaved  bool // Whether the current run's outcome has been recorded
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *trapjump.Game, opts Options) Model {
	cfg := opts.Runtime.WithSeed(time.Now())
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-helpRows)),
		runs:      opts.Runs,
		logger:    logger,
		config:    cfg,
		interval:  tickInterval(cfg.TickRate),
		diff:      opts.Difficulty,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     NewInputCollector(game.HoldTicks()),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.config.Seed, "interval", m.interval, "difficulty", m.diff)
	return tickCmd(m.interval)
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
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.recordRun(storage.OutcomeQuit)
		m.quitting = true
		m.logger.Info("session ended", "ticks", m.game.Snapshot().Tick)
		return m, tea.Quit
	}
	m.input.Press(action)
	return m, nil
}

// handleResize processes window resize events. The world is projected onto
// whatever size the terminal has, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout sizes the game screen to the terminal minus the help footer.
func (m *Model) layout() {
	rows := helpRows
	if m.help.ShowAll {
		rows = fullHelpRows
	}
	m.screen.Resize(m.config.ScreenW, core.Max(1, m.config.ScreenH-rows))
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.input.Frame()
	wasTerminal := m.gameState.Ended()

	result := m.game.Step(frame)
	m.input.Advance()
	m.gameState = result.State
	m.logEvents(m.game.LastEvents())

	switch {
	case m.gameState.Won:
		m.recordRun(storage.OutcomeFinished)
	case m.gameState.GameOver:
		m.recordRun(storage.OutcomeGameOver)
	case wasTerminal:
		// A restart from game over or a finished campaign starts a new run.
		m.runSaved = false
	}

	return m, tickCmd(m.interval)
}

// recordRun stores the current run once. Runs without a single tick are skipped.
func (m *Model) recordRun(outcome string) {
	if m.runSaved {
		return
	}
	m.runSaved = true

	sum := m.game.Summary()
	if m.runs == nil || sum.Ticks == 0 {
		return
	}
	rec := storage.RunRecord{
		Outcome:       outcome,
		LevelsCleared: sum.LevelsCleared,
		LevelCount:    sum.LevelCount,
		Deaths:        sum.Deaths,
		Restarts:      sum.Restarts,
		Ticks:         sum.Ticks,
		DurationMS:    sum.DurationMS,
		Seed:          sum.Seed,
		Difficulty:    m.diff,
	}
	if _, err := m.runs.SaveRun(rec); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run recorded", "outcome", outcome, "levels", sum.LevelsCleared, "deaths", sum.Deaths)
}

// logEvents writes engine events to the log.
func (m *Model) logEvents(events []engine.Event) {
	for _, ev := range events {
		level := ev.Level + 1
		switch ev.Kind {
		case engine.EventDeath:
			m.logger.Info("player died", "level", level, "cause", ev.Cause, "message", ev.Message)
		case engine.EventGameOver:
			m.logger.Info("game over", "level", level)
		case engine.EventLevelComplete:
			m.logger.Info("level complete", "level", level)
		case engine.EventGameFinished:
			m.logger.Info("campaign finished", "deaths", m.game.Summary().Deaths)
		case engine.EventTrapTriggered, engine.EventTrapDisappeared:
			m.logger.Debug(ev.Kind.String(), "level", level, "trap", ev.TrapID)
		default:
			m.logger.Debug(ev.Kind.String(), "level", level)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.DataDir()
	if dir == "" {
		return
	}
	dir = filepath.Join(dir, "screenshots")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game *trapjump.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
