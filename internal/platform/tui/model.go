package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chomp/internal/core"
	"github.com/vovakirdan/chomp/internal/registry"
	"github.com/vovakirdan/chomp/internal/storage"
)

// Frame timing used when a game does not configure its own.
const (
	defaultFixedStep  = time.Second
	defaultHoldWindow = 300 * time.Millisecond
)

// Timing is implemented by games that configure their own frame timing.
// It is queried after Reset.
type Timing interface {
	FixedStep() time.Duration
	HoldWindow() time.Duration
}

// LevelSelector is implemented by games that can be pointed at a level
// before Reset.
type LevelSelector interface {
	SelectLevel(id string)
}

var logger = log.New(io.Discard)

// SetLogger sets the logger used by the platform.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper
	source core.TimeSource
	frame  *core.FrameContext
	hold   *HoldTracker
	state  core.GameState

	standalone bool // quit the program when the game closes
	closed     bool
	quitting   bool
	runSaved   bool
}

// NewModel resets the game and creates a model that quits the program when
// the game closes.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (Model, error) {
	m, err := newModel(game, store, cfg, core.NewSystemTime())
	m.standalone = true
	return m, err
}

func newModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, src core.TimeSource) (Model, error) {
	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		source: src,
	}

	if err := game.Reset(cfg); err != nil {
		return m, fmt.Errorf("tui: cannot start %s: %w", game.ID(), err)
	}

	fixedStep, holdWindow := defaultFixedStep, defaultHoldWindow
	if t, ok := game.(Timing); ok {
		fixedStep, holdWindow = t.FixedStep(), t.HoldWindow()
	}
	m.frame = core.NewFrameContext(src, fixedStep)
	m.hold = NewHoldTracker(holdWindow)
	m.state = game.State()

	return m, nil
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		m.frame.Input.Apply(m.hold.ReleaseAll())
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	k, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}

	m.hold.Report(k, m.source.Millis())
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.closed || m.quitting {
		return m, nil
	}

	m.frame.Begin(m.hold.Flush(m.source.Millis()))
	result := m.game.Step(m.frame)
	m.state = result.State

	if m.state.Closed {
		m.finish()
		m.closed = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// finish stores the run once and tears the frame context down.
func (m *Model) finish() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	clock := m.frame.Clock
	run := storage.RunRecord{
		Game:       m.game.ID(),
		Level:      m.state.Level,
		Ticks:      clock.Ticks,
		FixedTicks: clock.FixedTicks,
		AvgFPS:     clock.AverageFPS(),
		DurationMs: clock.Uptime(),
	}
	m.frame.Close()

	if m.store == nil || run.Ticks == 0 {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		logger.Error("could not save run", "game", run.Game, "level", run.Level, "error", err)
		return
	}
	logger.Info("run saved", "game", run.Game, "level", run.Level, "ticks", run.Ticks, "avg_fps", fmt.Sprintf("%.1f", run.AvgFPS))
}

// saveScreenshot saves the current screen to ~/.chomp/screenshots.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".chomp", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("cannot save screenshot", "error", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// Closed reports whether the game closed itself (Escape).
func (m Model) Closed() bool {
	return m.closed
}

// IsQuitting reports whether the user asked to quit the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run plays one game in the terminal until it closes or the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model, err := NewModel(game, store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err = p.Run()
	return err
}
