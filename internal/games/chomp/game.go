// Package chomp is the maze game: a player steered through a tile grid with
// wall collision and an animated sprite. It wires the maze, anim, sprites
// and levels packages into a registry.Game.
package chomp

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chomp/internal/config"
	"github.com/vovakirdan/chomp/internal/core"
	"github.com/vovakirdan/chomp/internal/games/chomp/anim"
	"github.com/vovakirdan/chomp/internal/games/chomp/levels"
	"github.com/vovakirdan/chomp/internal/games/chomp/maze"
	"github.com/vovakirdan/chomp/internal/games/chomp/sprites"
	"github.com/vovakirdan/chomp/internal/registry"
)

const (
	GameID      = "chomp"
	DebugGameID = "chomp_diagonal"
)

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
	selectedLevel    string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the config file path. Empty uses the search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLevel selects the level played by the next game. Empty uses the
// configured default.
func SetLevel(id string) {
	selectedLevel = id
}

// GetLevel returns the selected level ID.
func GetLevel() string {
	return selectedLevel
}

// SetLogger sets the logger used by games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the maze game.
type Game struct {
	id          string
	fixedLevel  string // non-empty for modes bound to one level
	chosenLevel string

	cfg        config.ChompConfig
	difficulty *config.DifficultyManager
	sheet      *sprites.Sheet
	level      levels.Level

	player     maze.Entity
	controller *maze.Controller
	cycler     *anim.Cycler[sprites.Frame]

	hud        string
	ticks      int64
	fixedTicks int64
	fps        int64
	paused     bool
	closed     bool
}

// New creates the standard game.
func New() *Game {
	return &Game{id: GameID}
}

// NewDiagonal creates the debug game on the diagonal level.
func NewDiagonal() *Game {
	return &Game{id: DebugGameID, fixedLevel: levels.DiagonalID}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(DebugGameID, func() registry.Game {
		return NewDiagonal()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// SelectLevel points this instance at a level, overriding SetLevel.
// Modes bound to one level ignore it.
func (g *Game) SelectLevel(id string) {
	g.chosenLevel = id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.fixedLevel == levels.DiagonalID {
		return "Chomp (Diagonal Debug)"
	}
	return "Chomp"
}

// Reset loads config, sprite sheet and level, then spawns the player.
func (g *Game) Reset(_ core.RuntimeConfig) error {
	cfg, err := config.LoadChomp(configPath)
	if err != nil {
		return err
	}
	preset, ok := config.ParsePreset(difficultyPreset)
	if !ok {
		return fmt.Errorf("chomp: unknown difficulty %q", difficultyPreset)
	}
	config.ApplyChompPreset(&cfg, preset)

	sheet, err := sprites.Load(cfg.Sprites.Path)
	if err != nil {
		return err
	}
	if err := sheet.Validate(); err != nil {
		return err
	}

	catalog, err := levels.Load(cfg.Level.Dir, cfg.Grid.CellSize)
	if err != nil {
		return err
	}
	level, err := catalog.Get(g.levelID(cfg))
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.sheet = sheet
	g.level = level
	g.ticks = 0
	g.fixedTicks = 0
	g.fps = 0
	g.paused = false
	g.closed = false

	g.cycler = anim.New(sheet.MustForeground(sprites.Player), cfg.FrameDelay())
	g.respawn()

	logger.Info("level loaded", "game", g.id, "level", level.ID, "size", fmt.Sprintf("%dx%d", level.Width, level.Height), "difficulty", preset)
	return nil
}

func (g *Game) levelID(cfg config.ChompConfig) string {
	switch {
	case g.fixedLevel != "":
		return g.fixedLevel
	case g.chosenLevel != "":
		return g.chosenLevel
	case selectedLevel != "":
		return selectedLevel
	default:
		return cfg.Level.Default
	}
}

// respawn puts the player back at the spawn point, facing nowhere.
func (g *Game) respawn() {
	g.player = maze.Entity{
		Position: g.level.SpawnPoint(),
		HalfSize: core.V(g.cfg.Movement.HalfSize, g.cfg.Movement.HalfSize),
		Speed:    g.cfg.Movement.Speed,
	}
	g.controller = maze.NewController(&g.player, g.level.Grid, g.cfg.Movement.SnapGranularity)
	g.cycler.Stop()
	g.cycler.Reset()
	g.refreshHUD()
}

// Step runs one frame: movement, fixed-step drain, then animation.
func (g *Game) Step(f *core.FrameContext) core.StepResult {
	in, clock := f.Input, f.Clock
	g.ticks = clock.Ticks
	g.fps = clock.FPS

	if in.IsKeyDown(core.KeyEscape) {
		g.closed = true
		return core.StepResult{State: g.State()}
	}
	if in.IsKeyDown(core.KeyPause) {
		g.paused = !g.paused
	}
	if in.IsKeyDown(core.KeyRestart) {
		g.respawn()
	}

	if !g.paused {
		g.player.Speed = g.difficulty.Speed(g.cfg.Movement.Speed, g.ticks)
		g.cycler.SetFrameDelay(g.difficulty.FrameDelay(g.cfg.FrameDelay(), g.ticks))

		before := g.player.Position
		g.controller.Update(in, clock)
		g.updateAnimationState(before, clock)
	}

	clock.DrainFixed(g.fixedUpdate)

	if !g.paused {
		g.cycler.Update(clock)
	}

	if g.ticks%int64(g.cfg.Timing.HUDRefreshTicks) == 0 {
		g.refreshHUD()
	}

	return core.StepResult{State: g.State()}
}

// updateAnimationState runs the mouth while the player moves and freezes it
// when blocked.
func (g *Game) updateAnimationState(before core.Vec2, clock *core.Clock) {
	switch {
	case g.player.Position != before:
		g.cycler.Start()
	case clock.ElapsedTime > 0:
		g.cycler.Stop()
	}
}

func (g *Game) fixedUpdate() {
	g.fixedTicks++
}

func (g *Game) refreshHUD() {
	p := g.player.Position
	g.hud = fmt.Sprintf("FPS: %d - Player Pos: %d, %d", g.fps, int(math.Round(p.X)), int(math.Round(p.Y)))
	logger.Debug("hud", "fps", g.fps, "x", p.X, "y", p.Y, "ticks", g.ticks)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level:      g.level.ID,
		Ticks:      g.ticks,
		FixedTicks: g.fixedTicks,
		FPS:        g.fps,
		Paused:     g.paused,
		Closed:     g.closed,
	}
}

// Player returns the player's pose.
func (g *Game) Player() maze.Pose {
	return g.player.Pose()
}

// Direction returns the player's current direction.
func (g *Game) Direction() maze.Direction {
	return g.player.Direction
}

// Frame returns the player's current animation frame.
func (g *Game) Frame() sprites.Frame {
	return g.cycler.Frame()
}

// HUD returns the status line text.
func (g *Game) HUD() string {
	return g.hud
}

// Level returns the loaded level.
func (g *Game) Level() levels.Level {
	return g.level
}

// FrameDelay returns the animation delay currently in effect.
func (g *Game) FrameDelay() time.Duration {
	return g.cycler.FrameDelay()
}

// FixedStep returns the configured fixed-update interval.
func (g *Game) FixedStep() time.Duration {
	return g.cfg.FixedStep()
}

// HoldWindow returns how long a terminal key counts as held without a repeat.
func (g *Game) HoldWindow() time.Duration {
	return g.cfg.HoldWindow()
}
