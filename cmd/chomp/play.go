package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chomp/internal/games/chomp"
	"github.com/vovakirdan/chomp/internal/platform/tui"
	"github.com/vovakirdan/chomp/internal/registry"
	"github.com/vovakirdan/chomp/internal/storage"
)

var flagDebug bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level. Without an argument the config's default
level is used.

Controls:
  Arrows/WASD - Move
  P           - Pause
  R           - Respawn
  Esc         - Close the level
  Ctrl+S      - Screenshot to ~/.chomp/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower start, speeds up over time
  normal - Default progression
  hard   - Faster start, speeds up over time
  fixed  - No progression, config speed and frame delay

Examples:
  chomp play
  chomp play arena
  chomp play classic --difficulty hard
  chomp play --debug
  chomp play maps/custom --config ./my-chomp.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Play the diagonal debug level")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := chomp.GameID
	if flagDebug {
		gameID = chomp.DebugGameID
	}

	if len(args) == 1 && !flagDebug {
		_, catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		if !catalog.Has(args[0]) {
			return fmt.Errorf("unknown level %q (have %s)", args[0], strings.Join(catalog.IDs(), ", "))
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if ls, ok := game.(tui.LevelSelector); ok {
			ls.SelectLevel(args[0])
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run log: %v\n", err)
		logger.Warn("run log unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "game", gameID, "fps", flagFPS)
	return tui.Run(game, store, runtimeConfig())
}
