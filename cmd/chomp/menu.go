package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chomp/internal/platform/tui"
	"github.com/vovakirdan/chomp/internal/registry"
	"github.com/vovakirdan/chomp/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start chomp in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level.
Closing a level with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Tab          - Run log
  Q            - Quit

Examples:
  chomp menu
  chomp menu --fps 30
  chomp menu --db ./runs.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	_, catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	items := menuItems(catalog)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run log: %v\n", err)
		logger.Warn("run log unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(items, store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsRuns {
			goBack, err := tui.RunRuns(store, catalog.IDs(), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(result.Item.GameID)
		if err != nil {
			return err
		}
		if ls, ok := game.(tui.LevelSelector); ok {
			ls.SelectLevel(result.Item.LevelID)
		}

		logger.Info("starting", "game", result.Item.GameID, "level", result.Item.LevelID)
		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running level: %v\n", err)
			logger.Error("level failed", "level", result.Item.LevelID, "error", err)
		}
	}
}
