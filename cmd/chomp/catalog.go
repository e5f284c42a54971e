package main

import (
	"fmt"

	"github.com/vovakirdan/chomp/internal/config"
	"github.com/vovakirdan/chomp/internal/games/chomp"
	"github.com/vovakirdan/chomp/internal/games/chomp/levels"
	"github.com/vovakirdan/chomp/internal/platform/tui"
)

// loadCatalog loads the config the game will use and its level catalog.
func loadCatalog() (config.ChompConfig, *levels.Catalog, error) {
	cfg, err := config.LoadChomp(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	catalog, err := levels.Load(cfg.Level.Dir, cfg.Grid.CellSize)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, catalog, nil
}

// menuItems offers every level in the standard mode and the diagonal level
// in the debug mode.
func menuItems(catalog *levels.Catalog) []tui.MenuItem {
	var items, debug []tui.MenuItem
	for _, info := range catalog.List() {
		detail := fmt.Sprintf("%dx%d %s", info.Width, info.Height, info.Source)
		if info.ID == levels.DiagonalID {
			debug = append(debug, tui.MenuItem{
				GameID:  chomp.DebugGameID,
				LevelID: info.ID,
				Title:   "Diagonal (debug)",
				Detail:  detail,
			})
			continue
		}
		items = append(items, tui.MenuItem{
			GameID:  chomp.GameID,
			LevelID: info.ID,
			Title:   info.Name,
			Detail:  detail,
		})
	}
	return append(items, debug...)
}
