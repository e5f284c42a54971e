package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chomp/internal/games/chomp/levels/formats"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows every level chomp can load: the built-in levels and the files
under the config's level.dir (.txt, .yaml/.yml, .png). A file with the same
ID as a built-in level replaces it.`,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	list := catalog.List()
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, info := range list {
		maxIDLen = max(maxIDLen, len(info.ID))
		maxNameLen = max(maxNameLen, len(info.Name))
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Source")
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "------")
	for _, info := range list {
		size := fmt.Sprintf("%dx%d", info.Width, info.Height)
		fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, info.ID, maxNameLen, info.Name, size, info.Source)
	}

	fmt.Println()
	fmt.Printf("Default level: %s\n", cfg.Level.Default)
	fmt.Printf("Level files: %s\n", strings.Join(formats.Extensions(), " "))
	fmt.Println("Run 'chomp play <id>' to play a level.")
	return nil
}
