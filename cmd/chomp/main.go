// chomp is a terminal maze game: steer the player through tile mazes with
// wall collision and an animated sprite.
//
// Usage:
//
//	chomp play [level]       - Play a level (default from config)
//	chomp play --debug       - Play the diagonal debug level
//	chomp menu               - Pick levels interactively
//	chomp levels             - List the level catalog
//	chomp list               - List game modes
//	chomp runs [level]       - Show the run log
//	chomp serve              - Start SSH server for remote play
//	chomp schema <kind>      - Print JSON Schema for config, level or sprites
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--db <path>            - Run log database (default: ~/.chomp/runs.db)
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard, fixed
//	--log-level <level>    - debug, info, warn, error
//	--log-file <path>      - Log destination (default: ~/.chomp/chomp.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chomp/internal/core"
	"github.com/vovakirdan/chomp/internal/games/chomp"
	"github.com/vovakirdan/chomp/internal/platform/tui"
)

var (
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Fatal("command failed", "error", err)
	}
	if logFile != nil {
		logFile.Close()
	}
}

var rootCmd = &cobra.Command{
	Use:   "chomp",
	Short: "Chomp - a maze game in your terminal",
	Long: `Chomp is a terminal maze game. Steer the player through tile mazes
with the arrow keys or WASD; walls stop you, corners snap you onto the grid.

Available commands:
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - Show the level catalog
  list     - Show game modes
  runs     - View the run log
  serve    - Start SSH server for remote play
  schema   - Print JSON Schema for the YAML documents

Examples:
  chomp play
  chomp play arena --difficulty hard
  chomp play --debug
  chomp menu
  chomp serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chomp/runs.db", "Path to run log database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.chomp/chomp.log", "Log file (the terminal belongs to the game)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(schemaCmd)
}

// setup builds the logger and hands the global flags to the game.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	path, err := expandHome(flagLogFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "chomp",
		Level:           level,
	})

	chomp.SetLogger(logger)
	chomp.SetConfigPath(flagConfig)
	chomp.SetDifficultyPreset(flagDifficulty)
	tui.SetLogger(logger)
	return nil
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
