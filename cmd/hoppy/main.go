// hoppy is a one-button terminal scroller: hop the bunny through the gaps
// between carrots.
//
// Usage:
//
//	hoppy play              - Play in this terminal
//	hoppy serve             - Start SSH server for remote play
//	hoppy scores            - Show high scores
//	hoppy config            - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hoppy/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hoppy",
	Short: "Hoppy Bunny - hop through the carrots in your terminal",
	Long: `Hoppy Bunny is a one-button scroller for the terminal.

Tap to hop, pass between the carrots to score, touch a carrot or the
ground and the run is over.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  hoppy play
  hoppy play --difficulty hard
  hoppy serve --ssh :2222
  hoppy scores --interactive`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (play defaults to ~/.arcade/hoppy.log, serve to stderr)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the configuration file and applies a difficulty preset.
func loadGameConfig(path, difficulty string) (config.HoppyConfig, config.Source, config.DifficultyPreset, error) {
	cfg, source, err := config.LoadHoppy(path)
	if err != nil {
		return cfg, source, "", err
	}

	if difficulty == "" {
		return cfg, source, "", nil
	}
	preset := config.ParsePreset(difficulty)
	if preset == "" {
		return cfg, source, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, source, preset, nil
}

// boardFor names the leaderboard for a difficulty preset.
func boardFor(preset config.DifficultyPreset) string {
	if preset == "" {
		return "hoppy"
	}
	return "hoppy-" + string(preset)
}

// allBoards lists every leaderboard, default first.
func allBoards() []string {
	return []string{
		boardFor(""),
		boardFor(config.DifficultyEasy),
		boardFor(config.DifficultyNormal),
		boardFor(config.DifficultyHard),
		boardFor(config.DifficultyFixed),
	}
}
