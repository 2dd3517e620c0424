package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hoppy/internal/config"
	"github.com/vovakirdan/hoppy/internal/platform/tui"
	"github.com/vovakirdan/hoppy/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagBoard       string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs of a leaderboard.

Every difficulty preset has its own board: hoppy, hoppy-easy,
hoppy-normal, hoppy-hard and hoppy-fixed.

Examples:
  hoppy scores
  hoppy scores --difficulty hard --limit 20
  hoppy scores --interactive
  hoppy scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all boards in a table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagBoard, "difficulty", "", "Board of a difficulty preset")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every run on the board")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, allBoards(), width, height)
	}

	var preset config.DifficultyPreset
	if flagBoard != "" {
		if preset = config.ParsePreset(flagBoard); preset == "" {
			return fmt.Errorf("unknown difficulty %q", flagBoard)
		}
	}
	board := boardFor(preset)

	if flagClear {
		if err := store.ClearScores(board); err != nil {
			return fmt.Errorf("error clearing scores: %w", err)
		}
		fmt.Printf("Cleared %s\n", board)
		return nil
	}

	scores, err := store.TopScores(board, flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", board)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hoppy play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-12s  %-7s  %s\n", "Rank", "Score", "Player", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-12s  %-7s  %s\n", "----", "-----", "------", "----", "----")
	for i, row := range tui.ScoreRows(scores) {
		date := scores[i].CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6s  %-12s  %-7s  %s\n", i+1, row[1], row[2], row[3], date)
	}

	stats, err := store.GetBoardStats(board)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.RunsCount, stats.AvgScore)
	}
	return nil
}
