package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hoppy/internal/audio"
	"github.com/vovakirdan/hoppy/internal/core"
	"github.com/vovakirdan/hoppy/internal/games/hoppy"
	"github.com/vovakirdan/hoppy/internal/platform/tui"
	"github.com/vovakirdan/hoppy/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagClipboard  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in this terminal.

Controls:
  Space/Up/W   - Hop
  R/Enter      - Restart (after game over)
  Ctrl+S       - Screenshot
  Q/Esc        - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  hoppy play
  hoppy play --difficulty hard
  hoppy play --config ./my-hoppy.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().BoolVar(&flagClipboard, "clipboard", true, "Copy screenshots to the clipboard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("hoppy", false)
	if err != nil {
		return err
	}
	defer closer.Close()

	gameCfg, source, preset, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "difficulty", preset)

	var sound hoppy.SoundPlayer = audio.Nop{}
	if !flagMute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing muted", "error", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := hoppy.New(gameCfg, sound)
	if err := game.Reset(cfg); err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := os.Getenv("USER")
	err = tui.Run(game, cfg, tui.Options{
		Store:     store,
		Logger:    logger,
		Board:     boardFor(preset),
		Player:    player,
		Clipboard: flagClipboard,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
