package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hoppy/internal/audio"
	"github.com/vovakirdan/hoppy/internal/games/hoppy"
	"github.com/vovakirdan/hoppy/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Hoppy SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Sound is disabled for remote
sessions. Scores are stored per-server (all users share the same
leaderboard) under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  hoppy serve                           # Listen on :23234 with auto-generated key
  hoppy serve --ssh :2222               # Listen on port 2222
  hoppy serve --difficulty hard         # Serve the hard preset
  hoppy serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("hoppy-ssh", true)
	if err != nil {
		return err
	}
	defer closer.Close()

	gameCfg, source, preset, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "difficulty", preset)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.Board = boardFor(preset)
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Logger = logger
	cfg.NewGame = func() tui.Game {
		return hoppy.New(gameCfg, audio.Nop{})
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting Hoppy SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
