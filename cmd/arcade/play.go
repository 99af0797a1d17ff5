package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-arcade/internal/audio"
	"github.com/vovakirdan/cat-arcade/internal/platform/tui"
	"github.com/vovakirdan/cat-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter/Space      - Start
  Arrows/WASD      - Move (catcher, snake)
  Mouse click/1-9  - Pick a cat (firecats)
  R                - Restart
  Ctrl+S           - Save a screenshot
  Q/Esc            - Quit

Examples:
  arcade play firecats
  arcade play catcher --no-audio
  arcade play snake --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'arcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	player, closeAudio := audio.Open(appConfig.Audio.Enabled, logger)
	defer closeAudio()

	logger.Info("playing", "game", gameID)
	if err := tui.Run(game, terminalOptions(logger, player)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
