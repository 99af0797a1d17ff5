package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-arcade/internal/audio"
	"github.com/vovakirdan/cat-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press B or Esc inside a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q            - Quit

Examples:
  arcade menu
  arcade menu --seed 42
  arcade menu --no-audio`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	player, closeAudio := audio.Open(appConfig.Audio.Enabled, logger)
	defer closeAudio()

	return tui.RunMenu(terminalOptions(logger, player))
}
