// arcade is a cat-themed arcade: three small games played in the terminal,
// over SSH or through a web API.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade web               - Start HTTP/WebSocket server
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.arcade/configs/arcade.yaml)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - Override the configured log level
//	--no-audio          - Disable sound cues
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cat-arcade/internal/audio"
	"github.com/vovakirdan/cat-arcade/internal/config"
	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/logging"
	"github.com/vovakirdan/cat-arcade/internal/platform/tui"

	// Import games to register them
	_ "github.com/vovakirdan/cat-arcade/internal/games/catcher"
	_ "github.com/vovakirdan/cat-arcade/internal/games/firecats"
	_ "github.com/vovakirdan/cat-arcade/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagNoAudio  bool

	// appConfig is loaded before any subcommand runs.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Cat Arcade - Three cat games for your terminal",
	Long: `Cat Arcade bundles three small games about cats:

  firecats  - Click the burning cats before time runs out
  catcher   - Catch the fish, dodge the bombs
  snake     - Eat the mice, don't bite your tail

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  web      - Start HTTP/WebSocket server

Examples:
  arcade list
  arcade play firecats
  arcade menu --seed 42
  arcade serve --ssh :2222
  arcade web --addr :9090`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound cues")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}

func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	appConfig = cfg
	return nil
}

// fileLogger returns a logger writing to the configured log file, for
// commands that own the terminal. With no file configured logs are dropped.
func fileLogger() (*log.Logger, func(), error) {
	if appConfig.Log.File == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := logging.OpenFile(config.ExpandHome(appConfig.Log.File))
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(f, "arcade", appConfig.Log.Level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// stderrLogger returns a logger for the servers.
func stderrLogger(prefix string) (*log.Logger, error) {
	return logging.New(os.Stderr, prefix, appConfig.Log.Level)
}

// terminalOptions builds the terminal host options from the config, the
// global flags and the current terminal size.
func terminalOptions(logger *log.Logger, player audio.Player) tui.Options {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			CellPx:  appConfig.TUI.CellPx,
			Seed:    flagSeed,
		},
		Frame:      appConfig.TUI.FrameInterval(),
		KeyRelease: appConfig.TUI.KeyRelease(),
		Logger:     logger,
		Audio:      player,
	}
}
