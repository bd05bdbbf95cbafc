package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/benchster/floppywaffle2/internal/config"
	"github.com/benchster/floppywaffle2/internal/core"
	"github.com/benchster/floppywaffle2/internal/game"
	"github.com/benchster/floppywaffle2/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a play session.

Controls:
  Space/Up/W   - Flap (restarts after game over)
  Mouse click  - Flap (same as the key)
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  floppy play
  floppy play --fps 30
  floppy play --seed 42
  floppy play --config ./my-tuning.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger()

	cfg := loadConfig(logger)

	// Terminal size, with a conservative fallback
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := game.New(cfg)
	if err := tui.Run(g, cfg, rt); err != nil {
		logger.Fatal("error running game", "error", err)
	}
}

// newLogger builds the CLI diagnostics logger. Gameplay itself never logs;
// this only reports config problems and startup failures.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "floppy",
	})
}

// loadConfig resolves and validates the tuning config, falling back to the
// defaults when a non-explicit source is unusable.
func loadConfig(logger *log.Logger) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		// An explicitly requested config that cannot be read is fatal.
		logger.Fatal("could not load config", "error", err)
	}
	if err := cfg.Validate(game.FieldH); err != nil {
		if flagConfig != "" {
			logger.Fatal("invalid config", "path", flagConfig, "error", err)
		}
		logger.Warn("invalid config found, using defaults", "error", err)
		cfg = config.Default()
	}
	return cfg
}
