// floppy is a terminal rendition of a minimal gravity-driven gated-obstacle
// side-scroller.
//
// Usage:
//
//	floppy play     - Play the game
//	floppy config   - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60); game speed follows it
//	--seed <value>    - Set RNG seed for reproducible obstacle placement
//	--config <path>   - Path to a custom tuning YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floppy",
	Short: "Floppy Waffle - a tiny terminal flap-through-the-gaps game",
	Long: `Floppy Waffle is a terminal game: gravity pulls you down, a tap
flaps you up, and every gated obstacle you clear is a point.

Available commands:
  play     - Play the game
  config   - Print the effective configuration

Examples:
  floppy play
  floppy play --fps 30
  floppy play --config ./my-tuning.yaml
  floppy config`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
