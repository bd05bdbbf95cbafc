package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/benchster/floppywaffle2/internal/game"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the tuning configuration the same way 'play' does and print
it as YAML. Useful as a starting point for a custom --config file.`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	logger := newLogger()

	cfg := loadConfig(logger)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		logger.Fatal("could not encode config", "error", err)
	}

	fmt.Printf("# field: %.0fx%.0f logical units, all motion per tick\n", game.FieldW, game.FieldH)
	os.Stdout.Write(out)
}
