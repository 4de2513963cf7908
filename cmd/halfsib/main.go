package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	seed       uint64
	debug      bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "halfsib",
	Short: "halfsib - simulate a half-sib breeding design and estimate heritability",
	Long: `halfsib generates a synthetic half-sib breeding dataset (random sire and
dam families crossed with fixed pond and sex effects) and fits a linear
mixed model to recover the variance components and heritability.

Scenarios are plain YAML files mirroring the generator configuration; any
omitted field falls back to the canonical 100-individual default scenario.

Examples:
  halfsib generate --seed 42 > data.csv
  halfsib fit --config scenario.yaml --seed 42`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML scenario file (default: built-in scenario)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 42, "random seed (0 uses the library default)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(fitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
