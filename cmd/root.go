// Package cmd wires the semicrf core into a cobra CLI: a root command with
// train and predict subcommands, logrus logging, and an optional YAML
// hyperparameter file. Modeled on the teacher's cmd/root.go (cobra.Command
// tree, logrus.ParseLevel off a --log flag).
package cmd

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-semicrf/crf/semicrf"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "semicrf",
	Short: "Semi-Markov conditional random field learner and predictor",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(predictCmd)
}

// Execute runs the root command and exits with the taxonomy-derived code
// on failure (spec §6.3: 0 success, 1 domain error, 2 unexpected error).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps the core error taxonomy (spec §7) onto the CLI's exit
// codes: domain errors (input/dimension/feature/numerical) exit 1,
// anything else exits 2. Uses errors.As so a taxonomy error wrapped by
// fmt.Errorf("...: %w", err) anywhere up the call stack still matches.
func exitCode(err error) int {
	var inputErr *semicrf.InputError
	var dimErr *semicrf.DimensionError
	var featureErr *semicrf.FeatureError
	var numErr *semicrf.NumericalError
	switch {
	case errors.As(err, &inputErr), errors.As(err, &dimErr), errors.As(err, &featureErr), errors.As(err, &numErr):
		return 1
	default:
		return 2
	}
}
