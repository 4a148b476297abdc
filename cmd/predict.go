package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-semicrf/crf/semicrf"
	"github.com/go-semicrf/crf/semicrf/features"
)

var (
	predictWeightsPath string
	predictDataPath    string
	predictOutPath     string
	predictMaxLength   int

	predictDisableWGCache     bool
	predictLikelihoodOnly     bool
	predictDisableDateVersion bool
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict segmentations for a corpus using trained weights",
	RunE:  runPredict,
}

func init() {
	predictCmd.Flags().StringVar(&predictWeightsPath, "weights", "", "Trained weights JSON file (required)")
	predictCmd.Flags().StringVar(&predictDataPath, "data", "", "Inference data JSON file (required)")
	predictCmd.Flags().StringVar(&predictOutPath, "out", "", "Output path (defaults to stdout)")
	predictCmd.Flags().IntVar(&predictMaxLength, "max-length", 0, "Maximum segment duration (defaults to the value stored in the weights file)")

	predictCmd.Flags().BoolVar(&predictDisableWGCache, "disable-wg-cache", false, "Bypass the WG feature-score cache")
	predictCmd.Flags().BoolVar(&predictLikelihoodOnly, "likelihood-only", false, "Log each sequence's best Viterbi score (no per-segment output)")
	predictCmd.Flags().BoolVar(&predictDisableDateVersion, "disable-date-version", false, "Suppress the version banner")

	_ = predictCmd.MarkFlagRequired("weights")
	_ = predictCmd.MarkFlagRequired("data")
}

func runPredict(_ *cobra.Command, _ []string) error {
	weights, err := semicrf.LoadWeights(predictWeightsPath)
	if err != nil {
		return err
	}

	maxLength := predictMaxLength
	corpus, err := semicrf.LoadCorpus(predictDataPath, max(maxLength, weights.MaxLength, 1), false)
	if err != nil {
		return err
	}

	feature, err := features.NewByName(weights.Feature)
	if err != nil {
		return err
	}

	flags := buildFlags(predictDisableWGCache, false, false, predictLikelihoodOnly, predictDisableDateVersion)

	predictor := &semicrf.Predictor{
		MaxLength: maxLength,
		Flags:     flags,
	}

	logrus.Infof("predicting over %d sequences", len(corpus.AllSequences()))

	if err := predictor.Predict(weights, corpus, feature); err != nil {
		return err
	}

	out := os.Stdout
	if predictOutPath != "" {
		f, err := os.Create(predictOutPath)
		if err != nil {
			return semicrf.NewInputError("creating output file", err)
		}
		defer f.Close()
		out = f
	}

	return corpus.WritePredictions(out)
}
