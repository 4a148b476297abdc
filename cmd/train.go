package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-semicrf/crf/semicrf"
	"github.com/go-semicrf/crf/semicrf/features"
)

var (
	trainDataPath    string
	trainInitWeights string
	trainOutPath     string
	trainPolicyPath  string
	trainMethod      string
	trainE0          float64
	trainE1          float64
	trainRp          float64
	trainMaxIter     int
	trainMaxLength   int
	trainFeatureName string

	trainDisableWGCache        bool
	trainDisableRegularization bool
	trainDisableAdaGrad        bool
	trainLikelihoodOnly        bool
	trainDisableDateVersion    bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a Semi-CRF model from a labeled corpus",
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&trainDataPath, "data", "", "Training data JSON file (required)")
	trainCmd.Flags().StringVar(&trainInitWeights, "init-weights", "", "Optional initial weights JSON file")
	trainCmd.Flags().StringVar(&trainOutPath, "out", "weights.json", "Output weights JSON file")
	trainCmd.Flags().StringVar(&trainPolicyPath, "policy", "", "Optional YAML hyperparameter file (flags override it)")
	trainCmd.Flags().StringVar(&trainMethod, "method", "bfgs", `Optimizer method ("bfgs" or "steepest_decent")`)
	trainCmd.Flags().Float64Var(&trainE0, "e0", 1.0, "Initial optimizer step size")
	trainCmd.Flags().Float64Var(&trainE1, "e1", 1e-5, "Optimizer convergence tolerance")
	trainCmd.Flags().Float64Var(&trainRp, "rp", 0.01, "L2 regularization coefficient")
	trainCmd.Flags().IntVar(&trainMaxIter, "max-iteration", 100, "Maximum optimizer iterations")
	trainCmd.Flags().IntVar(&trainMaxLength, "max-length", 10, "Maximum segment duration")
	trainCmd.Flags().StringVar(&trainFeatureName, "feature", "", "Feature function name (defaults to the corpus's declared feature)")

	trainCmd.Flags().BoolVar(&trainDisableWGCache, "disable-wg-cache", false, "Bypass the WG feature-score cache")
	trainCmd.Flags().BoolVar(&trainDisableRegularization, "disable-regularization", false, "Omit the L2 regularization term")
	trainCmd.Flags().BoolVar(&trainDisableAdaGrad, "disable-adagrad", false, "Disable AdaGrad scaling in steepest_decent")
	trainCmd.Flags().BoolVar(&trainLikelihoodOnly, "likelihood-only", false, "Compute L only; skip optimization")
	trainCmd.Flags().BoolVar(&trainDisableDateVersion, "disable-date-version", false, "Suppress the version banner")

	_ = trainCmd.MarkFlagRequired("data")
}

func runTrain(cmd *cobra.Command, _ []string) error {
	hp := hyperParams{e0: trainE0, e1: trainE1, rp: trainRp, maxIter: trainMaxIter, maxLength: trainMaxLength, method: trainMethod}

	if trainPolicyPath != "" {
		bundle, err := LoadHyperParamsBundle(trainPolicyPath)
		if err != nil {
			return semicrf.NewInputError("loading policy file", err)
		}
		hp = mergeHyperParams(hp, bundle, cmd.Flags())
	}
	e0, e1, rp, maxIter, maxLength, method := hp.e0, hp.e1, hp.rp, hp.maxIter, hp.maxLength, hp.method

	corpus, err := semicrf.LoadCorpus(trainDataPath, maxLength, true)
	if err != nil {
		return err
	}

	featureName := trainFeatureName
	if featureName == "" {
		featureName = corpus.Feature
	}
	feature, err := features.NewByName(featureName)
	if err != nil {
		return err
	}

	var initWeights *semicrf.Weights
	if trainInitWeights != "" {
		initWeights, err = semicrf.LoadWeights(trainInitWeights)
		if err != nil {
			return err
		}
	}

	flags := buildFlags(trainDisableWGCache, trainDisableRegularization, trainDisableAdaGrad, trainLikelihoodOnly, trainDisableDateVersion)

	learner := &semicrf.Learner{
		MaxLength:    maxLength,
		MaxIteration: maxIter,
		E0:           e0,
		E1:           e1,
		Rp:           rp,
		Method:       method,
		Flags:        flags,
	}

	logrus.Infof("training on %d sequences with method=%s maxLength=%d", len(corpus.AllSequences()), method, maxLength)

	weights, err := learner.Train(corpus, feature, initWeights)
	if err != nil {
		return err
	}

	if flags.Has(semicrf.EnableLikelihoodOnly) {
		logrus.Info("likelihood-only run complete; no weights written")
		return nil
	}

	if err := weights.Save(trainOutPath); err != nil {
		return err
	}
	logrus.Infof("wrote weights to %s", trainOutPath)
	return nil
}

type hyperParams struct {
	method    string
	e0, e1    float64
	rp        float64
	maxIter   int
	maxLength int
}

// mergeHyperParams lets an explicitly-set CLI flag win over the policy
// bundle; a flag left at its default is overridden by any non-zero bundle
// value.
func mergeHyperParams(flagHP hyperParams, bundle *HyperParamsBundle, flags *pflag.FlagSet) hyperParams {
	merged := flagHP
	if bundle.Method != "" && !flags.Changed("method") {
		merged.method = bundle.Method
	}
	if bundle.E0 != 0 && !flags.Changed("e0") {
		merged.e0 = bundle.E0
	}
	if bundle.E1 != 0 && !flags.Changed("e1") {
		merged.e1 = bundle.E1
	}
	if bundle.Rp != 0 && !flags.Changed("rp") {
		merged.rp = bundle.Rp
	}
	if bundle.MaxIteration != 0 && !flags.Changed("max-iteration") {
		merged.maxIter = bundle.MaxIteration
	}
	if bundle.MaxLength != 0 && !flags.Changed("max-length") {
		merged.maxLength = bundle.MaxLength
	}
	return merged
}

func buildFlags(disableWGCache, disableRegularization, disableAdaGrad, likelihoodOnly, disableDateVersion bool) semicrf.Flags {
	var f semicrf.Flags
	if disableWGCache {
		f |= semicrf.DisableWGCache
	}
	if disableRegularization {
		f |= semicrf.DisableRegularization
	}
	if disableAdaGrad {
		f |= semicrf.DisableAdaGrad
	}
	if likelihoodOnly {
		f |= semicrf.EnableLikelihoodOnly
	}
	if disableDateVersion {
		f |= semicrf.DisableDateVersion
	}
	return f
}
