// Package semicrf implements a semi-Markov conditional random field (Semi-CRF)
// learner and predictor for segmenting and labeling token sequences.
//
// # Reading Guide
//
// Start with these files to understand the core:
//   - label.go, segment.go, data.go: the data model (labels, segments, sequences)
//   - feature.go: the feature-function contract every wg implementation satisfies
//   - cache.go: the memoization tables shared by the alpha/eta/V recursions
//   - alpha.go, eta.go, viterbi.go: the three interlocking dynamic-programming recursions
//   - gradient.go: per-sequence gradient/objective assembly and L2 regularization
//   - weights.go: weight vector persistence (JSON)
//   - learner.go, predictor.go: orchestration across a corpus of sequences
//
// # Architecture
//
// The core package defines the Feature interface and consumes concrete
// implementations; semicrf/features provides a reference implementation
// (Digit). The optimizer abstraction lives in semicrf/optimize, which wraps
// gonum.org/v1/gonum/optimize for BFGS and implements steepest descent with
// optional AdaGrad scaling directly.
package semicrf
